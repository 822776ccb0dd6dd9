package web

import "usersadmin/internal/view"

// FormPage is the data of the create/edit page.
type FormPage struct {
	Form   *view.FormView
	Errors map[string]string
	Action string
}
