package view

import (
	"context"
	"strconv"

	"usersadmin/internal/logging"
	"usersadmin/internal/model"
)

// ListLoadNotice is shown when the users could not be fetched.
const ListLoadNotice = "Users could not be loaded. Try again later."

// ListView renders every user as one table row.
type ListView struct {
	Users  []model.User
	Notice string

	api UsersAPI
	nav Navigator
}

// Row is one rendered table row.
type Row struct {
	UserID int
	Cells  []string
}

// NewListView builds an empty list view.
func NewListView(users UsersAPI, nav Navigator) *ListView {
	return &ListView{
		Users: []model.User{},
		api:   users,
		nav:   nav,
	}
}

// Activate fetches the users. On failure the collection stays empty.
func (v *ListView) Activate(ctx context.Context) {
	resp, err := v.api.List(ctx)
	if err != nil {
		logging.FromContext(ctx).WithError(err).Error("Error getting users")
		v.Users = []model.User{}
		v.Notice = ListLoadNotice
		return
	}
	if resp == nil || resp.Data == nil {
		v.Users = []model.User{}
		return
	}
	v.Users = resp.Data
}

// GoToCreate navigates to the create form.
func (v *ListView) GoToCreate() {
	v.nav.Navigate(RouteCreate, nil)
}

// GoToEdit navigates to the edit form of userID.
func (v *ListView) GoToEdit(userID int) {
	v.nav.Navigate(RouteEdit, editQuery(userID))
}

// Delete removes userID and reloads the list whatever the outcome.
func (v *ListView) Delete(ctx context.Context, userID int) {
	if _, err := v.api.Delete(ctx, userID); err != nil {
		logging.FromContext(ctx).WithError(err).WithField("user_id", userID).Error("Error deleting user")
	}
	v.nav.Reload()
}

// Rows returns the table cells in column order.
func (v *ListView) Rows() []Row {
	rows := make([]Row, 0, len(v.Users))
	for _, u := range v.Users {
		rows = append(rows, Row{
			UserID: u.UserID,
			Cells: []string{
				strconv.Itoa(u.UserID),
				u.UserName,
				u.FirstName,
				u.LastName,
				u.Email,
				model.StatusLabel(u.UserStatus),
				u.Department,
			},
		})
	}
	return rows
}

// Columns are the table headers matching Row.Cells.
func Columns() []string {
	return []string{"ID", "User name", "First name", "Last name", "Email", "Status", "Department"}
}
