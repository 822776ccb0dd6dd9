package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"usersadmin/internal/view"
	"usersadmin/internal/web"
)

// PageHandler serves the admin pages.
type PageHandler struct {
	users view.UsersAPI
}

// NewPageHandler creates the admin page handler.
func NewPageHandler(users view.UsersAPI) *PageHandler {
	return &PageHandler{users: users}
}

// List renders every user.
func (h *PageHandler) List(c echo.Context) error {
	nav := newRedirectNavigator(view.RouteList)
	lv := view.NewListView(h.users, nav)
	lv.Activate(c.Request().Context())
	return c.Render(http.StatusOK, web.PageList, lv)
}

// Delete removes a user and reloads the list.
func (h *PageHandler) Delete(c echo.Context) error {
	nav := newRedirectNavigator(view.RouteList)
	lv := view.NewListView(h.users, nav)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		nav.Reload()
	} else {
		lv.Delete(c.Request().Context(), id)
	}
	_, err = nav.redirect(c)
	return err
}

// ShowForm renders the create form, or loads and renders the edit form.
func (h *PageHandler) ShowForm(c echo.Context) error {
	nav := newRedirectNavigator(c.Request().URL.RequestURI())
	f := view.NewFormView(c.Request().URL, h.users, nav)
	f.Load(c.Request().Context())

	if done, err := nav.redirect(c); done {
		return err
	}
	return c.Render(http.StatusOK, web.PageForm, web.FormPage{
		Form:   f,
		Action: c.Request().URL.RequestURI(),
	})
}

// SubmitForm saves the posted form values.
func (h *PageHandler) SubmitForm(c echo.Context) error {
	nav := newRedirectNavigator(c.Request().URL.RequestURI())
	f := view.NewFormView(c.Request().URL, h.users, nav)

	var fields view.Fields
	if err := c.Bind(&fields); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}
	f.Bind(fields)

	page := web.FormPage{Form: f, Action: c.Request().URL.RequestURI()}
	if f.State != view.StateDone && !f.CanSubmit() {
		page.Errors = f.Errors()
		return c.Render(http.StatusUnprocessableEntity, web.PageForm, page)
	}

	f.Submit(c.Request().Context())
	if done, err := nav.redirect(c); done {
		return err
	}

	status := http.StatusOK
	if f.Conflict != "" {
		status = http.StatusConflict
	} else if f.Notice != "" {
		status = http.StatusBadGateway
	}
	return c.Render(status, web.PageForm, page)
}
