package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "usersadmin/internal/errors"
	"usersadmin/internal/logging"
	"usersadmin/internal/model"
	"usersadmin/internal/service"
)

// UserHandler serves the users REST resource.
type UserHandler struct {
	svc service.UserService
}

// NewUserHandler creates a handler layer.
func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// CreateUserRequest is the body of a create call.
type CreateUserRequest struct {
	UserName   string `json:"user_name" validate:"required,max=50"`
	FirstName  string `json:"first_name" validate:"required"`
	LastName   string `json:"last_name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	UserStatus string `json:"user_status" validate:"required"`
	Department string `json:"department,omitempty"`
}

// UpdateUserRequest is the body of an update call.
type UpdateUserRequest struct {
	UserID int `json:"user_id" validate:"required,gt=0"`
	CreateUserRequest
}

func (r CreateUserRequest) user() *model.User {
	return &model.User{
		UserName:   r.UserName,
		FirstName:  r.FirstName,
		LastName:   r.LastName,
		Email:      r.Email,
		UserStatus: model.UserStatus(r.UserStatus),
		Department: r.Department,
	}
}

// CreateUser godoc
// @Summary Create user
// @Tags users
// @Accept json
// @Produce json
// @Param user body CreateUserRequest true "User payload"
// @Success 201 {object} model.Response{data=model.User}
// @Failure 400 {object} model.Response
// @Failure 500 {object} model.Response
// @Router /users [post]
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req CreateUserRequest
	if httpErr := bindAndValidate(c, &req); httpErr != nil {
		return respError(c, httpErr)
	}

	created, err := h.svc.CreateUser(c.Request().Context(), req.user())
	if err != nil {
		return h.fail(c, err, req.UserName)
	}
	return respSuccess(c, http.StatusCreated, created)
}

// ListUsers godoc
// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {object} model.Response{data=[]model.User}
// @Failure 500 {object} model.Response
// @Router /users [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.svc.ListUsers(c.Request().Context())
	if err != nil {
		return h.fail(c, err, "")
	}
	if users == nil {
		users = []model.User{}
	}
	return respSuccess(c, http.StatusOK, users)
}

// GetUser godoc
// @Summary Get user by id
// @Tags users
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} model.Response{data=model.User}
// @Failure 400 {object} model.Response
// @Failure 404 {object} model.Response
// @Router /users/{user_id} [get]
func (h *UserHandler) GetUser(c echo.Context) error {
	id, httpErr := userIDParam(c)
	if httpErr != nil {
		return respError(c, httpErr)
	}
	user, err := h.svc.GetUser(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err, "")
	}
	return respSuccess(c, http.StatusOK, user)
}

// UpdateUser godoc
// @Summary Update user
// @Tags users
// @Accept json
// @Produce json
// @Param user body UpdateUserRequest true "User payload"
// @Success 200 {object} model.Response{data=model.User}
// @Failure 400 {object} model.Response
// @Failure 404 {object} model.Response
// @Failure 500 {object} model.Response
// @Router /users [put]
func (h *UserHandler) UpdateUser(c echo.Context) error {
	var req UpdateUserRequest
	if httpErr := bindAndValidate(c, &req); httpErr != nil {
		return respError(c, httpErr)
	}

	user := req.user()
	user.UserID = req.UserID
	updated, err := h.svc.UpdateUser(c.Request().Context(), user)
	if err != nil {
		return h.fail(c, err, req.UserName)
	}
	return respSuccess(c, http.StatusOK, updated)
}

// DeleteUser godoc
// @Summary Delete user
// @Tags users
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} model.Response
// @Failure 400 {object} model.Response
// @Failure 404 {object} model.Response
// @Router /users/{user_id} [delete]
func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, httpErr := userIDParam(c)
	if httpErr != nil {
		return respError(c, httpErr)
	}
	if err := h.svc.DeleteUser(c.Request().Context(), id); err != nil {
		return h.fail(c, err, "")
	}
	return respSuccess(c, http.StatusOK, nil)
}

func bindAndValidate(c echo.Context, req interface{}) *apperrors.HTTPError {
	if err := c.Bind(req); err != nil {
		return apperrors.NewHTTPError(http.StatusBadRequest, apperrors.MessageInvalidBody, fmt.Sprintf("Invalid body: %v", err))
	}
	if err := c.Validate(req); err != nil {
		return apperrors.NewHTTPError(http.StatusBadRequest, apperrors.MessageInvalidBody, fmt.Sprintf("Invalid body: %v", err))
	}
	return nil
}

func (h *UserHandler) fail(c echo.Context, err error, userName string) error {
	httpErr := apperrors.MapErrorToHTTP(err)
	if httpErr.Message == apperrors.MessageUserExists && userName != "" {
		httpErr.Details = fmt.Sprintf("user with username %s already exists", userName)
	}
	if httpErr.StatusCode >= http.StatusInternalServerError {
		logging.FromContext(c.Request().Context()).WithError(err).Error("users request failed")
	}
	return respError(c, httpErr)
}

func userIDParam(c echo.Context) (int, *apperrors.HTTPError) {
	raw := c.Param("user_id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperrors.NewHTTPError(http.StatusBadRequest, apperrors.MessageInvalidUserID,
			fmt.Sprintf("user_id %q is not a valid user_id as it is not a number", raw))
	}
	return id, nil
}
