package handler

import (
	"github.com/labstack/echo/v4"

	apperrors "usersadmin/internal/errors"
	"usersadmin/internal/model"
)

func respSuccess(c echo.Context, code int, data interface{}) error {
	return c.JSON(code, model.Response{
		Code:    code,
		Message: apperrors.MessageSuccess,
		Data:    data,
	})
}

func respError(c echo.Context, e *apperrors.HTTPError) error {
	return c.JSON(e.StatusCode, e.ToResponse())
}
