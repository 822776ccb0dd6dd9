package router

import (
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	echoSwagger "github.com/swaggo/echo-swagger"

	"usersadmin/internal/config"
	apperrors "usersadmin/internal/errors"
	"usersadmin/internal/handler"
	"usersadmin/internal/logging"
	"usersadmin/internal/model"
	"usersadmin/internal/view"
)

// Register wires the users REST API and its middleware.
func Register(e *echo.Echo, cfg *config.Config, logger *logrus.Logger, userHandler *handler.UserHandler) {
	useCommon(e, logger)

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{cfg.AdminOrigin},
		AllowMethods: []string{http.MethodGet, http.MethodPut, http.MethodPost, http.MethodDelete},
	}))

	e.Validator = &CustomValidator{validator: validator.New()}

	e.RouteNotFound("/*", func(c echo.Context) error {
		return c.JSON(http.StatusNotFound, model.Response{
			Code:    http.StatusNotFound,
			Message: apperrors.MessageInvalidEndpoint,
			Details: fmt.Sprintf("Endpoint %s does not exist", c.Request().URL.Path),
		})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	users := e.Group("/api/v1/users")
	users.GET("", userHandler.ListUsers)
	users.GET("/:user_id", userHandler.GetUser)
	users.POST("", userHandler.CreateUser)
	users.PUT("", userHandler.UpdateUser)
	users.DELETE("/:user_id", userHandler.DeleteUser)
}

// RegisterAdmin wires the browser facing admin pages.
func RegisterAdmin(e *echo.Echo, logger *logrus.Logger, renderer echo.Renderer, pageHandler *handler.PageHandler) {
	useCommon(e, logger)
	e.Renderer = renderer

	e.GET(view.RouteList, pageHandler.List)
	e.GET(view.RouteCreate, pageHandler.ShowForm)
	e.POST(view.RouteCreate, pageHandler.SubmitForm)
	e.GET(view.RouteEdit, pageHandler.ShowForm)
	e.POST(view.RouteEdit, pageHandler.SubmitForm)
	e.POST("/users/:id/delete", pageHandler.Delete)
}

func useCommon(e *echo.Echo, logger *logrus.Logger) {
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(logging.Middleware(logger))

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
