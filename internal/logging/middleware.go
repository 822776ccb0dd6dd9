package logging

import (
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// Middleware stores an entry tagged with the request id and route in the
// request context so handlers and views log with the same fields.
func Middleware(base *logrus.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			entry := logrus.NewEntry(base).WithFields(logrus.Fields{
				"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
				"method":     req.Method,
				"path":       req.URL.Path,
			})
			c.SetRequest(req.WithContext(WithLogger(req.Context(), entry)))
			return next(c)
		}
	}
}
