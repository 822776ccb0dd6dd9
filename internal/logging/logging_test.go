package logging

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromContextFallsBackToStandardLogger(t *testing.T) {
	assert.Same(t, stdEntry, FromContext(context.Background()))
}

func TestWithFieldsMerges(t *testing.T) {
	ctx := WithLogger(context.Background(), logrus.NewEntry(logrus.New()).WithField("a", 1))
	ctx = WithFields(ctx, logrus.Fields{"b": 2})

	data := FromContext(ctx).Data
	assert.Equal(t, 1, data["a"])
	assert.Equal(t, 2, data["b"])
}

func TestSetupLevels(t *testing.T) {
	logger := Setup("debug", "json")
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)

	logger = Setup("nonsense", "text")
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, logger.Formatter)
}

func TestMiddlewareTagsRequest(t *testing.T) {
	var buf bytes.Buffer
	base := logrus.New()
	base.SetOutput(&buf)

	e := echo.New()
	e.Use(middleware.RequestID())
	e.Use(Middleware(base))
	e.GET("/ping", func(c echo.Context) error {
		FromContext(c.Request().Context()).Info("pong")
		return c.NoContent(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Contains(t, buf.String(), "path=/ping")
	assert.Contains(t, buf.String(), "request_id="+rec.Header().Get(echo.HeaderXRequestID))
}
