// Package logging configures logrus and carries a request scoped entry in a context.
package logging

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"
)

type contextLoggerKey struct{}

var stdEntry = logrus.NewEntry(logrus.StandardLogger())

// Setup configures the standard logger level and formatter. Unknown levels
// fall back to info.
func Setup(level, format string) *logrus.Logger {
	logger := logrus.StandardLogger()

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logger.SetLevel(lvl)

	if strings.EqualFold(format, "json") {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return logger
}

// WithLogger returns a new context with the provided entry.
func WithLogger(ctx context.Context, entry *logrus.Entry) context.Context {
	return context.WithValue(ctx, contextLoggerKey{}, entry)
}

// WithFields merges fields into the entry already stored in ctx.
func WithFields(ctx context.Context, fields logrus.Fields) context.Context {
	return WithLogger(ctx, FromContext(ctx).WithFields(fields))
}

// FromContext retrieves the entry stored in ctx, or the standard logger entry.
func FromContext(ctx context.Context) *logrus.Entry {
	if ctx == nil {
		return stdEntry
	}
	if entry, ok := ctx.Value(contextLoggerKey{}).(*logrus.Entry); ok {
		return entry
	}
	return stdEntry
}
