package api

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

// Error is a non-2xx answer from the backend. Message and Details are taken
// from the envelope when the body is one and are empty otherwise.
type Error struct {
	StatusCode int
	Body       []byte
	Message    string
	Details    string
}

func newError(status int, body []byte) *Error {
	e := &Error{StatusCode: status, Body: body}
	if gjson.ValidBytes(body) {
		e.Message = gjson.GetBytes(body, "message").String()
		e.Details = gjson.GetBytes(body, "details").String()
	}
	return e
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("users api: status %d", e.StatusCode)
	}
	return fmt.Sprintf("users api: status %d: %s", e.StatusCode, e.Message)
}

// MessageOf returns the backend failure message carried by err, if any.
func MessageOf(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return ""
}
