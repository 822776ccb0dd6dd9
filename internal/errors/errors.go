package errors

import (
	"errors"
	"net/http"

	"usersadmin/internal/model"
)

var (
	// ErrUserNotFound is returned when no user has the requested id.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserAlreadyExists is returned when creating a user whose name is taken.
	ErrUserAlreadyExists = errors.New("user already exists")
	// ErrUsernameCollision is returned when renaming a user to a name owned by another user.
	ErrUsernameCollision = errors.New("username is already in use")
	// ErrUserStatusIncorrect is returned when the status is neither a known code nor label.
	ErrUserStatusIncorrect = model.ErrInvalidStatus
)

// Envelope messages the backend answers with. The admin UI matches
// MessageUserExists literally.
const (
	MessageSuccess         = "Success"
	MessageInvalidBody     = "Invalid body"
	MessageInvalidUserID   = "Invalid user_id"
	MessageUserNotFound    = "User not found"
	MessageUserExists      = "User already exists"
	MessageIncorrectStatus = "Incorrect Status"
	MessageInternal        = "Internal Server Error"
	MessageInvalidEndpoint = "Invalid endpoint"
)

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Details    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, details string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Details:    details,
	}
}

// ToResponse converts an HTTPError to the response envelope.
func (e *HTTPError) ToResponse() model.Response {
	return model.Response{
		Code:    e.StatusCode,
		Message: e.Message,
		Details: e.Details,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, MessageUserNotFound, err.Error())
	case errors.Is(err, ErrUserAlreadyExists), errors.Is(err, ErrUsernameCollision):
		return NewHTTPError(http.StatusBadRequest, MessageUserExists, err.Error())
	case errors.Is(err, ErrUserStatusIncorrect):
		return NewHTTPError(http.StatusBadRequest, MessageIncorrectStatus, "Accepted statuses are: Active, A, Inactive, I, Terminated, T")
	default:
		return NewHTTPError(http.StatusInternalServerError, MessageInternal, "")
	}
}
