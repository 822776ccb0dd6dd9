package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapErrorToHTTP(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{"not found", ErrUserNotFound, http.StatusNotFound, MessageUserNotFound},
		{"wrapped not found", fmt.Errorf("get user 4: %w", ErrUserNotFound), http.StatusNotFound, MessageUserNotFound},
		{"already exists", ErrUserAlreadyExists, http.StatusBadRequest, MessageUserExists},
		{"collision", ErrUsernameCollision, http.StatusBadRequest, MessageUserExists},
		{"status", ErrUserStatusIncorrect, http.StatusBadRequest, MessageIncorrectStatus},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, MessageInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpErr := MapErrorToHTTP(tt.err)
			assert.Equal(t, tt.wantStatus, httpErr.StatusCode)
			assert.Equal(t, tt.wantMessage, httpErr.Message)

			resp := httpErr.ToResponse()
			assert.Equal(t, tt.wantStatus, resp.Code)
			assert.Nil(t, resp.Data)
		})
	}
}

func TestConflictMessageIsStable(t *testing.T) {
	assert.Equal(t, "User already exists", MessageUserExists)
}
