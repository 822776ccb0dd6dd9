package model

import (
	"errors"
	"strings"
)

// UserStatus is the one-letter wire code of a user's lifecycle status.
type UserStatus string

const (
	StatusActive     UserStatus = "A"
	StatusInactive   UserStatus = "I"
	StatusTerminated UserStatus = "T"
)

// ErrInvalidStatus is returned when a value is neither a known code nor a known label.
var ErrInvalidStatus = errors.New("user status is incorrect")

var statusLabels = map[UserStatus]string{
	StatusActive:     "Active",
	StatusInactive:   "Inactive",
	StatusTerminated: "Terminated",
}

// Statuses returns the known status codes in display order.
func Statuses() []UserStatus {
	return []UserStatus{StatusActive, StatusInactive, StatusTerminated}
}

// StatusLabel returns the display label for code, or "" for an unknown code.
func StatusLabel(code UserStatus) string {
	return statusLabels[code]
}

// Label is shorthand for StatusLabel(s).
func (s UserStatus) Label() string {
	return StatusLabel(s)
}

// Valid reports whether s is one of the known codes.
func (s UserStatus) Valid() bool {
	_, ok := statusLabels[s]
	return ok
}

// ParseStatus accepts either a code ("A") or a label in any case ("active")
// and returns the matching code.
func ParseStatus(s string) (UserStatus, error) {
	if code := UserStatus(s); code.Valid() {
		return code, nil
	}
	for code, label := range statusLabels {
		if strings.EqualFold(s, label) {
			return code, nil
		}
	}
	return "", ErrInvalidStatus
}
