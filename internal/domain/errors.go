package domain

import (
	"errors"
	"strings"
)

var (
	ErrPermissionDenied   = errors.New("permission denied")
	ErrInvalidDate        = errors.New("invalid date format")
	ErrUserNotFound       = errors.New("user not found")
	ErrNoDateSpecified    = errors.New("no date specified")
	ErrNotBirthdayChannel = errors.New("not a birthday channel")
)

// AmbiguousUserError is returned when a fuzzy name matches several roster entries.
type AmbiguousUserError struct {
	Query string
	Names []string
}

func (e *AmbiguousUserError) Error() string {
	return "ambiguous user " + e.Query + ": " + strings.Join(e.Names, ", ")
}

// UserNotFoundError carries the name nobody in the roster matched.
type UserNotFoundError struct {
	Query string
}

func (e *UserNotFoundError) Error() string {
	return "user not found: " + e.Query
}

func (e *UserNotFoundError) Unwrap() error {
	return ErrUserNotFound
}
