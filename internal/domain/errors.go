package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation error")
	ErrConflict    = errors.New("conflict")
	ErrForbidden   = errors.New("forbidden")
	ErrUnavailable = errors.New("unavailable")

	// ErrSubmissionInFlight is returned when a submit is attempted while a
	// previous submission of the same draft has not resolved yet, or after
	// it resolved with a redirect.
	ErrSubmissionInFlight = errors.New("submission already in flight")

	// ErrLimitExceeded is returned when a configured capacity is reached.
	ErrLimitExceeded = errors.New("limit exceeded")

	// ErrClosed is returned by operations on a draft that has been torn down.
	ErrClosed = errors.New("draft closed")
)

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		if field == "" {
			parts = append(parts, msg)
			continue
		}
		parts = append(parts, field+": "+msg)
	}
	sort.Strings(parts)
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// RemoteError is a failed admin action call that carried a server-supplied
// message. Err is the mapped sentinel (ErrUnavailable, ErrForbidden, ...)
// so errors.Is keeps working on the wrapped value.
type RemoteError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *RemoteError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("remote error (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("remote error (status %d): %s: %v", e.StatusCode, e.Message, e.Err)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

// RemoteMessage returns the server-supplied message carried anywhere in
// err's chain, or "" when there is none.
func RemoteMessage(err error) string {
	var rerr *RemoteError
	if errors.As(err, &rerr) {
		return rerr.Message
	}
	return ""
}
