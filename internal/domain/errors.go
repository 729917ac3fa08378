package domain

import (
	"errors"
	"fmt"
)

var ErrRecordNotFound = errors.New("record not found")
var ErrInvalidRequest = errors.New("invalid request")
var ErrConflict = errors.New("conflict")
var ErrInternal = errors.New("internal error")

// Error carries a user-readable message tied to one of the sentinel kinds so
// callers can branch with errors.Is while handlers surface the message as-is.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func NotFoundf(format string, args ...any) error {
	return &Error{Kind: ErrRecordNotFound, Message: fmt.Sprintf(format, args...)}
}

func Invalidf(format string, args ...any) error {
	return &Error{Kind: ErrInvalidRequest, Message: fmt.Sprintf(format, args...)}
}

func Conflictf(format string, args ...any) error {
	return &Error{Kind: ErrConflict, Message: fmt.Sprintf(format, args...)}
}

func Internalf(format string, args ...any) error {
	return &Error{Kind: ErrInternal, Message: fmt.Sprintf(format, args...)}
}
