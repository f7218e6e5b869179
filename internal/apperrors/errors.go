package apperrors

import (
	"errors"
	"fmt"
)

type Kind string

const (
	KindNotFound                 Kind = "not_found"
	KindInvalidState             Kind = "invalid_state"
	KindValidation               Kind = "validation"
	KindUnsupportedContactMethod Kind = "unsupported_contact_method"
	KindInternal                 Kind = "internal"
)

// Error carries a client-facing message and a Kind the handlers map to an
// HTTP status. Internal errors keep the cause for logging but the message
// shown to callers stays generic.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NotFound(format string, args ...interface{}) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func InvalidState(format string, args ...interface{}) *Error {
	return &Error{Kind: KindInvalidState, Message: fmt.Sprintf(format, args...)}
}

func Validation(format string, args ...interface{}) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func UnsupportedContactMethod(format string, args ...interface{}) *Error {
	return &Error{Kind: KindUnsupportedContactMethod, Message: fmt.Sprintf(format, args...)}
}

func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: "internal error", Err: err}
}

// KindOf classifies any error; unknown errors count as internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
