package errors

import "fmt"

// UnknownMessage is the placeholder used when a failure carries no message
// that can be derived (for example a panic with a non-error value).
const UnknownMessage = "unknown error"

// Error is the uniform application error type. It wraps a human-readable
// message and nothing else; every public entry point of the binding
// guarantees that only this kind escapes.
type Error struct {
	// Message is the human-readable error message.
	Message string
}

// Error returns the message.
func (e *Error) Error() string { return e.Message }

// New creates an Error with the given message. An empty message is replaced
// with UnknownMessage so the kind never renders blank.
func New(message string) *Error {
	if message == "" {
		message = UnknownMessage
	}
	return &Error{Message: message}
}

// Errorf creates an Error with a formatted message.
func Errorf(format string, args ...any) *Error {
	return New(fmt.Sprintf(format, args...))
}

// Wrap normalizes err into the uniform kind. A nil error stays nil; an error
// that already is an *Error passes through unchanged (never double-wrapped);
// anything else becomes an Error carrying the foreign error's message.
func Wrap(err error) error {
	if err == nil {
		return nil
	}
	if uniform, ok := err.(*Error); ok {
		return uniform
	}
	return New(err.Error())
}

// IsUniform reports whether err is already the uniform kind.
func IsUniform(err error) bool {
	_, ok := err.(*Error)
	return ok
}
