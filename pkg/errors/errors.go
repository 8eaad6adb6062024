package errors

import (
	goerrors "errors"
	"fmt"
)

// ContextError annotates an error with the operation that caused it. Chains
// of ContextErrors read from the outermost operation down to the root cause.
type ContextError struct {
	Context string
	Err     error
}

func (err ContextError) Error() string {
	return fmt.Sprintf("%s: %s", err.Context, err.Err)
}

func (err ContextError) Unwrap() error {
	return err.Err
}

// WithContext wraps err with a description of the operation that failed.
func WithContext(err error, context string) error {
	return ContextError{Context: context, Err: err}
}

// New returns an error with the given message.
func New(message string) error {
	return goerrors.New(message)
}

// RootCause returns the innermost error in a chain of ContextErrors.
func RootCause(err error) error {
	for {
		contextErr, ok := err.(ContextError)
		if !ok {
			return err
		}
		err = contextErr.Err
	}
}

// A FriendlyError is an error whose message is meant to be read by end
// users, so it's printed without the context chain.
type FriendlyError struct {
	Message string
}

func (err FriendlyError) Error() string {
	return err.Message
}

// FriendlyMessage returns the user-facing message.
func (err FriendlyError) FriendlyMessage() string {
	return err.Message
}

// NewFriendlyError creates a FriendlyError from a format string.
func NewFriendlyError(format string, args ...interface{}) error {
	return FriendlyError{Message: fmt.Sprintf(format, args...)}
}

type friendlier interface {
	FriendlyMessage() string
}

// GetPrintableMessage returns the message that should be shown to the user
// for err. If any error in the context chain is friendly, its message is
// used on its own. Otherwise, the full chain is printed.
func GetPrintableMessage(err error) string {
	for walk := err; walk != nil; {
		if friendly, ok := walk.(friendlier); ok {
			return friendly.FriendlyMessage()
		}

		contextErr, ok := walk.(ContextError)
		if !ok {
			break
		}
		walk = contextErr.Err
	}
	return err.Error()
}
