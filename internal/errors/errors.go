// Package errors classifies engine failures so callers can tell a rejected
// action apart from bad input or a broken dependency
package errors

import (
	"errors"
	"fmt"
	"maps"
)

// Code categorizes an error
type Code string

const (
	CodeUnknown Code = "unknown"

	// CodeInvalidAction rejects a request against the supplied state, such
	// as casting with no slot left or an off hand attack without a light
	// weapon. Nothing was rolled or changed.
	CodeInvalidAction Code = "invalid_action"

	// CodeRuleViolation is a rejection the player should see, such as
	// concentrating on two spells
	CodeRuleViolation Code = "rule_violation"

	CodeInvalidArgument Code = "invalid_argument"
	CodeNotFound        Code = "not_found"
	CodeInternal        Code = "internal"
)

// Error carries a code, a message and optional metadata such as the
// participant or action involved
type Error struct {
	Code    Code
	Message string
	Cause   error
	Meta    map[string]any
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// WithMeta adds a metadata entry and returns e for chaining
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]any)
	}
	e.Meta[key] = value
	return e
}

// New creates an error with the given code
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf creates an error with a formatted message
func Newf(code Code, format string, args ...any) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap adds context to err. The code and metadata of a wrapped *Error are
// kept. A nil err returns nil; check err first, since the nil *Error is not
// a nil error once returned as one.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	wrapped := &Error{Code: CodeUnknown, Message: message, Cause: err}
	var inner *Error
	if errors.As(err, &inner) {
		wrapped.Code = inner.Code
		wrapped.Meta = maps.Clone(inner.Meta)
	}
	return wrapped
}

// Wrapf is Wrap with a formatted message
func Wrapf(err error, format string, args ...any) *Error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode wraps err and reclassifies it
func WrapWithCode(err error, code Code, message string) *Error {
	wrapped := Wrap(err, message)
	if wrapped != nil {
		wrapped.Code = code
	}
	return wrapped
}

func InvalidAction(message string) *Error { return New(CodeInvalidAction, message) }

func InvalidActionf(format string, args ...any) *Error {
	return Newf(CodeInvalidAction, format, args...)
}

func RuleViolation(message string) *Error { return New(CodeRuleViolation, message) }

func RuleViolationf(format string, args ...any) *Error {
	return Newf(CodeRuleViolation, format, args...)
}

func NotFound(message string) *Error { return New(CodeNotFound, message) }

func NotFoundf(format string, args ...any) *Error {
	return Newf(CodeNotFound, format, args...)
}

func InvalidArgument(message string) *Error { return New(CodeInvalidArgument, message) }

func InvalidArgumentf(format string, args ...any) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

func Internalf(format string, args ...any) *Error {
	return Newf(CodeInternal, format, args...)
}

// GetCode returns the code of the outermost *Error in the chain
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeUnknown
}

// Is reports whether err carries the code
func Is(err error, code Code) bool {
	return err != nil && GetCode(err) == code
}

func IsInvalidAction(err error) bool   { return Is(err, CodeInvalidAction) }
func IsRuleViolation(err error) bool   { return Is(err, CodeRuleViolation) }
func IsNotFound(err error) bool        { return Is(err, CodeNotFound) }
func IsInvalidArgument(err error) bool { return Is(err, CodeInvalidArgument) }
func IsInternal(err error) bool        { return Is(err, CodeInternal) }

// IsRejection reports whether the engine turned an action down. State is
// unchanged and the caller may submit a different action.
func IsRejection(err error) bool {
	return IsInvalidAction(err) || IsRuleViolation(err)
}

// GetMeta returns the metadata of the outermost *Error in the chain
func GetMeta(err error) map[string]any {
	var e *Error
	if errors.As(err, &e) {
		return e.Meta
	}
	return nil
}
