package errors

import (
	stderrors "errors"
	"fmt"
)

// Category represents the type of error.
type Category string

const (
	CategoryConfig  Category = "config"
	CategoryRouting Category = "routing"
	CategoryLink    Category = "link"
	CategoryHost    Category = "host"
	CategoryCLI     Category = "cli"
)

// NavError is a structured error with a code, suggestion, and documentation.
type NavError struct {
	// Code is a unique error identifier (e.g., "N101").
	Code string

	// Category is the error type (config, routing, etc.).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Example is code showing the correct approach.
	Example string

	// DocURL is a link to documentation about this error.
	DocURL string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *NavError) Error() string {
	msg := e.Message
	if e.Code != "" {
		msg = fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	if e.Wrapped != nil {
		msg += ": " + e.Wrapped.Error()
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *NavError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is a NavError with the same code.
func (e *NavError) Is(target error) bool {
	t, ok := target.(*NavError)
	if !ok || t.Code == "" {
		return false
	}
	return t.Code == e.Code
}

// WithSuggestion adds a fix suggestion to the error.
func (e *NavError) WithSuggestion(s string) *NavError {
	e.Suggestion = s
	return e
}

// WithExample adds a code example to the error.
func (e *NavError) WithExample(ex string) *NavError {
	e.Example = ex
	return e
}

// WithDetail replaces the template explanation with a specific one.
func (e *NavError) WithDetail(d string) *NavError {
	e.Detail = d
	return e
}

// Wrap wraps another error.
func (e *NavError) Wrap(err error) *NavError {
	e.Wrapped = err
	return e
}

// New creates a new NavError from a registered error code.
// Unknown codes produce an "Unknown error" with no category.
func New(code string) *NavError {
	template, ok := registry[code]
	if !ok {
		return &NavError{
			Code:    code,
			Message: "Unknown error",
		}
	}

	return &NavError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
		DocURL:   template.DocURL,
	}
}

// Newf creates a new NavError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *NavError {
	return &NavError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a NavError.
// An error that already is (or wraps) a NavError is returned as that NavError.
func FromError(err error, code string) *NavError {
	if err == nil {
		return nil
	}
	var ne *NavError
	if stderrors.As(err, &ne) {
		return ne
	}
	return New(code).Wrap(err)
}

// HasCode reports whether err is, or wraps, a NavError with the given code.
func HasCode(err error, code string) bool {
	var ne *NavError
	for err != nil {
		if !stderrors.As(err, &ne) {
			return false
		}
		if ne.Code == code {
			return true
		}
		err = ne.Wrapped
	}
	return false
}
