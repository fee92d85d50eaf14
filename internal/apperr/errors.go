// Package apperr holds the error taxonomy shared by every use case. A failed
// operation never leaves partial state behind; the caller decides how to show it.
package apperr

import (
	"errors"
	"fmt"
)

const (
	ReasonProductRequired   = "product required"
	ReasonProductNotFound   = "product not found"
	ReasonInsufficientStock = "insufficient stock"
)

// ValidationError is a recoverable rejection of caller input.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func Validation(reason string) error {
	return &ValidationError{Reason: reason}
}

func Validationf(format string, args ...interface{}) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// NotFoundError reports a referenced entity that does not exist.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Entity, e.ID)
}

func NotFound(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}

func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// HasReason reports whether err is a ValidationError with the given reason.
func HasReason(err error, reason string) bool {
	var v *ValidationError
	return errors.As(err, &v) && v.Reason == reason
}

// Kind classifies err for presentation.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case IsValidation(err):
		return "validation"
	case IsNotFound(err):
		return "not_found"
	default:
		return "internal"
	}
}
