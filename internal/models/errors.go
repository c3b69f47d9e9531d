package models

import (
	"errors"
	"strings"
)

// ValidationError is a field-scoped input error; the operation is not attempted.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Field: field, Message: msg}
}

// ValidationErrors collects every failed field of one payload.
type ValidationErrors []*ValidationError

func (errs ValidationErrors) Error() string {
	parts := make([]string, 0, len(errs))
	for _, e := range errs {
		parts = append(parts, e.Error())
	}
	return strings.Join(parts, "; ")
}

// ErrOrNil keeps a nil slice from turning into a non-nil error interface.
func (errs ValidationErrors) ErrOrNil() error {
	if len(errs) == 0 {
		return nil
	}
	return errs
}

var (
	ErrPlanNotFound        = errors.New("plan not found")
	ErrInstallmentNotFound = errors.New("installment not found")
	ErrDuplicatePlan       = errors.New("plan already exists")
)
