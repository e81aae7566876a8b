package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Not found errors
	ErrNotFound         = errors.New("resource not found")
	ErrSurveyNotFound   = fmt.Errorf("%w: survey", ErrNotFound)
	ErrQuestionNotFound = fmt.Errorf("%w: question", ErrNotFound)
	ErrResponseNotFound = fmt.Errorf("%w: response", ErrNotFound)

	// Validation errors
	ErrInvalidRule      = errors.New("invalid logic rule")
	ErrMismatchedPairs  = errors.New("paired samples must have equal length")
	ErrInsufficientData = errors.New("insufficient data for analysis")

	// Formula errors
	ErrFormulaParse   = errors.New("formula parse error")
	ErrFormulaOperand = errors.New("formula operand is not a finite number")
)

// Error constructors with context
func NewNotFoundError(resource string, id string) error {
	return fmt.Errorf("%w: %s with id %s", ErrNotFound, resource, id)
}

func NewValidationError(field string, reason string) error {
	return fmt.Errorf("validation failed for %s: %s", field, reason)
}

// Error checking helpers
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsFormulaError(err error) bool {
	return errors.Is(err, ErrFormulaParse) || errors.Is(err, ErrFormulaOperand)
}
