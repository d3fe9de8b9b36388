package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSpecification marks a caller contract violation: an enum
	// outside its closed set or a non-positive area. Retrying is pointless.
	ErrInvalidSpecification = errors.New("invalid project specification")

	// ErrEstimateNotFound is returned when a saved estimate does not exist.
	ErrEstimateNotFound = errors.New("estimate not found")
)

// InvalidSpecificationError names the offending field of a rejected
// ProjectSpecification. It matches ErrInvalidSpecification via errors.Is.
type InvalidSpecificationError struct {
	Field  string
	Value  any
	Reason string
}

func (e *InvalidSpecificationError) Error() string {
	return fmt.Sprintf("%s: field %s (value %#v): %s", ErrInvalidSpecification, e.Field, e.Value, e.Reason)
}

func (e *InvalidSpecificationError) Unwrap() error {
	return ErrInvalidSpecification
}

func newInvalidSpec(field string, value any, reason string) error {
	return &InvalidSpecificationError{Field: field, Value: value, Reason: reason}
}
