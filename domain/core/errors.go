package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// ErrInvalidArgument is the root of the caller-input validation taxonomy.
	// Every precondition failure in the domain wraps it.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrEmptyInput is returned when a multivariate count receives no sequences.
	ErrEmptyInput = fmt.Errorf("%w: empty input", ErrInvalidArgument)

	// ErrLengthMismatch is returned when multivariate sequences differ in length.
	ErrLengthMismatch = fmt.Errorf("%w: length mismatch", ErrInvalidArgument)

	// ErrOutOfRange is returned when an estimator input falls outside its
	// valid range (non-positive sample size, successes beyond the sample,
	// confidence level outside (0,1)).
	ErrOutOfRange = fmt.Errorf("%w: out of range", ErrInvalidArgument)

	// Not found errors
	ErrNotFound       = errors.New("resource not found")
	ErrReportNotFound = fmt.Errorf("%w: report", ErrNotFound)
)

// Error constructors with context

func NewEmptyInputError(what string) error {
	return fmt.Errorf("%w: at least one %s must be provided", ErrEmptyInput, what)
}

func NewLengthMismatchError(lengths []int) error {
	return fmt.Errorf("%w: sequences have differing lengths %v", ErrLengthMismatch, lengths)
}

func NewOutOfRangeError(reason string) error {
	return fmt.Errorf("%w: %s", ErrOutOfRange, reason)
}

func NewNotFoundError(resource string, id string) error {
	return fmt.Errorf("%w: %s with id %s", ErrNotFound, resource, id)
}

// Error checking helpers

func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}
