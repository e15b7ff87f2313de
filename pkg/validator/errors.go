package validator

import (
	"errors"
	"fmt"
)

var (
	// ErrValidationFailed is returned when validation fails but no specific error is provided.
	ErrValidationFailed = errors.New("validation failed")

	// ErrInvalidPattern is returned when a regular expression supplied by the caller does not compile.
	ErrInvalidPattern = errors.New("invalid regular expression pattern")

	// ErrUnknownCheck is returned when a named check is not registered.
	ErrUnknownCheck = errors.New("unknown check")
)

// PatternError describes a pattern that failed to compile.
// It matches ErrInvalidPattern with errors.Is.
type PatternError struct {
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("%s %q: %v", ErrInvalidPattern.Error(), e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() error { return e.Err }

func (e *PatternError) Is(target error) bool { return target == ErrInvalidPattern }
