package enum

import "errors"

var (
	// ErrEmptyValue is returned by Parse for empty or blank input.
	ErrEmptyValue = errors.New("enum: value cannot be empty")

	// ErrUnknownName is returned by Parse when the input matches no variant.
	ErrUnknownName = errors.New("enum: unknown variant")
)
