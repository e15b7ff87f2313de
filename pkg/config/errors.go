package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

var (
	// ErrParsingConfig is returned when environment variables cannot be parsed into the config struct.
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	// ErrInvalidConfigType is returned when the target is not a struct.
	ErrInvalidConfigType = errors.New("invalid config type")

	// ErrConfigNotLoaded is returned when a config could not be read back from cache.
	ErrConfigNotLoaded = errors.New("configuration has not been loaded")

	// ErrNilPointer is returned when a nil pointer is provided to Load.
	ErrNilPointer = errors.New("nil pointer provided to config loader")
)

// LoadError describes a failed parse of one configuration type.
// It matches ErrParsingConfig with errors.Is and unwraps to the env error.
type LoadError struct {
	Prefix string
	Type   string
	// Vars lists required variables that were unset or empty, prefix included.
	Vars []string
	// Fields lists struct fields whose values did not parse.
	Fields []string
	Err    error
}

func newLoadError(prefix, typ string, err error) *LoadError {
	le := &LoadError{Prefix: prefix, Type: typ, Err: err}

	causes := []error{err}
	var agg env.AggregateError
	if errors.As(err, &agg) {
		causes = agg.Errors
	}
	for _, c := range causes {
		var unset env.VarIsNotSetError
		var empty env.EmptyVarError
		var parse env.ParseError
		switch {
		case errors.As(c, &unset):
			le.Vars = append(le.Vars, unset.Key)
		case errors.As(c, &empty):
			le.Vars = append(le.Vars, empty.Key)
		case errors.As(c, &parse):
			le.Fields = append(le.Fields, parse.Name)
		}
	}
	return le
}

func (e *LoadError) Error() string {
	scope := e.Type
	if e.Prefix != "" {
		scope = fmt.Sprintf("%s (%s*)", e.Type, e.Prefix)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "config %s", scope)
	if len(e.Vars) > 0 {
		fmt.Fprintf(&b, ": missing %s", strings.Join(e.Vars, ", "))
	}
	if len(e.Fields) > 0 {
		fmt.Fprintf(&b, ": invalid %s", strings.Join(e.Fields, ", "))
	}
	fmt.Fprintf(&b, ": %v", e.Err)
	return b.String()
}

func (e *LoadError) Is(target error) bool {
	return target == ErrParsingConfig
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
