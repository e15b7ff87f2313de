package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/stryng/pkg/enum"
)

type outputFormat int

const (
	outputText outputFormat = iota
	outputJSON
	outputYAML
)

var outputFormats = enum.New(
	enum.Variant[outputFormat]{Value: outputText, Name: "text", Description: "plain text"},
	enum.Variant[outputFormat]{Value: outputJSON, Name: "json", Description: "indented JSON"},
	enum.Variant[outputFormat]{Value: outputYAML, Name: "yaml", Description: "YAML document"},
)

// render writes v in the selected format; text output is delegated to plain.
func render(w io.Writer, f outputFormat, v any, plain func(io.Writer) error) error {
	switch f {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return plain(w)
	}
}

// parseSelector resolves a command-line selector by variant name only.
// Numeric input is rejected even when it names a defined variant.
func parseSelector[T enum.Integer](set *enum.Set[T], s string) (T, error) {
	v, err := set.Parse(s, true)
	if err != nil {
		return 0, err
	}
	if !set.IsDefined(v) || !strings.EqualFold(set.Name(v), strings.TrimSpace(s)) {
		return 0, fmt.Errorf("%w: %q", enum.ErrUnknownName, s)
	}
	return v, nil
}
