package validator

import (
	"encoding/xml"
	"errors"
	"io"
	"strings"

	"github.com/valyala/fastjson"
)

// IsJson reports whether s is a single well-formed JSON value.
func IsJson(s string) bool {
	if IsNullOrWhiteSpace(s) {
		return false
	}
	return fastjson.Validate(s) == nil
}

// IsXml reports whether s is a well-formed XML document: exactly one root
// element, with only white space, comments, processing instructions and
// directives outside it.
func IsXml(s string) bool {
	if IsNullOrWhiteSpace(s) {
		return false
	}

	dec := xml.NewDecoder(strings.NewReader(s))
	depth, roots := 0, 0
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return roots == 1 && depth == 0
		}
		if err != nil {
			return false
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if depth == 0 {
				roots++
				if roots > 1 {
					return false
				}
			}
			depth++
		case xml.EndElement:
			depth--
		case xml.CharData:
			if depth == 0 && len(strings.TrimSpace(string(t))) > 0 {
				return false
			}
		}
	}
}
