package schema

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/goccy/go-yaml"
)

// NormalizeOptions controls [NormalizeSchema]'s output shape.
type NormalizeOptions struct {
	// Compact emits single-line JSON with no indentation. The default
	// (false) emits two-space-indented JSON.
	Compact bool
}

// NormalizeSchema parses content (JSON or YAML, auto-detected) and
// re-serializes it as canonical JSON: object keys sorted
// lexicographically at every nesting level, array element order
// preserved, UTF-8 without a byte-order mark (spec §4.C
// normalizeSchema). encoding/json already sorts map keys on Marshal, so
// canonicalization falls out of the decode/re-encode round-trip.
func NormalizeSchema(content []byte, opts NormalizeOptions) ([]byte, error) {
	value, err := decodeSchemaBytes(content)
	if err != nil {
		return nil, err
	}

	if opts.Compact {
		return json.Marshal(value)
	}
	return json.MarshalIndent(value, "", "  ")
}

// CompareSchemas reports whether a and b are canonically identical: both
// are normalized (compact) and compared byte-for-byte. It returns an
// error only if either input fails to parse.
func CompareSchemas(a, b []byte) (bool, error) {
	na, err := NormalizeSchema(a, NormalizeOptions{Compact: true})
	if err != nil {
		return false, err
	}
	nb, err := NormalizeSchema(b, NormalizeOptions{Compact: true})
	if err != nil {
		return false, err
	}
	return bytes.Equal(na, nb), nil
}

// decodeSchemaBytes strips a UTF-8 BOM if present, then decodes content
// as JSON if it looks like JSON (leading '{' or '['), otherwise YAML.
func decodeSchemaBytes(content []byte) (any, error) {
	content = stripBOM(content)

	trimmed := strings.TrimSpace(string(content))
	var value any
	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		if err := json.Unmarshal(content, &value); err != nil {
			return nil, err
		}
		return value, nil
	}
	if err := yaml.Unmarshal(content, &value); err != nil {
		return nil, err
	}
	return value, nil
}

func stripBOM(b []byte) []byte {
	const bom = "\xef\xbb\xbf"
	if len(b) >= 3 && string(b[:3]) == bom {
		return b[3:]
	}
	return b
}
