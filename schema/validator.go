package schema

import (
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/fulmenhq/crucible-go/diagnostic"
)

// newCompiler returns a jsonschema compiler whose LoadURL resolves
// "file://" URLs and bare filesystem paths directly, so that a vendored
// schema's "$ref" to a sibling file resolves without a network fetch.
// Standard "https://json-schema.org/..." meta-schema URLs are left to the
// library's own built-in draft-2020-12 and draft-07 resources; this
// package does not vendor meta-schema documents (see DESIGN.md).
func newCompiler() *jsonschema.Compiler {
	c := jsonschema.NewCompiler()
	c.LoadURL = localLoader
	return c
}

func localLoader(rawURL string) (io.ReadCloser, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("schema: parsing ref url %q: %w", rawURL, err)
	}
	switch u.Scheme {
	case "file", "":
		path := u.Path
		if path == "" {
			path = rawURL
		}
		f, err := os.Open(filepath.FromSlash(path))
		if err != nil {
			return nil, fmt.Errorf("schema: opening %q: %w", path, err)
		}
		return f, nil
	default:
		return nil, fmt.Errorf("schema: unsupported ref scheme %q (only file:// refs between vendored schemas are resolved locally)", u.Scheme)
	}
}

// compileSchemaFile compiles the schema document at path. Refs resolve
// relative to path itself via localLoader's file:// handling.
func compileSchemaFile(path string) (*jsonschema.Schema, error) {
	c := newCompiler()
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	return c.Compile(fileURL(absPath))
}

func fileURL(absPath string) string {
	return "file://" + filepath.ToSlash(absPath)
}

// validateAgainst validates data against sch and translates any
// [*jsonschema.ValidationError] tree into flat diagnostics.
func validateAgainst(sch *jsonschema.Schema, data any) []diagnostic.Diagnostic {
	// jsonschema validates native Go JSON values (map[string]any,
	// []any, float64, string, bool, nil); round-trip through
	// encoding/json so YAML-sourced maps (map[string]any with nested
	// map[string]any, already compatible) and structs alike satisfy it.
	normalized, err := roundTripJSON(data)
	if err != nil {
		return []diagnostic.Diagnostic{{
			Severity: diagnostic.SeverityError,
			Message:  fmt.Sprintf("instance is not JSON-representable: %v", err),
			Source:   diagnostic.SourceLibraryEngine,
		}}
	}

	if err := sch.Validate(normalized); err != nil {
		verr, ok := err.(*jsonschema.ValidationError)
		if !ok {
			return []diagnostic.Diagnostic{{
				Severity: diagnostic.SeverityError,
				Message:  err.Error(),
				Source:   diagnostic.SourceLibraryEngine,
			}}
		}
		return DiagnosticsFromValidationError(verr)
	}
	return nil
}

func roundTripJSON(data any) (any, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// DiagnosticsFromValidationError flattens the causal tree a
// *jsonschema.ValidationError carries into leaf-level diagnostics: each
// leaf (a cause with no further causes) becomes one diagnostic, pointer
// from InstanceLocation, keyword from the last segment of
// KeywordLocation.
func DiagnosticsFromValidationError(verr *jsonschema.ValidationError) []diagnostic.Diagnostic {
	var out []diagnostic.Diagnostic
	var walk func(e *jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		if len(e.Causes) == 0 {
			out = append(out, diagnostic.Diagnostic{
				Severity: diagnostic.SeverityError,
				Message:  e.Message,
				Pointer:  e.InstanceLocation,
				Keyword:  lastKeywordSegment(e.KeywordLocation),
				Source:   diagnostic.SourceLibraryEngine,
			})
			return
		}
		for _, c := range e.Causes {
			walk(c)
		}
	}
	walk(verr)
	if len(out) == 0 {
		out = append(out, diagnostic.Diagnostic{
			Severity: diagnostic.SeverityError,
			Message:  verr.Error(),
			Pointer:  verr.InstanceLocation,
			Source:   diagnostic.SourceLibraryEngine,
		})
	}
	return out
}

// AsValidationError unwraps a compile-time [*jsonschema.SchemaError] to
// find the [*jsonschema.ValidationError] reported when a schema document
// itself fails meta-schema validation, mirroring the type-switch gofulmen
// uses in its own schema validator.
func AsValidationError(err error) (*jsonschema.ValidationError, bool) {
	if verr, ok := err.(*jsonschema.ValidationError); ok {
		return verr, true
	}
	if serr, ok := err.(*jsonschema.SchemaError); ok {
		if verr, ok := serr.Err.(*jsonschema.ValidationError); ok {
			return verr, true
		}
	}
	return nil, false
}

func lastKeywordSegment(loc string) string {
	parts := strings.Split(loc, "/")
	for i := len(parts) - 1; i >= 0; i-- {
		if parts[i] != "" {
			return parts[i]
		}
	}
	return ""
}

// loadStructuredFile reads and decodes path as JSON or YAML, by
// extension. It mirrors catalog's unexported helper of the same name;
// duplicated here since the registry must decode arbitrary data files
// (not just vendored schema assets) for ValidateFileBySchemaID.
func loadStructuredFile(path string) (any, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	lower := strings.ToLower(path)
	var v any
	if strings.HasSuffix(lower, ".json") {
		err = json.Unmarshal(raw, &v)
	} else {
		err = yaml.Unmarshal(raw, &v)
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

func writeTempJSON(data any) (path string, cleanup func(), err error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return "", nil, err
	}
	f, err := os.CreateTemp("", "crucible-validate-*.json")
	if err != nil {
		return "", nil, err
	}
	if _, err := f.Write(raw); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", nil, err
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", nil, err
	}
	return f.Name(), func() { os.Remove(f.Name()) }, nil
}
