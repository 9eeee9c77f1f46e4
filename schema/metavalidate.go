package schema

import (
	"bytes"
	"encoding/json"

	"github.com/fulmenhq/crucible-go/diagnostic"
)

// ValidateSchema validates a schema document against its own declared
// meta-schema (spec §4.C validateSchema): the document is compiled under
// a virtual in-memory URL, so a structural or meta-schema violation
// surfaces as a compile error rather than requiring a separate parse
// step. Grounded on gofulmen's NewValidator, which compiles ad hoc schema
// bytes the same way.
func ValidateSchema(content []byte) (ValidationResult, error) {
	value, err := decodeSchemaBytes(content)
	if err != nil {
		return ValidationResult{}, &diagnostic.SchemaValidationError{
			Source: diagnostic.SourceLibraryEngine,
			Diagnostics: []diagnostic.Diagnostic{{
				Severity: diagnostic.SeverityError,
				Message:  "parsing schema document: " + err.Error(),
				Source:   diagnostic.SourceLibraryEngine,
			}},
			Cause: err,
		}
	}

	asJSON, err := json.Marshal(value)
	if err != nil {
		return ValidationResult{}, err
	}

	const virtualURL = "mem://crucible-go/validate-schema.json"
	c := newCompiler()
	if err := c.AddResource(virtualURL, bytes.NewReader(asJSON)); err != nil {
		return ValidationResult{}, &diagnostic.SchemaValidationError{
			Source: diagnostic.SourceLibraryEngine,
			Diagnostics: []diagnostic.Diagnostic{{
				Severity: diagnostic.SeverityError,
				Message:  err.Error(),
			}},
			Cause: err,
		}
	}

	if _, err := c.Compile(virtualURL); err != nil {
		if verr, ok := AsValidationError(err); ok {
			ds := DiagnosticsFromValidationError(verr)
			return ValidationResult{Valid: false, Diagnostics: ds, Source: diagnostic.SourceLibraryEngine}, nil
		}
		ds := []diagnostic.Diagnostic{{Severity: diagnostic.SeverityError, Message: err.Error(), Source: diagnostic.SourceLibraryEngine}}
		return ValidationResult{Valid: false, Diagnostics: ds, Source: diagnostic.SourceLibraryEngine}, nil
	}

	return ValidationResult{Valid: true, Source: diagnostic.SourceLibraryEngine}, nil
}
