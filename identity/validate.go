package identity

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/fulmenhq/crucible-go/diagnostic"
	"github.com/fulmenhq/crucible-go/schema"
)

// ValidateFile reads path (YAML or JSON, by extension) and validates it
// against the embedded identity schema (spec §4.F / "Identity file").
func ValidateFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return &diagnostic.AppIdentityError{Reason: diagnostic.AppIdentityReasonNotFound, IdentityPath: path, Cause: err}
	}
	var v any
	if strings.HasSuffix(strings.ToLower(path), ".json") {
		err = json.Unmarshal(raw, &v)
	} else {
		err = yaml.Unmarshal(raw, &v)
	}
	if err != nil {
		return &diagnostic.AppIdentityError{Reason: diagnostic.AppIdentityReasonInvalid, IdentityPath: path, Cause: err}
	}
	return validateDecoded(path, v)
}

// ValidateIdentity validates an in-memory [Identity] against the embedded
// schema. It wraps the value in the identityFile envelope the schema
// expects (an "app"-keyed object, optionally with "metadata"), mirroring
// the file shape rather than the flattened Go struct.
func ValidateIdentity(id Identity) error {
	file := identityFile{Metadata: id.Metadata}
	file.App.BinaryName = id.BinaryName
	file.App.Vendor = id.Vendor
	file.App.EnvPrefix = id.EnvPrefix
	file.App.ConfigName = id.ConfigName
	file.App.Description = id.Description

	raw, err := json.Marshal(file)
	if err != nil {
		return &diagnostic.AppIdentityError{Reason: diagnostic.AppIdentityReasonInvalid, Cause: err}
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return &diagnostic.AppIdentityError{Reason: diagnostic.AppIdentityReasonInvalid, Cause: err}
	}
	return validateDecoded("", v)
}

func validateDecoded(path string, v any) error {
	sch, err := compiledIdentitySchema()
	if err != nil {
		return &diagnostic.AppIdentityError{Reason: diagnostic.AppIdentityReasonInvalid, IdentityPath: path, Cause: err}
	}
	if err := sch.Validate(v); err != nil {
		if verr, ok := schema.AsValidationError(err); ok {
			ds := schema.DiagnosticsFromValidationError(verr)
			return &diagnostic.AppIdentityError{
				Reason:       diagnostic.AppIdentityReasonInvalid,
				IdentityPath: path,
				Cause:        fieldError(ds, err),
			}
		}
		return &diagnostic.AppIdentityError{Reason: diagnostic.AppIdentityReasonInvalid, IdentityPath: path, Cause: err}
	}
	return nil
}

// fieldError builds a compact, stable error message from diagnostics
// (only the first error-severity diagnostic, mirroring gofulmen's
// single-message FieldError surface) while preserving the original error
// as the wrapped cause.
func fieldError(ds []diagnostic.Diagnostic, cause error) error {
	for _, d := range ds {
		if d.Severity == diagnostic.SeverityError {
			return &fieldValidationError{pointer: d.Pointer, keyword: d.Keyword, message: d.Message, cause: cause}
		}
	}
	return cause
}

type fieldValidationError struct {
	pointer string
	keyword string
	message string
	cause   error
}

func (e *fieldValidationError) Error() string {
	field := e.pointer
	if field == "" {
		field = e.keyword
	}
	if field == "" {
		return e.message
	}
	return field + ": " + e.message
}

func (e *fieldValidationError) Unwrap() error { return e.cause }
