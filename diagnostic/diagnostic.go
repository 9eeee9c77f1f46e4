package diagnostic

import (
	"fmt"
	"strings"
)

// Severity classifies a single validation finding.
type Severity string

const (
	SeverityError Severity = "ERROR"
	SeverityWarn  Severity = "WARN"
	SeverityInfo  Severity = "INFO"
)

// Source identifies which validation engine produced a diagnostic.
type Source string

const (
	SourceLibraryEngine  Source = "library-engine"
	SourceExternalBinary Source = "external-binary"
)

// Diagnostic is a single structured validation finding (spec §3 "Validation
// Diagnostic").
type Diagnostic struct {
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
	Pointer  string   `json:"pointer,omitempty"`
	Keyword  string   `json:"keyword,omitempty"`
	Source   Source   `json:"source,omitempty"`
}

// Suggestion is a ranked "did you mean" candidate (spec §3 "Suggestion").
type Suggestion struct {
	Value string  `json:"value"`
	Score float64 `json:"score"`
}

// HasError reports whether any diagnostic in ds carries [SeverityError].
func HasError(ds []Diagnostic) bool {
	for _, d := range ds {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

// AssetNotFoundError is raised when a catalog lookup by ID fails.
type AssetNotFoundError struct {
	AssetID     string
	Category    string
	Suggestions []Suggestion
}

func (e *AssetNotFoundError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "asset not found: %s/%s", e.Category, e.AssetID)
	if len(e.Suggestions) > 0 {
		sb.WriteString(" (did you mean: ")
		for i, s := range e.Suggestions {
			if i > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%s (%.0f%%)", s.Value, s.Score*100)
		}
		sb.WriteString("?)")
	}
	return sb.String()
}

// InvalidAssetIdError is raised when an asset ID fails the structural or
// extension invariants for its category.
type InvalidAssetIdError struct {
	AssetID  string
	Category string
	Reason   string
}

func (e *InvalidAssetIdError) Error() string {
	return fmt.Sprintf("invalid asset id %q for category %q: %s", e.AssetID, e.Category, e.Reason)
}

// SchemaValidationError carries every diagnostic accumulated while loading,
// compiling, or validating a schema, plus the originating cause.
type SchemaValidationError struct {
	SchemaID    string
	Diagnostics []Diagnostic
	Source      Source
	Cause       error
}

func (e *SchemaValidationError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "schema validation failed")
	if e.SchemaID != "" {
		fmt.Fprintf(&sb, " for %q", e.SchemaID)
	}
	if len(e.Diagnostics) > 0 {
		fmt.Fprintf(&sb, ": %d diagnostic(s)", len(e.Diagnostics))
	}
	if e.Cause != nil {
		fmt.Fprintf(&sb, ": %v", e.Cause)
	}
	return sb.String()
}

func (e *SchemaValidationError) Unwrap() error { return e.Cause }

// ExportErrorReason classifies why [SchemaExportError] occurred.
type ExportErrorReason string

const (
	ExportReasonFileExists       ExportErrorReason = "FILE_EXISTS"
	ExportReasonWriteFailed      ExportErrorReason = "WRITE_FAILED"
	ExportReasonInvalidFormat    ExportErrorReason = "INVALID_FORMAT"
	ExportReasonProvenanceFailed ExportErrorReason = "PROVENANCE_FAILED"
	ExportReasonUnknown          ExportErrorReason = "UNKNOWN"
)

// SchemaExportError is raised by exportSchema (spec §4.C).
type SchemaExportError struct {
	Reason  ExportErrorReason
	OutPath string
	Cause   error
}

func (e *SchemaExportError) Error() string {
	msg := fmt.Sprintf("schema export failed (%s)", e.Reason)
	if e.OutPath != "" {
		msg += ": " + e.OutPath
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *SchemaExportError) Unwrap() error { return e.Cause }

// FoundryCatalogError wraps a failure loading or parsing one of the foundry
// reference catalogs (patterns, MIME types, countries, HTTP statuses).
type FoundryCatalogError struct {
	Catalog string
	Cause   error
}

func (e *FoundryCatalogError) Error() string {
	msg := fmt.Sprintf("foundry catalog error: %s", e.Catalog)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *FoundryCatalogError) Unwrap() error { return e.Cause }

// SimilarityError wraps a failure in the text-similarity engine. Catalog is
// always "similarity".
type SimilarityError struct {
	Catalog string
	Cause   error
}

func (e *SimilarityError) Error() string {
	msg := fmt.Sprintf("similarity error: %s", e.Catalog)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *SimilarityError) Unwrap() error { return e.Cause }

// AppIdentityReason classifies why [AppIdentityError] occurred.
type AppIdentityReason string

const (
	AppIdentityReasonNotFound          AppIdentityReason = "not_found"
	AppIdentityReasonInvalid           AppIdentityReason = "invalid"
	AppIdentityReasonAlreadyRegistered AppIdentityReason = "already_registered"
)

// AppIdentityError is raised by the identity resolver (spec §4.F).
type AppIdentityError struct {
	Reason        AppIdentityReason
	IdentityPath  string
	SearchedPaths []string
	Cause         error
}

func (e *AppIdentityError) Error() string {
	switch e.Reason {
	case AppIdentityReasonAlreadyRegistered:
		return "app identity already registered"
	case AppIdentityReasonInvalid:
		msg := fmt.Sprintf("app identity invalid: %s", e.IdentityPath)
		if e.Cause != nil {
			msg += ": " + e.Cause.Error()
		}
		return msg
	default:
		msg := "app identity not found"
		if e.IdentityPath != "" {
			msg += ": " + e.IdentityPath
		}
		if len(e.SearchedPaths) > 0 {
			msg += fmt.Sprintf(" (searched: %s)", strings.Join(e.SearchedPaths, ", "))
		}
		return msg
	}
}

func (e *AppIdentityError) Unwrap() error { return e.Cause }
