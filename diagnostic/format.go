package diagnostic

import (
	"errors"
	"fmt"
	"strings"
)

// Formatter renders a stable, multi-line human-readable form of an error
// from the diagnostic taxonomy, suitable for CLI output and logs.
type Formatter struct{}

// NewFormatter returns a [Formatter]. It carries no state; the zero value
// is ready to use.
func NewFormatter() Formatter { return Formatter{} }

// Format renders err. Errors outside the diagnostic taxonomy fall back to
// err.Error() on a single line.
func (Formatter) Format(err error) string {
	if err == nil {
		return ""
	}

	var sb strings.Builder

	var assetErr *AssetNotFoundError
	var invalidErr *InvalidAssetIdError
	var schemaErr *SchemaValidationError
	var exportErr *SchemaExportError
	var foundryErr *FoundryCatalogError
	var simErr *SimilarityError
	var identityErr *AppIdentityError

	switch {
	case errors.As(err, &assetErr):
		fmt.Fprintf(&sb, "error: %s\n", assetErr.Error())
		fmt.Fprintf(&sb, "  category: %s\n", assetErr.Category)
		fmt.Fprintf(&sb, "  asset_id: %s\n", assetErr.AssetID)
		for _, s := range assetErr.Suggestions {
			fmt.Fprintf(&sb, "  suggestion: %s (%.0f%%)\n", s.Value, s.Score*100)
		}
	case errors.As(err, &invalidErr):
		fmt.Fprintf(&sb, "error: %s\n", invalidErr.Error())
	case errors.As(err, &schemaErr):
		fmt.Fprintf(&sb, "error: schema validation failed\n")
		if schemaErr.SchemaID != "" {
			fmt.Fprintf(&sb, "  schema_id: %s\n", schemaErr.SchemaID)
		}
		if schemaErr.Source != "" {
			fmt.Fprintf(&sb, "  source: %s\n", schemaErr.Source)
		}
		for _, d := range schemaErr.Diagnostics {
			fmt.Fprintf(&sb, "  [%s] %s", d.Severity, d.Message)
			if d.Pointer != "" {
				fmt.Fprintf(&sb, " (pointer: %s)", d.Pointer)
			}
			if d.Keyword != "" {
				fmt.Fprintf(&sb, " (keyword: %s)", d.Keyword)
			}
			sb.WriteByte('\n')
		}
		if schemaErr.Cause != nil {
			fmt.Fprintf(&sb, "  cause: %v\n", schemaErr.Cause)
		}
	case errors.As(err, &exportErr):
		fmt.Fprintf(&sb, "error: %s\n", exportErr.Error())
	case errors.As(err, &foundryErr):
		fmt.Fprintf(&sb, "error: %s\n", foundryErr.Error())
	case errors.As(err, &simErr):
		fmt.Fprintf(&sb, "error: %s\n", simErr.Error())
	case errors.As(err, &identityErr):
		fmt.Fprintf(&sb, "error: %s\n", identityErr.Error())
		if len(identityErr.SearchedPaths) > 0 {
			fmt.Fprintf(&sb, "  searched_paths: %s\n", strings.Join(identityErr.SearchedPaths, ", "))
		}
	default:
		fmt.Fprintf(&sb, "error: %v\n", err)
	}

	return strings.TrimRight(sb.String(), "\n")
}
