package fulmen

import (
	"context"

	"github.com/fulmenhq/crucible-go/schema"
)

// ListSchemas lists schema descriptors, optionally filtered to kind,
// against the process-wide default registry.
func ListSchemas(kind string) ([]schema.Descriptor, error) {
	return schema.DefaultRegistry().ListSchemas(kind)
}

// GetSchema returns the descriptor for a single schema ID.
func GetSchema(id string) (schema.Descriptor, error) {
	return schema.DefaultRegistry().GetSchema(id)
}

// ValidateData validates an in-memory value against the schema
// identified by id.
func ValidateData(ctx context.Context, data any, id string, opts schema.ValidateOptions) (schema.ValidationResult, error) {
	return schema.DefaultRegistry().ValidateData(ctx, data, id, opts)
}

// ValidateFile reads and validates a data file against the schema
// identified by id.
func ValidateFile(ctx context.Context, path string, id string, opts schema.ValidateOptions) (schema.ValidationResult, error) {
	return schema.DefaultRegistry().ValidateFileBySchemaID(ctx, path, id, opts)
}

// ValidateSchemaDocument meta-validates a standalone schema document
// (JSON or YAML bytes) against its declared draft.
func ValidateSchemaDocument(content []byte) (schema.ValidationResult, error) {
	return schema.ValidateSchema(content)
}

// NormalizeSchemaDocument canonicalizes a schema document for equality
// comparison or export.
func NormalizeSchemaDocument(content []byte, opts schema.NormalizeOptions) ([]byte, error) {
	return schema.NormalizeSchema(content, opts)
}

// CompareSchemaDocuments reports whether two schema documents are
// equal once canonicalized.
func CompareSchemaDocuments(a, b []byte) (bool, error) {
	return schema.CompareSchemas(a, b)
}

// ExportSchemaDocument normalizes, optionally validates and
// provenance-stamps, then writes a vendored schema to opts.OutPath.
func ExportSchemaDocument(opts schema.ExportOptions) error {
	return schema.DefaultRegistry().ExportSchema(opts)
}
