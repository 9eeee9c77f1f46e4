package schema_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fulmenhq/crucible-go/diagnostic"
	"github.com/fulmenhq/crucible-go/schema"
)

func TestExportSchemaWritesNormalizedDocument(t *testing.T) {
	t.Parallel()

	r := testRegistry(t)
	outPath := filepath.Join(t.TempDir(), "widget.schema.json")

	err := r.ExportSchema(schema.ExportOptions{
		SchemaID: "widget/v1.0.0/widget",
		OutPath:  outPath,
		Format:   schema.NormalizeOptions{Compact: true},
	})
	require.NoError(t, err)

	raw, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Equal(t, "Widget", doc["title"])
	_, hasProvenance := doc["x-crucible-provenance"]
	assert.False(t, hasProvenance)
}

func TestExportSchemaIncludesProvenance(t *testing.T) {
	t.Parallel()

	r := testRegistry(t)
	outPath := filepath.Join(t.TempDir(), "widget.schema.json")
	stamp := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	err := r.ExportSchema(schema.ExportOptions{
		SchemaID:          "widget/v1.0.0/widget",
		OutPath:           outPath,
		IncludeProvenance: true,
		Revision:          "abc123",
		ExportedAt:        stamp,
	})
	require.NoError(t, err)

	raw, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))
	prov, ok := doc["x-crucible-provenance"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "abc123", prov["revision"])
	assert.Equal(t, "2026-01-02T03:04:05Z", prov["exported_at"])
	assert.Equal(t, schema.LibraryVersion, prov["library_version"])
}

func TestExportSchemaRefusesOverwriteByDefault(t *testing.T) {
	t.Parallel()

	r := testRegistry(t)
	outPath := filepath.Join(t.TempDir(), "widget.schema.json")
	require.NoError(t, os.WriteFile(outPath, []byte("{}"), 0o644))

	err := r.ExportSchema(schema.ExportOptions{SchemaID: "widget/v1.0.0/widget", OutPath: outPath})
	require.Error(t, err)

	var exportErr *diagnostic.SchemaExportError
	require.ErrorAs(t, err, &exportErr)
	assert.Equal(t, diagnostic.ExportReasonFileExists, exportErr.Reason)
}

func TestExportSchemaOverwriteTrueSucceeds(t *testing.T) {
	t.Parallel()

	r := testRegistry(t)
	outPath := filepath.Join(t.TempDir(), "widget.schema.json")
	require.NoError(t, os.WriteFile(outPath, []byte("{}"), 0o644))

	err := r.ExportSchema(schema.ExportOptions{SchemaID: "widget/v1.0.0/widget", OutPath: outPath, Overwrite: true})
	require.NoError(t, err)
}

func TestExportSchemaValidateRejectsBrokenSchema(t *testing.T) {
	t.Parallel()

	r := testRegistry(t)
	outPath := filepath.Join(t.TempDir(), "broken.schema.json")

	err := r.ExportSchema(schema.ExportOptions{
		SchemaID: "widget/v1.0.0/broken",
		OutPath:  outPath,
		Validate: true,
	})
	require.Error(t, err)

	var exportErr *diagnostic.SchemaExportError
	require.ErrorAs(t, err, &exportErr)
	assert.Equal(t, diagnostic.ExportReasonInvalidFormat, exportErr.Reason)
}
