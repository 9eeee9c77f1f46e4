package schema

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/fulmenhq/crucible-go/diagnostic"
)

// Provenance is the optional block stamped onto an exported schema (spec
// §4.C exportSchema).
type Provenance struct {
	CrucibleVersion string `json:"crucible_version"`
	LibraryVersion  string `json:"library_version"`
	Revision        string `json:"revision,omitempty"`
	ExportedAt      string `json:"exported_at"`
}

// ExportOptions controls [Registry.ExportSchema].
type ExportOptions struct {
	SchemaID          string
	OutPath           string
	IncludeProvenance bool
	Revision          string
	// Validate, when true, runs ValidateSchema on the source document
	// before writing and fails the export if it does not pass.
	Validate  bool
	Overwrite bool
	Format    NormalizeOptions
	// ExportedAt overrides the provenance timestamp; tests set this
	// explicitly since the package never calls time.Now() on its own
	// for anything but this field's default.
	ExportedAt time.Time
}

// LibraryVersion is the crucible-go library's own release version,
// stamped into export provenance. Overridable in tests.
var LibraryVersion = "0.1.0"

// ExportSchema normalizes the schema identified by opts.SchemaID and
// writes it to opts.OutPath, optionally preceded by a validation pass and
// followed by a provenance stamp (spec §4.C exportSchema).
func (r *Registry) ExportSchema(opts ExportOptions) error {
	asset, err := r.assetForID(opts.SchemaID)
	if err != nil {
		return err
	}

	raw, err := os.ReadFile(asset.Path)
	if err != nil {
		return &diagnostic.SchemaExportError{Reason: diagnostic.ExportReasonWriteFailed, OutPath: opts.OutPath, Cause: err}
	}

	if opts.Validate {
		result, err := ValidateSchema(raw)
		if err != nil {
			return &diagnostic.SchemaExportError{Reason: diagnostic.ExportReasonInvalidFormat, OutPath: opts.OutPath, Cause: err}
		}
		if !result.Valid {
			return &diagnostic.SchemaExportError{
				Reason:  diagnostic.ExportReasonInvalidFormat,
				OutPath: opts.OutPath,
				Cause:   &diagnostic.SchemaValidationError{SchemaID: opts.SchemaID, Diagnostics: result.Diagnostics, Source: result.Source},
			}
		}
	}

	normalized, err := NormalizeSchema(raw, opts.Format)
	if err != nil {
		return &diagnostic.SchemaExportError{Reason: diagnostic.ExportReasonInvalidFormat, OutPath: opts.OutPath, Cause: err}
	}

	out := normalized
	if opts.IncludeProvenance {
		out, err = stampProvenance(normalized, r, opts)
		if err != nil {
			return &diagnostic.SchemaExportError{Reason: diagnostic.ExportReasonProvenanceFailed, OutPath: opts.OutPath, Cause: err}
		}
	}

	if !opts.Overwrite {
		if _, err := os.Stat(opts.OutPath); err == nil {
			return &diagnostic.SchemaExportError{Reason: diagnostic.ExportReasonFileExists, OutPath: opts.OutPath}
		}
	}

	if err := os.MkdirAll(filepath.Dir(opts.OutPath), 0o755); err != nil {
		return &diagnostic.SchemaExportError{Reason: diagnostic.ExportReasonWriteFailed, OutPath: opts.OutPath, Cause: err}
	}
	if err := os.WriteFile(opts.OutPath, out, 0o644); err != nil {
		return &diagnostic.SchemaExportError{Reason: diagnostic.ExportReasonWriteFailed, OutPath: opts.OutPath, Cause: err}
	}
	return nil
}

func stampProvenance(normalized []byte, r *Registry, opts ExportOptions) ([]byte, error) {
	var doc map[string]any
	if err := json.Unmarshal(normalized, &doc); err != nil {
		return nil, err
	}

	exportedAt := opts.ExportedAt
	if exportedAt.IsZero() {
		exportedAt = time.Now().UTC()
	}

	v := r.cat.GetCrucibleVersion()
	prov := Provenance{
		CrucibleVersion: v.Version,
		LibraryVersion:  LibraryVersion,
		Revision:        opts.Revision,
		ExportedAt:      exportedAt.UTC().Format(time.RFC3339),
	}
	provMap := map[string]any{
		"crucible_version": prov.CrucibleVersion,
		"library_version":  prov.LibraryVersion,
		"exported_at":      prov.ExportedAt,
	}
	if prov.Revision != "" {
		provMap["revision"] = prov.Revision
	}
	doc["x-crucible-provenance"] = provMap

	return json.MarshalIndent(doc, "", "  ")
}
