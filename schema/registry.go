package schema

import (
	"context"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/fulmenhq/crucible-go/catalog"
	"github.com/fulmenhq/crucible-go/diagnostic"
	"github.com/fulmenhq/crucible-go/identifier"
	"github.com/fulmenhq/crucible-go/telemetry"
)

// compiledEntry memoizes the outcome of compiling one schema ID, once per
// process (spec §4.C: compile once, cache for the process lifetime).
type compiledEntry struct {
	once   sync.Once
	schema *jsonschema.Schema
	state  State
	err    error
}

// Registry is the schema catalog and compiled-validator cache (spec
// §4.C). Discovery and raw loading are delegated to a [catalog.Catalog];
// Registry layers compilation, validation, normalization, comparison,
// and export on top.
type Registry struct {
	cat    *catalog.Catalog
	hooks  telemetry.Hooks
	bridge Bridge

	mu       sync.Mutex
	compiled map[string]*compiledEntry
}

// NewRegistry creates a registry backed by cat. hooks may be the zero
// value. A nil bridge disables the external-binary validation strategy
// entirely; use [NewRegistry] followed by [Registry.SetBridge], or
// [DefaultBridge] for the standard goneat-shelling strategy.
func NewRegistry(cat *catalog.Catalog, hooks telemetry.Hooks) *Registry {
	return &Registry{
		cat:      cat,
		hooks:    telemetry.Normalize(hooks),
		compiled: make(map[string]*compiledEntry),
	}
}

var (
	defaultRegistryOnce sync.Once
	defaultRegistryInst *Registry
)

// DefaultRegistry returns a process-wide registry backed by
// [catalog.DefaultCatalog], with the default bridge installed.
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		r := NewRegistry(catalog.DefaultCatalog(), telemetry.Hooks{})
		r.SetBridge(DefaultBridge())
		defaultRegistryInst = r
	})
	return defaultRegistryInst
}

// SetBridge installs (or clears, with nil) the external-binary validation
// strategy used when a caller passes [ValidateOptions.UseBridge].
func (r *Registry) SetBridge(b Bridge) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bridge = b
}

// ListSchemas lists schema assets, optionally filtered to a kind (the
// schema ID's first path segment, e.g. "catalog", "identity").
func (r *Registry) ListSchemas(kind string) ([]Descriptor, error) {
	assets, err := r.cat.ListSchemas(kind)
	if err != nil {
		return nil, err
	}
	out := make([]Descriptor, len(assets))
	for i, a := range assets {
		out[i] = descriptorForAsset(a)
	}
	return out, nil
}

// GetSchema returns the descriptor for a single schema ID.
func (r *Registry) GetSchema(id string) (Descriptor, error) {
	asset, err := r.assetForID(id)
	if err != nil {
		return Descriptor{}, err
	}
	return descriptorForAsset(asset), nil
}

func descriptorForAsset(a catalog.Asset) Descriptor {
	return Descriptor{
		ID:           a.ID,
		Kind:         identifier.ExtractSchemaKind(a.ID),
		Version:      identifier.ExtractVersion(a.ID),
		Path:         a.Path,
		RelativePath: a.RelativePath,
		Draft:        DraftUnknown,
		State:        StateDiscovered,
	}
}

// compile compiles (once) and caches the validator for id.
func (r *Registry) compile(id string) (*jsonschema.Schema, error) {
	r.mu.Lock()
	entry, ok := r.compiled[id]
	if !ok {
		entry = &compiledEntry{}
		r.compiled[id] = entry
	}
	r.mu.Unlock()

	entry.once.Do(func() {
		asset, err := r.assetForID(id)
		if err != nil {
			entry.state = StateFailed
			entry.err = err
			return
		}
		sch, err := compileSchemaFile(asset.Path)
		if err != nil {
			entry.state = StateFailed
			ds := []diagnostic.Diagnostic{{Severity: diagnostic.SeverityError, Message: err.Error(), Source: diagnostic.SourceLibraryEngine}}
			if verr, ok := AsValidationError(err); ok {
				ds = DiagnosticsFromValidationError(verr)
			}
			entry.err = &diagnostic.SchemaValidationError{
				SchemaID:    id,
				Source:      diagnostic.SourceLibraryEngine,
				Diagnostics: ds,
				Cause:       err,
			}
			return
		}
		entry.schema = sch
		entry.state = StateReady
	})
	return entry.schema, entry.err
}

func (r *Registry) assetForID(id string) (catalog.Asset, error) {
	assets, err := r.cat.ListAssets(identifier.CategorySchemas, catalog.ListOptions{})
	if err != nil {
		return catalog.Asset{}, err
	}
	for _, a := range assets {
		if a.ID == id {
			return a, nil
		}
	}
	if _, err := r.cat.LoadSchemaByID(id); err != nil {
		return catalog.Asset{}, err
	}
	return catalog.Asset{}, &diagnostic.AssetNotFoundError{AssetID: id, Category: string(identifier.CategorySchemas)}
}

// ValidateData validates an in-memory value against the schema
// identified by id (spec §4.C validateData).
func (r *Registry) ValidateData(ctx context.Context, data any, id string, opts ValidateOptions) (ValidationResult, error) {
	r.mu.Lock()
	bridge := r.bridge
	r.mu.Unlock()

	if opts.UseBridge && bridge != nil && bridge.Probe() {
		asset, err := r.assetForID(id)
		if err != nil {
			return ValidationResult{}, err
		}
		dataPath, cleanup, err := writeTempJSON(data)
		if err != nil {
			return ValidationResult{}, &diagnostic.SchemaValidationError{SchemaID: id, Source: diagnostic.SourceExternalBinary, Cause: err}
		}
		defer cleanup()
		ds, err := bridge.Validate(ctx, asset.Path, dataPath)
		if err == nil {
			return ValidationResult{Valid: !diagnostic.HasError(ds), Diagnostics: ds, Source: diagnostic.SourceExternalBinary}, nil
		}
		r.hooks.Logger.Warn("schema: bridge validation failed, falling back to library engine", "schemaId", id, "err", err)
	}

	sch, err := r.compile(id)
	if err != nil {
		return ValidationResult{}, err
	}
	ds := validateAgainst(sch, data)
	return ValidationResult{Valid: !diagnostic.HasError(ds), Diagnostics: ds, Source: diagnostic.SourceLibraryEngine}, nil
}

// ValidateFileBySchemaID reads and decodes path (JSON or YAML, by
// extension) and validates it against the schema identified by id (spec
// §4.C validateFileBySchemaId).
func (r *Registry) ValidateFileBySchemaID(ctx context.Context, path string, id string, opts ValidateOptions) (ValidationResult, error) {
	r.mu.Lock()
	bridge := r.bridge
	r.mu.Unlock()

	if opts.UseBridge && bridge != nil && bridge.Probe() {
		asset, err := r.assetForID(id)
		if err != nil {
			return ValidationResult{}, err
		}
		ds, err := bridge.Validate(ctx, asset.Path, path)
		if err == nil {
			return ValidationResult{Valid: !diagnostic.HasError(ds), Diagnostics: ds, Source: diagnostic.SourceExternalBinary}, nil
		}
		r.hooks.Logger.Warn("schema: bridge validation failed, falling back to library engine", "schemaId", id, "err", err)
	}

	data, err := loadStructuredFile(path)
	if err != nil {
		return ValidationResult{}, &diagnostic.SchemaValidationError{
			SchemaID: id,
			Source:   diagnostic.SourceLibraryEngine,
			Cause:    fmt.Errorf("reading %s: %w", path, err),
		}
	}
	sch, err := r.compile(id)
	if err != nil {
		return ValidationResult{}, err
	}
	ds := validateAgainst(sch, data)
	return ValidationResult{Valid: !diagnostic.HasError(ds), Diagnostics: ds, Source: diagnostic.SourceLibraryEngine}, nil
}
