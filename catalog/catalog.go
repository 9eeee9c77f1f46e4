package catalog

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/fulmenhq/crucible-go/diagnostic"
	"github.com/fulmenhq/crucible-go/identifier"
	"github.com/fulmenhq/crucible-go/similarity"
	"github.com/fulmenhq/crucible-go/telemetry"
)

// categoryIndex is the lazily-built, cached listing for one category.
type categoryIndex struct {
	loaded bool
	assets map[string]Asset
	order  []string
}

// Catalog indexes the four vendored asset categories rooted at a base
// directory.
type Catalog struct {
	baseDir string
	hooks   telemetry.Hooks

	mu      sync.RWMutex
	indexes map[identifier.Category]*categoryIndex
}

// NewCatalog creates a catalog rooted at baseDir. hooks may be the zero
// value; it is normalized to no-ops.
func NewCatalog(baseDir string, hooks telemetry.Hooks) *Catalog {
	indexes := make(map[identifier.Category]*categoryIndex, len(identifier.Categories))
	for _, c := range identifier.Categories {
		indexes[c] = &categoryIndex{assets: make(map[string]Asset)}
	}
	return &Catalog{
		baseDir: filepath.Clean(baseDir),
		hooks:   telemetry.Normalize(hooks),
		indexes: indexes,
	}
}

var (
	defaultCatalogOnce sync.Once
	defaultCatalogInst *Catalog
)

// DefaultCatalog returns a process-wide catalog rooted at the resolved
// vendored asset tree (see [ResolveDefaultBaseDir]).
func DefaultCatalog() *Catalog {
	defaultCatalogOnce.Do(func() {
		defaultCatalogInst = NewCatalog(ResolveDefaultBaseDir(), telemetry.Hooks{})
	})
	return defaultCatalogInst
}

// ListCategories returns the four category tags in their fixed canonical
// order. The returned slice is the package-level [identifier.Categories]
// value and is referentially stable across calls; callers must not mutate
// it.
func (c *Catalog) ListCategories() []identifier.Category {
	return identifier.Categories
}

// ListAssets walks category's vendored subtree (loading it into the cache
// on first use) and returns assets sorted by ID, optionally filtered by
// opts.Prefix and capped by opts.Limit.
func (c *Catalog) ListAssets(category identifier.Category, opts ListOptions) ([]Asset, error) {
	idx, err := c.ensureLoaded(category)
	if err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	if opts.Limit != nil && *opts.Limit <= 0 {
		return []Asset{}, nil
	}

	result := make([]Asset, 0, len(idx.order))
	for _, id := range idx.order {
		if opts.Prefix != "" && !strings.HasPrefix(id, opts.Prefix) {
			continue
		}
		result = append(result, idx.assets[id])
	}
	if opts.Limit != nil && *opts.Limit < len(result) {
		result = result[:*opts.Limit]
	}
	return result, nil
}

// getAsset resolves a single asset by ID within category, raising
// [diagnostic.AssetNotFoundError] with fuzzy suggestions when absent.
func (c *Catalog) getAsset(category identifier.Category, id string) (Asset, error) {
	if !identifier.ValidateAssetID(id, category) {
		return Asset{}, &diagnostic.InvalidAssetIdError{
			AssetID:  id,
			Category: string(category),
			Reason:   "asset id fails structural or extension invariants",
		}
	}

	idx, err := c.ensureLoaded(category)
	if err != nil {
		return Asset{}, err
	}

	c.mu.RLock()
	asset, ok := idx.assets[id]
	candidates := idx.order
	c.mu.RUnlock()
	if ok {
		return asset, nil
	}

	suggestions, sugErr := similarity.Suggest(id, candidates, similarity.DefaultSuggestOptions())
	if sugErr != nil {
		c.hooks.Logger.Warn("catalog: suggestion lookup failed", "category", category, "err", sugErr)
		suggestions = nil
	}
	ds := make([]diagnostic.Suggestion, len(suggestions))
	for i, s := range suggestions {
		ds[i] = diagnostic.Suggestion{Value: s.Value, Score: s.Score}
	}

	return Asset{}, &diagnostic.AssetNotFoundError{
		AssetID:     id,
		Category:    string(category),
		Suggestions: ds,
	}
}

func (c *Catalog) ensureLoaded(category identifier.Category) (*categoryIndex, error) {
	c.mu.RLock()
	idx := c.indexes[category]
	if idx.loaded {
		c.mu.RUnlock()
		return idx, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if idx.loaded {
		return idx, nil
	}

	root := filepath.Join(c.baseDir, identifier.CategoryRootDir(category))
	if _, err := os.Stat(root); err != nil {
		idx.loaded = true
		return idx, nil
	}

	err := filepath.WalkDir(root, func(p string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		id, err := identifier.PathToAssetID(rel, category)
		if err != nil {
			// Not a recognized asset path for this category; skip it
			// silently, the vendored tree is opaque beyond path
			// conventions (spec §6).
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}

		asset := Asset{
			ID:           id,
			Category:     category,
			Path:         p,
			RelativePath: filepath.ToSlash(rel),
			Size:         info.Size(),
			Modified:     info.ModTime(),
		}
		asset.Metadata = buildAssetMetadata(category, id, p)
		idx.assets[id] = asset
		return nil
	})
	if err != nil {
		return nil, &diagnostic.FoundryCatalogError{Catalog: string(category), Cause: err}
	}

	idx.order = make([]string, 0, len(idx.assets))
	for id := range idx.assets {
		idx.order = append(idx.order, id)
	}
	sort.Strings(idx.order)
	idx.loaded = true
	c.hooks.Logger.Debug("catalog: loaded category", "category", category, "count", len(idx.order))
	return idx, nil
}

func buildAssetMetadata(category identifier.Category, id string, path string) map[string]any {
	switch category {
	case identifier.CategoryDocs:
		meta, _, _, err := parseFrontmatter(path)
		if err != nil || meta == nil {
			return nil
		}
		return meta
	case identifier.CategorySchemas:
		return map[string]any{
			"version": identifier.ExtractVersion(id),
			"kind":    identifier.ExtractSchemaKind(id),
		}
	case identifier.CategoryConfigs:
		return map[string]any{
			"version":  identifier.ExtractVersion(id),
			"category": identifier.ExtractConfigCategory(id),
		}
	default:
		return nil
	}
}
