// Package catalog implements the vendored Crucible asset catalog (spec
// §4.B): a lazily-loaded, per-category index over the four vendored asset
// subtrees (docs, schemas, configs, templates), with category-scoped
// convenience operations for documentation, schema, and config-default
// lookups plus vendored version metadata.
//
// The catalog treats the vendored tree as read-only and never writes to it.
// Each category's index is built once, under a lock, on first access via
// [filepath.WalkDir] and cached for the catalog's lifetime — the same
// lazy-load/sync.RWMutex shape the sibling gofulmen schema catalog uses,
// generalized here from one tree (schemas) to all four.
//
// A missing category directory is not an error; it yields an empty list.
// A missing asset ID raises [github.com/fulmenhq/crucible-go/diagnostic.AssetNotFoundError]
// carrying up to three fuzzy suggestions from package similarity.
package catalog
