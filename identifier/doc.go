// Package identifier implements the canonical asset-ID grammar shared by the
// four Crucible asset categories: docs, schemas, configs, and templates.
//
// Every vendored asset is addressable two ways: by its on-disk path under a
// category root, and by a canonical, OS-agnostic ID derived from that path.
// [PathToAssetID] and [AssetIDToPath] round-trip a path given relative to
// its category root with the category's canonical extension (see
// [PathToAssetID] for what is not restored); see [ValidateAssetID] for the
// structural invariants an ID must satisfy.
//
// IDs always use forward slashes, never carry a leading or trailing slash,
// and are never empty. Category-specific extension rules apply: doc IDs end
// in ".md", schema and config IDs never carry a file extension, and template
// IDs keep their full file name, extension included.
package identifier
