package catalog

import (
	"time"

	"github.com/fulmenhq/crucible-go/identifier"
)

// Asset describes a single vendored asset (spec §3 "Asset").
type Asset struct {
	ID           string
	Category     identifier.Category
	Path         string
	RelativePath string
	Size         int64
	Modified     time.Time
	// Metadata carries frontmatter for docs, {"version", "kind"} extracted
	// from the ID for schemas, or {"version", "category"} for configs. Nil
	// when none applies (e.g. templates).
	Metadata map[string]any
}

// ListOptions controls [Catalog.ListAssets] and the category-scoped list
// operations built on it.
type ListOptions struct {
	// Prefix filters to IDs that start with this string.
	Prefix string
	// Limit caps the number of results. Nil means unlimited; a non-nil
	// zero yields an empty result (spec §4.B: "limit (nonneg; 0 yields
	// empty)").
	Limit *int
}

// Limit returns a pointer suitable for [ListOptions.Limit].
func Limit(n int) *int { return &n }
