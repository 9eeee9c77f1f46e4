package fulmen

import (
	"github.com/fulmenhq/crucible-go/catalog"
	"github.com/fulmenhq/crucible-go/identifier"
)

// ListAssets lists vendored assets in category, filtered and paged by
// opts, against the process-wide default catalog.
func ListAssets(category identifier.Category, opts catalog.ListOptions) ([]catalog.Asset, error) {
	return catalog.DefaultCatalog().ListAssets(category, opts)
}

// ListDocs lists documentation assets, applying opts' prefix/status/tag
// filters against the process-wide default catalog.
func ListDocs(opts catalog.DocumentationOptions) ([]catalog.Asset, error) {
	return catalog.DefaultCatalog().ListDocumentation(opts)
}

// GetDoc returns a documentation asset's raw content, frontmatter block
// included.
func GetDoc(id string) (string, error) {
	return catalog.DefaultCatalog().GetDocumentation(id)
}

// GetDocWithMetadata returns a documentation asset's body and parsed
// frontmatter together.
func GetDocWithMetadata(id string) (catalog.DocumentationContent, error) {
	return catalog.DefaultCatalog().GetDocumentationWithMetadata(id)
}

// ListConfigDefaults lists config-default assets in category.
func ListConfigDefaults(category string) ([]catalog.Asset, error) {
	return catalog.DefaultCatalog().ListConfigDefaults(category)
}

// GetConfigDefaults loads and decodes a config-default asset's contents.
func GetConfigDefaults(category, version string) (any, error) {
	return catalog.DefaultCatalog().GetConfigDefaults(category, version)
}

// GetCrucibleVersion returns the vendored tree's synced version metadata.
func GetCrucibleVersion() catalog.CrucibleVersion {
	return catalog.DefaultCatalog().GetCrucibleVersion()
}

// ListCategories lists the four vendored-asset categories. The list is
// fixed; it does not depend on what exists under the base directory.
func ListCategories() []identifier.Category {
	return catalog.DefaultCatalog().ListCategories()
}
