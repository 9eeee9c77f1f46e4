package catalog

import (
	"strings"

	"github.com/fulmenhq/crucible-go/identifier"
)

// ListConfigDefaults lists config-default assets, optionally filtered to a
// category (the config ID's first path segment, e.g. "logging").
func (c *Catalog) ListConfigDefaults(category string) ([]Asset, error) {
	assets, err := c.ListAssets(identifier.CategoryConfigs, ListOptions{})
	if err != nil {
		return nil, err
	}
	if category == "" {
		return assets, nil
	}
	filtered := make([]Asset, 0, len(assets))
	for _, a := range assets {
		if identifier.ExtractConfigCategory(a.ID) == category {
			filtered = append(filtered, a)
		}
	}
	return filtered, nil
}

// GetConfigDefaults loads the YAML-parsed config-defaults object for
// category and version. version accepts both "v1.0.0" and "1.0.0" forms.
func (c *Catalog) GetConfigDefaults(category, version string) (any, error) {
	version = "v" + strings.TrimPrefix(version, "v")
	id := identifier.JoinID(category, version, "defaults")

	asset, err := c.getAsset(identifier.CategoryConfigs, id)
	if err != nil {
		return nil, err
	}
	return loadStructuredFile(asset.Path)
}
