package catalog

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/fulmenhq/crucible-go/identifier"
)

// ListSchemas lists schema assets, optionally filtered to a kind (the
// schema ID's first path segment, e.g. "ascii").
func (c *Catalog) ListSchemas(kind string) ([]Asset, error) {
	assets, err := c.ListAssets(identifier.CategorySchemas, ListOptions{})
	if err != nil {
		return nil, err
	}
	if kind == "" {
		return assets, nil
	}
	filtered := make([]Asset, 0, len(assets))
	for _, a := range assets {
		if identifier.ExtractSchemaKind(a.ID) == kind {
			filtered = append(filtered, a)
		}
	}
	return filtered, nil
}

// LoadSchemaByID reads and parses (JSON or YAML, by file extension) the raw
// schema document for id, without compiling or validating it.
func (c *Catalog) LoadSchemaByID(id string) (any, error) {
	asset, err := c.getAsset(identifier.CategorySchemas, id)
	if err != nil {
		return nil, err
	}
	return loadStructuredFile(asset.Path)
}

func loadStructuredFile(path string) (any, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var value any
	if strings.HasSuffix(strings.ToLower(path), ".json") {
		if err := json.Unmarshal(raw, &value); err != nil {
			return nil, err
		}
		return value, nil
	}
	if err := yaml.Unmarshal(raw, &value); err != nil {
		return nil, err
	}
	return value, nil
}
