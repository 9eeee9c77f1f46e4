package catalog

import (
	"errors"
	"os"

	"github.com/fulmenhq/crucible-go/diagnostic"
	"github.com/fulmenhq/crucible-go/identifier"
)

// DocumentationOptions extends [ListOptions] with the doc-specific filters
// from spec §4.B.
type DocumentationOptions struct {
	ListOptions
	// Status filters to documents whose frontmatter "status" field equals
	// this value. Empty means no filter.
	Status string
	// Tags requires every listed tag to be present in the document's
	// frontmatter "tags" array. Empty means no filter.
	Tags []string
}

// DocumentationContent is the result of [Catalog.GetDocumentationWithMetadata]:
// the document body with its frontmatter block stripped, plus the parsed
// frontmatter.
type DocumentationContent struct {
	Content  string
	Metadata map[string]any
}

// ListDocumentation lists docs assets, applying opts.Prefix/Limit plus the
// frontmatter-driven Status and Tags filters.
func (c *Catalog) ListDocumentation(opts DocumentationOptions) ([]Asset, error) {
	assets, err := c.ListAssets(identifier.CategoryDocs, opts.ListOptions)
	if err != nil {
		return nil, err
	}

	if opts.Status == "" && len(opts.Tags) == 0 {
		return assets, nil
	}

	filtered := make([]Asset, 0, len(assets))
	for _, a := range assets {
		if opts.Status != "" {
			status, _ := a.Metadata["status"].(string)
			if status != opts.Status {
				continue
			}
		}
		if len(opts.Tags) > 0 && !hasAllTags(a.Metadata, opts.Tags) {
			continue
		}
		filtered = append(filtered, a)
	}
	return filtered, nil
}

func hasAllTags(metadata map[string]any, required []string) bool {
	raw, ok := metadata["tags"]
	if !ok {
		return false
	}
	present := make(map[string]bool)
	switch v := raw.(type) {
	case []any:
		for _, t := range v {
			if s, ok := t.(string); ok {
				present[s] = true
			}
		}
	case []string:
		for _, s := range v {
			present[s] = true
		}
	default:
		return false
	}
	for _, tag := range required {
		if !present[tag] {
			return false
		}
	}
	return true
}

// GetDocumentation returns the raw content of a docs asset, frontmatter
// delimiters intact.
func (c *Catalog) GetDocumentation(id string) (string, error) {
	asset, err := c.getAsset(identifier.CategoryDocs, id)
	if err != nil {
		return "", err
	}
	raw, err := os.ReadFile(asset.Path)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// GetDocumentationWithMetadata returns the document body with its
// frontmatter block stripped, plus the parsed frontmatter.
func (c *Catalog) GetDocumentationWithMetadata(id string) (DocumentationContent, error) {
	asset, err := c.getAsset(identifier.CategoryDocs, id)
	if err != nil {
		return DocumentationContent{}, err
	}
	meta, body, _, err := parseFrontmatter(asset.Path)
	if err != nil {
		return DocumentationContent{}, err
	}
	return DocumentationContent{Content: body, Metadata: meta}, nil
}

// GetDocumentationMetadata returns the parsed frontmatter for id, or nil if
// the document does not exist — unlike the other documentation lookups,
// absence is not an error here (spec §4.B).
func (c *Catalog) GetDocumentationMetadata(id string) (map[string]any, error) {
	asset, err := c.getAsset(identifier.CategoryDocs, id)
	if err != nil {
		var notFound *diagnostic.AssetNotFoundError
		if errors.As(err, &notFound) {
			return nil, nil
		}
		return nil, err
	}
	meta, _, _, err := parseFrontmatter(asset.Path)
	if err != nil {
		return nil, err
	}
	return meta, nil
}
