package identifier_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fulmenhq/crucible-go/identifier"
)

func TestPathToAssetIDRoundTrip(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		path     string
		category identifier.Category
		wantID   string
	}{
		"doc with prefix": {
			path:     "docs/crucible-go/standards/README.md",
			category: identifier.CategoryDocs,
			wantID:   "standards/README.md",
		},
		"doc without prefix": {
			path:     "standards/README.md",
			category: identifier.CategoryDocs,
			wantID:   "standards/README.md",
		},
		"schema with schema.json extension": {
			path:     "schemas/crucible-go/ascii/v1.0.0/string-analysis.schema.json",
			category: identifier.CategorySchemas,
			wantID:   "ascii/v1.0.0/string-analysis",
		},
		"schema with bare json extension": {
			path:     "schemas/crucible-go/ascii/v1.0.0/box-chars.json",
			category: identifier.CategorySchemas,
			wantID:   "ascii/v1.0.0/box-chars",
		},
		"config with yaml extension": {
			path:     "config/crucible-go/logging/v1.0.0/defaults.yaml",
			category: identifier.CategoryConfigs,
			wantID:   "logging/v1.0.0/defaults",
		},
		"template keeps its extension": {
			path:     "templates/crucible-go/service/main.go.tmpl",
			category: identifier.CategoryTemplates,
			wantID:   "service/main.go.tmpl",
		},
		"windows separators normalized": {
			path:     `docs\crucible-go\guides\integration-guide.md`,
			category: identifier.CategoryDocs,
			wantID:   "guides/integration-guide.md",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			id, err := identifier.PathToAssetID(tc.path, tc.category)
			require.NoError(t, err)
			assert.Equal(t, tc.wantID, id)

			assert.True(t, identifier.ValidateAssetID(id, tc.category))
		})
	}
}

func TestAssetIDToPathInverse(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		id       string
		category identifier.Category
		want     string
	}{
		"doc": {
			id:       "standards/README.md",
			category: identifier.CategoryDocs,
			want:     "standards/README.md",
		},
		"doc id without extension gains one": {
			id:       "standards/README",
			category: identifier.CategoryDocs,
			want:     "standards/README.md",
		},
		"schema": {
			id:       "ascii/v1.0.0/string-analysis",
			category: identifier.CategorySchemas,
			want:     "ascii/v1.0.0/string-analysis.schema.json",
		},
		"config": {
			id:       "logging/v1.0.0/defaults",
			category: identifier.CategoryConfigs,
			want:     "logging/v1.0.0/defaults.yaml",
		},
		"template": {
			id:       "service/main.go.tmpl",
			category: identifier.CategoryTemplates,
			want:     "service/main.go.tmpl",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := identifier.AssetIDToPath(tc.id, tc.category)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestValidateAssetIDRejectsInvalid(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		id       string
		category identifier.Category
	}{
		"empty":                    {id: "", category: identifier.CategoryDocs},
		"leading slash":            {id: "/standards/README.md", category: identifier.CategoryDocs},
		"trailing slash":           {id: "standards/README.md/", category: identifier.CategoryDocs},
		"backslash":                {id: `standards\README.md`, category: identifier.CategoryDocs},
		"doc missing extension":    {id: "standards/README", category: identifier.CategoryDocs},
		"schema carries extension": {id: "ascii/v1.0.0/string-analysis.json", category: identifier.CategorySchemas},
		"config carries extension": {id: "logging/v1.0.0/defaults.yaml", category: identifier.CategoryConfigs},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.False(t, identifier.ValidateAssetID(tc.id, tc.category))
		})
	}
}

func TestExtractVersion(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		id   string
		want string
	}{
		"semver present":      {id: "ascii/v1.0.0/string-analysis", want: "1.0.0"},
		"prerelease semver":   {id: "ascii/v2.0.0-beta.1/string-analysis", want: "2.0.0-beta.1"},
		"no version segment":  {id: "ascii/string-analysis", want: ""},
		"version-like but no": {id: "vendor/string-analysis", want: ""},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, identifier.ExtractVersion(tc.id))
		})
	}
}

func TestExtractSchemaKindAndConfigCategory(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ascii", identifier.ExtractSchemaKind("ascii/v1.0.0/string-analysis"))
	assert.Equal(t, "unknown", identifier.ExtractSchemaKind(""))
	assert.Equal(t, "logging", identifier.ExtractConfigCategory("logging/v1.0.0/defaults"))
	assert.Equal(t, "unknown", identifier.ExtractConfigCategory(""))
}
