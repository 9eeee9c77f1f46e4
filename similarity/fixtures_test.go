package similarity_test

import (
	"os"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/require"
)

// fixtureFile is the single versioned fixture driving the distance,
// normalization, and suggestion test matrices (testdata/fixtures.yaml).
// Every category shares this envelope; the shape of each case varies by
// category, so fixtureCase carries every field any category uses and
// leaves the rest at their zero value.
type fixtureFile struct {
	Version   string         `yaml:"version"`
	TestCases []fixtureGroup `yaml:"test_cases"`
}

type fixtureGroup struct {
	Category string        `yaml:"category"`
	Cases    []fixtureCase `yaml:"cases"`
}

type fixtureCase struct {
	Name string `yaml:"name"`

	// Distance/score categories (levenshtein, damerau_osa,
	// damerau_unrestricted, jaro_winkler, substring).
	InputA           string  `yaml:"input_a"`
	InputB           string  `yaml:"input_b"`
	ExpectedDistance float64 `yaml:"expected_distance"`
	ExpectedScore    float64 `yaml:"expected_score"`

	// normalization_presets and suggestions.
	Input      string         `yaml:"input"`
	Options    map[string]any `yaml:"options"`
	Candidates []string       `yaml:"candidates"`
	// Expected is a string for normalization_presets, or a list of
	// {value, score} maps for suggestions; callers type-switch on it.
	Expected any `yaml:"expected"`
}

func loadFixtureCategory(t *testing.T, category string) []fixtureCase {
	t.Helper()

	data, err := os.ReadFile("testdata/fixtures.yaml")
	require.NoError(t, err)

	var file fixtureFile
	require.NoError(t, yaml.Unmarshal(data, &file))
	require.NotEmpty(t, file.Version)

	for _, group := range file.TestCases {
		if group.Category == category {
			return group.Cases
		}
	}
	t.Fatalf("no fixture cases for category %q", category)
	return nil
}

func optFloat(opts map[string]any, key string) float64 {
	switch v := opts[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case uint64:
		return float64(v)
	default:
		return 0
	}
}

func optInt(opts map[string]any, key string) int {
	switch v := opts[key].(type) {
	case int:
		return v
	case uint64:
		return int(v)
	case float64:
		return int(v)
	default:
		return 0
	}
}

func optString(opts map[string]any, key string) string {
	s, _ := opts[key].(string)
	return s
}

func optBool(opts map[string]any, key string) bool {
	b, _ := opts[key].(bool)
	return b
}
