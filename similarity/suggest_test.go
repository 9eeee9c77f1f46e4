package similarity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fulmenhq/crucible-go/similarity"
)

func TestSuggestFixture(t *testing.T) {
	t.Parallel()

	for _, tc := range loadFixtureCategory(t, "suggestions") {
		t.Run(tc.Name, func(t *testing.T) {
			t.Parallel()

			opts := similarity.SuggestOptions{
				MinScore:       optFloat(tc.Options, "min_score"),
				MaxSuggestions: optInt(tc.Options, "max_suggestions"),
			}
			if metric := optString(tc.Options, "metric"); metric != "" {
				opts.Metric = similarity.Metric(metric)
			}

			results, err := similarity.Suggest(tc.Input, tc.Candidates, opts)
			require.NoError(t, err)

			wantList, _ := tc.Expected.([]any)
			if len(wantList) == 0 {
				assert.Empty(t, results)
				return
			}

			require.Len(t, results, len(wantList))
			for i, want := range wantList {
				entry, ok := want.(map[string]any)
				require.True(t, ok, "suggestions expected entry must be a map")

				wantValue, _ := entry["value"].(string)
				assert.Equal(t, wantValue, results[i].Value)
				assert.InDelta(t, optFloat(entry, "score"), results[i].Score, scoreEpsilon)
			}
		})
	}
}

func TestSuggestTieBreaksOnCandidateValue(t *testing.T) {
	t.Parallel()

	results, err := similarity.Suggest("ab", []string{"ac", "aa"}, similarity.SuggestOptions{
		MinScore:       0.3,
		MaxSuggestions: 2,
	})
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "aa", results[0].Value)
	assert.Equal(t, "ac", results[1].Value)
}
