package similarity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fulmenhq/crucible-go/similarity"
)

func TestNormalizePresetsFixture(t *testing.T) {
	t.Parallel()

	for _, tc := range loadFixtureCategory(t, "normalization_presets") {
		t.Run(tc.Name, func(t *testing.T) {
			t.Parallel()

			want, ok := tc.Expected.(string)
			require.True(t, ok, "normalization_presets case %q must carry a string expected", tc.Name)

			opts := similarity.Options{
				Locale:       optString(tc.Options, "locale"),
				StripAccents: optBool(tc.Options, "strip_accents"),
			}
			assert.Equal(t, want, similarity.Normalize(tc.Input, opts))
		})
	}
}

func TestEqualsIgnoreCase(t *testing.T) {
	t.Parallel()

	assert.True(t, similarity.EqualsIgnoreCase("README", "readme", similarity.Options{}))
	assert.True(t, similarity.EqualsIgnoreCase("café", "CAFE", similarity.Options{StripAccents: true}))
	assert.False(t, similarity.EqualsIgnoreCase("café", "CAFE", similarity.Options{}))
}
