package similarity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fulmenhq/crucible-go/similarity"
)

const scoreEpsilon = 1e-4

func runDistanceFixture(t *testing.T, metric similarity.Metric) {
	t.Helper()

	for _, tc := range loadFixtureCategory(t, string(metric)) {
		t.Run(tc.Name, func(t *testing.T) {
			t.Parallel()

			d, err := similarity.Distance(tc.InputA, tc.InputB, metric)
			require.NoError(t, err)
			assert.InDelta(t, tc.ExpectedDistance, d, scoreEpsilon)

			s, err := similarity.Score(tc.InputA, tc.InputB, metric)
			require.NoError(t, err)
			assert.InDelta(t, tc.ExpectedScore, s, scoreEpsilon)
		})
	}
}

func TestDistanceLevenshteinFixture(t *testing.T) {
	t.Parallel()
	runDistanceFixture(t, similarity.MetricLevenshtein)
}

func TestDistanceDamerauOSAFixture(t *testing.T) {
	t.Parallel()
	runDistanceFixture(t, similarity.MetricDamerauOSA)
}

func TestDistanceDamerauUnrestrictedFixture(t *testing.T) {
	t.Parallel()
	runDistanceFixture(t, similarity.MetricDamerauUnrestricted)
}

func TestDistanceJaroWinklerFixture(t *testing.T) {
	t.Parallel()
	runDistanceFixture(t, similarity.MetricJaroWinkler)
}

func TestDistanceSubstringFixture(t *testing.T) {
	t.Parallel()
	runDistanceFixture(t, similarity.MetricSubstring)
}

// TestDistanceGraphemeAware compares an NFC-precomposed string against its
// NFD-decomposed equivalent (a base letter followed by a combining acute
// accent). Both render as "café" but are different byte sequences; the
// distance engine must treat them as the same 4-grapheme string. This isn't
// expressible as a scalar fixture case since the two inputs are visually
// identical in the YAML source, so it stays hand-written.
func TestDistanceGraphemeAware(t *testing.T) {
	t.Parallel()

	precomposed := "café"
	decomposed := "café"
	require.NotEqual(t, precomposed, decomposed, "fixture must use distinct Unicode forms")

	d, err := similarity.Distance(precomposed, decomposed, similarity.MetricLevenshtein)
	require.NoError(t, err)
	assert.Equal(t, 0.0, d)
}

func TestDistanceUnknownMetric(t *testing.T) {
	t.Parallel()

	_, err := similarity.Distance("a", "b", similarity.Metric("bogus"))
	assert.Error(t, err)

	_, err = similarity.Score("a", "b", similarity.Metric("bogus"))
	assert.Error(t, err)
}
