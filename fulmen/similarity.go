package fulmen

import "github.com/fulmenhq/crucible-go/similarity"

// TextDistance computes the edit distance between a and b under metric.
func TextDistance(a, b string, metric similarity.Metric) (float64, error) {
	return similarity.Distance(a, b, metric)
}

// TextScore computes the normalized [0,1] similarity between a and b
// under metric.
func TextScore(a, b string, metric similarity.Metric) (float64, error) {
	return similarity.Score(a, b, metric)
}

// NormalizeText casefolds and optionally strips accents from s per opts.
func NormalizeText(s string, opts similarity.Options) string {
	return similarity.Normalize(s, opts)
}

// SuggestMatches ranks candidates by similarity to input, returning the
// top matches per opts.
func SuggestMatches(input string, candidates []string, opts similarity.SuggestOptions) ([]similarity.SuggestionResult, error) {
	return similarity.Suggest(input, candidates, opts)
}
