package similarity

import (
	"fmt"

	"github.com/fulmenhq/crucible-go/diagnostic"
)

// Metric names one of the five supported comparison algorithms (spec §4.E).
type Metric string

const (
	MetricLevenshtein         Metric = "levenshtein"
	MetricDamerauOSA          Metric = "damerau_osa"
	MetricDamerauUnrestricted Metric = "damerau_unrestricted"
	MetricJaroWinkler         Metric = "jaro_winkler"
	MetricSubstring           Metric = "substring"
)

// DefaultMetric is used by [Distance], [Score], and [Suggest] when the
// caller leaves Metric as the zero value.
const DefaultMetric = MetricLevenshtein

// Distance compares a and b under metric and returns the metric's native
// unit: an edit count for [MetricLevenshtein], [MetricDamerauOSA], and
// [MetricDamerauUnrestricted]; a [0,1] similarity for [MetricJaroWinkler]
// and [MetricSubstring]. An empty metric falls back to [DefaultMetric].
func Distance(a, b string, metric Metric) (float64, error) {
	if metric == "" {
		metric = DefaultMetric
	}
	ca, cb := graphemeClusters(a), graphemeClusters(b)
	switch metric {
	case MetricLevenshtein:
		return float64(levenshtein(ca, cb)), nil
	case MetricDamerauOSA:
		return float64(damerauOSA(ca, cb)), nil
	case MetricDamerauUnrestricted:
		return float64(damerauUnrestricted(ca, cb)), nil
	case MetricJaroWinkler:
		return jaroWinklerSimilarity(ca, cb), nil
	case MetricSubstring:
		return substringSimilarity(ca, cb), nil
	default:
		return 0, &diagnostic.SimilarityError{Catalog: "similarity", Cause: fmt.Errorf("unknown metric %q", metric)}
	}
}

// Score normalizes the comparison of a and b under metric into a [0,1]
// similarity, 1 meaning identical. For the edit-count metrics this is
// 1 - distance/max(len(a), len(b)) in grapheme clusters; for
// [MetricJaroWinkler] and [MetricSubstring], which are already a [0,1]
// similarity, Score is an alias for [Distance].
func Score(a, b string, metric Metric) (float64, error) {
	if metric == "" {
		metric = DefaultMetric
	}
	switch metric {
	case MetricJaroWinkler, MetricSubstring:
		return Distance(a, b, metric)
	case MetricLevenshtein, MetricDamerauOSA, MetricDamerauUnrestricted:
		d, err := Distance(a, b, metric)
		if err != nil {
			return 0, err
		}
		maxLen := len(graphemeClusters(a))
		if lb := len(graphemeClusters(b)); lb > maxLen {
			maxLen = lb
		}
		if maxLen == 0 {
			return 1.0, nil
		}
		return 1 - d/float64(maxLen), nil
	default:
		return 0, &diagnostic.SimilarityError{Catalog: "similarity", Cause: fmt.Errorf("unknown metric %q", metric)}
	}
}
