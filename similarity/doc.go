// Package similarity implements Unicode-aware text normalization and
// edit-distance metrics (spec §4.E): trim/casefold/accent-stripping
// normalization, Levenshtein, Damerau-OSA, unrestricted Damerau,
// Jaro-Winkler, and substring metrics, and ranked "did you mean" suggestion
// over a candidate list.
//
// Every metric operates on Unicode grapheme clusters, not bytes or runes,
// via [github.com/rivo/uniseg], so a combining-mark sequence or an emoji ZWJ
// sequence counts as a single user-perceived character — matching spec
// §4.E's grapheme-handling requirement.
//
// [Distance] and [Score] share one dispatch table keyed by [Metric]; for the
// two metrics that are natively a [0,1] similarity ([MetricJaroWinkler],
// [MetricSubstring]) Score is simply an alias for Distance, per spec's
// "identity (same value) for score-returning metrics" rule.
package similarity
