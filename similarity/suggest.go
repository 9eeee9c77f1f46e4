package similarity

import "sort"

// SuggestOptions controls [Suggest]'s matching and ranking behavior. The
// zero value resolves to [DefaultSuggestOptions].
type SuggestOptions struct {
	Metric         Metric
	MinScore       float64
	MaxSuggestions int
	// Normalize, when true (the default), normalizes both input and each
	// candidate via [Normalize] with Locale/StripAccents before scoring.
	Normalize    bool
	Locale       string
	StripAccents bool
}

// DefaultSuggestOptions returns the baseline suggestion policy: Levenshtein
// similarity, a 0.6 minimum score, up to 3 suggestions, normalization on.
func DefaultSuggestOptions() SuggestOptions {
	return SuggestOptions{
		Metric:         DefaultMetric,
		MinScore:       0.6,
		MaxSuggestions: 3,
		Normalize:      true,
	}
}

func resolveSuggestOptions(opts SuggestOptions) SuggestOptions {
	defaults := DefaultSuggestOptions()
	if opts.Metric == "" {
		opts.Metric = defaults.Metric
	}
	if opts.MinScore == 0 {
		opts.MinScore = defaults.MinScore
	}
	if opts.MaxSuggestions == 0 {
		opts.MaxSuggestions = defaults.MaxSuggestions
	}
	return opts
}

// Suggest ranks candidates by similarity to input and returns up to
// opts.MaxSuggestions whose score clears opts.MinScore, highest score first.
// Ties break on the raw (un-normalized) candidate value in ascending
// lexical order, so suggestion order is stable regardless of input order
// (spec §4.E open question, resolved in favor of deterministic output).
func Suggest(input string, candidates []string, opts SuggestOptions) ([]SuggestionResult, error) {
	resolved := resolveSuggestOptions(opts)

	compareInput := input
	if resolved.Normalize {
		compareInput = Normalize(input, Options{Locale: resolved.Locale, StripAccents: resolved.StripAccents})
	}

	results := make([]SuggestionResult, 0, len(candidates))
	for _, candidate := range candidates {
		compareCandidate := candidate
		if resolved.Normalize {
			compareCandidate = Normalize(candidate, Options{Locale: resolved.Locale, StripAccents: resolved.StripAccents})
		}
		score, err := Score(compareInput, compareCandidate, resolved.Metric)
		if err != nil {
			return nil, err
		}
		if score >= resolved.MinScore {
			results = append(results, SuggestionResult{Value: candidate, Score: score})
		}
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Value < results[j].Value
	})

	if len(results) > resolved.MaxSuggestions {
		results = results[:resolved.MaxSuggestions]
	}
	return results, nil
}

// SuggestionResult is a single ranked candidate from [Suggest].
type SuggestionResult struct {
	Value string
	Score float64
}
