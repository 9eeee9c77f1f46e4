package similarity

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Options controls the normalization a comparison applies before measuring
// distance or equality (spec §4.E "normalize").
type Options struct {
	// Locale enables locale-specific casefolding. Only "tr" and "az" are
	// special-cased today (Turkish/Azeri dotted/dotless I); every other
	// value, including "", uses locale-independent Unicode case folding.
	Locale string
	// StripAccents removes combining marks after NFD decomposition.
	StripAccents bool
}

var accentStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize trims leading/trailing whitespace, casefolds, and optionally
// strips accents, in that order (spec §4.E).
func Normalize(s string, opts Options) string {
	s = strings.TrimSpace(s)
	s = Casefold(s, opts.Locale)
	if opts.StripAccents {
		s = StripAccents(s)
	}
	return s
}

// Casefold applies Unicode default case folding. For locale "tr" or "az" it
// first rewrites the Latin letter I and dotted capital İ the way Turkish and
// Azeri orthography expects, since Unicode's locale-independent fold alone
// collapses both onto "i" and loses the dotless/dotted distinction those
// languages draw.
func Casefold(s string, locale string) string {
	switch locale {
	case "tr", "az":
		var sb strings.Builder
		sb.Grow(len(s))
		for _, r := range s {
			switch r {
			case 'İ':
				sb.WriteRune('i')
			case 'I':
				sb.WriteRune('ı')
			default:
				sb.WriteRune(r)
			}
		}
		s = sb.String()
	}
	return cases.Fold().String(s)
}

// StripAccents removes Unicode combining marks (category Mn) by decomposing
// to NFD, dropping the marks, and recomposing to NFC.
func StripAccents(s string) string {
	out, _, err := transform.String(accentStripper, s)
	if err != nil {
		return s
	}
	return out
}

// EqualsIgnoreCase reports whether a and b are equal after Normalize with
// opts.
func EqualsIgnoreCase(a, b string, opts Options) bool {
	return Normalize(a, opts) == Normalize(b, opts)
}
