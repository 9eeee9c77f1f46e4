package similarity

import (
	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/norm"
)

// graphemeClusters splits s into user-perceived characters so every metric
// in this package compares the same units a person would count, rather than
// bytes or runes (spec §4.E). s is NFC-normalized first so that a
// precomposed character (e.g. "é") and its decomposed form ("e" + combining
// acute accent) cluster identically.
func graphemeClusters(s string) []string {
	if s == "" {
		return nil
	}
	s = norm.NFC.String(s)
	clusters := make([]string, 0, len(s))
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		clusters = append(clusters, g.Str())
	}
	return clusters
}
