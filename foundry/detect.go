package foundry

import (
	"bytes"
	"context"
	"io"
	"os"
	"sort"

	"github.com/fulmenhq/crucible-go/diagnostic"
)

const (
	priorityNDJSON    = 9
	priorityYAML      = 7
	priorityCSV       = 6
	priorityProtobuf  = 5
	priorityPlainText = 1
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

type ruleEntry struct {
	priority  int
	mimeType  string
	strategy  MatchStrategy
	exact     *Signature
	heuristic func([]byte) bool
}

func builtinHeuristics() []ruleEntry {
	return []ruleEntry{
		{priority: priorityNDJSON, mimeType: "application/x-ndjson", strategy: MatchHeuristic, heuristic: detectNDJSON},
		{priority: priorityYAML, mimeType: "application/x-yaml", strategy: MatchHeuristic, heuristic: detectYAML},
		{priority: priorityCSV, mimeType: "text/csv", strategy: MatchHeuristic, heuristic: detectCSV},
		{priority: priorityProtobuf, mimeType: "application/x-protobuf", strategy: MatchHeuristic, heuristic: detectProtobuf},
		{priority: priorityPlainText, mimeType: "text/plain", strategy: MatchHeuristic, heuristic: detectPlainText},
	}
}

// detectionRules merges the embedded exact-match signature catalog with
// the built-in heuristic detectors into one priority-descending list
// (spec §4.D: "the interleaved priority must allow NDJSON to match
// before the plain JSON exact signature").
func detectionRules() ([]ruleEntry, error) {
	if err := ensureCatalogs(); err != nil {
		return nil, err
	}
	rules := make([]ruleEntry, 0, len(magicSignatures)+5)
	for i := range magicSignatures {
		sig := magicSignatures[i]
		rules = append(rules, ruleEntry{
			priority: sig.Priority,
			mimeType: sig.MimeType,
			strategy: sig.MatchStrategy,
			exact:    &sig,
		})
	}
	rules = append(rules, builtinHeuristics()...)
	sort.SliceStable(rules, func(i, j int) bool { return rules[i].priority > rules[j].priority })
	return rules, nil
}

// Detect runs the priority-ordered signature matcher over data (spec
// §4.D). It returns (nil, nil) when nothing matches.
func Detect(data []byte) (*Detection, error) {
	rules, err := detectionRules()
	if err != nil {
		return nil, err
	}

	data = stripBOMBytes(data)
	sample := data
	if len(sample) > maxBytesToRead {
		sample = sample[:maxBytesToRead]
	}

	for _, rule := range rules {
		switch rule.strategy {
		case MatchExact:
			if matchesSignature(data, rule.exact) {
				return &Detection{MimeType: rule.mimeType, Strategy: MatchExact}, nil
			}
		case MatchHeuristic:
			if rule.heuristic(sample) {
				return &Detection{MimeType: rule.mimeType, Strategy: MatchHeuristic}, nil
			}
		}
	}
	return nil, nil
}

// DetectFile reads path and runs [Detect] over its contents.
func DetectFile(path string) (*Detection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &diagnostic.FoundryCatalogError{Catalog: "detect:" + path, Cause: err}
	}
	return Detect(data)
}

// DetectStream reads at most bytesToRead bytes from r (0 means the spec
// default of 512) and runs [Detect] over them, honoring ctx cancellation
// while the read is in flight.
func DetectStream(ctx context.Context, r io.Reader, bytesToRead int) (*Detection, error) {
	if bytesToRead <= 0 {
		bytesToRead = maxBytesToRead
	}

	type readResult struct {
		n   int
		err error
	}
	buf := make([]byte, bytesToRead)
	done := make(chan readResult, 1)
	go func() {
		n, err := io.ReadFull(r, buf)
		done <- readResult{n: n, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-done:
		if res.err != nil && res.err != io.ErrUnexpectedEOF && res.err != io.EOF {
			return nil, res.err
		}
		return Detect(buf[:res.n])
	}
}

func stripBOMBytes(data []byte) []byte {
	if bytes.HasPrefix(data, utf8BOM) {
		return data[len(utf8BOM):]
	}
	return data
}

func matchesSignature(data []byte, sig *Signature) bool {
	for _, p := range sig.Patterns {
		if matchesPattern(data, p) {
			return true
		}
	}
	return false
}

func matchesPattern(data []byte, p Pattern) bool {
	end := p.Offset + len(p.Bytes)
	if end > len(data) {
		return false
	}
	window := data[p.Offset:end]
	if len(p.Mask) == 0 {
		return bytes.Equal(window, p.Bytes)
	}
	if len(p.Mask) != len(p.Bytes) {
		return false
	}
	for i := range window {
		if (window[i] & p.Mask[i]) != (p.Bytes[i] & p.Mask[i]) {
			return false
		}
	}
	return true
}
