package foundry

import (
	"bytes"
	"encoding/json"
	"strings"
	"unicode/utf8"
)

const maxBytesToRead = 512

// detectNDJSON implements spec §4.D's NDJSON heuristic: decode the first
// 512 bytes as UTF-8, split on LF, require at least 2 non-empty lines,
// require the first 2-3 lines each parse as valid JSON.
func detectNDJSON(sample []byte) bool {
	if !utf8.Valid(sample) {
		return false
	}
	lines := nonEmptyLines(sample)
	if len(lines) < 2 {
		return false
	}
	checkCount := len(lines)
	if checkCount > 3 {
		checkCount = 3
	}
	for i := 0; i < checkCount; i++ {
		if !json.Valid([]byte(lines[i])) {
			return false
		}
	}
	return true
}

// detectYAML implements spec §4.D's YAML heuristic: on the first ~10
// non-blank, non-comment lines, require at least 2 lines matching
// "key: value" or "- item" and zero JSON-structural indicators.
func detectYAML(sample []byte) bool {
	if !utf8.Valid(sample) {
		return false
	}
	var candidates []string
	for _, line := range strings.Split(string(sample), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		candidates = append(candidates, trimmed)
		if len(candidates) == 10 {
			break
		}
	}
	if len(candidates) == 0 {
		return false
	}

	matches := 0
	for _, line := range candidates {
		if strings.ContainsAny(line, "{[") || strings.HasSuffix(line, ",") {
			return false
		}
		if looksLikeYAMLMapping(line) || strings.HasPrefix(line, "- ") || line == "-" {
			matches++
		}
	}
	return matches >= 2
}

func looksLikeYAMLMapping(line string) bool {
	idx := strings.Index(line, ":")
	if idx <= 0 {
		return false
	}
	// A bare "key:" with nothing after it, or "key: value" — either is
	// a valid mapping line; only reject when the colon is immediately
	// followed by '//' (a URL, not a mapping).
	return !strings.HasPrefix(line[idx:], "://")
}

// detectCSV implements spec §4.D's CSV heuristic: try delimiters in
// order ",", ";", TAB; the chosen delimiter must appear at least once
// and produce the same field count on every non-empty line of the first
// 512 bytes.
func detectCSV(sample []byte) bool {
	if !utf8.Valid(sample) {
		return false
	}
	lines := nonEmptyLines(sample)
	if len(lines) == 0 {
		return false
	}
	for _, delim := range []string{",", ";", "\t"} {
		if csvDelimiterConsistent(lines, delim) {
			return true
		}
	}
	return false
}

func csvDelimiterConsistent(lines []string, delim string) bool {
	first := strings.Count(lines[0], delim)
	if first < 1 {
		return false
	}
	for _, line := range lines[1:] {
		if strings.Count(line, delim) != first {
			return false
		}
	}
	return true
}

// detectProtobuf implements spec §4.D's protobuf heuristic: byte 0
// encodes a varint tag (wire type in the low 3 bits, one of {0,1,2,5};
// field number in the high 5 bits, in [1,99]), and the sample must look
// binary (>10% NUL or sub-SPACE control bytes excluding TAB/LF/CR).
func detectProtobuf(sample []byte) bool {
	if len(sample) == 0 {
		return false
	}
	wireType := sample[0] & 0x07
	fieldNumber := sample[0] >> 3
	switch wireType {
	case 0, 1, 2, 5:
	default:
		return false
	}
	if fieldNumber < 1 || fieldNumber > 99 {
		return false
	}
	return binaryByteRatio(sample) > 0.10
}

// detectPlainText implements spec §4.D's plain-text heuristic: on a
// non-empty 512-byte sample, the binary-byte ratio must be under 5%.
func detectPlainText(sample []byte) bool {
	if len(sample) == 0 {
		return false
	}
	return binaryByteRatio(sample) < 0.05
}

// binaryByteRatio is the fraction of bytes that are NUL or a control
// byte below 0x20 other than TAB (0x09), LF (0x0A), or CR (0x0D).
func binaryByteRatio(sample []byte) float64 {
	binary := 0
	for _, b := range sample {
		if b == 0x00 || (b < 0x20 && b != 0x09 && b != 0x0A && b != 0x0D) {
			binary++
		}
	}
	return float64(binary) / float64(len(sample))
}

func nonEmptyLines(sample []byte) []string {
	var out []string
	for _, line := range bytes.Split(sample, []byte("\n")) {
		if len(bytes.TrimSpace(line)) > 0 {
			out = append(out, string(line))
		}
	}
	return out
}
