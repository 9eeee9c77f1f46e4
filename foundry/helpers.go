package foundry

import (
	"encoding/hex"
	"fmt"
	"strings"
)

func lowerASCII(s string) string { return strings.ToLower(s) }
func upperASCII(s string) string { return strings.ToUpper(s) }

// padNumeric normalizes a numeric country code to a left-padded 3-digit
// string, accepting either an already-padded string or a bare number
// (spec §4.D: "accepts string or number, normalizes to padded-3 digits").
func padNumeric(s string) string {
	s = strings.TrimSpace(s)
	for len(s) < 3 {
		s = "0" + s
	}
	return s
}

func decodePattern(p magicPatternRaw) (Pattern, error) {
	b, err := hex.DecodeString(p.BytesHex)
	if err != nil {
		return Pattern{}, fmt.Errorf("decoding bytesHex %q: %w", p.BytesHex, err)
	}
	var mask []byte
	if p.MaskHex != "" {
		mask, err = hex.DecodeString(p.MaskHex)
		if err != nil {
			return Pattern{}, fmt.Errorf("decoding maskHex %q: %w", p.MaskHex, err)
		}
	}
	return Pattern{Offset: p.Offset, Bytes: b, Mask: mask, Description: p.Description}, nil
}
