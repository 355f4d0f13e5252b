// Package judgment converts free-form completion text into typed values.
// It is the central resilience mechanism: parse-or-fallback makes every
// AI-consuming call a total function with a statically known output type.
package judgment

import (
	"encoding/json"
	"strings"

	"github.com/Abraxas-365/ascent/pkg/logx"
)

// Object extracts the first balanced {...} span from raw, decodes it
// into T, and returns fallback unchanged on any failure.
func Object[T any](raw string, fallback T) T {
	span, ok := extractSpan(raw, '{', '}')
	if !ok {
		logx.Warnf("judgment: no balanced object span in response (len=%d)", len(raw))
		return fallback
	}

	var out T
	if err := json.Unmarshal([]byte(span), &out); err != nil {
		logx.Warnf("judgment: object decode failed: %v", err)
		return fallback
	}
	return out
}

// Array extracts the first balanced [...] span from raw, decodes it
// into []T, and returns fallback unchanged on any failure.
func Array[T any](raw string, fallback []T) []T {
	span, ok := extractSpan(raw, '[', ']')
	if !ok {
		logx.Warnf("judgment: no balanced array span in response (len=%d)", len(raw))
		return fallback
	}

	var out []T
	if err := json.Unmarshal([]byte(span), &out); err != nil {
		logx.Warnf("judgment: array decode failed: %v", err)
		return fallback
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}

// stripFences removes a surrounding markdown code fence, if present.
func stripFences(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```json") {
		raw = strings.TrimPrefix(raw, "```json")
	} else if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```")
	}
	raw = strings.TrimSuffix(strings.TrimSpace(raw), "```")
	return strings.TrimSpace(raw)
}

// extractSpan scans for the first balanced open..close span, tracking
// JSON string literals and escapes so brackets inside strings do not
// count. A regex cannot do this reliably; the scanner can.
func extractSpan(raw string, open, close byte) (string, bool) {
	s := stripFences(raw)

	start := -1
	depth := 0
	inString := false
	escaped := false

	for i := 0; i < len(s); i++ {
		c := s[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			if depth > 0 {
				inString = true
			}
		case open:
			if depth == 0 {
				start = i
			}
			depth++
		case close:
			if depth == 0 {
				continue
			}
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}

	return "", false
}
