package assist

import (
	"strconv"
	"strings"
)

// parseLeadingNumber extracts an integer from a model response by
// stripping everything that is not a digit. Returns false when the
// response held no digits at all.
func parseLeadingNumber(text string) (int, bool) {
	var b strings.Builder
	for _, r := range text {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(b.String())
	if err != nil {
		return 0, false
	}
	return n, true
}

// extractJSONObject returns the first {...} span of a model response,
// tolerating prose or code fences around it.
func extractJSONObject(text string) (string, bool) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return "", false
	}
	return text[start : end+1], true
}
