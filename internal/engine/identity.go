package engine

import (
	"math/rand/v2"
	"strings"
)

// Friend codes are short public identity tokens. The alphabet drops
// glyphs that are easy to misread over a screenshot (I, O, 0, 1).
const (
	friendCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	friendCodeLength   = 6
)

// GenerateFriendCode draws a fresh 6-character code uniformly at
// random. Codes are generated once per user at onboarding (or on load
// when an older record has none).
func GenerateFriendCode() string {
	var b strings.Builder
	b.Grow(friendCodeLength)
	for i := 0; i < friendCodeLength; i++ {
		b.WriteByte(friendCodeAlphabet[rand.IntN(len(friendCodeAlphabet))])
	}
	return b.String()
}

// NormalizeCode canonicalizes a user-entered friend or party code.
// Codes are case-insensitive.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
