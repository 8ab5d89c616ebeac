package utils

import "strings"

// NormalizePhone strips every non-digit rune so that formatting differences
// ("+91 98765-43210" vs "919876543210") never fragment identity. Empty input
// passes through unchanged. Idempotent.
func NormalizePhone(input string) string {
	if input == "" {
		return input
	}
	var b strings.Builder
	b.Grow(len(input))
	for _, r := range input {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
