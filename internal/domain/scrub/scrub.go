// Package scrub normalizes free-text input before it is validated and
// stored: markup is stripped and surrounding whitespace trimmed.
package scrub

import "strings"

// Clean removes anything between angle brackets and trims the result.
// The tool stores plain attribute values only; markup has no business
// being in any of them.
func Clean(value string) string {
	var b strings.Builder
	b.Grow(len(value))
	inTag := false
	for _, r := range value {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}
