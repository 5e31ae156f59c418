package shared

import (
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// Persisted files may pick up stray control or non-ASCII bytes from manual
// edits; every line is reduced to the printable ASCII range before parsing.
var printable = runes.Remove(runes.Predicate(func(r rune) bool {
	return r < 0x20 || r > 0x7e
}))

// SanitizeLine strips bytes outside the printable ASCII range from a line.
func SanitizeLine(line string) string {
	out, _, err := transform.String(printable, line)
	if err != nil {
		return line
	}
	return out
}
