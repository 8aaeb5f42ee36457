package runes

import (
	"strings"
	"unicode/utf8"
)

// VisibleLength returns the number of characters s renders as text once
// escape sequences are removed. This is a character count, not a column
// count; layout code that needs columns wants StringWidth.
func VisibleLength(s string) int {
	return utf8.RuneCountInString(StripVTControlSequences(s))
}

// Truncate shortens s to at most maxLength visible characters, counting
// suffix against the budget. Embedded escape sequences are copied
// through verbatim and cost nothing, so styled text keeps its styling
// up to the cut. Strings already within the budget come back unchanged.
func Truncate(s string, maxLength int, suffix string) string {
	if VisibleLength(s) <= maxLength {
		return s
	}

	budget := maxLength - utf8.RuneCountInString(suffix)
	if budget < 0 {
		budget = 0
	}

	var b strings.Builder
	count := 0
	for i := 0; i < len(s) && count < budget; {
		if n := escapeLen(s[i:]); n > 0 {
			b.WriteString(s[i : i+n])
			i += n
			continue
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		b.WriteString(s[i : i+size])
		i += size
		count++
	}
	b.WriteString(suffix)
	return b.String()
}
