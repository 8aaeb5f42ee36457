package runes

import "regexp"

// escapeExpr matches VT/ANSI escape sequences in their two common forms:
// a two-character Fe escape (ESC followed by a final in @-Z or \-_) or a
// CSI sequence (ESC [ with parameter bytes 0-9 and ?, intermediate bytes
// space through /, and one final byte @ through ~). The Fe class leaves
// out [ so the two alternatives never compete for a CSI introducer.
//
// Stripping is defined entirely by this expression. OSC and DCS strings
// are not recognized; their ESC introducers degrade to control
// characters, which the sanitizer already drops.
const escapeExpr = `\x1b[@-Z\\-_]|\x1b\[[0-9?]*[ -/]*[@-~]`

var (
	escapePattern = regexp.MustCompile(escapeExpr)
	escapeAtStart = regexp.MustCompile(`^(?:` + escapeExpr + `)`)
)

// StripVTControlSequences removes every VT/ANSI escape sequence from s.
// Text between sequences is preserved untouched.
func StripVTControlSequences(s string) string {
	return escapePattern.ReplaceAllString(s, "")
}

// escapeLen returns the byte length of the escape sequence at the start
// of s, or 0 when s does not begin with one. Walkers that need to copy
// or skip sequences without re-scanning the whole string use this.
func escapeLen(s string) int {
	loc := escapeAtStart.FindStringIndex(s)
	if loc == nil {
		return 0
	}
	return loc[1]
}
