// Package runes classifies Unicode text and rewrites it for terminal
// display: sanitization, display-width measurement, and ANSI-aware
// truncation.
//
// Everything in the package is a pure function over an input string and
// an Options value. The classification tables are built once and only
// ever read, so every function is safe for concurrent use.
//
// # Classification
//
// Each text unit (an extended grapheme cluster) gets exactly one
// Category, decided by a fixed precedence order over the tables:
//
//	Invalid          U+FFFD and undecodable bytes
//	Newline          \r, \n, and the CRLF pair
//	Tab              \t
//	Control          C0, C1, DEL
//	ZeroWidth        ZWSP, ZWNJ, ZWJ, word joiner, BOM
//	DirectionalMark  bidi embeddings, overrides, isolates
//	Formatting       soft hyphen, interlinear annotation
//	Emoji            SMP pictographic blocks
//	WideChar         East Asian wide blocks
//	FullWidth        fullwidth forms
//	AmbiguousWidth   East Asian ambiguous
//	Whitespace       spaces and separators
//	Printable        everything else
//
// # Sanitization
//
// Sanitize applies a per-category policy to every unit: replace
// newlines and tabs, drop or keep control and invisible characters, cap
// consecutive whitespace, strip escape sequences, normalize, truncate.
// Policies combine independently:
//
//	out := runes.Sanitize(in, runes.DefaultOptions())
//
// Use NewWriter to sanitize a live stream writer-side.
//
// # Width
//
// StringWidth measures terminal columns the way a terminal renders:
// escape sequences count as zero, CJK and emoji as two cells, tabs as
// TabWidth. VisibleLength and Truncate are the character-count
// siblings used for padding and clipping styled output.
package runes
