package runes

// Category is the classification of a single text unit. Every unit maps
// to exactly one Category.
type Category int

const (
	Control Category = iota
	Whitespace
	Newline
	Tab
	ZeroWidth
	DirectionalMark
	Formatting
	Emoji
	WideChar
	FullWidth
	AmbiguousWidth
	Invalid
	Printable
)

var categoryNames = [...]string{
	Control:         "control",
	Whitespace:      "whitespace",
	Newline:         "newline",
	Tab:             "tab",
	ZeroWidth:       "zero-width",
	DirectionalMark: "directional-mark",
	Formatting:      "formatting",
	Emoji:           "emoji",
	WideChar:        "wide",
	FullWidth:       "full-width",
	AmbiguousWidth:  "ambiguous-width",
	Invalid:         "invalid",
	Printable:       "printable",
}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return "unknown"
	}
	return categoryNames[c]
}

// IsControl reports whether r is a C0 or C1 control code or DEL.
func IsControl(r rune) bool {
	return r <= 0x1F || (r >= 0x7F && r <= 0x9F)
}

// IsNewline reports whether r is a carriage return or line feed.
func IsNewline(r rune) bool {
	return r == '\r' || r == '\n'
}

// IsTab reports whether r is a horizontal tab.
func IsTab(r rune) bool {
	return r == '\t'
}

// IsWhitespace reports whether r is in the whitespace table. Tabs and
// newlines are their own categories and are not members.
func IsWhitespace(r rune) bool {
	_, ok := whitespaceSet[r]
	return ok
}

// IsZeroWidth reports whether r is in the zero-width table.
func IsZeroWidth(r rune) bool {
	_, ok := zeroWidthSet[r]
	return ok
}

// IsDirectionalMark reports whether r is a bidirectional control mark.
func IsDirectionalMark(r rune) bool {
	_, ok := directionalSet[r]
	return ok
}

// IsFormatting reports whether r is in the formatting table.
func IsFormatting(r rune) bool {
	_, ok := formattingSet[r]
	return ok
}

// IsEmoji reports whether r falls in an emoji block.
func IsEmoji(r rune) bool {
	return inRanges(emojiRanges, r)
}

// IsWideChar reports whether r falls in an East Asian wide block.
func IsWideChar(r rune) bool {
	return inRanges(wideRanges, r)
}

// IsFullWidth reports whether r falls in a fullwidth-forms block.
func IsFullWidth(r rune) bool {
	return inRanges(fullWidthRanges, r)
}

// IsAmbiguousWidth reports whether r has ambiguous East Asian width.
func IsAmbiguousWidth(r rune) bool {
	return inRanges(ambiguousRanges, r)
}

// IsInvalid reports whether r is the replacement character, which is
// what undecodable bytes decode to.
func IsInvalid(r rune) bool {
	return r == 0xFFFD
}

// Categorize classifies one text unit. r is the unit's leading code
// point and unit is its literal text, which may span several code points
// when the unit is a grapheme cluster (a CRLF pair, an emoji sequence).
//
// The checks run in a fixed precedence order because the tables are not
// disjoint: the isolate controls live in both the directional and
// formatting tables, and the fullwidth blocks sit inside the wide
// blocks. First match wins.
func Categorize(r rune, unit string) Category {
	if IsInvalid(r) {
		return Invalid
	}
	switch unit {
	case "\r", "\n", "\r\n":
		return Newline
	case "\t":
		return Tab
	}
	switch {
	case IsControl(r):
		return Control
	case IsZeroWidth(r):
		return ZeroWidth
	case IsDirectionalMark(r):
		return DirectionalMark
	case IsFormatting(r):
		return Formatting
	case IsEmoji(r):
		return Emoji
	case IsWideChar(r):
		return WideChar
	case IsFullWidth(r):
		return FullWidth
	case IsAmbiguousWidth(r):
		return AmbiguousWidth
	case IsWhitespace(r):
		return Whitespace
	default:
		return Printable
	}
}
