package runes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategorize(t *testing.T) {
	tests := []struct {
		name string
		r    rune
		unit string
		want Category
	}{
		{"replacement char is invalid", 0xFFFD, "�", Invalid},
		{"line feed is newline", '\n', "\n", Newline},
		{"carriage return is newline", '\r', "\r", Newline},
		{"crlf pair is one newline", '\r', "\r\n", Newline},
		{"tab", '\t', "\t", Tab},
		{"nul is control", 0x00, "\x00", Control},
		{"escape is control", 0x1B, "\x1b", Control},
		{"delete is control", 0x7F, "\x7f", Control},
		{"c1 control", 0x9F, "", Control},
		{"zero width space", 0x200B, "​", ZeroWidth},
		{"byte order mark", 0xFEFF, "﻿", ZeroWidth},
		{"left-to-right mark", 0x200E, "‎", DirectionalMark},
		{"right-to-left override", 0x202E, "‮", DirectionalMark},
		{"isolate resolves directional not formatting", 0x2066, "⁦", DirectionalMark},
		{"soft hyphen is formatting", 0x00AD, "­", Formatting},
		{"interlinear anchor is formatting", 0xFFF9, "￹", Formatting},
		{"emoticon is emoji", 0x1F600, "😀", Emoji},
		{"flag component is emoji", 0x1F1FA, "\U0001f1fa", Emoji},
		{"cjk ideograph is wide", '世', "世", WideChar},
		{"hangul syllable is wide", 0xAC00, "가", WideChar},
		{"ideographic space resolves wide not whitespace", 0x3000, "　", WideChar},
		{"fullwidth exclamation resolves wide first", 0xFF01, "！", WideChar},
		{"section sign is ambiguous", 0x00A7, "§", AmbiguousWidth},
		{"box drawing is ambiguous", 0x2502, "│", AmbiguousWidth},
		{"ascii space is whitespace", ' ', " ", Whitespace},
		{"no-break space is whitespace", 0x00A0, " ", Whitespace},
		{"line separator is whitespace", 0x2028, " ", Whitespace},
		{"ascii letter is printable", 'a', "a", Printable},
		{"latin letter outside tables is printable", 'ñ', "ñ", Printable},
		{"braille pattern is printable", 0x280B, "⠋", Printable},
		{"unpaired surrogate degrades to printable", 0xD800, string(rune(0xD800)), Printable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Categorize(tt.r, tt.unit),
				"categorize %U %q", tt.r, tt.unit)
		})
	}
}

func TestCategorizeTotalAndDeterministic(t *testing.T) {
	// Sample the whole code point space, surrogates included. Every
	// point must classify without panicking, identically on repeat,
	// and to a named category.
	for r := rune(0); r <= 0x10FFFF; r += 257 {
		unit := string(r)
		first := Categorize(r, unit)
		if again := Categorize(r, unit); again != first {
			t.Fatalf("categorize %U not deterministic: %v then %v", r, first, again)
		}
		if first.String() == "unknown" {
			t.Fatalf("categorize %U returned unnamed category %d", r, int(first))
		}
	}
}

func TestCategoryString(t *testing.T) {
	tests := []struct {
		name string
		c    Category
		want string
	}{
		{"control", Control, "control"},
		{"whitespace", Whitespace, "whitespace"},
		{"newline", Newline, "newline"},
		{"tab", Tab, "tab"},
		{"zero width", ZeroWidth, "zero-width"},
		{"directional", DirectionalMark, "directional-mark"},
		{"formatting", Formatting, "formatting"},
		{"emoji", Emoji, "emoji"},
		{"wide", WideChar, "wide"},
		{"full width", FullWidth, "full-width"},
		{"ambiguous", AmbiguousWidth, "ambiguous-width"},
		{"invalid", Invalid, "invalid"},
		{"printable", Printable, "printable"},
		{"out of range", Category(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.c.String())
		})
	}
}

func TestPredicates(t *testing.T) {
	tests := []struct {
		name string
		pred func(rune) bool
		r    rune
		want bool
	}{
		{"unit separator is control", IsControl, 0x1F, true},
		{"space is not control", IsControl, 0x20, false},
		{"tilde is not control", IsControl, 0x7E, false},
		{"delete is control", IsControl, 0x7F, true},
		{"apc is control", IsControl, 0x9F, true},
		{"nbsp is not control", IsControl, 0xA0, false},
		{"newline lf", IsNewline, '\n', true},
		{"newline cr", IsNewline, '\r', true},
		{"tab is not newline", IsNewline, '\t', false},
		{"tab", IsTab, '\t', true},
		{"space is whitespace", IsWhitespace, ' ', true},
		{"tab is not whitespace", IsWhitespace, '\t', false},
		{"ideographic space is whitespace", IsWhitespace, 0x3000, true},
		{"zwsp is zero width", IsZeroWidth, 0x200B, true},
		{"zwj is zero width", IsZeroWidth, 0x200D, true},
		{"lrm is not zero width", IsZeroWidth, 0x200E, false},
		{"lrm is directional", IsDirectionalMark, 0x200E, true},
		{"isolate is directional", IsDirectionalMark, 0x2069, true},
		{"isolate is also formatting", IsFormatting, 0x2069, true},
		{"soft hyphen is formatting", IsFormatting, 0x00AD, true},
		{"grinning face is emoji", IsEmoji, 0x1F600, true},
		{"check mark is not emoji", IsEmoji, '✓', false},
		{"ideograph is wide", IsWideChar, 0x4E16, true},
		{"fullwidth form is wide too", IsWideChar, 0xFF01, true},
		{"fullwidth form is full width", IsFullWidth, 0xFF01, true},
		{"ideograph is not full width", IsFullWidth, 0x4E16, false},
		{"ideographic space is full width", IsFullWidth, 0x3000, true},
		{"euro sign is ambiguous", IsAmbiguousWidth, 0x20AC, true},
		{"ascii is not ambiguous", IsAmbiguousWidth, 'a', false},
		{"replacement char is ambiguous", IsAmbiguousWidth, 0xFFFD, true},
		{"replacement char is invalid", IsInvalid, 0xFFFD, true},
		{"ascii is not invalid", IsInvalid, 'a', false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.pred(tt.r), "%U", tt.r)
		})
	}
}

func TestRangeTablesSortedNonOverlapping(t *testing.T) {
	tables := map[string][]runeRange{
		"emoji":      emojiRanges,
		"wide":       wideRanges,
		"full-width": fullWidthRanges,
		"ambiguous":  ambiguousRanges,
	}

	for name, table := range tables {
		t.Run(name, func(t *testing.T) {
			for i, rng := range table {
				assert.LessOrEqual(t, rng.Lo, rng.Hi, "entry %d inverted", i)
				if i > 0 {
					assert.Greater(t, rng.Lo, table[i-1].Hi,
						"entry %d overlaps or disorders entry %d", i, i-1)
				}
			}
		})
	}
}

func TestInRangesBoundaries(t *testing.T) {
	table := []runeRange{{10, 20}, {30, 30}, {40, 50}}

	tests := []struct {
		name string
		r    rune
		want bool
	}{
		{"below first", 9, false},
		{"first lo", 10, true},
		{"first hi", 20, true},
		{"gap", 25, false},
		{"single point", 30, true},
		{"above single", 31, false},
		{"last lo", 40, true},
		{"last hi", 50, true},
		{"above last", 51, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, inRanges(table, tt.r))
		})
	}
}
