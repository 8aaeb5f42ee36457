package runes

import (
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// CharWidth returns the column width of one text unit under opts. The
// unit is priced by its leading code point. The width checks run their
// own priority order, distinct from Categorize: fullwidth forms are
// priced before the general wide blocks so FullWidthWidth can differ
// from WideWidth even though the tables overlap.
func CharWidth(unit string, opts Options) int {
	if unit == "" {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(unit)
	switch {
	case IsEmoji(r):
		return opts.EmojiWidth
	case IsFullWidth(r):
		return opts.FullWidthWidth
	case IsWideChar(r):
		return opts.WideWidth
	case IsAmbiguousWidth(r):
		return opts.AmbiguousWidth
	case IsZeroWidth(r):
		return 0
	case IsControl(r):
		return 0
	default:
		return opts.RegularWidth
	}
}

// StringWidth returns the number of terminal columns s occupies under
// opts. Escape sequences are always consumed whole and priced at
// ANSIWidth, never measured as text. Tabs cost TabWidth; newlines and
// other control characters cost ControlWidth; everything else is priced
// by CharWidth per grapheme cluster.
//
// When StripVTControlSequences or MaxConsecutiveWhitespace is set, the
// string is first rewritten by Sanitize so stripped sequences and
// capped whitespace runs cannot inflate the measurement. The pre-pass
// keeps tabs, newlines, control, zero-width, and directional characters
// in place so their width settings still apply.
func StringWidth(s string, opts Options) int {
	if s == "" {
		return 0
	}
	if opts.StripVTControlSequences || opts.MaxConsecutiveWhitespace > 0 {
		pre := opts
		pre.ReplaceNewline = "\n"
		pre.ReplaceTab = "\t"
		pre.ReplaceInvalidWith = "�"
		pre.PreserveControlChars = true
		pre.PreserveZeroWidth = true
		pre.PreserveDirectional = true
		pre.CustomReplacements = nil
		pre.MaxLength = 0
		s = Sanitize(s, pre)
	}

	width := 0
	state := -1
	for len(s) > 0 {
		if n := escapeLen(s); n > 0 {
			width += opts.ANSIWidth
			s = s[n:]
			state = -1
			continue
		}
		cluster, rest, _, newState := uniseg.FirstGraphemeClusterInString(s, state)
		s, state = rest, newState

		r, _ := utf8.DecodeRuneInString(cluster)
		switch Categorize(r, cluster) {
		case Tab:
			width += opts.TabWidth
		case Newline, Control:
			width += opts.ControlWidth
		default:
			width += CharWidth(cluster, opts)
		}
	}
	return width
}
