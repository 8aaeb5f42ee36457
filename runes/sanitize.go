package runes

import (
	"io"
	"strings"
	"unicode/utf8"

	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/norm"
)

// Normalization selects a Unicode normalization form applied to the
// whole input before the per-unit pass. The zero value applies none.
type Normalization int

const (
	NormNone Normalization = iota
	NFC
	NFD
	NFKC
	NFKD
)

func (n Normalization) String() string {
	switch n {
	case NFC:
		return "nfc"
	case NFD:
		return "nfd"
	case NFKC:
		return "nfkc"
	case NFKD:
		return "nfkd"
	default:
		return "none"
	}
}

func (n Normalization) apply(s string) string {
	switch n {
	case NFC:
		return norm.NFC.String(s)
	case NFD:
		return norm.NFD.String(s)
	case NFKC:
		return norm.NFKC.String(s)
	case NFKD:
		return norm.NFKD.String(s)
	default:
		return s
	}
}

// Options configures sanitization and width measurement. It is a plain
// value: pass it by value, share it freely, no call mutates it.
//
// The zero value is legal and deterministic but strict: it drops
// newlines and tabs (empty replacements) and measures every character
// as zero columns. Start from DefaultOptions instead.
type Options struct {
	// ReplaceNewline is emitted in place of each newline unit. A CRLF
	// pair counts as one unit. Empty drops newlines.
	ReplaceNewline string

	// ReplaceTab is emitted in place of each tab. Empty drops tabs.
	ReplaceTab string

	// CustomReplacements maps code points to replacement text. It is
	// consulted before category dispatch, so it can override the
	// treatment of any unit by its leading code point.
	CustomReplacements map[rune]string

	// PreserveControlChars keeps control characters instead of
	// dropping them.
	PreserveControlChars bool

	// MaxConsecutiveWhitespace caps each run of emitted whitespace,
	// tab, and newline substitutions. 0 means unlimited.
	MaxConsecutiveWhitespace int

	// StripVTControlSequences removes ANSI escape sequences before any
	// other processing.
	StripVTControlSequences bool

	// Normalization applies the named Unicode normalization form to
	// the whole string before the per-unit pass.
	Normalization Normalization

	// MaxLength truncates the sanitized output to this many grapheme
	// clusters. 0 means unlimited. A hard cut: no suffix is added.
	MaxLength int

	// ReplaceInvalidWith is emitted for each invalid unit (U+FFFD or
	// an undecodable byte). Empty drops them.
	ReplaceInvalidWith string

	// PreserveZeroWidth keeps zero-width code points.
	PreserveZeroWidth bool

	// PreserveDirectional keeps bidirectional control marks.
	PreserveDirectional bool

	// Per-category column widths used by CharWidth and StringWidth.
	ANSIWidth      int // per whole escape sequence
	ControlWidth   int
	TabWidth       int
	AmbiguousWidth int
	EmojiWidth     int
	FullWidthWidth int
	RegularWidth   int
	WideWidth      int
}

// DefaultOptions returns the standard configuration: newlines kept,
// tabs expanded to four spaces, invisible and control characters
// dropped, and widths matching a modern terminal.
func DefaultOptions() Options {
	return Options{
		ReplaceNewline: "\n",
		ReplaceTab:     "    ",
		TabWidth:       8,
		EmojiWidth:     2,
		FullWidthWidth: 2,
		WideWidth:      2,
		AmbiguousWidth: 1,
		RegularWidth:   1,
	}
}

// Sanitize rewrites input one grapheme cluster at a time according to
// opts. Each cluster is classified by Categorize on its leading code
// point and literal text, then replaced, dropped, kept, or rate-limited
// by the matching policy. Malformed bytes never fail the pass; they
// classify as invalid and follow ReplaceInvalidWith.
//
// Cluster-level iteration keeps multi-code-point text intact: an emoji
// ZWJ sequence or a combining sequence survives whole even though its
// trailing code points would be stripped standing alone.
func Sanitize(input string, opts Options) string {
	if input == "" {
		return ""
	}
	if opts.StripVTControlSequences {
		input = StripVTControlSequences(input)
	}
	input = opts.Normalization.apply(input)

	var b strings.Builder
	b.Grow(len(input))

	// Consecutive whitespace emitted so far. Local to this pass;
	// streaming callers re-invoke per chunk and the run restarts.
	ws := 0

	gr := uniseg.NewGraphemes(input)
	for gr.Next() {
		unit := gr.Str()
		r, _ := utf8.DecodeRuneInString(unit)

		if rep, ok := opts.CustomReplacements[r]; ok {
			b.WriteString(rep)
			switch Categorize(r, unit) {
			case Whitespace, Newline, Tab:
				ws++
			default:
				ws = 0
			}
			continue
		}

		switch Categorize(r, unit) {
		case Invalid:
			if opts.ReplaceInvalidWith != "" {
				b.WriteString(opts.ReplaceInvalidWith)
			}
		case Newline:
			if opts.MaxConsecutiveWhitespace == 0 || ws < opts.MaxConsecutiveWhitespace {
				b.WriteString(opts.ReplaceNewline)
			}
			ws = 1
		case Tab:
			if opts.MaxConsecutiveWhitespace == 0 || ws < opts.MaxConsecutiveWhitespace {
				b.WriteString(opts.ReplaceTab)
			}
			ws = 1
		case Control:
			if opts.PreserveControlChars {
				b.WriteString(unit)
			}
			ws = 0
		case Whitespace:
			if opts.MaxConsecutiveWhitespace == 0 || ws < opts.MaxConsecutiveWhitespace {
				b.WriteString(unit)
			}
			ws++
		case ZeroWidth:
			if opts.PreserveZeroWidth {
				b.WriteString(unit)
			}
		case DirectionalMark:
			if opts.PreserveDirectional {
				b.WriteString(unit)
			}
		default:
			b.WriteString(unit)
			ws = 0
		}
	}

	out := b.String()
	if opts.MaxLength > 0 {
		out = cutClusters(out, opts.MaxLength)
	}
	return out
}

// cutClusters hard-truncates s to at most max grapheme clusters.
func cutClusters(s string, max int) string {
	gr := uniseg.NewGraphemes(s)
	for n := 0; gr.Next(); n++ {
		if n == max {
			from, _ := gr.Positions()
			return s[:from]
		}
	}
	return s
}

// Writer sanitizes everything written through it before forwarding to
// the underlying writer. Each Write is one independent sanitize pass
// with a fresh whitespace run, so callers streaming chunks should write
// whole lines when MaxConsecutiveWhitespace matters.
type Writer struct {
	out  io.Writer
	opts Options
}

// NewWriter returns a Writer that sanitizes with opts and forwards to
// out.
func NewWriter(out io.Writer, opts Options) *Writer {
	return &Writer{out: out, opts: opts}
}

// Write sanitizes p and writes the result to the underlying writer. It
// reports len(p) bytes consumed on success regardless of how many bytes
// the rewritten form produced.
func (w *Writer) Write(p []byte) (int, error) {
	if _, err := io.WriteString(w.out, Sanitize(string(p), w.opts)); err != nil {
		return 0, err
	}
	return len(p), nil
}
