package runes

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeDefaults(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty input", "", ""},
		{"plain text untouched", "Hello World", "Hello World"},
		{"tab expands to four spaces", "Hello\tWorld\n\n", "Hello    World\n\n"},
		{"newlines kept", "line1\nline2", "line1\nline2"},
		{"crlf collapses to one newline", "line1\r\nline2", "line1\nline2"},
		{"bare carriage return becomes newline", "a\rb", "a\nb"},
		{"control chars dropped", "bell\x07ring", "bellring"},
		{"zero width space dropped", "Zero​Width", "ZeroWidth"},
		{"byte order mark dropped", "﻿data", "data"},
		{"directional override dropped", "user‮input", "userinput"},
		{"invalid dropped when no replacement", "Hello�World", "HelloWorld"},
		{"soft hyphen passes through", "co­operate", "co­operate"},
		{"cjk passes through", "日本語 text", "日本語 text"},
		{"emoji passes through", "done 🎉", "done 🎉"},
		{"zwj sequence survives whole", "👨‍👩‍👧", "👨‍👩‍👧"},
		{"combining sequence survives whole", "Café", "Café"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.input, DefaultOptions()))
		})
	}
}

func TestSanitizeWhitespaceLimit(t *testing.T) {
	tests := []struct {
		name  string
		input string
		limit int
		want  string
	}{
		{"zero means unlimited", "a      b", 0, "a      b"},
		{"spaces capped at two", "Hello    World", 2, "Hello  World"},
		{"spaces capped at one", "a  b  c", 1, "a b c"},
		{"blank lines collapse", "para1\n\n\npara2", 1, "para1\npara2"},
		{"second tab dropped", "a\t\tb", 1, "a    b"},
		{"newline after space dropped", "a \nb", 1, "a b"},
		{"run restarts after text", "a  b  ", 1, "a b "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			opts.MaxConsecutiveWhitespace = tt.limit
			assert.Equal(t, tt.want, Sanitize(tt.input, opts))
		})
	}
}

func TestSanitizePreserveFlags(t *testing.T) {
	tests := []struct {
		name  string
		input string
		mod   func(*Options)
		want  string
	}{
		{
			"preserve zero width",
			"Zero​Width",
			func(o *Options) { o.PreserveZeroWidth = true },
			"Zero​Width",
		},
		{
			"preserve control",
			"bell\x07ring",
			func(o *Options) { o.PreserveControlChars = true },
			"bell\x07ring",
		},
		{
			"preserve directional",
			"user‮input",
			func(o *Options) { o.PreserveDirectional = true },
			"user‮input",
		},
		{
			"replace invalid",
			"Hello�World",
			func(o *Options) { o.ReplaceInvalidWith = "?" },
			"Hello?World",
		},
		{
			"replace newline with separator",
			"a\r\nb\nc",
			func(o *Options) { o.ReplaceNewline = " | " },
			"a | b | c",
		},
		{
			"drop newlines entirely",
			"a\nb",
			func(o *Options) { o.ReplaceNewline = "" },
			"ab",
		},
		{
			"drop tabs entirely",
			"a\tb",
			func(o *Options) { o.ReplaceTab = "" },
			"ab",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			tt.mod(&opts)
			assert.Equal(t, tt.want, Sanitize(tt.input, opts))
		})
	}
}

func TestSanitizeCustomReplacements(t *testing.T) {
	t.Run("replacement wins before category dispatch", func(t *testing.T) {
		opts := DefaultOptions()
		opts.CustomReplacements = map[rune]string{'@': " at "}
		assert.Equal(t, "user at host", Sanitize("user@host", opts))
	})

	t.Run("replacement can drop a code point", func(t *testing.T) {
		opts := DefaultOptions()
		opts.CustomReplacements = map[rune]string{'!': ""}
		assert.Equal(t, "quiet", Sanitize("quiet!", opts))
	})

	t.Run("replaced whitespace still counts toward the run", func(t *testing.T) {
		opts := DefaultOptions()
		opts.MaxConsecutiveWhitespace = 1
		opts.CustomReplacements = map[rune]string{'\t': " "}
		// The tab maps to a space and counts as whitespace, so the
		// plain space after it exceeds the run limit and drops.
		assert.Equal(t, "a b", Sanitize("a\t b", opts))
	})

	t.Run("replacement itself is not run limited", func(t *testing.T) {
		opts := DefaultOptions()
		opts.MaxConsecutiveWhitespace = 1
		opts.CustomReplacements = map[rune]string{' ': "·"}
		assert.Equal(t, "a··b", Sanitize("a  b", opts))
	})
}

func TestSanitizeStripVT(t *testing.T) {
	t.Run("escapes removed when enabled", func(t *testing.T) {
		opts := DefaultOptions()
		opts.StripVTControlSequences = true
		assert.Equal(t, "Red", Sanitize("\x1b[31mRed\x1b[0m", opts))
	})

	t.Run("escape introducer degrades to control when disabled", func(t *testing.T) {
		// Without stripping, the ESC byte is just a control character;
		// the sequence body is ordinary text.
		assert.Equal(t, "[31mRed[0m", Sanitize("\x1b[31mRed\x1b[0m", DefaultOptions()))
	})
}

func TestSanitizeNormalization(t *testing.T) {
	tests := []struct {
		name string
		form Normalization
		in   string
		want string
	}{
		{"none keeps decomposed", NormNone, "Café", "Café"},
		{"nfc composes", NFC, "Café", "Café"},
		{"nfd decomposes", NFD, "Café", "Café"},
		{"nfkc folds compatibility", NFKC, "①23", "123"},
		{"nfkd folds and decomposes", NFKD, "ﬁle", "file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			opts.Normalization = tt.form
			assert.Equal(t, tt.want, Sanitize(tt.in, opts))
		})
	}
}

func TestSanitizeMaxLength(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"zero means unlimited", "Hello World", 0, "Hello World"},
		{"cuts at limit", "Hello World", 5, "Hello"},
		{"shorter than limit unchanged", "Hi", 5, "Hi"},
		{"zwj sequence counts as one", "👨‍👩‍👧xyz", 2, "👨‍👩‍👧x"},
		{"combining sequence counts as one", "éabc", 2, "éa"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			opts.MaxLength = tt.max
			assert.Equal(t, tt.want, Sanitize(tt.in, opts))
		})
	}
}

func TestSanitizeStable(t *testing.T) {
	// Tab expansion is not idempotent in general, but once a pass has
	// removed everything the options drop, a second pass is identity.
	in := "a\tb\x00c​d 🎉"
	opts := DefaultOptions()

	first := Sanitize(in, opts)
	require.Equal(t, "a    bcd 🎉", first)
	assert.Equal(t, first, Sanitize(first, opts))
}

func TestSanitizeInvalidBytes(t *testing.T) {
	t.Run("undecodable byte dropped", func(t *testing.T) {
		assert.Equal(t, "ab", Sanitize("a\xffb", DefaultOptions()))
	})

	t.Run("undecodable byte replaced", func(t *testing.T) {
		opts := DefaultOptions()
		opts.ReplaceInvalidWith = "?"
		assert.Equal(t, "a?b", Sanitize("a\xffb", opts))
	})
}

func TestWriter(t *testing.T) {
	t.Run("sanitizes and reports consumed length", func(t *testing.T) {
		var buf bytes.Buffer
		w := NewWriter(&buf, DefaultOptions())

		p := []byte("tab\there\x00")
		n, err := w.Write(p)

		require.NoError(t, err)
		assert.Equal(t, len(p), n)
		assert.Equal(t, "tab    here", buf.String())
	})

	t.Run("each write starts a fresh whitespace run", func(t *testing.T) {
		var buf bytes.Buffer
		opts := DefaultOptions()
		opts.MaxConsecutiveWhitespace = 1
		w := NewWriter(&buf, opts)

		_, err := w.Write([]byte("a "))
		require.NoError(t, err)
		_, err = w.Write([]byte(" b"))
		require.NoError(t, err)

		assert.Equal(t, "a  b", buf.String())
	})
}
