package config

import "github.com/outslept/whimsy/runes"

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Config represents the complete .whimsy.yaml configuration file.
type Config struct {
	Version  int            `yaml:"version" mapstructure:"version"`
	Output   OutputConfig   `yaml:"output" mapstructure:"output"`
	Sanitize SanitizeConfig `yaml:"sanitize" mapstructure:"sanitize"`
	Widgets  WidgetConfig   `yaml:"widgets" mapstructure:"widgets"`
}

// OutputConfig controls terminal output formatting.
type OutputConfig struct {
	// Color mode: "auto", "always", or "never".
	// "auto" disables color when output is piped.
	Color string `yaml:"color" mapstructure:"color"`
}

// SanitizeConfig holds the sanitizer settings 'whimsy sanitize' starts
// from. Flags override individual fields.
type SanitizeConfig struct {
	// Tab is emitted in place of each tab. Empty drops tabs.
	Tab string `yaml:"tab" mapstructure:"tab"`

	// Newline is emitted in place of each newline unit. A CRLF pair
	// counts as one unit. Empty drops newlines.
	Newline string `yaml:"newline" mapstructure:"newline"`

	// MaxWhitespace caps each run of emitted whitespace. 0 means unlimited.
	MaxWhitespace int `yaml:"max_whitespace" mapstructure:"max_whitespace"`

	// MaxLength truncates output to this many grapheme clusters.
	// 0 means unlimited.
	MaxLength int `yaml:"max_length" mapstructure:"max_length"`

	// StripANSI removes escape sequences before any other processing.
	StripANSI bool `yaml:"strip_ansi" mapstructure:"strip_ansi"`

	// Normalize names a Unicode normalization form: "none", "nfc",
	// "nfd", "nfkc", or "nfkd".
	Normalize string `yaml:"normalize" mapstructure:"normalize"`

	// KeepControl keeps control characters instead of dropping them.
	KeepControl bool `yaml:"keep_control" mapstructure:"keep_control"`

	// KeepZeroWidth keeps zero-width code points.
	KeepZeroWidth bool `yaml:"keep_zero_width" mapstructure:"keep_zero_width"`

	// KeepDirectional keeps bidirectional control marks.
	KeepDirectional bool `yaml:"keep_directional" mapstructure:"keep_directional"`

	// ReplaceInvalid is emitted for each invalid unit (U+FFFD or an
	// undecodable byte). Empty drops them.
	ReplaceInvalid string `yaml:"replace_invalid" mapstructure:"replace_invalid"`
}

// WidgetConfig holds default settings for the demo widgets.
type WidgetConfig struct {
	// Spinner frame set: "braille", "dots", "quarter", or "line".
	Spinner string `yaml:"spinner" mapstructure:"spinner"`

	// ProgressWidth is the bar width in cells for inline progress.
	ProgressWidth int `yaml:"progress_width" mapstructure:"progress_width"`

	// TreeWidth caps rendered tree lines at this many visible runes.
	// 0 means unlimited.
	TreeWidth int `yaml:"tree_width" mapstructure:"tree_width"`

	// FilterHeight is the number of visible rows in the filter prompt.
	FilterHeight int `yaml:"filter_height" mapstructure:"filter_height"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version: CurrentConfigVersion,
		Output: OutputConfig{
			Color: "auto",
		},
		Sanitize: SanitizeConfig{
			Tab:       "    ",
			Newline:   "\n",
			Normalize: "none",
		},
		Widgets: WidgetConfig{
			Spinner:       "braille",
			ProgressWidth: 30,
			FilterHeight:  10,
		},
	}
}

// Options converts the sanitize section into engine options, starting
// from the engine defaults so the width settings stay intact.
func (s SanitizeConfig) Options() runes.Options {
	opts := runes.DefaultOptions()
	opts.ReplaceTab = s.Tab
	opts.ReplaceNewline = s.Newline
	opts.MaxConsecutiveWhitespace = s.MaxWhitespace
	opts.MaxLength = s.MaxLength
	opts.StripVTControlSequences = s.StripANSI
	opts.Normalization = parseNormalization(s.Normalize)
	opts.PreserveControlChars = s.KeepControl
	opts.PreserveZeroWidth = s.KeepZeroWidth
	opts.PreserveDirectional = s.KeepDirectional
	opts.ReplaceInvalidWith = s.ReplaceInvalid
	return opts
}

// parseNormalization maps a config name to a normalization form.
// Unknown names mean none; Validate rejects them before this runs.
func parseNormalization(name string) runes.Normalization {
	switch name {
	case "nfc":
		return runes.NFC
	case "nfd":
		return runes.NFD
	case "nfkc":
		return runes.NFKC
	case "nfkd":
		return runes.NFKD
	default:
		return runes.NormNone
	}
}
