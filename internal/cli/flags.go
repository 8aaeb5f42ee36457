package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/outslept/whimsy/internal/config"
	"github.com/outslept/whimsy/internal/errors"
)

// SanitizeFlags holds the flag values that override the sanitize
// section of the config file.
type SanitizeFlags struct {
	Tab             string
	Newline         string
	MaxWhitespace   int
	MaxLength       int
	StripANSI       bool
	Normalize       string
	KeepControl     bool
	KeepZeroWidth   bool
	KeepDirectional bool
	ReplaceInvalid  string
}

// AddSanitizeFlags registers the sanitize override flags on a command.
// The registered defaults mirror the built-in config so --help shows
// them, but only flags the user explicitly sets take effect.
func AddSanitizeFlags(cmd *cobra.Command, flags *SanitizeFlags) {
	f := cmd.Flags()
	f.StringVar(&flags.Tab, "tab", "    ", "replacement for each tab")
	f.StringVar(&flags.Newline, "newline", "\n", "replacement for each newline")
	f.IntVar(&flags.MaxWhitespace, "max-ws", 0, "cap each whitespace run at this many characters (0 = unlimited)")
	f.IntVar(&flags.MaxLength, "max-length", 0, "hard-truncate output to this many characters (0 = unlimited)")
	f.BoolVar(&flags.StripANSI, "strip-ansi", false, "remove ANSI escape sequences before anything else")
	f.StringVar(&flags.Normalize, "normalize", "none", "Unicode normalization form: none, nfc, nfd, nfkc, nfkd")
	f.BoolVar(&flags.KeepControl, "keep-control", false, "keep control characters instead of dropping them")
	f.BoolVar(&flags.KeepZeroWidth, "keep-zero-width", false, "keep zero-width characters")
	f.BoolVar(&flags.KeepDirectional, "keep-directional", false, "keep bidirectional control marks")
	f.StringVar(&flags.ReplaceInvalid, "replace-invalid", "", "replacement for invalid bytes (default: drop)")
}

// MergeSanitizeFlags overlays explicitly set flags onto the
// config-derived settings. Unset flags leave the config values
// untouched, so a config file default survives unless the user says
// otherwise.
func MergeSanitizeFlags(s config.SanitizeConfig, flags SanitizeFlags, cmd *cobra.Command) config.SanitizeConfig {
	set := cmd.Flags()

	if set.Changed("tab") {
		s.Tab = flags.Tab
	}
	if set.Changed("newline") {
		s.Newline = flags.Newline
	}
	if set.Changed("max-ws") {
		s.MaxWhitespace = flags.MaxWhitespace
	}
	if set.Changed("max-length") {
		s.MaxLength = flags.MaxLength
	}
	if set.Changed("strip-ansi") {
		s.StripANSI = flags.StripANSI
	}
	if set.Changed("normalize") {
		s.Normalize = flags.Normalize
	}
	if set.Changed("keep-control") {
		s.KeepControl = flags.KeepControl
	}
	if set.Changed("keep-zero-width") {
		s.KeepZeroWidth = flags.KeepZeroWidth
	}
	if set.Changed("keep-directional") {
		s.KeepDirectional = flags.KeepDirectional
	}
	if set.Changed("replace-invalid") {
		s.ReplaceInvalid = flags.ReplaceInvalid
	}

	return s
}

// ValidateNormalization checks a normalization form name from a flag.
// Config file values go through config.Validate instead; this catches
// typos on the command line with the same wording.
func ValidateNormalization(name string) error {
	switch name {
	case "", "none", "nfc", "nfd", "nfkc", "nfkd":
		return nil
	default:
		return errors.New(errors.ErrInput,
			fmt.Sprintf("Normalization form '%s' isn't valid", name),
			"Use one of: none, nfc, nfd, nfkc, or nfkd.")
	}
}
