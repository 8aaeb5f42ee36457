package config

import (
	"fmt"

	"github.com/outslept/whimsy/internal/errors"
)

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New(errors.ErrConfig,
			"Config is nil",
			"This is unexpected - try reloading the configuration.")
	}

	// Check version
	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but whimsy only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Grab the latest whimsy: https://github.com/outslept/whimsy/releases")
	}

	if err := validateOutput(cfg.Output); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'output' section in your .whimsy.yaml.")
	}

	if err := validateSanitize(cfg.Sanitize); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'sanitize' section in your .whimsy.yaml.")
	}

	if err := validateWidgets(cfg.Widgets); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'widgets' section in your .whimsy.yaml.")
	}

	return nil
}

// validateOutput checks output configuration.
func validateOutput(out OutputConfig) error {
	validColors := map[string]bool{"auto": true, "always": true, "never": true, "": true}
	if !validColors[out.Color] {
		return fmt.Errorf("output.color '%s' isn't valid - use 'auto', 'always', or 'never'", out.Color)
	}
	return nil
}

// validateSanitize checks sanitizer defaults.
func validateSanitize(s SanitizeConfig) error {
	validForms := map[string]bool{
		"none": true, "nfc": true, "nfd": true,
		"nfkc": true, "nfkd": true, "": true,
	}
	if !validForms[s.Normalize] {
		return fmt.Errorf("sanitize.normalize '%s' isn't valid - try: none, nfc, nfd, nfkc, or nfkd", s.Normalize)
	}

	if s.MaxWhitespace < 0 {
		return fmt.Errorf("sanitize.max_whitespace can't be negative - use 0 for unlimited")
	}
	if s.MaxLength < 0 {
		return fmt.Errorf("sanitize.max_length can't be negative - use 0 for unlimited")
	}

	return nil
}

// validateWidgets checks widget defaults.
func validateWidgets(w WidgetConfig) error {
	validSpinners := map[string]bool{
		"braille": true, "dots": true, "quarter": true, "line": true, "": true,
	}
	if !validSpinners[w.Spinner] {
		return fmt.Errorf("widgets.spinner '%s' isn't valid - try: braille, dots, quarter, or line", w.Spinner)
	}

	if w.ProgressWidth < 0 {
		return fmt.Errorf("widgets.progress_width can't be negative - that doesn't make sense")
	}
	if w.TreeWidth < 0 {
		return fmt.Errorf("widgets.tree_width can't be negative - use 0 for unlimited")
	}
	if w.FilterHeight < 0 {
		return fmt.Errorf("widgets.filter_height can't be negative - that doesn't make sense")
	}

	return nil
}
