package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"gopkg.in/yaml.v3"

	"github.com/outslept/whimsy/colors"
	"github.com/outslept/whimsy/internal/config"
	"github.com/outslept/whimsy/internal/errors"
)

// InitOptions holds options for the init command.
type InitOptions struct {
	Color          string // Pre-specified color mode
	Spinner        string // Pre-specified spinner frame set
	Overwrite      bool   // Overwrite existing config without asking
	NonInteractive bool   // Skip prompts, use defaults
}

// initDefaults are init values sourced from the environment.
type initDefaults struct {
	Color          string
	Spinner        string
	NonInteractive bool
}

// getInitDefaults reads init defaults from the environment. CI
// environments force non-interactive mode.
func getInitDefaults() initDefaults {
	return initDefaults{
		Color:          os.Getenv("WHIMSY_COLOR"),
		Spinner:        os.Getenv("WHIMSY_SPINNER"),
		NonInteractive: os.Getenv("WHIMSY_NON_INTERACTIVE") == "true" || os.Getenv("CI") == "true",
	}
}

// mergeInitOptions fills unset options from the environment. Explicit
// options win over environment values.
func mergeInitOptions(opts InitOptions) InitOptions {
	defaults := getInitDefaults()

	if opts.Color == "" {
		opts.Color = defaults.Color
	}
	if opts.Spinner == "" {
		opts.Spinner = defaults.Spinner
	}
	if defaults.NonInteractive {
		opts.NonInteractive = true
	}
	return opts
}

// Init creates a new .whimsy.yaml configuration file.
func Init(opts InitOptions) error {
	configPath := filepath.Join(".", config.ConfigFileName)

	// Check for existing config
	if _, err := os.Stat(configPath); err == nil && !opts.Overwrite {
		var overwrite bool

		if opts.NonInteractive {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Config file already exists: %s", configPath),
				"Use --force to overwrite")
		}

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", config.ConfigFileName)).
					Value(&overwrite),
			),
		)

		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}

		if !overwrite {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	colorMode := opts.Color
	spinnerName := opts.Spinner

	if !opts.NonInteractive {
		if colorMode == "" {
			colorMode = "auto"
		}
		if spinnerName == "" {
			spinnerName = "braille"
		}

		colorOptions := []huh.Option[string]{
			huh.NewOption("auto - color when stdout is a terminal", "auto"),
			huh.NewOption("always - force color", "always"),
			huh.NewOption("never - plain text", "never"),
		}

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Color output").
					Options(colorOptions...).
					Value(&colorMode),
			),
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Spinner style").
					Description("Used by 'whimsy demo' and the gallery").
					Options(
						huh.NewOption("braille", "braille"),
						huh.NewOption("dots", "dots"),
						huh.NewOption("quarter", "quarter"),
						huh.NewOption("line", "line"),
					).
					Value(&spinnerName),
			),
		)

		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Check terminal compatibility or use --non-interactive")
		}
	}

	// Build config
	cfg := config.DefaultConfig()
	if colorMode != "" {
		cfg.Output.Color = colorMode
	}
	if spinnerName != "" {
		cfg.Widgets.Spinner = spinnerName
	}

	// Environment values land here unchecked, so validate the result
	// the same way a loaded file would be.
	if err := config.Validate(cfg); err != nil {
		return err
	}

	// Marshal to YAML
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to generate config",
			"This shouldn't happen - please report this bug")
	}

	// Add a header comment
	header := `# whimsy configuration
# 'sanitize' keys are defaults for the sanitize command; 'widgets' keys
# tune the demos. See 'whimsy sanitize --help' for the flag behind each key.

`
	content := header + string(data)

	// Write config file
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Failed to write config file: %s", configPath),
			"Check directory permissions")
	}

	fmt.Printf("%s Created %s\n\n", colors.SymbolSuccess, configPath)
	fmt.Println("Next steps:")
	fmt.Println("  whimsy sanitize <text>  - Clean a string for display")
	fmt.Println("  whimsy width <text>     - Measure display columns")
	fmt.Println("  whimsy demo             - Tour the widgets")

	return nil
}

// initCommand is the implementation called by the cobra command.
func initCommand(force, nonInteractive bool) error {
	return Init(mergeInitOptions(InitOptions{
		Overwrite:      force,
		NonInteractive: nonInteractive,
	}))
}
