package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/outslept/whimsy/colors"
	"github.com/outslept/whimsy/internal/config"
	"github.com/outslept/whimsy/internal/errors"
)

// Global flags available to all subcommands.
var (
	configFlag  string
	colorFlag   string
	noColorFlag bool
)

// cfg holds the configuration resolved by the root PersistentPreRunE.
// Commands read their defaults from it; explicitly set flags win.
var cfg = config.DefaultConfig()

var rootCmd = &cobra.Command{
	Use:   "whimsy",
	Short: "Sanitize text and render terminal widgets",
	Long: `whimsy cleans strings for terminal display and ships the widgets
to show them off.

The sanitize, width, and strip commands expose the text engine
directly. demo runs the animated widgets built on top of it: spinners,
progress bars, trees, timers, and a fuzzy picker.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.LoadOrDefault(configFlag)
		if err != nil {
			return err
		}
		if err := config.Validate(loaded); err != nil {
			return err
		}
		cfg = loaded
		return applyColorFlags(cfg)
	},
}

// applyColorFlags resolves the color mode and applies it globally.
// --no-color beats --color, which beats the config file.
func applyColorFlags(cfg *config.Config) error {
	mode := colors.Mode(cfg.Output.Color)

	if colorFlag != "" {
		switch colorFlag {
		case "auto", "always", "never":
			mode = colors.Mode(colorFlag)
		default:
			return errors.New(errors.ErrInput,
				fmt.Sprintf("--color '%s' isn't valid", colorFlag),
				"Use 'auto', 'always', or 'never'.")
		}
	}
	if noColorFlag {
		mode = colors.ModeNever
	}

	colors.Apply(mode)
	return nil
}

// Execute runs the root command. Errors print to stderr and exit
// non-zero.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "config file (default: search for .whimsy.yaml)")
	rootCmd.PersistentFlags().StringVar(&colorFlag, "color", "", "color mode: auto, always, or never")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "disable colored output")
}
