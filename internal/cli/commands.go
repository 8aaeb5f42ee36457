package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/outslept/whimsy/internal/errors"
)

// Command-specific flag values.
var (
	sanitizeFlags      SanitizeFlags
	widthVisibleFlag   bool
	initForce          bool
	initNonInteractive bool
)

// sanitizeCmd cleans text for terminal display
var sanitizeCmd = &cobra.Command{
	Use:   "sanitize [text...]",
	Short: "Clean text for safe terminal display",
	Long: `Clean text for safe terminal display.

Arguments are joined with spaces and sanitized as one string. With no
arguments, stdin is sanitized line by line, so the command sits happily
in a pipe.

Settings come from the config file when one exists; flags you pass
explicitly always win.

Examples:
  whimsy sanitize "hello	world"
  git log -1 --format=%B | whimsy sanitize --max-length 72
  cat noisy.log | whimsy sanitize --strip-ansi --max-ws 1`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return sanitizeCommand(cmd, args)
	},
}

// widthCmd measures display columns
var widthCmd = &cobra.Command{
	Use:   "width [text...]",
	Short: "Measure display columns of text",
	Long: `Measure how many terminal columns text occupies.

Each argument prints its own measurement. With no arguments, stdin is
measured as a whole. Escape sequences count as zero columns; emoji and
East Asian full-width characters count as two.

--visible counts visible characters instead of columns, so a wide
character counts once.

Examples:
  whimsy width "日本語"
  whimsy width --visible "$(tput setaf 2)ok$(tput sgr0)"
  whimsy width < banner.txt`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return widthCommand(cmd, args)
	},
}

// stripCmd removes ANSI escape sequences
var stripCmd = &cobra.Command{
	Use:   "strip [text...]",
	Short: "Remove ANSI escape sequences",
	Long: `Remove ANSI escape sequences, leaving everything else untouched.

With no arguments, stdin streams through line by line.

Examples:
  whimsy strip "$(ls --color=always)"
  whimsy strip < session.log > clean.log`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return stripCommand(cmd, args)
	},
}

// demoCmd runs live widget demos
var demoCmd = &cobra.Command{
	Use:   "demo [widget]",
	Short: "Run a live widget demo",
	Long: `Run a live demo of one widget, or the full gallery.

The gallery is an interactive dashboard showing every widget at once;
the named demos run a short scripted tour of a single widget.

Examples:
  whimsy demo
  whimsy demo spinner
  whimsy demo filter`,
	ValidArgs: []string{"spinner", "progress", "tree", "timer", "filter", "gallery"},
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		widget := "gallery"
		if len(args) > 0 {
			widget = args[0]
		}
		return demoCommand(widget)
	},
}

// initCmd creates a config file
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a .whimsy.yaml config file",
	Long: `Create a .whimsy.yaml config file in the current directory.

Asks a couple of questions interactively; --non-interactive (or a CI
environment) takes the defaults instead.

Examples:
  whimsy init
  whimsy init --force`,
	// init is how users repair a broken config, so it skips the root
	// config load and only applies the color flags.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return applyColorFlags(cfg)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return initCommand(initForce, initNonInteractive)
	},
}

// completionCmd generates shell completion scripts
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion scripts for whimsy.

Examples:
  # Bash
  whimsy completion bash > /etc/bash_completion.d/whimsy

  # Zsh
  whimsy completion zsh > "${fpath[1]}/_whimsy"

  # Fish
  whimsy completion fish > ~/.config/fish/completions/whimsy.fish`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(os.Stdout)
		case "zsh":
			return rootCmd.GenZshCompletion(os.Stdout)
		case "fish":
			return rootCmd.GenFishCompletion(os.Stdout, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletion(os.Stdout)
		default:
			return errors.New(errors.ErrInput,
				"Unknown shell: "+args[0],
				"Supported shells: bash, zsh, fish, powershell")
		}
	},
}

func init() {
	// sanitize command flags
	AddSanitizeFlags(sanitizeCmd, &sanitizeFlags)

	// width command flags
	widthCmd.Flags().BoolVar(&widthVisibleFlag, "visible", false, "count visible characters instead of columns")

	// init command flags
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing config")
	initCmd.Flags().BoolVar(&initNonInteractive, "non-interactive", false, "skip prompts, use defaults")

	// Register all commands
	rootCmd.AddCommand(sanitizeCmd)
	rootCmd.AddCommand(widthCmd)
	rootCmd.AddCommand(stripCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
}
