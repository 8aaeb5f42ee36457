// Package cli implements the whimsy command-line interface.
//
// The package is organized around Cobra commands, with each command
// delegating to a small implementation function that takes plain
// readers and writers. The general structure separates:
//
//   - Command definitions (cobra.Command instances)
//   - Flag resolution (config file values overlaid by explicit flags)
//   - Implementation details (in the root packages and internal/gallery)
//
// # Command Structure
//
// The root command is "whimsy" with subcommands for different operations:
//
//	whimsy sanitize [text]  - Clean text for terminal display
//	whimsy width [text]     - Measure display columns
//	whimsy strip [text]     - Remove ANSI escape sequences
//	whimsy demo [widget]    - Run a live widget demo
//	whimsy init             - Create .whimsy.yaml config
//	whimsy version          - Print version information
//
// The text commands read their arguments when given any, and fall back
// to stdin otherwise, so they compose in pipes:
//
//	git log --format=%s | whimsy sanitize --max-length 72
//
// # Flag Handling
//
// Global flags (--config, --color, --no-color) are defined on the root
// command and available to all subcommands. The root PersistentPreRunE
// loads the config file and applies the color mode before any command
// runs.
//
// Sanitize settings resolve in three layers: built-in defaults, then
// the config file, then explicitly set flags. Only flags the user
// actually passed override the config, so a config file with tab: "\t"
// survives a run that never mentions --tab. The SanitizeFlags type and
// AddSanitizeFlags function provide the flag set, and MergeSanitizeFlags
// performs the overlay.
package cli
