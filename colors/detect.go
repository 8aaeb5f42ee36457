package colors

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Mode selects how color output is decided.
type Mode string

const (
	ModeAuto   Mode = "auto"   // color when stdout is a terminal and NO_COLOR is unset
	ModeAlways Mode = "always" // force color
	ModeNever  Mode = "never"  // force plain text
)

// Enabled reports whether the environment wants colored output: NO_COLOR
// and CLICOLOR conventions respected, and stdout attached to a terminal.
func Enabled() bool {
	if termenv.EnvNoColor() {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Profile returns the color profile the environment advertises
// (truecolor, 256, ANSI, or plain ASCII).
func Profile() termenv.Profile {
	return termenv.EnvColorProfile()
}

// Disable switches all lipgloss rendering to plain text. Used for
// --no-color and for piped output.
func Disable() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// Apply configures global color output for the given mode. ModeAuto
// consults the environment; unknown modes behave like auto.
func Apply(mode Mode) {
	switch mode {
	case ModeAlways:
		lipgloss.SetColorProfile(termenv.ANSI)
	case ModeNever:
		Disable()
	default:
		if !Enabled() {
			Disable()
		}
	}
}
