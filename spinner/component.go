package spinner

import (
	"time"

	bspinner "github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/outslept/whimsy/colors"
)

// bubbles converts a frame set into the Bubble Tea spinner format.
func (f Frames) bubbles() bspinner.Spinner {
	return bspinner.Spinner{Frames: f.Glyphs, FPS: f.Interval}
}

// Component is a Bubble Tea model for embedding spinners in TUI
// programs. Unlike the standalone Spinner it owns no goroutine; the
// program's update loop drives the animation.
type Component struct {
	spinner   bspinner.Model
	Label     string
	State     State
	StartTime time.Time
}

// NewComponent creates a spinner component with the given label.
func NewComponent(label string) Component {
	sp := bspinner.New()
	sp.Spinner = Quarter.bubbles()
	sp.Style = colors.SecondaryStyle()

	return Component{
		spinner: sp,
		Label:   label,
		State:   StatePending,
	}
}

// SetFrames swaps the frame set. Takes effect on the next tick.
func (c *Component) SetFrames(f Frames) {
	c.spinner.Spinner = f.bubbles()
}

// Init returns the initial command for the spinner (tick).
func (c Component) Init() tea.Cmd {
	return c.spinner.Tick
}

// Update handles spinner animation messages.
func (c Component) Update(msg tea.Msg) (Component, tea.Cmd) {
	if c.State != StateRunning {
		return c, nil
	}

	if tickMsg, ok := msg.(bspinner.TickMsg); ok {
		var cmd tea.Cmd
		c.spinner, cmd = c.spinner.Update(tickMsg)
		return c, cmd
	}
	return c, nil
}

// View renders the spinner in its current state.
func (c Component) View() string {
	switch c.State {
	case StateRunning:
		return c.spinner.View() + " " + c.Label + "..."
	case StateSuccess:
		return c.viewFinal(colors.SuccessStyle().Render(colors.SymbolSuccess))
	case StateFailed:
		return c.viewFinal(colors.ErrorStyle().Render(colors.SymbolFail))
	case StateSkipped:
		return c.viewFinal(colors.WarningStyle().Render(colors.SymbolSkipped))
	default:
		return c.viewFinal(colors.MutedStyle().Render(colors.SymbolPending))
	}
}

func (c Component) viewFinal(symbol string) string {
	timing := colors.MutedStyle().Render(formatDuration(c.Elapsed()))
	return symbol + " " + c.Label + " " + timing
}

// Start transitions the spinner to the running state.
func (c *Component) Start() tea.Cmd {
	c.State = StateRunning
	c.StartTime = time.Now()
	return c.spinner.Tick
}

// Success transitions the spinner to the success state.
func (c *Component) Success() {
	c.State = StateSuccess
}

// Fail transitions the spinner to the failed state.
func (c *Component) Fail() {
	c.State = StateFailed
}

// Skip transitions the spinner to the skipped state.
func (c *Component) Skip() {
	c.State = StateSkipped
}

// Elapsed returns the duration since the spinner started.
func (c Component) Elapsed() time.Duration {
	if c.StartTime.IsZero() {
		return 0
	}
	return time.Since(c.StartTime)
}
