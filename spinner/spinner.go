// Package spinner provides an animated status indicator for
// long-running operations, plus a Bubble Tea component for embedding
// the same animation in TUI programs.
package spinner

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/outslept/whimsy/colors"
	"github.com/outslept/whimsy/runes"
)

// State represents the current state of a spinner.
type State int

const (
	StatePending State = iota
	StateRunning
	StateSuccess
	StateFailed
	StateSkipped
)

// Frames is a named animation frame set with its display rate.
type Frames struct {
	Glyphs   []string
	Interval time.Duration
}

// Built-in frame sets. All glyphs render single-column.
var (
	Braille = Frames{
		Glyphs:   []string{"⣾", "⣽", "⣻", "⢿", "⡿", "⣟", "⣯", "⣷"},
		Interval: 80 * time.Millisecond,
	}
	Dots = Frames{
		Glyphs:   []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"},
		Interval: 80 * time.Millisecond,
	}
	Quarter = Frames{
		Glyphs:   []string{"◐", "◓", "◑", "◒"},
		Interval: 100 * time.Millisecond,
	}
	Line = Frames{
		Glyphs:   []string{"|", "/", "-", "\\"},
		Interval: 100 * time.Millisecond,
	}
)

// Spinner displays an animated status indicator with a label. It owns
// a small animation goroutine between Start and Stop; all other methods
// are safe to call from any goroutine.
type Spinner struct {
	mu           sync.Mutex
	label        string
	frames       Frames
	state        State
	frame        int
	startTime    time.Time
	stopChan     chan struct{}
	doneChan     chan struct{}
	out          io.Writer
	running      bool
	lastRendered string
}

// New creates a spinner with the given label, writing to stdout with
// the braille frame set.
func New(label string) *Spinner {
	return &Spinner{
		label:  label,
		frames: Braille,
		state:  StatePending,
		out:    os.Stdout,
	}
}

// SetOutput redirects the spinner's rendering, typically for tests.
func (s *Spinner) SetOutput(w io.Writer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.out = w
}

// SetFrames switches the animation frame set.
func (s *Spinner) SetFrames(f Frames) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.frames = f
	s.frame = 0
}

// Label returns the spinner's label.
func (s *Spinner) Label() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.label
}

// SetLabel updates the spinner's label.
func (s *Spinner) SetLabel(label string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.label = label
}

// State returns the current spinner state.
func (s *Spinner) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Elapsed returns the time since the spinner started.
func (s *Spinner) Elapsed() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.startTime.IsZero() {
		return 0
	}
	return time.Since(s.startTime)
}

// Start begins the spinner animation.
func (s *Spinner) Start() {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.state = StateRunning
	s.startTime = time.Now()
	s.stopChan = make(chan struct{})
	s.doneChan = make(chan struct{})
	interval := s.frames.Interval
	s.mu.Unlock()

	s.render()

	go s.animate(interval)
}

// Stop halts the spinner animation without changing state.
func (s *Spinner) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	close(s.stopChan)
	s.mu.Unlock()

	<-s.doneChan
}

// Success stops the spinner and marks it as successful.
func (s *Spinner) Success() {
	s.Stop()
	s.mu.Lock()
	s.state = StateSuccess
	s.mu.Unlock()
	s.renderFinal()
}

// Fail stops the spinner and marks it as failed.
func (s *Spinner) Fail() {
	s.Stop()
	s.mu.Lock()
	s.state = StateFailed
	s.mu.Unlock()
	s.renderFinal()
}

// Skip stops the spinner and marks it as skipped.
func (s *Spinner) Skip() {
	s.Stop()
	s.mu.Lock()
	s.state = StateSkipped
	s.mu.Unlock()
	s.renderFinal()
}

func (s *Spinner) animate(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	defer close(s.doneChan)

	for {
		select {
		case <-s.stopChan:
			return
		case <-ticker.C:
			s.mu.Lock()
			s.frame = (s.frame + 1) % len(s.frames.Glyphs)
			s.mu.Unlock()
			s.render()
		}
	}
}

func (s *Spinner) render() {
	s.mu.Lock()
	defer s.mu.Unlock()

	symbol := colors.InfoStyle().Render(s.frames.Glyphs[s.frame])
	line := fmt.Sprintf("\r%s %s...", symbol, s.label)

	s.clearLocked()
	fmt.Fprint(s.out, line)
	s.lastRendered = line
}

func (s *Spinner) renderFinal() {
	s.mu.Lock()
	defer s.mu.Unlock()

	var symbol string
	switch s.state {
	case StateSuccess:
		symbol = colors.SuccessStyle().Render(colors.SymbolSuccess)
	case StateFailed:
		symbol = colors.ErrorStyle().Render(colors.SymbolFail)
	case StateSkipped:
		symbol = colors.WarningStyle().Render(colors.SymbolSkipped)
	default:
		symbol = colors.MutedStyle().Render(colors.SymbolPending)
	}

	timing := colors.MutedStyle().Render(formatDuration(time.Since(s.startTime)))

	s.clearLocked()
	fmt.Fprintf(s.out, "%s %s %s\n", symbol, s.label, timing)
	s.lastRendered = ""
}

// clearLocked blanks the previously rendered line. The clear length is
// the visible character count, so styled frames don't leave residue.
// Callers must hold s.mu.
func (s *Spinner) clearLocked() {
	if s.lastRendered == "" {
		return
	}
	clearLen := runes.VisibleLength(s.lastRendered)
	fmt.Fprint(s.out, "\r"+strings.Repeat(" ", clearLen)+"\r")
}

// formatDuration formats a duration for display (e.g., "0.3s", "1.2s").
func formatDuration(d time.Duration) string {
	secs := d.Seconds()
	if secs < 0.1 {
		return fmt.Sprintf("%.2fs", secs)
	}
	return fmt.Sprintf("%.1fs", secs)
}
