package timer

import (
	"sync"
	"time"

	"github.com/outslept/whimsy/colors"
)

// Stopwatch accumulates elapsed time across start/stop cycles. Safe
// for concurrent use.
type Stopwatch struct {
	mu      sync.Mutex
	start   time.Time
	accum   time.Duration
	running bool
}

// NewStopwatch creates a stopped stopwatch at zero.
func NewStopwatch() *Stopwatch {
	return &Stopwatch{}
}

// Start begins or resumes timing. No-op if already running.
func (s *Stopwatch) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return
	}
	s.running = true
	s.start = time.Now()
}

// Stop pauses timing, folding the current segment into the total.
// No-op if not running.
func (s *Stopwatch) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}
	s.running = false
	s.accum += time.Since(s.start)
}

// Reset stops the stopwatch and discards accumulated time.
func (s *Stopwatch) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.running = false
	s.accum = 0
}

// Running reports whether the stopwatch is currently timing.
func (s *Stopwatch) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Elapsed returns accumulated time, including the running segment.
func (s *Stopwatch) Elapsed() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return s.accum + time.Since(s.start)
	}
	return s.accum
}

// View renders the elapsed time in the muted timing style used for
// status-line suffixes.
func (s *Stopwatch) View() string {
	return colors.MutedStyle().Render(FormatDuration(s.Elapsed()))
}
