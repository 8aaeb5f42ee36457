package timer

import (
	"sync"
	"time"

	"github.com/outslept/whimsy/colors"
)

// Countdown runs toward a deadline. Safe for concurrent use.
type Countdown struct {
	mu       sync.Mutex
	duration time.Duration
	deadline time.Time

	// WarnBelow switches View to the warning style when remaining time
	// drops under it. Zero disables the switch.
	WarnBelow time.Duration
}

// NewCountdown creates an unarmed countdown for the given duration.
// Remaining returns the full duration until Start arms the deadline.
func NewCountdown(d time.Duration) *Countdown {
	return &Countdown{duration: d}
}

// Start arms the deadline at now + duration. Restarts if already
// armed.
func (c *Countdown) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.deadline = time.Now().Add(c.duration)
}

// Remaining returns the time left, floored at zero. Before Start it
// returns the configured duration.
func (c *Countdown) Remaining() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.deadline.IsZero() {
		return c.duration
	}
	remaining := time.Until(c.deadline)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Expired reports whether the armed deadline has passed.
func (c *Countdown) Expired() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return !c.deadline.IsZero() && !time.Now().Before(c.deadline)
}

// View renders the remaining time: muted normally, warning style under
// WarnBelow, error style once expired.
func (c *Countdown) View() string {
	remaining := c.Remaining()
	text := FormatDuration(remaining)

	c.mu.Lock()
	warnBelow := c.WarnBelow
	c.mu.Unlock()

	switch {
	case c.Expired():
		return colors.ErrorStyle().Render(text)
	case warnBelow > 0 && remaining < warnBelow:
		return colors.WarningStyle().Render(text)
	default:
		return colors.MutedStyle().Render(text)
	}
}
