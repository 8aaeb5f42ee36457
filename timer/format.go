// Package timer provides elapsed-time and countdown displays for
// status lines: a Stopwatch counting up and a Countdown running toward
// a deadline. Both are formatters driven by the caller's ticks;
// neither owns a goroutine.
package timer

import (
	"fmt"
	"time"
)

// FormatDuration formats a duration for status-line display: hundredths
// under a tenth of a second, tenths under a minute, then minutes.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}

	secs := d.Seconds()
	switch {
	case secs < 0.1:
		return fmt.Sprintf("%.2fs", secs)
	case d < time.Minute:
		return fmt.Sprintf("%.1fs", secs)
	default:
		mins := int(d.Minutes())
		return fmt.Sprintf("%dm%04.1fs", mins, secs-float64(mins)*60)
	}
}
