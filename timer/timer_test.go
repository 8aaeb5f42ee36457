package timer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name     string
		d        time.Duration
		expected string
	}{
		{"zero", 0, "0.00s"},
		{"negative floors to zero", -time.Second, "0.00s"},
		{"hundredths under a tenth", 50 * time.Millisecond, "0.05s"},
		{"tenths under a minute", 2300 * time.Millisecond, "2.3s"},
		{"just under a minute", 59 * time.Second, "59.0s"},
		{"one minute", time.Minute, "1m00.0s"},
		{"minutes and seconds", 65 * time.Second, "1m05.0s"},
		{"many minutes", 10*time.Minute + 30*time.Second, "10m30.0s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatDuration(tt.d))
		})
	}
}

func TestStopwatchStartStop(t *testing.T) {
	s := NewStopwatch()
	assert.False(t, s.Running())
	assert.Equal(t, time.Duration(0), s.Elapsed())

	s.Start()
	assert.True(t, s.Running())

	time.Sleep(20 * time.Millisecond)
	s.Stop()
	assert.False(t, s.Running())

	elapsed := s.Elapsed()
	assert.GreaterOrEqual(t, elapsed, 20*time.Millisecond)

	// Stopped: elapsed time is frozen.
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, elapsed, s.Elapsed())
}

func TestStopwatchAccumulatesAcrossPauses(t *testing.T) {
	s := NewStopwatch()

	s.Start()
	time.Sleep(10 * time.Millisecond)
	s.Stop()
	first := s.Elapsed()

	s.Start()
	time.Sleep(10 * time.Millisecond)
	s.Stop()

	assert.Greater(t, s.Elapsed(), first)
}

func TestStopwatchDoubleStart(t *testing.T) {
	s := NewStopwatch()

	s.Start()
	time.Sleep(10 * time.Millisecond)
	s.Start() // must not restart the running segment

	assert.GreaterOrEqual(t, s.Elapsed(), 10*time.Millisecond)
}

func TestStopwatchReset(t *testing.T) {
	s := NewStopwatch()

	s.Start()
	time.Sleep(10 * time.Millisecond)
	s.Reset()

	assert.False(t, s.Running())
	assert.Equal(t, time.Duration(0), s.Elapsed())
}

func TestStopwatchView(t *testing.T) {
	s := NewStopwatch()
	assert.Contains(t, s.View(), "0.00s")
}

func TestCountdownUnarmed(t *testing.T) {
	c := NewCountdown(10 * time.Second)

	assert.Equal(t, 10*time.Second, c.Remaining())
	assert.False(t, c.Expired())
}

func TestCountdownRemaining(t *testing.T) {
	c := NewCountdown(10 * time.Second)
	c.Start()

	remaining := c.Remaining()
	assert.Greater(t, remaining, 9*time.Second)
	assert.LessOrEqual(t, remaining, 10*time.Second)
	assert.False(t, c.Expired())
}

func TestCountdownExpires(t *testing.T) {
	c := NewCountdown(time.Millisecond)
	c.Start()

	time.Sleep(5 * time.Millisecond)

	assert.True(t, c.Expired())
	assert.Equal(t, time.Duration(0), c.Remaining())
}

func TestCountdownRestart(t *testing.T) {
	c := NewCountdown(10 * time.Second)
	c.Start()
	c.Start() // re-arms

	assert.False(t, c.Expired())
	assert.Greater(t, c.Remaining(), 9*time.Second)
}

func TestCountdownView(t *testing.T) {
	c := NewCountdown(10 * time.Second)
	c.Start()
	assert.Contains(t, c.View(), "s")

	expired := NewCountdown(time.Millisecond)
	expired.Start()
	time.Sleep(5 * time.Millisecond)
	assert.Contains(t, expired.View(), "0.00s")
}
