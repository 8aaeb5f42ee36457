// Package progress renders block-character progress bars: pure string
// builders for embedding in other output, and an animated inline bar
// for CLI use outside Bubble Tea.
package progress

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/outslept/whimsy/colors"
)

// Progress bar block characters.
const (
	BarFilled = '█'
	BarEmpty  = '░'
)

// ColorFunc returns a bar color for a percentage in 0-100.
// Different use cases need different color schemes:
//   - Gauges: higher % = worse (red)
//   - Progress bars: higher % = better (green)
type ColorFunc func(percent float64) lipgloss.Color

// ThresholdColor returns gauge colors, where high values indicate
// problems: 0-60% green, 60-80% yellow, 80%+ red.
func ThresholdColor(percent float64) lipgloss.Color {
	switch {
	case percent >= 80:
		return colors.ColorError
	case percent >= 60:
		return colors.ColorWarning
	default:
		return colors.ColorSuccess
	}
}

// ProgressColor returns progress colors, where high values are good:
// 0-50% blue, 50-80% yellow, 80%+ green.
func ProgressColor(percent float64) lipgloss.Color {
	switch {
	case percent >= 80:
		return colors.ColorSuccess
	case percent >= 50:
		return colors.ColorWarning
	default:
		return colors.ColorSecondary
	}
}

// Config configures bar rendering.
type Config struct {
	Width       int       // Width of the bar in characters
	Brackets    bool      // Whether to wrap the bar in [ ]
	ColorFunc   ColorFunc // Function to determine bar color
	ShowPercent bool      // Whether to append the percentage
}

// DefaultConfig returns a config for progress-style bars.
func DefaultConfig(width int) Config {
	return Config{
		Width:     width,
		Brackets:  true,
		ColorFunc: ProgressColor,
	}
}

// MeterConfig returns a config for gauge-style bars (resource levels).
func MeterConfig(width int) Config {
	return Config{
		Width:       width,
		Brackets:    true,
		ColorFunc:   ThresholdColor,
		ShowPercent: true,
	}
}

// ClampPercent clamps a percentage to the 0-100 range.
func ClampPercent(percent float64) float64 {
	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return percent
}

// Counts returns the number of filled and empty characters for a bar.
// Percent should be 0-100.
func Counts(percent float64, width int) (filled, empty int) {
	filled = int((percent / 100.0) * float64(width))
	empty = width - filled
	return
}

// CountsNormalized returns counts for a fraction in 0-1.
func CountsNormalized(frac float64, width int) (filled, empty int) {
	filled = int(frac * float64(width))
	if filled > width {
		filled = width
	}
	empty = width - filled
	return
}

// Build assembles the raw bar string, without styling.
func Build(filled, empty int, brackets bool) string {
	var sb strings.Builder
	capacity := filled + empty
	if brackets {
		capacity += 2
	}
	sb.Grow(capacity)

	if brackets {
		sb.WriteRune('[')
	}
	for i := 0; i < filled; i++ {
		sb.WriteRune(BarFilled)
	}
	for i := 0; i < empty; i++ {
		sb.WriteRune(BarEmpty)
	}
	if brackets {
		sb.WriteRune(']')
	}

	return sb.String()
}

// Render renders a progress bar for a percentage in 0-100.
func Render(percent float64, cfg Config) string {
	if cfg.Width <= 0 {
		return ""
	}

	percent = ClampPercent(percent)
	filled, empty := Counts(percent, cfg.Width)
	bar := Build(filled, empty, cfg.Brackets)

	if cfg.ColorFunc != nil {
		bar = lipgloss.NewStyle().Foreground(cfg.ColorFunc(percent)).Render(bar)
	}
	if cfg.ShowPercent {
		pct := fmt.Sprintf(" %3.0f%%", percent)
		bar += lipgloss.NewStyle().Foreground(colors.ColorMuted).Render(pct)
	}

	return bar
}
