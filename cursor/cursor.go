// Package cursor implements a blinking cursor as a tick-driven state
// machine. It owns no timer: callers advance it from their own tick
// source (a Bubble Tea tick, a render loop) and ask it to render the
// glyph under the cursor.
package cursor

import (
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Shape determines how the cursor is rendered while lit.
type Shape int

const (
	ShapeBlock Shape = iota
	ShapeUnderline
	ShapeBar
)

var shapeNames = [...]string{"block", "underline", "bar"}

func (s Shape) String() string {
	if s < 0 || int(s) >= len(shapeNames) {
		return "unknown"
	}
	return shapeNames[s]
}

// Next cycles to the following shape.
func (s Shape) Next() Shape {
	return Shape((int(s) + 1) % len(shapeNames))
}

// DefaultBlinkInterval matches the common terminal blink cadence.
const DefaultBlinkInterval = 530 * time.Millisecond

// barGlyph replaces the cell content while a bar cursor is lit.
const barGlyph = "▏"

// Cursor is a blink state machine. The zero value blinks a block
// cursor at DefaultBlinkInterval starting invisible; New returns one
// starting visible.
type Cursor struct {
	Shape    Shape
	Interval time.Duration

	visible  bool
	lastFlip time.Time
}

// New creates a visible block cursor with the default blink interval.
func New() Cursor {
	return Cursor{
		Shape:    ShapeBlock,
		Interval: DefaultBlinkInterval,
		visible:  true,
	}
}

// Visible reports whether the cursor is in its lit blink phase.
func (c Cursor) Visible() bool {
	return c.visible
}

// Toggle flips the blink phase immediately.
func (c *Cursor) Toggle() {
	c.visible = !c.visible
}

// Reset makes the cursor lit and restarts the blink interval from now.
// Editors call this on every keystroke so the cursor stays solid while
// typing.
func (c *Cursor) Reset(now time.Time) {
	c.visible = true
	c.lastFlip = now
}

// Advance flips the blink phase when the interval has elapsed since
// the last flip. It reports whether a flip happened, so callers know
// to re-render. The first call arms the timer without flipping.
func (c *Cursor) Advance(now time.Time) bool {
	if c.lastFlip.IsZero() {
		c.lastFlip = now
		return false
	}

	interval := c.Interval
	if interval <= 0 {
		interval = DefaultBlinkInterval
	}
	if now.Sub(c.lastFlip) < interval {
		return false
	}

	c.visible = !c.visible
	c.lastFlip = now
	return true
}

// View renders the glyph under the cursor. An empty glyph renders as a
// space so block and bar cursors stay visible at end of input. While
// lit, a block cursor reverses the cell, an underline cursor
// underlines it, and a bar cursor replaces it with a thin bar.
func (c Cursor) View(glyph string) string {
	if glyph == "" {
		glyph = " "
	}
	if !c.visible {
		return glyph
	}

	switch c.Shape {
	case ShapeUnderline:
		return lipgloss.NewStyle().Underline(true).Render(glyph)
	case ShapeBar:
		return barGlyph
	default:
		return lipgloss.NewStyle().Reverse(true).Render(glyph)
	}
}
