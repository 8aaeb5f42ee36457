package gallery

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViewContainsAllPanels(t *testing.T) {
	m := NewModel()
	view := m.View()

	for _, title := range []string{"spinner", "progress", "timers", "caret", "tree", "engine"} {
		assert.Contains(t, view, title)
	}
	assert.Contains(t, view, "whimsy gallery")
}

func TestViewEmptyWhenQuitting(t *testing.T) {
	m := NewModel()
	m.quitting = true
	assert.Empty(t, m.View())
}

func TestViewShowsSampleTree(t *testing.T) {
	m := NewModel()
	view := m.View()

	assert.Contains(t, view, "runes")
	assert.Contains(t, view, "widgets")
	assert.Contains(t, view, "colors")
}

func TestViewShowsEngineOutput(t *testing.T) {
	m := NewModel()
	view := m.View()

	assert.Contains(t, view, "café whimsy 2026")
	assert.Contains(t, view, "width")
	assert.Contains(t, view, "visible")
}

func TestViewShowsProgressBars(t *testing.T) {
	m := NewModel()
	view := m.View()

	// Two bars at 0%: all empty cells plus the meter's percentage.
	assert.Contains(t, view, "░")
	assert.Contains(t, view, "0%")
	assert.NotContains(t, view, "█")
}

func TestViewShowsFilledProgress(t *testing.T) {
	m := NewModel()
	m.percent = 50

	assert.Contains(t, m.View(), "█")
}

func TestViewFooterHints(t *testing.T) {
	m := NewModel()
	view := m.View()

	for _, hint := range []string{"q quit", "s spinner", "c caret", "r reset"} {
		assert.Contains(t, view, hint)
	}
}

func TestViewHeaderTracksCycles(t *testing.T) {
	m := NewModel()
	assert.Contains(t, m.View(), "braille")
	assert.Contains(t, m.View(), "block")

	m, _ = update(t, m, keyMsg(KeyCycleFrames))
	m, _ = update(t, m, keyMsg(KeyCycleShape))
	assert.Contains(t, m.View(), "dots")
	assert.Contains(t, m.View(), "underline")
}

func TestViewSingleColumnWhenNarrow(t *testing.T) {
	m := NewModel()
	m.width = 60

	view := m.View()
	lines := strings.Split(view, "\n")

	// A narrow terminal stacks panels, so no line holds two borders
	// side by side.
	for _, line := range lines {
		assert.LessOrEqual(t, strings.Count(line, "╭"), 1)
	}
}

func TestViewTwoColumnsWhenWide(t *testing.T) {
	m := NewModel()
	m.width = 120

	view := m.View()

	twoTops := 0
	for _, line := range strings.Split(view, "\n") {
		if strings.Count(line, "╭") == 2 {
			twoTops++
		}
	}
	assert.Equal(t, 3, twoTops)
}
