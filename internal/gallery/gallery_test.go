package gallery

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/outslept/whimsy/cursor"
	"github.com/outslept/whimsy/spinner"
)

// update runs one Update cycle and casts the result back.
func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	next, ok := updated.(Model)
	require.True(t, ok)
	return next, cmd
}

func keyMsg(s string) tea.KeyMsg {
	if s == "ctrl+c" {
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewModel(t *testing.T) {
	m := NewModel()

	assert.Equal(t, spinner.StateRunning, m.spin.State)
	assert.Equal(t, 0, m.frameIndex)
	assert.Zero(t, m.percent)
	assert.True(t, m.stopwatch.Running())
	assert.False(t, m.countdown.Expired())
	assert.NotNil(t, m.root)
	assert.False(t, m.quitting)

	// The engine sample loses its escapes, the zero-width space, and
	// the tab run on the way through the sanitizer.
	assert.Equal(t, "café whimsy 2026", m.clean)
}

func TestModelInit(t *testing.T) {
	m := NewModel()
	assert.NotNil(t, m.Init())
}

func TestModelQuitKeys(t *testing.T) {
	for _, key := range []string{KeyQuit, KeyQuitAlt} {
		t.Run(key, func(t *testing.T) {
			m, cmd := update(t, NewModel(), keyMsg(key))

			assert.True(t, m.quitting)
			require.NotNil(t, cmd)
			assert.IsType(t, tea.QuitMsg{}, cmd())
			assert.Empty(t, m.View())
		})
	}
}

func TestModelCycleFrames(t *testing.T) {
	m := NewModel()

	m, _ = update(t, m, keyMsg(KeyCycleFrames))
	assert.Equal(t, 1, m.frameIndex)

	// Wraps back around after the last set.
	for i := 0; i < len(frameSets)-1; i++ {
		m, _ = update(t, m, keyMsg(KeyCycleFrames))
	}
	assert.Equal(t, 0, m.frameIndex)
}

func TestModelCycleShape(t *testing.T) {
	m := NewModel()
	assert.Equal(t, cursor.ShapeBlock, m.caret.Shape)

	m, _ = update(t, m, keyMsg(KeyCycleShape))
	assert.Equal(t, cursor.ShapeUnderline, m.caret.Shape)
	assert.True(t, m.caret.Visible())
}

func TestModelTickAdvances(t *testing.T) {
	m := NewModel()

	m, cmd := update(t, m, tickMsg(time.Now()))
	assert.Equal(t, float64(1), m.percent)
	assert.NotNil(t, cmd)
}

func TestModelTickWrapsPercent(t *testing.T) {
	m := NewModel()
	m.percent = 100

	m, _ = update(t, m, tickMsg(time.Now()))
	assert.Zero(t, m.percent)
}

func TestModelReset(t *testing.T) {
	m := NewModel()
	m.percent = 42

	m, _ = update(t, m, keyMsg(KeyReset))
	assert.Zero(t, m.percent)
	assert.True(t, m.stopwatch.Running())
	assert.False(t, m.countdown.Expired())
}

func TestModelWindowSize(t *testing.T) {
	m := NewModel()

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 120, m.width)
	assert.Equal(t, 40, m.height)
	assert.Equal(t, 56, m.panelWidth())
}

func TestPanelWidth(t *testing.T) {
	tests := []struct {
		name  string
		width int
		want  int
	}{
		{"unknown terminal uses default", 0, defaultPanelWidth},
		{"narrow single column", 60, 56},
		{"two columns split the width", 100, 46},
		{"floor for tiny terminals", 10, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewModel()
			m.width = tt.width
			assert.Equal(t, tt.want, m.panelWidth())
		})
	}
}
