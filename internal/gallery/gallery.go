package gallery

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/outslept/whimsy/cursor"
	"github.com/outslept/whimsy/runes"
	"github.com/outslept/whimsy/spinner"
	"github.com/outslept/whimsy/timer"
	"github.com/outslept/whimsy/tree"
)

// tickInterval is the redraw cadence for the tick-driven panels.
const tickInterval = 100 * time.Millisecond

// countdownWindow is how much time the demo countdown starts with.
const countdownWindow = 90 * time.Second

// Key bindings as constants for consistency.
const (
	KeyQuit        = "q"
	KeyQuitAlt     = "ctrl+c"
	KeyCycleFrames = "s"
	KeyCycleShape  = "c"
	KeyReset       = "r"
)

// engineSample is the deliberately messy input shown in the engine
// panel: an escape sequence, a zero-width space, and a tab run.
const engineSample = "café \x1b[31mwhim\x1b[0m​sy\t\t\t2026"

// frameSet pairs a spinner frame set with its display name.
type frameSet struct {
	name   string
	frames spinner.Frames
}

var frameSets = []frameSet{
	{"braille", spinner.Braille},
	{"dots", spinner.Dots},
	{"quarter", spinner.Quarter},
	{"line", spinner.Line},
}

// tickMsg signals a periodic redraw.
type tickMsg time.Time

// Model is the Bubble Tea model for the widget gallery.
type Model struct {
	spin       spinner.Component
	frameIndex int

	percent float64

	caret cursor.Cursor

	stopwatch *timer.Stopwatch
	countdown *timer.Countdown

	root  *tree.Node
	clean string

	width    int
	height   int
	quitting bool
}

// NewModel assembles the gallery with every panel running.
func NewModel() Model {
	spin := spinner.NewComponent("animating")
	spin.SetFrames(frameSets[0].frames)
	spin.Start()

	sw := timer.NewStopwatch()
	sw.Start()

	cd := timer.NewCountdown(countdownWindow)
	cd.Start()

	opts := runes.DefaultOptions()
	opts.StripVTControlSequences = true
	opts.MaxConsecutiveWhitespace = 1
	opts.ReplaceTab = " "

	return Model{
		spin:      spin,
		caret:     cursor.New(),
		stopwatch: sw,
		countdown: cd,
		root:      sampleTree(),
		clean:     runes.Sanitize(engineSample, opts),
	}
}

// sampleTree builds the package layout shown in the tree panel.
func sampleTree() *tree.Node {
	return tree.New("whimsy",
		tree.New("runes",
			tree.New("sanitize"),
			tree.New("width"),
			tree.New("truncate"),
		),
		tree.New("widgets",
			tree.New("spinner"),
			tree.New("progress"),
			tree.New("cursor"),
		),
		tree.New("colors"),
	)
}

// Init starts the tick loop and the spinner animation.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.tickCmd(), m.spin.Init())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tickMsg:
		m.caret.Advance(time.Time(msg))
		m.percent++
		if m.percent > 100 {
			m.percent = 0
		}
		return m, m.tickCmd()

	default:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case KeyQuit, KeyQuitAlt:
		m.quitting = true
		return m, tea.Quit

	case KeyCycleFrames:
		m.frameIndex = (m.frameIndex + 1) % len(frameSets)
		m.spin.SetFrames(frameSets[m.frameIndex].frames)

	case KeyCycleShape:
		m.caret.Shape = m.caret.Shape.Next()
		m.caret.Reset(time.Now())

	case KeyReset:
		m.percent = 0
		m.stopwatch.Reset()
		m.stopwatch.Start()
		m.countdown.Start()
	}

	return m, nil
}

// tickCmd returns a command that sends a tick after the redraw interval.
func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
