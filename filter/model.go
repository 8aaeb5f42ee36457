package filter

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/outslept/whimsy/colors"
	"github.com/outslept/whimsy/internal/errors"
)

// filterKeyMap defines key bindings for the filter prompt.
type filterKeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Enter key.Binding
	Quit  key.Binding
}

// Quit deliberately omits "q": the text input owns printable keys.
var filterKeys = filterKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "ctrl+p"),
		key.WithHelp("↑", "move up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "ctrl+n"),
		key.WithHelp("↓", "move down"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
	Quit: key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("esc", "cancel"),
	),
}

// Model is a Bubble Tea model for fuzzy-filtering a list of items:
// a text input on top, the ranked matches below, best match first.
type Model struct {
	input    textinput.Model
	items    []string
	matches  []Match
	cursor   int
	offset   int
	height   int
	selected string
	chosen   bool
	quitting bool
}

// NewModel creates a filter prompt over items.
func NewModel(items []string) Model {
	ti := textinput.New()
	ti.Placeholder = "Type to filter..."
	ti.Prompt = "› "
	ti.Focus()

	return Model{
		input:   ti,
		items:   items,
		matches: Rank("", items),
		height:  10,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, filterKeys.Enter):
			if len(m.matches) == 0 {
				return m, nil
			}
			m.selected = m.matches[m.cursor].Str
			m.chosen = true
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, filterKeys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, filterKeys.Up):
			m.moveCursor(-1)
			return m, nil

		case key.Matches(msg, filterKeys.Down):
			m.moveCursor(1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.input.Width = msg.Width - 4
		m.height = msg.Height - 3 // input line + counter line + slack
		if m.height < 1 {
			m.height = 1
		}
		m.clampScroll()
	}

	var cmd tea.Cmd
	before := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.matches = Rank(m.input.Value(), m.items)
		m.cursor = 0
		m.offset = 0
	}
	return m, cmd
}

func (m *Model) moveCursor(delta int) {
	if len(m.matches) == 0 {
		m.cursor, m.offset = 0, 0
		return
	}

	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if max := len(m.matches) - 1; m.cursor > max {
		m.cursor = max
	}
	m.clampScroll()
}

// clampScroll keeps the cursor row inside the visible window.
func (m *Model) clampScroll() {
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+m.height {
		m.offset = m.cursor - m.height + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	pointerStyle := lipgloss.NewStyle().Foreground(colors.ColorInfo)
	matchStyle := lipgloss.NewStyle().Foreground(colors.ColorWarning).Underline(true)
	mutedStyle := lipgloss.NewStyle().Foreground(colors.ColorMuted)

	var b strings.Builder
	b.WriteString(m.input.View())
	b.WriteByte('\n')

	end := m.offset + m.height
	if end > len(m.matches) {
		end = len(m.matches)
	}

	for i := m.offset; i < end; i++ {
		line := Highlight(m.matches[i], matchStyle, lipgloss.NewStyle())
		if i == m.cursor {
			b.WriteString(pointerStyle.Render("❯ ") + line)
		} else {
			b.WriteString("  " + line)
		}
		b.WriteByte('\n')
	}

	if len(m.matches) == 0 {
		b.WriteString(mutedStyle.Render("  no matches"))
		b.WriteByte('\n')
	}

	counter := fmt.Sprintf("%d/%d %s enter select %s esc cancel",
		len(m.matches), len(m.items), colors.SymbolBullet, colors.SymbolBullet)
	b.WriteString(mutedStyle.Render(counter))
	return b.String()
}

// Selected returns the chosen item and whether a choice was made.
func (m Model) Selected() (string, bool) {
	return m.selected, m.chosen
}

// Options configures Pick.
type Options struct {
	Placeholder string    // input placeholder text
	Height      int       // visible match rows, default 10
	Output      io.Writer // defaults to os.Stdout
	Input       io.Reader // defaults to os.Stdin
}

// Pick displays an interactive fuzzy filter over items and returns the
// selection. ok is false when the user cancelled.
func Pick(items []string, opts Options) (selection string, ok bool, err error) {
	if len(items) == 0 {
		return "", false, errors.New(errors.ErrInput, "No items to pick from", "Pass at least one item to the filter.")
	}

	if len(items) == 1 {
		// Only one item, no need to prompt
		return items[0], true, nil
	}

	model := NewModel(items)
	if opts.Placeholder != "" {
		model.input.Placeholder = opts.Placeholder
	}
	if opts.Height > 0 {
		model.height = opts.Height
	}

	output := opts.Output
	if output == nil {
		output = os.Stdout
	}
	input := opts.Input
	if input == nil {
		input = os.Stdin
	}

	p := tea.NewProgram(
		model,
		tea.WithOutput(output),
		tea.WithInput(input),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", false, errors.WrapWithCode(err, errors.ErrTerm, "Filter prompt failed", "Run in an interactive terminal or pass the value directly.")
	}

	if m, ok := finalModel.(Model); ok {
		selection, chosen := m.Selected()
		return selection, chosen, nil
	}

	return "", false, nil
}
