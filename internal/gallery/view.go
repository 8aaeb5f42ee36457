package gallery

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/outslept/whimsy/colors"
	"github.com/outslept/whimsy/progress"
	"github.com/outslept/whimsy/runes"
	"github.com/outslept/whimsy/tree"
)

// Layout constants.
const (
	defaultPanelWidth = 40
	twoColumnMinWidth = 84
	barWidth          = 24
)

// Base styles for the gallery chrome.
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(colors.ColorInfo).
			Bold(true).
			Padding(0, 1)

	FooterStyle = lipgloss.NewStyle().
			Foreground(colors.ColorMuted).
			Padding(0, 1)

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colors.ColorMuted).
			Padding(0, 1).
			MarginRight(1)

	PanelTitleStyle = lipgloss.NewStyle().
			Foreground(colors.ColorSecondary).
			Bold(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(colors.ColorMuted)
)

// View renders the gallery.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderPanels())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

// renderHeader renders the title bar with the current cycle states.
func (m Model) renderHeader() string {
	title := HeaderStyle.Render("whimsy gallery")
	stats := LabelStyle.Render(fmt.Sprintf("spinner %s %s caret %s",
		frameSets[m.frameIndex].name, colors.SymbolBullet, m.caret.Shape))
	return title + stats
}

// renderPanels renders all widget panels in a responsive grid.
func (m Model) renderPanels() string {
	w := m.panelWidth()

	panels := []string{
		m.renderPanel("spinner", m.renderSpinner(), w),
		m.renderPanel("progress", m.renderProgress(), w),
		m.renderPanel("timers", m.renderTimers(), w),
		m.renderPanel("caret", m.renderCaret(), w),
		m.renderPanel("tree", m.renderTree(w), w),
		m.renderPanel("engine", m.renderEngine(w), w),
	}

	perRow := 1
	if m.width >= twoColumnMinWidth {
		perRow = 2
	}

	var rows []string
	for i := 0; i < len(panels); i += perRow {
		end := i + perRow
		if end > len(panels) {
			end = len(panels)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, panels[i:end]...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// panelWidth determines the panel width from the terminal width.
func (m Model) panelWidth() int {
	if m.width == 0 {
		return defaultPanelWidth
	}

	w := m.width - 4
	if m.width >= twoColumnMinWidth {
		w = m.width/2 - 4
	}
	if w < 20 {
		w = 20
	}
	return w
}

// renderPanel wraps a body in the bordered panel chrome.
func (m Model) renderPanel(title, body string, width int) string {
	content := PanelTitleStyle.Render(title) + "\n" + body
	return PanelStyle.Width(width).Render(content)
}

func (m Model) renderSpinner() string {
	return m.spin.View()
}

func (m Model) renderProgress() string {
	bar := progress.Render(m.percent, progress.DefaultConfig(barWidth))
	meter := progress.Render(m.percent, progress.MeterConfig(barWidth))
	return bar + "\n" + meter
}

func (m Model) renderTimers() string {
	up := LabelStyle.Render("up   ") + m.stopwatch.View()
	down := LabelStyle.Render("left ") + m.countdown.View()
	return up + "\n" + down
}

// renderCaret blinks the caret over the last letter of the sample word.
func (m Model) renderCaret() string {
	word := "whims" + m.caret.View("y")
	return word + "\n" + LabelStyle.Render(m.caret.Shape.String())
}

func (m Model) renderTree(width int) string {
	r := tree.NewRenderer()
	r.MaxWidth = width - 4
	return strings.TrimRight(r.Render(m.root), "\n")
}

// renderEngine shows the sanitizer on the messy sample: the escaped
// input, the cleaned output, and the measured widths.
func (m Model) renderEngine(width int) string {
	quoted := runes.Truncate(fmt.Sprintf("%q", engineSample), width-8, "…")

	in := LabelStyle.Render("in  ") + quoted
	out := LabelStyle.Render("out ") + m.clean
	measured := LabelStyle.Render(fmt.Sprintf("width %d %s visible %d",
		runes.StringWidth(m.clean, runes.DefaultOptions()),
		colors.SymbolBullet,
		runes.VisibleLength(engineSample)))

	return in + "\n" + out + "\n" + measured
}

// renderFooter renders the keyboard help footer.
func (m Model) renderFooter() string {
	hints := []string{
		KeyQuit + " quit",
		KeyCycleFrames + " spinner",
		KeyCycleShape + " caret",
		KeyReset + " reset",
	}

	return FooterStyle.Render(strings.Join(hints, " | "))
}
