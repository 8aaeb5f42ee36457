package progress

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/outslept/whimsy/colors"
	"github.com/outslept/whimsy/runes"
	"github.com/outslept/whimsy/spinner"
)

// fakeDuration is how long simulated progress takes to approach 99%.
const fakeDuration = 30 * time.Second

// Inline displays an animated progress bar for CLI use outside Bubble
// Tea. It owns an animation goroutine between Start and Stop, like the
// spinner.
type Inline struct {
	mu           sync.Mutex
	label        string
	detail       string
	frac         float64
	startTime    time.Time
	stopChan     chan struct{}
	doneChan     chan struct{}
	out          io.Writer
	running      bool
	lastRendered string
	width        int
	useFake      bool
}

// NewInline creates an inline progress display writing to out.
func NewInline(label string, out io.Writer) *Inline {
	return &Inline{
		label:   label,
		out:     out,
		width:   30,
		useFake: true,
	}
}

// SetFakeProgress enables or disables simulated progress. When enabled
// and no real updates arrive, the bar eases out toward 99% so slow
// operations still feel alive.
func (p *Inline) SetFakeProgress(use bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.useFake = use
}

// SetWidth sets the bar width in characters.
func (p *Inline) SetWidth(w int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.width = w
}

// Update reports real progress as a fraction in 0-1.
func (p *Inline) Update(frac float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.frac = frac
}

// SetDetail sets a muted free-form suffix shown after the percentage
// (a rate, an item count, whatever the caller is tracking).
func (p *Inline) SetDetail(detail string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.detail = detail
}

// Start begins the progress animation.
func (p *Inline) Start() {
	p.mu.Lock()
	if p.running {
		p.mu.Unlock()
		return
	}
	p.running = true
	p.startTime = time.Now()
	p.stopChan = make(chan struct{})
	p.doneChan = make(chan struct{})
	p.mu.Unlock()

	p.render()

	go p.animate()
}

// Stop halts the progress animation.
func (p *Inline) Stop() {
	p.mu.Lock()
	if !p.running {
		p.mu.Unlock()
		return
	}
	p.running = false
	close(p.stopChan)
	p.mu.Unlock()

	<-p.doneChan
}

// Success stops and renders the success line.
func (p *Inline) Success() {
	p.Stop()
	p.renderFinal(true)
}

// Fail stops and renders the failure line.
func (p *Inline) Fail() {
	p.Stop()
	p.renderFinal(false)
}

func (p *Inline) animate() {
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()
	defer close(p.doneChan)

	for {
		select {
		case <-p.stopChan:
			return
		case <-ticker.C:
			p.render()
		}
	}
}

// easeOutQuad applies an ease-out quadratic curve: fast at first,
// decelerating toward the end. t in [0, 1].
func easeOutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// fakeFracLocked returns simulated progress from elapsed time, capped
// at 0.99 until a real completion arrives. Callers must hold p.mu.
func (p *Inline) fakeFracLocked() float64 {
	elapsed := time.Since(p.startTime)
	if elapsed >= fakeDuration {
		return 0.99
	}
	t := float64(elapsed) / float64(fakeDuration)
	return easeOutQuad(t) * 0.99
}

// effectiveFracLocked returns the fraction to display: the max of real
// and simulated progress. Callers must hold p.mu.
func (p *Inline) effectiveFracLocked() float64 {
	if !p.useFake {
		return p.frac
	}
	if fake := p.fakeFracLocked(); fake > p.frac {
		return fake
	}
	return p.frac
}

func (p *Inline) render() {
	p.mu.Lock()
	defer p.mu.Unlock()

	frac := p.effectiveFracLocked()

	glyphs := spinner.Braille.Glyphs
	frame := glyphs[int(time.Since(p.startTime).Milliseconds()/100)%len(glyphs)]
	frameStyle := lipgloss.NewStyle().Foreground(colors.ColorSecondary)

	bar := p.renderBarLocked(frac)

	pctStyle := lipgloss.NewStyle().Foreground(colors.ColorPrimary)
	pctStr := pctStyle.Render(fmt.Sprintf("%3.0f%%", frac*100))

	var detail string
	if p.detail != "" {
		detailStyle := lipgloss.NewStyle().Foreground(colors.ColorMuted)
		detail = " " + detailStyle.Render(p.detail)
	}

	line := fmt.Sprintf("\r%s %s %s %s%s",
		frameStyle.Render(frame),
		p.label,
		bar,
		pctStr,
		detail,
	)

	p.clearLocked()
	fmt.Fprint(p.out, line)
	p.lastRendered = line
}

// renderBarLocked builds the bracketed, styled bar for a fraction in
// 0-1. Callers must hold p.mu.
func (p *Inline) renderBarLocked(frac float64) string {
	filled, empty := CountsNormalized(frac, p.width)

	barColor := ProgressColor(frac * 100)
	filledStyle := lipgloss.NewStyle().Foreground(barColor)
	emptyStyle := lipgloss.NewStyle().Foreground(colors.ColorMuted)

	filledBar := filledStyle.Render(strings.Repeat(string(BarFilled), filled))
	emptyBar := emptyStyle.Render(strings.Repeat(string(BarEmpty), empty))

	return "[" + filledBar + emptyBar + "]"
}

func (p *Inline) renderFinal(success bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.clearLocked()

	var symbol string
	var style lipgloss.Style
	if success {
		symbol = colors.SymbolSuccess
		style = lipgloss.NewStyle().Foreground(colors.ColorSuccess)
	} else {
		symbol = colors.SymbolFail
		style = lipgloss.NewStyle().Foreground(colors.ColorError)
	}

	mutedStyle := lipgloss.NewStyle().Foreground(colors.ColorMuted)

	var detail string
	if p.detail != "" {
		detail = " " + mutedStyle.Render("("+p.detail+")")
	}

	timing := mutedStyle.Render(formatDuration(time.Since(p.startTime)))
	fmt.Fprintf(p.out, "%s %s%s %s\n", style.Render(symbol), p.label, detail, timing)
	p.lastRendered = ""
}

// clearLocked blanks the previously rendered line, measuring the clear
// width from the visible characters only. Callers must hold p.mu.
func (p *Inline) clearLocked() {
	if p.lastRendered == "" {
		return
	}
	clearLen := runes.VisibleLength(p.lastRendered)
	fmt.Fprintf(p.out, "\r%s\r", strings.Repeat(" ", clearLen))
}

func formatDuration(d time.Duration) string {
	secs := d.Seconds()
	if secs < 0.1 {
		return fmt.Sprintf("%.2fs", secs)
	}
	return fmt.Sprintf("%.1fs", secs)
}
