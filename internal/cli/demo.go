package cli

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/outslept/whimsy/colors"
	"github.com/outslept/whimsy/filter"
	"github.com/outslept/whimsy/internal/errors"
	"github.com/outslept/whimsy/internal/gallery"
	"github.com/outslept/whimsy/progress"
	"github.com/outslept/whimsy/spinner"
	"github.com/outslept/whimsy/timer"
	"github.com/outslept/whimsy/tree"
)

// demoCommand runs the named widget demo.
func demoCommand(widget string) error {
	switch widget {
	case "spinner":
		return spinnerDemo()
	case "progress":
		return progressDemo()
	case "tree":
		return treeDemo()
	case "timer":
		return timerDemo()
	case "filter":
		return filterDemo()
	case "gallery":
		return galleryDemo()
	default:
		return errors.New(errors.ErrInput,
			"Unknown widget: "+widget,
			"Pick one of: spinner, progress, tree, timer, filter, gallery.")
	}
}

// framesByName maps a config spinner name to its frame set. Unknown
// names fall back to braille; config validation rejects them earlier.
func framesByName(name string) spinner.Frames {
	switch name {
	case "dots":
		return spinner.Dots
	case "quarter":
		return spinner.Quarter
	case "line":
		return spinner.Line
	default:
		return spinner.Braille
	}
}

func spinnerDemo() error {
	frames := framesByName(cfg.Widgets.Spinner)

	s := spinner.New("Warming up the terminal")
	s.SetFrames(frames)
	s.Start()
	time.Sleep(1500 * time.Millisecond)
	s.Success()

	s = spinner.New("Contacting the mothership")
	s.SetFrames(frames)
	s.Start()
	time.Sleep(1200 * time.Millisecond)
	s.Fail()

	s = spinner.New("Optional garnish")
	s.SetFrames(frames)
	s.Start()
	time.Sleep(600 * time.Millisecond)
	s.Skip()

	return nil
}

func progressDemo() error {
	p := progress.NewInline("Downloading", os.Stdout)
	p.SetWidth(cfg.Widgets.ProgressWidth)
	p.SetFakeProgress(false)
	p.Start()
	for i := 0; i <= 100; i += 2 {
		p.Update(float64(i) / 100)
		time.Sleep(25 * time.Millisecond)
	}
	p.Success()

	// Static meters at a few fill levels.
	fmt.Println()
	for _, pct := range []float64{15, 50, 85, 100} {
		fmt.Println(progress.Render(pct, progress.MeterConfig(cfg.Widgets.ProgressWidth)))
	}
	return nil
}

func treeDemo() error {
	root := tree.New("whimsy",
		tree.New("runes",
			tree.New("sanitize"),
			tree.New("width"),
			tree.New("truncate")),
		tree.New("widgets",
			tree.New("spinner"),
			tree.New("progress"),
			tree.New("tree"),
			tree.New("timer"),
			tree.New("filter")),
		tree.New("a very deeply nested label that will not survive a narrow terminal"),
	)

	r := tree.NewRenderer()
	r.MaxWidth = cfg.Widgets.TreeWidth
	if r.MaxWidth <= 0 {
		r.MaxWidth = terminalWidth()
	}
	fmt.Print(r.Render(root))
	return nil
}

func timerDemo() error {
	sw := timer.NewStopwatch()
	sw.Start()
	cd := timer.NewCountdown(3 * time.Second)
	cd.Start()

	for !cd.Expired() {
		fmt.Printf("\r%s elapsed %s %s remaining %s ",
			colors.SymbolProgress, sw.View(), colors.SymbolBullet, cd.View())
		time.Sleep(100 * time.Millisecond)
	}
	sw.Stop()
	fmt.Printf("\r%s elapsed %s %s remaining %s \n",
		colors.SymbolSuccess, sw.View(), colors.SymbolBullet, cd.View())
	return nil
}

func filterDemo() error {
	items := []string{
		"braille spinner",
		"dots spinner",
		"inline progress bar",
		"threshold meter",
		"tree renderer",
		"blinking cursor",
		"stopwatch",
		"countdown",
		"fuzzy filter",
		"café au lait",
		"日本語のラベル",
		"naïve façade",
	}

	choice, ok, err := filter.Pick(items, filter.Options{
		Placeholder: "Filter widgets...",
		Height:      cfg.Widgets.FilterHeight,
	})
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("Nothing picked.")
		return nil
	}
	fmt.Printf("%s %s\n", colors.SymbolSuccess, choice)
	return nil
}

func galleryDemo() error {
	p := tea.NewProgram(gallery.NewModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// terminalWidth reports the stdout width, defaulting to 80 when stdout
// is not a terminal.
func terminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return 80
	}
	return w
}
