package colors

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestColorConstants(t *testing.T) {
	// The palette uses plain ANSI codes, not hex, so it degrades
	// gracefully on 16-color terminals.
	clrs := []lipgloss.Color{
		ColorSuccess,
		ColorError,
		ColorWarning,
		ColorInfo,
		ColorPrimary,
		ColorSecondary,
		ColorMuted,
	}

	for _, color := range clrs {
		colorStr := string(color)
		assert.NotEmpty(t, colorStr, "color should not be empty")
		for _, ch := range colorStr {
			assert.True(t, ch >= '0' && ch <= '9', "ANSI code should be numeric: %s", colorStr)
		}
	}
}

func TestStylesRenderText(t *testing.T) {
	styles := []struct {
		name  string
		style lipgloss.Style
	}{
		{"Success", SuccessStyle()},
		{"Error", ErrorStyle()},
		{"Warning", WarningStyle()},
		{"Info", InfoStyle()},
		{"Muted", MutedStyle()},
		{"Secondary", SecondaryStyle()},
	}

	for _, tt := range styles {
		t.Run(tt.name, func(t *testing.T) {
			rendered := tt.style.Render("sample")
			assert.NotEmpty(t, rendered)
			assert.Contains(t, rendered, "sample")
		})
	}
}

func TestSymbols(t *testing.T) {
	assert.Equal(t, "✓", SymbolSuccess)
	assert.Equal(t, "✗", SymbolFail)
	assert.Equal(t, "⚠", SymbolWarning)

	symbols := []string{
		SymbolSuccess, SymbolFail, SymbolWarning, SymbolInfo,
		SymbolPending, SymbolProgress, SymbolSkipped, SymbolBullet,
	}
	for _, s := range symbols {
		assert.NotEmpty(t, s)
	}
}
