package colors

// Unicode symbols for status indicators. All render single-column.
const (
	SymbolSuccess  = "✓" // Completed successfully
	SymbolFail     = "✗" // Failed
	SymbolWarning  = "⚠" // Needs attention
	SymbolInfo     = "ℹ" // Informational
	SymbolPending  = "○" // Not yet started
	SymbolProgress = "◐" // In progress
	SymbolSkipped  = "⊘" // Skipped
	SymbolBullet   = "•" // List item
)
