// Package gallery implements the interactive widget showcase behind
// 'whimsy demo gallery'.
//
// The gallery is a Bubble Tea model (Model-Update-View) with one panel
// per widget family:
//
//   - a spinner component animated by its own bubbles tick
//   - progress and meter bars advanced on each gallery tick
//   - a running stopwatch next to an expiring countdown
//   - a blinking caret advanced against the wall clock
//   - a tree re-rendered against the current terminal width
//   - the sanitizer engine shown on a deliberately messy sample
//
// The model owns no goroutines; all animation flows through tea.Tick
// commands, so the caller's program loop is the only scheduler.
//
// Keyboard:
//
//	q, Ctrl+C - quit
//	s         - cycle spinner frame sets
//	c         - cycle caret shapes
//	r         - reset progress and timers
package gallery
