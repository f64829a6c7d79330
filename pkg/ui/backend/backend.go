// Package backend defines the rendering sink the widget core draws into.
// The core never talks to a terminal library directly; everything goes
// through this interface so tests can run against a simulation screen.
package backend

import "github.com/vantage-tui/vantage/pkg/ui/terminal"

// Backend is the terminal abstraction layer.
type Backend interface {
	// Init initializes the backend (alt screen, raw mode, mouse reporting).
	Init() error

	// Fini restores the terminal to its previous state.
	Fini()

	// Size returns the current terminal dimensions.
	Size() (width, height int)

	// SetContent writes a cell at (x, y). comb holds combining runes and
	// may be nil.
	SetContent(x, y int, mainc rune, comb []rune, style Style)

	// Show flushes pending cell writes to the terminal.
	Show()

	// Clear clears the screen.
	Clear()

	// HideCursor hides the terminal cursor.
	HideCursor()

	// ShowCursor places and shows the cursor.
	ShowCursor(x, y int)

	// PollEvent blocks until an input event arrives. Returns nil when the
	// backend is shutting down.
	PollEvent() terminal.Event

	// PostEvent injects an event into the input queue. Used by tests and
	// for waking the event loop.
	PostEvent(ev terminal.Event) error

	// Beep emits an audible bell.
	Beep()

	// Sync forces a full repaint on the next Show.
	Sync()
}
