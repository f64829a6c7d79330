package widgets

import (
	"github.com/vantage-tui/vantage/pkg/ui/runtime"
	"github.com/vantage-tui/vantage/pkg/ui/terminal"
)

// SortMenu lists a table's visible column headers so the user can pick
// the sort column. Enter reports the pick as a SelectColumn signal;
// Escape asks the composition to close the menu.
type SortMenu struct {
	runtime.Base

	entries  []string
	selected int
}

// NewSortMenu creates a menu over the given column headers.
func NewSortMenu(id runtime.WidgetID, entries []string) *SortMenu {
	return &SortMenu{Base: runtime.NewBase(id), entries: entries}
}

// SetEntries replaces the listed headers, clamping the cursor.
func (m *SortMenu) SetEntries(entries []string) {
	m.entries = entries
	if m.selected >= len(entries) {
		m.selected = max(0, len(entries)-1)
	}
}

// Selected returns the cursor position.
func (m *SortMenu) Selected() int {
	return m.selected
}

// OnKey moves the cursor with arrows or j/k, confirms with Enter, and
// closes with Escape.
func (m *SortMenu) OnKey(ev terminal.KeyEvent) runtime.Signal {
	if ev.Shift && !ev.Alt && !ev.Ctrl && ev.Key == terminal.KeyRune {
		return m.OnKey(ev.StripModifiers())
	}
	if !ev.Bare() {
		return nil
	}

	switch {
	case ev.Key == terminal.KeyEscape:
		return runtime.CloseOverlay{}
	case ev.Key == terminal.KeyEnter:
		if len(m.entries) == 0 {
			return nil
		}
		return runtime.SelectColumn{Index: m.selected}
	case ev.Key == terminal.KeyUp || (ev.Key == terminal.KeyRune && ev.Rune == 'k'):
		m.selected = max(0, m.selected-1)
	case ev.Key == terminal.KeyDown || (ev.Key == terminal.KeyRune && ev.Rune == 'j'):
		if m.selected+1 < len(m.entries) {
			m.selected++
		}
	}
	return nil
}

// Draw renders the bordered header list with the cursor highlighted.
func (m *SortMenu) Draw(ctx runtime.DrawContext) {
	bounds := m.Bounds()
	if bounds.Width < 2 || bounds.Height < 2 {
		return
	}

	borderStyle := ctx.Theme.Border
	if ctx.Focused == m.ID() {
		borderStyle = ctx.Theme.BorderFocused
	}

	ctx.Buf.Fill(bounds, ' ', ctx.Theme.MenuItem)
	ctx.Buf.DrawBox(bounds, borderStyle)
	ctx.Buf.SetString(bounds.X+2, bounds.Y, " Sort ", ctx.Theme.Title)

	inner := bounds.Inset(1, 1, 1, 1)
	for i, entry := range m.entries {
		y := inner.Y + i
		if y >= inner.Y+inner.Height {
			break
		}
		style := ctx.Theme.MenuItem
		if i == m.selected {
			style = ctx.Theme.MenuSelected
		}
		ctx.Buf.SetString(inner.X, y, padToWidth(entry, inner.Width), style)
	}
}

var (
	_ runtime.Widget     = (*SortMenu)(nil)
	_ runtime.KeyHandler = (*SortMenu)(nil)
)
