package widgets

import (
	"github.com/vantage-tui/vantage/pkg/ui/runtime"
	"github.com/vantage-tui/vantage/pkg/ui/terminal"
	"github.com/vantage-tui/vantage/pkg/ui/theme"
)

// SearchInput is the single-line query strip a ScrollSearchTable shows
// below its table. Edits are reported through OnChange; Escape asks the
// composition to close the strip.
type SearchInput struct {
	runtime.Base

	query []rune

	// OnChange fires after every edit with the current query.
	OnChange func(query string)
}

// NewSearchInput creates an empty search input.
func NewSearchInput(id runtime.WidgetID) *SearchInput {
	return &SearchInput{Base: runtime.NewBase(id)}
}

// Query returns the current query text.
func (s *SearchInput) Query() string {
	return string(s.query)
}

// Reset clears the query without firing OnChange.
func (s *SearchInput) Reset() {
	s.query = s.query[:0]
}

func (s *SearchInput) changed() {
	if s.OnChange != nil {
		s.OnChange(string(s.query))
	}
}

// OnKey edits the query. Escape surfaces as a close request; Enter is
// absorbed since the query applies live.
func (s *SearchInput) OnKey(ev terminal.KeyEvent) runtime.Signal {
	if ev.Shift && !ev.Alt && !ev.Ctrl && ev.Key == terminal.KeyRune {
		return s.OnKey(ev.StripModifiers())
	}
	if !ev.Bare() {
		return nil
	}

	switch ev.Key {
	case terminal.KeyEscape:
		return runtime.CloseOverlay{}
	case terminal.KeyEnter:
		return nil
	case terminal.KeyBackspace:
		if len(s.query) > 0 {
			s.query = s.query[:len(s.query)-1]
			s.changed()
		}
	case terminal.KeyRune:
		s.query = append(s.query, ev.Rune)
		s.changed()
	}
	return nil
}

// Draw renders the bordered prompt strip.
func (s *SearchInput) Draw(ctx runtime.DrawContext) {
	bounds := s.Bounds()
	if bounds.Width < 2 || bounds.Height < 2 {
		return
	}

	borderStyle := ctx.Theme.Border
	if ctx.Focused == s.ID() {
		borderStyle = ctx.Theme.BorderFocused
	}

	ctx.Buf.Fill(bounds, ' ', ctx.Theme.SearchText)
	ctx.Buf.DrawBox(bounds, borderStyle)

	inner := bounds.Inset(1, 1, 1, 1)
	if inner.Empty() {
		return
	}
	ctx.Buf.SetString(inner.X, inner.Y, theme.Symbols.SearchPrompt, ctx.Theme.SearchPrompt)
	text := truncateToCells(string(s.query), max(0, inner.Width-2))
	ctx.Buf.SetString(inner.X+2, inner.Y, text, ctx.Theme.SearchText)
}

var (
	_ runtime.Widget     = (*SearchInput)(nil)
	_ runtime.KeyHandler = (*SearchInput)(nil)
)
