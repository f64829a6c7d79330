package runtime

import (
	"github.com/vantage-tui/vantage/pkg/ui/terminal"
	"github.com/vantage-tui/vantage/pkg/ui/theme"
)

// WidgetID identifies a widget within one tree. IDs are assigned by the
// application, never by the runtime, and are not reused while the
// widget is alive.
type WidgetID int

// DrawContext is the per-frame snapshot handed down the tree during a
// draw pass. Widgets read from it and write cells into Buf; nothing in
// it is mutated below the app.
type DrawContext struct {
	Buf      *Buffer
	Theme    *theme.Theme
	Settings theme.Settings

	// Focused is the ID of the widget that currently receives keyboard
	// input. Widgets compare it against their own ID to pick chrome.
	Focused WidgetID
}

// Widget is the structural interface every node in the tree implements.
type Widget interface {
	// ID returns the widget's tree-unique identifier.
	ID() WidgetID

	// Draw paints the widget into the rectangle last assigned to it.
	Draw(ctx DrawContext)

	// SetBounds installs a new rectangle. Composites re-partition their
	// children; leaves recompute any size-derived state.
	SetBounds(bounds Rect)

	// Bounds returns the rectangle last assigned via SetBounds.
	Bounds() Rect

	// Name returns an optional display label; "" means none.
	Name() string
}

// KeyHandler is implemented by widgets that consume keyboard input.
//
// A handler either mutates its own state (returning nil) or returns a
// signal for the caller to act on. Ctrl+shift+arrow is reserved for
// tree-level focus movement: leaves must leave it unhandled so it
// reaches an ancestor container. Shift+character must be re-dispatched
// as the bare character (terminal.KeyEvent.StripModifiers) so letter
// bindings are not duplicated across modifier states.
type KeyHandler interface {
	OnKey(ev terminal.KeyEvent) Signal
}

// ScrollHandler is implemented by widgets with a scrollable region.
// OnScroll runs after any state change that could shift the visible
// window and recomputes the slice bounds.
type ScrollHandler interface {
	OnScroll() Signal
}

// ClickHandler is implemented by widgets that respond to mouse clicks.
// All coordinates are absolute terminal cells; widgets convert to their
// own space internally.
type ClickHandler interface {
	InBounds(x, y int) bool
	OnLeftClick(x, y int) Signal
	OnMiddleClick(x, y int) Signal
	OnRightClick(x, y int) Signal
}

// Base carries the identity and bounds every widget needs. Embed it and
// override what differs; the rectangle is stored here once and serves
// both drawing and click hit-testing.
type Base struct {
	id     WidgetID
	bounds Rect
	name   string
}

// NewBase creates the embeddable core with the given ID.
func NewBase(id WidgetID) Base {
	return Base{id: id}
}

// ID returns the widget's identifier.
func (b *Base) ID() WidgetID { return b.id }

// SetBounds installs a new rectangle.
func (b *Base) SetBounds(bounds Rect) { b.bounds = bounds }

// Bounds returns the last assigned rectangle.
func (b *Base) Bounds() Rect { return b.bounds }

// Name returns the widget's label.
func (b *Base) Name() string { return b.name }

// SetName sets the widget's label.
func (b *Base) SetName(name string) { b.name = name }

// InBounds reports whether the absolute point falls inside the widget.
func (b *Base) InBounds(x, y int) bool { return b.bounds.Contains(x, y) }

// OnLeftClick is a no-op unless overridden.
func (b *Base) OnLeftClick(x, y int) Signal { return nil }

// OnMiddleClick is a no-op unless overridden.
func (b *Base) OnMiddleClick(x, y int) Signal { return nil }

// OnRightClick is a no-op unless overridden.
func (b *Base) OnRightClick(x, y int) Signal { return nil }
