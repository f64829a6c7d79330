// Package widgets provides the dashboard's widget set: containers that
// partition space among children, the text table, and the search/sort
// composition around it.
package widgets

import (
	"github.com/vantage-tui/vantage/pkg/ui/runtime"
	"github.com/vantage-tui/vantage/pkg/ui/terminal"
)

// Child pairs a widget with its layout constraint inside a container.
type Child struct {
	Widget     runtime.Widget
	Constraint runtime.Constraint
}

// Container is a composite widget that splits its rectangle among an
// ordered set of children. Children are keyed by widget ID but keep
// insertion order; adding a child under an existing ID replaces it in
// place.
type Container struct {
	runtime.Base

	direction runtime.Direction
	margin    int
	children  []Child
	index     map[runtime.WidgetID]int
}

// NewContainer creates a container partitioning along dir, with margin
// cells inset from both ends of the split axis.
func NewContainer(id runtime.WidgetID, dir runtime.Direction, margin int) *Container {
	return &Container{
		Base:      runtime.NewBase(id),
		direction: dir,
		margin:    margin,
		index:     make(map[runtime.WidgetID]int),
	}
}

// NewRow creates a container whose children sit side by side.
func NewRow(id runtime.WidgetID, margin int) *Container {
	return NewContainer(id, runtime.DirHorizontal, margin)
}

// NewColumn creates a container whose children stack vertically.
func NewColumn(id runtime.WidgetID, margin int) *Container {
	return NewContainer(id, runtime.DirVertical, margin)
}

// AddChild appends a child and re-partitions. A child with an already
// present ID replaces the existing one, keeping its position.
func (c *Container) AddChild(w runtime.Widget, constraint runtime.Constraint) {
	if pos, ok := c.index[w.ID()]; ok {
		c.children[pos] = Child{Widget: w, Constraint: constraint}
	} else {
		c.index[w.ID()] = len(c.children)
		c.children = append(c.children, Child{Widget: w, Constraint: constraint})
	}
	c.updateChildBounds()
}

// RemoveChild drops the child with the given ID, if present, and
// re-partitions the rest.
func (c *Container) RemoveChild(id runtime.WidgetID) {
	pos, ok := c.index[id]
	if !ok {
		return
	}
	c.children = append(c.children[:pos], c.children[pos+1:]...)
	delete(c.index, id)
	for i := pos; i < len(c.children); i++ {
		c.index[c.children[i].Widget.ID()] = i
	}
	c.updateChildBounds()
}

// SetChildren replaces the whole child set and re-partitions.
func (c *Container) SetChildren(children []Child) {
	c.children = c.children[:0]
	clear(c.index)
	for _, ch := range children {
		if pos, ok := c.index[ch.Widget.ID()]; ok {
			c.children[pos] = ch
			continue
		}
		c.index[ch.Widget.ID()] = len(c.children)
		c.children = append(c.children, ch)
	}
	c.updateChildBounds()
}

// SetConstraint swaps the layout weight of one child without touching
// the child itself, then re-partitions.
func (c *Container) SetConstraint(id runtime.WidgetID, constraint runtime.Constraint) {
	if pos, ok := c.index[id]; ok {
		c.children[pos].Constraint = constraint
		c.updateChildBounds()
	}
}

// HasChild reports whether a child with the given ID is present.
func (c *Container) HasChild(id runtime.WidgetID) bool {
	_, ok := c.index[id]
	return ok
}

// SetBounds installs the container's rectangle and re-partitions the
// children. Never leaves child bounds stale.
func (c *Container) SetBounds(bounds runtime.Rect) {
	c.Base.SetBounds(bounds)
	c.updateChildBounds()
}

func (c *Container) updateChildBounds() {
	if len(c.children) == 0 {
		return
	}
	constraints := make([]runtime.Constraint, len(c.children))
	for i, ch := range c.children {
		constraints[i] = ch.Constraint
	}
	rects := runtime.Split(c.Bounds(), c.direction, c.margin, constraints)
	for i, ch := range c.children {
		ch.Widget.SetBounds(rects[i])
	}
}

// Draw paints children in insertion order.
func (c *Container) Draw(ctx runtime.DrawContext) {
	for _, ch := range c.children {
		ch.Widget.Draw(ctx)
	}
}

// Children returns the child widgets in insertion order.
func (c *Container) Children() []runtime.Widget {
	out := make([]runtime.Widget, len(c.children))
	for i, ch := range c.children {
		out[i] = ch.Widget
	}
	return out
}

// FindWidget returns the widget with the given ID in this subtree, or
// nil when absent.
func (c *Container) FindWidget(id runtime.WidgetID) runtime.Widget {
	if c.ID() == id {
		return c
	}
	for _, ch := range c.children {
		if ch.Widget.ID() == id {
			return ch.Widget
		}
		if sub, ok := ch.Widget.(interface {
			FindWidget(runtime.WidgetID) runtime.Widget
		}); ok {
			if w := sub.FindWidget(id); w != nil {
				return w
			}
		}
	}
	return nil
}

// OnKey claims only the ctrl+shift+arrow space, turning it into a focus
// movement request for the app. Everything else passes through so the
// event can keep climbing.
func (c *Container) OnKey(ev terminal.KeyEvent) runtime.Signal {
	if ev.Ctrl && ev.Shift {
		switch ev.Key {
		case terminal.KeyUp:
			return runtime.MoveFocus{Direction: runtime.FocusUp}
		case terminal.KeyDown:
			return runtime.MoveFocus{Direction: runtime.FocusDown}
		case terminal.KeyLeft:
			return runtime.MoveFocus{Direction: runtime.FocusLeft}
		case terminal.KeyRight:
			return runtime.MoveFocus{Direction: runtime.FocusRight}
		}
		return nil
	}
	// Capital letters arrive as shift+letter; retry as the bare letter.
	if ev.Shift && !ev.Alt && !ev.Ctrl && ev.Key == terminal.KeyRune {
		return c.OnKey(ev.StripModifiers())
	}
	return nil
}

// OnScroll is a pass-through; containers have no scrollable region.
func (c *Container) OnScroll() runtime.Signal {
	return nil
}

var (
	_ runtime.Widget        = (*Container)(nil)
	_ runtime.Parent        = (*Container)(nil)
	_ runtime.KeyHandler    = (*Container)(nil)
	_ runtime.ScrollHandler = (*Container)(nil)
	_ runtime.ClickHandler  = (*Container)(nil)
)
