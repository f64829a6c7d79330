package widgets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vantage-tui/vantage/pkg/ui/runtime"
	"github.com/vantage-tui/vantage/pkg/ui/terminal"
)

// blank is a leaf widget with no behavior, for layout tests.
type blank struct {
	runtime.Base
}

func newBlank(id runtime.WidgetID) *blank {
	return &blank{Base: runtime.NewBase(id)}
}

func (b *blank) Draw(runtime.DrawContext) {}

func TestContainerPartitionsChildren(t *testing.T) {
	row := NewRow(0, 0)
	a := newBlank(1)
	b := newBlank(2)
	row.AddChild(a, runtime.Percentage(50))
	row.AddChild(b, runtime.Min(0))

	row.SetBounds(runtime.NewRect(0, 0, 31, 10))

	assert.Equal(t, 31, a.Bounds().Width+b.Bounds().Width, "children tile the row")
	assert.Equal(t, a.Bounds().X+a.Bounds().Width, b.Bounds().X, "children are contiguous")
	assert.Equal(t, 10, a.Bounds().Height)
	assert.Equal(t, 10, b.Bounds().Height)
}

func TestContainerMarginInsetsSplitAxisOnly(t *testing.T) {
	col := NewColumn(0, 1)
	a := newBlank(1)
	b := newBlank(2)
	col.AddChild(a, runtime.Min(0))
	col.AddChild(b, runtime.Min(0))

	col.SetBounds(runtime.NewRect(0, 0, 20, 12))

	assert.Equal(t, 1, a.Bounds().Y, "margin insets the top")
	assert.Equal(t, 10, a.Bounds().Height+b.Bounds().Height, "margin takes a row from each end")
	assert.Equal(t, 20, a.Bounds().Width, "cross axis untouched")
}

func TestContainerRepartitionsOnChildChanges(t *testing.T) {
	row := NewRow(0, 0)
	a := newBlank(1)
	row.AddChild(a, runtime.Min(0))
	row.SetBounds(runtime.NewRect(0, 0, 30, 5))
	require.Equal(t, 30, a.Bounds().Width)

	b := newBlank(2)
	row.AddChild(b, runtime.Length(10))
	assert.Equal(t, 20, a.Bounds().Width, "adding a child reflows the rest")
	assert.Equal(t, 10, b.Bounds().Width)

	row.RemoveChild(2)
	assert.Equal(t, 30, a.Bounds().Width, "removing a child reflows the rest")
	assert.False(t, row.HasChild(2))
}

func TestContainerDuplicateIDReplacesInPlace(t *testing.T) {
	row := NewRow(0, 0)
	first := newBlank(1)
	second := newBlank(2)
	row.AddChild(first, runtime.Length(10))
	row.AddChild(second, runtime.Min(0))

	replacement := newBlank(1)
	row.AddChild(replacement, runtime.Length(5))
	row.SetBounds(runtime.NewRect(0, 0, 30, 5))

	children := row.Children()
	require.Len(t, children, 2)
	assert.Same(t, runtime.Widget(replacement), children[0], "replacement keeps the original position")
	assert.Equal(t, 5, replacement.Bounds().Width, "replacement carries its own constraint")
}

func TestContainerSetConstraint(t *testing.T) {
	row := NewRow(0, 0)
	a := newBlank(1)
	b := newBlank(2)
	row.AddChild(a, runtime.Length(10))
	row.AddChild(b, runtime.Min(0))
	row.SetBounds(runtime.NewRect(0, 0, 30, 5))
	require.Equal(t, 10, a.Bounds().Width)

	row.SetConstraint(1, runtime.Length(20))
	assert.Equal(t, 20, a.Bounds().Width)
	assert.Equal(t, 10, b.Bounds().Width)
}

func TestContainerFindWidget(t *testing.T) {
	outer := NewColumn(0, 0)
	inner := NewRow(1, 0)
	leaf := newBlank(2)
	inner.AddChild(leaf, runtime.Min(0))
	outer.AddChild(inner, runtime.Min(0))
	outer.AddChild(newBlank(3), runtime.Length(3))

	assert.Same(t, runtime.Widget(outer), outer.FindWidget(0))
	assert.Same(t, runtime.Widget(inner), outer.FindWidget(1))
	assert.Same(t, runtime.Widget(leaf), outer.FindWidget(2), "search descends into nested containers")
	assert.Nil(t, outer.FindWidget(99))
}

func TestContainerFocusMovementKeys(t *testing.T) {
	row := NewRow(0, 0)

	cases := []struct {
		key  terminal.Key
		want runtime.FocusDirection
	}{
		{terminal.KeyUp, runtime.FocusUp},
		{terminal.KeyDown, runtime.FocusDown},
		{terminal.KeyLeft, runtime.FocusLeft},
		{terminal.KeyRight, runtime.FocusRight},
	}
	for _, tc := range cases {
		sig := row.OnKey(terminal.KeyEvent{Key: tc.key, Ctrl: true, Shift: true})
		assert.Equal(t, runtime.MoveFocus{Direction: tc.want}, sig)
	}

	assert.Nil(t, row.OnKey(terminal.KeyEvent{Key: terminal.KeyUp}), "plain arrows pass through")
	assert.Nil(t, row.OnKey(terminal.KeyEvent{Key: terminal.KeyRune, Rune: 'x'}), "runes pass through")
}

func TestContainerSetChildrenDropsStaleIndex(t *testing.T) {
	row := NewRow(0, 0)
	row.AddChild(newBlank(1), runtime.Min(0))
	row.AddChild(newBlank(2), runtime.Min(0))

	only := newBlank(3)
	row.SetChildren([]Child{{Widget: only, Constraint: runtime.Min(0)}})

	assert.False(t, row.HasChild(1))
	assert.False(t, row.HasChild(2))
	assert.True(t, row.HasChild(3))
	require.Len(t, row.Children(), 1)
}
