package runtime

import "github.com/vantage-tui/vantage/pkg/ui/backend"

// Cell is one character cell in the buffer.
type Cell struct {
	Rune  rune
	Style backend.Style
}

// Buffer is the cell grid widgets draw into. The app flushes changed
// cells to the backend once per frame, so writes that leave a cell
// unchanged cost nothing downstream.
type Buffer struct {
	cells  []Cell
	width  int
	height int

	dirty      []bool
	dirtyCount int
	dirtyRect  Rect
}

// NewBuffer creates a buffer with the given dimensions.
func NewBuffer(w, h int) *Buffer {
	return &Buffer{
		cells:  make([]Cell, w*h),
		dirty:  make([]bool, w*h),
		width:  w,
		height: h,
	}
}

// Size returns the buffer dimensions.
func (b *Buffer) Size() (w, h int) {
	return b.width, b.height
}

// Resize reallocates the grid, keeping content that still fits. The
// whole buffer is marked dirty so the next flush repaints everything.
func (b *Buffer) Resize(w, h int) {
	if w == b.width && h == b.height {
		return
	}
	cells := make([]Cell, w*h)
	for y := 0; y < min(h, b.height); y++ {
		copy(cells[y*w:y*w+min(w, b.width)], b.cells[y*b.width:])
	}
	b.cells = cells
	b.dirty = make([]bool, w*h)
	b.width = w
	b.height = h
	b.MarkAllDirty()
}

// Clear fills the whole buffer with spaces in the default style.
func (b *Buffer) Clear() {
	b.Fill(Rect{0, 0, b.width, b.height}, ' ', backend.DefaultStyle())
}

// Get returns the cell at (x, y), or a blank cell out of bounds.
func (b *Buffer) Get(x, y int) Cell {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return Cell{Rune: ' '}
	}
	return b.cells[y*b.width+x]
}

// Set writes one cell. Writes outside the grid are dropped; writes that
// change nothing stay clean.
func (b *Buffer) Set(x, y int, r rune, s backend.Style) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	idx := y*b.width + x
	if b.cells[idx].Rune != r || b.cells[idx].Style != s {
		b.cells[idx] = Cell{Rune: r, Style: s}
		b.markDirty(x, y, idx)
	}
}

// SetString writes s starting at (x, y), clipped to the row. The caller
// is responsible for width-aware truncation; runes land one per cell.
func (b *Buffer) SetString(x, y int, s string, style backend.Style) {
	if y < 0 || y >= b.height {
		return
	}
	px := x
	for _, r := range s {
		if px >= b.width {
			break
		}
		if px >= 0 {
			b.Set(px, y, r, style)
		}
		px++
	}
}

// Fill covers a rectangular region with one rune and style.
func (b *Buffer) Fill(r Rect, ch rune, s backend.Style) {
	clipped := r.Intersection(Rect{0, 0, b.width, b.height})
	for y := clipped.Y; y < clipped.Y+clipped.Height; y++ {
		for x := clipped.X; x < clipped.X+clipped.Width; x++ {
			b.Set(x, y, ch, s)
		}
	}
}

// DrawBox draws a single-line border just inside r.
func (b *Buffer) DrawBox(r Rect, s backend.Style) {
	if r.Width < 2 || r.Height < 2 {
		return
	}

	b.Set(r.X, r.Y, '┌', s)
	b.Set(r.X+r.Width-1, r.Y, '┐', s)
	b.Set(r.X, r.Y+r.Height-1, '└', s)
	b.Set(r.X+r.Width-1, r.Y+r.Height-1, '┘', s)

	for x := r.X + 1; x < r.X+r.Width-1; x++ {
		b.Set(x, r.Y, '─', s)
		b.Set(x, r.Y+r.Height-1, '─', s)
	}
	for y := r.Y + 1; y < r.Y+r.Height-1; y++ {
		b.Set(r.X, y, '│', s)
		b.Set(r.X+r.Width-1, y, '│', s)
	}
}

func (b *Buffer) markDirty(x, y, idx int) {
	if b.dirty[idx] {
		return
	}
	b.dirty[idx] = true
	b.dirtyCount++

	if b.dirtyCount == 1 {
		b.dirtyRect = Rect{X: x, Y: y, Width: 1, Height: 1}
		return
	}
	if x < b.dirtyRect.X {
		b.dirtyRect.Width += b.dirtyRect.X - x
		b.dirtyRect.X = x
	} else if x >= b.dirtyRect.X+b.dirtyRect.Width {
		b.dirtyRect.Width = x - b.dirtyRect.X + 1
	}
	if y < b.dirtyRect.Y {
		b.dirtyRect.Height += b.dirtyRect.Y - y
		b.dirtyRect.Y = y
	} else if y >= b.dirtyRect.Y+b.dirtyRect.Height {
		b.dirtyRect.Height = y - b.dirtyRect.Y + 1
	}
}

// MarkAllDirty flags every cell for the next flush.
func (b *Buffer) MarkAllDirty() {
	for i := range b.dirty {
		b.dirty[i] = true
	}
	b.dirtyCount = len(b.dirty)
	b.dirtyRect = Rect{Width: b.width, Height: b.height}
}

// ClearDirty resets the dirty flags after a flush.
func (b *Buffer) ClearDirty() {
	clear(b.dirty)
	b.dirtyCount = 0
	b.dirtyRect = Rect{}
}

// IsDirty reports whether any cell changed since the last flush.
func (b *Buffer) IsDirty() bool {
	return b.dirtyCount > 0
}

// DirtyRect returns the bounding box of changed cells.
func (b *Buffer) DirtyRect() Rect {
	return b.dirtyRect
}

// ForEachDirtyCell visits every changed cell.
func (b *Buffer) ForEachDirtyCell(fn func(x, y int, cell Cell)) {
	if b.dirtyCount == 0 {
		return
	}
	r := b.dirtyRect
	for y := r.Y; y < r.Y+r.Height && y < b.height; y++ {
		for x := r.X; x < r.X+r.Width && x < b.width; x++ {
			idx := y*b.width + x
			if b.dirty[idx] {
				fn(x, y, b.cells[idx])
			}
		}
	}
}
