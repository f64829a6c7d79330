package runtime

// HitGrid maps screen cells to widgets for mouse routing. The app
// rebuilds it after every layout pass; later registrations win, so a
// tree registered leaves-last routes clicks to the deepest widget.
type HitGrid struct {
	width   int
	height  int
	cells   []int
	widgets []ClickHandler
}

// NewHitGrid creates a hit grid with the given dimensions.
func NewHitGrid(width, height int) *HitGrid {
	g := &HitGrid{}
	g.Resize(width, height)
	return g
}

// Resize updates the grid dimensions and clears it.
func (g *HitGrid) Resize(width, height int) {
	g.width = width
	g.height = height
	size := width * height
	if size <= 0 {
		g.cells = nil
		g.widgets = nil
		return
	}
	if len(g.cells) != size {
		g.cells = make([]int, size)
	}
	g.Clear()
}

// Clear forgets all registrations.
func (g *HitGrid) Clear() {
	for i := range g.cells {
		g.cells[i] = -1
	}
	g.widgets = g.widgets[:0]
}

// Add registers a click handler over the given bounds.
func (g *HitGrid) Add(handler ClickHandler, bounds Rect) {
	if handler == nil || g.width <= 0 || g.height <= 0 {
		return
	}
	bounds = bounds.Intersection(Rect{Width: g.width, Height: g.height})
	if bounds.Empty() {
		return
	}

	id := len(g.widgets)
	g.widgets = append(g.widgets, handler)

	for y := bounds.Y; y < bounds.Y+bounds.Height; y++ {
		row := y * g.width
		for x := bounds.X; x < bounds.X+bounds.Width; x++ {
			g.cells[row+x] = id
		}
	}
}

// HandlerAt returns the click handler covering (x, y), or nil.
func (g *HitGrid) HandlerAt(x, y int) ClickHandler {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return nil
	}
	idx := g.cells[y*g.width+x]
	if idx < 0 || idx >= len(g.widgets) {
		return nil
	}
	return g.widgets[idx]
}
