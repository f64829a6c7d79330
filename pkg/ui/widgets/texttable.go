package widgets

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/vantage-tui/vantage/pkg/ui/runtime"
	"github.com/vantage-tui/vantage/pkg/ui/terminal"
	"github.com/vantage-tui/vantage/pkg/ui/theme"
)

// tableGapHeightLimit is the height below which the gap between the
// header and the first data row collapses to zero.
const tableGapHeightLimit = 7

// WidthStrategy selects how a table distributes horizontal space.
type WidthStrategy int

const (
	// MaximizeColumnInfo greedily grants each column its desired width
	// in order, so the columns that fit are fully readable.
	MaximizeColumnInfo WidthStrategy = iota
	// MaximizeColumnCount fits as many columns as possible, narrowing
	// each below its desired width when necessary.
	MaximizeColumnCount
)

// TableColumn describes one column of a TextTable.
type TableColumn struct {
	// Header is the label in the header row.
	Header string

	// DesiredWidth is the preferred width in cells.
	DesiredWidth int

	// UpperBound optionally caps the width when the table widens the
	// column; nil means inflexible.
	UpperBound *runtime.Constraint

	// Sorting marks the column the data is currently sorted by.
	Sorting bool

	// Hidden columns take no space and no clicks.
	Hidden bool

	// Horizontal click bounds from the last draw, relative to the
	// table's left edge. Meaningless while the column is hidden or
	// scrolled out.
	xLo, xHi int
	hasX     bool
}

// scrollDirection records which way the selection last moved.
type scrollDirection int

const (
	scrollDown scrollDirection = iota
	scrollUp
)

// colSpan is one slot of the rendered column sequence: either a real
// column or a one-cell scroll indicator.
type colSpan struct {
	column int // index into columns, -1 for an indicator
	width  int
	left   bool // indicator orientation
}

// TextTable renders a header row plus a scrollable window of data rows.
// Column and row data are borrowed from the application: the table
// reads them during draws and event handling but never mutates or
// retains ownership of the row strings.
type TextTable struct {
	runtime.Base

	columns []TableColumn
	data    [][]string

	strategy WidthStrategy

	// Horizontal scroll: how many visible columns are scrolled past.
	offsetMultiplier int

	// Vertical scroll state machine.
	currentPosition  int
	previousPosition int
	direction        scrollDirection
	startIndex       int
	endIndex         int

	// Derived from bounds each time they change.
	tableGap    int
	tableOffset int

	spans []colSpan

	// gg jump-to-start detection.
	pendingG bool
}

// NewTextTable creates a table over borrowed columns and rows.
func NewTextTable(id runtime.WidgetID, name string, columns []TableColumn, data [][]string) *TextTable {
	t := &TextTable{
		Base:     runtime.NewBase(id),
		columns:  columns,
		data:     data,
		strategy: MaximizeColumnInfo,
	}
	t.SetName(name)
	return t
}

// SetWidthStrategy selects the column width algorithm.
func (t *TextTable) SetWidthStrategy(s WidthStrategy) {
	t.strategy = s
	t.recomputeWidths()
}

// SetData swaps in newer rows and refreshes the derived widths and the
// visible window. Rows arrive pre-sorted and pre-formatted. Both scroll
// positions are clamped so a shrink cannot leave the window anchored
// past the data.
func (t *TextTable) SetData(data [][]string) {
	t.data = data
	if len(data) == 0 {
		t.currentPosition = 0
		t.previousPosition = 0
	} else {
		t.currentPosition = min(t.currentPosition, len(data)-1)
		t.previousPosition = min(t.previousPosition, max(0, len(data)-t.numVisibleRows()))
	}
	t.recomputeWidths()
	t.recomputeWindow()
}

// SetTableGap sets the configured gap between header and data; the gap
// still collapses on short tables. The visible window depends on the
// gap, so it refreshes here too.
func (t *TextTable) SetTableGap(gap int) {
	t.tableGap = gap
	t.updateOffset()
	t.recomputeWindow()
}

// Columns exposes the borrowed column definitions.
func (t *TextTable) Columns() []TableColumn {
	return t.columns
}

// Selected returns the selected row index.
func (t *TextTable) Selected() int {
	return t.currentPosition
}

// Window returns the visible row slice bounds from the last recompute.
func (t *TextTable) Window() (start, end int) {
	return t.startIndex, t.endIndex
}

// SelectColumn marks the visible column at the given display index as
// the sorting column, clearing the previous one.
func (t *TextTable) SelectColumn(visibleIndex int) {
	vi := 0
	for i := range t.columns {
		if t.columns[i].Hidden {
			t.columns[i].Sorting = false
			continue
		}
		t.columns[i].Sorting = vi == visibleIndex
		vi++
	}
}

// SetBounds installs a new rectangle, derives the header gap from the
// new height, and refreshes the column widths and scroll window.
func (t *TextTable) SetBounds(bounds runtime.Rect) {
	if bounds == t.Bounds() {
		return
	}
	t.Base.SetBounds(bounds)
	t.updateOffset()
	t.recomputeWidths()
	t.recomputeWindow()
}

func (t *TextTable) updateOffset() {
	if t.Bounds().Height < tableGapHeightLimit {
		t.tableOffset = 0
	} else {
		t.tableOffset = t.tableGap
	}
}

// numVisibleRows is the data rows that fit: height minus the border
// rows, the header row, and the gap. Saturates at zero.
func (t *TextTable) numVisibleRows() int {
	return max(0, t.Bounds().Height-2-1-t.tableOffset)
}

// visibleColumns returns indices of non-hidden columns in order.
func (t *TextTable) visibleColumns() []int {
	var vis []int
	for i, c := range t.columns {
		if !c.Hidden {
			vis = append(vis, i)
		}
	}
	return vis
}

// recomputeWidths rebuilds the rendered column sequence for the current
// bounds, scroll offset, and strategy.
func (t *TextTable) recomputeWidths() {
	for i := range t.columns {
		t.columns[i].hasX = false
	}

	inner := t.Bounds().Inset(1, 1, 1, 1)
	if inner.Width <= 0 {
		t.spans = nil
		return
	}

	vis := t.visibleColumns()
	skip := min(t.offsetMultiplier, len(vis))
	vis = vis[skip:]

	switch t.strategy {
	case MaximizeColumnCount:
		t.spans = t.widthsMaximizeCount(inner.Width, vis)
	default:
		t.spans = t.widthsMaximizeInfo(inner.Width, vis)
	}
}

// widthsMaximizeInfo grants desired widths greedily in column order.
// When a column does not fit, the walk restarts one cell narrower and
// keeps only the widths already accepted, with the spare cell spent on
// a right-overflow indicator. Leftover space is then spread evenly,
// floor first and the remainder one cell at a time to the leading
// slots, so the spans tile the available width exactly.
func (t *TextTable) widthsMaximizeInfo(totalWidth int, vis []int) []colSpan {
	total := totalWidth
	var spans []colSpan

	if t.offsetMultiplier > 0 {
		if total < 1 {
			return nil
		}
		total--
		spans = append(spans, colSpan{column: -1, width: 1, left: true})
	}

	bailed := false
	for _, ci := range vis {
		d := t.columns[ci].DesiredWidth
		if total < d {
			bailed = true
			break
		}
		total -= d
		spans = append(spans, colSpan{column: ci, width: d})
	}

	if bailed {
		newTotal := totalWidth - 1
		var redone []colSpan
		if t.offsetMultiplier > 0 {
			newTotal--
			redone = append(redone, colSpan{column: -1, width: 1, left: true})
		}
		for _, sp := range spans {
			if sp.column < 0 {
				continue
			}
			if newTotal < sp.width {
				break
			}
			newTotal -= sp.width
			redone = append(redone, sp)
		}
		redone = append(redone, colSpan{column: -1, width: 1})
		spans = redone
		total = newTotal
	}

	if len(spans) == 0 || total < 0 {
		return spans
	}

	per := total / len(spans)
	rem := total % len(spans)
	for i := range spans {
		spans[i].width += per
		if i < rem {
			spans[i].width++
		}
	}
	return spans
}

// widthsMaximizeCount fits as many columns as possible at one cell or
// more, scaling desired widths down proportionally when their sum
// exceeds the space and honoring each column's upper bound otherwise.
func (t *TextTable) widthsMaximizeCount(totalWidth int, vis []int) []colSpan {
	total := totalWidth
	var spans []colSpan

	if t.offsetMultiplier > 0 {
		if total < 1 {
			return nil
		}
		total--
		spans = append(spans, colSpan{column: -1, width: 1, left: true})
	}

	count := min(len(vis), total)
	if count == 0 {
		return spans
	}
	taken := vis[:count]
	overflow := count < len(vis)
	if overflow {
		// One cell goes to the right-overflow indicator.
		total--
		if total < count {
			count = total
			if count <= 0 {
				return spans
			}
			taken = vis[:count]
		}
	}

	sumDesired := 0
	for _, ci := range taken {
		sumDesired += t.columns[ci].DesiredWidth
	}

	start := len(spans)
	if sumDesired <= total {
		for _, ci := range taken {
			spans = append(spans, colSpan{column: ci, width: t.columns[ci].DesiredWidth})
		}
		leftover := total - sumDesired
		for i := 0; leftover > 0; i = (i + 1) % count {
			sp := &spans[start+i]
			if capped, width := t.boundedGrow(sp.column, sp.width, total); capped {
				// All caps hit: park the rest on the last column.
				allCapped := true
				for j := 0; j < count; j++ {
					s := &spans[start+j]
					if ok, _ := t.boundedGrow(s.column, s.width, total); !ok {
						allCapped = false
						break
					}
				}
				if allCapped {
					spans[start+count-1].width += leftover
					leftover = 0
				}
				continue
			} else {
				sp.width = width
				leftover--
			}
		}
	} else {
		used := 0
		for _, ci := range taken {
			w := max(1, t.columns[ci].DesiredWidth*total/sumDesired)
			spans = append(spans, colSpan{column: ci, width: w})
			used += w
		}
		// Rounding drift: trim from the tail, grow from the head.
		for i := count - 1; used > total && i >= 0; i-- {
			give := min(spans[start+i].width-1, used-total)
			spans[start+i].width -= give
			used -= give
		}
		for i := 0; used < total; i = (i + 1) % count {
			spans[start+i].width++
			used++
		}
	}

	if overflow {
		spans = append(spans, colSpan{column: -1, width: 1})
	}
	return spans
}

// boundedGrow reports whether the column is at its upper bound, and the
// width after one more cell when it is not.
func (t *TextTable) boundedGrow(ci, width, total int) (capped bool, grown int) {
	ub := t.columns[ci].UpperBound
	if ub != nil {
		limit := 0
		switch ub.Kind() {
		case runtime.ConstraintLength:
			limit = ub.Value()
		case runtime.ConstraintPercentage:
			limit = total * ub.Value() / 100
		default:
			limit = total
		}
		if width >= limit {
			return true, width
		}
	}
	return false, width + 1
}

// recomputeWindow runs the vertical scroll state machine and derives
// the visible slice bounds.
func (t *TextTable) recomputeWindow() {
	numRows := t.numVisibleRows()
	if len(t.data) == 0 || numRows <= 0 {
		t.startIndex = 0
		t.endIndex = 0
		return
	}

	switch t.direction {
	case scrollDown:
		if t.currentPosition < t.previousPosition+numRows {
			// Still visible from the previous anchor; no scroll.
		} else if t.currentPosition >= numRows {
			t.previousPosition = t.currentPosition - numRows + 1
		} else {
			t.previousPosition = 0
		}
	case scrollUp:
		if t.currentPosition <= t.previousPosition {
			t.previousPosition = t.currentPosition
		} else if t.currentPosition >= t.previousPosition+numRows {
			t.previousPosition = t.currentPosition - numRows + 1
		}
		// Otherwise the anchor stays where it is.
	}

	t.startIndex = t.previousPosition
	t.endIndex = min(t.startIndex+numRows, len(t.data))
}

// OnScroll recomputes the visible window after any state change that
// could shift it.
func (t *TextTable) OnScroll() runtime.Signal {
	t.recomputeWindow()
	return nil
}

// OnKey implements the table's keyboard bindings. Movement mutates the
// scroll state and returns nil; search and sort requests surface as
// signals for the enclosing composition.
func (t *TextTable) OnKey(ev terminal.KeyEvent) runtime.Signal {
	if ev.Bare() {
		pending := t.pendingG
		t.pendingG = false

		if ev.Key == terminal.KeyRune {
			switch ev.Rune {
			case '/':
				return runtime.OpenSearch{}
			case 'g':
				if pending {
					// gg: jump to the start of the list.
					t.currentPosition = 0
					t.direction = scrollUp
				} else {
					t.pendingG = true
				}
				return nil
			case 'G':
				if len(t.data) > 0 {
					t.currentPosition = len(t.data) - 1
				}
				t.direction = scrollDown
				return nil
			case 'k':
				t.moveUp()
				return nil
			case 'j':
				t.moveDown()
				return nil
			case 'h':
				t.scrollLeft()
				return nil
			case 'l':
				t.scrollRight()
				return nil
			}
			return nil
		}

		switch ev.Key {
		case terminal.KeyUp:
			t.moveUp()
		case terminal.KeyDown:
			t.moveDown()
		case terminal.KeyLeft:
			t.scrollLeft()
		case terminal.KeyRight:
			t.scrollRight()
		case terminal.KeyF6:
			return runtime.OpenSort{}
		}
		return nil
	}

	t.pendingG = false

	if ev.Ctrl && !ev.Alt && !ev.Shift {
		if ev.Key == terminal.KeyCtrlF || (ev.Key == terminal.KeyRune && ev.Rune == 'f') {
			return runtime.OpenSearch{}
		}
		return nil
	}

	// Capital letters arrive as shift+letter; retry as the bare letter.
	if ev.Shift && !ev.Alt && !ev.Ctrl && ev.Key == terminal.KeyRune {
		return t.OnKey(ev.StripModifiers())
	}
	return nil
}

func (t *TextTable) moveUp() {
	t.currentPosition = max(0, t.currentPosition-1)
	t.direction = scrollUp
}

func (t *TextTable) moveDown() {
	if t.currentPosition+1 < len(t.data) {
		t.currentPosition++
	}
	t.direction = scrollDown
}

func (t *TextTable) scrollLeft() {
	if t.offsetMultiplier > 0 {
		t.offsetMultiplier--
		t.recomputeWidths()
	}
}

func (t *TextTable) scrollRight() {
	// The offset counts visible columns, so hidden ones must not widen
	// its range.
	if t.offsetMultiplier+1 < len(t.visibleColumns()) {
		t.offsetMultiplier++
		t.recomputeWidths()
	}
}

// OnLeftClick maps a click on the header row to the visible column
// under the cursor and reports it as a column selection.
func (t *TextTable) OnLeftClick(x, y int) runtime.Signal {
	bounds := t.Bounds()
	relX := x - bounds.X
	relY := y - bounds.Y

	// The header sits on the first row inside the border.
	if relY != 1 {
		return nil
	}

	visibleIndex := 0
	for i := range t.columns {
		if t.columns[i].Hidden {
			continue
		}
		if t.columns[i].hasX && relX >= t.columns[i].xLo && relX < t.columns[i].xHi {
			return runtime.SelectColumn{Index: visibleIndex}
		}
		visibleIndex++
	}
	return nil
}

// Draw renders the border, header, gap, and the visible row window.
func (t *TextTable) Draw(ctx runtime.DrawContext) {
	bounds := t.Bounds()
	if bounds.Width < 2 || bounds.Height < 2 {
		return
	}

	focused := ctx.Focused == t.ID()
	borderStyle := ctx.Theme.Border
	if focused {
		borderStyle = ctx.Theme.BorderFocused
	}

	ctx.Buf.Fill(bounds, ' ', ctx.Theme.Text)
	ctx.Buf.DrawBox(bounds, borderStyle)
	if name := t.Name(); name != "" {
		label := " " + name + " "
		ctx.Buf.SetString(bounds.X+2, bounds.Y, truncateToCells(label, max(0, bounds.Width-4)), ctx.Theme.Title)
	}

	inner := bounds.Inset(1, 1, 1, 1)
	if inner.Empty() {
		return
	}

	t.drawHeader(ctx, inner)
	t.drawRows(ctx, inner)
}

func (t *TextTable) drawHeader(ctx runtime.DrawContext, inner runtime.Rect) {
	for i := range t.columns {
		t.columns[i].hasX = false
	}

	x := inner.X
	for _, sp := range t.spans {
		if sp.width <= 0 {
			continue
		}
		if sp.column < 0 {
			arrow := theme.Symbols.ArrowRight
			if sp.left {
				arrow = theme.Symbols.ArrowLeft
			}
			ctx.Buf.SetString(x, inner.Y, arrow, ctx.Theme.ScrollIndicator)
			x += sp.width
			continue
		}

		col := &t.columns[sp.column]
		label := col.Header
		if col.Sorting {
			label += theme.Symbols.ArrowDown
		}
		cell := padToWidth(truncateGraphemes(label, sp.width), sp.width)
		style := ctx.Theme.Header
		if col.Sorting {
			style = ctx.Theme.SortArrow
		}
		ctx.Buf.SetString(x, inner.Y, cell, style)

		col.xLo = x - t.Bounds().X
		col.xHi = col.xLo + sp.width
		col.hasX = true
		x += sp.width
	}
}

func (t *TextTable) drawRows(ctx runtime.DrawContext, inner runtime.Rect) {
	firstRowY := inner.Y + 1 + t.tableOffset
	numRows := t.numVisibleRows()
	if numRows <= 0 {
		return
	}

	start := min(t.startIndex, len(t.data))
	end := min(t.endIndex, len(t.data))

	focused := ctx.Focused == t.ID()

	for i := start; i < end; i++ {
		y := firstRowY + (i - start)
		if y >= inner.Y+inner.Height {
			break
		}

		rowStyle := ctx.Theme.Text
		if i == t.currentPosition && focused {
			rowStyle = ctx.Theme.TextSelected
			ctx.Buf.Fill(runtime.Rect{X: inner.X, Y: y, Width: inner.Width, Height: 1}, ' ', rowStyle)
		}

		row := t.data[i]
		x := inner.X
		for _, sp := range t.spans {
			if sp.width <= 0 {
				continue
			}
			if sp.column < 0 || sp.column >= len(row) {
				x += sp.width
				continue
			}
			cell := padToWidth(truncateGraphemes(row[sp.column], sp.width), sp.width)
			ctx.Buf.SetString(x, y, cell, rowStyle)
			x += sp.width
		}
	}
}

// truncateGraphemes keeps the first w grapheme clusters of s, so
// multi-codepoint characters survive intact.
func truncateGraphemes(s string, w int) string {
	if w <= 0 {
		return ""
	}
	if uniseg.GraphemeClusterCount(s) <= w {
		return s
	}
	var b strings.Builder
	g := uniseg.NewGraphemes(s)
	for i := 0; i < w && g.Next(); i++ {
		b.WriteString(g.Str())
	}
	return b.String()
}

// truncateToCells clips s to at most w display cells.
func truncateToCells(s string, w int) string {
	return runewidth.Truncate(s, w, "")
}

// padToWidth clips s to w display cells and pads with spaces up to w.
func padToWidth(s string, w int) string {
	s = runewidth.Truncate(s, w, "")
	return s + strings.Repeat(" ", max(0, w-runewidth.StringWidth(s)))
}

var (
	_ runtime.Widget        = (*TextTable)(nil)
	_ runtime.KeyHandler    = (*TextTable)(nil)
	_ runtime.ScrollHandler = (*TextTable)(nil)
	_ runtime.ClickHandler  = (*TextTable)(nil)
)
