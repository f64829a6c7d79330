package widgets

import (
	"github.com/vantage-tui/vantage/pkg/ui/runtime"
)

// sortMenuWidth is the fixed strip the sort menu occupies on the left.
const sortMenuWidth = 14

// searchHeight is the strip the search input occupies at the bottom.
const searchHeight = 3

// ScrollSearchTable wraps a TextTable in a container alongside a search
// input and a sort menu, toggling those panels in response to the
// signals the table bubbles up. The composition claims five consecutive
// widget IDs starting at the one given.
type ScrollSearchTable struct {
	outer  *Container // column: body over search strip
	body   *Container // row: sort menu beside the table
	table  *TextTable
	sort   *SortMenu
	search *SearchInput

	searchable bool
	sortable   bool
	searchOpen bool
	sortOpen   bool
}

// NewScrollSearchTable builds the composition. columns and data are
// borrowed by the inner table.
func NewScrollSearchTable(id runtime.WidgetID, name string, columns []TableColumn, data [][]string) *ScrollSearchTable {
	s := &ScrollSearchTable{
		outer:      NewColumn(id, 1),
		body:       NewRow(id+1, 0),
		sort:       NewSortMenu(id+2, nil),
		table:      NewTextTable(id+3, name, columns, data),
		search:     NewSearchInput(id + 4),
		searchable: true,
		sortable:   true,
	}
	s.body.AddChild(s.table, runtime.Min(0))
	s.outer.AddChild(s.body, runtime.Min(0))
	return s
}

// Searchable toggles whether the table offers a search strip.
func (s *ScrollSearchTable) Searchable(on bool) *ScrollSearchTable {
	s.searchable = on
	if !on {
		s.closeSearch()
	}
	return s
}

// Sortable toggles whether the table offers a sort menu.
func (s *ScrollSearchTable) Sortable(on bool) *ScrollSearchTable {
	s.sortable = on
	if !on {
		s.closeSort()
	}
	return s
}

// Table returns the inner TextTable.
func (s *ScrollSearchTable) Table() *TextTable {
	return s.table
}

// Search returns the inner search input.
func (s *ScrollSearchTable) Search() *SearchInput {
	return s.search
}

// TableID returns the inner table's widget ID, the natural focus target
// of the composition.
func (s *ScrollSearchTable) TableID() runtime.WidgetID {
	return s.table.ID()
}

// SearchOpen reports whether the search strip is showing.
func (s *ScrollSearchTable) SearchOpen() bool { return s.searchOpen }

// SortOpen reports whether the sort menu is showing.
func (s *ScrollSearchTable) SortOpen() bool { return s.sortOpen }

// ID delegates to the wrapper container.
func (s *ScrollSearchTable) ID() runtime.WidgetID { return s.outer.ID() }

// Name delegates to the inner table.
func (s *ScrollSearchTable) Name() string { return s.table.Name() }

// Draw delegates to the wrapper container.
func (s *ScrollSearchTable) Draw(ctx runtime.DrawContext) { s.outer.Draw(ctx) }

// SetBounds forwards to the wrapper container so the whole composition
// re-partitions.
func (s *ScrollSearchTable) SetBounds(bounds runtime.Rect) { s.outer.SetBounds(bounds) }

// Bounds delegates to the wrapper container.
func (s *ScrollSearchTable) Bounds() runtime.Rect { return s.outer.Bounds() }

// Children exposes the wrapper's children for tree walks.
func (s *ScrollSearchTable) Children() []runtime.Widget { return s.outer.Children() }

// OnSignal reacts to the table's bubbled requests: search and sort
// toggles are absorbed here, column picks are applied to the table and
// passed on so the application can re-sort its data.
func (s *ScrollSearchTable) OnSignal(sig runtime.Signal) runtime.Signal {
	switch sg := sig.(type) {
	case runtime.OpenSearch:
		if !s.searchable {
			return nil
		}
		s.openSearch()
		return runtime.FocusWidget{ID: s.search.ID()}
	case runtime.OpenSort:
		if !s.sortable {
			return nil
		}
		s.openSort()
		return runtime.FocusWidget{ID: s.sort.ID()}
	case runtime.CloseOverlay:
		s.closeSearch()
		s.closeSort()
		return runtime.FocusWidget{ID: s.table.ID()}
	case runtime.SelectColumn:
		s.table.SelectColumn(sg.Index)
		if s.sortOpen {
			s.closeSort()
		}
		return sig
	default:
		return sig
	}
}

func (s *ScrollSearchTable) openSearch() {
	if s.searchOpen {
		return
	}
	s.searchOpen = true
	s.search.Reset()
	s.outer.AddChild(s.search, runtime.Length(searchHeight))
}

func (s *ScrollSearchTable) closeSearch() {
	if !s.searchOpen {
		return
	}
	s.searchOpen = false
	s.outer.RemoveChild(s.search.ID())
}

func (s *ScrollSearchTable) openSort() {
	if s.sortOpen {
		return
	}
	s.sortOpen = true

	var headers []string
	for _, c := range s.table.Columns() {
		if !c.Hidden {
			headers = append(headers, c.Header)
		}
	}
	s.sort.SetEntries(headers)

	s.body.SetChildren([]Child{
		{Widget: s.sort, Constraint: runtime.Length(sortMenuWidth)},
		{Widget: s.table, Constraint: runtime.Min(0)},
	})
}

func (s *ScrollSearchTable) closeSort() {
	if !s.sortOpen {
		return
	}
	s.sortOpen = false
	s.body.SetChildren([]Child{
		{Widget: s.table, Constraint: runtime.Min(0)},
	})
}

var (
	_ runtime.Widget         = (*ScrollSearchTable)(nil)
	_ runtime.Parent         = (*ScrollSearchTable)(nil)
	_ runtime.SignalObserver = (*ScrollSearchTable)(nil)
)
