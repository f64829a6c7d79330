package runtime

import "testing"

func sumWidths(rects []Rect) int {
	total := 0
	for _, r := range rects {
		total += r.Width
	}
	return total
}

func TestSplitLengthsTile(t *testing.T) {
	area := NewRect(0, 0, 30, 10)
	rects := Split(area, DirHorizontal, 0, []Constraint{Length(10), Length(20)})

	if len(rects) != 2 {
		t.Fatalf("expected 2 rects, got %d", len(rects))
	}
	if rects[0] != (Rect{0, 0, 10, 10}) {
		t.Errorf("first rect = %+v", rects[0])
	}
	if rects[1] != (Rect{10, 0, 20, 10}) {
		t.Errorf("second rect = %+v", rects[1])
	}
}

func TestSplitVertical(t *testing.T) {
	area := NewRect(2, 3, 10, 20)
	rects := Split(area, DirVertical, 0, []Constraint{Percentage(50), Percentage(50)})

	if rects[0].Height+rects[1].Height != 20 {
		t.Errorf("heights %d + %d should tile 20", rects[0].Height, rects[1].Height)
	}
	if rects[0].Y != 3 || rects[1].Y != 3+rects[0].Height {
		t.Errorf("rects not contiguous: %+v %+v", rects[0], rects[1])
	}
	if rects[0].X != 2 || rects[0].Width != 10 {
		t.Errorf("cross axis not preserved: %+v", rects[0])
	}
}

func TestSplitAlwaysTiles(t *testing.T) {
	cases := []struct {
		name        string
		width       int
		constraints []Constraint
	}{
		{"lengths fit", 50, []Constraint{Length(10), Length(20), Length(15)}},
		{"lengths overflow", 20, []Constraint{Length(15), Length(15), Length(15)}},
		{"percentages odd total", 31, []Constraint{Percentage(50), Percentage(50)}},
		{"min grows", 40, []Constraint{Length(10), Min(5)}},
		{"max capped", 40, []Constraint{Max(8), Min(0)}},
		{"ratio thirds", 32, []Constraint{Ratio(1, 3), Ratio(1, 3), Ratio(1, 3)}},
		{"all fixed leftover", 40, []Constraint{Length(10), Length(10)}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			area := NewRect(0, 0, tc.width, 5)
			rects := Split(area, DirHorizontal, 0, tc.constraints)

			if got := sumWidths(rects); got != tc.width {
				t.Errorf("widths sum to %d, want %d", got, tc.width)
			}
			x := 0
			for i, r := range rects {
				if r.X != x {
					t.Errorf("rect %d starts at %d, want %d", i, r.X, x)
				}
				x += r.Width
			}
		})
	}
}

func TestSplitMargin(t *testing.T) {
	area := NewRect(0, 0, 30, 10)
	rects := Split(area, DirHorizontal, 2, []Constraint{Min(0), Min(0)})

	if rects[0].X != 2 {
		t.Errorf("first rect starts at %d, want 2", rects[0].X)
	}
	if got := sumWidths(rects); got != 26 {
		t.Errorf("widths sum to %d, want 26", got)
	}
	// The cross axis is untouched by a split-axis margin.
	if rects[0].Y != 0 || rects[0].Height != 10 {
		t.Errorf("cross axis changed: %+v", rects[0])
	}
}

func TestSplitDegradation(t *testing.T) {
	// Fixed lengths exceeding the space shrink later children to zero.
	area := NewRect(0, 0, 12, 4)
	rects := Split(area, DirHorizontal, 0, []Constraint{Length(10), Length(10), Length(10)})

	if rects[0].Width != 10 {
		t.Errorf("first child got %d, want 10", rects[0].Width)
	}
	if rects[1].Width != 2 {
		t.Errorf("second child got %d, want 2", rects[1].Width)
	}
	if rects[2].Width != 0 {
		t.Errorf("third child got %d, want 0", rects[2].Width)
	}
}

func TestSplitMaxCap(t *testing.T) {
	area := NewRect(0, 0, 30, 4)
	rects := Split(area, DirHorizontal, 0, []Constraint{Max(5), Min(0)})

	if rects[0].Width != 5 {
		t.Errorf("max child got %d, want 5", rects[0].Width)
	}
	if rects[1].Width != 25 {
		t.Errorf("min child got %d, want 25", rects[1].Width)
	}
}

func TestSplitNoConstraints(t *testing.T) {
	if rects := Split(NewRect(0, 0, 10, 10), DirHorizontal, 0, nil); rects != nil {
		t.Errorf("expected nil, got %v", rects)
	}
}

func TestSplitZeroArea(t *testing.T) {
	rects := Split(ZeroRect, DirVertical, 1, []Constraint{Length(5), Min(0)})
	for i, r := range rects {
		if r.Width != 0 || r.Height != 0 {
			t.Errorf("rect %d not empty: %+v", i, r)
		}
	}
}
