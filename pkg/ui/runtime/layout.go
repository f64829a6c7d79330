package runtime

// Direction selects the axis a container partitions along.
type Direction int

const (
	// DirHorizontal lays children out left to right.
	DirHorizontal Direction = iota
	// DirVertical lays children out top to bottom.
	DirVertical
)

// ConstraintKind tags the sizing rule a Constraint carries.
type ConstraintKind int

const (
	ConstraintLength ConstraintKind = iota
	ConstraintPercentage
	ConstraintRatio
	ConstraintMin
	ConstraintMax
)

// Constraint is the per-child sizing rule consumed by Split. Build one
// with Length, Percentage, Ratio, Min, or Max.
type Constraint struct {
	kind ConstraintKind
	n    int
	d    int
}

// Length requests exactly n cells.
func Length(n int) Constraint { return Constraint{kind: ConstraintLength, n: n} }

// Percentage requests p percent of the available space.
func Percentage(p int) Constraint { return Constraint{kind: ConstraintPercentage, n: p} }

// Ratio requests num/den of the available space.
func Ratio(num, den int) Constraint { return Constraint{kind: ConstraintRatio, n: num, d: den} }

// Min requests at least n cells, growing into leftover space.
func Min(n int) Constraint { return Constraint{kind: ConstraintMin, n: n} }

// Max requests at most n cells, growing into leftover space up to n.
func Max(n int) Constraint { return Constraint{kind: ConstraintMax, n: n} }

// Kind returns the constraint's sizing rule.
func (c Constraint) Kind() ConstraintKind { return c.kind }

// Value returns the constraint's primary operand (cells or percent).
func (c Constraint) Value() int { return c.n }

// base computes the first-pass size against the given total.
func (c Constraint) base(total int) int {
	switch c.kind {
	case ConstraintLength:
		return c.n
	case ConstraintPercentage:
		return total * c.n / 100
	case ConstraintRatio:
		if c.d <= 0 {
			return 0
		}
		return total * c.n / c.d
	case ConstraintMin:
		return c.n
	case ConstraintMax:
		return min(c.n, total)
	default:
		return 0
	}
}

// growable reports whether the constraint may absorb leftover space
// beyond its current size.
func (c Constraint) growable(current int) bool {
	switch c.kind {
	case ConstraintLength:
		return false
	case ConstraintMax:
		return current < c.n
	default:
		return true
	}
}

// Split partitions area along dir into one rect per constraint, in
// order. margin insets the area from both ends of the split axis before
// any allocation. The results always tile the inset area exactly:
// allocations are clamped to the space remaining, so when fixed lengths
// exceed the area, later children degrade to zero width, and leftover
// space is spread evenly over the non-fixed children with the remainder
// going cell by cell to the first of them.
func Split(area Rect, dir Direction, margin int, constraints []Constraint) []Rect {
	if len(constraints) == 0 {
		return nil
	}

	inner := area
	if dir == DirHorizontal {
		inner = area.Inset(0, margin, 0, margin)
	} else {
		inner = area.Inset(margin, 0, margin, 0)
	}

	total := inner.Width
	if dir == DirVertical {
		total = inner.Height
	}

	sizes := make([]int, len(constraints))
	remaining := total
	for i, c := range constraints {
		sizes[i] = clamp(c.base(total), 0, remaining)
		remaining -= sizes[i]
	}

	distributeLeftover(sizes, constraints, remaining)

	rects := make([]Rect, len(constraints))
	offset := 0
	for i, size := range sizes {
		if dir == DirHorizontal {
			rects[i] = Rect{X: inner.X + offset, Y: inner.Y, Width: size, Height: inner.Height}
		} else {
			rects[i] = Rect{X: inner.X, Y: inner.Y + offset, Width: inner.Width, Height: size}
		}
		offset += size
	}
	return rects
}

func distributeLeftover(sizes []int, constraints []Constraint, leftover int) {
	if leftover <= 0 {
		return
	}

	growable := make([]int, 0, len(constraints))
	for i, c := range constraints {
		if c.growable(sizes[i]) {
			growable = append(growable, i)
		}
	}

	// Cell-by-cell so Max caps re-check after each grant; terminal sizes
	// keep this loop short.
	for leftover > 0 && len(growable) > 0 {
		next := growable[:0]
		for _, i := range growable {
			if leftover == 0 {
				next = append(next, i)
				continue
			}
			sizes[i]++
			leftover--
			if constraints[i].growable(sizes[i]) {
				next = append(next, i)
			}
		}
		growable = next
	}

	// Everything capped or fixed: the last child absorbs the rest so the
	// results still tile the area.
	if leftover > 0 {
		sizes[len(sizes)-1] += leftover
	}
}
