package core

// Mask is a per-cell opacity bitmap used for exact collision tests.
// Bit (x, y) is set when the corresponding sprite cell is opaque.
type Mask struct {
	width  int
	height int
	bits   []bool
}

// NewMask creates a fully transparent mask of the given size.
func NewMask(width, height int) *Mask {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Mask{
		width:  width,
		height: height,
		bits:   make([]bool, width*height),
	}
}

// Width returns the mask width in cells.
func (m *Mask) Width() int { return m.width }

// Height returns the mask height in cells.
func (m *Mask) Height() int { return m.height }

// Set marks the cell at (x, y) as opaque or transparent.
// Out-of-bounds coordinates are ignored.
func (m *Mask) Set(x, y int, opaque bool) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	m.bits[y*m.width+x] = opaque
}

// Opaque reports whether the cell at (x, y) is opaque.
// Out-of-bounds cells are transparent.
func (m *Mask) Opaque(x, y int) bool {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return false
	}
	return m.bits[y*m.width+x]
}

// Count returns the number of opaque cells.
func (m *Mask) Count() int {
	n := 0
	for _, b := range m.bits {
		if b {
			n++
		}
	}
	return n
}

// Overlap reports whether any opaque cell of m coincides with an opaque cell
// of other when other's top-left corner is placed at offset (dx, dy) relative
// to m's top-left corner. Only the intersection of the two boxes is scanned.
func (m *Mask) Overlap(other *Mask, dx, dy int) bool {
	if m == nil || other == nil {
		return false
	}

	area := NewRect(0, 0, m.width, m.height).
		Intersection(NewRect(dx, dy, other.width, other.height))
	if area.Empty() {
		return false
	}

	for y := area.Y; y < area.Bottom(); y++ {
		for x := area.X; x < area.Right(); x++ {
			if m.bits[y*m.width+x] && other.bits[(y-dy)*other.width+(x-dx)] {
				return true
			}
		}
	}
	return false
}

// MaskOverlap tests two masks placed at absolute positions a and b.
func MaskOverlap(a *Mask, ax, ay int, b *Mask, bx, by int) bool {
	return a.Overlap(b, bx-ax, by-ay)
}
