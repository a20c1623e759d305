package core

// Transparent is the rune that marks an empty sprite cell.
const Transparent = ' '

// Frame is one image of a sprite: a rectangular grid of runes.
// Every non-space rune is opaque. The opacity mask is derived once at
// construction so collision checks never rebuild it per frame.
type Frame struct {
	width  int
	height int
	cells  [][]rune
	mask   *Mask
}

// NewFrame builds a frame from rows of text. Rows shorter than the widest
// one are padded with transparent cells.
func NewFrame(rows ...string) *Frame {
	f := &Frame{height: len(rows)}

	f.cells = make([][]rune, len(rows))
	for y, row := range rows {
		f.cells[y] = []rune(row)
		if len(f.cells[y]) > f.width {
			f.width = len(f.cells[y])
		}
	}

	for y := range f.cells {
		for len(f.cells[y]) < f.width {
			f.cells[y] = append(f.cells[y], Transparent)
		}
	}

	f.mask = NewMask(f.width, f.height)
	for y := range f.cells {
		for x, r := range f.cells[y] {
			f.mask.Set(x, y, r != Transparent)
		}
	}
	return f
}

// Width returns the frame width in cells.
func (f *Frame) Width() int { return f.width }

// Height returns the frame height in cells.
func (f *Frame) Height() int { return f.height }

// At returns the rune at (x, y), or Transparent outside the frame.
func (f *Frame) At(x, y int) rune {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return Transparent
	}
	return f.cells[y][x]
}

// Mask returns the opacity mask of the frame. Callers must not modify it.
func (f *Frame) Mask() *Mask {
	return f.mask
}

// Scale returns a copy enlarged n times in both directions using
// nearest-neighbour sampling.
func (f *Frame) Scale(n int) *Frame {
	if n <= 1 {
		return f
	}

	rows := make([]string, 0, f.height*n)
	for y := 0; y < f.height; y++ {
		line := make([]rune, 0, f.width*n)
		for x := 0; x < f.width; x++ {
			for i := 0; i < n; i++ {
				line = append(line, f.cells[y][x])
			}
		}
		for i := 0; i < n; i++ {
			rows = append(rows, string(line))
		}
	}
	return NewFrame(rows...)
}

// Animation is an ordered set of frames selected by a fractional index.
type Animation []*Frame

// FrameAt returns the frame for a continuous index: the index is wrapped
// over the frame count and floored.
func (a Animation) FrameAt(index float64) *Frame {
	if len(a) == 0 {
		return nil
	}
	i := int(Wrap(index, len(a)))
	if i >= len(a) {
		i = len(a) - 1
	}
	return a[i]
}
