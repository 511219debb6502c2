package core

// Mask is a per-cell opacity bitmap used for exact collision testing. A true
// bit marks an opaque cell. Masks are derived from the frame a sprite is
// currently displaying, so collision fidelity follows the visible shape.
type Mask struct {
	w, h int
	bits []bool
}

// NewMask creates an all-transparent mask with the given dimensions.
func NewMask(w, h int) Mask {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Mask{w: w, h: h, bits: make([]bool, w*h)}
}

// Width returns the mask width in cells.
func (m Mask) Width() int { return m.w }

// Height returns the mask height in cells.
func (m Mask) Height() int { return m.h }

// Empty reports whether the mask has no opaque cells.
func (m Mask) Empty() bool {
	for _, b := range m.bits {
		if b {
			return false
		}
	}
	return true
}

// Opaque reports whether the cell at (x, y) is opaque. Out-of-bounds cells
// are transparent.
func (m Mask) Opaque(x, y int) bool {
	if x < 0 || x >= m.w || y < 0 || y >= m.h {
		return false
	}
	return m.bits[y*m.w+x]
}

func (m Mask) set(x, y int, opaque bool) {
	if x < 0 || x >= m.w || y < 0 || y >= m.h {
		return
	}
	m.bits[y*m.w+x] = opaque
}

// Overlap reports whether any opaque cell of m coincides with an opaque cell
// of other after translating other by (dx, dy) relative to m's origin.
// Empty or non-intersecting masks never overlap.
func (m Mask) Overlap(other Mask, dx, dy int) bool {
	x0 := Max(0, dx)
	y0 := Max(0, dy)
	x1 := Min(m.w, dx+other.w)
	y1 := Min(m.h, dy+other.h)

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if m.Opaque(x, y) && other.Opaque(x-dx, y-dy) {
				return true
			}
		}
	}
	return false
}

// Frame is a rune-art sprite: a grid of colored cells plus the opacity mask
// derived from it. Space cells are transparent.
type Frame struct {
	w, h  int
	cells []Cell
	mask  Mask
}

// NewFrame builds a frame from rows of rune art in a single color. Rows may
// have differing lengths; the frame is as wide as the longest row and short
// rows are padded with transparent cells.
func NewFrame(art []string, c Color) *Frame {
	h := len(art)
	w := 0
	rows := make([][]rune, h)
	for i, row := range art {
		rows[i] = []rune(row)
		if len(rows[i]) > w {
			w = len(rows[i])
		}
	}

	f := &Frame{
		w:     w,
		h:     h,
		cells: make([]Cell, w*h),
		mask:  NewMask(w, h),
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r := ' '
			if x < len(rows[y]) {
				r = rows[y][x]
			}
			f.cells[y*w+x] = Cell{Rune: r, Color: c}
			f.mask.set(x, y, r != ' ')
		}
	}
	return f
}

// Width returns the frame width in cells.
func (f *Frame) Width() int { return f.w }

// Height returns the frame height in cells.
func (f *Frame) Height() int { return f.h }

// Mask returns the frame's opacity mask.
func (f *Frame) Mask() Mask { return f.mask }

// CellAt returns the cell at (x, y) and whether it is opaque.
func (f *Frame) CellAt(x, y int) (Cell, bool) {
	if x < 0 || x >= f.w || y < 0 || y >= f.h {
		return Cell{Rune: ' '}, false
	}
	return f.cells[y*f.w+x], f.mask.Opaque(x, y)
}

// Half-block and shade runes that have a vertical mirror image. Runes not in
// the table flip to themselves.
var flipRunes = map[rune]rune{
	'▄': '▀', '▀': '▄',
	'▙': '▛', '▛': '▙',
	'▟': '▜', '▜': '▟',
	'▂': '▔', '▔': '▂',
}

// FlipV returns a vertically mirrored copy of the frame: row order reversed
// and directional runes swapped for their mirror forms. Used to turn an
// upright obstacle half into the hanging upper half.
func (f *Frame) FlipV() *Frame {
	out := &Frame{
		w:     f.w,
		h:     f.h,
		cells: make([]Cell, f.w*f.h),
		mask:  NewMask(f.w, f.h),
	}
	for y := 0; y < f.h; y++ {
		srcY := f.h - 1 - y
		for x := 0; x < f.w; x++ {
			cell := f.cells[srcY*f.w+x]
			if mirror, ok := flipRunes[cell.Rune]; ok {
				cell.Rune = mirror
			}
			out.cells[y*f.w+x] = cell
			out.mask.set(x, y, f.mask.Opaque(x, srcY))
		}
	}
	return out
}
