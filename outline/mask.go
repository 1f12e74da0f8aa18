package outline

import (
	"fmt"

	iface "MaskOutlineServer/interface"
)

// Mask is a binary foreground/background grid, row-major, origin
// top-left. len(Cells) == Width*Height always holds.
type Mask struct {
	Width  int
	Height int
	Cells  []uint8
}

// Normalize converts raw per-pixel values into a binary mask. A value of
// exactly 1 is foreground and exactly 0 is background; anything else is
// foreground iff it exceeds threshold. Extra trailing data is ignored,
// shorter data is an error.
func Normalize(spec iface.MaskSpec, threshold float64) (*Mask, error) {
	if spec.Width <= 0 || spec.Height <= 0 {
		return nil, fmt.Errorf("invalid mask dimensions %dx%d", spec.Width, spec.Height)
	}
	n := spec.Width * spec.Height
	if len(spec.Data) < n {
		return nil, fmt.Errorf("mask data too short: have %d values, need %d", len(spec.Data), n)
	}
	cells := make([]uint8, n)
	for i := 0; i < n; i++ {
		v := spec.Data[i]
		switch {
		case v == 1:
			cells[i] = 1
		case v == 0:
			// background
		case v > threshold:
			cells[i] = 1
		}
	}
	return &Mask{Width: spec.Width, Height: spec.Height, Cells: cells}, nil
}

// At returns the cell value; x and y must be in range.
func (m *Mask) At(x, y int) uint8 {
	return m.Cells[y*m.Width+x]
}

// Empty reports whether the mask has no foreground cells at all.
func (m *Mask) Empty() bool {
	for _, c := range m.Cells {
		if c != 0 {
			return false
		}
	}
	return true
}

// PadEdges returns a copy with the outermost ring of cells forced to
// background so no trace can run off the frame. A blob touching the
// frame edge is clipped at the edge rather than extrapolated. The
// receiver is never modified; the caller's buffer stays intact.
func (m *Mask) PadEdges() *Mask {
	out := &Mask{
		Width:  m.Width,
		Height: m.Height,
		Cells:  append([]uint8(nil), m.Cells...),
	}
	w, h := m.Width, m.Height
	for x := 0; x < w; x++ {
		out.Cells[x] = 0
		out.Cells[(h-1)*w+x] = 0
	}
	for y := 0; y < h; y++ {
		out.Cells[y*w] = 0
		out.Cells[y*w+w-1] = 0
	}
	return out
}
