package outline

// 8-neighborhood direction tables, clockwise from +x:
// E, SE, S, SW, W, NW, N, NE.
var (
	ndx = [8]int{1, 1, 0, -1, -1, -1, 0, 1}
	ndy = [8]int{0, 1, 1, 1, 0, -1, -1, -1}
)

// Raw traces shorter than this are discarded as noise.
const minTraceLen = 11

// TraceBoundaries walks the padded mask and extracts one ordered point
// sequence per closed foreground boundary using Moore-neighbor tracing.
// The visited scratch is owned by this invocation, so concurrent calls
// on independent masks are safe.
func TraceBoundaries(m *Mask) []Contour {
	w, h := m.Width, m.Height
	if w < 3 || h < 3 {
		return nil
	}
	visited := make([]bool, w*h)
	maxSteps := w*h*4 + 8

	var contours []Contour
	// The outer ring is background after padding; only interior cells
	// can hold boundary pixels.
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			i := y*w + x
			if visited[i] || m.Cells[i] == 0 || !isBoundary(m, x, y) {
				continue
			}
			c := traceFrom(m, visited, x, y, maxSteps)
			if len(c) >= minTraceLen {
				contours = append(contours, c)
			}
		}
	}
	return contours
}

// isBoundary reports whether (x, y) is foreground with at least one
// background 8-neighbor. Out-of-range neighbors count as background.
func isBoundary(m *Mask, x, y int) bool {
	for k := 0; k < 8; k++ {
		nx, ny := x+ndx[k], y+ndy[k]
		if nx < 0 || ny < 0 || nx >= m.Width || ny >= m.Height {
			return true
		}
		if m.Cells[ny*m.Width+nx] == 0 {
			return true
		}
	}
	return false
}

// traceFrom follows the boundary starting at (sx, sy). At each step the
// 8 neighbor directions are scanned from the incoming direction upward;
// the first unclaimed foreground boundary pixel is taken and the
// incoming direction becomes (chosen+6) mod 8, a left-turn bias that
// keeps the walk hugging the region's outer edge. The trace closes when
// it reaches the exact starting pixel again; the step cap converts a
// pathological self-touching boundary into a truncated contour instead
// of an endless walk.
func traceFrom(m *Mask, visited []bool, sx, sy int, maxSteps int) Contour {
	w := m.Width
	c := Contour{{X: sx, Y: sy}}
	visited[sy*w+sx] = true

	cx, cy := sx, sy
	dir := 0
	for steps := 0; steps < maxSteps; steps++ {
		advanced := false
		for k := 0; k < 8; k++ {
			d := (dir + k) % 8
			nx, ny := cx+ndx[d], cy+ndy[d]
			if nx < 1 || ny < 1 || nx >= m.Width-1 || ny >= m.Height-1 {
				continue
			}
			ni := ny*w + nx
			if m.Cells[ni] == 0 || !isBoundary(m, nx, ny) {
				continue
			}
			if nx == sx && ny == sy {
				// closed
				return c
			}
			if visited[ni] {
				continue
			}
			visited[ni] = true
			c = append(c, Point{X: nx, Y: ny})
			cx, cy = nx, ny
			dir = (d + 6) % 8
			advanced = true
			break
		}
		if !advanced {
			break
		}
	}
	return c
}
