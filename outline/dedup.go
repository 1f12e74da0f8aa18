package outline

// BoundingBox is derived from a contour for deduplication only; it is
// never stored past the call that computed it.
type BoundingBox struct {
	MinX, MinY int
	MaxX, MaxY int
	Width      int
	Height     int
	Area       int
}

func boundsOf(c Contour) BoundingBox {
	b := BoundingBox{MinX: c[0].X, MinY: c[0].Y, MaxX: c[0].X, MaxY: c[0].Y}
	for _, p := range c[1:] {
		if p.X < b.MinX {
			b.MinX = p.X
		}
		if p.X > b.MaxX {
			b.MaxX = p.X
		}
		if p.Y < b.MinY {
			b.MinY = p.Y
		}
		if p.Y > b.MaxY {
			b.MaxY = p.Y
		}
	}
	b.Width = b.MaxX - b.MinX
	b.Height = b.MaxY - b.MinY
	b.Area = b.Width * b.Height
	return b
}

// iou is the bounding-box intersection-over-union, the cheap proxy for
// "these two contours trace the same physical edge".
func iou(a, b BoundingBox) float64 {
	ix := min(a.MaxX, b.MaxX) - max(a.MinX, b.MinX)
	iy := min(a.MaxY, b.MaxY) - max(a.MinY, b.MinY)
	if ix <= 0 || iy <= 0 {
		return 0
	}
	inter := ix * iy
	union := a.Area + b.Area - inter
	if union <= 0 {
		return 0
	}
	return float64(inter) / float64(union)
}

// Deduplicate removes contour pairs that describe the same silhouette
// edge traced twice. Contours are paired greedily in extraction order:
// the first later contour whose bounding-box IoU exceeds overlap is
// consumed and the earlier one survives. Each contour pairs at most
// once.
//
// Contours that find no partner are presumed noise and dropped unless
// keepUnpaired is set. A lone contour is the exception: with nothing to
// corroborate against, dropping it would delete every single-blob
// silhouette, so it is kept as long as its bounding box has area.
func Deduplicate(cs []Contour, overlap float64, keepUnpaired bool) []Contour {
	if len(cs) == 0 {
		return nil
	}
	if len(cs) == 1 {
		if keepUnpaired || boundsOf(cs[0]).Area > 0 {
			return append([]Contour(nil), cs...)
		}
		return nil
	}

	boxes := make([]BoundingBox, len(cs))
	for i, c := range cs {
		boxes[i] = boundsOf(c)
	}

	paired := make([]bool, len(cs))
	kept := make([]bool, len(cs))
	for i := range cs {
		if paired[i] {
			continue
		}
		for j := i + 1; j < len(cs); j++ {
			if paired[j] {
				continue
			}
			if iou(boxes[i], boxes[j]) > overlap {
				paired[i] = true
				paired[j] = true
				kept[i] = true
				break
			}
		}
	}

	var out []Contour
	for i := range cs {
		if kept[i] || (keepUnpaired && !paired[i]) {
			out = append(out, cs[i])
		}
	}
	return out
}
