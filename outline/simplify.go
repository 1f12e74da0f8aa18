package outline

import "math"

// Simplify reduces the contour's point count with Douglas-Peucker
// recursion: the point farthest from the chord between the current
// endpoints is kept when its perpendicular distance exceeds tolerance,
// and both halves are simplified recursively. Endpoints are always
// retained and no new points are synthesized, so the result is a
// subsequence of the input.
func Simplify(c Contour, tolerance float64) Contour {
	if len(c) < 3 {
		return append(Contour(nil), c...)
	}
	keep := make([]bool, len(c))
	keep[0] = true
	keep[len(c)-1] = true
	douglasPeucker(c, 0, len(c)-1, tolerance, keep)

	out := make(Contour, 0, len(c))
	for i, k := range keep {
		if k {
			out = append(out, c[i])
		}
	}
	return out
}

func douglasPeucker(c Contour, first, last int, tolerance float64, keep []bool) {
	if last <= first+1 {
		return
	}
	maxDist := 0.0
	index := first
	for i := first + 1; i < last; i++ {
		if d := segmentDistance(c[i], c[first], c[last]); d > maxDist {
			maxDist = d
			index = i
		}
	}
	if maxDist > tolerance {
		keep[index] = true
		douglasPeucker(c, first, index, tolerance, keep)
		douglasPeucker(c, index, last, tolerance, keep)
	}
}

// segmentDistance is the distance from p to the segment ab, using the
// clamped projection of p onto ab. A zero-length chord falls back to
// plain point distance.
func segmentDistance(p, a, b Point) float64 {
	dx := float64(b.X - a.X)
	dy := float64(b.Y - a.Y)
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return math.Hypot(float64(p.X-a.X), float64(p.Y-a.Y))
	}
	t := (float64(p.X-a.X)*dx + float64(p.Y-a.Y)*dy) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	px := float64(a.X) + t*dx
	py := float64(a.Y) + t*dy
	return math.Hypot(float64(p.X)-px, float64(p.Y)-py)
}
