package outline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimplify(t *testing.T) {
	t.Run("Test Collinear Run Collapses", func(t *testing.T) {
		c := Contour{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}, {5, 0}}
		got := Simplify(c, 2)
		assert.Equal(t, Contour{{0, 0}, {5, 0}}, got)
	})

	t.Run("Test Significant Point Retained", func(t *testing.T) {
		c := Contour{{0, 0}, {5, 1}, {10, 0}, {10, 10}}
		got := Simplify(c, 2)
		assert.Equal(t, Contour{{0, 0}, {10, 0}, {10, 10}}, got)
	})

	t.Run("Test Idempotent", func(t *testing.T) {
		c := Contour{{0, 0}, {5, 1}, {10, 0}, {10, 10}}
		once := Simplify(c, 2)
		twice := Simplify(once, 2)
		assert.Equal(t, once, twice)
	})

	t.Run("Test Never Grows And Never Invents Points", func(t *testing.T) {
		c := Contour{{0, 0}, {1, 3}, {2, 0}, {3, 4}, {4, 0}, {9, 1}, {10, 0}, {10, 10}, {0, 10}}
		got := Simplify(c, 2)
		assert.LessOrEqual(t, len(got), len(c))
		original := make(map[Point]bool, len(c))
		for _, p := range c {
			original[p] = true
		}
		for _, p := range got {
			assert.True(t, original[p], "point %+v not in the original contour", p)
		}
	})

	t.Run("Test Short Contour Unchanged", func(t *testing.T) {
		c := Contour{{0, 0}, {3, 3}}
		assert.Equal(t, c, Simplify(c, 2))
	})

	t.Run("Test Degenerate Chord", func(t *testing.T) {
		// first and last point coincide, so the chord has zero length and
		// distance falls back to plain point distance
		c := Contour{{5, 5}, {9, 5}, {5, 5}}
		got := Simplify(c, 2)
		assert.Equal(t, Contour{{5, 5}, {9, 5}, {5, 5}}, got)
	})
}
