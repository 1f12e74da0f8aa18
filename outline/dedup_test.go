package outline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func square(x0, y0, size int) Contour {
	return Contour{
		{x0, y0},
		{x0 + size, y0},
		{x0 + size, y0 + size},
		{x0, y0 + size},
	}
}

func TestBoundsOf(t *testing.T) {
	b := boundsOf(Contour{{2, 3}, {9, 3}, {9, 12}, {2, 12}})
	assert.Equal(t, 2, b.MinX)
	assert.Equal(t, 3, b.MinY)
	assert.Equal(t, 9, b.MaxX)
	assert.Equal(t, 12, b.MaxY)
	assert.Equal(t, 7, b.Width)
	assert.Equal(t, 9, b.Height)
	assert.Equal(t, 63, b.Area)
}

func TestIoU(t *testing.T) {
	a := boundsOf(square(0, 0, 10))
	assert.InDelta(t, 1.0, iou(a, a), 1e-9)
	assert.InDelta(t, 0.0, iou(a, boundsOf(square(20, 20, 10))), 1e-9)
	// 9x9 overlap of two 10x10 boxes
	b := boundsOf(square(1, 1, 10))
	assert.InDelta(t, 81.0/119.0, iou(a, b), 1e-9)
}

func TestDeduplicate(t *testing.T) {
	t.Run("Test Near Identical Pair Collapses", func(t *testing.T) {
		a := square(0, 0, 10)
		b := Contour{{0, 0}, {10, 1}, {10, 10}, {0, 10}}
		out := Deduplicate([]Contour{a, b}, 0.7, false)
		if assert.Len(t, out, 1) {
			assert.Equal(t, a, out[0])
		}
	})

	t.Run("Test Disjoint Singletons Dropped", func(t *testing.T) {
		out := Deduplicate([]Contour{square(0, 0, 10), square(30, 30, 10)}, 0.7, false)
		assert.Empty(t, out)
	})

	t.Run("Test Disjoint Singletons Kept On Request", func(t *testing.T) {
		out := Deduplicate([]Contour{square(0, 0, 10), square(30, 30, 10)}, 0.7, true)
		assert.Len(t, out, 2)
	})

	t.Run("Test Lone Contour Survives", func(t *testing.T) {
		out := Deduplicate([]Contour{square(2, 2, 9)}, 0.7, false)
		assert.Len(t, out, 1)
	})

	t.Run("Test Lone Flat Contour Dropped", func(t *testing.T) {
		flat := Contour{{2, 5}, {9, 5}}
		assert.Empty(t, Deduplicate([]Contour{flat}, 0.7, false))
	})

	t.Run("Test Survivor Count Order Invariant", func(t *testing.T) {
		a := square(0, 0, 10)
		a2 := square(0, 0, 10)
		b := square(40, 40, 8)
		b2 := square(40, 40, 8)
		perms := [][]Contour{
			{a, a2, b, b2},
			{a, b, a2, b2},
			{b2, a, b, a2},
			{b, b2, a, a2},
		}
		for _, p := range perms {
			assert.Len(t, Deduplicate(p, 0.7, false), 2)
		}
	})

	t.Run("Test Empty Input", func(t *testing.T) {
		assert.Empty(t, Deduplicate(nil, 0.7, false))
	})
}
