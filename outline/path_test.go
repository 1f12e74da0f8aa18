package outline

import (
	"strings"
	"testing"

	iface "MaskOutlineServer/interface"

	"github.com/stretchr/testify/assert"
)

func TestSynthesize(t *testing.T) {
	triangle := Contour{{0, 0}, {10, 0}, {5, 10}}

	t.Run("Test Straight", func(t *testing.T) {
		res := Synthesize([]Contour{triangle}, iface.CurveStraight)
		assert.Equal(t, "M 0 0 L 10 0 L 5 10 Z", res.Path)
		assert.Equal(t, []iface.PathCommand{
			{Op: iface.PathMoveTo, Args: []float64{0, 0}},
			{Op: iface.PathLineTo, Args: []float64{10, 0}},
			{Op: iface.PathLineTo, Args: []float64{5, 10}},
			{Op: iface.PathClose},
		}, res.Commands)
		assert.Equal(t, 1, res.Contours)
	})

	t.Run("Test Quadratic", func(t *testing.T) {
		res := Synthesize([]Contour{triangle}, iface.CurveQuadratic)
		if !assert.NotEmpty(t, res.Commands) {
			return
		}
		first := res.Commands[0]
		assert.Equal(t, iface.PathMoveTo, first.Op)
		assert.Equal(t, []float64{0, 0}, first.Args)
		assert.Equal(t, iface.PathClose, res.Commands[len(res.Commands)-1].Op)
		// one quadratic segment per contour point, midpoints as endpoints
		assert.Len(t, res.Commands, 5)
		assert.Equal(t, []float64{10, 0, 7.5, 5}, res.Commands[1].Args)
		assert.True(t, strings.HasPrefix(res.Path, "M 0 0 Q 10 0 7.5 5"))
		assert.True(t, strings.HasSuffix(res.Path, "Z"))
	})

	t.Run("Test Quadratic Falls Back For Short Contour", func(t *testing.T) {
		c := Contour{{1, 1}, {4, 4}}
		res := Synthesize([]Contour{c}, iface.CurveQuadratic)
		assert.Equal(t, "M 1 1 L 4 4 Z", res.Path)
	})

	t.Run("Test Empty Input", func(t *testing.T) {
		res := Synthesize(nil, iface.CurveQuadratic)
		assert.Equal(t, "", res.Path)
		assert.Empty(t, res.Commands)
		assert.Equal(t, 0, res.Contours)
	})

	t.Run("Test Multiple Contours Concatenated", func(t *testing.T) {
		res := Synthesize([]Contour{triangle, square(20, 20, 5)}, iface.CurveStraight)
		assert.Equal(t, 2, res.Contours)
		assert.Equal(t, 2, strings.Count(res.Path, "M "))
		assert.Equal(t, 2, strings.Count(res.Path, "Z"))
	})
}

func TestPathOpString(t *testing.T) {
	assert.Equal(t, "move_to", iface.PathMoveTo.String())
	assert.Equal(t, "quad_to", iface.PathQuadTo.String())
	assert.Equal(t, "close", iface.PathClose.String())
}
