package outline

import (
	"testing"

	iface "MaskOutlineServer/interface"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Run("Test Binary Values", func(t *testing.T) {
		spec := iface.MaskSpec{Width: 2, Height: 2, Data: []float64{0, 1, 1, 0}}
		m, err := Normalize(spec, 0.5)
		if err != nil {
			t.Fatalf("Normalize returned an error: %v", err)
		}
		assert.Equal(t, []uint8{0, 1, 1, 0}, m.Cells)
	})

	t.Run("Test Probability Values", func(t *testing.T) {
		spec := iface.MaskSpec{Width: 2, Height: 2, Data: []float64{0.4, 0.6, 0.5, 0.95}}
		m, err := Normalize(spec, 0.5)
		if err != nil {
			t.Fatalf("Normalize returned an error: %v", err)
		}
		// 0.5 is not strictly above the threshold
		assert.Equal(t, []uint8{0, 1, 0, 1}, m.Cells)
	})

	t.Run("Test Extra Trailing Data Ignored", func(t *testing.T) {
		spec := iface.MaskSpec{Width: 2, Height: 1, Data: []float64{1, 0, 1, 1, 1}}
		m, err := Normalize(spec, 0.5)
		if err != nil {
			t.Fatalf("Normalize returned an error: %v", err)
		}
		assert.Equal(t, []uint8{1, 0}, m.Cells)
	})

	t.Run("Test Short Data", func(t *testing.T) {
		spec := iface.MaskSpec{Width: 3, Height: 3, Data: []float64{1, 1, 1}}
		_, err := Normalize(spec, 0.5)
		assert.Error(t, err)
	})

	t.Run("Test Invalid Dimensions", func(t *testing.T) {
		_, err := Normalize(iface.MaskSpec{Width: 0, Height: 4}, 0.5)
		assert.Error(t, err)
		_, err = Normalize(iface.MaskSpec{Width: 4, Height: -1}, 0.5)
		assert.Error(t, err)
	})
}

func TestPadEdges(t *testing.T) {
	spec := iface.MaskSpec{Width: 4, Height: 3, Data: []float64{
		1, 1, 1, 1,
		1, 1, 1, 1,
		1, 1, 1, 1,
	}}
	m, err := Normalize(spec, 0.5)
	if err != nil {
		t.Fatalf("Normalize returned an error: %v", err)
	}
	padded := m.PadEdges()

	t.Run("Test Border Forced To Background", func(t *testing.T) {
		assert.Equal(t, []uint8{
			0, 0, 0, 0,
			0, 1, 1, 0,
			0, 0, 0, 0,
		}, padded.Cells)
	})

	t.Run("Test Original Untouched", func(t *testing.T) {
		for i, c := range m.Cells {
			assert.Equal(t, uint8(1), c, "cell %d", i)
		}
	})
}

func TestMaskEmpty(t *testing.T) {
	m := &Mask{Width: 2, Height: 2, Cells: []uint8{0, 0, 0, 0}}
	assert.True(t, m.Empty())
	m.Cells[3] = 1
	assert.False(t, m.Empty())
}
