package source

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"gocv.io/x/gocv"
)

func TestMaskFromMat(t *testing.T) {
	mat := gocv.NewMatWithSize(3, 4, gocv.MatTypeCV8UC1)
	defer mat.Close()
	mat.SetUCharAt(0, 0, 255)
	mat.SetUCharAt(1, 2, 51)

	spec, err := MaskFromMat(mat, 0)
	if err != nil {
		t.Fatalf("MaskFromMat returned an error: %v", err)
	}
	assert.Equal(t, 4, spec.Width)
	assert.Equal(t, 3, spec.Height)
	assert.Len(t, spec.Data, 12)
	assert.InDelta(t, 1.0, spec.Data[0], 1e-9)
	assert.InDelta(t, 0.2, spec.Data[1*4+2], 1e-9)
	assert.InDelta(t, 0.0, spec.Data[11], 1e-9)
}

func TestMaskFromMatChannel(t *testing.T) {
	mat := gocv.NewMatWithSize(2, 2, gocv.MatTypeCV8UC3)
	defer mat.Close()

	t.Run("Test Channel Out Of Range", func(t *testing.T) {
		_, err := MaskFromMat(mat, 3)
		assert.Error(t, err)
		_, err = MaskFromMat(mat, -1)
		assert.Error(t, err)
	})

	t.Run("Test Channel In Range", func(t *testing.T) {
		spec, err := MaskFromMat(mat, 2)
		if err != nil {
			t.Fatalf("MaskFromMat returned an error: %v", err)
		}
		assert.Len(t, spec.Data, 4)
	})
}

func TestDecodeImage(t *testing.T) {
	t.Run("Test Garbage Bytes", func(t *testing.T) {
		_, err := DecodeImage([]byte("definitely not an image"))
		assert.Error(t, err)
	})

	t.Run("Test Roundtrip", func(t *testing.T) {
		mat := gocv.NewMatWithSize(8, 8, gocv.MatTypeCV8UC1)
		defer mat.Close()
		buf, err := gocv.IMEncode(".png", mat)
		if err != nil {
			t.Fatalf("IMEncode failed: %v", err)
		}
		defer buf.Close()

		decoded, err := DecodeImage(buf.GetBytes())
		if err != nil {
			t.Fatalf("DecodeImage returned an error: %v", err)
		}
		defer decoded.Close()
		assert.Equal(t, 8, decoded.Cols())
		assert.Equal(t, 8, decoded.Rows())
	})
}

func TestBase64ToMask(t *testing.T) {
	mat := gocv.NewMatWithSize(6, 6, gocv.MatTypeCV8UC1)
	defer mat.Close()
	buf, err := gocv.IMEncode(".png", mat)
	if err != nil {
		t.Fatalf("IMEncode failed: %v", err)
	}
	defer buf.Close()
	b64 := base64.StdEncoding.EncodeToString(buf.GetBytes())

	t.Run("Test Plain Base64", func(t *testing.T) {
		spec, err := Base64ToMask(b64, 0)
		if err != nil {
			t.Fatalf("Base64ToMask returned an error: %v", err)
		}
		assert.Equal(t, 6, spec.Width)
		assert.Equal(t, 6, spec.Height)
	})

	t.Run("Test Data URL Prefix", func(t *testing.T) {
		spec, err := Base64ToMask("data:image/png;base64,"+b64, 0)
		if err != nil {
			t.Fatalf("Base64ToMask returned an error: %v", err)
		}
		assert.Equal(t, 6, spec.Width)
	})

	t.Run("Test Invalid Base64", func(t *testing.T) {
		_, err := Base64ToMask("%%%not base64%%%", 0)
		assert.Error(t, err)
	})
}
