// Package source adapts encoded images from the segmentation model into
// the MaskSpec shape the outline engine accepts. All format- and
// channel-specific extraction (alpha or color channel picking, buffer
// decoding) lives here, outside the core pipeline.
package source

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	iface "MaskOutlineServer/interface"

	"gocv.io/x/gocv"
)

// DecodeImage decodes encoded image bytes (PNG, JPEG, ...) keeping the
// original channel layout, so an alpha channel survives the decode.
func DecodeImage(data []byte) (gocv.Mat, error) {
	mat, err := gocv.IMDecode(data, gocv.IMReadUnchanged)
	if err != nil {
		return gocv.NewMat(), err
	}
	if mat.Empty() {
		// IMDecode returning an empty Mat means the decode failed
		if err := mat.Close(); err != nil {
			return gocv.Mat{}, err
		}
		return gocv.NewMat(), errors.New("decoded image is empty or unsupported format")
	}
	return mat, nil
}

// MaskFromMat extracts one channel of an 8-bit Mat as a MaskSpec with
// values scaled from 0-255 to [0,1].
func MaskFromMat(mat gocv.Mat, channel int) (iface.MaskSpec, error) {
	if mat.Empty() {
		return iface.MaskSpec{}, errors.New("empty image")
	}
	channels := mat.Channels()
	if channel < 0 || channel >= channels {
		return iface.MaskSpec{}, fmt.Errorf("channel %d out of range for %d-channel image", channel, channels)
	}
	w := mat.Cols()
	h := mat.Rows()
	data := make([]float64, w*h)

	plane := mat
	if channels > 1 {
		planes := gocv.Split(mat)
		defer func() {
			for i := range planes {
				_ = planes[i].Close()
			}
		}()
		plane = planes[channel]
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			data[y*w+x] = float64(plane.GetUCharAt(y, x)) / 255
		}
	}
	return iface.MaskSpec{Width: w, Height: h, Data: data}, nil
}

// Base64ToMask turns a base64 image string (optionally with a
// data:image/... prefix) into a MaskSpec using the given channel.
func Base64ToMask(b64 string, channel int) (iface.MaskSpec, error) {
	// strip a possible data URL prefix
	if i := strings.Index(b64, ","); i != -1 && strings.HasPrefix(b64, "data:") {
		b64 = b64[i+1:]
	}
	raw, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return iface.MaskSpec{}, err
	}
	mat, err := DecodeImage(raw)
	if err != nil {
		return iface.MaskSpec{}, err
	}
	defer func() {
		_ = mat.Close()
	}()
	return MaskFromMat(mat, channel)
}
