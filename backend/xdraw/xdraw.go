// Package xdraw adapts the golang.org/x/image/draw interpolators.
// ApproxBiLinear is the balanced speed/quality choice.
package xdraw

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/gogpu/rescale"
	"github.com/gogpu/rescale/backend"
)

// Scaler wraps one of the x/image/draw interpolators.
type Scaler struct {
	scaler draw.Scaler
}

var _ rescale.Scaler = (*Scaler)(nil)

// init registers the xdraw backend on package import.
func init() {
	backend.Register(backend.BackendXDraw, func() rescale.Scaler {
		return CatmullRom()
	})
}

// ApproxBiLinear returns a scaler trading a little quality for speed.
func ApproxBiLinear() *Scaler {
	return &Scaler{scaler: draw.ApproxBiLinear}
}

// BiLinear returns a true bilinear scaler.
func BiLinear() *Scaler {
	return &Scaler{scaler: draw.BiLinear}
}

// CatmullRom returns the highest quality x/image scaler.
func CatmullRom() *Scaler {
	return &Scaler{scaler: draw.CatmullRom}
}

// Scale resizes img to width x height.
func (s *Scaler) Scale(img image.Image, width, height int) (image.Image, error) {
	if img == nil || img.Bounds().Empty() {
		return nil, backend.ErrEmptyImage
	}
	if width <= 0 || height <= 0 {
		return nil, backend.ErrInvalidSize
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	// draw.Src: the canvas starts empty and takes the source alpha as-is.
	s.scaler.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst, nil
}
