// Package nfnt adapts github.com/nfnt/resize with its Lanczos3 filter.
package nfnt

import (
	"image"

	"github.com/nfnt/resize"

	"github.com/gogpu/rescale"
	"github.com/gogpu/rescale/backend"
)

// Scaler resizes with nfnt's Lanczos3 filter.
type Scaler struct{}

var _ rescale.Scaler = Scaler{}

// init registers the nfnt backend on package import.
func init() {
	backend.Register(backend.BackendNfnt, func() rescale.Scaler {
		return Scaler{}
	})
}

// Scale resizes img to width x height.
func (Scaler) Scale(img image.Image, width, height int) (image.Image, error) {
	if img == nil || img.Bounds().Empty() {
		return nil, backend.ErrEmptyImage
	}
	if width <= 0 || height <= 0 {
		return nil, backend.ErrInvalidSize
	}

	return resize.Resize(uint(width), uint(height), img, resize.Lanczos3), nil
}
