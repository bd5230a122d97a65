// Package bild adapts github.com/anthonynsimon/bild with its Lanczos
// filter.
package bild

import (
	"image"

	"github.com/anthonynsimon/bild/transform"

	"github.com/gogpu/rescale"
	"github.com/gogpu/rescale/backend"
)

// Scaler resizes with bild's Lanczos filter.
type Scaler struct{}

var _ rescale.Scaler = Scaler{}

// init registers the bild backend on package import.
func init() {
	backend.Register(backend.BackendBild, func() rescale.Scaler {
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

	return transform.Resize(img, width, height, transform.Lanczos), nil
}
