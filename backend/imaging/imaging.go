// Package imaging adapts github.com/disintegration/imaging with its
// Lanczos filter.
package imaging

import (
	"image"

	"github.com/disintegration/imaging"

	"github.com/gogpu/rescale"
	"github.com/gogpu/rescale/backend"
)

// Scaler resizes with imaging's Lanczos filter.
type Scaler struct{}

var _ rescale.Scaler = Scaler{}

// init registers the imaging backend on package import.
func init() {
	backend.Register(backend.BackendImaging, func() rescale.Scaler {
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

	return imaging.Resize(img, width, height, imaging.Lanczos), nil
}
