// Package gift adapts github.com/disintegration/gift with its
// parallel Lanczos resampling.
package gift

import (
	"image"

	"github.com/disintegration/gift"

	"github.com/gogpu/rescale"
	"github.com/gogpu/rescale/backend"
)

// Scaler resizes with gift's Lanczos resampling.
type Scaler struct{}

var _ rescale.Scaler = Scaler{}

// init registers the gift backend on package import.
func init() {
	backend.Register(backend.BackendGift, func() rescale.Scaler {
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

	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	gift.Resize(width, height, gift.LanczosResampling).
		Draw(dst, img, &gift.Options{Parallelization: true})
	return dst, nil
}
