// Package native adapts the engine's own kernels to the backend
// Scaler interface so they can stand next to the third-party
// libraries in comparisons and benchmarks.
package native

import (
	"image"

	"github.com/gogpu/rescale"
	"github.com/gogpu/rescale/backend"
)

// Scaler resizes through the engine's kernels.
type Scaler struct {
	// Algorithm selects the kernel. The zero value is nearest
	// neighbor; New returns the engine default instead.
	Algorithm rescale.Algorithm

	// Linear interpolates in linear light.
	Linear bool
}

var _ rescale.Scaler = (*Scaler)(nil)

// init registers the native backend on package import.
func init() {
	backend.Register(backend.BackendNative, func() rescale.Scaler {
		return New()
	})
}

// New returns a scaler using the engine's default kernel.
func New() *Scaler {
	return &Scaler{Algorithm: rescale.BicubicHighQuality}
}

// Scale resizes img to width x height with the configured kernel.
func (s *Scaler) Scale(img image.Image, width, height int) (image.Image, error) {
	if img == nil || img.Bounds().Empty() {
		return nil, backend.ErrEmptyImage
	}
	if width <= 0 || height <= 0 {
		return nil, backend.ErrInvalidSize
	}

	src := rescale.FromStdImage(img)
	dest := image.Rect(0, 0, width, height)

	var (
		out *rescale.Buffer
		err error
	)
	switch s.Algorithm {
	case rescale.NearestNeighbor:
		out, err = rescale.ResizeNearest(src, width, height, dest, s.Linear)
	case rescale.Bilinear:
		out, err = rescale.ResizeBilinear(src, width, height, dest, s.Linear)
	case rescale.Bicubic:
		out, err = rescale.ResizeBicubic(src, width, height, dest, s.Linear)
	case rescale.Lanczos:
		out, err = rescale.ResizeLanczos(src, width, height, dest, s.Linear)
	default:
		out, err = rescale.ResizeBicubicHQ(src, width, height, dest, s.Linear)
	}
	if err != nil {
		return nil, err
	}
	return out.ToStdImage(), nil
}
