package rescale

import (
	"image"

	"github.com/gogpu/rescale/internal/geom"
	"github.com/gogpu/rescale/internal/resample"
)

// CalculateBounds runs the rectangle calculator alone: it returns the
// canvas size and destination rectangle a resize with this layer would
// use on a source of the given size, without touching any pixels.
func CalculateBounds(source Size, layer *ResizeLayer) (canvas Size, dest Rect, err error) {
	if layer == nil {
		return Size{}, Rect{}, ErrNilLayer
	}
	res, err := geom.Calculate(source, layer, layer.Size.Width, layer.Size.Height)
	if err != nil {
		return Size{}, Rect{}, err
	}
	return res.Canvas, res.Dest, nil
}

// ResizeNearest resizes src onto a width x height canvas with
// nearest-neighbor sampling, placing the content in dest. Pixels
// outside dest stay transparent. fixGamma is ignored; nearest sampling
// copies pixels without interpolating.
func ResizeNearest(src *Buffer, width, height int, dest image.Rectangle, fixGamma bool) (*Buffer, error) {
	return resizeBuffer(NearestNeighbor, src, width, height, dest, fixGamma)
}

// ResizeBilinear resizes src onto a width x height canvas with bilinear
// interpolation, placing the content in dest.
func ResizeBilinear(src *Buffer, width, height int, dest image.Rectangle, fixGamma bool) (*Buffer, error) {
	return resizeBuffer(Bilinear, src, width, height, dest, fixGamma)
}

// ResizeBicubic resizes src onto a width x height canvas with
// Catmull-Rom bicubic interpolation, placing the content in dest.
func ResizeBicubic(src *Buffer, width, height int, dest image.Rectangle, fixGamma bool) (*Buffer, error) {
	return resizeBuffer(Bicubic, src, width, height, dest, fixGamma)
}

// ResizeBicubicHQ resizes src onto a width x height canvas with the
// B-spline bicubic kernel, softening small outputs with a blur
// pre-pass.
func ResizeBicubicHQ(src *Buffer, width, height int, dest image.Rectangle, fixGamma bool) (*Buffer, error) {
	return resizeBuffer(BicubicHighQuality, src, width, height, dest, fixGamma)
}

// ResizeLanczos resizes src onto a width x height canvas with a
// Lanczos-3 windowed sinc kernel, placing the content in dest.
func ResizeLanczos(src *Buffer, width, height int, dest image.Rectangle, fixGamma bool) (*Buffer, error) {
	return resizeBuffer(Lanczos, src, width, height, dest, fixGamma)
}

// resizeBuffer runs one kernel over one frame, wrapping any failure
// with the kernel's operation name.
func resizeBuffer(alg Algorithm, src *Buffer, width, height int, dest image.Rectangle, fixGamma bool) (*Buffer, error) {
	out, err := alg.kernel()(src,
		geom.Size{Width: width, Height: height},
		rectFromStd(dest),
		resample.Options{FixGamma: fixGamma})
	if err != nil {
		return nil, &ProcessingError{Op: alg.opName(), Err: err}
	}
	return out, nil
}

// rectFromStd converts a stdlib rectangle into a destination rect.
func rectFromStd(r image.Rectangle) geom.Rect {
	return geom.Rect{X: r.Min.X, Y: r.Min.Y, Width: r.Dx(), Height: r.Dy()}
}
