// Package resample implements the pixel side of image resizing.
//
// Each kernel maps destination pixels back into source space through a
// destination rectangle: dest pixel (x, y) samples the source around
// ((x-rect.X)*widthFactor, (y-rect.Y)*heightFactor). The destination is
// always a fresh RGBAPremul canvas; pixels outside the rectangle stay
// transparent black. Rows are processed in parallel bands.
package resample

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/rescale/internal/colorspace"
	"github.com/gogpu/rescale/internal/geom"
	"github.com/gogpu/rescale/internal/parallel"
	"github.com/gogpu/rescale/internal/pix"
)

// Validation errors.
var (
	// ErrEmptySource is returned when the source buffer is nil or has no area.
	ErrEmptySource = errors.New("resample: empty source buffer")

	// ErrEmptyTarget is returned when the canvas has no area.
	ErrEmptyTarget = errors.New("resample: empty target canvas")

	// ErrEmptyRect is returned when the destination rectangle has no area.
	ErrEmptyRect = errors.New("resample: empty destination rectangle")
)

// Options control how a kernel runs.
type Options struct {
	// FixGamma interpolates in linear light instead of raw sRGB values.
	// Alpha is never gamma-converted.
	FixGamma bool

	// Pool is the worker pool to run on. Nil uses the shared default.
	Pool *parallel.WorkerPool
}

// chunksPerWorker splits rows finer than one band per worker so stealing
// can rebalance uneven bands.
const chunksPerWorker = 4

// job carries the immutable per-resize state shared by all row bands.
type job struct {
	src  *pix.Buffer
	dst  *pix.Buffer
	rect geom.Rect

	// Source pixels per destination pixel along each axis.
	widthFactor  float64
	heightFactor float64

	// Destination column range to fill, already clipped to the canvas.
	x0, x1 int

	fixGamma  bool
	srcPremul bool
}

// rowFunc renders one band of destination rows.
type rowFunc func(j *job, rows parallel.RowRange)

// resizeWith allocates the destination canvas and runs the kernel row
// function over it in parallel bands. On any row panic the destination
// is released and an error describing the failed band is returned; the
// caller never sees a partially written buffer.
func resizeWith(src *pix.Buffer, canvas geom.Size, rect geom.Rect, opts Options, row rowFunc) (*pix.Buffer, error) {
	if src == nil || src.IsEmpty() {
		return nil, ErrEmptySource
	}
	if canvas.Width <= 0 || canvas.Height <= 0 {
		return nil, ErrEmptyTarget
	}
	if rect.Width <= 0 || rect.Height <= 0 {
		return nil, ErrEmptyRect
	}

	dst := pix.GetBuffer(canvas.Width, canvas.Height, pix.FormatRGBAPremul)
	dst.SetDPI(src.DPI())

	srcW, srcH := src.Bounds()
	j := &job{
		src:          src,
		dst:          dst,
		rect:         rect,
		widthFactor:  float64(srcW) / float64(rect.Width),
		heightFactor: float64(srcH) / float64(rect.Height),
		x0:           max(0, rect.X),
		x1:           min(canvas.Width, rect.X+rect.Width),
		fixGamma:     opts.FixGamma,
		srcPremul:    src.Format().IsPremultiplied(),
	}

	y0 := max(0, rect.Y)
	y1 := min(canvas.Height, rect.Y+rect.Height)
	if j.x0 >= j.x1 || y0 >= y1 {
		// Rectangle entirely off-canvas: the result is all transparent.
		return dst, nil
	}

	pool := opts.Pool
	if pool == nil {
		pool = parallel.Default()
	}

	bands := parallel.SplitRows(y0, y1, pool.Workers()*chunksPerWorker)
	work := make([]func(), len(bands))

	var mu sync.Mutex
	var rowErr error

	for i, band := range bands {
		b := band // capture for closure
		work[i] = func() {
			defer func() {
				if r := recover(); r != nil {
					mu.Lock()
					if rowErr == nil {
						rowErr = fmt.Errorf("rows %d-%d: %v", b.Y0, b.Y1, r)
					}
					mu.Unlock()
				}
			}()
			row(j, b)
		}
	}

	pool.ExecuteAll(work)

	if rowErr != nil {
		pix.PutBuffer(dst)
		return nil, rowErr
	}
	return dst, nil
}

// sampleAt returns the straight-alpha channels of source pixel (sx, sy)
// as floats in [0, 255], clamping coordinates to the buffer edges.
// Premultiplied sources are divided back out; with gamma correction the
// color channels are linear light scaled to [0, 255]. Alpha is raw.
func (j *job) sampleAt(sx, sy int) (r, g, b, a float64) {
	w, h := j.src.Bounds()
	pr, pg, pb, pa := j.src.GetRGBA(clamp(sx, 0, w-1), clamp(sy, 0, h-1))

	if j.srcPremul {
		pr, pg, pb, _ = pix.Unpremultiply(pr, pg, pb, pa)
	}

	if j.fixGamma {
		return float64(colorspace.SRGBToLinearFast(pr)) * 255,
			float64(colorspace.SRGBToLinearFast(pg)) * 255,
			float64(colorspace.SRGBToLinearFast(pb)) * 255,
			float64(pa)
	}
	return float64(pr), float64(pg), float64(pb), float64(pa)
}

// writeRGBA stores an interpolated straight-alpha sample at destination
// pixel (dx, dy), converting back from linear light when gamma
// correction is on and premultiplying into the output format.
func (j *job) writeRGBA(dx, dy int, r, g, b, a float64) {
	var sr, sg, sb uint8
	if j.fixGamma {
		sr = colorspace.LinearToSRGBFast(float32(r / 255))
		sg = colorspace.LinearToSRGBFast(float32(g / 255))
		sb = colorspace.LinearToSRGBFast(float32(b / 255))
	} else {
		sr = clamp255(r)
		sg = clamp255(g)
		sb = clamp255(b)
	}
	j.writeStraight(dx, dy, sr, sg, sb, clamp255(a))
}

// writeStraight premultiplies straight-alpha bytes and stores them at
// destination pixel (dx, dy).
func (j *job) writeStraight(dx, dy int, r, g, b, a uint8) {
	off := dy*j.dst.Stride() + dx*4
	data := j.dst.Data()
	pr, pg, pb, pa := pix.Premultiply(r, g, b, a)
	data[off] = pr
	data[off+1] = pg
	data[off+2] = pb
	data[off+3] = pa
}

// clamp clamps an integer value to [minVal, maxVal].
func clamp(val, minVal, maxVal int) int {
	if val < minVal {
		return minVal
	}
	if val > maxVal {
		return maxVal
	}
	return val
}

// clamp255 clamps a float64 to [0, 255] and converts to uint8 with rounding.
func clamp255(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}
