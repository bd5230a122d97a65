package resample

import (
	"github.com/gogpu/rescale/internal/geom"
	"github.com/gogpu/rescale/internal/parallel"
	"github.com/gogpu/rescale/internal/pix"
)

// Nearest resizes src into the canvas with nearest-neighbor sampling.
// Each destination pixel copies the source pixel under it, so output on
// integer scale factors is an exact pixel replication. Gamma correction
// does not apply; there is nothing to interpolate.
func Nearest(src *pix.Buffer, canvas geom.Size, rect geom.Rect, opts Options) (*pix.Buffer, error) {
	return resizeWith(src, canvas, rect, opts, nearestRow)
}

func nearestRow(j *job, rows parallel.RowRange) {
	srcW, srcH := j.src.Bounds()
	for y := rows.Y0; y < rows.Y1; y++ {
		sy := clamp(int(float64(y-j.rect.Y)*j.heightFactor), 0, srcH-1)
		for x := j.x0; x < j.x1; x++ {
			sx := clamp(int(float64(x-j.rect.X)*j.widthFactor), 0, srcW-1)
			if j.srcPremul {
				// Source and destination share the premultiplied
				// layout; copy the pixel bytes untouched.
				copy(j.dst.PixelBytes(x, y), j.src.PixelBytes(sx, sy))
				continue
			}
			r, g, b, a := j.src.GetRGBA(sx, sy)
			j.writeStraight(x, y, r, g, b, a)
		}
	}
}
