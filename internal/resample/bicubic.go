package resample

import (
	"math"

	"github.com/gogpu/rescale/internal/geom"
	"github.com/gogpu/rescale/internal/parallel"
	"github.com/gogpu/rescale/internal/pix"
)

// Bicubic resizes src into the canvas with Catmull-Rom cubic
// interpolation over the 4x4 source neighborhood around each
// destination pixel. The kernel interpolates, so source pixels that
// land exactly on the destination grid pass through unchanged.
func Bicubic(src *pix.Buffer, canvas geom.Size, rect geom.Rect, opts Options) (*pix.Buffer, error) {
	return resizeWith(src, canvas, rect, opts, bicubicRow)
}

// cubicWeight computes the Catmull-Rom cubic weight for distance t.
func cubicWeight(t float64) float64 {
	// Catmull-Rom spline (Mitchell-Netravali with B=0, C=0.5):
	// |t| < 1: (1.5|t|³ - 2.5|t|² + 1)
	// 1 ≤ |t| < 2: (-0.5|t|³ + 2.5|t|² - 4|t| + 2)
	// |t| ≥ 2: 0
	absT := math.Abs(t)
	if absT < 1 {
		return 1.5*absT*absT*absT - 2.5*absT*absT + 1.0
	}
	if absT < 2 {
		return -0.5*absT*absT*absT + 2.5*absT*absT - 4.0*absT + 2.0
	}
	return 0
}

func bicubicRow(j *job, rows parallel.RowRange) {
	for y := rows.Y0; y < rows.Y1; y++ {
		srcY := float64(y-j.rect.Y) * j.heightFactor
		iy := int(srcY)
		dy := srcY - float64(iy)

		var wy [4]float64
		for n := 0; n < 4; n++ {
			wy[n] = cubicWeight(dy - float64(n-1))
		}

		for x := j.x0; x < j.x1; x++ {
			srcX := float64(x-j.rect.X) * j.widthFactor
			ix := int(srcX)
			dx := srcX - float64(ix)

			var wx [4]float64
			for m := 0; m < 4; m++ {
				wx[m] = cubicWeight(dx - float64(m-1))
			}

			var r, g, b, a float64
			for n := 0; n < 4; n++ {
				if wy[n] == 0 {
					continue
				}
				sy := iy + n - 1
				for m := 0; m < 4; m++ {
					w := wy[n] * wx[m]
					if w == 0 {
						continue
					}
					pr, pg, pb, pa := j.sampleAt(ix+m-1, sy)
					r += pr * w
					g += pg * w
					b += pb * w
					a += pa * w
				}
			}
			j.writeRGBA(x, y, r, g, b, a)
		}
	}
}
