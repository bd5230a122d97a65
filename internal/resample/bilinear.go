package resample

import (
	"github.com/gogpu/rescale/internal/geom"
	"github.com/gogpu/rescale/internal/parallel"
	"github.com/gogpu/rescale/internal/pix"
)

// Bilinear resizes src into the canvas by linearly blending the 2x2
// source neighborhood around each destination pixel.
func Bilinear(src *pix.Buffer, canvas geom.Size, rect geom.Rect, opts Options) (*pix.Buffer, error) {
	return resizeWith(src, canvas, rect, opts, bilinearRow)
}

func bilinearRow(j *job, rows parallel.RowRange) {
	for y := rows.Y0; y < rows.Y1; y++ {
		srcY := float64(y-j.rect.Y) * j.heightFactor
		iy := int(srcY)
		dy1 := srcY - float64(iy)
		dy2 := 1 - dy1

		for x := j.x0; x < j.x1; x++ {
			srcX := float64(x-j.rect.X) * j.widthFactor
			ix := int(srcX)
			dx1 := srcX - float64(ix)
			dx2 := 1 - dx1

			r00, g00, b00, a00 := j.sampleAt(ix, iy)
			r01, g01, b01, a01 := j.sampleAt(ix+1, iy)
			r10, g10, b10, a10 := j.sampleAt(ix, iy+1)
			r11, g11, b11, a11 := j.sampleAt(ix+1, iy+1)

			r := dy2*(dx2*r00+dx1*r01) + dy1*(dx2*r10+dx1*r11)
			g := dy2*(dx2*g00+dx1*g01) + dy1*(dx2*g10+dx1*g11)
			b := dy2*(dx2*b00+dx1*b01) + dy1*(dx2*b10+dx1*b11)
			a := dy2*(dx2*a00+dx1*a01) + dy1*(dx2*a10+dx1*a11)

			j.writeRGBA(x, y, r, g, b, a)
		}
	}
}
