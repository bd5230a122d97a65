package resample

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/gogpu/rescale/internal/geom"
	"github.com/gogpu/rescale/internal/parallel"
	"github.com/gogpu/rescale/internal/pix"
)

// kernelFunc is the shared signature of all resize kernels.
type kernelFunc func(*pix.Buffer, geom.Size, geom.Rect, Options) (*pix.Buffer, error)

var kernels = []struct {
	name string
	fn   kernelFunc
}{
	{"nearest", Nearest},
	{"bilinear", Bilinear},
	{"bicubic", Bicubic},
	{"bicubic-hq", BicubicHQ},
	{"lanczos", Lanczos},
}

func newBuf(t *testing.T, w, h int, format pix.Format) *pix.Buffer {
	t.Helper()
	buf, err := pix.NewBuffer(w, h, format)
	if err != nil {
		t.Fatalf("NewBuffer(%d, %d, %v) failed: %v", w, h, format, err)
	}
	return buf
}

func makeConstant(t *testing.T, w, h int, r, g, b, a uint8) *pix.Buffer {
	t.Helper()
	buf := newBuf(t, w, h, pix.FormatRGBA8)
	buf.Fill(r, g, b, a)
	return buf
}

// makeGradient builds an opaque source with deterministic varied pixels.
func makeGradient(t *testing.T, w, h int) *pix.Buffer {
	t.Helper()
	buf := newBuf(t, w, h, pix.FormatRGBA8)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			buf.SetRGBA(x, y,
				uint8((x*31+y*57)%256),
				uint8((x*7+y*113)%256),
				uint8((x*151+y*3)%256),
				255)
		}
	}
	return buf
}

func fullRect(w, h int) geom.Rect {
	return geom.Rect{X: 0, Y: 0, Width: w, Height: h}
}

// ==== Validation ====

func TestResizeValidation(t *testing.T) {
	valid := makeConstant(t, 4, 4, 10, 20, 30, 255)

	tests := []struct {
		name    string
		src     *pix.Buffer
		canvas  geom.Size
		rect    geom.Rect
		wantErr error
	}{
		{"nil source", nil, geom.Size{Width: 4, Height: 4}, fullRect(4, 4), ErrEmptySource},
		{"empty canvas width", valid, geom.Size{Width: 0, Height: 4}, fullRect(4, 4), ErrEmptyTarget},
		{"empty canvas height", valid, geom.Size{Width: 4, Height: 0}, fullRect(4, 4), ErrEmptyTarget},
		{"negative canvas", valid, geom.Size{Width: -1, Height: 4}, fullRect(4, 4), ErrEmptyTarget},
		{"empty rect width", valid, geom.Size{Width: 4, Height: 4}, geom.Rect{Width: 0, Height: 4}, ErrEmptyRect},
		{"empty rect height", valid, geom.Size{Width: 4, Height: 4}, geom.Rect{Width: 4, Height: 0}, ErrEmptyRect},
	}

	for _, k := range kernels {
		for _, tt := range tests {
			t.Run(k.name+"/"+tt.name, func(t *testing.T) {
				dst, err := k.fn(tt.src, tt.canvas, tt.rect, Options{})
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("error = %v, want %v", err, tt.wantErr)
				}
				if dst != nil {
					t.Errorf("buffer = %v, want nil on error", dst)
				}
			})
		}
	}
}

// ==== Output layout ====

func TestResizeOutputFormat(t *testing.T) {
	src := makeGradient(t, 8, 6)
	src.SetDPI(300, 300)

	for _, k := range kernels {
		t.Run(k.name, func(t *testing.T) {
			dst, err := k.fn(src, geom.Size{Width: 16, Height: 12}, fullRect(16, 12), Options{})
			if err != nil {
				t.Fatalf("resize failed: %v", err)
			}
			if w, h := dst.Bounds(); w != 16 || h != 12 {
				t.Errorf("Bounds() = %dx%d, want 16x12", w, h)
			}
			if got := dst.Format(); got != pix.FormatRGBAPremul {
				t.Errorf("Format() = %v, want %v", got, pix.FormatRGBAPremul)
			}
			if dx, dy := dst.DPI(); dx != 300 || dy != 300 {
				t.Errorf("DPI() = (%v, %v), want (300, 300)", dx, dy)
			}
			pix.PutBuffer(dst)
		})
	}
}

func TestResizeOutsideRectStaysTransparent(t *testing.T) {
	src := makeConstant(t, 10, 10, 255, 0, 0, 255)
	canvas := geom.Size{Width: 40, Height: 30}
	rect := geom.Rect{X: 10, Y: 5, Width: 20, Height: 20}

	for _, k := range kernels {
		t.Run(k.name, func(t *testing.T) {
			dst, err := k.fn(src, canvas, rect, Options{})
			if err != nil {
				t.Fatalf("resize failed: %v", err)
			}
			defer pix.PutBuffer(dst)

			for y := 0; y < canvas.Height; y++ {
				for x := 0; x < canvas.Width; x++ {
					r, g, b, a := dst.GetRGBA(x, y)
					inside := x >= rect.X && x < rect.X+rect.Width &&
						y >= rect.Y && y < rect.Y+rect.Height
					if inside {
						if a != 255 || r != 255 {
							t.Fatalf("pixel (%d, %d) = (%d, %d, %d, %d), want opaque red", x, y, r, g, b, a)
						}
					} else if r != 0 || g != 0 || b != 0 || a != 0 {
						t.Fatalf("pixel (%d, %d) = (%d, %d, %d, %d), want transparent", x, y, r, g, b, a)
					}
				}
			}
		})
	}
}

func TestResizeRectClipsToCanvas(t *testing.T) {
	src := makeConstant(t, 200, 150, 0, 0, 255, 255)

	// A crop layout: the rectangle overhangs the canvas on the left.
	canvas := geom.Size{Width: 100, Height: 100}
	rect := geom.Rect{X: -17, Y: 0, Width: 134, Height: 100}

	for _, k := range kernels {
		t.Run(k.name, func(t *testing.T) {
			dst, err := k.fn(src, canvas, rect, Options{})
			if err != nil {
				t.Fatalf("resize failed: %v", err)
			}
			defer pix.PutBuffer(dst)

			for y := 0; y < canvas.Height; y++ {
				for x := 0; x < canvas.Width; x++ {
					if _, _, b, a := dst.GetRGBA(x, y); b != 255 || a != 255 {
						t.Fatalf("pixel (%d, %d) not covered by crop content", x, y)
					}
				}
			}
		})
	}
}

func TestResizeRectFullyOffCanvas(t *testing.T) {
	src := makeConstant(t, 10, 10, 255, 255, 255, 255)
	dst, err := Bicubic(src, geom.Size{Width: 20, Height: 20}, geom.Rect{X: -100, Y: -100, Width: 50, Height: 50}, Options{})
	if err != nil {
		t.Fatalf("resize failed: %v", err)
	}
	defer pix.PutBuffer(dst)

	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			if _, _, _, a := dst.GetRGBA(x, y); a != 0 {
				t.Fatalf("pixel (%d, %d) has alpha %d, want fully transparent canvas", x, y, a)
			}
		}
	}
}

// ==== Pixel semantics ====

func TestNearestUpscaleIsExactReplication(t *testing.T) {
	src := newBuf(t, 2, 2, pix.FormatRGBA8)
	src.SetRGBA(0, 0, 255, 255, 255, 255)
	src.SetRGBA(1, 0, 0, 0, 0, 255)
	src.SetRGBA(0, 1, 0, 0, 0, 255)
	src.SetRGBA(1, 1, 255, 255, 255, 255)

	dst, err := Nearest(src, geom.Size{Width: 4, Height: 4}, fullRect(4, 4), Options{})
	if err != nil {
		t.Fatalf("Nearest failed: %v", err)
	}
	defer pix.PutBuffer(dst)

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			wr, wg, wb, wa := src.GetRGBA(x/2, y/2)
			gr, gg, gb, ga := dst.GetRGBA(x, y)
			if gr != wr || gg != wg || gb != wb || ga != wa {
				t.Errorf("pixel (%d, %d) = (%d, %d, %d, %d), want (%d, %d, %d, %d)",
					x, y, gr, gg, gb, ga, wr, wg, wb, wa)
			}
		}
	}
}

func TestNearestCopiesPremultipliedBytes(t *testing.T) {
	src := newBuf(t, 1, 1, pix.FormatRGBAPremul)
	src.SetPixelBytes(0, 0, []byte{100, 50, 25, 128})

	dst, err := Nearest(src, geom.Size{Width: 3, Height: 3}, fullRect(3, 3), Options{})
	if err != nil {
		t.Fatalf("Nearest failed: %v", err)
	}
	defer pix.PutBuffer(dst)

	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if got := dst.PixelBytes(x, y); !bytes.Equal(got, []byte{100, 50, 25, 128}) {
				t.Errorf("pixel (%d, %d) = %v, want premultiplied bytes copied verbatim", x, y, got)
			}
		}
	}
}

func TestResizePremultipliesStraightSources(t *testing.T) {
	src := newBuf(t, 1, 1, pix.FormatRGBA8)
	src.SetRGBA(0, 0, 200, 100, 50, 128)

	dst, err := Nearest(src, geom.Size{Width: 2, Height: 2}, fullRect(2, 2), Options{})
	if err != nil {
		t.Fatalf("Nearest failed: %v", err)
	}
	defer pix.PutBuffer(dst)

	// (c*128 + 127) / 255 for c in {200, 100, 50}.
	want := []byte{100, 50, 25, 128}
	if got := dst.PixelBytes(1, 1); !bytes.Equal(got, want) {
		t.Errorf("stored bytes = %v, want %v", got, want)
	}
}

func TestBilinearDownscalePointSamples(t *testing.T) {
	// Destination pixels map to exact source columns on a 2x downscale,
	// so the kernel lands on single pixels instead of averaging.
	src := newBuf(t, 4, 1, pix.FormatRGBA8)
	for x, v := range []uint8{0, 100, 200, 36} {
		src.SetRGBA(x, 0, v, v, v, 255)
	}

	dst, err := Bilinear(src, geom.Size{Width: 2, Height: 1}, fullRect(2, 1), Options{})
	if err != nil {
		t.Fatalf("Bilinear failed: %v", err)
	}
	defer pix.PutBuffer(dst)

	for x, want := range []uint8{0, 200} {
		if r, _, _, _ := dst.GetRGBA(x, 0); r != want {
			t.Errorf("pixel %d = %d, want %d", x, r, want)
		}
	}
}

// ==== Execution ====

func TestResizeOnCustomPool(t *testing.T) {
	pool := parallel.NewWorkerPool(2)
	defer pool.Close()

	src := makeGradient(t, 32, 32)
	dst, err := Bicubic(src, geom.Size{Width: 64, Height: 64}, fullRect(64, 64), Options{Pool: pool})
	if err != nil {
		t.Fatalf("Bicubic failed: %v", err)
	}
	defer pix.PutBuffer(dst)

	ref, err := Bicubic(src, geom.Size{Width: 64, Height: 64}, fullRect(64, 64), Options{})
	if err != nil {
		t.Fatalf("Bicubic failed: %v", err)
	}
	defer pix.PutBuffer(ref)

	if !bytes.Equal(dst.Data(), ref.Data()) {
		t.Error("custom pool output differs from default pool output")
	}
}

func TestResizeDeterministic(t *testing.T) {
	src := makeGradient(t, 97, 41)
	canvas := geom.Size{Width: 150, Height: 80}
	rect := geom.Rect{X: 3, Y: 7, Width: 140, Height: 66}

	for _, k := range kernels {
		t.Run(k.name, func(t *testing.T) {
			first, err := k.fn(src, canvas, rect, Options{})
			if err != nil {
				t.Fatalf("resize failed: %v", err)
			}
			defer pix.PutBuffer(first)

			for run := 0; run < 3; run++ {
				next, err := k.fn(src, canvas, rect, Options{})
				if err != nil {
					t.Fatalf("resize failed on run %d: %v", run, err)
				}
				if !bytes.Equal(first.Data(), next.Data()) {
					t.Fatalf("run %d produced different bytes", run)
				}
				pix.PutBuffer(next)
			}
		})
	}
}

func TestResizeRowPanicReturnsError(t *testing.T) {
	src := makeConstant(t, 8, 8, 1, 2, 3, 255)

	dst, err := resizeWith(src, geom.Size{Width: 8, Height: 8}, fullRect(8, 8), Options{},
		func(j *job, rows parallel.RowRange) {
			panic("boom")
		})
	if err == nil {
		t.Fatal("expected an error from a panicking row function")
	}
	if dst != nil {
		t.Error("buffer should be nil when rows fail")
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Errorf("error = %q, want the panic value included", err)
	}
	if !strings.Contains(err.Error(), "rows ") {
		t.Errorf("error = %q, want the failed row band included", err)
	}
}
