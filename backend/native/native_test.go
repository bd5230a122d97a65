package native

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/gogpu/rescale"
	"github.com/gogpu/rescale/backend"
)

func solid(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestRegistered(t *testing.T) {
	if !backend.IsRegistered(backend.BackendNative) {
		t.Error("native backend not registered on import")
	}
}

func TestNewDefaults(t *testing.T) {
	s := New()
	if s.Algorithm != rescale.BicubicHighQuality {
		t.Errorf("Algorithm = %v, want BicubicHighQuality", s.Algorithm)
	}
	if s.Linear {
		t.Error("Linear = true, want false by default")
	}
}

func TestScaleAllKernels(t *testing.T) {
	algorithms := []rescale.Algorithm{
		rescale.NearestNeighbor,
		rescale.Bilinear,
		rescale.Bicubic,
		rescale.BicubicHighQuality,
		rescale.Lanczos,
	}

	src := solid(40, 30, color.RGBA{R: 120, G: 80, B: 40, A: 255})
	for _, alg := range algorithms {
		t.Run(alg.String(), func(t *testing.T) {
			s := &Scaler{Algorithm: alg}
			out, err := s.Scale(src, 20, 10)
			if err != nil {
				t.Fatalf("Scale failed: %v", err)
			}
			if b := out.Bounds(); b.Dx() != 20 || b.Dy() != 10 {
				t.Errorf("bounds = %v, want 20x10", b)
			}
		})
	}
}

func TestScaleLinearLight(t *testing.T) {
	s := &Scaler{Algorithm: rescale.Bilinear, Linear: true}
	out, err := s.Scale(solid(16, 16, color.RGBA{R: 200, A: 255}), 64, 48)
	if err != nil {
		t.Fatalf("Scale failed: %v", err)
	}
	if b := out.Bounds(); b.Dx() != 64 || b.Dy() != 48 {
		t.Errorf("bounds = %v, want 64x48", b)
	}
}

func TestScaleSolidColor(t *testing.T) {
	out, err := New().Scale(solid(50, 40, color.RGBA{R: 255, A: 255}), 25, 20)
	if err != nil {
		t.Fatalf("Scale failed: %v", err)
	}

	r, g, b, a := out.At(12, 10).RGBA()
	if r>>8 != 255 || g>>8 != 0 || b>>8 != 0 || a>>8 != 255 {
		t.Errorf("center pixel = (%d, %d, %d, %d), want solid red",
			r>>8, g>>8, b>>8, a>>8)
	}
}

func TestScaleGrayInput(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 30, 20))
	for i := range src.Pix {
		src.Pix[i] = 200
	}

	out, err := New().Scale(src, 10, 5)
	if err != nil {
		t.Fatalf("Scale failed: %v", err)
	}
	if b := out.Bounds(); b.Dx() != 10 || b.Dy() != 5 {
		t.Fatalf("bounds = %v, want 10x5", b)
	}

	r, g, b, _ := out.At(5, 2).RGBA()
	if r>>8 != 200 || g>>8 != 200 || b>>8 != 200 {
		t.Errorf("center pixel = (%d, %d, %d), want uniform 200", r>>8, g>>8, b>>8)
	}
}

func TestScaleValidation(t *testing.T) {
	s := New()
	src := solid(8, 8, color.RGBA{A: 255})

	if _, err := s.Scale(nil, 10, 10); !errors.Is(err, backend.ErrEmptyImage) {
		t.Errorf("nil image error = %v, want ErrEmptyImage", err)
	}
	if _, err := s.Scale(image.NewRGBA(image.Rectangle{}), 10, 10); !errors.Is(err, backend.ErrEmptyImage) {
		t.Errorf("empty image error = %v, want ErrEmptyImage", err)
	}
	if _, err := s.Scale(src, 0, 10); !errors.Is(err, backend.ErrInvalidSize) {
		t.Errorf("zero width error = %v, want ErrInvalidSize", err)
	}
	if _, err := s.Scale(src, 10, -1); !errors.Is(err, backend.ErrInvalidSize) {
		t.Errorf("negative height error = %v, want ErrInvalidSize", err)
	}
}
