package imaging

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/gogpu/rescale/backend"
)

func gradient(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(x * 255 / w),
				G: uint8(y * 255 / h),
				B: 128,
				A: 255,
			})
		}
	}
	return img
}

func TestRegistered(t *testing.T) {
	if !backend.IsRegistered(backend.BackendImaging) {
		t.Error("imaging backend not registered on import")
	}
}

func TestScaleDimensions(t *testing.T) {
	out, err := Scaler{}.Scale(gradient(48, 36), 24, 12)
	if err != nil {
		t.Fatalf("Scale failed: %v", err)
	}
	if b := out.Bounds(); b.Dx() != 24 || b.Dy() != 12 {
		t.Errorf("bounds = %v, want 24x12", b)
	}
}

func TestScaleUp(t *testing.T) {
	out, err := Scaler{}.Scale(gradient(12, 12), 60, 90)
	if err != nil {
		t.Fatalf("Scale failed: %v", err)
	}
	if b := out.Bounds(); b.Dx() != 60 || b.Dy() != 90 {
		t.Errorf("bounds = %v, want 60x90", b)
	}
}

func TestScaleKeepsOpaque(t *testing.T) {
	out, err := Scaler{}.Scale(gradient(30, 30), 15, 15)
	if err != nil {
		t.Fatalf("Scale failed: %v", err)
	}
	if _, _, _, a := out.At(7, 7).RGBA(); a>>8 != 255 {
		t.Errorf("center alpha = %d, want 255", a>>8)
	}
}

func TestScaleValidation(t *testing.T) {
	if _, err := (Scaler{}).Scale(nil, 10, 10); !errors.Is(err, backend.ErrEmptyImage) {
		t.Errorf("nil image error = %v, want ErrEmptyImage", err)
	}
	if _, err := (Scaler{}).Scale(gradient(4, 4), 10, 0); !errors.Is(err, backend.ErrInvalidSize) {
		t.Errorf("zero height error = %v, want ErrInvalidSize", err)
	}
}
