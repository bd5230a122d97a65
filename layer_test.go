package rescale

import (
	"image"
	"testing"
)

func TestNewResizeLayerDefaults(t *testing.T) {
	l := NewResizeLayer(800, 600)

	if l.Size.Width != 800 || l.Size.Height != 600 {
		t.Errorf("Size = %v, want 800x600", l.Size)
	}
	if l.Mode != ModePad {
		t.Errorf("Mode = %v, want ModePad", l.Mode)
	}
	if l.Anchor != AnchorCenter {
		t.Errorf("Anchor = %v, want AnchorCenter", l.Anchor)
	}
	if !l.Upscale {
		t.Error("Upscale = false, want true by default")
	}
	if l.Center != nil || l.AnchorPoint != nil {
		t.Error("overrides should be unset by default")
	}
	if len(l.RestrictedSizes) != 0 || !l.MaxSize.IsZero() {
		t.Error("guards should be unset by default")
	}
}

func TestLayerOptions(t *testing.T) {
	l := NewResizeLayer(100, 100,
		WithMode(ModeCrop),
		WithAnchor(AnchorTopLeft),
		WithUpscale(false),
		WithCenter(0.25, 0.75),
		WithAnchorPoint(10, 20),
		WithMaxSize(640, 0),
		WithRestrictedSizes(Size{Width: 100, Height: 100}, Size{Width: 200, Height: 0}),
	)

	if l.Mode != ModeCrop {
		t.Errorf("Mode = %v, want ModeCrop", l.Mode)
	}
	if l.Anchor != AnchorTopLeft {
		t.Errorf("Anchor = %v, want AnchorTopLeft", l.Anchor)
	}
	if l.Upscale {
		t.Error("Upscale = true, want false")
	}
	if len(l.Center) != 2 || l.Center[0] != 0.25 || l.Center[1] != 0.75 {
		t.Errorf("Center = %v, want [0.25 0.75]", l.Center)
	}
	if l.AnchorPoint == nil || *l.AnchorPoint != (image.Point{X: 10, Y: 20}) {
		t.Errorf("AnchorPoint = %v, want (10, 20)", l.AnchorPoint)
	}
	if l.MaxSize != (Size{Width: 640}) {
		t.Errorf("MaxSize = %v, want 640x0", l.MaxSize)
	}
	if len(l.RestrictedSizes) != 2 {
		t.Errorf("RestrictedSizes = %v, want two entries", l.RestrictedSizes)
	}
}

func TestNewResizeLayerNormalizesCenter(t *testing.T) {
	// Out-of-range components clamp into [-1, 1] at construction.
	l := NewResizeLayer(50, 50, WithCenter(3, -2))
	if l.Center[0] != 1 || l.Center[1] != -1 {
		t.Errorf("Center = %v, want clamped to [1 -1]", l.Center)
	}
}

func TestLayerZeroDimensionTarget(t *testing.T) {
	// A zero dimension is legal; the calculator derives it from the
	// source aspect ratio.
	l := NewResizeLayer(200, 0)

	canvas, dest, err := CalculateBounds(Size{Width: 400, Height: 300}, l)
	if err != nil {
		t.Fatalf("CalculateBounds failed: %v", err)
	}
	want := Size{Width: 200, Height: 150}
	if canvas != want {
		t.Errorf("canvas = %v, want %v", canvas, want)
	}
	if dest != (Rect{X: 0, Y: 0, Width: 200, Height: 150}) {
		t.Errorf("dest = %v, want full canvas", dest)
	}
}
