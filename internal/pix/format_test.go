package pix

import "testing"

func TestFormatInfo(t *testing.T) {
	tests := []struct {
		format    Format
		bpp       int
		channels  int
		hasAlpha  bool
		premul    bool
		grayscale bool
		str       string
	}{
		{FormatGray8, 1, 1, false, false, true, "Gray8"},
		{FormatRGB8, 3, 3, false, false, false, "RGB8"},
		{FormatRGBA8, 4, 4, true, false, false, "RGBA8"},
		{FormatRGBAPremul, 4, 4, true, true, false, "RGBAPremul"},
		{FormatBGRA8, 4, 4, true, false, false, "BGRA8"},
	}

	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			if got := tt.format.BytesPerPixel(); got != tt.bpp {
				t.Errorf("BytesPerPixel() = %d, want %d", got, tt.bpp)
			}
			if got := tt.format.Channels(); got != tt.channels {
				t.Errorf("Channels() = %d, want %d", got, tt.channels)
			}
			if got := tt.format.HasAlpha(); got != tt.hasAlpha {
				t.Errorf("HasAlpha() = %v, want %v", got, tt.hasAlpha)
			}
			if got := tt.format.IsPremultiplied(); got != tt.premul {
				t.Errorf("IsPremultiplied() = %v, want %v", got, tt.premul)
			}
			if got := tt.format.IsGrayscale(); got != tt.grayscale {
				t.Errorf("IsGrayscale() = %v, want %v", got, tt.grayscale)
			}
			if got := tt.format.String(); got != tt.str {
				t.Errorf("String() = %q, want %q", got, tt.str)
			}
			if !tt.format.IsValid() {
				t.Error("IsValid() = false for known format")
			}
		})
	}
}

func TestFormatInvalid(t *testing.T) {
	f := Format(255)
	if f.IsValid() {
		t.Error("IsValid() = true for unknown format")
	}
	if f.String() != "Unknown" {
		t.Errorf("String() = %q, want Unknown", f.String())
	}
	if f.Info() != (FormatInfo{}) {
		t.Errorf("Info() = %+v, want zero", f.Info())
	}
}

func TestFormatRowBytes(t *testing.T) {
	if got := FormatRGBA8.RowBytes(100); got != 400 {
		t.Errorf("RowBytes(100) = %d, want 400", got)
	}
	if got := FormatRGB8.RowBytes(100); got != 300 {
		t.Errorf("RowBytes(100) = %d, want 300", got)
	}
	if got := FormatGray8.ImageBytes(10, 20); got != 200 {
		t.Errorf("ImageBytes(10, 20) = %d, want 200", got)
	}
}
