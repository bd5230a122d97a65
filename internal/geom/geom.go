// Package geom implements the geometry side of image resizing: pure
// calculations mapping a source size and a resize policy onto a final
// canvas size and a destination rectangle within it.
//
// Nothing in this package touches pixels. Every function is deterministic
// and side-effect free, which keeps layout decisions exhaustively testable
// in isolation from the resampling kernels.
package geom

import "fmt"

// Size is a width/height pair in pixels.
//
// In a resize target a zero dimension means "derive this axis from the
// other using the source aspect ratio".
type Size struct {
	Width  int
	Height int
}

// IsZero reports whether both dimensions are zero.
func (s Size) IsZero() bool {
	return s.Width == 0 && s.Height == 0
}

// String returns the size as "WxH".
func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// Rect is a destination rectangle in destination-buffer coordinates.
//
// X and Y may be negative and Width/Height may extend beyond the canvas:
// content outside the visible canvas is simply never sampled (cropping),
// while a rectangle smaller than the canvas leaves untouched border
// pixels (padding).
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Result is the outcome of a rectangle calculation.
//
// Canvas is the size of the destination buffer to allocate. Dest is the
// region of that buffer the scaled source content occupies. Upscale and
// Max carry the policy guards as adjusted by the active mode (ModeMin
// forces no upscaling and caps at the source size, an active ModeBoxPad
// always permits enlargement of the canvas); the caller applies them
// after the calculation.
type Result struct {
	Canvas  Size
	Dest    Rect
	Upscale bool
	Max     Size // zero means uncapped
}

// clampInt clamps v into [lo, hi].
func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
