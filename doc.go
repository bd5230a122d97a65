// Package rescale provides a policy-driven image resizing engine.
//
// # Overview
//
// rescale splits resizing into two halves. A pure rectangle calculator
// turns a source size and a resize policy (mode, anchor, guards) into a
// destination canvas size and the rectangle the scaled content occupies
// within it. A set of resampling kernels then fills that rectangle,
// processing rows in parallel. The split keeps layout decisions exactly
// testable and the pixel work format-independent.
//
// # Quick Start
//
//	import "github.com/gogpu/rescale"
//
//	src, err := rescale.LoadAll("photo.jpg")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	layer := rescale.NewResizeLayer(800, 0, rescale.WithMode(rescale.ModePad))
//	resizer := rescale.NewResizer(layer)
//
//	dst, err := resizer.ResizeImage(src, false)
//	if err != nil {
//		log.Fatal(err)
//	}
//	dst.Frame(0).SavePNG("thumb.png")
//
// # Resize Modes
//
// Six modes cover the usual layout intents:
//   - ModePad: fit inside the target, letterbox the rest (default)
//   - ModeStretch: fill the target exactly, ignoring aspect ratio
//   - ModeCrop: cover the target, cut the overflow
//   - ModeMax: shrink the target box to the source aspect ratio
//   - ModeMin: grow the target box to the source aspect ratio, never upscaling
//   - ModeBoxPad: place the source unscaled inside a larger canvas
//
// A zero target dimension derives that axis from the source aspect
// ratio. Anchors, a fractional crop center, and an absolute box-pad
// anchor point control placement; Upscale, MaxSize and RestrictedSizes
// guard the result (a guarded operation returns the source unchanged
// rather than failing).
//
// # Kernels
//
// Five resampling algorithms: NearestNeighbor, Bilinear, Bicubic
// (Catmull-Rom), BicubicHighQuality (B-spline with a softening pre-pass
// for small outputs, the default) and Lanczos. All of them can
// optionally interpolate in linear light instead of raw sRGB values.
//
// # Architecture
//
//   - Public API: ResizeLayer, Resizer, Buffer, Image, the Resize* helpers
//   - Internal: geom (rectangle calculator), resample (kernels),
//     pix (buffers, formats, IO, pooling), colorspace (sRGB LUTs),
//     parallel (row-band worker pool)
//   - backend/: Scaler adapters over this engine and third-party resize
//     libraries, for drop-in comparison
//
// # Coordinate System
//
// Standard raster coordinates: origin (0,0) at the top left, X grows
// right, Y grows down. Destination rectangles may extend beyond the
// canvas (cropping) or cover only part of it (padding); uncovered
// canvas pixels are transparent black.
package rescale

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
