package rescale

import (
	"image"

	"github.com/gogpu/rescale/internal/geom"
)

// ResizeLayer is the complete policy for one resize operation: target
// size, geometry mode, placement, and guards. Construct one with
// NewResizeLayer, optionally adjust fields, then treat it as read-only;
// a single layer may drive any number of concurrent resizes.
type ResizeLayer = geom.Layer

// ResizeMode selects the geometry algorithm a layer uses.
type ResizeMode = geom.Mode

// Resize modes.
const (
	// ModePad scales the source to fit inside the target and centers it
	// on a canvas of exactly the target size (letterboxing).
	ModePad = geom.ModePad

	// ModeStretch scales the source to fill the target exactly,
	// ignoring its aspect ratio.
	ModeStretch = geom.ModeStretch

	// ModeCrop scales the source to cover the target and cuts off the
	// overflowing part.
	ModeCrop = geom.ModeCrop

	// ModeMax shrinks the target box to the source aspect ratio; the
	// result has no borders and nothing cut.
	ModeMax = geom.ModeMax

	// ModeMin grows the target box to the source aspect ratio without
	// ever enlarging the source.
	ModeMin = geom.ModeMin

	// ModeBoxPad places the source unscaled inside a canvas at least as
	// large as the target.
	ModeBoxPad = geom.ModeBoxPad
)

// Anchor positions content within the canvas when the mode leaves
// placement ambiguous.
type Anchor = geom.Anchor

// Anchor positions.
const (
	AnchorCenter      = geom.AnchorCenter
	AnchorTop         = geom.AnchorTop
	AnchorBottom      = geom.AnchorBottom
	AnchorLeft        = geom.AnchorLeft
	AnchorRight       = geom.AnchorRight
	AnchorTopLeft     = geom.AnchorTopLeft
	AnchorTopRight    = geom.AnchorTopRight
	AnchorBottomLeft  = geom.AnchorBottomLeft
	AnchorBottomRight = geom.AnchorBottomRight
)

// LayerOption adjusts a ResizeLayer during construction.
type LayerOption func(*ResizeLayer)

// NewResizeLayer returns a layer targeting width x height with the
// default policy (pad mode, centered, upscaling permitted), adjusted by
// the given options. Either dimension may be zero to derive it from the
// source aspect ratio.
func NewResizeLayer(width, height int, opts ...LayerOption) *ResizeLayer {
	l := geom.NewLayer(width, height)
	for _, opt := range opts {
		opt(l)
	}
	return l.Normalize()
}

// WithMode selects the geometry mode.
func WithMode(m ResizeMode) LayerOption {
	return func(l *ResizeLayer) { l.Mode = m }
}

// WithAnchor positions the content within the canvas.
func WithAnchor(a Anchor) LayerOption {
	return func(l *ResizeLayer) { l.Anchor = a }
}

// WithUpscale permits or forbids results larger than the source.
// Forbidden upscales return the source unchanged rather than failing.
func WithUpscale(enabled bool) LayerOption {
	return func(l *ResizeLayer) { l.Upscale = enabled }
}

// WithCenter sets a fractional crop center for ModeCrop, each component
// in [-1, 1]. Overrides the anchor.
func WithCenter(x, y float64) LayerOption {
	return func(l *ResizeLayer) { l.Center = []float64{x, y} }
}

// WithAnchorPoint sets an absolute pixel position for the content under
// ModeBoxPad. Overrides the anchor.
func WithAnchorPoint(x, y int) LayerOption {
	return func(l *ResizeLayer) { l.AnchorPoint = &image.Point{X: x, Y: y} }
}

// WithMaxSize caps the computed canvas per axis. A zero dimension
// leaves that axis uncapped.
func WithMaxSize(width, height int) LayerOption {
	return func(l *ResizeLayer) { l.MaxSize = Size{Width: width, Height: height} }
}

// WithRestrictedSizes whitelists the canvas sizes the layer may
// produce. An entry with one zero dimension matches on the other
// dimension alone.
func WithRestrictedSizes(sizes ...Size) LayerOption {
	return func(l *ResizeLayer) { l.RestrictedSizes = sizes }
}
