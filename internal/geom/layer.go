package geom

import (
	"image"
	"slices"
)

// Layer is the complete policy for one resize operation: the requested
// target size plus everything needed to resolve how source content maps
// onto it.
//
// A layer is configuration, not state: construct it, optionally adjust
// fields, then treat it as read-only. One layer may drive any number of
// concurrent resize calls. Two layers with equal fields describe the
// same operation, which makes Layer usable as a cache key through Equal.
type Layer struct {
	// Size is the requested target size. Either dimension may be zero,
	// meaning "derive from the aspect ratio of the other".
	Size Size

	// Mode selects the geometry algorithm. Defaults to ModePad.
	Mode Mode

	// Anchor positions content when the mode leaves placement
	// ambiguous. Ignored where Center or AnchorPoint applies.
	Anchor Anchor

	// Upscale permits results larger than the source. When false, a
	// calculation that would enlarge the source is rejected and the
	// source returned unchanged (ModeStretch always scales).
	Upscale bool

	// Center optionally overrides Anchor for ModeCrop: a fractional
	// (x, y) crop center with each component in [-1, 1], letting the
	// caller pick an arbitrary crop focus such as a detected face.
	Center []float64

	// AnchorPoint optionally overrides Anchor for ModeBoxPad: an
	// absolute pixel offset for the placed content.
	AnchorPoint *image.Point

	// MaxSize caps the computed size per axis. A zero dimension leaves
	// that axis uncapped.
	MaxSize Size

	// RestrictedSizes, when non-empty, whitelists computed sizes. An
	// entry with one zero dimension matches on the other dimension
	// alone.
	RestrictedSizes []Size
}

// NewLayer returns a layer targeting the given size with the default
// policy: pad mode, centered, upscaling permitted.
func NewLayer(width, height int) *Layer {
	return &Layer{
		Size:    Size{Width: width, Height: height},
		Mode:    ModePad,
		Anchor:  AnchorCenter,
		Upscale: true,
	}
}

// Equal reports whether two layers describe the same policy, comparing
// all fields including the center vector and the size lists
// element-wise.
func (l *Layer) Equal(other *Layer) bool {
	if l == other {
		return true
	}
	if l == nil || other == nil {
		return false
	}
	if l.Size != other.Size || l.Mode != other.Mode || l.Anchor != other.Anchor ||
		l.Upscale != other.Upscale || l.MaxSize != other.MaxSize {
		return false
	}
	if !slices.Equal(l.Center, other.Center) {
		return false
	}
	if !slices.Equal(l.RestrictedSizes, other.RestrictedSizes) {
		return false
	}
	if (l.AnchorPoint == nil) != (other.AnchorPoint == nil) {
		return false
	}
	if l.AnchorPoint != nil && *l.AnchorPoint != *other.AnchorPoint {
		return false
	}
	return true
}

// Normalize discards a malformed center vector and clamps its
// components into [-1, 1]. It returns the layer for chaining during
// construction.
func (l *Layer) Normalize() *Layer {
	if l.Center != nil && len(l.Center) != 2 {
		l.Center = nil
	}
	for i, c := range l.Center {
		if c < -1 {
			l.Center[i] = -1
		}
		if c > 1 {
			l.Center[i] = 1
		}
	}
	return l
}
