package geom

// Mode selects the geometry algorithm used to fit source content onto
// the target canvas. Exactly one mode is active per calculation.
type Mode uint8

const (
	// ModePad scales the source to fit entirely inside the target,
	// letterboxing the remainder along the anchored axis.
	ModePad Mode = iota

	// ModeStretch fills the target exactly, ignoring aspect ratio.
	ModeStretch

	// ModeCrop scales the source to fully cover the target, cropping
	// the excess on one axis.
	ModeCrop

	// ModeMax shrinks the target so the source fits within it while
	// preserving aspect ratio; the canvas equals the content, so the
	// result has no padding.
	ModeMax

	// ModeMin resizes until the axis closest to its target value is
	// reached, never upscaling.
	ModeMin

	// ModeBoxPad places the unscaled source within a strictly larger
	// canvas. When the target does not exceed the source on both axes
	// it behaves exactly like ModePad.
	ModeBoxPad

	modeCount
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModePad:
		return "Pad"
	case ModeStretch:
		return "Stretch"
	case ModeCrop:
		return "Crop"
	case ModeMax:
		return "Max"
	case ModeMin:
		return "Min"
	case ModeBoxPad:
		return "BoxPad"
	default:
		return "Unknown"
	}
}

// IsValid reports whether the mode is one of the defined variants.
func (m Mode) IsValid() bool {
	return m < modeCount
}
