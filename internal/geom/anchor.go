package geom

// Anchor names one of nine alignments used to place content within a
// canvas when the scaled source does not exactly fill it.
type Anchor uint8

const (
	// AnchorCenter centers the content on both axes.
	AnchorCenter Anchor = iota

	// AnchorTop aligns the content with the top edge.
	AnchorTop

	// AnchorBottom aligns the content with the bottom edge.
	AnchorBottom

	// AnchorLeft aligns the content with the left edge.
	AnchorLeft

	// AnchorRight aligns the content with the right edge.
	AnchorRight

	// AnchorTopLeft aligns the content with the top left corner.
	AnchorTopLeft

	// AnchorTopRight aligns the content with the top right corner.
	AnchorTopRight

	// AnchorBottomLeft aligns the content with the bottom left corner.
	AnchorBottomLeft

	// AnchorBottomRight aligns the content with the bottom right corner.
	AnchorBottomRight

	anchorCount
)

// String returns the anchor name.
func (a Anchor) String() string {
	switch a {
	case AnchorCenter:
		return "Center"
	case AnchorTop:
		return "Top"
	case AnchorBottom:
		return "Bottom"
	case AnchorLeft:
		return "Left"
	case AnchorRight:
		return "Right"
	case AnchorTopLeft:
		return "TopLeft"
	case AnchorTopRight:
		return "TopRight"
	case AnchorBottomLeft:
		return "BottomLeft"
	case AnchorBottomRight:
		return "BottomRight"
	default:
		return "Unknown"
	}
}

// IsValid reports whether the anchor is one of the defined variants.
func (a Anchor) IsValid() bool {
	return a < anchorCount
}

// axis distinguishes the horizontal and vertical role when resolving an
// anchor into a one-dimensional offset.
type axis uint8

const (
	axisHorizontal axis = iota
	axisVertical
)

// anchorOffset resolves an anchor to the offset of content within a
// canvas along one axis: start-aligned anchors yield 0, end-aligned
// anchors yield canvas-content, everything else centers.
//
// This single function serves every mode. The per-axis cases of Crop
// and Pad and the nine-way placement of BoxPad are all projections of
// the same table, so an anchor always means the same thing regardless
// of which mode consults it.
func anchorOffset(a Anchor, ax axis, canvas, content int) int {
	if ax == axisHorizontal {
		switch a {
		case AnchorLeft, AnchorTopLeft, AnchorBottomLeft:
			return 0
		case AnchorRight, AnchorTopRight, AnchorBottomRight:
			return canvas - content
		default:
			return (canvas - content) / 2
		}
	}
	switch a {
	case AnchorTop, AnchorTopLeft, AnchorTopRight:
		return 0
	case AnchorBottom, AnchorBottomLeft, AnchorBottomRight:
		return canvas - content
	default:
		return (canvas - content) / 2
	}
}
