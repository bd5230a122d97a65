package geom

import (
	"errors"
	"math"
)

// Calculation errors.
var (
	// ErrInvalidGeometry is returned when both target dimensions are
	// zero or negative, leaving nothing to derive a size from.
	ErrInvalidGeometry = errors.New("geom: both target dimensions are empty")

	// ErrEmptySource is returned when the source size has no area.
	ErrEmptySource = errors.New("geom: empty source size")
)

// Calculate maps a source size, a layer policy and a target width and
// height onto the final canvas size and the destination rectangle the
// scaled content occupies within it.
//
// Width and height usually come from layer.Size; they are separate
// parameters so callers can probe alternative targets under one policy.
// A zero or negative dimension is derived from the other axis before
// the mode algorithm runs.
func Calculate(source Size, layer *Layer, width, height int) (Result, error) {
	if source.Width <= 0 || source.Height <= 0 {
		return Result{}, ErrEmptySource
	}
	if width <= 0 && height <= 0 {
		return Result{}, ErrInvalidGeometry
	}
	if layer == nil {
		layer = NewLayer(width, height)
	}

	srcW := float64(source.Width)
	srcH := float64(source.Height)

	// Derive a missing dimension from the other axis so every mode
	// sees a concrete target.
	if width <= 0 {
		width = int(math.Round(float64(height) * srcW / srcH))
	}
	if height <= 0 {
		height = int(math.Round(float64(width) * srcH / srcW))
	}

	switch layer.Mode {
	case ModeStretch:
		return calcStretch(layer, width, height), nil
	case ModeCrop:
		return calcCrop(source, layer, width, height), nil
	case ModeMax:
		return calcMax(source, layer, width, height), nil
	case ModeMin:
		return calcMin(source, layer, width, height), nil
	case ModeBoxPad:
		return calcBoxPad(source, layer, width, height), nil
	default:
		return calcPad(source, layer, width, height), nil
	}
}

// calcStretch fills the target exactly. Aspect ratio is ignored and the
// content always scales, so the upscale guard never applies.
func calcStretch(layer *Layer, width, height int) Result {
	return Result{
		Canvas:  Size{Width: width, Height: height},
		Dest:    Rect{Width: width, Height: height},
		Upscale: true,
		Max:     layer.MaxSize,
	}
}

// calcCrop scales by the larger of the two axis ratios so the content
// fully covers the canvas, then offsets the overflowing axis from the
// crop center or the anchor.
func calcCrop(source Size, layer *Layer, width, height int) Result {
	srcW := float64(source.Width)
	srcH := float64(source.Height)
	percentW := float64(width) / srcW
	percentH := float64(height) / srcH

	dest := Rect{Width: width, Height: height}

	if percentH < percentW {
		// Width drives the scale; the vertical overflow is cropped.
		ratio := percentW
		dest.Height = int(math.Ceil(srcH * ratio))
		if len(layer.Center) == 2 {
			dest.Y = cropCenterOffset(ratio, srcH, layer.Center[1], height)
		} else {
			dest.Y = anchorOffset(layer.Anchor, axisVertical, height, dest.Height)
		}
	} else {
		ratio := percentH
		dest.Width = int(math.Ceil(srcW * ratio))
		if len(layer.Center) == 2 {
			dest.X = cropCenterOffset(ratio, srcW, layer.Center[0], width)
		} else {
			dest.X = anchorOffset(layer.Anchor, axisHorizontal, width, dest.Width)
		}
	}

	return Result{
		Canvas:  Size{Width: width, Height: height},
		Dest:    dest,
		Upscale: layer.Upscale,
		Max:     layer.MaxSize,
	}
}

// cropCenterOffset places the scaled source so the fractional center
// lands mid-canvas, clamped so the content still covers the whole
// canvas: the offset stays within [target - source*ratio, 0].
func cropCenterOffset(ratio, sourceDim, center float64, target int) int {
	offset := int(-(ratio*sourceDim)*center) + target/2
	if offset > 0 {
		offset = 0
	}
	if lower := int(float64(target) - sourceDim*ratio); offset < lower {
		offset = lower
	}
	return offset
}

// calcPad scales by the smaller of the two axis ratios so the content
// fits entirely inside the canvas, letterboxing the remainder along the
// anchored axis.
func calcPad(source Size, layer *Layer, width, height int) Result {
	srcW := float64(source.Width)
	srcH := float64(source.Height)
	percentW := float64(width) / srcW
	percentH := float64(height) / srcH

	dest := Rect{Width: width, Height: height}

	if percentH < percentW {
		// Height limits the scale; the horizontal leftover is padded.
		dest.Width = int(math.Ceil(srcW * percentH))
		dest.X = anchorOffset(layer.Anchor, axisHorizontal, width, dest.Width)
	} else {
		dest.Height = int(math.Ceil(srcH * percentW))
		dest.Y = anchorOffset(layer.Anchor, axisVertical, height, dest.Height)
	}

	return Result{
		Canvas:  Size{Width: width, Height: height},
		Dest:    dest,
		Upscale: layer.Upscale,
		Max:     layer.MaxSize,
	}
}

// calcBoxPad places the source unscaled within a strictly larger
// canvas. When the target does not exceed the source on both axes the
// calculation is plain padding.
func calcBoxPad(source Size, layer *Layer, width, height int) Result {
	if source.Width >= width || source.Height >= height {
		return calcPad(source, layer, width, height)
	}

	dest := Rect{Width: source.Width, Height: source.Height}

	if p := layer.AnchorPoint; p != nil {
		dest.X = clampInt(p.X, 0, width-source.Width)
		dest.Y = clampInt(p.Y, 0, height-source.Height)
	} else {
		dest.X = anchorOffset(layer.Anchor, axisHorizontal, width, source.Width)
		dest.Y = anchorOffset(layer.Anchor, axisVertical, height, source.Height)
	}

	return Result{
		Canvas: Size{Width: width, Height: height},
		Dest:   dest,
		// Placing unscaled content on a larger canvas is not a
		// scale-up of the content, so the upscale guard never rejects
		// an active box pad.
		Upscale: true,
		Max:     layer.MaxSize,
	}
}

// calcMax fits the source within the target preserving aspect ratio
// with no padding: the target axis the source overflows first is kept
// and the other is derived from the source ratio.
func calcMax(source Size, layer *Layer, width, height int) Result {
	srcRatio := float64(source.Height) / float64(source.Width)
	targetRatio := float64(height) / float64(width)

	if srcRatio > targetRatio {
		// Source is relatively taller: height binds.
		width = int(math.Round(float64(height) / srcRatio))
	} else {
		height = int(math.Round(float64(width) * srcRatio))
	}

	return Result{
		Canvas:  Size{Width: width, Height: height},
		Dest:    Rect{Width: width, Height: height},
		Upscale: layer.Upscale,
		Max:     layer.MaxSize,
	}
}

// calcMin resizes until the axis nearest its target value is reached:
// the axis with the smaller source-to-target difference keeps its
// target and the other follows the source ratio. The guards force no
// upscaling and cap at the source size, so a min resize only shrinks.
func calcMin(source Size, _ *Layer, width, height int) Result {
	srcRatio := float64(source.Height) / float64(source.Width)
	widthDiff := source.Width - width
	heightDiff := source.Height - height

	switch {
	case widthDiff < heightDiff:
		height = int(math.Round(float64(width) * srcRatio))
	case widthDiff > heightDiff:
		width = int(math.Round(float64(height) / srcRatio))
	case source.Height > source.Width:
		width = int(math.Round(float64(height) / srcRatio))
	default:
		height = int(math.Round(float64(width) * srcRatio))
	}

	return Result{
		Canvas:  Size{Width: width, Height: height},
		Dest:    Rect{Width: width, Height: height},
		Upscale: false,
		Max:     source,
	}
}
