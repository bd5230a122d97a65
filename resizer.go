package rescale

import (
	"log/slog"

	"github.com/gogpu/rescale/internal/geom"
	"github.com/gogpu/rescale/internal/pix"
	"github.com/gogpu/rescale/internal/resample"
)

// Resizer applies one resize policy to whole images.
//
// A Resizer is cheap to construct and safe for concurrent use as long
// as its fields are not mutated while resizes run.
type Resizer struct {
	layer *ResizeLayer

	// ProcessMode selects which frames of a multi-frame image are
	// resized. Defaults to ProcessAll.
	ProcessMode ProcessMode

	// Algorithm selects the resampling kernel. Defaults to
	// BicubicHighQuality.
	Algorithm Algorithm
}

// NewResizer returns a resizer driving the given layer with the default
// kernel and frame handling.
func NewResizer(layer *ResizeLayer) *Resizer {
	return &Resizer{
		layer:       layer,
		ProcessMode: ProcessAll,
		Algorithm:   BicubicHighQuality,
	}
}

// Layer returns the policy this resizer applies.
func (r *Resizer) Layer() *ResizeLayer {
	return r.layer
}

// ResizeImage resizes source according to the policy. linear selects
// gamma-correct interpolation.
//
// Ownership: on success the source is consumed (its buffers return to
// the pool) and the caller keeps only the result. On failure the source
// is consumed as well and only the error returns. When a policy guard
// rejects the operation (forbidden upscale, size cap, restricted target
// size) the SAME source pointer comes back with a nil error; callers
// compare pointers to detect rejection.
func (r *Resizer) ResizeImage(source *Image, linear bool) (*Image, error) {
	if source == nil || source.FrameCount() == 0 {
		return nil, &ProcessingError{Op: "resize", Err: pix.ErrNoFrames}
	}
	if r.layer == nil {
		source.Release()
		return nil, &ProcessingError{Op: "resize", Err: ErrNilLayer}
	}

	layer := r.layer.Normalize()
	srcW, srcH := source.Size()
	srcSize := geom.Size{Width: srcW, Height: srcH}

	res, err := geom.Calculate(srcSize, layer, layer.Size.Width, layer.Size.Height)
	if err != nil {
		source.Release()
		return nil, &ProcessingError{Op: "resize", Err: err}
	}

	if reason := rejectReason(layer, srcSize, res); reason != "" {
		Logger().Warn("resize rejected by policy",
			slog.String("reason", reason),
			slog.String("mode", layer.Mode.String()),
			slog.String("source", srcSize.String()),
			slog.String("canvas", res.Canvas.String()))
		return source, nil
	}

	frameCount := source.FrameCount()
	if r.ProcessMode == ProcessFirst {
		frameCount = 1
	}

	kernel := r.Algorithm.kernel()
	opts := resample.Options{FixGamma: linear}

	frames := make([]*pix.Buffer, 0, frameCount)
	for i := 0; i < frameCount; i++ {
		out, err := kernel(source.Frame(i), res.Canvas, res.Dest, opts)
		if err != nil {
			for _, f := range frames {
				pix.PutBuffer(f)
			}
			source.Release()
			return nil, &ProcessingError{Op: r.Algorithm.opName(), Err: err}
		}
		frames = append(frames, out)
	}

	var delays []int
	if d := source.Delays(); len(d) >= frameCount && frameCount > 1 {
		delays = make([]int, frameCount)
		copy(delays, d)
	}

	result, err := pix.NewAnimation(frames, delays, source.LoopCount())
	if err != nil {
		for _, f := range frames {
			pix.PutBuffer(f)
		}
		source.Release()
		return nil, &ProcessingError{Op: "resize", Err: err}
	}

	Logger().Debug("image resized",
		slog.String("algorithm", r.Algorithm.String()),
		slog.String("mode", layer.Mode.String()),
		slog.String("source", srcSize.String()),
		slog.String("canvas", res.Canvas.String()),
		slog.Int("frames", frameCount),
		slog.Bool("linear", linear))

	source.Release()
	return result, nil
}

// rejectReason checks the policy guards against a computed result and
// returns a human-readable reason when one trips, or "" to proceed.
// The mode adjustments are already carried in the result: ModeMin caps
// at the source size and never upscales, ModeStretch and an active
// ModeBoxPad always permit enlargement.
func rejectReason(layer *ResizeLayer, src geom.Size, res geom.Result) string {
	if !res.Upscale && (res.Canvas.Width > src.Width || res.Canvas.Height > src.Height) {
		return "upscale not permitted"
	}
	if m := res.Max; (m.Width > 0 && res.Canvas.Width > m.Width) ||
		(m.Height > 0 && res.Canvas.Height > m.Height) {
		return "canvas exceeds size cap"
	}
	if len(layer.RestrictedSizes) > 0 && !matchesRestriction(layer.RestrictedSizes, res.Canvas) {
		return "canvas not in restricted sizes"
	}
	return ""
}

// matchesRestriction reports whether canvas matches any allowed entry.
// An entry with one zero dimension matches on the other dimension
// alone; an all-zero entry matches nothing.
func matchesRestriction(allowed []geom.Size, canvas geom.Size) bool {
	for _, s := range allowed {
		switch {
		case s.Width == 0 && s.Height == 0:
		case s.Width == 0:
			if canvas.Height == s.Height {
				return true
			}
		case s.Height == 0:
			if canvas.Width == s.Width {
				return true
			}
		default:
			if canvas == s {
				return true
			}
		}
	}
	return false
}
