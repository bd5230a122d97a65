package rescale

import "image"

// Scaler resizes whole stdlib images to an exact size.
//
// Implementations live under backend/: the native engine plus adapters
// over third-party resize libraries, interchangeable for comparison,
// benchmarking, or callers who prefer a specific library's look.
type Scaler interface {
	Scale(img image.Image, width, height int) (image.Image, error)
}
