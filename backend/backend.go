package backend

import (
	"errors"
)

// Backend name constants.
const (
	// BackendNative is the engine's own kernel set.
	BackendNative = "native"
	// BackendXDraw is the golang.org/x/image/draw adapter.
	BackendXDraw = "xdraw"
	// BackendImaging is the github.com/disintegration/imaging adapter.
	BackendImaging = "imaging"
	// BackendGift is the github.com/disintegration/gift adapter.
	BackendGift = "gift"
	// BackendBild is the github.com/anthonynsimon/bild adapter.
	BackendBild = "bild"
	// BackendNfnt is the github.com/nfnt/resize adapter.
	BackendNfnt = "nfnt"
)

// Common backend errors.
var (
	// ErrBackendNotAvailable is returned when a requested backend is not registered.
	ErrBackendNotAvailable = errors.New("backend: not available")

	// ErrEmptyImage is returned when the source image is nil or has no pixels.
	ErrEmptyImage = errors.New("backend: nil or empty source image")

	// ErrInvalidSize is returned when a target dimension is zero or negative.
	ErrInvalidSize = errors.New("backend: target size must be positive")
)
