package rescale

import (
	"image"
	"io"

	"github.com/gogpu/rescale/internal/geom"
	"github.com/gogpu/rescale/internal/pix"
)

// Buffer is a single decoded raster frame: pixel data plus layout
// metadata (format, stride, DPI).
type Buffer = pix.Buffer

// Image is a multi-frame image. Still images hold one frame; animations
// hold one coalesced frame per step with delays and a loop count.
type Image = pix.Image

// Format identifies a pixel memory layout.
type Format = pix.Format

// Pixel formats.
const (
	FormatGray8      = pix.FormatGray8
	FormatRGB8       = pix.FormatRGB8
	FormatRGBA8      = pix.FormatRGBA8
	FormatRGBAPremul = pix.FormatRGBAPremul
	FormatBGRA8      = pix.FormatBGRA8
)

// ProcessMode selects which frames of a multi-frame image an operation
// touches.
type ProcessMode = pix.ProcessMode

const (
	// ProcessAll processes every frame.
	ProcessAll = pix.ProcessAll

	// ProcessFirst processes only the first frame, producing a still.
	ProcessFirst = pix.ProcessFirst
)

// Size is a width/height pair in pixels. A zero dimension in a resize
// target means "derive this axis from the source aspect ratio".
type Size = geom.Size

// Rect is a destination rectangle in canvas coordinates. It may extend
// beyond the canvas (cropping) or cover only part of it (padding).
type Rect = geom.Rect

// NewBuffer allocates a zeroed frame buffer.
func NewBuffer(width, height int, format Format) (*Buffer, error) {
	return pix.NewBuffer(width, height, format)
}

// NewImage wraps a single frame as a still image.
func NewImage(buf *Buffer) *Image {
	return pix.NewImage(buf)
}

// NewAnimation wraps frames as an animated image. delays are per frame
// in 100ths of a second and must either be empty or match the frame
// count; loop follows GIF semantics (0 loops forever).
func NewAnimation(frames []*Buffer, delays []int, loop int) (*Image, error) {
	return pix.NewAnimation(frames, delays, loop)
}

// FromStdImage converts a stdlib image into a frame buffer, picking the
// closest native format. An image with empty bounds yields nil.
func FromStdImage(img image.Image) *Buffer {
	return pix.FromStdImage(img)
}

// Load reads and decodes a single still frame from a file.
func Load(path string) (*Buffer, error) {
	return pix.Load(path)
}

// LoadAll reads a file and decodes every frame it holds. Animated GIFs
// decode into coalesced per-step frames; other formats into one frame.
func LoadAll(path string) (*Image, error) {
	return pix.LoadAll(path)
}

// Decode decodes a single still frame from r using the registered
// stdlib and x/image codecs.
func Decode(r io.Reader) (*Buffer, error) {
	return pix.Decode(r)
}

// DecodeAll decodes every frame from r. See LoadAll.
func DecodeAll(r io.Reader) (*Image, error) {
	return pix.DecodeAll(r)
}
