package pix

import "errors"

// DefaultDPI is the resolution assigned to buffers that do not carry
// their own, matching the common screen default.
const DefaultDPI = 96.0

// Common errors for buffer operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("pix: invalid dimensions")

	// ErrInvalidFormat is returned when the format is not recognized.
	ErrInvalidFormat = errors.New("pix: invalid format")

	// ErrInvalidStride is returned when stride is less than minimum required.
	ErrInvalidStride = errors.New("pix: stride too small for width")

	// ErrDataTooSmall is returned when provided data is smaller than required.
	ErrDataTooSmall = errors.New("pix: data buffer too small")

	// ErrOutOfBounds is returned when pixel coordinates are outside buffer bounds.
	ErrOutOfBounds = errors.New("pix: coordinates out of bounds")
)

// Buffer is a flat pixel buffer with stride-aware addressing.
//
// Pixel data lives in a contiguous byte slice; rows may carry padding when
// the stride exceeds the packed row width. Buffers also track a horizontal
// and vertical resolution so resized output can preserve the source DPI.
//
// Thread safety: Buffer is safe for concurrent read access. Write
// operations require external synchronization.
type Buffer struct {
	data   []byte
	width  int
	height int
	stride int
	format Format

	dpiX float64
	dpiY float64

	// view marks a buffer that aliases another buffer's data, such as a
	// SubImage. Views must never enter the pool.
	view bool
}

// NewBuffer creates a new pixel buffer with the given dimensions and format.
// Returns an error if dimensions are invalid or the format is unknown.
func NewBuffer(width, height int, format Format) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}

	stride := format.RowBytes(width)

	return &Buffer{
		data:   make([]byte, stride*height),
		width:  width,
		height: height,
		stride: stride,
		format: format,
		dpiX:   DefaultDPI,
		dpiY:   DefaultDPI,
	}, nil
}

// NewBufferWithStride creates a new pixel buffer with a custom stride for
// alignment. Stride must be at least format.RowBytes(width).
func NewBufferWithStride(width, height int, format Format, stride int) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}
	if stride < format.RowBytes(width) {
		return nil, ErrInvalidStride
	}

	return &Buffer{
		data:   make([]byte, stride*height),
		width:  width,
		height: height,
		stride: stride,
		format: format,
		dpiX:   DefaultDPI,
		dpiY:   DefaultDPI,
	}, nil
}

// FromRaw creates a Buffer from existing data without copying.
// The caller must ensure data remains valid for the lifetime of the Buffer.
// Stride must be at least format.RowBytes(width).
func FromRaw(data []byte, width, height int, format Format, stride int) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}
	if stride < format.RowBytes(width) {
		return nil, ErrInvalidStride
	}

	required := stride * height
	if len(data) < required {
		return nil, ErrDataTooSmall
	}

	return &Buffer{
		data:   data[:required],
		width:  width,
		height: height,
		stride: stride,
		format: format,
		dpiX:   DefaultDPI,
		dpiY:   DefaultDPI,
	}, nil
}

// Clone creates a deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	data := make([]byte, len(b.data))
	copy(data, b.data)

	return &Buffer{
		data:   data,
		width:  b.width,
		height: b.height,
		stride: b.stride,
		format: b.format,
		dpiX:   b.dpiX,
		dpiY:   b.dpiY,
	}
}

// Width returns the buffer width in pixels.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the buffer height in pixels.
func (b *Buffer) Height() int {
	return b.height
}

// Stride returns the number of bytes per row (including padding).
func (b *Buffer) Stride() int {
	return b.stride
}

// Format returns the pixel format.
func (b *Buffer) Format() Format {
	return b.format
}

// Bounds returns the buffer dimensions as (width, height).
func (b *Buffer) Bounds() (int, int) {
	return b.width, b.height
}

// DPI returns the horizontal and vertical resolution in dots per inch.
func (b *Buffer) DPI() (x, y float64) {
	return b.dpiX, b.dpiY
}

// SetDPI sets the buffer resolution. Non-positive values reset to DefaultDPI.
func (b *Buffer) SetDPI(x, y float64) {
	if x <= 0 {
		x = DefaultDPI
	}
	if y <= 0 {
		y = DefaultDPI
	}
	b.dpiX, b.dpiY = x, y
}

// Data returns the raw pixel data slice.
// Modifying this data affects the buffer contents directly.
func (b *Buffer) Data() []byte {
	return b.data
}

// RowBytes returns a slice of the pixel data for row y.
// Returns nil if y is out of bounds.
func (b *Buffer) RowBytes(y int) []byte {
	if y < 0 || y >= b.height {
		return nil
	}
	start := y * b.stride
	return b.data[start : start+b.format.RowBytes(b.width)]
}

// PixelOffset returns the byte offset of pixel (x, y) in the data slice.
// Returns -1 if coordinates are out of bounds.
func (b *Buffer) PixelOffset(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return -1
	}
	return y*b.stride + x*b.format.BytesPerPixel()
}

// PixelBytes returns a slice of the raw bytes for pixel (x, y).
// Returns nil if coordinates are out of bounds.
func (b *Buffer) PixelBytes(x, y int) []byte {
	offset := b.PixelOffset(x, y)
	if offset < 0 {
		return nil
	}
	return b.data[offset : offset+b.format.BytesPerPixel()]
}

// SetPixelBytes sets the raw bytes for pixel (x, y).
// Returns ErrOutOfBounds if coordinates are outside buffer bounds.
func (b *Buffer) SetPixelBytes(x, y int, pixel []byte) error {
	offset := b.PixelOffset(x, y)
	if offset < 0 {
		return ErrOutOfBounds
	}
	bpp := b.format.BytesPerPixel()
	copy(b.data[offset:offset+bpp], pixel)
	return nil
}

// GetRGBA returns the color at (x, y) as (r, g, b, a) in 0-255 range.
// For grayscale formats r=g=b=gray and a=255; for formats without alpha
// a=255. Premultiplied formats return their stored (premultiplied) values.
// Returns (0,0,0,0) if coordinates are out of bounds.
func (b *Buffer) GetRGBA(x, y int) (r, g, bl, a uint8) {
	pixel := b.PixelBytes(x, y)
	if pixel == nil {
		return 0, 0, 0, 0
	}

	switch b.format {
	case FormatGray8:
		v := pixel[0]
		return v, v, v, 255
	case FormatRGB8:
		return pixel[0], pixel[1], pixel[2], 255
	case FormatRGBA8, FormatRGBAPremul:
		return pixel[0], pixel[1], pixel[2], pixel[3]
	case FormatBGRA8:
		return pixel[2], pixel[1], pixel[0], pixel[3]
	default:
		return 0, 0, 0, 0
	}
}

// SetRGBA sets the color at (x, y) from (r, g, b, a) in 0-255 range.
// Grayscale formats use standard luminance weights.
// Returns ErrOutOfBounds if coordinates are outside buffer bounds.
func (b *Buffer) SetRGBA(x, y int, r, g, bl, a uint8) error {
	offset := b.PixelOffset(x, y)
	if offset < 0 {
		return ErrOutOfBounds
	}

	switch b.format {
	case FormatGray8:
		// Standard luminance: 0.299*R + 0.587*G + 0.114*B
		gray := (int(r)*299 + int(g)*587 + int(bl)*114) / 1000
		b.data[offset] = byte(gray)
	case FormatRGB8:
		b.data[offset] = r
		b.data[offset+1] = g
		b.data[offset+2] = bl
	case FormatRGBA8, FormatRGBAPremul:
		b.data[offset] = r
		b.data[offset+1] = g
		b.data[offset+2] = bl
		b.data[offset+3] = a
	case FormatBGRA8:
		b.data[offset] = bl
		b.data[offset+1] = g
		b.data[offset+2] = r
		b.data[offset+3] = a
	}

	return nil
}

// Clear sets all pixels to zero (transparent black for alpha formats).
func (b *Buffer) Clear() {
	clear(b.data)
}

// Fill sets all pixels to the given RGBA color.
func (b *Buffer) Fill(r, g, bl, a uint8) {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			_ = b.SetRGBA(x, y, r, g, bl, a)
		}
	}
}

// Premultiply converts an RGBA8 buffer to RGBAPremul in place.
// Buffers in any other format are left untouched.
func (b *Buffer) Premultiply() {
	if b.format != FormatRGBA8 {
		return
	}

	for y := 0; y < b.height; y++ {
		row := y * b.stride
		for x := 0; x < b.width; x++ {
			offset := row + x*4
			a := uint16(b.data[offset+3])
			b.data[offset] = byte((uint16(b.data[offset])*a + 127) / 255)
			b.data[offset+1] = byte((uint16(b.data[offset+1])*a + 127) / 255)
			b.data[offset+2] = byte((uint16(b.data[offset+2])*a + 127) / 255)
		}
	}
	b.format = FormatRGBAPremul
}

// Unpremultiply converts an RGBAPremul buffer to RGBA8 in place.
// Buffers in any other format are left untouched.
func (b *Buffer) Unpremultiply() {
	if b.format != FormatRGBAPremul {
		return
	}

	for y := 0; y < b.height; y++ {
		row := y * b.stride
		for x := 0; x < b.width; x++ {
			offset := row + x*4
			a := uint32(b.data[offset+3])
			if a == 0 || a == 255 {
				continue
			}
			b.data[offset] = unpremulByte(b.data[offset], a)
			b.data[offset+1] = unpremulByte(b.data[offset+1], a)
			b.data[offset+2] = unpremulByte(b.data[offset+2], a)
		}
	}
	b.format = FormatRGBA8
}

// unpremulByte divides a premultiplied channel back out by alpha with
// rounding, saturating at 255 for malformed input where channel > alpha.
func unpremulByte(c byte, a uint32) byte {
	v := (uint32(c)*255 + a/2) / a
	if v > 255 {
		v = 255
	}
	return byte(v)
}

// Premultiply scales the color channels of one pixel by its alpha with
// the rounding the premultiplied formats use. Fully opaque pixels pass
// through unchanged.
func Premultiply(r, g, b, a uint8) (uint8, uint8, uint8, uint8) {
	switch a {
	case 255:
		return r, g, b, a
	case 0:
		return 0, 0, 0, 0
	}
	av := uint16(a)
	return byte((uint16(r)*av + 127) / 255),
		byte((uint16(g)*av + 127) / 255),
		byte((uint16(b)*av + 127) / 255),
		a
}

// Unpremultiply divides the color channels of one pixel back out by its
// alpha, saturating at 255 for malformed input where a channel exceeds
// alpha. An exact inverse of Premultiply does not exist at 8 bits;
// values round-trip within one level.
func Unpremultiply(r, g, b, a uint8) (uint8, uint8, uint8, uint8) {
	switch a {
	case 255:
		return r, g, b, a
	case 0:
		return 0, 0, 0, 0
	}
	av := uint32(a)
	return unpremulByte(r, av), unpremulByte(g, av), unpremulByte(b, av), a
}

// SubImage returns a view into a rectangular region of the buffer.
// The returned Buffer shares the underlying data with the original, so
// modifications to either are visible in both.
// Returns nil if the bounds are invalid or outside the buffer.
func (b *Buffer) SubImage(x, y, width, height int) *Buffer {
	if x < 0 || y < 0 || width <= 0 || height <= 0 {
		return nil
	}
	if x+width > b.width || y+height > b.height {
		return nil
	}

	offset := y*b.stride + x*b.format.BytesPerPixel()
	end := (y+height-1)*b.stride + (x+width)*b.format.BytesPerPixel()

	return &Buffer{
		data:   b.data[offset:end],
		width:  width,
		height: height,
		stride: b.stride,
		format: b.format,
		dpiX:   b.dpiX,
		dpiY:   b.dpiY,
		view:   true,
	}
}

// ByteSize returns the total size of the pixel data in bytes.
func (b *Buffer) ByteSize() int {
	return len(b.data)
}

// IsEmpty returns true if the buffer has zero dimensions.
func (b *Buffer) IsEmpty() bool {
	return b.width == 0 || b.height == 0
}
