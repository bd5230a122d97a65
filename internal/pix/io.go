package pix

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	// Register decoders for content-sniffing in Decode.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when the image format is not supported.
	ErrUnsupportedFormat = errors.New("pix: unsupported format")

	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("pix: empty data")
)

// Load loads an image from the given file path, auto-detecting the format.
// Supported formats: PNG, JPEG, GIF (first frame), BMP, TIFF, WebP.
func Load(path string) (*Buffer, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("pix: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// LoadBytes loads an image from a byte slice, auto-detecting the format.
func LoadBytes(data []byte) (*Buffer, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	return Decode(bytes.NewReader(data))
}

// Decode decodes an image from the given reader, auto-detecting the format.
func Decode(r io.Reader) (*Buffer, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("pix: decode: %w", err)
	}
	return FromStdImage(img), nil
}

// DecodePNG decodes a PNG image from the given reader.
func DecodePNG(r io.Reader) (*Buffer, error) {
	img, err := png.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("pix: decode PNG: %w", err)
	}
	return FromStdImage(img), nil
}

// DecodeJPEG decodes a JPEG image from the given reader.
func DecodeJPEG(r io.Reader) (*Buffer, error) {
	img, err := jpeg.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("pix: decode JPEG: %w", err)
	}
	return FromStdImage(img), nil
}

// DecodeGIF decodes the first frame of a GIF image from the given
// reader. Use DecodeAll for every frame of an animation.
func DecodeGIF(r io.Reader) (*Buffer, error) {
	img, err := gif.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("pix: decode GIF: %w", err)
	}
	return FromStdImage(img), nil
}

// Save writes the buffer to the given path, choosing the codec from the
// file extension. Supported extensions: .png, .jpg, .jpeg, .gif.
func (b *Buffer) Save(path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return b.SavePNG(path)
	case ".jpg", ".jpeg":
		return b.SaveJPEG(path, 90)
	case ".gif":
		f, err := os.Create(filepath.Clean(path))
		if err != nil {
			return fmt.Errorf("pix: create file: %w", err)
		}
		if err := gif.Encode(f, b.ToStdImage(), nil); err != nil {
			_ = f.Close()
			return fmt.Errorf("pix: encode GIF: %w", err)
		}
		return f.Close()
	default:
		return ErrUnsupportedFormat
	}
}

// SavePNG saves the buffer as a PNG file.
func (b *Buffer) SavePNG(path string) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("pix: create file: %w", err)
	}

	if err := b.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// SaveJPEG saves the buffer as a JPEG file with the given quality (1-100).
func (b *Buffer) SaveJPEG(path string, quality int) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("pix: create file: %w", err)
	}

	if err := b.EncodeJPEG(f, quality); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// EncodePNG encodes the buffer as PNG to the given writer.
func (b *Buffer) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, b.ToStdImage()); err != nil {
		return fmt.Errorf("pix: encode PNG: %w", err)
	}
	return nil
}

// EncodeJPEG encodes the buffer as JPEG to the given writer.
func (b *Buffer) EncodeJPEG(w io.Writer, quality int) error {
	if quality < 1 {
		quality = 1
	}
	if quality > 100 {
		quality = 100
	}

	if err := jpeg.Encode(w, b.ToStdImage(), &jpeg.Options{Quality: quality}); err != nil {
		return fmt.Errorf("pix: encode JPEG: %w", err)
	}
	return nil
}

// EncodeToBytes encodes the buffer to PNG format and returns the bytes.
func (b *Buffer) EncodeToBytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := b.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// FromStdImage creates a Buffer from a standard library image.Image.
//
// The format follows the concrete image type: *image.RGBA maps to
// FormatRGBAPremul (the standard library stores RGBA premultiplied),
// *image.NRGBA to FormatRGBA8 and *image.Gray to FormatGray8. Any other
// type is converted pixel by pixel to straight-alpha RGBA8. An image
// with empty bounds yields nil.
func FromStdImage(img image.Image) *Buffer {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width <= 0 || height <= 0 {
		return nil
	}

	switch src := img.(type) {
	case *image.RGBA:
		buf, _ := NewBuffer(width, height, FormatRGBAPremul)
		copyPix(buf, src.Pix, src.Stride, width)
		return buf

	case *image.NRGBA:
		buf, _ := NewBuffer(width, height, FormatRGBA8)
		copyPix(buf, src.Pix, src.Stride, width)
		return buf

	case *image.Gray:
		buf, _ := NewBuffer(width, height, FormatGray8)
		copyPix(buf, src.Pix, src.Stride, width)
		return buf
	}

	// Generic slow path: NRGBAModel recovers straight alpha from any
	// color type, including premultiplied ones.
	buf, _ := NewBuffer(width, height, FormatRGBA8)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			_ = buf.SetRGBA(x, y, c.R, c.G, c.B, c.A)
		}
	}
	return buf
}

// copyPix copies packed pixel rows from a standard image into buf,
// handling mismatched strides.
func copyPix(buf *Buffer, pix []byte, srcStride, width int) {
	rowLen := buf.Format().RowBytes(width)
	if srcStride == buf.Stride() {
		copy(buf.Data(), pix)
		return
	}
	for y := 0; y < buf.Height(); y++ {
		src := y * srcStride
		copy(buf.RowBytes(y), pix[src:src+rowLen])
	}
}

// ToStdImage converts the buffer to a standard library image.Image.
// Straight-alpha formats map to *image.NRGBA, premultiplied to
// *image.RGBA, grayscale to *image.Gray.
func (b *Buffer) ToStdImage() image.Image {
	rect := image.Rect(0, 0, b.width, b.height)

	switch b.format {
	case FormatGray8:
		gray := image.NewGray(rect)
		for y := 0; y < b.height; y++ {
			copy(gray.Pix[y*gray.Stride:], b.RowBytes(y))
		}
		return gray

	case FormatRGBA8:
		nrgba := image.NewNRGBA(rect)
		if b.stride == nrgba.Stride {
			copy(nrgba.Pix, b.data)
		} else {
			for y := 0; y < b.height; y++ {
				copy(nrgba.Pix[y*nrgba.Stride:], b.RowBytes(y))
			}
		}
		return nrgba

	case FormatRGBAPremul:
		rgba := image.NewRGBA(rect)
		if b.stride == rgba.Stride {
			copy(rgba.Pix, b.data)
		} else {
			for y := 0; y < b.height; y++ {
				copy(rgba.Pix[y*rgba.Stride:], b.RowBytes(y))
			}
		}
		return rgba

	case FormatBGRA8:
		nrgba := image.NewNRGBA(rect)
		for y := 0; y < b.height; y++ {
			row := b.RowBytes(y)
			dst := y * nrgba.Stride
			for x := 0; x < b.width; x++ {
				srcOff := x * 4
				dstOff := dst + x*4
				nrgba.Pix[dstOff] = row[srcOff+2]
				nrgba.Pix[dstOff+1] = row[srcOff+1]
				nrgba.Pix[dstOff+2] = row[srcOff]
				nrgba.Pix[dstOff+3] = row[srcOff+3]
			}
		}
		return nrgba

	case FormatRGB8:
		nrgba := image.NewNRGBA(rect)
		for y := 0; y < b.height; y++ {
			row := b.RowBytes(y)
			dst := y * nrgba.Stride
			for x := 0; x < b.width; x++ {
				srcOff := x * 3
				dstOff := dst + x*4
				nrgba.Pix[dstOff] = row[srcOff]
				nrgba.Pix[dstOff+1] = row[srcOff+1]
				nrgba.Pix[dstOff+2] = row[srcOff+2]
				nrgba.Pix[dstOff+3] = 255
			}
		}
		return nrgba

	default:
		nrgba := image.NewNRGBA(rect)
		for y := 0; y < b.height; y++ {
			for x := 0; x < b.width; x++ {
				r, g, bl, a := b.GetRGBA(x, y)
				off := y*nrgba.Stride + x*4
				nrgba.Pix[off] = r
				nrgba.Pix[off+1] = g
				nrgba.Pix[off+2] = bl
				nrgba.Pix[off+3] = a
			}
		}
		return nrgba
	}
}
