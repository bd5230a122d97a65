package pix

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"
	"os"
	"path/filepath"
)

// ProcessMode selects which frames of a multi-frame image an operation
// touches.
type ProcessMode uint8

const (
	// ProcessAll applies the operation to every frame.
	ProcessAll ProcessMode = iota

	// ProcessFirst applies the operation to the first frame only and
	// drops the rest.
	ProcessFirst
)

// String returns a string representation of the process mode.
func (m ProcessMode) String() string {
	switch m {
	case ProcessAll:
		return "All"
	case ProcessFirst:
		return "First"
	default:
		return "Unknown"
	}
}

// ErrNoFrames is returned when an Image holds no frames.
var ErrNoFrames = errors.New("pix: image has no frames")

// Image is a multi-frame image. Still images hold a single frame;
// animations hold one coalesced full-size frame per animation step
// together with per-frame delays and a loop count.
type Image struct {
	frames []*Buffer
	delays []int // per frame, in 100ths of a second
	loop   int   // 0 = loop forever, -1 = show once
}

// NewImage creates a single-frame image around buf.
func NewImage(buf *Buffer) *Image {
	return &Image{frames: []*Buffer{buf}}
}

// NewAnimation creates a multi-frame image. delays must either be empty
// or have one entry per frame.
func NewAnimation(frames []*Buffer, delays []int, loop int) (*Image, error) {
	if len(frames) == 0 {
		return nil, ErrNoFrames
	}
	if len(delays) != 0 && len(delays) != len(frames) {
		return nil, fmt.Errorf("pix: %d delays for %d frames", len(delays), len(frames))
	}
	return &Image{frames: frames, delays: delays, loop: loop}, nil
}

// FrameCount returns the number of frames.
func (m *Image) FrameCount() int {
	return len(m.frames)
}

// Frame returns frame i, or nil if i is out of range.
func (m *Image) Frame(i int) *Buffer {
	if i < 0 || i >= len(m.frames) {
		return nil
	}
	return m.frames[i]
}

// Delays returns the per-frame delays in 100ths of a second.
// The slice is nil for still images.
func (m *Image) Delays() []int {
	return m.delays
}

// LoopCount returns the animation loop count (0 loops forever).
func (m *Image) LoopCount() int {
	return m.loop
}

// Size returns the dimensions of the first frame, or zeros if the image
// holds no frames.
func (m *Image) Size() (width, height int) {
	if len(m.frames) == 0 {
		return 0, 0
	}
	return m.frames[0].Bounds()
}

// Copy returns a deep copy. With ProcessFirst only the first frame is
// copied and the result is a still image.
func (m *Image) Copy(mode ProcessMode) *Image {
	if len(m.frames) == 0 {
		return &Image{}
	}

	if mode == ProcessFirst {
		return NewImage(m.frames[0].Clone())
	}

	frames := make([]*Buffer, len(m.frames))
	for i, f := range m.frames {
		frames[i] = f.Clone()
	}
	var delays []int
	if len(m.delays) > 0 {
		delays = make([]int, len(m.delays))
		copy(delays, m.delays)
	}
	return &Image{frames: frames, delays: delays, loop: m.loop}
}

// Release returns every frame to the default buffer pool and empties the
// image. The image must not be used for pixel access afterwards.
func (m *Image) Release() {
	for _, f := range m.frames {
		PutBuffer(f)
	}
	m.frames = nil
	m.delays = nil
}

// gifMagic matches the two GIF signature variants.
func gifMagic(header []byte) bool {
	return bytes.HasPrefix(header, []byte("GIF87a")) || bytes.HasPrefix(header, []byte("GIF89a"))
}

// LoadAll loads an image from the given file path, keeping every frame
// of animated GIFs. Other formats decode to a single-frame image.
func LoadAll(path string) (*Image, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("pix: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return DecodeAll(f)
}

// DecodeAll decodes an image from the given reader, keeping every frame
// of animated GIFs. Frames are coalesced: each returned frame is a full
// composited canvas, honoring per-frame disposal.
func DecodeAll(r io.Reader) (*Image, error) {
	br := bufio.NewReader(r)

	header, err := br.Peek(6)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("pix: decode: %w", err)
	}
	if !gifMagic(header) {
		buf, err := Decode(br)
		if err != nil {
			return nil, err
		}
		return NewImage(buf), nil
	}

	g, err := gif.DecodeAll(br)
	if err != nil {
		return nil, fmt.Errorf("pix: decode GIF: %w", err)
	}
	if len(g.Image) == 0 {
		return nil, ErrNoFrames
	}

	width, height := g.Config.Width, g.Config.Height
	if width == 0 || height == 0 {
		b := g.Image[0].Bounds()
		width, height = b.Dx(), b.Dy()
	}

	canvas := image.NewNRGBA(image.Rect(0, 0, width, height))
	frames := make([]*Buffer, 0, len(g.Image))
	var restore *image.NRGBA

	for i, frame := range g.Image {
		if restore != nil {
			copy(canvas.Pix, restore.Pix)
			restore = nil
		}

		disposal := gif.DisposalNone
		if i < len(g.Disposal) {
			disposal = int(g.Disposal[i])
		}
		if disposal == gif.DisposalPrevious {
			restore = image.NewNRGBA(canvas.Rect)
			copy(restore.Pix, canvas.Pix)
		}

		draw.Draw(canvas, frame.Bounds(), frame, frame.Bounds().Min, draw.Over)
		frames = append(frames, FromStdImage(canvas))

		if disposal == gif.DisposalBackground {
			clearRect(canvas, frame.Bounds())
		}
	}

	delays := make([]int, len(frames))
	copy(delays, g.Delay)

	return &Image{frames: frames, delays: delays, loop: g.LoopCount}, nil
}

// clearRect zeroes the given rect of an NRGBA canvas to transparent.
func clearRect(canvas *image.NRGBA, r image.Rectangle) {
	r = r.Intersect(canvas.Rect)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		start := canvas.PixOffset(r.Min.X, y)
		clear(canvas.Pix[start : start+r.Dx()*4])
	}
}

// SaveGIF writes the image as a (possibly animated) GIF file.
func (m *Image) SaveGIF(path string) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("pix: create file: %w", err)
	}

	if err := m.EncodeGIFAll(f); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// EncodeGIFAll encodes every frame as an animated GIF. Frames are
// quantized to the Plan 9 palette with Floyd-Steinberg dithering.
func (m *Image) EncodeGIFAll(w io.Writer) error {
	if len(m.frames) == 0 {
		return ErrNoFrames
	}

	out := &gif.GIF{
		Image:     make([]*image.Paletted, 0, len(m.frames)),
		Delay:     make([]int, 0, len(m.frames)),
		LoopCount: m.loop,
	}

	for i, frame := range m.frames {
		src := frame.ToStdImage()
		pal := image.NewPaletted(src.Bounds(), palette.Plan9)
		draw.FloydSteinberg.Draw(pal, src.Bounds(), src, image.Point{})

		delay := 10
		if i < len(m.delays) {
			delay = m.delays[i]
		}

		out.Image = append(out.Image, pal)
		out.Delay = append(out.Delay, delay)
	}

	if err := gif.EncodeAll(w, out); err != nil {
		return fmt.Errorf("pix: encode GIF: %w", err)
	}
	return nil
}
