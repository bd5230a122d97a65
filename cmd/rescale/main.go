// Command rescale resizes images from the command line.
//
// The policy engine drives the default path: a resize mode, an anchor
// and optional guards shape where the content lands. Alternatively a
// registered whole-image backend performs a plain exact-size resize.
//
// Basic usage:
//
//	rescale -in photo.jpg -out thumb.png -width 200 -mode crop
//
// A TOML profile can carry the policy; explicit flags override it:
//
//	rescale -in photo.jpg -out thumb.png -profile thumb.toml
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/gogpu/rescale"
	"github.com/gogpu/rescale/backend"
	_ "github.com/gogpu/rescale/backend/bild"
	_ "github.com/gogpu/rescale/backend/gift"
	_ "github.com/gogpu/rescale/backend/imaging"
	_ "github.com/gogpu/rescale/backend/native"
	_ "github.com/gogpu/rescale/backend/nfnt"
	_ "github.com/gogpu/rescale/backend/xdraw"
)

const jpegQuality = 90

// profile mirrors the flag set so a TOML file can carry the same
// settings. Explicit command-line flags override file values.
type profile struct {
	Width     int    `toml:"width"`
	Height    int    `toml:"height"`
	Mode      string `toml:"mode"`
	Anchor    string `toml:"anchor"`
	Algorithm string `toml:"algorithm"`
	Backend   string `toml:"backend"`
	Linear    bool   `toml:"linear"`
	NoUpscale bool   `toml:"no-upscale"`
	MaxSize   string `toml:"max-size"`
	First     bool   `toml:"first"`
}

func main() {
	var (
		in          = flag.String("in", "", "input image path")
		out         = flag.String("out", "resized.png", "output image path")
		width       = flag.Int("width", 0, "target width (0 derives from height)")
		height      = flag.Int("height", 0, "target height (0 derives from width)")
		mode        = flag.String("mode", "pad", "resize mode: pad, stretch, crop, max, min, boxpad")
		anchor      = flag.String("anchor", "center", "content anchor: center, top, bottom, left, right, topleft, topright, bottomleft, bottomright")
		algorithm   = flag.String("algorithm", "bicubic-hq", "kernel: nearest, bilinear, bicubic, bicubic-hq, lanczos")
		backendName = flag.String("backend", "", "resize through a whole-image backend instead of the policy engine")
		linear      = flag.Bool("linear", false, "interpolate in linear light")
		noUpscale   = flag.Bool("no-upscale", false, "return the source unchanged instead of enlarging")
		maxSize     = flag.String("max-size", "", "reject results larger than WxH (0 skips an axis)")
		first       = flag.Bool("first", false, "resize only the first frame of animations")
		profilePath = flag.String("profile", "", "TOML profile with the same keys as the flags")
		list        = flag.Bool("list-backends", false, "list registered backends and exit")
		verbose     = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *list {
		names := backend.Available()
		slices.Sort(names)
		for _, name := range names {
			fmt.Println(name)
		}
		return
	}

	if *verbose {
		rescale.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	cfg := profile{
		Width:     *width,
		Height:    *height,
		Mode:      *mode,
		Anchor:    *anchor,
		Algorithm: *algorithm,
		Backend:   *backendName,
		Linear:    *linear,
		NoUpscale: *noUpscale,
		MaxSize:   *maxSize,
		First:     *first,
	}
	if *profilePath != "" {
		merged, err := mergeProfile(cfg, *profilePath, setFlags())
		if err != nil {
			log.Fatalf("Failed to load profile: %v", err)
		}
		cfg = merged
	}

	if *in == "" {
		fmt.Fprintln(os.Stderr, "rescale: -in is required")
		flag.Usage()
		os.Exit(2)
	}
	if cfg.Width <= 0 && cfg.Height <= 0 {
		log.Fatal("At least one of -width and -height must be positive")
	}

	run := runEngine
	if cfg.Backend != "" {
		run = runBackend
	}
	if err := run(cfg, *in, *out); err != nil {
		log.Fatalf("Failed to resize: %v", err)
	}
}

// setFlags returns the names of the flags given explicitly on the
// command line.
func setFlags() map[string]bool {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}

// mergeProfile decodes a TOML profile over the command-line values.
// Keys absent from the file keep the flag values; keys present in the
// file win unless the matching flag was set explicitly.
func mergeProfile(cmdline profile, path string, set map[string]bool) (profile, error) {
	cfg := cmdline
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return profile{}, err
	}

	if set["width"] {
		cfg.Width = cmdline.Width
	}
	if set["height"] {
		cfg.Height = cmdline.Height
	}
	if set["mode"] {
		cfg.Mode = cmdline.Mode
	}
	if set["anchor"] {
		cfg.Anchor = cmdline.Anchor
	}
	if set["algorithm"] {
		cfg.Algorithm = cmdline.Algorithm
	}
	if set["backend"] {
		cfg.Backend = cmdline.Backend
	}
	if set["linear"] {
		cfg.Linear = cmdline.Linear
	}
	if set["no-upscale"] {
		cfg.NoUpscale = cmdline.NoUpscale
	}
	if set["max-size"] {
		cfg.MaxSize = cmdline.MaxSize
	}
	if set["first"] {
		cfg.First = cmdline.First
	}
	return cfg, nil
}

// runEngine resizes through the policy engine, honoring mode, anchor
// and the policy guards.
func runEngine(cfg profile, in, out string) error {
	mode, err := parseMode(cfg.Mode)
	if err != nil {
		return err
	}
	anchor, err := parseAnchor(cfg.Anchor)
	if err != nil {
		return err
	}
	alg, err := parseAlgorithm(cfg.Algorithm)
	if err != nil {
		return err
	}

	opts := []rescale.LayerOption{
		rescale.WithMode(mode),
		rescale.WithAnchor(anchor),
	}
	if cfg.NoUpscale {
		opts = append(opts, rescale.WithUpscale(false))
	}
	if cfg.MaxSize != "" {
		w, h, err := parseSize(cfg.MaxSize)
		if err != nil {
			return fmt.Errorf("invalid -max-size: %w", err)
		}
		opts = append(opts, rescale.WithMaxSize(w, h))
	}

	img, err := rescale.LoadAll(in)
	if err != nil {
		return err
	}

	resizer := rescale.NewResizer(rescale.NewResizeLayer(cfg.Width, cfg.Height, opts...))
	resizer.Algorithm = alg
	if cfg.First {
		resizer.ProcessMode = rescale.ProcessFirst
	}

	result, err := resizer.ResizeImage(img, cfg.Linear)
	if err != nil {
		return err
	}
	if result == img {
		log.Printf("Policy rejected the resize; %s not written", out)
		result.Release()
		return nil
	}
	defer result.Release()

	return save(result, out)
}

// runBackend resizes through a registered whole-image backend. Mode and
// anchor do not apply: backends fill the exact target size.
func runBackend(cfg profile, in, out string) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("backend resizing needs explicit -width and -height")
	}
	scaler, err := backend.Lookup(cfg.Backend)
	if err != nil {
		return err
	}

	buf, err := rescale.Load(in)
	if err != nil {
		return err
	}

	scaled, err := scaler.Scale(buf.ToStdImage(), cfg.Width, cfg.Height)
	if err != nil {
		return err
	}

	return save(rescale.NewImage(rescale.FromStdImage(scaled)), out)
}

// save writes the image in the format implied by the file extension.
// Animations survive only into .gif; other formats take the first frame.
func save(img *rescale.Image, path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gif":
		return img.SaveGIF(path)
	case ".jpg", ".jpeg":
		return img.Frame(0).SaveJPEG(path, jpegQuality)
	default:
		return img.Frame(0).SavePNG(path)
	}
}

func parseMode(s string) (rescale.ResizeMode, error) {
	switch strings.ToLower(s) {
	case "", "pad":
		return rescale.ModePad, nil
	case "stretch":
		return rescale.ModeStretch, nil
	case "crop":
		return rescale.ModeCrop, nil
	case "max":
		return rescale.ModeMax, nil
	case "min":
		return rescale.ModeMin, nil
	case "boxpad", "box-pad":
		return rescale.ModeBoxPad, nil
	}
	return rescale.ModePad, fmt.Errorf("unknown mode %q", s)
}

func parseAnchor(s string) (rescale.Anchor, error) {
	switch strings.ToLower(s) {
	case "", "center":
		return rescale.AnchorCenter, nil
	case "top":
		return rescale.AnchorTop, nil
	case "bottom":
		return rescale.AnchorBottom, nil
	case "left":
		return rescale.AnchorLeft, nil
	case "right":
		return rescale.AnchorRight, nil
	case "topleft", "top-left":
		return rescale.AnchorTopLeft, nil
	case "topright", "top-right":
		return rescale.AnchorTopRight, nil
	case "bottomleft", "bottom-left":
		return rescale.AnchorBottomLeft, nil
	case "bottomright", "bottom-right":
		return rescale.AnchorBottomRight, nil
	}
	return rescale.AnchorCenter, fmt.Errorf("unknown anchor %q", s)
}

func parseAlgorithm(s string) (rescale.Algorithm, error) {
	switch strings.ToLower(s) {
	case "nearest":
		return rescale.NearestNeighbor, nil
	case "bilinear":
		return rescale.Bilinear, nil
	case "bicubic":
		return rescale.Bicubic, nil
	case "", "bicubic-hq", "bicubichq":
		return rescale.BicubicHighQuality, nil
	case "lanczos":
		return rescale.Lanczos, nil
	}
	return rescale.BicubicHighQuality, fmt.Errorf("unknown algorithm %q", s)
}

// parseSize parses a WxH string such as "800x600". Either dimension may
// be 0.
func parseSize(s string) (w, h int, err error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if ok {
		w, err = strconv.Atoi(strings.TrimSpace(ws))
		if err == nil {
			h, err = strconv.Atoi(strings.TrimSpace(hs))
		}
	}
	if !ok || err != nil || w < 0 || h < 0 {
		return 0, 0, fmt.Errorf("size %q is not WxH", s)
	}
	return w, h, nil
}
