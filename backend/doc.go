// Package backend provides pluggable whole-image scalers behind the
// rescale.Scaler interface.
//
// The engine's own kernels and several third-party resize libraries sit
// behind one registry so callers can compare them, benchmark them, or
// pick a specific library's look without changing call sites.
//
// # Backend Registration
//
// Backends register themselves via init() functions and are selected at
// runtime. Importing a backend package for its side effect makes it
// available:
//
//	import (
//		_ "github.com/gogpu/rescale/backend/native"
//		_ "github.com/gogpu/rescale/backend/nfnt"
//	)
//
// # Backend Selection
//
// Use Default() to get the best available scaler, or Get() to request a
// specific backend by name:
//
//	// The default (the engine's own kernels when registered)
//	s := backend.Default()
//
//	// Or a specific library
//	s := backend.Get("imaging")
//
// Lookup() is the error-returning variant for callers resolving
// user-supplied names:
//
//	s, err := backend.Lookup(name)
//	if err != nil {
//		log.Fatal(err)
//	}
//	out, err := s.Scale(img, 800, 600)
//
// # Available Backends
//
//   - "native": this engine's kernels (nearest through Lanczos)
//   - "xdraw": golang.org/x/image/draw interpolators
//   - "imaging": github.com/disintegration/imaging (Lanczos)
//   - "gift": github.com/disintegration/gift (parallel Lanczos)
//   - "bild": github.com/anthonynsimon/bild (Lanczos)
//   - "nfnt": github.com/nfnt/resize (Lanczos3)
package backend
