package parallel

import (
	"runtime"
	"sync"
)

// RowRange is a half-open band of destination rows [Y0, Y1).
//
// Kernels process whole bands independently: every destination pixel is
// written by exactly one band, so bands can run on any worker in any
// order without synchronization.
type RowRange struct {
	Y0 int
	Y1 int
}

// Len returns the number of rows in the range.
func (r RowRange) Len() int {
	return r.Y1 - r.Y0
}

// Contains reports whether row y falls inside the range.
func (r RowRange) Contains(y int) bool {
	return y >= r.Y0 && y < r.Y1
}

// SplitRows divides the half-open row interval [y0, y1) into at most
// parts contiguous, disjoint ranges that together cover it exactly.
// Earlier ranges are one row longer when the interval does not divide
// evenly. Returns nil for an empty interval.
func SplitRows(y0, y1, parts int) []RowRange {
	n := y1 - y0
	if n <= 0 {
		return nil
	}
	if parts <= 0 {
		parts = 1
	}
	if parts > n {
		parts = n
	}

	ranges := make([]RowRange, 0, parts)
	base := n / parts
	rem := n % parts

	start := y0
	for i := 0; i < parts; i++ {
		size := base
		if i < rem {
			size++
		}
		ranges = append(ranges, RowRange{Y0: start, Y1: start + size})
		start += size
	}
	return ranges
}

var (
	defaultPool     *WorkerPool
	defaultPoolOnce sync.Once
)

// Default returns the shared process-wide worker pool, creating it with
// GOMAXPROCS workers on first use. The default pool is never closed.
func Default() *WorkerPool {
	defaultPoolOnce.Do(func() {
		defaultPool = NewWorkerPool(runtime.GOMAXPROCS(0))
	})
	return defaultPool
}
