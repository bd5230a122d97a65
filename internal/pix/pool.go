package pix

import "sync"

// Pool is a thread-safe pool for reusing Buffer instances.
//
// Pool groups buffers by their dimensions and format, allowing efficient
// reuse of identically-sized buffers. Resize pipelines churn through
// full-frame buffers, so recycling them keeps GC pressure flat.
//
// Thread safety: All methods are safe for concurrent use.
type Pool struct {
	mu      sync.Mutex
	buckets map[poolKey][]*Buffer
	maxSize int // max buffers per bucket
}

// poolKey identifies a bucket of identical buffer specifications.
type poolKey struct {
	width  int
	height int
	format Format
}

// NewPool creates a new buffer pool with the given maximum buffers per
// bucket. A maxPerBucket of 0 means unlimited (use with caution).
func NewPool(maxPerBucket int) *Pool {
	return &Pool{
		buckets: make(map[poolKey][]*Buffer),
		maxSize: maxPerBucket,
	}
}

// Get retrieves a buffer from the pool or creates a new one.
// Reused buffers are cleared to transparent black and reset to the
// default DPI, indistinguishable from a fresh allocation.
// Returns nil for invalid dimensions or format.
func (p *Pool) Get(width, height int, format Format) *Buffer {
	key := poolKey{width: width, height: height, format: format}

	p.mu.Lock()
	bucket := p.buckets[key]
	if len(bucket) > 0 {
		buf := bucket[len(bucket)-1]
		p.buckets[key] = bucket[:len(bucket)-1]
		p.mu.Unlock()

		buf.Clear()
		buf.SetDPI(DefaultDPI, DefaultDPI)
		return buf
	}
	p.mu.Unlock()

	buf, err := NewBuffer(width, height, format)
	if err != nil {
		return nil
	}
	return buf
}

// Put returns a buffer to the pool for reuse.
// If buf is nil or the pool bucket is at capacity, the buffer is
// discarded and left to the GC. Views returned by SubImage alias their
// parent's data and are never pooled: a later Get would clear the
// parent's pixels through them.
func (p *Pool) Put(buf *Buffer) {
	if buf == nil || buf.view {
		return
	}

	key := poolKey{
		width:  buf.width,
		height: buf.height,
		format: buf.format,
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	bucket := p.buckets[key]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		return
	}

	p.buckets[key] = append(bucket, buf)
}

// defaultPool is the package-level pool for convenient usage.
var defaultPool = NewPool(8)

// GetBuffer retrieves a buffer from the default pool.
func GetBuffer(width, height int, format Format) *Buffer {
	return defaultPool.Get(width, height, format)
}

// PutBuffer returns a buffer to the default pool.
func PutBuffer(buf *Buffer) {
	defaultPool.Put(buf)
}
