// Package pool provides a reusable byte buffer for the bit-stream writer.
//
// bitio.Writer appends bit-widened integers one field at a time while
// encoding a record, so the buffer churn looks like "many small structs
// encoded back to back" rather than "one huge blob" — the amortized growth
// strategy below is sized for that shape (packet/record buffers, typically
// well under a kilobyte) rather than for bulk time-series payloads.
package pool

import "sync"

// Default and max-retained sizes for pooled buffers. A derived struct or
// enum rarely exceeds a few hundred bytes once encoded, so the default is
// small; the threshold exists purely to stop one outsized flexible-array
// field from permanently bloating the pool.
const (
	DefaultSize   = 256
	MaxThreshold  = 64 * 1024
	growThreshold = 4 * DefaultSize
)

// Buffer is a growable byte slice used by bitio.Writer to accumulate the
// encoded form of a value before it is returned to the caller.
type Buffer struct {
	B []byte
}

// NewBuffer creates a Buffer with the given starting capacity.
func NewBuffer(defaultSize int) *Buffer {
	return &Buffer{B: make([]byte, 0, defaultSize)}
}

// Bytes returns the underlying byte slice.
func (b *Buffer) Bytes() []byte { return b.B }

// Len returns the number of bytes currently held.
func (b *Buffer) Len() int { return len(b.B) }

// Cap returns the buffer's capacity.
func (b *Buffer) Cap() int { return cap(b.B) }

// Reset empties the buffer while retaining its backing array.
func (b *Buffer) Reset() { b.B = b.B[:0] }

// Slice returns b.B[start:end]; it panics on out-of-range indices since
// callers are expected to have grown the buffer first.
func (b *Buffer) Slice(start, end int) []byte {
	if start < 0 || end < start || end > cap(b.B) {
		panic("pool: Slice: invalid indices")
	}

	return b.B[start:end]
}

// SetLength sets len(b.B) to n without reallocating.
func (b *Buffer) SetLength(n int) {
	if n < 0 || n > cap(b.B) {
		panic("pool: SetLength: invalid length")
	}
	b.B = b.B[:n]
}

// Extend grows len(b.B) by n bytes if capacity allows, reporting whether it
// could without reallocating.
func (b *Buffer) Extend(n int) bool {
	cur := len(b.B)
	if cap(b.B)-cur < n {
		return false
	}
	b.B = b.B[:cur+n]

	return true
}

// ExtendOrGrow extends the buffer by n bytes, growing the backing array
// first if necessary.
func (b *Buffer) ExtendOrGrow(n int) {
	if b.Extend(n) {
		return
	}
	start := len(b.B)
	b.Grow(n)
	b.B = b.B[:start+n]
}

// Grow ensures the buffer can hold at least n more bytes without
// reallocating. Small buffers grow by a fixed increment; once a buffer has
// grown past growThreshold it grows by 25% of its current capacity instead,
// trading a few extra reallocations early on for fewer large copies later.
func (b *Buffer) Grow(n int) {
	available := cap(b.B) - len(b.B)
	if available >= n {
		return
	}

	growBy := DefaultSize
	if cap(b.B) > growThreshold {
		growBy = cap(b.B) / 4
	}
	if growBy < n {
		growBy = n
	}

	next := make([]byte, len(b.B), len(b.B)+growBy)
	copy(next, b.B)
	b.B = next
}

// Write implements io.Writer.
func (b *Buffer) Write(data []byte) (int, error) {
	b.B = append(b.B, data...)

	return len(data), nil
}

// Pool recycles Buffers via sync.Pool, discarding any that grew past
// maxThreshold to avoid pinning a single oversized allocation forever.
type Pool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewPool creates a Pool whose buffers start at defaultSize and are
// discarded, rather than recycled, once they exceed maxThreshold.
func NewPool(defaultSize, maxThreshold int) *Pool {
	return &Pool{
		pool: sync.Pool{
			New: func() any { return NewBuffer(defaultSize) },
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a Buffer from the pool.
func (p *Pool) Get() *Buffer {
	buf, _ := p.pool.Get().(*Buffer)

	return buf
}

// Put returns buf to the pool for reuse, discarding it instead if it grew
// too large.
func (p *Pool) Put(buf *Buffer) {
	if buf == nil {
		return
	}
	if p.maxThreshold > 0 && cap(buf.B) > p.maxThreshold {
		return
	}
	buf.Reset()
	p.pool.Put(buf)
}

var defaultPool = NewPool(DefaultSize, MaxThreshold)

// Get retrieves a Buffer from the package-level default pool.
func Get() *Buffer { return defaultPool.Get() }

// Put returns buf to the package-level default pool.
func Put(buf *Buffer) { defaultPool.Put(buf) }
