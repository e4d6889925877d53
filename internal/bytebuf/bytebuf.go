package bytebuf

import (
	"errors"
	"unsafe"
)

// Errors returned by buffer operations.
var (
	ErrAllocation = errors.New("buffer growth exceeds capacity limit")
	ErrOutOfRange = errors.New("range out of bounds")
)

// minCapacity is the smallest backing array allocated on first growth.
const minCapacity = 8

// TerminatorMode controls whether the buffer maintains a trailing zero byte.
type TerminatorMode uint8

const (
	// TerminatorNone leaves bytes past the logical length unspecified.
	TerminatorNone TerminatorMode = iota

	// TerminatorAlwaysZero keeps exactly one zero byte immediately past the
	// logical length after every mutating call.
	TerminatorAlwaysZero
)

// RawParts is a pointer/length/capacity view of the backing array, for
// handing the buffer to native code. With TerminatorAlwaysZero the byte at
// Ptr[Len] is guaranteed to be zero. The view is invalidated by the next
// mutating call.
type RawParts struct {
	Ptr *byte
	Len int
	Cap int
}

// Buffer is a growable byte store with a logical length that may be shorter
// than its backing array. Not safe for concurrent use.
type Buffer struct {
	store   []byte // backing array; len(store) is the capacity
	n       int    // logical length
	term    TerminatorMode
	maxCap  int // 0 means unlimited
	initCap int // requested logical capacity, consumed by New
}

// New creates a buffer. With TerminatorAlwaysZero the backing array is
// allocated immediately so RawParts always points at a terminated region.
func New(opts ...Option) *Buffer {
	b := &Buffer{}
	for _, opt := range opts {
		opt(b)
	}

	size := b.need(b.initCap)
	if b.term == TerminatorAlwaysZero && size < 1 {
		size = 1
	}
	if size > 0 {
		if size < minCapacity {
			size = minCapacity
		}
		if b.maxCap > 0 && size > b.maxCap {
			size = b.maxCap
		}
		if b.term == TerminatorAlwaysZero && size < 1 {
			size = 1
		}
		b.store = make([]byte, size)
	}
	return b
}

// Len returns the logical length in bytes. The terminator, when present, is
// never counted.
func (b *Buffer) Len() int { return b.n }

// Cap returns the capacity of the backing array.
func (b *Buffer) Cap() int { return len(b.store) }

// Terminator returns the buffer's terminator mode.
func (b *Buffer) Terminator() TerminatorMode { return b.term }

// Bytes returns a borrowed view of the logical content. The view is
// read-only by convention and is invalidated by the next mutating call.
func (b *Buffer) Bytes() []byte {
	return b.store[:b.n:b.n]
}

// RawParts returns the pointer/length/capacity triple for native interop.
func (b *Buffer) RawParts() RawParts {
	return RawParts{
		Ptr: unsafe.SliceData(b.store),
		Len: b.n,
		Cap: len(b.store),
	}
}

// overlaps reports whether p shares memory with the backing array.
func (b *Buffer) overlaps(p []byte) bool {
	if len(p) == 0 || len(b.store) == 0 {
		return false
	}
	lo := uintptr(unsafe.Pointer(unsafe.SliceData(b.store)))
	q := uintptr(unsafe.Pointer(unsafe.SliceData(p)))
	return q >= lo && q < lo+uintptr(len(b.store))
}

// Reserve ensures capacity for at least additional bytes beyond the current
// length without further growth. Content is unchanged.
func (b *Buffer) Reserve(additional int) error {
	if additional < 0 {
		return ErrOutOfRange
	}
	need := b.need(b.n + additional)
	if need <= len(b.store) {
		return nil
	}
	ns, err := b.alloc(need)
	if err != nil {
		return err
	}
	copy(ns, b.store[:b.n])
	b.store = ns
	b.terminate()
	return nil
}

// Append appends p to the end of the buffer. p may alias the buffer's own
// storage: the destination region starts past the logical length, and the
// grow path reads from the old array after relocating.
func (b *Buffer) Append(p []byte) error {
	if need := b.need(b.n + len(p)); need > len(b.store) {
		ns, err := b.alloc(need)
		if err != nil {
			return err
		}
		copy(ns, b.store[:b.n])
		b.store = ns
	}
	copy(b.store[b.n:], p)
	b.n += len(p)
	b.terminate()
	return nil
}

// Replace replaces the byte range [start, end) with p, shifting the tail as
// needed. Replace(n, n, p) inserts at n; an empty p deletes the range. p may
// alias the buffer's own storage: an aliasing p is staged through a copy
// before the tail moves.
func (b *Buffer) Replace(start, end int, p []byte) error {
	if start < 0 || end < start || end > b.n {
		return ErrOutOfRange
	}
	if b.overlaps(p) {
		p = append([]byte(nil), p...)
	}

	newLen := b.n - (end - start) + len(p)
	if need := b.need(newLen); need > len(b.store) {
		// Splice into a fresh backing array. Nothing is written to the old
		// store, so a refused allocation leaves the buffer untouched.
		ns, err := b.alloc(need)
		if err != nil {
			return err
		}
		copy(ns, b.store[:start])
		copy(ns[start:], p)
		copy(ns[start+len(p):], b.store[end:b.n])
		b.store = ns
	} else {
		copy(b.store[start+len(p):newLen], b.store[end:b.n])
		copy(b.store[start:], p)
	}

	b.n = newLen
	b.terminate()
	return nil
}

// Truncate shortens the logical length to n. Capacity is retained.
func (b *Buffer) Truncate(n int) error {
	if n < 0 || n > b.n {
		return ErrOutOfRange
	}
	b.n = n
	b.terminate()
	return nil
}

// need returns the backing array size required for a logical length of n,
// accounting for the terminator slot.
func (b *Buffer) need(n int) int {
	if b.term == TerminatorAlwaysZero {
		return n + 1
	}
	return n
}

// alloc returns a new backing array of at least need bytes, doubling the
// current capacity where possible. It fails with ErrAllocation when the
// configured capacity limit would be exceeded.
func (b *Buffer) alloc(need int) ([]byte, error) {
	if b.maxCap > 0 && need > b.maxCap {
		return nil, ErrAllocation
	}
	newCap := len(b.store) * 2
	if newCap < need {
		newCap = need
	}
	if newCap < minCapacity {
		newCap = minCapacity
	}
	if b.maxCap > 0 && newCap > b.maxCap {
		newCap = b.maxCap
	}
	return make([]byte, newCap), nil
}

func (b *Buffer) terminate() {
	if b.term == TerminatorAlwaysZero {
		b.store[b.n] = 0
	}
}
