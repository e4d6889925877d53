// Package bytebuf provides a growable byte store with an optional trailing
// terminator invariant for native interop.
//
// A Buffer owns a contiguous backing array and a logical length. Growth
// doubles capacity, so Append is amortized O(1). When the buffer is created
// with an always-zero terminator, every mutating call leaves exactly one zero
// byte immediately past the logical length; the terminator is never counted
// in the length.
//
// Mutations are all-or-nothing: if growth is refused by the configured
// capacity limit, the buffer is left byte-for-byte identical to its pre-call
// state. A partially written or partially terminated buffer is never
// observable.
//
// Basic usage:
//
//	b := bytebuf.New(bytebuf.WithTerminator(bytebuf.TerminatorAlwaysZero))
//	_ = b.Append([]byte("hello"))
//	rp := b.RawParts() // rp.Ptr[rp.Len] is guaranteed to be 0
//
// Buffer is not safe for concurrent use; it is designed for a single
// exclusive owner.
package bytebuf
