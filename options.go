package strand

import "github.com/dshills/strand/internal/bytebuf"

// Option is a functional option for configuring a String's storage.
type Option func(*options)

type options struct {
	bufOpts []bytebuf.Option
}

// WithCapacity pre-allocates storage for n bytes of content.
func WithCapacity(n int) Option {
	return func(o *options) {
		o.bufOpts = append(o.bufOpts, bytebuf.WithCapacity(n))
	}
}

// WithMaxCapacity caps storage at n bytes; growth past the cap fails with
// ErrAllocation. Zero means unlimited.
func WithMaxCapacity(n int) Option {
	return func(o *options) {
		o.bufOpts = append(o.bufOpts, bytebuf.WithMaxCapacity(n))
	}
}

// WithZeroTerminator keeps exactly one zero byte immediately past the logical
// length after every mutation, for native interop through RawParts.
func WithZeroTerminator() Option {
	return func(o *options) {
		o.bufOpts = append(o.bufOpts, bytebuf.WithTerminator(bytebuf.TerminatorAlwaysZero))
	}
}
