package bytebuf

// Option is a functional option for configuring a Buffer.
type Option func(*Buffer)

// WithTerminator sets the buffer's terminator mode.
func WithTerminator(mode TerminatorMode) Option {
	return func(b *Buffer) {
		b.term = mode
	}
}

// WithCapacity pre-allocates space for n logical bytes, plus the terminator
// slot when one is configured.
func WithCapacity(n int) Option {
	return func(b *Buffer) {
		if n > 0 {
			b.initCap = n
		}
	}
}

// WithMaxCapacity caps the backing array at n bytes. Growth past the cap
// fails with ErrAllocation instead of allocating. Zero means unlimited.
func WithMaxCapacity(n int) Option {
	return func(b *Buffer) {
		if n > 0 {
			b.maxCap = n
		}
	}
}
