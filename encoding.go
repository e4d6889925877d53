package strand

// Encoding tags the interpretation of a String's bytes. The set is closed:
// embedder-defined encodings are out of scope, so compatibility is a small
// predicate over tags rather than open-ended polymorphism.
type Encoding uint8

const (
	// UTF8 is variable-width, ASCII-compatible encoded text.
	UTF8 Encoding = iota

	// ASCII is 7-bit text; any byte at or above 0x80 is invalid.
	ASCII

	// Binary is raw bytes; every sequence is valid and one byte is one
	// character. Bytes below 0x80 still read as ASCII.
	Binary

	// Other is a stand-in for encodings whose byte values below 0x80 do not
	// map to ASCII. Content is addressed byte-wise and no text-level
	// operations are available.
	Other
)

// String returns the encoding name.
func (e Encoding) String() string {
	switch e {
	case UTF8:
		return "UTF-8"
	case ASCII:
		return "US-ASCII"
	case Binary:
		return "BINARY"
	case Other:
		return "OTHER"
	default:
		return "UNKNOWN"
	}
}

// ASCIICompatible reports whether byte values 0x00-0x7F map one-to-one to
// ASCII characters under this encoding.
func (e Encoding) ASCIICompatible() bool {
	switch e {
	case UTF8, ASCII, Binary:
		return true
	default:
		return false
	}
}

// FixedWidth returns the character width in bytes for fixed-width encodings.
// ok is false for variable-width or unknown-width encodings.
func (e Encoding) FixedWidth() (width int, ok bool) {
	switch e {
	case ASCII, Binary:
		return 1, true
	default:
		return 0, false
	}
}

// compatible reports whether two tagged byte sequences can be compared or
// combined: the tags are equal, or both are ASCII-compatible and both
// contents are pure ASCII.
func compatible(a, b Encoding, aASCII, bASCII func() bool) bool {
	if a == b {
		return true
	}
	if !a.ASCIICompatible() || !b.ASCIICompatible() {
		return false
	}
	return aASCII() && bASCII()
}
