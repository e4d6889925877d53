package scan

// First-byte classification for UTF-8 sequences. The first nibble of each
// entry indexes acceptRanges for the second byte; the second nibble is the
// sequence length. xx marks an invalid first byte, as marks ASCII.
const (
	xx = 0xF1 // invalid: size 1
	as = 0xF0 // ASCII: size 1
	s1 = 0x02 // accept 0, size 2
	s2 = 0x13 // accept 1, size 3
	s3 = 0x03 // accept 0, size 3
	s4 = 0x23 // accept 2, size 3
	s5 = 0x34 // accept 3, size 4
	s6 = 0x04 // accept 0, size 4
	s7 = 0x44 // accept 4, size 4

	sizeMask    = 7
	acceptShift = 4

	// Default lowest and highest continuation byte.
	locb = 0x80
	hicb = 0xBF
)

var first = [256]uint8{
	//   1   2   3   4   5   6   7   8   9   A   B   C   D   E   F
	as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, // 0x00-0x0F
	as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, // 0x10-0x1F
	as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, // 0x20-0x2F
	as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, // 0x30-0x3F
	as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, // 0x40-0x4F
	as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, // 0x50-0x5F
	as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, // 0x60-0x6F
	as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, // 0x70-0x7F
	//   1   2   3   4   5   6   7   8   9   A   B   C   D   E   F
	xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, // 0x80-0x8F
	xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, // 0x90-0x9F
	xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, // 0xA0-0xAF
	xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, // 0xB0-0xBF
	xx, xx, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, // 0xC0-0xCF
	s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, // 0xD0-0xDF
	s2, s3, s3, s3, s3, s3, s3, s3, s3, s3, s3, s3, s3, s4, s3, s3, // 0xE0-0xEF
	s5, s6, s6, s6, s7, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, // 0xF0-0xFF
}

// acceptRange bounds the valid values for the second byte of a multi-byte
// sequence. Narrowed ranges reject overlong forms (0xE0, 0xF0 rows),
// surrogates (0xED row), and codepoints above U+10FFFF (0xF4 row).
type acceptRange struct {
	lo, hi uint8
}

var acceptRanges = [...]acceptRange{
	0: {locb, hicb},
	1: {0xA0, hicb},
	2: {locb, 0x9F},
	3: {0x90, hicb},
	4: {locb, 0x8F},
}

// DecodeUnit returns the width of the maximal valid UTF-8 sequence at the
// start of b, or 0 when no valid decode exists there. Sequences truncated by
// the end of b are rejected.
func DecodeUnit(b []byte) int {
	if len(b) == 0 {
		return 0
	}
	x := first[b[0]]
	if x == as {
		return 1
	}
	if x == xx {
		return 0
	}
	size := int(x & sizeMask)
	if len(b) < size {
		return 0
	}
	ar := acceptRanges[x>>acceptShift]
	if c := b[1]; c < ar.lo || c > ar.hi {
		return 0
	}
	if size == 2 {
		return 2
	}
	if c := b[2]; c < locb || c > hicb {
		return 0
	}
	if size == 3 {
		return 3
	}
	if c := b[3]; c < locb || c > hicb {
		return 0
	}
	return 4
}
