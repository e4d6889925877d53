package strand

import (
	"sort"

	"github.com/dshills/strand/internal/scan"
)

// charIndex maps between character offsets and byte offsets. The character
// index space is defined by the byte-salvage walk, so on invalid content the
// indices address salvage units rather than raw bytes and stay consistent
// with CharLen.
type charIndex struct {
	starts  []int // unit start offsets; nil when every unit is one byte wide
	chars   int
	byteLen int
}

func (s *String) ensureIndex() {
	if s.idx != nil {
		return
	}
	b := s.buf.Bytes()
	idx := &charIndex{byteLen: len(b)}
	if s.enc == UTF8 {
		idx.starts = scan.WalkUTF8(b)
		idx.chars = len(idx.starts)
	} else {
		idx.chars = len(b)
	}
	s.idx = idx
	if s.charLen < 0 {
		s.charLen = idx.chars
	}
}

// byteStart returns the byte offset where character char begins. char may
// equal the character count, in which case the total byte length is returned.
func (ci *charIndex) byteStart(char int) int {
	if ci.starts == nil {
		return char
	}
	if char >= len(ci.starts) {
		return ci.byteLen
	}
	return ci.starts[char]
}

// charAt returns the index of the character unit containing byte offset off.
// Offsets interior to a multi-byte or salvage unit round down to the unit's
// start; off equal to the byte length maps to the character count.
func (ci *charIndex) charAt(off int) int {
	if ci.starts == nil {
		if off > ci.byteLen {
			return ci.chars
		}
		return off
	}
	if off >= ci.byteLen {
		return ci.chars
	}
	// Greatest i with starts[i] <= off.
	return sort.SearchInts(ci.starts, off+1) - 1
}

// resolveChar normalizes a possibly negative character index against CharLen.
// The one-past-the-end position is permitted only when allowEnd is set.
func (s *String) resolveChar(index int, allowEnd bool) (int, error) {
	s.ensureIndex()
	n := s.idx.chars
	if index < 0 {
		index += n
	}
	if index < 0 || index > n || (index == n && !allowEnd) {
		return 0, ErrIndexOutOfRange
	}
	return index, nil
}

// charRange resolves a character index and count into a byte range over the
// salvage units.
func (s *String) charRange(index, count int) (start, end int, err error) {
	if count < 0 {
		return 0, 0, ErrIndexOutOfRange
	}
	i, err := s.resolveChar(index, count == 0)
	if err != nil {
		return 0, 0, err
	}
	if i+count > s.idx.chars {
		return 0, 0, ErrIndexOutOfRange
	}
	return s.idx.byteStart(i), s.idx.byteStart(i + count), nil
}

// ByteOffsetOfChar returns the byte offset where the given character begins.
// Negative indices count from the end; index may equal CharLen, mapping to
// ByteLen.
func (s *String) ByteOffsetOfChar(index int) (int, error) {
	i, err := s.resolveChar(index, true)
	if err != nil {
		return 0, err
	}
	return s.idx.byteStart(i), nil
}

// CharIndexOfByte returns the index of the character containing the given
// byte offset. Offsets interior to a character round down to its start;
// off equal to ByteLen maps to CharLen.
func (s *String) CharIndexOfByte(off int) (int, error) {
	if off < 0 || off > s.buf.Len() {
		return 0, ErrIndexOutOfRange
	}
	s.ensureIndex()
	return s.idx.charAt(off), nil
}
