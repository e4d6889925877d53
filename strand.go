package strand

import (
	"bytes"
	"unsafe"

	"github.com/dshills/strand/internal/bytebuf"
	"github.com/dshills/strand/internal/casefold"
	"github.com/dshills/strand/internal/scan"
)

// validity is the cached result of scanning the content against the tagged
// encoding's rules.
type validity uint8

const (
	validityUnknown validity = iota
	validityValid
	validityInvalid
)

// FoldMode selects the scope of case folding for Fold and EqualIgnoringCase.
type FoldMode uint8

const (
	// FoldASCII folds only the bytes A-Z and is safe on arbitrary content.
	FoldASCII FoldMode = iota

	// FoldUnicodeSimple folds codepoint by codepoint, preserving count.
	FoldUnicodeSimple

	// FoldUnicodeFull applies full Unicode case folding; one codepoint may
	// expand into several.
	FoldUnicodeFull
)

// RawParts is a pointer/length/capacity view of a String's storage for native
// interop. With WithZeroTerminator the byte at Ptr[Len] is guaranteed to be
// zero before and after every mutating call, though not during one. The view is
// invalidated by the next mutation.
type RawParts struct {
	Ptr *byte
	Len int
	Cap int
}

// String is a mutable, encoding-aware byte string. It exclusively owns its
// storage and is intended for a single exclusive owner; there is no internal
// locking. The validity, character-length, and offset-table caches are
// computed lazily and invalidated by every structural mutation and encoding
// reassignment.
type String struct {
	buf *bytebuf.Buffer
	enc Encoding

	valid        validity
	firstInvalid int
	charLen      int // negative means not yet computed
	idx          *charIndex
}

// New creates a String holding a copy of b tagged with the given encoding.
// It fails with ErrAllocation when b does not fit under a configured
// capacity limit.
func New(b []byte, enc Encoding, opts ...Option) (*String, error) {
	s := Empty(enc, opts...)
	if len(b) > 0 {
		if err := s.buf.Append(b); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Empty creates an empty String tagged with the given encoding.
func Empty(enc Encoding, opts ...Option) *String {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return &String{
		buf:          bytebuf.New(o.bufOpts...),
		enc:          enc,
		firstInvalid: -1,
		charLen:      -1,
	}
}

// Encoding returns the current encoding tag.
func (s *String) Encoding() Encoding { return s.enc }

// ByteLen returns the content length in bytes. A configured terminator is
// never counted.
func (s *String) ByteLen() int { return s.buf.Len() }

// Bytes returns a borrowed view of the raw content. The view is read-only by
// convention and is invalidated by the next mutating call. It is the handoff
// point for external collaborators such as inspect formatters and numeric
// parsers; this engine never formats or parses its own content.
func (s *String) Bytes() []byte { return s.buf.Bytes() }

// RawParts returns the pointer/length/capacity triple of the storage.
func (s *String) RawParts() RawParts {
	rp := s.buf.RawParts()
	return RawParts{Ptr: rp.Ptr, Len: rp.Len, Cap: rp.Cap}
}

// IsValidEncoding reports whether the content is valid under the tagged
// encoding. The scan runs once and is cached until the next mutation.
func (s *String) IsValidEncoding() bool {
	s.ensureValidity()
	return s.valid == validityValid
}

// InvalidByteOffset returns the offset of the first byte that fails the
// encoding's rules. ok is false when the content is valid.
func (s *String) InvalidByteOffset() (off int, ok bool) {
	s.ensureValidity()
	if s.valid == validityValid {
		return 0, false
	}
	return s.firstInvalid, true
}

// CharLen returns the content length in characters under the byte-salvage
// walk. It is defined for any content: for Binary it equals ByteLen, and for
// invalid content each undecodable byte counts once. Computed lazily and
// cached.
func (s *String) CharLen() int {
	s.ensureCharLen()
	return s.charLen
}

// Text returns a borrowed text view of the content. It fails with
// ErrEncoding unless the content is valid and tagged UTF8 or ASCII. The view
// shares storage with the String and is invalidated by the next mutation.
func (s *String) Text() (string, error) {
	if s.enc != UTF8 && s.enc != ASCII {
		return "", ErrEncoding
	}
	if !s.IsValidEncoding() {
		return "", ErrEncoding
	}
	b := s.buf.Bytes()
	if len(b) == 0 {
		return "", nil
	}
	return unsafe.String(unsafe.SliceData(b), len(b)), nil
}

// Mutations

// Append appends raw bytes, keeping the current encoding tag.
func (s *String) Append(p []byte) error {
	if err := s.buf.Append(p); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

// Concat appends another String's bytes, keeping the receiver's encoding.
// other may be the receiver itself, doubling the content.
func (s *String) Concat(other *String) error {
	return s.Append(other.Bytes())
}

// InsertAt inserts p before the character at index. Negative indices count
// from the end; index may equal CharLen to append. p may be a subslice of
// the receiver's own Bytes view.
func (s *String) InsertAt(index int, p []byte) error {
	i, err := s.resolveChar(index, true)
	if err != nil {
		return err
	}
	off := s.idx.byteStart(i)
	if err := s.buf.Replace(off, off, p); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

// DeleteRange removes count characters starting at index.
func (s *String) DeleteRange(index, count int) error {
	return s.ReplaceRange(index, count, nil)
}

// ReplaceRange replaces count characters starting at index with p. Indices
// are character offsets; on invalid content they address whole salvage units.
// p may be a subslice of the receiver's own Bytes view.
func (s *String) ReplaceRange(index, count int, p []byte) error {
	start, end, err := s.charRange(index, count)
	if err != nil {
		return err
	}
	if err := s.buf.Replace(start, end, p); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

// SetEncoding retags the content without touching bytes. All caches are
// invalidated; validity is recomputed under the new encoding on next use.
func (s *String) SetEncoding(enc Encoding) {
	s.enc = enc
	s.invalidate()
}

// Reserve ensures capacity for at least additional bytes beyond the current
// length. Content and caches are unchanged.
func (s *String) Reserve(additional int) error {
	return s.buf.Reserve(additional)
}

// Truncate shortens the content to n bytes. This is a raw byte-space resize
// for interop; it may cut a multi-byte character in half, which the next
// validity scan will report.
func (s *String) Truncate(n int) error {
	if err := s.buf.Truncate(n); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

// Slice returns a new String holding a copy of count characters starting at
// index, tagged with the receiver's encoding. The receiver's terminator mode
// is propagated.
func (s *String) Slice(index, count int) (*String, error) {
	start, end, err := s.charRange(index, count)
	if err != nil {
		return nil, err
	}
	out := &String{
		buf:          bytebuf.New(bytebuf.WithTerminator(s.buf.Terminator()), bytebuf.WithCapacity(end-start)),
		enc:          s.enc,
		firstInvalid: -1,
		charLen:      -1,
	}
	if err := out.buf.Append(s.buf.Bytes()[start:end]); err != nil {
		return nil, err
	}
	return out, nil
}

// Comparisons

// Equal reports whether the two values hold identical bytes under compatible
// encodings. Values with identical bytes but incompatible encodings are not
// equal.
func (s *String) Equal(other *String) bool {
	if !bytes.Equal(s.buf.Bytes(), other.buf.Bytes()) {
		return false
	}
	return s.CompatibleWith(other)
}

// CompatibleWith reports whether the two values' encodings are compatible:
// equal tags, or both ASCII-compatible with both contents pure ASCII.
func (s *String) CompatibleWith(other *String) bool {
	return compatible(s.enc, other.enc, s.isPureASCII, other.isPureASCII)
}

// Compare returns a lexicographic byte-wise ordering: -1, 0, or 1.
func (s *String) Compare(other *String) int {
	return bytes.Compare(s.buf.Bytes(), other.buf.Bytes())
}

// Index returns the character index of the first occurrence of needle at or
// after character from. Negative from counts from the end; from may equal
// CharLen, where only an empty needle matches. Matches align to character
// units, so a byte-level match interior to a unit is skipped. ok is false
// when needle does not occur at or after from, or from is out of range.
func (s *String) Index(needle []byte, from int) (index int, ok bool) {
	i, err := s.resolveChar(from, true)
	if err != nil {
		return 0, false
	}
	if len(needle) == 0 {
		return i, true
	}
	b := s.buf.Bytes()
	for off := s.idx.byteStart(i); off+len(needle) <= len(b); {
		j := bytes.Index(b[off:], needle)
		if j < 0 {
			break
		}
		pos := off + j
		c := s.idx.charAt(pos)
		if s.idx.byteStart(c) == pos {
			return c, true
		}
		off = pos + 1
	}
	return 0, false
}

// Case folding

// Fold returns a case-folded copy of the content. FoldASCII is always
// available. The Unicode modes fail with ErrIncompatibleEncoding unless the
// encoding is ASCII-compatible and the content valid; they are never
// approximated on content that cannot support them.
func (s *String) Fold(mode FoldMode) ([]byte, error) {
	b := s.buf.Bytes()
	if mode == FoldASCII {
		return casefold.Fold(b, casefold.ASCII), nil
	}
	if !s.enc.ASCIICompatible() || !s.IsValidEncoding() {
		return nil, ErrIncompatibleEncoding
	}
	if s.enc == Binary {
		// Binary characters are single bytes; only the ASCII letters among
		// them carry case.
		return casefold.Fold(b, casefold.ASCII), nil
	}
	return casefold.Fold(b, foldMode(mode)), nil
}

// EqualIgnoringCase compares two values ignoring case under the given mode.
// ok is false when the pair is incomparable, which is distinguishable from an
// unequal result. The gate is pairwise: the operands' encodings must be
// compatible under the same predicate Equal uses, and must carry an ASCII
// mapping. The Unicode modes additionally require both contents valid;
// FoldASCII runs on any compatible pair, including invalid content.
func (s *String) EqualIgnoringCase(other *String, mode FoldMode) (equal, ok bool) {
	if !s.CompatibleWith(other) {
		return false, false
	}
	if !s.enc.ASCIICompatible() || !other.enc.ASCIICompatible() {
		return false, false
	}
	if mode == FoldASCII {
		return casefold.Equal(s.buf.Bytes(), other.buf.Bytes(), casefold.ASCII), true
	}
	if !s.IsValidEncoding() || !other.IsValidEncoding() {
		return false, false
	}
	fa, err := s.Fold(mode)
	if err != nil {
		return false, false
	}
	fb, err := other.Fold(mode)
	if err != nil {
		return false, false
	}
	return bytes.Equal(fa, fb), true
}

func foldMode(mode FoldMode) casefold.Mode {
	switch mode {
	case FoldUnicodeFull:
		return casefold.UnicodeFull
	case FoldUnicodeSimple:
		return casefold.UnicodeSimple
	default:
		return casefold.ASCII
	}
}

// Cache maintenance

// invalidate drops every content-derived cache. Called after each successful
// structural mutation and on encoding reassignment; a failed mutation leaves
// both bytes and caches untouched.
func (s *String) invalidate() {
	s.valid = validityUnknown
	s.firstInvalid = -1
	s.charLen = -1
	s.idx = nil
}

func (s *String) ensureValidity() {
	if s.valid != validityUnknown {
		return
	}
	b := s.buf.Bytes()
	switch s.enc {
	case UTF8:
		res := scan.UTF8(b)
		if res.Valid {
			s.valid = validityValid
			s.firstInvalid = -1
		} else {
			s.valid = validityInvalid
			s.firstInvalid = res.FirstInvalid
		}
	case ASCII:
		if i := scan.FirstNonASCII(b); i < 0 {
			s.valid = validityValid
			s.firstInvalid = -1
		} else {
			s.valid = validityInvalid
			s.firstInvalid = i
		}
	default:
		// Binary and Other content has no rules to violate.
		s.valid = validityValid
		s.firstInvalid = -1
	}
}

func (s *String) ensureCharLen() {
	if s.charLen >= 0 {
		return
	}
	if s.enc == UTF8 {
		s.charLen = scan.CountUTF8(s.buf.Bytes())
		return
	}
	// Every non-UTF8 encoding here addresses content one byte per character,
	// whether from a fixed width or from salvaging invalid bytes.
	s.charLen = s.buf.Len()
}

func (s *String) isPureASCII() bool {
	return scan.PureASCII(s.buf.Bytes())
}
