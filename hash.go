package strand

import "hash/fnv"

// Hash returns a hash over the content bytes plus a compatibility-class
// discriminant, never the literal encoding tag, so that any two values that
// compare Equal hash identically. Pure-ASCII content under any
// ASCII-compatible encoding shares one class; the remaining classes split on
// ASCII compatibility alone. Finer splitting is unnecessary: Equal already
// requires identical tags once content is not pure ASCII, and collisions
// between never-equal values are harmless.
func (s *String) Hash() uint64 {
	h := fnv.New64a()
	h.Write(s.buf.Bytes())
	h.Write([]byte{s.hashDiscriminant()})
	return h.Sum64()
}

func (s *String) hashDiscriminant() byte {
	if !s.enc.ASCIICompatible() {
		return 2
	}
	if s.isPureASCII() {
		return 0
	}
	return 1
}
