package scan

import "encoding/binary"

// Result reports whether a byte sequence is valid under UTF-8 rules.
// FirstInvalid is the offset of the first failing byte, or -1 when valid.
type Result struct {
	Valid        bool
	FirstInvalid int
}

// asciiMask has the high bit of every byte set; a zero AND against eight
// packed bytes proves the run is pure ASCII.
const asciiMask = 0x8080808080808080

// asciiRun returns the length of the pure-ASCII prefix of b, consuming eight
// bytes at a time before falling back to single bytes.
func asciiRun(b []byte) int {
	i := 0
	for len(b)-i >= 8 {
		if binary.LittleEndian.Uint64(b[i:])&asciiMask != 0 {
			break
		}
		i += 8
	}
	for i < len(b) && b[i] < 0x80 {
		i++
	}
	return i
}

// PureASCII reports whether every byte of b is below 0x80.
func PureASCII(b []byte) bool {
	return asciiRun(b) == len(b)
}

// FirstNonASCII returns the offset of the first byte at or above 0x80,
// or -1 when b is pure ASCII.
func FirstNonASCII(b []byte) int {
	if i := asciiRun(b); i < len(b) {
		return i
	}
	return -1
}

// UTF8 scans b against UTF-8 acceptance rules. The scan records the first
// failing byte offset and continues to the end of the input.
func UTF8(b []byte) Result {
	firstBad := -1
	i := 0
	for i < len(b) {
		i += asciiRun(b[i:])
		if i >= len(b) {
			break
		}
		if w := DecodeUnit(b[i:]); w > 0 {
			i += w
		} else {
			if firstBad < 0 {
				firstBad = i
			}
			i++
		}
	}
	return Result{Valid: firstBad < 0, FirstInvalid: firstBad}
}

// CountUTF8 returns the number of salvage units in b: each maximal valid
// decode counts once, each undecodable byte counts once. For valid content
// this equals the decoded character count.
func CountUTF8(b []byte) int {
	n := 0
	i := 0
	for i < len(b) {
		if b[i] < 0x80 {
			run := asciiRun(b[i:])
			n += run
			i += run
			continue
		}
		if w := DecodeUnit(b[i:]); w > 0 {
			i += w
		} else {
			i++
		}
		n++
	}
	return n
}

// WalkUTF8 returns the byte offset at which each salvage unit of b starts.
// The units are disjoint, contiguous, and exhaust b exactly; the slice length
// equals CountUTF8(b).
func WalkUTF8(b []byte) []int {
	starts := make([]int, 0, len(b))
	i := 0
	for i < len(b) {
		starts = append(starts, i)
		if b[i] < 0x80 {
			i++
			continue
		}
		if w := DecodeUnit(b[i:]); w > 0 {
			i += w
		} else {
			i++
		}
	}
	return starts
}
