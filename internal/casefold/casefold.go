// Package casefold implements case-distinction-removing transformations over
// byte content, with ASCII, Unicode-simple, and Unicode-full modes.
//
// ASCII mode maps A-Z to a-z one byte for one byte and is safe on arbitrary
// bytes. The Unicode modes assume the input decodes cleanly as UTF-8; callers
// gate on encoding and validity before folding. Unicode-simple preserves
// codepoint count, Unicode-full may expand one codepoint into several
// (for example U+00DF to "ss").
package casefold

import (
	"bytes"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

// Mode selects the scope of case folding.
type Mode uint8

const (
	// ASCII folds only the bytes A-Z.
	ASCII Mode = iota

	// UnicodeSimple folds each codepoint to the canonical representative of
	// its simple-fold orbit, preserving codepoint count.
	UnicodeSimple

	// UnicodeFull applies full Unicode case folding, which may change the
	// codepoint count.
	UnicodeFull
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ASCII:
		return "ascii"
	case UnicodeSimple:
		return "unicode-simple"
	case UnicodeFull:
		return "unicode-full"
	default:
		return "unknown"
	}
}

// Fold returns a folded copy of b under the given mode. For the Unicode modes
// b must be valid UTF-8.
func Fold(b []byte, mode Mode) []byte {
	switch mode {
	case UnicodeSimple:
		return simpleFold(b)
	case UnicodeFull:
		// The folding tables are process-wide read-only data; the Caser
		// itself carries per-call state, so build one per fold.
		return cases.Fold().Bytes(b)
	default:
		return asciiFold(b)
	}
}

// Equal reports whether a and b are equal ignoring case under the given mode.
// Callers gate operand compatibility; arbitrary bytes are only meaningful in
// ASCII mode.
func Equal(a, b []byte, mode Mode) bool {
	if mode == ASCII {
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if asciiLower(a[i]) != asciiLower(b[i]) {
				return false
			}
		}
		return true
	}
	return bytes.Equal(Fold(a, mode), Fold(b, mode))
}

func asciiLower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

func asciiFold(b []byte) []byte {
	out := make([]byte, len(b))
	for i, c := range b {
		out[i] = asciiLower(c)
	}
	return out
}

func simpleFold(b []byte) []byte {
	out := make([]byte, 0, len(b))
	for i := 0; i < len(b); {
		r, w := utf8.DecodeRune(b[i:])
		i += w
		out = utf8.AppendRune(out, foldRune(r))
	}
	return out
}

// foldRune returns the canonical representative of r's simple-fold orbit,
// the smallest rune reachable via unicode.SimpleFold.
func foldRune(r rune) rune {
	m := r
	for f := unicode.SimpleFold(r); f != r; f = unicode.SimpleFold(f) {
		if f < m {
			m = f
		}
	}
	return m
}
