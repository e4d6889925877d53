// Package strand implements an encoding-aware, mutable byte-string engine
// intended as the primary text type of a scripting-language runtime.
//
// A String owns raw byte storage, tags it with an Encoding, and lazily tracks
// whether the content is valid under that encoding. All index-taking
// operations work in character offsets, translated to byte offsets through a
// byte-salvage walk that is defined for valid and invalid content alike: each
// maximal valid decode counts as one character, each undecodable byte counts
// as one character. Structural mutations and encoding reassignment invalidate
// the cached validity, character length, and offset table; they are recomputed
// on next use.
//
// Key features:
//   - Character-indexed insert, delete, and replace with negative-index
//     support, over any content
//   - Lazy, invalidation-tracked validity and character-length caches
//   - Case folding in ASCII, Unicode-simple, and Unicode-full modes, with a
//     distinguishable "incomparable" result for mismatched operands
//   - An optional always-zero terminator invariant for native interop via
//     RawParts
//
// Basic usage:
//
//	s, _ := strand.New([]byte("héllo"), strand.UTF8)
//	s.CharLen()                         // 5
//	_ = s.ReplaceRange(1, 1, []byte("e")) // "hello"
//
// A String is designed for a single exclusive owner, matching a
// single-threaded interpreter object graph. It performs no internal locking;
// embedders that share values across execution contexts must synchronize at
// the object level.
package strand
