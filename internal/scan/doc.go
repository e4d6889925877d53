// Package scan provides validity scanning and character segmentation for
// UTF-8 byte content.
//
// Validity scanning follows the standard UTF-8 acceptance rules: overlong
// forms, surrogate codepoints, codepoints above U+10FFFF, and sequences
// truncated at the end of the input are all rejected. The scanner records the
// offset of the first failing byte and keeps scanning to the end of the
// input.
//
// Character segmentation uses a byte-salvage walk: at each offset the walk
// attempts a maximal valid decode; on success it counts one character and
// advances by the decoded width, on failure it counts one character and
// advances by exactly one byte. The walk partitions any input, valid or not,
// into disjoint, contiguous units whose widths sum exactly to the input
// length. It is the sole source of truth for character counts and for
// byte-offset/character-offset mapping.
package scan
