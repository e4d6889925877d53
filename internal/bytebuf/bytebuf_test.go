package bytebuf

import (
	"bytes"
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	b := New()
	if b.Len() != 0 {
		t.Errorf("new buffer should have length 0, got %d", b.Len())
	}
	if got := b.Bytes(); len(got) != 0 {
		t.Errorf("new buffer Bytes() should be empty, got %v", got)
	}
}

func TestNewTerminated(t *testing.T) {
	b := New(WithTerminator(TerminatorAlwaysZero))
	if b.Cap() < 1 {
		t.Fatalf("terminated buffer must allocate the terminator slot, cap = %d", b.Cap())
	}
	rp := b.RawParts()
	if rp.Ptr == nil {
		t.Fatal("terminated buffer RawParts should never have a nil pointer")
	}
	if b.store[0] != 0 {
		t.Errorf("empty terminated buffer should carry a zero byte at offset 0, got %#x", b.store[0])
	}
}

func TestAppend(t *testing.T) {
	tests := []struct {
		name     string
		initial  string
		add      string
		expected string
	}{
		{"into empty", "", "hello", "hello"},
		{"onto existing", "hello", " world", "hello world"},
		{"empty slice", "hello", "", "hello"},
		{"forces growth", "hello", " world, this is a longer tail", "hello world, this is a longer tail"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New()
			if err := b.Append([]byte(tt.initial)); err != nil {
				t.Fatalf("Append(initial) = %v", err)
			}
			if err := b.Append([]byte(tt.add)); err != nil {
				t.Fatalf("Append(add) = %v", err)
			}
			if got := string(b.Bytes()); got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestReplace(t *testing.T) {
	tests := []struct {
		name     string
		initial  string
		start    int
		end      int
		text     string
		expected string
	}{
		{"replace middle", "hello world", 6, 11, "universe", "hello universe"},
		{"replace with shorter", "hello world", 0, 5, "hi", "hi world"},
		{"replace with longer", "hi world", 0, 2, "hello", "hello world"},
		{"insert at offset", "ac", 1, 1, "b", "abc"},
		{"insert at end", "ab", 2, 2, "c", "abc"},
		{"delete range", "abc", 1, 2, "", "ac"},
		{"delete all", "abc", 0, 3, "", ""},
		{"replace all", "abc", 0, 3, "xyz", "xyz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New()
			if err := b.Append([]byte(tt.initial)); err != nil {
				t.Fatalf("Append() = %v", err)
			}
			if err := b.Replace(tt.start, tt.end, []byte(tt.text)); err != nil {
				t.Fatalf("Replace() = %v", err)
			}
			if got := string(b.Bytes()); got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestReplaceOutOfRange(t *testing.T) {
	tests := []struct {
		name       string
		start, end int
	}{
		{"negative start", -1, 0},
		{"end before start", 2, 1},
		{"end beyond length", 0, 4},
		{"start beyond length", 5, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New()
			if err := b.Append([]byte("abc")); err != nil {
				t.Fatalf("Append() = %v", err)
			}
			err := b.Replace(tt.start, tt.end, []byte("x"))
			if !errors.Is(err, ErrOutOfRange) {
				t.Errorf("Replace(%d, %d) = %v, want ErrOutOfRange", tt.start, tt.end, err)
			}
			if got := string(b.Bytes()); got != "abc" {
				t.Errorf("failed replace mutated buffer: %q", got)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	b := New()
	if err := b.Append([]byte("hello")); err != nil {
		t.Fatalf("Append() = %v", err)
	}

	if err := b.Truncate(2); err != nil {
		t.Fatalf("Truncate(2) = %v", err)
	}
	if got := string(b.Bytes()); got != "he" {
		t.Errorf("got %q, want %q", got, "he")
	}

	if err := b.Truncate(3); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Truncate beyond length = %v, want ErrOutOfRange", err)
	}
	if err := b.Truncate(-1); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Truncate(-1) = %v, want ErrOutOfRange", err)
	}
}

func TestReserve(t *testing.T) {
	b := New()
	if err := b.Append([]byte("ab")); err != nil {
		t.Fatalf("Append() = %v", err)
	}
	if err := b.Reserve(100); err != nil {
		t.Fatalf("Reserve(100) = %v", err)
	}
	if b.Cap() < 102 {
		t.Errorf("Cap() = %d, want at least 102", b.Cap())
	}
	if got := string(b.Bytes()); got != "ab" {
		t.Errorf("Reserve changed content: %q", got)
	}
	if err := b.Reserve(-1); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Reserve(-1) = %v, want ErrOutOfRange", err)
	}
}

func TestMaxCapacity(t *testing.T) {
	b := New(WithMaxCapacity(4))
	if err := b.Append([]byte("abcd")); err != nil {
		t.Fatalf("Append within cap = %v", err)
	}
	if err := b.Append([]byte("e")); !errors.Is(err, ErrAllocation) {
		t.Errorf("Append past cap = %v, want ErrAllocation", err)
	}
	if got := string(b.Bytes()); got != "abcd" {
		t.Errorf("failed append mutated buffer: %q", got)
	}
}

// TestReplaceAtomicOnAllocationFailure verifies the all-or-nothing guarantee:
// a replace that cannot allocate leaves the buffer byte-for-byte unchanged.
func TestReplaceAtomicOnAllocationFailure(t *testing.T) {
	b := New(WithMaxCapacity(4))
	if err := b.Append([]byte("abcd")); err != nil {
		t.Fatalf("Append() = %v", err)
	}
	before := append([]byte(nil), b.Bytes()...)

	if err := b.Replace(1, 2, []byte("XYZ")); !errors.Is(err, ErrAllocation) {
		t.Fatalf("Replace needing growth = %v, want ErrAllocation", err)
	}
	if !bytes.Equal(b.Bytes(), before) {
		t.Errorf("buffer changed across failed replace: %q -> %q", before, b.Bytes())
	}
}

// TestReplaceAliasedInput passes views of the buffer's own storage back in as
// the replacement text; the tail shift must not corrupt the staged input.
func TestReplaceAliasedInput(t *testing.T) {
	tests := []struct {
		name       string
		initial    string
		start, end int
		lo, hi     int // replacement is Bytes()[lo:hi]
		expected   string
	}{
		{"insert own prefix", "abcdef", 3, 3, 0, 2, "abcabdef"},
		{"replace with later range", "abcdef", 0, 2, 2, 5, "cdecdef"},
		{"replace with earlier range", "abcdef", 4, 6, 0, 3, "abcdabc"},
		{"overwrite with self range", "abcdef", 1, 4, 1, 4, "abcdef"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New()
			if err := b.Append([]byte(tt.initial)); err != nil {
				t.Fatalf("Append() = %v", err)
			}
			if err := b.Replace(tt.start, tt.end, b.Bytes()[tt.lo:tt.hi]); err != nil {
				t.Fatalf("Replace() = %v", err)
			}
			if got := string(b.Bytes()); got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

// TestTerminatorInvariant drives a terminated buffer through a mutation
// sequence and checks the zero byte past the logical length after every step.
func TestTerminatorInvariant(t *testing.T) {
	b := New(WithTerminator(TerminatorAlwaysZero))

	check := func(step string) {
		t.Helper()
		if b.Cap() <= b.Len() {
			t.Fatalf("%s: no room for terminator, len=%d cap=%d", step, b.Len(), b.Cap())
		}
		if c := b.store[b.Len()]; c != 0 {
			t.Errorf("%s: byte past length = %#x, want 0", step, c)
		}
	}

	check("empty")

	steps := []struct {
		name string
		op   func() error
	}{
		{"append", func() error { return b.Append([]byte("hello")) }},
		{"grow", func() error { return b.Append(bytes.Repeat([]byte("x"), 64)) }},
		{"replace shrink", func() error { return b.Replace(0, 60, []byte("hi")) }},
		{"replace grow", func() error { return b.Replace(1, 2, []byte("ELLO")) }},
		{"truncate", func() error { return b.Truncate(3) }},
		{"reserve", func() error { return b.Reserve(128) }},
	}
	for _, s := range steps {
		if err := s.op(); err != nil {
			t.Fatalf("%s: %v", s.name, err)
		}
		check(s.name)
	}

	if b.Len() != 3 {
		t.Errorf("final length = %d, want 3", b.Len())
	}
}

func TestBytesViewIsCapped(t *testing.T) {
	b := New()
	if err := b.Append([]byte("abc")); err != nil {
		t.Fatalf("Append() = %v", err)
	}
	view := b.Bytes()
	if cap(view) != len(view) {
		t.Errorf("view capacity %d exceeds length %d; appends could alias storage", cap(view), len(view))
	}
}

func TestRawParts(t *testing.T) {
	b := New(WithTerminator(TerminatorAlwaysZero))
	if err := b.Append([]byte("abc")); err != nil {
		t.Fatalf("Append() = %v", err)
	}
	rp := b.RawParts()
	if rp.Len != 3 {
		t.Errorf("Len = %d, want 3", rp.Len)
	}
	if rp.Cap <= rp.Len {
		t.Errorf("Cap = %d, want > %d for the terminator slot", rp.Cap, rp.Len)
	}
	if rp.Ptr == nil {
		t.Error("Ptr should not be nil")
	}
}
