package source

import "testing"

func TestInternIdempotent(t *testing.T) {
	in := NewInterner()
	a := in.Intern("hello")
	b := in.Intern("hello")
	if a != b {
		t.Fatalf("Intern not idempotent: %d != %d", a, b)
	}
	got, ok := in.Lookup(a)
	if !ok || got != "hello" {
		t.Fatalf("Lookup(%d) = %q, %v, want hello, true", a, got, ok)
	}
}

func TestInternDistinctStrings(t *testing.T) {
	in := NewInterner()
	a := in.Intern("foo")
	b := in.Intern("bar")
	if a == b {
		t.Fatalf("distinct strings interned to the same id")
	}
}

func TestInternEmptyStringIsNoStringID(t *testing.T) {
	in := NewInterner()
	if id := in.Intern(""); id != NoStringID {
		t.Fatalf("Intern(\"\") = %d, want NoStringID", id)
	}
}

func TestInternCopiesInput(t *testing.T) {
	in := NewInterner()
	buf := []byte("mutate-me")
	id := in.InternBytes(buf)
	buf[0] = 'X'
	got := in.MustLookup(id)
	if got != "mutate-me" {
		t.Fatalf("interner aliased caller buffer: got %q", got)
	}
}

func TestInternManyGrowsArena(t *testing.T) {
	in := NewInterner()
	for i := 0; i < 10000; i++ {
		in.Intern(string(rune('a' + i%26)))
	}
	if in.Len() < 2 {
		t.Fatalf("expected interner to grow, Len()=%d", in.Len())
	}
}
