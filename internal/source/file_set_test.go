package source

import "testing"

func TestFileSetAddAndResolve(t *testing.T) {
	fs := NewFileSet()
	id := fs.Add("a.vitte", []byte("line one\nline two\n"), 0)
	span := Span{File: id, Start: 9, End: 13}
	start, end := fs.Resolve(span)
	if start.Line != 2 || start.Col != 1 {
		t.Fatalf("start = %+v, want line 2 col 1", start)
	}
	if end.Line != 2 {
		t.Fatalf("end = %+v, want line 2", end)
	}
}

func TestFileSetAddVirtualNormalizesCRLF(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("stdin", []byte("a\r\nb\r\n"))
	f := fs.Get(id)
	if string(f.Content) != "a\nb\n" {
		t.Fatalf("Content = %q, want normalized LF", f.Content)
	}
	if f.Flags&FileVirtual == 0 {
		t.Fatalf("expected FileVirtual flag")
	}
}

func TestFileGetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.Add("a.vitte", []byte("one\ntwo\nthree"), 0)
	f := fs.Get(id)
	if f.GetLine(1) != "one" || f.GetLine(2) != "two" || f.GetLine(3) != "three" {
		t.Fatalf("GetLine mismatch: %q %q %q", f.GetLine(1), f.GetLine(2), f.GetLine(3))
	}
	if f.GetLine(4) != "" {
		t.Fatalf("GetLine(4) = %q, want empty", f.GetLine(4))
	}
}
