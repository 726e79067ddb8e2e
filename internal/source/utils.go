package source

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"

	"fortio.org/safecast"
	"golang.org/x/text/unicode/bom"
)

// removeBOM strips a leading UTF-8 byte-order mark, if present.
func removeBOM(b []byte) (out []byte, had bool) {
	stripped, err := io.ReadAll(bom.NewReader(bytes.NewReader(b)))
	if err != nil {
		return b, false
	}
	return stripped, len(stripped) != len(b)
}

// normalizeCRLF rewrites "\r\n" and lone "\r" to "\n". The lexer always sees
// normalized input, so line/col accounting never has to special-case "\r".
func normalizeCRLF(b []byte) (out []byte, changed bool) {
	if !containsCR(b) {
		return b, false
	}
	result := make([]byte, 0, len(b))
	for i := 0; i < len(b); i++ {
		if b[i] == '\r' {
			result = append(result, '\n')
			if i+1 < len(b) && b[i+1] == '\n' {
				i++
			}
			continue
		}
		result = append(result, b[i])
	}
	return result, true
}

func containsCR(b []byte) bool {
	for _, c := range b {
		if c == '\r' {
			return true
		}
	}
	return false
}

func buildLineIndex(content []byte) []uint32 {
	idx := make([]uint32, 0, 64)
	for i, c := range content {
		if c == '\n' {
			n, err := safecast.Conv[uint32](i)
			if err != nil {
				continue
			}
			idx = append(idx, n)
		}
	}
	return idx
}

// toLineCol converts a byte offset into a 1-based LineCol using a
// monotonically increasing newline index via binary search.
func toLineCol(lineIdx []uint32, offset uint32) LineCol {
	lo, hi := 0, len(lineIdx)
	for lo < hi {
		mid := (lo + hi) / 2
		if lineIdx[mid] < offset {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	line := uint32(lo) + 1
	var lineStart uint32
	if lo > 0 {
		lineStart = lineIdx[lo-1] + 1
	}
	return LineCol{Line: line, Col: offset - lineStart + 1}
}

func normalizePath(path string) string {
	return filepath.ToSlash(filepath.Clean(path))
}

// FormatPath renders f.Path relative to baseDir ("relative"), as an absolute
// path ("absolute"), or as a bare file name ("basename").
func (f *File) FormatPath(mode, baseDir string) string {
	switch mode {
	case "absolute":
		if abs, err := filepath.Abs(f.Path); err == nil {
			return filepath.ToSlash(abs)
		}
		return f.Path
	case "basename":
		return filepath.Base(f.Path)
	case "relative":
		if baseDir == "" {
			return f.Path
		}
		if rel, err := filepath.Rel(baseDir, f.Path); err == nil {
			return filepath.ToSlash(rel)
		}
		return f.Path
	default:
		return f.Path
	}
}

// GetLine returns the 1-based source line, or "" if it does not exist.
func (f *File) GetLine(lineNum uint32) string {
	if lineNum == 0 {
		return ""
	}
	var start uint32
	if lineNum >= 2 {
		if int(lineNum-2) >= len(f.lineIdx) {
			return ""
		}
		start = f.lineIdx[lineNum-2] + 1
	}
	end := uint32(len(f.Content))
	if int(lineNum-1) < len(f.lineIdx) {
		end = f.lineIdx[lineNum-1]
	}
	if start > uint32(len(f.Content)) {
		return ""
	}
	if end > uint32(len(f.Content)) {
		end = uint32(len(f.Content))
	}
	if start > end {
		return ""
	}
	return strings.TrimSuffix(string(f.Content[start:end]), "\r")
}
