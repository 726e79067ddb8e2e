// Package source holds the data model shared by every compiler phase:
// spans, the file table, and the string interner. Nothing in this package
// depends on the lexer, parser, or any later phase.
package source

import "fmt"

// FileID identifies a registered source file within a FileSet.
type FileID uint32

// NoFileID is the zero FileID, used where no file was registered (e.g. a
// failed FileSet.Load). FileSet assigns the same value to the first file it
// registers, so once a file exists a zero FileID refers to that file.
const NoFileID FileID = 0

// Span represents a contiguous byte range within a single source file.
// Line/col are 1-based when known, 0 when unknown. An empty span has
// Start == End. Spans are value types and are never owned.
type Span struct {
	File  FileID
	Start uint32 // inclusive byte offset
	End   uint32 // exclusive byte offset
}

// ZeroSpan is used for diagnostics that cannot be pinned to a location
// (e.g. internal errors, driver-level IO failures before a file exists).
var ZeroSpan = Span{}

// Empty reports whether the span has zero length.
func (s Span) Empty() bool { return s.Start == s.End }

// Len returns the span's length in bytes.
func (s Span) Len() uint32 { return s.End - s.Start }

func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d", s.File, s.Start, s.End)
}

// Cover returns the smallest span covering both s and other. If the spans
// belong to different files, other is ignored and s is returned unchanged
// (per spec: a node's span stays pinned to its opener across file
// boundaries).
func (s Span) Cover(other Span) Span {
	if s.File != other.File {
		return s
	}
	if other.Start < s.Start {
		s.Start = other.Start
	}
	if other.End > s.End {
		s.End = other.End
	}
	return s
}

// IsLeftOf reports whether s starts before other in the same file.
func (s Span) IsLeftOf(other Span) bool {
	return s.File == other.File && s.Start < other.Start
}
