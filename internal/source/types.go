package source

// FileFlags records how a file's bytes were normalized on load.
type FileFlags uint8

const (
	// FileHadBOM is set when a leading UTF-8 BOM was stripped.
	FileHadBOM FileFlags = 1 << iota
	// FileNormalizedCRLF is set when CRLF line endings were rewritten to LF.
	FileNormalizedCRLF
	// FileVirtual marks a file that did not come from disk (stdin, tests,
	// generated response-file expansions).
	FileVirtual
)

// LineCol is a 1-based line/column position resolved from a byte offset.
type LineCol struct {
	Line uint32
	Col  uint32
}

// File holds the bytes and metadata for one registered source file.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	lineIdx []uint32 // byte offsets of '\n' characters, ascending
	Flags   FileFlags
}
