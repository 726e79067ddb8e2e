// Package driver orchestrates one compile job end to end: create a
// session, register the input, lex/parse, lint, resolve, and either render
// diagnostics or stream the C backend (spec §4.9).
package driver

import (
	"github.com/google/uuid"

	"github.com/vitte-lang/vitte-sub005/internal/ast"
	"github.com/vitte-lang/vitte-sub005/internal/diag"
	"github.com/vitte-lang/vitte-sub005/internal/source"
	"github.com/vitte-lang/vitte-sub005/internal/symbols"
	"github.com/vitte-lang/vitte-sub005/internal/types"
)

// Session owns every piece of session-confined state for one compile job:
// the arena-backed string interner, the file table, the type interner, and
// the diagnostic bag (spec §5: "All session-owned structures ... are
// confined to the thread that created the session"). ID stamps the session
// with a correlation id for trace output, the same google/uuid convention
// surge uses for its own request/entity identifiers.
type Session struct {
	ID      uuid.UUID
	Files   *source.FileSet
	Strings *source.Interner
	Types   *types.Interner
	Bag     *diag.Bag

	Builder *ast.Builder
	Table   *symbols.Table
}

// NewSession creates an empty session ready to register a file.
func NewSession() *Session {
	strs := source.NewInterner()
	return &Session{
		ID:      uuid.New(),
		Files:   source.NewFileSet(),
		Strings: strs,
		Types:   types.NewInterner(),
		Bag:     diag.NewBag(),
		Builder: ast.NewBuilder(strs),
	}
}
