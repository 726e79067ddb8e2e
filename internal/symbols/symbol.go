package symbols

import (
	"github.com/vitte-lang/vitte-sub005/internal/ast"
	"github.com/vitte-lang/vitte-sub005/internal/source"
	"github.com/vitte-lang/vitte-sub005/internal/types"
)

// SymbolKind classifies what a symbol denotes.
type SymbolKind uint8

const (
	// SymbolInvalid marks an uninitialized symbol.
	SymbolInvalid SymbolKind = iota
	SymbolFunction
	SymbolScenario
	SymbolParam
	SymbolLet
	SymbolConst
	SymbolType
)

func (k SymbolKind) String() string {
	switch k {
	case SymbolFunction:
		return "function"
	case SymbolScenario:
		return "scenario"
	case SymbolParam:
		return "param"
	case SymbolLet:
		return "let"
	case SymbolConst:
		return "const"
	case SymbolType:
		return "type"
	default:
		return "invalid"
	}
}

// SymbolFlags encode misc per-symbol attributes.
type SymbolFlags uint8

const (
	// SymbolFlagMutable marks a binding introduced without const semantics.
	SymbolFlagMutable SymbolFlags = 1 << iota
	// SymbolFlagExported marks a module-level export declaration.
	SymbolFlagExported
	// SymbolFlagRead marks a symbol that has been referenced at least once
	// after declaration. The phrase linter's V1001 check relies on this.
	SymbolFlagRead
)

// Symbol is a single named declaration.
type Symbol struct {
	Name  source.StringID
	Kind  SymbolKind
	Scope ScopeID
	Span  source.Span
	Flags SymbolFlags
	Decl  ast.NodeID
	Type  types.TypeID
}
