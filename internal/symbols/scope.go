package symbols

import "github.com/vitte-lang/vitte-sub005/internal/source"

// ScopeKind enumerates lexical scope categories.
type ScopeKind uint8

const (
	// ScopeInvalid marks an uninitialized scope.
	ScopeInvalid ScopeKind = iota
	// ScopeGlobal is the single module-level scope every file shares.
	ScopeGlobal
	// ScopeFunction is a function or scenario body's top scope.
	ScopeFunction
	// ScopeBlock is a nested block (if/while/for/match arm/loop body).
	ScopeBlock
)

func (k ScopeKind) String() string {
	switch k {
	case ScopeGlobal:
		return "global"
	case ScopeFunction:
		return "function"
	case ScopeBlock:
		return "block"
	default:
		return "invalid"
	}
}

// Scope is a lexical scope: a name index over the symbols declared directly
// in it, plus a link to its parent for outward lookup.
type Scope struct {
	Kind      ScopeKind
	Parent    ScopeID
	Span      source.Span
	NameIndex map[source.StringID][]SymbolID
	Symbols   []SymbolID
	Children  []ScopeID
}
