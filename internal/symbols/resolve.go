package symbols

import (
	"github.com/vitte-lang/vitte-sub005/internal/ast"
	"github.com/vitte-lang/vitte-sub005/internal/diag"
	"github.com/vitte-lang/vitte-sub005/internal/source"
)

// Resolver walks a parsed tree maintaining an explicit scope stack, pushing
// and popping block/function scopes as it enters and leaves them.
type Resolver struct {
	Table *Table
	Bag   *diag.Bag
	stack []ScopeID
}

// NewResolver creates a resolver starting in the table's global scope.
func NewResolver(t *Table, bag *diag.Bag) *Resolver {
	return &Resolver{Table: t, Bag: bag, stack: []ScopeID{t.Global}}
}

// Current returns the innermost active scope.
func (r *Resolver) Current() ScopeID { return r.stack[len(r.stack)-1] }

// Push opens a new child scope of the current one and makes it active.
func (r *Resolver) Push(kind ScopeKind, span source.Span) ScopeID {
	id := r.Table.pushScope(kind, r.Current(), span)
	r.stack = append(r.stack, id)
	return id
}

// Pop closes the innermost active scope and returns its id. Pop never
// closes the global scope.
func (r *Resolver) Pop() ScopeID {
	if len(r.stack) <= 1 {
		return r.Current()
	}
	id := r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
	return id
}

// Declare introduces name in the current scope. If name is already declared
// directly in the current scope (not an outer one), Declare reports
// SemaDuplicateDefinition with a secondary label at the prior declaration
// and returns the PRIOR symbol's id unchanged, so callers keep operating on
// a single canonical symbol rather than a shadow copy.
func (r *Resolver) Declare(scope ScopeID, name source.StringID, kind SymbolKind, span source.Span, decl ast.NodeID, flags SymbolFlags) SymbolID {
	sc := r.Table.Scope(scope)
	if sc == nil {
		return NoSymbolID
	}
	if sc.NameIndex == nil {
		sc.NameIndex = make(map[source.StringID][]SymbolID)
	}
	if prior, ok := sc.NameIndex[name]; ok && len(prior) > 0 {
		priorSym := r.Table.Symbol(prior[0])
		if r.Bag != nil && priorSym != nil {
			d := diag.NewError(diag.SemaDuplicateDefinition, span, "duplicate definition in this scope").
				WithSecondaryLabel(priorSym.Span, "previously declared here")
			r.Bag.Add(d)
		}
		return prior[0]
	}
	id := r.Table.allocSymbol(Symbol{
		Name: name, Kind: kind, Scope: scope, Span: span, Flags: flags, Decl: decl,
	})
	sc.NameIndex[name] = append(sc.NameIndex[name], id)
	sc.Symbols = append(sc.Symbols, id)
	return id
}

// Lookup searches the current scope and its ancestors outward, returning the
// first match. This is pointer/ID identity lookup: two references that
// Lookup to the same SymbolID are the same binding (spec §4.5).
func (r *Resolver) Lookup(name source.StringID) SymbolID {
	for s := r.Current(); s.IsValid(); {
		sc := r.Table.Scope(s)
		if sc == nil {
			return NoSymbolID
		}
		if ids, ok := sc.NameIndex[name]; ok && len(ids) > 0 {
			return ids[0]
		}
		s = sc.Parent
	}
	return NoSymbolID
}

// LookupOuter is like Lookup but starts searching at scope's parent,
// skipping scope itself. The phrase linter's V1002 shadowing check uses
// this to ask "does this name already exist in an enclosing scope" at the
// moment a new binding is introduced.
func (r *Resolver) LookupOuter(scope ScopeID) func(name source.StringID) SymbolID {
	sc := r.Table.Scope(scope)
	if sc == nil {
		return func(source.StringID) SymbolID { return NoSymbolID }
	}
	start := sc.Parent
	return func(name source.StringID) SymbolID {
		for s := start; s.IsValid(); {
			cur := r.Table.Scope(s)
			if cur == nil {
				return NoSymbolID
			}
			if ids, ok := cur.NameIndex[name]; ok && len(ids) > 0 {
				return ids[0]
			}
			s = cur.Parent
		}
		return NoSymbolID
	}
}

// MarkRead flags id as having been referenced, for the phrase linter's
// unused-binding check (V1001).
func (r *Resolver) MarkRead(id SymbolID) {
	if sym := r.Table.Symbol(id); sym != nil {
		sym.Flags |= SymbolFlagRead
	}
}
