// Package sema implements the driver's symbol-resolution phase (spec
// §4.9 step 4): for each top-level declaration, define it in global scope;
// for each function body, open/close nested scopes and resolve identifier
// references, reporting SemaDuplicateDefinition and SemaUnresolvedIdent.
// Grounded on the same scope-stack walk as internal/lint, generalized from
// phrase nodes to the core surface's Fn/Let/If/While/For/Match statements.
package sema

import (
	"github.com/vitte-lang/vitte-sub005/internal/ast"
	"github.com/vitte-lang/vitte-sub005/internal/diag"
	"github.com/vitte-lang/vitte-sub005/internal/symbols"
	"github.com/vitte-lang/vitte-sub005/internal/types"
)

// Resolver walks a core-surface file, producing a populated symbols.Table.
type Resolver struct {
	tree  *ast.Tree
	bag   *diag.Bag
	tbl   *symbols.Table
	res   *symbols.Resolver
	types *types.Interner
}

// New creates a Resolver. The returned Table is owned by the caller for any
// later phase (e.g. the C backend resolving a Call's callee symbol). typeIn
// supplies the builtin TypeIDs a "let"/"const" binding's initializer
// resolves to (spec §3's TypeKind set); it may be nil, in which case every
// declared binding's Type stays at NoTypeID.
func New(tree *ast.Tree, bag *diag.Bag, typeIn *types.Interner) (*Resolver, *symbols.Table) {
	tbl := symbols.NewTable()
	return &Resolver{tree: tree, bag: bag, tbl: tbl, res: symbols.NewResolver(tbl, bag), types: typeIn}, tbl
}

// literalType maps a literal expression node to its builtin TypeID. Any
// node whose type cannot be read off directly (an identifier, a call, an
// operator expression) resolves to Unknown: the inference-pending state
// spec §3 describes, since this bootstrap resolver does no further
// propagation.
func (r *Resolver) literalType(id ast.NodeID) types.TypeID {
	if r.types == nil {
		return types.NoTypeID
	}
	b := r.types.Builtins()
	n := r.tree.Node(id)
	if n == nil {
		return b.Unknown
	}
	switch n.Kind {
	case ast.KindIntLit, ast.KindUintLit:
		return b.Int
	case ast.KindFloatLit:
		return b.Float
	case ast.KindBoolLit:
		return b.Bool
	case ast.KindCharLit:
		return b.Char
	case ast.KindStringLit:
		return b.String
	case ast.KindNothingLit:
		return b.Nothing
	default:
		return b.Unknown
	}
}

// ResolveFile runs the full pass over every top-level item under file.
func (r *Resolver) ResolveFile(file ast.NodeID) {
	f := r.tree.Node(file)
	if f == nil {
		return
	}
	// First pass: declare every top-level name so forward references
	// between functions/scenarios resolve regardless of textual order.
	for _, kid := range f.Kids {
		r.declareItem(kid)
	}
	for _, kid := range f.Kids {
		r.resolveItem(kid)
	}
}

func (r *Resolver) declareItem(id ast.NodeID) {
	n := r.tree.Node(id)
	if n == nil {
		return
	}
	switch n.Kind {
	case ast.KindFn:
		r.res.Declare(r.tbl.Global, n.Name, symbols.SymbolFunction, n.Span, id, 0)
	case ast.KindScn:
		r.res.Declare(r.tbl.Global, n.Name, symbols.SymbolScenario, n.Span, id, 0)
	case ast.KindEntrypoint:
		r.res.Declare(r.tbl.Global, n.Name, symbols.SymbolFunction, n.Span, id, 0)
	}
}

func (r *Resolver) resolveItem(id ast.NodeID) {
	n := r.tree.Node(id)
	if n == nil {
		return
	}
	switch n.Kind {
	case ast.KindFn:
		r.resolveFn(id)
	case ast.KindScn, ast.KindEntrypoint:
		r.res.Push(symbols.ScopeFunction, n.Span)
		r.resolveBlock(n.A)
		r.res.Pop()
	}
}

func (r *Resolver) resolveFn(id ast.NodeID) {
	n := r.tree.Node(id)
	scope := r.res.Push(symbols.ScopeFunction, n.Span)
	for _, paramID := range n.Kids {
		p := r.tree.Node(paramID)
		if p == nil || p.Kind != ast.KindFnParam {
			continue
		}
		r.res.Declare(scope, p.Name, symbols.SymbolParam, p.Span, paramID, 0)
	}
	r.resolveBlock(n.B)
	r.res.Pop()
}

func (r *Resolver) resolveBlock(id ast.NodeID) {
	block := r.tree.Node(id)
	if block == nil {
		return
	}
	for _, stmtID := range block.Kids {
		r.resolveStmt(stmtID)
	}
}

func (r *Resolver) resolveStmt(id ast.NodeID) {
	n := r.tree.Node(id)
	if n == nil {
		return
	}
	switch n.Kind {
	case ast.KindLet:
		if n.B != ast.NoNodeID {
			r.markReads(n.B)
		}
		kind := symbols.SymbolLet
		flags := symbols.SymbolFlagMutable
		if n.I64 != 0 {
			kind = symbols.SymbolConst
			flags = 0
		}
		symID := r.res.Declare(r.res.Current(), n.Name, kind, n.Span, id, flags)
		if sym := r.tbl.Symbol(symID); sym != nil {
			sym.Type = r.literalType(n.B)
		}
	case ast.KindIf:
		r.markReads(n.A)
		r.pushAndResolve(n.B)
		for _, armID := range n.Aux {
			arm := r.tree.Node(armID)
			if arm == nil {
				continue
			}
			r.markReads(arm.A)
			r.pushAndResolve(arm.B)
		}
		if n.C != ast.NoNodeID {
			r.pushAndResolve(n.C)
		}
	case ast.KindWhile:
		r.markReads(n.A)
		r.pushAndResolve(n.B)
	case ast.KindFor:
		r.markReads(n.A)
		scope := r.res.Push(symbols.ScopeBlock, n.Span)
		r.res.Declare(scope, n.Name, symbols.SymbolLet, n.Span, id, symbols.SymbolFlagMutable)
		r.resolveBlock(n.B)
		r.res.Pop()
	case ast.KindMatch:
		r.markReads(n.A)
		for _, armID := range n.Kids {
			arm := r.tree.Node(armID)
			if arm == nil || arm.Kind != ast.KindMatchArm {
				continue
			}
			r.markReads(arm.A)
			r.resolveStmt(arm.B)
		}
	case ast.KindReturn:
		r.markReads(n.A)
	case ast.KindExprStmt:
		r.markReads(n.A)
	}
}

func (r *Resolver) pushAndResolve(blockID ast.NodeID) {
	b := r.tree.Node(blockID)
	if b == nil {
		return
	}
	r.res.Push(symbols.ScopeBlock, b.Span)
	r.resolveBlock(blockID)
	r.res.Pop()
}

// markReads walks an expression subtree like the phrase linter's version,
// resolving identifiers and reporting SemaUnresolvedIdent for any that
// never resolve — a check the phrase linter itself does not perform, since
// it runs before full symbol resolution is guaranteed complete. A child held
// in both a slot (A/B/C) and Kids, such as a call's callee, is visited once.
func (r *Resolver) markReads(id ast.NodeID) {
	if id == ast.NoNodeID {
		return
	}
	n := r.tree.Node(id)
	if n == nil {
		return
	}
	if n.Kind == ast.KindIdent {
		sym := r.res.Lookup(n.Name)
		if sym.IsValid() {
			r.res.MarkRead(sym)
			return
		}
		r.bag.Add(diag.NewError(diag.SemaUnresolvedIdent, n.Span, "unresolved identifier"))
		return
	}
	r.markReads(n.A)
	r.markReads(n.B)
	r.markReads(n.C)
	for _, k := range n.Kids {
		if k != n.A && k != n.B && k != n.C {
			r.markReads(k)
		}
	}
	for _, k := range n.Aux {
		r.markReads(k)
	}
}
