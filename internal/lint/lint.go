// Package lint implements the phrase-surface linter (spec §4.7): a pass over
// the phrase sugar nodes (PProg/PSet/PWhen/PLoop/...) that tracks scopes and
// reports three stable warnings — V1001 unused binding, V1002 shadowing, and
// V1003 unreachable code — grounded on the sink/span design of the original
// lint_phrase.h (a diagnostic callback decoupled from concrete AST layout),
// adapted here to push straight into the shared diag.Bag.
package lint

import (
	"strings"

	"github.com/vitte-lang/vitte-sub005/internal/ast"
	"github.com/vitte-lang/vitte-sub005/internal/diag"
	"github.com/vitte-lang/vitte-sub005/internal/source"
	"github.com/vitte-lang/vitte-sub005/internal/symbols"
)

// Linter walks phrase-surface items, maintaining its own scope stack
// independent of the later full symbol-resolution pass: it only needs
// enough scoping to detect shadowing and unused/unreachable code.
type Linter struct {
	tree    *ast.Tree
	strings *source.Interner
	bag     *diag.Bag
	tbl     *symbols.Table
	res     *symbols.Resolver
}

// New creates a Linter over an already-parsed tree.
func New(tree *ast.Tree, strs *source.Interner, bag *diag.Bag) *Linter {
	tbl := symbols.NewTable()
	return &Linter{tree: tree, strings: strs, bag: bag, tbl: tbl, res: symbols.NewResolver(tbl, bag)}
}

// LintFile runs the linter over every phrase item directly under the file
// node produced by parser.ParsePhrase.
func (l *Linter) LintFile(file ast.NodeID) {
	f := l.tree.Node(file)
	if f == nil {
		return
	}
	for _, kid := range f.Kids {
		l.lintItem(kid)
	}
}

func (l *Linter) lintItem(id ast.NodeID) {
	n := l.tree.Node(id)
	if n == nil {
		return
	}
	switch n.Kind {
	case ast.KindPProg, ast.KindScn:
		scope := l.res.Push(symbols.ScopeFunction, n.Span)
		l.lintBlock(n.A)
		l.res.Pop()
		l.checkUnused(scope)
	}
}

// lintBlock walks a phrase block's statements in order, reporting V1003 on
// any statement that follows a "ret" in the same block.
func (l *Linter) lintBlock(id ast.NodeID) {
	block := l.tree.Node(id)
	if block == nil {
		return
	}
	retSpan := source.ZeroSpan
	sawRet := false
	for _, stmtID := range block.Kids {
		stmt := l.tree.Node(stmtID)
		if stmt == nil {
			continue
		}
		if sawRet {
			d := diag.NewWarning(diag.LintUnreachable, stmt.Span, "unreachable statement").
				WithSecondaryLabel(retSpan, "after this return")
			l.bag.Add(d)
		}
		l.lintStmt(stmtID)
		if stmt.Kind == ast.KindPRet && !sawRet {
			sawRet = true
			retSpan = stmt.Span
		}
	}
}

func (l *Linter) lintStmt(id ast.NodeID) {
	n := l.tree.Node(id)
	if n == nil {
		return
	}
	switch n.Kind {
	case ast.KindPSet:
		l.lintPSet(id)
	case ast.KindPSay, ast.KindPDo:
		l.markReads(n.A)
	case ast.KindPRet:
		l.markReads(n.A)
	case ast.KindPWhen:
		l.lintPWhen(id)
	case ast.KindPLoop:
		l.lintPLoop(id)
	}
}

func (l *Linter) lintPSet(id ast.NodeID) {
	n := l.tree.Node(id)
	if n.B != ast.NoNodeID {
		l.markReads(n.B)
	}
	current := l.res.Current()
	lookupOuter := l.res.LookupOuter(current)
	if prior := lookupOuter(n.Name); prior.IsValid() {
		if priorSym := l.tbl.Symbol(prior); priorSym != nil {
			d := diag.NewWarning(diag.LintShadowing, n.Span, "this binding shadows an outer declaration").
				WithSecondaryLabel(priorSym.Span, "previously declared here")
			l.bag.Add(d)
		}
	}
	l.res.Declare(current, n.Name, symbols.SymbolLet, n.Span, id, symbols.SymbolFlagMutable)
}

func (l *Linter) lintPWhen(id ast.NodeID) {
	n := l.tree.Node(id)
	l.markReads(n.A)

	thenScope := l.res.Push(symbols.ScopeBlock, n.Span)
	l.lintBlock(n.B)
	l.res.Pop()
	l.checkUnused(thenScope)

	for _, armID := range n.Aux {
		arm := l.tree.Node(armID)
		if arm == nil {
			continue
		}
		if arm.I64 == 0 {
			l.markReads(arm.A)
		}
		armScope := l.res.Push(symbols.ScopeBlock, arm.Span)
		l.lintBlock(arm.B)
		l.res.Pop()
		l.checkUnused(armScope)
	}
}

func (l *Linter) lintPLoop(id ast.NodeID) {
	n := l.tree.Node(id)
	l.markReads(n.A)
	l.markReads(n.B)
	l.markReads(n.C)

	scope := l.res.Push(symbols.ScopeBlock, n.Span)
	l.res.Declare(scope, n.Name, symbols.SymbolLet, n.Span, id, symbols.SymbolFlagMutable)
	// The loop variable lives in the same scope as the body so the body can
	// read it; the body itself is the last Kid appended by the parser.
	if len(n.Kids) > 0 {
		l.lintBlock(n.Kids[len(n.Kids)-1])
	}
	l.res.Pop()
	l.checkUnused(scope)
}

// markReads walks an expression subtree, flagging every identifier it
// resolves as read. Because the walk is purely structural (A/B/C/Kids/Aux)
// it needs no per-kind special cases: a dotted member access's field name
// lives in Node.Name, not a child id, so only the base expression in A is
// ever visited, matching the rule that "a.b.c" only reads "a".
func (l *Linter) markReads(id ast.NodeID) {
	if id == ast.NoNodeID {
		return
	}
	n := l.tree.Node(id)
	if n == nil {
		return
	}
	if n.Kind == ast.KindIdent {
		if sym := l.res.Lookup(n.Name); sym.IsValid() {
			l.res.MarkRead(sym)
		}
		return
	}
	l.markReads(n.A)
	l.markReads(n.B)
	l.markReads(n.C)
	for _, k := range n.Kids {
		l.markReads(k)
	}
	for _, k := range n.Aux {
		l.markReads(k)
	}
}

func (l *Linter) checkUnused(scope symbols.ScopeID) {
	sc := l.tbl.Scope(scope)
	if sc == nil {
		return
	}
	for _, symID := range sc.Symbols {
		sym := l.tbl.Symbol(symID)
		if sym == nil || sym.Flags&symbols.SymbolFlagRead != 0 {
			continue
		}
		name, ok := l.strings.Lookup(sym.Name)
		if !ok || strings.HasPrefix(name, "_") {
			continue
		}
		l.bag.Add(diag.NewWarning(diag.LintUnusedBinding, sym.Span, "unused binding '"+name+"'"))
	}
}
