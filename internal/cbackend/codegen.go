package cbackend

import (
	"fmt"
	"io"

	"github.com/vitte-lang/vitte-sub005/internal/ast"
	"github.com/vitte-lang/vitte-sub005/internal/source"
	"github.com/vitte-lang/vitte-sub005/internal/symbols"
	"github.com/vitte-lang/vitte-sub005/internal/token"
)

// Generator lowers a resolved core-surface AST to C99, grounded on
// c_emit.c's emission idiom and spec §4.8's "statement and expression
// lowering follows the recursive-descent shape of the parser" guidance.
// Only the core surface is lowered: the driver refuses C emission for a
// phrase-surface file (spec §4.8, non-goal: no phrase-to-C lowering, since
// phrase files exist only for linting, never for codegen).
type Generator struct {
	tree    *ast.Tree
	strings *source.Interner
	syms    *symbols.Table
	e       *Emitter
	module  string
}

// NewGenerator creates a Generator writing through e. module is the
// dotted/slash module path used as the mangling namespace for every
// top-level name emitted (spec §4.8).
func NewGenerator(tree *ast.Tree, strings *source.Interner, syms *symbols.Table, module string, w io.Writer) *Generator {
	return &Generator{tree: tree, strings: strings, syms: syms, e: NewEmitter(w), module: module}
}

func (g *Generator) name(id source.StringID) string {
	s, _ := g.strings.Lookup(id)
	return s
}

// EmitFile lowers every KindFn in file's top-level items, preceded by the
// standard preamble (include guard, stdint/stdbool headers).
func (g *Generator) EmitFile(file ast.NodeID, headerGuard string) error {
	g.e.GuardBegin(headerGuard)
	g.e.PPInclude("stdint.h", true)
	g.e.PPInclude("stdbool.h", true)
	g.e.NL()

	f := g.tree.Node(file)
	if f != nil {
		for _, kid := range f.Kids {
			n := g.tree.Node(kid)
			if n == nil || n.Kind != ast.KindFn {
				continue
			}
			g.emitFn(kid)
			g.e.NL()
		}
	}

	g.e.GuardEnd(headerGuard)
	if err := g.e.Flush(); err != nil {
		return err
	}
	return g.e.Err()
}

// cType maps a nominal type identifier to its C spelling. The bootstrap
// front end has no generics or compound type expressions (spec §4.8), so
// this is a flat lookup with "void*" as the fallback for any user-defined
// or unresolved name; full layout lowering is future work.
func cType(name string) string {
	switch name {
	case "", "nothing":
		return "void"
	case "int":
		return "int64_t"
	case "uint":
		return "uint64_t"
	case "float":
		return "double"
	case "bool":
		return "bool"
	case "string":
		return "const char*"
	case "char":
		return "char"
	default:
		return "void*"
	}
}

func (g *Generator) emitFn(id ast.NodeID) {
	n := g.tree.Node(id)
	fnName := g.name(n.Name)
	retType := "void"
	if n.A != ast.NoNodeID {
		retType = cType(g.name(g.tree.Node(n.A).Name))
	}

	mangled := MangleFn(g.module, fnName, "")
	g.e.Printf("%s %s(", retType, mangled)
	first := true
	for _, paramID := range n.Kids {
		p := g.tree.Node(paramID)
		if p == nil || p.Kind != ast.KindFnParam {
			continue
		}
		if !first {
			g.e.Write(", ")
		}
		first = false
		pType := "void*"
		if p.A != ast.NoNodeID {
			pType = cType(g.name(g.tree.Node(p.A).Name))
		}
		g.e.Printf("%s ", pType)
		g.e.Ident(g.name(p.Name))
	}
	if first {
		g.e.Write("void")
	}
	g.e.Write(")")
	g.e.NL()
	g.emitBlock(n.B)
}

func (g *Generator) emitBlock(id ast.NodeID) {
	block := g.tree.Node(id)
	g.e.BlockBegin()
	if block != nil {
		for _, stmtID := range block.Kids {
			g.emitStmt(stmtID)
		}
	}
	g.e.BlockEndLn()
}

func (g *Generator) emitStmt(id ast.NodeID) {
	n := g.tree.Node(id)
	if n == nil {
		return
	}
	switch n.Kind {
	case ast.KindLet:
		typ := "void*"
		if n.A != ast.NoNodeID {
			typ = cType(g.name(g.tree.Node(n.A).Name))
		}
		g.e.Printf("%s ", typ)
		g.e.Ident(g.name(n.Name))
		if n.B != ast.NoNodeID {
			g.e.Write(" = ")
			g.emitExpr(n.B)
		}
		g.e.Write(";")
		g.e.NL()
	case ast.KindIf:
		g.e.Write("if (")
		g.emitExpr(n.A)
		g.e.Write(") ")
		g.emitBlock(n.B)
		for _, armID := range n.Aux {
			arm := g.tree.Node(armID)
			if arm == nil {
				continue
			}
			g.e.Write("else if (")
			g.emitExpr(arm.A)
			g.e.Write(") ")
			g.emitBlock(arm.B)
		}
		if n.C != ast.NoNodeID {
			g.e.Write("else ")
			g.emitBlock(n.C)
		}
	case ast.KindWhile:
		g.e.Write("while (")
		g.emitExpr(n.A)
		g.e.Write(") ")
		g.emitBlock(n.B)
	case ast.KindFor:
		g.e.Printf("for (int64_t ")
		g.e.Ident(g.name(n.Name))
		g.e.Write(" = 0; ")
		g.e.Ident(g.name(n.Name))
		g.e.Write(" < ")
		g.emitExpr(n.A)
		g.e.Write("; ")
		g.e.Ident(g.name(n.Name))
		g.e.Write("++) ")
		g.emitBlock(n.B)
	case ast.KindMatch:
		g.emitMatch(n)
	case ast.KindReturn:
		g.e.Write("return")
		if n.A != ast.NoNodeID {
			g.e.Write(" ")
			g.emitExpr(n.A)
		}
		g.e.Write(";")
		g.e.NL()
	case ast.KindBreak:
		g.e.Write("break;")
		g.e.NL()
	case ast.KindContinue:
		g.e.Write("continue;")
		g.e.NL()
	case ast.KindExprStmt:
		g.emitExpr(n.A)
		g.e.Write(";")
		g.e.NL()
	}
}

// emitMatch lowers a match statement to a chain of "if/else if" comparisons
// against the scrutinee, since C has no structural pattern matching (spec
// §4.8's C backend targets C99, which lacks switch-on-arbitrary-value).
func (g *Generator) emitMatch(n *ast.Node) {
	scrutineeTmp := MangleTmp(0)
	g.e.Write("{ ")
	g.e.Printf("int64_t %s = ", scrutineeTmp)
	g.emitExpr(n.A)
	g.e.Write(";")
	g.e.NL()
	first := true
	for _, armID := range n.Kids {
		arm := g.tree.Node(armID)
		if arm == nil || arm.Kind != ast.KindMatchArm {
			continue
		}
		if first {
			g.e.Write("if (")
			first = false
		} else {
			g.e.Write("else if (")
		}
		g.e.Write(scrutineeTmp + " == ")
		g.emitExpr(arm.A)
		g.e.Write(") ")
		g.e.BlockBegin()
		g.emitStmt(arm.B)
		g.e.BlockEndLn()
	}
	g.e.BlockEndLn()
}

func (g *Generator) emitExpr(id ast.NodeID) {
	n := g.tree.Node(id)
	if n == nil {
		return
	}
	switch n.Kind {
	case ast.KindIdent:
		g.e.Ident(g.name(n.Name))
	case ast.KindIntLit:
		g.e.Printf("%d", n.I64)
	case ast.KindUintLit:
		g.e.Printf("%dU", n.I64)
	case ast.KindFloatLit:
		g.e.Printf("%g", n.F64)
	case ast.KindBoolLit:
		if n.I64 != 0 {
			g.e.Write("true")
		} else {
			g.e.Write("false")
		}
	case ast.KindStringLit:
		g.e.CStringLit(g.name(n.Text))
	case ast.KindCharLit:
		g.e.CharLit(rune(n.I64))
	case ast.KindNothingLit:
		g.e.Write("NULL")
	case ast.KindGroup:
		g.e.Write("(")
		g.emitExpr(n.A)
		g.e.Write(")")
	case ast.KindBinary:
		g.e.Write("(")
		g.emitExpr(n.A)
		g.e.Printf(" %s ", token.Kind(n.I64).String())
		g.emitExpr(n.B)
		g.e.Write(")")
	case ast.KindUnary:
		g.e.Printf("%s", token.Kind(n.I64).String())
		g.emitExpr(n.A)
	case ast.KindCall:
		// A direct call to a top-level function uses its mangled name.
		callee := g.tree.Node(n.A)
		var sym *symbols.Symbol
		if callee != nil && callee.Kind == ast.KindIdent && g.syms != nil {
			if global := g.syms.Scope(g.syms.Global); global != nil && len(global.NameIndex[callee.Name]) > 0 {
				sym = g.syms.Symbol(global.NameIndex[callee.Name][0])
			}
		}
		if sym != nil && sym.Kind == symbols.SymbolFunction {
			g.e.Write(MangleFn(g.module, g.name(callee.Name), ""))
		} else {
			g.emitExpr(n.A)
		}
		g.e.Write("(")
		firstArg := true
		for _, argID := range n.Kids[1:] {
			arg := g.tree.Node(argID)
			if arg == nil || arg.Kind != ast.KindCallArg {
				continue
			}
			if !firstArg {
				g.e.Write(", ")
			}
			firstArg = false
			g.emitExpr(arg.A)
		}
		g.e.Write(")")
	case ast.KindIndex:
		g.emitExpr(n.A)
		g.e.Write("[")
		g.emitExpr(n.B)
		g.e.Write("]")
	case ast.KindMember:
		g.emitExpr(n.A)
		g.e.Printf(".%s", g.name(n.Name))
	default:
		g.e.CommentLine(fmt.Sprintf("unsupported expression kind %s", n.Kind))
	}
}
