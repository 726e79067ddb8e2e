package sema

import (
	"testing"

	"github.com/vitte-lang/vitte-sub005/internal/ast"
	"github.com/vitte-lang/vitte-sub005/internal/diag"
	"github.com/vitte-lang/vitte-sub005/internal/parser"
	"github.com/vitte-lang/vitte-sub005/internal/source"
	"github.com/vitte-lang/vitte-sub005/internal/symbols"
	"github.com/vitte-lang/vitte-sub005/internal/types"
)

func parseCore(t *testing.T, src string) (*ast.Builder, ast.NodeID, *diag.Bag) {
	t.Helper()
	b := ast.NewBuilder(source.NewInterner())
	bag := diag.NewBag()
	root := parser.ParseCore(source.FileID(0), []byte(src), b, bag, parser.Options{})
	if bag.HasErrors() {
		t.Fatalf("unexpected parse errors: %v", bag.Items())
	}
	return b, root, bag
}

func TestResolvesParamsAndLocals(t *testing.T) {
	b, root, _ := parseCore(t, `
		fn add(a: int, b: int) -> int
			let c = a + b;
			return c;
		.end
	`)
	bag := diag.NewBag()
	r, _ := New(b.Tree, bag, types.NewInterner())
	r.ResolveFile(root)
	if bag.HasErrors() {
		t.Fatalf("unexpected resolve errors: %v", bag.Items())
	}
}

func TestLetBindingInfersLiteralType(t *testing.T) {
	b, root, _ := parseCore(t, `
		fn f() -> int
			let c = 'a';
			return 0;
		.end
	`)
	bag := diag.NewBag()
	tin := types.NewInterner()
	r, tbl := New(b.Tree, bag, tin)
	r.ResolveFile(root)
	if bag.HasErrors() {
		t.Fatalf("unexpected resolve errors: %v", bag.Items())
	}
	found := false
	for _, sym := range tbl.Symbols {
		if sym.Kind == symbols.SymbolLet && sym.Type == tin.Builtins().Char {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected the let binding's type to infer to char")
	}
}

func TestForwardReferenceBetweenFunctionsResolves(t *testing.T) {
	b, root, _ := parseCore(t, `
		fn a() -> unit
			b();
		.end
		fn b() -> unit .end
	`)
	bag := diag.NewBag()
	r, _ := New(b.Tree, bag, types.NewInterner())
	r.ResolveFile(root)
	if bag.HasErrors() {
		t.Fatalf("unexpected resolve errors: %v", bag.Items())
	}
}

func TestUnresolvedIdentifierReported(t *testing.T) {
	b, root, _ := parseCore(t, `
		fn f() -> unit
			return nonexistent;
		.end
	`)
	bag := diag.NewBag()
	r, _ := New(b.Tree, bag, types.NewInterner())
	r.ResolveFile(root)
	found := false
	for _, d := range bag.Items() {
		if d.Code == diag.SemaUnresolvedIdent {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected SemaUnresolvedIdent, got %v", bag.Items())
	}
}

func TestDuplicateTopLevelDefinitionReported(t *testing.T) {
	b, root, _ := parseCore(t, `
		fn f() -> unit .end
		fn f() -> unit .end
	`)
	bag := diag.NewBag()
	r, _ := New(b.Tree, bag, types.NewInterner())
	r.ResolveFile(root)
	found := false
	for _, d := range bag.Items() {
		if d.Code == diag.SemaDuplicateDefinition {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected SemaDuplicateDefinition, got %v", bag.Items())
	}
}

func TestBlockScopedLetDoesNotLeakToSiblingBlock(t *testing.T) {
	b, root, _ := parseCore(t, `
		fn f() -> unit
			if 1
				let x = 1;
			else
				return x;
			.end
		.end
	`)
	bag := diag.NewBag()
	r, _ := New(b.Tree, bag, types.NewInterner())
	r.ResolveFile(root)
	found := false
	for _, d := range bag.Items() {
		if d.Code == diag.SemaUnresolvedIdent {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected the else-branch reference to 'x' to be unresolved, got %v", bag.Items())
	}
}
