package cbackend

import (
	"strings"
	"testing"

	"github.com/vitte-lang/vitte-sub005/internal/ast"
	"github.com/vitte-lang/vitte-sub005/internal/diag"
	"github.com/vitte-lang/vitte-sub005/internal/parser"
	"github.com/vitte-lang/vitte-sub005/internal/sema"
	"github.com/vitte-lang/vitte-sub005/internal/source"
	"github.com/vitte-lang/vitte-sub005/internal/types"
)

func genC(t *testing.T, src string) string {
	t.Helper()
	strs := source.NewInterner()
	b := ast.NewBuilder(strs)
	bag := diag.NewBag()
	root := parser.ParseCore(source.FileID(0), []byte(src), b, bag, parser.Options{})
	if bag.HasErrors() {
		t.Fatalf("unexpected parse errors: %v", bag.Items())
	}
	r, tbl := sema.New(b.Tree, bag, types.NewInterner())
	r.ResolveFile(root)
	if bag.HasErrors() {
		t.Fatalf("unexpected resolve errors: %v", bag.Items())
	}
	var sb strings.Builder
	g := NewGenerator(b.Tree, strs, tbl, "demo", &sb)
	if err := g.EmitFile(root, "DEMO_H"); err != nil {
		t.Fatalf("emit error: %v", err)
	}
	return sb.String()
}

func TestEmitsFunctionSignatureAndMangledName(t *testing.T) {
	out := genC(t, `
		fn add(a: int, b: int) -> int
			return a + b;
		.end
	`)
	if !strings.Contains(out, "int64_t vitte_fn__demo__add(int64_t a, int64_t b)") {
		t.Fatalf("expected mangled signature in output, got:\n%s", out)
	}
	if !strings.Contains(out, "return (a + b);") {
		t.Fatalf("expected lowered return statement, got:\n%s", out)
	}
}

func TestEmitsIfElseAndLet(t *testing.T) {
	out := genC(t, `
		fn classify(x: int) -> int
			let y: int = 0;
			if x > 0
				return 1;
			else
				return y;
			.end
		.end
	`)
	if !strings.Contains(out, "if (") || !strings.Contains(out, "else {") {
		t.Fatalf("expected if/else lowering, got:\n%s", out)
	}
	if !strings.Contains(out, "int64_t y") {
		t.Fatalf("expected typed let declaration, got:\n%s", out)
	}
}

func TestHeaderGuardWrapsOutput(t *testing.T) {
	out := genC(t, `fn f() .end`)
	if !strings.HasPrefix(out, "#ifndef DEMO_H") {
		t.Fatalf("expected leading header guard, got:\n%s", out)
	}
	if !strings.Contains(out, "#endif /* DEMO_H */") {
		t.Fatalf("expected closing header guard, got:\n%s", out)
	}
}

func TestCallExpressionLowersArguments(t *testing.T) {
	out := genC(t, `
		fn add(a: int, b: int) -> int return a + b; .end
		fn f() -> int
			return add(1, 2);
		.end
	`)
	if !strings.Contains(out, "vitte_fn__demo__add(1, 2)") {
		t.Fatalf("expected call lowered with mangled callee, got:\n%s", out)
	}
}
