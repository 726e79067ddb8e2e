package parser

import (
	"testing"

	"github.com/vitte-lang/vitte-sub005/internal/ast"
	"github.com/vitte-lang/vitte-sub005/internal/diag"
	"github.com/vitte-lang/vitte-sub005/internal/source"
)

func newBuilder() *ast.Builder {
	return ast.NewBuilder(source.NewInterner())
}

func TestParseCoreFnWithParamsAndReturn(t *testing.T) {
	b := newBuilder()
	bag := diag.NewBag()
	root := ParseCore(source.FileID(0), []byte(`
		fn add(a: int, b: int) -> int
			return a + b
		.end
	`), b, bag, Options{})

	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	file := b.Tree.Node(root)
	if len(file.Kids) != 1 {
		t.Fatalf("expected 1 top-level item, got %d", len(file.Kids))
	}
	fn := b.Tree.Node(file.Kids[0])
	if fn.Kind != ast.KindFn {
		t.Fatalf("expected KindFn, got %s", fn.Kind)
	}
	if got, _ := b.Strings.Lookup(fn.Name); got != "add" {
		t.Errorf("expected fn name 'add', got %q", got)
	}
	if len(fn.Kids) != 2 {
		t.Fatalf("expected 2 param kids, got %d", len(fn.Kids))
	}
	retType := b.Tree.Node(fn.A)
	if retType == nil || retType.Kind != ast.KindIdent {
		t.Fatalf("expected a return type ident node")
	}
	body := b.Tree.Node(fn.B)
	if body.Kind != ast.KindBlock || len(body.Kids) != 1 {
		t.Fatalf("expected a block with 1 statement, got %+v", body)
	}
	ret := b.Tree.Node(body.Kids[0])
	if ret.Kind != ast.KindReturn {
		t.Fatalf("expected KindReturn, got %s", ret.Kind)
	}
	binExpr := b.Tree.Node(ret.A)
	if binExpr.Kind != ast.KindBinary {
		t.Fatalf("expected return expr to be a binary op, got %s", binExpr.Kind)
	}
}

func TestParseCoreModuleAndUse(t *testing.T) {
	b := newBuilder()
	bag := diag.NewBag()
	root := ParseCore(source.FileID(0), []byte(`
		module app.main;
		use std.io;
	`), b, bag, Options{})
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	file := b.Tree.Node(root)
	if len(file.Kids) != 2 {
		t.Fatalf("expected 2 items, got %d", len(file.Kids))
	}
	mod := b.Tree.Node(file.Kids[0])
	if mod.Kind != ast.KindModule {
		t.Fatalf("expected KindModule, got %s", mod.Kind)
	}
	if got, _ := b.Strings.Lookup(mod.Name); got != "app.main" {
		t.Errorf("expected joined path 'app.main', got %q", got)
	}
	use := b.Tree.Node(file.Kids[1])
	if use.Kind != ast.KindUse || len(use.Aux) != 2 {
		t.Fatalf("expected a use item with 2 path segments, got %+v", use)
	}
}

func TestParseCoreModuleWithoutSemicolon(t *testing.T) {
	b := newBuilder()
	bag := diag.NewBag()
	root := ParseCore(source.FileID(0), []byte(`
		module app.main
		use std.io
	`), b, bag, Options{})
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	file := b.Tree.Node(root)
	if len(file.Kids) != 2 {
		t.Fatalf("expected 2 items, got %d", len(file.Kids))
	}
}

func TestParseCoreIfElifElse(t *testing.T) {
	b := newBuilder()
	bag := diag.NewBag()
	root := ParseCore(source.FileID(0), []byte(`
		fn f() -> int
			if a
				return 1
			elif b
				return 2
			else
				return 3
			.end
		.end
	`), b, bag, Options{})
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	file := b.Tree.Node(root)
	fn := b.Tree.Node(file.Kids[0])
	body := b.Tree.Node(fn.B)
	ifNode := b.Tree.Node(body.Kids[0])
	if ifNode.Kind != ast.KindIf {
		t.Fatalf("expected KindIf, got %s", ifNode.Kind)
	}
	if len(ifNode.Aux) != 1 {
		t.Fatalf("expected 1 elif arm, got %d", len(ifNode.Aux))
	}
	if ifNode.C == ast.NoNodeID {
		t.Fatal("expected an else block")
	}
}

func TestParseCoreEntrypointItem(t *testing.T) {
	b := newBuilder()
	bag := diag.NewBag()
	root := ParseCore(source.FileID(0), []byte(`
		prog main
			let x = 1;
		.end
	`), b, bag, Options{})
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	file := b.Tree.Node(root)
	ep := b.Tree.Node(file.Kids[0])
	if ep.Kind != ast.KindEntrypoint {
		t.Fatalf("expected KindEntrypoint, got %s", ep.Kind)
	}
	if got, _ := b.Strings.Lookup(ep.Name); got != "main" {
		t.Errorf("expected entrypoint name 'main', got %q", got)
	}
}

func TestParseCoreRecoversFromMalformedItem(t *testing.T) {
	b := newBuilder()
	bag := diag.NewBag()
	root := ParseCore(source.FileID(0), []byte(`
		@@@ garbage
		fn ok() -> int return 0 .end
	`), b, bag, Options{})
	if !bag.HasErrors() {
		t.Fatal("expected at least one diagnostic for the garbage tokens")
	}
	file := b.Tree.Node(root)
	found := false
	for _, kid := range file.Kids {
		if b.Tree.Node(kid).Kind == ast.KindFn {
			found = true
		}
	}
	if !found {
		t.Fatal("parser should have recovered and still parsed the trailing fn item")
	}
}

func TestParseCoreMaxTopItemsBudget(t *testing.T) {
	b := newBuilder()
	bag := diag.NewBag()
	src := "fn a() -> int return 0 .end fn b() -> int return 0 .end fn c() -> int return 0 .end"
	root := ParseCore(source.FileID(0), []byte(src), b, bag, Options{MaxTopItems: 2})
	file := b.Tree.Node(root)
	if len(file.Kids) != 2 {
		t.Fatalf("expected exactly 2 items under the budget, got %d", len(file.Kids))
	}
	if !bag.HasErrors() {
		t.Fatal("expected a budget-reached diagnostic")
	}
}

// TestParseCoreMinimalProgramScenario mirrors spec §8 scenario 1 literally:
// a brace-free, ".end"-terminated module+fn file must parse with 0
// diagnostics.
func TestParseCoreMinimalProgramScenario(t *testing.T) {
	b := newBuilder()
	bag := diag.NewBag()
	root := ParseCore(source.FileID(0), []byte("module demo\nfn main() -> i32\n  return 0\n.end\n"), b, bag, Options{})
	if bag.HasErrors() {
		t.Fatalf("expected 0 diagnostics, got %v", bag.Items())
	}
	file := b.Tree.Node(root)
	if len(file.Kids) != 2 {
		t.Fatalf("expected module+fn items, got %d", len(file.Kids))
	}
	mod := b.Tree.Node(file.Kids[0])
	if mod.Kind != ast.KindModule {
		t.Fatalf("expected KindModule, got %s", mod.Kind)
	}
	if got, _ := b.Strings.Lookup(mod.Name); got != "demo" {
		t.Errorf("expected module name 'demo', got %q", got)
	}
	fn := b.Tree.Node(file.Kids[1])
	if fn.Kind != ast.KindFn {
		t.Fatalf("expected KindFn, got %s", fn.Kind)
	}
	if got, _ := b.Strings.Lookup(fn.Name); got != "main" {
		t.Errorf("expected fn name 'main', got %q", got)
	}
	body := b.Tree.Node(fn.B)
	if body.Kind != ast.KindBlock || len(body.Kids) != 1 {
		t.Fatalf("expected a single-statement body, got %+v", body)
	}
	ret := b.Tree.Node(body.Kids[0])
	if ret.Kind != ast.KindReturn {
		t.Fatalf("expected KindReturn, got %s", ret.Kind)
	}
}

// TestParseCoreDuplicateDefinitionScenario mirrors spec §8 scenario 2's
// source shape: two brace-free fn items on one line each, both parsing
// cleanly (duplicate detection itself is sema's job, not the parser's).
func TestParseCoreDuplicateDefinitionScenario(t *testing.T) {
	b := newBuilder()
	bag := diag.NewBag()
	root := ParseCore(source.FileID(0), []byte("fn f() -> i32 return 0 .end\nfn f() -> i32 return 1 .end\n"), b, bag, Options{})
	if bag.HasErrors() {
		t.Fatalf("expected 0 parse diagnostics, got %v", bag.Items())
	}
	file := b.Tree.Node(root)
	if len(file.Kids) != 2 {
		t.Fatalf("expected 2 fn items, got %d", len(file.Kids))
	}
	for _, kid := range file.Kids {
		if b.Tree.Node(kid).Kind != ast.KindFn {
			t.Fatalf("expected both items to be KindFn, got %+v", b.Tree.Node(kid))
		}
	}
}

func TestParsePhraseProgAndStatements(t *testing.T) {
	b := newBuilder()
	bag := diag.NewBag()
	root := ParsePhrase(source.FileID(0), []byte(`
		prog main
			set x = 1;
			say x;
			do x;
			ret x;
		.end
	`), b, bag, Options{})
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	file := b.Tree.Node(root)
	prog := b.Tree.Node(file.Kids[0])
	if prog.Kind != ast.KindPProg {
		t.Fatalf("expected KindPProg, got %s", prog.Kind)
	}
	block := b.Tree.Node(prog.A)
	if len(block.Kids) != 4 {
		t.Fatalf("expected 4 statements, got %d", len(block.Kids))
	}
	wantKinds := []ast.Kind{ast.KindPSet, ast.KindPSay, ast.KindPDo, ast.KindPRet}
	for i, want := range wantKinds {
		got := b.Tree.Node(block.Kids[i]).Kind
		if got != want {
			t.Errorf("statement %d: got %s, want %s", i, got, want)
		}
	}
}

func TestParsePhraseWhenWithElse(t *testing.T) {
	b := newBuilder()
	bag := diag.NewBag()
	root := ParsePhrase(source.FileID(0), []byte(`
		prog main
			when x
				say x;
			else
				say x;
			.end
		.end
	`), b, bag, Options{})
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	file := b.Tree.Node(root)
	prog := b.Tree.Node(file.Kids[0])
	block := b.Tree.Node(prog.A)
	when := b.Tree.Node(block.Kids[0])
	if when.Kind != ast.KindPWhen {
		t.Fatalf("expected KindPWhen, got %s", when.Kind)
	}
	if len(when.Aux) != 1 {
		t.Fatalf("expected 1 else arm, got %d", len(when.Aux))
	}
	arm := b.Tree.Node(when.Aux[0])
	if arm.Kind != ast.KindPWhenArm || arm.I64 != 1 {
		t.Fatalf("expected an else-flagged PWhenArm, got %+v", arm)
	}
}

// TestParsePhraseWhenMultiArm covers spec.md:134's repeatable "when" chain:
// several condition arms followed by a final "else" default.
func TestParsePhraseWhenMultiArm(t *testing.T) {
	b := newBuilder()
	bag := diag.NewBag()
	root := ParsePhrase(source.FileID(0), []byte(`
		prog main
			when x
				say x;
			when y
				say y;
			when z
				say z;
			else
				say x;
			.end
		.end
	`), b, bag, Options{})
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	file := b.Tree.Node(root)
	prog := b.Tree.Node(file.Kids[0])
	block := b.Tree.Node(prog.A)
	when := b.Tree.Node(block.Kids[0])
	if when.Kind != ast.KindPWhen {
		t.Fatalf("expected KindPWhen, got %s", when.Kind)
	}
	if len(when.Aux) != 3 {
		t.Fatalf("expected 2 'when' arms plus 1 else arm, got %d", len(when.Aux))
	}
	for i := 0; i < 2; i++ {
		arm := b.Tree.Node(when.Aux[i])
		if arm.Kind != ast.KindPWhenArm || arm.I64 != 0 || arm.A == ast.NoNodeID {
			t.Fatalf("arm %d: expected a conditioned PWhenArm, got %+v", i, arm)
		}
	}
	last := b.Tree.Node(when.Aux[2])
	if last.Kind != ast.KindPWhenArm || last.I64 != 1 {
		t.Fatalf("expected the final arm to be else-flagged, got %+v", last)
	}
}

func TestParsePhraseLoopFromToStep(t *testing.T) {
	b := newBuilder()
	bag := diag.NewBag()
	root := ParsePhrase(source.FileID(0), []byte(`
		prog main
			loop i from 0 to 10 step 2
				say i;
			.end
		.end
	`), b, bag, Options{})
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	file := b.Tree.Node(root)
	prog := b.Tree.Node(file.Kids[0])
	block := b.Tree.Node(prog.A)
	loop := b.Tree.Node(block.Kids[0])
	if loop.Kind != ast.KindPLoop {
		t.Fatalf("expected KindPLoop, got %s", loop.Kind)
	}
	if got, _ := b.Strings.Lookup(loop.Name); got != "i" {
		t.Errorf("expected loop var 'i', got %q", got)
	}
	if loop.C == ast.NoNodeID {
		t.Fatal("expected a step expression to be recorded")
	}
}

func TestParsePhraseMissingDotEndReportsSynMissingEnd(t *testing.T) {
	b := newBuilder()
	bag := diag.NewBag()
	ParsePhrase(source.FileID(0), []byte(`
		prog main
			say 1;
	`), b, bag, Options{})
	if !bag.HasErrors() {
		t.Fatal("expected a missing '.end' diagnostic")
	}
	found := false
	for _, d := range bag.Items() {
		if d.Code == diag.SynMissingEnd {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected SynMissingEnd among diagnostics, got %v", bag.Items())
	}
}

func TestBareEndIdentifierDoesNotCloseAPhraseBlock(t *testing.T) {
	b := newBuilder()
	bag := diag.NewBag()
	// A bare "end" identifier (no leading dot) must not satisfy expectDotEnd:
	// only the lexer's synthetic ".end" token does, so the block parser
	// treats bare "end" as a (malformed) statement and keeps going until it
	// reaches the real ".end".
	root := ParsePhrase(source.FileID(0), []byte(`
		prog main
			say 1;
		end
		.end
	`), b, bag, Options{})
	if !bag.HasErrors() {
		t.Fatal("expected a diagnostic for the bare 'end' identifier treated as a statement")
	}
	file := b.Tree.Node(root)
	prog := b.Tree.Node(file.Kids[0])
	if prog.Kind != ast.KindPProg {
		t.Fatalf("expected the prog item to still parse, got %s", prog.Kind)
	}
}
