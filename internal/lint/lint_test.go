package lint

import (
	"testing"

	"github.com/vitte-lang/vitte-sub005/internal/ast"
	"github.com/vitte-lang/vitte-sub005/internal/diag"
	"github.com/vitte-lang/vitte-sub005/internal/parser"
	"github.com/vitte-lang/vitte-sub005/internal/source"
)

func parsePhrase(t *testing.T, src string) (*ast.Builder, ast.NodeID, *diag.Bag) {
	t.Helper()
	b := ast.NewBuilder(source.NewInterner())
	bag := diag.NewBag()
	root := parser.ParsePhrase(source.FileID(0), []byte(src), b, bag, parser.Options{})
	if bag.HasErrors() {
		t.Fatalf("unexpected parse errors: %v", bag.Items())
	}
	return b, root, bag
}

func codes(bag *diag.Bag) map[diag.Code]int {
	out := map[diag.Code]int{}
	for _, d := range bag.Items() {
		out[d.Code]++
	}
	return out
}

func TestUnusedBindingReported(t *testing.T) {
	b, root, _ := parsePhrase(t, `
		prog main
			set x = 1;
		.end
	`)
	bag := diag.NewBag()
	New(b.Tree, b.Strings, bag).LintFile(root)
	if got := codes(bag)[diag.LintUnusedBinding]; got != 1 {
		t.Fatalf("expected 1 unused-binding warning, got %d (%v)", got, bag.Items())
	}
}

func TestUnusedBindingSuppressedByUnderscorePrefix(t *testing.T) {
	b, root, _ := parsePhrase(t, `
		prog main
			set _x = 1;
		.end
	`)
	bag := diag.NewBag()
	New(b.Tree, b.Strings, bag).LintFile(root)
	if got := codes(bag)[diag.LintUnusedBinding]; got != 0 {
		t.Fatalf("expected no unused-binding warning for '_x', got %d", got)
	}
}

func TestBindingReadLaterIsNotUnused(t *testing.T) {
	b, root, _ := parsePhrase(t, `
		prog main
			set x = 1;
			say x;
		.end
	`)
	bag := diag.NewBag()
	New(b.Tree, b.Strings, bag).LintFile(root)
	if got := codes(bag)[diag.LintUnusedBinding]; got != 0 {
		t.Fatalf("expected no unused-binding warning, got %d (%v)", got, bag.Items())
	}
}

func TestShadowingInNestedWhenReported(t *testing.T) {
	b, root, _ := parsePhrase(t, `
		prog main
			set x = 1;
			when x
				set x = 2;
				say x;
			.end
		.end
	`)
	bag := diag.NewBag()
	New(b.Tree, b.Strings, bag).LintFile(root)
	if got := codes(bag)[diag.LintShadowing]; got != 1 {
		t.Fatalf("expected 1 shadowing warning, got %d (%v)", got, bag.Items())
	}
}

func TestSiblingBranchesDoNotShadowEachOther(t *testing.T) {
	b, root, _ := parsePhrase(t, `
		prog main
			when 1
				set x = 1;
				say x;
			else
				set x = 2;
				say x;
			.end
		.end
	`)
	bag := diag.NewBag()
	New(b.Tree, b.Strings, bag).LintFile(root)
	if got := codes(bag)[diag.LintShadowing]; got != 0 {
		t.Fatalf("expected no shadowing between sibling branches, got %d (%v)", got, bag.Items())
	}
}

func TestUnreachableAfterRetReported(t *testing.T) {
	b, root, _ := parsePhrase(t, `
		prog main
			ret 1;
			say 2;
		.end
	`)
	bag := diag.NewBag()
	New(b.Tree, b.Strings, bag).LintFile(root)
	if got := codes(bag)[diag.LintUnreachable]; got != 1 {
		t.Fatalf("expected 1 unreachable-code warning, got %d (%v)", got, bag.Items())
	}
}

func TestNoUnreachableWhenRetIsLastStatement(t *testing.T) {
	b, root, _ := parsePhrase(t, `
		prog main
			say 1;
			ret 1;
		.end
	`)
	bag := diag.NewBag()
	New(b.Tree, b.Strings, bag).LintFile(root)
	if got := codes(bag)[diag.LintUnreachable]; got != 0 {
		t.Fatalf("expected no unreachable-code warning, got %d (%v)", got, bag.Items())
	}
}

func TestLoopVariableCountsAsRead(t *testing.T) {
	b, root, _ := parsePhrase(t, `
		prog main
			loop i from 0 to 10
				say i;
			.end
		.end
	`)
	bag := diag.NewBag()
	New(b.Tree, b.Strings, bag).LintFile(root)
	if got := codes(bag)[diag.LintUnusedBinding]; got != 0 {
		t.Fatalf("expected no unused-binding warning for a read loop variable, got %d (%v)", got, bag.Items())
	}
}

func TestUnusedLoopVariableReported(t *testing.T) {
	b, root, _ := parsePhrase(t, `
		prog main
			loop i from 0 to 10
				say 1;
			.end
		.end
	`)
	bag := diag.NewBag()
	New(b.Tree, b.Strings, bag).LintFile(root)
	if got := codes(bag)[diag.LintUnusedBinding]; got != 1 {
		t.Fatalf("expected 1 unused-binding warning for the loop variable, got %d (%v)", got, bag.Items())
	}
}

func TestMemberAccessOnlyReadsBase(t *testing.T) {
	b, root, _ := parsePhrase(t, `
		prog main
			set x = 1;
			say x.field;
		.end
	`)
	bag := diag.NewBag()
	New(b.Tree, b.Strings, bag).LintFile(root)
	if got := codes(bag)[diag.LintUnusedBinding]; got != 0 {
		t.Fatalf("expected the member access to mark 'x' as read, got %d (%v)", got, bag.Items())
	}
}
