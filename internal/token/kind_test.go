package token

import "testing"

func TestLookupKeyword(t *testing.T) {
	cases := map[string]Kind{
		"fn": KwFn, "let": KwLet, "while": KwWhile, "when": KwWhen,
		"prog": KwProg, "service": KwService, "true": BoolLit,
	}
	for text, want := range cases {
		got, ok := LookupKeyword(text)
		if !ok || got != want {
			t.Errorf("LookupKeyword(%q) = %v, %v, want %v, true", text, got, ok, want)
		}
	}
}

func TestLookupKeywordRejectsNonKeyword(t *testing.T) {
	if _, ok := LookupKeyword("notakeyword"); ok {
		t.Fatalf("expected notakeyword to not be a keyword")
	}
}

func TestLookupKeywordCaseSensitive(t *testing.T) {
	if _, ok := LookupKeyword("Fn"); ok {
		t.Fatalf("keyword matching must be case-sensitive")
	}
}

func TestIsEntrypointKeyword(t *testing.T) {
	for _, k := range []Kind{KwProg, KwProgram, KwService, KwKernel, KwDriver, KwTool, KwPipeline} {
		if !k.IsEntrypointKeyword() {
			t.Errorf("%v should be an entrypoint keyword", k)
		}
	}
	if KwFn.IsEntrypointKeyword() {
		t.Fatalf("fn must not be an entrypoint keyword")
	}
}

func TestKindStringKnownAndUnknown(t *testing.T) {
	if KwFn.String() != "fn" {
		t.Fatalf("KwFn.String() = %q, want fn", KwFn.String())
	}
	if Kind(250).String() != "unknown" {
		t.Fatalf("unregistered kind should render as unknown")
	}
}
