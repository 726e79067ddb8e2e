package token

// keywords maps lowercase identifier text to its keyword Kind. Keyword
// matching is case-sensitive: only exact lowercase spellings are recognized,
// anything else lexes as a plain Ident.
var keywords = map[string]Kind{
	"module": KwModule, "use": KwUse, "export": KwExport, "fn": KwFn,
	"let": KwLet, "const": KwConst, "if": KwIf, "elif": KwElif, "else": KwElse,
	"while": KwWhile, "for": KwFor, "in": KwIn, "match": KwMatch,
	"return": KwReturn, "break": KwBreak, "continue": KwContinue,
	"scn": KwScn, "scenario": KwScenario,

	"prog": KwProg, "program": KwProgram, "service": KwService,
	"kernel": KwKernel, "driver": KwDriver, "tool": KwTool, "pipeline": KwPipeline,

	"mod": KwMod, "set": KwSet, "say": KwSay, "do": KwDo, "ret": KwRet,
	"when": KwWhen, "loop": KwLoop, "from": KwFrom, "to": KwTo, "step": KwStep,

	"true": BoolLit, "false": BoolLit, "nothing": NothingLit,
}

// LookupKeyword returns the Kind for an identifier's exact text and whether
// it matched a keyword.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
