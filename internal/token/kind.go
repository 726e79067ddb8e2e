// Package token defines the closed set of lexical categories the lexer
// produces, shared by both the core and the phrase parser surfaces.
package token

// Kind classifies a single token.
type Kind uint8

const (
	// Invalid marks an erroneous token (one invalid byte, lexer resyncs by
	// advancing one byte and continuing).
	Invalid Kind = iota
	// EOF marks the end of input.
	EOF
	// Ident is an identifier that did not match a keyword.
	Ident

	// Core-surface keywords.
	KwModule
	KwUse
	KwExport
	KwFn
	KwLet
	KwConst
	KwIf
	KwElif
	KwElse
	KwWhile
	KwFor
	KwIn
	KwMatch
	KwReturn
	KwBreak
	KwContinue
	KwScn
	KwScenario

	// Entrypoint-kind keywords (spec §4.4 "entrypoint-kind keywords").
	KwProg
	KwProgram
	KwService
	KwKernel
	KwDriver
	KwTool
	KwPipeline

	// Phrase-surface keywords.
	KwMod
	KwSet
	KwSay
	KwDo
	KwRet
	KwWhen
	KwLoop
	KwFrom
	KwTo
	KwStep

	// END is always produced from ".end" (see FlagFromDotEnd on Token).
	End

	// Literal kinds.
	NothingLit
	IntLit
	UintLit
	FloatLit
	BoolLit
	StringLit
	CharLit

	// Punctuation and operators.
	Plus             // +
	Minus            // -
	Star             // *
	Slash            // /
	Percent          // %
	Assign           // =
	PlusAssign       // +=
	MinusAssign      // -=
	StarAssign       // *=
	SlashAssign      // /=
	PercentAssign    // %=
	EqEq             // ==
	Bang             // !
	BangEq           // !=
	Lt               // <
	LtEq             // <=
	Gt               // >
	GtEq             // >=
	Amp              // &
	Pipe             // |
	Caret            // ^
	AndAnd           // &&
	OrOr             // ||
	Question         // ?
	QuestionQuestion // ??
	Colon            // :
	ColonColon       // ::
	Semicolon        // ;
	Comma            // ,
	Dot              // .
	DotDot           // ..
	Arrow            // ->
	FatArrow         // =>
	LParen           // (
	RParen           // )
	LBrace           // {
	RBrace           // }
	LBracket         // [
	RBracket         // ]
	At               // @
	Underscore       // _
)

// String renders a human-readable name for diagnostics and tests.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

var kindNames = map[Kind]string{
	Invalid: "invalid", EOF: "eof", Ident: "ident",
	KwModule: "module", KwUse: "use", KwExport: "export", KwFn: "fn",
	KwLet: "let", KwConst: "const", KwIf: "if", KwElif: "elif", KwElse: "else",
	KwWhile: "while", KwFor: "for", KwIn: "in", KwMatch: "match",
	KwReturn: "return", KwBreak: "break", KwContinue: "continue",
	KwScn: "scn", KwScenario: "scenario",
	KwProg: "prog", KwProgram: "program", KwService: "service",
	KwKernel: "kernel", KwDriver: "driver", KwTool: "tool", KwPipeline: "pipeline",
	KwMod: "mod", KwSet: "set", KwSay: "say", KwDo: "do", KwRet: "ret",
	KwWhen: "when", KwLoop: "loop", KwFrom: "from", KwTo: "to", KwStep: "step",
	End: "end",
	NothingLit: "nothing", IntLit: "int", UintLit: "uint", FloatLit: "float",
	BoolLit: "bool", StringLit: "string", CharLit: "char",
	Plus: "+", Minus: "-", Star: "*", Slash: "/", Percent: "%", Assign: "=",
	PlusAssign: "+=", MinusAssign: "-=", StarAssign: "*=", SlashAssign: "/=",
	PercentAssign: "%=", EqEq: "==", Bang: "!", BangEq: "!=", Lt: "<",
	LtEq: "<=", Gt: ">", GtEq: ">=", Amp: "&", Pipe: "|", Caret: "^",
	AndAnd: "&&", OrOr: "||", Question: "?", QuestionQuestion: "??",
	Colon: ":", ColonColon: "::", Semicolon: ";", Comma: ",", Dot: ".",
	DotDot: "..", Arrow: "->", FatArrow: "=>", LParen: "(", RParen: ")",
	LBrace: "{", RBrace: "}", LBracket: "[", RBracket: "]", At: "@",
	Underscore: "_",
}

// IsLiteral reports whether k is a literal kind.
func (k Kind) IsLiteral() bool {
	switch k {
	case NothingLit, IntLit, UintLit, FloatLit, BoolLit, StringLit, CharLit:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether k is a language keyword (either surface).
func (k Kind) IsKeyword() bool {
	switch k {
	case KwModule, KwUse, KwExport, KwFn, KwLet, KwConst, KwIf, KwElif, KwElse,
		KwWhile, KwFor, KwIn, KwMatch, KwReturn, KwBreak, KwContinue, KwScn, KwScenario,
		KwProg, KwProgram, KwService, KwKernel, KwDriver, KwTool, KwPipeline,
		KwMod, KwSet, KwSay, KwDo, KwRet, KwWhen, KwLoop, KwFrom, KwTo, KwStep:
		return true
	default:
		return false
	}
}

// IsEntrypointKeyword reports whether k introduces an entrypoint item.
func (k Kind) IsEntrypointKeyword() bool {
	switch k {
	case KwProg, KwProgram, KwService, KwKernel, KwDriver, KwTool, KwPipeline:
		return true
	default:
		return false
	}
}
