package token

import "github.com/vitte-lang/vitte-sub005/internal/source"

// Flags carries semantic bits orthogonal to Kind.
type Flags uint32

const (
	// FlagFromDotEnd is set on an End token produced by the two-character
	// ".end" sequence, distinguishing the phrase block terminator from a
	// hypothetical bare "end" identifier (spec §9 Open Questions). A plain
	// "end" identifier never carries this flag and is never lexed as End.
	FlagFromDotEnd Flags = 1 << iota
	// FlagUnterminated marks a string/char literal that hit EOF or a
	// newline before its closing quote.
	FlagUnterminated
	// FlagHasUnderscoreDigits marks a numeric literal that used '_' digit
	// separators, informational only.
	FlagHasUnderscoreDigits
)

// Token is a single lexed unit: its kind, source span, optional decoded
// text/value, and semantic flags.
type Token struct {
	Kind   Kind
	Span   source.Span
	Text   string // raw lexeme, or decoded literal text for strings/chars
	IntVal int64  // valid for IntLit/UintLit
	Flags  Flags
}

// IsLiteral reports whether t is a numeric, boolean, or string/char literal.
func (t Token) IsLiteral() bool { return t.Kind.IsLiteral() }

// IsKeyword reports whether t is a language keyword.
func (t Token) IsKeyword() bool { return t.Kind.IsKeyword() }

// IsIdent reports whether t is a plain identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// IsEnd reports whether t is the phrase block terminator produced by ".end".
func (t Token) IsEnd() bool { return t.Kind == End }
