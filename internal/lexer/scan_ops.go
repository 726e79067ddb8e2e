package lexer

import (
	"github.com/vitte-lang/vitte-sub005/internal/diag"
	"github.com/vitte-lang/vitte-sub005/internal/token"
)

// two-byte and three-byte operators, longest-match first.
var multiByteOps = []struct {
	text string
	kind token.Kind
}{
	{"??", token.QuestionQuestion},
	{"==", token.EqEq},
	{"!=", token.BangEq},
	{"<=", token.LtEq},
	{">=", token.GtEq},
	{"&&", token.AndAnd},
	{"||", token.OrOr},
	{"::", token.ColonColon},
	{"->", token.Arrow},
	{"=>", token.FatArrow},
	{"+=", token.PlusAssign},
	{"-=", token.MinusAssign},
	{"*=", token.StarAssign},
	{"/=", token.SlashAssign},
	{"%=", token.PercentAssign},
	{"..", token.DotDot},
}

var singleByteOps = map[byte]token.Kind{
	'+': token.Plus, '-': token.Minus, '*': token.Star, '/': token.Slash,
	'%': token.Percent, '=': token.Assign, '!': token.Bang, '<': token.Lt,
	'>': token.Gt, '&': token.Amp, '|': token.Pipe, '^': token.Caret,
	'?': token.Question, ':': token.Colon, ';': token.Semicolon,
	',': token.Comma, '.': token.Dot, '(': token.LParen, ')': token.RParen,
	'{': token.LBrace, '}': token.RBrace, '[': token.LBracket, ']': token.RBracket,
	'@': token.At,
}

func (l *Lexer) scanOp(start int) token.Token {
	for _, op := range multiByteOps {
		if matchAt(l.cur, op.text) {
			for range op.text {
				l.cur.advance()
			}
			return token.Token{Kind: op.kind, Span: l.span(start), Text: op.text}
		}
	}

	b := l.cur.peek()
	if b == '.' && l.cur.peekAt(1) == 'e' && identAt(l.cur, 1, "end") {
		l.cur.advance() // '.'
		l.cur.advance() // e
		l.cur.advance() // n
		l.cur.advance() // d
		span := l.span(start)
		return token.Token{Kind: token.End, Span: span, Text: ".end", Flags: token.FlagFromDotEnd}
	}

	if kind, ok := singleByteOps[b]; ok {
		l.cur.advance()
		return token.Token{Kind: kind, Span: l.span(start), Text: string(b)}
	}

	// Invalid byte: emit an Invalid token covering exactly one byte and
	// advance past it so the parser can resync (spec §4.3).
	l.cur.advance()
	span := l.span(start)
	l.report(diag.LexUnknownByte, span, "unrecognized byte")
	return token.Token{Kind: token.Invalid, Span: span}
}

func matchAt(c *cursor, text string) bool {
	for i := 0; i < len(text); i++ {
		if c.peekAt(i) != text[i] {
			return false
		}
	}
	return true
}

// identAt reports whether the identifier word starting at offset off equals
// word, and is not itself followed by another identifier character (so
// ".ended" does not fold into END + "ed").
func identAt(c *cursor, off int, word string) bool {
	for i := 0; i < len(word); i++ {
		if c.peekAt(off+i) != word[i] {
			return false
		}
	}
	return !isIdentCont(c.peekAt(off + len(word)))
}
