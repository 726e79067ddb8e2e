package lexer

import "github.com/vitte-lang/vitte-sub005/internal/token"

func (l *Lexer) scanIdent(start int) token.Token {
	for !l.cur.eof() && isIdentCont(l.cur.peek()) {
		l.cur.advance()
	}
	text := string(l.cur.src[start:l.cur.pos])
	span := l.span(start)

	if text == "_" {
		return token.Token{Kind: token.Underscore, Span: span, Text: text}
	}
	if kind, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: kind, Span: span, Text: text}
	}
	return token.Token{Kind: token.Ident, Span: span, Text: text}
}
