package lexer

import (
	"strings"

	"github.com/vitte-lang/vitte-sub005/internal/diag"
	"github.com/vitte-lang/vitte-sub005/internal/token"
)

func (l *Lexer) scanString(start int) token.Token {
	l.cur.advance() // opening quote
	var decoded strings.Builder
	terminated := false
	for !l.cur.eof() {
		b := l.cur.peek()
		if b == '"' {
			l.cur.advance()
			terminated = true
			break
		}
		if b == '\n' {
			break
		}
		if b == '\\' {
			l.cur.advance()
			decoded.WriteByte(decodeEscape(l.cur))
			continue
		}
		decoded.WriteByte(b)
		l.cur.advance()
	}
	span := l.span(start)
	tok := token.Token{Kind: token.StringLit, Span: span, Text: decoded.String()}
	if !terminated {
		tok.Flags |= token.FlagUnterminated
		l.report(diag.LexUnterminatedString, span, "unterminated string")
	}
	return tok
}

func (l *Lexer) scanChar(start int) token.Token {
	l.cur.advance() // opening quote
	var value byte
	terminated := false
	if !l.cur.eof() && l.cur.peek() != '\'' {
		if l.cur.peek() == '\\' {
			l.cur.advance()
			value = decodeEscape(l.cur)
		} else {
			value = l.cur.peek()
			l.cur.advance()
		}
	}
	if l.cur.peek() == '\'' {
		l.cur.advance()
		terminated = true
	}
	span := l.span(start)
	tok := token.Token{Kind: token.CharLit, Span: span, Text: string(value), IntVal: int64(value)}
	if !terminated {
		tok.Flags |= token.FlagUnterminated
		l.report(diag.LexUnterminatedChar, span, "unterminated character literal")
	}
	return tok
}

// decodeEscape decodes the byte following a backslash. The cursor is
// positioned just after the backslash on entry and is advanced past the
// escape sequence.
func decodeEscape(c *cursor) byte {
	if c.eof() {
		return '\\'
	}
	b := c.advance()
	switch b {
	case 'n':
		return '\n'
	case 'r':
		return '\r'
	case 't':
		return '\t'
	case '\\':
		return '\\'
	case '"':
		return '"'
	case '\'':
		return '\''
	default:
		return b
	}
}
