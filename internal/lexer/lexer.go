package lexer

import (
	"github.com/vitte-lang/vitte-sub005/internal/diag"
	"github.com/vitte-lang/vitte-sub005/internal/source"
	"github.com/vitte-lang/vitte-sub005/internal/token"
)

// Lexer scans one file's immutable byte slice into tokens on demand.
type Lexer struct {
	file source.FileID
	cur  *cursor
	opts Options
	bag  *diag.Bag
}

// New creates a Lexer over src, which must be the exact bytes registered
// for file in the session's FileSet (already CRLF/BOM normalized).
func New(file source.FileID, src []byte, bag *diag.Bag, opts Options) *Lexer {
	return &Lexer{file: file, cur: newCursor(src), opts: opts, bag: bag}
}

func (l *Lexer) span(start int) source.Span {
	return source.Span{File: l.file, Start: uint32(start), End: uint32(l.cur.pos)}
}

func (l *Lexer) pointSpan() source.Span {
	return source.Span{File: l.file, Start: uint32(l.cur.pos), End: uint32(l.cur.pos)}
}

// Next scans and returns the next token, skipping whitespace and comments.
// Next always terminates: on reaching end of input it returns an EOF token
// forever after.
func (l *Lexer) Next() token.Token {
	l.skipTrivia()
	if l.cur.eof() {
		return token.Token{Kind: token.EOF, Span: l.pointSpan()}
	}

	start := l.cur.pos
	b := l.cur.peek()

	var tok token.Token
	switch {
	case isIdentStart(b):
		tok = l.scanIdent(start)
	case isDigit(b):
		tok = l.scanNumber(start)
	case b == '"':
		tok = l.scanString(start)
	case b == '\'':
		tok = l.scanChar(start)
	default:
		tok = l.scanOp(start)
	}
	if limit := l.opts.MaxTokenLen; limit > 0 && int(tok.Span.Len()) > limit {
		l.report(diag.LexTokenTooLong, tok.Span, "token exceeds maximum length")
		if len(tok.Text) > limit {
			tok.Text = tok.Text[:limit]
		}
	}
	return tok
}

func (l *Lexer) skipTrivia() {
	for !l.cur.eof() {
		b := l.cur.peek()
		switch {
		case b == ' ' || b == '\t' || b == '\n' || b == '\r':
			l.cur.advance()
		case b == '/' && l.cur.peekAt(1) == '/':
			for !l.cur.eof() && l.cur.peek() != '\n' {
				l.cur.advance()
			}
		case b == '/' && l.cur.peekAt(1) == '*':
			l.cur.advance()
			l.cur.advance()
			closed := false
			for !l.cur.eof() {
				if l.cur.peek() == '*' && l.cur.peekAt(1) == '/' {
					l.cur.advance()
					l.cur.advance()
					closed = true
					break
				}
				l.cur.advance()
			}
			if !closed {
				l.report(diag.LexUnterminatedBlockCmt, l.pointSpan(), "unterminated block comment")
			}
		default:
			return
		}
	}
}

func (l *Lexer) report(code diag.Code, span source.Span, msg string) {
	if l.bag == nil {
		return
	}
	l.bag.Add(diag.NewError(code, span, msg))
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isIdentStart(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentCont(b byte) bool { return isIdentStart(b) || isDigit(b) }
