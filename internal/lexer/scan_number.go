package lexer

import (
	"strconv"
	"strings"

	"github.com/vitte-lang/vitte-sub005/internal/diag"
	"github.com/vitte-lang/vitte-sub005/internal/token"
)

// scanNumber scans decimal, 0x/0b/0o-prefixed integers, and floats. Digit
// separators ('_') are accepted only strictly between two digits, never
// leading or trailing a digit run (spec §9's conservative resolution of the
// underspecified underscore rule).
func (l *Lexer) scanNumber(start int) token.Token {
	isFloat := false

	if l.cur.peek() == '0' && (lower(l.cur.peekAt(1)) == 'x' || lower(l.cur.peekAt(1)) == 'b' || lower(l.cur.peekAt(1)) == 'o') {
		l.cur.advance()
		l.cur.advance()
		l.scanDigitRun(radixPredicate(lower(l.cur.src[start+1])))
	} else {
		l.scanDigitRun(isDigit)
		if l.cur.peek() == '.' && isDigit(l.cur.peekAt(1)) {
			isFloat = true
			l.cur.advance()
			l.scanDigitRun(isDigit)
		}
		if lower(l.cur.peek()) == 'e' && (isDigit(l.cur.peekAt(1)) || ((l.cur.peekAt(1) == '+' || l.cur.peekAt(1) == '-') && isDigit(l.cur.peekAt(2)))) {
			isFloat = true
			l.cur.advance()
			if l.cur.peek() == '+' || l.cur.peek() == '-' {
				l.cur.advance()
			}
			l.scanDigitRun(isDigit)
		}
	}

	unsigned := false
	if lower(l.cur.peek()) == 'u' && !isIdentCont(l.cur.peekAt(1)) {
		unsigned = true
		l.cur.advance()
	}

	raw := string(l.cur.src[start:l.cur.pos])
	span := l.span(start)
	clean := strings.ReplaceAll(strings.TrimSuffix(strings.TrimSuffix(raw, "u"), "U"), "_", "")

	switch {
	case isFloat:
		return token.Token{Kind: token.FloatLit, Span: span, Text: raw}
	case unsigned:
		v, err := strconv.ParseUint(clean, 0, 64)
		if err != nil {
			l.report(diag.LexBadNumber, span, "malformed numeric literal")
		}
		return token.Token{Kind: token.UintLit, Span: span, Text: raw, IntVal: int64(v)}
	default:
		v, err := strconv.ParseInt(clean, 0, 64)
		if err != nil {
			l.report(diag.LexBadNumber, span, "malformed numeric literal")
		}
		return token.Token{Kind: token.IntLit, Span: span, Text: raw, IntVal: v}
	}
}

// scanDigitRun consumes digits matching pred, plus '_' separators that sit
// strictly between two matching digits.
func (l *Lexer) scanDigitRun(pred func(byte) bool) {
	for !l.cur.eof() {
		b := l.cur.peek()
		if pred(b) {
			l.cur.advance()
			continue
		}
		if b == '_' && pred(l.cur.peekAt(1)) && l.cur.pos > 0 && pred(l.cur.peekAt(-1)) {
			l.cur.advance()
			continue
		}
		return
	}
}

func lower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b - 'A' + 'a'
	}
	return b
}

func radixPredicate(prefix byte) func(byte) bool {
	switch prefix {
	case 'x':
		return isHexDigit
	case 'b':
		return func(b byte) bool { return b == '0' || b == '1' }
	case 'o':
		return func(b byte) bool { return b >= '0' && b <= '7' }
	default:
		return isDigit
	}
}

func isHexDigit(b byte) bool {
	return isDigit(b) || (lower(b) >= 'a' && lower(b) <= 'f')
}
