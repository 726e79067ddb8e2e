// Package parser turns a token stream into the shared generic AST (spec
// §4.4). It exposes two entry points, ParseCore and ParsePhrase, which
// differ only in which item/statement grammar they recognize; every
// block-holding construct in both surfaces closes with a single ".end"
// token, and both allocate into the same ast.Builder and the same Node
// representation.
package parser

import (
	"github.com/vitte-lang/vitte-sub005/internal/ast"
	"github.com/vitte-lang/vitte-sub005/internal/diag"
	"github.com/vitte-lang/vitte-sub005/internal/lexer"
	"github.com/vitte-lang/vitte-sub005/internal/source"
	"github.com/vitte-lang/vitte-sub005/internal/token"
)

// Options configures one parse run.
type Options struct {
	// MaxTopItems bounds the number of top-level items a single file may
	// contribute, guarding against runaway input (spec §4.4). Zero means
	// unbounded.
	MaxTopItems int
}

// Parser holds one file's parsing state: a single-token lookahead over the
// lexer, the shared node builder, and the diagnostic sink.
type Parser struct {
	lx   *lexer.Lexer
	cur  token.Token
	b    *ast.Builder
	bag  *diag.Bag
	file source.FileID
	opts Options

	topItems int
}

func newParser(file source.FileID, src []byte, b *ast.Builder, bag *diag.Bag, opts Options) *Parser {
	lx := lexer.New(file, src, bag, lexer.Options{})
	p := &Parser{lx: lx, b: b, bag: bag, file: file, opts: opts}
	p.cur = p.lx.Next()
	return p
}

func (p *Parser) peek() token.Token { return p.cur }

func (p *Parser) at(k token.Kind) bool { return p.cur.Kind == k }

func (p *Parser) atAny(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.cur.Kind == k {
			return true
		}
	}
	return false
}

// advance consumes and returns the current token, pulling the next one from
// the lexer.
func (p *Parser) advance() token.Token {
	t := p.cur
	if t.Kind != token.EOF {
		p.cur = p.lx.Next()
	}
	return t
}

// expect consumes the current token if it matches k, reporting
// SynUnexpectedToken and returning ok=false otherwise. The cursor is never
// advanced on failure, so callers can fall through to resync logic.
func (p *Parser) expect(k token.Kind, what string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	p.errorf(diag.SynUnexpectedToken, p.cur.Span, "expected "+what+", found "+p.cur.Kind.String())
	return token.Token{}, false
}

func (p *Parser) errorf(code diag.Code, span source.Span, msg string) {
	if p.bag == nil {
		return
	}
	p.bag.Add(diag.NewError(code, span, msg))
}

// node is a small convenience wrapper: allocate then immediately return id.
func (p *Parser) node(kind ast.Kind, span source.Span) ast.NodeID {
	return p.b.New(kind, span)
}
