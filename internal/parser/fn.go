package parser

import (
	"github.com/vitte-lang/vitte-sub005/internal/ast"
	"github.com/vitte-lang/vitte-sub005/internal/diag"
	"github.com/vitte-lang/vitte-sub005/internal/token"
)

// parseFnItem parses `fn name(params) [-> type] block`. Parameter and
// return type annotations are a single identifier: the bootstrap front end
// resolves types nominally, with no generics or compound type expressions.
func (p *Parser) parseFnItem() ast.NodeID {
	start := p.advance() // 'fn'
	id := p.node(ast.KindFn, start.Span)
	if name, ok := p.expect(token.Ident, "a function name"); ok {
		p.b.SetName(id, name.Text)
	}

	if _, ok := p.expect(token.LParen, "'('"); ok {
		p.parseFnParams(id)
	} else {
		p.syncTo()
	}

	n := p.b.Tree.Node(id)
	if p.at(token.Arrow) {
		p.advance()
		if retName, ok := p.expect(token.Ident, "a return type"); ok {
			ret := p.node(ast.KindIdent, retName.Span)
			p.b.SetName(ret, retName.Text)
			n.A = ret
		}
	}

	body := p.parseBlock()
	n.B = body
	p.expectDotEnd(id)
	return id
}

func (p *Parser) parseFnParams(fn ast.NodeID) {
	if p.at(token.RParen) {
		p.advance()
		return
	}
	for {
		nameTok, ok := p.expect(token.Ident, "a parameter name")
		if !ok {
			p.syncTo(token.RParen)
			break
		}
		param := p.node(ast.KindFnParam, nameTok.Span)
		p.b.SetName(param, nameTok.Text)
		if p.at(token.Colon) {
			p.advance()
			if typeName, ok := p.expect(token.Ident, "a parameter type"); ok {
				typ := p.node(ast.KindIdent, typeName.Span)
				p.b.SetName(typ, typeName.Text)
				n := p.b.Tree.Node(param)
				n.A = typ
				p.b.Extend(param, typeName.Span)
			}
		}
		p.b.AddKid(fn, param)
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	if close, ok := p.expect(token.RParen, "')'"); ok {
		p.b.Extend(fn, close.Span)
	} else {
		p.errorf(diag.SynMissingParen, p.cur.Span, "missing closing parenthesis in parameter list")
		p.syncTo(token.RParen)
	}
}
