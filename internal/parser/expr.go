package parser

import (
	"github.com/vitte-lang/vitte-sub005/internal/ast"
	"github.com/vitte-lang/vitte-sub005/internal/diag"
	"github.com/vitte-lang/vitte-sub005/internal/token"
)

// parseExpr parses a full expression at the lowest precedence (logical or).
// Shared verbatim by both parser surfaces: phrase "set"/"say"/"do"/"when"
// all bottom out here.
func (p *Parser) parseExpr() ast.NodeID {
	return p.parseOr()
}

func (p *Parser) parseOr() ast.NodeID {
	left := p.parseAnd()
	for p.at(token.OrOr) {
		op := p.advance()
		right := p.parseAnd()
		left = p.binary(left, op, right)
	}
	return left
}

func (p *Parser) parseAnd() ast.NodeID {
	left := p.parseEquality()
	for p.at(token.AndAnd) {
		op := p.advance()
		right := p.parseEquality()
		left = p.binary(left, op, right)
	}
	return left
}

func (p *Parser) parseEquality() ast.NodeID {
	left := p.parseComparison()
	for p.atAny(token.EqEq, token.BangEq) {
		op := p.advance()
		right := p.parseComparison()
		left = p.binary(left, op, right)
	}
	return left
}

func (p *Parser) parseComparison() ast.NodeID {
	left := p.parseAdditive()
	for p.atAny(token.Lt, token.LtEq, token.Gt, token.GtEq) {
		op := p.advance()
		right := p.parseAdditive()
		left = p.binary(left, op, right)
	}
	return left
}

func (p *Parser) parseAdditive() ast.NodeID {
	left := p.parseMultiplicative()
	for p.atAny(token.Plus, token.Minus) {
		op := p.advance()
		right := p.parseMultiplicative()
		left = p.binary(left, op, right)
	}
	return left
}

func (p *Parser) parseMultiplicative() ast.NodeID {
	left := p.parseUnary()
	for p.atAny(token.Star, token.Slash, token.Percent) {
		op := p.advance()
		right := p.parseUnary()
		left = p.binary(left, op, right)
	}
	return left
}

func (p *Parser) binary(left ast.NodeID, op token.Token, right ast.NodeID) ast.NodeID {
	id := p.node(ast.KindBinary, op.Span)
	n := p.b.Tree.Node(id)
	n.A, n.B = left, right
	n.I64 = int64(op.Kind)
	p.b.AddKid(id, left)
	p.b.AddKid(id, right)
	return id
}

func (p *Parser) parseUnary() ast.NodeID {
	if p.atAny(token.Bang, token.Minus) {
		op := p.advance()
		operand := p.parseUnary()
		id := p.node(ast.KindUnary, op.Span)
		n := p.b.Tree.Node(id)
		n.A = operand
		n.I64 = int64(op.Kind)
		p.b.AddKid(id, operand)
		return id
	}
	return p.parsePostfix()
}

func (p *Parser) parsePostfix() ast.NodeID {
	expr := p.parsePrimary()
	for {
		switch {
		case p.at(token.LParen):
			expr = p.parseCall(expr)
		case p.at(token.LBracket):
			expr = p.parseIndex(expr)
		case p.at(token.Dot):
			expr = p.parseMember(expr)
		default:
			return expr
		}
	}
}

func (p *Parser) parseCall(callee ast.NodeID) ast.NodeID {
	open := p.advance() // '('
	id := p.node(ast.KindCall, open.Span)
	n := p.b.Tree.Node(id)
	n.A = callee
	p.b.AddKid(id, callee)
	if !p.at(token.RParen) {
		for {
			arg := p.parseExpr()
			argID := p.node(ast.KindCallArg, p.b.Tree.Node(arg).Span)
			p.b.Tree.Node(argID).A = arg
			p.b.AddKid(argID, arg)
			p.b.AddKid(id, argID)
			if !p.at(token.Comma) {
				break
			}
			p.advance()
		}
	}
	if close, ok := p.expect(token.RParen, "')'"); ok {
		p.b.Extend(id, close.Span)
	} else {
		p.errorf(diag.SynMissingParen, p.cur.Span, "missing closing parenthesis in call")
	}
	return id
}

func (p *Parser) parseIndex(base ast.NodeID) ast.NodeID {
	open := p.advance() // '['
	idx := p.parseExpr()
	id := p.node(ast.KindIndex, open.Span)
	n := p.b.Tree.Node(id)
	n.A, n.B = base, idx
	p.b.AddKid(id, base)
	p.b.AddKid(id, idx)
	if close, ok := p.expect(token.RBracket, "']'"); ok {
		p.b.Extend(id, close.Span)
	} else {
		p.errorf(diag.SynMissingBracket, p.cur.Span, "missing closing bracket in index expression")
	}
	return id
}

func (p *Parser) parseMember(base ast.NodeID) ast.NodeID {
	dot := p.advance() // '.'
	id := p.node(ast.KindMember, dot.Span)
	n := p.b.Tree.Node(id)
	n.A = base
	p.b.AddKid(id, base)
	if name, ok := p.expect(token.Ident, "field name"); ok {
		n.Name = p.b.Intern(name.Text)
		p.b.Extend(id, name.Span)
	}
	return id
}

func (p *Parser) parsePrimary() ast.NodeID {
	tok := p.cur
	switch tok.Kind {
	case token.Ident:
		p.advance()
		id := p.node(ast.KindIdent, tok.Span)
		p.b.SetName(id, tok.Text)
		return id
	case token.IntLit:
		p.advance()
		id := p.node(ast.KindIntLit, tok.Span)
		n := p.b.Tree.Node(id)
		n.I64 = tok.IntVal
		n.Text = p.b.Intern(tok.Text)
		return id
	case token.UintLit:
		p.advance()
		id := p.node(ast.KindUintLit, tok.Span)
		n := p.b.Tree.Node(id)
		n.I64 = tok.IntVal
		n.Text = p.b.Intern(tok.Text)
		return id
	case token.FloatLit:
		p.advance()
		id := p.node(ast.KindFloatLit, tok.Span)
		p.b.SetText(id, tok.Text)
		return id
	case token.BoolLit:
		p.advance()
		id := p.node(ast.KindBoolLit, tok.Span)
		n := p.b.Tree.Node(id)
		if tok.Text == "true" {
			n.I64 = 1
		}
		return id
	case token.StringLit:
		p.advance()
		id := p.node(ast.KindStringLit, tok.Span)
		p.b.SetText(id, tok.Text)
		return id
	case token.CharLit:
		p.advance()
		id := p.node(ast.KindCharLit, tok.Span)
		n := p.b.Tree.Node(id)
		n.I64 = tok.IntVal
		return id
	case token.NothingLit:
		p.advance()
		return p.node(ast.KindNothingLit, tok.Span)
	case token.LParen:
		p.advance()
		inner := p.parseExpr()
		id := p.node(ast.KindGroup, tok.Span)
		n := p.b.Tree.Node(id)
		n.A = inner
		p.b.AddKid(id, inner)
		if close, ok := p.expect(token.RParen, "')'"); ok {
			p.b.Extend(id, close.Span)
		} else {
			p.errorf(diag.SynMissingParen, p.cur.Span, "missing closing parenthesis")
		}
		return id
	default:
		p.errorf(diag.SynUnexpectedToken, tok.Span, "expected an expression, found "+tok.Kind.String())
		id := p.node(ast.KindErrorNode, tok.Span)
		if tok.Kind != token.EOF {
			p.advance()
		}
		return id
	}
}
