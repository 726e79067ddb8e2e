package parser

import (
	"github.com/vitte-lang/vitte-sub005/internal/ast"
	"github.com/vitte-lang/vitte-sub005/internal/diag"
	"github.com/vitte-lang/vitte-sub005/internal/source"
	"github.com/vitte-lang/vitte-sub005/internal/token"
)

// ParsePhrase parses src as a phrase-surface file: mod/use/prog/scn items,
// each body delimited by ".end" (a single End token carrying
// token.FlagFromDotEnd) rather than braces. Statement bodies use the
// set/say/do/ret/when/loop sugar instead of the core surface's let/if/
// while/for.
func ParsePhrase(file source.FileID, src []byte, b *ast.Builder, bag *diag.Bag, opts Options) ast.NodeID {
	p := newParser(file, src, b, bag, opts)
	root := p.node(ast.KindFile, p.cur.Span)
	for !p.at(token.EOF) {
		if opts.MaxTopItems > 0 && p.topItems >= opts.MaxTopItems {
			p.errorf(diag.SynItemBudgetReached, p.cur.Span, "top-level item budget reached")
			break
		}
		before := p.cur
		item, ok := p.parsePhraseItem()
		if ok {
			p.b.AddKid(root, item)
			p.topItems++
		}
		if !p.at(token.EOF) && p.cur.Kind == before.Kind && p.cur.Span == before.Span {
			p.advance()
		}
	}
	p.b.Extend(root, p.cur.Span)
	return root
}

func (p *Parser) parsePhraseItem() (ast.NodeID, bool) {
	switch p.cur.Kind {
	case token.KwMod:
		return p.parsePMod(), true
	case token.KwUse:
		return p.parsePUse(), true
	case token.KwProg, token.KwProgram, token.KwService, token.KwKernel, token.KwDriver, token.KwTool, token.KwPipeline:
		return p.parsePProg(), true
	case token.KwScn, token.KwScenario:
		return p.parsePScn(), true
	default:
		p.errorf(diag.SynUnexpectedToken, p.cur.Span, "expected a phrase-surface item, found "+p.cur.Kind.String())
		p.syncTo(token.Semicolon)
		return ast.NoNodeID, false
	}
}

func (p *Parser) parsePMod() ast.NodeID {
	start := p.advance() // 'mod'
	id := p.node(ast.KindPMod, start.Span)
	path, pathSpan, ok := p.parseDottedPath()
	if ok {
		p.b.SetName(id, path)
		p.b.Extend(id, pathSpan)
	}
	if semi, ok := p.expect(token.Semicolon, "';'"); ok {
		p.b.Extend(id, semi.Span)
	} else {
		p.syncTo(token.Semicolon)
	}
	return id
}

func (p *Parser) parsePUse() ast.NodeID {
	start := p.advance() // 'use'
	id := p.node(ast.KindPUse, start.Span)
	path, pathSpan, ok := p.parseDottedPath()
	if ok {
		p.b.SetName(id, path)
		p.b.Extend(id, pathSpan)
	}
	if semi, ok := p.expect(token.Semicolon, "';'"); ok {
		p.b.Extend(id, semi.Span)
	} else {
		p.syncTo(token.Semicolon)
	}
	return id
}

func (p *Parser) parsePProg() ast.NodeID {
	kw := p.advance() // prog/program/service/kernel/driver/tool/pipeline
	id := p.node(ast.KindPProg, kw.Span)
	n := p.b.Tree.Node(id)
	n.I64 = int64(kw.Kind)
	if name, ok := p.expect(token.Ident, "an entrypoint name"); ok {
		p.b.SetName(id, name.Text)
	}
	body := p.parsePhraseBlock()
	n.A = body
	p.b.AddKid(id, body)
	p.expectDotEnd(id)
	return id
}

func (p *Parser) parsePScn() ast.NodeID {
	start := p.advance() // 'scn'/'scenario'
	id := p.node(ast.KindScn, start.Span)
	if name, ok := p.expect(token.Ident, "a scenario name"); ok {
		p.b.SetName(id, name.Text)
	}
	body := p.parsePhraseBlock()
	n := p.b.Tree.Node(id)
	n.A = body
	p.b.AddKid(id, body)
	p.expectDotEnd(id)
	return id
}

// expectDotEnd consumes the ".end" terminator, reporting SynMissingEnd and
// resyncing if the lexer never produced it. A bare "end" identifier (no
// FlagFromDotEnd) is deliberately NOT accepted here: only the lexer's
// synthetic dotted End token closes a phrase block (spec §9).
func (p *Parser) expectDotEnd(id ast.NodeID) {
	if p.at(token.End) {
		tok := p.advance()
		p.b.Extend(id, tok.Span)
		return
	}
	p.errorf(diag.SynMissingEnd, p.cur.Span, "missing '.end' terminator")
	p.syncTo(token.End)
}

// parsePhraseBlock parses a sequence of phrase statements up to (but not
// including) the next ".end", item starter, EOF, or any of stop. stop lets
// a "when" arm's block hand control back to the next "when"/"else" arm
// without consuming it, mirroring the core surface's parseBlock.
func (p *Parser) parsePhraseBlock(stop ...token.Kind) ast.NodeID {
	id := p.node(ast.KindBlock, p.cur.Span)
	for !p.at(token.End) && !p.at(token.EOF) && !isItemStarter(p.cur.Kind) && !p.atAny(stop...) {
		before := p.cur
		stmt, ok := p.parsePhraseStmt()
		if ok {
			p.b.AddKid(id, stmt)
		}
		if p.cur.Kind == before.Kind && p.cur.Span == before.Span && !p.at(token.End) && !p.atAny(stop...) {
			p.advance()
		}
	}
	return id
}

func (p *Parser) parsePhraseStmt() (ast.NodeID, bool) {
	switch p.cur.Kind {
	case token.KwSet:
		return p.parsePSet(), true
	case token.KwSay:
		return p.parsePSay(), true
	case token.KwDo:
		return p.parsePDo(), true
	case token.KwRet:
		return p.parsePRet(), true
	case token.KwWhen:
		return p.parsePWhen(), true
	case token.KwLoop:
		return p.parsePLoop(), true
	default:
		p.errorf(diag.SynUnexpectedToken, p.cur.Span, "expected a phrase statement, found "+p.cur.Kind.String())
		return ast.NoNodeID, false
	}
}

func (p *Parser) parsePSet() ast.NodeID {
	kw := p.advance() // 'set'
	id := p.node(ast.KindPSet, kw.Span)
	if name, ok := p.expect(token.Ident, "a binding name"); ok {
		p.b.SetName(id, name.Text)
	}
	if _, ok := p.expect(token.Assign, "'='"); ok {
		init := p.parseExpr()
		n := p.b.Tree.Node(id)
		n.B = init
		p.b.AddKid(id, init)
	} else {
		p.errorf(diag.SynMalformedSet, p.cur.Span, "expected '=' in set statement")
	}
	if semi, ok := p.expect(token.Semicolon, "';'"); ok {
		p.b.Extend(id, semi.Span)
	} else {
		p.syncTo(token.Semicolon)
	}
	return id
}

func (p *Parser) parsePSay() ast.NodeID {
	kw := p.advance() // 'say'
	id := p.node(ast.KindPSay, kw.Span)
	expr := p.parseExpr()
	n := p.b.Tree.Node(id)
	n.A = expr
	p.b.AddKid(id, expr)
	if semi, ok := p.expect(token.Semicolon, "';'"); ok {
		p.b.Extend(id, semi.Span)
	} else {
		p.errorf(diag.SynMalformedSay, p.cur.Span, "expected ';' after say statement")
		p.syncTo(token.Semicolon)
	}
	return id
}

func (p *Parser) parsePDo() ast.NodeID {
	kw := p.advance() // 'do'
	id := p.node(ast.KindPDo, kw.Span)
	expr := p.parseExpr()
	n := p.b.Tree.Node(id)
	n.A = expr
	p.b.AddKid(id, expr)
	if semi, ok := p.expect(token.Semicolon, "';'"); ok {
		p.b.Extend(id, semi.Span)
	} else {
		p.syncTo(token.Semicolon)
	}
	return id
}

func (p *Parser) parsePRet() ast.NodeID {
	kw := p.advance() // 'ret'
	id := p.node(ast.KindPRet, kw.Span)
	if !p.at(token.Semicolon) && !p.at(token.End) && !p.at(token.EOF) {
		expr := p.parseExpr()
		n := p.b.Tree.Node(id)
		n.A = expr
		p.b.AddKid(id, expr)
	}
	if p.at(token.Semicolon) {
		tok := p.advance()
		p.b.Extend(id, tok.Span)
	}
	return id
}

// parsePWhen parses `when <cond> block (when <cond> block)* (else block)?
// .end`: a repeatable chain of condition arms with only the final "else"
// slot acting as the default (spec.md:134). Every arm after the first is
// collected in id's Aux list; only the whole chain closes with ".end".
func (p *Parser) parsePWhen() ast.NodeID {
	kw := p.advance() // 'when'
	id := p.node(ast.KindPWhen, kw.Span)
	n := p.b.Tree.Node(id)
	n.A = p.parseExpr()
	p.b.AddKid(id, n.A)
	n.B = p.parsePhraseBlock(token.KwWhen, token.KwElse)
	p.b.AddKid(id, n.B)

	for p.at(token.KwWhen) {
		armStart := p.advance()
		arm := p.node(ast.KindPWhenArm, armStart.Span)
		an := p.b.Tree.Node(arm)
		an.A = p.parseExpr()
		p.b.AddKid(arm, an.A)
		an.B = p.parsePhraseBlock(token.KwWhen, token.KwElse)
		p.b.AddKid(arm, an.B)
		p.b.AddAux(id, arm)
	}
	if p.at(token.KwElse) {
		elseKw := p.advance()
		arm := p.node(ast.KindPWhenArm, elseKw.Span)
		an := p.b.Tree.Node(arm)
		an.I64 = 1 // explicit else arm (no condition)
		an.B = p.parsePhraseBlock()
		p.b.AddKid(arm, an.B)
		p.b.AddAux(id, arm)
	}
	p.expectDotEnd(id)
	return id
}

func (p *Parser) parsePLoop() ast.NodeID {
	kw := p.advance() // 'loop'
	id := p.node(ast.KindPLoop, kw.Span)
	if name, ok := p.expect(token.Ident, "a loop variable"); ok {
		p.b.SetName(id, name.Text)
	}
	n := p.b.Tree.Node(id)
	if _, ok := p.expect(token.KwFrom, "'from'"); ok {
		n.A = p.parseExpr()
		p.b.AddKid(id, n.A)
	}
	if _, ok := p.expect(token.KwTo, "'to'"); ok {
		n.B = p.parseExpr()
		p.b.AddKid(id, n.B)
	}
	if p.at(token.KwStep) {
		p.advance()
		n.C = p.parseExpr()
		p.b.AddKid(id, n.C)
	}
	body := p.parsePhraseBlock()
	p.b.AddKid(id, body)
	p.expectDotEnd(id)
	return id
}
