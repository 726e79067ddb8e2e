package parser

import (
	"github.com/vitte-lang/vitte-sub005/internal/ast"
	"github.com/vitte-lang/vitte-sub005/internal/diag"
	"github.com/vitte-lang/vitte-sub005/internal/source"
	"github.com/vitte-lang/vitte-sub005/internal/token"
)

// ParseCore parses src as a core-surface file: module/use/export/fn/scn and
// entrypoint-kind items at the top level, each body closed by ".end". It
// returns the KindFile node covering the whole file.
func ParseCore(file source.FileID, src []byte, b *ast.Builder, bag *diag.Bag, opts Options) ast.NodeID {
	p := newParser(file, src, b, bag, opts)
	root := p.node(ast.KindFile, p.cur.Span)
	for !p.at(token.EOF) {
		if opts.MaxTopItems > 0 && p.topItems >= opts.MaxTopItems {
			p.errorf(diag.SynItemBudgetReached, p.cur.Span, "top-level item budget reached")
			break
		}
		before := p.cur
		item, ok := p.parseCoreItem()
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

func (p *Parser) parseCoreItem() (ast.NodeID, bool) {
	switch p.cur.Kind {
	case token.KwModule:
		return p.parseModuleItem(), true
	case token.KwUse:
		return p.parseUseItem(), true
	case token.KwExport:
		return p.parseExportItem(), true
	case token.KwFn:
		return p.parseFnItem(), true
	case token.KwScn, token.KwScenario:
		return p.parseScnItem(), true
	case token.KwProg, token.KwProgram, token.KwService, token.KwKernel, token.KwDriver, token.KwTool, token.KwPipeline:
		return p.parseEntrypointItem(), true
	default:
		p.errorf(diag.SynUnexpectedToken, p.cur.Span, "expected a top-level item, found "+p.cur.Kind.String())
		p.syncTo(token.Semicolon)
		return ast.NoNodeID, false
	}
}

// parseModuleItem parses `module <ident>`. A trailing ';' is accepted but
// not required: items are separated by newlines and/or semicolons, both
// consumed transparently (spec.md:132).
func (p *Parser) parseModuleItem() ast.NodeID {
	start := p.advance() // 'module'
	path, pathSpan, ok := p.parseDottedPath()
	id := p.node(ast.KindModule, start.Span)
	if ok {
		p.b.SetName(id, path)
		p.b.Extend(id, pathSpan)
	} else {
		p.syncTo(token.Semicolon)
		return id
	}
	p.consumeOptSemi(id)
	return id
}

func (p *Parser) parseUseItem() ast.NodeID {
	start := p.advance() // 'use'
	id := p.node(ast.KindUse, start.Span)
	for {
		segTok, ok := p.expect(token.Ident, "a path segment")
		if !ok {
			break
		}
		seg := p.node(ast.KindUsePathSeg, segTok.Span)
		p.b.SetName(seg, segTok.Text)
		p.b.AddAux(id, seg)
		if !p.at(token.Dot) {
			break
		}
		p.advance()
	}
	p.consumeOptSemi(id)
	return id
}

func (p *Parser) parseExportItem() ast.NodeID {
	start := p.advance() // 'export'
	id := p.node(ast.KindExport, start.Span)
	if !p.at(token.KwFn) {
		p.errorf(diag.SynUnexpectedToken, p.cur.Span, "expected 'fn' after 'export'")
		p.syncTo(token.Semicolon)
		return id
	}
	inner := p.parseFnItem()
	n := p.b.Tree.Node(id)
	n.A = inner
	p.b.AddKid(id, inner)
	return id
}

func (p *Parser) parseScnItem() ast.NodeID {
	start := p.advance() // 'scn'/'scenario'
	id := p.node(ast.KindScn, start.Span)
	if name, ok := p.expect(token.Ident, "a scenario name"); ok {
		p.b.SetName(id, name.Text)
	}
	body := p.parseBlock()
	n := p.b.Tree.Node(id)
	n.A = body
	p.b.AddKid(id, body)
	p.expectDotEnd(id)
	return id
}

func (p *Parser) parseEntrypointItem() ast.NodeID {
	kw := p.advance() // prog/program/service/kernel/driver/tool/pipeline
	id := p.node(ast.KindEntrypoint, kw.Span)
	n := p.b.Tree.Node(id)
	n.I64 = int64(kw.Kind)
	if name, ok := p.expect(token.Ident, "an entrypoint name"); ok {
		p.b.SetName(id, name.Text)
	}
	body := p.parseBlock()
	n.A = body
	p.b.AddKid(id, body)
	p.expectDotEnd(id)
	return id
}

// parseDottedPath parses ident ('.' ident)* and returns the joined textual
// path plus the span covering it.
func (p *Parser) parseDottedPath() (string, source.Span, bool) {
	first, ok := p.expect(token.Ident, "a path")
	if !ok {
		return "", p.cur.Span, false
	}
	path := first.Text
	span := first.Span
	for p.at(token.Dot) {
		p.advance()
		seg, ok := p.expect(token.Ident, "a path segment")
		if !ok {
			break
		}
		path += "." + seg.Text
		span = span.Cover(seg.Span)
	}
	return path, span, true
}
