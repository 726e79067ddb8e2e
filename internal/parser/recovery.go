package parser

import "github.com/vitte-lang/vitte-sub005/internal/token"

// syncTo advances past tokens until the current token is one of stop, an
// item-starting keyword, the phrase block terminator End, or EOF. If it
// stops on a token from stop (rather than an item-starter/End/EOF), that
// token is consumed too, since stop kinds are typically statement
// terminators like ';' that the caller wants to leave behind. Forward
// progress on a loop of repeated syncTo calls is the responsibility of the
// outer ParseCore/ParsePhrase/parseBlock loops (spec §4.4): if the cursor is
// already sitting on an item-starter, End or EOF, syncTo is a no-op.
func (p *Parser) syncTo(stop ...token.Kind) {
	for !p.at(token.EOF) && !p.atAny(stop...) && !isItemStarter(p.cur.Kind) && !p.at(token.End) {
		p.advance()
	}
	if p.atAny(stop...) {
		p.advance()
	}
}

func isItemStarter(k token.Kind) bool {
	switch k {
	case token.KwModule, token.KwUse, token.KwExport, token.KwFn, token.KwScn, token.KwScenario,
		token.KwProg, token.KwProgram, token.KwService, token.KwKernel, token.KwDriver, token.KwTool, token.KwPipeline,
		token.KwMod:
		return true
	default:
		return false
	}
}
