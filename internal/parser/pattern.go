package parser

import (
	"github.com/katsumeshi/swift/internal/ast"
	"github.com/katsumeshi/swift/internal/diag"
	"github.com/katsumeshi/swift/internal/lexer"
)

// parsePattern parses `pattern-atom (':' type)?`. A failing type annotation
// fails the whole pattern.
func (p *Parser) parsePattern() ast.Pattern {
	pat := p.parsePatternAtom()
	if pat == nil {
		return nil
	}

	if p.consumeIf(lexer.COLON) {
		p.nextToken() // move to type start
		typ := p.parseType()
		if typ == nil {
			return nil
		}
		pat = ast.NewPatternTyped(pat, typ, mergeSpan(pat.Span(), typ.Span()))
	}

	return pat
}

// parsePatternAtom parses the part of a pattern that precedes an optional
// type annotation: a parenthesized group, the `_` wildcard, or an identifier
// binding.
func (p *Parser) parsePatternAtom() ast.Pattern {
	switch {
	case p.curTok.Type == lexer.LPAREN:
		return p.parsePatternTuple(false)

	case p.curTok.Type == lexer.IDENT:
		return p.parsePatternIdentifier()

	case lexer.IsKeyword(p.curTok.Type):
		p.reportCode(diag.CodeParseKeywordPattern,
			"keyword '"+p.curTok.Literal+"' cannot be used as a pattern", p.curTok.Span)
		p.nextToken() // step past the keyword so recovery starts after it
		return nil

	default:
		p.reportCode(diag.CodeParseExpectedPattern, "expected pattern", p.curTok.Span)
		return nil
	}
}

// parsePatternIdentifier parses an identifier as a pattern. `_` means
// "ignore this"; any other identifier introduces a fresh binding.
func (p *Parser) parsePatternIdentifier() ast.Pattern {
	if p.curTok.Type != lexer.IDENT {
		return nil
	}

	span := p.curTok.Span
	if p.curTok.Literal == "_" {
		return ast.NewPatternAny(span)
	}

	return ast.NewPatternNamed(ast.NewBinding(p.curTok.Literal, span), span)
}

// parsePatternTuple parses `'(' (element (',' element)*)? ')'`. allowInit
// controls whether elements may carry `= expr` defaults; only function
// argument clauses and top-level tuples permit them.
func (p *Parser) parsePatternTuple(allowInit bool) ast.Pattern {
	lparen := p.curTok.Span

	if p.consumeIf(lexer.RPAREN) {
		rparen := p.curTok.Span
		return ast.NewPatternTuple(nil, lparen, rparen, mergeSpan(lparen, rparen))
	}

	var elts []ast.TuplePatternElt

	p.nextToken() // move to the first element
	for {
		elt, ok := p.parsePatternTupleElement(allowInit)
		if !ok {
			return nil
		}

		// A variadic element must come last; when more elements follow, the
		// earlier one is demoted and the parse continues.
		if n := len(elts); n > 0 && elts[n-1].IsVararg() {
			p.reportCodeHighlight(diag.CodeParseEllipsisNotLast,
				"a variadic element must be the last element of a tuple pattern",
				elts[n-1].Pattern.Span(), elt.Pattern.Span())
			elts[n-1].VarargBase = nil
		}

		elts = append(elts, elt)

		if p.peekTok.Type == lexer.COMMA {
			p.nextToken() // move to ','
			p.nextToken() // move to the next element start
			continue
		}
		if p.peekTok.Type != lexer.RPAREN {
			p.reportCode(diag.CodeParseExpectedToken,
				"expected ',' or ')' in tuple pattern", p.peekTok.Span)
			return nil
		}
		p.nextToken()
		break
	}

	rparen := p.curTok.Span
	span := mergeSpan(lparen, rparen)

	// A parenthesized single anonymous element is grouping, not a tuple.
	if len(elts) == 1 && elts[0].Init == nil && !elts[0].IsVararg() &&
		ast.BoundName(elts[0].Pattern) == "" {
		return ast.NewPatternParen(elts[0].Pattern, lparen, rparen, span)
	}

	return ast.NewPatternTuple(elts, lparen, rparen, span)
}

// parsePatternTupleElement parses `pattern ('=' expr)? '...'?`. All the
// element-level repairs live here: a default in a forbidden context is
// flagged but kept, an ellipsis on an initialized or untyped element is
// consumed but the vararg marking dropped.
func (p *Parser) parsePatternTupleElement(allowInit bool) (ast.TuplePatternElt, bool) {
	var elt ast.TuplePatternElt

	pat := p.parsePattern()
	if pat == nil {
		return elt, false
	}
	elt.Pattern = pat

	if p.consumeIf(lexer.ASSIGN) {
		if !allowInit {
			p.reportCode(diag.CodeParseInitNotAllowed,
				"default value is not allowed in this pattern", p.curTok.Span)
		}
		init := p.parseInitExpr()
		if init == nil {
			return elt, false
		}
		// A flagged default stays in the tree so later passes still see
		// what was written.
		elt.Init = init
	}

	if p.peekTok.Type != lexer.ELLIPSIS {
		return elt, true
	}
	p.nextToken() // move to '...'
	ellipsis := p.curTok.Span

	if elt.Init != nil {
		p.reportCodeHighlight(diag.CodeParseEllipsisInit,
			"a variadic element cannot have a default value", ellipsis, elt.Init.Span())
		return elt, true
	}

	typed, ok := elt.Pattern.(*ast.PatternTyped)
	if !ok {
		p.reportCodeHighlight(diag.CodeParseEllipsisUntyped,
			"a variadic element requires an explicit type", ellipsis, elt.Pattern.Span())
		return elt, true
	}

	// `xs: T...` binds xs to `[T]`; the element records the declared base
	// type, which is also what marks it variadic.
	base := typed.Type
	elt.VarargBase = base
	typed.Type = ast.NewSliceType(base, mergeSpan(base.Span(), ellipsis))
	return elt, true
}
