package parser

import (
	"github.com/katsumeshi/swift/internal/ast"
	"github.com/katsumeshi/swift/internal/diag"
	"github.com/katsumeshi/swift/internal/lexer"
)

// parseType parses a type annotation: a named type, a `[T]` slice, a
// parenthesized tuple type, or a `(T, ...) -> R` function type.
func (p *Parser) parseType() ast.TypeExpr {
	switch p.curTok.Type {
	case lexer.IDENT:
		name := ast.NewIdent(p.curTok.Literal, p.curTok.Span)
		return ast.NewNamedType(name, p.curTok.Span)
	case lexer.LBRACKET:
		return p.parseSliceType()
	case lexer.LPAREN:
		return p.parseTupleOrFunctionType()
	default:
		p.reportCode(diag.CodeParseExpectedType, "expected type", p.curTok.Span)
		return nil
	}
}

func (p *Parser) parseSliceType() ast.TypeExpr {
	start := p.curTok.Span

	p.nextToken()
	elem := p.parseType()
	if elem == nil {
		return nil
	}

	if !p.expect(lexer.RBRACKET) {
		return nil
	}

	return ast.NewSliceType(elem, mergeSpan(start, p.curTok.Span))
}

func (p *Parser) parseTupleOrFunctionType() ast.TypeExpr {
	start := p.curTok.Span

	var elems []ast.TypeExpr
	if p.peekTok.Type == lexer.RPAREN {
		p.nextToken()
	} else {
		p.nextToken()
		res, ok := parseDelimited[ast.TypeExpr](p, delimitedConfig{
			Closing:             lexer.RPAREN,
			Separator:           lexer.COMMA,
			MissingElementMsg:   "expected type",
			MissingSeparatorMsg: "expected ',' or ')' in type list",
		}, func(int) (ast.TypeExpr, bool) {
			t := p.parseType()
			if t == nil {
				return nil, false
			}
			return t, true
		})
		if !ok {
			return nil
		}
		elems = res.Items
	}

	if p.consumeIf(lexer.ARROW) {
		p.nextToken()
		ret := p.parseType()
		if ret == nil {
			return nil
		}
		return ast.NewFunctionType(elems, ret, mergeSpan(start, ret.Span()))
	}

	// A single parenthesized type is grouping.
	if len(elems) == 1 {
		return elems[0]
	}

	return ast.NewTupleType(elems, mergeSpan(start, p.curTok.Span))
}
