package parser

import (
	"github.com/katsumeshi/swift/internal/ast"
	"github.com/katsumeshi/swift/internal/diag"
	"github.com/katsumeshi/swift/internal/lexer"
)

// parseExpr drives Pratt-style expression parsing. Enter with curTok on the
// first token of the expression; exit with curTok on its last token.
func (p *Parser) parseExpr(precedence int) ast.Expr {
	prefix := p.prefixFns[p.curTok.Type]
	if prefix == nil {
		p.reportCode(diag.CodeParseExpectedExpr, "expected expression", p.curTok.Span)
		return nil
	}

	left := prefix()
	if left == nil {
		return nil
	}

	for precedence < p.peekPrecedence() {
		infix := p.infixFns[p.peekTok.Type]
		if infix == nil {
			return left
		}

		p.nextToken()

		left = infix(left)
		if left == nil {
			return nil
		}
	}

	return left
}

// parseInitExpr parses the expression after '=' in a pattern or declaration.
// Enter with curTok still on '='; the routine advances onto the expression.
func (p *Parser) parseInitExpr() ast.Expr {
	if p.prefixFns[p.peekTok.Type] == nil {
		p.reportCode(diag.CodeParseExpectedInit, "expected initializer expression", p.peekTok.Span)
		return nil
	}

	p.nextToken()
	return p.parseExpr(precedenceLowest)
}

func (p *Parser) parseIdentifier() ast.Expr {
	return ast.NewIdent(p.curTok.Literal, p.curTok.Span)
}

func (p *Parser) parseIntegerLiteral() ast.Expr {
	return ast.NewIntegerLit(p.curTok.Literal, p.curTok.Span)
}

func (p *Parser) parseFloatLiteral() ast.Expr {
	return ast.NewFloatLit(p.curTok.Literal, p.curTok.Span)
}

func (p *Parser) parseStringLiteral() ast.Expr {
	return ast.NewStringLit(p.curTok.Literal, p.curTok.Span)
}

func (p *Parser) parseBoolLiteral() ast.Expr {
	return ast.NewBoolLit(p.curTok.Type == lexer.TRUE, p.curTok.Span)
}

func (p *Parser) parseNilLiteral() ast.Expr {
	return ast.NewNilLit(p.curTok.Span)
}

func (p *Parser) parsePrefixExpr() ast.Expr {
	op := p.curTok.Literal
	start := p.curTok.Span

	p.nextToken()
	right := p.parseExpr(precedencePrefix)
	if right == nil {
		return nil
	}

	return ast.NewPrefixExpr(op, right, mergeSpan(start, right.Span()))
}

func (p *Parser) parseGroupedExpr() ast.Expr {
	p.nextToken()

	expr := p.parseExpr(precedenceLowest)
	if expr == nil {
		return nil
	}

	if !p.expect(lexer.RPAREN) {
		return nil
	}

	return expr
}

func (p *Parser) parseInfixExpr(left ast.Expr) ast.Expr {
	op := p.curTok.Literal
	precedence := p.curPrecedence()

	p.nextToken()
	right := p.parseExpr(precedence)
	if right == nil {
		return nil
	}

	return ast.NewInfixExpr(left, op, right, mergeSpan(left.Span(), right.Span()))
}

func (p *Parser) parseCallExpr(fn ast.Expr) ast.Expr {
	var args []ast.Expr

	if p.peekTok.Type == lexer.RPAREN {
		p.nextToken()
	} else {
		p.nextToken()
		res, ok := parseDelimited[ast.Expr](p, delimitedConfig{
			Closing:             lexer.RPAREN,
			Separator:           lexer.COMMA,
			MissingElementMsg:   "expected expression",
			MissingSeparatorMsg: "expected ',' or ')' in argument list",
		}, func(int) (ast.Expr, bool) {
			e := p.parseExpr(precedenceLowest)
			if e == nil {
				return nil, false
			}
			return e, true
		})
		if !ok {
			return nil
		}
		args = res.Items
	}

	return ast.NewCallExpr(fn, args, mergeSpan(fn.Span(), p.curTok.Span))
}
