package parser

import (
	"github.com/katsumeshi/swift/internal/ast"
	"github.com/katsumeshi/swift/internal/diag"
	"github.com/katsumeshi/swift/internal/lexer"
)

var topLevelDeclStart = map[lexer.TokenType]bool{
	lexer.FUNC:   true,
	lexer.VAR:    true,
	lexer.LET:    true,
	lexer.STRUCT: true,
	lexer.ENUM:   true,
	lexer.IMPORT: true,
}

var statementStart = map[lexer.TokenType]bool{
	lexer.VAR:    true,
	lexer.LET:    true,
	lexer.RETURN: true,
	lexer.IF:     true,
	lexer.WHILE:  true,
	lexer.FOR:    true,
}

// ParseFile parses a whole source file, recovering between declarations so
// a single malformed declaration does not mask errors in the rest.
func (p *Parser) ParseFile() *ast.File {
	file := ast.NewFile(p.curTok.Span)

	for p.curTok.Type != lexer.EOF {
		prevTok := p.curTok

		decl := p.parseDecl()
		if decl != nil {
			file.Decls = append(file.Decls, decl)
			file.SetSpan(mergeSpan(file.Span(), decl.Span()))
			p.nextToken()
			continue
		}

		p.recoverDecl(prevTok)
	}

	return file
}

func (p *Parser) parseDecl() ast.Decl {
	switch p.curTok.Type {
	case lexer.FUNC:
		return p.parseFuncDecl()
	case lexer.VAR, lexer.LET:
		return p.parseVarDecl()
	default:
		p.reportCode(diag.CodeParseExpectedDecl, "expected declaration", p.curTok.Span)
		return nil
	}
}

func (p *Parser) parseFuncDecl() ast.Decl {
	start := p.curTok.Span

	if p.peekTok.Type != lexer.IDENT {
		p.reportCode(diag.CodeParseExpectedToken, "expected function name after 'func'", p.peekTok.Span)
		return nil
	}
	p.nextToken()
	name := ast.NewIdent(p.curTok.Literal, p.curTok.Span)

	if p.peekTok.Type != lexer.LPAREN {
		p.reportCode(diag.CodeParseExpectedToken, "expected '(' after function name", p.peekTok.Span)
		return nil
	}
	p.nextToken()

	argPatterns, bodyPatterns, result, ok := p.parseFunctionSignature()
	if !ok {
		return nil
	}

	var body *ast.Block
	switch p.peekTok.Type {
	case lexer.LBRACE:
		p.nextToken()
		body = p.parseBlock()
		if body == nil {
			return nil
		}
	case lexer.SEMICOLON:
		p.nextToken()
	default:
		p.reportCode(diag.CodeParseExpectedToken, "expected function body or ';'", p.peekTok.Span)
		return nil
	}

	return ast.NewFuncDecl(name, argPatterns, bodyPatterns, result, body, mergeSpan(start, p.curTok.Span))
}

func (p *Parser) parseVarDecl() ast.Decl {
	start := p.curTok.Span
	isConst := p.curTok.Type == lexer.LET

	p.nextToken()

	var pat ast.Pattern
	if p.curTok.Type == lexer.LPAREN {
		pat = p.parsePatternTuple(true)
	} else {
		pat = p.parsePattern()
	}
	if pat == nil {
		return nil
	}

	var init ast.Expr
	if p.consumeIf(lexer.ASSIGN) {
		init = p.parseInitExpr()
		if init == nil {
			return nil
		}
	}

	if !p.expect(lexer.SEMICOLON) {
		return nil
	}

	return ast.NewVarDecl(isConst, pat, init, mergeSpan(start, p.curTok.Span))
}

// parseBlock parses a brace-delimited statement list. Enter with curTok on
// '{'; exit with curTok on '}'.
func (p *Parser) parseBlock() *ast.Block {
	start := p.curTok.Span

	var stmts []ast.Stmt
	p.nextToken()
	for p.curTok.Type != lexer.RBRACE && p.curTok.Type != lexer.EOF {
		prevTok := p.curTok

		stmt := p.parseStmt()
		if stmt != nil {
			stmts = append(stmts, stmt)
			p.nextToken()
			continue
		}

		p.recoverStatement(prevTok)
	}

	if p.curTok.Type != lexer.RBRACE {
		p.reportCode(diag.CodeParseExpectedToken, "expected '}'", p.curTok.Span)
		return nil
	}

	return ast.NewBlock(stmts, mergeSpan(start, p.curTok.Span))
}

func (p *Parser) parseStmt() ast.Stmt {
	switch p.curTok.Type {
	case lexer.VAR, lexer.LET:
		start := p.curTok.Span
		decl := p.parseVarDecl()
		if decl == nil {
			return nil
		}
		return ast.NewDeclStmt(decl, mergeSpan(start, p.curTok.Span))
	case lexer.RETURN:
		return p.parseReturnStmt()
	default:
		start := p.curTok.Span
		expr := p.parseExpr(precedenceLowest)
		if expr == nil {
			return nil
		}
		if !p.expect(lexer.SEMICOLON) {
			return nil
		}
		return ast.NewExprStmt(expr, mergeSpan(start, p.curTok.Span))
	}
}

func (p *Parser) parseReturnStmt() ast.Stmt {
	start := p.curTok.Span

	if p.consumeIf(lexer.SEMICOLON) {
		return ast.NewReturnStmt(nil, mergeSpan(start, p.curTok.Span))
	}

	p.nextToken()
	value := p.parseExpr(precedenceLowest)
	if value == nil {
		return nil
	}

	if !p.expect(lexer.SEMICOLON) {
		return nil
	}

	return ast.NewReturnStmt(value, mergeSpan(start, p.curTok.Span))
}

// recoverDecl skips to the start of the next plausible declaration. The
// prevTok guard forces progress when a parse failed without consuming
// anything, so recovery can never loop on the same token.
func (p *Parser) recoverDecl(prevTok lexer.Token) {
	if sameTokenPosition(prevTok, p.curTok) {
		p.nextToken()
	}

	for p.curTok.Type != lexer.EOF {
		if p.curTok.Type == lexer.SEMICOLON {
			p.nextToken()
			return
		}
		if topLevelDeclStart[p.curTok.Type] {
			return
		}
		p.nextToken()
	}
}

func (p *Parser) recoverStatement(prevTok lexer.Token) {
	if sameTokenPosition(prevTok, p.curTok) {
		p.nextToken()
	}

	for p.curTok.Type != lexer.EOF {
		switch {
		case p.curTok.Type == lexer.SEMICOLON:
			p.nextToken()
			return
		case p.curTok.Type == lexer.RBRACE:
			return
		case statementStart[p.curTok.Type]:
			return
		}
		p.nextToken()
	}
}
