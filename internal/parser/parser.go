package parser

import (
	"github.com/katsumeshi/swift/internal/ast"
	"github.com/katsumeshi/swift/internal/diag"
	"github.com/katsumeshi/swift/internal/lexer"
)

type (
	prefixParseFn func() ast.Expr
	infixParseFn  func(ast.Expr) ast.Expr
)

type Option func(*options)

type options struct {
	filename string
}

// WithFilename configures the parser to attribute all emitted spans to the provided filename.
func WithFilename(name string) Option {
	return func(o *options) {
		o.filename = name
	}
}

const (
	precedenceLowest = iota
	precedenceOr
	precedenceAnd
	precedenceEquality
	precedenceComparison
	precedenceSum
	precedenceProduct
	precedencePrefix
	precedencePostfix
)

var precedences = map[lexer.TokenType]int{
	lexer.OR:       precedenceOr,
	lexer.AND:      precedenceAnd,
	lexer.EQ:       precedenceEquality,
	lexer.NOT_EQ:   precedenceEquality,
	lexer.LT:       precedenceComparison,
	lexer.LE:       precedenceComparison,
	lexer.GT:       precedenceComparison,
	lexer.GE:       precedenceComparison,
	lexer.PLUS:     precedenceSum,
	lexer.MINUS:    precedenceSum,
	lexer.ASTERISK: precedenceProduct,
	lexer.SLASH:    precedenceProduct,
	lexer.LPAREN:   precedencePostfix,
}

// ParseError captures a parsing diagnostic with location context. Fatal and
// recoverable failures both land here; fatality is signalled separately by
// the nil result of the failing parse routine.
type ParseError struct {
	Message   string
	Span      lexer.Span
	Severity  diag.Severity
	Code      diag.Code
	Highlight lexer.Span // optional secondary range
}

// Diagnostic converts the parse error to the shared diagnostic form.
func (e ParseError) Diagnostic() diag.Diagnostic {
	return diag.Diagnostic{
		Stage:     diag.StageParser,
		Severity:  e.Severity,
		Code:      e.Code,
		Message:   e.Message,
		Span:      toDiagSpan(e.Span),
		Highlight: toDiagSpan(e.Highlight),
	}
}

func toDiagSpan(s lexer.Span) diag.Span {
	return diag.Span{
		Filename: s.Filename,
		Line:     s.Line,
		Column:   s.Column,
		Start:    s.Start,
		End:      s.End,
	}
}

// Parser implements a recursive descent parser with a two-token window.
// Invariants:
//   - curTok always reflects the token currently under examination; peekTok
//     mirrors the next token pulled from the lexer. The pair forms the
//     parser's sole lookahead window and is only mutated via nextToken.
//   - errors is an append-only accumulator of diagnostics. Emitting one
//     never changes control flow; a routine that fails also returns nil.
//   - Parse routines enter with curTok on their first token and return with
//     curTok on the last token they consumed.
type Parser struct {
	lx      *lexer.Lexer
	curTok  lexer.Token
	peekTok lexer.Token

	errors []ParseError

	filename string

	prefixFns map[lexer.TokenType]prefixParseFn
	infixFns  map[lexer.TokenType]infixParseFn
}

// New returns a parser initialised with the provided source input.
func New(input string, opts ...Option) *Parser {
	cfg := options{}
	for _, opt := range opts {
		opt(&cfg)
	}

	p := &Parser{
		lx:        lexer.New(input),
		prefixFns: make(map[lexer.TokenType]prefixParseFn),
		infixFns:  make(map[lexer.TokenType]infixParseFn),
		filename:  cfg.filename,
	}

	if cfg.filename != "" {
		p.lx.SetFilename(cfg.filename)
	}

	p.registerPrefix(lexer.IDENT, p.parseIdentifier)
	p.registerPrefix(lexer.INT, p.parseIntegerLiteral)
	p.registerPrefix(lexer.FLOAT, p.parseFloatLiteral)
	p.registerPrefix(lexer.STRING, p.parseStringLiteral)
	p.registerPrefix(lexer.TRUE, p.parseBoolLiteral)
	p.registerPrefix(lexer.FALSE, p.parseBoolLiteral)
	p.registerPrefix(lexer.NIL, p.parseNilLiteral)
	p.registerPrefix(lexer.MINUS, p.parsePrefixExpr)
	p.registerPrefix(lexer.BANG, p.parsePrefixExpr)
	p.registerPrefix(lexer.LPAREN, p.parseGroupedExpr)

	p.registerInfix(lexer.PLUS, p.parseInfixExpr)
	p.registerInfix(lexer.MINUS, p.parseInfixExpr)
	p.registerInfix(lexer.ASTERISK, p.parseInfixExpr)
	p.registerInfix(lexer.SLASH, p.parseInfixExpr)
	p.registerInfix(lexer.AND, p.parseInfixExpr)
	p.registerInfix(lexer.OR, p.parseInfixExpr)
	p.registerInfix(lexer.EQ, p.parseInfixExpr)
	p.registerInfix(lexer.NOT_EQ, p.parseInfixExpr)
	p.registerInfix(lexer.LT, p.parseInfixExpr)
	p.registerInfix(lexer.LE, p.parseInfixExpr)
	p.registerInfix(lexer.GT, p.parseInfixExpr)
	p.registerInfix(lexer.GE, p.parseInfixExpr)
	p.registerInfix(lexer.LPAREN, p.parseCallExpr)

	// Seed curTok/peekTok.
	p.nextToken()
	p.nextToken()

	return p
}

// Errors returns all parse errors that were encountered.
func (p *Parser) Errors() []ParseError {
	return p.errors
}

// Diagnostics returns lexer and parser diagnostics in source order of
// discovery, ready for rendering.
func (p *Parser) Diagnostics() []diag.Diagnostic {
	out := make([]diag.Diagnostic, 0, len(p.lx.Errors)+len(p.errors))
	for _, e := range p.lx.Errors {
		out = append(out, e.ToDiagnostic())
	}
	for _, e := range p.errors {
		out = append(out, e.Diagnostic())
	}
	return out
}

func (p *Parser) registerPrefix(tokenType lexer.TokenType, fn prefixParseFn) {
	p.prefixFns[tokenType] = fn
}

func (p *Parser) registerInfix(tokenType lexer.TokenType, fn infixParseFn) {
	p.infixFns[tokenType] = fn
}

// nextToken advances the parser's token window.
// Contract: after calling nextToken, curTok == old(peekTok). The lexer is
// only queried from this hop to keep lookahead bookkeeping centralized.
func (p *Parser) nextToken() {
	p.curTok = p.peekTok
	if p.lx != nil {
		p.peekTok = p.lx.NextToken()
	} else {
		p.peekTok = lexer.Token{}
	}
}

// expect asserts that the peek token matches the provided type.
// The caller is responsible for inspecting curTok before invoking expect,
// because expect never rewinds; on success it promotes peekTok into curTok.
func (p *Parser) expect(tt lexer.TokenType) bool {
	if p.peekTok.Type == tt {
		p.nextToken()
		return true
	}

	p.reportCode(diag.CodeParseExpectedToken, "expected '"+string(tt)+"'", p.peekTok.Span)
	return false
}

// consumeIf advances past the peek token when it matches, mirroring the
// single-token conditional consume the grammar leans on for ':' '=' '...'.
func (p *Parser) consumeIf(tt lexer.TokenType) bool {
	if p.peekTok.Type == tt {
		p.nextToken()
		return true
	}
	return false
}

// skipUntil advances until curTok is the given kind or EOF. Routines that
// fail mid-construct call this with the closing delimiter so an enclosing,
// unrelated parse can resynchronize; the failing parse itself stays failed.
func (p *Parser) skipUntil(tt lexer.TokenType) {
	for p.curTok.Type != tt && p.curTok.Type != lexer.EOF {
		p.nextToken()
	}
}

func (p *Parser) emitParseDiagnostic(msg string, span lexer.Span, severity diag.Severity, code diag.Code) {
	if span.Filename == "" && p.filename != "" {
		span.Filename = p.filename
	}

	p.errors = append(p.errors, ParseError{
		Message:  msg,
		Span:     span,
		Severity: severity,
		Code:     code,
	})
}

func (p *Parser) reportError(msg string, span lexer.Span) {
	p.emitParseDiagnostic(msg, span, diag.SeverityError, "")
}

func (p *Parser) reportCode(code diag.Code, msg string, span lexer.Span) {
	p.emitParseDiagnostic(msg, span, diag.SeverityError, code)
}

// reportCodeHighlight reports an error whose rendering should also point at
// a second range (the conflicting earlier construct).
func (p *Parser) reportCodeHighlight(code diag.Code, msg string, span, highlight lexer.Span) {
	if span.Filename == "" && p.filename != "" {
		span.Filename = p.filename
	}
	if highlight.Filename == "" && p.filename != "" {
		highlight.Filename = p.filename
	}

	p.errors = append(p.errors, ParseError{
		Message:   msg,
		Span:      span,
		Severity:  diag.SeverityError,
		Code:      code,
		Highlight: highlight,
	})
}

func (p *Parser) peekPrecedence() int {
	if prec, ok := precedences[p.peekTok.Type]; ok {
		return prec
	}
	return precedenceLowest
}

func (p *Parser) curPrecedence() int {
	if prec, ok := precedences[p.curTok.Type]; ok {
		return prec
	}
	return precedenceLowest
}

// mergeSpan assumes start.End <= end.End and returns a span covering both.
// The parser relies on lexer spans being half-open; callers should pass the
// earliest start span first to preserve monotonic growth for AST nodes.
func mergeSpan(start, end lexer.Span) lexer.Span {
	span := start

	if span.Filename == "" {
		span.Filename = end.Filename
	}

	if span.Line == 0 && end.Line != 0 {
		span.Line = end.Line
		span.Column = end.Column
		span.Start = end.Start
	}

	if end.End > span.End {
		span.End = end.End
	}

	return span
}

func sameTokenPosition(a, b lexer.Token) bool {
	return a.Type == b.Type && a.Span.Start == b.Span.Start && a.Span.End == b.Span.End
}
