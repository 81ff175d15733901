package parser

import (
	"github.com/katsumeshi/swift/internal/ast"
	"github.com/katsumeshi/swift/internal/diag"
	"github.com/katsumeshi/swift/internal/lexer"
)

// Function signatures come in two concrete shapes sharing one entry point:
//
//	func-signature:     func-arguments ('->' type)?
//	func-arguments:     curried-arguments | selector-arguments
//	curried-arguments:  pattern-tuple+
//	selector-arguments: pattern-tuple (identifier '(' selector-element ')')+
//	selector-element:   pattern-atom (':' type)? ('=' expr)?
//
// Both shapes produce two parallel pattern lists: the argument patterns (the
// externally callable shape) and the body patterns (the names bound inside
// the function). Curried clauses appear identically in both lists; selector
// clauses anonymize the first parameter on the argument side and bind the
// selector names there instead.

// parseFunctionSignature parses a full signature. A missing arrow leaves the
// result type nil, which is not an error.
func (p *Parser) parseFunctionSignature() (argPatterns, bodyPatterns []ast.Pattern, result ast.TypeExpr, ok bool) {
	argPatterns, bodyPatterns, ok = p.parseFunctionArguments()
	if !ok {
		return nil, nil, nil, false
	}

	if p.consumeIf(lexer.ARROW) {
		p.nextToken() // move to the result type start
		result = p.parseType()
		if result == nil {
			return nil, nil, nil, false
		}
	}

	return argPatterns, bodyPatterns, result, true
}

// parseFunctionArguments parses the first clause, then decides between the
// two signature styles on a single token of lookahead: an identifier after
// the clause starts a selector signature, anything else continues curried.
func (p *Parser) parseFunctionArguments() ([]ast.Pattern, []ast.Pattern, bool) {
	if p.curTok.Type != lexer.LPAREN {
		p.reportCode(diag.CodeParseExpectedToken,
			"expected '(' to start function arguments", p.curTok.Span)
		return nil, nil, false
	}

	first := p.parsePatternTuple(true)
	if first == nil {
		return nil, nil, false
	}

	if p.peekTok.Type == lexer.IDENT {
		return p.parseSelectorArguments(first)
	}

	argPatterns := []ast.Pattern{first}
	bodyPatterns := []ast.Pattern{first}
	return p.parseCurriedArguments(argPatterns, bodyPatterns)
}

// parseCurriedArguments appends further tuple clauses while one follows.
// Curried clauses have no external/internal naming distinction, so each
// clause is the same node in both lists.
func (p *Parser) parseCurriedArguments(argPatterns, bodyPatterns []ast.Pattern) ([]ast.Pattern, []ast.Pattern, bool) {
	for p.peekTok.Type == lexer.LPAREN {
		p.nextToken()
		clause := p.parsePatternTuple(true)
		if clause == nil {
			return nil, nil, false
		}
		argPatterns = append(argPatterns, clause)
		bodyPatterns = append(bodyPatterns, clause)
	}
	return argPatterns, bodyPatterns, true
}

// anonymizedPattern builds the argument-tree stand-in for the parameter
// before the first selector name: a wildcard, typed like the body parameter
// when that one carries an annotation. The annotation node is shared, not
// copied; type nodes are immutable from here on.
func anonymizedPattern(bodyPat ast.Pattern, loc lexer.Span) ast.Pattern {
	var pat ast.Pattern = ast.NewPatternAny(loc)
	if typed, ok := bodyPat.(*ast.PatternTyped); ok {
		pat = ast.NewPatternTyped(pat, typed.Type, loc)
	}
	return pat
}

// parseSelectorArguments reinterprets the already-parsed first clause as the
// opening parameter of a selector signature and parses the named clauses
// that follow. The result is always a single Tuple in each list, never
// collapsed to Paren regardless of element count.
func (p *Parser) parseSelectorArguments(first ast.Pattern) ([]ast.Pattern, []ast.Pattern, bool) {
	var argElts, bodyElts []ast.TuplePatternElt
	var lparen lexer.Span

	switch first := first.(type) {
	case *ast.PatternParen:
		lparen = first.Lparen
		bodyElts = append(bodyElts, ast.TuplePatternElt{Pattern: first.Pattern})
		argElts = append(argElts, ast.TuplePatternElt{
			Pattern: anonymizedPattern(first.Pattern, first.Span()),
		})
	case *ast.PatternTuple:
		if len(first.Elements) != 1 {
			p.reportCode(diag.CodeParseSelectorArity,
				"selector arguments take exactly one parameter before the first selector name",
				p.peekTok.Span)
			return nil, nil, false
		}
		lparen = first.Lparen
		elt := first.Elements[0]
		bodyElts = append(bodyElts, elt)
		argElts = append(argElts, ast.TuplePatternElt{
			Pattern:    anonymizedPattern(elt.Pattern, first.Span()),
			Init:       elt.Init,
			VarargBase: elt.VarargBase,
		})
	default:
		// A tuple clause only ever produces Paren or Tuple; treat anything
		// else as malformed input rather than a crash.
		p.reportCode(diag.CodeParseSelectorArity,
			"selector arguments take exactly one parameter before the first selector name",
			p.curTok.Span)
		return nil, nil, false
	}

	// Selector names must be unique across the whole signature. The table
	// lives only for this parse; duplicates are diagnosed and the first
	// binding wins.
	selectorNames := make(map[string]*ast.Binding)

	var rparen lexer.Span
	for {
		if p.peekTok.Type == lexer.IDENT {
			p.nextToken()
			rp, ok := p.parseSelectorElement(&argElts, &bodyElts, selectorNames)
			if !ok {
				return nil, nil, false
			}
			rparen = rp
			continue
		}
		if p.peekTok.Type == lexer.LPAREN {
			p.reportCode(diag.CodeParseSelectorCurryMix,
				"selector-style arguments cannot be curried", p.peekTok.Span)
			return nil, nil, false
		}
		break
	}

	span := mergeSpan(lparen, rparen)
	argTuple := ast.NewPatternTuple(argElts, lparen, rparen, span)
	bodyTuple := ast.NewPatternTuple(bodyElts, lparen, rparen, span)
	return []ast.Pattern{argTuple}, []ast.Pattern{bodyTuple}, true
}

// parseSelectorElement parses one `identifier '(' pattern-atom (':' type)?
// ('=' expr)? ')'` clause and appends the resulting element to both lists.
// On failure it skips to the clause's ')' so an enclosing parse can pick up
// after the clause, then reports failure.
func (p *Parser) parseSelectorElement(argElts, bodyElts *[]ast.TuplePatternElt, selectorNames map[string]*ast.Binding) (lexer.Span, bool) {
	var none lexer.Span

	argPat := p.parsePatternIdentifier()
	if argPat == nil {
		return none, false
	}

	if named, isNamed := argPat.(*ast.PatternNamed); isNamed {
		name := named.Binding.Name
		if prev, seen := selectorNames[name]; seen {
			p.reportCodeHighlight(diag.CodeParseSelectorRedefined,
				"selector argument name '"+name+"' is already used",
				named.Binding.Span, prev.Span)
		} else {
			selectorNames[name] = named.Binding
		}
	}

	if p.peekTok.Type != lexer.LPAREN {
		p.reportCode(diag.CodeParseSelectorParen,
			"expected '(' after selector argument name", p.peekTok.Span)
		return none, false
	}
	p.nextToken()

	if p.peekTok.Type == lexer.RPAREN {
		p.reportCode(diag.CodeParseSelectorArity,
			"a selector clause takes exactly one argument", p.peekTok.Span)
		return none, false
	}
	p.nextToken() // move to the inner pattern

	bodyPat := p.parsePatternAtom()
	if bodyPat == nil {
		p.skipUntil(lexer.RPAREN)
		return none, false
	}

	if p.consumeIf(lexer.COLON) {
		p.nextToken()
		typ := p.parseType()
		if typ == nil {
			p.skipUntil(lexer.RPAREN)
			return none, false
		}
		// The selector name and the inner binding describe the same value
		// from two naming perspectives, so both carry the annotation.
		argPat = ast.NewPatternTyped(argPat, typ, mergeSpan(argPat.Span(), typ.Span()))
		bodyPat = ast.NewPatternTyped(bodyPat, typ, mergeSpan(bodyPat.Span(), typ.Span()))
	}

	var init ast.Expr
	if p.consumeIf(lexer.ASSIGN) {
		init = p.parseInitExpr()
		if init == nil {
			p.skipUntil(lexer.RPAREN)
			return none, false
		}
	}

	if p.peekTok.Type == lexer.COMMA {
		p.reportCode(diag.CodeParseSelectorArity,
			"a selector clause takes exactly one argument", p.peekTok.Span)
		p.nextToken()
		p.skipUntil(lexer.RPAREN)
		return none, false
	}

	if !p.expect(lexer.RPAREN) {
		return none, false
	}
	rparen := p.curTok.Span

	*argElts = append(*argElts, ast.TuplePatternElt{Pattern: argPat, Init: init})
	*bodyElts = append(*bodyElts, ast.TuplePatternElt{Pattern: bodyPat, Init: init})
	return rparen, true
}
