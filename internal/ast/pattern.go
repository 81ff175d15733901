package ast

import "github.com/katsumeshi/swift/internal/lexer"

// Pattern represents a binding pattern node: the left-hand shape of variable
// declarations, tuple destructuring, and function parameter clauses. The
// variant set is closed; dispatch is by type switch so the compiler catches
// a missing case when one is added.
type Pattern interface {
	Node
	patternNode()
}

// Binding is the declaration introduced by a named pattern. It is uniquely
// owned by its PatternNamed and never holds a pointer back into the tree.
// Type stays nil until a later resolution pass fills it in.
type Binding struct {
	Name string
	Span lexer.Span
	Type TypeExpr
}

// NewBinding constructs a binding with an unresolved type.
func NewBinding(name string, span lexer.Span) *Binding {
	return &Binding{Name: name, Span: span}
}

// PatternAny is the `_` wildcard: it matches anything and binds nothing.
type PatternAny struct {
	span lexer.Span
}

// NewPatternAny constructs a wildcard pattern.
func NewPatternAny(span lexer.Span) *PatternAny {
	return &PatternAny{span: span}
}

// Span returns the wildcard span.
func (p *PatternAny) Span() lexer.Span { return p.span }

// SetSpan updates the wildcard span.
func (p *PatternAny) SetSpan(span lexer.Span) { p.span = span }

func (*PatternAny) patternNode() {}

// PatternNamed binds the matched value to a fresh name.
type PatternNamed struct {
	Binding *Binding
	span    lexer.Span
}

// NewPatternNamed constructs a named pattern owning the given binding.
func NewPatternNamed(binding *Binding, span lexer.Span) *PatternNamed {
	return &PatternNamed{Binding: binding, span: span}
}

// Span returns the pattern span.
func (p *PatternNamed) Span() lexer.Span { return p.span }

// SetSpan updates the pattern span.
func (p *PatternNamed) SetSpan(span lexer.Span) { p.span = span }

func (*PatternNamed) patternNode() {}

// PatternTyped attaches a type annotation to a sub-pattern. It is
// transparent for bound-name queries. The parser rewrites Type in place when
// an element turns variadic, so the field is deliberately mutable.
type PatternTyped struct {
	Pattern Pattern
	Type    TypeExpr
	span    lexer.Span
}

// NewPatternTyped constructs a typed pattern.
func NewPatternTyped(pat Pattern, typ TypeExpr, span lexer.Span) *PatternTyped {
	return &PatternTyped{Pattern: pat, Type: typ, span: span}
}

// Span returns the pattern span.
func (p *PatternTyped) Span() lexer.Span { return p.span }

// SetSpan updates the pattern span.
func (p *PatternTyped) SetSpan(span lexer.Span) { p.span = span }

func (*PatternTyped) patternNode() {}

// PatternParen wraps a single sub-pattern in parentheses. Pure grouping,
// semantically transparent.
type PatternParen struct {
	Pattern Pattern
	Lparen  lexer.Span
	Rparen  lexer.Span
	span    lexer.Span
}

// NewPatternParen constructs a parenthesized pattern.
func NewPatternParen(pat Pattern, lparen, rparen lexer.Span, span lexer.Span) *PatternParen {
	return &PatternParen{Pattern: pat, Lparen: lparen, Rparen: rparen, span: span}
}

// Span returns the pattern span.
func (p *PatternParen) Span() lexer.Span { return p.span }

// SetSpan updates the pattern span.
func (p *PatternParen) SetSpan(span lexer.Span) { p.span = span }

func (*PatternParen) patternNode() {}

// TuplePatternElt is one element of a tuple pattern: a pattern, an optional
// default initializer, and an optional vararg base type. Init is an opaque
// reference to an expression the expression parser built; this subsystem
// never looks inside it. VarargBase records the element type as written
// before the annotation was rewritten to its slice form; a non-nil value is
// what marks the element variadic.
type TuplePatternElt struct {
	Pattern    Pattern
	Init       Expr
	VarargBase TypeExpr
}

// IsVararg reports whether the element is marked variadic.
func (e *TuplePatternElt) IsVararg() bool {
	return e.VarargBase != nil
}

// PatternTuple is a parenthesized, comma-separated element list. A tuple may
// be empty; a one-element tuple only survives the parse when its element
// carries a bound name, an initializer, or a vararg marker (otherwise it
// collapses to PatternParen).
type PatternTuple struct {
	Elements []TuplePatternElt
	Lparen   lexer.Span
	Rparen   lexer.Span
	span     lexer.Span
}

// NewPatternTuple constructs a tuple pattern.
func NewPatternTuple(elements []TuplePatternElt, lparen, rparen lexer.Span, span lexer.Span) *PatternTuple {
	return &PatternTuple{Elements: elements, Lparen: lparen, Rparen: rparen, span: span}
}

// Span returns the pattern span.
func (p *PatternTuple) Span() lexer.Span { return p.span }

// SetSpan updates the pattern span.
func (p *PatternTuple) SetSpan(span lexer.Span) { p.span = span }

func (*PatternTuple) patternNode() {}

// BoundName returns the identifier a pattern introduces into scope, looking
// through typed and parenthesized wrappers. Wildcards and tuples bind no
// single name and yield "".
func BoundName(p Pattern) string {
	switch p := p.(type) {
	case *PatternNamed:
		return p.Binding.Name
	case *PatternTyped:
		return BoundName(p.Pattern)
	case *PatternParen:
		return BoundName(p.Pattern)
	default:
		return ""
	}
}
