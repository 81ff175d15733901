package ast

import "github.com/katsumeshi/swift/internal/lexer"

// TypeExpr represents a type annotation node.
type TypeExpr interface {
	Node
	typeNode()
}

// NamedType is a plain type name (`Int`, `String`).
type NamedType struct {
	Name *Ident
	span lexer.Span
}

// NewNamedType constructs a named type node.
func NewNamedType(name *Ident, span lexer.Span) *NamedType {
	return &NamedType{Name: name, span: span}
}

// Span returns the type span.
func (t *NamedType) Span() lexer.Span { return t.span }

// SetSpan updates the type span.
func (t *NamedType) SetSpan(span lexer.Span) { t.span = span }

func (*NamedType) typeNode() {}

// SliceType is `[T]`. Variadic tuple elements have their annotation
// rewritten to this form.
type SliceType struct {
	Elem TypeExpr
	span lexer.Span
}

// NewSliceType constructs a slice type node.
func NewSliceType(elem TypeExpr, span lexer.Span) *SliceType {
	return &SliceType{Elem: elem, span: span}
}

// Span returns the type span.
func (t *SliceType) Span() lexer.Span { return t.span }

// SetSpan updates the type span.
func (t *SliceType) SetSpan(span lexer.Span) { t.span = span }

func (*SliceType) typeNode() {}

// TupleType is `(T1, T2, ...)`.
type TupleType struct {
	Elems []TypeExpr
	span  lexer.Span
}

// NewTupleType constructs a tuple type node.
func NewTupleType(elems []TypeExpr, span lexer.Span) *TupleType {
	return &TupleType{Elems: elems, span: span}
}

// Span returns the type span.
func (t *TupleType) Span() lexer.Span { return t.span }

// SetSpan updates the type span.
func (t *TupleType) SetSpan(span lexer.Span) { t.span = span }

func (*TupleType) typeNode() {}

// FunctionType is `(T1, T2) -> R`.
type FunctionType struct {
	Params []TypeExpr
	Result TypeExpr
	span   lexer.Span
}

// NewFunctionType constructs a function type node.
func NewFunctionType(params []TypeExpr, result TypeExpr, span lexer.Span) *FunctionType {
	return &FunctionType{Params: params, Result: result, span: span}
}

// Span returns the type span.
func (t *FunctionType) Span() lexer.Span { return t.span }

// SetSpan updates the type span.
func (t *FunctionType) SetSpan(span lexer.Span) { t.span = span }

func (*FunctionType) typeNode() {}
