package ast

import (
	"strconv"
	"strings"
)

// The printer renders nodes back to source form. Parenthesization is made
// explicit for operator expressions, so reparsing printed output yields a
// structurally identical tree; that property is what the round-trip tests
// lean on.

// PatternString renders a pattern in source form.
func PatternString(p Pattern) string {
	var b strings.Builder
	writePattern(&b, p)
	return b.String()
}

// TypeString renders a type annotation in source form.
func TypeString(t TypeExpr) string {
	var b strings.Builder
	writeType(&b, t)
	return b.String()
}

// ExprString renders an expression in source form.
func ExprString(e Expr) string {
	var b strings.Builder
	writeExpr(&b, e)
	return b.String()
}

// Print renders a whole file in source form.
func Print(f *File) string {
	var b strings.Builder
	for i, d := range f.Decls {
		if i > 0 {
			b.WriteByte('\n')
		}
		writeDecl(&b, d, "")
	}
	return b.String()
}

func writePattern(b *strings.Builder, p Pattern) {
	switch p := p.(type) {
	case *PatternAny:
		b.WriteByte('_')
	case *PatternNamed:
		b.WriteString(p.Binding.Name)
	case *PatternTyped:
		writePattern(b, p.Pattern)
		b.WriteString(": ")
		writeType(b, p.Type)
	case *PatternParen:
		b.WriteByte('(')
		writePattern(b, p.Pattern)
		b.WriteByte(')')
	case *PatternTuple:
		b.WriteByte('(')
		for i := range p.Elements {
			if i > 0 {
				b.WriteString(", ")
			}
			writeTupleElt(b, &p.Elements[i])
		}
		b.WriteByte(')')
	}
}

// writeTupleElt prints an element in its surface form. A variadic element's
// annotation was rewritten to a slice during parsing, so it prints from the
// recorded base type instead: `xs: Int...`, not `xs: [Int]`.
func writeTupleElt(b *strings.Builder, e *TuplePatternElt) {
	if typed, ok := e.Pattern.(*PatternTyped); ok && e.IsVararg() {
		writePattern(b, typed.Pattern)
		b.WriteString(": ")
		writeType(b, e.VarargBase)
	} else {
		writePattern(b, e.Pattern)
	}
	if e.Init != nil {
		b.WriteString(" = ")
		writeExpr(b, e.Init)
	}
	if e.IsVararg() {
		b.WriteString("...")
	}
}

func writeType(b *strings.Builder, t TypeExpr) {
	switch t := t.(type) {
	case *NamedType:
		b.WriteString(t.Name.Name)
	case *SliceType:
		b.WriteByte('[')
		writeType(b, t.Elem)
		b.WriteByte(']')
	case *TupleType:
		b.WriteByte('(')
		for i, e := range t.Elems {
			if i > 0 {
				b.WriteString(", ")
			}
			writeType(b, e)
		}
		b.WriteByte(')')
	case *FunctionType:
		b.WriteByte('(')
		for i, param := range t.Params {
			if i > 0 {
				b.WriteString(", ")
			}
			writeType(b, param)
		}
		b.WriteString(") -> ")
		writeType(b, t.Result)
	}
}

func writeExpr(b *strings.Builder, e Expr) {
	switch e := e.(type) {
	case *Ident:
		b.WriteString(e.Name)
	case *IntegerLit:
		b.WriteString(e.Value)
	case *FloatLit:
		b.WriteString(e.Value)
	case *StringLit:
		b.WriteString(strconv.Quote(e.Value))
	case *BoolLit:
		if e.Value {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case *NilLit:
		b.WriteString("nil")
	case *PrefixExpr:
		b.WriteByte('(')
		b.WriteString(e.Op)
		writeExpr(b, e.Right)
		b.WriteByte(')')
	case *InfixExpr:
		b.WriteByte('(')
		writeExpr(b, e.Left)
		b.WriteByte(' ')
		b.WriteString(e.Op)
		b.WriteByte(' ')
		writeExpr(b, e.Right)
		b.WriteByte(')')
	case *CallExpr:
		writeExpr(b, e.Fn)
		b.WriteByte('(')
		for i, arg := range e.Args {
			if i > 0 {
				b.WriteString(", ")
			}
			writeExpr(b, arg)
		}
		b.WriteByte(')')
	}
}

func writeDecl(b *strings.Builder, d Decl, indent string) {
	switch d := d.(type) {
	case *FuncDecl:
		b.WriteString(indent)
		b.WriteString("func ")
		b.WriteString(d.Name.Name)
		writeSignature(b, d)
		if d.Body != nil {
			b.WriteByte(' ')
			writeBlock(b, d.Body, indent)
		} else {
			b.WriteByte(';')
		}
		b.WriteByte('\n')
	case *VarDecl:
		b.WriteString(indent)
		if d.Const {
			b.WriteString("let ")
		} else {
			b.WriteString("var ")
		}
		writePattern(b, d.Pattern)
		if d.Init != nil {
			b.WriteString(" = ")
			writeExpr(b, d.Init)
		}
		b.WriteString(";\n")
	}
}

// writeSignature reconstructs a signature's surface syntax. Curried clauses
// alias the same node in both pattern lists; when the first clause differs
// between the two, the signature was selector style and is printed as its
// interleaved named-clause form.
func writeSignature(b *strings.Builder, d *FuncDecl) {
	selector := len(d.ArgPatterns) == 1 && len(d.BodyPatterns) == 1 &&
		d.ArgPatterns[0] != d.BodyPatterns[0]

	if !selector {
		for _, clause := range d.BodyPatterns {
			writePattern(b, clause)
		}
	} else {
		argTuple, aok := d.ArgPatterns[0].(*PatternTuple)
		bodyTuple, bok := d.BodyPatterns[0].(*PatternTuple)
		if !aok || !bok || len(argTuple.Elements) != len(bodyTuple.Elements) {
			writePattern(b, d.BodyPatterns[0])
		} else {
			for i := range bodyTuple.Elements {
				if i > 0 {
					b.WriteByte(' ')
					b.WriteString(BoundName(argTuple.Elements[i].Pattern))
				}
				b.WriteByte('(')
				writeTupleElt(b, &bodyTuple.Elements[i])
				b.WriteByte(')')
			}
		}
	}

	if d.Result != nil {
		b.WriteString(" -> ")
		writeType(b, d.Result)
	}
}

func writeBlock(b *strings.Builder, blk *Block, indent string) {
	if len(blk.Stmts) == 0 {
		b.WriteString("{}")
		return
	}
	b.WriteString("{\n")
	inner := indent + "    "
	for _, st := range blk.Stmts {
		writeStmt(b, st, inner)
	}
	b.WriteString(indent)
	b.WriteByte('}')
}

func writeStmt(b *strings.Builder, s Stmt, indent string) {
	switch s := s.(type) {
	case *DeclStmt:
		writeDecl(b, s.Decl, indent)
	case *ReturnStmt:
		b.WriteString(indent)
		b.WriteString("return")
		if s.Value != nil {
			b.WriteByte(' ')
			writeExpr(b, s.Value)
		}
		b.WriteString(";\n")
	case *ExprStmt:
		b.WriteString(indent)
		writeExpr(b, s.Expr)
		b.WriteString(";\n")
	}
}
