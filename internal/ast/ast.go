package ast

import "github.com/katsumeshi/swift/internal/lexer"

// Node is the base interface for every AST node.
type Node interface {
	Span() lexer.Span
	SetSpan(span lexer.Span)
}

// Expr represents an expression node.
type Expr interface {
	Node
	exprNode()
}

// Decl represents a top-level declaration.
type Decl interface {
	Node
	declNode()
}

// Stmt represents a statement inside a block.
type Stmt interface {
	Node
	stmtNode()
}

// File is a parsed compilation unit. Every node it owns lives until the file
// is discarded; nothing is freed individually.
type File struct {
	Decls []Decl
	span  lexer.Span
}

// NewFile constructs an empty file node.
func NewFile(span lexer.Span) *File {
	return &File{span: span}
}

// Span returns the file span.
func (f *File) Span() lexer.Span { return f.span }

// SetSpan updates the file span.
func (f *File) SetSpan(span lexer.Span) { f.span = span }

// Ident represents an identifier.
type Ident struct {
	Name string
	span lexer.Span
}

// NewIdent constructs an identifier node.
func NewIdent(name string, span lexer.Span) *Ident {
	return &Ident{Name: name, span: span}
}

// Span returns the identifier span.
func (i *Ident) Span() lexer.Span { return i.span }

// SetSpan updates the identifier span.
func (i *Ident) SetSpan(span lexer.Span) { i.span = span }

func (*Ident) exprNode() {}

// IntegerLit represents an integer literal.
type IntegerLit struct {
	Value string
	span  lexer.Span
}

// NewIntegerLit constructs an integer literal node.
func NewIntegerLit(value string, span lexer.Span) *IntegerLit {
	return &IntegerLit{Value: value, span: span}
}

// Span returns the literal span.
func (l *IntegerLit) Span() lexer.Span { return l.span }

// SetSpan updates the literal span.
func (l *IntegerLit) SetSpan(span lexer.Span) { l.span = span }

func (*IntegerLit) exprNode() {}

// FloatLit represents a floating point literal.
type FloatLit struct {
	Value string
	span  lexer.Span
}

// NewFloatLit constructs a float literal node.
func NewFloatLit(value string, span lexer.Span) *FloatLit {
	return &FloatLit{Value: value, span: span}
}

// Span returns the literal span.
func (l *FloatLit) Span() lexer.Span { return l.span }

// SetSpan updates the literal span.
func (l *FloatLit) SetSpan(span lexer.Span) { l.span = span }

func (*FloatLit) exprNode() {}

// StringLit represents a string literal. Value holds the decoded text.
type StringLit struct {
	Value string
	span  lexer.Span
}

// NewStringLit constructs a string literal node.
func NewStringLit(value string, span lexer.Span) *StringLit {
	return &StringLit{Value: value, span: span}
}

// Span returns the literal span.
func (l *StringLit) Span() lexer.Span { return l.span }

// SetSpan updates the literal span.
func (l *StringLit) SetSpan(span lexer.Span) { l.span = span }

func (*StringLit) exprNode() {}

// BoolLit represents `true` or `false`.
type BoolLit struct {
	Value bool
	span  lexer.Span
}

// NewBoolLit constructs a bool literal node.
func NewBoolLit(value bool, span lexer.Span) *BoolLit {
	return &BoolLit{Value: value, span: span}
}

// Span returns the literal span.
func (l *BoolLit) Span() lexer.Span { return l.span }

// SetSpan updates the literal span.
func (l *BoolLit) SetSpan(span lexer.Span) { l.span = span }

func (*BoolLit) exprNode() {}

// NilLit represents `nil`.
type NilLit struct {
	span lexer.Span
}

// NewNilLit constructs a nil literal node.
func NewNilLit(span lexer.Span) *NilLit {
	return &NilLit{span: span}
}

// Span returns the literal span.
func (l *NilLit) Span() lexer.Span { return l.span }

// SetSpan updates the literal span.
func (l *NilLit) SetSpan(span lexer.Span) { l.span = span }

func (*NilLit) exprNode() {}

// PrefixExpr represents a prefix operator application (`-x`, `!ok`).
type PrefixExpr struct {
	Op    string
	Right Expr
	span  lexer.Span
}

// NewPrefixExpr constructs a prefix expression node.
func NewPrefixExpr(op string, right Expr, span lexer.Span) *PrefixExpr {
	return &PrefixExpr{Op: op, Right: right, span: span}
}

// Span returns the expression span.
func (e *PrefixExpr) Span() lexer.Span { return e.span }

// SetSpan updates the expression span.
func (e *PrefixExpr) SetSpan(span lexer.Span) { e.span = span }

func (*PrefixExpr) exprNode() {}

// InfixExpr represents a binary operator application.
type InfixExpr struct {
	Left  Expr
	Op    string
	Right Expr
	span  lexer.Span
}

// NewInfixExpr constructs an infix expression node.
func NewInfixExpr(left Expr, op string, right Expr, span lexer.Span) *InfixExpr {
	return &InfixExpr{Left: left, Op: op, Right: right, span: span}
}

// Span returns the expression span.
func (e *InfixExpr) Span() lexer.Span { return e.span }

// SetSpan updates the expression span.
func (e *InfixExpr) SetSpan(span lexer.Span) { e.span = span }

func (*InfixExpr) exprNode() {}

// CallExpr represents a function call.
type CallExpr struct {
	Fn   Expr
	Args []Expr
	span lexer.Span
}

// NewCallExpr constructs a call expression node.
func NewCallExpr(fn Expr, args []Expr, span lexer.Span) *CallExpr {
	return &CallExpr{Fn: fn, Args: args, span: span}
}

// Span returns the expression span.
func (e *CallExpr) Span() lexer.Span { return e.span }

// SetSpan updates the expression span.
func (e *CallExpr) SetSpan(span lexer.Span) { e.span = span }

func (*CallExpr) exprNode() {}

// FuncDecl represents a function declaration. ArgPatterns is the externally
// callable shape of each clause; BodyPatterns is the internally bound shape.
// For curried signatures the two lists alias the same pattern nodes; selector
// signatures produce genuinely different trees.
type FuncDecl struct {
	Name         *Ident
	ArgPatterns  []Pattern
	BodyPatterns []Pattern
	Result       TypeExpr // nil when the signature has no '->' clause
	Body         *Block   // nil for bodyless declarations
	span         lexer.Span
}

// NewFuncDecl constructs a function declaration node.
func NewFuncDecl(name *Ident, argPatterns, bodyPatterns []Pattern, result TypeExpr, body *Block, span lexer.Span) *FuncDecl {
	return &FuncDecl{
		Name:         name,
		ArgPatterns:  argPatterns,
		BodyPatterns: bodyPatterns,
		Result:       result,
		Body:         body,
		span:         span,
	}
}

// Span returns the declaration span.
func (d *FuncDecl) Span() lexer.Span { return d.span }

// SetSpan updates the declaration span.
func (d *FuncDecl) SetSpan(span lexer.Span) { d.span = span }

func (*FuncDecl) declNode() {}

// VarDecl represents `var pattern (= expr)?;` or the `let` form.
type VarDecl struct {
	Const   bool // true for let
	Pattern Pattern
	Init    Expr // nil when no initializer is present
	span    lexer.Span
}

// NewVarDecl constructs a variable declaration node.
func NewVarDecl(isConst bool, pat Pattern, init Expr, span lexer.Span) *VarDecl {
	return &VarDecl{Const: isConst, Pattern: pat, Init: init, span: span}
}

// Span returns the declaration span.
func (d *VarDecl) Span() lexer.Span { return d.span }

// SetSpan updates the declaration span.
func (d *VarDecl) SetSpan(span lexer.Span) { d.span = span }

func (*VarDecl) declNode() {}

// Block is a braced statement list.
type Block struct {
	Stmts []Stmt
	span  lexer.Span
}

// NewBlock constructs a block node.
func NewBlock(stmts []Stmt, span lexer.Span) *Block {
	return &Block{Stmts: stmts, span: span}
}

// Span returns the block span.
func (b *Block) Span() lexer.Span { return b.span }

// SetSpan updates the block span.
func (b *Block) SetSpan(span lexer.Span) { b.span = span }

// DeclStmt wraps a declaration appearing in statement position.
type DeclStmt struct {
	Decl Decl
	span lexer.Span
}

// NewDeclStmt constructs a declaration statement node.
func NewDeclStmt(decl Decl, span lexer.Span) *DeclStmt {
	return &DeclStmt{Decl: decl, span: span}
}

// Span returns the statement span.
func (s *DeclStmt) Span() lexer.Span { return s.span }

// SetSpan updates the statement span.
func (s *DeclStmt) SetSpan(span lexer.Span) { s.span = span }

func (*DeclStmt) stmtNode() {}

// ReturnStmt represents `return expr?;`.
type ReturnStmt struct {
	Value Expr // nil for a bare return
	span  lexer.Span
}

// NewReturnStmt constructs a return statement node.
func NewReturnStmt(value Expr, span lexer.Span) *ReturnStmt {
	return &ReturnStmt{Value: value, span: span}
}

// Span returns the statement span.
func (s *ReturnStmt) Span() lexer.Span { return s.span }

// SetSpan updates the statement span.
func (s *ReturnStmt) SetSpan(span lexer.Span) { s.span = span }

func (*ReturnStmt) stmtNode() {}

// ExprStmt represents an expression used as a statement.
type ExprStmt struct {
	Expr Expr
	span lexer.Span
}

// NewExprStmt constructs an expression statement node.
func NewExprStmt(expr Expr, span lexer.Span) *ExprStmt {
	return &ExprStmt{Expr: expr, span: span}
}

// Span returns the statement span.
func (s *ExprStmt) Span() lexer.Span { return s.span }

// SetSpan updates the statement span.
func (s *ExprStmt) SetSpan(span lexer.Span) { s.span = span }

func (*ExprStmt) stmtNode() {}
