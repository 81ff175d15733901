package parser_test

import (
	"testing"

	"github.com/katsumeshi/swift/internal/ast"
	"github.com/katsumeshi/swift/internal/diag"
	"github.com/katsumeshi/swift/internal/parser"
)

func parseFile(t *testing.T, src string) (*ast.File, []parser.ParseError) {
	t.Helper()

	p := parser.New(src)
	file := p.ParseFile()

	return file, p.Errors()
}

func assertNoErrors(t *testing.T, errs []parser.ParseError) {
	t.Helper()

	if len(errs) == 0 {
		return
	}

	for _, err := range errs {
		t.Errorf("unexpected parse error: %s", err.Message)
	}
	t.Fatalf("parser reported %d error(s)", len(errs))
}

func assertErrorCode(t *testing.T, errs []parser.ParseError, code diag.Code) {
	t.Helper()

	for _, err := range errs {
		if err.Code == code {
			return
		}
	}
	t.Fatalf("expected an error with code %s, got %d other error(s)", code, len(errs))
}

func firstVarPattern(t *testing.T, src string) ast.Pattern {
	t.Helper()

	file, errs := parseFile(t, src)
	assertNoErrors(t, errs)

	if len(file.Decls) != 1 {
		t.Fatalf("expected 1 declaration, got %d", len(file.Decls))
	}
	decl, ok := file.Decls[0].(*ast.VarDecl)
	if !ok {
		t.Fatalf("expected *ast.VarDecl, got %T", file.Decls[0])
	}
	return decl.Pattern
}

func TestWildcardPattern(t *testing.T) {
	pat := firstVarPattern(t, `var _ = 1;`)

	if _, ok := pat.(*ast.PatternAny); !ok {
		t.Fatalf("expected *ast.PatternAny, got %T", pat)
	}
}

func TestNamedPattern(t *testing.T) {
	pat := firstVarPattern(t, `var x = 1;`)

	named, ok := pat.(*ast.PatternNamed)
	if !ok {
		t.Fatalf("expected *ast.PatternNamed, got %T", pat)
	}
	if named.Binding.Name != "x" {
		t.Fatalf("expected binding name %q, got %q", "x", named.Binding.Name)
	}
}

func TestTypedPattern(t *testing.T) {
	pat := firstVarPattern(t, `var x: Int = 1;`)

	typed, ok := pat.(*ast.PatternTyped)
	if !ok {
		t.Fatalf("expected *ast.PatternTyped, got %T", pat)
	}
	if got := ast.BoundName(typed); got != "x" {
		t.Fatalf("expected bound name %q, got %q", "x", got)
	}
	named, ok := typed.Type.(*ast.NamedType)
	if !ok {
		t.Fatalf("expected *ast.NamedType annotation, got %T", typed.Type)
	}
	if named.Name.Name != "Int" {
		t.Fatalf("expected type %q, got %q", "Int", named.Name.Name)
	}
}

func TestEmptyTuplePattern(t *testing.T) {
	pat := firstVarPattern(t, `var () = f();`)

	tuple, ok := pat.(*ast.PatternTuple)
	if !ok {
		t.Fatalf("expected *ast.PatternTuple, got %T", pat)
	}
	if len(tuple.Elements) != 0 {
		t.Fatalf("expected 0 elements, got %d", len(tuple.Elements))
	}
}

func TestSingleNamedElementStaysTuple(t *testing.T) {
	// A bound name keeps the one-element tuple from collapsing.
	pat := firstVarPattern(t, `var (x) = y;`)

	tuple, ok := pat.(*ast.PatternTuple)
	if !ok {
		t.Fatalf("expected *ast.PatternTuple, got %T", pat)
	}
	if len(tuple.Elements) != 1 {
		t.Fatalf("expected 1 element, got %d", len(tuple.Elements))
	}
	if got := ast.BoundName(tuple.Elements[0].Pattern); got != "x" {
		t.Fatalf("expected bound name %q, got %q", "x", got)
	}
}

func TestAnonymousSingletonCollapsesToParen(t *testing.T) {
	pat := firstVarPattern(t, `var (_: Int) = y;`)

	paren, ok := pat.(*ast.PatternParen)
	if !ok {
		t.Fatalf("expected *ast.PatternParen, got %T", pat)
	}
	typed, ok := paren.Pattern.(*ast.PatternTyped)
	if !ok {
		t.Fatalf("expected *ast.PatternTyped inside parens, got %T", paren.Pattern)
	}
	if _, ok := typed.Pattern.(*ast.PatternAny); !ok {
		t.Fatalf("expected wildcard inside the annotation, got %T", typed.Pattern)
	}
}

func TestTuplePatternWithAnnotations(t *testing.T) {
	pat := firstVarPattern(t, `var (x: Int, y: Float) = p;`)

	tuple, ok := pat.(*ast.PatternTuple)
	if !ok {
		t.Fatalf("expected *ast.PatternTuple, got %T", pat)
	}
	if len(tuple.Elements) != 2 {
		t.Fatalf("expected 2 elements, got %d", len(tuple.Elements))
	}
	for i, name := range []string{"x", "y"} {
		if got := ast.BoundName(tuple.Elements[i].Pattern); got != name {
			t.Fatalf("element %d: expected bound name %q, got %q", i, name, got)
		}
	}
}

func TestTupleElementInit(t *testing.T) {
	pat := firstVarPattern(t, `var (x = 1, y) = p;`)

	tuple, ok := pat.(*ast.PatternTuple)
	if !ok {
		t.Fatalf("expected *ast.PatternTuple, got %T", pat)
	}
	if tuple.Elements[0].Init == nil {
		t.Fatalf("expected element 0 to carry an initializer")
	}
	if tuple.Elements[1].Init != nil {
		t.Fatalf("expected element 1 to have no initializer")
	}
}

func TestInitRejectedInNestedTuple(t *testing.T) {
	file, errs := parseFile(t, `var (a, (b = 1, c)) = p;`)
	assertErrorCode(t, errs, diag.CodeParseInitNotAllowed)

	// The flagged initializer stays in the tree.
	decl := file.Decls[0].(*ast.VarDecl)
	outer := decl.Pattern.(*ast.PatternTuple)
	inner := outer.Elements[1].Pattern.(*ast.PatternTuple)
	if inner.Elements[0].Init == nil {
		t.Fatalf("expected the rejected initializer to be kept")
	}
}

func TestKeywordCannotBePattern(t *testing.T) {
	_, errs := parseFile(t, `var if = 1;`)
	assertErrorCode(t, errs, diag.CodeParseKeywordPattern)
}

func TestMissingPattern(t *testing.T) {
	_, errs := parseFile(t, `var = 1;`)
	assertErrorCode(t, errs, diag.CodeParseExpectedPattern)
}

func TestNestedGroupingCollapses(t *testing.T) {
	pat := firstVarPattern(t, `var ((x)) = y;`)

	// The outer layer is grouping around the inner one-element tuple.
	paren, ok := pat.(*ast.PatternParen)
	if !ok {
		t.Fatalf("expected *ast.PatternParen, got %T", pat)
	}
	if _, ok := paren.Pattern.(*ast.PatternTuple); !ok {
		t.Fatalf("expected inner *ast.PatternTuple, got %T", paren.Pattern)
	}
}

func TestVarargElement(t *testing.T) {
	file, errs := parseFile(t, `func f(xs: Int...) {}`)
	assertNoErrors(t, errs)

	fn := file.Decls[0].(*ast.FuncDecl)
	tuple, ok := fn.ArgPatterns[0].(*ast.PatternTuple)
	if !ok {
		t.Fatalf("expected *ast.PatternTuple clause, got %T", fn.ArgPatterns[0])
	}
	if len(tuple.Elements) != 1 {
		t.Fatalf("expected 1 element, got %d", len(tuple.Elements))
	}

	elt := tuple.Elements[0]
	if !elt.IsVararg() {
		t.Fatalf("expected element to be variadic")
	}
	base, ok := elt.VarargBase.(*ast.NamedType)
	if !ok || base.Name.Name != "Int" {
		t.Fatalf("expected vararg base type Int, got %s", ast.TypeString(elt.VarargBase))
	}

	// The binding sees the slice form of the declared type.
	typed, ok := elt.Pattern.(*ast.PatternTyped)
	if !ok {
		t.Fatalf("expected *ast.PatternTyped element, got %T", elt.Pattern)
	}
	slice, ok := typed.Type.(*ast.SliceType)
	if !ok {
		t.Fatalf("expected the annotation rewritten to a slice, got %T", typed.Type)
	}
	if got := ast.TypeString(slice.Elem); got != "Int" {
		t.Fatalf("expected slice element type Int, got %s", got)
	}
}

func TestVarargMustBeLast(t *testing.T) {
	file, errs := parseFile(t, `func f(xs: Int..., y: Int) {}`)
	assertErrorCode(t, errs, diag.CodeParseEllipsisNotLast)

	fn := file.Decls[0].(*ast.FuncDecl)
	tuple := fn.ArgPatterns[0].(*ast.PatternTuple)
	if len(tuple.Elements) != 2 {
		t.Fatalf("expected 2 elements, got %d", len(tuple.Elements))
	}

	// The early element is demoted but its rewritten annotation stays.
	if tuple.Elements[0].IsVararg() {
		t.Fatalf("expected element 0 to be demoted")
	}
	typed := tuple.Elements[0].Pattern.(*ast.PatternTyped)
	if _, ok := typed.Type.(*ast.SliceType); !ok {
		t.Fatalf("expected the demoted annotation to keep its slice form, got %T", typed.Type)
	}
}

func TestVarargRequiresAnnotation(t *testing.T) {
	file, errs := parseFile(t, `func f(xs...) {}`)
	assertErrorCode(t, errs, diag.CodeParseEllipsisUntyped)

	fn := file.Decls[0].(*ast.FuncDecl)
	tuple := fn.ArgPatterns[0].(*ast.PatternTuple)
	if tuple.Elements[0].IsVararg() {
		t.Fatalf("expected the untyped element not to be variadic")
	}
}

func TestVarargConflictsWithInit(t *testing.T) {
	file, errs := parseFile(t, `func f(x: Int = 1...) {}`)
	assertErrorCode(t, errs, diag.CodeParseEllipsisInit)

	fn := file.Decls[0].(*ast.FuncDecl)
	tuple := fn.ArgPatterns[0].(*ast.PatternTuple)
	elt := tuple.Elements[0]
	if elt.IsVararg() {
		t.Fatalf("expected the initialized element not to be variadic")
	}
	if elt.Init == nil {
		t.Fatalf("expected the initializer to survive")
	}
}

func TestBoundNameLooksThroughWrappers(t *testing.T) {
	pat := firstVarPattern(t, `var (x: Int) = y;`)

	tuple := pat.(*ast.PatternTuple)
	if got := ast.BoundName(tuple.Elements[0].Pattern); got != "x" {
		t.Fatalf("expected bound name %q, got %q", "x", got)
	}
	if got := ast.BoundName(tuple); got != "" {
		t.Fatalf("expected tuples to bind no single name, got %q", got)
	}
}
