package parser_test

import (
	"testing"

	"github.com/katsumeshi/swift/internal/ast"
	"github.com/katsumeshi/swift/internal/diag"
)

func firstFuncDecl(t *testing.T, src string) *ast.FuncDecl {
	t.Helper()

	file, errs := parseFile(t, src)
	assertNoErrors(t, errs)

	if len(file.Decls) != 1 {
		t.Fatalf("expected 1 declaration, got %d", len(file.Decls))
	}
	fn, ok := file.Decls[0].(*ast.FuncDecl)
	if !ok {
		t.Fatalf("expected *ast.FuncDecl, got %T", file.Decls[0])
	}
	return fn
}

func TestSimpleSignature(t *testing.T) {
	fn := firstFuncDecl(t, `func f(x: Int) -> Bool {}`)

	if len(fn.ArgPatterns) != 1 || len(fn.BodyPatterns) != 1 {
		t.Fatalf("expected 1 clause in each tree, got %d/%d",
			len(fn.ArgPatterns), len(fn.BodyPatterns))
	}
	if fn.ArgPatterns[0] != fn.BodyPatterns[0] {
		t.Fatalf("expected a non-selector clause to be shared between trees")
	}
	result, ok := fn.Result.(*ast.NamedType)
	if !ok || result.Name.Name != "Bool" {
		t.Fatalf("expected result type Bool, got %s", ast.TypeString(fn.Result))
	}
}

func TestSignatureWithoutResult(t *testing.T) {
	fn := firstFuncDecl(t, `func f();`)

	if fn.Result != nil {
		t.Fatalf("expected nil result type, got %s", ast.TypeString(fn.Result))
	}
	if fn.Body != nil {
		t.Fatalf("expected a bodyless declaration")
	}
}

func TestCurriedSignature(t *testing.T) {
	fn := firstFuncDecl(t, `func f(a: Int)(b: Int) -> Int { return (a + b); }`)

	if len(fn.ArgPatterns) != 2 || len(fn.BodyPatterns) != 2 {
		t.Fatalf("expected 2 clauses in each tree, got %d/%d",
			len(fn.ArgPatterns), len(fn.BodyPatterns))
	}
	for i := range fn.ArgPatterns {
		if fn.ArgPatterns[i] != fn.BodyPatterns[i] {
			t.Fatalf("clause %d: expected the same node in both trees", i)
		}
		tuple, ok := fn.ArgPatterns[i].(*ast.PatternTuple)
		if !ok {
			t.Fatalf("clause %d: expected *ast.PatternTuple, got %T", i, fn.ArgPatterns[i])
		}
		if len(tuple.Elements) != 1 {
			t.Fatalf("clause %d: expected 1 element, got %d", i, len(tuple.Elements))
		}
	}
}

func TestSelectorSignature(t *testing.T) {
	fn := firstFuncDecl(t, `func move(x: Int) to(y: Int);`)

	if len(fn.ArgPatterns) != 1 || len(fn.BodyPatterns) != 1 {
		t.Fatalf("expected 1 clause in each tree, got %d/%d",
			len(fn.ArgPatterns), len(fn.BodyPatterns))
	}
	if fn.ArgPatterns[0] == fn.BodyPatterns[0] {
		t.Fatalf("expected distinct arg and body clauses for selector style")
	}

	argTuple := fn.ArgPatterns[0].(*ast.PatternTuple)
	bodyTuple := fn.BodyPatterns[0].(*ast.PatternTuple)
	if len(argTuple.Elements) != 2 || len(bodyTuple.Elements) != 2 {
		t.Fatalf("expected 2 elements per tuple, got %d/%d",
			len(argTuple.Elements), len(bodyTuple.Elements))
	}

	// First parameter: anonymous externally, named internally.
	argFirst := argTuple.Elements[0].Pattern.(*ast.PatternTyped)
	if _, ok := argFirst.Pattern.(*ast.PatternAny); !ok {
		t.Fatalf("expected the external first parameter to be anonymous, got %T", argFirst.Pattern)
	}
	if got := ast.BoundName(bodyTuple.Elements[0].Pattern); got != "x" {
		t.Fatalf("expected internal first parameter %q, got %q", "x", got)
	}

	// The annotation node is shared between the two views.
	bodyFirst := bodyTuple.Elements[0].Pattern.(*ast.PatternTyped)
	if argFirst.Type != bodyFirst.Type {
		t.Fatalf("expected the first parameter annotation to be shared")
	}

	// Second parameter: selector name externally, inner name internally.
	if got := ast.BoundName(argTuple.Elements[1].Pattern); got != "to" {
		t.Fatalf("expected external name %q, got %q", "to", got)
	}
	if got := ast.BoundName(bodyTuple.Elements[1].Pattern); got != "y" {
		t.Fatalf("expected internal name %q, got %q", "y", got)
	}
}

func TestSelectorFirstClauseWildcard(t *testing.T) {
	fn := firstFuncDecl(t, `func f(_: Int) to(y: Int);`)

	argTuple := fn.ArgPatterns[0].(*ast.PatternTuple)
	bodyTuple := fn.BodyPatterns[0].(*ast.PatternTuple)

	bodyFirst, ok := bodyTuple.Elements[0].Pattern.(*ast.PatternTyped)
	if !ok {
		t.Fatalf("expected *ast.PatternTyped, got %T", bodyTuple.Elements[0].Pattern)
	}
	argFirst := argTuple.Elements[0].Pattern.(*ast.PatternTyped)
	if argFirst.Type != bodyFirst.Type {
		t.Fatalf("expected the annotation to be shared between trees")
	}
}

func TestSelectorClauseWithDefault(t *testing.T) {
	fn := firstFuncDecl(t, `func f(x: Int) by(step: Int = 1);`)

	argTuple := fn.ArgPatterns[0].(*ast.PatternTuple)
	bodyTuple := fn.BodyPatterns[0].(*ast.PatternTuple)
	if argTuple.Elements[1].Init == nil || bodyTuple.Elements[1].Init == nil {
		t.Fatalf("expected the default to appear in both trees")
	}
}

func TestSelectorSingletonNeverCollapses(t *testing.T) {
	// Even a single anonymous element stays a tuple in selector signatures.
	fn := firstFuncDecl(t, `func f(x: Int) to(_);`)

	if _, ok := fn.ArgPatterns[0].(*ast.PatternTuple); !ok {
		t.Fatalf("expected *ast.PatternTuple, got %T", fn.ArgPatterns[0])
	}
	if _, ok := fn.BodyPatterns[0].(*ast.PatternTuple); !ok {
		t.Fatalf("expected *ast.PatternTuple, got %T", fn.BodyPatterns[0])
	}
}

func TestSelectorNameRedefined(t *testing.T) {
	file, errs := parseFile(t, `func f(x: Int) to(a: Int) to(b: Int);`)
	assertErrorCode(t, errs, diag.CodeParseSelectorRedefined)

	// The duplicate clause still contributes an element; only the name
	// table keeps the first binding.
	fn := file.Decls[0].(*ast.FuncDecl)
	bodyTuple := fn.BodyPatterns[0].(*ast.PatternTuple)
	if len(bodyTuple.Elements) != 3 {
		t.Fatalf("expected 3 elements, got %d", len(bodyTuple.Elements))
	}
}

func TestSelectorRequiresParen(t *testing.T) {
	_, errs := parseFile(t, `func f(x: Int) to y;`)
	assertErrorCode(t, errs, diag.CodeParseSelectorParen)
}

func TestSelectorClauseTakesOneArgument(t *testing.T) {
	_, errs := parseFile(t, `func f(x: Int) to(a, b);`)
	assertErrorCode(t, errs, diag.CodeParseSelectorArity)
}

func TestSelectorClauseRejectsEmptyParens(t *testing.T) {
	_, errs := parseFile(t, `func f(x: Int) to();`)
	assertErrorCode(t, errs, diag.CodeParseSelectorArity)
}

func TestSelectorFirstClauseArity(t *testing.T) {
	_, errs := parseFile(t, `func f(a: Int, b: Int) to(c: Int);`)
	assertErrorCode(t, errs, diag.CodeParseSelectorArity)
}

func TestSelectorCannotBeCurried(t *testing.T) {
	_, errs := parseFile(t, `func f(x: Int) to(y: Int)(z: Int);`)
	assertErrorCode(t, errs, diag.CodeParseSelectorCurryMix)
}

func TestSelectorVarargFirstClause(t *testing.T) {
	fn := firstFuncDecl(t, `func f(xs: Int...) to(y: Int);`)

	argTuple := fn.ArgPatterns[0].(*ast.PatternTuple)
	bodyTuple := fn.BodyPatterns[0].(*ast.PatternTuple)
	if !argTuple.Elements[0].IsVararg() || !bodyTuple.Elements[0].IsVararg() {
		t.Fatalf("expected the first element variadic in both trees")
	}
}

func TestFunctionTypeResult(t *testing.T) {
	fn := firstFuncDecl(t, `func adder(x: Int) -> (Int) -> Int;`)

	fnType, ok := fn.Result.(*ast.FunctionType)
	if !ok {
		t.Fatalf("expected *ast.FunctionType result, got %T", fn.Result)
	}
	if len(fnType.Params) != 1 {
		t.Fatalf("expected 1 parameter type, got %d", len(fnType.Params))
	}
}

func TestMissingArgumentsParen(t *testing.T) {
	_, errs := parseFile(t, `func f x;`)
	assertErrorCode(t, errs, diag.CodeParseExpectedToken)
}
