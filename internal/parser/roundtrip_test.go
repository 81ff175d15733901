package parser_test

import (
	"testing"

	"github.com/katsumeshi/swift/internal/ast"
	"github.com/katsumeshi/swift/internal/parser"
)

// reprint parses and renders, failing the test on any diagnostic.
func reprint(t *testing.T, src string) string {
	t.Helper()

	p := parser.New(src)
	file := p.ParseFile()
	assertNoErrors(t, p.Errors())

	return ast.Print(file)
}

// Printed output must reparse to the same rendering. Sources are written in
// the printer's own normal form where that matters, so the first pass is
// already stable.
func TestPrintIsStable(t *testing.T) {
	sources := []string{
		`var x = 1;`,
		`let y: Int = 2;`,
		`var _ = f();`,
		`var () = f();`,
		`var (x) = y;`,
		`var (_: Int) = y;`,
		`var (x: Int, y: Float) = p;`,
		`func f();`,
		`func f(x: Int) -> Bool {}`,
		`func f(xs: Int...) {}`,
		`func f(a: Int)(b: Int) -> Int {}`,
		`func move(x: Int) to(y: Int);`,
		`func f(x: Int) by(step: Int = 1);`,
		`func f(xs: Int...) to(y: Int);`,
		`func adder(x: Int) -> (Int) -> Int;`,
	}

	for _, src := range sources {
		once := reprint(t, src)
		twice := reprint(t, once)
		if once != twice {
			t.Errorf("unstable rendering for %q:\nfirst:  %q\nsecond: %q", src, once, twice)
		}
	}
}

func TestPrintedFormMatchesSource(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{`func f(xs: Int...) {}`, "func f(xs: Int...) {}\n"},
		{`func move(x: Int) to(y: Int);`, "func move(x: Int) to(y: Int);\n"},
		{`var (x: Int, y: Float) = p;`, "var (x: Int, y: Float) = p;\n"},
		{`var x = (a + (b * c));`, "var x = (a + (b * c));\n"},
	}

	for _, tc := range tests {
		if got := reprint(t, tc.src); got != tc.want {
			t.Errorf("source %q: expected %q, got %q", tc.src, tc.want, got)
		}
	}
}

func TestStatementsRoundTrip(t *testing.T) {
	const src = `func f(x: Int) -> Int {
    let doubled = (x * 2);
    g(doubled);
    return doubled;
}
`

	once := reprint(t, src)
	twice := reprint(t, once)
	if once != twice {
		t.Fatalf("unstable rendering:\nfirst:  %q\nsecond: %q", once, twice)
	}
}
