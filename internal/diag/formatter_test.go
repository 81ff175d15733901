package diag_test

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/katsumeshi/swift/internal/diag"
)

func init() {
	color.NoColor = true
}

func TestFormatRendersSnippet(t *testing.T) {
	var buf bytes.Buffer
	f := diag.NewFormatter(&buf)
	f.AddSource("demo.sw", "var x = ;\n")

	f.Format(diag.Diagnostic{
		Stage:    diag.StageParser,
		Severity: diag.SeverityError,
		Code:     diag.CodeParseExpectedInit,
		Message:  "expected initializer expression",
		Span:     diag.Span{Filename: "demo.sw", Line: 1, Column: 9, Start: 8, End: 9},
	})

	out := buf.String()
	assert.Contains(t, out, "error[PARSE_EXPECTED_INIT]: expected initializer expression")
	assert.Contains(t, out, "demo.sw:1:9")
	assert.Contains(t, out, "var x = ;")
	assert.Contains(t, out, "^")
}

func TestFormatWithHelpAndHighlight(t *testing.T) {
	var buf bytes.Buffer
	f := diag.NewFormatter(&buf)
	f.AddSource("demo.sw", "func f(xs: Int..., y: Int) {}\n")

	d := diag.Diagnostic{
		Stage:    diag.StageParser,
		Severity: diag.SeverityError,
		Code:     diag.CodeParseEllipsisNotLast,
		Message:  "a variadic element must be the last element of a tuple pattern",
		Span:     diag.Span{Filename: "demo.sw", Line: 1, Column: 8, Start: 7, End: 9},
	}
	d = d.WithHighlight(diag.Span{Filename: "demo.sw", Line: 1, Column: 20, Start: 19, End: 20}).
		WithHelp("move the variadic element to the end")

	f.Format(d)

	out := buf.String()
	assert.Contains(t, out, "= help: move the variadic element to the end")
	// Both the primary span and the highlight render a snippet line.
	assert.Equal(t, 2, bytes.Count(buf.Bytes(), []byte("func f(xs")))
}

func TestFormatAllCountsErrors(t *testing.T) {
	var buf bytes.Buffer
	f := diag.NewFormatter(&buf)

	count := f.FormatAll([]diag.Diagnostic{
		{Severity: diag.SeverityError, Message: "first"},
		{Severity: diag.SeverityWarning, Message: "careful"},
		{Severity: diag.SeverityError, Message: "second"},
	})

	assert.Equal(t, 2, count)
}

func TestSpanString(t *testing.T) {
	s := diag.Span{Filename: "a.sw", Line: 3, Column: 7}
	assert.Equal(t, "a.sw:3:7", s.String())

	s.Filename = ""
	assert.Equal(t, "3:7", s.String())

	assert.True(t, s.IsValid())
	assert.False(t, diag.Span{}.IsValid())
}
