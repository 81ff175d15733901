package diag

import "fmt"

// Stage identifies which compiler phase produced the diagnostic.
type Stage string

const (
	StageLexer  Stage = "lexer"
	StageParser Stage = "parser"
)

// Severity captures how impactful the diagnostic is.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityNote    Severity = "note"
)

// Code is a stable identifier for a diagnostic.
type Code string

const (
	// Lexer errors
	CodeLexUnterminatedString       Code = "LEX_UNTERMINATED_STRING"
	CodeLexUnterminatedBlockComment Code = "LEX_UNTERMINATED_BLOCK_COMMENT"
	CodeLexIllegalRune              Code = "LEX_ILLEGAL_RUNE"

	// General parse errors
	CodeParseExpectedToken Code = "PARSE_EXPECTED_TOKEN"
	CodeParseExpectedDecl  Code = "PARSE_EXPECTED_DECL"
	CodeParseExpectedType  Code = "PARSE_EXPECTED_TYPE"
	CodeParseExpectedExpr  Code = "PARSE_EXPECTED_EXPR"
	CodeParseExpectedInit  Code = "PARSE_EXPECTED_INIT"

	// Pattern errors
	CodeParseExpectedPattern Code = "PARSE_EXPECTED_PATTERN"
	CodeParseKeywordPattern  Code = "PARSE_KEYWORD_PATTERN"
	CodeParseInitNotAllowed  Code = "PARSE_INIT_NOT_ALLOWED"
	CodeParseEllipsisInit    Code = "PARSE_ELLIPSIS_WITH_INIT"
	CodeParseEllipsisUntyped Code = "PARSE_ELLIPSIS_UNTYPED"
	CodeParseEllipsisNotLast Code = "PARSE_ELLIPSIS_NOT_LAST"

	// Function signature errors
	CodeParseSelectorParen     Code = "PARSE_SELECTOR_MISSING_PAREN"
	CodeParseSelectorArity     Code = "PARSE_SELECTOR_NOT_ONE_ARG"
	CodeParseSelectorRedefined Code = "PARSE_SELECTOR_REDEFINED"
	CodeParseSelectorCurryMix  Code = "PARSE_SELECTOR_CURRY_MIX"
)

// Span represents a location in source code.
type Span struct {
	Filename string
	Line     int
	Column   int
	Start    int
	End      int
}

// String returns a human-readable representation of the span.
func (s Span) String() string {
	if s.Filename != "" {
		return fmt.Sprintf("%s:%d:%d", s.Filename, s.Line, s.Column)
	}
	return fmt.Sprintf("%d:%d", s.Line, s.Column)
}

// IsValid returns true if the span has valid location information.
func (s Span) IsValid() bool {
	return s.Line > 0 && s.Column > 0
}

// Diagnostic is a compiler diagnostic surfaced to end-users. Emitting one
// never alters parser control flow; the producing routine decides separately
// whether the condition is fatal.
type Diagnostic struct {
	Stage     Stage
	Severity  Severity
	Code      Code
	Message   string
	Span      Span   // primary span
	Highlight Span   // optional secondary span (e.g. the conflicting earlier token)
	Help      string // optional help text
}

// WithHighlight returns a copy of the diagnostic with a highlighted range.
func (d Diagnostic) WithHighlight(span Span) Diagnostic {
	d.Highlight = span
	return d
}

// WithHelp returns a copy of the diagnostic with help text attached.
func (d Diagnostic) WithHelp(help string) Diagnostic {
	d.Help = help
	return d
}
