package lexer

import (
	"github.com/katsumeshi/swift/internal/diag"
)

type ErrorKind int

const (
	ErrUnterminatedString ErrorKind = iota
	ErrUnterminatedBlockComment
	ErrIllegalRune
)

// Error records a lexical error with location context.
type Error struct {
	Kind    ErrorKind
	Message string
	Span    Span
}

func (k ErrorKind) diagnosticCode() diag.Code {
	switch k {
	case ErrUnterminatedString:
		return diag.CodeLexUnterminatedString
	case ErrUnterminatedBlockComment:
		return diag.CodeLexUnterminatedBlockComment
	default:
		return diag.CodeLexIllegalRune
	}
}

// ToDiagnostic converts a lexer error into a shared diagnostic structure.
func (e Error) ToDiagnostic() diag.Diagnostic {
	return diag.Diagnostic{
		Stage:    diag.StageLexer,
		Severity: diag.SeverityError,
		Code:     e.Kind.diagnosticCode(),
		Message:  e.Message,
		Span: diag.Span{
			Filename: e.Span.Filename,
			Line:     e.Span.Line,
			Column:   e.Span.Column,
			Start:    e.Span.Start,
			End:      e.Span.End,
		},
	}
}

// Lexer turns source text into a token stream. It keeps a single current
// rune plus one rune of lookahead, mirroring the parser's token window.
type Lexer struct {
	input    []rune
	pos      int  // index of the current rune
	ch       rune // current rune (0 = EOF)
	line     int  // current line number (1-based)
	column   int  // current column number (1-based)
	filename string

	Errors []Error
}

// New creates a new lexer for the given input.
func New(input string) *Lexer {
	l := &Lexer{
		input:  []rune(input),
		pos:    -1, // start before first rune
		line:   1,
		column: 0, // becomes 1 after the first read
	}
	l.read()
	return l
}

// SetFilename attributes all subsequently produced spans to the given file.
func (l *Lexer) SetFilename(name string) {
	l.filename = name
}

func (l *Lexer) addError(kind ErrorKind, msg string, span Span) {
	l.Errors = append(l.Errors, Error{
		Kind:    kind,
		Message: msg,
		Span:    span,
	})
}

// read advances the lexer to the next rune, maintaining line/column so they
// always describe the rune at pos.
func (l *Lexer) read() {
	prev := l.pos
	l.pos++

	if prev >= 0 && prev < len(l.input) && l.input[prev] == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}

	if l.pos >= len(l.input) {
		l.ch = 0
		return
	}
	l.ch = l.input[l.pos]
}

// peek returns the next rune without advancing.
func (l *Lexer) peek() rune {
	if l.pos+1 >= len(l.input) {
		return 0
	}
	return l.input[l.pos+1]
}

func (l *Lexer) peekAt(n int) rune {
	if l.pos+n >= len(l.input) {
		return 0
	}
	return l.input[l.pos+n]
}

func (l *Lexer) spanFrom(line, column, start int) Span {
	return Span{
		Filename: l.filename,
		Line:     line,
		Column:   column,
		Start:    start,
		End:      l.pos,
	}
}

func (l *Lexer) skipWhitespace() {
	for {
		switch {
		case l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r':
			l.read()
		case l.ch == '/' && l.peek() == '/':
			for l.ch != '\n' && l.ch != 0 {
				l.read()
			}
		case l.ch == '/' && l.peek() == '*':
			l.skipBlockComment()
		default:
			return
		}
	}
}

func (l *Lexer) skipBlockComment() {
	line, column, start := l.line, l.column, l.pos
	l.read() // '/'
	l.read() // '*'

	depth := 1
	for depth > 0 {
		if l.ch == 0 {
			l.addError(ErrUnterminatedBlockComment, "unterminated block comment", l.spanFrom(line, column, start))
			return
		}
		if l.ch == '/' && l.peek() == '*' {
			l.read()
			l.read()
			depth++
			continue
		}
		if l.ch == '*' && l.peek() == '/' {
			l.read()
			l.read()
			depth--
			continue
		}
		l.read()
	}
}

func (l *Lexer) readIdentifier() string {
	start := l.pos
	for isLetter(l.ch) || isDigit(l.ch) || l.ch == '_' {
		l.read()
	}
	return string(l.input[start:l.pos])
}

func (l *Lexer) readNumber() (string, TokenType) {
	start := l.pos
	tokType := INT

	for isDigit(l.ch) || l.ch == '_' {
		l.read()
	}

	if l.ch == '.' && isDigit(l.peek()) {
		tokType = FLOAT
		l.read() // '.'
		for isDigit(l.ch) || l.ch == '_' {
			l.read()
		}
	}

	if l.ch == 'e' || l.ch == 'E' {
		tokType = FLOAT
		l.read()
		if l.ch == '+' || l.ch == '-' {
			l.read()
		}
		for isDigit(l.ch) {
			l.read()
		}
	}

	return string(l.input[start:l.pos]), tokType
}

// readString reads a double-quoted string literal and returns the decoded
// value. The opening quote is the current rune.
func (l *Lexer) readString(line, column, start int) (string, bool) {
	l.read() // opening quote

	var out []rune
	for {
		switch l.ch {
		case 0, '\n':
			l.addError(ErrUnterminatedString, "unterminated string literal", l.spanFrom(line, column, start))
			return string(out), false
		case '"':
			l.read()
			return string(out), true
		case '\\':
			l.read()
			switch l.ch {
			case 'n':
				out = append(out, '\n')
			case 't':
				out = append(out, '\t')
			case 'r':
				out = append(out, '\r')
			case '\\':
				out = append(out, '\\')
			case '"':
				out = append(out, '"')
			case '0':
				out = append(out, 0)
			default:
				out = append(out, l.ch)
			}
			l.read()
		default:
			out = append(out, l.ch)
			l.read()
		}
	}
}

// NextToken returns the next token from the input.
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	line, column, start := l.line, l.column, l.pos

	simple := func(tt TokenType, width int) Token {
		lit := ""
		if start < len(l.input) {
			end := start + width
			if end > len(l.input) {
				end = len(l.input)
			}
			lit = string(l.input[start:end])
		}
		for i := 0; i < width; i++ {
			l.read()
		}
		return Token{Type: tt, Literal: lit, Span: l.spanFrom(line, column, start)}
	}

	switch l.ch {
	case 0:
		if column == 0 {
			column = 1
		}
		return Token{Type: EOF, Span: Span{Filename: l.filename, Line: line, Column: column, Start: start, End: start}}
	case '=':
		if l.peek() == '=' {
			return simple(EQ, 2)
		}
		return simple(ASSIGN, 1)
	case '+':
		return simple(PLUS, 1)
	case '-':
		if l.peek() == '>' {
			return simple(ARROW, 2)
		}
		return simple(MINUS, 1)
	case '!':
		if l.peek() == '=' {
			return simple(NOT_EQ, 2)
		}
		return simple(BANG, 1)
	case '*':
		return simple(ASTERISK, 1)
	case '/':
		return simple(SLASH, 1)
	case '<':
		if l.peek() == '=' {
			return simple(LE, 2)
		}
		return simple(LT, 1)
	case '>':
		if l.peek() == '=' {
			return simple(GE, 2)
		}
		return simple(GT, 1)
	case '&':
		if l.peek() == '&' {
			return simple(AND, 2)
		}
	case '|':
		if l.peek() == '|' {
			return simple(OR, 2)
		}
	case ',':
		return simple(COMMA, 1)
	case ';':
		return simple(SEMICOLON, 1)
	case ':':
		return simple(COLON, 1)
	case '.':
		if l.peek() == '.' && l.peekAt(2) == '.' {
			return simple(ELLIPSIS, 3)
		}
		return simple(DOT, 1)
	case '(':
		return simple(LPAREN, 1)
	case ')':
		return simple(RPAREN, 1)
	case '{':
		return simple(LBRACE, 1)
	case '}':
		return simple(RBRACE, 1)
	case '[':
		return simple(LBRACKET, 1)
	case ']':
		return simple(RBRACKET, 1)
	case '"':
		value, ok := l.readString(line, column, start)
		tok := Token{Type: STRING, Literal: value, Span: l.spanFrom(line, column, start)}
		if !ok {
			tok.Type = ILLEGAL
		}
		return tok
	}

	if isLetter(l.ch) || l.ch == '_' {
		lit := l.readIdentifier()
		return Token{Type: LookupIdent(lit), Literal: lit, Span: l.spanFrom(line, column, start)}
	}

	if isDigit(l.ch) {
		lit, tt := l.readNumber()
		return Token{Type: tt, Literal: lit, Span: l.spanFrom(line, column, start)}
	}

	bad := string(l.ch)
	l.read()
	span := l.spanFrom(line, column, start)
	l.addError(ErrIllegalRune, "illegal character '"+bad+"'", span)
	return Token{Type: ILLEGAL, Literal: bad, Span: span}
}

func isLetter(ch rune) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}
