package diag

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

var (
	errorStyle   = color.New(color.FgRed, color.Bold)
	warningStyle = color.New(color.FgYellow, color.Bold)
	noteStyle    = color.New(color.FgCyan, color.Bold)
	lineStyle    = color.New(color.FgBlue, color.Bold)
	fileStyle    = color.New(color.FgCyan)
)

// Formatter renders diagnostics in a Rust-style format with source snippets.
type Formatter struct {
	out         io.Writer
	sourceCache map[string]string
}

// NewFormatter creates a formatter writing to w.
func NewFormatter(w io.Writer) *Formatter {
	return &Formatter{
		out:         w,
		sourceCache: make(map[string]string),
	}
}

// AddSource registers source text for a filename so snippets can be rendered
// without touching the filesystem (used by in-memory parses and tests).
func (f *Formatter) AddSource(filename, src string) {
	f.sourceCache[filename] = src
}

func (f *Formatter) loadSource(filename string) (string, bool) {
	if filename == "" {
		return "", false
	}
	if src, ok := f.sourceCache[filename]; ok {
		return src, true
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return "", false
	}
	f.sourceCache[filename] = string(data)
	return string(data), true
}

func severityStyle(s Severity) *color.Color {
	switch s {
	case SeverityWarning:
		return warningStyle
	case SeverityNote:
		return noteStyle
	default:
		return errorStyle
	}
}

// Format renders a single diagnostic.
func (f *Formatter) Format(d Diagnostic) {
	style := severityStyle(d.Severity)

	head := string(d.Severity)
	if d.Code != "" {
		head = fmt.Sprintf("%s[%s]", d.Severity, d.Code)
	}
	fmt.Fprintf(f.out, "%s%s %s\n", style.Sprint(head), style.Sprint(":"), d.Message)
	fmt.Fprintf(f.out, "%s %s\n", lineStyle.Sprint(" -->"), fileStyle.Sprint(d.Span.String()))

	f.snippet(d.Span, style)
	if d.Highlight.IsValid() && d.Highlight != d.Span {
		f.snippet(d.Highlight, noteStyle)
	}

	if d.Help != "" {
		fmt.Fprintf(f.out, "  %s %s\n", noteStyle.Sprint("= help:"), d.Help)
	}
	fmt.Fprintln(f.out)
}

// FormatAll renders every diagnostic in order and returns the error count.
func (f *Formatter) FormatAll(diags []Diagnostic) int {
	errs := 0
	for _, d := range diags {
		f.Format(d)
		if d.Severity == SeverityError {
			errs++
		}
	}
	return errs
}

func (f *Formatter) snippet(span Span, style *color.Color) {
	src, ok := f.loadSource(span.Filename)
	if !ok || !span.IsValid() {
		return
	}

	lines := strings.Split(src, "\n")
	if span.Line > len(lines) {
		return
	}
	line := lines[span.Line-1]

	gutter := fmt.Sprintf("%d", span.Line)
	pad := strings.Repeat(" ", len(gutter))

	fmt.Fprintf(f.out, "%s\n", lineStyle.Sprintf("%s |", pad))
	fmt.Fprintf(f.out, "%s %s\n", lineStyle.Sprintf("%s |", gutter), line)

	width := span.End - span.Start
	if width < 1 {
		width = 1
	}
	if span.Column-1+width > len(line) {
		width = len(line) - (span.Column - 1)
		if width < 1 {
			width = 1
		}
	}
	marker := strings.Repeat(" ", span.Column-1) + strings.Repeat("^", width)
	fmt.Fprintf(f.out, "%s %s\n", lineStyle.Sprintf("%s |", pad), style.Sprint(marker))
}
