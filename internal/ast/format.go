package ast

import "strings"

const (
	DEFAULT_INDENT_WIDTH = 2
)

// A Formatter holds the formatting context of a re-serialization: the indentation unit and the current depth.
type Formatter struct {
	unit  string
	depth int
}

// NewFormatter returns a formatter indenting with width spaces, DEFAULT_INDENT_WIDTH is used if width is not positive.
func NewFormatter(width int) *Formatter {
	if width <= 0 {
		width = DEFAULT_INDENT_WIDTH
	}
	return &Formatter{unit: strings.Repeat(" ", width)}
}

func (f *Formatter) OpenScope() {
	f.depth++
}

func (f *Formatter) CloseScope() {
	if f.depth == 0 {
		panic("CloseScope called without a matching OpenScope")
	}
	f.depth--
}

func (f *Formatter) Depth() int {
	return f.depth
}

// Indent returns the indentation of the current depth.
func (f *Formatter) Indent() string {
	return strings.Repeat(f.unit, f.depth)
}

// Format re-serializes a node with the default indentation.
func Format(node Node) string {
	return node.Format(NewFormatter(DEFAULT_INDENT_WIDTH))
}

func formatSequence(f *Formatter, b *strings.Builder, statements []Node) {
	for _, stmt := range statements {
		b.WriteString(f.Indent())
		b.WriteString(stmt.Format(f))
	}
}

// formatBody formats indented statements followed by the 'end' keyword.
func formatBody(f *Formatter, b *strings.Builder, statements []Node) {
	f.OpenScope()
	formatSequence(f, b, statements)
	f.CloseScope()
	b.WriteString(f.Indent())
	b.WriteString("end\n")
}
