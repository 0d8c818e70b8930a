package generator

import (
	"strings"

	"github.com/t14raptor/autobind/ast"
)

type state struct {
	out    *strings.Builder
	opts   *Options
	node   ast.Node
	parent *state
	indent int
}

func (s *state) wrap(node ast.Node) *state {
	return &state{
		out:    s.out,
		opts:   s.opts,
		node:   node,
		parent: s,
		indent: s.indent,
	}
}

func (s *state) line() {
	s.out.WriteString("\n")
}

func (s *state) pad() {
	s.out.WriteString(strings.Repeat(s.opts.Indent, s.indent))
}

func (s *state) lineAndPad() {
	s.line()
	s.pad()
}

// verbatim writes the source text of n when n was parsed from opts.Source
// and no edit touches it.
func (s *state) verbatim(n ast.Node) bool {
	if s.opts.Source == "" {
		return false
	}
	span := ast.SpanOf(n)
	if !span.Valid() || int(span.To) > len(s.opts.Source) {
		return false
	}
	for _, e := range s.opts.Edits {
		if span.Overlaps(e) {
			return false
		}
	}
	s.out.WriteString(s.opts.Source[span.From:span.To])
	return true
}

// blankLineBefore reports whether the source separates two consecutive list
// items with an empty line. Text covered by edits is ignored so that removed
// statements do not leave gaps behind.
func (s *state) blankLineBefore(prevEnd, start ast.Idx) bool {
	if s.opts.Source == "" || prevEnd <= 0 || start <= prevEnd || int(start) > len(s.opts.Source) {
		return false
	}
	from := prevEnd
	for _, e := range s.opts.Edits {
		if e.From >= from && e.To <= start && e.To > from {
			from = e.To
		}
	}
	return strings.Count(s.opts.Source[from:start], "\n") >= 2
}
