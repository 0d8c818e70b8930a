// Package autobind rewrites the two hand-written ways of binding methods to
// their instance into arrow-valued class fields:
//
//	constructor() { this.onClick = this.onClick.bind(this); }
//	onClick(e) { ... }
//
// and
//
//	render() { return <a onClick={this.onClick.bind(this)} />; }
//	onClick(e) { ... }
//
// both become
//
//	onClick = (e) => { ... };
package autobind

import (
	"errors"
	"fmt"

	"github.com/t14raptor/autobind/ast"
	"github.com/t14raptor/autobind/generator"
	"github.com/t14raptor/autobind/parser"
)

// Mode selects which bind idiom a rewrite looks for.
type Mode int

const (
	// ModeConstructor rewrites this.x = this.x.bind(this) in constructors.
	ModeConstructor Mode = iota + 1
	// ModeCallSite rewrites this.x.bind(this) outside constructors.
	ModeCallSite
)

var ErrUnknownMode = errors.New("unknown mode")

func (m Mode) String() string {
	switch m {
	case ModeConstructor:
		return "constructor"
	case ModeCallSite:
		return "callsite"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode is the inverse of Mode.String.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "constructor":
		return ModeConstructor, nil
	case "callsite", "call-site":
		return ModeCallSite, nil
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownMode, s)
}

// Rewrite applies the rewriter of mode to every class declaration in p,
// nested ones included. Class expressions are left alone.
func Rewrite(p *ast.Program, mode Mode) *Report {
	f := &classFinder{mode: mode, report: &Report{Mode: mode}}
	f.V = f
	p.VisitWith(f)
	return f.report
}

type classFinder struct {
	ast.NoopVisitor
	mode   Mode
	report *Report
}

func (f *classFinder) VisitClassDeclaration(n *ast.ClassDeclaration) {
	f.report.Classes++
	rw := newClassRewriter(n.Class, f.report)
	switch f.mode {
	case ModeConstructor:
		rw.rewriteConstructor()
	case ModeCallSite:
		rw.rewriteCallSites()
	}
	n.VisitChildrenWith(f)
}

// Options control how a transformed file is printed.
type Options struct {
	// Indent is the indentation unit of regenerated code. It is detected
	// from the source when empty.
	Indent string
	// Reprint prints the whole file from the tree instead of copying the
	// code the rewrite did not touch.
	Reprint bool
}

// Result is the outcome of transforming one source text.
type Result struct {
	Code    string
	Changed bool
	Report  *Report
}

// Transform parses src, applies the rewriter of mode and prints the result.
// Unchanged input is returned as is.
func Transform(src string, mode Mode, opts Options) (*Result, error) {
	if mode != ModeConstructor && mode != ModeCallSite {
		return nil, fmt.Errorf("%w %v", ErrUnknownMode, mode)
	}
	program, err := parser.ParseFile(src)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	report := Rewrite(program, mode)
	if !report.Changed() && !opts.Reprint {
		return &Result{Code: src, Report: report}, nil
	}

	genOpts := generator.Options{
		ArrowParensAlways: true,
		Indent:            opts.Indent,
	}
	if genOpts.Indent == "" {
		genOpts.Indent = generator.DetectIndent(src)
	}
	if !opts.Reprint {
		genOpts.Source = src
		genOpts.Edits = report.Edits
	}
	code := generator.GenerateWithOptions(program, genOpts)
	return &Result{Code: code, Changed: code != src, Report: report}, nil
}

// TransformConstructorForm applies the constructor rewrite to src.
func TransformConstructorForm(src string, opts Options) (*Result, error) {
	return Transform(src, ModeConstructor, opts)
}

// TransformCallSiteForm applies the call-site rewrite to src.
func TransformCallSiteForm(src string, opts Options) (*Result, error) {
	return Transform(src, ModeCallSite, opts)
}
