package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/t14raptor/autobind/internal/driver"
	"github.com/t14raptor/autobind/internal/verify"
	"github.com/t14raptor/autobind/parser"
)

var (
	pathColor    = color.New(color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	changedColor = color.New(color.FgYellow)
	okColor      = color.New(color.FgGreen)
	caretColor   = color.New(color.FgRed, color.Bold)
	hunkColor    = color.New(color.FgCyan)
	addedColor   = color.New(color.FgGreen)
	removedColor = color.New(color.FgRed)
)

// printer renders driver results for people.
type printer struct {
	out   io.Writer
	err   io.Writer
	quiet bool
	// width bounds source lines quoted under errors; zero means no limit.
	width int
}

func newPrinter(quiet bool) *printer {
	p := &printer{out: os.Stdout, err: os.Stderr, quiet: quiet}
	if isTerminal(os.Stderr) {
		if w, _, err := term.GetSize(int(os.Stderr.Fd())); err == nil {
			p.width = w
		}
	}
	return p
}

func (p *printer) results(results []driver.FileResult, wrote bool) {
	for i := range results {
		p.result(&results[i], wrote)
	}
}

func (p *printer) result(r *driver.FileResult, wrote bool) {
	if r.Err != nil {
		p.failure(r)
		return
	}
	if !r.Changed {
		return
	}
	if r.Diff != "" {
		p.diff(r.Diff)
	}
	if p.quiet {
		return
	}
	verb := "would rewrite"
	if wrote && r.Written {
		verb = "rewrote"
	}
	fmt.Fprintf(p.out, "%s %s %s", changedColor.Sprint(verb), pathColor.Sprint(r.Path),
		fmt.Sprintf("(+%d -%d)", r.Added, r.Removed))
	if len(r.Converted) > 0 {
		fmt.Fprintf(p.out, " %s", strings.Join(r.Converted, ", "))
	}
	fmt.Fprintln(p.out)
}

func (p *printer) diff(d string) {
	for _, line := range strings.SplitAfter(d, "\n") {
		switch {
		case line == "":
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			pathColor.Fprint(p.out, line)
		case strings.HasPrefix(line, "@@"):
			hunkColor.Fprint(p.out, line)
		case strings.HasPrefix(line, "+"):
			addedColor.Fprint(p.out, line)
		case strings.HasPrefix(line, "-"):
			removedColor.Fprint(p.out, line)
		default:
			fmt.Fprint(p.out, line)
		}
	}
}

// failure prints r.Err, quoting the offending source line when the error
// carries a position.
func (p *printer) failure(r *driver.FileResult) {
	if errs := parser.Errors(r.Err); len(errs) > 0 && r.Source != "" {
		for _, e := range errs {
			p.located(r.Path, r.Source, e.Line, e.Column, e.Message)
		}
		return
	}
	var se *verify.SyntaxError
	if errors.As(r.Err, &se) && r.Source != "" {
		p.located(r.Path, r.Source, se.Line, se.Column, "rewritten code does not parse: "+se.Error())
		return
	}
	fmt.Fprintf(p.err, "%s %v\n", errorColor.Sprint("error:"), r.Err)
}

func (p *printer) located(path, src string, line, col int, msg string) {
	fmt.Fprintf(p.err, "%s %s %s\n",
		pathColor.Sprintf("%s:%d:%d:", path, line, col), errorColor.Sprint("error:"), msg)

	text, ok := sourceLine(src, line)
	if !ok {
		return
	}
	prefix := text[:min(max(col-1, 0), len(text))]
	if p.width > 0 && runewidth.StringWidth(text) > p.width {
		text = runewidth.Truncate(text, p.width, "...")
	}
	fmt.Fprintln(p.err, text)
	fmt.Fprintln(p.err, caretPad(prefix)+caretColor.Sprint("^"))
}

// caretPad returns blanks as wide as prefix on screen, keeping tabs so the
// caret lines up under tab-indented code.
func caretPad(prefix string) string {
	var b strings.Builder
	for _, r := range prefix {
		if r == '\t' {
			b.WriteByte('\t')
			continue
		}
		b.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}
	return b.String()
}

func sourceLine(src string, line int) (string, bool) {
	if line < 1 {
		return "", false
	}
	lines := strings.Split(src, "\n")
	if line > len(lines) {
		return "", false
	}
	return strings.TrimRight(lines[line-1], "\r"), true
}

func (p *printer) summary(sum *driver.Summary) {
	parts := []string{fmt.Sprintf("%d files", sum.Files)}
	if sum.Changed > 0 {
		parts = append(parts, changedColor.Sprintf("%d changed", sum.Changed))
	} else {
		parts = append(parts, okColor.Sprint("0 changed"))
	}
	if sum.Written > 0 {
		parts = append(parts, fmt.Sprintf("%d written", sum.Written))
	}
	if sum.Failed > 0 {
		parts = append(parts, errorColor.Sprintf("%d failed", sum.Failed))
	}
	parts = append(parts, fmt.Sprintf("%d methods converted", sum.Converted))
	if sum.Rejections > 0 {
		parts = append(parts, fmt.Sprintf("%d binds left in place", sum.Rejections))
	}
	if sum.Warnings > 0 {
		parts = append(parts, changedColor.Sprintf("%d warnings", sum.Warnings))
	}
	if sum.Cached > 0 {
		parts = append(parts, fmt.Sprintf("%d cached", sum.Cached))
	}
	fmt.Fprintf(p.err, "%s (%s)\n", strings.Join(parts, ", "), sum.Elapsed.Round(time.Millisecond))
}
