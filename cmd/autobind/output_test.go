package main

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/t14raptor/autobind/internal/driver"
	"github.com/t14raptor/autobind/internal/verify"
	"github.com/t14raptor/autobind/transform/autobind"
)

func testPrinter(t *testing.T) (*printer, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	saved := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = saved })

	var out, errOut bytes.Buffer
	return &printer{out: &out, err: &errOut}, &out, &errOut
}

func TestCaretPad(t *testing.T) {
	tests := []struct {
		prefix string
		want   string
	}{
		{"", ""},
		{"abc", "   "},
		{"\t\tx", "\t\t "},
		{"\u65e5\u672c", "    "},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, caretPad(tt.prefix), "prefix %q", tt.prefix)
	}
}

func TestSourceLine(t *testing.T) {
	src := "a\r\nb\nc"
	line, ok := sourceLine(src, 1)
	assert.True(t, ok)
	assert.Equal(t, "a", line)

	line, ok = sourceLine(src, 3)
	assert.True(t, ok)
	assert.Equal(t, "c", line)

	_, ok = sourceLine(src, 4)
	assert.False(t, ok)
	_, ok = sourceLine(src, 0)
	assert.False(t, ok)
}

func TestPrintParseError(t *testing.T) {
	p, _, errOut := testPrinter(t)

	src := "class A {\n  a( {\n}\n"
	_, err := autobind.Transform(src, autobind.ModeConstructor, autobind.Options{})
	assert.Error(t, err)

	p.result(&driver.FileResult{Path: "x.js", Err: fmt.Errorf("x.js: %w", err), Source: src}, false)
	got := errOut.String()
	assert.Contains(t, got, "x.js:")
	assert.Contains(t, got, "error:")
	assert.Contains(t, got, "^\n")
}

func TestPrintVerifyError(t *testing.T) {
	p, _, errOut := testPrinter(t)

	err := fmt.Errorf("x.js: %w", &verify.SyntaxError{Line: 2, Column: 5})
	p.result(&driver.FileResult{Path: "x.js", Err: err, Source: "ok;\nlet = ;\n"}, false)
	assert.Equal(t,
		"x.js:2:5: error: rewritten code does not parse: 2:5: unexpected input\nlet = ;\n    ^\n",
		errOut.String())
}

func TestPrintChanged(t *testing.T) {
	p, out, _ := testPrinter(t)

	p.result(&driver.FileResult{Path: "a.js", Changed: true, Added: 3, Removed: 4, Converted: []string{"a", "b"}}, false)
	p.result(&driver.FileResult{Path: "b.js", Changed: true, Written: true, Added: 1, Removed: 1}, true)
	p.result(&driver.FileResult{Path: "c.js"}, true)

	assert.Equal(t, "would rewrite a.js (+3 -4) a, b\nrewrote b.js (+1 -1)\n", out.String())
}

func TestPrintQuiet(t *testing.T) {
	p, out, _ := testPrinter(t)
	p.quiet = true

	p.result(&driver.FileResult{Path: "a.js", Changed: true, Diff: "--- a/a.js\n+++ b/a.js\n"}, false)
	assert.Equal(t, "--- a/a.js\n+++ b/a.js\n", out.String())
}

func TestPrintSummary(t *testing.T) {
	p, _, errOut := testPrinter(t)

	p.summary(&driver.Summary{Files: 3, Changed: 1, Failed: 1, Converted: 2, Cached: 1})
	assert.Equal(t, "3 files, 1 changed, 1 failed, 2 methods converted, 1 cached (0s)\n", errOut.String())
}
