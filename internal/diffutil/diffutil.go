// Package diffutil renders the difference between a file and its rewrite as
// a unified diff. Line matching is difflib's; go-diff prints the result.
package diffutil

import (
	"bytes"
	"fmt"
	"strings"

	"fortio.org/safecast"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/sourcegraph/go-diff/diff"
)

// Context is the number of unchanged lines shown around each change.
const Context = 3

const noNewline = "\\ No newline at end of file\n"

// Unified returns the unified diff that turns before into after, with name
// as both file names. It returns "" when the texts are equal.
func Unified(name, before, after string) (string, error) {
	if before == after {
		return "", nil
	}
	a, b := splitLines(before), splitLines(after)
	fd := &diff.FileDiff{
		OrigName: "a/" + name,
		NewName:  "b/" + name,
	}
	for _, group := range difflib.NewMatcher(a, b).GetGroupedOpCodes(Context) {
		h, err := hunk(group, a, b)
		if err != nil {
			return "", fmt.Errorf("diff %s: %w", name, err)
		}
		fd.Hunks = append(fd.Hunks, h)
	}
	out, err := diff.PrintFileDiff(fd)
	if err != nil {
		return "", fmt.Errorf("diff %s: %w", name, err)
	}
	return string(out), nil
}

// Stat counts the lines added and removed between before and after.
func Stat(before, after string) (added, removed int) {
	if before == after {
		return 0, 0
	}
	for _, c := range difflib.NewMatcher(splitLines(before), splitLines(after)).GetOpCodes() {
		if c.Tag == 'r' || c.Tag == 'd' {
			removed += c.I2 - c.I1
		}
		if c.Tag == 'r' || c.Tag == 'i' {
			added += c.J2 - c.J1
		}
	}
	return added, removed
}

// splitLines splits s after each newline. The last line lacks one when s
// does not end in a newline.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.SplitAfter(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// hunk renders one group of opcodes. Replaced lines are printed as
// deletions followed by insertions.
func hunk(group []difflib.OpCode, a, b []string) (*diff.Hunk, error) {
	var body bytes.Buffer
	write := func(prefix byte, lines []string) {
		for _, l := range lines {
			body.WriteByte(prefix)
			body.WriteString(l)
			if !strings.HasSuffix(l, "\n") {
				body.WriteString("\n" + noNewline)
			}
		}
	}
	for _, c := range group {
		switch c.Tag {
		case 'e':
			write(' ', a[c.I1:c.I2])
		case 'd':
			write('-', a[c.I1:c.I2])
		case 'i':
			write('+', b[c.J1:c.J2])
		case 'r':
			write('-', a[c.I1:c.I2])
			write('+', b[c.J1:c.J2])
		}
	}

	first, last := group[0], group[len(group)-1]
	origStart, origLines := first.I1, last.I2-first.I1
	newStart, newLines := first.J1, last.J2-first.J1
	if origLines > 0 {
		origStart++
	}
	if newLines > 0 {
		newStart++
	}

	h := &diff.Hunk{Body: body.Bytes()}
	var err error
	if h.OrigStartLine, err = safecast.Conv[int32](origStart); err != nil {
		return nil, err
	}
	if h.OrigLines, err = safecast.Conv[int32](origLines); err != nil {
		return nil, err
	}
	if h.NewStartLine, err = safecast.Conv[int32](newStart); err != nil {
		return nil, err
	}
	if h.NewLines, err = safecast.Conv[int32](newLines); err != nil {
		return nil, err
	}
	return h, nil
}
