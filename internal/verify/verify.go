// Package verify checks rewritten code with an independent JavaScript
// grammar before it is written back.
package verify

import (
	"context"
	"errors"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
)

var ErrInvalidSyntax = errors.New("invalid syntax")

// SyntaxError locates the first node tree-sitter could not parse. Line and
// Column are 1-based; Column counts bytes.
type SyntaxError struct {
	Line   int
	Column int
	// Missing is set when the parser had to invent a token.
	Missing bool
	Kind    string
}

func (e *SyntaxError) Error() string {
	if e.Missing {
		return fmt.Sprintf("%d:%d: missing %s", e.Line, e.Column, e.Kind)
	}
	return fmt.Sprintf("%d:%d: unexpected input", e.Line, e.Column)
}

func (e *SyntaxError) Unwrap() error { return ErrInvalidSyntax }

// Check parses src as JavaScript with JSX and returns a *SyntaxError for
// the first ERROR or MISSING node.
func Check(ctx context.Context, src []byte) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("verify canceled before start: %w", err)
	}

	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(javascript.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return fmt.Errorf("tree-sitter parse failed: %w", err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if !root.HasError() {
		return nil
	}
	if bad := firstError(root); bad != nil {
		p := bad.StartPoint()
		return &SyntaxError{
			Line:    int(p.Row) + 1,
			Column:  int(p.Column) + 1,
			Missing: bad.IsMissing(),
			Kind:    bad.Type(),
		}
	}
	return &SyntaxError{Line: 1, Column: 1}
}

// firstError returns the first ERROR or MISSING node in document order.
func firstError(root *sitter.Node) *sitter.Node {
	stack := []*sitter.Node{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n.IsMissing() || n.Type() == "ERROR" {
			return n
		}
		if !n.HasError() {
			continue
		}
		for i := int(n.ChildCount()) - 1; i >= 0; i-- {
			if child := n.Child(i); child != nil {
				stack = append(stack, child)
			}
		}
	}
	return nil
}
