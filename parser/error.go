package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/t14raptor/autobind/ast"
	"github.com/t14raptor/autobind/token"
)

const (
	errUnexpectedToken      = "Unexpected token %v"
	errUnexpectedEndOfInput = "Unexpected end of input"

	maxErrors = 10
)

// Error is a positioned syntax error. Line and Column are 1-based; Column
// counts bytes.
type Error struct {
	Offset  ast.Idx
	Line    int
	Column  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Message)
}

// Errors flattens an error returned by ParseFile into its positioned parts.
func Errors(err error) []*Error {
	var out []*Error
	var walk func(error)
	walk = func(err error) {
		if err == nil {
			return
		}
		if e, ok := err.(*Error); ok {
			out = append(out, e)
			return
		}
		switch u := err.(type) {
		case interface{ Unwrap() []error }:
			for _, e := range u.Unwrap() {
				walk(e)
			}
		case interface{ Unwrap() error }:
			walk(u.Unwrap())
		}
	}
	walk(err)
	return out
}

func (p *parser) errorf(msg string, msgValues ...any) error {
	return p.errorAt(p.currentOffset(), fmt.Sprintf(msg, msgValues...))
}

func (p *parser) errorAt(offset ast.Idx, msg string) error {
	p.errorCount++
	if p.errorCount > maxErrors {
		return nil
	}
	line, col := Position(p.str, offset)
	err := &Error{Offset: offset, Line: line, Column: col, Message: msg}
	p.errors = errors.Join(p.errors, err)
	return err
}

func (p *parser) errorUnexpectedToken(tkn token.Token) error {
	switch tkn {
	case token.Eof:
		return p.errorf(errUnexpectedEndOfInput)
	case token.Identifier:
		return p.errorf("Unexpected identifier")
	case token.Keyword:
		return p.errorf("Unexpected reserved word")
	case token.EscapedReservedWord:
		return p.errorf("Keyword must not contain escaped characters")
	case token.Number:
		return p.errorf("Unexpected number")
	case token.String:
		return p.errorf("Unexpected string")
	case token.Illegal:
		// Already reported by the scanner.
		return nil
	}
	return p.errorf(errUnexpectedToken, tkn.String())
}

// Position converts a byte offset into a 1-based line and byte column.
func Position(src string, offset ast.Idx) (line, col int) {
	if int(offset) > len(src) {
		offset = ast.Idx(len(src))
	}
	before := src[:offset]
	line = strings.Count(before, "\n") + 1
	col = int(offset) - (strings.LastIndexByte(before, '\n') + 1) + 1
	return line, col
}
