package parser

import (
	"github.com/t14raptor/autobind/ast"
	"github.com/t14raptor/autobind/parser/scanner"
	"github.com/t14raptor/autobind/token"
)

type parser struct {
	str   string
	token scanner.Token

	scanner *scanner.Scanner

	scope *scope

	errors     error
	errorCount int

	// Comments scanned before the current token that are not attached to
	// a node yet.
	pending []ast.Comment
	// End of the previously consumed token.
	prevEnd ast.Idx
}

func newParser(src string) *parser {
	return &parser{
		str:     src,
		scanner: scanner.New(src),
	}
}

// ParseFile parses the source code of a single JavaScript module, JSX
// included, and returns the corresponding ast.Program node. The error, if
// any, joins every *Error found.
func ParseFile(src string) (*ast.Program, error) {
	return newParser(src).parse()
}

func (p *parser) parse() (*ast.Program, error) {
	p.openScope()
	p.scope.allowAwait = true
	p.next()
	program := p.parseProgram()
	p.closeScope()

	for _, err := range p.scanner.Errors() {
		p.errorAt(err.Start, err.Message)
	}
	return program, p.errors
}

func (p *parser) next() {
	p.prevEnd = p.token.Idx1
	p.scanner.Next()
	p.sync()
}

// nextJSXInside advances in the tag context of a JSX element.
func (p *parser) nextJSXInside() {
	p.prevEnd = p.token.Idx1
	p.scanner.NextInsideJSXElement()
	p.sync()
}

// nextJSXChild advances in the children context of a JSX element.
func (p *parser) nextJSXChild() {
	p.prevEnd = p.token.Idx1
	p.scanner.NextJSXElementChild()
	p.sync()
}

func (p *parser) sync() {
	p.token = p.scanner.Token
	if c := p.scanner.TakeComments(); len(c) > 0 {
		p.pending = append(p.pending, c...)
	}
}

type parserState struct {
	c scanner.Checkpoint

	tok        scanner.Token
	prevEnd    ast.Idx
	pending    int
	errors     error
	errorCount int
}

func (p *parser) mark() parserState {
	return parserState{
		c:          p.scanner.Checkpoint(),
		tok:        p.token,
		prevEnd:    p.prevEnd,
		pending:    len(p.pending),
		errors:     p.errors,
		errorCount: p.errorCount,
	}
}

func (p *parser) restore(state parserState) {
	p.scanner.Rewind(state.c)
	p.token = state.tok
	p.prevEnd = state.prevEnd
	p.pending = p.pending[:state.pending]
	p.errors = state.errors
	p.errorCount = state.errorCount
}

func (p *parser) peek() scanner.Token {
	st := p.mark()
	p.next()
	tok := p.token
	p.restore(st)
	return tok
}

func (p *parser) currentString() string {
	return p.token.String(p.scanner)
}

func (p *parser) currentKind() token.Token {
	return p.token.Kind
}

func (p *parser) currentOffset() ast.Idx {
	return p.token.Idx0
}

// is reports whether the current token is the contextual word name, such
// as "of", "get" or "from", written without escapes.
func (p *parser) is(name string) bool {
	return p.token.Kind == token.Identifier && !p.token.HasEscape && p.currentString() == name
}

func (p *parser) canInsertSemicolon() bool {
	kind := p.currentKind()
	return kind == token.Semicolon || kind == token.RightBrace || kind == token.Eof || p.token.OnNewLine
}

// semicolon consumes an explicit or automatically inserted semicolon and
// returns the end of the statement it terminates.
func (p *parser) semicolon() ast.Idx {
	if p.currentKind() == token.Semicolon {
		end := p.token.Idx1
		p.next()
		return end
	}
	if !p.canInsertSemicolon() {
		p.errorUnexpectedToken(p.currentKind())
	}
	return p.prevEnd
}

func (p *parser) expect(value token.Token) ast.Idx {
	idx := p.currentOffset()
	if p.token.Kind != value {
		p.errorUnexpectedToken(p.token.Kind)
	}
	p.next()
	return idx
}

// takeLeading removes and returns the pending comments written before the
// current token.
func (p *parser) takeLeading() []ast.Comment {
	n := 0
	for n < len(p.pending) && p.pending[n].Start < p.token.Idx0 {
		n++
	}
	if n == 0 {
		return nil
	}
	out := append([]ast.Comment(nil), p.pending[:n]...)
	p.pending = p.pending[n:]
	return out
}

// takeTrailing drops the pending comments written inside a node ending at
// end and returns the ones that follow it on the same line.
func (p *parser) takeTrailing(end ast.Idx) []ast.Comment {
	for len(p.pending) > 0 && p.pending[0].Start < end {
		p.pending = p.pending[1:]
	}
	var out []ast.Comment
	for len(p.pending) > 0 && !p.pending[0].NewlineBefore && p.pending[0].Start < p.token.Idx0 {
		out = append(out, p.pending[0])
		p.pending = p.pending[1:]
	}
	return out
}

func (p *parser) makeExpr(expr ast.Expr) *ast.Expression {
	if expr == nil {
		return nil
	}
	return &ast.Expression{Expr: expr}
}

func (p *parser) makeStmt(stmt ast.Stmt) *ast.Statement {
	return &ast.Statement{Stmt: stmt}
}
