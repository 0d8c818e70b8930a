package parser

import (
	"github.com/t14raptor/autobind/ast"
	"github.com/t14raptor/autobind/token"
)

// parseImportDeclaration parses an import declaration and keeps its text.
// The bindings are not modelled since nothing rewrites them.
func (p *parser) parseImportDeclaration() ast.Stmt {
	idx := p.expect(token.Import)
	for p.currentKind() != token.String && p.currentKind() != token.Semicolon && p.currentKind() != token.Eof {
		p.next()
	}
	p.expect(token.String)
	p.parseImportAttributes()

	return &ast.ImportDeclaration{
		Import: idx,
		Raw:    p.str[idx:p.prevEnd],
		End:    p.semicolon(),
	}
}

// parseImportAttributes skips a with { type: "json" } clause.
func (p *parser) parseImportAttributes() {
	if p.token.OnNewLine || p.currentKind() != token.With && !p.is("assert") {
		return
	}
	p.next()
	p.expect(token.LeftBrace)
	for p.currentKind() != token.RightBrace && p.currentKind() != token.Eof {
		p.next()
	}
	p.expect(token.RightBrace)
}

func (p *parser) parseExportDeclaration() ast.Stmt {
	node := &ast.ExportDeclaration{Export: p.expect(token.Export)}

	if p.currentKind() == token.Default {
		node.Default = true
		p.next()

		var decl ast.Stmt
		switch p.currentKind() {
		case token.Function:
			decl = &ast.FunctionDeclaration{Function: p.parseFunction(false, false, p.currentOffset())}
		case token.Class:
			decl = &ast.ClassDeclaration{Class: p.parseClass(false)}
		case token.Async:
			if tok := p.peek(); tok.Kind == token.Function && !tok.OnNewLine {
				start := p.currentOffset()
				p.next()
				decl = &ast.FunctionDeclaration{Function: p.parseFunction(false, true, start)}
			}
		}
		if decl != nil {
			node.Declaration = p.makeStmt(decl)
			node.End = decl.Idx1()
			return node
		}

		node.Expression = p.parseAssignmentExpression()
		node.End = p.semicolon()
		return node
	}

	var decl ast.Stmt
	switch p.currentKind() {
	case token.Function:
		decl = &ast.FunctionDeclaration{Function: p.parseFunction(true, false, p.currentOffset())}
	case token.Class:
		decl = &ast.ClassDeclaration{Class: p.parseClass(true)}
	case token.Var:
		decl = p.parseVariableStatement()
	case token.Const, token.Let:
		decl = p.parseLexicalDeclaration()
	case token.Async:
		start := p.currentOffset()
		p.next()
		decl = &ast.FunctionDeclaration{Function: p.parseFunction(true, true, start)}
	}
	if decl != nil {
		node.Declaration = p.makeStmt(decl)
		node.End = decl.Idx1()
		return node
	}

	// export { a, b as c } [from "m"] or export * [as ns] from "m"
	switch p.currentKind() {
	case token.Multiply:
		p.next()
		if p.is("as") {
			p.next()
			p.next()
		}
		p.parseExportFrom(true)
	case token.LeftBrace:
		for p.currentKind() != token.RightBrace && p.currentKind() != token.Eof {
			p.next()
		}
		p.expect(token.RightBrace)
		p.parseExportFrom(false)
	default:
		p.errorUnexpectedToken(p.currentKind())
		p.next()
	}
	node.Raw = p.str[node.Export:p.prevEnd]
	node.End = p.semicolon()
	return node
}

func (p *parser) parseExportFrom(required bool) {
	if !p.is("from") {
		if required {
			p.errorUnexpectedToken(p.currentKind())
		}
		return
	}
	p.next()
	p.expect(token.String)
	p.parseImportAttributes()
}
