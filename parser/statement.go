package parser

import (
	"github.com/t14raptor/autobind/ast"
	"github.com/t14raptor/autobind/token"
)

func (p *parser) parseProgram() *ast.Program {
	program := &ast.Program{}
	program.Body = p.parseStatementList(true)
	program.Dangling = p.pending
	p.pending = nil
	program.End = p.scanner.Len()
	return program
}

// parseStatementList parses statements up to the closing brace, the end of
// the input or, inside a switch, the next case clause.
func (p *parser) parseStatementList(topLevel bool) (list ast.Statements) {
	for {
		switch p.currentKind() {
		case token.Eof, token.RightBrace:
			return list
		case token.Case, token.Default:
			if !topLevel {
				return list
			}
		}
		start := p.currentOffset()
		list = append(list, p.parseStatementListItem(topLevel))
		if p.currentOffset() == start {
			// No progress, skip the offending token.
			p.next()
		}
	}
}

// parseStatementListItem parses a statement or a declaration together with
// the comments around it.
func (p *parser) parseStatementListItem(topLevel bool) ast.Statement {
	leading := p.takeLeading()

	var stmt ast.Stmt
	switch p.currentKind() {
	case token.Function:
		stmt = &ast.FunctionDeclaration{Function: p.parseFunction(true, false, p.currentOffset())}
	case token.Class:
		stmt = &ast.ClassDeclaration{Class: p.parseClass(true)}
	case token.Const:
		stmt = p.parseLexicalDeclaration()
	case token.Let:
		switch tok := p.peek(); tok.Kind {
		case token.LeftBracket, token.LeftBrace:
			stmt = p.parseLexicalDeclaration()
		default:
			if token.ID(tok.Kind) {
				stmt = p.parseLexicalDeclaration()
			}
		}
	case token.Async:
		if tok := p.peek(); tok.Kind == token.Function && !tok.OnNewLine {
			start := p.currentOffset()
			p.next()
			stmt = &ast.FunctionDeclaration{Function: p.parseFunction(true, true, start)}
		}
	case token.Import:
		if topLevel {
			if tok := p.peek(); tok.Kind != token.LeftParenthesis && tok.Kind != token.Period {
				stmt = p.parseImportDeclaration()
			}
		}
	case token.Export:
		if topLevel {
			stmt = p.parseExportDeclaration()
		}
	}
	if stmt == nil {
		stmt = p.parseStatement()
	}

	return ast.Statement{
		Stmt: stmt,
		Comments: ast.Comments{
			Leading:  leading,
			Trailing: p.takeTrailing(stmt.Idx1()),
		},
	}
}

// parseSubStatement parses the statement in a single statement position,
// such as the body of a loop.
func (p *parser) parseSubStatement() *ast.Statement {
	leading := p.takeLeading()
	stmt := p.parseStatement()
	return &ast.Statement{
		Stmt: stmt,
		Comments: ast.Comments{
			Leading:  leading,
			Trailing: p.takeTrailing(stmt.Idx1()),
		},
	}
}

func (p *parser) parseStatement() ast.Stmt {
	switch p.currentKind() {
	case token.Semicolon:
		return p.parseEmptyStatement()
	case token.LeftBrace:
		return p.parseBlockStatement()
	case token.If:
		return p.parseIfStatement()
	case token.Do:
		return p.parseDoWhileStatement()
	case token.While:
		return p.parseWhileStatement()
	case token.For:
		return p.parseForOrForInStatement()
	case token.Break:
		return p.parseBreakStatement()
	case token.Continue:
		return p.parseContinueStatement()
	case token.Debugger:
		return p.parseDebuggerStatement()
	case token.With:
		return p.parseWithStatement()
	case token.Var:
		return p.parseVariableStatement()
	case token.Switch:
		return p.parseSwitchStatement()
	case token.Return:
		return p.parseReturnStatement()
	case token.Throw:
		return p.parseThrowStatement()
	case token.Try:
		return p.parseTryStatement()
	case token.Function:
		return &ast.FunctionDeclaration{Function: p.parseFunction(true, false, p.currentOffset())}
	case token.Class:
		return &ast.ClassDeclaration{Class: p.parseClass(true)}
	case token.Eof, token.RightBrace:
		p.errorUnexpectedToken(p.currentKind())
		return &ast.BadStatement{From: p.currentOffset(), To: p.currentOffset()}
	}

	if token.ID(p.currentKind()) {
		if tok := p.peek(); tok.Kind == token.Colon {
			label := p.parseIdentifier()
			colon := p.expect(token.Colon)
			return &ast.LabelledStatement{
				Label:     label,
				Colon:     colon,
				Statement: p.parseSubStatement(),
			}
		}
	}

	expr := p.parseExpression()
	return &ast.ExpressionStatement{
		Expression: expr,
		End:        p.semicolon(),
	}
}

func (p *parser) parseEmptyStatement() ast.Stmt {
	idx := p.expect(token.Semicolon)
	return &ast.EmptyStatement{Semicolon: idx}
}

func (p *parser) parseBlockStatement() *ast.BlockStatement {
	node := &ast.BlockStatement{}
	node.LeftBrace = p.expect(token.LeftBrace)
	node.List = p.parseStatementList(false)
	node.Dangling = p.takeLeading()
	node.RightBrace = p.expect(token.RightBrace)
	return node
}

func (p *parser) parseIfStatement() ast.Stmt {
	node := &ast.IfStatement{
		If: p.expect(token.If),
	}
	p.expect(token.LeftParenthesis)
	node.Test = p.parseExpression()
	p.expect(token.RightParenthesis)

	node.Consequent = p.parseSubStatement()
	if p.currentKind() == token.Else {
		p.next()
		node.Alternate = p.parseSubStatement()
	}
	return node
}

func (p *parser) parseDoWhileStatement() ast.Stmt {
	node := &ast.DoWhileStatement{
		Do: p.expect(token.Do),
	}
	node.Body = p.parseSubStatement()
	p.expect(token.While)
	p.expect(token.LeftParenthesis)
	node.Test = p.parseExpression()
	p.expect(token.RightParenthesis)
	node.End = p.prevEnd
	if p.currentKind() == token.Semicolon {
		node.End = p.token.Idx1
		p.next()
	}
	return node
}

func (p *parser) parseWhileStatement() ast.Stmt {
	node := &ast.WhileStatement{
		While: p.expect(token.While),
	}
	p.expect(token.LeftParenthesis)
	node.Test = p.parseExpression()
	p.expect(token.RightParenthesis)
	node.Body = p.parseSubStatement()
	return node
}

func (p *parser) parseWithStatement() ast.Stmt {
	node := &ast.WithStatement{
		With: p.expect(token.With),
	}
	p.expect(token.LeftParenthesis)
	node.Object = p.parseExpression()
	p.expect(token.RightParenthesis)
	node.Body = p.parseSubStatement()
	return node
}

func (p *parser) parseForOrForInStatement() ast.Stmt {
	idx := p.expect(token.For)
	await := false
	if p.currentKind() == token.Await {
		await = true
		p.next()
	}
	p.expect(token.LeftParenthesis)

	var initializer *ast.ForLoopInitializer
	if p.currentKind() != token.Semicolon {
		allowIn := p.scope.allowIn
		p.scope.allowIn = false

		var into ast.Into
		switch tok := p.currentKind(); {
		case tok == token.Var || tok == token.Const ||
			tok == token.Let && p.isLexicalStart(p.peek().Kind):
			start := p.currentOffset()
			p.next()
			list := p.parseVariableDeclarationList()
			decl := &ast.VariableDeclaration{
				Idx:   start,
				Token: tok,
				List:  list,
				End:   p.prevEnd,
			}
			if len(list) == 1 && (p.currentKind() == token.In || p.is("of")) {
				into = decl
			} else {
				initializer = &ast.ForLoopInitializer{Initializer: decl}
			}
		default:
			expr := p.parseExpression()
			if p.currentKind() == token.In || p.is("of") {
				into = expr
			} else {
				initializer = &ast.ForLoopInitializer{Initializer: expr}
			}
		}
		p.scope.allowIn = allowIn

		if into != nil {
			if p.currentKind() == token.In {
				p.next()
				source := p.parseExpression()
				p.expect(token.RightParenthesis)
				return &ast.ForInStatement{
					For:    idx,
					Into:   &ast.ForInto{Into: into},
					Source: source,
					Body:   p.parseSubStatement(),
				}
			}
			p.next()
			source := p.parseAssignmentExpression()
			p.expect(token.RightParenthesis)
			return &ast.ForOfStatement{
				For:    idx,
				Await:  await,
				Into:   &ast.ForInto{Into: into},
				Source: source,
				Body:   p.parseSubStatement(),
			}
		}
	}

	node := &ast.ForStatement{
		For:         idx,
		Initializer: initializer,
	}
	p.expect(token.Semicolon)
	if p.currentKind() != token.Semicolon {
		node.Test = p.parseExpression()
	}
	p.expect(token.Semicolon)
	if p.currentKind() != token.RightParenthesis {
		node.Update = p.parseExpression()
	}
	p.expect(token.RightParenthesis)
	node.Body = p.parseSubStatement()
	return node
}

func (p *parser) isLexicalStart(next token.Token) bool {
	return next == token.LeftBracket || next == token.LeftBrace || token.ID(next)
}

func (p *parser) parseVariableStatement() ast.Stmt {
	idx := p.expect(token.Var)
	list := p.parseVariableDeclarationList()
	return &ast.VariableDeclaration{
		Idx:   idx,
		Token: token.Var,
		List:  list,
		End:   p.semicolon(),
	}
}

func (p *parser) parseLexicalDeclaration() *ast.VariableDeclaration {
	idx := p.currentOffset()
	tok := p.currentKind()
	p.next()
	list := p.parseVariableDeclarationList()
	if tok == token.Const {
		for _, d := range list {
			if d.Initializer == nil {
				p.errorAt(d.Idx0(), "Missing initializer in const declaration")
			}
		}
	}
	return &ast.VariableDeclaration{
		Idx:   idx,
		Token: tok,
		List:  list,
		End:   p.semicolon(),
	}
}

func (p *parser) parseVariableDeclarationList() (list ast.VariableDeclarators) {
	for {
		decl := ast.VariableDeclarator{Target: p.parseBindingTarget()}
		if p.currentKind() == token.Assign {
			p.next()
			decl.Initializer = p.parseAssignmentExpression()
		}
		list = append(list, decl)
		if p.currentKind() != token.Comma {
			return list
		}
		p.next()
	}
}

func (p *parser) parseBreakStatement() ast.Stmt {
	node := &ast.BreakStatement{Idx: p.expect(token.Break)}
	if token.ID(p.currentKind()) && !p.token.OnNewLine {
		node.Label = p.parseIdentifier()
	}
	node.End = p.semicolon()
	return node
}

func (p *parser) parseContinueStatement() ast.Stmt {
	node := &ast.ContinueStatement{Idx: p.expect(token.Continue)}
	if token.ID(p.currentKind()) && !p.token.OnNewLine {
		node.Label = p.parseIdentifier()
	}
	node.End = p.semicolon()
	return node
}

func (p *parser) parseDebuggerStatement() ast.Stmt {
	idx := p.expect(token.Debugger)
	return &ast.DebuggerStatement{Debugger: idx, End: p.semicolon()}
}

func (p *parser) parseReturnStatement() ast.Stmt {
	idx := p.expect(token.Return)
	if !p.scope.inFunction {
		p.errorAt(idx, "Illegal return statement")
	}
	node := &ast.ReturnStatement{Return: idx}
	if !p.canInsertSemicolon() {
		node.Argument = p.parseExpression()
	}
	node.End = p.semicolon()
	return node
}

func (p *parser) parseThrowStatement() ast.Stmt {
	idx := p.expect(token.Throw)
	if p.token.OnNewLine {
		p.errorf("Illegal newline after throw")
	}
	node := &ast.ThrowStatement{
		Throw:    idx,
		Argument: p.parseExpression(),
	}
	node.End = p.semicolon()
	return node
}

func (p *parser) parseSwitchStatement() ast.Stmt {
	node := &ast.SwitchStatement{
		Switch:  p.expect(token.Switch),
		Default: -1,
	}
	p.expect(token.LeftParenthesis)
	node.Discriminant = p.parseExpression()
	p.expect(token.RightParenthesis)
	p.expect(token.LeftBrace)

	for index := 0; p.currentKind() != token.RightBrace && p.currentKind() != token.Eof; index++ {
		clause := p.parseCaseStatement()
		if clause.Test == nil {
			if node.Default != -1 {
				p.errorAt(clause.Case, "Already saw a default in switch")
			}
			node.Default = index
		}
		node.Body = append(node.Body, clause)
	}

	// Comments after the last clause are dropped.
	p.takeLeading()
	node.RightBrace = p.expect(token.RightBrace)
	return node
}

func (p *parser) parseCaseStatement() ast.CaseStatement {
	p.takeLeading()
	node := ast.CaseStatement{Case: p.currentOffset()}
	if p.currentKind() == token.Default {
		p.next()
	} else {
		p.expect(token.Case)
		node.Test = p.parseExpression()
	}
	node.Colon = p.expect(token.Colon)

	for {
		switch p.currentKind() {
		case token.Eof, token.RightBrace, token.Case, token.Default:
			return node
		}
		start := p.currentOffset()
		node.Consequent = append(node.Consequent, p.parseStatementListItem(false))
		if p.currentOffset() == start {
			p.next()
		}
	}
}

func (p *parser) parseTryStatement() ast.Stmt {
	node := &ast.TryStatement{
		Try:  p.expect(token.Try),
		Body: p.parseBlockStatement(),
	}

	if p.currentKind() == token.Catch {
		catch := &ast.CatchStatement{Catch: p.currentOffset()}
		p.next()
		if p.currentKind() == token.LeftParenthesis {
			p.next()
			catch.Parameter = p.parseBindingTarget()
			p.expect(token.RightParenthesis)
		}
		catch.Body = p.parseBlockStatement()
		node.Catch = catch
	}

	if p.currentKind() == token.Finally {
		p.next()
		node.Finally = p.parseBlockStatement()
	}

	if node.Catch == nil && node.Finally == nil {
		p.errorf("Missing catch or finally after try")
	}
	return node
}
