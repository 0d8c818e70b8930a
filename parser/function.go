package parser

import (
	"github.com/t14raptor/autobind/ast"
	"github.com/t14raptor/autobind/token"
)

// parseFunction parses a function declaration or expression. start is the
// offset of the function keyword, or of async for an async function.
func (p *parser) parseFunction(declaration, async bool, start ast.Idx) *ast.FunctionLiteral {
	node := &ast.FunctionLiteral{
		Function: start,
		Async:    async,
	}
	p.expect(token.Function)

	if p.currentKind() == token.Multiply {
		node.Generator = true
		p.next()
	}

	if p.currentKind() != token.LeftParenthesis {
		node.Name = p.parseIdentifier()
	} else if declaration {
		p.errorf("Function statements require a function name")
	}

	p.openFunctionScope(async, node.Generator)
	node.ParameterList = p.parseFunctionParameterList()
	p.closeScope()

	node.Body = p.parseFunctionBlock(async, node.Generator)
	return node
}

func (p *parser) parseFunctionParameterList() ast.ParameterList {
	opening := p.expect(token.LeftParenthesis)
	var list ast.VariableDeclarators
	var rest *ast.Expression
	for p.currentKind() != token.RightParenthesis && p.currentKind() != token.Eof {
		if p.currentKind() == token.Ellipsis {
			p.next()
			rest = p.parseBindingTarget()
			if p.currentKind() != token.RightParenthesis {
				p.errorf("Rest parameter must be last formal parameter")
			}
			break
		}
		decl := ast.VariableDeclarator{Target: p.parseBindingTarget()}
		if p.currentKind() == token.Assign {
			p.next()
			decl.Initializer = p.parseAssignmentExpression()
		}
		list = append(list, decl)
		if p.currentKind() != token.RightParenthesis {
			p.expect(token.Comma)
		}
	}
	closing := p.expect(token.RightParenthesis)
	return ast.ParameterList{
		Opening: opening,
		List:    list,
		Rest:    rest,
		Closing: closing,
	}
}

func (p *parser) parseFunctionBlock(async, generator bool) *ast.BlockStatement {
	p.openFunctionScope(async, generator)
	defer p.closeScope()
	return p.parseBlockStatement()
}
