package parser

import (
	"github.com/t14raptor/autobind/ast"
	"github.com/t14raptor/autobind/token"
)

// parseClass parses a class declaration or expression. Only declarations
// require a name.
func (p *parser) parseClass(declaration bool) *ast.ClassLiteral {
	node := &ast.ClassLiteral{Class: p.expect(token.Class)}

	if token.ID(p.currentKind()) {
		node.Name = p.parseIdentifier()
	} else if declaration {
		p.errorf("A class declaration requires a name")
	}

	if p.currentKind() == token.Extends {
		p.next()
		node.SuperClass = p.parseLeftHandSideExpressionAllowCall()
	}

	p.expect(token.LeftBrace)

	p.openScope()
	p.scope.inClass = true
	defer p.closeScope()

	hasConstructor := false
	for p.currentKind() != token.RightBrace && p.currentKind() != token.Eof {
		if p.currentKind() == token.Semicolon {
			p.next()
			continue
		}

		start := p.currentOffset()
		leading := p.takeLeading()
		el := p.parseClassElement()
		comments := ast.Comments{
			Leading:  leading,
			Trailing: p.takeTrailing(el.Idx1()),
		}
		switch el := el.(type) {
		case *ast.MethodDefinition:
			el.Comments = comments
			if el.Kind == ast.PropertyKindConstructor {
				if hasConstructor {
					p.errorAt(el.Idx, "A class may only have one constructor")
				}
				hasConstructor = true
			}
		case *ast.FieldDefinition:
			el.Comments = comments
		case *ast.ClassStaticBlock:
			el.Comments = comments
		}
		node.Body = append(node.Body, ast.ClassElement{Element: el})

		if p.currentOffset() == start {
			p.next()
		}
	}

	node.Dangling = p.takeLeading()
	node.RightBrace = p.expect(token.RightBrace)
	return node
}

func (p *parser) parseClassElement() ast.Element {
	start := p.currentOffset()

	static := false
	if p.currentKind() == token.Static {
		switch next := p.peek(); next.Kind {
		case token.LeftBrace:
			p.next()
			return p.parseClassStaticBlock(start)
		case token.LeftParenthesis, token.Assign, token.Semicolon, token.RightBrace:
			// A member named static.
		default:
			static = true
			p.next()
		}
	}

	kind := ast.PropertyKindMethod
	var async, generator bool
	if p.is("get") || p.is("set") || p.currentKind() == token.Async {
		next := p.peek()
		if isPropertyKeyStart(next.Kind) && !(p.currentKind() == token.Async && next.OnNewLine) {
			switch {
			case p.is("get"):
				kind = ast.PropertyKindGet
			case p.is("set"):
				kind = ast.PropertyKindSet
			default:
				async = true
			}
			p.next()
		}
	}
	if p.currentKind() == token.Multiply && kind == ast.PropertyKindMethod {
		generator = true
		p.next()
	}

	keyTok := p.currentKind()
	key, name, computed := p.parsePropertyKey()
	named := !computed && (keyTok == token.String || token.IdentifierName(keyTok))

	if p.currentKind() == token.LeftParenthesis {
		if !static && named && name == "constructor" {
			switch {
			case kind != ast.PropertyKindMethod:
				p.errorAt(key.Idx0(), "Class constructor may not be an accessor")
			case async:
				p.errorAt(key.Idx0(), "Class constructor may not be an async method")
			case generator:
				p.errorAt(key.Idx0(), "Class constructor may not be a generator")
			}
			kind = ast.PropertyKindConstructor
		}
		return &ast.MethodDefinition{
			Idx:      start,
			Key:      key,
			Kind:     kind,
			Body:     p.parseMethodDefinition(kind, generator, async),
			Computed: computed,
			Static:   static,
		}
	}

	if kind != ast.PropertyKindMethod || async || generator {
		p.errorUnexpectedToken(p.currentKind())
	}
	if named && name == "constructor" {
		p.errorAt(key.Idx0(), "Classes may not have a field named 'constructor'")
	}

	node := &ast.FieldDefinition{
		Idx:      start,
		Key:      key,
		Computed: computed,
		Static:   static,
	}
	if p.currentKind() == token.Assign {
		p.next()
		p.openFunctionScope(false, false)
		node.Initializer = p.parseAssignmentExpression()
		p.closeScope()
	}

	switch {
	case p.currentKind() == token.Semicolon:
		node.End = p.token.Idx1
		p.next()
	case p.canInsertSemicolon():
		node.End = p.prevEnd
	default:
		p.errorUnexpectedToken(p.currentKind())
		node.End = p.prevEnd
	}
	return node
}

func (p *parser) parseClassStaticBlock(start ast.Idx) *ast.ClassStaticBlock {
	p.openScope()
	defer p.closeScope()
	return &ast.ClassStaticBlock{
		Static: start,
		Block:  p.parseBlockStatement(),
	}
}
