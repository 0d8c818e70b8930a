package parser

import (
	"github.com/t14raptor/autobind/ast"
	"github.com/t14raptor/autobind/token"
)

// parseJSXElement parses a JSX element or fragment in expression position.
// The current token is the opening <.
func (p *parser) parseJSXElement() *ast.JSXElement {
	start := p.currentOffset()
	p.nextJSXInside()
	node := p.parseJSXElementAt(start)
	p.next()
	return node
}

// parseJSXElementAt parses the rest of an element whose < at start was
// consumed. It returns with the final > as the current token.
func (p *parser) parseJSXElementAt(start ast.Idx) *ast.JSXElement {
	node := &ast.JSXElement{Start: start}

	if p.currentKind() != token.Greater {
		node.Name = p.parseJSXName()
		node.Attributes = p.parseJSXAttributes()
	}

	if p.currentKind() == token.Slash {
		p.nextJSXInside()
		if p.currentKind() != token.Greater {
			p.errorUnexpectedToken(p.currentKind())
		}
		node.SelfClosing = true
		node.End = p.token.Idx1
		return node
	}
	if p.currentKind() != token.Greater {
		p.errorUnexpectedToken(p.currentKind())
		node.End = p.token.Idx0
		return node
	}

	for {
		p.nextJSXChild()
		switch p.currentKind() {
		case token.JSXText:
			node.Children = append(node.Children, *p.makeExpr(&ast.JSXText{
				Idx: p.currentOffset(),
				Raw: p.token.Raw(p.scanner),
			}))
		case token.LeftBrace:
			node.Children = append(node.Children, *p.makeExpr(p.parseJSXExpressionContainer()))
		case token.Less:
			childStart := p.currentOffset()
			p.nextJSXInside()
			if p.currentKind() == token.Slash {
				p.parseJSXClosingElement(node)
				return node
			}
			node.Children = append(node.Children, *p.makeExpr(p.parseJSXElementAt(childStart)))
		default:
			p.errorUnexpectedToken(p.currentKind())
			node.End = p.token.Idx0
			return node
		}
	}
}

// parseJSXClosingElement parses </Name> after the slash.
func (p *parser) parseJSXClosingElement(node *ast.JSXElement) {
	p.nextJSXInside()
	name := ""
	if p.currentKind() != token.Greater {
		name = p.parseJSXName()
	}
	if name != node.Name {
		if node.Name == "" {
			p.errorf("Expected corresponding closing tag for JSX fragment")
		} else {
			p.errorf("Expected corresponding JSX closing tag for <%s>", node.Name)
		}
	}
	if p.currentKind() != token.Greater {
		p.errorUnexpectedToken(p.currentKind())
		node.End = p.token.Idx0
		return
	}
	node.End = p.token.Idx1
}

// parseJSXName parses a, a:b or a.b.c and leaves the token after it.
func (p *parser) parseJSXName() string {
	if p.currentKind() != token.Identifier {
		p.errorUnexpectedToken(p.currentKind())
		return ""
	}
	name := p.currentString()
	p.nextJSXInside()
	for p.currentKind() == token.Period || p.currentKind() == token.Colon {
		sep := p.token.Raw(p.scanner)
		p.nextJSXInside()
		if p.currentKind() != token.Identifier {
			p.errorUnexpectedToken(p.currentKind())
			return name
		}
		name += sep + p.currentString()
		p.nextJSXInside()
	}
	return name
}

func (p *parser) parseJSXAttributes() (attrs []ast.JSXAttribute) {
	for {
		switch p.currentKind() {
		case token.Greater, token.Slash, token.Eof:
			return attrs
		case token.LeftBrace:
			idx := p.currentOffset()
			p.next()
			p.expect(token.Ellipsis)
			value := p.parseAssignmentExpression()
			if p.currentKind() != token.RightBrace {
				p.errorUnexpectedToken(p.currentKind())
			}
			p.nextJSXInside()
			attrs = append(attrs, ast.JSXAttribute{Idx: idx, Value: value, Spread: true})
		case token.Identifier:
			attr := ast.JSXAttribute{Idx: p.currentOffset()}
			name := p.currentString()
			p.nextJSXInside()
			if p.currentKind() == token.Colon {
				p.nextJSXInside()
				name += ":" + p.currentString()
				p.nextJSXInside()
			}
			attr.Name = name
			if p.currentKind() == token.Assign {
				p.nextJSXInside()
				attr.Value = p.parseJSXAttributeValue()
			}
			attrs = append(attrs, attr)
		default:
			p.errorUnexpectedToken(p.currentKind())
			return attrs
		}
	}
}

func (p *parser) parseJSXAttributeValue() *ast.Expression {
	switch p.currentKind() {
	case token.String:
		node := &ast.StringLiteral{
			Idx:   p.currentOffset(),
			Value: p.currentString(),
			Raw:   p.token.Raw(p.scanner),
		}
		p.nextJSXInside()
		return p.makeExpr(node)
	case token.LeftBrace:
		node := p.parseJSXExpressionContainer()
		p.nextJSXInside()
		return p.makeExpr(node)
	case token.Less:
		start := p.currentOffset()
		p.nextJSXInside()
		node := p.parseJSXElementAt(start)
		p.nextJSXInside()
		return p.makeExpr(node)
	}
	p.errorUnexpectedToken(p.currentKind())
	idx := p.currentOffset()
	p.nextJSXInside()
	return p.makeExpr(&ast.InvalidExpression{From: idx, To: p.prevEnd})
}

// parseJSXExpressionContainer parses {expression} and returns with the
// closing brace as the current token.
func (p *parser) parseJSXExpressionContainer() *ast.JSXExpressionContainer {
	node := &ast.JSXExpressionContainer{LeftBrace: p.currentOffset()}
	p.next()
	if p.currentKind() != token.RightBrace {
		allowIn := p.scope.allowIn
		p.scope.allowIn = true
		node.Expression = p.parseExpression()
		p.scope.allowIn = allowIn
	}
	if p.currentKind() != token.RightBrace {
		p.errorUnexpectedToken(p.currentKind())
	}
	node.RightBrace = p.currentOffset()
	return node
}
