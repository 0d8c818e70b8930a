package ast

type (
	// JSXElement is <Name attrs>children</Name>, a self-closing element or,
	// when Name is empty, a fragment.
	JSXElement struct {
		Start       Idx
		Name        string
		Attributes  []JSXAttribute
		SelfClosing bool
		Children    Expressions
		End         Idx
	}

	// JSXAttribute is name, name=value or {...value} when Spread is set.
	// Value is a *StringLiteral, a *JSXExpressionContainer or a *JSXElement.
	JSXAttribute struct {
		Idx    Idx
		Name   string
		Value  *Expression `optional:"true"`
		Spread bool
	}

	// JSXExpressionContainer is {expression}. Expression is nil for {}.
	JSXExpressionContainer struct {
		LeftBrace  Idx
		Expression *Expression `optional:"true"`
		RightBrace Idx
	}

	JSXText struct {
		Idx Idx
		Raw string
	}
)

func (*JSXElement) _expr()             {}
func (*JSXExpressionContainer) _expr() {}
func (*JSXText) _expr()                {}
