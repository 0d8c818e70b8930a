package ast

import "github.com/t14raptor/autobind/token"

type (
	Expressions []Expression

	// Expression is a struct to allow defining methods on it.
	// Replacing Expr swaps the node in place for its parent.
	Expression struct {
		Expr `optional:"true"`
	}

	// All expression nodes implement the Expr interface.
	Expr interface {
		Node
		VisitableNode
		_expr()
	}

	YieldExpression struct {
		Yield    Idx
		Argument *Expression `optional:"true"`
		Delegate bool
	}

	AwaitExpression struct {
		Await    Idx
		Argument *Expression
	}

	// ArrayLiteral is also used for array destructuring targets. Holes are
	// elements whose Expr is nil.
	ArrayLiteral struct {
		LeftBracket  Idx
		RightBracket Idx
		Value        Expressions
	}

	AssignExpression struct {
		Operator token.Token
		Left     *Expression
		Right    *Expression
	}

	InvalidExpression struct {
		From Idx
		To   Idx
	}

	BinaryExpression struct {
		Operator token.Token
		Left     *Expression
		Right    *Expression
	}

	// MemberExpression covers a.b, a[b], a?.b and a.#b. For a non-computed
	// access Property holds an *Identifier or a *PrivateIdentifier.
	MemberExpression struct {
		Object       *Expression
		Property     *Expression
		Computed     bool
		Optional     bool
		RightBracket Idx
	}

	CallExpression struct {
		Callee           *Expression
		LeftParenthesis  Idx
		ArgumentList     Expressions
		RightParenthesis Idx
		Optional         bool
	}

	ConditionalExpression struct {
		Test       *Expression
		Consequent *Expression
		Alternate  *Expression
	}

	ConciseBody struct {
		Body Body
	}

	Body interface {
		Node
		VisitableNode
		_conciseBody()
	}

	ArrowFunctionLiteral struct {
		Start         Idx
		ParameterList ParameterList
		Body          *ConciseBody
		Async         bool
	}

	NewExpression struct {
		New              Idx
		Callee           *Expression
		LeftParenthesis  Idx
		ArgumentList     Expressions
		RightParenthesis Idx
	}

	// ObjectLiteral is also used for object destructuring targets.
	ObjectLiteral struct {
		LeftBrace  Idx
		RightBrace Idx
		Value      Properties
	}

	SpreadElement struct {
		Idx        Idx
		Expression *Expression
	}

	SequenceExpression struct {
		Sequence Expressions
	}

	// ParenthesizedExpression keeps the parentheses written in the source so
	// that printing never has to reason about operator precedence.
	ParenthesizedExpression struct {
		LeftParenthesis  Idx
		Expression       *Expression
		RightParenthesis Idx
	}

	TemplateElements []TemplateElement

	TemplateElement struct {
		Idx     Idx
		Literal string
	}

	TemplateLiteral struct {
		OpenQuote   Idx
		CloseQuote  Idx
		Tag         *Expression `optional:"true"`
		Elements    TemplateElements
		Expressions Expressions
	}

	ThisExpression struct {
		Idx Idx
	}

	SuperExpression struct {
		Idx Idx
	}

	UnaryExpression struct {
		Operator token.Token
		Idx      Idx
		Operand  *Expression
	}

	UpdateExpression struct {
		Operator token.Token
		Idx      Idx // If a prefix operation
		Operand  *Expression
		Postfix  bool
	}

	// MetaProperty is new.target or import.meta.
	MetaProperty struct {
		Meta, Property *Identifier
	}
)

func (*BlockStatement) _conciseBody() {}
func (*Expression) _conciseBody()     {}

func (*ArrayLiteral) _expr()            {}
func (*AssignExpression) _expr()        {}
func (*YieldExpression) _expr()         {}
func (*AwaitExpression) _expr()         {}
func (*InvalidExpression) _expr()       {}
func (*BinaryExpression) _expr()        {}
func (*CallExpression) _expr()          {}
func (*ConditionalExpression) _expr()   {}
func (*MemberExpression) _expr()        {}
func (*ArrowFunctionLiteral) _expr()    {}
func (*NewExpression) _expr()           {}
func (*ObjectLiteral) _expr()           {}
func (*SequenceExpression) _expr()      {}
func (*ParenthesizedExpression) _expr() {}
func (*TemplateLiteral) _expr()         {}
func (*ThisExpression) _expr()          {}
func (*SuperExpression) _expr()         {}
func (*UnaryExpression) _expr()         {}
func (*UpdateExpression) _expr()        {}
func (*MetaProperty) _expr()            {}
func (*SpreadElement) _expr()           {}
