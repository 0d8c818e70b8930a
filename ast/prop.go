package ast

type PropertyKind string

const (
	PropertyKindValue       PropertyKind = "value"
	PropertyKindGet         PropertyKind = "get"
	PropertyKindSet         PropertyKind = "set"
	PropertyKindMethod      PropertyKind = "method"
	PropertyKindConstructor PropertyKind = "constructor"
)

type (
	Properties []Property

	Property struct {
		Prop Prop
	}

	Prop interface {
		Expr
		_property()
	}

	// PropertyShort is {name} or, in a destructuring target, {name = init}.
	PropertyShort struct {
		Name        *Identifier
		Initializer *Expression `optional:"true"`
	}

	// PropertyKeyed is key: value, a method, a getter or a setter. For
	// methods, getters and setters Value holds a *FunctionLiteral that
	// starts at its parameter list.
	PropertyKeyed struct {
		Key      *Expression
		Kind     PropertyKind
		Value    *Expression
		Computed bool
	}
)

func (*PropertyShort) _expr() {}
func (*PropertyKeyed) _expr() {}

func (*PropertyShort) _property() {}
func (*PropertyKeyed) _property() {}
func (*SpreadElement) _property() {}
