package ast

type (
	FunctionLiteral struct {
		Function      Idx
		Name          *Identifier `optional:"true"`
		ParameterList ParameterList
		Body          *BlockStatement

		Async, Generator bool
	}

	ParameterList struct {
		Opening Idx
		List    VariableDeclarators
		Rest    *Expression `optional:"true"`
		Closing Idx
	}
)

func (*FunctionLiteral) _expr() {}

// Simple reports whether the list is exactly one plain identifier with no
// default value and no rest element.
func (n *ParameterList) Simple() bool {
	if len(n.List) != 1 || n.Rest != nil || n.List[0].Initializer != nil {
		return false
	}
	_, ok := n.List[0].Target.Expr.(*Identifier)
	return ok
}
