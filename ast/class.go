package ast

type (
	ClassLiteral struct {
		Class      Idx
		RightBrace Idx
		Name       *Identifier `optional:"true"`
		SuperClass *Expression `optional:"true"`
		Body       ClassElements
		// Dangling holds comments written after the last member.
		Dangling []Comment
	}

	ClassElements []ClassElement

	// ClassElement is a struct to allow replacing a member at its index.
	ClassElement struct {
		Element
	}

	Element interface {
		Node
		VisitableNode
		_classElement()
	}

	FieldDefinition struct {
		Idx         Idx
		Key         *Expression
		Initializer *Expression `optional:"true"`
		Computed    bool
		Static      bool
		End         Idx
		Comments    Comments
	}

	MethodDefinition struct {
		Idx      Idx
		Key      *Expression
		Kind     PropertyKind // "constructor", "method", "get" or "set"
		Body     *FunctionLiteral
		Computed bool
		Static   bool
		Comments Comments
	}

	ClassStaticBlock struct {
		Static   Idx
		Block    *BlockStatement
		Comments Comments
	}
)

func (*ClassLiteral) _expr() {}

func (*FieldDefinition) _classElement()  {}
func (*MethodDefinition) _classElement() {}
func (*ClassStaticBlock) _classElement() {}

// KeyName returns the name of a non-computed identifier or string key.
func (n *MethodDefinition) KeyName() (string, bool) {
	if n.Computed {
		return "", false
	}
	return PropertyName(n.Key)
}

// KeyName returns the name of a non-computed identifier or string key.
func (n *FieldDefinition) KeyName() (string, bool) {
	if n.Computed {
		return "", false
	}
	return PropertyName(n.Key)
}

// Constructor returns the constructor of the class and its index in Body.
func (n *ClassLiteral) Constructor() (*MethodDefinition, int) {
	for i, el := range n.Body {
		if m, ok := el.Element.(*MethodDefinition); ok && m.Kind == PropertyKindConstructor {
			return m, i
		}
	}
	return nil, -1
}
