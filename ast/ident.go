package ast

type (
	Identifier struct {
		Idx  Idx
		Name string
	}

	// PrivateIdentifier is a #name. Name does not include the hash.
	PrivateIdentifier struct {
		Idx  Idx
		Name string
	}
)

func (*Identifier) _expr()        {}
func (*PrivateIdentifier) _expr() {}
