package ast

import "github.com/t14raptor/autobind/token"

type (
	FunctionDeclaration struct {
		Function *FunctionLiteral
	}

	ClassDeclaration struct {
		Class *ClassLiteral
	}

	VariableDeclaration struct {
		Idx   Idx
		Token token.Token
		List  VariableDeclarators
		End   Idx
	}

	VariableDeclarators []VariableDeclarator

	// VariableDeclarator is also used for function parameters. Target is an
	// *Identifier, an *ObjectLiteral or an *ArrayLiteral.
	VariableDeclarator struct {
		Target      *Expression
		Initializer *Expression `optional:"true"`
	}

	// ImportDeclaration keeps the source text of the declaration without
	// the terminating semicolon.
	ImportDeclaration struct {
		Import Idx
		Raw    string
		End    Idx
	}

	// ExportDeclaration is one of
	//
	//	export <Declaration>
	//	export default <Declaration>
	//	export default <Expression>;
	//	export <Raw>; (export lists and re-exports)
	ExportDeclaration struct {
		Export      Idx
		Default     bool
		Declaration *Statement  `optional:"true"`
		Expression  *Expression `optional:"true"`
		Raw         string
		End         Idx
	}
)

func (*FunctionDeclaration) _stmt() {}
func (*ClassDeclaration) _stmt()    {}
func (*VariableDeclaration) _stmt() {}
func (*ImportDeclaration) _stmt()   {}
func (*ExportDeclaration) _stmt()   {}
