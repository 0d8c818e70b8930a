package autobind

import "github.com/t14raptor/autobind/ast"

// ConvertMethod returns a non-static field with the key of m whose value is
// an arrow function taking the parameters and body of m. Comments attached
// to m are copied to the field. m itself is not modified, but the returned
// field shares its key, parameters and body.
//
// The field starts where m started so that it takes the place of m when
// printed against the original source.
func ConvertMethod(m *ast.MethodDefinition) *ast.FieldDefinition {
	fn := m.Body
	arrow := &ast.ArrowFunctionLiteral{
		ParameterList: fn.ParameterList,
		Body:          &ast.ConciseBody{Body: fn.Body},
		Async:         fn.Async,
	}
	return &ast.FieldDefinition{
		Idx:         m.Idx,
		Key:         m.Key,
		Initializer: &ast.Expression{Expr: arrow},
		Computed:    m.Computed,
		Comments:    m.Comments.Clone(),
	}
}

// convertible reports whether m can become an arrow-valued field without
// changing what it means.
func convertible(m *ast.MethodDefinition) bool {
	return m.Kind == ast.PropertyKindMethod && !m.Static && !m.Body.Generator
}

// headerSpan covers everything of m in front of its body block.
func headerSpan(m *ast.MethodDefinition) ast.Span {
	return ast.Span{From: m.Idx, To: m.Body.Body.LeftBrace}
}

// argumentsFinder looks for uses of arguments that an arrow function would
// resolve differently.
type argumentsFinder struct {
	ast.NoopVisitor
	found bool
}

func usesArguments(body *ast.BlockStatement) bool {
	f := &argumentsFinder{}
	f.V = f
	body.VisitWith(f)
	return f.found
}

func (f *argumentsFinder) VisitIdentifier(n *ast.Identifier) {
	if n.Name == "arguments" {
		f.found = true
	}
}

func (f *argumentsFinder) VisitMemberExpression(n *ast.MemberExpression) {
	n.Object.VisitWith(f)
	if n.Computed {
		n.Property.VisitWith(f)
	}
}

func (f *argumentsFinder) VisitPropertyKeyed(n *ast.PropertyKeyed) {
	if n.Computed {
		n.Key.VisitWith(f)
	}
	n.Value.VisitWith(f)
}

// Functions and classes bind their own arguments.
func (f *argumentsFinder) VisitFunctionLiteral(*ast.FunctionLiteral) {}
func (f *argumentsFinder) VisitClassLiteral(*ast.ClassLiteral)       {}
