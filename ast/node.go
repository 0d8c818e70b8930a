package ast

// Idx is a byte offset into the source text the tree was parsed from.
// Nodes built after parsing carry zero positions.
type Idx int

type Node interface {
	// Idx0 returns the index of the first character belonging to the node.
	Idx0() Idx
	// Idx1 returns the index of the first character immediately after the node.
	Idx1() Idx
}

// Span is a half-open byte range [From, To) of the source text.
type Span struct {
	From, To Idx
}

// SpanOf returns the source range covered by n.
func SpanOf(n Node) Span {
	return Span{From: n.Idx0(), To: n.Idx1()}
}

// Valid reports whether the span was produced by the parser.
func (s Span) Valid() bool { return s.To > s.From }

// Overlaps reports whether the two ranges share at least one byte.
func (s Span) Overlaps(o Span) bool {
	return s.From < o.To && o.From < s.To
}

type Program struct {
	Body     Statements
	Dangling []Comment
	End      Idx
}

func (n *Program) Idx0() Idx { return 0 }
func (n *Program) Idx1() Idx { return n.End }

func (n *Identifier) Idx0() Idx            { return n.Idx }
func (n *PrivateIdentifier) Idx0() Idx     { return n.Idx }
func (n *ThisExpression) Idx0() Idx        { return n.Idx }
func (n *SuperExpression) Idx0() Idx       { return n.Idx }
func (n *NullLiteral) Idx0() Idx           { return n.Idx }
func (n *BooleanLiteral) Idx0() Idx        { return n.Idx }
func (n *NumberLiteral) Idx0() Idx         { return n.Idx }
func (n *StringLiteral) Idx0() Idx         { return n.Idx }
func (n *RegExpLiteral) Idx0() Idx         { return n.Idx }
func (n *TemplateElement) Idx0() Idx       { return n.Idx }
func (n *ArrayLiteral) Idx0() Idx          { return n.LeftBracket }
func (n *ObjectLiteral) Idx0() Idx         { return n.LeftBrace }
func (n *FunctionLiteral) Idx0() Idx       { return n.Function }
func (n *ArrowFunctionLiteral) Idx0() Idx  { return n.Start }
func (n *ClassLiteral) Idx0() Idx          { return n.Class }
func (n *CallExpression) Idx0() Idx        { return n.Callee.Idx0() }
func (n *NewExpression) Idx0() Idx         { return n.New }
func (n *MemberExpression) Idx0() Idx      { return n.Object.Idx0() }
func (n *UnaryExpression) Idx0() Idx       { return n.Idx }
func (n *BinaryExpression) Idx0() Idx      { return n.Left.Idx0() }
func (n *AssignExpression) Idx0() Idx      { return n.Left.Idx0() }
func (n *ConditionalExpression) Idx0() Idx { return n.Test.Idx0() }
func (n *SequenceExpression) Idx0() Idx    { return n.Sequence[0].Idx0() }
func (n *SpreadElement) Idx0() Idx         { return n.Idx }
func (n *YieldExpression) Idx0() Idx       { return n.Yield }
func (n *AwaitExpression) Idx0() Idx       { return n.Await }
func (n *MetaProperty) Idx0() Idx          { return n.Meta.Idx }
func (n *InvalidExpression) Idx0() Idx     { return n.From }
func (n *PropertyKeyed) Idx0() Idx         { return n.Key.Idx0() }
func (n *PropertyShort) Idx0() Idx         { return n.Name.Idx }
func (n *ParameterList) Idx0() Idx         { return n.Opening }
func (n *ConciseBody) Idx0() Idx           { return n.Body.Idx0() }
func (n *VariableDeclarator) Idx0() Idx    { return n.Target.Idx0() }

func (n *ParenthesizedExpression) Idx0() Idx { return n.LeftParenthesis }
func (n *JSXElement) Idx0() Idx              { return n.Start }
func (n *JSXText) Idx0() Idx                 { return n.Idx }
func (n *JSXExpressionContainer) Idx0() Idx  { return n.LeftBrace }
func (n *JSXAttribute) Idx0() Idx            { return n.Idx }

func (n *UpdateExpression) Idx0() Idx {
	if n.Postfix {
		return n.Operand.Idx0()
	}
	return n.Idx
}

func (n *Identifier) Idx1() Idx            { return n.Idx + Idx(len(n.Name)) }
func (n *PrivateIdentifier) Idx1() Idx     { return n.Idx + Idx(len(n.Name)) + 1 }
func (n *ThisExpression) Idx1() Idx        { return n.Idx + 4 }
func (n *SuperExpression) Idx1() Idx       { return n.Idx + 5 }
func (n *NullLiteral) Idx1() Idx           { return n.Idx + 4 }
func (n *NumberLiteral) Idx1() Idx         { return n.Idx + Idx(len(n.Raw)) }
func (n *StringLiteral) Idx1() Idx         { return n.Idx + Idx(len(n.Raw)) }
func (n *RegExpLiteral) Idx1() Idx         { return n.Idx + Idx(len(n.Literal)) }
func (n *TemplateElement) Idx1() Idx       { return n.Idx + Idx(len(n.Literal)) }
func (n *TemplateLiteral) Idx1() Idx       { return n.CloseQuote + 1 }
func (n *ArrayLiteral) Idx1() Idx          { return n.RightBracket + 1 }
func (n *ObjectLiteral) Idx1() Idx         { return n.RightBrace + 1 }
func (n *FunctionLiteral) Idx1() Idx       { return n.Body.Idx1() }
func (n *ArrowFunctionLiteral) Idx1() Idx  { return n.Body.Idx1() }
func (n *ClassLiteral) Idx1() Idx          { return n.RightBrace + 1 }
func (n *CallExpression) Idx1() Idx        { return n.RightParenthesis + 1 }
func (n *UnaryExpression) Idx1() Idx       { return n.Operand.Idx1() }
func (n *BinaryExpression) Idx1() Idx      { return n.Right.Idx1() }
func (n *AssignExpression) Idx1() Idx      { return n.Right.Idx1() }
func (n *ConditionalExpression) Idx1() Idx { return n.Alternate.Idx1() }
func (n *SequenceExpression) Idx1() Idx    { return n.Sequence[len(n.Sequence)-1].Idx1() }
func (n *SpreadElement) Idx1() Idx         { return n.Expression.Idx1() }
func (n *AwaitExpression) Idx1() Idx       { return n.Argument.Idx1() }
func (n *MetaProperty) Idx1() Idx          { return n.Property.Idx1() }
func (n *InvalidExpression) Idx1() Idx     { return n.To }
func (n *PropertyKeyed) Idx1() Idx         { return n.Value.Idx1() }
func (n *ParameterList) Idx1() Idx         { return n.Closing + 1 }
func (n *ConciseBody) Idx1() Idx           { return n.Body.Idx1() }

func (n *ParenthesizedExpression) Idx1() Idx { return n.RightParenthesis + 1 }
func (n *JSXElement) Idx1() Idx              { return n.End }
func (n *JSXText) Idx1() Idx                 { return n.Idx + Idx(len(n.Raw)) }
func (n *JSXExpressionContainer) Idx1() Idx  { return n.RightBrace + 1 }

func (n *BooleanLiteral) Idx1() Idx {
	if n.Value {
		return n.Idx + 4
	}
	return n.Idx + 5
}

func (n *TemplateLiteral) Idx0() Idx {
	if n.Tag != nil {
		return n.Tag.Idx0()
	}
	return n.OpenQuote
}

func (n *NewExpression) Idx1() Idx {
	if n.RightParenthesis > 0 {
		return n.RightParenthesis + 1
	}
	return n.Callee.Idx1()
}

func (n *MemberExpression) Idx1() Idx {
	if n.Computed {
		return n.RightBracket + 1
	}
	return n.Property.Idx1()
}

func (n *UpdateExpression) Idx1() Idx {
	if n.Postfix {
		return n.Operand.Idx1() + 2
	}
	return n.Operand.Idx1()
}

func (n *YieldExpression) Idx1() Idx {
	if n.Argument != nil {
		return n.Argument.Idx1()
	}
	return n.Yield + 5
}

func (n *PropertyShort) Idx1() Idx {
	if n.Initializer != nil {
		return n.Initializer.Idx1()
	}
	return n.Name.Idx1()
}

func (n *VariableDeclarator) Idx1() Idx {
	if n.Initializer != nil {
		return n.Initializer.Idx1()
	}
	return n.Target.Idx1()
}

func (n *JSXAttribute) Idx1() Idx {
	if n.Value != nil {
		if n.Spread {
			// The argument is followed by the closing brace.
			return n.Value.Idx1() + 1
		}
		return n.Value.Idx1()
	}
	return n.Idx + Idx(len(n.Name))
}

func (n *BadStatement) Idx0() Idx        { return n.From }
func (n *BlockStatement) Idx0() Idx      { return n.LeftBrace }
func (n *BreakStatement) Idx0() Idx      { return n.Idx }
func (n *ContinueStatement) Idx0() Idx   { return n.Idx }
func (n *CaseStatement) Idx0() Idx       { return n.Case }
func (n *CatchStatement) Idx0() Idx      { return n.Catch }
func (n *DebuggerStatement) Idx0() Idx   { return n.Debugger }
func (n *DoWhileStatement) Idx0() Idx    { return n.Do }
func (n *EmptyStatement) Idx0() Idx      { return n.Semicolon }
func (n *ExpressionStatement) Idx0() Idx { return n.Expression.Idx0() }
func (n *ForInStatement) Idx0() Idx      { return n.For }
func (n *ForOfStatement) Idx0() Idx      { return n.For }
func (n *ForStatement) Idx0() Idx        { return n.For }
func (n *IfStatement) Idx0() Idx         { return n.If }
func (n *LabelledStatement) Idx0() Idx   { return n.Label.Idx }
func (n *ReturnStatement) Idx0() Idx     { return n.Return }
func (n *SwitchStatement) Idx0() Idx     { return n.Switch }
func (n *ThrowStatement) Idx0() Idx      { return n.Throw }
func (n *TryStatement) Idx0() Idx        { return n.Try }
func (n *WhileStatement) Idx0() Idx      { return n.While }
func (n *WithStatement) Idx0() Idx       { return n.With }
func (n *VariableDeclaration) Idx0() Idx { return n.Idx }
func (n *FunctionDeclaration) Idx0() Idx { return n.Function.Idx0() }
func (n *ClassDeclaration) Idx0() Idx    { return n.Class.Idx0() }
func (n *ImportDeclaration) Idx0() Idx   { return n.Import }
func (n *ExportDeclaration) Idx0() Idx   { return n.Export }

func (n *BadStatement) Idx1() Idx        { return n.To }
func (n *BlockStatement) Idx1() Idx      { return n.RightBrace + 1 }
func (n *BreakStatement) Idx1() Idx      { return n.End }
func (n *ContinueStatement) Idx1() Idx   { return n.End }
func (n *CatchStatement) Idx1() Idx      { return n.Body.Idx1() }
func (n *DebuggerStatement) Idx1() Idx   { return n.End }
func (n *DoWhileStatement) Idx1() Idx    { return n.End }
func (n *EmptyStatement) Idx1() Idx      { return n.Semicolon + 1 }
func (n *ExpressionStatement) Idx1() Idx { return n.End }
func (n *ForInStatement) Idx1() Idx      { return n.Body.Idx1() }
func (n *ForOfStatement) Idx1() Idx      { return n.Body.Idx1() }
func (n *ForStatement) Idx1() Idx        { return n.Body.Idx1() }
func (n *LabelledStatement) Idx1() Idx   { return n.Statement.Idx1() }
func (n *ReturnStatement) Idx1() Idx     { return n.End }
func (n *SwitchStatement) Idx1() Idx     { return n.RightBrace + 1 }
func (n *ThrowStatement) Idx1() Idx      { return n.End }
func (n *WhileStatement) Idx1() Idx      { return n.Body.Idx1() }
func (n *WithStatement) Idx1() Idx       { return n.Body.Idx1() }
func (n *VariableDeclaration) Idx1() Idx { return n.End }
func (n *FunctionDeclaration) Idx1() Idx { return n.Function.Idx1() }
func (n *ClassDeclaration) Idx1() Idx    { return n.Class.Idx1() }
func (n *ImportDeclaration) Idx1() Idx   { return n.End }
func (n *ExportDeclaration) Idx1() Idx   { return n.End }

func (n *CaseStatement) Idx1() Idx {
	if len(n.Consequent) > 0 {
		return n.Consequent[len(n.Consequent)-1].Idx1()
	}
	return n.Colon + 1
}

func (n *IfStatement) Idx1() Idx {
	if n.Alternate != nil {
		return n.Alternate.Idx1()
	}
	return n.Consequent.Idx1()
}

func (n *TryStatement) Idx1() Idx {
	if n.Finally != nil {
		return n.Finally.Idx1()
	}
	if n.Catch != nil {
		return n.Catch.Idx1()
	}
	return n.Body.Idx1()
}

func (n *MethodDefinition) Idx0() Idx { return n.Idx }
func (n *FieldDefinition) Idx0() Idx  { return n.Idx }
func (n *ClassStaticBlock) Idx0() Idx { return n.Static }

func (n *MethodDefinition) Idx1() Idx { return n.Body.Idx1() }
func (n *FieldDefinition) Idx1() Idx {
	if n.End > 0 {
		return n.End
	}
	if n.Initializer != nil {
		return n.Initializer.Idx1()
	}
	return n.Key.Idx1()
}
func (n *ClassStaticBlock) Idx1() Idx { return n.Block.Idx1() }
