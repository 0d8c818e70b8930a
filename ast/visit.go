package ast

type VisitableNode interface {
	VisitWith(v Visitor)
	VisitChildrenWith(v Visitor)
}

type Visitor interface {
	VisitProgram(n *Program)
	VisitExpressions(n *Expressions)
	VisitExpression(n *Expression)
	VisitStatements(n *Statements)
	VisitStatement(n *Statement)
	VisitClassElements(n *ClassElements)
	VisitClassElement(n *ClassElement)
	VisitProperties(n *Properties)
	VisitProperty(n *Property)
	VisitVariableDeclarators(n *VariableDeclarators)
	VisitVariableDeclarator(n *VariableDeclarator)
	VisitParameterList(n *ParameterList)
	VisitConciseBody(n *ConciseBody)
	VisitForLoopInitializer(n *ForLoopInitializer)
	VisitForInto(n *ForInto)
	VisitArrayLiteral(n *ArrayLiteral)
	VisitArrowFunctionLiteral(n *ArrowFunctionLiteral)
	VisitAssignExpression(n *AssignExpression)
	VisitAwaitExpression(n *AwaitExpression)
	VisitBinaryExpression(n *BinaryExpression)
	VisitBooleanLiteral(n *BooleanLiteral)
	VisitCallExpression(n *CallExpression)
	VisitClassLiteral(n *ClassLiteral)
	VisitConditionalExpression(n *ConditionalExpression)
	VisitFunctionLiteral(n *FunctionLiteral)
	VisitIdentifier(n *Identifier)
	VisitInvalidExpression(n *InvalidExpression)
	VisitJSXElement(n *JSXElement)
	VisitJSXExpressionContainer(n *JSXExpressionContainer)
	VisitJSXText(n *JSXText)
	VisitMemberExpression(n *MemberExpression)
	VisitMetaProperty(n *MetaProperty)
	VisitNewExpression(n *NewExpression)
	VisitNullLiteral(n *NullLiteral)
	VisitNumberLiteral(n *NumberLiteral)
	VisitObjectLiteral(n *ObjectLiteral)
	VisitParenthesizedExpression(n *ParenthesizedExpression)
	VisitPrivateIdentifier(n *PrivateIdentifier)
	VisitPropertyKeyed(n *PropertyKeyed)
	VisitPropertyShort(n *PropertyShort)
	VisitRegExpLiteral(n *RegExpLiteral)
	VisitSequenceExpression(n *SequenceExpression)
	VisitSpreadElement(n *SpreadElement)
	VisitStringLiteral(n *StringLiteral)
	VisitSuperExpression(n *SuperExpression)
	VisitTemplateLiteral(n *TemplateLiteral)
	VisitThisExpression(n *ThisExpression)
	VisitUnaryExpression(n *UnaryExpression)
	VisitUpdateExpression(n *UpdateExpression)
	VisitYieldExpression(n *YieldExpression)
	VisitBadStatement(n *BadStatement)
	VisitBlockStatement(n *BlockStatement)
	VisitBreakStatement(n *BreakStatement)
	VisitCaseStatement(n *CaseStatement)
	VisitCatchStatement(n *CatchStatement)
	VisitClassDeclaration(n *ClassDeclaration)
	VisitContinueStatement(n *ContinueStatement)
	VisitDebuggerStatement(n *DebuggerStatement)
	VisitDoWhileStatement(n *DoWhileStatement)
	VisitEmptyStatement(n *EmptyStatement)
	VisitExportDeclaration(n *ExportDeclaration)
	VisitExpressionStatement(n *ExpressionStatement)
	VisitForInStatement(n *ForInStatement)
	VisitForOfStatement(n *ForOfStatement)
	VisitForStatement(n *ForStatement)
	VisitFunctionDeclaration(n *FunctionDeclaration)
	VisitIfStatement(n *IfStatement)
	VisitImportDeclaration(n *ImportDeclaration)
	VisitLabelledStatement(n *LabelledStatement)
	VisitReturnStatement(n *ReturnStatement)
	VisitSwitchStatement(n *SwitchStatement)
	VisitThrowStatement(n *ThrowStatement)
	VisitTryStatement(n *TryStatement)
	VisitVariableDeclaration(n *VariableDeclaration)
	VisitWhileStatement(n *WhileStatement)
	VisitWithStatement(n *WithStatement)
	VisitMethodDefinition(n *MethodDefinition)
	VisitFieldDefinition(n *FieldDefinition)
	VisitClassStaticBlock(n *ClassStaticBlock)
}

// NoopVisitor visits every node without doing anything. Embed it and set
// V to the embedding visitor so that overridden methods are dispatched:
//
//	v := &myVisitor{}
//	v.V = v
//	program.VisitWith(v)
type NoopVisitor struct {
	V Visitor
}

func (nv *NoopVisitor) VisitProgram(n *Program) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitExpressions(n *Expressions) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitExpression(n *Expression) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitStatements(n *Statements) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitStatement(n *Statement) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitClassElements(n *ClassElements) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitClassElement(n *ClassElement) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitProperties(n *Properties) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitProperty(n *Property) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitVariableDeclarators(n *VariableDeclarators) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitVariableDeclarator(n *VariableDeclarator) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitParameterList(n *ParameterList) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitConciseBody(n *ConciseBody) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitForLoopInitializer(n *ForLoopInitializer) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitForInto(n *ForInto) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitArrayLiteral(n *ArrayLiteral) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitArrowFunctionLiteral(n *ArrowFunctionLiteral) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitAssignExpression(n *AssignExpression) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitAwaitExpression(n *AwaitExpression) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitBinaryExpression(n *BinaryExpression) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitBooleanLiteral(n *BooleanLiteral) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitCallExpression(n *CallExpression) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitClassLiteral(n *ClassLiteral) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitConditionalExpression(n *ConditionalExpression) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitFunctionLiteral(n *FunctionLiteral) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitIdentifier(n *Identifier) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitInvalidExpression(n *InvalidExpression) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitJSXElement(n *JSXElement) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitJSXExpressionContainer(n *JSXExpressionContainer) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitJSXText(n *JSXText) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitMemberExpression(n *MemberExpression) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitMetaProperty(n *MetaProperty) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitNewExpression(n *NewExpression) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitNullLiteral(n *NullLiteral) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitNumberLiteral(n *NumberLiteral) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitObjectLiteral(n *ObjectLiteral) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitParenthesizedExpression(n *ParenthesizedExpression) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitPrivateIdentifier(n *PrivateIdentifier) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitPropertyKeyed(n *PropertyKeyed) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitPropertyShort(n *PropertyShort) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitRegExpLiteral(n *RegExpLiteral) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitSequenceExpression(n *SequenceExpression) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitSpreadElement(n *SpreadElement) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitStringLiteral(n *StringLiteral) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitSuperExpression(n *SuperExpression) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitTemplateLiteral(n *TemplateLiteral) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitThisExpression(n *ThisExpression) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitUnaryExpression(n *UnaryExpression) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitUpdateExpression(n *UpdateExpression) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitYieldExpression(n *YieldExpression) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitBadStatement(n *BadStatement) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitBlockStatement(n *BlockStatement) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitBreakStatement(n *BreakStatement) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitCaseStatement(n *CaseStatement) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitCatchStatement(n *CatchStatement) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitClassDeclaration(n *ClassDeclaration) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitContinueStatement(n *ContinueStatement) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitDebuggerStatement(n *DebuggerStatement) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitDoWhileStatement(n *DoWhileStatement) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitEmptyStatement(n *EmptyStatement) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitExportDeclaration(n *ExportDeclaration) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitExpressionStatement(n *ExpressionStatement) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitForInStatement(n *ForInStatement) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitForOfStatement(n *ForOfStatement) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitForStatement(n *ForStatement) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitFunctionDeclaration(n *FunctionDeclaration) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitIfStatement(n *IfStatement) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitImportDeclaration(n *ImportDeclaration) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitLabelledStatement(n *LabelledStatement) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitReturnStatement(n *ReturnStatement) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitSwitchStatement(n *SwitchStatement) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitThrowStatement(n *ThrowStatement) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitTryStatement(n *TryStatement) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitVariableDeclaration(n *VariableDeclaration) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitWhileStatement(n *WhileStatement) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitWithStatement(n *WithStatement) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitMethodDefinition(n *MethodDefinition) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitFieldDefinition(n *FieldDefinition) { n.VisitChildrenWith(nv.V) }
func (nv *NoopVisitor) VisitClassStaticBlock(n *ClassStaticBlock) { n.VisitChildrenWith(nv.V) }

func (n *Program) VisitWith(v Visitor) { v.VisitProgram(n) }
func (n *Expressions) VisitWith(v Visitor) { v.VisitExpressions(n) }
func (n *Expression) VisitWith(v Visitor) { v.VisitExpression(n) }
func (n *Statements) VisitWith(v Visitor) { v.VisitStatements(n) }
func (n *Statement) VisitWith(v Visitor) { v.VisitStatement(n) }
func (n *ClassElements) VisitWith(v Visitor) { v.VisitClassElements(n) }
func (n *ClassElement) VisitWith(v Visitor) { v.VisitClassElement(n) }
func (n *Properties) VisitWith(v Visitor) { v.VisitProperties(n) }
func (n *Property) VisitWith(v Visitor) { v.VisitProperty(n) }
func (n *VariableDeclarators) VisitWith(v Visitor) { v.VisitVariableDeclarators(n) }
func (n *VariableDeclarator) VisitWith(v Visitor) { v.VisitVariableDeclarator(n) }
func (n *ParameterList) VisitWith(v Visitor) { v.VisitParameterList(n) }
func (n *ConciseBody) VisitWith(v Visitor) { v.VisitConciseBody(n) }
func (n *ForLoopInitializer) VisitWith(v Visitor) { v.VisitForLoopInitializer(n) }
func (n *ForInto) VisitWith(v Visitor) { v.VisitForInto(n) }
func (n *ArrayLiteral) VisitWith(v Visitor) { v.VisitArrayLiteral(n) }
func (n *ArrowFunctionLiteral) VisitWith(v Visitor) { v.VisitArrowFunctionLiteral(n) }
func (n *AssignExpression) VisitWith(v Visitor) { v.VisitAssignExpression(n) }
func (n *AwaitExpression) VisitWith(v Visitor) { v.VisitAwaitExpression(n) }
func (n *BinaryExpression) VisitWith(v Visitor) { v.VisitBinaryExpression(n) }
func (n *BooleanLiteral) VisitWith(v Visitor) { v.VisitBooleanLiteral(n) }
func (n *CallExpression) VisitWith(v Visitor) { v.VisitCallExpression(n) }
func (n *ClassLiteral) VisitWith(v Visitor) { v.VisitClassLiteral(n) }
func (n *ConditionalExpression) VisitWith(v Visitor) { v.VisitConditionalExpression(n) }
func (n *FunctionLiteral) VisitWith(v Visitor) { v.VisitFunctionLiteral(n) }
func (n *Identifier) VisitWith(v Visitor) { v.VisitIdentifier(n) }
func (n *InvalidExpression) VisitWith(v Visitor) { v.VisitInvalidExpression(n) }
func (n *JSXElement) VisitWith(v Visitor) { v.VisitJSXElement(n) }
func (n *JSXExpressionContainer) VisitWith(v Visitor) { v.VisitJSXExpressionContainer(n) }
func (n *JSXText) VisitWith(v Visitor) { v.VisitJSXText(n) }
func (n *MemberExpression) VisitWith(v Visitor) { v.VisitMemberExpression(n) }
func (n *MetaProperty) VisitWith(v Visitor) { v.VisitMetaProperty(n) }
func (n *NewExpression) VisitWith(v Visitor) { v.VisitNewExpression(n) }
func (n *NullLiteral) VisitWith(v Visitor) { v.VisitNullLiteral(n) }
func (n *NumberLiteral) VisitWith(v Visitor) { v.VisitNumberLiteral(n) }
func (n *ObjectLiteral) VisitWith(v Visitor) { v.VisitObjectLiteral(n) }
func (n *ParenthesizedExpression) VisitWith(v Visitor) { v.VisitParenthesizedExpression(n) }
func (n *PrivateIdentifier) VisitWith(v Visitor) { v.VisitPrivateIdentifier(n) }
func (n *PropertyKeyed) VisitWith(v Visitor) { v.VisitPropertyKeyed(n) }
func (n *PropertyShort) VisitWith(v Visitor) { v.VisitPropertyShort(n) }
func (n *RegExpLiteral) VisitWith(v Visitor) { v.VisitRegExpLiteral(n) }
func (n *SequenceExpression) VisitWith(v Visitor) { v.VisitSequenceExpression(n) }
func (n *SpreadElement) VisitWith(v Visitor) { v.VisitSpreadElement(n) }
func (n *StringLiteral) VisitWith(v Visitor) { v.VisitStringLiteral(n) }
func (n *SuperExpression) VisitWith(v Visitor) { v.VisitSuperExpression(n) }
func (n *TemplateLiteral) VisitWith(v Visitor) { v.VisitTemplateLiteral(n) }
func (n *ThisExpression) VisitWith(v Visitor) { v.VisitThisExpression(n) }
func (n *UnaryExpression) VisitWith(v Visitor) { v.VisitUnaryExpression(n) }
func (n *UpdateExpression) VisitWith(v Visitor) { v.VisitUpdateExpression(n) }
func (n *YieldExpression) VisitWith(v Visitor) { v.VisitYieldExpression(n) }
func (n *BadStatement) VisitWith(v Visitor) { v.VisitBadStatement(n) }
func (n *BlockStatement) VisitWith(v Visitor) { v.VisitBlockStatement(n) }
func (n *BreakStatement) VisitWith(v Visitor) { v.VisitBreakStatement(n) }
func (n *CaseStatement) VisitWith(v Visitor) { v.VisitCaseStatement(n) }
func (n *CatchStatement) VisitWith(v Visitor) { v.VisitCatchStatement(n) }
func (n *ClassDeclaration) VisitWith(v Visitor) { v.VisitClassDeclaration(n) }
func (n *ContinueStatement) VisitWith(v Visitor) { v.VisitContinueStatement(n) }
func (n *DebuggerStatement) VisitWith(v Visitor) { v.VisitDebuggerStatement(n) }
func (n *DoWhileStatement) VisitWith(v Visitor) { v.VisitDoWhileStatement(n) }
func (n *EmptyStatement) VisitWith(v Visitor) { v.VisitEmptyStatement(n) }
func (n *ExportDeclaration) VisitWith(v Visitor) { v.VisitExportDeclaration(n) }
func (n *ExpressionStatement) VisitWith(v Visitor) { v.VisitExpressionStatement(n) }
func (n *ForInStatement) VisitWith(v Visitor) { v.VisitForInStatement(n) }
func (n *ForOfStatement) VisitWith(v Visitor) { v.VisitForOfStatement(n) }
func (n *ForStatement) VisitWith(v Visitor) { v.VisitForStatement(n) }
func (n *FunctionDeclaration) VisitWith(v Visitor) { v.VisitFunctionDeclaration(n) }
func (n *IfStatement) VisitWith(v Visitor) { v.VisitIfStatement(n) }
func (n *ImportDeclaration) VisitWith(v Visitor) { v.VisitImportDeclaration(n) }
func (n *LabelledStatement) VisitWith(v Visitor) { v.VisitLabelledStatement(n) }
func (n *ReturnStatement) VisitWith(v Visitor) { v.VisitReturnStatement(n) }
func (n *SwitchStatement) VisitWith(v Visitor) { v.VisitSwitchStatement(n) }
func (n *ThrowStatement) VisitWith(v Visitor) { v.VisitThrowStatement(n) }
func (n *TryStatement) VisitWith(v Visitor) { v.VisitTryStatement(n) }
func (n *VariableDeclaration) VisitWith(v Visitor) { v.VisitVariableDeclaration(n) }
func (n *WhileStatement) VisitWith(v Visitor) { v.VisitWhileStatement(n) }
func (n *WithStatement) VisitWith(v Visitor) { v.VisitWithStatement(n) }
func (n *MethodDefinition) VisitWith(v Visitor) { v.VisitMethodDefinition(n) }
func (n *FieldDefinition) VisitWith(v Visitor) { v.VisitFieldDefinition(n) }
func (n *ClassStaticBlock) VisitWith(v Visitor) { v.VisitClassStaticBlock(n) }
