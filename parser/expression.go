package parser

import (
	"github.com/t14raptor/autobind/ast"
	"github.com/t14raptor/autobind/token"
)

func (p *parser) parseIdentifier() *ast.Identifier {
	node := &ast.Identifier{
		Idx:  p.currentOffset(),
		Name: p.currentString(),
	}
	if !token.ID(p.currentKind()) {
		p.errorUnexpectedToken(p.currentKind())
	}
	p.next()
	return node
}

// parseIdentifierName parses any identifier including reserved words, as
// allowed after a dot or as a property key.
func (p *parser) parseIdentifierName() *ast.Identifier {
	node := &ast.Identifier{
		Idx:  p.currentOffset(),
		Name: p.currentString(),
	}
	if !token.IdentifierName(p.currentKind()) {
		p.errorUnexpectedToken(p.currentKind())
	}
	p.next()
	return node
}

func (p *parser) parseExpression() *ast.Expression {
	left := p.parseAssignmentExpression()
	if p.currentKind() != token.Comma {
		return left
	}

	sequence := ast.Expressions{*left}
	for p.currentKind() == token.Comma {
		p.next()
		sequence = append(sequence, *p.parseAssignmentExpression())
	}
	return p.makeExpr(&ast.SequenceExpression{Sequence: sequence})
}

func (p *parser) parseAssignmentExpression() *ast.Expression {
	if p.currentKind() == token.Yield && p.scope.allowYield {
		return p.makeExpr(p.parseYieldExpression())
	}

	left := p.parseConditionalExpression()
	if _, ok := left.Expr.(*ast.ArrowFunctionLiteral); ok {
		return left
	}

	if op := p.currentKind(); token.IsAssign(op) {
		if !p.isAssignmentTarget(left, op == token.Assign) {
			p.errorf("Invalid left-hand side in assignment")
		}
		p.next()
		return p.makeExpr(&ast.AssignExpression{
			Operator: op,
			Left:     left,
			Right:    p.parseAssignmentExpression(),
		})
	}
	return left
}

// isAssignmentTarget reports whether e may appear on the left of an
// assignment. Literal patterns are only allowed with a plain =.
func (p *parser) isAssignmentTarget(e *ast.Expression, pattern bool) bool {
	switch n := e.Expr.(type) {
	case *ast.Identifier:
		return true
	case *ast.MemberExpression:
		return !n.Optional
	case *ast.ObjectLiteral, *ast.ArrayLiteral:
		return pattern
	case *ast.ParenthesizedExpression:
		return p.isAssignmentTarget(n.Expression, false)
	}
	return false
}

func (p *parser) parseYieldExpression() *ast.YieldExpression {
	node := &ast.YieldExpression{Yield: p.expect(token.Yield)}
	if p.token.OnNewLine {
		return node
	}
	if p.currentKind() == token.Multiply {
		node.Delegate = true
		p.next()
	}
	switch p.currentKind() {
	case token.RightParenthesis, token.RightBracket, token.RightBrace,
		token.Comma, token.Colon, token.Semicolon, token.Eof:
		if !node.Delegate {
			return node
		}
	}
	node.Argument = p.parseAssignmentExpression()
	return node
}

func (p *parser) parseConditionalExpression() *ast.Expression {
	left := p.parseBinaryExpressionOrHigher(PrecedenceLowest)
	if _, ok := left.Expr.(*ast.ArrowFunctionLiteral); ok {
		return left
	}

	if p.currentKind() != token.QuestionMark {
		return left
	}
	p.next()

	allowIn := p.scope.allowIn
	p.scope.allowIn = true
	consequent := p.parseAssignmentExpression()
	p.scope.allowIn = allowIn

	p.expect(token.Colon)
	return p.makeExpr(&ast.ConditionalExpression{
		Test:       left,
		Consequent: consequent,
		Alternate:  p.parseAssignmentExpression(),
	})
}

func (p *parser) parseBinaryExpressionOrHigher(minPrecedence Precedence) *ast.Expression {
	left := p.parseUnaryExpression()
	if _, ok := left.Expr.(*ast.ArrowFunctionLiteral); ok {
		return left
	}

	for {
		op := p.currentKind()
		if op == token.In && !p.scope.allowIn {
			return left
		}
		lbp := kindToPrecedence(op)
		if lbp == 0 || lbp <= minPrecedence {
			return left
		}
		p.next()
		right := p.parseBinaryExpressionOrHigher(lbp ^ 1)
		left = p.makeExpr(&ast.BinaryExpression{
			Operator: op,
			Left:     left,
			Right:    right,
		})
	}
}

func (p *parser) parseUnaryExpression() *ast.Expression {
	switch op := p.currentKind(); op {
	case token.Not, token.BitwiseNot, token.Plus, token.Minus,
		token.Typeof, token.Void, token.Delete:
		idx := p.currentOffset()
		p.next()
		return p.makeExpr(&ast.UnaryExpression{
			Operator: op,
			Idx:      idx,
			Operand:  p.parseUnaryExpression(),
		})
	case token.Increment, token.Decrement:
		idx := p.currentOffset()
		p.next()
		operand := p.parseUnaryExpression()
		if !p.isAssignmentTarget(operand, false) {
			p.errorAt(idx, "Invalid left-hand side in prefix operation")
		}
		return p.makeExpr(&ast.UpdateExpression{
			Operator: op,
			Idx:      idx,
			Operand:  operand,
		})
	case token.Await:
		if p.scope.allowAwait {
			idx := p.currentOffset()
			p.next()
			return p.makeExpr(&ast.AwaitExpression{
				Await:    idx,
				Argument: p.parseUnaryExpression(),
			})
		}
	}
	return p.parseUpdateExpression()
}

func (p *parser) parseUpdateExpression() *ast.Expression {
	operand := p.parseLeftHandSideExpressionAllowCall()
	switch op := p.currentKind(); op {
	case token.Increment, token.Decrement:
		if p.token.OnNewLine {
			return operand
		}
		if !p.isAssignmentTarget(operand, false) {
			p.errorf("Invalid left-hand side in postfix operation")
		}
		p.next()
		return p.makeExpr(&ast.UpdateExpression{
			Operator: op,
			Operand:  operand,
			Postfix:  true,
		})
	}
	return operand
}

func (p *parser) parseLeftHandSideExpressionAllowCall() *ast.Expression {
	var left *ast.Expression
	if p.currentKind() == token.New {
		left = p.parseNewExpression()
	} else {
		left = p.parsePrimaryExpression()
	}
	if _, ok := left.Expr.(*ast.ArrowFunctionLiteral); ok {
		return left
	}

	for {
		switch p.currentKind() {
		case token.Period:
			p.next()
			left = p.parseDotMember(left, false)
		case token.QuestionDot:
			p.next()
			switch p.currentKind() {
			case token.LeftParenthesis:
				left = p.parseCallExpression(left, true)
			case token.LeftBracket:
				left = p.parseBracketMember(left, true)
			default:
				left = p.parseDotMember(left, true)
			}
		case token.LeftBracket:
			left = p.parseBracketMember(left, false)
		case token.LeftParenthesis:
			left = p.parseCallExpression(left, false)
		case token.NoSubstitutionTemplate, token.TemplateHead:
			left = p.makeExpr(p.parseTemplateLiteral(left))
		default:
			return left
		}
	}
}

func (p *parser) parseDotMember(left *ast.Expression, optional bool) *ast.Expression {
	var property ast.Expr
	if p.currentKind() == token.PrivateIdentifier {
		property = &ast.PrivateIdentifier{Idx: p.currentOffset(), Name: p.currentString()}
		p.next()
	} else {
		property = p.parseIdentifierName()
	}
	return p.makeExpr(&ast.MemberExpression{
		Object:   left,
		Property: p.makeExpr(property),
		Optional: optional,
	})
}

func (p *parser) parseBracketMember(left *ast.Expression, optional bool) *ast.Expression {
	p.expect(token.LeftBracket)
	allowIn := p.scope.allowIn
	p.scope.allowIn = true
	property := p.parseExpression()
	p.scope.allowIn = allowIn
	return p.makeExpr(&ast.MemberExpression{
		Object:       left,
		Property:     property,
		Computed:     true,
		Optional:     optional,
		RightBracket: p.expect(token.RightBracket),
	})
}

func (p *parser) parseCallExpression(left *ast.Expression, optional bool) *ast.Expression {
	args, idx0, idx1 := p.parseArgumentList()
	return p.makeExpr(&ast.CallExpression{
		Callee:           left,
		LeftParenthesis:  idx0,
		ArgumentList:     args,
		RightParenthesis: idx1,
		Optional:         optional,
	})
}

func (p *parser) parseArgumentList() (argumentList ast.Expressions, idx0, idx1 ast.Idx) {
	allowIn := p.scope.allowIn
	p.scope.allowIn = true
	idx0 = p.expect(token.LeftParenthesis)
	for p.currentKind() != token.RightParenthesis && p.currentKind() != token.Eof {
		if p.currentKind() == token.Ellipsis {
			argumentList = append(argumentList, *p.makeExpr(p.parseSpreadElement()))
		} else {
			argumentList = append(argumentList, *p.parseAssignmentExpression())
		}
		if p.currentKind() != token.Comma {
			break
		}
		p.next()
	}
	p.scope.allowIn = allowIn
	idx1 = p.expect(token.RightParenthesis)
	return
}

func (p *parser) parseSpreadElement() *ast.SpreadElement {
	idx := p.expect(token.Ellipsis)
	return &ast.SpreadElement{
		Idx:        idx,
		Expression: p.parseAssignmentExpression(),
	}
}

func (p *parser) parseNewExpression() *ast.Expression {
	idx := p.expect(token.New)
	if p.currentKind() == token.Period {
		p.next()
		property := p.parseIdentifierName()
		if property.Name != "target" {
			p.errorAt(property.Idx, "Unexpected new."+property.Name)
		}
		return p.makeExpr(&ast.MetaProperty{
			Meta:     &ast.Identifier{Idx: idx, Name: "new"},
			Property: property,
		})
	}

	var callee *ast.Expression
	if p.currentKind() == token.New {
		callee = p.parseNewExpression()
	} else {
		callee = p.parsePrimaryExpression()
	}
	for {
		switch p.currentKind() {
		case token.Period:
			p.next()
			callee = p.parseDotMember(callee, false)
			continue
		case token.LeftBracket:
			callee = p.parseBracketMember(callee, false)
			continue
		case token.NoSubstitutionTemplate, token.TemplateHead:
			callee = p.makeExpr(p.parseTemplateLiteral(callee))
			continue
		}
		break
	}

	node := &ast.NewExpression{
		New:    idx,
		Callee: callee,
	}
	if p.currentKind() == token.LeftParenthesis {
		node.ArgumentList, node.LeftParenthesis, node.RightParenthesis = p.parseArgumentList()
	}
	return p.makeExpr(node)
}

func (p *parser) parsePrimaryExpression() *ast.Expression {
	idx := p.currentOffset()
	switch p.currentKind() {
	case token.This:
		p.next()
		return p.makeExpr(&ast.ThisExpression{Idx: idx})
	case token.Super:
		p.next()
		switch p.currentKind() {
		case token.Period, token.LeftBracket, token.LeftParenthesis:
		default:
			p.errorf("'super' keyword unexpected here")
		}
		return p.makeExpr(&ast.SuperExpression{Idx: idx})
	case token.Null:
		p.next()
		return p.makeExpr(&ast.NullLiteral{Idx: idx})
	case token.Boolean:
		value := p.currentString() == "true"
		p.next()
		return p.makeExpr(&ast.BooleanLiteral{Idx: idx, Value: value})
	case token.Number:
		raw := p.token.Raw(p.scanner)
		p.next()
		return p.makeExpr(&ast.NumberLiteral{Idx: idx, Raw: raw})
	case token.String:
		node := &ast.StringLiteral{
			Idx:   idx,
			Value: p.currentString(),
			Raw:   p.token.Raw(p.scanner),
		}
		p.next()
		return p.makeExpr(node)
	case token.Slash, token.QuotientAssign:
		pattern, flags := p.scanner.RescanRegExp()
		p.token = p.scanner.Token
		node := &ast.RegExpLiteral{
			Idx:     idx,
			Literal: p.token.Raw(p.scanner),
			Pattern: pattern,
			Flags:   flags,
		}
		p.next()
		return p.makeExpr(node)
	case token.NoSubstitutionTemplate, token.TemplateHead:
		return p.makeExpr(p.parseTemplateLiteral(nil))
	case token.LeftBracket:
		return p.makeExpr(p.parseArrayLiteral())
	case token.LeftBrace:
		return p.makeExpr(p.parseObjectLiteral())
	case token.LeftParenthesis:
		return p.parseParenthesisedExpression(idx, false)
	case token.Function:
		return p.makeExpr(p.parseFunction(false, false, idx))
	case token.Class:
		return p.makeExpr(p.parseClass(false))
	case token.Async:
		if expr := p.parseAsync(); expr != nil {
			return expr
		}
	case token.Less:
		return p.makeExpr(p.parseJSXElement())
	case token.Import:
		return p.parseImportExpression()
	case token.PrivateIdentifier:
		// #x in obj
		node := &ast.PrivateIdentifier{Idx: idx, Name: p.currentString()}
		p.next()
		if p.currentKind() != token.In {
			p.errorUnexpectedToken(p.currentKind())
		}
		return p.makeExpr(node)
	}

	if token.ID(p.currentKind()) {
		ident := p.parseIdentifier()
		if p.currentKind() == token.Arrow && !p.token.OnNewLine {
			return p.parseArrowFunction(idx, ast.ParameterList{
				Opening: ident.Idx,
				List:    ast.VariableDeclarators{{Target: p.makeExpr(ident)}},
				Closing: ident.Idx1() - 1,
			}, false)
		}
		return p.makeExpr(ident)
	}

	p.errorUnexpectedToken(p.currentKind())
	p.next()
	return p.makeExpr(&ast.InvalidExpression{From: idx, To: p.prevEnd})
}

// parseAsync parses async arrow functions and async function expressions.
// It returns nil when async is a plain identifier.
func (p *parser) parseAsync() *ast.Expression {
	start := p.currentOffset()
	next := p.peek()
	if next.OnNewLine {
		return nil
	}
	switch {
	case next.Kind == token.Function:
		p.next()
		return p.makeExpr(p.parseFunction(false, true, start))
	case next.Kind == token.LeftParenthesis:
		// async(...) is a call unless an arrow follows.
		st := p.mark()
		p.next()
		expr := p.parseParenthesisedExpression(p.currentOffset(), true)
		if arrow, ok := expr.Expr.(*ast.ArrowFunctionLiteral); ok {
			arrow.Start = start
			return expr
		}
		p.restore(st)
		return nil
	case token.ID(next.Kind):
		st := p.mark()
		p.next()
		ident := p.parseIdentifier()
		if p.currentKind() == token.Arrow && !p.token.OnNewLine {
			return p.parseArrowFunction(start, ast.ParameterList{
				Opening: ident.Idx,
				List:    ast.VariableDeclarators{{Target: p.makeExpr(ident)}},
				Closing: ident.Idx1() - 1,
			}, true)
		}
		p.restore(st)
	}
	return nil
}

// parseParenthesisedExpression parses a parenthesised expression or, when
// an arrow follows the closing parenthesis, the parameters and body of an
// arrow function. With asyncArrow set, a missing arrow is reported as a
// plain ParenthesizedExpression that the caller discards.
func (p *parser) parseParenthesisedExpression(start ast.Idx, asyncArrow bool) *ast.Expression {
	opening := p.expect(token.LeftParenthesis)

	allowIn := p.scope.allowIn
	p.scope.allowIn = true
	var list ast.Expressions
	trailingComma := false
	for p.currentKind() != token.RightParenthesis && p.currentKind() != token.Eof {
		trailingComma = false
		if p.currentKind() == token.Ellipsis {
			list = append(list, *p.makeExpr(p.parseSpreadElement()))
		} else {
			list = append(list, *p.parseAssignmentExpression())
		}
		if p.currentKind() != token.Comma {
			break
		}
		trailingComma = true
		p.next()
	}
	p.scope.allowIn = allowIn
	closing := p.expect(token.RightParenthesis)

	if p.currentKind() == token.Arrow && !p.token.OnNewLine {
		params := p.reinterpretAsArrowFuncParams(list)
		params.Opening = opening
		params.Closing = closing
		return p.parseArrowFunction(start, params, asyncArrow)
	}
	if asyncArrow {
		return p.makeExpr(&ast.ParenthesizedExpression{LeftParenthesis: opening, RightParenthesis: closing})
	}

	if len(list) == 0 || trailingComma {
		p.errorAt(closing, "Unexpected token )")
		return p.makeExpr(&ast.InvalidExpression{From: opening, To: closing + 1})
	}
	for _, item := range list {
		if _, ok := item.Expr.(*ast.SpreadElement); ok {
			p.errorAt(item.Idx0(), "Unexpected token ...")
		}
	}

	inner := &list[0]
	if len(list) > 1 {
		inner = p.makeExpr(&ast.SequenceExpression{Sequence: list})
	}
	return p.makeExpr(&ast.ParenthesizedExpression{
		LeftParenthesis:  opening,
		Expression:       inner,
		RightParenthesis: closing,
	})
}

func (p *parser) reinterpretAsArrowFuncParams(list ast.Expressions) ast.ParameterList {
	var params ast.ParameterList
	for i := range list {
		item := &list[i]
		switch n := item.Expr.(type) {
		case *ast.SpreadElement:
			if i != len(list)-1 {
				p.errorAt(n.Idx, "Rest parameter must be last formal parameter")
			}
			p.checkBindingTarget(n.Expression)
			params.Rest = n.Expression
		case *ast.AssignExpression:
			if n.Operator != token.Assign {
				p.errorAt(n.Idx0(), "Invalid destructuring assignment target")
			}
			p.checkBindingTarget(n.Left)
			params.List = append(params.List, ast.VariableDeclarator{Target: n.Left, Initializer: n.Right})
		default:
			p.checkBindingTarget(item)
			params.List = append(params.List, ast.VariableDeclarator{Target: item})
		}
	}
	return params
}

func (p *parser) checkBindingTarget(e *ast.Expression) {
	switch e.Expr.(type) {
	case *ast.Identifier, *ast.ObjectLiteral, *ast.ArrayLiteral:
		return
	}
	p.errorAt(e.Idx0(), "Invalid destructuring assignment target")
}

func (p *parser) parseArrowFunction(start ast.Idx, params ast.ParameterList, async bool) *ast.Expression {
	p.expect(token.Arrow)
	node := &ast.ArrowFunctionLiteral{
		Start:         start,
		ParameterList: params,
		Async:         async,
	}
	node.Body = p.parseArrowFunctionBody(async)
	return p.makeExpr(node)
}

func (p *parser) parseArrowFunctionBody(async bool) *ast.ConciseBody {
	if p.currentKind() == token.LeftBrace {
		return &ast.ConciseBody{Body: p.parseFunctionBlock(async, false)}
	}

	// The expression body keeps the enclosing yield context disabled but is
	// not a new statement context.
	allowAwait, allowYield := p.scope.allowAwait, p.scope.allowYield
	p.scope.allowAwait, p.scope.allowYield = async, false
	body := p.parseAssignmentExpression()
	p.scope.allowAwait, p.scope.allowYield = allowAwait, allowYield
	return &ast.ConciseBody{Body: body}
}

func (p *parser) parseBindingTarget() *ast.Expression {
	switch p.currentKind() {
	case token.LeftBracket:
		return p.makeExpr(p.parseArrayLiteral())
	case token.LeftBrace:
		return p.makeExpr(p.parseObjectLiteral())
	}
	return p.makeExpr(p.parseIdentifier())
}

func (p *parser) parseArrayLiteral() *ast.ArrayLiteral {
	node := &ast.ArrayLiteral{LeftBracket: p.expect(token.LeftBracket)}
	allowIn := p.scope.allowIn
	p.scope.allowIn = true
	for p.currentKind() != token.RightBracket && p.currentKind() != token.Eof {
		switch p.currentKind() {
		case token.Comma:
			// Hole.
			p.next()
			node.Value = append(node.Value, ast.Expression{})
			continue
		case token.Ellipsis:
			node.Value = append(node.Value, *p.makeExpr(p.parseSpreadElement()))
		default:
			node.Value = append(node.Value, *p.parseAssignmentExpression())
		}
		if p.currentKind() != token.RightBracket {
			p.expect(token.Comma)
		}
	}
	p.scope.allowIn = allowIn
	node.RightBracket = p.expect(token.RightBracket)
	return node
}

func (p *parser) parseObjectLiteral() *ast.ObjectLiteral {
	node := &ast.ObjectLiteral{LeftBrace: p.expect(token.LeftBrace)}
	allowIn := p.scope.allowIn
	p.scope.allowIn = true
	for p.currentKind() != token.RightBrace && p.currentKind() != token.Eof {
		start := p.currentOffset()
		node.Value = append(node.Value, p.parseObjectProperty())
		if p.currentKind() != token.RightBrace {
			p.expect(token.Comma)
		}
		if p.currentOffset() == start {
			p.next()
		}
	}
	p.scope.allowIn = allowIn
	node.RightBrace = p.expect(token.RightBrace)
	return node
}

// parsePropertyKey parses a property key of an object literal or a class.
// It returns the key, its static name if any and whether it is computed.
func (p *parser) parsePropertyKey() (*ast.Expression, string, bool) {
	idx := p.currentOffset()
	switch tok := p.currentKind(); {
	case tok == token.LeftBracket:
		p.next()
		allowIn := p.scope.allowIn
		p.scope.allowIn = true
		key := p.parseAssignmentExpression()
		p.scope.allowIn = allowIn
		p.expect(token.RightBracket)
		return key, "", true
	case tok == token.String:
		node := &ast.StringLiteral{Idx: idx, Value: p.currentString(), Raw: p.token.Raw(p.scanner)}
		p.next()
		return p.makeExpr(node), node.Value, false
	case tok == token.Number:
		node := &ast.NumberLiteral{Idx: idx, Raw: p.token.Raw(p.scanner)}
		p.next()
		return p.makeExpr(node), node.Raw, false
	case tok == token.PrivateIdentifier:
		if !p.scope.inClass {
			p.errorf("Private field must be declared in an enclosing class")
		}
		node := &ast.PrivateIdentifier{Idx: idx, Name: p.currentString()}
		p.next()
		return p.makeExpr(node), "#" + node.Name, false
	case token.IdentifierName(tok):
		node := p.parseIdentifierName()
		return p.makeExpr(node), node.Name, false
	}
	p.errorUnexpectedToken(p.currentKind())
	p.next()
	return p.makeExpr(&ast.InvalidExpression{From: idx, To: p.prevEnd}), "", false
}

// isPropertyKeyStart reports whether tok can start a property key, which
// tells a get/set/async/static modifier apart from a key of that name.
func isPropertyKeyStart(tok token.Token) bool {
	switch tok {
	case token.LeftBracket, token.String, token.Number, token.PrivateIdentifier, token.Multiply:
		return true
	}
	return token.IdentifierName(tok)
}

func (p *parser) parseObjectProperty() ast.Property {
	if p.currentKind() == token.Ellipsis {
		return ast.Property{Prop: p.parseSpreadElement()}
	}

	kind := ast.PropertyKindValue
	var async, generator bool
	if p.is("get") || p.is("set") || p.currentKind() == token.Async {
		if next := p.peek(); isPropertyKeyStart(next.Kind) && !(p.currentKind() == token.Async && next.OnNewLine) {
			switch {
			case p.is("get"):
				kind = ast.PropertyKindGet
			case p.is("set"):
				kind = ast.PropertyKindSet
			default:
				async = true
				kind = ast.PropertyKindMethod
			}
			p.next()
		}
	}
	if p.currentKind() == token.Multiply && (kind == ast.PropertyKindValue || async) {
		generator = true
		kind = ast.PropertyKindMethod
		p.next()
	}

	keyTok := p.currentKind()
	key, _, computed := p.parsePropertyKey()

	if kind == ast.PropertyKindValue && p.currentKind() == token.LeftParenthesis {
		kind = ast.PropertyKindMethod
	}
	if kind != ast.PropertyKindValue {
		return ast.Property{Prop: &ast.PropertyKeyed{
			Key:      key,
			Kind:     kind,
			Value:    p.makeExpr(p.parseMethodDefinition(kind, generator, async)),
			Computed: computed,
		}}
	}

	if p.currentKind() == token.Colon {
		p.next()
		return ast.Property{Prop: &ast.PropertyKeyed{
			Key:      key,
			Kind:     ast.PropertyKindValue,
			Value:    p.parseAssignmentExpression(),
			Computed: computed,
		}}
	}

	ident, ok := key.Expr.(*ast.Identifier)
	if !ok || computed || !token.ID(keyTok) {
		p.errorUnexpectedToken(p.currentKind())
		return ast.Property{Prop: &ast.PropertyKeyed{Key: key, Kind: ast.PropertyKindValue, Value: key}}
	}
	short := &ast.PropertyShort{Name: ident}
	if p.currentKind() == token.Assign {
		// Only valid in a destructuring target: {a = 1} = b.
		p.next()
		short.Initializer = p.parseAssignmentExpression()
	}
	return ast.Property{Prop: short}
}

// parseMethodDefinition parses the parameters and the body of an object or
// class method. The returned function starts at its parameter list.
func (p *parser) parseMethodDefinition(kind ast.PropertyKind, generator, async bool) *ast.FunctionLiteral {
	node := &ast.FunctionLiteral{
		Function:  p.currentOffset(),
		Async:     async,
		Generator: generator,
	}
	p.openFunctionScope(async, generator)
	node.ParameterList = p.parseFunctionParameterList()
	p.closeScope()

	switch kind {
	case ast.PropertyKindGet:
		if len(node.ParameterList.List) > 0 || node.ParameterList.Rest != nil {
			p.errorAt(node.ParameterList.Opening, "Getter must not have any formal parameters.")
		}
	case ast.PropertyKindSet:
		if len(node.ParameterList.List) != 1 || node.ParameterList.Rest != nil {
			p.errorAt(node.ParameterList.Opening, "Setter must have exactly one formal parameter.")
		}
	}

	node.Body = p.parseFunctionBlock(async, generator)
	return node
}

func (p *parser) parseTemplateLiteral(tag *ast.Expression) *ast.TemplateLiteral {
	node := &ast.TemplateLiteral{
		OpenQuote: p.currentOffset(),
		Tag:       tag,
	}
	for {
		node.Elements = append(node.Elements, ast.TemplateElement{
			Idx:     p.token.Idx0 + 1,
			Literal: p.token.TemplateLiteral(p.scanner),
		})
		switch p.currentKind() {
		case token.NoSubstitutionTemplate, token.TemplateTail:
			node.CloseQuote = p.token.Idx1 - 1
			p.next()
			return node
		case token.TemplateHead, token.TemplateMiddle:
		default:
			p.errorUnexpectedToken(p.currentKind())
			node.CloseQuote = p.token.Idx0
			return node
		}
		p.next()

		allowIn := p.scope.allowIn
		p.scope.allowIn = true
		node.Expressions = append(node.Expressions, *p.parseExpression())
		p.scope.allowIn = allowIn

		if p.currentKind() != token.RightBrace {
			p.errorUnexpectedToken(p.currentKind())
			node.CloseQuote = p.token.Idx0
			return node
		}
		p.scanner.RescanTemplateContinuation()
		p.token = p.scanner.Token
	}
}

// parseImportExpression parses import(...) and import.meta.
func (p *parser) parseImportExpression() *ast.Expression {
	idx := p.expect(token.Import)
	meta := &ast.Identifier{Idx: idx, Name: "import"}
	if p.currentKind() == token.Period {
		p.next()
		property := p.parseIdentifierName()
		if property.Name != "meta" {
			p.errorAt(property.Idx, "The only valid meta property for import is 'import.meta'")
		}
		return p.makeExpr(&ast.MetaProperty{Meta: meta, Property: property})
	}
	if p.currentKind() != token.LeftParenthesis {
		p.errorUnexpectedToken(p.currentKind())
	}
	return p.makeExpr(meta)
}
