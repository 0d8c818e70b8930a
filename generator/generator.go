package generator

import (
	"strings"

	"github.com/t14raptor/autobind/ast"
	"github.com/t14raptor/autobind/token"
)

// Options control how a tree is printed.
type Options struct {
	// ArrowParensAlways wraps a single plain arrow parameter in parentheses.
	ArrowParensAlways bool
	// Indent is one level of indentation. Defaults to four spaces.
	Indent string
	// Source is the text the tree was parsed from. When set, statements and
	// class members that no edit touches are copied from it unchanged.
	Source string
	// Edits are the source ranges a transform changed.
	Edits []ast.Span
}

// Generate prints node with the default options.
func Generate(node ast.Node) string {
	return GenerateWithOptions(node, Options{})
}

func GenerateWithOptions(node ast.Node, opts Options) string {
	if opts.Indent == "" {
		opts.Indent = "    "
	}
	s := &state{
		out:  &strings.Builder{},
		opts: &opts,
		node: node,
	}
	s.parent = &state{opts: s.opts}
	gen(s)
	return s.out.String()
}

func gen(s *state) {
	switch n := s.node.(type) {
	case nil:
	case *ast.Program:
		s.genStatementList(n.Body, true)
		for i, c := range n.Dangling {
			if i > 0 || len(n.Body) > 0 {
				s.line()
			}
			s.out.WriteString(c.Text)
		}
		if len(n.Body) > 0 || len(n.Dangling) > 0 {
			s.line()
		}

	// Expressions

	case *ast.Expression:
		gen(s.wrap(n.Expr))
	case *ast.ArrayLiteral:
		s.out.WriteString("[")
		for i, ex := range n.Value {
			if i > 0 {
				s.out.WriteString(", ")
			}
			gen(s.wrap(ex.Expr))
		}
		if l := len(n.Value); l > 0 && n.Value[l-1].Expr == nil {
			// A trailing hole needs its own comma.
			s.out.WriteString(",")
		}
		s.out.WriteString("]")
	case *ast.ArrowFunctionLiteral:
		if n.Async {
			s.out.WriteString("async ")
		}
		s.genParams(&n.ParameterList, true)
		s.out.WriteString(" => ")
		if body, ok := n.Body.Body.(*ast.Expression); ok {
			if _, obj := body.Expr.(*ast.ObjectLiteral); obj {
				s.out.WriteString("(")
				gen(s.wrap(body.Expr))
				s.out.WriteString(")")
				return
			}
		}
		gen(s.wrap(n.Body.Body))
	case *ast.AssignExpression:
		gen(s.wrap(n.Left.Expr))
		s.out.WriteString(" " + n.Operator.String() + " ")
		gen(s.wrap(n.Right.Expr))
	case *ast.AwaitExpression:
		s.out.WriteString("await ")
		gen(s.wrap(n.Argument.Expr))
	case *ast.BinaryExpression:
		gen(s.wrap(n.Left.Expr))
		s.out.WriteString(" " + n.Operator.String() + " ")
		gen(s.wrap(n.Right.Expr))
	case *ast.BooleanLiteral:
		if n.Value {
			s.out.WriteString("true")
		} else {
			s.out.WriteString("false")
		}
	case *ast.CallExpression:
		gen(s.wrap(n.Callee.Expr))
		if n.Optional {
			s.out.WriteString("?.")
		}
		s.genArguments(n.ArgumentList)
	case *ast.ClassLiteral:
		s.out.WriteString("class")
		if n.Name != nil {
			s.out.WriteString(" " + n.Name.Name)
		}
		if n.SuperClass != nil {
			s.out.WriteString(" extends ")
			gen(s.wrap(n.SuperClass.Expr))
		}
		s.out.WriteString(" {")
		if len(n.Body) == 0 && len(n.Dangling) == 0 {
			s.out.WriteString("}")
			return
		}
		s.indent++
		s.genClassElements(n.Body)
		s.genDangling(n.Dangling)
		s.indent--
		s.lineAndPad()
		s.out.WriteString("}")
	case *ast.ConditionalExpression:
		gen(s.wrap(n.Test.Expr))
		s.out.WriteString(" ? ")
		gen(s.wrap(n.Consequent.Expr))
		s.out.WriteString(" : ")
		gen(s.wrap(n.Alternate.Expr))
	case *ast.FunctionLiteral:
		if n.Async {
			s.out.WriteString("async ")
		}
		s.out.WriteString("function")
		if n.Generator {
			s.out.WriteString("*")
		}
		if n.Name != nil {
			s.out.WriteString(" " + n.Name.Name)
		}
		s.genParams(&n.ParameterList, false)
		s.out.WriteString(" ")
		gen(s.wrap(n.Body))
	case *ast.Identifier:
		s.out.WriteString(n.Name)
	case *ast.PrivateIdentifier:
		s.out.WriteString("#" + n.Name)
	case *ast.InvalidExpression:
		s.source(n)
	case *ast.MemberExpression:
		gen(s.wrap(n.Object.Expr))
		switch {
		case n.Computed:
			if n.Optional {
				s.out.WriteString("?.")
			}
			s.out.WriteString("[")
			gen(s.wrap(n.Property.Expr))
			s.out.WriteString("]")
		case n.Optional:
			s.out.WriteString("?.")
			gen(s.wrap(n.Property.Expr))
		default:
			s.out.WriteString(".")
			gen(s.wrap(n.Property.Expr))
		}
	case *ast.MetaProperty:
		s.out.WriteString(n.Meta.Name + "." + n.Property.Name)
	case *ast.NewExpression:
		s.out.WriteString("new ")
		gen(s.wrap(n.Callee.Expr))
		if n.RightParenthesis > 0 || len(n.ArgumentList) > 0 {
			s.genArguments(n.ArgumentList)
		}
	case *ast.NullLiteral:
		s.out.WriteString("null")
	case *ast.NumberLiteral:
		s.out.WriteString(n.Raw)
	case *ast.ObjectLiteral:
		s.genObject(n)
	case *ast.ParenthesizedExpression:
		s.out.WriteString("(")
		gen(s.wrap(n.Expression.Expr))
		s.out.WriteString(")")
	case *ast.RegExpLiteral:
		s.out.WriteString(n.Literal)
	case *ast.SequenceExpression:
		for i, ex := range n.Sequence {
			if i > 0 {
				s.out.WriteString(", ")
			}
			gen(s.wrap(ex.Expr))
		}
	case *ast.SpreadElement:
		s.out.WriteString("...")
		gen(s.wrap(n.Expression.Expr))
	case *ast.StringLiteral:
		s.out.WriteString(n.Raw)
	case *ast.SuperExpression:
		s.out.WriteString("super")
	case *ast.TemplateLiteral:
		if n.Tag != nil {
			gen(s.wrap(n.Tag.Expr))
		}
		s.out.WriteString("`")
		for i, el := range n.Elements {
			s.out.WriteString(el.Literal)
			if i < len(n.Expressions) {
				s.out.WriteString("${")
				gen(s.wrap(n.Expressions[i].Expr))
				s.out.WriteString("}")
			}
		}
		s.out.WriteString("`")
	case *ast.ThisExpression:
		s.out.WriteString("this")
	case *ast.UnaryExpression:
		s.out.WriteString(n.Operator.String())
		if token.IsKeywordOperator(n.Operator) || needsOperatorSpace(n.Operator, n.Operand) {
			s.out.WriteString(" ")
		}
		gen(s.wrap(n.Operand.Expr))
	case *ast.UpdateExpression:
		if n.Postfix {
			gen(s.wrap(n.Operand.Expr))
			s.out.WriteString(n.Operator.String())
			return
		}
		s.out.WriteString(n.Operator.String())
		if needsOperatorSpace(n.Operator, n.Operand) {
			s.out.WriteString(" ")
		}
		gen(s.wrap(n.Operand.Expr))
	case *ast.YieldExpression:
		s.out.WriteString("yield")
		if n.Delegate {
			s.out.WriteString("*")
		}
		if n.Argument != nil {
			s.out.WriteString(" ")
			gen(s.wrap(n.Argument.Expr))
		}
	case *ast.JSXElement:
		s.genJSX(n)
	case *ast.JSXExpressionContainer:
		s.out.WriteString("{")
		if n.Expression != nil {
			gen(s.wrap(n.Expression.Expr))
		}
		s.out.WriteString("}")
	case *ast.JSXText:
		s.out.WriteString(n.Raw)

	// Statements

	case *ast.Statement:
		gen(s.wrap(n.Stmt))
	case *ast.BadStatement:
		s.source(n)
	case *ast.BlockStatement:
		s.out.WriteString("{")
		if len(n.List) == 0 && len(n.Dangling) == 0 {
			s.out.WriteString("}")
			return
		}
		s.indent++
		s.genStatementList(n.List, false)
		s.genDangling(n.Dangling)
		s.indent--
		s.lineAndPad()
		s.out.WriteString("}")
	case *ast.BreakStatement:
		s.out.WriteString("break")
		if n.Label != nil {
			s.out.WriteString(" " + n.Label.Name)
		}
		s.out.WriteString(";")
	case *ast.ContinueStatement:
		s.out.WriteString("continue")
		if n.Label != nil {
			s.out.WriteString(" " + n.Label.Name)
		}
		s.out.WriteString(";")
	case *ast.DebuggerStatement:
		s.out.WriteString("debugger;")
	case *ast.DoWhileStatement:
		s.out.WriteString("do ")
		s.genBody(n.Body)
		if _, ok := n.Body.Stmt.(*ast.BlockStatement); ok {
			s.out.WriteString(" ")
		} else {
			s.lineAndPad()
		}
		s.out.WriteString("while (")
		gen(s.wrap(n.Test.Expr))
		s.out.WriteString(");")
	case *ast.EmptyStatement:
		s.out.WriteString(";")
	case *ast.ExpressionStatement:
		gen(s.wrap(n.Expression.Expr))
		s.out.WriteString(";")
	case *ast.ForInStatement:
		s.out.WriteString("for (")
		s.genForInto(n.Into)
		s.out.WriteString(" in ")
		gen(s.wrap(n.Source.Expr))
		s.out.WriteString(") ")
		s.genBody(n.Body)
	case *ast.ForOfStatement:
		s.out.WriteString("for ")
		if n.Await {
			s.out.WriteString("await ")
		}
		s.out.WriteString("(")
		s.genForInto(n.Into)
		s.out.WriteString(" of ")
		gen(s.wrap(n.Source.Expr))
		s.out.WriteString(") ")
		s.genBody(n.Body)
	case *ast.ForStatement:
		s.out.WriteString("for (")
		if n.Initializer != nil {
			switch init := n.Initializer.Initializer.(type) {
			case *ast.VariableDeclaration:
				s.genDeclarationHead(init)
			case *ast.Expression:
				gen(s.wrap(init.Expr))
			}
		}
		s.out.WriteString(";")
		if n.Test != nil {
			s.out.WriteString(" ")
			gen(s.wrap(n.Test.Expr))
		}
		s.out.WriteString(";")
		if n.Update != nil {
			s.out.WriteString(" ")
			gen(s.wrap(n.Update.Expr))
		}
		s.out.WriteString(") ")
		s.genBody(n.Body)
	case *ast.IfStatement:
		s.out.WriteString("if (")
		gen(s.wrap(n.Test.Expr))
		s.out.WriteString(") ")
		s.genBody(n.Consequent)
		if n.Alternate != nil {
			if _, ok := n.Consequent.Stmt.(*ast.BlockStatement); ok {
				s.out.WriteString(" ")
			} else {
				s.lineAndPad()
			}
			s.out.WriteString("else ")
			s.genBody(n.Alternate)
		}
	case *ast.LabelledStatement:
		s.out.WriteString(n.Label.Name + ": ")
		s.genBody(n.Statement)
	case *ast.ReturnStatement:
		s.out.WriteString("return")
		if n.Argument != nil {
			s.out.WriteString(" ")
			gen(s.wrap(n.Argument.Expr))
		}
		s.out.WriteString(";")
	case *ast.SwitchStatement:
		s.out.WriteString("switch (")
		gen(s.wrap(n.Discriminant.Expr))
		s.out.WriteString(") {")
		s.indent++
		for i := range n.Body {
			s.lineAndPad()
			gen(s.wrap(&n.Body[i]))
		}
		s.indent--
		s.lineAndPad()
		s.out.WriteString("}")
	case *ast.CaseStatement:
		if n.Test != nil {
			s.out.WriteString("case ")
			gen(s.wrap(n.Test.Expr))
			s.out.WriteString(":")
		} else {
			s.out.WriteString("default:")
		}
		s.indent++
		s.genStatementList(n.Consequent, false)
		s.indent--
	case *ast.ThrowStatement:
		s.out.WriteString("throw ")
		gen(s.wrap(n.Argument.Expr))
		s.out.WriteString(";")
	case *ast.TryStatement:
		s.out.WriteString("try ")
		gen(s.wrap(n.Body))
		if n.Catch != nil {
			s.out.WriteString(" ")
			gen(s.wrap(n.Catch))
		}
		if n.Finally != nil {
			s.out.WriteString(" finally ")
			gen(s.wrap(n.Finally))
		}
	case *ast.CatchStatement:
		s.out.WriteString("catch ")
		if n.Parameter != nil {
			s.out.WriteString("(")
			gen(s.wrap(n.Parameter.Expr))
			s.out.WriteString(") ")
		}
		gen(s.wrap(n.Body))
	case *ast.WhileStatement:
		s.out.WriteString("while (")
		gen(s.wrap(n.Test.Expr))
		s.out.WriteString(") ")
		s.genBody(n.Body)
	case *ast.WithStatement:
		s.out.WriteString("with (")
		gen(s.wrap(n.Object.Expr))
		s.out.WriteString(") ")
		s.genBody(n.Body)
	case *ast.VariableDeclaration:
		s.genDeclarationHead(n)
		s.out.WriteString(";")
	case *ast.FunctionDeclaration:
		gen(s.wrap(n.Function))
	case *ast.ClassDeclaration:
		gen(s.wrap(n.Class))
	case *ast.ImportDeclaration:
		s.out.WriteString(n.Raw + ";")
	case *ast.ExportDeclaration:
		switch {
		case n.Declaration != nil:
			s.out.WriteString("export ")
			if n.Default {
				s.out.WriteString("default ")
			}
			gen(s.wrap(n.Declaration.Stmt))
		case n.Expression != nil:
			s.out.WriteString("export default ")
			gen(s.wrap(n.Expression.Expr))
			s.out.WriteString(";")
		default:
			s.out.WriteString(n.Raw + ";")
		}

	// Class members

	case *ast.MethodDefinition:
		if n.Static {
			s.out.WriteString("static ")
		}
		s.genMethod(n.Key, n.Computed, n.Kind, n.Body)
	case *ast.FieldDefinition:
		if n.Static {
			s.out.WriteString("static ")
		}
		s.genKey(n.Key, n.Computed)
		if n.Initializer != nil {
			s.out.WriteString(" = ")
			gen(s.wrap(n.Initializer.Expr))
		}
		s.out.WriteString(";")
	case *ast.ClassStaticBlock:
		s.out.WriteString("static ")
		gen(s.wrap(n.Block))
	}
}

// source writes the original text of a node the parser could not make
// sense of.
func (s *state) source(n ast.Node) {
	span := ast.SpanOf(n)
	if span.Valid() && int(span.To) <= len(s.opts.Source) {
		s.out.WriteString(s.opts.Source[span.From:span.To])
	}
}

func needsOperatorSpace(op token.Token, operand *ast.Expression) bool {
	var next token.Token
	switch n := operand.Expr.(type) {
	case *ast.UnaryExpression:
		next = n.Operator
	case *ast.UpdateExpression:
		if n.Postfix {
			return false
		}
		next = n.Operator
	default:
		return false
	}
	plus := func(t token.Token) bool { return t == token.Plus || t == token.Increment }
	minus := func(t token.Token) bool { return t == token.Minus || t == token.Decrement }
	return plus(op) && plus(next) || minus(op) && minus(next)
}

// genBody prints the body of a compound statement. Blocks stay on the same
// line; anything else goes on its own indented line.
func (s *state) genBody(st *ast.Statement) {
	if _, ok := st.Stmt.(*ast.BlockStatement); ok {
		gen(s.wrap(st.Stmt))
		return
	}
	if _, ok := st.Stmt.(*ast.EmptyStatement); ok {
		s.out.WriteString(";")
		return
	}
	s.indent++
	s.lineAndPad()
	s.genComments(st.Comments.Leading)
	gen(s.wrap(st.Stmt))
	s.genTrailing(st.Comments.Trailing)
	s.indent--
}

func (s *state) genDeclarationHead(n *ast.VariableDeclaration) {
	s.out.WriteString(n.Token.String() + " ")
	for i := range n.List {
		if i > 0 {
			s.out.WriteString(", ")
		}
		s.genDeclarator(&n.List[i])
	}
}

func (s *state) genDeclarator(d *ast.VariableDeclarator) {
	gen(s.wrap(d.Target.Expr))
	if d.Initializer != nil {
		s.out.WriteString(" = ")
		gen(s.wrap(d.Initializer.Expr))
	}
}

func (s *state) genForInto(into *ast.ForInto) {
	switch n := into.Into.(type) {
	case *ast.VariableDeclaration:
		s.genDeclarationHead(n)
	case *ast.Expression:
		gen(s.wrap(n.Expr))
	}
}

func (s *state) genArguments(args ast.Expressions) {
	s.out.WriteString("(")
	for i, a := range args {
		if i > 0 {
			s.out.WriteString(", ")
		}
		gen(s.wrap(a.Expr))
	}
	s.out.WriteString(")")
}

// genParams prints a parameter list. A single plain arrow parameter is
// printed bare unless ArrowParensAlways is set.
func (s *state) genParams(pl *ast.ParameterList, arrow bool) {
	bare := arrow && !s.opts.ArrowParensAlways && pl.Simple()
	if !bare {
		s.out.WriteString("(")
	}
	for i := range pl.List {
		if i > 0 {
			s.out.WriteString(", ")
		}
		s.genDeclarator(&pl.List[i])
	}
	if pl.Rest != nil {
		if len(pl.List) > 0 {
			s.out.WriteString(", ")
		}
		s.out.WriteString("...")
		gen(s.wrap(pl.Rest.Expr))
	}
	if !bare {
		s.out.WriteString(")")
	}
}

func (s *state) genKey(key *ast.Expression, computed bool) {
	if computed {
		s.out.WriteString("[")
		gen(s.wrap(key.Expr))
		s.out.WriteString("]")
		return
	}
	gen(s.wrap(key.Expr))
}

// genMethod prints the part of a method shared by classes and object
// literals: modifiers, key, parameters and body.
func (s *state) genMethod(key *ast.Expression, computed bool, kind ast.PropertyKind, fn *ast.FunctionLiteral) {
	switch kind {
	case ast.PropertyKindGet:
		s.out.WriteString("get ")
	case ast.PropertyKindSet:
		s.out.WriteString("set ")
	default:
		if fn.Async {
			s.out.WriteString("async ")
		}
		if fn.Generator {
			s.out.WriteString("*")
		}
	}
	s.genKey(key, computed)
	s.genParams(&fn.ParameterList, false)
	s.out.WriteString(" ")
	gen(s.wrap(fn.Body))
}

func (s *state) genObject(n *ast.ObjectLiteral) {
	if len(n.Value) == 0 {
		s.out.WriteString("{}")
		return
	}
	if !multiline(n) {
		s.out.WriteString("{ ")
		for i := range n.Value {
			if i > 0 {
				s.out.WriteString(", ")
			}
			s.genProperty(&n.Value[i])
		}
		s.out.WriteString(" }")
		return
	}
	s.out.WriteString("{")
	s.indent++
	for i := range n.Value {
		s.lineAndPad()
		s.genProperty(&n.Value[i])
		if i < len(n.Value)-1 {
			s.out.WriteString(",")
		}
	}
	s.indent--
	s.lineAndPad()
	s.out.WriteString("}")
}

// multiline reports whether an object literal holds functions, which read
// better one property per line.
func multiline(n *ast.ObjectLiteral) bool {
	for _, prop := range n.Value {
		keyed, ok := prop.Prop.(*ast.PropertyKeyed)
		if !ok {
			continue
		}
		if keyed.Kind != ast.PropertyKindValue {
			return true
		}
		switch v := keyed.Value.Expr.(type) {
		case *ast.FunctionLiteral, *ast.ClassLiteral:
			return true
		case *ast.ArrowFunctionLiteral:
			if _, block := v.Body.Body.(*ast.BlockStatement); block {
				return true
			}
		}
	}
	return false
}

func (s *state) genProperty(prop *ast.Property) {
	switch p := prop.Prop.(type) {
	case *ast.PropertyShort:
		s.out.WriteString(p.Name.Name)
		if p.Initializer != nil {
			s.out.WriteString(" = ")
			gen(s.wrap(p.Initializer.Expr))
		}
	case *ast.PropertyKeyed:
		if fn, ok := p.Value.Expr.(*ast.FunctionLiteral); ok && p.Kind != ast.PropertyKindValue {
			s.genMethod(p.Key, p.Computed, p.Kind, fn)
			return
		}
		s.genKey(p.Key, p.Computed)
		s.out.WriteString(": ")
		gen(s.wrap(p.Value.Expr))
	case *ast.SpreadElement:
		gen(s.wrap(p))
	}
}

func (s *state) genJSX(n *ast.JSXElement) {
	s.out.WriteString("<" + n.Name)
	for _, attr := range n.Attributes {
		s.out.WriteString(" ")
		if attr.Spread {
			s.out.WriteString("{...")
			gen(s.wrap(attr.Value.Expr))
			s.out.WriteString("}")
			continue
		}
		s.out.WriteString(attr.Name)
		if attr.Value != nil {
			s.out.WriteString("=")
			gen(s.wrap(attr.Value.Expr))
		}
	}
	if n.SelfClosing {
		s.out.WriteString(" />")
		return
	}
	s.out.WriteString(">")
	for _, child := range n.Children {
		gen(s.wrap(child.Expr))
	}
	s.out.WriteString("</" + n.Name + ">")
}

// genStatementList prints each statement on its own line, copying untouched
// statements from the source.
func (s *state) genStatementList(list ast.Statements, top bool) {
	var prevEnd ast.Idx
	for i := range list {
		st := &list[i]
		if st.Stmt == nil {
			continue
		}
		start := st.Idx0()
		if len(st.Comments.Leading) > 0 {
			start = st.Comments.Leading[0].Start
		}
		if i > 0 && s.blankLineBefore(prevEnd, start) {
			s.line()
		}
		if !top || i > 0 {
			s.lineAndPad()
		}
		s.genComments(st.Comments.Leading)
		if !s.verbatim(st.Stmt) {
			gen(s.wrap(st.Stmt))
		}
		s.genTrailing(st.Comments.Trailing)

		prevEnd = st.Idx1()
		if t := st.Comments.Trailing; len(t) > 0 {
			prevEnd = t[len(t)-1].End
		}
	}
}

func (s *state) genClassElements(list ast.ClassElements) {
	var prevEnd ast.Idx
	for i := range list {
		el := list[i].Element
		if el == nil {
			continue
		}
		comments := elementComments(el)
		start := el.Idx0()
		if len(comments.Leading) > 0 {
			start = comments.Leading[0].Start
		}
		if i > 0 && s.blankLineBefore(prevEnd, start) {
			s.line()
		}
		s.lineAndPad()
		s.genComments(comments.Leading)
		if !s.verbatim(el) {
			gen(s.wrap(el))
		}
		s.genTrailing(comments.Trailing)

		prevEnd = el.Idx1()
		if t := comments.Trailing; len(t) > 0 {
			prevEnd = t[len(t)-1].End
		}
	}
}

func elementComments(el ast.Element) ast.Comments {
	switch n := el.(type) {
	case *ast.MethodDefinition:
		return n.Comments
	case *ast.FieldDefinition:
		return n.Comments
	case *ast.ClassStaticBlock:
		return n.Comments
	}
	return ast.Comments{}
}

// genComments prints leading comments, each on its own line.
func (s *state) genComments(comments []ast.Comment) {
	for _, c := range comments {
		s.out.WriteString(c.Text)
		s.lineAndPad()
	}
}

func (s *state) genTrailing(comments []ast.Comment) {
	for _, c := range comments {
		s.out.WriteString(" " + c.Text)
	}
}

func (s *state) genDangling(comments []ast.Comment) {
	for _, c := range comments {
		s.lineAndPad()
		s.out.WriteString(c.Text)
	}
}
