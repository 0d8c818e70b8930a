package parser_test

import (
	"strings"
	"testing"

	"github.com/t14raptor/autobind/ast"
	"github.com/t14raptor/autobind/generator"
	"github.com/t14raptor/autobind/parser"
	"github.com/t14raptor/autobind/token"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// mustParse parses code and fails the test if there's an error.
func mustParse(t *testing.T, code string) *ast.Program {
	t.Helper()
	p, err := parser.ParseFile(code)
	if err != nil {
		t.Fatalf("Failed to parse:\n%s\nError: %v", code, err)
	}
	return p
}

// roundTrip parses code, regenerates it, and returns the output.
func roundTrip(t *testing.T, code string) string {
	t.Helper()
	p := mustParse(t, code)
	return strings.TrimSpace(generator.Generate(p))
}

// assertRoundTrip parses code, regenerates it, and checks that the output
// matches the expected string once newlines and indentation are removed.
func assertRoundTrip(t *testing.T, code, want string) {
	t.Helper()
	got := roundTrip(t, code)
	got = strings.ReplaceAll(strings.ReplaceAll(got, "\n", ""), "    ", "")
	if got != want {
		t.Errorf("roundTrip(%q)\n  got:  %s\n  want: %s", code, got, want)
	}
}

// firstStmt returns the concrete statement node from the i-th top-level statement.
func firstStmt(p *ast.Program, i int) ast.Stmt {
	return p.Body[i].Stmt
}

// exprOf extracts the inner concrete expression from an ExpressionStatement.
func exprOf(s ast.Stmt) ast.Expr {
	return s.(*ast.ExpressionStatement).Expression.Expr
}

// initializerExpr extracts the initializer expression from the first
// VariableDeclarator of a VariableDeclaration statement.
func initializerExpr(s ast.Stmt) ast.Expr {
	init := s.(*ast.VariableDeclaration).List[0].Initializer
	if init == nil {
		return nil
	}
	return init.Expr
}

// classOf extracts the class of a ClassDeclaration statement.
func classOf(s ast.Stmt) *ast.ClassLiteral {
	return s.(*ast.ClassDeclaration).Class
}

// ===========================================================================
// AST STRUCTURE VERIFICATION TESTS
// ===========================================================================

func TestArrayLiteralElisionsAST(t *testing.T) {
	p := mustParse(t, "var a = [1,,2,,3]")
	arr := initializerExpr(firstStmt(p, 0)).(*ast.ArrayLiteral)

	if got := len(arr.Value); got != 5 {
		t.Fatalf("array length = %d; want 5", got)
	}
	// Positions 1 and 3 should be elisions (Expression with nil Expr).
	for _, i := range []int{1, 3} {
		if arr.Value[i].Expr != nil {
			t.Errorf("arr[%d] = %T; want elision", i, arr.Value[i].Expr)
		}
	}
	for _, i := range []int{0, 2, 4} {
		if _, ok := arr.Value[i].Expr.(*ast.NumberLiteral); !ok {
			t.Errorf("arr[%d] = %T; want *ast.NumberLiteral", i, arr.Value[i].Expr)
		}
	}
}

func TestArgumentListSpreadAST(t *testing.T) {
	p := mustParse(t, "f(1, ...args)")
	call := exprOf(firstStmt(p, 0)).(*ast.CallExpression)

	if got := len(call.ArgumentList); got != 2 {
		t.Fatalf("arg count = %d; want 2", got)
	}
	if _, ok := call.ArgumentList[1].Expr.(*ast.SpreadElement); !ok {
		t.Errorf("arg[1] = %T; want *ast.SpreadElement", call.ArgumentList[1].Expr)
	}
}

func TestSequenceExpressionAST(t *testing.T) {
	p := mustParse(t, "(1, 2, 3)")
	paren := exprOf(firstStmt(p, 0)).(*ast.ParenthesizedExpression)
	seq := paren.Expression.Expr.(*ast.SequenceExpression)

	if got := len(seq.Sequence); got != 3 {
		t.Fatalf("sequence length = %d; want 3", got)
	}
}

func TestTemplateLiteralAST(t *testing.T) {
	p := mustParse(t, "`a${b}c${d}e`")
	tpl := exprOf(firstStmt(p, 0)).(*ast.TemplateLiteral)

	if got := len(tpl.Elements); got != 3 {
		t.Fatalf("element count = %d; want 3", got)
	}
	if got := len(tpl.Expressions); got != 2 {
		t.Fatalf("expression count = %d; want 2", got)
	}
	for i, want := range []string{"a", "c", "e"} {
		if got := tpl.Elements[i].Literal; got != want {
			t.Errorf("element[%d] = %q; want %q", i, got, want)
		}
	}
}

func TestRegExpAST(t *testing.T) {
	p := mustParse(t, "x = /a[/]b/gi")
	assign := exprOf(firstStmt(p, 0)).(*ast.AssignExpression)
	re := assign.Right.Expr.(*ast.RegExpLiteral)

	if re.Pattern != "a[/]b" {
		t.Errorf("pattern = %q; want %q", re.Pattern, "a[/]b")
	}
	if re.Flags != "gi" {
		t.Errorf("flags = %q; want %q", re.Flags, "gi")
	}
}

func TestDivisionIsNotRegExp(t *testing.T) {
	p := mustParse(t, "a = b / c / d")
	assign := exprOf(firstStmt(p, 0)).(*ast.AssignExpression)
	bin := assign.Right.Expr.(*ast.BinaryExpression)

	if bin.Operator != token.Slash {
		t.Fatalf("operator = %v; want /", bin.Operator)
	}
	// Left associative: (b / c) / d.
	if _, ok := bin.Left.Expr.(*ast.BinaryExpression); !ok {
		t.Errorf("left = %T; want *ast.BinaryExpression", bin.Left.Expr)
	}
}

func TestExponentIsRightAssociative(t *testing.T) {
	p := mustParse(t, "a ** b ** c")
	bin := exprOf(firstStmt(p, 0)).(*ast.BinaryExpression)

	if _, ok := bin.Right.Expr.(*ast.BinaryExpression); !ok {
		t.Errorf("right = %T; want *ast.BinaryExpression", bin.Right.Expr)
	}
}

func TestArrowFunctionAST(t *testing.T) {
	tests := []struct {
		code   string
		params int
		rest   bool
		async  bool
		block  bool
	}{
		{"x => x", 1, false, false, false},
		{"(a, b) => { return a }", 2, false, false, true},
		{"(a, ...b) => a", 1, true, false, false},
		{"async x => x", 1, false, true, false},
		{"async (a, b = 1) => {}", 2, false, true, true},
		{"() => {}", 0, false, false, true},
	}

	for _, tt := range tests {
		p := mustParse(t, tt.code)
		arrow, ok := exprOf(firstStmt(p, 0)).(*ast.ArrowFunctionLiteral)
		if !ok {
			t.Errorf("%q: got %T; want *ast.ArrowFunctionLiteral", tt.code, exprOf(firstStmt(p, 0)))
			continue
		}
		if got := len(arrow.ParameterList.List); got != tt.params {
			t.Errorf("%q: params = %d; want %d", tt.code, got, tt.params)
		}
		if got := arrow.ParameterList.Rest != nil; got != tt.rest {
			t.Errorf("%q: rest = %v; want %v", tt.code, got, tt.rest)
		}
		if arrow.Async != tt.async {
			t.Errorf("%q: async = %v; want %v", tt.code, arrow.Async, tt.async)
		}
		_, block := arrow.Body.Body.(*ast.BlockStatement)
		if block != tt.block {
			t.Errorf("%q: block body = %v; want %v", tt.code, block, tt.block)
		}
	}
}

func TestAsyncCallIsNotArrow(t *testing.T) {
	p := mustParse(t, "async(a, b)")
	call := exprOf(firstStmt(p, 0)).(*ast.CallExpression)

	if id, ok := call.Callee.Expr.(*ast.Identifier); !ok || id.Name != "async" {
		t.Errorf("callee = %T; want identifier async", call.Callee.Expr)
	}
}

func TestClassBodyAST(t *testing.T) {
	p := mustParse(t, `class A extends B {
  static count = 0;
  #secret = 1;
  constructor(props) { super(props); }
  get value() { return this.#secret; }
  set value(v) {}
  static create() {}
  async *stream() {}
  [Symbol.iterator]() {}
  static { A.count++; }
  handle = () => {}
}`)
	class := classOf(firstStmt(p, 0))

	type member struct {
		kind     string
		name     string
		static   bool
		computed bool
	}
	want := []member{
		{"field", "count", true, false},
		{"field", "", false, false},
		{"constructor", "constructor", false, false},
		{"get", "value", false, false},
		{"set", "value", false, false},
		{"method", "create", true, false},
		{"method", "stream", false, false},
		{"method", "", false, true},
		{"static block", "", true, false},
		{"field", "handle", false, false},
	}

	if got := len(class.Body); got != len(want) {
		t.Fatalf("member count = %d; want %d", got, len(want))
	}
	for i, el := range class.Body {
		var got member
		switch n := el.Element.(type) {
		case *ast.FieldDefinition:
			name, _ := n.KeyName()
			got = member{"field", name, n.Static, n.Computed}
		case *ast.MethodDefinition:
			name, _ := n.KeyName()
			got = member{string(n.Kind), name, n.Static, n.Computed}
		case *ast.ClassStaticBlock:
			got = member{"static block", "", true, false}
		}
		if got != want[i] {
			t.Errorf("member[%d] = %+v; want %+v", i, got, want[i])
		}
	}

	stream := class.Body[6].Element.(*ast.MethodDefinition)
	if !stream.Body.Async || !stream.Body.Generator {
		t.Errorf("stream: async = %v, generator = %v; want both", stream.Body.Async, stream.Body.Generator)
	}
	if ctor, idx := class.Constructor(); ctor == nil || idx != 2 {
		t.Errorf("Constructor() index = %d; want 2", idx)
	}
}

func TestClassMembersNamedLikeModifiers(t *testing.T) {
	p := mustParse(t, "class A { get() {} static() {} async = 1; set; static get x() {} }")
	class := classOf(firstStmt(p, 0))

	want := []string{"get", "static", "async", "set", "x"}
	if got := len(class.Body); got != len(want) {
		t.Fatalf("member count = %d; want %d", got, len(want))
	}
	for i, el := range class.Body {
		var name string
		switch n := el.Element.(type) {
		case *ast.MethodDefinition:
			name, _ = n.KeyName()
		case *ast.FieldDefinition:
			name, _ = n.KeyName()
		}
		if name != want[i] {
			t.Errorf("member[%d] name = %q; want %q", i, name, want[i])
		}
	}
	last := class.Body[4].Element.(*ast.MethodDefinition)
	if !last.Static || last.Kind != ast.PropertyKindGet {
		t.Errorf("last member: static = %v, kind = %v; want static getter", last.Static, last.Kind)
	}
}

func TestObjectLiteralAST(t *testing.T) {
	p := mustParse(t, "x = { a, b: 1, [c]: 2, get d() { return 1 }, e() {}, ...f }")
	obj := exprOf(firstStmt(p, 0)).(*ast.AssignExpression).Right.Expr.(*ast.ObjectLiteral)

	if got := len(obj.Value); got != 6 {
		t.Fatalf("property count = %d; want 6", got)
	}
	if _, ok := obj.Value[0].Prop.(*ast.PropertyShort); !ok {
		t.Errorf("prop[0] = %T; want *ast.PropertyShort", obj.Value[0].Prop)
	}
	if keyed := obj.Value[2].Prop.(*ast.PropertyKeyed); !keyed.Computed {
		t.Errorf("prop[2] not computed")
	}
	if keyed := obj.Value[3].Prop.(*ast.PropertyKeyed); keyed.Kind != ast.PropertyKindGet {
		t.Errorf("prop[3] kind = %v; want get", keyed.Kind)
	}
	if keyed := obj.Value[4].Prop.(*ast.PropertyKeyed); keyed.Kind != ast.PropertyKindMethod {
		t.Errorf("prop[4] kind = %v; want method", keyed.Kind)
	}
	if _, ok := obj.Value[5].Prop.(*ast.SpreadElement); !ok {
		t.Errorf("prop[5] = %T; want *ast.SpreadElement", obj.Value[5].Prop)
	}
}

func TestSwitchCaseConsequentAST(t *testing.T) {
	p := mustParse(t, "switch (x) { case 1: a(); b(); case 2: default: c() }")
	sw := firstStmt(p, 0).(*ast.SwitchStatement)

	if got := len(sw.Body); got != 3 {
		t.Fatalf("case count = %d; want 3", got)
	}
	for i, want := range []int{2, 0, 1} {
		if got := len(sw.Body[i].Consequent); got != want {
			t.Errorf("case[%d] consequent = %d; want %d", i, got, want)
		}
	}
	if sw.Default != 2 {
		t.Errorf("default = %d; want 2", sw.Default)
	}
}

func TestForStatementsAST(t *testing.T) {
	p := mustParse(t, "for (;;) {} for (const [k, v] of m) {} for (x in o);")

	if _, ok := firstStmt(p, 0).(*ast.ForStatement); !ok {
		t.Errorf("stmt[0] = %T; want *ast.ForStatement", firstStmt(p, 0))
	}
	forOf := firstStmt(p, 1).(*ast.ForOfStatement)
	decl := forOf.Into.Into.(*ast.VariableDeclaration)
	if _, ok := decl.List[0].Target.Expr.(*ast.ArrayLiteral); !ok {
		t.Errorf("for-of target = %T; want *ast.ArrayLiteral", decl.List[0].Target.Expr)
	}
	forIn := firstStmt(p, 2).(*ast.ForInStatement)
	if _, ok := forIn.Into.Into.(*ast.Expression); !ok {
		t.Errorf("for-in target = %T; want *ast.Expression", forIn.Into.Into)
	}
}

func TestJSXAST(t *testing.T) {
	p := mustParse(t, `const el = <Foo.Bar data-id="x" {...rest} onClick={this.handle}>text {value}<br/></Foo.Bar>;`)
	el := initializerExpr(firstStmt(p, 0)).(*ast.JSXElement)

	if el.Name != "Foo.Bar" {
		t.Errorf("name = %q; want Foo.Bar", el.Name)
	}
	if got := len(el.Attributes); got != 3 {
		t.Fatalf("attribute count = %d; want 3", got)
	}
	if el.Attributes[0].Name != "data-id" {
		t.Errorf("attr[0] = %q; want data-id", el.Attributes[0].Name)
	}
	if !el.Attributes[1].Spread {
		t.Errorf("attr[1] is not a spread")
	}
	container := el.Attributes[2].Value.Expr.(*ast.JSXExpressionContainer)
	if _, ok := container.Expression.Expr.(*ast.MemberExpression); !ok {
		t.Errorf("onClick value = %T; want *ast.MemberExpression", container.Expression.Expr)
	}
	if got := len(el.Children); got != 3 {
		t.Fatalf("child count = %d; want 3", got)
	}
	if br := el.Children[2].Expr.(*ast.JSXElement); !br.SelfClosing {
		t.Errorf("<br/> not self closing")
	}
}

// ===========================================================================
// POSITIONS AND COMMENTS
// ===========================================================================

func TestNodePositions(t *testing.T) {
	code := "class A {\n  m(a) { return a; }\n  f = 1\n}\nfoo();"
	p := mustParse(t, code)
	class := classOf(firstStmt(p, 0))

	tests := []struct {
		node ast.Node
		want string
	}{
		{class, "class A {\n  m(a) { return a; }\n  f = 1\n}"},
		{class.Body[0].Element, "m(a) { return a; }"},
		{class.Body[1].Element, "f = 1"},
		{&class.Body[0].Element.(*ast.MethodDefinition).Body.ParameterList, "(a)"},
		{firstStmt(p, 1), "foo();"},
	}
	for _, tt := range tests {
		span := ast.SpanOf(tt.node)
		if got := code[span.From:span.To]; got != tt.want {
			t.Errorf("span of %T = %q; want %q", tt.node, got, tt.want)
		}
	}
}

func TestCommentsAttachToStatements(t *testing.T) {
	code := `// leading
a(); // trailing
/* block */ b();
function f() {
  c();
  // dangling
}
`
	p := mustParse(t, code)

	if got := p.Body[0].Comments.Leading; len(got) != 1 || got[0].Text != "// leading" {
		t.Errorf("stmt[0] leading = %+v", got)
	}
	if got := p.Body[0].Comments.Trailing; len(got) != 1 || got[0].Text != "// trailing" {
		t.Errorf("stmt[0] trailing = %+v", got)
	}
	if got := p.Body[1].Comments.Leading; len(got) != 1 || got[0].Kind != ast.BlockComment {
		t.Errorf("stmt[1] leading = %+v", got)
	}
	body := firstStmt(p, 2).(*ast.FunctionDeclaration).Function.Body
	if got := body.Dangling; len(got) != 1 || got[0].Text != "// dangling" {
		t.Errorf("dangling = %+v", got)
	}
}

func TestCommentsAttachToClassMembers(t *testing.T) {
	code := `class A {
  /** Docs. */
  handle() {} // after
  // last
}`
	p := mustParse(t, code)
	class := classOf(firstStmt(p, 0))
	m := class.Body[0].Element.(*ast.MethodDefinition)

	if len(m.Comments.Leading) != 1 || m.Comments.Leading[0].Text != "/** Docs. */" {
		t.Errorf("leading = %+v", m.Comments.Leading)
	}
	if len(m.Comments.Trailing) != 1 || m.Comments.Trailing[0].Text != "// after" {
		t.Errorf("trailing = %+v", m.Comments.Trailing)
	}
	if len(class.Dangling) != 1 || class.Dangling[0].Text != "// last" {
		t.Errorf("dangling = %+v", class.Dangling)
	}
}

// ===========================================================================
// ROUND TRIP TESTS
// ===========================================================================

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"var a = [1, , 2]", "var a = [1, , 2];"},
		{"x = `a${b}`", "x = `a${b}`;"},
		{"x = a ? b : c", "x = a ? b : c;"},
		{"label: for (;;) { break label; }", "label: for (;;) {break label;}"},
		{"do x++; while (x < 5)", "do x++;while (x < 5);"},
		{"import React, { Component } from 'react'", "import React, { Component } from 'react';"},
		{"export * from './a'", "export * from './a';"},
		{"const { a, b: [c] } = d", "const { a, b: [c] } = d;"},
		{"new Foo", "new Foo;"},
		{"new.target", "new.target;"},
		{"a ??= b", "a ??= b;"},
		{"x = class { #p = 1; m() { return #p in this; } }", "x = class {#p = 1;m() {return #p in this;}};"},
	}

	for _, tt := range tests {
		assertRoundTrip(t, tt.code, tt.want)
	}
}

// ===========================================================================
// AUTOMATIC SEMICOLON INSERTION
// ===========================================================================

func TestASIReturnNewline(t *testing.T) {
	p := mustParse(t, "function f() {\n  return\n  1\n}")
	body := firstStmt(p, 0).(*ast.FunctionDeclaration).Function.Body

	if got := len(body.List); got != 2 {
		t.Fatalf("statement count = %d; want 2", got)
	}
	if ret := body.List[0].Stmt.(*ast.ReturnStatement); ret.Argument != nil {
		t.Errorf("return argument = %T; want nil", ret.Argument.Expr)
	}
}

func TestASIPostfixNewline(t *testing.T) {
	p := mustParse(t, "a\n++b")

	if got := len(p.Body); got != 2 {
		t.Fatalf("statement count = %d; want 2", got)
	}
	if upd := exprOf(firstStmt(p, 1)).(*ast.UpdateExpression); upd.Postfix {
		t.Errorf("++b parsed as postfix")
	}
}

func TestASIClassField(t *testing.T) {
	p := mustParse(t, "class A {\n  a = 1\n  b\n  c() {}\n}")
	class := classOf(firstStmt(p, 0))

	if got := len(class.Body); got != 3 {
		t.Fatalf("member count = %d; want 3", got)
	}
}

// ===========================================================================
// ERRORS
// ===========================================================================

func TestSyntaxErrors(t *testing.T) {
	tests := []struct {
		code    string
		line    int
		column  int
		message string
	}{
		{"a = ;", 1, 5, "Unexpected token ;"},
		{"class A { constructor() {} constructor() {} }", 1, 28, "A class may only have one constructor"},
		{"class A { get constructor() {} }", 1, 15, "Class constructor may not be an accessor"},
		{"return 1", 1, 1, "Illegal return statement"},
		{"const a;", 1, 7, "Missing initializer in const declaration"},
		{"x = <a></b>;", 1, 11, "Expected corresponding JSX closing tag for <a>"},
		{"1 = 2", 1, 3, "Invalid left-hand side in assignment"},
		{"\n  'abc", 2, 3, "Unterminated string"},
	}

	for _, tt := range tests {
		_, err := parser.ParseFile(tt.code)
		if err == nil {
			t.Errorf("ParseFile(%q) succeeded; want error", tt.code)
			continue
		}
		errs := parser.Errors(err)
		if len(errs) == 0 {
			t.Errorf("ParseFile(%q): no positioned errors in %v", tt.code, err)
			continue
		}
		first := errs[0]
		if first.Line != tt.line || first.Column != tt.column || !strings.Contains(first.Message, tt.message) {
			t.Errorf("ParseFile(%q) = %d:%d %q; want %d:%d %q",
				tt.code, first.Line, first.Column, first.Message, tt.line, tt.column, tt.message)
		}
	}
}

func TestSyntaxOK(t *testing.T) {
	tests := []string{
		"#!/usr/bin/env node\nconsole.log(1)",
		"a = b\n(c)",
		"x = y / 2 / z",
		"if (a) /re/.test(b)",
		"const { a = 1, ...rest } = obj",
		"function* g() { yield; yield* other(); const x = yield 1 }",
		"async function f() { for await (const x of y) {} await z }",
		"await fetch(url)",
		"label: { break label }",
		"a?.[0]?.b?.()",
		"const big = 1_000_000n + 0x1Fn",
		"x = { async *gen() {}, get [k]() { return 1 }, set v(a) {} }",
		"class A { static async method() {} 'quoted'() {} 42() {} }",
		"import json from './data.json' with { type: 'json' }",
		"export default function () {}",
		"export default async function named() {}",
		"export { default } from './x'",
		"x = <>{/* comment */}</>",
		"x = <input disabled value={a ? 'b' : \"c\"} />",
		"let \\u0061bc = 1",
	}

	for _, code := range tests {
		if _, err := parser.ParseFile(code); err != nil {
			t.Errorf("ParseFile(%q): %v", code, err)
		}
	}
}
