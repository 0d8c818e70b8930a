package autobind_test

import (
	"regexp"
	"slices"
	"strings"
	"testing"

	"github.com/t14raptor/autobind/generator"
	"github.com/t14raptor/autobind/parser"
	"github.com/t14raptor/autobind/transform/autobind"
)

var space = regexp.MustCompile(`\s+`)

func normalize(s string) string {
	return strings.TrimSpace(space.ReplaceAllString(s, " "))
}

func transform(t *testing.T, mode autobind.Mode, in string) *autobind.Result {
	t.Helper()
	res, err := autobind.Transform(in, mode, autobind.Options{})
	if err != nil {
		t.Fatalf("Transform(%q) failed: %v", in, err)
	}
	return res
}

func test(in, want string, mode autobind.Mode, t *testing.T) {
	t.Helper()
	got := normalize(transform(t, mode, in).Code)
	if got != want {
		t.Errorf("%v(%q)\n  got:  %s\n  want: %s", mode, in, got, want)
	}
}

func TestConstructorForm(t *testing.T) {
	c := autobind.ModeConstructor

	test(`class A { constructor() { this.onClick = this.onClick.bind(this); } onClick(e) { return e; } }`,
		`class A { constructor() {} onClick = (e) => { return e; }; }`, c, t)

	// Other statements stay where they were.
	test(`class A { constructor(props) { super(props); this.a = this.a.bind(this); this.state = {}; } a() {} }`,
		`class A { constructor(props) { super(props); this.state = {}; } a = () => {}; }`, c, t)

	// A bind of a name that is no method is dropped without a conversion.
	test(`class A { constructor() { this.x = this.x.bind(this); this.y = 1; } }`,
		`class A { constructor() { this.y = 1; } }`, c, t)

	// Duplicates are all removed, the method is converted once.
	test(`class A { constructor() { this.a = this.a.bind(this); this.a = this.a.bind(this); } a(x, y) { return x + y; } }`,
		`class A { constructor() {} a = (x, y) => { return x + y; }; }`, c, t)

	// Nested blocks and arrow functions share the constructor's this.
	test(`class A { constructor() { if (x) { this.a = this.a.bind(this); } const f = () => { this.b = this.b.bind(this); }; } a() {} b() {} }`,
		`class A { constructor() { if (x) {} const f = () => {}; } a = () => {}; b = () => {}; }`, c, t)

	// A bind that is the whole body of an if becomes an empty statement.
	test(`class A { constructor() { if (x) this.a = this.a.bind(this); } a() {} }`,
		`class A { constructor() { if (x) ; } a = () => {}; }`, c, t)
	test(`class A { constructor() { if (x) this.a = this.a.bind(this); else this.b = 1; } a() {} }`,
		`class A { constructor() { if (x) ; else this.b = 1; } a = () => {}; }`, c, t)

	// The removed statement keeps nothing of the call, not even its argument.
	test(`class A { constructor() { this.x = this.x.bind(this); } }`,
		`class A { constructor() {} }`, c, t)

	// Binds in a sequence are removed one by one.
	test(`class A { constructor() { this.a = this.a.bind(this), this.b = this.b.bind(this); } a() {} b() {} }`,
		`class A { constructor() {} a = () => {}; b = () => {}; }`, c, t)
	test(`class A { constructor() { this.a = this.a.bind(this), init(); } a() {} }`,
		`class A { constructor() { init(); } a = () => {}; }`, c, t)

	// Async methods become async arrows, other members keep their order.
	test(`class A { static x = 1; constructor() { this.load = this.load.bind(this); } async load(url) { await fetch(url); } get y() { return 2; } }`,
		`class A { static x = 1; constructor() {} load = async (url) => { await fetch(url); }; get y() { return 2; } }`, c, t)

	// Exported and nested declarations are rewritten too.
	test(`export default class extends B { constructor() { super(); this.a = this.a.bind(this); } a() {} }`,
		`export default class extends B { constructor() { super(); } a = () => {}; }`, c, t)
	test(`export class A { m() { class B { constructor() { this.n = this.n.bind(this); } n() {} } return B; } }`,
		`export class A { m() { class B { constructor() {} n = () => {}; } return B; } }`, c, t)

	// Single parameters are always parenthesized.
	test(`class A { constructor() { this.a = this.a.bind(this); } a(e) { return list.map(x => x + e); } }`,
		`class A { constructor() {} a = (e) => { return list.map(x => x + e); }; }`, c, t)
}

func TestConstructorFormLeavesOtherCodeAlone(t *testing.T) {
	for _, in := range []string{
		`class A { a() {} }`,
		`class A { constructor() { this.a = this.b.bind(this); } a() {} }`,
		`class A { constructor() { this.a = this.a.bind(this, 1); } a() {} }`,
		`class A { constructor() { this.a = this.a.bind(); } a() {} }`,
		`class A { constructor() { this.a = other.a.bind(this); } a() {} }`,
		`class A { constructor() { this.a = this.a.bind(this); } get a() { return 1; } }`,
		`class A { constructor() { this.a = this.a.bind(this); } static a() {} }`,
		`class A { constructor() { this.a = this.a.bind(this); } *a() {} }`,
		`class A { constructor() { const f = function () { this.a = this.a.bind(this); }; } a() {} }`,
		`class A { m() { this.a = this.a.bind(this); } a() {} }`,
		`const A = class { constructor() { this.a = this.a.bind(this); } a() {} };`,
		`function f() { this.a = this.a.bind(this); }`,
	} {
		res := transform(t, autobind.ModeConstructor, in)
		if res.Changed || res.Code != in {
			t.Errorf("Transform(%q) changed the input to %q", in, res.Code)
		}
	}
}

func TestCallSiteForm(t *testing.T) {
	cs := autobind.ModeCallSite

	test(`class A { render() { return this.onClick.bind(this); } other() { return this.onClick.bind(this); } onClick(e) { return e; } }`,
		`class A { render() { return this.onClick; } other() { return this.onClick; } onClick = (e) => { return e; }; }`, cs, t)

	// Calls on unknown names stay, known ones are stripped.
	test(`class A { render() { f(this.helper.bind(this), this.a.bind(this)); } a() {} }`,
		`class A { render() { f(this.helper.bind(this), this.a); } a = () => {}; }`, cs, t)

	// JSX attributes.
	test(`class A { render() { return <b onClick={this.a.bind(this)} onBlur={this.a.bind(this)} />; } a() {} }`,
		`class A { render() { return <b onClick={this.a} onBlur={this.a} />; } a = () => {}; }`, cs, t)

	// A method that binds itself is converted with the stripped body.
	test(`class A { a() { setTimeout(this.a.bind(this), 10); } }`,
		`class A { a = () => { setTimeout(this.a, 10); }; }`, cs, t)

	// Getters, setters and static methods are scanned.
	test(`class A { get h() { return this.a.bind(this); } static s() { return this.a.bind(this); } a() {} }`,
		`class A { get h() { return this.a; } static s() { return this.a; } a = () => {}; }`, cs, t)
}

func TestCallSiteFormLeavesOtherCodeAlone(t *testing.T) {
	for _, in := range []string{
		`class A { render() { return this.helper.bind(this); } }`,
		`class A { constructor() { this.a = this.a.bind(this); f(this.a.bind(this)); } a() {} }`,
		`class A { render() { return this.a.bind(this, 1); } a() {} }`,
		`class A { render() { return this.a.bind(other); } a() {} }`,
		`class A { render() { return this.a.bind(this); } get a() { return 1; } }`,
		`class A { render() { return this.a.bind(this); } static a() {} }`,
		`class A { render() { return this.a.bind(this); } *a() {} }`,
		`class A { render() { return this.constructor.bind(this); } constructor() {} }`,
		`class A { handler = this.a.bind(this); a() {} }`,
		`const A = class { render() { return this.a.bind(this); } a() {} };`,
	} {
		res := transform(t, autobind.ModeCallSite, in)
		if res.Changed || res.Code != in {
			t.Errorf("Transform(%q) changed the input to %q", in, res.Code)
		}
	}
}

func TestNestedClassesAreIndependent(t *testing.T) {
	in := `class A { render() { class B { m() { return this.a.bind(this); } } return this.b.bind(this); } b() {} }`
	res := transform(t, autobind.ModeCallSite, in)

	want := `class A { render() { class B { m() { return this.a.bind(this); } } return this.b; } b = () => {}; }`
	if got := normalize(res.Code); got != want {
		t.Errorf("\n  got:  %s\n  want: %s", got, want)
	}
	if res.Report.Classes != 2 {
		t.Errorf("Classes = %d; want 2", res.Report.Classes)
	}
	if len(res.Report.Rejections) != 1 || res.Report.Rejections[0].Class != "B" || res.Report.Rejections[0].Reason != autobind.UnknownMethod {
		t.Errorf("Rejections = %+v", res.Report.Rejections)
	}
}

func TestIdempotent(t *testing.T) {
	tests := []struct {
		mode autobind.Mode
		in   string
	}{
		{autobind.ModeConstructor, "class A {\n  constructor() {\n    this.a = this.a.bind(this);\n  }\n\n  a(e) {\n    return e;\n  }\n}\n"},
		{autobind.ModeCallSite, "class A {\n  render() {\n    return this.a.bind(this);\n  }\n\n  a(e) {\n    return e;\n  }\n}\n"},
	}

	for _, tt := range tests {
		first := transform(t, tt.mode, tt.in)
		if !first.Changed {
			t.Fatalf("%v(%q) made no change", tt.mode, tt.in)
		}
		second := transform(t, tt.mode, first.Code)
		if second.Changed || second.Code != first.Code {
			t.Errorf("%v is not idempotent:\n%s\nbecame\n%s", tt.mode, first.Code, second.Code)
		}
		if second.Report.Changed() {
			t.Errorf("second pass reported edits: %v", second.Report.Edits)
		}
	}
}

func TestPreservesFormatting(t *testing.T) {
	in := `import React from 'react';

// A button.
class Button extends React.Component {
  constructor(props) {
    super(props);
    this.onClick = this.onClick.bind(this);

    this.state   = { n: 0 };
  }

  /**
   * Counts clicks.
   */
  onClick(e) {
    this.setState({ n: this.state.n + 1 }); // count
  }

  render() {
    return <button onClick={this.onClick}>{this.state.n}</button>;
  }
}

export default Button;
`
	want := `import React from 'react';

// A button.
class Button extends React.Component {
  constructor(props) {
    super(props);

    this.state   = { n: 0 };
  }

  /**
   * Counts clicks.
   */
  onClick = (e) => {
    this.setState({ n: this.state.n + 1 }); // count
  };

  render() {
    return <button onClick={this.onClick}>{this.state.n}</button>;
  }
}

export default Button;
`
	res, err := autobind.TransformConstructorForm(in, autobind.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if res.Code != want {
		t.Errorf("\n  got:\n%s\n  want:\n%s", res.Code, want)
	}
}

func TestCallSiteFormatting(t *testing.T) {
	in := "class A {\n    render() {\n        const x  =  1;\n        return this.a.bind(this);\n    }\n\n    a() {\n        return 1;\n    }\n}\n"
	want := "class A {\n    render() {\n        const x  =  1;\n        return this.a;\n    }\n\n    a = () => {\n        return 1;\n    };\n}\n"

	res, err := autobind.TransformCallSiteForm(in, autobind.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if res.Code != want {
		t.Errorf("\n  got:  %q\n  want: %q", res.Code, want)
	}
}

func TestReport(t *testing.T) {
	in := `class A {
  constructor() {
    this.b = this.b.bind(this);
    this.a = this.a.bind(this);
    this.c = this.d.bind(this);
    this.g = this.g.bind(this);
    this.x = this.x.bind(this);
  }
  a() { return arguments.length; }
  b() {}
  get g() { return 1; }
}`
	res := transform(t, autobind.ModeConstructor, in)
	r := res.Report

	if r.Mode != autobind.ModeConstructor || r.Classes != 1 {
		t.Errorf("Mode = %v, Classes = %d", r.Mode, r.Classes)
	}
	if r.RemovedBinds != 3 {
		t.Errorf("RemovedBinds = %d; want 3", r.RemovedBinds)
	}
	if got := r.ConvertedNames(); !slices.Equal(got, []string{"a", "b"}) {
		t.Errorf("ConvertedNames() = %v", got)
	}

	var reasons []autobind.Reason
	for _, rej := range r.Rejections {
		reasons = append(reasons, rej.Reason)
	}
	if !slices.Equal(reasons, []autobind.Reason{autobind.NameMismatch, autobind.OutOfContract}) {
		t.Errorf("Rejections = %v", reasons)
	}

	var warned []string
	for _, w := range r.Warnings {
		warned = append(warned, w.Name)
	}
	if !slices.Equal(warned, []string{"x", "a"}) {
		t.Errorf("Warnings = %+v", r.Warnings)
	}
}

func TestCallSiteReport(t *testing.T) {
	in := `class A { r() { f(this.a.bind(this)); g(this.a.bind(this)); h(this.z.bind(this)); } a() {} }`
	r := transform(t, autobind.ModeCallSite, in).Report

	if r.StrippedCalls != 2 {
		t.Errorf("StrippedCalls = %d; want 2", r.StrippedCalls)
	}
	if len(r.Converted) != 1 || r.Converted[0].Name != "a" || r.Converted[0].Class != "A" {
		t.Errorf("Converted = %+v", r.Converted)
	}
	if len(r.Rejections) != 1 || r.Rejections[0].Name != "z" {
		t.Errorf("Rejections = %+v", r.Rejections)
	}
}

func TestCommentsAreCopied(t *testing.T) {
	in := "class A {\n  constructor() {\n    this.a = this.a.bind(this);\n  }\n  // first\n  /* second */\n  a() {} // trailing\n}\n"
	want := "class A {\n  constructor() {}\n  // first\n  /* second */\n  a = () => {}; // trailing\n}\n"

	res := transform(t, autobind.ModeConstructor, in)
	if res.Code != want {
		t.Errorf("\n  got:  %q\n  want: %q", res.Code, want)
	}
}

func TestRewriteTree(t *testing.T) {
	p, err := parser.ParseFile(`class A { constructor() { this.a = this.a.bind(this); } a(x) { return x; } }`)
	if err != nil {
		t.Fatal(err)
	}
	r := autobind.RewriteConstructorBinds(p)
	if !r.Changed() {
		t.Fatal("no change")
	}
	got := normalize(generator.GenerateWithOptions(p, generator.Options{ArrowParensAlways: true}))
	want := `class A { constructor() {} a = (x) => { return x; }; }`
	if got != want {
		t.Errorf("\n  got:  %s\n  want: %s", got, want)
	}

	p, err = parser.ParseFile(`class A { r() { return this.a.bind(this); } a() {} }`)
	if err != nil {
		t.Fatal(err)
	}
	if r := autobind.RewriteCallSiteBinds(p); r.StrippedCalls != 1 || len(r.Converted) != 1 {
		t.Errorf("RewriteCallSiteBinds() = %+v", r)
	}
}

func TestReprint(t *testing.T) {
	in := "class A {\n  a( x ){ return x }\n}\n"
	res, err := autobind.Transform(in, autobind.ModeCallSite, autobind.Options{Reprint: true, Indent: "\t"})
	if err != nil {
		t.Fatal(err)
	}
	want := "class A {\n\ta(x) {\n\t\treturn x;\n\t}\n}\n"
	if res.Code != want || !res.Changed {
		t.Errorf("\n  got:  %q\n  want: %q", res.Code, want)
	}
}

func TestParseError(t *testing.T) {
	_, err := autobind.TransformConstructorForm("class A { constructor() { this.a = ; } }", autobind.Options{})
	if err == nil {
		t.Fatal("expected an error")
	}
	if errs := parser.Errors(err); len(errs) == 0 || errs[0].Line != 1 {
		t.Errorf("Errors(%v) = %v", err, errs)
	}
}

func TestParseMode(t *testing.T) {
	for _, m := range []autobind.Mode{autobind.ModeConstructor, autobind.ModeCallSite} {
		got, err := autobind.ParseMode(m.String())
		if err != nil || got != m {
			t.Errorf("ParseMode(%q) = %v, %v", m.String(), got, err)
		}
	}
	if _, err := autobind.ParseMode("lexical"); err == nil {
		t.Error("ParseMode(lexical) succeeded")
	}
	if _, err := autobind.Transform("", autobind.Mode(9), autobind.Options{}); err == nil {
		t.Error("Transform with an unknown mode succeeded")
	}
}
