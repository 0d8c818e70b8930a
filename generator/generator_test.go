package generator

import (
	"strings"
	"testing"

	"github.com/t14raptor/autobind/ast"
	"github.com/t14raptor/autobind/parser"
)

func parseSource(t *testing.T, src string) *ast.Program {
	t.Helper()
	program, err := parser.ParseFile(src)
	if err != nil {
		t.Fatalf("Failed to parse input: %v", err)
	}
	return program
}

func generateNoIndent(program ast.Node, opts Options) string {
	output := GenerateWithOptions(program, opts)
	return strings.ReplaceAll(strings.ReplaceAll(output, "\n", ""), "    ", "")
}

func TestGenerate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "parentheses are kept as written",
			input:    "new F6(((a = 1), 2));",
			expected: "new F6(((a = 1), 2));",
		},
		{
			name:     "arrow with default and rest parameters",
			input:    "const g = (a, b = 2, ...rest) => {}",
			expected: "const g = (a, b = 2, ...rest) => {};",
		},
		{
			name:     "arrow returning an object",
			input:    "const o = () => ({ a: 1 });",
			expected: "const o = () => ({ a: 1 });",
		},
		{
			name:     "class members",
			input:    "class A extends B { static x = 1; #y; get z() { return this.#y; } }",
			expected: "class A extends B {static x = 1;#y;get z() {return this.#y;}}",
		},
		{
			name:     "template literal",
			input:    "tag`a${b}c${d}`;",
			expected: "tag`a${b}c${d}`;",
		},
		{
			name:     "inline object",
			input:    "x = {a, b: 1, ...c}",
			expected: "x = { a, b: 1, ...c };",
		},
		{
			name:     "object with a method",
			input:    "o = { m() { return 1; } };",
			expected: "o = {m() {return 1;}};",
		},
		{
			name:     "unary operators",
			input:    "a = - -b; typeof x; !y",
			expected: "a = - -b;typeof x;!y;",
		},
		{
			name:     "optional chaining",
			input:    "a?.b?.[c]?.(d)",
			expected: "a?.b?.[c]?.(d);",
		},
		{
			name:     "jsx element",
			input:    `const el = <div className="a">{x}<br /></div>;`,
			expected: `const el = <div className="a">{x}<br /></div>;`,
		},
		{
			name:     "jsx fragment",
			input:    `f(<><A {...p} /></>);`,
			expected: `f(<><A {...p} /></>);`,
		},
		{
			name:     "for loops",
			input:    "for (let i = 0; i < n; i++) {} for (const k in o) {} for await (const v of it) {}",
			expected: "for (let i = 0; i < n; i++) {}for (const k in o) {}for await (const v of it) {}",
		},
		{
			name:     "if else without braces",
			input:    "if (a) b(); else c();",
			expected: "if (a) b();else c();",
		},
		{
			name:     "try catch finally",
			input:    "try { a(); } catch { b(); } finally { c(); }",
			expected: "try {a();} catch {b();} finally {c();}",
		},
		{
			name:     "exports",
			input:    "export default class extends B {} export { a as b } from './m'; export const c = 1;",
			expected: "export default class extends B {}export { a as b } from './m';export const c = 1;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := generateNoIndent(parseSource(t, tt.input), Options{})
			if result != tt.expected {
				t.Errorf("\nInput:    %s\nExpected: %s\nGot:      %s", tt.input, tt.expected, result)
			}
		})
	}
}

func TestArrowParens(t *testing.T) {
	tests := []struct {
		input  string
		always bool
		want   string
	}{
		{"const f = x => x + 1;", false, "const f = x => x + 1;\n"},
		{"const f = x => x + 1;", true, "const f = (x) => x + 1;\n"},
		{"const f = async x => await x;", true, "const f = async (x) => await x;\n"},
		{"const f = (x = 1) => x;", false, "const f = (x = 1) => x;\n"},
		{"const f = ({ x }) => x;", false, "const f = ({ x }) => x;\n"},
		{"const f = () => 1;", true, "const f = () => 1;\n"},
	}

	for _, tt := range tests {
		got := GenerateWithOptions(parseSource(t, tt.input), Options{ArrowParensAlways: tt.always})
		if got != tt.want {
			t.Errorf("Generate(%q, always=%v)\n  got:  %q\n  want: %q", tt.input, tt.always, got, tt.want)
		}
	}
}

func TestPreserveUntouchedSource(t *testing.T) {
	src := "// header\nconst a   =  1; // trailing\n\n\nfunction f() {\n  return a;\n}\n"
	program := parseSource(t, src)

	got := GenerateWithOptions(program, Options{Source: src})
	want := "// header\nconst a   =  1; // trailing\n\nfunction f() {\n  return a;\n}\n"
	if got != want {
		t.Errorf("\n  got:  %q\n  want: %q", got, want)
	}
}

func TestEditedMemberIsRegenerated(t *testing.T) {
	src := "class A {\n  a() {\n    return   1;\n  }\n\n  b( ) {}\n}\n"
	program := parseSource(t, src)

	class := program.Body[0].Stmt.(*ast.ClassDeclaration).Class
	method := class.Body[0].Element.(*ast.MethodDefinition)
	method.Key = &ast.Expression{Expr: &ast.Identifier{Name: "c"}}
	header := ast.Span{From: method.Idx, To: method.Body.Body.LeftBrace}

	got := GenerateWithOptions(program, Options{
		Source: src,
		Indent: DetectIndent(src),
		Edits:  []ast.Span{header},
	})
	want := "class A {\n  c() {\n    return   1;\n  }\n\n  b( ) {}\n}\n"
	if got != want {
		t.Errorf("\n  got:  %q\n  want: %q", got, want)
	}
}

func TestDetectIndent(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"two spaces", "class A {\n  a() {\n    x;\n  }\n}\n", "  "},
		{"four spaces", "/**\n * doc\n */\nclass A {\n    m() {}\n}\n", "    "},
		{"tabs", "a {\n\tb\n}\n", "\t"},
		{"flat", "x;\ny;\n", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectIndent(tt.src); got != tt.want {
				t.Errorf("DetectIndent() = %q, want %q", got, tt.want)
			}
		})
	}
}
