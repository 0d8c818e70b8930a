package autobind_test

import (
	"testing"

	"github.com/t14raptor/autobind/ast"
	"github.com/t14raptor/autobind/parser"
	"github.com/t14raptor/autobind/transform/autobind"
)

func parseExpr(t *testing.T, src string) ast.Expr {
	t.Helper()
	p, err := parser.ParseFile(src)
	if err != nil {
		t.Fatalf("ParseFile(%q) failed: %v", src, err)
	}
	st, ok := p.Body[0].Stmt.(*ast.ExpressionStatement)
	if !ok {
		t.Fatalf("%q is not an expression statement", src)
	}
	return st.Expression.Expr
}

func TestMatchConstructorBind(t *testing.T) {
	tests := []struct {
		src  string
		want autobind.Reason
		name string
	}{
		{"this.a = this.a.bind(this);", autobind.Matched, "a"},
		{"this.onClick = this.onClick.bind(this)", autobind.Matched, "onClick"},
		{"f();", autobind.NotAssignment, ""},
		{"this.a += this.a.bind(this);", autobind.NotPlainAssignment, ""},
		{"a = this.a.bind(this);", autobind.TargetNotThisMember, ""},
		{"this[a] = this.a.bind(this);", autobind.TargetNotThisMember, ""},
		{"that.a = this.a.bind(this);", autobind.TargetNotThisMember, ""},
		{"this.a = this.a;", autobind.NotCall, "a"},
		{"this.a = this.a.call(this);", autobind.CalleeNotBind, "a"},
		{"this.a = this.a['bind'](this);", autobind.CalleeNotBind, "a"},
		{"this.a = a.bind(this);", autobind.BindNotThisMember, "a"},
		{"this.a = this[a].bind(this);", autobind.BindNotThisMember, "a"},
		{"this.a = this.b.bind(this);", autobind.NameMismatch, "a"},
		{"this.a = this.a.bind(this, 1);", autobind.ArgumentCount, "a"},
		{"this.a = this.a.bind();", autobind.ArgumentCount, "a"},
		{"this.a = this.a.bind(that);", autobind.ArgumentNotThis, "a"},
	}

	for _, tt := range tests {
		bind, reason := autobind.MatchConstructorBind(parseExpr(t, tt.src))
		if reason != tt.want {
			t.Errorf("MatchConstructorBind(%q) = %q; want %q", tt.src, reason, tt.want)
		}
		if bind.Name != tt.name {
			t.Errorf("MatchConstructorBind(%q) name = %q; want %q", tt.src, bind.Name, tt.name)
		}
		if got := autobind.IsConstructorBind(parseExpr(t, tt.src)); got != (tt.want == autobind.Matched) {
			t.Errorf("IsConstructorBind(%q) = %v", tt.src, got)
		}
	}
}

func TestMatchCallSiteBind(t *testing.T) {
	tests := []struct {
		src  string
		want autobind.Reason
	}{
		{"this.a.bind(this);", autobind.Matched},
		{"this.a.bind(this, x);", autobind.ArgumentCount},
		{"this.a.bind(other);", autobind.ArgumentNotThis},
		{"this.a.apply(this);", autobind.CalleeNotBind},
		{"bind(this);", autobind.CalleeNotBind},
		{"obj.a.bind(this);", autobind.BindNotThisMember},
		{"this.bind(this);", autobind.BindNotThisMember},
		{"this.a.b.bind(this);", autobind.BindNotThisMember},
	}

	for _, tt := range tests {
		call, ok := parseExpr(t, tt.src).(*ast.CallExpression)
		if !ok {
			t.Fatalf("%q is not a call", tt.src)
		}
		bind, reason := autobind.MatchCallSiteBind(call)
		if reason != tt.want {
			t.Errorf("MatchCallSiteBind(%q) = %q; want %q", tt.src, reason, tt.want)
		}
		if reason == autobind.Matched {
			if bind.Name != "a" || bind.Call != call {
				t.Errorf("MatchCallSiteBind(%q) = %+v", tt.src, bind)
			}
			if _, ok := bind.Target.Expr.(*ast.MemberExpression); !ok {
				t.Errorf("MatchCallSiteBind(%q) target = %T", tt.src, bind.Target.Expr)
			}
		}
		if got := autobind.IsCallSiteBind(call); got != (tt.want == autobind.Matched) {
			t.Errorf("IsCallSiteBind(%q) = %v", tt.src, got)
		}
	}
}

func TestMatchersDoNotMutate(t *testing.T) {
	src := "this.a = this.a.bind(this);"
	e := parseExpr(t, src)
	before := ast.SpanOf(e)
	autobind.MatchConstructorBind(e)
	autobind.MatchConstructorBind(e)
	if ast.SpanOf(e) != before {
		t.Errorf("span changed from %v to %v", before, ast.SpanOf(e))
	}
	if !autobind.IsConstructorBind(e) {
		t.Errorf("second match failed")
	}
}

func TestNearMiss(t *testing.T) {
	for _, r := range []autobind.Reason{autobind.NameMismatch, autobind.ArgumentCount, autobind.ArgumentNotThis, autobind.OptionalCall} {
		if !r.NearMiss() {
			t.Errorf("%q should be a near miss", r)
		}
	}
	for _, r := range []autobind.Reason{autobind.Matched, autobind.NotAssignment, autobind.CalleeNotBind, autobind.BindNotThisMember} {
		if r.NearMiss() {
			t.Errorf("%q should not be a near miss", r)
		}
	}
}
