package autobind

import (
	"github.com/t14raptor/autobind/ast"
	"github.com/t14raptor/autobind/token"
)

// Reason names the first check a candidate node failed. The empty Reason
// means the node matched.
type Reason string

const (
	Matched Reason = ""

	NotAssignment       Reason = "not an assignment"
	NotPlainAssignment  Reason = "assignment operator is not ="
	TargetNotThisMember Reason = "assignment target is not this.<name>"
	NotCall             Reason = "value is not a call"
	OptionalCall        Reason = "call is optional"
	CalleeNotBind       Reason = "callee is not .bind"
	BindNotThisMember   Reason = "bound function is not this.<name>"
	NameMismatch        Reason = "bound name differs from assigned name"
	ArgumentCount       Reason = "bind takes extra or missing arguments"
	ArgumentNotThis     Reason = "bind argument is not this"

	// Reasons given by the rewriters rather than the matchers.
	UnknownMethod Reason = "no method of that name"
	OutOfContract Reason = "member is not a plain instance method"
)

// NearMiss reports whether the node was recognisably a bind of this.<name>
// that differs from the accepted shape in a detail.
func (r Reason) NearMiss() bool {
	switch r {
	case NameMismatch, ArgumentCount, ArgumentNotThis, OptionalCall:
		return true
	}
	return false
}

// Bind is a matched bind of this.<Name>.
type Bind struct {
	Name string
	// Target is the this.<Name> member expression that .bind is called on.
	Target *ast.Expression
	Call   *ast.CallExpression
}

// MatchConstructorBind matches this.<name> = this.<name>.bind(this). On a
// rejection the returned Bind carries the assigned name when there is one.
func MatchConstructorBind(e ast.Expr) (Bind, Reason) {
	assign, ok := e.(*ast.AssignExpression)
	if !ok {
		return Bind{}, NotAssignment
	}
	if assign.Operator != token.Assign {
		return Bind{}, NotPlainAssignment
	}
	name, ok := thisMemberName(assign.Left)
	if !ok {
		return Bind{}, TargetNotThisMember
	}
	call, ok := assign.Right.Expr.(*ast.CallExpression)
	if !ok {
		return Bind{Name: name}, NotCall
	}
	bind, reason := MatchCallSiteBind(call)
	if reason != Matched {
		return Bind{Name: name}, reason
	}
	if bind.Name != name {
		return Bind{Name: name}, NameMismatch
	}
	return bind, Matched
}

// IsConstructorBind reports whether e is this.<name> = this.<name>.bind(this).
func IsConstructorBind(e ast.Expr) bool {
	_, reason := MatchConstructorBind(e)
	return reason == Matched
}

// MatchCallSiteBind matches this.<name>.bind(this). On a rejection the
// returned Bind carries the bound name when the callee got that far.
func MatchCallSiteBind(call *ast.CallExpression) (Bind, Reason) {
	if call == nil {
		return Bind{}, NotCall
	}
	callee, ok := call.Callee.Expr.(*ast.MemberExpression)
	if !ok || callee.Computed || callee.Optional {
		return Bind{}, CalleeNotBind
	}
	if prop, ok := callee.Property.Expr.(*ast.Identifier); !ok || prop.Name != "bind" {
		return Bind{}, CalleeNotBind
	}
	name, ok := thisMemberName(callee.Object)
	if !ok {
		return Bind{}, BindNotThisMember
	}
	if call.Optional {
		return Bind{Name: name}, OptionalCall
	}
	if len(call.ArgumentList) != 1 {
		return Bind{Name: name}, ArgumentCount
	}
	if !ast.IsThis(&call.ArgumentList[0]) {
		return Bind{Name: name}, ArgumentNotThis
	}
	return Bind{Name: name, Target: callee.Object, Call: call}, Matched
}

// IsCallSiteBind reports whether call is this.<name>.bind(this).
func IsCallSiteBind(call *ast.CallExpression) bool {
	_, reason := MatchCallSiteBind(call)
	return reason == Matched
}

// thisMemberName returns name for a plain this.name access.
func thisMemberName(e *ast.Expression) (string, bool) {
	if e == nil {
		return "", false
	}
	m, ok := e.Expr.(*ast.MemberExpression)
	if !ok || m.Computed || m.Optional || !ast.IsThis(m.Object) {
		return "", false
	}
	id, ok := m.Property.Expr.(*ast.Identifier)
	if !ok {
		return "", false
	}
	return id.Name, true
}
