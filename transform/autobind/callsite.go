package autobind

import "github.com/t14raptor/autobind/ast"

// RewriteCallSiteBinds reduces this.<name>.bind(this) calls outside the
// constructor of every class declaration in p to this.<name>, and turns each
// method bound that way into an arrow-valued field, once per name.
func RewriteCallSiteBinds(p *ast.Program) *Report {
	return Rewrite(p, ModeCallSite)
}

func (rw *classRewriter) rewriteCallSites() {
	v := &bindStripper{rw: rw}
	v.V = v
	for _, el := range rw.class.Body {
		m, ok := el.Element.(*ast.MethodDefinition)
		if !ok || m.Kind == ast.PropertyKindConstructor {
			continue
		}
		m.Body.VisitWith(v)
	}
	rw.convertMethods()
}

// bindStripper replaces matching bind calls by the member access they wrap.
// Nested classes are left to their own pass.
type bindStripper struct {
	ast.NoopVisitor
	rw *classRewriter
}

func (v *bindStripper) VisitExpression(n *ast.Expression) {
	if call, ok := n.Expr.(*ast.CallExpression); ok {
		bind, reason := MatchCallSiteBind(call)
		if reason == Matched && v.take(bind) {
			v.rw.report.edit(ast.SpanOf(call))
			n.Expr = bind.Target.Expr
			return
		}
		if reason.NearMiss() {
			v.rw.reject(bind.Name, call.Idx0(), reason)
		}
	}
	n.VisitChildrenWith(v)
}

// take reports whether the call binding name should be stripped. The first
// accepted call of a name schedules the method for conversion.
func (v *bindStripper) take(bind Bind) bool {
	rw := v.rw
	if rw.names.Has(bind.Name) {
		rw.report.StrippedCalls++
		return true
	}
	switch rw.methods[bind.Name] {
	case plainMethod:
		rw.names.Add(bind.Name)
		rw.report.StrippedCalls++
		return true
	case otherMethod:
		rw.reject(bind.Name, bind.Call.Idx0(), OutOfContract)
	default:
		rw.reject(bind.Name, bind.Call.Idx0(), UnknownMethod)
	}
	return false
}

func (v *bindStripper) VisitClassLiteral(*ast.ClassLiteral) {}
