package autobind

import (
	"slices"

	"github.com/t14raptor/autobind/ast"
)

// RewriteConstructorBinds removes this.<name> = this.<name>.bind(this) from
// the constructor of every class declaration in p and turns each method
// named by a removed assignment into an arrow-valued field.
func RewriteConstructorBinds(p *ast.Program) *Report {
	return Rewrite(p, ModeConstructor)
}

func (rw *classRewriter) rewriteConstructor() {
	ctor, _ := rw.class.Constructor()
	if ctor == nil {
		return
	}
	v := &bindRemover{rw: rw}
	v.V = v
	ctor.Body.Body.VisitWith(v)
	rw.convertMethods()
}

// bindRemover deletes matching bind assignments from a constructor body.
// It stops at nested functions and classes, where this is something else.
type bindRemover struct {
	ast.RemoveVisitor
	rw *classRewriter
}

func (v *bindRemover) VisitStatement(n *ast.Statement) {
	if es, ok := n.Stmt.(*ast.ExpressionStatement); ok {
		span := statementSpan(n)
		switch e := es.Expression.Expr.(type) {
		case *ast.SequenceExpression:
			before := len(e.Sequence)
			e.Sequence = slices.DeleteFunc(e.Sequence, func(ex ast.Expression) bool {
				return v.take(ex.Expr)
			})
			if len(e.Sequence) != before {
				v.rw.report.edit(span)
			}
			if len(e.Sequence) == 0 {
				n.Comments = ast.Comments{}
			}
		default:
			if v.take(e) {
				v.rw.report.edit(span)
				n.Comments = ast.Comments{}
				v.Remove()
			}
		}
	}
	v.RemoveVisitor.VisitStatement(n)
}

// take reports whether e is a bind assignment that should be deleted and
// records its name for conversion.
func (v *bindRemover) take(e ast.Expr) bool {
	bind, reason := MatchConstructorBind(e)
	if reason != Matched {
		if reason.NearMiss() {
			v.rw.reject(bind.Name, e.Idx0(), reason)
		}
		return false
	}
	switch v.rw.methods[bind.Name] {
	case plainMethod:
		v.rw.names.Add(bind.Name)
	case otherMethod:
		v.rw.reject(bind.Name, e.Idx0(), OutOfContract)
		return false
	default:
		v.rw.report.warn(v.rw.name, bind.Name, e.Idx0(), "bind removed, the class has no method of that name")
	}
	v.rw.report.RemovedBinds++
	return true
}

func (v *bindRemover) VisitFunctionLiteral(*ast.FunctionLiteral) {}
func (v *bindRemover) VisitClassLiteral(*ast.ClassLiteral)       {}
