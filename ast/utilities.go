package ast

import "slices"

// RemoveVisitor is a visitor that can remove nodes from the AST.
type RemoveVisitor struct {
	NoopVisitor
	remove   bool
	listItem *Statement
}

// Remove marks the current node for removal.
//
// A statement that is an element of a list is deleted from the list. A
// statement in a single statement position, such as the body of an if
// without braces, is replaced by an empty statement.
//
// If you override a Visit method that has deletion logic:
//   - [RemoveVisitor.VisitStatements]
//   - [RemoveVisitor.VisitStatement]
//   - [RemoveVisitor.VisitExpressions]
//   - [RemoveVisitor.VisitSequenceExpression]
//   - [RemoveVisitor.VisitClassElements]
//   - [RemoveVisitor.VisitProperties]
//
// make sure to either call the base implementation or handle removal manually.
func (v *RemoveVisitor) Remove() {
	v.remove = true
}

func (v *RemoveVisitor) VisitStatements(n *Statements) {
	count := len(*n)
	for i := 0; i < count; {
		v.listItem = &(*n)[i]
		(*n)[i].VisitWith(v.V)
		if v.remove {
			v.remove = false
			*n = slices.Delete(*n, i, i+1)
			count--
		} else {
			i++
		}
	}
	v.listItem = nil
}

func (v *RemoveVisitor) VisitStatement(n *Statement) {
	inList := n == v.listItem
	v.listItem = nil
	// A statement already marked is dropped whole; its children must not
	// consume the mark.
	if !v.remove {
		n.VisitChildrenWith(v.V)
	}
	if v.remove && !inList {
		v.remove = false
		n.Stmt = &EmptyStatement{Semicolon: n.Idx0()}
	}
}

func (v *RemoveVisitor) VisitExpressions(n *Expressions) {
	count := len(*n)
	for i := 0; i < count; {
		(*n)[i].VisitWith(v.V)
		if v.remove {
			v.remove = false
			*n = slices.Delete(*n, i, i+1)
			count--
		} else {
			i++
		}
	}
}

func (v *RemoveVisitor) VisitSequenceExpression(n *SequenceExpression) {
	n.VisitChildrenWith(v.V)
	if len(n.Sequence) == 0 {
		v.Remove()
	}
}

func (v *RemoveVisitor) VisitClassElements(n *ClassElements) {
	count := len(*n)
	for i := 0; i < count; {
		(*n)[i].VisitWith(v.V)
		if v.remove {
			v.remove = false
			*n = slices.Delete(*n, i, i+1)
			count--
		} else {
			i++
		}
	}
}

func (v *RemoveVisitor) VisitProperties(n *Properties) {
	count := len(*n)
	for i := 0; i < count; {
		(*n)[i].VisitWith(v.V)
		if v.remove {
			v.remove = false
			*n = slices.Delete(*n, i, i+1)
			count--
		} else {
			i++
		}
	}
}

// PropertyName returns the name of an identifier or string literal key.
func PropertyName(key *Expression) (string, bool) {
	if key == nil {
		return "", false
	}
	switch k := key.Expr.(type) {
	case *Identifier:
		return k.Name, true
	case *StringLiteral:
		return k.Value, true
	}
	return "", false
}

// IsThis reports whether e is a bare this.
func IsThis(e *Expression) bool {
	if e == nil {
		return false
	}
	_, ok := e.Expr.(*ThisExpression)
	return ok
}
