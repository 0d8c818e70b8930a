package autobind

import "github.com/t14raptor/autobind/ast"

type memberStatus int

const (
	noMethod memberStatus = iota
	// Every method of that name can become an arrow-valued field.
	plainMethod
	// A getter, setter, static or generator method, or the constructor.
	otherMethod
)

// classRewriter holds the per-class state of one rewrite pass.
type classRewriter struct {
	class   *ast.ClassLiteral
	name    string
	methods map[string]memberStatus
	// Names of the methods to convert.
	names  *nameSet
	report *Report
}

func newClassRewriter(class *ast.ClassLiteral, report *Report) *classRewriter {
	rw := &classRewriter{
		class:   class,
		name:    "(anonymous)",
		methods: make(map[string]memberStatus),
		names:   newNameSet(),
		report:  report,
	}
	if class.Name != nil {
		rw.name = class.Name.Name
	}
	for _, el := range class.Body {
		m, ok := el.Element.(*ast.MethodDefinition)
		if !ok {
			continue
		}
		name, ok := m.KeyName()
		if !ok {
			continue
		}
		switch {
		case !convertible(m):
			rw.methods[name] = otherMethod
		case rw.methods[name] == noMethod:
			rw.methods[name] = plainMethod
		}
	}
	return rw
}

func (rw *classRewriter) reject(name string, pos ast.Idx, reason Reason) {
	rw.report.reject(rw.name, name, pos, reason)
}

// convertMethods replaces every method named in rw.names by its arrow-valued
// field, at the same index.
func (rw *classRewriter) convertMethods() {
	if rw.names.Len() == 0 {
		return
	}
	for i := range rw.class.Body {
		m, ok := rw.class.Body[i].Element.(*ast.MethodDefinition)
		if !ok || !convertible(m) {
			continue
		}
		name, ok := m.KeyName()
		if !ok || !rw.names.Has(name) {
			continue
		}
		rw.class.Body[i].Element = ConvertMethod(m)
		rw.report.edit(headerSpan(m))
		rw.report.Converted = append(rw.report.Converted, Member{Class: rw.name, Name: name, Pos: m.Idx})
		if usesArguments(m.Body.Body) {
			rw.report.warn(rw.name, name, m.Idx, "uses arguments, which an arrow function takes from the enclosing scope")
		}
	}
}

// statementSpan covers a statement and the comments attached to it.
func statementSpan(st *ast.Statement) ast.Span {
	span := ast.SpanOf(st.Stmt)
	if l := st.Comments.Leading; len(l) > 0 {
		span.From = l[0].Start
	}
	if t := st.Comments.Trailing; len(t) > 0 {
		span.To = t[len(t)-1].End
	}
	return span
}
