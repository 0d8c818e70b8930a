package autobind

import (
	"slices"

	"golang.org/x/exp/maps"

	"github.com/t14raptor/autobind/ast"
)

// Member identifies a class member in a Report.
type Member struct {
	Class string
	Name  string
	Pos   ast.Idx
}

// Rejection is a bind the rewriters recognised but left in place.
type Rejection struct {
	Member
	Reason Reason
}

// Warning flags a conversion that may behave differently from the method
// it replaced.
type Warning struct {
	Member
	Message string
}

// Report describes what a rewrite did to a program.
type Report struct {
	Mode Mode
	// Classes counts the class declarations visited.
	Classes int
	// Converted lists the methods replaced by arrow-valued fields.
	Converted []Member
	// RemovedBinds counts deleted constructor assignments.
	RemovedBinds int
	// StrippedCalls counts .bind(this) calls reduced to this.<name>.
	StrippedCalls int
	Rejections    []Rejection
	Warnings      []Warning
	// Edits are the source ranges whose text no longer matches the tree.
	Edits []ast.Span
}

// Changed reports whether the rewrite modified the tree.
func (r *Report) Changed() bool {
	return len(r.Edits) > 0
}

// ConvertedNames returns the distinct names of converted methods, sorted.
func (r *Report) ConvertedNames() []string {
	set := make(map[string]struct{}, len(r.Converted))
	for _, m := range r.Converted {
		set[m.Name] = struct{}{}
	}
	names := maps.Keys(set)
	slices.Sort(names)
	return names
}

func (r *Report) edit(span ast.Span) {
	r.Edits = append(r.Edits, span)
}

func (r *Report) reject(class, name string, pos ast.Idx, reason Reason) {
	r.Rejections = append(r.Rejections, Rejection{
		Member: Member{Class: class, Name: name, Pos: pos},
		Reason: reason,
	})
}

func (r *Report) warn(class, name string, pos ast.Idx, msg string) {
	r.Warnings = append(r.Warnings, Warning{
		Member:  Member{Class: class, Name: name, Pos: pos},
		Message: msg,
	})
}
