package ast

type CommentKind int

const (
	LineComment CommentKind = iota
	BlockComment
)

// Comment is a comment as written in the source, delimiters included.
type Comment struct {
	Kind  CommentKind
	Text  string
	Start Idx
	End   Idx
	// NewlineBefore is set when a line break separates the comment from the
	// preceding token.
	NewlineBefore bool
}

// Comments are the comments attached to a statement or a class member.
// Leading comments precede the node on their own lines; trailing comments
// follow it on the same line.
type Comments struct {
	Leading  []Comment
	Trailing []Comment
}

func (c Comments) Empty() bool {
	return len(c.Leading) == 0 && len(c.Trailing) == 0
}

// Clone returns a copy that shares no backing arrays with c.
func (c Comments) Clone() Comments {
	var out Comments
	if len(c.Leading) > 0 {
		out.Leading = append([]Comment(nil), c.Leading...)
	}
	if len(c.Trailing) > 0 {
		out.Trailing = append([]Comment(nil), c.Trailing...)
	}
	return out
}
