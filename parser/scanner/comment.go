package scanner

import "github.com/t14raptor/autobind/ast"

func (s *Scanner) skipSingleLineComment() {
	start := s.src.pos
	s.src.pos += 2
	for {
		r, ok := s.src.PeekRune()
		if !ok || isLineTerminator(r) {
			break
		}
		s.src.NextRune()
	}
	s.addComment(ast.LineComment, start)
}

func (s *Scanner) skipMultiLineComment() {
	start := s.src.pos
	s.src.pos += 2
	for {
		r, ok := s.src.NextRune()
		if !ok {
			s.error(unterminatedMultiLineComment(start, s.src.pos))
			break
		}
		if r == '*' && s.src.AdvanceIfByteEquals('/') {
			break
		}
		if isLineTerminator(r) {
			s.Token.OnNewLine = true
		}
	}
	s.addComment(ast.BlockComment, start)
}

func (s *Scanner) skipHashbang() {
	for {
		r, ok := s.src.PeekRune()
		if !ok || isLineTerminator(r) {
			break
		}
		s.src.NextRune()
	}
	s.addComment(ast.LineComment, 0)
}

func (s *Scanner) addComment(kind ast.CommentKind, start ast.Idx) {
	s.comments = append(s.comments, ast.Comment{
		Kind:          kind,
		Text:          s.src.FromPositionToCurrent(start),
		Start:         start,
		End:           s.src.pos,
		NewlineBefore: s.newlineBefore(start),
	})
}

// newlineBefore reports whether only whitespace and a line break separate
// start from the previous non-blank character or the start of the input.
func (s *Scanner) newlineBefore(start ast.Idx) bool {
	for i := start - 1; i >= 0; i-- {
		switch s.src.ReadPosition(i) {
		case '\n', '\r':
			return true
		case ' ', '\t':
			continue
		}
		return false
	}
	return true
}
