package scanner

import (
	"github.com/t14raptor/autobind/token"
)

// ReadTemplateLiteral scans the body of a template literal.
// The opening delimiter (` or }) must already have been consumed by the caller.
// sub is the Token to return when encountering ${, tail is for closing `.
func (s *Scanner) ReadTemplateLiteral(sub, tail token.Token) token.Token {
	for {
		b, ok := s.src.PeekByte()
		if !ok {
			s.error(unterminatedTemplateLiteral(s.Token.Idx0, s.src.pos))
			return token.Illegal
		}

		switch b {
		case '$':
			s.src.NextByteUnchecked()
			if s.src.AdvanceIfByteEquals('{') {
				return sub
			}
		case '`':
			s.src.NextByteUnchecked()
			return tail
		case '\\':
			// The escape is kept raw; only skip the escaped character.
			s.src.NextByteUnchecked()
			s.src.NextRune()
		default:
			s.src.NextByteUnchecked()
		}
	}
}

// RescanTemplateContinuation rescans the current } token as the start of
// the next template element, after the expression of a substitution.
func (s *Scanner) RescanTemplateContinuation() {
	s.src.SetPosition(s.Token.Idx0 + 1)
	s.Token.HasEscape = false
	s.Token.Kind = s.ReadTemplateLiteral(token.TemplateMiddle, token.TemplateTail)
	s.Token.Idx1 = s.src.pos
}
