package scanner

import (
	"github.com/t14raptor/autobind/token"
)

// NextInsideJSXElement scans the next token between < and > of a JSX tag.
// Identifiers may contain dashes and strings are taken verbatim.
func (s *Scanner) NextInsideJSXElement() {
	s.Token.HasEscape = false
	s.Token.OnNewLine = false

	for {
		s.Token.Idx0 = s.src.pos
		b, ok := s.src.PeekByte()
		if !ok {
			s.Token.Kind = token.Eof
			break
		}
		if s.Token.Kind = s.scanInsideJSXElement(b); s.Token.Kind != token.Skip {
			break
		}
	}
	s.Token.Idx1 = s.src.pos
}

func (s *Scanner) scanInsideJSXElement(b byte) token.Token {
	switch b {
	case ' ', '\t', '\r', '\n', 0x0B, 0x0C:
		s.src.NextByteUnchecked()
		return token.Skip
	case '<':
		s.src.NextByteUnchecked()
		return token.Less
	case '>':
		s.src.NextByteUnchecked()
		return token.Greater
	case '/':
		switch next, _ := s.src.PeekByteAt(1); next {
		case '/':
			s.skipSingleLineComment()
			return token.Skip
		case '*':
			s.skipMultiLineComment()
			return token.Skip
		}
		s.src.NextByteUnchecked()
		return token.Slash
	case '{':
		s.src.NextByteUnchecked()
		return token.LeftBrace
	case '}':
		s.src.NextByteUnchecked()
		return token.RightBrace
	case '=':
		s.src.NextByteUnchecked()
		return token.Assign
	case '.':
		s.src.NextByteUnchecked()
		return token.Period
	case ':':
		s.src.NextByteUnchecked()
		return token.Colon
	case '"', '\'':
		s.src.NextByteUnchecked()
		for {
			c, ok := s.src.NextByte()
			if !ok {
				s.error(unterminatedString(s.Token.Idx0, s.src.pos))
				return token.Illegal
			}
			if c == b {
				return token.String
			}
		}
	}

	r, _ := s.src.PeekRune()
	if !isIdentifierStart(r) {
		s.src.NextRune()
		s.error(invalidCharacter(r, s.Token.Idx0, s.src.pos))
		return token.Illegal
	}
	for {
		r, ok := s.src.PeekRune()
		if !ok || !isIdentifierPart(r) && r != '-' {
			break
		}
		s.src.NextRune()
	}
	return token.Identifier
}

// NextJSXElementChild scans the next child of a JSX element: text up to the
// next { or <, or one of those two tokens.
func (s *Scanner) NextJSXElementChild() {
	s.Token.HasEscape = false
	s.Token.OnNewLine = false
	s.Token.Idx0 = s.src.pos

	b, ok := s.src.PeekByte()
	switch {
	case !ok:
		s.Token.Kind = token.Eof
	case b == '{':
		s.src.NextByteUnchecked()
		s.Token.Kind = token.LeftBrace
	case b == '<':
		s.src.NextByteUnchecked()
		s.Token.Kind = token.Less
	default:
		for {
			b, ok := s.src.PeekByte()
			if !ok || b == '{' || b == '<' {
				break
			}
			s.src.NextByteUnchecked()
		}
		s.Token.Kind = token.JSXText
	}
	s.Token.Idx1 = s.src.pos
}
