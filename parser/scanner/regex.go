package scanner

import (
	"strings"

	"github.com/t14raptor/autobind/token"
)

// RescanRegExp rescans the current / or /= token as a regular expression
// literal. It returns the pattern and the flags.
func (s *Scanner) RescanRegExp() (pattern, flags string) {
	start := s.Token.Idx0
	s.src.SetPosition(start + 1)

	var inEscape, inCharClass bool
	for {
		r, ok := s.src.NextRune()
		if !ok || isLineTerminator(r) {
			s.error(unterminatedRegExp(start, s.src.pos))
			s.Token.Kind = token.Illegal
			s.Token.Idx1 = s.src.pos
			return "", ""
		}

		if inEscape {
			inEscape = false
		} else if r == '/' && !inCharClass {
			break
		} else if r == '[' {
			inCharClass = true
		} else if r == '\\' {
			inEscape = true
		} else if r == ']' {
			inCharClass = false
		}
	}
	pattern = s.src.Slice(start+1, s.src.pos-1)

	flagsStart := s.src.pos
	for {
		r, ok := s.src.PeekRune()
		if !ok || !isIdentifierPart(r) {
			break
		}
		s.src.NextRune()
		if !strings.ContainsRune("dgimsuvy", r) {
			s.error(regExpFlag(r, s.src.pos-1, s.src.pos))
		} else if strings.ContainsRune(s.src.Slice(flagsStart, s.src.pos-1), r) {
			s.error(regExpFlagTwice(r, s.src.pos-1, s.src.pos))
		}
	}
	flags = s.src.FromPositionToCurrent(flagsStart)

	s.Token.Kind = token.RegExp
	s.Token.HasEscape = false
	s.Token.Idx1 = s.src.pos
	return pattern, flags
}
