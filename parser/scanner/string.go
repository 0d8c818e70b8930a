package scanner

import (
	"strings"
	"unicode/utf8"

	"github.com/t14raptor/autobind/ast"
	"github.com/t14raptor/autobind/token"
)

func (s *Scanner) scanStringLiteral(delim byte) token.Token {
	s.src.NextByteUnchecked()
	afterOpen := s.src.Offset()

	for {
		b, ok := s.src.PeekByte()
		if !ok || b == '\r' || b == '\n' {
			s.error(unterminatedString(s.Token.Idx0, s.src.pos))
			return token.Illegal
		}
		switch b {
		case delim:
			s.src.NextByteUnchecked()
			return token.String
		case '\\':
			return s.scanStringLiteralEscaped(delim, afterOpen)
		}
		s.src.NextByteUnchecked()
	}
}

func (s *Scanner) scanStringLiteralEscaped(delim byte, afterOpen ast.Idx) token.Token {
	soFar := s.src.FromPositionToCurrent(afterOpen)
	str := &strings.Builder{}
	str.Grow(max(len(soFar)*2, 16))
	str.WriteString(soFar)

	for {
		b, ok := s.src.PeekByte()
		if !ok || b == '\r' || b == '\n' {
			s.error(unterminatedString(s.Token.Idx0, s.src.pos))
			return token.Illegal
		}
		switch b {
		case delim:
			s.src.NextByteUnchecked()
			s.EscapedStr = str.String()
			s.Token.HasEscape = true
			return token.String
		case '\\':
			s.readEscapeSequence(str)
		default:
			r, _ := s.src.NextRune()
			str.WriteRune(r)
		}
	}
}

// readEscapeSequence decodes the escape sequence at the cursor, which must
// be a backslash, and appends its value to str.
func (s *Scanner) readEscapeSequence(str *strings.Builder) {
	start := s.src.pos
	s.src.NextByteUnchecked()

	r, ok := s.src.NextRune()
	if !ok {
		s.error(invalidEscapeSequence(start, s.src.pos))
		return
	}
	switch r {
	case 'n':
		str.WriteByte('\n')
	case 't':
		str.WriteByte('\t')
	case 'r':
		str.WriteByte('\r')
	case 'b':
		str.WriteByte('\b')
	case 'f':
		str.WriteByte('\f')
	case 'v':
		str.WriteByte('\v')
	case '0':
		if b, ok := s.src.PeekByte(); ok && isDecimalDigit(b) {
			s.error(invalidEscapeSequence(start, s.src.pos))
			return
		}
		str.WriteByte(0)
	case 'x':
		value, ok := s.hexDigits(2)
		if !ok {
			s.error(invalidEscapeSequence(start, s.src.pos))
			return
		}
		str.WriteRune(value)
	case 'u':
		value := s.unicodeEscape()
		if value < 0 {
			s.error(invalidUnicodeEscapeSequence(start, s.src.pos))
			return
		}
		str.WriteRune(value)
	case '\r':
		// Line continuation.
		s.src.AdvanceIfByteEquals('\n')
	case '\n', '\u2028', '\u2029':
	default:
		str.WriteRune(r)
	}
}

// unicodeEscape decodes the part of a \u escape after the u: either four
// hex digits or a code point in braces. It returns -1 when invalid.
func (s *Scanner) unicodeEscape() rune {
	if s.src.AdvanceIfByteEquals('{') {
		var value rune
		n := 0
		for {
			b, ok := s.src.NextByte()
			if !ok {
				return -1
			}
			if b == '}' {
				break
			}
			d := digitValue(b)
			if d >= 16 {
				return -1
			}
			value = value*16 + rune(d)
			if value > utf8.MaxRune {
				return -1
			}
			n++
		}
		if n == 0 {
			return -1
		}
		return value
	}
	value, ok := s.hexDigits(4)
	if !ok {
		return -1
	}
	return value
}

func (s *Scanner) hexDigits(n int) (rune, bool) {
	var value rune
	for i := 0; i < n; i++ {
		b, ok := s.src.PeekByte()
		if !ok || digitValue(b) >= 16 {
			return 0, false
		}
		s.src.NextByteUnchecked()
		value = value*16 + rune(digitValue(b))
	}
	return value, true
}
