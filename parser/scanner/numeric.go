package scanner

import "github.com/t14raptor/autobind/token"

func digitValue(b byte) int {
	switch {
	case b >= '0' && b <= '9':
		return int(b - '0')
	case b >= 'a' && b <= 'f':
		return int(b-'a') + 10
	case b >= 'A' && b <= 'F':
		return int(b-'A') + 10
	}
	return 16
}

func (s *Scanner) readZero() token.Token {
	b, ok := s.src.PeekByte()
	if !ok {
		return token.Number
	}

	switch b {
	case 'b', 'B':
		return s.readNonDecimal(2)
	case 'o', 'O':
		return s.readNonDecimal(8)
	case 'x', 'X':
		return s.readNonDecimal(16)
	case 'n':
		s.src.NextByteUnchecked()
		return s.checkAfterNumericLiteral()
	}
	return s.decimalLiteralAfterFirstDigit()
}

func (s *Scanner) decimalLiteralAfterFirstDigit() token.Token {
	s.digits(10)
	if s.src.AdvanceIfByteEquals('n') {
		return s.checkAfterNumericLiteral()
	}
	if s.src.AdvanceIfByteEquals('.') {
		return s.decLitAfterDecPoint()
	}
	s.readDecExp()
	return s.checkAfterNumericLiteral()
}

func (s *Scanner) decLitAfterDecPoint() token.Token {
	s.digits(10)
	s.readDecExp()
	return s.checkAfterNumericLiteral()
}

func (s *Scanner) readDecExp() {
	b, ok := s.src.PeekByte()
	if !ok || b != 'e' && b != 'E' {
		return
	}
	s.src.NextByteUnchecked()
	if b, ok := s.src.PeekByte(); ok && (b == '+' || b == '-') {
		s.src.NextByteUnchecked()
	}
	s.digits(10)
}

func (s *Scanner) readNonDecimal(base int) token.Token {
	s.src.NextByteUnchecked()
	if s.digits(base) == 0 {
		s.error(invalidNumberEnd(s.Token.Idx0, s.src.pos))
		return token.Illegal
	}
	s.src.AdvanceIfByteEquals('n')
	return s.checkAfterNumericLiteral()
}

// digits consumes digits of the given base and numeric separators.
func (s *Scanner) digits(base int) int {
	n := 0
	for {
		b, ok := s.src.PeekByte()
		if !ok {
			return n
		}
		if b == '_' {
			if next, ok := s.src.PeekByteAt(1); ok && digitValue(next) < base {
				s.src.NextByteUnchecked()
				continue
			}
			return n
		}
		if digitValue(b) >= base {
			return n
		}
		s.src.NextByteUnchecked()
		n++
	}
}

func (s *Scanner) checkAfterNumericLiteral() token.Token {
	r, ok := s.src.PeekRune()
	if ok && (isIdentifierStart(r) || r < 128 && isDecimalDigit(byte(r))) {
		start := s.src.pos
		s.scanIdentifier()
		s.error(invalidNumberEnd(start, s.src.pos))
		return token.Illegal
	}
	return token.Number
}
