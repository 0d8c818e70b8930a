package scanner

import (
	"unicode/utf8"

	"github.com/t14raptor/autobind/ast"
	"github.com/t14raptor/autobind/token"
)

type Scanner struct {
	Token Token

	// EscapedStr holds the cooked value of the current token when
	// Token.HasEscape is set.
	EscapedStr string

	src      Source
	errors   []Error
	comments []ast.Comment
}

func New(src string) *Scanner {
	s := &Scanner{src: NewSource(src)}
	if len(src) > 1 && src[0] == '#' && src[1] == '!' {
		s.skipHashbang()
	}
	return s
}

// Next scans the next token in regular JavaScript context.
func (s *Scanner) Next() {
	s.Token.HasEscape = false
	s.Token.OnNewLine = false

	for {
		s.Token.Idx0 = s.src.pos

		b, ok := s.src.PeekByte()
		if !ok {
			s.Token.Kind = token.Eof
			break
		}
		if s.Token.Kind = s.scan(b); s.Token.Kind != token.Skip {
			break
		}
	}
	s.Token.Idx1 = s.src.pos
}

func (s *Scanner) scan(b byte) token.Token {
	switch b {
	// ---- Whitespace ----
	case '\t', ' ', 0x0B, 0x0C:
		s.src.NextByteUnchecked()
		return token.Skip
	case '\n', '\r':
		s.src.NextByteUnchecked()
		s.Token.OnNewLine = true
		return token.Skip

	// ---- Single-character punctuation ----
	case '(':
		s.src.NextByteUnchecked()
		return token.LeftParenthesis
	case ')':
		s.src.NextByteUnchecked()
		return token.RightParenthesis
	case ',':
		s.src.NextByteUnchecked()
		return token.Comma
	case ':':
		s.src.NextByteUnchecked()
		return token.Colon
	case ';':
		s.src.NextByteUnchecked()
		return token.Semicolon
	case '[':
		s.src.NextByteUnchecked()
		return token.LeftBracket
	case ']':
		s.src.NextByteUnchecked()
		return token.RightBracket
	case '{':
		s.src.NextByteUnchecked()
		return token.LeftBrace
	case '}':
		s.src.NextByteUnchecked()
		return token.RightBrace
	case '~':
		s.src.NextByteUnchecked()
		return token.BitwiseNot

	// ---- Operators ----
	case '!':
		s.src.NextByteUnchecked()
		if s.src.AdvanceIfByteEquals('=') {
			if s.src.AdvanceIfByteEquals('=') {
				return token.StrictNotEqual
			}
			return token.NotEqual
		}
		return token.Not
	case '%':
		s.src.NextByteUnchecked()
		return s.assignOr(token.Remainder, token.RemainderAssign)
	case '^':
		s.src.NextByteUnchecked()
		return s.assignOr(token.ExclusiveOr, token.ExclusiveOrAssign)
	case '&':
		s.src.NextByteUnchecked()
		if s.src.AdvanceIfByteEquals('&') {
			return s.assignOr(token.LogicalAnd, token.LogicalAndAssign)
		}
		return s.assignOr(token.And, token.AndAssign)
	case '|':
		s.src.NextByteUnchecked()
		if s.src.AdvanceIfByteEquals('|') {
			return s.assignOr(token.LogicalOr, token.LogicalOrAssign)
		}
		return s.assignOr(token.Or, token.OrAssign)
	case '*':
		s.src.NextByteUnchecked()
		if s.src.AdvanceIfByteEquals('*') {
			return s.assignOr(token.Exponent, token.ExponentAssign)
		}
		return s.assignOr(token.Multiply, token.MultiplyAssign)
	case '+':
		s.src.NextByteUnchecked()
		if s.src.AdvanceIfByteEquals('+') {
			return token.Increment
		}
		return s.assignOr(token.Plus, token.AddAssign)
	case '-':
		s.src.NextByteUnchecked()
		if s.src.AdvanceIfByteEquals('-') {
			return token.Decrement
		}
		return s.assignOr(token.Minus, token.SubtractAssign)
	case '=':
		s.src.NextByteUnchecked()
		if s.src.AdvanceIfByteEquals('>') {
			return token.Arrow
		}
		if s.src.AdvanceIfByteEquals('=') {
			if s.src.AdvanceIfByteEquals('=') {
				return token.StrictEqual
			}
			return token.Equal
		}
		return token.Assign
	case '<':
		s.src.NextByteUnchecked()
		if s.src.AdvanceIfByteEquals('<') {
			return s.assignOr(token.ShiftLeft, token.ShiftLeftAssign)
		}
		if s.src.AdvanceIfByteEquals('=') {
			return token.LessOrEqual
		}
		return token.Less
	case '>':
		s.src.NextByteUnchecked()
		if s.src.AdvanceIfByteEquals('>') {
			if s.src.AdvanceIfByteEquals('>') {
				return s.assignOr(token.UnsignedShiftRight, token.UnsignedShiftRightAssign)
			}
			return s.assignOr(token.ShiftRight, token.ShiftRightAssign)
		}
		if s.src.AdvanceIfByteEquals('=') {
			return token.GreaterOrEqual
		}
		return token.Greater
	case '?':
		s.src.NextByteUnchecked()
		if s.src.AdvanceIfByteEquals('?') {
			return s.assignOr(token.Coalesce, token.CoalesceAssign)
		}
		if next, ok := s.src.PeekByte(); ok && next == '.' {
			// a?.5:b is a conditional, not an optional chain.
			if after, ok := s.src.PeekByteAt(1); !ok || !isDecimalDigit(after) {
				s.src.NextByteUnchecked()
				return token.QuestionDot
			}
		}
		return token.QuestionMark
	case '.':
		s.src.NextByteUnchecked()
		return s.readDot()
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
		return s.assignOr(token.Slash, token.QuotientAssign)

	// ---- Literals ----
	case '"', '\'':
		return s.scanStringLiteral(b)
	case '`':
		s.src.NextByteUnchecked()
		return s.ReadTemplateLiteral(token.TemplateHead, token.NoSubstitutionTemplate)
	case '0':
		s.src.NextByteUnchecked()
		return s.readZero()
	case '1', '2', '3', '4', '5', '6', '7', '8', '9':
		s.src.NextByteUnchecked()
		return s.decimalLiteralAfterFirstDigit()

	// ---- Identifiers ----
	case '#':
		s.src.NextByteUnchecked()
		r, ok := s.src.PeekRune()
		if !ok || !isIdentifierStart(r) && r != '\\' {
			s.error(invalidCharacter('#', s.Token.Idx0, s.src.pos))
			return token.Illegal
		}
		s.scanIdentifier()
		return token.PrivateIdentifier
	case '\\':
		return s.identifierOrKeyword(s.scanIdentifier())
	}

	if b < utf8.RuneSelf {
		if asciiStart[b] {
			return s.identifierOrKeyword(s.scanIdentifier())
		}
		s.src.NextByteUnchecked()
		s.error(invalidCharacter(rune(b), s.Token.Idx0, s.src.pos))
		return token.Illegal
	}

	r, _ := s.src.PeekRune()
	switch {
	case isLineTerminator(r):
		s.src.NextRune()
		s.Token.OnNewLine = true
		return token.Skip
	case isLineWhiteSpace(r):
		s.src.NextRune()
		return token.Skip
	case isIdentifierStart(r):
		return s.identifierOrKeyword(s.scanIdentifier())
	}
	s.src.NextRune()
	s.error(invalidCharacter(r, s.Token.Idx0, s.src.pos))
	return token.Illegal
}

func (s *Scanner) assignOr(op, assign token.Token) token.Token {
	if s.src.AdvanceIfByteEquals('=') {
		return assign
	}
	return op
}

func (s *Scanner) readDot() token.Token {
	if next, ok := s.src.PeekByte(); ok && next == '.' {
		if after, ok := s.src.PeekByteAt(1); ok && after == '.' {
			s.src.pos += 2
			return token.Ellipsis
		}
	}
	if b, ok := s.src.PeekByte(); ok && isDecimalDigit(b) {
		return s.decLitAfterDecPoint()
	}
	return token.Period
}

func (s *Scanner) identifierOrKeyword(id string) token.Token {
	tok, _ := token.LiteralKeyword(id)
	if tok == 0 {
		return token.Identifier
	}
	if s.Token.HasEscape {
		// An escaped keyword can only ever be used as an identifier name.
		if token.UnreservedWord(tok) {
			return tok
		}
		return token.EscapedReservedWord
	}
	return tok
}

func (s *Scanner) error(err Error) {
	s.errors = append(s.errors, err)
}

// Errors returns every error reported since the scanner was created.
func (s *Scanner) Errors() []Error {
	return s.errors
}

// TakeComments returns the comments scanned since the previous call.
func (s *Scanner) TakeComments() []ast.Comment {
	c := s.comments
	s.comments = nil
	return c
}

type Checkpoint struct {
	pos      ast.Idx
	tok      Token
	escaped  string
	errors   int
	comments int
}

func (s *Scanner) Checkpoint() Checkpoint {
	return Checkpoint{
		pos:      s.src.pos,
		tok:      s.Token,
		escaped:  s.EscapedStr,
		errors:   len(s.errors),
		comments: len(s.comments),
	}
}

func (s *Scanner) Rewind(c Checkpoint) {
	s.src.pos = c.pos
	s.Token = c.tok
	s.EscapedStr = c.escaped
	s.errors = s.errors[:c.errors]
	if c.comments <= len(s.comments) {
		s.comments = s.comments[:c.comments]
	}
}

func (s *Scanner) Offset() ast.Idx {
	return s.src.Offset()
}

func (s *Scanner) Slice(from, to ast.Idx) string {
	return s.src.Slice(from, to)
}

func (s *Scanner) Len() ast.Idx {
	return s.src.EndOffset()
}
