package scanner

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/rangetable"

	"github.com/t14raptor/autobind/ast"
)

// Lookup tables for ASCII identifier characters.
// Non-ASCII bytes (>= 128) are always false, branching to the Unicode path.
var asciiStart, asciiContinue [256]bool

var (
	idStart    = rangetable.Merge(unicode.L, unicode.Nl, unicode.Other_ID_Start)
	idContinue = rangetable.Merge(idStart, unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc, unicode.Other_ID_Continue)
)

func init() {
	for i := 0; i < 128; i++ {
		if i >= 'a' && i <= 'z' || i >= 'A' && i <= 'Z' || i == '$' || i == '_' {
			asciiStart[i] = true
			asciiContinue[i] = true
		}
		if i >= '0' && i <= '9' {
			asciiContinue[i] = true
		}
	}
}

func isIdentifierStart(chr rune) bool {
	if chr < 0 {
		return false
	}
	if chr < utf8.RuneSelf {
		return asciiStart[chr]
	}
	return unicode.Is(idStart, chr)
}

func isIdentifierPart(chr rune) bool {
	if chr < 0 {
		return false
	}
	if chr < utf8.RuneSelf {
		return asciiContinue[chr]
	}
	// ZWNJ and ZWJ
	return chr == '\u200c' || chr == '\u200d' || unicode.Is(idContinue, chr)
}

func isDecimalDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isLineTerminator(chr rune) bool {
	switch chr {
	case '\u000a', '\u000d', '\u2028', '\u2029':
		return true
	}
	return false
}

func isLineWhiteSpace(chr rune) bool {
	switch chr {
	case '\u0009', '\u000b', '\u000c', ' ', '\u00a0', '\ufeff':
		return true
	case '\u000a', '\u000d', '\u2028', '\u2029', '\u0085':
		return false
	}
	return unicode.IsSpace(chr)
}

// scanIdentifier scans an identifier starting at the cursor and returns its
// name. Unicode escapes are decoded into EscapedStr.
func (s *Scanner) scanIdentifier() string {
	start := s.src.pos
	for {
		b, ok := s.src.PeekByte()
		if !ok {
			break
		}
		if b < utf8.RuneSelf {
			if asciiContinue[b] {
				s.src.NextByteUnchecked()
				continue
			}
			if b == '\\' {
				return s.scanIdentifierBackslash(start)
			}
			break
		}
		r, _ := s.src.PeekRune()
		if !isIdentifierPart(r) {
			break
		}
		s.src.NextRune()
	}
	return s.src.FromPositionToCurrent(start)
}

func (s *Scanner) scanIdentifierBackslash(start ast.Idx) string {
	str := &strings.Builder{}
	str.WriteString(s.src.FromPositionToCurrent(start))

	for {
		r, ok := s.src.PeekRune()
		if !ok {
			break
		}
		if r == '\\' {
			escStart := s.src.pos
			s.src.NextByteUnchecked()
			if !s.src.AdvanceIfByteEquals('u') {
				s.error(invalidUnicodeEscapeSequence(escStart, s.src.pos))
				break
			}
			value := s.unicodeEscape()
			valid := isIdentifierPart(value)
			if str.Len() == 0 {
				valid = isIdentifierStart(value)
			}
			if !valid {
				s.error(invalidUnicodeEscapeSequence(escStart, s.src.pos))
				break
			}
			str.WriteRune(value)
			continue
		}
		if !isIdentifierPart(r) {
			break
		}
		s.src.NextRune()
		str.WriteRune(r)
	}

	s.EscapedStr = str.String()
	s.Token.HasEscape = true
	return s.EscapedStr
}
