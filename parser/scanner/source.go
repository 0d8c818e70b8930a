package scanner

import (
	"unicode/utf8"
	"unsafe"

	"github.com/t14raptor/autobind/ast"
)

// Source is a cursor over the bytes of the input. It never copies the
// input: slices handed out share memory with the original string.
type Source struct {
	base unsafe.Pointer
	pos  ast.Idx
	len  ast.Idx
}

func NewSource(src string) Source {
	return Source{
		base: unsafe.Pointer(unsafe.StringData(src)),
		pos:  0,
		len:  ast.Idx(len(src)),
	}
}

func (s *Source) EOF() bool {
	return s.pos >= s.len
}

func (s *Source) Offset() ast.Idx {
	return s.pos
}

func (s *Source) EndOffset() ast.Idx {
	return s.len
}

func (s *Source) SetPosition(pos ast.Idx) {
	s.pos = pos
}

func (s *Source) ReadPosition(pos ast.Idx) byte {
	return *(*byte)(unsafe.Add(s.base, pos))
}

func (s *Source) NextRune() (rune, bool) {
	r, size, ok := s.decodeRune()
	if !ok {
		return 0, false
	}
	s.pos += ast.Idx(size)
	return r, true
}

func (s *Source) PeekRune() (rune, bool) {
	r, _, ok := s.decodeRune()
	return r, ok
}

func (s *Source) decodeRune() (rune, int, bool) {
	b, ok := s.PeekByte()
	if !ok {
		return 0, 0, false
	}
	if b < utf8.RuneSelf {
		return rune(b), 1, true
	}
	r, size := utf8.DecodeRuneInString(s.Slice(s.pos, s.len))
	return r, size, true
}

func (s *Source) NextByte() (byte, bool) {
	if s.EOF() {
		return 0, false
	}
	return s.NextByteUnchecked(), true
}

func (s *Source) NextByteUnchecked() byte {
	b := *(*byte)(unsafe.Add(s.base, s.pos))
	s.pos++
	return b
}

func (s *Source) PeekByte() (byte, bool) {
	if s.EOF() {
		return 0, false
	}
	return s.PeekByteUnchecked(), true
}

// PeekByteAt returns the byte n positions after the cursor.
func (s *Source) PeekByteAt(n int) (byte, bool) {
	pos := s.pos + ast.Idx(n)
	if pos >= s.len {
		return 0, false
	}
	return s.ReadPosition(pos), true
}

func (s *Source) PeekByteUnchecked() byte {
	return *(*byte)(unsafe.Add(s.base, s.pos))
}

func (s *Source) AdvanceIfByteEquals(b byte) (matched bool) {
	nextB, ok := s.PeekByte()
	if ok && nextB == b {
		s.pos++
		return true
	}
	return false
}

func (s *Source) FromPositionToCurrent(pos ast.Idx) string {
	return s.Slice(pos, s.pos)
}

func (s *Source) Slice(from, to ast.Idx) string {
	if to <= from {
		return ""
	}
	return unsafe.String((*byte)(unsafe.Add(s.base, from)), int(to-from))
}
