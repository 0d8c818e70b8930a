package token

import (
	"strconv"
)

// Token is the set of lexical tokens in JavaScript (ECMAScript 2022 plus JSX).
type Token int

// String returns the string corresponding to the token.
func (t Token) String() string {
	if t == 0 {
		return "UNKNOWN"
	}
	if t < Token(len(token2string)) && token2string[t] != "" {
		return token2string[t]
	}
	return "token(" + strconv.Itoa(int(t)) + ")"
}

// keyword ...
type keyword struct {
	token         Token
	futureKeyword bool
	strict        bool
}

// LiteralKeyword returns the keyword token if literal is a keyword, a Keyword token. If the literal is a future keyword
// (enum, ...), or 0 if the literal is not a keyword.
func LiteralKeyword(literal string) (Token, bool) {
	if k, exists := keywordTable[literal]; exists {
		if k.futureKeyword {
			return Keyword, k.strict
		}
		return k.token, false
	}
	return 0, false
}

// ID reports whether the token can start an identifier reference or a
// binding, that is an identifier or a contextual keyword.
func ID(token Token) bool {
	return token == Identifier || token > EscapedReservedWord && token < TemplateHead
}

// IdentifierName reports whether the token is allowed after a "." or as a
// property key: every identifier and every reserved word.
func IdentifierName(token Token) bool {
	return token >= Identifier && token < TemplateHead
}

// UnreservedWord ...
func UnreservedWord(token Token) bool {
	return token > EscapedReservedWord && token < TemplateHead
}

// IsAssign reports whether the token is "=" or a compound assignment operator.
func IsAssign(token Token) bool {
	switch token {
	case Assign, AddAssign, SubtractAssign, MultiplyAssign, ExponentAssign,
		QuotientAssign, RemainderAssign, AndAssign, OrAssign, ExclusiveOrAssign,
		ShiftLeftAssign, ShiftRightAssign, UnsignedShiftRightAssign,
		LogicalAndAssign, LogicalOrAssign, CoalesceAssign:
		return true
	}
	return false
}

// IsKeywordOperator reports whether the operator is spelled as a word and
// therefore needs surrounding spaces when printed.
func IsKeywordOperator(token Token) bool {
	switch token {
	case Typeof, Void, Delete, In, InstanceOf, Await:
		return true
	}
	return false
}
