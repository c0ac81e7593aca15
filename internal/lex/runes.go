package lex

import (
	"unicode"

	"github.com/bits-and-blooms/bitset"
)

var (
	OPERATOR_CHARS  = []rune{'!', '@', '#', '$', '%', '*', '-', '+', '=', '_', '^', '~', '<', '>', '.', ':', '?', '/', ',', '|', '\\', '&'}
	REGEX_MODIFIERS = []rune{'i', 'm', 's', 'x', 'e', 'A', 'D', 'S', 'U', 'X', 'J', 'u'}

	//two-character bracket-like openers, matched before any other operator.
	OPENERS = []string{"&{", "&(", "#(", "#{", "%{"}

	LINE_COMMENT_OPENERS = []string{"--", "#!"}
	BLOCK_COMMENT_OPENER = "{-"
	BLOCK_COMMENT_CLOSER = "-}"
	REGEX_OPENER         = "&/"

	operatorCharSet  = newRuneSet(OPERATOR_CHARS)
	regexModifierSet = newRuneSet(REGEX_MODIFIERS)
)

// A runeSet is a set of ASCII runes backed by a bitset, other runes are never members.
type runeSet struct {
	bits *bitset.BitSet
}

func newRuneSet(runes []rune) runeSet {
	bits := bitset.New(unicode.MaxASCII + 1)
	for _, r := range runes {
		bits.Set(uint(r))
	}
	return runeSet{bits: bits}
}

func (s runeSet) has(r rune) bool {
	return r >= 0 && r <= unicode.MaxASCII && s.bits.Test(uint(r))
}

func IsOperatorChar(r rune) bool {
	return operatorCharSet.has(r)
}

func IsRegexModifier(r rune) bool {
	return regexModifierSet.has(r)
}

func isAlpha(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isDecDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func isBinDigit(r rune) bool {
	return r == '0' || r == '1'
}

func isOctalDigit(r rune) bool {
	return r >= '0' && r <= '7'
}

func IsIdentChar(r rune) bool {
	return isAlpha(r) || isDecDigit(r) || r == '_'
}

func IsFirstIdentChar(r rune) bool {
	return isAlpha(r) || r == '_'
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r)
}
