package lex

import (
	"fmt"

	"github.com/quacklang/quack/internal/sourcecode"
)

const (
	DELIMITER_META_KEY = "delimiter"
	FIXITY_META_KEY    = "fixity"
)

type TokenType uint16

const (
	EOF TokenType = iota
	IDENTIFIER
	INT_LITERAL
	HEX_INT_LITERAL
	BIN_INT_LITERAL
	OCT_INT_LITERAL
	FLOAT_LITERAL
	EXP_FLOAT_LITERAL
	STRING_LITERAL
	REGEX_LITERAL
	ATOM_LITERAL
	OPERATOR

	//keywords
	LET_KEYWORD
	MUT_KEYWORD
	FN_KEYWORD
	NATIVE_KEYWORD
	WHILE_KEYWORD
	DO_KEYWORD
	BEGIN_KEYWORD
	END_KEYWORD
	IF_KEYWORD
	ELIF_KEYWORD
	ELSE_KEYWORD
	BREAK_KEYWORD
	CONTINUE_KEYWORD
	RETURN_KEYWORD
	TRUE_KEYWORD
	FALSE_KEYWORD
	NIL_KEYWORD
	AND_KEYWORD
	OR_KEYWORD
	NOT_KEYWORD
	XOR_KEYWORD
	MOD_KEYWORD
	TYPE_KEYWORD
	IN_KEYWORD
	FOREACH_KEYWORD
	FOR_KEYWORD
	IMPORT_KEYWORD

	FIRST_KEYWORD = LET_KEYWORD
	LAST_KEYWORD  = IMPORT_KEYWORD
)

var (
	tokenStrings = [...]string{
		EOF:               "EOF",
		IDENTIFIER:        "IDENTIFIER",
		INT_LITERAL:       "INT_LITERAL",
		HEX_INT_LITERAL:   "HEX_INT_LITERAL",
		BIN_INT_LITERAL:   "BIN_INT_LITERAL",
		OCT_INT_LITERAL:   "OCT_INT_LITERAL",
		FLOAT_LITERAL:     "FLOAT_LITERAL",
		EXP_FLOAT_LITERAL: "EXP_FLOAT_LITERAL",
		STRING_LITERAL:    "STRING_LITERAL",
		REGEX_LITERAL:     "REGEX_LITERAL",
		ATOM_LITERAL:      "ATOM_LITERAL",
		OPERATOR:          "OPERATOR",

		LET_KEYWORD:      "let",
		MUT_KEYWORD:      "mut",
		FN_KEYWORD:       "fn",
		NATIVE_KEYWORD:   "native",
		WHILE_KEYWORD:    "while",
		DO_KEYWORD:       "do",
		BEGIN_KEYWORD:    "begin",
		END_KEYWORD:      "end",
		IF_KEYWORD:       "if",
		ELIF_KEYWORD:     "elif",
		ELSE_KEYWORD:     "else",
		BREAK_KEYWORD:    "break",
		CONTINUE_KEYWORD: "continue",
		RETURN_KEYWORD:   "return",
		TRUE_KEYWORD:     "true",
		FALSE_KEYWORD:    "false",
		NIL_KEYWORD:      "nil",
		AND_KEYWORD:      "and",
		OR_KEYWORD:       "or",
		NOT_KEYWORD:      "not",
		XOR_KEYWORD:      "xor",
		MOD_KEYWORD:      "mod",
		TYPE_KEYWORD:     "type",
		IN_KEYWORD:       "in",
		FOREACH_KEYWORD:  "foreach",
		FOR_KEYWORD:      "for",
		IMPORT_KEYWORD:   "import",
	}

	//reserved word -> token type
	keywords = map[string]TokenType{}
)

func init() {
	for t := FIRST_KEYWORD; t <= LAST_KEYWORD; t++ {
		keywords[tokenStrings[t]] = t
	}
}

func (t TokenType) String() string {
	if int(t) < len(tokenStrings) {
		return tokenStrings[t]
	}
	return fmt.Sprintf("TokenType(%d)", t)
}

func (t TokenType) IsKeyword() bool {
	return t >= FIRST_KEYWORD && t <= LAST_KEYWORD
}

func (t TokenType) IsNumber() bool {
	return t >= INT_LITERAL && t <= EXP_FLOAT_LITERAL
}

// HasValue reports whether tokens of type t reference a symbol.
func (t TokenType) HasValue() bool {
	return t >= IDENTIFIER && t <= ATOM_LITERAL
}

// LookupKeyword returns the token type of a reserved word.
func LookupKeyword(word string) (TokenType, bool) {
	t, ok := keywords[word]
	return t, ok
}

// TokenMeta holds formatting information that is never used for semantics.
type TokenMeta map[string]string

// A Token is immutable once returned by the Tokenizer.
type Token struct {
	Type     TokenType
	Value    Symbol //NO_SYMBOL for keywords, operators and EOF
	Operator string //lexeme of OPERATOR tokens
	Meta     TokenMeta
	Position sourcecode.Position
}

func (t Token) HasValue() bool {
	return t.Value != NO_SYMBOL
}

func (t Token) Is(tokenType TokenType) bool {
	return t.Type == tokenType
}

// Text returns the source-equivalent text of the token.
func (t Token) Text(symbols *SymbolTable) string {
	switch {
	case t.Type == EOF:
		return ""
	case t.Type == OPERATOR:
		return t.Operator
	case t.Type.IsKeyword():
		return tokenStrings[t.Type]
	case t.Type == STRING_LITERAL:
		delim := t.Meta[DELIMITER_META_KEY]
		return delim + symbols.Text(t.Value) + delim
	default:
		return symbols.Text(t.Value)
	}
}

func (t Token) String() string {
	if t.Type == OPERATOR {
		return fmt.Sprintf("<%s %q>", t.Type, t.Operator)
	}
	if t.HasValue() {
		return fmt.Sprintf("<%s #%d>", t.Type, t.Value)
	}
	return "<" + t.Type.String() + ">"
}
