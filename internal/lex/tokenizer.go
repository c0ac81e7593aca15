package lex

import (
	"github.com/rs/zerolog"

	"github.com/quacklang/quack/internal/sourcecode"
)

const eofRune rune = -1

// A Tokenizer turns Quack source code into tokens, one token per call to NextToken.
// It never fails: characters that do not start any known construct are returned as
// single-character OPERATOR tokens, malformed code is reported later by the parser.
type Tokenizer struct {
	s   []rune //source code
	i   int32  //rune index
	len int32

	line   int32
	column int32

	symbols   *SymbolTable
	operators *OperatorTable
	logger    zerolog.Logger
}

type TokenizerOptions struct {
	//Defaults to an empty table.
	Operators *OperatorTable

	//Defaults to zerolog.Nop(), each token is logged at the trace level.
	Logger *zerolog.Logger
}

func NewTokenizer(code string, symbols *SymbolTable, opts ...TokenizerOptions) *Tokenizer {
	runes := []rune(code)

	t := &Tokenizer{
		s:         runes,
		len:       int32(len(runes)),
		line:      1,
		column:    1,
		symbols:   symbols,
		operators: NewOperatorTable(),
		logger:    zerolog.Nop(),
	}

	if len(opts) > 0 {
		opt := opts[0]
		if opt.Operators != nil {
			t.operators = opt.Operators
		}
		if opt.Logger != nil {
			t.logger = *opt.Logger
		}
	}

	return t
}

func (t *Tokenizer) SymbolTable() *SymbolTable {
	return t.symbols
}

func (t *Tokenizer) Operators() *OperatorTable {
	return t.operators
}

// DefineOperator registers a custom operator in the tokenizer's operator table.
func (t *Tokenizer) DefineOperator(fixity Fixity, lexeme string) error {
	return t.operators.Define(fixity, lexeme)
}

// Position returns the position of the next character to be read.
func (t *Tokenizer) Position() sourcecode.Position {
	return sourcecode.Position{Line: t.line, Column: t.column}
}

// Rewind moves the cursor back to the start of the code, the symbol table is left untouched.
func (t *Tokenizer) Rewind() {
	t.i = 0
	t.line = 1
	t.column = 1
}

// Tokens returns all the tokens from the current position to the end of the code, the EOF token is not included.
func (t *Tokenizer) Tokens() []Token {
	var tokens []Token
	for {
		token := t.NextToken()
		if token.Type == EOF {
			return tokens
		}
		tokens = append(tokens, token)
	}
}

func (t *Tokenizer) NextToken() Token {
	token := t.nextToken()
	if e := t.logger.Trace(); e.Enabled() {
		e.Stringer("type", token.Type).Stringer("pos", token.Position).Str("text", token.Text(t.symbols)).Msg("token")
	}
	return token
}

func (t *Tokenizer) nextToken() Token {
	for t.i < t.len {
		r := t.peek()

		switch {
		case isDecDigit(r):
			return t.number()
		case isAlpha(r) || (r == '_' && IsIdentChar(t.at(1))):
			return t.identifier()
		case isSpace(r):
			t.space()
			continue
		case r == '@' && IsFirstIdentChar(t.at(1)):
			return t.atom()
		case t.matches(LINE_COMMENT_OPENERS[0]) || t.matches(LINE_COMMENT_OPENERS[1]):
			t.lineComment()
			continue
		case t.matches(BLOCK_COMMENT_OPENER):
			t.blockComment()
			continue
		case r == '"' || r == '\'':
			return t.string(r)
		case t.matches(REGEX_OPENER):
			return t.regex()
		}

		return t.operator()
	}

	return Token{Type: EOF, Position: t.Position()}
}

func (t *Tokenizer) number() Token {
	start := t.i
	pos := t.Position()

	t.advance()

	//0x.., 0b.., 0o..
	if t.s[start] == '0' && isHexDigit(t.at(1)) {
		switch t.peek() {
		case 'x':
			t.advance()
			for isHexDigit(t.peek()) {
				t.advance()
			}
			return t.valueToken(HEX_INT_LITERAL, start, pos)
		case 'b', 'o':
			if !isDecDigit(t.at(1)) {
				break
			}

			tokenType, inRange := BIN_INT_LITERAL, isBinDigit
			if t.peek() == 'o' {
				tokenType, inRange = OCT_INT_LITERAL, isOctalDigit
			}

			t.advance()
			valid := true
			for isDecDigit(t.peek()) {
				if !inRange(t.peek()) {
					valid = false
				}
				t.advance()
			}

			if valid && !IsFirstIdentChar(t.peek()) {
				return t.valueToken(tokenType, start, pos)
			}

			//false positive (0b2, 0o8, 0b1z): retract the prefix and the digits.
			t.stepBack(t.i - (start + 1))
		}
	}

	tokenType := INT_LITERAL
	t.digits()

	if t.peek() == '.' && isDecDigit(t.at(1)) {
		tokenType = FLOAT_LITERAL
		t.advance()
		t.digits()
	}

	if r := t.peek(); r == 'e' || r == 'E' {
		next := t.at(1)
		if isDecDigit(next) {
			tokenType = EXP_FLOAT_LITERAL
			t.advance()
			t.digits()
		} else if (next == '+' || next == '-') && isDecDigit(t.at(2)) {
			tokenType = EXP_FLOAT_LITERAL
			t.advanceN(2)
			t.digits()
		}
	}

	return t.valueToken(tokenType, start, pos)
}

func (t *Tokenizer) digits() {
	for isDecDigit(t.peek()) {
		t.advance()
	}
}

func (t *Tokenizer) identifier() Token {
	start := t.i
	pos := t.Position()

	for IsIdentChar(t.peek()) {
		t.advance()
	}

	word := string(t.s[start:t.i])
	if keyword, ok := LookupKeyword(word); ok {
		return Token{Type: keyword, Position: pos}
	}

	return Token{Type: IDENTIFIER, Value: t.symbols.Add(word), Position: pos}
}

func (t *Tokenizer) atom() Token {
	start := t.i
	pos := t.Position()

	t.advance() //@
	for IsIdentChar(t.peek()) {
		t.advance()
	}

	return t.valueToken(ATOM_LITERAL, start, pos)
}

func (t *Tokenizer) space() {
	for t.i < t.len && isSpace(t.peek()) {
		t.advance()
	}
}

func (t *Tokenizer) lineComment() {
	t.advanceN(2)

	for t.i < t.len {
		r := t.peek()
		t.advance()

		if r == '\n' {
			break
		}
		if r == '\r' {
			if t.peek() == '\n' {
				t.advance()
			}
			break
		}
	}
}

func (t *Tokenizer) blockComment() {
	t.advanceN(2)

	for t.i < t.len && !t.matches(BLOCK_COMMENT_CLOSER) {
		t.advance()
	}

	if t.i < t.len {
		t.advanceN(2)
	}
}

func (t *Tokenizer) string(delimiter rune) Token {
	pos := t.Position()

	t.advance()
	valueStart := t.i

	for t.i < t.len && !(t.peek() == delimiter && !t.isEscaped(t.i, valueStart)) {
		t.advance()
	}

	value := string(t.s[valueStart:t.i])

	if t.i < t.len {
		t.advance()
	}

	return Token{
		Type:     STRING_LITERAL,
		Value:    t.symbols.Add(value),
		Meta:     TokenMeta{DELIMITER_META_KEY: string(delimiter)},
		Position: pos,
	}
}

func (t *Tokenizer) regex() Token {
	start := t.i
	pos := t.Position()

	t.advanceN(2)
	contentStart := t.i

	for t.i < t.len && !(t.peek() == '/' && !t.isEscaped(t.i, contentStart)) {
		t.advance()
	}

	if t.i < t.len {
		t.advance()
	}

	for IsRegexModifier(t.peek()) {
		t.advance()
	}

	return t.valueToken(REGEX_LITERAL, start, pos)
}

func (t *Tokenizer) operator() Token {
	start := t.i
	pos := t.Position()

	for _, opener := range OPENERS {
		if t.matches(opener) {
			t.advanceN(2)
			return t.operatorToken(opener, pos)
		}
	}

	for IsOperatorChar(t.peek()) {
		t.advance()
	}

	if t.i == start {
		//unknown symbol, it is consumed and returned as a token.
		t.advance()
	}

	return t.operatorToken(string(t.s[start:t.i]), pos)
}

func (t *Tokenizer) operatorToken(lexeme string, pos sourcecode.Position) Token {
	token := Token{Type: OPERATOR, Operator: lexeme, Position: pos}
	if fixity, ok := t.operators.Fixity(lexeme); ok {
		token.Meta = TokenMeta{FIXITY_META_KEY: fixity.String()}
	}
	return token
}

func (t *Tokenizer) valueToken(tokenType TokenType, start int32, pos sourcecode.Position) Token {
	return Token{
		Type:     tokenType,
		Value:    t.symbols.Add(string(t.s[start:t.i])),
		Position: pos,
	}
}

// isEscaped reports whether the rune at index i is preceded by an odd number of backslashes,
// backslashes before lowerBound are not counted.
func (t *Tokenizer) isEscaped(i int32, lowerBound int32) bool {
	count := 0
	for j := i - 1; j >= lowerBound && t.s[j] == '\\'; j-- {
		count++
	}
	return count%2 == 1
}

func (t *Tokenizer) peek() rune {
	return t.at(0)
}

// at returns the rune at offset from the cursor or eofRune.
func (t *Tokenizer) at(offset int32) rune {
	index := t.i + offset
	if index < 0 || index >= t.len {
		return eofRune
	}
	return t.s[index]
}

func (t *Tokenizer) matches(s string) bool {
	offset := int32(0)
	for _, r := range s {
		if t.at(offset) != r {
			return false
		}
		offset++
	}
	return true
}

// advance consumes a single rune and updates the line & column, "\r\n" counts as a single newline.
func (t *Tokenizer) advance() {
	if t.i >= t.len {
		return
	}

	r := t.s[t.i]
	t.i++

	switch {
	case r == '\n', r == '\r' && t.peek() != '\n':
		t.line++
		t.column = 1
	case r == '\r':
		//the column is reset by the following '\n'.
	default:
		t.column++
	}
}

func (t *Tokenizer) advanceN(n int32) {
	for ; n > 0; n-- {
		t.advance()
	}
}

// stepBack moves the cursor back by n runes, the runes should not contain newlines.
func (t *Tokenizer) stepBack(n int32) {
	t.i -= n
	t.column -= n
}
