package lex

import (
	"io"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/quacklang/quack/internal/prettyprint"
)

type jsonToken struct {
	Type     string    `json:"type"`
	Value    string    `json:"value,omitempty"`
	Symbol   Symbol    `json:"symbol,omitempty"`
	Operator string    `json:"operator,omitempty"`
	Meta     TokenMeta `json:"meta,omitempty"`
	Line     int32     `json:"line"`
	Column   int32     `json:"column"`
}

// DumpTokensJSON writes tokens as a JSON array, the text of each token's symbol is included.
func DumpTokensJSON(w io.Writer, tokens []Token, symbols *SymbolTable) error {
	list := make([]jsonToken, 0, len(tokens))

	for _, token := range tokens {
		jsonTok := jsonToken{
			Type:     token.Type.String(),
			Operator: token.Operator,
			Meta:     token.Meta,
			Line:     token.Position.Line,
			Column:   token.Position.Column,
		}
		if token.HasValue() {
			jsonTok.Value = symbols.Text(token.Value)
			jsonTok.Symbol = token.Value
		}
		list = append(list, jsonTok)
	}

	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	return encoder.Encode(list)
}

// PrintTokens writes one token per line: <line>:<column> <type> <text>.
func PrintTokens(w io.Writer, tokens []Token, symbols *SymbolTable, config prettyprint.PrettyPrintConfig) (int, error) {
	writer := prettyprint.NewWriter(w, config)
	colors := writer.Colors()

	for _, token := range tokens {
		writer.WriteColored(colors.DiscreteColor, strconv.Itoa(int(token.Position.Line))+":"+strconv.Itoa(int(token.Position.Column)))
		writer.WriteString(" ")
		writer.WriteString(token.Type.String())

		if token.Type == EOF {
			writer.WriteLF()
			continue
		}

		writer.WriteString(" ")
		writer.WriteColored(tokenColor(token.Type, colors), token.Text(symbols))
		writer.WriteLF()
	}

	return writer.Result()
}

func tokenColor(tokenType TokenType, colors *prettyprint.PrettyPrintColors) []byte {
	switch tokenType {
	case WHILE_KEYWORD, DO_KEYWORD, IF_KEYWORD, ELIF_KEYWORD, ELSE_KEYWORD, BREAK_KEYWORD,
		CONTINUE_KEYWORD, RETURN_KEYWORD, FOREACH_KEYWORD, FOR_KEYWORD:
		return colors.ControlKeyword
	case STRING_LITERAL:
		return colors.StringLiteral
	case REGEX_LITERAL:
		return colors.RegexLiteral
	case ATOM_LITERAL:
		return colors.AtomLiteral
	case IDENTIFIER:
		return colors.IdentifierLiteral
	case OPERATOR:
		return colors.Operator
	}

	switch {
	case tokenType.IsNumber():
		return colors.NumberLiteral
	case tokenType.IsKeyword():
		return colors.OtherKeyword
	}
	return nil
}
