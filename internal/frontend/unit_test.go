package frontend

import (
	"bytes"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quacklang/quack/internal/analysis"
	"github.com/quacklang/quack/internal/ast"
	"github.com/quacklang/quack/internal/config"
	"github.com/quacklang/quack/internal/lex"
	"github.com/quacklang/quack/internal/logs"
	"github.com/quacklang/quack/internal/sourcecode"
	"github.com/quacklang/quack/internal/testconfig"
)

func newConfig() config.Config {
	colorize := false
	cfg := config.Default()
	cfg.Colorize = &colorize
	cfg.Operators.Infix = []string{"|>"}
	return cfg
}

func TestNewUnit(t *testing.T) {
	testconfig.AllowParallelization(t)

	t.Run("tokenizer", func(t *testing.T) {
		unit, err := NewUnit("main", "let x :- 1 |> f", newConfig())
		require.NoError(t, err)

		tokenizer := unit.Tokenizer()
		assert.Same(t, unit.Symbols(), tokenizer.SymbolTable())

		tokens := tokenizer.Tokens()
		require.Len(t, tokens, 6)
		assert.Equal(t, lex.LET_KEYWORD, tokens[0].Type)
		assert.Equal(t, "|>", tokens[4].Operator)
		assert.Equal(t, lex.INFIX.String(), tokens[4].Meta[lex.FIXITY_META_KEY])

		//AllTokens does not move the tokenizer of the unit.
		assert.Len(t, unit.AllTokens(), 6)
		assert.Equal(t, lex.EOF, tokenizer.NextToken().Type)
	})

	t.Run("invalid operator", func(t *testing.T) {
		cfg := newConfig()
		cfg.Operators.Prefix = []string{"not"}

		_, err := NewUnit("main", "", cfg)
		assert.Error(t, err)
	})

	t.Run("identity", func(t *testing.T) {
		buf := bytes.NewBuffer(nil)
		logger := zerolog.New(buf).Level(zerolog.DebugLevel)

		unit1, err := NewUnit("a", "", newConfig(), UnitOptions{Logger: &logger})
		require.NoError(t, err)
		unit2, err := NewUnit("b", "", newConfig())
		require.NoError(t, err)

		assert.NotEqual(t, unit1.ID(), unit2.ID())
		assert.Equal(t, "a", unit1.Name())
		assert.Contains(t, buf.String(), `"`+logs.UNIT_LOG_FIELD_NAME+`":"`+unit1.ID().String()+`"`)
	})
}

func TestUnitAnalysis(t *testing.T) {
	testconfig.AllowParallelization(t)

	buf := bytes.NewBuffer(nil)
	logger := zerolog.New(buf).Level(zerolog.DebugLevel)

	cfg := newConfig()
	cfg.Format.Indent = 4

	unit, err := NewUnit("main", "", cfg, UnitOptions{Logger: &logger})
	require.NoError(t, err)
	assert.Same(t, unit.Analyzer(), unit.Analyzer())

	_, err = unit.Format()
	assert.ErrorIs(t, err, analysis.ErrNoProgram)

	program := &ast.ProgramStmt{Statements: []ast.Node{
		&ast.WhileStmt{Condition: &ast.BoolExpr{Value: true}, Body: []ast.Node{&ast.BreakStmt{}}},
	}}
	require.NoError(t, unit.Analyzer().Analyze(program))

	formatted, err := unit.Format()
	require.NoError(t, err)
	assert.Equal(t, "while true\n    break\nend\n", formatted)

	assert.Contains(t, buf.String(), `"src":"analysis"`)
}

func TestUnitTokenDumps(t *testing.T) {
	testconfig.AllowParallelization(t)

	unit, err := NewUnit("main", `while "go"`, newConfig())
	require.NoError(t, err)

	t.Run("JSON", func(t *testing.T) {
		buf := bytes.NewBuffer(nil)
		require.NoError(t, unit.DumpTokens(buf))

		var tokens []map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &tokens))
		require.Len(t, tokens, 2)
		assert.Equal(t, "go", tokens[1]["value"])
		assert.Equal(t, map[string]any{lex.DELIMITER_META_KEY: `"`}, tokens[1]["meta"])
	})

	t.Run("text", func(t *testing.T) {
		buf := bytes.NewBuffer(nil)
		_, err := unit.PrintTokens(buf)
		require.NoError(t, err)

		assert.Equal(t, "1:1 "+lex.WHILE_KEYWORD.String()+" while\n1:7 "+lex.STRING_LITERAL.String()+" \"go\"\n", buf.String())
	})
}

func TestUnitPrintError(t *testing.T) {
	testconfig.AllowParallelization(t)

	unit, err := NewUnit("main", "", newConfig())
	require.NoError(t, err)

	analysisErr := unit.Analyzer().Analyze(&ast.ProgramStmt{Statements: []ast.Node{
		&ast.ExprStmt{Expr: &ast.NameExpr{NodeBase: ast.NodeBase{Position: sourcecode.Position{Line: 1, Column: 1}}, Name: "y"}},
	}})
	require.Error(t, analysisErr)

	buf := bytes.NewBuffer(nil)
	_, err = unit.PrintError(buf, analysisErr)
	require.NoError(t, err)
	assert.Equal(t, "scope error 1:1 SCO010 [y]\n", buf.String())

	buf.Reset()
	_, err = unit.PrintError(buf, analysis.ErrNoProgram)
	require.NoError(t, err)
	assert.Equal(t, analysis.ErrNoProgram.Error()+"\n", buf.String())
}
