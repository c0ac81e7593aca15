package analysis

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quacklang/quack/internal/ast"
	"github.com/quacklang/quack/internal/diagnostic"
	"github.com/quacklang/quack/internal/testconfig"
)

func newProgram() *ast.ProgramStmt {
	return &ast.ProgramStmt{Statements: []ast.Node{
		&ast.LetStmt{Name: "ready", Mutable: true, Value: &ast.BoolExpr{Value: false}},
		&ast.WhileStmt{Condition: &ast.NameExpr{Name: "ready"}, Body: []ast.Node{
			&ast.ExprStmt{Expr: &ast.NameExpr{Name: "wait"}},
		}},
		&ast.FnStmt{Signature: &ast.FnSignatureStmt{Name: "wait", Native: true}},
	}}
}

func TestAnalyze(t *testing.T) {
	testconfig.AllowParallelization(t)

	t.Run("valid program", func(t *testing.T) {
		buf := bytes.NewBuffer(nil)
		logger := zerolog.New(buf).Level(zerolog.DebugLevel)
		analyzer := NewAnalyzer(AnalyzerOptions{Logger: &logger})

		program := newProgram()
		require.NoError(t, analyzer.Analyze(program))
		assert.Same(t, program, analyzer.Program())

		tree := analyzer.Scopes()
		assert.True(t, tree.HasLocal(program.Scope, "ready"))
		assert.True(t, tree.HasLocal(program.Scope, "wait"))

		logs := buf.String()
		assert.Contains(t, logs, `"pass":"scope injection"`)
		assert.Contains(t, logs, `"pass":"type checking"`)
		assert.Contains(t, logs, "program accepted")
		assert.Contains(t, logs, `"functions":1`)
		assert.Contains(t, logs, `"scopeContainers":3`)
	})

	t.Run("a single program per analyzer", func(t *testing.T) {
		analyzer := NewAnalyzer()
		require.NoError(t, analyzer.Analyze(newProgram()))
		assert.ErrorIs(t, analyzer.Analyze(newProgram()), ErrAlreadyAnalyzed)
	})

	t.Run("invalid program", func(t *testing.T) {
		analyzer := NewAnalyzer()
		program := &ast.ProgramStmt{Statements: []ast.Node{
			&ast.WhileStmt{Condition: &ast.StringExpr{Value: "x", Delimiter: "'"}},
		}}

		err := analyzer.Analyze(program)
		assert.True(t, diagnostic.IsTypeError(err))
		assert.True(t, diagnostic.HasCode(err, diagnostic.NON_BOOLEAN_CONDITION))
		assert.Nil(t, analyzer.Program())
		assert.Equal(t, 1, analyzer.Scopes().Len())

		//another program can be analyzed.
		require.NoError(t, analyzer.Analyze(newProgram()))
	})
}

func TestExtend(t *testing.T) {
	testconfig.AllowParallelization(t)

	t.Run("no program", func(t *testing.T) {
		analyzer := NewAnalyzer()
		assert.ErrorIs(t, analyzer.Extend(&ast.ProgramStmt{}), ErrNoProgram)
	})

	t.Run("valid fragment", func(t *testing.T) {
		analyzer := NewAnalyzer()
		require.NoError(t, analyzer.Analyze(newProgram()))

		err := analyzer.Extend(&ast.ProgramStmt{Statements: []ast.Node{
			&ast.LetStmt{Name: "done", Value: &ast.NameExpr{Name: "ready"}},
		}})
		require.NoError(t, err)

		program := analyzer.Program()
		assert.Len(t, program.Statements, 4)

		binding, _, ok := analyzer.Scopes().Lookup(program.Scope, "done")
		require.True(t, ok)
		assert.True(t, binding.Type.IsBoolean())
	})

	t.Run("fragment with a scope error", func(t *testing.T) {
		buf := bytes.NewBuffer(nil)
		logger := zerolog.New(buf).Level(zerolog.DebugLevel)
		analyzer := NewAnalyzer(AnalyzerOptions{Logger: &logger})

		require.NoError(t, analyzer.Analyze(newProgram()))
		program := analyzer.Program()
		before := ast.Format(program)
		statements := append([]ast.Node(nil), program.Statements...)

		err := analyzer.Extend(&ast.ProgramStmt{Statements: []ast.Node{
			&ast.FnStmt{Signature: &ast.FnSignatureStmt{
				Name:       "retry",
				Parameters: []ast.Parameter{{Name: "n"}, {Name: "n"}},
			}},
		}})

		assert.True(t, diagnostic.IsScopeError(err))
		assert.True(t, diagnostic.HasCode(err, diagnostic.DUPLICATE_PARAMETER))
		assert.Equal(t, statements, program.Statements)
		assert.Equal(t, before, ast.Format(program))
		assert.Contains(t, buf.String(), "extension rolled back")
	})
}
