package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quacklang/quack/internal/diagnostic"
	"github.com/quacklang/quack/internal/scope"
	"github.com/quacklang/quack/internal/testconfig"
	"github.com/quacklang/quack/internal/types"
)

func TestProgramStmtAttach(t *testing.T) {
	testconfig.AllowParallelization(t)

	newProgram := func() (*ProgramStmt, *BreakStmt) {
		brk := &BreakStmt{}
		return &ProgramStmt{Statements: []Node{
			&LetStmt{Name: "a", Value: &BoolExpr{Value: true}},
			&WhileStmt{Condition: name("a"), Body: []Node{brk}},
		}}, brk
	}

	t.Run("not analyzed", func(t *testing.T) {
		program, _ := newProgram()
		err := program.Attach(scope.NewTree(), &ProgramStmt{})
		assert.ErrorIs(t, err, ErrProgramNotAnalyzed)
	})

	t.Run("valid fragment", func(t *testing.T) {
		program, _ := newProgram()
		tree, err := analyze(program)
		require.NoError(t, err)

		use := &ExprStmt{Expr: name("a")}
		fragment := &ProgramStmt{Statements: []Node{
			use,
			&LetStmt{Name: "b", Value: name("a")},
		}}

		require.NoError(t, program.Attach(tree, fragment))
		assert.Len(t, program.Statements, 4)
		assert.Same(t, use, program.Statements[2])

		parent, _ := tree.Parent(program.Scope)
		assert.Equal(t, tree.Root(), parent)
		assert.True(t, tree.HasLocal(program.Scope, "b"))
		assert.Equal(t, program.Scope, use.Expr.Base().Scope)
	})

	t.Run("fragment with a scope error", func(t *testing.T) {
		program, brk := newProgram()
		tree, err := analyze(program)
		require.NoError(t, err)

		statementsBefore := append([]Node(nil), program.Statements...)
		formattedBefore := Format(program)
		programScope := program.Scope
		loopScope := program.Statements[1].Base().Scope
		scopeCount := tree.Len()

		fragment := &ProgramStmt{Statements: []Node{
			&ExprStmt{Expr: &NumberExpr{Raw: "1"}},
			&LetStmt{Name: "a", Value: &NilExpr{}},
		}}

		err = program.Attach(tree, fragment)
		assertDiagnostic(t, err, diagnostic.SCOPE_ERROR, diagnostic.DUPLICATE_DECLARATION, "a")

		assert.Equal(t, statementsBefore, program.Statements)
		assert.Equal(t, formattedBefore, Format(program))
		assert.Equal(t, programScope, program.Scope)
		assert.Equal(t, loopScope, program.Statements[1].Base().Scope)
		assert.Equal(t, "L1", brk.Label)
		assert.Equal(t, scopeCount, tree.Len())
		assert.Equal(t, "L2", tree.NextLabel())
	})

	t.Run("fragment with a type error", func(t *testing.T) {
		program, _ := newProgram()
		tree, err := analyze(program)
		require.NoError(t, err)

		statementsBefore := append([]Node(nil), program.Statements...)

		fragment := &ProgramStmt{Statements: []Node{
			&WhileStmt{Condition: &AtomExpr{Name: "no"}},
		}}

		err = program.Attach(tree, fragment)
		assertDiagnostic(t, err, diagnostic.TYPE_ERROR, diagnostic.NON_BOOLEAN_CONDITION, "atom")
		assert.Equal(t, statementsBefore, program.Statements)

		//the condition still resolves to the binding of the accepted program.
		condition := program.Statements[1].(*WhileStmt).Condition
		typ, err := condition.Type(tree)
		if assert.NoError(t, err) {
			assert.Equal(t, types.Bool, typ)
		}
	})

	t.Run("valid fragment after a failed attempt", func(t *testing.T) {
		program, brk := newProgram()
		tree, err := analyze(program)
		require.NoError(t, err)

		err = program.Attach(tree, &ProgramStmt{Statements: []Node{&ExprStmt{Expr: name("undeclared")}}})
		assertDiagnostic(t, err, diagnostic.SCOPE_ERROR, diagnostic.UNDECLARED_NAME, "undeclared")

		require.NoError(t, program.Attach(tree, &ProgramStmt{Statements: []Node{fn("f", nil)}}))
		assert.Len(t, program.Statements, 3)
		assert.Equal(t, "L2", brk.Label)
	})

	t.Run("the appended statements do not alias the previous list", func(t *testing.T) {
		program, _ := newProgram()
		program.Statements = append(make([]Node, 0, 10), program.Statements...)
		tree, err := analyze(program)
		require.NoError(t, err)

		statementsBefore := program.Statements
		err = program.Attach(tree, &ProgramStmt{Statements: []Node{&BreakStmt{}}})
		assertDiagnostic(t, err, diagnostic.SCOPE_ERROR, diagnostic.MISPLACED_LOOP_JUMP, "break")

		assert.Len(t, program.Statements, 2)
		assert.Nil(t, statementsBefore[:cap(statementsBefore)][2])
	})
}
