package analysis

import (
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/quacklang/quack/internal/ast"
	"github.com/quacklang/quack/internal/scope"
)

var (
	ErrAlreadyAnalyzed = errors.New("a program has already been analyzed")
	ErrNoProgram       = errors.New("no program has been analyzed")
)

// An Analyzer performs the semantic analysis of the program of a compilation unit: scope injection followed
// by type checking. Once the program is accepted, top-level code can be added by extending it.
// An Analyzer should not be used by several goroutines at once.
type Analyzer struct {
	tree    *scope.Tree
	program *ast.ProgramStmt //nil until a program is accepted
	logger  zerolog.Logger
}

type AnalyzerOptions struct {
	//Defaults to zerolog.Nop().
	Logger *zerolog.Logger
}

func NewAnalyzer(opts ...AnalyzerOptions) *Analyzer {
	a := &Analyzer{
		tree:   scope.NewTree(),
		logger: zerolog.Nop(),
	}

	if len(opts) > 0 && opts[0].Logger != nil {
		a.logger = *opts[0].Logger
	}
	return a
}

// Program returns the accepted program, or nil.
func (a *Analyzer) Program() *ast.ProgramStmt {
	return a.program
}

func (a *Analyzer) Scopes() *scope.Tree {
	return a.tree
}

// Analyze runs the two passes over the program, the first error aborts the analysis and is returned.
// The program is accepted only if both passes succeed.
func (a *Analyzer) Analyze(program *ast.ProgramStmt) error {
	if a.program != nil {
		return ErrAlreadyAnalyzed
	}

	checkpoint := a.tree.Mark()

	start := time.Now()
	err := program.InjectScope(a.tree, a.tree.Root())
	a.logPass("scope injection", start, err)

	if err == nil {
		start = time.Now()
		err = program.RunTypeChecker(a.tree)
		a.logPass("type checking", start, err)
	}

	if err != nil {
		a.tree.Restore(checkpoint)
		return err
	}

	a.program = program
	a.logger.Debug().
		Int("statements", len(program.Statements)).
		Int("nodes", ast.CountNodes(program)).
		Int("functions", len(ast.FindNodes(program, (*ast.FnStmt)(nil), nil))).
		Int("scopeContainers", countScopeContainers(program)).
		Int("scopes", a.tree.Len()).
		Msg("program accepted")
	return nil
}

func countScopeContainers(root ast.Node) (count int) {
	ast.Walk(root, func(node, parent ast.Node, ancestorChain []ast.Node, after bool) (ast.TraversalAction, error) {
		if ast.IsScopeContainerNode(node) {
			count++
		}
		return ast.ContinueTraversal, nil
	}, nil)
	return
}

// Extend appends the top-level statements of fragment to the accepted program and analyzes the
// whole program again. On failure the program is left unchanged and the error is returned.
func (a *Analyzer) Extend(fragment *ast.ProgramStmt) error {
	if a.program == nil {
		return ErrNoProgram
	}

	start := time.Now()
	err := a.program.Attach(a.tree, fragment)

	if err != nil {
		a.logger.Debug().Err(err).Dur("duration", time.Since(start)).Msg("extension rolled back")
		return err
	}

	a.logger.Debug().
		Int("added", len(fragment.Statements)).
		Int("statements", len(a.program.Statements)).
		Dur("duration", time.Since(start)).
		Msg("program extended")
	return nil
}

func (a *Analyzer) logPass(pass string, start time.Time, err error) {
	e := a.logger.Debug()
	if !e.Enabled() {
		return
	}

	e.Str("pass", pass).Dur("duration", time.Since(start))
	if err != nil {
		e.Err(err)
	}
	e.Msg("pass done")
}
