package ast

import (
	"errors"
	"slices"
	"strings"

	"github.com/quacklang/quack/internal/diagnostic"
	"github.com/quacklang/quack/internal/scope"
	"github.com/quacklang/quack/internal/types"
)

var (
	ErrProgramNotAnalyzed = errors.New("program has not been analyzed")
)

type ProgramStmt struct {
	NodeBase
	Statements []Node
}

func (ProgramStmt) Kind() NodeKind {
	return StmtKind
}

func (p *ProgramStmt) Format(f *Formatter) string {
	var b strings.Builder
	formatSequence(f, &b, p.Statements)
	return b.String()
}

func (p *ProgramStmt) InjectScope(tree *scope.Tree, parent scope.ID) error {
	p.Scope = tree.CreateChild(parent)
	return injectSequence(tree, p.Scope, p.Statements)
}

func (p *ProgramStmt) RunTypeChecker(tree *scope.Tree) error {
	return checkSequence(tree, p.Statements)
}

// Attach appends the statements of an analyzed-or-not fragment to the program and analyzes the whole program
// again, starting from the parent of its scope. If the analysis fails the statement list, the scopes of the
// nodes and the scope tree are restored to their state before the call, and the error is returned.
func (p *ProgramStmt) Attach(tree *scope.Tree, fragment *ProgramStmt) error {
	parent, ok := tree.Parent(p.Scope)
	if !ok {
		return ErrProgramNotAnalyzed
	}

	statements := slices.Clip(p.Statements)
	snapshot := takeSnapshot(p, fragment)
	checkpoint := tree.Mark()

	p.Statements = append(statements, fragment.Statements...)

	err := p.InjectScope(tree, parent)
	if err == nil {
		err = p.RunTypeChecker(tree)
	}

	if err != nil {
		p.Statements = statements
		snapshot.restore()
		tree.Restore(checkpoint)
		return err
	}
	return nil
}

// A WhileStmt is a loop, its body has its own scope labelled with a unique loop label.
type WhileStmt struct {
	NodeBase
	Condition Expr
	Body      []Node
}

func (WhileStmt) Kind() NodeKind {
	return StmtKind
}

func (s *WhileStmt) Format(f *Formatter) string {
	var b strings.Builder
	b.WriteString("while ")
	b.WriteString(s.Condition.Format(f))
	b.WriteByte('\n')
	formatBody(f, &b, s.Body)
	return b.String()
}

func (s *WhileStmt) InjectScope(tree *scope.Tree, parent scope.ID) error {
	s.Scope = tree.CreateChild(parent)
	tree.SetMeta(s.Scope, scope.M_LABEL, tree.NextLabel())

	//the condition does not see the bindings of the body.
	if err := s.Condition.InjectScope(tree, parent); err != nil {
		return err
	}
	return injectSequence(tree, s.Scope, s.Body)
}

func (s *WhileStmt) RunTypeChecker(tree *scope.Tree) error {
	conditionType, err := s.Condition.Type(tree)
	if err != nil {
		return err
	}
	if !conditionType.IsBoolean() {
		return diagnostic.NewTypeError(s.Condition.Base().Position, diagnostic.NON_BOOLEAN_CONDITION, conditionType.String())
	}
	return checkSequence(tree, s.Body)
}

// A FnSignatureStmt binds the parameters of a function in the scope it is injected into.
type FnSignatureStmt struct {
	NodeBase
	Name       string
	Parameters []Parameter
	ReturnType *TypeName //can be nil
	Native     bool
}

func (FnSignatureStmt) Kind() NodeKind {
	return StmtKind
}

func (s *FnSignatureStmt) Format(f *Formatter) string {
	var b strings.Builder
	if s.Native {
		b.WriteString("native fn ")
	}
	b.WriteString(s.Name)
	b.WriteByte('(')
	for i, param := range s.Parameters {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(param.format())
	}
	b.WriteByte(')')

	if s.ReturnType != nil {
		b.WriteString(" -> ")
		b.WriteString(s.ReturnType.Name)
	}
	if s.Native {
		b.WriteByte('\n')
	}
	return b.String()
}

func (s *FnSignatureStmt) InjectScope(tree *scope.Tree, parent scope.ID) error {
	s.Scope = parent

	for _, param := range s.Parameters {
		if tree.HasLocal(parent, param.Name) {
			return diagnostic.NewScopeError(param.Position, diagnostic.DUPLICATE_PARAMETER, param.Name, s.Name)
		}

		var paramType types.Type = types.Unknown{}
		if param.Type != nil {
			if t, ok := param.Type.Resolve(); ok {
				paramType = t
			}
		}

		tree.Insert(parent, param.Name, scope.Binding{
			Flags: scope.K_INITIALIZED | scope.K_MUTABLE | scope.K_VARIABLE | scope.K_PARAMETER,
			Type:  paramType,
		})
	}
	return nil
}

// RunTypeChecker does nothing, the parameters are fully handled during scope injection and
// argument types are checked at call sites.
func (s *FnSignatureStmt) RunTypeChecker(tree *scope.Tree) error {
	return nil
}

// A FnStmt is a function declaration, its name is bound by the enclosing sequence before any statement
// of the sequence is injected. A native function has no body.
type FnStmt struct {
	NodeBase
	Signature *FnSignatureStmt
	Body      []Node
}

func (FnStmt) Kind() NodeKind {
	return StmtKind
}

func (s *FnStmt) Format(f *Formatter) string {
	if s.Signature.Native {
		return s.Signature.Format(f)
	}

	var b strings.Builder
	b.WriteString("fn ")
	b.WriteString(s.Signature.Format(f))
	b.WriteByte('\n')
	formatBody(f, &b, s.Body)
	return b.String()
}

func (s *FnStmt) InjectScope(tree *scope.Tree, parent scope.ID) error {
	s.Scope = tree.CreateChild(parent)

	//loops enclosing the declaration are not jump targets for the body.
	tree.SetMeta(s.Scope, scope.M_LABEL, "")

	if err := s.Signature.InjectScope(tree, s.Scope); err != nil {
		return err
	}
	return injectSequence(tree, s.Scope, s.Body)
}

func (s *FnStmt) RunTypeChecker(tree *scope.Tree) error {
	for _, param := range s.Signature.Parameters {
		if err := checkTypeName(param.Type); err != nil {
			return err
		}
	}
	if err := checkTypeName(s.Signature.ReturnType); err != nil {
		return err
	}
	if err := s.Signature.RunTypeChecker(tree); err != nil {
		return err
	}
	return checkSequence(tree, s.Body)
}

// A LetStmt declares a variable in the scope it is injected into. Redeclaring a name in the same scope
// is an error, shadowing a binding of an ancestor scope is allowed.
type LetStmt struct {
	NodeBase
	Name           string
	Mutable        bool
	TypeAnnotation *TypeName //can be nil
	Value          Expr      //can be nil
}

func (LetStmt) Kind() NodeKind {
	return StmtKind
}

func (s *LetStmt) Format(f *Formatter) string {
	var b strings.Builder
	b.WriteString("let ")
	if s.Mutable {
		b.WriteString("mut ")
	}
	b.WriteString(s.Name)
	if s.TypeAnnotation != nil {
		b.WriteString(" :: ")
		b.WriteString(s.TypeAnnotation.Name)
	}
	if s.Value != nil {
		b.WriteString(" :- ")
		b.WriteString(s.Value.Format(f))
	}
	b.WriteByte('\n')
	return b.String()
}

func (s *LetStmt) InjectScope(tree *scope.Tree, parent scope.ID) error {
	s.Scope = parent

	//the value does not see the declared variable.
	if s.Value != nil {
		if err := s.Value.InjectScope(tree, parent); err != nil {
			return err
		}
	}

	if tree.HasLocal(parent, s.Name) {
		return diagnostic.NewScopeError(s.Position, diagnostic.DUPLICATE_DECLARATION, s.Name)
	}

	flags := scope.K_VARIABLE
	if s.Mutable {
		flags |= scope.K_MUTABLE
	}
	if s.Value != nil {
		flags |= scope.K_INITIALIZED
	}
	tree.Insert(parent, s.Name, scope.Binding{Flags: flags})
	return nil
}

func (s *LetStmt) RunTypeChecker(tree *scope.Tree) error {
	var declared, actual types.Type

	if s.TypeAnnotation != nil {
		t, ok := s.TypeAnnotation.Resolve()
		if !ok {
			return diagnostic.NewTypeError(s.TypeAnnotation.Position, diagnostic.UNKNOWN_TYPE, s.TypeAnnotation.Name)
		}
		declared = t
	}

	if s.Value != nil {
		t, err := s.Value.Type(tree)
		if err != nil {
			return err
		}
		actual = t
	}

	bindingType := declared
	switch {
	case declared != nil && actual != nil:
		if _, isUnknown := actual.(types.Unknown); !isUnknown && !declared.Equal(actual) {
			return diagnostic.NewTypeError(s.Position, diagnostic.MISMATCHED_LET_TYPE, s.Name, declared.String(), actual.String())
		}
	case actual != nil:
		bindingType = actual
	case declared == nil:
		bindingType = types.Unknown{}
	}

	tree.SetType(s.Scope, s.Name, bindingType)
	return nil
}

// A BlockStmt is a begin ... end block, it has its own scope.
type BlockStmt struct {
	NodeBase
	Body []Node
}

func (BlockStmt) Kind() NodeKind {
	return StmtKind
}

func (s *BlockStmt) Format(f *Formatter) string {
	var b strings.Builder
	b.WriteString("begin\n")
	formatBody(f, &b, s.Body)
	return b.String()
}

func (s *BlockStmt) InjectScope(tree *scope.Tree, parent scope.ID) error {
	s.Scope = tree.CreateChild(parent)
	return injectSequence(tree, s.Scope, s.Body)
}

func (s *BlockStmt) RunTypeChecker(tree *scope.Tree) error {
	return checkSequence(tree, s.Body)
}

type ExprStmt struct {
	NodeBase
	Expr Expr
}

func (ExprStmt) Kind() NodeKind {
	return StmtKind
}

func (s *ExprStmt) Format(f *Formatter) string {
	return s.Expr.Format(f) + "\n"
}

func (s *ExprStmt) InjectScope(tree *scope.Tree, parent scope.ID) error {
	s.Scope = parent
	return s.Expr.InjectScope(tree, parent)
}

func (s *ExprStmt) RunTypeChecker(tree *scope.Tree) error {
	return s.Expr.RunTypeChecker(tree)
}

type BreakStmt struct {
	NodeBase
	Label string //label of the target loop, set during scope injection
}

func (BreakStmt) Kind() NodeKind {
	return StmtKind
}

func (s *BreakStmt) Format(f *Formatter) string {
	return "break\n"
}

func (s *BreakStmt) InjectScope(tree *scope.Tree, parent scope.ID) (err error) {
	s.Scope = parent
	s.Label, err = resolveLoopLabel(tree, parent, s.Position, "break")
	return
}

func (s *BreakStmt) RunTypeChecker(tree *scope.Tree) error {
	return nil
}

type ContinueStmt struct {
	NodeBase
	Label string //label of the target loop, set during scope injection
}

func (ContinueStmt) Kind() NodeKind {
	return StmtKind
}

func (s *ContinueStmt) Format(f *Formatter) string {
	return "continue\n"
}

func (s *ContinueStmt) InjectScope(tree *scope.Tree, parent scope.ID) (err error) {
	s.Scope = parent
	s.Label, err = resolveLoopLabel(tree, parent, s.Position, "continue")
	return
}

func (s *ContinueStmt) RunTypeChecker(tree *scope.Tree) error {
	return nil
}
