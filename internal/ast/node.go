package ast

import (
	"github.com/quacklang/quack/internal/scope"
	"github.com/quacklang/quack/internal/sourcecode"
	"github.com/quacklang/quack/internal/types"
)

var (
	_ = []Expr{
		(*StringExpr)(nil), (*BoolExpr)(nil), (*NumberExpr)(nil), (*AtomExpr)(nil), (*RegexExpr)(nil),
		(*NilExpr)(nil), (*NameExpr)(nil),
	}

	_ = []Node{
		(*ProgramStmt)(nil), (*WhileStmt)(nil), (*FnSignatureStmt)(nil), (*FnStmt)(nil), (*LetStmt)(nil),
		(*BlockStmt)(nil), (*ExprStmt)(nil), (*BreakStmt)(nil), (*ContinueStmt)(nil),
	}
)

// A Node is a node of a syntax tree, all node types embed NodeBase.
// The analysis of a tree is done in two passes: scope injection (InjectScope) binds declarations
// and builds the scope tree, type checking (RunTypeChecker) validates types using the bindings.
type Node interface {
	Base() NodeBase
	BasePtr() *NodeBase
	Kind() NodeKind

	// Format re-serializes the node.
	Format(f *Formatter) string

	InjectScope(tree *scope.Tree, parent scope.ID) error
	RunTypeChecker(tree *scope.Tree) error
}

type Expr interface {
	Node
	Type(tree *scope.Tree) (types.Type, error)
}

type NodeKind uint8

const (
	UnspecifiedNodeKind NodeKind = iota
	ExprKind
	StmtKind
)

type NodeBase struct {
	Position sourcecode.Position

	// Scope is set by InjectScope: this is the scope opened by the node if it opens one,
	// the scope the node was injected into otherwise.
	Scope scope.ID

	Parenthesized bool
}

func (base NodeBase) Base() NodeBase {
	return base
}

func (base *NodeBase) BasePtr() *NodeBase {
	return base
}

func (base NodeBase) parenthesize(s string) string {
	if base.Parenthesized {
		return "(" + s + ")"
	}
	return s
}

// TypeName is a type annotation.
type TypeName struct {
	Position sourcecode.Position
	Name     string
}

func (n *TypeName) Resolve() (types.Type, bool) {
	return types.ByName(n.Name)
}

type Parameter struct {
	Position sourcecode.Position
	Name     string
	Type     *TypeName //can be nil
}

func (p Parameter) format() string {
	if p.Type == nil {
		return p.Name
	}
	return p.Name + " :: " + p.Type.Name
}
