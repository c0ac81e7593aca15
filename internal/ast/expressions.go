package ast

import (
	"strings"

	"github.com/quacklang/quack/internal/diagnostic"
	"github.com/quacklang/quack/internal/scope"
	"github.com/quacklang/quack/internal/types"
)

type StringExpr struct {
	NodeBase
	Value     string
	Delimiter string //quote character, reused by Format
}

func (StringExpr) Kind() NodeKind {
	return ExprKind
}

func (e *StringExpr) Format(f *Formatter) string {
	return e.parenthesize(e.Delimiter + e.Value + e.Delimiter)
}

func (e *StringExpr) InjectScope(tree *scope.Tree, parent scope.ID) error {
	e.Scope = parent
	return nil
}

func (e *StringExpr) RunTypeChecker(tree *scope.Tree) error {
	return nil
}

func (e *StringExpr) Type(tree *scope.Tree) (types.Type, error) {
	return types.String, nil
}

type BoolExpr struct {
	NodeBase
	Value bool
}

func (BoolExpr) Kind() NodeKind {
	return ExprKind
}

func (e *BoolExpr) Format(f *Formatter) string {
	if e.Value {
		return e.parenthesize("true")
	}
	return e.parenthesize("false")
}

func (e *BoolExpr) InjectScope(tree *scope.Tree, parent scope.ID) error {
	e.Scope = parent
	return nil
}

func (e *BoolExpr) RunTypeChecker(tree *scope.Tree) error {
	return nil
}

func (e *BoolExpr) Type(tree *scope.Tree) (types.Type, error) {
	return types.Bool, nil
}

type NumberExpr struct {
	NodeBase
	Raw string //text of the literal, the value is not computed
}

func (NumberExpr) Kind() NodeKind {
	return ExprKind
}

func (e *NumberExpr) Format(f *Formatter) string {
	return e.parenthesize(e.Raw)
}

func (e *NumberExpr) InjectScope(tree *scope.Tree, parent scope.ID) error {
	e.Scope = parent
	return nil
}

func (e *NumberExpr) RunTypeChecker(tree *scope.Tree) error {
	return nil
}

func (e *NumberExpr) Type(tree *scope.Tree) (types.Type, error) {
	return types.Number, nil
}

type AtomExpr struct {
	NodeBase
	Name string //without the leading '@'
}

func (AtomExpr) Kind() NodeKind {
	return ExprKind
}

func (e *AtomExpr) Format(f *Formatter) string {
	return e.parenthesize("@" + e.Name)
}

func (e *AtomExpr) InjectScope(tree *scope.Tree, parent scope.ID) error {
	e.Scope = parent
	return nil
}

func (e *AtomExpr) RunTypeChecker(tree *scope.Tree) error {
	return nil
}

func (e *AtomExpr) Type(tree *scope.Tree) (types.Type, error) {
	return types.Atom, nil
}

type RegexExpr struct {
	NodeBase
	Pattern   string
	Modifiers string
}

func (RegexExpr) Kind() NodeKind {
	return ExprKind
}

func (e *RegexExpr) Format(f *Formatter) string {
	var b strings.Builder
	b.WriteString("&/")
	b.WriteString(e.Pattern)
	b.WriteByte('/')
	b.WriteString(e.Modifiers)
	return e.parenthesize(b.String())
}

func (e *RegexExpr) InjectScope(tree *scope.Tree, parent scope.ID) error {
	e.Scope = parent
	return nil
}

func (e *RegexExpr) RunTypeChecker(tree *scope.Tree) error {
	return nil
}

func (e *RegexExpr) Type(tree *scope.Tree) (types.Type, error) {
	return types.Regex, nil
}

type NilExpr struct {
	NodeBase
}

func (NilExpr) Kind() NodeKind {
	return ExprKind
}

func (e *NilExpr) Format(f *Formatter) string {
	return e.parenthesize("nil")
}

func (e *NilExpr) InjectScope(tree *scope.Tree, parent scope.ID) error {
	e.Scope = parent
	return nil
}

func (e *NilExpr) RunTypeChecker(tree *scope.Tree) error {
	return nil
}

func (e *NilExpr) Type(tree *scope.Tree) (types.Type, error) {
	return types.Nil, nil
}

// A NameExpr is a reference to a variable, a parameter or a function.
type NameExpr struct {
	NodeBase
	Name string

	bindingScope scope.ID //scope holding the binding visible at injection time
}

func (NameExpr) Kind() NodeKind {
	return ExprKind
}

func (e *NameExpr) Format(f *Formatter) string {
	return e.parenthesize(e.Name)
}

func (e *NameExpr) InjectScope(tree *scope.Tree, parent scope.ID) error {
	e.Scope = parent
	_, owner, ok := tree.Lookup(parent, e.Name)
	if !ok {
		return diagnostic.NewScopeError(e.Position, diagnostic.UNDECLARED_NAME, e.Name)
	}
	e.bindingScope = owner
	return nil
}

func (e *NameExpr) RunTypeChecker(tree *scope.Tree) error {
	_, err := e.Type(tree)
	return err
}

// Type returns the type of the binding found during scope injection, a let declared later
// in the same scope does not capture the name.
func (e *NameExpr) Type(tree *scope.Tree) (types.Type, error) {
	binding, ok := tree.GetLocal(e.bindingScope, e.Name)
	if !ok {
		return nil, diagnostic.NewScopeError(e.Position, diagnostic.UNDECLARED_NAME, e.Name)
	}
	if binding.Type == nil {
		return types.Unknown{}, nil
	}
	return binding.Type, nil
}
