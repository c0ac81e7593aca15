package ast

import (
	"reflect"
)

type TraversalAction int

const (
	ContinueTraversal TraversalAction = iota
	Prune
	StopTraversal
)

type NodeHandler = func(node Node, parent Node, ancestorChain []Node, after bool) (TraversalAction, error)

type walkError struct {
	err error
}

// Walk performs a pre-order traversal on a syntax tree (depth first).
// postHandle is called on a node after all its descendants have been visited.
func Walk(node Node, handle, postHandle NodeHandler) (err error) {
	defer func() {
		v := recover()

		switch val := v.(type) {
		case walkError:
			err = val.err
		case nil:
		case TraversalAction:
		default:
			panic(v)
		}
	}()

	ancestorChain := make([]Node, 0)
	walk(node, nil, &ancestorChain, handle, postHandle)
	return
}

func walk(node, parent Node, ancestorChain *[]Node, fn, afterFn NodeHandler) {
	if node == nil || reflect.ValueOf(node).IsNil() {
		return
	}

	if parent != nil {
		*ancestorChain = append(*ancestorChain, parent)
		defer func() {
			*ancestorChain = (*ancestorChain)[:len(*ancestorChain)-1]
		}()
	}

	if fn != nil {
		action, err := fn(node, parent, *ancestorChain, false)

		if err != nil {
			panic(walkError{err})
		}

		switch action {
		case StopTraversal:
			panic(StopTraversal)
		case Prune:
			return
		}
	}

	switch n := node.(type) {
	case *ProgramStmt:
		for _, stmt := range n.Statements {
			walk(stmt, node, ancestorChain, fn, afterFn)
		}
	case *WhileStmt:
		walk(n.Condition, node, ancestorChain, fn, afterFn)
		for _, stmt := range n.Body {
			walk(stmt, node, ancestorChain, fn, afterFn)
		}
	case *FnStmt:
		walk(n.Signature, node, ancestorChain, fn, afterFn)
		for _, stmt := range n.Body {
			walk(stmt, node, ancestorChain, fn, afterFn)
		}
	case *LetStmt:
		walk(n.Value, node, ancestorChain, fn, afterFn)
	case *BlockStmt:
		for _, stmt := range n.Body {
			walk(stmt, node, ancestorChain, fn, afterFn)
		}
	case *ExprStmt:
		walk(n.Expr, node, ancestorChain, fn, afterFn)
	}

	if afterFn != nil {
		action, err := afterFn(node, parent, *ancestorChain, true)

		if err != nil {
			panic(walkError{err})
		}

		switch action {
		case StopTraversal:
			panic(StopTraversal)
		}
	}
}
