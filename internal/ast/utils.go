package ast

import (
	"reflect"
)

func CountNodes(n Node) (count int) {
	Walk(n, func(node, parent Node, ancestorChain []Node, after bool) (TraversalAction, error) {
		count += 1
		return ContinueTraversal, nil
	}, nil)

	return
}

// FindNodes walks over a syntax tree and returns the nodes of type $typ accepted by handle,
// all nodes of the type are returned if handle is nil.
func FindNodes[T Node](root Node, typ T, handle func(n T) bool) []T {
	searchedType := reflect.TypeOf(typ)
	var found []T

	Walk(root, func(node, parent Node, ancestorChain []Node, after bool) (TraversalAction, error) {
		if reflect.TypeOf(node) == searchedType {
			if handle == nil || handle(node.(T)) {
				found = append(found, node.(T))
			}
		}
		return ContinueTraversal, nil
	}, nil)

	return found
}

// IsScopeContainerNode reports whether the node opens a scope during scope injection.
func IsScopeContainerNode(node Node) bool {
	switch node.(type) {
	case *ProgramStmt, *WhileStmt, *FnStmt, *BlockStmt:
		return true
	default:
		return false
	}
}
