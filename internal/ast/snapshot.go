package ast

import "github.com/quacklang/quack/internal/scope"

type nodeState struct {
	node  Node
	base  NodeBase
	label string

	bindingScope scope.ID
}

// A snapshot records the state written by the analysis in the nodes of one or more trees.
type snapshot []nodeState

func takeSnapshot(roots ...Node) snapshot {
	var s snapshot

	for _, root := range roots {
		Walk(root, func(node, parent Node, ancestorChain []Node, after bool) (TraversalAction, error) {
			state := nodeState{node: node, base: node.Base()}

			switch n := node.(type) {
			case *BreakStmt:
				state.label = n.Label
			case *ContinueStmt:
				state.label = n.Label
			case *NameExpr:
				state.bindingScope = n.bindingScope
			}

			s = append(s, state)
			return ContinueTraversal, nil
		}, nil)
	}

	return s
}

func (s snapshot) restore() {
	for _, state := range s {
		*state.node.BasePtr() = state.base

		switch n := state.node.(type) {
		case *BreakStmt:
			n.Label = state.label
		case *ContinueStmt:
			n.Label = state.label
		case *NameExpr:
			n.bindingScope = state.bindingScope
		}
	}
}
