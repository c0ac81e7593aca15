package ast

import (
	"github.com/quacklang/quack/internal/diagnostic"
	"github.com/quacklang/quack/internal/scope"
	"github.com/quacklang/quack/internal/sourcecode"
	"github.com/quacklang/quack/internal/types"
)

// injectSequence binds all the function declarations of a statement list and then injects the scope in
// each statement, so functions can be referenced before their declaration.
func injectSequence(tree *scope.Tree, id scope.ID, statements []Node) error {
	if err := bindDeclarations(tree, id, statements); err != nil {
		return err
	}

	for _, stmt := range statements {
		if err := stmt.InjectScope(tree, id); err != nil {
			return err
		}
	}
	return nil
}

func bindDeclarations(tree *scope.Tree, id scope.ID, statements []Node) error {
	for _, stmt := range statements {
		fn, ok := stmt.(*FnStmt)
		if !ok {
			continue
		}

		name := fn.Signature.Name
		if tree.HasLocal(id, name) {
			return diagnostic.NewScopeError(fn.Position, diagnostic.DUPLICATE_DECLARATION, name)
		}
		tree.Insert(id, name, scope.Binding{
			Flags: scope.K_INITIALIZED | scope.K_FUNCTION,
			Type:  types.Unknown{},
		})
	}
	return nil
}

func checkSequence(tree *scope.Tree, statements []Node) error {
	for _, stmt := range statements {
		if err := stmt.RunTypeChecker(tree); err != nil {
			return err
		}
	}
	return nil
}

func checkTypeName(name *TypeName) error {
	if name == nil {
		return nil
	}
	if _, ok := name.Resolve(); !ok {
		return diagnostic.NewTypeError(name.Position, diagnostic.UNKNOWN_TYPE, name.Name)
	}
	return nil
}

// resolveLoopLabel returns the label of the nearest enclosing loop, function scopes have an empty label.
func resolveLoopLabel(tree *scope.Tree, id scope.ID, pos sourcecode.Position, keyword string) (string, error) {
	label, ok := tree.LookupMeta(id, scope.M_LABEL)
	if !ok || label == "" {
		return "", diagnostic.NewScopeError(pos, diagnostic.MISPLACED_LOOP_JUMP, keyword)
	}
	return label, nil
}
