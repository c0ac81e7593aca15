package scope

import (
	"fmt"
	"strconv"

	"github.com/quacklang/quack/internal/types"
)

const (
	NO_SCOPE ID = -1
	ROOT     ID = 0

	LABEL_PREFIX = "L"
)

// ID is the index of a scope in its Tree.
type ID int32

// Kind describes a binding, it is a bitset.
type Kind uint16

const (
	K_INITIALIZED Kind = 1 << iota
	K_MUTABLE
	K_VARIABLE
	K_PARAMETER
	K_FUNCTION
)

func (k Kind) Has(flags Kind) bool {
	return k&flags == flags
}

type MetaKey uint8

const (
	M_LABEL MetaKey = iota + 1
)

type Binding struct {
	Flags Kind
	Type  types.Type //nil if not known yet
}

type record struct {
	parent   ID
	bindings map[string]Binding
	meta     map[MetaKey]string
}

// A Tree is an arena of lexical scopes, each scope stores the ID of its parent.
// The first scope is the root scope. Scopes are only removed by Restore.
type Tree struct {
	scopes    []record
	lastLabel int
}

func NewTree() *Tree {
	tree := &Tree{}
	tree.scopes = append(tree.scopes, record{parent: NO_SCOPE, bindings: map[string]Binding{}})
	return tree
}

func (t *Tree) Root() ID {
	return ROOT
}

func (t *Tree) Len() int {
	return len(t.scopes)
}

// CreateChild allocates a new scope whose parent is parent.
func (t *Tree) CreateChild(parent ID) ID {
	t.get(parent)
	t.scopes = append(t.scopes, record{parent: parent, bindings: map[string]Binding{}})
	return ID(len(t.scopes) - 1)
}

func (t *Tree) Parent(id ID) (ID, bool) {
	parent := t.get(id).parent
	return parent, parent != NO_SCOPE
}

// HasLocal reports whether name is bound in the scope itself, ancestors are not searched.
func (t *Tree) HasLocal(id ID, name string) bool {
	_, ok := t.get(id).bindings[name]
	return ok
}

// GetLocal returns the binding of name in the scope itself, ancestors are not searched.
func (t *Tree) GetLocal(id ID, name string) (Binding, bool) {
	binding, ok := t.get(id).bindings[name]
	return binding, ok
}

// Insert adds a local binding, the caller should have checked that name is not already bound locally.
func (t *Tree) Insert(id ID, name string, binding Binding) {
	scope := t.get(id)
	if _, ok := scope.bindings[name]; ok {
		panic(fmt.Errorf("%q is already bound in scope %d", name, id))
	}
	scope.bindings[name] = binding
}

// SetType updates the type of a local binding.
func (t *Tree) SetType(id ID, name string, typ types.Type) {
	scope := t.get(id)
	binding, ok := scope.bindings[name]
	if !ok {
		panic(fmt.Errorf("%q is not bound in scope %d", name, id))
	}
	binding.Type = typ
	scope.bindings[name] = binding
}

// Lookup searches name in the scope and then in its ancestors, the ID of the scope
// containing the nearest binding is returned.
func (t *Tree) Lookup(id ID, name string) (Binding, ID, bool) {
	for current := id; current != NO_SCOPE; current = t.get(current).parent {
		if binding, ok := t.get(current).bindings[name]; ok {
			return binding, current, true
		}
	}
	return Binding{}, NO_SCOPE, false
}

func (t *Tree) SetMeta(id ID, key MetaKey, value string) {
	scope := t.get(id)
	if scope.meta == nil {
		scope.meta = map[MetaKey]string{}
	}
	scope.meta[key] = value
}

func (t *Tree) GetMeta(id ID, key MetaKey) (string, bool) {
	value, ok := t.get(id).meta[key]
	return value, ok
}

// LookupMeta returns the value of key in the nearest scope (the scope itself or an ancestor) that has it.
func (t *Tree) LookupMeta(id ID, key MetaKey) (string, bool) {
	for current := id; current != NO_SCOPE; current = t.get(current).parent {
		if value, ok := t.get(current).meta[key]; ok {
			return value, true
		}
	}
	return "", false
}

// NextLabel returns a fresh label, labels are unique in the tree.
func (t *Tree) NextLabel() string {
	t.lastLabel++
	return LABEL_PREFIX + strconv.Itoa(t.lastLabel)
}

type Checkpoint struct {
	scopeCount int
	lastLabel  int
}

func (t *Tree) Mark() Checkpoint {
	return Checkpoint{scopeCount: len(t.scopes), lastLabel: t.lastLabel}
}

// Restore removes the scopes created after the checkpoint and rewinds the label counter.
// Bindings and metadata added to older scopes are not reverted.
func (t *Tree) Restore(c Checkpoint) {
	if c.scopeCount > len(t.scopes) || c.scopeCount < 1 {
		panic(fmt.Errorf("invalid checkpoint"))
	}
	clear(t.scopes[c.scopeCount:])
	t.scopes = t.scopes[:c.scopeCount]
	t.lastLabel = c.lastLabel
}

func (t *Tree) get(id ID) *record {
	if id < 0 || int(id) >= len(t.scopes) {
		panic(fmt.Errorf("unknown scope %d", id))
	}
	return &t.scopes[id]
}
