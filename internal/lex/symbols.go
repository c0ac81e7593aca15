package lex

import "fmt"

const NO_SYMBOL Symbol = 0

// A Symbol is a stable handle to a text interned in a SymbolTable.
type Symbol int32

// A SymbolTable interns lexeme texts. It is append-only, handles stay valid for the whole
// compilation unit. A SymbolTable is not safe for concurrent appends.
type SymbolTable struct {
	texts   []string
	handles map[string]Symbol
}

func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		handles: map[string]Symbol{},
	}
}

// Add interns text and returns its handle, the handle of an already interned text is returned unchanged.
func (t *SymbolTable) Add(text string) Symbol {
	if sym, ok := t.handles[text]; ok {
		return sym
	}
	t.texts = append(t.texts, text)
	sym := Symbol(len(t.texts))
	t.handles[text] = sym
	return sym
}

func (t *SymbolTable) Lookup(text string) (Symbol, bool) {
	sym, ok := t.handles[text]
	return sym, ok
}

func (t *SymbolTable) Has(sym Symbol) bool {
	return sym > 0 && int(sym) <= len(t.texts)
}

// Text returns the text of sym, it panics if sym was not returned by t.
func (t *SymbolTable) Text(sym Symbol) string {
	if !t.Has(sym) {
		panic(fmt.Errorf("unknown symbol %d", sym))
	}
	return t.texts[sym-1]
}

func (t *SymbolTable) Len() int {
	return len(t.texts)
}

// Symbols returns a copy of the interned texts, the text of symbol n is at index n-1.
func (t *SymbolTable) Symbols() []string {
	return append([]string(nil), t.texts...)
}
