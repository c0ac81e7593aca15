package lex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSymbolTable(t *testing.T) {
	t.Run("handles are dense and start at 1", func(t *testing.T) {
		table := NewSymbolTable()

		assert.Equal(t, Symbol(1), table.Add("a"))
		assert.Equal(t, Symbol(2), table.Add("b"))
		assert.Equal(t, 2, table.Len())
	})

	t.Run("repeated texts are deduplicated", func(t *testing.T) {
		table := NewSymbolTable()

		first := table.Add("while")
		table.Add("x")
		second := table.Add("while")

		assert.Equal(t, first, second)
		assert.Equal(t, 2, table.Len())
		assert.Equal(t, []string{"while", "x"}, table.Symbols())
	})

	t.Run("lookup", func(t *testing.T) {
		table := NewSymbolTable()
		sym := table.Add("0x1A")

		found, ok := table.Lookup("0x1A")
		assert.True(t, ok)
		assert.Equal(t, sym, found)

		_, ok = table.Lookup("0x1B")
		assert.False(t, ok)
	})

	t.Run("text of an unknown symbol", func(t *testing.T) {
		table := NewSymbolTable()
		assert.False(t, table.Has(NO_SYMBOL))
		assert.Panics(t, func() {
			table.Text(3)
		})
	})

	t.Run("the returned slice is a copy", func(t *testing.T) {
		table := NewSymbolTable()
		table.Add("a")

		symbols := table.Symbols()
		symbols[0] = "b"
		assert.Equal(t, "a", table.Text(1))
	})
}
