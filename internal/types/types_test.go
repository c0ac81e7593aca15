package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLiteralType(t *testing.T) {
	assert.True(t, Bool.IsBoolean())
	assert.False(t, String.IsBoolean())
	assert.Equal(t, "string", String.String())

	assert.True(t, Number.Equal(LiteralType{NUMBER}))
	assert.False(t, Number.Equal(Atom))
	assert.False(t, Number.Equal(Unknown{}))
}

func TestUnknown(t *testing.T) {
	assert.False(t, Unknown{}.IsBoolean())
	assert.True(t, Unknown{}.Equal(Unknown{}))
	assert.False(t, Unknown{}.Equal(Bool))
	assert.Equal(t, "?", Unknown{}.String())
}

func TestByName(t *testing.T) {
	for _, name := range []string{"string", "bool", "number", "atom", "regex", "nil"} {
		typ, ok := ByName(name)
		if assert.True(t, ok, name) {
			assert.Equal(t, name, typ.String())
		}
	}

	_, ok := ByName("int")
	assert.False(t, ok)
}
