package lex

import (
	"fmt"
	"strings"
)

// Fixity is a bitset, an operator can be registered with several fixities.
type Fixity uint8

const (
	PREFIX Fixity = 1 << iota
	INFIX
	SUFFIX
)

func (f Fixity) String() string {
	var parts []string
	if f&PREFIX != 0 {
		parts = append(parts, "prefix")
	}
	if f&INFIX != 0 {
		parts = append(parts, "infix")
	}
	if f&SUFFIX != 0 {
		parts = append(parts, "suffix")
	}
	return strings.Join(parts, ",")
}

// An OperatorTable holds the custom operators defined for a compilation unit.
type OperatorTable struct {
	fixities map[string]Fixity
}

func NewOperatorTable() *OperatorTable {
	return &OperatorTable{fixities: map[string]Fixity{}}
}

// Define registers lexeme with the given fixity, a lexeme should only contain operator characters.
func (t *OperatorTable) Define(fixity Fixity, lexeme string) error {
	if lexeme == "" {
		return fmt.Errorf("empty operator lexeme")
	}
	for _, r := range lexeme {
		if !IsOperatorChar(r) {
			return fmt.Errorf("invalid operator %q: %q is not an operator character", lexeme, r)
		}
	}
	if fixity == 0 || fixity > (PREFIX|INFIX|SUFFIX) {
		return fmt.Errorf("invalid fixity for operator %q", lexeme)
	}
	t.fixities[lexeme] |= fixity
	return nil
}

func (t *OperatorTable) Fixity(lexeme string) (Fixity, bool) {
	f, ok := t.fixities[lexeme]
	return f, ok
}

func (t *OperatorTable) Len() int {
	return len(t.fixities)
}
