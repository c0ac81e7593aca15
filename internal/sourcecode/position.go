package sourcecode

import "fmt"

// Position is the location of a character in a source, both fields are 1-indexed.
type Position struct {
	Line   int32 `json:"line"`
	Column int32 `json:"column"`
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

func (p Position) IsZero() bool {
	return p.Line == 0 && p.Column == 0
}

func (p Position) Before(other Position) bool {
	return p.Line < other.Line || (p.Line == other.Line && p.Column < other.Column)
}
