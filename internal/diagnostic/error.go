package diagnostic

import (
	"errors"
	"strings"

	"github.com/goccy/go-json"

	"github.com/quacklang/quack/internal/sourcecode"
)

// Message codes, the wording is looked up by code outside of the compiler front end.
const (
	//scope errors
	UNDECLARED_NAME       = "SCO010"
	DUPLICATE_DECLARATION = "SCO020"
	MISPLACED_LOOP_JUMP   = "SCO040"
	DUPLICATE_PARAMETER   = "SCO060"

	//type errors
	NON_BOOLEAN_CONDITION = "TYP010"
	UNKNOWN_TYPE          = "TYP020"
	MISMATCHED_LET_TYPE   = "TYP030"
)

var (
	_ sourcecode.LocatedError = (*Error)(nil)
)

type Kind uint8

const (
	SCOPE_ERROR Kind = iota + 1
	TYPE_ERROR
)

func (k Kind) String() string {
	switch k {
	case SCOPE_ERROR:
		return "scope"
	case TYPE_ERROR:
		return "type"
	}
	return "unknown"
}

// An Error is a structured analysis error: a stable message code and the ordered values
// (names, types) substituted in the message.
type Error struct {
	Kind     Kind
	Code     string
	Args     []string
	Position sourcecode.Position //zero if unknown
}

func NewScopeError(pos sourcecode.Position, code string, args ...string) *Error {
	return &Error{Kind: SCOPE_ERROR, Code: code, Args: args, Position: pos}
}

func NewTypeError(pos sourcecode.Position, code string, args ...string) *Error {
	return &Error{Kind: TYPE_ERROR, Code: code, Args: args, Position: pos}
}

func (err *Error) MessageWithoutLocation() string {
	if len(err.Args) == 0 {
		return err.Code
	}
	return err.Code + " [" + strings.Join(err.Args, ", ") + "]"
}

func (err *Error) Location() sourcecode.Position {
	return err.Position
}

func (err *Error) Error() string {
	if err.Position.IsZero() {
		return err.Kind.String() + " error: " + err.MessageWithoutLocation()
	}
	return err.Kind.String() + " error: " + err.MessageWithoutLocation() + " at " + err.Position.String()
}

type jsonError struct {
	Kind   string   `json:"kind"`
	Code   string   `json:"code"`
	Args   []string `json:"args"`
	Line   int32    `json:"line,omitempty"`
	Column int32    `json:"column,omitempty"`
}

// JSON returns the JSON representation of the error, consumed by diagnostic printers.
func (err *Error) JSON() ([]byte, error) {
	args := err.Args
	if args == nil {
		args = []string{}
	}
	return json.Marshal(jsonError{
		Kind:   err.Kind.String(),
		Code:   err.Code,
		Args:   args,
		Line:   err.Position.Line,
		Column: err.Position.Column,
	})
}

func IsScopeError(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == SCOPE_ERROR
}

func IsTypeError(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == TYPE_ERROR
}

// HasCode reports whether err is or wraps an *Error with the given code.
func HasCode(err error, code string) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == code
}
