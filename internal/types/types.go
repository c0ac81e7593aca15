package types

// A Type is the static type of an expression.
type Type interface {
	String() string
	IsBoolean() bool
	Equal(other Type) bool
}

type Native uint8

const (
	STR Native = iota + 1
	BOOL
	NUMBER
	ATOM
	REGEX
	NIL
)

var nativeNames = map[Native]string{
	STR:    "string",
	BOOL:   "bool",
	NUMBER: "number",
	ATOM:   "atom",
	REGEX:  "regex",
	NIL:    "nil",
}

func (n Native) String() string {
	if name, ok := nativeNames[n]; ok {
		return name
	}
	return "invalid"
}

// LiteralType is the type of a native value.
type LiteralType struct {
	Native Native
}

func (t LiteralType) String() string {
	return t.Native.String()
}

func (t LiteralType) IsBoolean() bool {
	return t.Native == BOOL
}

func (t LiteralType) Equal(other Type) bool {
	o, ok := other.(LiteralType)
	return ok && o.Native == t.Native
}

// Unknown is the type of expressions whose type cannot be statically determined
// (e.g. unannotated parameters), it is never boolean.
type Unknown struct{}

func (Unknown) String() string {
	return "?"
}

func (Unknown) IsBoolean() bool {
	return false
}

func (Unknown) Equal(other Type) bool {
	_, ok := other.(Unknown)
	return ok
}

var (
	String = LiteralType{STR}
	Bool   = LiteralType{BOOL}
	Number = LiteralType{NUMBER}
	Atom   = LiteralType{ATOM}
	Regex  = LiteralType{REGEX}
	Nil    = LiteralType{NIL}
)

// ByName resolves the name used in a type annotation.
func ByName(name string) (Type, bool) {
	for native, nativeName := range nativeNames {
		if nativeName == name {
			return LiteralType{native}, true
		}
	}
	return nil, false
}
