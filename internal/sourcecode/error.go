package sourcecode

// A LocatedError is an error that knows where it happened in the source.
type LocatedError interface {
	error
	MessageWithoutLocation() string
	Location() Position
}
