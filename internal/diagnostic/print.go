package diagnostic

import (
	"io"
	"strings"

	"github.com/quacklang/quack/internal/prettyprint"
)

// Print writes the error on a single line: <kind> error <line>:<column> <code> [args].
func (err *Error) Print(w io.Writer, config prettyprint.PrettyPrintConfig) (int, error) {
	writer := prettyprint.NewWriter(w, config)
	colors := writer.Colors()

	writer.WriteString(err.Kind.String())
	writer.WriteString(" error ")
	if !err.Position.IsZero() {
		writer.WriteColored(colors.DiscreteColor, err.Position.String())
		writer.WriteString(" ")
	}
	writer.WriteColored(colors.ErrorColor, err.Code)

	if len(err.Args) > 0 {
		writer.WriteString(" [")
		writer.WriteString(strings.Join(err.Args, ", "))
		writer.WriteString("]")
	}
	writer.WriteLF()

	return writer.Result()
}
