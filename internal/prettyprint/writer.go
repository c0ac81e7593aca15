package prettyprint

import (
	"io"

	"github.com/muesli/termenv"
)

var (
	ANSI_RESET_SEQUENCE = []byte(termenv.CSI + termenv.ResetSeq + "m")
)

// A PrettyPrintWriter writes strings to an io.Writer, wrapping them in color sequences if colorization is enabled.
// The first write error is kept and subsequent writes are no-ops.
type PrettyPrintWriter struct {
	writer io.Writer
	config PrettyPrintConfig
	n      int
	err    error
}

func NewWriter(writer io.Writer, config PrettyPrintConfig) *PrettyPrintWriter {
	return &PrettyPrintWriter{
		writer: writer,
		config: config,
	}
}

func (w *PrettyPrintWriter) Colors() *PrettyPrintColors {
	return w.config.colors()
}

func (w *PrettyPrintWriter) WriteString(str string) {
	w.write([]byte(str))
}

// WriteColored writes str in the given color, the color is ignored if colorization is disabled.
func (w *PrettyPrintWriter) WriteColored(color []byte, str string) {
	if !w.config.Colorize || len(color) == 0 {
		w.WriteString(str)
		return
	}
	w.write(color)
	w.write([]byte(str))
	w.write(ANSI_RESET_SEQUENCE)
}

func (w *PrettyPrintWriter) WriteLF() {
	w.write([]byte{'\n'})
}

func (w *PrettyPrintWriter) write(b []byte) {
	if w.err != nil {
		return
	}
	n, err := w.writer.Write(b)
	w.n += n
	w.err = err
}

// Result returns the number of written bytes and the first error.
func (w *PrettyPrintWriter) Result() (int, error) {
	return w.n, w.err
}
