package prettyprint

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("closed")
}

func TestPrettyPrintWriter(t *testing.T) {
	t.Run("no colorization", func(t *testing.T) {
		buf := bytes.NewBuffer(nil)
		w := NewWriter(buf, PrettyPrintConfig{})
		w.WriteColored(w.Colors().StringLiteral, `"a"`)
		w.WriteLF()

		n, err := w.Result()
		assert.NoError(t, err)
		assert.Equal(t, 4, n)
		assert.Equal(t, "\"a\"\n", buf.String())
	})

	t.Run("colorization", func(t *testing.T) {
		buf := bytes.NewBuffer(nil)
		w := NewWriter(buf, PrettyPrintConfig{Colorize: true, Colors: &DEFAULT_LIGHTMODE_PRINT_COLORS})
		w.WriteColored(DEFAULT_LIGHTMODE_PRINT_COLORS.NumberLiteral, "1")

		expected := string(DEFAULT_LIGHTMODE_PRINT_COLORS.NumberLiteral) + "1" + string(ANSI_RESET_SEQUENCE)
		assert.Equal(t, expected, buf.String())
	})

	t.Run("the first error is kept", func(t *testing.T) {
		w := NewWriter(failingWriter{}, PrettyPrintConfig{})
		w.WriteString("a")
		w.WriteString("b")

		_, err := w.Result()
		assert.EqualError(t, err, "closed")
	})
}
