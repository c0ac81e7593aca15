package logs

import (
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/quacklang/quack/internal/config"
)

const (
	SOURCE_LOG_FIELD_NAME = "src"
	UNIT_LOG_FIELD_NAME   = "unit"

	LEXER_SOURCE    = "lexer"
	ANALYSIS_SOURCE = "analysis"
)

func init() {
	zerolog.DurationFieldInteger = false
	zerolog.DurationFieldUnit = time.Millisecond
	zerolog.MessageFieldName = "msg"
	zerolog.LevelFieldName = "lvl"
	zerolog.TimestampFieldName = "tm"
}

// New creates a logger writing to out, the level and output format are taken from the configuration.
func New(out io.Writer, cfg config.Config) (zerolog.Logger, error) {
	level, err := cfg.LogLevel()
	if err != nil {
		return zerolog.Nop(), err
	}

	if cfg.Log.Pretty {
		out = zerolog.ConsoleWriter{
			Out:        out,
			NoColor:    !cfg.ShouldColorize(),
			TimeFormat: time.TimeOnly,
		}
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger(), nil
}

func ChildLoggerForSource(logger zerolog.Logger, src string) zerolog.Logger {
	return logger.With().Str(SOURCE_LOG_FIELD_NAME, src).Logger()
}
