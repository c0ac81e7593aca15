package frontend

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"

	"github.com/quacklang/quack/internal/analysis"
	"github.com/quacklang/quack/internal/ast"
	"github.com/quacklang/quack/internal/config"
	"github.com/quacklang/quack/internal/diagnostic"
	"github.com/quacklang/quack/internal/lex"
	"github.com/quacklang/quack/internal/logs"
	"github.com/quacklang/quack/internal/prettyprint"
)

// A Unit is a compilation unit: a piece of source code, its symbol table, its tokenizer and its analyzer.
// The symbol table is owned by the unit and shared with everything that needs to resolve symbols.
type Unit struct {
	id   ulid.ULID
	name string
	code string
	cfg  config.Config

	symbols   *lex.SymbolTable
	operators *lex.OperatorTable
	tokenizer *lex.Tokenizer
	analyzer  *analysis.Analyzer //lazily created

	logger zerolog.Logger
}

type UnitOptions struct {
	//Defaults to zerolog.Nop().
	Logger *zerolog.Logger
}

func NewUnit(name, code string, cfg config.Config, opts ...UnitOptions) (*Unit, error) {
	operators, err := cfg.OperatorTable()
	if err != nil {
		return nil, err
	}

	logger := zerolog.Nop()
	if len(opts) > 0 && opts[0].Logger != nil {
		logger = *opts[0].Logger
	}

	id := ulid.Make()
	logger = logger.With().Str(logs.UNIT_LOG_FIELD_NAME, id.String()).Str("name", name).Logger()

	u := &Unit{
		id:        id,
		name:      name,
		code:      code,
		cfg:       cfg,
		symbols:   lex.NewSymbolTable(),
		operators: operators,
		logger:    logger,
	}
	u.tokenizer = u.newTokenizer()

	u.logger.Debug().Int("operators", operators.Len()).Msg("compilation unit created")
	return u, nil
}

// Open creates a unit configured by the configuration file found in the XDG config directories,
// logs are written to stderr.
func Open(name, code string) (*Unit, error) {
	cfg, err := config.LoadDefault()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := logs.New(os.Stderr, cfg)
	if err != nil {
		return nil, err
	}

	return NewUnit(name, code, cfg, UnitOptions{Logger: &logger})
}

func (u *Unit) ID() ulid.ULID {
	return u.id
}

func (u *Unit) Name() string {
	return u.name
}

func (u *Unit) Code() string {
	return u.code
}

func (u *Unit) Config() config.Config {
	return u.cfg
}

func (u *Unit) Logger() zerolog.Logger {
	return u.logger
}

func (u *Unit) Symbols() *lex.SymbolTable {
	return u.symbols
}

// Tokenizer returns the tokenizer of the unit, it is shared by all callers.
func (u *Unit) Tokenizer() *lex.Tokenizer {
	return u.tokenizer
}

func (u *Unit) Analyzer() *analysis.Analyzer {
	if u.analyzer == nil {
		logger := logs.ChildLoggerForSource(u.logger, logs.ANALYSIS_SOURCE)
		u.analyzer = analysis.NewAnalyzer(analysis.AnalyzerOptions{Logger: &logger})
	}
	return u.analyzer
}

// Formatter returns a new formatter using the configured indentation width.
func (u *Unit) Formatter() *ast.Formatter {
	return ast.NewFormatter(u.cfg.Format.Indent)
}

// Format re-serializes the program accepted by the analyzer.
func (u *Unit) Format() (string, error) {
	program := u.Analyzer().Program()
	if program == nil {
		return "", analysis.ErrNoProgram
	}
	return program.Format(u.Formatter()), nil
}

// AllTokens tokenizes the whole code with a new tokenizer, the position of the unit's tokenizer is not changed.
// The EOF token is not included.
func (u *Unit) AllTokens() []lex.Token {
	return u.newTokenizer().Tokens()
}

// DumpTokens writes all the tokens of the code to w as JSON.
func (u *Unit) DumpTokens(w io.Writer) error {
	return lex.DumpTokensJSON(w, u.AllTokens(), u.symbols)
}

// PrintTokens writes all the tokens of the code to w, one per line.
func (u *Unit) PrintTokens(w io.Writer) (int, error) {
	return lex.PrintTokens(w, u.AllTokens(), u.symbols, u.printConfig())
}

// PrintError writes an error returned by the analysis of the unit to w.
func (u *Unit) PrintError(w io.Writer, err error) (int, error) {
	var diagnosticErr *diagnostic.Error
	if errors.As(err, &diagnosticErr) {
		return diagnosticErr.Print(w, u.printConfig())
	}
	return fmt.Fprintln(w, err.Error())
}

func (u *Unit) printConfig() prettyprint.PrettyPrintConfig {
	printConfig := prettyprint.PrettyPrintConfig{
		Colorize: u.cfg.ShouldColorize(),
	}
	if printConfig.Colorize {
		printConfig.Colors = prettyprint.DefaultColors()
	}
	return printConfig
}

func (u *Unit) newTokenizer() *lex.Tokenizer {
	logger := logs.ChildLoggerForSource(u.logger, logs.LEXER_SOURCE)

	return lex.NewTokenizer(u.code, u.symbols, lex.TokenizerOptions{
		Operators: u.operators,
		Logger:    &logger,
	})
}
