package config

import (
	"fmt"
	"os"

	"github.com/adrg/xdg"
	"github.com/goccy/go-yaml"
	"github.com/rs/zerolog"

	"github.com/quacklang/quack/internal/lex"
)

const (
	QUACK_APP_NAME = "quack"

	CONFIG_FILE_NAME    = "config.yaml"
	CONFIG_FILE_RELPATH = QUACK_APP_NAME + "/" + CONFIG_FILE_NAME

	DEFAULT_LOG_LEVEL    = "info"
	DEFAULT_INDENT_WIDTH = 2
)

// Config is the configuration of the compiler front end, it is read from $XDG_CONFIG_HOME/quack/config.yaml
// (or one of the $XDG_CONFIG_DIRS).
type Config struct {
	Log       LogConfig       `yaml:"log"`
	Format    FormatConfig    `yaml:"format"`
	Operators OperatorsConfig `yaml:"operators"`

	//Defaults to SHOULD_COLORIZE.
	Colorize *bool `yaml:"colorize,omitempty"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Pretty bool   `yaml:"pretty"` //human-friendly console output instead of JSON
}

type FormatConfig struct {
	Indent int `yaml:"indent"`
}

// OperatorsConfig lists the custom operators defined for every compilation unit.
type OperatorsConfig struct {
	Prefix []string `yaml:"prefix"`
	Infix  []string `yaml:"infix"`
	Suffix []string `yaml:"suffix"`
}

func Default() Config {
	return Config{
		Log: LogConfig{
			Level: DEFAULT_LOG_LEVEL,
		},
		Format: FormatConfig{
			Indent: DEFAULT_INDENT_WIDTH,
		},
	}
}

// Parse parses a YAML configuration, unspecified fields have their default value.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	if err := yaml.UnmarshalWithOptions(data, &cfg, yaml.DisallowUnknownField()); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	return Parse(data)
}

// Find searches for the configuration file in the XDG config directories.
func Find() (path string, found bool) {
	path, err := xdg.SearchConfigFile(CONFIG_FILE_RELPATH)
	if err != nil {
		return "", false
	}
	return path, true
}

// LoadDefault loads the configuration file if it exists, the default configuration is returned otherwise.
func LoadDefault() (Config, error) {
	path, found := Find()
	if !found {
		return Default(), nil
	}
	return Load(path)
}

func (c Config) Validate() error {
	if _, err := c.LogLevel(); err != nil {
		return err
	}

	if c.Format.Indent < 0 {
		return fmt.Errorf("invalid indentation width: %d", c.Format.Indent)
	}

	if _, err := c.OperatorTable(); err != nil {
		return err
	}
	return nil
}

func (c Config) LogLevel() (zerolog.Level, error) {
	if c.Log.Level == "" {
		return zerolog.InfoLevel, nil
	}

	level, err := zerolog.ParseLevel(c.Log.Level)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q", c.Log.Level)
	}
	return level, nil
}

// OperatorTable returns a new operator table containing the configured operators.
func (c Config) OperatorTable() (*lex.OperatorTable, error) {
	table := lex.NewOperatorTable()

	definitions := []struct {
		fixity  lex.Fixity
		lexemes []string
	}{
		{lex.PREFIX, c.Operators.Prefix},
		{lex.INFIX, c.Operators.Infix},
		{lex.SUFFIX, c.Operators.Suffix},
	}

	for _, def := range definitions {
		for _, lexeme := range def.lexemes {
			if err := table.Define(def.fixity, lexeme); err != nil {
				return nil, fmt.Errorf("invalid %s operator: %w", def.fixity, err)
			}
		}
	}

	return table, nil
}

func (c Config) ShouldColorize() bool {
	if c.Colorize != nil {
		return *c.Colorize
	}
	return SHOULD_COLORIZE
}
