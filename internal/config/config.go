// Package config loads the command line tool configuration from TOML.
package config

import (
	"github.com/BurntSushi/toml"
	"github.com/pingcap/errors"
	pclog "github.com/pingcap/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/sqlc-dev/oraexpr/parser"
)

// ErrInvalidConfig is returned when a loaded configuration fails validation.
var ErrInvalidConfig = errors.Normalize("invalid configuration: %s", errors.RFCCodeText("oraexpr:config:ErrInvalidConfig"))

// Config contains configuration options.
type Config struct {
	Parser Parser `toml:"parser" json:"parser"`
	Batch  Batch  `toml:"batch" json:"batch"`
	Log    Log    `toml:"log" json:"log"`
}

// Parser is the parser section of config.
type Parser struct {
	// Maximum expression nesting depth. Zero or less disables the limit.
	MaxDepth int `toml:"max-depth" json:"max-depth"`
}

// Batch is the batch section of config.
type Batch struct {
	// Number of expressions parsed at once. Zero or less means no limit.
	Concurrency int `toml:"concurrency" json:"concurrency"`
}

// Log is the log section of config.
type Log struct {
	// Log level.
	// One of "debug", "info", "warn", "error", "dpanic", "panic", and "fatal".
	Level string `toml:"level" json:"level"`
	// Format of the log, one of `text`, `json` or `console`.
	Format string `toml:"format" json:"format"`
	// Log filename, leave empty to log to stderr.
	File string `toml:"file" json:"file"`
	// Max size for a single file, in MB.
	FileMaxSize int `toml:"max-size" json:"max-size"`
	// Max log keep days, default is never deleting.
	FileMaxDays int `toml:"max-days" json:"max-days"`
	// Maximum number of old log files to retain.
	FileMaxBackups int `toml:"max-backups" json:"max-backups"`
}

var defaultConf = Config{
	Parser: Parser{
		MaxDepth: parser.DefaultMaxDepth,
	},
	Batch: Batch{
		Concurrency: 8,
	},
	Log: Log{
		Level:  "info",
		Format: "text",
	},
}

// NewConfig creates a new config instance with default values.
func NewConfig() *Config {
	conf := defaultConf
	return &conf
}

// Load loads config options from a toml file. Keys that do not belong to
// any section are reported as an error.
func (c *Config) Load(confFile string) error {
	meta, err := toml.DecodeFile(confFile, c)
	if err != nil {
		return errors.Trace(err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return ErrInvalidConfig.GenWithStackByArgs("unknown key " + undecoded[0].String())
	}
	return errors.Trace(c.Valid())
}

// Valid checks if this config is valid.
func (c *Config) Valid() error {
	switch c.Log.Format {
	case "text", "json", "console":
	default:
		return ErrInvalidConfig.GenWithStackByArgs("log format must be text, json or console, got " + c.Log.Format)
	}
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return ErrInvalidConfig.GenWithStackByArgs("unknown log level " + c.Log.Level)
	}
	return nil
}

// ParserOptions converts the parser and log settings into parser options.
func (c *Config) ParserOptions(logger *zap.Logger) []parser.Option {
	opts := []parser.Option{parser.WithMaxDepth(c.Parser.MaxDepth)}
	if logger != nil {
		opts = append(opts, parser.WithLogger(logger))
	}
	return opts
}

// ToLogConfig converts *Log to *pclog.Config.
func (l *Log) ToLogConfig() *pclog.Config {
	return &pclog.Config{
		Level:  l.Level,
		Format: l.Format,
		File: pclog.FileLogConfig{
			Filename:   l.File,
			MaxSize:    l.FileMaxSize,
			MaxDays:    l.FileMaxDays,
			MaxBackups: l.FileMaxBackups,
		},
	}
}

// InitLogger builds the logger described by l and installs it as the global
// logger.
func (l *Log) InitLogger() (*zap.Logger, error) {
	logger, props, err := pclog.InitLogger(l.ToLogConfig())
	if err != nil {
		return nil, errors.Trace(err)
	}
	pclog.ReplaceGlobals(logger, props)
	return logger, nil
}
