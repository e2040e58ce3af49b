package main

import (
	"io"
	"strings"

	"github.com/pingcap/errors"
	"github.com/pingcap/log"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sqlc-dev/oraexpr/internal/config"
	"github.com/sqlc-dev/oraexpr/parser"
)

const (
	// FlagConfig is the name of config flag.
	FlagConfig = "config"
	// FlagLogLevel is the name of log-level flag.
	FlagLogLevel = "log-level"
	// FlagLogFile is the name of log-file flag.
	FlagLogFile = "log-file"
	// FlagLogFormat is the name of log-format flag.
	FlagLogFormat = "log-format"
	// FlagMaxDepth is the name of max-depth flag.
	FlagMaxDepth = "max-depth"
)

var (
	conf   = config.NewConfig()
	logger = zap.NewNop()
)

// AddFlags adds flags to the given cmd.
func AddFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringP(FlagConfig, "C", "", "path of the TOML config file")
	cmd.PersistentFlags().StringP(FlagLogLevel, "L", "",
		"set the log level, one of debug, info, warn, error")
	cmd.PersistentFlags().String(FlagLogFile, "", "set the log file path, stderr if empty")
	cmd.PersistentFlags().String(FlagLogFormat, "", "set the log format, one of text, json, console")
	cmd.PersistentFlags().Int(FlagMaxDepth, 0, "maximum expression nesting depth, overrides the config file")
}

// Init loads the config file, applies flag overrides and sets up logging.
func Init(cmd *cobra.Command, _ []string) error {
	conf = config.NewConfig()
	flags := cmd.Flags()

	path, err := flags.GetString(FlagConfig)
	if err != nil {
		return errors.Trace(err)
	}
	if path != "" {
		if err := conf.Load(path); err != nil {
			return errors.Annotatef(err, "load config %s", path)
		}
	}

	for name, dst := range map[string]*string{
		FlagLogLevel:  &conf.Log.Level,
		FlagLogFile:   &conf.Log.File,
		FlagLogFormat: &conf.Log.Format,
	} {
		if flags.Changed(name) {
			if *dst, err = flags.GetString(name); err != nil {
				return errors.Trace(err)
			}
		}
	}
	if flags.Changed(FlagMaxDepth) {
		if conf.Parser.MaxDepth, err = flags.GetInt(FlagMaxDepth); err != nil {
			return errors.Trace(err)
		}
	}
	if err := conf.Valid(); err != nil {
		return errors.Trace(err)
	}

	if logger, err = conf.Log.InitLogger(); err != nil {
		return errors.Trace(err)
	}
	log.Debug("config loaded",
		zap.String("file", path),
		zap.Int("max-depth", conf.Parser.MaxDepth),
		zap.Int("concurrency", conf.Batch.Concurrency))
	return nil
}

// readInput returns the command arguments joined by spaces, or standard
// input when there are none or the only argument is "-".
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || (len(args) == 1 && args[0] == "-") {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", errors.Trace(err)
		}
		return string(data), nil
	}
	return strings.Join(args, " "), nil
}

func parserOptions() []parser.Option {
	return conf.ParserOptions(logger)
}
