// Package logger configures the global zerolog logger.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
	"github.com/ukaji3/lateralload-go/internal/config"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Configure installs the global logger described by cfg. Console output goes
// to out (stderr in the CLI).
func Configure(cfg config.LoggingConfig, out io.Writer) error {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return err
	}

	var console io.Writer = out
	if cfg.Format == "console" {
		console = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.Kitchen,
		}
	}

	writer := console
	if cfg.File != "" {
		writer = zerolog.MultiLevelWriter(console, &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
		})
	}

	log.Logger = zerolog.New(writer).
		With().
		Timestamp().
		Logger().
		Level(level)
	return nil
}

// Default configures console logging to stderr at warn level.
func Default() {
	_ = Configure(config.Default().Logging, os.Stderr)
}
