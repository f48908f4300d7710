package main

import (
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/WesleyTran0/pngme/internal/logger"
)

var (
	logLevel  string
	logFormat string
)

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "log level (debug, info, warn, error)",
			Value:       "info",
			Destination: &logLevel,
		},
		&cli.StringFlag{
			Name:        "log-format",
			Usage:       "log format (text, json, pretty)",
			Value:       "pretty",
			Destination: &logFormat,
		},
	}
}

// newLogger builds the command logger from flags, with config-file values
// filling in anything the flags left at their defaults.
func newLogger(cmd *cli.Command, cfg Config) logger.Logger {
	level := logLevel
	format := logFormat
	if cfg.LogLevel != "" && !cmd.IsSet("log-level") {
		level = cfg.LogLevel
	}
	if cfg.LogFormat != "" && !cmd.IsSet("log-format") {
		format = cfg.LogFormat
	}

	parsed := logger.ParseLevel(level)
	switch format {
	case "json":
		return logger.JSON(os.Stderr, parsed)
	case "text":
		return logger.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: parsed}))
	default:
		return logger.Pretty(os.Stderr, parsed)
	}
}
