// Copyright 2025 Supabase, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package logutil configures the process-wide slog logger from flags.
package logutil

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/Canonical-LLC/psycopg/go/tools/viperutil"
)

// Logger builds a slog.Logger from the log-level, log-format and log-output
// settings of a registry.
type Logger struct {
	logLevel  *viperutil.Value[string]
	logFormat *viperutil.Value[string]
	logOutput *viperutil.Value[string]

	closer io.Closer
	logger *slog.Logger
}

// NewLogger declares the logging settings in reg.
func NewLogger(reg *viperutil.Registry) *Logger {
	return &Logger{
		logLevel: viperutil.Configure(reg, "log-level", viperutil.Options[string]{
			Default:  "info",
			FlagName: "log-level",
		}),
		logFormat: viperutil.Configure(reg, "log-format", viperutil.Options[string]{
			Default:  "text",
			FlagName: "log-format",
		}),
		logOutput: viperutil.Configure(reg, "log-output", viperutil.Options[string]{
			Default:  "stderr",
			FlagName: "log-output",
		}),
	}
}

// RegisterFlags registers logging-related command line flags.
func (lg *Logger) RegisterFlags(fs *pflag.FlagSet) {
	fs.String("log-level", lg.logLevel.Default(), "Log level (debug, info, warn, error)")
	fs.String("log-format", lg.logFormat.Default(), "Log format (json, text)")
	fs.String("log-output", lg.logOutput.Default(), "Log output (stdout, stderr, or file path)")
	viperutil.BindFlags(fs, lg.logLevel, lg.logFormat, lg.logOutput)
}

// SetupLogging creates the logger and installs it as the slog default.
func (lg *Logger) SetupLogging(stdout, stderr io.Writer) error {
	if err := lg.Close(); err != nil {
		return err
	}
	level, err := ParseLevel(lg.logLevel.Get())
	if err != nil {
		return err
	}

	var output io.Writer
	switch out := lg.logOutput.Get(); strings.ToLower(out) {
	case "stdout":
		output = stdout
	case "stderr", "":
		output = stderr
	default:
		file, err := os.OpenFile(out, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log output %s: %w", out, err)
		}
		output = file
		lg.closer = file
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	switch format := lg.logFormat.Get(); strings.ToLower(format) {
	case "json":
		handler = slog.NewJSONHandler(output, opts)
	case "text", "":
		handler = slog.NewTextHandler(output, opts)
	default:
		return fmt.Errorf("unknown log format %q", format)
	}

	lg.logger = slog.New(handler)
	slog.SetDefault(lg.logger)
	lg.logger.Debug("logging initialized", "level", level)
	return nil
}

// GetLogger returns the configured logger, or slog.Default before
// SetupLogging has run.
func (lg *Logger) GetLogger() *slog.Logger {
	if lg.logger == nil {
		return slog.Default()
	}
	return lg.logger
}

// Close releases the log file, if one was opened.
func (lg *Logger) Close() error {
	if lg.closer == nil {
		return nil
	}
	err := lg.closer.Close()
	lg.closer = nil
	return err
}

// ParseLevel maps a level name to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}
