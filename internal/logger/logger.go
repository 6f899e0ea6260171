// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 devfrx

// Package logger provides a thin wrapper around zerolog.Logger with
// convenience constructors and domain-specific helpers used throughout
// fluxa.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// Application code passes *Logger by pointer and obtains context-scoped
// loggers via FromContext.
package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger. Embedding exposes the full
// zerolog API while allowing fluxa-specific helper methods.
type Logger struct {
	zerolog.Logger
}

// NewLogger constructs a *Logger for the given role label (e.g. "fluxa",
// "store") writing JSON to stdout at debug level. Used before configuration
// is resolved; Setup builds the configured logger afterwards.
func NewLogger(role string) *Logger {
	logger := zerolog.New(os.Stdout).With().
		Str("role", role).
		Timestamp().
		Logger()

	return &Logger{logger}
}

// Setup constructs the application logger from the resolved logging settings:
// level is one of debug/info/warn/error, format is "console" or "json", and
// a non-empty filePath adds a file sink next to the console one (parent
// directories are created on demand).
func Setup(role, level, format, filePath string) (*Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("error parsing log level %q: %w", level, err)
	}

	var console io.Writer = os.Stderr
	if format == "console" {
		console = zerolog.ConsoleWriter{Out: os.Stderr}
	}

	writer := console
	if filePath != "" {
		if err := os.MkdirAll(filepath.Dir(filePath), 0o755); err != nil {
			return nil, fmt.Errorf("error creating log directory: %w", err)
		}
		file, err := os.OpenFile(filePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("error opening log file: %w", err)
		}
		writer = zerolog.MultiLevelWriter(console, file)
	}

	logger := zerolog.New(writer).Level(lvl).With().
		Str("role", role).
		Timestamp().
		Logger()

	return &Logger{logger}, nil
}

// Nop returns a *Logger that discards all log output. Intended for tests and
// for components constructed before logging is configured.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger inheriting all fields of the
// receiver. The child can be enriched with additional context fields without
// affecting the parent.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// WithContext attaches the logger to ctx for later retrieval with
// FromContext.
func (l *Logger) WithContext(ctx context.Context) context.Context {
	return l.Logger.WithContext(ctx)
}

// FromContext extracts the zerolog.Logger stored in ctx and returns it as a
// *Logger. If no logger has been attached, zerolog returns its global
// logger, so this function never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}

// llmContentLimit caps logged LLM message content so prompts and replies do
// not flood the log.
const llmContentLimit = 200

// LLMInteraction records one request or response exchanged with the LLM
// server. direction is "request" or "response".
func (l *Logger) LLMInteraction(direction, content string, fields map[string]any) {
	if runes := []rune(content); len(runes) > llmContentLimit {
		content = string(runes[:llmContentLimit]) + "..."
	}
	l.Debug().
		Str("direction", direction).
		Str("content", content).
		Fields(fields).
		Msg("llm interaction")
}

// DatabaseOperation records the outcome of one storage operation.
func (l *Logger) DatabaseOperation(operation, table string, err error) {
	if err != nil {
		l.Err(err).
			Str("operation", operation).
			Str("table", table).
			Msg("database operation failed")
		return
	}
	l.Debug().
		Str("operation", operation).
		Str("table", table).
		Msg("database operation")
}
