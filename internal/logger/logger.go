// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors and context-aware helpers used throughout
// worldsync.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// Components receive *Logger by pointer and derive scoped loggers via
// ForService, ForSession or FromContext.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// NewLogger constructs a JSON *Logger writing to os.Stdout for the given
// role label (e.g. "syncd").
//
// The logger is configured with:
//   - global log level parsed from level (Debug when empty or invalid);
//   - a "role" field set to role;
//   - a timestamp on every entry;
//   - a "func" caller field holding the fully-qualified function name.
func NewLogger(role, level string) *Logger {
	return newLogger(os.Stdout, role, level)
}

// NewClientLogger constructs a *Logger for command-line tools. Output goes
// to os.Stderr in human-readable console form so that command output on
// stdout stays machine-parsable.
func NewClientLogger(role, level string) *Logger {
	return newLogger(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: true}, role, level)
}

func newLogger(w io.Writer, role, level string) *Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(lvl)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	logger := zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// ForService returns a child logger tagged with the broker address a
// synchronizer is bound to.
func (l *Logger) ForService(address string) *Logger {
	return &Logger{l.With().Str("service", address).Logger()}
}

// ForSession returns a child logger tagged with a session id and, when
// known, the local client id.
func (l *Logger) ForSession(sessionID, clientID string) *Logger {
	ctx := l.With().Str("session_id", sessionID)
	if clientID != "" {
		ctx = ctx.Str("client_id", clientID)
	}
	return &Logger{ctx.Logger()}
}

// FromRequest extracts the zerolog.Logger stored in the request's context
// and returns it as a *Logger.
func FromRequest(r *http.Request) *Logger {
	return &Logger{*log.Ctx(r.Context())}
}

// FromContext extracts the zerolog.Logger stored in ctx by zerolog's
// log.Ctx helper. It never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
