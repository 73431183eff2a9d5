package main

import (
	"github.com/charmbracelet/log"

	"github.com/steliosot/multiprocessing-threads/core"
)

// coreLogger adapts charmbracelet/log to the core.Logger interface so the
// harness's structured debug output lands on the CLI console.
type coreLogger struct {
	logger *log.Logger
}

func newCoreLogger(logger *log.Logger) *coreLogger {
	return &coreLogger{logger: logger}
}

func (l *coreLogger) Debug(msg string, fields ...core.Field) {
	l.logger.Debug(msg, kv(fields)...)
}

func (l *coreLogger) Info(msg string, fields ...core.Field) {
	l.logger.Info(msg, kv(fields)...)
}

func (l *coreLogger) Warn(msg string, fields ...core.Field) {
	l.logger.Warn(msg, kv(fields)...)
}

func (l *coreLogger) Error(msg string, fields ...core.Field) {
	l.logger.Error(msg, kv(fields)...)
}

func kv(fields []core.Field) []any {
	out := make([]any, 0, len(fields)*2)
	for _, f := range fields {
		out = append(out, f.Key, f.Value)
	}
	return out
}
