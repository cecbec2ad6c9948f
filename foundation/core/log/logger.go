// File: logger.go
// Title: Core Logger Implementation
// Description: Implements the Logger type that provides structured logging
//              with contextual fields, multiple output formats and
//              integration with the structured error type.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging
// - 2026-10-19 v0.2.0: Synchronous writes only, severity driven LogError
// - 2026-10-19 v0.3.0: Loggers are immutable, global default logger removed

package log

import (
	"errors"
	"io"
	"os"
	"sync"
	"time"

	apperror "github.com/msto63/calcalc/foundation/core/error"
)

// Logger writes structured entries at or above its level. A Logger is never
// modified after construction; the With methods return copies.
type Logger struct {
	level         Level
	format        formatter
	output        io.Writer
	name          string
	correlationID string
	fields        Fields

	// shared by every copy writing to the same output
	writeMu *sync.Mutex
}

// Config represents logger configuration
type Config struct {
	Level  Level
	Format Format
	Output io.Writer // default: os.Stderr
	Name   string
}

// NewWithConfig creates a new logger with the specified configuration
func NewWithConfig(config Config) *Logger {
	output := config.Output
	if output == nil {
		output = os.Stderr
	}
	return &Logger{
		level:   config.Level,
		format:  config.Format.formatter(),
		output:  output,
		name:    config.Name,
		fields:  Fields{},
		writeMu: &sync.Mutex{},
	}
}

// Discard returns a logger that drops every entry
func Discard() *Logger {
	return NewWithConfig(Config{Level: LevelError + 1, Output: io.Discard})
}

// WithName returns a copy with the given logger name
func (l *Logger) WithName(name string) *Logger {
	c := l.clone()
	c.name = name
	return c
}

// WithField returns a copy that adds key to every entry
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return l.WithFields(Fields{key: value})
}

// WithFields returns a copy that adds fields to every entry. Per-call fields
// win over these on conflicts.
func (l *Logger) WithFields(fields Fields) *Logger {
	c := l.clone()
	for k, v := range fields {
		c.fields[k] = v
	}
	return c
}

// WithCorrelationID returns a copy stamping id on every entry
func (l *Logger) WithCorrelationID(id string) *Logger {
	c := l.clone()
	c.correlationID = id
	return c
}

// Debug logs a debug level message
func (l *Logger) Debug(message string, fields ...Fields) {
	l.log(LevelDebug, message, nil, fields...)
}

// Info logs an info level message
func (l *Logger) Info(message string, fields ...Fields) {
	l.log(LevelInfo, message, nil, fields...)
}

// LogError logs err at a level derived from its severity. Structured errors
// contribute their code, operation and details as fields.
func (l *Logger) LogError(err error) {
	if err == nil {
		return
	}

	var appErr *apperror.Error
	if !errors.As(err, &appErr) {
		l.log(LevelError, err.Error(), err)
		return
	}

	fields := Fields{
		"error_code":     appErr.Code(),
		"error_category": appErr.Code().Category(),
		"error_severity": appErr.Severity().String(),
	}
	if op := appErr.Operation(); op != "" {
		fields["error_operation"] = op
	}
	for k, v := range appErr.Details() {
		fields["error_"+k] = v
	}

	level := LevelError
	switch appErr.Severity() {
	case apperror.SeverityLow:
		level = LevelInfo
	case apperror.SeverityMedium:
		level = LevelWarn
	}
	l.log(level, err.Error(), err, fields)
}

func (l *Logger) log(level Level, message string, err error, fields ...Fields) {
	if level < l.level {
		return
	}

	entry := &Entry{
		Time:          time.Now(),
		Level:         level,
		Message:       message,
		Logger:        l.name,
		CorrelationID: l.correlationID,
		Fields:        make(Fields, len(l.fields)),
		Err:           err,
	}
	for k, v := range l.fields {
		entry.Fields[k] = v
	}
	for _, set := range fields {
		for k, v := range set {
			entry.Fields[k] = v
		}
	}

	line, fmtErr := l.format(entry)
	if fmtErr != nil {
		return
	}

	l.writeMu.Lock()
	defer l.writeMu.Unlock()
	_, _ = l.output.Write(line)
}

func (l *Logger) clone() *Logger {
	c := *l
	c.fields = make(Fields, len(l.fields))
	for k, v := range l.fields {
		c.fields[k] = v
	}
	return &c
}
