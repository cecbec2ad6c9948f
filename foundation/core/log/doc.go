// Package log provides structured, leveled logging for calcalc.
//
// Package: log
// Title: Structured Logging
// Description: A small structured logger with persistent context fields,
//              correlation IDs and JSON, text or logfmt output.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Loggers are immutable: WithName, WithFields and friends return copies,
// so a component can derive its own logger without affecting others.
//
//	logger := log.NewWithConfig(log.Config{Level: log.LevelDebug, Format: log.FormatText}).
//		WithName("calculator").
//		WithFields(log.Fields{"location": "UTC"}).
//		WithCorrelationID(uuid.NewString())
//	logger.Debug("distance computed", log.Fields{"seconds": d.Seconds})
//
// LogError picks the level from the severity of a structured error: invalid
// input (low severity) is logged at info, configuration trouble at warn and
// everything else at error.
package log
