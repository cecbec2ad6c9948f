// File: level.go
// Title: Log Level Definitions
// Description: Severity levels a logger filters on, and their config names.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with standard log levels
// - 2026-10-19 v0.2.0: Dropped fatal and audit levels, a CLI never exits from the logger
// - 2026-10-19 v0.3.0: Level names kept in one table, parse errors are structured

package log

import (
	"strings"

	apperror "github.com/msto63/calcalc/foundation/core/error"
)

// Level orders log entries by importance. Higher is more important.
type Level int

// Levels from most to least verbose.
const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = [...]string{"trace", "debug", "info", "warn", "error"}

func (l Level) String() string {
	if l < LevelTrace || l > LevelError {
		return "unknown"
	}
	return levelNames[l]
}

// ParseLevel maps a log.level config value to a Level. "warning" is
// accepted for warn.
func ParseLevel(s string) (Level, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "warning" {
		name = "warn"
	}
	for i, n := range levelNames {
		if n == name {
			return Level(i), nil
		}
	}
	return LevelInfo, invalidSetting("level", s)
}

func invalidSetting(kind, value string) error {
	return apperror.New("invalid log "+kind+": "+value).
		WithCode(apperror.CodeInvalidConfig).
		WithDetail(kind, value)
}
