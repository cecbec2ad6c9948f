// File: entry.go
// Title: Log Entry Structure
// Description: A single log record as handed to a formatter.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive log entry structure
// - 2026-10-19 v0.2.0: Reduced to message, fields, error and correlation ID
// - 2026-10-19 v0.3.0: Field constructors removed, Fields literals are used instead

package log

import (
	"sort"
	"time"
)

// Fields are key-value pairs attached to an entry.
type Fields map[string]interface{}

// With sets key and returns f, allocating it when nil.
func (f Fields) With(key string, value interface{}) Fields {
	if f == nil {
		f = Fields{}
	}
	f[key] = value
	return f
}

func (f Fields) sortedKeys() []string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Entry is one record. Fields already contain the logger's context fields.
type Entry struct {
	Time          time.Time
	Level         Level
	Message       string
	Logger        string
	CorrelationID string
	Fields        Fields
	Err           error
}
