// File: format.go
// Title: Log Output Formats
// Description: Renders entries as JSON objects, terminal text or logfmt
//              key=value lines.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with multiple output formats
// - 2026-10-19 v0.2.0: Deterministic field order, removed console colors
// - 2026-10-19 v0.3.0: Formatters are plain functions selected by Format

package log

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Format selects how entries are written.
type Format int

const (
	FormatJSON Format = iota
	FormatText
	FormatLogfmt
)

var formatNames = [...]string{"json", "text", "logfmt"}

func (f Format) String() string {
	if f < FormatJSON || f > FormatLogfmt {
		return "unknown"
	}
	return formatNames[f]
}

// ParseFormat maps a log.format config value to a Format.
func ParseFormat(s string) (Format, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range formatNames {
		if n == name {
			return Format(i), nil
		}
	}
	return FormatJSON, invalidSetting("format", s)
}

type formatter func(e *Entry) ([]byte, error)

func (f Format) formatter() formatter {
	switch f {
	case FormatText:
		return formatText
	case FormatLogfmt:
		return formatLogfmt
	default:
		return formatJSON
	}
}

func formatJSON(e *Entry) ([]byte, error) {
	obj := make(map[string]interface{}, len(e.Fields)+6)
	for k, v := range e.Fields {
		if err, ok := v.(error); ok {
			v = err.Error()
		}
		obj[k] = v
	}
	obj["timestamp"] = e.Time.Format(time.RFC3339)
	obj["level"] = e.Level.String()
	obj["message"] = e.Message
	if e.Logger != "" {
		obj["logger"] = e.Logger
	}
	if e.CorrelationID != "" {
		obj["correlation_id"] = e.CorrelationID
	}
	if e.Err != nil {
		obj["error"] = e.Err.Error()
		if details := errorDetails(e.Err); details != nil {
			obj["error_details"] = details
		}
	}

	line, err := json.Marshal(obj)
	if err != nil {
		return nil, err
	}
	return append(line, '\n'), nil
}

// errorDetails decodes the JSON form of a structured error without its
// stack trace.
func errorDetails(err error) map[string]interface{} {
	m, ok := err.(json.Marshaler)
	if !ok {
		return nil
	}
	raw, mErr := m.MarshalJSON()
	if mErr != nil {
		return nil
	}
	var details map[string]interface{}
	if json.Unmarshal(raw, &details) != nil {
		return nil
	}
	delete(details, "stack_trace")
	return details
}

// formatText writes "15:04:05 LEVEL {logger} (cid=...) message [k=v ...]".
func formatText(e *Entry) ([]byte, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %-5s", e.Time.Format("15:04:05"), strings.ToUpper(e.Level.String()))
	if e.Logger != "" {
		fmt.Fprintf(&b, " {%s}", e.Logger)
	}
	if e.CorrelationID != "" {
		fmt.Fprintf(&b, " (cid=%s)", e.CorrelationID)
	}
	b.WriteString(" " + e.Message)

	if len(e.Fields) > 0 {
		pairs := make([]string, 0, len(e.Fields))
		for _, k := range e.Fields.sortedKeys() {
			pairs = append(pairs, fmt.Sprintf("%s=%v", k, e.Fields[k]))
		}
		b.WriteString(" [" + strings.Join(pairs, " ") + "]")
	}
	if e.Err != nil {
		fmt.Fprintf(&b, " error=%q", e.Err.Error())
	}
	b.WriteByte('\n')
	return []byte(b.String()), nil
}

func formatLogfmt(e *Entry) ([]byte, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "timestamp=%s level=%s message=%q",
		e.Time.Format(time.RFC3339), e.Level, e.Message)
	if e.Logger != "" {
		fmt.Fprintf(&b, " logger=%s", e.Logger)
	}
	if e.CorrelationID != "" {
		fmt.Fprintf(&b, " correlation_id=%s", e.CorrelationID)
	}
	for _, k := range e.Fields.sortedKeys() {
		switch v := e.Fields[k].(type) {
		case string:
			fmt.Fprintf(&b, " %s=%q", k, v)
		case fmt.Stringer:
			fmt.Fprintf(&b, " %s=%q", k, v.String())
		default:
			fmt.Fprintf(&b, " %s=%v", k, v)
		}
	}
	if e.Err != nil {
		fmt.Fprintf(&b, " error=%q", e.Err.Error())
	}
	b.WriteByte('\n')
	return []byte(b.String()), nil
}
