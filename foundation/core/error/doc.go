// Package error provides the structured error type used across calcalc.
//
// Package: error
// Title: Structured Errors
// Description: Errors carry a Code, a Severity, the failing operation and
//              free-form details next to the usual message and cause chain.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// # Usage
//
//	err := error.Wrap(ErrFormat, fmt.Sprintf("parse %q", s)).
//		WithCode(error.CodeInvalidFormat).
//		WithOperation("calendar.Parse")
//
// Wrapping a package sentinel keeps errors.Is working, while GetCode and
// HasCode find the first structured layer with errors.As. The logger maps the
// severity derived from the code to a log level, so invalid user input is
// logged at info level and internal failures at error level.
package error
