// File: errors.go
// Title: Calendar Error Kinds
// Description: Sentinel errors of the calendar package and helpers that wrap
//              them into structured foundation errors with a matching code.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package calendar

import (
	"errors"

	apperror "github.com/msto63/calcalc/foundation/core/error"
)

// Sentinel errors. Every error returned by this package wraps exactly one of
// them, so errors.Is works next to code inspection with Kind.
var (
	// ErrFormat reports input that does not match YYYY-MM-DD HH:MM:SS.
	ErrFormat = errors.New("invalid timestamp format")

	// ErrInvalidDate reports well-formed fields that name no calendar instant.
	ErrInvalidDate = errors.New("invalid calendar date")

	// ErrInvalidAmount reports an amount or unit that cannot be added.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrOutOfRange reports a result outside years 0000 to 9999.
	ErrOutOfRange = errors.New("timestamp out of range")
)

// Kind returns the error code attached to err, or CodeUnknown for errors
// that did not originate here.
func Kind(err error) apperror.Code {
	return apperror.GetCode(err)
}

func formatError(op, input, msg string) error {
	return apperror.Wrap(ErrFormat, msg).
		WithCode(apperror.CodeInvalidFormat).
		WithOperation(op).
		WithDetail("input", input)
}

func invalidDateError(op, msg string) *apperror.Error {
	return apperror.Wrap(ErrInvalidDate, msg).
		WithCode(apperror.CodeInvalidCalendarDate).
		WithOperation(op)
}

func invalidAmountError(op, msg string) *apperror.Error {
	return apperror.Wrap(ErrInvalidAmount, msg).
		WithCode(apperror.CodeInvalidAmount).
		WithOperation(op)
}

func outOfRangeError(op, msg string) *apperror.Error {
	return apperror.Wrap(ErrOutOfRange, msg).
		WithCode(apperror.CodeValueOutOfRange).
		WithOperation(op)
}
