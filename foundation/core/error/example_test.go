// File: example_test.go
// Title: Error Module Examples
// Description: Example usage patterns for the structured error type.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with examples
// - 2026-10-19 v0.2.0: Calendar flavoured examples

package error

import (
	"errors"
	"fmt"
)

func ExampleNew() {
	err := New("day 31 does not exist in April").
		WithCode(CodeInvalidCalendarDate).
		WithDetail("input", "2023-04-31 00:00:00")

	fmt.Println("Error:", err.Error())
	fmt.Println("Code:", err.Code())
	fmt.Println("Severity:", err.Severity())

	// Output:
	// Error: day 31 does not exist in April
	// Code: INVALID_CALENDAR_DATE
	// Severity: low
}

func ExampleWrap() {
	errOutOfRange := errors.New("calendar: result outside representable range")

	err := Wrap(errOutOfRange, "add 10000 year").
		WithCode(CodeValueOutOfRange).
		WithOperation("calendar.Add")

	fmt.Println("Error:", err.Error())
	fmt.Println("Code:", err.Code())
	fmt.Println("Is sentinel:", errors.Is(err, errOutOfRange))

	// Output:
	// Error: add 10000 year: calendar: result outside representable range
	// Code: VALUE_OUT_OF_RANGE
	// Is sentinel: true
}
