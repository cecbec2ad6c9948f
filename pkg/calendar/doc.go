// Package calendar computes distances between calendar timestamps and adds
// quantities of time to them.
//
// Package: calendar
// Title: Calendar Distance Calculator
// Description: Timestamp parsing and formatting in the fixed layout
//              YYYY-MM-DD HH:MM:SS, calendar arithmetic and closed-form
//              weekday counting.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// # Timestamps
//
// A Timestamp carries no zone. Arithmetic treats it as a UTC wall-clock
// value, so every day has 86400 seconds. Years 0000 through 9999 are
// representable.
//
//	t, err := calendar.Parse("2023-01-12 00:00:00")
//	next, err := t.Add(1, calendar.Week) // 2023-01-19 00:00:00
//
// # Distances
//
// Between orders its arguments and derives every unit from the elapsed
// seconds. Months and years are rough estimates (days/30, days/365).
// Sundays and Saturdays are counted over the dates of both timestamps
// inclusive, and working days are the days minus the Sundays.
//
// # Errors
//
// Errors are *error.Error values from foundation/core/error. Each wraps one
// of ErrFormat, ErrInvalidDate, ErrInvalidAmount or ErrOutOfRange and
// carries the matching code, which Kind returns.
package calendar
