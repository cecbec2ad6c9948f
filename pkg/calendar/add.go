// File: add.go
// Title: Timestamp Arithmetic
// Description: Adds signed quantities of fixed-length units and calendar
//              months or years to a Timestamp.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package calendar

import (
	"fmt"
	"time"
)

const maxMonths = (MaxYear-MinYear+1)*12 - 1

// Add returns t moved by amount units.
//
// Second, minute, hour, day and week are fixed lengths of elapsed time.
// Month and year step the calendar and keep the time of day; when the day
// does not exist in the target month it is clamped to the month's last day,
// so 2023-01-31 plus one month is 2023-02-28.
//
// A result outside the years 0000 to 9999 fails with ErrOutOfRange, an
// unknown unit with ErrInvalidAmount.
func Add(t Timestamp, amount int64, unit Unit) (Timestamp, error) {
	const op = "calendar.Add"

	switch unit {
	case Second, Minute, Hour, Day, Week:
		size := unit.seconds()
		limit := (maxUnix - minUnix) / size
		if amount > limit || amount < -limit {
			return Timestamp{}, rangeError(op, t, amount, unit)
		}
		sec := t.unix() + amount*size
		if sec < minUnix || sec > maxUnix {
			return Timestamp{}, rangeError(op, t, amount, unit)
		}
		return fromUnix(sec), nil

	case Month, Year:
		months := amount
		if unit == Year {
			if amount > maxMonths || amount < -maxMonths {
				return Timestamp{}, rangeError(op, t, amount, unit)
			}
			months = amount * 12
		}
		if months > maxMonths || months < -maxMonths {
			return Timestamp{}, rangeError(op, t, amount, unit)
		}

		total := int64(t.year)*12 + int64(t.month-1) + months
		if total < 0 || total > maxMonths {
			return Timestamp{}, rangeError(op, t, amount, unit)
		}

		r := t
		r.year = int(total / 12)
		r.month = time.Month(total%12) + 1
		if last := DaysIn(r.year, r.month); r.day > last {
			r.day = last
		}
		return r, nil
	}

	return Timestamp{}, invalidAmountError(op, fmt.Sprintf("unknown unit %s", unit)).
		WithDetail("unit", int(unit))
}

// AddQuantity returns t moved by q.
func AddQuantity(t Timestamp, q Quantity) (Timestamp, error) {
	return Add(t, q.Amount, q.Unit)
}

// Add returns t moved by amount units. See the package level Add.
func (t Timestamp) Add(amount int64, unit Unit) (Timestamp, error) {
	return Add(t, amount, unit)
}

func rangeError(op string, t Timestamp, amount int64, unit Unit) error {
	return outOfRangeError(op, fmt.Sprintf("%s %+d %s leaves the years %04d..%04d", t, amount, unit, MinYear, MaxYear)).
		WithDetail("timestamp", t.String()).
		WithDetail("amount", amount).
		WithDetail("unit", unit.String())
}
