// File: unit.go
// Title: Units and Quantities
// Description: Calendar units, unit name parsing and exact parsing of
//              amount strings into validated quantities.
// Author: msto63
// Version: v0.2.1
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Duration string parsing with day and week suffixes
// - 2026-10-19 v0.2.0: Unit enum and exact decimal quantities
// - 2026-10-19 v0.2.1: Fraction and exponent amounts rejected

package calendar

import (
	"fmt"
	"math/big"
	"regexp"
	"strings"
)

// Unit is a step size accepted by Add.
type Unit int

// Supported units.
const (
	Second Unit = iota + 1
	Minute
	Hour
	Day
	Week
	Month
	Year
)

var unitNames = map[Unit]string{
	Second: "second",
	Minute: "minute",
	Hour:   "hour",
	Day:    "day",
	Week:   "week",
	Month:  "month",
	Year:   "year",
}

var unitAliases = map[string]Unit{
	"s": Second, "sec": Second, "secs": Second, "second": Second, "seconds": Second,
	"min": Minute, "mins": Minute, "minute": Minute, "minutes": Minute,
	"h": Hour, "hr": Hour, "hrs": Hour, "hour": Hour, "hours": Hour,
	"d": Day, "day": Day, "days": Day,
	"w": Week, "wk": Week, "wks": Week, "week": Week, "weeks": Week,
	"mo": Month, "month": Month, "months": Month,
	"y": Year, "yr": Year, "yrs": Year, "year": Year, "years": Year,
}

// Units lists all units from the smallest to the largest.
func Units() []Unit {
	return []Unit{Second, Minute, Hour, Day, Week, Month, Year}
}

// String returns the singular unit name.
func (u Unit) String() string {
	if name, ok := unitNames[u]; ok {
		return name
	}
	return fmt.Sprintf("Unit(%d)", int(u))
}

// IsValid reports whether u is one of the defined units.
func (u Unit) IsValid() bool {
	_, ok := unitNames[u]
	return ok
}

// seconds returns the fixed length of u, or 0 for the calendar units
// month and year.
func (u Unit) seconds() int64 {
	switch u {
	case Second:
		return 1
	case Minute:
		return 60
	case Hour:
		return 3600
	case Day:
		return secondsPerDay
	case Week:
		return 7 * secondsPerDay
	}
	return 0
}

// MarshalText implements encoding.TextMarshaler.
func (u Unit) MarshalText() ([]byte, error) {
	if !u.IsValid() {
		return nil, invalidAmountError("calendar.Unit.MarshalText", fmt.Sprintf("unknown unit %d", int(u)))
	}
	return []byte(u.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (u *Unit) UnmarshalText(data []byte) error {
	parsed, err := ParseUnit(string(data))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// ParseUnit resolves a unit name, plural or short form, case-insensitive.
func ParseUnit(s string) (Unit, error) {
	if u, ok := unitAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return u, nil
	}
	return 0, invalidAmountError("calendar.ParseUnit", fmt.Sprintf("unknown unit %q", s)).
		WithDetail("unit", s)
}

var decimalAmount = regexp.MustCompile(`^[+-]?([0-9]+(\.[0-9]*)?|\.[0-9]+)$`)

// Quantity is a signed amount of a unit, ready to be added to a Timestamp.
type Quantity struct {
	Amount int64 `json:"amount" yaml:"amount"`
	Unit   Unit  `json:"unit" yaml:"unit"`
}

// String renders the quantity as "<amount> <unit>".
func (q Quantity) String() string {
	return fmt.Sprintf("%d %s", q.Amount, q.Unit)
}

// ParseQuantity parses an amount and a unit name. Amounts are plain decimals
// such as "3", "-2" or "1.5"; fractions like "1/3" and exponents like "1e3"
// are rejected. Whole amounts are kept as given. Fractional amounts are accepted
// for second to week only if they come to a whole number of seconds, and the
// result is then expressed in seconds. Fractional months or years fail with
// ErrInvalidAmount.
func ParseQuantity(amount, unit string) (Quantity, error) {
	const op = "calendar.ParseQuantity"

	u, err := ParseUnit(unit)
	if err != nil {
		return Quantity{}, err
	}

	text := strings.TrimSpace(amount)
	if text == "" {
		return Quantity{}, invalidAmountError(op, "amount is empty").WithDetail("unit", u.String())
	}

	r := new(big.Rat)
	if _, ok := r.SetString(text); !ok || !decimalAmount.MatchString(text) {
		return Quantity{}, invalidAmountError(op, fmt.Sprintf("amount %q is not a number", amount)).
			WithDetail("amount", amount)
	}

	if r.IsInt() {
		if !r.Num().IsInt64() {
			return Quantity{}, outOfRangeError(op, fmt.Sprintf("amount %s is too large", text)).
				WithDetail("amount", amount)
		}
		return Quantity{Amount: r.Num().Int64(), Unit: u}, nil
	}

	size := u.seconds()
	if size == 0 {
		return Quantity{}, invalidAmountError(op, fmt.Sprintf("%s amount must be a whole number, got %s", u, text)).
			WithDetail("amount", amount).
			WithDetail("unit", u.String())
	}

	secs := new(big.Rat).Mul(r, new(big.Rat).SetInt64(size))
	if !secs.IsInt() {
		return Quantity{}, invalidAmountError(op, fmt.Sprintf("%s %s is not a whole number of seconds", text, u)).
			WithDetail("amount", amount).
			WithDetail("unit", u.String())
	}
	if !secs.Num().IsInt64() {
		return Quantity{}, outOfRangeError(op, fmt.Sprintf("amount %s is too large", text)).
			WithDetail("amount", amount)
	}

	return Quantity{Amount: secs.Num().Int64(), Unit: Second}, nil
}
