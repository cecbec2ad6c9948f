// File: add_test.go
// Title: Timestamp Arithmetic Tests
// Description: Unit stepping, month-end clamping and range checks.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial test implementation

package calendar

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

func TestAdd(t *testing.T) {
	tests := []struct {
		name   string
		start  string
		amount int64
		unit   Unit
		want   string
	}{
		{"day in seconds", "2023-01-12 00:00:00", 86400, Second, "2023-01-13 00:00:00"},
		{"one week", "2023-01-12 00:00:00", 1, Week, "2023-01-19 00:00:00"},
		{"one year", "2023-01-12 00:00:00", 1, Year, "2024-01-12 00:00:00"},
		{"negative minutes", "2023-01-01 00:10:00", -11, Minute, "2022-12-31 23:59:00"},
		{"hours across leap day", "2024-02-28 23:00:00", 2, Hour, "2024-02-29 01:00:00"},
		{"demo days back", "2004-02-29 10:00:00", -2423, Day, "1997-07-12 10:00:00"},
		{"jan 31 plus month", "2023-01-31 08:00:00", 1, Month, "2023-02-28 08:00:00"},
		{"jan 31 plus month leap", "2024-01-31 08:00:00", 1, Month, "2024-02-29 08:00:00"},
		{"leap day plus year", "2024-02-29 12:00:00", 1, Year, "2025-02-28 12:00:00"},
		{"leap day plus four years", "2024-02-29 12:00:00", 4, Year, "2028-02-29 12:00:00"},
		{"march 31 minus month", "2023-03-31 00:00:00", -1, Month, "2023-02-28 00:00:00"},
		{"months across years", "2023-11-15 00:00:00", 14, Month, "2025-01-15 00:00:00"},
		{"months backwards across years", "2023-02-15 00:00:00", -14, Month, "2021-12-15 00:00:00"},
		{"to year zero", "0001-06-15 00:00:00", -1, Year, "0000-06-15 00:00:00"},
		{"to the last second", "9999-12-31 23:59:58", 1, Second, "9999-12-31 23:59:59"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MustParse(tt.start).Add(tt.amount, tt.unit)
			if err != nil {
				t.Fatalf("Add() error = %v", err)
			}
			if got.String() != tt.want {
				t.Errorf("Add(%s, %d, %s) = %s, want %s", tt.start, tt.amount, tt.unit, got, tt.want)
			}
		})
	}
}

func TestAdd_Identity(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 300; i++ {
		ts := randomTimestamp(rng, MinYear, MaxYear)
		for _, u := range Units() {
			got, err := Add(ts, 0, u)
			if err != nil {
				t.Fatalf("Add(%v, 0, %v) error = %v", ts, u, err)
			}
			if got != ts {
				t.Fatalf("Add(%v, 0, %v) = %v", ts, u, got)
			}
		}
	}
}

func TestAdd_InverseOfBetween(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 300; i++ {
		a := randomTimestamp(rng, 1000, 3000)
		b := randomTimestamp(rng, 1000, 3000)
		if b.Before(a) {
			a, b = b, a
		}
		d := Between(a, b)
		got, err := Add(a, d.Seconds, Second)
		if err != nil {
			t.Fatalf("Add() error = %v", err)
		}
		if got != b {
			t.Fatalf("%v + %ds = %v, want %v", a, d.Seconds, got, b)
		}
	}
}

func TestAdd_OutOfRange(t *testing.T) {
	tests := []struct {
		name   string
		start  string
		amount int64
		unit   Unit
	}{
		{"past year 9999", "9999-12-31 23:59:59", 1, Second},
		{"before year 0", "0000-01-01 00:00:00", -1, Second},
		{"month past 9999", "9999-12-01 00:00:00", 1, Month},
		{"year before 0", "0000-06-15 00:00:00", -1, Year},
		{"huge seconds", "2023-01-12 00:00:00", math.MaxInt64, Second},
		{"huge negative weeks", "2023-01-12 00:00:00", math.MinInt64, Week},
		{"huge years", "2023-01-12 00:00:00", math.MaxInt64, Year},
		{"huge negative months", "2023-01-12 00:00:00", math.MinInt64 + 1, Month},
		{"many days", "2023-01-12 00:00:00", 3000000, Day},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Add(MustParse(tt.start), tt.amount, tt.unit)
			if !errors.Is(err, ErrOutOfRange) {
				t.Fatalf("Add() error = %v, want ErrOutOfRange", err)
			}
			if Kind(err) != "VALUE_OUT_OF_RANGE" {
				t.Errorf("Kind() = %v", Kind(err))
			}
		})
	}
}

func TestAdd_UnknownUnit(t *testing.T) {
	_, err := Add(MustParse("2023-01-12 00:00:00"), 1, Unit(42))
	if !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("Add() error = %v, want ErrInvalidAmount", err)
	}
}

func TestAddQuantity(t *testing.T) {
	q, err := ParseQuantity("1.5", "days")
	if err != nil {
		t.Fatalf("ParseQuantity() error = %v", err)
	}
	got, err := AddQuantity(MustParse("2023-01-12 00:00:00"), q)
	if err != nil {
		t.Fatalf("AddQuantity() error = %v", err)
	}
	if got.String() != "2023-01-13 12:00:00" {
		t.Errorf("AddQuantity() = %v", got)
	}
}
