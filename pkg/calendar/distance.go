// File: distance.go
// Title: Distance Engine
// Description: Computes the elapsed interval between two timestamps and its
//              breakdown into units and weekday counts.
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
	"strings"
	"time"
)

// Distance is the breakdown of an elapsed interval. All fields are derived
// from Seconds except the weekday counts. Months and Years are the rough
// Days/30 and Days/365 and do not follow calendar month lengths.
type Distance struct {
	Seconds     int64 `json:"seconds" yaml:"seconds"`
	Minutes     int64 `json:"minutes" yaml:"minutes"`
	Hours       int64 `json:"hours" yaml:"hours"`
	Days        int64 `json:"days" yaml:"days"`
	Weeks       int64 `json:"weeks" yaml:"weeks"`
	Months      int64 `json:"months" yaml:"months"`
	Years       int64 `json:"years" yaml:"years"`
	Sundays     int64 `json:"sundays" yaml:"sundays"`
	Saturdays   int64 `json:"saturdays" yaml:"saturdays"`
	WorkingDays int64 `json:"working_days" yaml:"working_days"`
}

func newDistance(seconds, sundays, saturdays int64) Distance {
	days := seconds / secondsPerDay
	working := days - sundays
	if working < 0 {
		working = 0
	}
	return Distance{
		Seconds:     seconds,
		Minutes:     seconds / 60,
		Hours:       seconds / 3600,
		Days:        days,
		Weeks:       days / 7,
		Months:      days / 30,
		Years:       days / 365,
		Sundays:     sundays,
		Saturdays:   saturdays,
		WorkingDays: working,
	}
}

// Between returns the distance between a and b. The order of the arguments
// does not matter.
func Between(a, b Timestamp) Distance {
	date1, date2 := a, b
	if date2.Before(date1) {
		date1, date2 = date2, date1
	}

	seconds := date2.unix() - date1.unix()
	days := date2.dayNumber() - date1.dayNumber()
	start := date1.Weekday()

	return newDistance(seconds,
		countWeekday(days, start, time.Sunday),
		countWeekday(days, start, time.Saturday))
}

// DistanceBetween parses both timestamps and returns their distance.
func DistanceBetween(a, b string) (Distance, error) {
	ta, err := Parse(a)
	if err != nil {
		return Distance{}, err
	}
	tb, err := Parse(b)
	if err != nil {
		return Distance{}, err
	}
	return Between(ta, tb), nil
}

// IsZero reports whether all fields are zero.
func (d Distance) IsZero() bool {
	return d == Distance{}
}

// Fields returns the field names and values in display order.
func (d Distance) Fields() []DistanceField {
	return []DistanceField{
		{"seconds", d.Seconds},
		{"minutes", d.Minutes},
		{"hours", d.Hours},
		{"days", d.Days},
		{"weeks", d.Weeks},
		{"months", d.Months},
		{"years", d.Years},
		{"sundays", d.Sundays},
		{"saturdays", d.Saturdays},
		{"working_days", d.WorkingDays},
	}
}

// DistanceField is one named value of a Distance.
type DistanceField struct {
	Name  string
	Value int64
}

// String renders d as a brace-delimited key: value block for diagnostics.
func (d Distance) String() string {
	var b strings.Builder
	b.WriteString("Distance {\n")
	for _, f := range d.Fields() {
		fmt.Fprintf(&b, "    %s: %d,\n", f.Name, f.Value)
	}
	b.WriteString("}")
	return b.String()
}
