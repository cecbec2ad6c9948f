// File: timestamp.go
// Title: Calendar Timestamp
// Description: Implements the immutable Timestamp value with strict parsing
//              and formatting of the YYYY-MM-DD HH:MM:SS layout, validation,
//              comparison and text marshalling.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Business date/time parsing helpers
// - 2026-10-19 v0.2.0: Replaced time.Time helpers with a validated Timestamp value

package calendar

import (
	"fmt"
	"time"

	apperror "github.com/msto63/calcalc/foundation/core/error"
)

// Layout is the only accepted textual form of a Timestamp.
const Layout = "2006-01-02 15:04:05"

// Representable year range.
const (
	MinYear = 0
	MaxYear = 9999
)

const secondsPerDay = 86400

var (
	minUnix = time.Date(MinYear, time.January, 1, 0, 0, 0, 0, time.UTC).Unix()
	maxUnix = time.Date(MaxYear, time.December, 31, 23, 59, 59, 0, time.UTC).Unix()
)

// Timestamp is a proleptic Gregorian date and time of day without zone.
// The zero value is not valid; construct with Parse or NewTimestamp.
type Timestamp struct {
	year   int
	month  time.Month
	day    int
	hour   int
	minute int
	second int
}

// NewTimestamp returns the timestamp for the given fields or an
// InvalidCalendarDate error when they do not form a valid instant.
func NewTimestamp(year int, month time.Month, day, hour, minute, second int) (Timestamp, error) {
	if err := validate(year, month, day, hour, minute, second); err != nil {
		return Timestamp{}, err.WithOperation("calendar.NewTimestamp")
	}
	return Timestamp{year, month, day, hour, minute, second}, nil
}

// Parse reads s in the fixed Layout. Input with the wrong shape fails with
// ErrFormat, impossible dates or times fail with ErrInvalidDate.
func Parse(s string) (Timestamp, error) {
	const op = "calendar.Parse"

	if len(s) != len(Layout) {
		return Timestamp{}, formatError(op, s, fmt.Sprintf("timestamp %q must have the form YYYY-MM-DD HH:MM:SS", s))
	}

	for i := 0; i < len(s); i++ {
		var ok bool
		switch i {
		case 4, 7:
			ok = s[i] == '-'
		case 10:
			ok = s[i] == ' '
		case 13, 16:
			ok = s[i] == ':'
		default:
			ok = s[i] >= '0' && s[i] <= '9'
		}
		if !ok {
			return Timestamp{}, formatError(op, s, fmt.Sprintf("timestamp %q has unexpected character at position %d", s, i+1))
		}
	}

	year := digits(s[0:4])
	month := time.Month(digits(s[5:7]))
	day := digits(s[8:10])
	hour := digits(s[11:13])
	minute := digits(s[14:16])
	second := digits(s[17:19])

	if err := validate(year, month, day, hour, minute, second); err != nil {
		return Timestamp{}, err.WithOperation(op).WithDetail("input", s)
	}

	return Timestamp{year, month, day, hour, minute, second}, nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Timestamp {
	t, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return t
}

func digits(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		n = n*10 + int(s[i]-'0')
	}
	return n
}

// Format renders t in the fixed Layout.
func Format(t Timestamp) string {
	return t.String()
}

// String implements fmt.Stringer using Layout.
func (t Timestamp) String() string {
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d",
		t.year, int(t.month), t.day, t.hour, t.minute, t.second)
}

// Year returns the year.
func (t Timestamp) Year() int { return t.year }

// Month returns the month.
func (t Timestamp) Month() time.Month { return t.month }

// Day returns the day of the month.
func (t Timestamp) Day() int { return t.day }

// Hour returns the hour.
func (t Timestamp) Hour() int { return t.hour }

// Minute returns the minute.
func (t Timestamp) Minute() int { return t.minute }

// Second returns the second.
func (t Timestamp) Second() int { return t.second }

// Weekday returns the day of the week.
func (t Timestamp) Weekday() time.Weekday {
	return t.Time().Weekday()
}

// Time returns t as a time.Time in UTC.
func (t Timestamp) Time() time.Time {
	return time.Date(t.year, t.month, t.day, t.hour, t.minute, t.second, 0, time.UTC)
}

// IsZero reports whether t is the zero value.
func (t Timestamp) IsZero() bool {
	return t == Timestamp{}
}

// Compare returns -1, 0 or +1 depending on whether t is before, equal to or
// after u.
func (t Timestamp) Compare(u Timestamp) int {
	a, b := t.unix(), u.unix()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Before reports whether t is before u.
func (t Timestamp) Before(u Timestamp) bool { return t.Compare(u) < 0 }

// After reports whether t is after u.
func (t Timestamp) After(u Timestamp) bool { return t.Compare(u) > 0 }

// Equal reports whether t and u are the same instant.
func (t Timestamp) Equal(u Timestamp) bool { return t == u }

// MarshalText implements encoding.TextMarshaler.
func (t Timestamp) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Timestamp) UnmarshalText(data []byte) error {
	parsed, err := Parse(string(data))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// unix returns seconds since 1970-01-01 00:00:00 treating t as UTC.
func (t Timestamp) unix() int64 {
	return t.Time().Unix()
}

// dayNumber returns whole days since 1970-01-01 for the date part of t.
func (t Timestamp) dayNumber() int64 {
	return floorDiv(t.unix(), secondsPerDay)
}

func fromUnix(sec int64) Timestamp {
	u := time.Unix(sec, 0).UTC()
	return Timestamp{u.Year(), u.Month(), u.Day(), u.Hour(), u.Minute(), u.Second()}
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// DaysIn returns the number of days of month in year.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func validate(year int, month time.Month, day, hour, minute, second int) *apperror.Error {
	switch {
	case year < MinYear || year > MaxYear:
		return outOfRangeError("", fmt.Sprintf("year %d outside %04d..%04d", year, MinYear, MaxYear))
	case month < time.January || month > time.December:
		return invalidDateError("", fmt.Sprintf("month %d does not exist", int(month)))
	case day < 1 || day > DaysIn(year, month):
		return invalidDateError("", fmt.Sprintf("day %d does not exist in %04d-%02d", day, year, int(month)))
	case hour < 0 || hour > 23:
		return invalidDateError("", fmt.Sprintf("hour %d outside 00..23", hour))
	case minute < 0 || minute > 59:
		return invalidDateError("", fmt.Sprintf("minute %d outside 00..59", minute))
	case second < 0 || second > 59:
		return invalidDateError("", fmt.Sprintf("second %d outside 00..59", second))
	}
	return nil
}
