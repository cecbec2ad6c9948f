// File: distance_test.go
// Title: Distance Engine Tests
// Description: Concrete scenarios, symmetry, unit consistency and brute-force
//              equivalence of the weekday counts.
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
	"math/rand"
	"strings"
	"testing"
	"time"
)

func TestDistanceBetween_Scenarios(t *testing.T) {
	tests := []struct {
		name      string
		a, b      string
		days      int64
		sundays   int64
		saturdays int64
	}{
		{"reversed input", "2001-02-18 10:00:00", "1997-07-12 10:00:00", 1317, 189, 189},
		{"thursday to wednesday", "2023-01-12 00:00:00", "2024-05-08 00:00:00", 482, 69, 69},
		{"demo pair", "2004-02-29 10:00:00", "1997-07-12 10:00:00", 2423, 347, 347},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := DistanceBetween(tt.a, tt.b)
			if err != nil {
				t.Fatalf("DistanceBetween() error = %v", err)
			}
			if d.Days != tt.days {
				t.Errorf("Days = %d, want %d", d.Days, tt.days)
			}
			if d.Sundays != tt.sundays {
				t.Errorf("Sundays = %d, want %d", d.Sundays, tt.sundays)
			}
			if d.Saturdays != tt.saturdays {
				t.Errorf("Saturdays = %d, want %d", d.Saturdays, tt.saturdays)
			}
			if d.WorkingDays != tt.days-tt.sundays {
				t.Errorf("WorkingDays = %d, want %d", d.WorkingDays, tt.days-tt.sundays)
			}
		})
	}
}

func TestDistanceBetween_DemoBreakdown(t *testing.T) {
	d, err := DistanceBetween("2004-02-29 10:00:00", "1997-07-12 10:00:00")
	if err != nil {
		t.Fatalf("DistanceBetween() error = %v", err)
	}

	want := Distance{
		Seconds:     209347200,
		Minutes:     3489120,
		Hours:       58152,
		Days:        2423,
		Weeks:       346,
		Months:      80,
		Years:       6,
		Sundays:     347,
		Saturdays:   347,
		WorkingDays: 2076,
	}
	if d != want {
		t.Errorf("DistanceBetween() = %+v, want %+v", d, want)
	}
}

func TestDistanceBetween_Errors(t *testing.T) {
	if _, err := DistanceBetween("2023-01-12", "2023-01-13 00:00:00"); !errors.Is(err, ErrFormat) {
		t.Errorf("first argument error = %v, want ErrFormat", err)
	}
	if _, err := DistanceBetween("2023-01-12 00:00:00", "2023-02-30 00:00:00"); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("second argument error = %v, want ErrInvalidDate", err)
	}
}

func TestBetween_ZeroCase(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		ts := randomTimestamp(rng, MinYear, MaxYear)
		if d := Between(ts, ts); !d.IsZero() {
			t.Fatalf("Between(%v, %v) = %+v, want zero", ts, ts, d)
		}
	}
}

func TestBetween_SameDate(t *testing.T) {
	d := Between(MustParse("2023-01-15 00:00:00"), MustParse("2023-01-15 23:59:59"))
	if d.Sundays != 0 || d.Saturdays != 0 || d.Days != 0 {
		t.Errorf("same Sunday date = %+v, want no days and no weekday counts", d)
	}
	if d.Seconds != 86399 || d.Hours != 23 {
		t.Errorf("Seconds = %d, Hours = %d", d.Seconds, d.Hours)
	}
}

func TestBetween_ShortSpans(t *testing.T) {
	tests := []struct {
		name      string
		a, b      string
		sundays   int64
		saturdays int64
		working   int64
	}{
		// Monday to Tuesday: no weekend date in the span.
		{"mon-tue", "2023-01-09 00:00:00", "2023-01-10 00:00:00", 0, 0, 1},
		// Friday to Saturday.
		{"fri-sat", "2023-01-13 00:00:00", "2023-01-14 00:00:00", 0, 1, 1},
		// Saturday to Sunday.
		{"sat-sun", "2023-01-14 00:00:00", "2023-01-15 00:00:00", 1, 1, 0},
		// Sunday evening to Monday morning, under a full day.
		{"sun-mon partial", "2023-01-15 20:00:00", "2023-01-16 08:00:00", 1, 0, 0},
		// Full week Sunday to Sunday.
		{"sun-sun", "2023-01-15 00:00:00", "2023-01-22 00:00:00", 2, 1, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Between(MustParse(tt.a), MustParse(tt.b))
			if d.Sundays != tt.sundays || d.Saturdays != tt.saturdays || d.WorkingDays != tt.working {
				t.Errorf("got sundays=%d saturdays=%d working=%d, want %d %d %d",
					d.Sundays, d.Saturdays, d.WorkingDays, tt.sundays, tt.saturdays, tt.working)
			}
		})
	}
}

func TestBetween_Symmetry(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 1000; i++ {
		a := randomTimestamp(rng, MinYear, MaxYear)
		b := randomTimestamp(rng, MinYear, MaxYear)
		if Between(a, b) != Between(b, a) {
			t.Fatalf("Between(%v, %v) != Between(%v, %v)", a, b, b, a)
		}
	}
}

func TestBetween_UnitConsistency(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	for i := 0; i < 1000; i++ {
		d := Between(randomTimestamp(rng, MinYear, MaxYear), randomTimestamp(rng, MinYear, MaxYear))
		switch {
		case d.Seconds < 0:
			t.Fatalf("negative seconds: %+v", d)
		case d.Minutes != d.Seconds/60:
			t.Fatalf("minutes: %+v", d)
		case d.Hours != d.Seconds/3600:
			t.Fatalf("hours: %+v", d)
		case d.Days != d.Seconds/86400:
			t.Fatalf("days: %+v", d)
		case d.Weeks != d.Days/7:
			t.Fatalf("weeks: %+v", d)
		case d.Months != d.Days/30:
			t.Fatalf("months: %+v", d)
		case d.Years != d.Days/365:
			t.Fatalf("years: %+v", d)
		case d.WorkingDays < 0:
			t.Fatalf("negative working days: %+v", d)
		}
	}
}

// bruteForceCount walks every date of the span.
func bruteForceCount(a, b Timestamp, day time.Weekday) int64 {
	if b.Before(a) {
		a, b = b, a
	}
	from := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	to := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	if from.Equal(to) {
		return 0
	}

	var n int64
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if d.Weekday() == day {
			n++
		}
	}
	return n
}

func TestCountWeekday_BruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(17))

	for i := 0; i < 500; i++ {
		a := randomTimestamp(rng, 1990, 2030)
		var b Timestamp
		if i%5 == 0 {
			// short spans exercise the offset edge
			b = fromUnix(a.unix() + rng.Int63n(10*secondsPerDay))
		} else {
			b = randomTimestamp(rng, 1990, 2030)
		}

		d := Between(a, b)
		if want := bruteForceCount(a, b, time.Sunday); d.Sundays != want {
			t.Fatalf("Sundays(%v, %v) = %d, brute force %d", a, b, d.Sundays, want)
		}
		if want := bruteForceCount(a, b, time.Saturday); d.Saturdays != want {
			t.Fatalf("Saturdays(%v, %v) = %d, brute force %d", a, b, d.Saturdays, want)
		}

		for wd := time.Sunday; wd <= time.Saturday; wd++ {
			if got, want := CountWeekday(a, b, wd), bruteForceCount(a, b, wd); got != want {
				t.Fatalf("CountWeekday(%v, %v, %v) = %d, brute force %d", a, b, wd, got, want)
			}
		}
	}
}

func TestWeekdayOffset(t *testing.T) {
	sunday := map[time.Weekday]int64{
		time.Monday: 6, time.Tuesday: 5, time.Wednesday: 4, time.Thursday: 3,
		time.Friday: 2, time.Saturday: 1, time.Sunday: 0,
	}
	saturday := map[time.Weekday]int64{
		time.Monday: 5, time.Tuesday: 4, time.Wednesday: 3, time.Thursday: 2,
		time.Friday: 1, time.Saturday: 0, time.Sunday: 6,
	}

	for from, want := range sunday {
		if got := weekdayOffset(from, time.Sunday); got != want {
			t.Errorf("offset %v->Sunday = %d, want %d", from, got, want)
		}
	}
	for from, want := range saturday {
		if got := weekdayOffset(from, time.Saturday); got != want {
			t.Errorf("offset %v->Saturday = %d, want %d", from, got, want)
		}
	}
}

func TestDistance_String(t *testing.T) {
	d := Between(MustParse("2023-01-12 00:00:00"), MustParse("2023-01-13 00:00:00"))
	s := d.String()

	if !strings.HasPrefix(s, "Distance {") || !strings.HasSuffix(s, "}") {
		t.Errorf("String() = %q, want brace-delimited block", s)
	}
	for _, part := range []string{"seconds: 86400,", "days: 1,", "working_days: 1,"} {
		if !strings.Contains(s, part) {
			t.Errorf("String() missing %q in %q", part, s)
		}
	}
	if len(d.Fields()) != 10 {
		t.Errorf("Fields() has %d entries, want 10", len(d.Fields()))
	}
}
