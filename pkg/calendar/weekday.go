// File: weekday.go
// Title: Closed-Form Weekday Counting
// Description: Counts occurrences of a weekday between two timestamps with
//              modular arithmetic instead of walking every day.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Business day iteration helpers
// - 2026-10-19 v0.2.0: Closed-form count per weekday

package calendar

import "time"

// weekdayOffset returns how many days lie between from and the next target
// day, counting from itself as zero. For Sunday this is Mon 6, Tue 5 ... Sat 1,
// for Saturday Mon 5 ... Sat 0, Sun 6.
func weekdayOffset(from, target time.Weekday) int64 {
	return int64((target - from + 7) % 7)
}

// CountWeekday returns how many calendar dates from the date of the earlier
// timestamp through the date of the later one, both included, fall on day.
// Timestamps on the same date yield zero.
func CountWeekday(from, to Timestamp, day time.Weekday) int64 {
	if to.Before(from) {
		from, to = to, from
	}
	return countWeekday(to.dayNumber()-from.dayNumber(), from.Weekday(), day)
}

func countWeekday(days int64, start, day time.Weekday) int64 {
	if days <= 0 {
		return 0
	}
	offset := weekdayOffset(start, day)
	if days < offset {
		return 0
	}
	return (days-offset)/7 + 1
}
