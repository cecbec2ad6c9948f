package calendar_test

import (
	"fmt"

	"github.com/msto63/calcalc/pkg/calendar"
)

func ExampleDistanceBetween() {
	d, err := calendar.DistanceBetween("2001-02-18 10:00:00", "1997-07-12 10:00:00")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(d.Days, d.Sundays, d.Saturdays, d.WorkingDays)
	// Output: 1317 189 189 1128
}

func ExampleTimestamp_Add() {
	t := calendar.MustParse("2023-01-31 08:00:00")
	next, _ := t.Add(1, calendar.Month)
	fmt.Println(next)
	// Output: 2023-02-28 08:00:00
}

func ExampleParse_error() {
	_, err := calendar.Parse("2023-13-01 00:00:00")
	fmt.Println(calendar.Kind(err))
	// Output: INVALID_CALENDAR_DATE
}

func ExampleDistance_String() {
	d, _ := calendar.DistanceBetween("2023-01-14 00:00:00", "2023-01-15 06:00:00")
	fmt.Println(d)
	// Output:
	// Distance {
	//     seconds: 108000,
	//     minutes: 1800,
	//     hours: 30,
	//     days: 1,
	//     weeks: 0,
	//     months: 0,
	//     years: 0,
	//     sundays: 1,
	//     saturdays: 1,
	//     working_days: 0,
	// }
}
