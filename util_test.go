// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar_test

import (
	"cloudeng.io/calendar"
)

func newDate(year, month, day int) calendar.Date {
	d, err := calendar.NewDate(year, calendar.Month(month), day)
	if err != nil {
		panic(err)
	}
	return d
}

func newTimeOfDay(hour, minute, second, nanosecond int) calendar.TimeOfDay {
	t, err := calendar.NewTimeOfDay(hour, minute, second, nanosecond)
	if err != nil {
		panic(err)
	}
	return t
}

func newDateTime(year, month, day, hour, minute, second, nanosecond int) calendar.DateTime {
	dt, err := calendar.NewDateTime(year, calendar.Month(month), day, hour, minute, second, nanosecond)
	if err != nil {
		panic(err)
	}
	return dt
}

func newSystemDate(sys calendar.System, year, month, day int) calendar.SystemDate {
	d, err := calendar.NewSystemDate(sys, year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

func newDateRange(from, to calendar.Date) calendar.DateRange {
	dr, err := calendar.NewDateRange(from, to)
	if err != nil {
		panic(err)
	}
	return dr
}

func isoWeek() calendar.WeekCalculator {
	return calendar.ISOWeekCalculator()
}
