// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import "fmt"

// WeekUnit says which year a week number counts in: a date in the opening
// days of January may fall in the last week of the previous year, and one
// in the closing days of December in the first week of the next.
type WeekUnit uint8

const (
	LastWeekOfPreviousYear WeekUnit = iota + 1
	WeekOfCurrentYear
	FirstWeekOfNextYear
)

func (u WeekUnit) String() string {
	switch u {
	case LastWeekOfPreviousYear:
		return "last week of previous year"
	case WeekOfCurrentYear:
		return "week of current year"
	case FirstWeekOfNextYear:
		return "first week of next year"
	}
	return fmt.Sprintf("WeekUnit(%d)", uint8(u))
}

// WeekOf is the result of a week-of-year query: a positive week number and
// the unit (year) it counts in.
type WeekOf struct {
	Week int
	Unit WeekUnit
}

func (w WeekOf) String() string {
	return fmt.Sprintf("week %d (%s)", w.Week, w.Unit)
}

// WeekCalculator is the locale policy parameterizing week numbering: the
// weekday weeks begin on and the minimum number of days (1-7) a leading
// partial week must contain to count as week 1. The ISO-8601 policy is
// {Monday, 4}. WeekCalculator values are supplied per query and never
// stored inside dates.
type WeekCalculator struct {
	FirstDay Weekday
	MinDays  int
}

// NewWeekCalculator creates a WeekCalculator, failing with an error
// wrapping ErrOutOfRange if first is not a valid weekday or minDays is
// outside 1-7.
func NewWeekCalculator(first Weekday, minDays int) (WeekCalculator, error) {
	wc := WeekCalculator{FirstDay: first, MinDays: minDays}
	if err := wc.validate(); err != nil {
		return WeekCalculator{}, err
	}
	return wc, nil
}

// ISOWeekCalculator returns the ISO-8601 week policy: weeks begin on
// Monday and week 1 is the first week with at least 4 days in the year.
func ISOWeekCalculator() WeekCalculator {
	return WeekCalculator{FirstDay: Monday, MinDays: 4}
}

// The fields are exported for use in flag and option structs, so week
// queries re-validate the policy they are handed.
func (wc WeekCalculator) validate() error {
	if wc.FirstDay < Monday || wc.FirstDay > Sunday {
		return fmt.Errorf("first day %d: %w", uint8(wc.FirstDay), ErrOutOfRange)
	}
	if wc.MinDays < 1 || wc.MinDays > 7 {
		return fmt.Errorf("minimal days in first week %d: %w", wc.MinDays, ErrOutOfRange)
	}
	return nil
}

func addToWeekday(w Weekday, days int64) Weekday {
	return Weekday(floorMod(int64(w)-1+days, 7) + 1)
}

// weekYear describes one year as a unit of week numbering: the weekday its
// first day falls on and its length in days.
type weekYear struct {
	firstDay Weekday
	duration int
}

// firstWeekOffset returns the number of days between the start of the year
// and the start of its week 1. It is negative when the leading partial week
// is long enough to count as week 1.
func (y weekYear) firstWeekOffset(wc WeekCalculator) int {
	offset := int(floorMod(int64(y.firstDay)-int64(wc.FirstDay), 7))
	if 7-offset >= wc.MinDays {
		return -offset
	}
	return 7 - offset
}

func (y weekYear) numWeeks(wc WeekCalculator) int {
	daysFromWeekOne := y.duration - y.firstWeekOffset(wc)
	return (daysFromWeekOne + 7 - wc.MinDays) / 7
}

// weekOf numbers the week containing the 1-indexed day of a year whose
// lengths and weekday are supplied, spilling into the previous or next
// year's numbering when the policy assigns the day there. wc must already
// be validated.
func weekOf(wc WeekCalculator, daysInPrevYear, daysInYear, day int, weekday Weekday) WeekOf {
	year := weekYear{
		firstDay: addToWeekday(weekday, int64(1-day)),
		duration: daysInYear,
	}
	daysFromWeekOne := day - year.firstWeekOffset(wc) - 1
	if daysFromWeekOne < 0 {
		prev := weekYear{
			firstDay: addToWeekday(year.firstDay, -int64(daysInPrevYear)),
			duration: daysInPrevYear,
		}
		return WeekOf{Week: prev.numWeeks(wc), Unit: LastWeekOfPreviousYear}
	}
	week := 1 + daysFromWeekOne/7
	if week > year.numWeeks(wc) {
		return WeekOf{Week: 1, Unit: FirstWeekOfNextYear}
	}
	return WeekOf{Week: week, Unit: WeekOfCurrentYear}
}

// simpleWeekOf numbers the week of a month: with a minimum of one day in
// the first week, day 1 is always in week 1.
func simpleWeekOf(first Weekday, day int, weekday Weekday) int {
	wc := WeekCalculator{FirstDay: first, MinDays: 1}
	const unbounded = 366
	return weekOf(wc, unbounded, unbounded, day, weekday).Week
}
