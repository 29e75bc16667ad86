// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package calendar provides a proleptic ISO-8601 date and time model with
// nanosecond precision, conversion to and from a closed set of calendar
// systems, and week-of-year computation parameterized by locale week
// policies. All types are immutable values and all operations are pure; any
// number of goroutines may use them concurrently without coordination.
package calendar

import (
	"fmt"
	"time"
)

// Date is a date in the proleptic ISO (Gregorian) calendar. The year is
// signed and may be zero or negative; the leap rule is applied uniformly
// to all years. The zero value is not a valid date, use NewDate.
type Date struct {
	year  int
	month Month
	day   int
}

// NewDate creates a Date, failing with an error wrapping ErrInvalidMonth if
// the month is outside 1-12 and with one wrapping ErrInvalidDay if the day
// is outside the month for that year.
func NewDate(year int, month Month, day int) (Date, error) {
	if month < 1 || month > 12 {
		return Date{}, fmt.Errorf("month %d: %w", int(month), ErrInvalidMonth)
	}
	if day < 1 || day > DaysInMonth(year, month) {
		return Date{}, fmt.Errorf("day %d of %s %d: %w", day, month, year, ErrInvalidDay)
	}
	return Date{year: year, month: month, day: day}, nil
}

// NewDateFromTime returns the Date for the date fields of t, ignoring its
// location.
func NewDateFromTime(t time.Time) Date {
	return Date{year: t.Year(), month: Month(t.Month()), day: t.Day()}
}

// DateFromEpochDays returns the Date the given number of days after
// 1970-01-01; days may be negative.
func DateFromEpochDays(days int64) Date {
	y, m, d := rataDieDate(days + unixEpochDay)
	return Date{year: y, month: m, day: d}
}

func (d Date) Year() int {
	return d.year
}

func (d Date) Month() Month {
	return d.month
}

func (d Date) Day() int {
	return d.day
}

// EpochDays returns the number of days since 1970-01-01, negative for
// earlier dates.
func (d Date) EpochDays() int64 {
	return d.rataDie() - unixEpochDay
}

func (d Date) rataDie() int64 {
	return rataDie(d.year, d.month, d.day)
}

// Weekday returns the ISO day of the week, for all years including zero
// and negative years.
func (d Date) Weekday() Weekday {
	return weekdayOf(d.rataDie())
}

// DayOfYear returns the 1-indexed ordinal day within the date's year,
// 1-365, or 1-366 for leap years.
func (d Date) DayOfYear() int {
	if IsLeap(d.year) {
		return dayOfYearLeapTab[d.month-1] + d.day
	}
	return dayOfYearTab[d.month-1] + d.day
}

// DaysInMonth returns the number of days in the date's month.
func (d Date) DaysInMonth() int {
	return DaysInMonth(d.year, d.month)
}

// DaysInYear returns the number of days in the date's year.
func (d Date) DaysInYear() int {
	return DaysInYear(d.year)
}

// MonthsInYear returns the number of months in the date's year, always 12
// for ISO dates.
func (d Date) MonthsInYear() int {
	return 12
}

// InLeapYear returns true if the date falls in a leap year.
func (d Date) InLeapYear() bool {
	return IsLeap(d.year)
}

// WeekOfMonth returns the 1-indexed week of the month containing the date,
// with weeks beginning on first. The first day of the month is always in
// week 1 regardless of the weekday it falls on.
func (d Date) WeekOfMonth(first Weekday) int {
	return simpleWeekOf(first, d.day, d.Weekday())
}

// WeekOfYear returns the week of the year containing the date under the
// supplied week policy. Near year boundaries the week may count in the
// previous or following year; the Unit field of the result says which.
// It fails with an error wrapping ErrOutOfRange if wc is invalid.
func (d Date) WeekOfYear(wc WeekCalculator) (WeekOf, error) {
	if err := wc.validate(); err != nil {
		return WeekOf{}, err
	}
	return weekOf(wc, DaysInYear(d.year-1), d.DaysInYear(), d.DayOfYear(), d.Weekday()), nil
}

// AddDays returns the date n days after d, or before for negative n.
func (d Date) AddDays(n int64) Date {
	return DateFromEpochDays(d.EpochDays() + n)
}

// Tomorrow returns the date of the next day. Dec-31 wraps to Jan-01 of the
// following year.
func (d Date) Tomorrow() Date {
	return d.AddDays(1)
}

// Yesterday returns the date of the previous day. Jan-01 wraps to Dec-31 of
// the preceding year.
func (d Date) Yesterday() Date {
	return d.AddDays(-1)
}

// Before returns true if d is earlier than e.
func (d Date) Before(e Date) bool {
	if d.year != e.year {
		return d.year < e.year
	}
	if d.month != e.month {
		return d.month < e.month
	}
	return d.day < e.day
}

// After returns true if d is later than e.
func (d Date) After(e Date) bool {
	return e.Before(d)
}

// In converts the date to the specified calendar system. The conversion is
// total: every ISO date has a native representation in every supported
// system under its proleptic extension.
func (d Date) In(sys System) SystemDate {
	y, m, dd := sys.ops().fromRataDie(d.rataDie())
	return SystemDate{sys: sys, year: y, month: m, day: dd}
}

// Time returns a time.Time for the date and time of day in the given
// location. The fields are copied as is, no offset arithmetic is applied.
func (d Date) Time(t TimeOfDay, loc *time.Location) time.Time {
	return time.Date(d.year, time.Month(d.month), d.day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), loc)
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, int(d.month), d.day)
}
