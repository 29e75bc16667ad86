// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import "fmt"

// SystemDate is a date expressed in the native fields of a calendar
// system. The meaning of its year, month and day is defined by the tagged
// System: month counts per year, leap months and year numbering may all
// differ from ISO. Conversion to and from Date is lossless.
type SystemDate struct {
	sys   System
	year  int
	month int
	day   int
}

// NewSystemDate creates a SystemDate from native fields, failing with an
// error wrapping ErrInvalidMonth or ErrInvalidDay when a field is outside
// the system's bounds for that year.
func NewSystemDate(sys System, year, month, day int) (SystemDate, error) {
	ops := sys.ops()
	if month < 1 || month > ops.monthsInYear(year) {
		return SystemDate{}, fmt.Errorf("month %d of %s year %d: %w", month, sys, year, ErrInvalidMonth)
	}
	if day < 1 || day > ops.daysInMonth(year, month) {
		return SystemDate{}, fmt.Errorf("day %d of %s year %d month %d: %w", day, sys, year, month, ErrInvalidDay)
	}
	return SystemDate{sys: sys, year: year, month: month, day: day}, nil
}

// NewSystemDateInEra creates a SystemDate from a year counted within an
// era of the system. It fails with an error wrapping ErrUnsupportedEra for
// an era code the system does not define or a year outside the era's
// domain, such as bce year 0.
func NewSystemDateInEra(sys System, era string, eraYear, month, day int) (SystemDate, error) {
	year, err := sys.ops().yearForEra(era, eraYear)
	if err != nil {
		return SystemDate{}, err
	}
	return NewSystemDate(sys, year, month, day)
}

func (d SystemDate) System() System {
	return d.sys
}

// Year returns the native year number.
func (d SystemDate) Year() int {
	return d.year
}

// Month returns the native month ordinal, 1 through MonthsInYear.
func (d SystemDate) Month() int {
	return d.month
}

func (d SystemDate) Day() int {
	return d.day
}

// Era returns the era code of the date's year and the year counted within
// that era.
func (d SystemDate) Era() (string, int) {
	return d.sys.ops().era(d.year)
}

// MonthsInYear returns the number of months in the date's native year.
func (d SystemDate) MonthsInYear() int {
	return d.sys.ops().monthsInYear(d.year)
}

// DaysInMonth returns the number of days in the date's native month.
func (d SystemDate) DaysInMonth() int {
	return d.sys.ops().daysInMonth(d.year, d.month)
}

// DaysInYear returns the number of days in the date's native year.
func (d SystemDate) DaysInYear() int {
	return d.sys.ops().daysInYear(d.year)
}

// InLeapYear applies the system's own leap predicate to the date's year.
func (d SystemDate) InLeapYear() bool {
	return d.sys.ops().isLeap(d.year)
}

// DayOfYear returns the 1-indexed ordinal day within the date's native
// year.
func (d SystemDate) DayOfYear() int {
	ops := d.sys.ops()
	doy := d.day
	for m := 1; m < d.month; m++ {
		doy += ops.daysInMonth(d.year, m)
	}
	return doy
}

func (d SystemDate) rataDie() int64 {
	return d.sys.ops().toRataDie(d.year, d.month, d.day)
}

// EpochDays returns the number of days since 1970-01-01 ISO, negative for
// earlier dates.
func (d SystemDate) EpochDays() int64 {
	return d.rataDie() - unixEpochDay
}

// Weekday returns the ISO day of the week, which is calendar independent.
func (d SystemDate) Weekday() Weekday {
	return weekdayOf(d.rataDie())
}

// WeekOfMonth returns the 1-indexed week of the native month containing
// the date, with weeks beginning on first. The first day of the month is
// always in week 1.
func (d SystemDate) WeekOfMonth(first Weekday) int {
	return simpleWeekOf(first, d.day, d.Weekday())
}

// WeekOfYear returns the week of the native year containing the date under
// the supplied week policy; year boundaries are the system's own. It fails
// with an error wrapping ErrOutOfRange if wc is invalid.
func (d SystemDate) WeekOfYear(wc WeekCalculator) (WeekOf, error) {
	if err := wc.validate(); err != nil {
		return WeekOf{}, err
	}
	ops := d.sys.ops()
	return weekOf(wc, ops.daysInYear(d.year-1), d.DaysInYear(), d.DayOfYear(), d.Weekday()), nil
}

// ISO converts the date back to the proleptic ISO calendar. It is the
// inverse of Date.In for every system.
func (d SystemDate) ISO() Date {
	y, m, dd := rataDieDate(d.rataDie())
	return Date{year: y, month: m, day: dd}
}

// AddDays returns the date n days later, or earlier for negative n,
// expressed in the same system.
func (d SystemDate) AddDays(n int64) SystemDate {
	y, m, dd := d.sys.ops().fromRataDie(d.rataDie() + n)
	return SystemDate{sys: d.sys, year: y, month: m, day: dd}
}

// Before returns true if d is earlier than e, regardless of their systems.
func (d SystemDate) Before(e SystemDate) bool {
	return d.rataDie() < e.rataDie()
}

// After returns true if d is later than e, regardless of their systems.
func (d SystemDate) After(e SystemDate) bool {
	return d.rataDie() > e.rataDie()
}

func (d SystemDate) String() string {
	return fmt.Sprintf("%s %04d-%02d-%02d", d.sys, d.year, d.month, d.day)
}

// SystemDateTime combines a SystemDate with a TimeOfDay. The time of day
// is calendar independent.
type SystemDateTime struct {
	date SystemDate
	tod  TimeOfDay
}

// NewSystemDateTime creates a SystemDateTime, validating the native date
// fields before the time fields.
func NewSystemDateTime(sys System, year, month, day, hour, minute, second, nanosecond int) (SystemDateTime, error) {
	date, err := NewSystemDate(sys, year, month, day)
	if err != nil {
		return SystemDateTime{}, err
	}
	tod, err := NewTimeOfDay(hour, minute, second, nanosecond)
	if err != nil {
		return SystemDateTime{}, err
	}
	return SystemDateTime{date: date, tod: tod}, nil
}

// NewSystemDateTimeFromParts composes a SystemDateTime from an already
// validated SystemDate and TimeOfDay.
func NewSystemDateTimeFromParts(date SystemDate, tod TimeOfDay) SystemDateTime {
	return SystemDateTime{date: date, tod: tod}
}

// Date returns the native date part.
func (dt SystemDateTime) Date() SystemDate {
	return dt.date
}

// TimeOfDay returns the time of day part.
func (dt SystemDateTime) TimeOfDay() TimeOfDay {
	return dt.tod
}

func (dt SystemDateTime) System() System {
	return dt.date.sys
}

func (dt SystemDateTime) Year() int {
	return dt.date.year
}

func (dt SystemDateTime) Month() int {
	return dt.date.month
}

func (dt SystemDateTime) Day() int {
	return dt.date.day
}

func (dt SystemDateTime) Hour() int {
	return dt.tod.Hour()
}

func (dt SystemDateTime) Minute() int {
	return dt.tod.Minute()
}

func (dt SystemDateTime) Second() int {
	return dt.tod.Second()
}

func (dt SystemDateTime) Nanosecond() int {
	return dt.tod.Nanosecond()
}

// DateTime converts back to the calendar agnostic representation. It is
// the inverse of DateTime.In for every system.
func (dt SystemDateTime) DateTime() DateTime {
	return DateTime{date: dt.date.ISO(), tod: dt.tod}
}

func (dt SystemDateTime) String() string {
	return fmt.Sprintf("%sT%s", dt.date, dt.tod)
}
