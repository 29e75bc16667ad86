// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"fmt"
	"time"
)

// DateTime combines a Date with a TimeOfDay. It is offset naive: the value
// carries no timezone and two DateTimes compare by their fields alone.
type DateTime struct {
	date Date
	tod  TimeOfDay
}

const minutesPerDay = 24 * 60

// NewDateTime creates a DateTime, validating the date fields before the
// time fields so that inputs invalid in both dimensions fail
// deterministically with the date error.
func NewDateTime(year int, month Month, day, hour, minute, second, nanosecond int) (DateTime, error) {
	date, err := NewDate(year, month, day)
	if err != nil {
		return DateTime{}, err
	}
	tod, err := NewTimeOfDay(hour, minute, second, nanosecond)
	if err != nil {
		return DateTime{}, err
	}
	return DateTime{date: date, tod: tod}, nil
}

// NewDateTimeFromParts composes a DateTime from an already validated Date
// and TimeOfDay.
func NewDateTimeFromParts(date Date, tod TimeOfDay) DateTime {
	return DateTime{date: date, tod: tod}
}

// NewDateTimeFromTime returns the DateTime for the date and clock fields of
// t, ignoring its location.
func NewDateTimeFromTime(t time.Time) DateTime {
	return DateTime{date: NewDateFromTime(t), tod: NewTimeOfDayFromTime(t)}
}

// UnixEpoch returns 1970-01-01T00:00:00.000000000, the origin of the
// minutes encoding.
func UnixEpoch() DateTime {
	return DateTime{date: Date{year: 1970, month: 1, day: 1}}
}

// DateTimeFromMinutes returns the DateTime the given number of minutes
// after the local Unix epoch; minutes may be negative. The second and
// nanosecond of the result are zero.
func DateTimeFromMinutes(minutes int64) DateTime {
	days := floorDiv(minutes, minutesPerDay)
	rem := minutes - days*minutesPerDay
	return DateTime{
		date: DateFromEpochDays(days),
		tod:  newTimeOfDay(int(rem/60), int(rem%60), 0, 0),
	}
}

// MinutesSinceUnixEpoch returns the number of whole minutes between the
// local Unix epoch and the DateTime. Seconds and nanoseconds are truncated,
// never rounded: the encoding is exact for values produced by
// DateTimeFromMinutes and lossy below the minute for all others.
func (dt DateTime) MinutesSinceUnixEpoch() int64 {
	return dt.date.EpochDays()*minutesPerDay + int64(dt.tod.Hour())*60 + int64(dt.tod.Minute())
}

// Date returns the date part.
func (dt DateTime) Date() Date {
	return dt.date
}

// TimeOfDay returns the time of day part.
func (dt DateTime) TimeOfDay() TimeOfDay {
	return dt.tod
}

func (dt DateTime) Year() int {
	return dt.date.year
}

func (dt DateTime) Month() Month {
	return dt.date.month
}

func (dt DateTime) Day() int {
	return dt.date.day
}

func (dt DateTime) Hour() int {
	return dt.tod.Hour()
}

func (dt DateTime) Minute() int {
	return dt.tod.Minute()
}

func (dt DateTime) Second() int {
	return dt.tod.Second()
}

func (dt DateTime) Nanosecond() int {
	return dt.tod.Nanosecond()
}

func (dt DateTime) Weekday() Weekday {
	return dt.date.Weekday()
}

func (dt DateTime) DayOfYear() int {
	return dt.date.DayOfYear()
}

func (dt DateTime) DaysInMonth() int {
	return dt.date.DaysInMonth()
}

func (dt DateTime) DaysInYear() int {
	return dt.date.DaysInYear()
}

func (dt DateTime) MonthsInYear() int {
	return dt.date.MonthsInYear()
}

func (dt DateTime) InLeapYear() bool {
	return dt.date.InLeapYear()
}

func (dt DateTime) WeekOfMonth(first Weekday) int {
	return dt.date.WeekOfMonth(first)
}

func (dt DateTime) WeekOfYear(wc WeekCalculator) (WeekOf, error) {
	return dt.date.WeekOfYear(wc)
}

// In converts the DateTime to the specified calendar system. The time of
// day is carried over unchanged.
func (dt DateTime) In(sys System) SystemDateTime {
	return SystemDateTime{date: dt.date.In(sys), tod: dt.tod}
}

// Before returns true if dt is earlier than e.
func (dt DateTime) Before(e DateTime) bool {
	if dt.date != e.date {
		return dt.date.Before(e.date)
	}
	return dt.tod < e.tod
}

// After returns true if dt is later than e.
func (dt DateTime) After(e DateTime) bool {
	return e.Before(dt)
}

// Time returns a time.Time with the same fields in the given location. The
// fields are copied as is, no offset arithmetic is applied.
func (dt DateTime) Time(loc *time.Location) time.Time {
	return dt.date.Time(dt.tod, loc)
}

func (dt DateTime) String() string {
	return fmt.Sprintf("%sT%s", dt.date, dt.tod)
}
