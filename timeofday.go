// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"fmt"
	"time"
)

// TimeOfDay represents a clock time within a day with nanosecond precision
// and no timezone. The hour is stored in the topmost bits, then the minute,
// second and nanosecond, so that numeric ordering of TimeOfDay values is
// chronological ordering.
type TimeOfDay uint64

const (
	nanosecondBits = 30
	secondShift    = nanosecondBits
	minuteShift    = secondShift + 6
	hourShift      = minuteShift + 6
)

// NewTimeOfDay creates a TimeOfDay from the specified hour (0-23),
// minute (0-59), second (0-59) and nanosecond (0-999999999). It returns
// an error wrapping ErrOutOfRange naming the first field outside its bounds.
func NewTimeOfDay(hour, minute, second, nanosecond int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 {
		return 0, fmt.Errorf("hour %d: %w", hour, ErrOutOfRange)
	}
	if minute < 0 || minute > 59 {
		return 0, fmt.Errorf("minute %d: %w", minute, ErrOutOfRange)
	}
	if second < 0 || second > 59 {
		return 0, fmt.Errorf("second %d: %w", second, ErrOutOfRange)
	}
	if nanosecond < 0 || nanosecond > 999999999 {
		return 0, fmt.Errorf("nanosecond %d: %w", nanosecond, ErrOutOfRange)
	}
	return newTimeOfDay(hour, minute, second, nanosecond), nil
}

func newTimeOfDay(hour, minute, second, nanosecond int) TimeOfDay {
	return TimeOfDay(uint64(hour)<<hourShift | uint64(minute)<<minuteShift |
		uint64(second)<<secondShift | uint64(nanosecond))
}

// NewTimeOfDayFromTime returns the TimeOfDay for the clock fields of t,
// ignoring its location.
func NewTimeOfDayFromTime(t time.Time) TimeOfDay {
	return newTimeOfDay(t.Hour(), t.Minute(), t.Second(), t.Nanosecond())
}

func (t TimeOfDay) Hour() int {
	return int(t >> hourShift)
}

func (t TimeOfDay) Minute() int {
	return int(t >> minuteShift & 0x3f)
}

func (t TimeOfDay) Second() int {
	return int(t >> secondShift & 0x3f)
}

func (t TimeOfDay) Nanosecond() int {
	return int(t & (1<<nanosecondBits - 1))
}

// Before returns true if t is earlier in the day than u.
func (t TimeOfDay) Before(u TimeOfDay) bool {
	return t < u
}

// After returns true if t is later in the day than u.
func (t TimeOfDay) After(u TimeOfDay) bool {
	return t > u
}

// Duration returns the time elapsed since midnight as a time.Duration.
func (t TimeOfDay) Duration() time.Duration {
	return time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second +
		time.Duration(t.Nanosecond())
}

func (t TimeOfDay) String() string {
	if ns := t.Nanosecond(); ns != 0 {
		return fmt.Sprintf("%02d:%02d:%02d.%09d", t.Hour(), t.Minute(), t.Second(), ns)
	}
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour(), t.Minute(), t.Second())
}
