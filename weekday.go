// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Weekday is an ISO-8601 day of the week, Monday (1) through Sunday (7).
// The ordinals differ from time.Weekday which numbers Sunday as 0; use
// NewWeekdayFromTime and TimeWeekday to convert.
type Weekday uint8

const (
	Monday Weekday = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

func (w Weekday) String() string {
	if w < Monday || w > Sunday {
		return fmt.Sprintf("Weekday(%d)", uint8(w))
	}
	name := weekdayNames[w-1]
	return strings.ToUpper(name[:1]) + name[1:]
}

// ParseNumericWeekday parses a numeric weekday in the range 1-7 (Monday is 1).
func ParseNumericWeekday(val string) (Weekday, error) {
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid weekday: %q: %w", val, ErrOutOfRange)
	}
	if n < 1 || n > 7 {
		return 0, fmt.Errorf("invalid weekday: %d: %w", n, ErrOutOfRange)
	}
	return Weekday(n), nil
}

// ParseWeekday parses a weekday name of the form "Mon" to "Sun" or any other
// longer prefixes of "Monday" to "Sunday" in either lower or upper case,
// or a numeric weekday in the range 1-7.
func ParseWeekday(val string) (Weekday, error) {
	if n, err := ParseNumericWeekday(val); err == nil {
		return n, nil
	}
	lc := strings.ToLower(val)
	if len(lc) == 0 {
		return 0, fmt.Errorf("invalid weekday: %q: %w", val, ErrOutOfRange)
	}
	for i := range weekdayNames {
		if strings.HasPrefix(weekdayNames[i], lc) {
			return Weekday(i + 1), nil
		}
	}
	return 0, fmt.Errorf("invalid weekday: %q: %w", val, ErrOutOfRange)
}

// NewWeekdayFromTime returns the Weekday for a time.Weekday.
func NewWeekdayFromTime(w time.Weekday) Weekday {
	if w == time.Sunday {
		return Sunday
	}
	return Weekday(w)
}

// TimeWeekday returns the time.Weekday equivalent of w.
func (w Weekday) TimeWeekday() time.Weekday {
	if w == Sunday {
		return time.Sunday
	}
	return time.Weekday(w)
}
