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

// Month as an int, January is 1.
type Month time.Month

var (
	dayOfYearTab     []int // per month cumulative days in year, [0, 31, 59, ...]
	dayOfYearLeapTab []int // per month cumulative days in a leap year
	daysInMonthTab   []int // days in each month
	daysInMonthLeap  []int
	monthNames       = []string{"january", "february", "march", "april", "may", "june", "july", "august", "september", "october", "november", "december"}
)

func daysInMonthInit(year int, month int) int {
	switch month {
	case 2:
		return DaysInFeb(year)
	case 4, 6, 9, 11:
		return 30
	default:
		return 31
	}
}

func init() {
	daysInMonthTab = make([]int, 12)
	daysInMonthLeap = make([]int, 12)
	dayOfYearTab = make([]int, 12)
	dayOfYearLeapTab = make([]int, 12)

	for i := 0; i < 12; i++ {
		daysInMonthTab[i] = daysInMonthInit(2023, i+1)
		daysInMonthLeap[i] = daysInMonthInit(2024, i+1)
	}
	for i := 0; i < 11; i++ {
		dayOfYearTab[i+1] += dayOfYearTab[i] + daysInMonthTab[i]
		dayOfYearLeapTab[i+1] += dayOfYearLeapTab[i] + daysInMonthLeap[i]
	}
}

func (m Month) String() string {
	return time.Month(m).String()
}

// ParseNumericMonth parses a 1 or 2 digit numeric month value in the range 1-12.
func ParseNumericMonth(val string) (Month, error) {
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid month: %q: %w", val, ErrInvalidMonth)
	}
	if n < 1 || n > 12 {
		return 0, fmt.Errorf("invalid month: %d: %w", n, ErrInvalidMonth)
	}
	return Month(n), nil
}

// ParseMonth parses a month name of the form "Jan" to "Dec" or any other
// longer prefixes of "January" to "December" in either lower or upper case,
// or a numeric month in the range 1-12.
func ParseMonth(val string) (Month, error) {
	if n, err := ParseNumericMonth(val); err == nil {
		return n, nil
	}
	lc := strings.ToLower(val)
	if len(lc) == 0 {
		return 0, fmt.Errorf("invalid month: %q: %w", val, ErrInvalidMonth)
	}
	for i := range monthNames {
		if strings.HasPrefix(monthNames[i], lc) {
			return Month(i + 1), nil
		}
	}
	return 0, fmt.Errorf("invalid month: %q: %w", val, ErrInvalidMonth)
}

// IsLeap returns true if the given year is a leap year under the proleptic
// Gregorian rule, which is applied uniformly to all years including zero
// and negative years.
func IsLeap(year int) bool {
	return year%4 == 0 && year%100 != 0 || year%400 == 0
}

// DaysInFeb returns the number of days in February for the given year.
func DaysInFeb(year int) int {
	if IsLeap(year) {
		return 29
	}
	return 28
}

// DaysInMonth returns the number of days in the given month for the given year.
func DaysInMonth(year int, month Month) int {
	if IsLeap(year) {
		return daysInMonthLeap[month-1]
	}
	return daysInMonthTab[month-1]
}

// DaysInYear returns the number of days in the given year, 365, or 366 for
// leap years.
func DaysInYear(year int) int {
	if IsLeap(year) {
		return 366
	}
	return 365
}

func daysInMonthForYear(year int) []int {
	if IsLeap(year) {
		return daysInMonthLeap
	}
	return daysInMonthTab
}
