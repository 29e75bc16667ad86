// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import "fmt"

// indianSystem is the Indian national (Śaka) civil calendar. Śaka year y
// spans Gregorian years y+78 and y+79, beginning on March 22, or March 21
// when Gregorian year y+78 is a leap year. Chaitra (month 1) then has 31
// days instead of 30; months 2-6 have 31 days and months 7-12 have 30.
type indianSystem struct{}

const sakaEraOffset = 78

func (indianSystem) gregorianYear(year int) int { return year + sakaEraOffset }

func (is indianSystem) newYear(year int) int64 {
	g := is.gregorianYear(year)
	day := 22
	if IsLeap(g) {
		day = 21
	}
	return rataDie(g, 3, day)
}

func (indianSystem) monthsInYear(int) int { return 12 }

func (is indianSystem) isLeap(year int) bool {
	return IsLeap(is.gregorianYear(year))
}

func (is indianSystem) daysInMonth(year, month int) int {
	switch {
	case month == 1:
		if is.isLeap(year) {
			return 31
		}
		return 30
	case month <= 6:
		return 31
	default:
		return 30
	}
}

func (is indianSystem) daysInYear(year int) int {
	if is.isLeap(year) {
		return 366
	}
	return 365
}

func (is indianSystem) toRataDie(year, month, day int) int64 {
	days := 0
	for m := 1; m < month; m++ {
		days += is.daysInMonth(year, m)
	}
	return is.newYear(year) + int64(days+day) - 1
}

func (is indianSystem) fromRataDie(rd int64) (int, int, int) {
	gy, _, _ := rataDieDate(rd)
	year := gy - sakaEraOffset
	if rd < is.newYear(year) {
		year--
	}
	doy := int(rd-is.newYear(year)) + 1
	m, d := monthFromDayOfYear(is, year, doy)
	return year, m, d
}

func (indianSystem) eras() []string { return []string{"saka"} }

func (indianSystem) era(year int) (string, int) { return "saka", year }

func (indianSystem) yearForEra(code string, eraYear int) (int, error) {
	if code != "saka" {
		return 0, fmt.Errorf("indian era %q: %w", code, ErrUnsupportedEra)
	}
	return eraYear, nil
}
