// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import "fmt"

// persianSystem is the arithmetic Solar Hijri calendar with the 33-year
// leap cycle: year y is leap when (25y+11) mod 33 < 8, giving 8 leap years
// per cycle. Months 1-6 have 31 days, 7-11 have 30 and month 12 has 29,
// 30 in leap years. The epoch anchors Farvardin 1 of year 1400 to
// 2021-03-21.
type persianSystem struct{}

const persianEpoch = 226895 // rata die of Persian 0001-01-01

func (persianSystem) monthsInYear(int) int { return 12 }

func (persianSystem) isLeap(year int) bool {
	return floorMod(25*int64(year)+11, 33) < 8
}

func (ps persianSystem) daysInMonth(year, month int) int {
	switch {
	case month <= 6:
		return 31
	case month <= 11:
		return 30
	default:
		if ps.isLeap(year) {
			return 30
		}
		return 29
	}
}

func (ps persianSystem) daysInYear(year int) int {
	if ps.isLeap(year) {
		return 366
	}
	return 365
}

func (persianSystem) newYear(year int) int64 {
	y := int64(year)
	return persianEpoch + 365*(y-1) + floorDiv(8*y+21, 33)
}

func (ps persianSystem) toRataDie(year, month, day int) int64 {
	days := 31 * (month - 1)
	if month > 7 {
		days = 186 + 30*(month-7)
	}
	return ps.newYear(year) + int64(days+day) - 1
}

func (ps persianSystem) fromRataDie(rd int64) (int, int, int) {
	// 12053 days per 33-year cycle.
	year := int(floorDiv(33*(rd-persianEpoch), 12053)) + 1
	for rd < ps.newYear(year) {
		year--
	}
	for rd >= ps.newYear(year+1) {
		year++
	}
	doy := int(rd-ps.newYear(year)) + 1
	m, d := monthFromDayOfYear(ps, year, doy)
	return year, m, d
}

func (persianSystem) eras() []string { return []string{"ap"} }

func (persianSystem) era(year int) (string, int) { return "ap", year }

func (persianSystem) yearForEra(code string, eraYear int) (int, error) {
	if code != "ap" {
		return 0, fmt.Errorf("persian era %q: %w", code, ErrUnsupportedEra)
	}
	return eraYear, nil
}
