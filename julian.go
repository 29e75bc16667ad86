// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import "fmt"

// julianSystem is the proleptic Julian calendar: Gregorian month structure
// with a leap day every fourth year without exception. Years are
// astronomical (year 0 precedes year 1); the bce era maps them to
// historical numbering. Julian 0001-01-01 is rata die -1.
type julianSystem struct{}

func (julianSystem) monthsInYear(int) int { return 12 }

func julianLeap(year int) bool {
	return floorMod(int64(year), 4) == 0
}

func (julianSystem) daysInMonth(year, month int) int {
	if julianLeap(year) {
		return daysInMonthLeap[month-1]
	}
	return daysInMonthTab[month-1]
}

func (julianSystem) daysInYear(year int) int {
	if julianLeap(year) {
		return 366
	}
	return 365
}

func (julianSystem) isLeap(year int) bool { return julianLeap(year) }

func (js julianSystem) toRataDie(year, month, day int) int64 {
	y := int64(year) - 1
	rd := 365*y + floorDiv(y, 4) - 2
	if julianLeap(year) {
		return rd + int64(dayOfYearLeapTab[month-1]+day)
	}
	return rd + int64(dayOfYearTab[month-1]+day)
}

func (js julianSystem) fromRataDie(rd int64) (int, int, int) {
	year := int(floorDiv(4*(rd+1)+1464, 1461))
	for rd < js.toRataDie(year, 1, 1) {
		year--
	}
	for rd >= js.toRataDie(year+1, 1, 1) {
		year++
	}
	doy := int(rd-js.toRataDie(year, 1, 1)) + 1
	m, d := monthFromDayOfYear(js, year, doy)
	return year, m, d
}

func (julianSystem) eras() []string { return []string{"ce", "bce"} }

func (julianSystem) era(year int) (string, int) {
	if year > 0 {
		return "ce", year
	}
	return "bce", 1 - year
}

func (julianSystem) yearForEra(code string, eraYear int) (int, error) {
	switch code {
	case "ce":
		if eraYear < 1 {
			return 0, fmt.Errorf("ce year %d: %w", eraYear, ErrUnsupportedEra)
		}
		return eraYear, nil
	case "bce":
		if eraYear < 1 {
			return 0, fmt.Errorf("bce year %d: %w", eraYear, ErrUnsupportedEra)
		}
		return 1 - eraYear, nil
	}
	return 0, fmt.Errorf("julian era %q: %w", code, ErrUnsupportedEra)
}
