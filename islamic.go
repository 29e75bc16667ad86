// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import "fmt"

// islamicCivilSystem is the tabular Islamic calendar with the civil epoch:
// odd months have 30 days and even months 29, with a 30th day added to
// month 12 in leap years. Year y is leap when (11y+14) mod 30 < 11, giving
// 11 leap years per 30-year cycle. Muharram 1 of year 1 is 622-07-19 ISO.
type islamicCivilSystem struct{}

const islamicEpoch = 227015 // rata die of 0001-01-01 AH

func (islamicCivilSystem) monthsInYear(int) int { return 12 }

func (islamicCivilSystem) isLeap(year int) bool {
	return floorMod(11*int64(year)+14, 30) < 11
}

func (ic islamicCivilSystem) daysInMonth(year, month int) int {
	if month == 12 && ic.isLeap(year) {
		return 30
	}
	if month%2 == 1 {
		return 30
	}
	return 29
}

func (ic islamicCivilSystem) daysInYear(year int) int {
	if ic.isLeap(year) {
		return 355
	}
	return 354
}

func (islamicCivilSystem) toRataDie(year, month, day int) int64 {
	y, m := int64(year), int64(month)
	return islamicEpoch - 1 + 354*(y-1) + floorDiv(11*y+3, 30) +
		29*(m-1) + floorDiv(m, 2) + int64(day)
}

func (ic islamicCivilSystem) fromRataDie(rd int64) (int, int, int) {
	// 10631 days per 30-year cycle.
	year := int(floorDiv(30*(rd-islamicEpoch)+10646, 10631))
	for rd < ic.toRataDie(year, 1, 1) {
		year--
	}
	for rd >= ic.toRataDie(year+1, 1, 1) {
		year++
	}
	doy := int(rd-ic.toRataDie(year, 1, 1)) + 1
	m, d := monthFromDayOfYear(ic, year, doy)
	return year, m, d
}

func (islamicCivilSystem) eras() []string { return []string{"ah"} }

func (islamicCivilSystem) era(year int) (string, int) { return "ah", year }

func (islamicCivilSystem) yearForEra(code string, eraYear int) (int, error) {
	if code != "ah" {
		return 0, fmt.Errorf("islamic era %q: %w", code, ErrUnsupportedEra)
	}
	return eraYear, nil
}
