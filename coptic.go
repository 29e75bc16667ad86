// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import "fmt"

// copticSystem covers the Coptic and Ethiopic calendars, which share their
// structure: twelve months of 30 days followed by a thirteenth epagomenal
// month of 5 days, 6 in leap years, with a leap year every fourth year
// when year mod 4 is 3. The two differ only in epoch; the Amete Alem
// variant of the Ethiopic calendar additionally numbers years 5500 higher.
type copticSystem struct {
	epoch      int64
	eraCode    string
	yearOffset int
}

const (
	copticEpoch     = 103605 // rata die of Coptic 0001-01-01
	ethiopicEpoch   = 2796   // rata die of Ethiopic 0001-01-01 (Amete Mihret)
	ameteAlemOffset = 5500
)

func (copticSystem) monthsInYear(int) int { return 13 }

func (cs copticSystem) isLeap(year int) bool {
	return floorMod(int64(year), 4) == 3
}

func (cs copticSystem) daysInMonth(year, month int) int {
	if month < 13 {
		return 30
	}
	if cs.isLeap(year) {
		return 6
	}
	return 5
}

func (cs copticSystem) daysInYear(year int) int {
	if cs.isLeap(year) {
		return 366
	}
	return 365
}

func (cs copticSystem) toRataDie(year, month, day int) int64 {
	y := int64(year - cs.yearOffset)
	return cs.epoch - 1 + 365*(y-1) + floorDiv(y, 4) + 30*int64(month-1) + int64(day)
}

func (cs copticSystem) fromRataDie(rd int64) (int, int, int) {
	year := int(floorDiv(4*(rd-cs.epoch)+1463, 1461)) + cs.yearOffset
	for rd < cs.toRataDie(year, 1, 1) {
		year--
	}
	for rd >= cs.toRataDie(year+1, 1, 1) {
		year++
	}
	doy := int(rd-cs.toRataDie(year, 1, 1)) + 1
	m, d := monthFromDayOfYear(cs, year, doy)
	return year, m, d
}

func (cs copticSystem) eras() []string {
	return []string{cs.eraCode}
}

func (cs copticSystem) era(year int) (string, int) {
	return cs.eraCode, year
}

func (cs copticSystem) yearForEra(code string, eraYear int) (int, error) {
	if code != cs.eraCode {
		return 0, fmt.Errorf("era %q: %w", code, ErrUnsupportedEra)
	}
	return eraYear, nil
}
