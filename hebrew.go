// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import "fmt"

// hebrewSystem is the arithmetic lunisolar Hebrew calendar. Months are
// numbered as civil ordinals with Tishri as month 1; leap years (7 per
// 19-year cycle) insert Adar I as month 6 for 13 months in total, so a
// month is always within [1, monthsInYear]. The new year is fixed by the
// molad of Tishri plus the traditional postponements, which stretch years
// to one of six lengths: 353-355 days, or 383-385 in leap years.
type hebrewSystem struct{}

const hebrewEpoch = -1373427 // rata die of Hebrew 0001-01-01

func (hebrewSystem) isLeap(year int) bool {
	return floorMod(7*int64(year)+1, 19) < 7
}

func (hs hebrewSystem) monthsInYear(year int) int {
	if hs.isLeap(year) {
		return 13
	}
	return 12
}

// hebrewElapsedDays returns the number of days from the Hebrew epoch to the
// mean new year of the given year, before postponements. A molad is counted
// in halakim, 1080 parts per hour: each month is 29d 12h 793p and the
// first molad falls 5h 204p into the epoch day.
func hebrewElapsedDays(year int) int64 {
	months := floorDiv(235*int64(year)-234, 19)
	parts := 12084 + 13753*months
	days := 29*months + floorDiv(parts, 25920)
	if floorMod(3*(days+1), 7) < 3 {
		return days + 1
	}
	return days
}

// hebrewNewYearDelay applies the postponements that keep year lengths in
// their admissible set.
func hebrewNewYearDelay(year int) int64 {
	ny0 := hebrewElapsedDays(year - 1)
	ny1 := hebrewElapsedDays(year)
	ny2 := hebrewElapsedDays(year + 1)
	if ny2-ny1 == 356 {
		return 2
	}
	if ny1-ny0 == 382 {
		return 1
	}
	return 0
}

func hebrewNewYear(year int) int64 {
	return hebrewEpoch + hebrewElapsedDays(year) + hebrewNewYearDelay(year)
}

func (hs hebrewSystem) daysInYear(year int) int {
	return int(hebrewNewYear(year+1) - hebrewNewYear(year))
}

func (hs hebrewSystem) daysInMonth(year, month int) int {
	switch month {
	case 2: // Marheshvan is long only in 355 and 385 day years.
		if hs.daysInYear(year)%10 == 5 {
			return 30
		}
		return 29
	case 3: // Kislev is short only in 353 and 383 day years.
		if hs.daysInYear(year)%10 == 3 {
			return 29
		}
		return 30
	}
	if hs.isLeap(year) {
		switch month {
		case 1, 5, 6, 8, 10, 12:
			return 30
		default:
			return 29
		}
	}
	switch month {
	case 1, 5, 7, 9, 11:
		return 30
	default:
		return 29
	}
}

func (hs hebrewSystem) toRataDie(year, month, day int) int64 {
	days := 0
	for m := 1; m < month; m++ {
		days += hs.daysInMonth(year, m)
	}
	return hebrewNewYear(year) + int64(days+day) - 1
}

func (hs hebrewSystem) fromRataDie(rd int64) (int, int, int) {
	// 35975351/98496 days per mean year; a float approximation is close
	// enough to correct with the loops below.
	year := int(float64(rd-hebrewEpoch) / 365.2468)
	for rd < hebrewNewYear(year) {
		year--
	}
	for rd >= hebrewNewYear(year+1) {
		year++
	}
	doy := int(rd-hebrewNewYear(year)) + 1
	m, d := monthFromDayOfYear(hs, year, doy)
	return year, m, d
}

func (hebrewSystem) eras() []string { return []string{"am"} }

func (hebrewSystem) era(year int) (string, int) { return "am", year }

func (hebrewSystem) yearForEra(code string, eraYear int) (int, error) {
	if code != "am" {
		return 0, fmt.Errorf("hebrew era %q: %w", code, ErrUnsupportedEra)
	}
	return eraYear, nil
}
