// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import "fmt"

// isoSystem is the proleptic Gregorian calendar with signed astronomical
// year numbering and a single era.
type isoSystem struct{}

func (isoSystem) monthsInYear(int) int { return 12 }

func (isoSystem) daysInMonth(year, month int) int {
	return DaysInMonth(year, Month(month))
}

func (isoSystem) daysInYear(year int) int { return DaysInYear(year) }

func (isoSystem) isLeap(year int) bool { return IsLeap(year) }

func (isoSystem) toRataDie(year, month, day int) int64 {
	return rataDie(year, Month(month), day)
}

func (isoSystem) fromRataDie(rd int64) (int, int, int) {
	y, m, d := rataDieDate(rd)
	return y, int(m), d
}

func (isoSystem) eras() []string { return []string{"default"} }

func (isoSystem) era(year int) (string, int) { return "default", year }

func (isoSystem) yearForEra(code string, eraYear int) (int, error) {
	if code != "default" {
		return 0, fmt.Errorf("iso era %q: %w", code, ErrUnsupportedEra)
	}
	return eraYear, nil
}

// gregorianSystem shares the ISO arithmetic but numbers years of era as
// ce/bce: era year 1 bce is astronomical year 0.
type gregorianSystem struct {
	isoSystem
}

func (gregorianSystem) eras() []string { return []string{"ce", "bce"} }

func (gregorianSystem) era(year int) (string, int) {
	if year > 0 {
		return "ce", year
	}
	return "bce", 1 - year
}

func (gregorianSystem) yearForEra(code string, eraYear int) (int, error) {
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
	return 0, fmt.Errorf("gregorian era %q: %w", code, ErrUnsupportedEra)
}

// buddhistSystem is the Thai solar calendar: Gregorian month structure
// with years numbered in the Buddhist era, 543 ahead of ISO.
type buddhistSystem struct{}

const buddhistEraOffset = 543

func (buddhistSystem) monthsInYear(int) int { return 12 }

func (buddhistSystem) daysInMonth(year, month int) int {
	return DaysInMonth(year-buddhistEraOffset, Month(month))
}

func (buddhistSystem) daysInYear(year int) int {
	return DaysInYear(year - buddhistEraOffset)
}

func (buddhistSystem) isLeap(year int) bool {
	return IsLeap(year - buddhistEraOffset)
}

func (buddhistSystem) toRataDie(year, month, day int) int64 {
	return rataDie(year-buddhistEraOffset, Month(month), day)
}

func (buddhistSystem) fromRataDie(rd int64) (int, int, int) {
	y, m, d := rataDieDate(rd)
	return y + buddhistEraOffset, int(m), d
}

func (buddhistSystem) eras() []string { return []string{"be"} }

func (buddhistSystem) era(year int) (string, int) { return "be", year }

func (buddhistSystem) yearForEra(code string, eraYear int) (int, error) {
	if code != "be" {
		return 0, fmt.Errorf("buddhist era %q: %w", code, ErrUnsupportedEra)
	}
	return eraYear, nil
}
