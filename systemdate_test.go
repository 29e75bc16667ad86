// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar_test

import (
	"errors"
	"testing"

	"cloudeng.io/calendar"
)

func TestNewSystemDate(t *testing.T) {
	for _, tc := range []struct {
		sys              calendar.System
		year, month, day int
		err              error
	}{
		{calendar.ISO, 2024, 2, 29, nil},
		{calendar.ISO, 2023, 2, 29, calendar.ErrInvalidDay},
		{calendar.ISO, 2024, 13, 1, calendar.ErrInvalidMonth},
		// Epagomenal days exist only in the 13th month, day 6 only in a
		// leap year.
		{calendar.Coptic, 1739, 13, 6, nil},
		{calendar.Coptic, 1741, 13, 6, calendar.ErrInvalidDay},
		{calendar.Coptic, 1741, 14, 1, calendar.ErrInvalidMonth},
		// The leap month exists only in a leap year.
		{calendar.Hebrew, 5784, 13, 29, nil},
		{calendar.Hebrew, 5785, 13, 1, calendar.ErrInvalidMonth},
		{calendar.Hebrew, 5785, 2, 30, nil},
		{calendar.Hebrew, 5784, 3, 30, calendar.ErrInvalidDay},
		{calendar.Persian, 1403, 12, 30, nil},
		{calendar.Persian, 1404, 12, 30, calendar.ErrInvalidDay},
		{calendar.IslamicCivil, 2, 12, 30, nil},
		{calendar.IslamicCivil, 1, 12, 30, calendar.ErrInvalidDay},
	} {
		_, err := calendar.NewSystemDate(tc.sys, tc.year, tc.month, tc.day)
		if tc.err == nil {
			if err != nil {
				t.Errorf("%v %v-%v-%v: failed: %v", tc.sys, tc.year, tc.month, tc.day, err)
			}
			continue
		}
		if !errors.Is(err, tc.err) {
			t.Errorf("%v %v-%v-%v: got %v, want %v", tc.sys, tc.year, tc.month, tc.day, err, tc.err)
		}
	}
}

func TestSystemDateEras(t *testing.T) {
	for _, tc := range []struct {
		date    calendar.SystemDate
		era     string
		eraYear int
	}{
		{newSystemDate(calendar.Gregorian, 2024, 1, 1), "ce", 2024},
		{newSystemDate(calendar.Gregorian, 1, 1, 1), "ce", 1},
		{newSystemDate(calendar.Gregorian, 0, 1, 1), "bce", 1},
		{newSystemDate(calendar.Gregorian, -99, 1, 1), "bce", 100},
		{newSystemDate(calendar.Julian, 0, 1, 3), "bce", 1},
		{newSystemDate(calendar.ISO, -99, 1, 1), "default", -99},
		{newSystemDate(calendar.Buddhist, 2567, 1, 1), "be", 2567},
		{newSystemDate(calendar.Hebrew, 5785, 1, 1), "am", 5785},
	} {
		era, eraYear := tc.date.Era()
		if got, want := era, tc.era; got != want {
			t.Errorf("%v: got %v, want %v", tc.date, got, want)
		}
		if got, want := eraYear, tc.eraYear; got != want {
			t.Errorf("%v: got %v, want %v", tc.date, got, want)
		}
		// Era construction reproduces the date.
		rebuilt, err := calendar.NewSystemDateInEra(tc.date.System(), era, eraYear, tc.date.Month(), tc.date.Day())
		if err != nil {
			t.Errorf("%v: failed: %v", tc.date, err)
			continue
		}
		if got, want := rebuilt, tc.date; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}
}

func TestNewSystemDateInEraInvalid(t *testing.T) {
	for _, tc := range []struct {
		sys     calendar.System
		era     string
		eraYear int
	}{
		{calendar.Gregorian, "ah", 100},
		{calendar.Gregorian, "bce", 0},
		{calendar.Gregorian, "ce", 0},
		{calendar.ISO, "ce", 2024},
		{calendar.Hebrew, "bce", 1},
	} {
		_, err := calendar.NewSystemDateInEra(tc.sys, tc.era, tc.eraYear, 1, 1)
		if !errors.Is(err, calendar.ErrUnsupportedEra) {
			t.Errorf("%v %v %v: expected ErrUnsupportedEra: %v", tc.sys, tc.era, tc.eraYear, err)
		}
	}
}

func TestSystemDateAddDays(t *testing.T) {
	// Arithmetic stays within the date's system, across its own year
	// boundaries.
	for _, tc := range []struct {
		start calendar.SystemDate
		n     int64
		want  calendar.SystemDate
	}{
		{newSystemDate(calendar.Coptic, 1740, 13, 5), 1, newSystemDate(calendar.Coptic, 1741, 1, 1)},
		{newSystemDate(calendar.Coptic, 1741, 1, 1), -1, newSystemDate(calendar.Coptic, 1740, 13, 5)},
		{newSystemDate(calendar.Hebrew, 5784, 12, 30), 0, newSystemDate(calendar.Hebrew, 5784, 12, 30)},
		{newSystemDate(calendar.Persian, 1403, 12, 30), 1, newSystemDate(calendar.Persian, 1404, 1, 1)},
		{newSystemDate(calendar.IslamicCivil, 1446, 1, 1), 354, newSystemDate(calendar.IslamicCivil, 1447, 1, 1)},
	} {
		if got, want := tc.start.AddDays(tc.n), tc.want; got != want {
			t.Errorf("%v + %v: got %v, want %v", tc.start, tc.n, got, want)
		}
	}
}

func TestSystemDateWeeks(t *testing.T) {
	// Week numbering follows the system's own year boundaries: the Coptic
	// new year day is in week 1 of the Coptic year even though it falls in
	// September.
	ny := newSystemDate(calendar.Coptic, 1741, 1, 1)
	wc, err := calendar.NewWeekCalculator(calendar.Sunday, 1)
	if err != nil {
		t.Fatalf("failed: %v", err)
	}
	week, err := ny.WeekOfYear(wc)
	if err != nil {
		t.Fatalf("failed: %v", err)
	}
	if got, want := week, (calendar.WeekOf{Week: 1, Unit: calendar.WeekOfCurrentYear}); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := ny.WeekOfMonth(calendar.Sunday), 1; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if _, err := ny.WeekOfYear(calendar.WeekCalculator{}); !errors.Is(err, calendar.ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange: %v", err)
	}
}

func TestSystemDateOrdering(t *testing.T) {
	// Ordering is by instant, regardless of system.
	coptic := newDate(2024, 9, 11).In(calendar.Coptic)
	hebrew := newDate(2024, 10, 3).In(calendar.Hebrew)
	if got, want := coptic.Before(hebrew), true; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := hebrew.After(coptic), true; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := coptic.Before(coptic), false; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSystemDateTime(t *testing.T) {
	dt, err := calendar.NewSystemDateTime(calendar.Hebrew, 5785, 1, 1, 18, 30, 0, 0)
	if err != nil {
		t.Fatalf("failed: %v", err)
	}
	if got, want := dt.System(), calendar.Hebrew; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := dt.Year(), 5785; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := dt.Hour(), 18; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := dt.DateTime(), newDateTime(2024, 10, 3, 18, 30, 0, 0); got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	// The date is validated before the time.
	_, err = calendar.NewSystemDateTime(calendar.Hebrew, 5785, 13, 1, 99, 0, 0, 0)
	if !errors.Is(err, calendar.ErrInvalidMonth) {
		t.Errorf("expected ErrInvalidMonth: %v", err)
	}
	_, err = calendar.NewSystemDateTime(calendar.Hebrew, 5785, 1, 1, 99, 0, 0, 0)
	if !errors.Is(err, calendar.ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange: %v", err)
	}
}

func TestDateTimeIn(t *testing.T) {
	dt := newDateTime(2024, 10, 3, 6, 0, 0, 0)
	native := dt.In(calendar.Hebrew)
	if got, want := native.Date(), newSystemDate(calendar.Hebrew, 5785, 1, 1); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := native.TimeOfDay(), dt.TimeOfDay(); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := native.DateTime(), dt; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSystemDateString(t *testing.T) {
	if got, want := newSystemDate(calendar.Hebrew, 5785, 1, 1).String(), "hebrew 5785-01-01"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
