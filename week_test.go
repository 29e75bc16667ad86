// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar_test

import (
	"errors"
	"testing"

	"cloudeng.io/calendar"
)

func TestNewWeekCalculator(t *testing.T) {
	wc, err := calendar.NewWeekCalculator(calendar.Sunday, 1)
	if err != nil {
		t.Fatalf("failed: %v", err)
	}
	if got, want := wc, (calendar.WeekCalculator{FirstDay: calendar.Sunday, MinDays: 1}); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := calendar.ISOWeekCalculator(), (calendar.WeekCalculator{FirstDay: calendar.Monday, MinDays: 4}); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	for _, tc := range []struct {
		first   calendar.Weekday
		minDays int
	}{
		{calendar.Weekday(0), 4},
		{calendar.Weekday(8), 4},
		{calendar.Monday, 0},
		{calendar.Monday, 8},
	} {
		if _, err := calendar.NewWeekCalculator(tc.first, tc.minDays); !errors.Is(err, calendar.ErrOutOfRange) {
			t.Errorf("%v/%v: expected ErrOutOfRange: %v", tc.first, tc.minDays, err)
		}
	}
}

func TestWeekOfYearISO(t *testing.T) {
	for _, tc := range []struct {
		date calendar.Date
		want calendar.WeekOf
	}{
		// A year opening mid-week spills into the previous year's numbering.
		{newDate(2021, 1, 1), calendar.WeekOf{Week: 53, Unit: calendar.LastWeekOfPreviousYear}},
		{newDate(2021, 1, 3), calendar.WeekOf{Week: 53, Unit: calendar.LastWeekOfPreviousYear}},
		{newDate(2021, 1, 4), calendar.WeekOf{Week: 1, Unit: calendar.WeekOfCurrentYear}},
		// A year closing mid-week spills into the next year's.
		{newDate(2019, 12, 30), calendar.WeekOf{Week: 1, Unit: calendar.FirstWeekOfNextYear}},
		{newDate(2024, 12, 31), calendar.WeekOf{Week: 1, Unit: calendar.FirstWeekOfNextYear}},
		// A 53-week year keeps its closing days.
		{newDate(2020, 12, 31), calendar.WeekOf{Week: 53, Unit: calendar.WeekOfCurrentYear}},
		{newDate(2024, 1, 1), calendar.WeekOf{Week: 1, Unit: calendar.WeekOfCurrentYear}},
		{newDate(2024, 6, 15), calendar.WeekOf{Week: 24, Unit: calendar.WeekOfCurrentYear}},
		{newDate(2026, 1, 1), calendar.WeekOf{Week: 1, Unit: calendar.WeekOfCurrentYear}},
	} {
		got, err := tc.date.WeekOfYear(isoWeek())
		if err != nil {
			t.Errorf("%v: failed: %v", tc.date, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%v: got %v, want %v", tc.date, got, tc.want)
		}
	}
}

func TestWeekOfYearPolicies(t *testing.T) {
	// The same date numbers differently under different locale policies.
	date := newDate(2021, 1, 1)
	for _, tc := range []struct {
		first   calendar.Weekday
		minDays int
		want    calendar.WeekOf
	}{
		{calendar.Monday, 4, calendar.WeekOf{Week: 53, Unit: calendar.LastWeekOfPreviousYear}},
		{calendar.Sunday, 1, calendar.WeekOf{Week: 1, Unit: calendar.WeekOfCurrentYear}},
		{calendar.Saturday, 1, calendar.WeekOf{Week: 1, Unit: calendar.WeekOfCurrentYear}},
	} {
		wc, err := calendar.NewWeekCalculator(tc.first, tc.minDays)
		if err != nil {
			t.Fatalf("failed: %v", err)
		}
		got, err := date.WeekOfYear(wc)
		if err != nil {
			t.Fatalf("failed: %v", err)
		}
		if got != tc.want {
			t.Errorf("%v/%v: got %v, want %v", tc.first, tc.minDays, got, tc.want)
		}
	}
}

func TestWeekOfYearInvalid(t *testing.T) {
	_, err := newDate(2024, 1, 1).WeekOfYear(calendar.WeekCalculator{FirstDay: calendar.Monday, MinDays: 0})
	if !errors.Is(err, calendar.ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange: %v", err)
	}
}

func TestWeekOfMonth(t *testing.T) {
	// Day 1 is always in week 1, whichever weekday opens the week.
	for wd := calendar.Monday; wd <= calendar.Sunday; wd++ {
		for _, date := range []calendar.Date{
			newDate(2024, 1, 1),
			newDate(2024, 2, 1),
			newDate(2021, 8, 1),
		} {
			if got, want := date.WeekOfMonth(wd), 1; got != want {
				t.Errorf("%v first %v: got %v, want %v", date, wd, got, want)
			}
		}
	}
	for _, tc := range []struct {
		date  calendar.Date
		first calendar.Weekday
		want  int
	}{
		{newDate(2024, 6, 15), calendar.Monday, 3},
		{newDate(2024, 6, 15), calendar.Sunday, 3},
		{newDate(2024, 6, 30), calendar.Monday, 5},
		{newDate(2024, 2, 29), calendar.Monday, 5},
	} {
		if got := tc.date.WeekOfMonth(tc.first); got != tc.want {
			t.Errorf("%v first %v: got %v, want %v", tc.date, tc.first, got, tc.want)
		}
	}
}
