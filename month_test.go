// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar_test

import (
	"errors"
	"testing"

	"cloudeng.io/calendar"
)

func TestParseMonth(t *testing.T) {
	for _, tc := range []struct {
		val  string
		want calendar.Month
	}{
		{"1", 1},
		{"01", 1},
		{"12", 12},
		{"Jan", 1},
		{"january", 1},
		{"JUNE", 6},
		{"jul", 7},
		{"sep", 9},
		{"December", 12},
	} {
		month, err := calendar.ParseMonth(tc.val)
		if err != nil {
			t.Errorf("%q: failed: %v", tc.val, err)
			continue
		}
		if got, want := month, tc.want; got != want {
			t.Errorf("%q: got %v, want %v", tc.val, got, want)
		}
	}
	for _, val := range []string{"", "0", "13", "-1", "smarch", "j x"} {
		if _, err := calendar.ParseMonth(val); !errors.Is(err, calendar.ErrInvalidMonth) {
			t.Errorf("%q: expected ErrInvalidMonth: %v", val, err)
		}
	}
}

func TestParseNumericMonth(t *testing.T) {
	month, err := calendar.ParseNumericMonth("02")
	if err != nil {
		t.Fatalf("failed: %v", err)
	}
	if got, want := month, calendar.Month(2); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	for _, val := range []string{"feb", "0", "13", ""} {
		if _, err := calendar.ParseNumericMonth(val); !errors.Is(err, calendar.ErrInvalidMonth) {
			t.Errorf("%q: expected ErrInvalidMonth: %v", val, err)
		}
	}
}

func TestMonthString(t *testing.T) {
	if got, want := calendar.Month(2).String(), "February"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDaysInFeb(t *testing.T) {
	for _, tc := range []struct {
		year int
		want int
	}{
		{2023, 28},
		{2024, 29},
		{1900, 28},
		{2000, 29},
		{0, 29},
		{-1, 28},
	} {
		if got := calendar.DaysInFeb(tc.year); got != tc.want {
			t.Errorf("%v: got %v, want %v", tc.year, got, tc.want)
		}
	}
}
