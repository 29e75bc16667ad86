// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package almanac merges chronological event streams derived from multiple
// calendar systems, such as the month and year boundaries of each system
// or fixed observances, into a single ordered sequence.
package almanac

import (
	"cmp"
	"fmt"
	"slices"

	"cloudeng.io/calendar"
)

// EventKind classifies an almanac event.
type EventKind int

const (
	YearStart EventKind = iota + 1
	MonthStart
	Observance
)

func (k EventKind) String() string {
	switch k {
	case YearStart:
		return "year-start"
	case MonthStart:
		return "month-start"
	case Observance:
		return "observance"
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Event is a single dated occurrence. System and Native are set only for
// events produced by a calendar system source; observances carry the date
// and name alone.
type Event struct {
	When   calendar.Date
	System calendar.System
	Native calendar.SystemDate
	Kind   EventKind
	Source string
}

func (e Event) String() string {
	return fmt.Sprintf("%s: %s (%s)", e.When, e.Kind, e.Source)
}

// Source produces dated events in ascending order. Next returns the first
// event on or after from, or false when the stream has no further events.
// Implementations must be pure: successive calls with the same date return
// the same event. A source contributes at most one event per day.
type Source interface {
	Name() string
	Next(from calendar.Date) (Event, bool)
}

type systemEvents struct {
	sys calendar.System
}

// SystemEvents returns a Source yielding the start of every native month
// of the given calendar system, with the start of a native year reported
// as a YearStart event.
func SystemEvents(sys calendar.System) Source {
	return systemEvents{sys: sys}
}

func (s systemEvents) Name() string {
	return s.sys.String()
}

func (s systemEvents) Next(from calendar.Date) (Event, bool) {
	native := from.In(s.sys)
	if native.Day() != 1 {
		native = native.AddDays(int64(native.DaysInMonth() - native.Day() + 1))
	}
	kind := MonthStart
	if native.Month() == 1 && native.Day() == 1 {
		kind = YearStart
	}
	return Event{
		When:   native.ISO(),
		System: s.sys,
		Native: native,
		Kind:   kind,
		Source: s.Name(),
	}, true
}

type dateList struct {
	name  string
	kind  EventKind
	dates []calendar.Date
}

// Dates returns a Source yielding the given fixed dates, such as a list of
// observances. The dates need not be supplied in order.
func Dates(name string, kind EventKind, dates ...calendar.Date) Source {
	sorted := slices.Clone(dates)
	slices.SortFunc(sorted, func(a, b calendar.Date) int {
		return cmp.Compare(a.EpochDays(), b.EpochDays())
	})
	return dateList{name: name, kind: kind, dates: sorted}
}

func (d dateList) Name() string {
	return d.name
}

func (d dateList) Next(from calendar.Date) (Event, bool) {
	for _, date := range d.dates {
		if date.Before(from) {
			continue
		}
		return Event{When: date, Kind: d.kind, Source: d.name}, true
	}
	return Event{}, false
}
