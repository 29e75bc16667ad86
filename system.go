// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"fmt"
	"strings"
)

// System selects one of the supported calendar systems. The set is closed:
// every System constant has an entry in the dispatch table below and a
// complete implementation of the system interface, so conversions are
// exhaustive over the enumeration.
type System uint8

const (
	ISO System = iota + 1
	Gregorian
	Julian
	Buddhist
	Coptic
	Ethiopic
	EthiopicAmeteAlem
	Indian
	Persian
	IslamicCivil
	Hebrew
)

var systemNames = []string{
	"iso", "gregorian", "julian", "buddhist", "coptic", "ethiopic",
	"ethiopic-amete-alem", "indian", "persian", "islamic-civil", "hebrew",
}

func (s System) String() string {
	if s < ISO || s > Hebrew {
		return fmt.Sprintf("System(%d)", uint8(s))
	}
	return systemNames[s-1]
}

// ParseSystem parses a calendar system name as returned by String, in
// either case. It fails with an error wrapping ErrOutOfRange for a name
// outside the supported set.
func ParseSystem(name string) (System, error) {
	lc := strings.ToLower(name)
	for i := range systemNames {
		if systemNames[i] == lc {
			return System(i + 1), nil
		}
	}
	return 0, fmt.Errorf("unsupported calendar system: %q: %w", name, ErrOutOfRange)
}

// Systems returns all supported calendar systems.
func Systems() []System {
	all := make([]System, 0, int(Hebrew))
	for s := ISO; s <= Hebrew; s++ {
		all = append(all, s)
	}
	return all
}

// system is the per-calendar rule set: month structure, leap predicate,
// era numbering and the mapping between native dates and rata die day
// numbers. Years, months and days are native to the system. The mapping
// must be total over all day numbers and inverse consistent.
type system interface {
	monthsInYear(year int) int
	daysInMonth(year, month int) int
	daysInYear(year int) int
	isLeap(year int) bool
	toRataDie(year, month, day int) int64
	fromRataDie(rd int64) (year, month, day int)
	eras() []string
	era(year int) (code string, eraYear int)
	yearForEra(code string, eraYear int) (int, error)
}

var systems = [...]system{
	ISO:               isoSystem{},
	Gregorian:         gregorianSystem{},
	Julian:            julianSystem{},
	Buddhist:          buddhistSystem{},
	Coptic:            copticSystem{epoch: copticEpoch, eraCode: "am"},
	Ethiopic:          copticSystem{epoch: ethiopicEpoch, eraCode: "am"},
	EthiopicAmeteAlem: copticSystem{epoch: ethiopicEpoch, eraCode: "aa", yearOffset: ameteAlemOffset},
	Indian:            indianSystem{},
	Persian:           persianSystem{},
	IslamicCivil:      islamicCivilSystem{},
	Hebrew:            hebrewSystem{},
}

func (s System) ops() system {
	if s < ISO || s > Hebrew {
		panic(fmt.Sprintf("calendar: invalid System(%d)", uint8(s)))
	}
	return systems[s]
}

// MonthsInYear returns the number of months in the given native year of the
// system; non-constant for lunisolar systems.
func (s System) MonthsInYear(year int) int {
	return s.ops().monthsInYear(year)
}

// DaysInMonth returns the number of days in the given native month of the
// system.
func (s System) DaysInMonth(year, month int) int {
	return s.ops().daysInMonth(year, month)
}

// DaysInYear returns the number of days in the given native year of the
// system.
func (s System) DaysInYear(year int) int {
	return s.ops().daysInYear(year)
}

// IsLeap applies the system's own leap predicate to a native year.
func (s System) IsLeap(year int) bool {
	return s.ops().isLeap(year)
}

// Eras returns the era codes the system defines, most recent first.
func (s System) Eras() []string {
	return s.ops().eras()
}

// monthFromDayOfYear splits a 1-indexed native day of year into its native
// month and day.
func monthFromDayOfYear(ops system, year, doy int) (int, int) {
	m := 1
	for doy > ops.daysInMonth(year, m) {
		doy -= ops.daysInMonth(year, m)
		m++
	}
	return m, doy
}
