// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

// Day counts are "rata die" day numbers: day 1 is 0001-01-01 in the
// proleptic Gregorian calendar, a Monday. All division is floored so that
// the arithmetic holds for negative years and pre-epoch day counts.

// unixEpochDay is the rata die day number of 1970-01-01.
const unixEpochDay = 719163

func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func floorMod(a, b int64) int64 {
	return a - floorDiv(a, b)*b
}

// rataDie returns the day number for a proleptic Gregorian date. The month
// and day are not validated.
func rataDie(year int, month Month, day int) int64 {
	y := int64(year) - 1
	rd := 365*y + floorDiv(y, 4) - floorDiv(y, 100) + floorDiv(y, 400)
	if IsLeap(year) {
		return rd + int64(dayOfYearLeapTab[month-1]+day)
	}
	return rd + int64(dayOfYearTab[month-1]+day)
}

// rataDieDate is the inverse of rataDie, for any day number.
func rataDieDate(rd int64) (int, Month, int) {
	d0 := rd - 1
	n400 := floorDiv(d0, 146097)
	d1 := floorMod(d0, 146097)
	n100 := floorDiv(d1, 36524)
	d2 := floorMod(d1, 36524)
	n4 := floorDiv(d2, 1461)
	d3 := floorMod(d2, 1461)
	n1 := floorDiv(d3, 365)
	year := int(400*n400 + 100*n100 + 4*n4 + n1)
	if n100 != 4 && n1 != 4 {
		year++
	}
	doy := int(rd - rataDie(year, 1, 1) + 1)
	month, day := monthAndDay(year, doy)
	return year, month, day
}

// monthAndDay splits a 1-indexed day of year into its month and day.
func monthAndDay(year, doy int) (Month, int) {
	dim := daysInMonthForYear(year)
	m := 0
	for doy > dim[m] {
		doy -= dim[m]
		m++
	}
	return Month(m + 1), doy
}

// weekdayOf returns the ISO weekday of a day number. Day 1 is a Monday.
func weekdayOf(rd int64) Weekday {
	return Weekday(floorMod(rd-1, 7) + 1)
}
