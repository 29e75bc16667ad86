// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import "errors"

// The calendar package reports all validation failures as values wrapping
// one of the sentinel errors below; use errors.Is to classify a failure.
var (
	// ErrInvalidMonth indicates a month outside [1, months-in-year] for
	// the relevant calendar system and year.
	ErrInvalidMonth = errors.New("invalid month")

	// ErrInvalidDay indicates a day outside [1, days-in-month] for the
	// relevant calendar system, year and month.
	ErrInvalidDay = errors.New("invalid day")

	// ErrOutOfRange indicates a numeric field or parameter outside its
	// valid bounds, such as an hour of 24 or a week calculator requiring
	// zero days in the first week.
	ErrOutOfRange = errors.New("out of range")

	// ErrUnsupportedEra indicates an era code a calendar system does not
	// define, or a year outside that era's domain.
	ErrUnsupportedEra = errors.New("unsupported era")
)
