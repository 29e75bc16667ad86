// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"fmt"
	"iter"
)

// DateRange represents a range of dates, inclusive of the start and end
// dates.
type DateRange struct {
	from, to Date
}

// NewDateRange creates a DateRange, failing with an error wrapping
// ErrOutOfRange if to is earlier than from.
func NewDateRange(from, to Date) (DateRange, error) {
	if to.Before(from) {
		return DateRange{}, fmt.Errorf("range end %s before start %s: %w", to, from, ErrOutOfRange)
	}
	return DateRange{from: from, to: to}, nil
}

func (dr DateRange) From() Date {
	return dr.from
}

func (dr DateRange) To() Date {
	return dr.to
}

// Days returns the number of days in the range.
func (dr DateRange) Days() int64 {
	return dr.to.EpochDays() - dr.from.EpochDays() + 1
}

// Contains returns true if the specified date is within the range.
func (dr DateRange) Contains(d Date) bool {
	return !d.Before(dr.from) && !d.After(dr.to)
}

// Dates returns an iterator over each date in the range in ascending
// order.
func (dr DateRange) Dates() iter.Seq[Date] {
	return func(yield func(Date) bool) {
		for d := dr.from; !d.After(dr.to); d = d.Tomorrow() {
			if !yield(d) {
				return
			}
		}
	}
}

func (dr DateRange) String() string {
	return fmt.Sprintf("%s - %s", dr.from, dr.to)
}
