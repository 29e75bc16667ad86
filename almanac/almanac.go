// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package almanac

import (
	"iter"

	"cloudeng.io/algo/container/heap"
	"cloudeng.io/calendar"
)

type heapEntry struct {
	ev  Event
	src Source
}

// Between merges the events of the supplied sources over the date range
// into a single sequence ordered by date. Events falling on the same day
// are yielded in unspecified relative order. Each source is queried once
// per event it contributes, so unbounded sources are safe to pass.
func Between(dr calendar.DateRange, sources ...Source) iter.Seq[Event] {
	return func(yield func(Event) bool) {
		h := heap.NewMin(heap.WithSliceCap[int64, heapEntry](len(sources)))
		push := func(src Source, from calendar.Date) {
			ev, ok := src.Next(from)
			if !ok || ev.When.After(dr.To()) {
				return
			}
			h.Push(ev.When.EpochDays(), heapEntry{ev: ev, src: src})
		}
		for _, src := range sources {
			push(src, dr.From())
		}
		for h.Len() > 0 {
			_, he := h.Pop()
			if !yield(he.ev) {
				return
			}
			push(he.src, he.ev.When.Tomorrow())
		}
	}
}
