package booking

import (
	"iter"
	"sort"
	"time"
)

// Slot is a gap in which the resource is free.
type Slot struct {
	FreeFrom time.Time
	FreeTo   time.Time
}

// FreeSlots returns the complement of the union of the booked slots within
// the window, clipped to the window bounds. The sequence is lazy and
// restartable; it is empty when the resource is booked throughout.
func FreeSlots(window TimeSlot, booked []TimeSlot) iter.Seq[Slot] {
	sorted := make([]TimeSlot, 0, len(booked))
	for _, b := range booked {
		if b.Overlaps(window) {
			sorted = append(sorted, b)
		}
	}
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].start.Before(sorted[j].start)
	})

	return func(yield func(Slot) bool) {
		cursor := window.Start()
		for _, b := range sorted {
			if b.start.After(cursor) {
				if !yield(Slot{FreeFrom: cursor, FreeTo: b.start}) {
					return
				}
			}
			if b.end.After(cursor) {
				cursor = b.end
			}
		}
		if cursor.Before(window.End()) {
			yield(Slot{FreeFrom: cursor, FreeTo: window.End()})
		}
	}
}

// CollectFreeSlots drains the sequence into a slice, for callers that need
// all gaps at once (JSON responses).
func CollectFreeSlots(window TimeSlot, booked []TimeSlot) []Slot {
	slots := make([]Slot, 0)
	for s := range FreeSlots(window, booked) {
		slots = append(slots, s)
	}
	return slots
}
