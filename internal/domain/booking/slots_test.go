//go:build unit

package booking_test

import (
	"testing"
	"time"

	"campushub/internal/domain/booking"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestCollectFreeSlots(t *testing.T) {
	base := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	at := func(h int) time.Time { return base.Add(time.Duration(h) * time.Hour) }
	window := mustSlot(t, at(0), at(10))

	testCases := []struct {
		name   string
		booked []booking.TimeSlot
		want   []booking.Slot
	}{
		{
			name:   "no bookings yields whole window",
			booked: nil,
			want:   []booking.Slot{{FreeFrom: at(0), FreeTo: at(10)}},
		},
		{
			name:   "interior booking splits the window",
			booked: []booking.TimeSlot{mustSlot(t, at(3), at(5))},
			want: []booking.Slot{
				{FreeFrom: at(0), FreeTo: at(3)},
				{FreeFrom: at(5), FreeTo: at(10)},
			},
		},
		{
			name: "bookings out of order are merged left to right",
			booked: []booking.TimeSlot{
				mustSlot(t, at(6), at(7)),
				mustSlot(t, at(1), at(2)),
			},
			want: []booking.Slot{
				{FreeFrom: at(0), FreeTo: at(1)},
				{FreeFrom: at(2), FreeTo: at(6)},
				{FreeFrom: at(7), FreeTo: at(10)},
			},
		},
		{
			name: "adjacent bookings leave no gap between them",
			booked: []booking.TimeSlot{
				mustSlot(t, at(2), at(4)),
				mustSlot(t, at(4), at(6)),
			},
			want: []booking.Slot{
				{FreeFrom: at(0), FreeTo: at(2)},
				{FreeFrom: at(6), FreeTo: at(10)},
			},
		},
		{
			name: "overlapping bookings collapse into one busy span",
			booked: []booking.TimeSlot{
				mustSlot(t, at(1), at(4)),
				mustSlot(t, at(3), at(6)),
			},
			want: []booking.Slot{
				{FreeFrom: at(0), FreeTo: at(1)},
				{FreeFrom: at(6), FreeTo: at(10)},
			},
		},
		{
			name:   "booking spanning the whole window yields nothing",
			booked: []booking.TimeSlot{mustSlot(t, at(-1), at(11))},
			want:   []booking.Slot{},
		},
		{
			name: "bookings clipped to the window bounds",
			booked: []booking.TimeSlot{
				mustSlot(t, at(-2), at(1)),
				mustSlot(t, at(9), at(12)),
			},
			want: []booking.Slot{{FreeFrom: at(1), FreeTo: at(9)}},
		},
		{
			name:   "booking outside the window is ignored",
			booked: []booking.TimeSlot{mustSlot(t, at(12), at(14))},
			want:   []booking.Slot{{FreeFrom: at(0), FreeTo: at(10)}},
		},
		{
			name:   "booking touching the window start is not an overlap",
			booked: []booking.TimeSlot{mustSlot(t, at(-2), at(0))},
			want:   []booking.Slot{{FreeFrom: at(0), FreeTo: at(10)}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := booking.CollectFreeSlots(window, tc.booked)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("free slots mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFreeSlots_LazySequence(t *testing.T) {
	base := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	at := func(h int) time.Time { return base.Add(time.Duration(h) * time.Hour) }
	window := mustSlot(t, at(0), at(10))
	booked := []booking.TimeSlot{
		mustSlot(t, at(1), at(2)),
		mustSlot(t, at(4), at(5)),
	}

	seq := booking.FreeSlots(window, booked)

	// Early break stops the producer.
	var first []booking.Slot
	for s := range seq {
		first = append(first, s)
		break
	}
	assert.Len(t, first, 1)
	assert.Equal(t, at(0), first[0].FreeFrom)

	// The sequence is restartable and yields the full set again.
	var all []booking.Slot
	for s := range seq {
		all = append(all, s)
	}
	assert.Len(t, all, 3)
}
