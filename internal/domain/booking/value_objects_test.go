//go:build unit

package booking_test

import (
	"testing"
	"time"

	"campushub/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSlot(t *testing.T, start, end time.Time) booking.TimeSlot {
	t.Helper()
	slot, err := booking.NewTimeSlot(start, end)
	require.NoError(t, err)
	return slot
}

func TestNewTimeSlot(t *testing.T) {
	base := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	testCases := []struct {
		name  string
		start time.Time
		end   time.Time
		errIs error
	}{
		{
			name:  "valid slot",
			start: base,
			end:   base.Add(2 * time.Hour),
		},
		{
			name:  "start equals end",
			start: base,
			end:   base,
			errIs: booking.ErrInvalidTimeSlot,
		},
		{
			name:  "start after end",
			start: base.Add(time.Hour),
			end:   base,
			errIs: booking.ErrInvalidTimeSlot,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			slot, err := booking.NewTimeSlot(tc.start, tc.end)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.start, slot.Start())
			assert.Equal(t, tc.end, slot.End())
			assert.Equal(t, tc.end.Sub(tc.start), slot.Duration())
		})
	}
}

func TestTimeSlot_Overlaps(t *testing.T) {
	base := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	at := func(h int) time.Time { return base.Add(time.Duration(h) * time.Hour) }

	testCases := []struct {
		name     string
		a        booking.TimeSlot
		b        booking.TimeSlot
		overlaps bool
	}{
		{
			name:     "identical slots",
			a:        mustSlot(t, at(0), at(2)),
			b:        mustSlot(t, at(0), at(2)),
			overlaps: true,
		},
		{
			name:     "partial overlap",
			a:        mustSlot(t, at(0), at(2)),
			b:        mustSlot(t, at(1), at(3)),
			overlaps: true,
		},
		{
			name:     "one contains the other",
			a:        mustSlot(t, at(0), at(4)),
			b:        mustSlot(t, at(1), at(2)),
			overlaps: true,
		},
		{
			name:     "touching endpoints do not conflict",
			a:        mustSlot(t, at(0), at(2)),
			b:        mustSlot(t, at(2), at(4)),
			overlaps: false,
		},
		{
			name:     "touching endpoints reversed order",
			a:        mustSlot(t, at(2), at(4)),
			b:        mustSlot(t, at(0), at(2)),
			overlaps: false,
		},
		{
			name:     "disjoint slots",
			a:        mustSlot(t, at(0), at(1)),
			b:        mustSlot(t, at(3), at(4)),
			overlaps: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.overlaps, tc.a.Overlaps(tc.b))
			assert.Equal(t, tc.overlaps, tc.b.Overlaps(tc.a), "overlap must be symmetric")
		})
	}
}

func TestTimeSlot_Contains(t *testing.T) {
	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)
	slot := mustSlot(t, start, end)

	assert.True(t, slot.Contains(start), "start is inclusive")
	assert.True(t, slot.Contains(start.Add(time.Hour)))
	assert.False(t, slot.Contains(end), "end is exclusive")
	assert.False(t, slot.Contains(start.Add(-time.Second)))
	assert.False(t, slot.Contains(end.Add(time.Second)))
}
