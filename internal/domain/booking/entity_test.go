//go:build unit

package booking_test

import (
	"testing"
	"time"

	"campushub/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBooking(t *testing.T) {
	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	slot := mustSlot(t, start, start.Add(2*time.Hour))
	userID := uuid.New()
	equipmentID := uuid.New()

	b := booking.NewBooking(42, booking.KindEquipment, equipmentID.String(), userID, slot)
	require.NotNil(t, b)

	assert.NotEqual(t, uuid.Nil, b.ID())
	assert.Equal(t, int64(42), b.Number())
	assert.Equal(t, booking.KindEquipment, b.Kind())
	assert.Equal(t, equipmentID.String(), b.ResourceKey())
	assert.Equal(t, userID, b.BookedBy())
	assert.Equal(t, booking.StatusActive, b.Status())
	assert.True(t, b.IsActive())
	assert.True(t, b.IsOwnedBy(userID))
	assert.False(t, b.IsOwnedBy(uuid.New()))
}

func TestBooking_Lifecycle(t *testing.T) {
	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)
	slot := mustSlot(t, start, end)
	b := booking.NewBooking(1, booking.KindRoom, "LH-101", uuid.New(), slot)

	t.Run("in progress only inside the slot", func(t *testing.T) {
		assert.False(t, b.InProgressAt(start.Add(-time.Minute)))
		assert.True(t, b.InProgressAt(start))
		assert.True(t, b.InProgressAt(start.Add(time.Hour)))
		assert.False(t, b.InProgressAt(end), "slot end is exclusive")
	})

	t.Run("has ended at and after slot end", func(t *testing.T) {
		assert.False(t, b.HasEnded(start))
		assert.False(t, b.HasEnded(end.Add(-time.Second)))
		assert.True(t, b.HasEnded(end))
		assert.True(t, b.HasEnded(end.Add(time.Hour)))
	})

	t.Run("non-active booking is never in progress", func(t *testing.T) {
		cancelled := booking.ReconstructBooking(
			b.ID(), b.Number(), b.Kind(), b.ResourceKey(), b.BookedBy(),
			slot, booking.StatusCancelled, start, start,
		)
		assert.False(t, cancelled.IsActive())
		assert.False(t, cancelled.InProgressAt(start.Add(time.Hour)))
	})
}

func TestStatus_IsValid(t *testing.T) {
	valid := []booking.Status{
		booking.StatusActive,
		booking.StatusCancelled,
		booking.StatusCompleted,
		booking.StatusExpired,
	}
	for _, s := range valid {
		assert.True(t, s.IsValid(), string(s))
	}

	assert.False(t, booking.Status("pending").IsValid())
	assert.False(t, booking.Status("").IsValid())
	assert.False(t, booking.Status("ACTIVE").IsValid(), "statuses are case sensitive")
}
