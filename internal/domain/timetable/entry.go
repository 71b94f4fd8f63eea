package timetable

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidClockTime = errors.New("clock time must be HH:MM")
	ErrInvalidTimeRange = errors.New("start must be before end")
)

// Entry is a fixed weekly recurring occupancy of a room. It is a static
// conflict source for room bookings, distinct from dynamic reservations.
type Entry struct {
	id           uuid.UUID
	roomID       string
	dayOfWeek    time.Weekday
	startMinutes int
	endMinutes   int
	subject      string
}

func NewEntry(roomID string, day time.Weekday, startHHMM, endHHMM, subject string) (*Entry, error) {
	start, err := ParseClockTime(startHHMM)
	if err != nil {
		return nil, err
	}
	end, err := ParseClockTime(endHHMM)
	if err != nil {
		return nil, err
	}
	if start >= end {
		return nil, ErrInvalidTimeRange
	}

	return &Entry{
		id:           uuid.New(),
		roomID:       roomID,
		dayOfWeek:    day,
		startMinutes: start,
		endMinutes:   end,
		subject:      subject,
	}, nil
}

func ReconstructEntry(id uuid.UUID, roomID string, day time.Weekday, startMinutes, endMinutes int, subject string) *Entry {
	return &Entry{
		id:           id,
		roomID:       roomID,
		dayOfWeek:    day,
		startMinutes: startMinutes,
		endMinutes:   endMinutes,
		subject:      subject,
	}
}

// ClashesWith tests the entry against a requested occupancy on the same
// weekday, in minutes since midnight, with the half-open overlap rule.
func (e *Entry) ClashesWith(day time.Weekday, startMinutes, endMinutes int) bool {
	if e.dayOfWeek != day {
		return false
	}
	return startMinutes < e.endMinutes && endMinutes > e.startMinutes
}

func (e *Entry) ID() uuid.UUID          { return e.id }
func (e *Entry) RoomID() string         { return e.roomID }
func (e *Entry) DayOfWeek() time.Weekday { return e.dayOfWeek }
func (e *Entry) StartMinutes() int      { return e.startMinutes }
func (e *Entry) EndMinutes() int        { return e.endMinutes }
func (e *Entry) Subject() string        { return e.subject }

// ParseClockTime converts "HH:MM" to minutes since midnight.
func ParseClockTime(s string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, ErrInvalidClockTime
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, ErrInvalidClockTime
	}
	return h*60 + m, nil
}

// FormatClockTime renders minutes since midnight back to "HH:MM".
func FormatClockTime(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// MinutesOfDay projects an instant onto its wall-clock minute offset.
// Intervals are evaluated within-day only; multi-day spans are not supported
// by the timetable check.
func MinutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// AnyClash reports whether the requested occupancy clashes with any entry.
func AnyClash(entries []*Entry, day time.Weekday, startMinutes, endMinutes int) bool {
	for _, e := range entries {
		if e.ClashesWith(day, startMinutes, endMinutes) {
			return true
		}
	}
	return false
}
