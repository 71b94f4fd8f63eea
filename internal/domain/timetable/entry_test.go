//go:build unit

package timetable_test

import (
	"testing"
	"time"

	"campushub/internal/domain/timetable"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClockTime(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  int
		errIs error
	}{
		{name: "midnight", input: "00:00", want: 0},
		{name: "morning", input: "09:30", want: 570},
		{name: "last minute of the day", input: "23:59", want: 1439},
		{name: "single digit hour", input: "9:05", want: 545},
		{name: "hour out of range", input: "24:00", errIs: timetable.ErrInvalidClockTime},
		{name: "minute out of range", input: "10:60", errIs: timetable.ErrInvalidClockTime},
		{name: "not a clock time", input: "lunch", errIs: timetable.ErrInvalidClockTime},
		{name: "empty string", input: "", errIs: timetable.ErrInvalidClockTime},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := timetable.ParseClockTime(tc.input)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFormatClockTime(t *testing.T) {
	assert.Equal(t, "00:00", timetable.FormatClockTime(0))
	assert.Equal(t, "09:05", timetable.FormatClockTime(545))
	assert.Equal(t, "23:59", timetable.FormatClockTime(1439))
}

func TestNewEntry(t *testing.T) {
	testCases := []struct {
		name  string
		start string
		end   string
		errIs error
	}{
		{name: "valid entry", start: "09:00", end: "10:30"},
		{name: "start equals end", start: "09:00", end: "09:00", errIs: timetable.ErrInvalidTimeRange},
		{name: "start after end", start: "11:00", end: "09:00", errIs: timetable.ErrInvalidTimeRange},
		{name: "invalid start", start: "9am", end: "10:00", errIs: timetable.ErrInvalidClockTime},
		{name: "invalid end", start: "09:00", end: "25:00", errIs: timetable.ErrInvalidClockTime},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			entry, err := timetable.NewEntry("LH-101", time.Monday, tc.start, tc.end, "Algorithms")
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "LH-101", entry.RoomID())
			assert.Equal(t, time.Monday, entry.DayOfWeek())
			assert.Equal(t, 540, entry.StartMinutes())
			assert.Equal(t, 630, entry.EndMinutes())
			assert.Equal(t, "Algorithms", entry.Subject())
		})
	}
}

func TestEntry_ClashesWith(t *testing.T) {
	entry, err := timetable.NewEntry("LH-101", time.Monday, "09:00", "11:00", "Algorithms")
	require.NoError(t, err)

	testCases := []struct {
		name  string
		day   time.Weekday
		start int
		end   int
		clash bool
	}{
		{name: "same window same day", day: time.Monday, start: 540, end: 660, clash: true},
		{name: "partial overlap", day: time.Monday, start: 600, end: 720, clash: true},
		{name: "request inside entry", day: time.Monday, start: 570, end: 600, clash: true},
		{name: "touching end does not clash", day: time.Monday, start: 660, end: 720, clash: false},
		{name: "touching start does not clash", day: time.Monday, start: 480, end: 540, clash: false},
		{name: "different day never clashes", day: time.Tuesday, start: 540, end: 660, clash: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.clash, entry.ClashesWith(tc.day, tc.start, tc.end))
		})
	}
}

func TestAnyClash(t *testing.T) {
	monday, err := timetable.NewEntry("LH-101", time.Monday, "09:00", "10:00", "Algorithms")
	require.NoError(t, err)
	friday, err := timetable.NewEntry("LH-101", time.Friday, "14:00", "16:00", "Databases")
	require.NoError(t, err)
	entries := []*timetable.Entry{monday, friday}

	assert.True(t, timetable.AnyClash(entries, time.Friday, 900, 960))
	assert.False(t, timetable.AnyClash(entries, time.Wednesday, 540, 600))
	assert.False(t, timetable.AnyClash(nil, time.Monday, 540, 600))
}

func TestMinutesOfDay(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	assert.Equal(t, 0, timetable.MinutesOfDay(time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 570, timetable.MinutesOfDay(time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)))
	// Wall clock minutes, not UTC minutes.
	assert.Equal(t, 570, timetable.MinutesOfDay(time.Date(2026, 3, 2, 9, 30, 0, 0, loc)))
}
