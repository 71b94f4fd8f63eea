package repository

import (
	"context"
	"time"

	"campushub/internal/domain/timetable"
	"campushub/internal/infra"
	"campushub/internal/infra/db"

	"github.com/google/uuid"
)

type TimetableRepository struct {
	db db.DBTX
}

func NewTimetableRepository(pool db.DBTX) *TimetableRepository {
	return &TimetableRepository{db: pool}
}

const createTimetableEntrySQL = `
INSERT INTO timetable_entries (id, room_id, day_of_week, start_minutes, end_minutes, subject)
VALUES ($1, $2, $3, $4, $5, $6)`

func (r *TimetableRepository) Create(ctx context.Context, e *timetable.Entry) error {
	_, err := r.db.Exec(ctx, createTimetableEntrySQL,
		e.ID(), e.RoomID(), int(e.DayOfWeek()), e.StartMinutes(), e.EndMinutes(), e.Subject())
	if err != nil {
		return infra.WrapRepoErr("failed to create timetable entry", err)
	}
	return nil
}

const listTimetableForRoomDaySQL = `
SELECT id, room_id, day_of_week, start_minutes, end_minutes, subject
FROM timetable_entries
WHERE room_id = $1 AND day_of_week = $2
ORDER BY start_minutes`

func (r *TimetableRepository) ListForRoomDay(ctx context.Context, roomID string, day time.Weekday) ([]*timetable.Entry, error) {
	rows, err := r.db.Query(ctx, listTimetableForRoomDaySQL, roomID, int(day))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list timetable entries", err)
	}
	defer rows.Close()

	var entries []*timetable.Entry
	for rows.Next() {
		var (
			id           uuid.UUID
			rID          string
			dayOfWeek    int
			startMinutes int
			endMinutes   int
			subject      string
		)
		if err := rows.Scan(&id, &rID, &dayOfWeek, &startMinutes, &endMinutes, &subject); err != nil {
			return nil, infra.WrapRepoErr("failed to scan timetable entry", err)
		}
		entries = append(entries, timetable.ReconstructEntry(id, rID, time.Weekday(dayOfWeek), startMinutes, endMinutes, subject))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate timetable entries", err)
	}
	return entries, nil
}

const listTimetableForRoomSQL = `
SELECT id, room_id, day_of_week, start_minutes, end_minutes, subject
FROM timetable_entries
WHERE room_id = $1
ORDER BY day_of_week, start_minutes`

func (r *TimetableRepository) ListForRoom(ctx context.Context, roomID string) ([]*timetable.Entry, error) {
	rows, err := r.db.Query(ctx, listTimetableForRoomSQL, roomID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list timetable entries", err)
	}
	defer rows.Close()

	var entries []*timetable.Entry
	for rows.Next() {
		var (
			id           uuid.UUID
			rID          string
			dayOfWeek    int
			startMinutes int
			endMinutes   int
			subject      string
		)
		if err := rows.Scan(&id, &rID, &dayOfWeek, &startMinutes, &endMinutes, &subject); err != nil {
			return nil, infra.WrapRepoErr("failed to scan timetable entry", err)
		}
		entries = append(entries, timetable.ReconstructEntry(id, rID, time.Weekday(dayOfWeek), startMinutes, endMinutes, subject))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate timetable entries", err)
	}
	return entries, nil
}
