//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// CreateTestEquipment inserts an equipment row directly, bypassing the
// admin API, and returns its id.
func CreateTestEquipment(t *testing.T, db DBLike, number int64, name, status string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	ctx := context.Background()
	_, err := db.Exec(ctx, `
		INSERT INTO equipment (id, equipment_number, name, lab_name, maintained_by, status)
		VALUES ($1, $2, $3, 'Test Lab', $4, $5)
		ON CONFLICT (equipment_number) DO NOTHING`,
		id, number, name, uuid.New(), status)
	require.NoError(t, err)

	return id
}

// CreateTestRoom inserts a room row directly and returns its id.
func CreateTestRoom(t *testing.T, db DBLike, roomID, roomType string, capacity int) uuid.UUID {
	t.Helper()

	id := uuid.New()
	ctx := context.Background()
	_, err := db.Exec(ctx, `
		INSERT INTO rooms (id, room_id, room_type, capacity)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (room_id) DO NOTHING`,
		id, roomID, roomType, capacity)
	require.NoError(t, err)

	return id
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates every table in the public schema. The statement is
// built once per process and reused by every subtest.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return nil
}
