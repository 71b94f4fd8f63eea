package repository

import (
	"context"
	"time"

	"campushub/internal/domain/resource"
	"campushub/internal/infra"
	"campushub/internal/infra/db"

	"github.com/google/uuid"
)

type EquipmentRepository struct {
	db db.DBTX
}

func NewEquipmentRepository(pool db.DBTX) *EquipmentRepository {
	return &EquipmentRepository{db: pool}
}

const createEquipmentSQL = `
INSERT INTO equipment (id, equipment_number, name, description, lab_name, location, maintained_by, status)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

func (r *EquipmentRepository) Create(ctx context.Context, tx db.DBTX, e *resource.Equipment) error {
	if tx == nil {
		tx = r.db
	}

	_, err := tx.Exec(ctx, createEquipmentSQL,
		e.ID(), e.EquipmentNumber(), e.Name(), e.Description(), e.LabName(), e.Location(), e.MaintainedBy(), e.Status())
	if err != nil {
		return infra.WrapRepoErr("failed to create equipment", err)
	}
	return nil
}

const findEquipmentByNumberSQL = `
SELECT id, equipment_number, name, description, lab_name, location, maintained_by, status
FROM equipment
WHERE equipment_number = $1`

func (r *EquipmentRepository) FindByNumber(ctx context.Context, number int64) (*resource.Equipment, error) {
	return scanEquipment(r.db.QueryRow(ctx, findEquipmentByNumberSQL, number))
}

const nextEquipmentNumberSQL = `
SELECT COALESCE(MAX(equipment_number), 0) + 1 FROM equipment`

func (r *EquipmentRepository) NextEquipmentNumber(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, nextEquipmentNumberSQL).Scan(&n); err != nil {
		return 0, infra.WrapRepoErr("failed to allocate equipment number", err)
	}
	return n, nil
}

const updateEquipmentStatusSQL = `
UPDATE equipment SET status = $2, updated_at = now() WHERE id = $1`

func (r *EquipmentRepository) UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status resource.EquipmentStatus) error {
	if tx == nil {
		tx = r.db
	}

	tag, err := tx.Exec(ctx, updateEquipmentStatusSQL, id, status)
	if err != nil {
		return infra.WrapRepoErr("failed to update equipment status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("equipment not found", nil, infra.KindNotFound)
	}
	return nil
}

// Sweeper pass: flip available equipment to in-use while an active booking
// contains now. Maintenance is never touched.
const markEquipmentInUseSQL = `
UPDATE equipment e
SET status = 'in-use', updated_at = now()
WHERE e.status = 'available'
  AND EXISTS (
      SELECT 1 FROM equipment_bookings b
      WHERE b.equipment_id = e.id
        AND b.status = 'active'
        AND b.start_time <= $1
        AND b.end_time > $1
  )`

func (r *EquipmentRepository) MarkInUse(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, markEquipmentInUseSQL, now)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to mark equipment in-use", err)
	}
	return tag.RowsAffected(), nil
}

// Sweeper pass: release equipment whose bookings just completed, unless
// another active booking still contains now.
const releaseIdleEquipmentSQL = `
UPDATE equipment e
SET status = 'available', updated_at = now()
WHERE e.id = ANY($1)
  AND e.status = 'in-use'
  AND NOT EXISTS (
      SELECT 1 FROM equipment_bookings b
      WHERE b.equipment_id = e.id
        AND b.status = 'active'
        AND b.start_time <= $2
        AND b.end_time > $2
  )`

func (r *EquipmentRepository) ReleaseIdle(ctx context.Context, ids []uuid.UUID, now time.Time) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	tag, err := r.db.Exec(ctx, releaseIdleEquipmentSQL, ids, now)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to release idle equipment", err)
	}
	return tag.RowsAffected(), nil
}

const listEquipmentSQL = `
SELECT id, equipment_number, name, description, lab_name, location, maintained_by, status
FROM equipment
ORDER BY equipment_number`

func (r *EquipmentRepository) List(ctx context.Context) ([]*resource.Equipment, error) {
	rows, err := r.db.Query(ctx, listEquipmentSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list equipment", err)
	}
	defer rows.Close()

	var result []*resource.Equipment
	for rows.Next() {
		e, err := scanEquipment(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate equipment rows", err)
	}
	return result, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEquipment(row rowScanner) (*resource.Equipment, error) {
	var (
		id              uuid.UUID
		equipmentNumber int64
		name            string
		description     string
		labName         string
		location        string
		maintainedBy    uuid.UUID
		status          string
	)
	if err := row.Scan(&id, &equipmentNumber, &name, &description, &labName, &location, &maintainedBy, &status); err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("equipment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan equipment", err)
	}

	return resource.ReconstructEquipment(
		id, equipmentNumber, name, description, labName, location, maintainedBy, resource.EquipmentStatus(status),
	), nil
}
