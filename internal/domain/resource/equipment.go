package resource

import (
	"errors"

	"github.com/google/uuid"
)

var ErrInvalidEquipmentStatus = errors.New("invalid equipment status")

type EquipmentStatus string

const (
	EquipmentAvailable   EquipmentStatus = "available"
	EquipmentInUse       EquipmentStatus = "in-use"
	EquipmentMaintenance EquipmentStatus = "maintenance"
)

func (s EquipmentStatus) IsValid() bool {
	switch s {
	case EquipmentAvailable, EquipmentInUse, EquipmentMaintenance:
		return true
	default:
		return false
	}
}

// Equipment's status is a materialized view over its active bookings,
// reconciled by the sweeper. Maintenance is a manual override the sweeper
// never touches.
type Equipment struct {
	id              uuid.UUID
	equipmentNumber int64
	name            string
	description     string
	labName         string
	location        string
	maintainedBy    uuid.UUID
	status          EquipmentStatus
}

func NewEquipment(equipmentNumber int64, name, description, labName, location string, maintainedBy uuid.UUID) *Equipment {
	return &Equipment{
		id:              uuid.New(),
		equipmentNumber: equipmentNumber,
		name:            name,
		description:     description,
		labName:         labName,
		location:        location,
		maintainedBy:    maintainedBy,
		status:          EquipmentAvailable,
	}
}

func ReconstructEquipment(
	id uuid.UUID,
	equipmentNumber int64,
	name, description, labName, location string,
	maintainedBy uuid.UUID,
	status EquipmentStatus,
) *Equipment {
	return &Equipment{
		id:              id,
		equipmentNumber: equipmentNumber,
		name:            name,
		description:     description,
		labName:         labName,
		location:        location,
		maintainedBy:    maintainedBy,
		status:          status,
	}
}

func (e *Equipment) IsBookable() bool {
	return e.status != EquipmentMaintenance
}

func (e *Equipment) ID() uuid.UUID           { return e.id }
func (e *Equipment) EquipmentNumber() int64  { return e.equipmentNumber }
func (e *Equipment) Name() string            { return e.name }
func (e *Equipment) Description() string     { return e.description }
func (e *Equipment) LabName() string         { return e.labName }
func (e *Equipment) Location() string        { return e.location }
func (e *Equipment) MaintainedBy() uuid.UUID { return e.maintainedBy }
func (e *Equipment) Status() EquipmentStatus { return e.status }
