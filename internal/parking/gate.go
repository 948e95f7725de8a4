package parking

import (
	"time"

	"github.com/google/uuid"
)

type GateType string

const (
	GateTypeEntry GateType = "ENTRY"
	GateTypeExit  GateType = "EXIT"
)

type GateStatus string

const (
	GateStatusOpen             GateStatus = "OPEN"
	GateStatusClosed           GateStatus = "CLOSED"
	GateStatusUnderMaintenance GateStatus = "UNDER_MAINTENANCE"
)

// Gate resolves which lot a ticket request targets. LotID is a
// back-reference key, not an owning link.
type Gate struct {
	ID        uuid.UUID
	Number    int
	Type      GateType
	Status    GateStatus
	LotID     uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewGate(number int, gateType GateType, lotID uuid.UUID) *Gate {
	now := time.Now()
	return &Gate{
		ID:        uuid.New(),
		Number:    number,
		Type:      gateType,
		Status:    GateStatusOpen,
		LotID:     lotID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
