package parking

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type TicketStatus string

const (
	TicketStatusActive TicketStatus = "ACTIVE"
	TicketStatusClosed TicketStatus = "CLOSED"
)

// Ticket records one vehicle's stay. ExitTime stays zero while the
// ticket is Active; Close is the only transition and is terminal.
type Ticket struct {
	ID          uuid.UUID
	Number      string
	Status      TicketStatus
	EntryTime   time.Time
	ExitTime    time.Time
	Vehicle     *Vehicle
	FloorNumber int
	SlotNumber  int
	GateID      uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewTicket(vehicle *Vehicle, slot *Slot, gateID uuid.UUID, entryTime time.Time) *Ticket {
	id := uuid.New()
	return &Ticket{
		ID:          id,
		Number:      fmt.Sprintf("TKT-%s", id.String()[:8]),
		Status:      TicketStatusActive,
		EntryTime:   entryTime,
		Vehicle:     vehicle,
		FloorNumber: slot.FloorNumber,
		SlotNumber:  slot.Number,
		GateID:      gateID,
		CreatedAt:   entryTime,
		UpdatedAt:   entryTime,
	}
}

func (t *Ticket) IsActive() bool {
	return t.Status == TicketStatusActive
}

func (t *Ticket) Close(exitTime time.Time) {
	t.Status = TicketStatusClosed
	t.ExitTime = exitTime
	t.UpdatedAt = exitTime
}
