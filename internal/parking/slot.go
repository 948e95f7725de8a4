package parking

import "time"

type SlotStatus string

const (
	SlotStatusEmpty    SlotStatus = "EMPTY"
	SlotStatusFilled   SlotStatus = "FILLED"
	SlotStatusReserved SlotStatus = "RESERVED"
	SlotStatusBlocked  SlotStatus = "BLOCKED"
)

// Slot is a single space holding one vehicle of a given class.
// FloorNumber is a back-reference key; the owning Floor holds the slot.
type Slot struct {
	Number      int
	VehicleType VehicleType
	Status      SlotStatus
	FloorNumber int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewSlot(number, floorNumber int, vehicleType VehicleType) *Slot {
	now := time.Now()
	return &Slot{
		Number:      number,
		VehicleType: vehicleType,
		Status:      SlotStatusEmpty,
		FloorNumber: floorNumber,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (s *Slot) IsFree() bool {
	return s.Status == SlotStatusEmpty
}

func (s *Slot) Fill() {
	s.Status = SlotStatusFilled
	s.UpdatedAt = time.Now()
}

func (s *Slot) Release() {
	s.Status = SlotStatusEmpty
	s.UpdatedAt = time.Now()
}
