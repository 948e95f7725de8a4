package parking

import (
	"fmt"
	"sort"
	"time"
)

type FloorStatus string

const (
	FloorStatusOpen             FloorStatus = "OPEN"
	FloorStatusClosed           FloorStatus = "CLOSED"
	FloorStatusFull             FloorStatus = "FULL"
	FloorStatusUnderMaintenance FloorStatus = "UNDER_MAINTENANCE"
)

// Floor exclusively owns its slots. Callers adding slots are responsible
// for keeping slot numbers unique within the floor.
type Floor struct {
	Number          int
	Status          FloorStatus
	AllowedVehicles []VehicleType
	Slots           []*Slot
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func NewFloor(number int, allowedVehicles []VehicleType) *Floor {
	now := time.Now()
	return &Floor{
		Number:          number,
		Status:          FloorStatusOpen,
		AllowedVehicles: allowedVehicles,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func (f *Floor) Allows(vehicleType VehicleType) bool {
	for _, vt := range f.AllowedVehicles {
		if vt == vehicleType {
			return true
		}
	}
	return false
}

func (f *Floor) AddSlot(number int, vehicleType VehicleType) (*Slot, error) {
	if !f.Allows(vehicleType) {
		return nil, fmt.Errorf("floor %d does not allow vehicle type %s", f.Number, vehicleType)
	}
	slot := NewSlot(number, f.Number, vehicleType)
	f.Slots = append(f.Slots, slot)
	sort.Slice(f.Slots, func(i, j int) bool {
		return f.Slots[i].Number < f.Slots[j].Number
	})
	f.UpdatedAt = time.Now()
	return slot, nil
}

func (f *Floor) SlotByNumber(number int) (*Slot, bool) {
	for _, slot := range f.Slots {
		if slot.Number == number {
			return slot, true
		}
	}
	return nil, false
}

func (f *Floor) FreeSlotCount(vehicleType VehicleType) int {
	count := 0
	for _, slot := range f.Slots {
		if slot.VehicleType == vehicleType && slot.IsFree() {
			count++
		}
	}
	return count
}

// IsFull is derived from slot state, never stored on the floor.
func (f *Floor) IsFull(vehicleType VehicleType) bool {
	return f.FreeSlotCount(vehicleType) == 0
}
