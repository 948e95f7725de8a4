package parking

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
)

type LotStatus string

const (
	LotStatusOpen             LotStatus = "OPEN"
	LotStatusClosed           LotStatus = "CLOSED"
	LotStatusFull             LotStatus = "FULL"
	LotStatusUnderMaintenance LotStatus = "UNDER_MAINTENANCE"
)

// ParkingLot owns its floors and gates and carries the active slot
// selection strategy. It is not safe for concurrent mutation on its
// own; TicketService serializes access.
type ParkingLot struct {
	ID              uuid.UUID
	Name            string
	Address         string
	Status          LotStatus
	AllowedVehicles []VehicleType
	floors          []*Floor
	gates           []*Gate
	strategy        SlotSelector
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func NewParkingLot(name, address string, allowedVehicles []VehicleType, strategy SlotSelector) *ParkingLot {
	now := time.Now()
	return &ParkingLot{
		ID:              uuid.New(),
		Name:            name,
		Address:         address,
		Status:          LotStatusOpen,
		AllowedVehicles: allowedVehicles,
		strategy:        strategy,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func (pl *ParkingLot) Allows(vehicleType VehicleType) bool {
	for _, vt := range pl.AllowedVehicles {
		if vt == vehicleType {
			return true
		}
	}
	return false
}

// AddFloor rejects floors whose allowed classes are not a subset of the
// lot's. Floor number uniqueness is a caller obligation.
func (pl *ParkingLot) AddFloor(floor *Floor) error {
	for _, vt := range floor.AllowedVehicles {
		if !pl.Allows(vt) {
			return fmt.Errorf("lot %s does not allow vehicle type %s", pl.Name, vt)
		}
	}
	pl.floors = append(pl.floors, floor)
	sort.Slice(pl.floors, func(i, j int) bool {
		return pl.floors[i].Number < pl.floors[j].Number
	})
	pl.UpdatedAt = time.Now()
	return nil
}

func (pl *ParkingLot) AddGate(gate *Gate) {
	pl.gates = append(pl.gates, gate)
	pl.UpdatedAt = time.Now()
}

// Floors returns the floors in ascending floor-number order.
func (pl *ParkingLot) Floors() []*Floor {
	return pl.floors
}

func (pl *ParkingLot) Gates() []*Gate {
	return pl.gates
}

func (pl *ParkingLot) FloorByNumber(number int) (*Floor, bool) {
	for _, floor := range pl.floors {
		if floor.Number == number {
			return floor, true
		}
	}
	return nil, false
}

// Capacity is the total slot count across all floors.
func (pl *ParkingLot) Capacity() int {
	total := 0
	for _, floor := range pl.floors {
		total += len(floor.Slots)
	}
	return total
}

// AvailableCount counts Empty slots of the class across Open floors.
func (pl *ParkingLot) AvailableCount(vehicleType VehicleType) int {
	count := 0
	for _, floor := range pl.floors {
		if floor.Status != FloorStatusOpen {
			continue
		}
		count += floor.FreeSlotCount(vehicleType)
	}
	return count
}

func (pl *ParkingLot) OccupiedCount() int {
	count := 0
	for _, floor := range pl.floors {
		for _, slot := range floor.Slots {
			if slot.Status == SlotStatusFilled {
				count++
			}
		}
	}
	return count
}

func (pl *ParkingLot) Strategy() SlotSelector {
	return pl.strategy
}

// SetStrategy swaps the allocation strategy. Takes effect on the next
// allocation call; already-issued tickets are untouched.
func (pl *ParkingLot) SetStrategy(strategy SlotSelector) {
	pl.strategy = strategy
	pl.UpdatedAt = time.Now()
}
