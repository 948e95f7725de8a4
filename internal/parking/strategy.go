package parking

const (
	StrategyNearest   = "nearest"
	StrategyOptimized = "optimized"
)

// SlotSelector picks a free slot for an incoming vehicle. The boolean
// result is false when no Empty slot of the class exists in scope; the
// caller surfaces that as ErrNoSlotAvailable. Selection must run inside
// the service's critical section so the returned slot is still Empty
// when it gets marked Filled.
type SlotSelector interface {
	Name() string
	SelectSlot(lot *ParkingLot, vehicleType VehicleType) (*Slot, bool)
}

// NearestSlotStrategy scans floors in ascending floor-number order and
// slots in ascending slot-number order, returning the first Empty slot
// of the requested class.
type NearestSlotStrategy struct{}

func (NearestSlotStrategy) Name() string { return StrategyNearest }

func (NearestSlotStrategy) SelectSlot(lot *ParkingLot, vehicleType VehicleType) (*Slot, bool) {
	for _, floor := range lot.Floors() {
		if floor.Status != FloorStatusOpen || !floor.Allows(vehicleType) {
			continue
		}
		for _, slot := range floor.Slots {
			if slot.VehicleType == vehicleType && slot.IsFree() {
				return slot, true
			}
		}
	}
	return nil, false
}

// OptimizedSlotStrategy prefers slots farther from the entrance,
// scanning floors and slots in descending number order to spread load
// instead of packing the closest slots first.
type OptimizedSlotStrategy struct{}

func (OptimizedSlotStrategy) Name() string { return StrategyOptimized }

func (OptimizedSlotStrategy) SelectSlot(lot *ParkingLot, vehicleType VehicleType) (*Slot, bool) {
	floors := lot.Floors()
	for i := len(floors) - 1; i >= 0; i-- {
		floor := floors[i]
		if floor.Status != FloorStatusOpen || !floor.Allows(vehicleType) {
			continue
		}
		for j := len(floor.Slots) - 1; j >= 0; j-- {
			slot := floor.Slots[j]
			if slot.VehicleType == vehicleType && slot.IsFree() {
				return slot, true
			}
		}
	}
	return nil, false
}

// StrategyByName resolves a configured strategy name, defaulting to
// nearest for unrecognized values.
func StrategyByName(name string) SlotSelector {
	if name == StrategyOptimized {
		return OptimizedSlotStrategy{}
	}
	return NearestSlotStrategy{}
}
