package parking

import "testing"

func carOnlyFloor(t *testing.T, number, slots int) *Floor {
	t.Helper()
	floor := NewFloor(number, []VehicleType{VehicleTypeCar})
	for i := 1; i <= slots; i++ {
		if _, err := floor.AddSlot(i, VehicleTypeCar); err != nil {
			t.Fatalf("Unexpected error adding slot: %s", err.Error())
		}
	}
	return floor
}

func TestAddFloorRejectsDisallowedClass(t *testing.T) {
	lot := NewParkingLot("Test Lot", "1 Test St", []VehicleType{VehicleTypeCar}, NearestSlotStrategy{})

	floor := NewFloor(1, []VehicleType{VehicleTypeCar, VehicleTypeTruck})
	if err := lot.AddFloor(floor); err == nil {
		t.Error("Expected error adding floor allowing a class the lot rejects")
	}

	if len(lot.Floors()) != 0 {
		t.Errorf("Expected 0 floors after rejected add, got %d", len(lot.Floors()))
	}
}

func TestAddSlotRejectsDisallowedClass(t *testing.T) {
	floor := NewFloor(1, []VehicleType{VehicleTypeCar})

	if _, err := floor.AddSlot(1, VehicleTypeBus); err == nil {
		t.Error("Expected error adding slot for a class the floor rejects")
	}
}

func TestFloorsSortedByNumber(t *testing.T) {
	lot := NewParkingLot("Test Lot", "1 Test St", []VehicleType{VehicleTypeCar}, NearestSlotStrategy{})

	for _, n := range []int{3, 1, 2} {
		if err := lot.AddFloor(carOnlyFloor(t, n, 1)); err != nil {
			t.Fatalf("Unexpected error: %s", err.Error())
		}
	}

	for i, floor := range lot.Floors() {
		if floor.Number != i+1 {
			t.Errorf("Expected floor %d at position %d, got %d", i+1, i, floor.Number)
		}
	}
}

func TestAvailableCount(t *testing.T) {
	lot := NewParkingLot("Test Lot", "1 Test St", []VehicleType{VehicleTypeCar}, NearestSlotStrategy{})
	lot.AddFloor(carOnlyFloor(t, 1, 3))
	lot.AddFloor(carOnlyFloor(t, 2, 2))

	if count := lot.AvailableCount(VehicleTypeCar); count != 5 {
		t.Errorf("Expected 5 available car slots, got %d", count)
	}

	if count := lot.AvailableCount(VehicleTypeBike); count != 0 {
		t.Errorf("Expected 0 available bike slots, got %d", count)
	}

	floor, _ := lot.FloorByNumber(1)
	floor.Slots[0].Fill()

	if count := lot.AvailableCount(VehicleTypeCar); count != 4 {
		t.Errorf("Expected 4 available car slots after filling one, got %d", count)
	}
}

func TestAvailableCountSkipsClosedFloors(t *testing.T) {
	lot := NewParkingLot("Test Lot", "1 Test St", []VehicleType{VehicleTypeCar}, NearestSlotStrategy{})
	lot.AddFloor(carOnlyFloor(t, 1, 2))
	lot.AddFloor(carOnlyFloor(t, 2, 2))

	floor, _ := lot.FloorByNumber(2)
	floor.Status = FloorStatusUnderMaintenance

	if count := lot.AvailableCount(VehicleTypeCar); count != 2 {
		t.Errorf("Expected 2 available car slots with floor 2 closed, got %d", count)
	}
}

func TestCapacityAndOccupied(t *testing.T) {
	lot := NewParkingLot("Test Lot", "1 Test St", []VehicleType{VehicleTypeCar}, NearestSlotStrategy{})
	lot.AddFloor(carOnlyFloor(t, 1, 4))

	if lot.Capacity() != 4 {
		t.Errorf("Expected capacity 4, got %d", lot.Capacity())
	}

	floor, _ := lot.FloorByNumber(1)
	floor.Slots[0].Fill()
	floor.Slots[2].Fill()

	if lot.OccupiedCount() != 2 {
		t.Errorf("Expected 2 occupied slots, got %d", lot.OccupiedCount())
	}
}

func TestFloorIsFullDerived(t *testing.T) {
	floor := carOnlyFloor(t, 1, 2)

	if floor.IsFull(VehicleTypeCar) {
		t.Error("Expected floor with free slots not to be full")
	}

	for _, slot := range floor.Slots {
		slot.Fill()
	}

	if !floor.IsFull(VehicleTypeCar) {
		t.Error("Expected floor with no free slots to be full")
	}
}
