package parking

import "testing"

func multiFloorLot(t *testing.T) *ParkingLot {
	t.Helper()
	allowed := []VehicleType{VehicleTypeBike, VehicleTypeCar}
	lot := NewParkingLot("Test Lot", "1 Test St", allowed, NearestSlotStrategy{})

	for floorNumber := 1; floorNumber <= 2; floorNumber++ {
		floor := NewFloor(floorNumber, allowed)
		floor.AddSlot(1, VehicleTypeBike)
		floor.AddSlot(2, VehicleTypeCar)
		floor.AddSlot(3, VehicleTypeCar)
		if err := lot.AddFloor(floor); err != nil {
			t.Fatalf("Unexpected error: %s", err.Error())
		}
	}
	return lot
}

func TestNearestStrategyPicksLowestFloorAndSlot(t *testing.T) {
	lot := multiFloorLot(t)

	slot, found := NearestSlotStrategy{}.SelectSlot(lot, VehicleTypeCar)
	if !found {
		t.Fatal("Expected a slot to be found")
	}
	if slot.FloorNumber != 1 || slot.Number != 2 {
		t.Errorf("Expected floor 1 slot 2, got floor %d slot %d", slot.FloorNumber, slot.Number)
	}
}

func TestNearestStrategySkipsFilledSlots(t *testing.T) {
	lot := multiFloorLot(t)

	floor, _ := lot.FloorByNumber(1)
	first, _ := floor.SlotByNumber(2)
	first.Fill()

	slot, found := NearestSlotStrategy{}.SelectSlot(lot, VehicleTypeCar)
	if !found {
		t.Fatal("Expected a slot to be found")
	}
	if slot.FloorNumber != 1 || slot.Number != 3 {
		t.Errorf("Expected floor 1 slot 3, got floor %d slot %d", slot.FloorNumber, slot.Number)
	}
}

func TestOptimizedStrategyPicksHighestFloorAndSlot(t *testing.T) {
	lot := multiFloorLot(t)

	slot, found := OptimizedSlotStrategy{}.SelectSlot(lot, VehicleTypeCar)
	if !found {
		t.Fatal("Expected a slot to be found")
	}
	if slot.FloorNumber != 2 || slot.Number != 3 {
		t.Errorf("Expected floor 2 slot 3, got floor %d slot %d", slot.FloorNumber, slot.Number)
	}
}

func TestOptimizedNeverNearerThanNearest(t *testing.T) {
	lot := multiFloorLot(t)

	nearest, _ := NearestSlotStrategy{}.SelectSlot(lot, VehicleTypeCar)
	optimized, _ := OptimizedSlotStrategy{}.SelectSlot(lot, VehicleTypeCar)

	if optimized.FloorNumber < nearest.FloorNumber {
		t.Errorf("Optimized picked floor %d nearer than nearest's floor %d", optimized.FloorNumber, nearest.FloorNumber)
	}
	if optimized.FloorNumber == nearest.FloorNumber && optimized.Number < nearest.Number {
		t.Errorf("Optimized picked slot %d nearer than nearest's slot %d", optimized.Number, nearest.Number)
	}
}

func TestStrategiesSkipClosedFloors(t *testing.T) {
	lot := multiFloorLot(t)

	floor, _ := lot.FloorByNumber(2)
	floor.Status = FloorStatusClosed

	slot, found := OptimizedSlotStrategy{}.SelectSlot(lot, VehicleTypeCar)
	if !found {
		t.Fatal("Expected a slot to be found")
	}
	if slot.FloorNumber != 1 {
		t.Errorf("Expected floor 1 with floor 2 closed, got floor %d", slot.FloorNumber)
	}
}

func TestSelectSlotNotFound(t *testing.T) {
	lot := multiFloorLot(t)

	if _, found := (NearestSlotStrategy{}).SelectSlot(lot, VehicleTypeTruck); found {
		t.Error("Expected no slot for a class with no slots")
	}

	for _, floor := range lot.Floors() {
		for _, slot := range floor.Slots {
			slot.Fill()
		}
	}

	if _, found := (NearestSlotStrategy{}).SelectSlot(lot, VehicleTypeCar); found {
		t.Error("Expected no slot when every slot is filled")
	}
	if _, found := (OptimizedSlotStrategy{}).SelectSlot(lot, VehicleTypeCar); found {
		t.Error("Expected no slot when every slot is filled")
	}
}

func TestStrategyByName(t *testing.T) {
	if StrategyByName(StrategyOptimized).Name() != StrategyOptimized {
		t.Error("Expected optimized strategy")
	}
	if StrategyByName(StrategyNearest).Name() != StrategyNearest {
		t.Error("Expected nearest strategy")
	}
	if StrategyByName("bogus").Name() != StrategyNearest {
		t.Error("Expected nearest strategy for unknown name")
	}
}
