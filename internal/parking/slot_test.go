package parking

import "testing"

func TestNewSlot(t *testing.T) {
	slot := NewSlot(3, 1, VehicleTypeCar)

	if slot.Number != 3 {
		t.Errorf("Expected slot number 3, got %d", slot.Number)
	}

	if slot.FloorNumber != 1 {
		t.Errorf("Expected floor number 1, got %d", slot.FloorNumber)
	}

	if slot.Status != SlotStatusEmpty {
		t.Errorf("Expected new slot to be empty, got %s", slot.Status)
	}

	if !slot.IsFree() {
		t.Error("Expected new slot to be free")
	}
}

func TestSlotFillAndRelease(t *testing.T) {
	slot := NewSlot(1, 1, VehicleTypeCar)

	slot.Fill()

	if slot.Status != SlotStatusFilled {
		t.Errorf("Expected slot status FILLED, got %s", slot.Status)
	}

	if slot.IsFree() {
		t.Error("Expected filled slot not to be free")
	}

	slot.Release()

	if slot.Status != SlotStatusEmpty {
		t.Errorf("Expected slot status EMPTY after release, got %s", slot.Status)
	}

	if !slot.IsFree() {
		t.Error("Expected released slot to be free")
	}
}

func TestSlotBlockedIsNotFree(t *testing.T) {
	slot := NewSlot(1, 1, VehicleTypeBike)
	slot.Status = SlotStatusBlocked

	if slot.IsFree() {
		t.Error("Expected blocked slot not to be free")
	}

	slot.Status = SlotStatusReserved
	if slot.IsFree() {
		t.Error("Expected reserved slot not to be free")
	}
}
