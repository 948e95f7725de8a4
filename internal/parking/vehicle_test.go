package parking

import "testing"

func TestNewVehicle(t *testing.T) {
	vehicle := NewVehicle("KA01HH1234", "Alice", VehicleTypeCar)

	if vehicle.RegistrationNumber != "KA01HH1234" {
		t.Errorf("Expected registration number KA01HH1234, got %s", vehicle.RegistrationNumber)
	}

	if vehicle.OwnerName != "Alice" {
		t.Errorf("Expected owner name Alice, got %s", vehicle.OwnerName)
	}

	if vehicle.Type != VehicleTypeCar {
		t.Errorf("Expected vehicle type CAR, got %s", vehicle.Type)
	}
}

func TestParseVehicleType(t *testing.T) {
	for input, want := range map[string]VehicleType{
		"car":    VehicleTypeCar,
		"CAR":    VehicleTypeCar,
		" bike ": VehicleTypeBike,
		"Truck":  VehicleTypeTruck,
		"bus":    VehicleTypeBus,
	} {
		got, err := ParseVehicleType(input)
		if err != nil {
			t.Errorf("Unexpected error for %q: %s", input, err.Error())
		}
		if got != want {
			t.Errorf("Expected %s for %q, got %s", want, input, got)
		}
	}

	if _, err := ParseVehicleType("boat"); err == nil {
		t.Error("Expected error for unknown vehicle type")
	}
}
