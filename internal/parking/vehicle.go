package parking

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type VehicleType string

const (
	VehicleTypeBike  VehicleType = "BIKE"
	VehicleTypeCar   VehicleType = "CAR"
	VehicleTypeTruck VehicleType = "TRUCK"
	VehicleTypeBus   VehicleType = "BUS"
)

func ParseVehicleType(s string) (VehicleType, error) {
	switch VehicleType(strings.ToUpper(strings.TrimSpace(s))) {
	case VehicleTypeBike:
		return VehicleTypeBike, nil
	case VehicleTypeCar:
		return VehicleTypeCar, nil
	case VehicleTypeTruck:
		return VehicleTypeTruck, nil
	case VehicleTypeBus:
		return VehicleTypeBus, nil
	}
	return "", fmt.Errorf("unknown vehicle type %q", s)
}

type Vehicle struct {
	ID                 uuid.UUID
	RegistrationNumber string
	OwnerName          string
	Type               VehicleType
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func NewVehicle(registrationNumber, ownerName string, vehicleType VehicleType) *Vehicle {
	now := time.Now()
	return &Vehicle{
		ID:                 uuid.New(),
		RegistrationNumber: registrationNumber,
		OwnerName:          ownerName,
		Type:               vehicleType,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}
