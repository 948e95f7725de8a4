package parking

import "time"

// Tariff computes the fee for a stay. Implementations must be pure:
// same inputs, same fee.
type Tariff interface {
	Fee(vehicleType VehicleType, entry, exit time.Time) int64
}

// FlatHourlyTariff charges a per-class rate for every started hour,
// with a minimum of one hour.
type FlatHourlyTariff struct {
	HourlyRates map[VehicleType]int64
}

func NewDefaultTariff() *FlatHourlyTariff {
	return &FlatHourlyTariff{
		HourlyRates: map[VehicleType]int64{
			VehicleTypeBike:  1000,
			VehicleTypeCar:   2000,
			VehicleTypeBus:   3500,
			VehicleTypeTruck: 4000,
		},
	}
}

func (t *FlatHourlyTariff) Fee(vehicleType VehicleType, entry, exit time.Time) int64 {
	rate := t.HourlyRates[vehicleType]

	duration := exit.Sub(entry)
	hours := int64(duration / time.Hour)
	if duration%time.Hour > 0 {
		hours++
	}
	if hours < 1 {
		hours = 1
	}
	return rate * hours
}
