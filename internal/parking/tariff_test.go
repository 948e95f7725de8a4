package parking

import (
	"testing"
	"time"
)

func TestFlatHourlyTariffRoundsUp(t *testing.T) {
	tariff := NewDefaultTariff()
	entry := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	cases := []struct {
		duration time.Duration
		want     int64
	}{
		{0, 2000},
		{20 * time.Minute, 2000},
		{time.Hour, 2000},
		{time.Hour + time.Minute, 4000},
		{3 * time.Hour, 6000},
	}

	for _, c := range cases {
		got := tariff.Fee(VehicleTypeCar, entry, entry.Add(c.duration))
		if got != c.want {
			t.Errorf("Expected fee %d for duration %v, got %d", c.want, c.duration, got)
		}
	}
}

func TestFlatHourlyTariffPerClassRates(t *testing.T) {
	tariff := NewDefaultTariff()
	entry := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	exit := entry.Add(30 * time.Minute)

	cases := map[VehicleType]int64{
		VehicleTypeBike:  1000,
		VehicleTypeCar:   2000,
		VehicleTypeBus:   3500,
		VehicleTypeTruck: 4000,
	}

	for vehicleType, want := range cases {
		got := tariff.Fee(vehicleType, entry, exit)
		if got != want {
			t.Errorf("Expected fee %d for %s, got %d", want, vehicleType, got)
		}
	}
}
