package parking

import (
	"context"
	"testing"
)

func TestInstrumentedServiceIntegration(t *testing.T) {
	telemetry, err := NewTelemetryProvider("parking-garage-test", "http://localhost:4318")
	if err != nil {
		t.Fatalf("Failed to initialize telemetry: %v", err)
	}
	// Shutdown flushes to the OTLP endpoint; ignore the error so the
	// test does not depend on a running collector.
	defer telemetry.Shutdown(context.Background())

	base, gate := newTestService(t, 2)

	service, err := NewInstrumentedTicketService(base, telemetry)
	if err != nil {
		t.Fatalf("Failed to create instrumented service: %v", err)
	}

	ctx := context.Background()

	ticket, err := service.IssueTicket(ctx, "KA01HH1234", "Alice", gate.ID, VehicleTypeCar)
	if err != nil {
		t.Fatalf("Unexpected error: %s", err.Error())
	}
	if ticket.SlotNumber != 1 {
		t.Errorf("Expected slot 1, got %d", ticket.SlotNumber)
	}

	if count := service.AvailableCount(ctx, VehicleTypeCar); count != 1 {
		t.Errorf("Expected 1 available slot, got %d", count)
	}

	bill, err := service.UnparkVehicle(ctx, "KA01HH1234")
	if err != nil {
		t.Fatalf("Unexpected error: %s", err.Error())
	}

	if _, err := service.RecordPayment(ctx, bill.ID, bill.TotalAmount, PaymentModeUPI, "ref-1"); err != nil {
		t.Errorf("Unexpected error: %s", err.Error())
	}

	if count := service.AvailableCount(ctx, VehicleTypeCar); count != 2 {
		t.Errorf("Expected 2 available slots, got %d", count)
	}
}
