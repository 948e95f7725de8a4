package parking

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// InstrumentedTicketService wraps TicketService with spans and metrics
// for every workflow operation.
type InstrumentedTicketService struct {
	*TicketService
	telemetry *TelemetryProvider

	ticketsIssued     metric.Int64Counter
	ticketsClosed     metric.Int64Counter
	paymentsRecorded  metric.Int64Counter
	revenueCollected  metric.Int64Counter
	occupancyGauge    metric.Int64UpDownCounter
	operationDuration metric.Float64Histogram
}

func NewInstrumentedTicketService(service *TicketService, telemetry *TelemetryProvider) (*InstrumentedTicketService, error) {
	meter := telemetry.Meter()

	ticketsIssued, err := meter.Int64Counter("tickets_issued_total",
		metric.WithDescription("Total number of tickets issued"),
		metric.WithUnit("1"))
	if err != nil {
		return nil, err
	}

	ticketsClosed, err := meter.Int64Counter("tickets_closed_total",
		metric.WithDescription("Total number of tickets closed"),
		metric.WithUnit("1"))
	if err != nil {
		return nil, err
	}

	paymentsRecorded, err := meter.Int64Counter("payments_recorded_total",
		metric.WithDescription("Total number of payments recorded"),
		metric.WithUnit("1"))
	if err != nil {
		return nil, err
	}

	revenueCollected, err := meter.Int64Counter("revenue_collected_total",
		metric.WithDescription("Total successful payment amount"),
		metric.WithUnit("1"))
	if err != nil {
		return nil, err
	}

	occupancyGauge, err := meter.Int64UpDownCounter("parking_lot_occupancy",
		metric.WithDescription("Current number of filled parking slots"),
		metric.WithUnit("1"))
	if err != nil {
		return nil, err
	}

	operationDuration, err := meter.Float64Histogram("operation_duration_seconds",
		metric.WithDescription("Duration of ticket service operations"),
		metric.WithUnit("s"))
	if err != nil {
		return nil, err
	}

	return &InstrumentedTicketService{
		TicketService:     service,
		telemetry:         telemetry,
		ticketsIssued:     ticketsIssued,
		ticketsClosed:     ticketsClosed,
		paymentsRecorded:  paymentsRecorded,
		revenueCollected:  revenueCollected,
		occupancyGauge:    occupancyGauge,
		operationDuration: operationDuration,
	}, nil
}

func (s *InstrumentedTicketService) IssueTicket(ctx context.Context, vehicleNumber, ownerName string, gateID uuid.UUID, vehicleType VehicleType) (*Ticket, error) {
	tracer := s.telemetry.Tracer()
	ctx, span := tracer.Start(ctx, "ticket_service.issue_ticket",
		trace.WithAttributes(
			attribute.String("vehicle.registration_number", vehicleNumber),
			attribute.String("vehicle.type", string(vehicleType)),
		))
	defer span.End()

	start := time.Now()

	span.AddEvent("selecting_slot")

	ticket, err := s.TicketService.IssueTicket(vehicleNumber, ownerName, gateID, vehicleType)

	duration := time.Since(start).Seconds()

	labels := []attribute.KeyValue{
		attribute.String("operation", "issue_ticket"),
		attribute.String("vehicle_type", string(vehicleType)),
	}

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		labels = append(labels, attribute.String("status", "failed"))
		s.ticketsIssued.Add(ctx, 1, metric.WithAttributes(labels...))
	} else {
		labels = append(labels,
			attribute.String("status", "success"),
			attribute.Int("allocated_slot", ticket.SlotNumber),
		)
		span.SetAttributes(
			attribute.String("ticket.number", ticket.Number),
			attribute.Int("allocated_floor_number", ticket.FloorNumber),
			attribute.Int("allocated_slot_number", ticket.SlotNumber),
		)
		span.AddEvent("slot_allocated", trace.WithAttributes(
			attribute.Int("floor_number", ticket.FloorNumber),
			attribute.Int("slot_number", ticket.SlotNumber),
		))

		s.ticketsIssued.Add(ctx, 1, metric.WithAttributes(labels...))
		s.occupancyGauge.Add(ctx, 1)
	}

	s.operationDuration.Record(ctx, duration, metric.WithAttributes(labels...))

	return ticket, err
}

func (s *InstrumentedTicketService) UnparkVehicle(ctx context.Context, vehicleNumber string) (*Bill, error) {
	tracer := s.telemetry.Tracer()
	ctx, span := tracer.Start(ctx, "ticket_service.unpark_vehicle",
		trace.WithAttributes(
			attribute.String("vehicle.registration_number", vehicleNumber),
		))
	defer span.End()

	start := time.Now()

	span.AddEvent("releasing_slot")

	bill, err := s.TicketService.UnparkVehicle(vehicleNumber)

	duration := time.Since(start).Seconds()

	labels := []attribute.KeyValue{
		attribute.String("operation", "unpark_vehicle"),
	}

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		labels = append(labels, attribute.String("status", "failed"))
	} else {
		labels = append(labels, attribute.String("status", "success"))
		span.SetAttributes(attribute.Int64("bill.total_amount", bill.TotalAmount))
		span.AddEvent("slot_released")
		s.occupancyGauge.Add(ctx, -1)
	}

	s.ticketsClosed.Add(ctx, 1, metric.WithAttributes(labels...))
	s.operationDuration.Record(ctx, duration, metric.WithAttributes(labels...))

	return bill, err
}

func (s *InstrumentedTicketService) RecordPayment(ctx context.Context, billID uuid.UUID, amount int64, mode PaymentMode, refID string) (*Bill, error) {
	tracer := s.telemetry.Tracer()
	ctx, span := tracer.Start(ctx, "ticket_service.record_payment",
		trace.WithAttributes(
			attribute.String("bill.id", billID.String()),
			attribute.Int64("payment.amount", amount),
			attribute.String("payment.mode", string(mode)),
		))
	defer span.End()

	start := time.Now()

	bill, err := s.TicketService.RecordPayment(billID, amount, mode, refID)

	duration := time.Since(start).Seconds()

	labels := []attribute.KeyValue{
		attribute.String("operation", "record_payment"),
		attribute.String("payment_mode", string(mode)),
	}

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		labels = append(labels, attribute.String("status", "failed"))
	} else {
		labels = append(labels, attribute.String("status", "success"))
		span.SetAttributes(attribute.String("bill.status", string(bill.Status)))
		s.revenueCollected.Add(ctx, amount, metric.WithAttributes(
			attribute.String("payment_mode", string(mode))))
	}

	s.paymentsRecorded.Add(ctx, 1, metric.WithAttributes(labels...))
	s.operationDuration.Record(ctx, duration, metric.WithAttributes(labels...))

	return bill, err
}

func (s *InstrumentedTicketService) AvailableCount(ctx context.Context, vehicleType VehicleType) int {
	tracer := s.telemetry.Tracer()
	ctx, span := tracer.Start(ctx, "ticket_service.available_count",
		trace.WithAttributes(
			attribute.String("vehicle.type", string(vehicleType)),
		))
	defer span.End()

	start := time.Now()

	count := s.TicketService.AvailableCount(vehicleType)

	duration := time.Since(start).Seconds()

	span.SetAttributes(attribute.Int("available_slots", count))

	s.operationDuration.Record(ctx, duration, metric.WithAttributes(
		attribute.String("operation", "available_count"),
		attribute.String("status", "success"),
	))

	return count
}
