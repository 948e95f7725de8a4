package parking

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Shell is the interactive front door for operators. Commands run
// against the instrumented service so every one gets its own span.
type Shell struct {
	service   *InstrumentedTicketService
	scanner   *bufio.Scanner
	telemetry *TelemetryProvider
}

func NewShell(service *InstrumentedTicketService, telemetry *TelemetryProvider) *Shell {
	return &Shell{
		service:   service,
		scanner:   bufio.NewScanner(os.Stdin),
		telemetry: telemetry,
	}
}

func (s *Shell) Run(ctx context.Context) {
	tracer := s.telemetry.Tracer()
	ctx, span := tracer.Start(ctx, "shell.run")
	defer span.End()

	span.AddEvent("shell_started")

	for {
		if !s.scanner.Scan() {
			break
		}

		input := strings.TrimSpace(s.scanner.Text())
		if input == "" {
			continue
		}

		cmdCtx, cmdSpan := tracer.Start(ctx, "shell.process_command",
			trace.WithAttributes(attribute.String("command.input", input)))

		s.processCommand(cmdCtx, input)
		cmdSpan.End()
	}

	span.AddEvent("shell_ended")
}

func (s *Shell) processCommand(ctx context.Context, input string) {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return
	}

	switch parts[0] {
	case "park":
		s.handlePark(ctx, parts)
	case "leave":
		s.handleLeave(ctx, parts)
	case "pay":
		s.handlePay(ctx, parts)
	case "status":
		s.handleStatus(parts)
	case "available":
		s.handleAvailable(ctx, parts)
	case "strategy":
		s.handleStrategy(parts)
	default:
		fmt.Printf("Unknown command: %s\n", parts[0])
	}
}

// entryGate picks the first open entry gate, the default scope for
// shell-issued tickets.
func (s *Shell) entryGate() (*Gate, bool) {
	for _, gate := range s.service.Lot().Gates() {
		if gate.Type == GateTypeEntry && gate.Status == GateStatusOpen {
			return gate, true
		}
	}
	return nil, false
}

func (s *Shell) handlePark(ctx context.Context, parts []string) {
	if len(parts) != 4 {
		fmt.Println("Usage: park <registration_number> <owner_name> <vehicle_type>")
		return
	}

	vehicleType, err := ParseVehicleType(parts[3])
	if err != nil {
		fmt.Println("Invalid vehicle type")
		return
	}

	gate, ok := s.entryGate()
	if !ok {
		fmt.Println("No open entry gate")
		return
	}

	ticket, err := s.service.IssueTicket(ctx, parts[1], parts[2], gate.ID, vehicleType)
	if err != nil {
		fmt.Printf("Error: %s\n", err.Error())
		return
	}

	fmt.Printf("Ticket %s: floor %d, slot %d\n", ticket.Number, ticket.FloorNumber, ticket.SlotNumber)
}

func (s *Shell) handleLeave(ctx context.Context, parts []string) {
	if len(parts) != 2 {
		fmt.Println("Usage: leave <registration_number>")
		return
	}

	bill, err := s.service.UnparkVehicle(ctx, parts[1])
	if err != nil {
		fmt.Printf("Error: %s\n", err.Error())
		return
	}

	fmt.Printf("Bill %s: amount due %d\n", bill.ID, bill.TotalAmount)
}

func (s *Shell) handlePay(ctx context.Context, parts []string) {
	if len(parts) != 5 {
		fmt.Println("Usage: pay <bill_id> <amount> <mode> <reference_id>")
		return
	}

	billID, err := uuid.Parse(parts[1])
	if err != nil {
		fmt.Println("Invalid bill id")
		return
	}

	amount, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil || amount <= 0 {
		fmt.Println("Invalid amount")
		return
	}

	mode, ok := ParsePaymentMode(parts[3])
	if !ok {
		fmt.Println("Invalid payment mode")
		return
	}

	bill, err := s.service.RecordPayment(ctx, billID, amount, mode, parts[4])
	if err != nil {
		fmt.Printf("Error: %s\n", err.Error())
		return
	}

	fmt.Printf("Bill %s: %s (paid %d of %d)\n", bill.ID, bill.Status, bill.AmountPaid(), bill.TotalAmount)
}

func (s *Shell) handleStatus(parts []string) {
	if len(parts) != 1 {
		fmt.Println("Usage: status")
		return
	}

	fmt.Println("Floor\tStatus\tOccupied/Total")
	for _, floor := range s.service.Occupancy() {
		fmt.Printf("%d\t%s\t%d/%d\n", floor.FloorNumber, floor.Status, floor.Occupied, floor.Total)
	}
}

func (s *Shell) handleAvailable(ctx context.Context, parts []string) {
	if len(parts) != 2 {
		fmt.Println("Usage: available <vehicle_type>")
		return
	}

	vehicleType, err := ParseVehicleType(parts[1])
	if err != nil {
		fmt.Println("Invalid vehicle type")
		return
	}

	fmt.Printf("%d\n", s.service.AvailableCount(ctx, vehicleType))
}

func (s *Shell) handleStrategy(parts []string) {
	if len(parts) != 2 {
		fmt.Printf("Usage: strategy <%s|%s>\n", StrategyNearest, StrategyOptimized)
		return
	}

	name := strings.ToLower(parts[1])
	if name != StrategyNearest && name != StrategyOptimized {
		fmt.Printf("Unknown strategy: %s\n", parts[1])
		return
	}

	s.service.SetStrategy(StrategyByName(name))
	fmt.Printf("Strategy set to %s\n", name)
}
