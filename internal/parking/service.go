package parking

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// TicketService orchestrates the entry/exit workflow: vehicle
// registration-or-lookup, slot reservation through the lot's strategy,
// ticket issuance, and on exit fee computation, billing and slot
// release. One mutex serializes every slot and ticket state
// transition; the stores carry their own locks.
type TicketService struct {
	mu       sync.Mutex
	lot      *ParkingLot
	gates    GateStore
	vehicles VehicleStore
	tickets  TicketStore
	bills    BillStore
	tariff   Tariff
	now      func() time.Time
}

func NewTicketService(lot *ParkingLot, gates GateStore, vehicles VehicleStore, tickets TicketStore, bills BillStore, tariff Tariff) *TicketService {
	return &TicketService{
		lot:      lot,
		gates:    gates,
		vehicles: vehicles,
		tickets:  tickets,
		bills:    bills,
		tariff:   tariff,
		now:      time.Now,
	}
}

func (s *TicketService) Lot() *ParkingLot {
	return s.lot
}

// IssueTicket parks a vehicle: the gate must exist and be open, the
// vehicle is upserted by registration number, the lot's current
// strategy picks a slot, and the slot is marked Filled in the same
// critical section that persists the ticket. Nothing is mutated on
// failure.
func (s *TicketService) IssueTicket(vehicleNumber, ownerName string, gateID uuid.UUID, vehicleType VehicleType) (*Ticket, error) {
	gate, ok := s.gates.FindByID(gateID)
	if !ok || gate.Status != GateStatusOpen || gate.LotID != s.lot.ID {
		return nil, ErrGateNotFound
	}

	vehicle, ok := s.vehicles.FindByRegistration(vehicleNumber)
	if !ok {
		vehicle = s.vehicles.Save(NewVehicle(vehicleNumber, ownerName, vehicleType))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, parked := s.tickets.FindActiveByRegistration(vehicleNumber); parked {
		return nil, ErrVehicleAlreadyParked
	}

	slot, found := s.lot.Strategy().SelectSlot(s.lot, vehicle.Type)
	if !found {
		return nil, ErrNoSlotAvailable
	}

	slot.Fill()
	ticket := NewTicket(vehicle, slot, gateID, s.now())
	s.tickets.Save(ticket)
	return ticket, nil
}

// UnparkVehicle closes the vehicle's active ticket, bills the stay and
// frees the slot atomically.
func (s *TicketService) UnparkVehicle(vehicleNumber string) (*Bill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ticket, ok := s.tickets.FindActiveByRegistration(vehicleNumber)
	if !ok {
		return nil, ErrNoActiveTicket
	}

	exitTime := s.now()
	fee := s.tariff.Fee(ticket.Vehicle.Type, ticket.EntryTime, exitTime)

	ticket.Close(exitTime)
	s.tickets.Save(ticket)

	bill := NewBill(ticket.ID, exitTime, fee)
	s.bills.Save(bill)

	if floor, ok := s.lot.FloorByNumber(ticket.FloorNumber); ok {
		if slot, ok := floor.SlotByNumber(ticket.SlotNumber); ok {
			slot.Release()
		}
	}
	return bill, nil
}

// RecordPayment appends a payment to the bill and recomputes its
// status. A payment that would push the successful sum past the total
// is rejected and leaves the bill unchanged.
func (s *TicketService) RecordPayment(billID uuid.UUID, amount int64, mode PaymentMode, refID string) (*Bill, error) {
	bill, ok := s.bills.FindByID(billID)
	if !ok {
		return nil, ErrBillNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if bill.AmountPaid()+amount > bill.TotalAmount {
		return nil, ErrOverpaymentRejected
	}
	bill.addPayment(amount, mode, refID, s.now())
	s.bills.Save(bill)
	return bill, nil
}

func (s *TicketService) AvailableCount(vehicleType VehicleType) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lot.AvailableCount(vehicleType)
}

func (s *TicketService) SetStrategy(strategy SlotSelector) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lot.SetStrategy(strategy)
}

// FloorOccupancy is a read-only availability snapshot for one floor.
type FloorOccupancy struct {
	FloorNumber int
	Status      FloorStatus
	Total       int
	Occupied    int
}

func (s *TicketService) Occupancy() []FloorOccupancy {
	s.mu.Lock()
	defer s.mu.Unlock()

	var report []FloorOccupancy
	for _, floor := range s.lot.Floors() {
		occupied := 0
		for _, slot := range floor.Slots {
			if slot.Status == SlotStatusFilled {
				occupied++
			}
		}
		report = append(report, FloorOccupancy{
			FloorNumber: floor.Number,
			Status:      floor.Status,
			Total:       len(floor.Slots),
			Occupied:    occupied,
		})
	}
	return report
}
