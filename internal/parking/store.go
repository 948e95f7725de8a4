package parking

import (
	"sync"

	"github.com/google/uuid"
)

// The workflow consumes collaborators through these interfaces; the
// in-memory implementations below stand in for the key-value stores a
// real deployment would bring.

type GateStore interface {
	FindByID(id uuid.UUID) (*Gate, bool)
	Save(gate *Gate)
}

type VehicleStore interface {
	FindByRegistration(registrationNumber string) (*Vehicle, bool)
	Save(vehicle *Vehicle) *Vehicle
}

type TicketStore interface {
	FindByID(id uuid.UUID) (*Ticket, bool)
	FindActiveByRegistration(registrationNumber string) (*Ticket, bool)
	Save(ticket *Ticket)
}

type BillStore interface {
	FindByID(id uuid.UUID) (*Bill, bool)
	Save(bill *Bill)
}

type InMemoryGateStore struct {
	mu    sync.RWMutex
	gates map[uuid.UUID]*Gate
}

func NewInMemoryGateStore() *InMemoryGateStore {
	return &InMemoryGateStore{gates: make(map[uuid.UUID]*Gate)}
}

func (s *InMemoryGateStore) FindByID(id uuid.UUID) (*Gate, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	gate, ok := s.gates[id]
	return gate, ok
}

func (s *InMemoryGateStore) Save(gate *Gate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gates[gate.ID] = gate
}

// InMemoryVehicleStore keys vehicles by registration number, the
// natural key, so Save has upsert semantics.
type InMemoryVehicleStore struct {
	mu       sync.RWMutex
	vehicles map[string]*Vehicle
}

func NewInMemoryVehicleStore() *InMemoryVehicleStore {
	return &InMemoryVehicleStore{vehicles: make(map[string]*Vehicle)}
}

func (s *InMemoryVehicleStore) FindByRegistration(registrationNumber string) (*Vehicle, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	vehicle, ok := s.vehicles[registrationNumber]
	return vehicle, ok
}

func (s *InMemoryVehicleStore) Save(vehicle *Vehicle) *Vehicle {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vehicles[vehicle.RegistrationNumber] = vehicle
	return vehicle
}

type InMemoryTicketStore struct {
	mu      sync.RWMutex
	tickets map[uuid.UUID]*Ticket
}

func NewInMemoryTicketStore() *InMemoryTicketStore {
	return &InMemoryTicketStore{tickets: make(map[uuid.UUID]*Ticket)}
}

func (s *InMemoryTicketStore) FindByID(id uuid.UUID) (*Ticket, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ticket, ok := s.tickets[id]
	return ticket, ok
}

func (s *InMemoryTicketStore) FindActiveByRegistration(registrationNumber string) (*Ticket, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, ticket := range s.tickets {
		if ticket.IsActive() && ticket.Vehicle.RegistrationNumber == registrationNumber {
			return ticket, true
		}
	}
	return nil, false
}

func (s *InMemoryTicketStore) Save(ticket *Ticket) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tickets[ticket.ID] = ticket
}

type InMemoryBillStore struct {
	mu    sync.RWMutex
	bills map[uuid.UUID]*Bill
}

func NewInMemoryBillStore() *InMemoryBillStore {
	return &InMemoryBillStore{bills: make(map[uuid.UUID]*Bill)}
}

func (s *InMemoryBillStore) FindByID(id uuid.UUID) (*Bill, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	bill, ok := s.bills[id]
	return bill, ok
}

func (s *InMemoryBillStore) Save(bill *Bill) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bills[bill.ID] = bill
}
