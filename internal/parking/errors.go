package parking

import "errors"

// Not-found class: recoverable by the caller, never fatal.
var (
	ErrGateNotFound    = errors.New("gate not found or not open")
	ErrNoSlotAvailable = errors.New("no slot available for vehicle type")
	ErrNoActiveTicket  = errors.New("no active ticket for vehicle")
	ErrBillNotFound    = errors.New("bill not found")
)

// Conflict class: business-rule violations, surfaced verbatim.
var (
	ErrVehicleAlreadyParked = errors.New("vehicle already has an active ticket")
	ErrOverpaymentRejected  = errors.New("payment would exceed bill total")
)

// IsNotFound reports whether err belongs to the not-found class.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrGateNotFound) ||
		errors.Is(err, ErrNoSlotAvailable) ||
		errors.Is(err, ErrNoActiveTicket) ||
		errors.Is(err, ErrBillNotFound)
}

// IsConflict reports whether err belongs to the conflict class.
func IsConflict(err error) bool {
	return errors.Is(err, ErrVehicleAlreadyParked) ||
		errors.Is(err, ErrOverpaymentRejected)
}
