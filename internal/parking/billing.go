package parking

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type BillStatus string

const (
	BillStatusPending       BillStatus = "PENDING"
	BillStatusPartiallyPaid BillStatus = "PARTIALLY_PAID"
	BillStatusPaid          BillStatus = "PAID"
)

type PaymentMode string

const (
	PaymentModeCash   PaymentMode = "CASH"
	PaymentModeCard   PaymentMode = "CARD"
	PaymentModeOnline PaymentMode = "ONLINE"
	PaymentModeUPI    PaymentMode = "UPI"
)

func ParsePaymentMode(s string) (PaymentMode, bool) {
	switch PaymentMode(strings.ToUpper(strings.TrimSpace(s))) {
	case PaymentModeCash:
		return PaymentModeCash, true
	case PaymentModeCard:
		return PaymentModeCard, true
	case PaymentModeOnline:
		return PaymentModeOnline, true
	case PaymentModeUPI:
		return PaymentModeUPI, true
	}
	return "", false
}

type PaymentStatus string

const (
	PaymentStatusSuccess PaymentStatus = "SUCCESS"
	PaymentStatusFailed  PaymentStatus = "FAILED"
)

type Payment struct {
	ID     uuid.UUID
	BillID uuid.UUID
	Amount int64
	Mode   PaymentMode
	RefID  string
	Status PaymentStatus
	PaidAt time.Time
}

// Bill is the monetary total owed for a closed Ticket. Amounts are in
// the smallest currency unit.
type Bill struct {
	ID          uuid.UUID
	TicketID    uuid.UUID
	ExitTime    time.Time
	TotalAmount int64
	Status      BillStatus
	Payments    []*Payment
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewBill(ticketID uuid.UUID, exitTime time.Time, totalAmount int64) *Bill {
	return &Bill{
		ID:          uuid.New(),
		TicketID:    ticketID,
		ExitTime:    exitTime,
		TotalAmount: totalAmount,
		Status:      BillStatusPending,
		CreatedAt:   exitTime,
		UpdatedAt:   exitTime,
	}
}

// AmountPaid sums the successful payments on the bill.
func (b *Bill) AmountPaid() int64 {
	var paid int64
	for _, p := range b.Payments {
		if p.Status == PaymentStatusSuccess {
			paid += p.Amount
		}
	}
	return paid
}

// addPayment appends a successful payment and recomputes the bill
// status: Paid iff the successful sum equals the total.
func (b *Bill) addPayment(amount int64, mode PaymentMode, refID string, paidAt time.Time) *Payment {
	payment := &Payment{
		ID:     uuid.New(),
		BillID: b.ID,
		Amount: amount,
		Mode:   mode,
		RefID:  refID,
		Status: PaymentStatusSuccess,
		PaidAt: paidAt,
	}
	b.Payments = append(b.Payments, payment)

	switch paid := b.AmountPaid(); {
	case paid == b.TotalAmount:
		b.Status = BillStatusPaid
	case paid > 0:
		b.Status = BillStatusPartiallyPaid
	default:
		b.Status = BillStatusPending
	}
	b.UpdatedAt = paidAt
	return payment
}
