package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/trace"

	"parking-garage/internal/parking"
)

type Meta struct {
	TraceID   string `json:"trace_id,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Meta    *Meta  `json:"meta,omitempty"`
}

type IssueTicketRequest struct {
	Registration string `json:"registration"`
	OwnerName    string `json:"owner_name"`
	GateID       string `json:"gate_id"`
	VehicleType  string `json:"vehicle_type"`
}

type UnparkRequest struct {
	Registration string `json:"registration"`
}

type RecordPaymentRequest struct {
	Amount int64  `json:"amount"`
	Mode   string `json:"mode"`
	RefID  string `json:"ref_id"`
}

type StrategyRequest struct {
	Strategy string `json:"strategy"`
}

type TicketResponse struct {
	ID           string    `json:"id"`
	Number       string    `json:"number"`
	Registration string    `json:"registration"`
	FloorNumber  int       `json:"floor_number"`
	SlotNumber   int       `json:"slot_number"`
	EntryTime    time.Time `json:"entry_time"`
}

type PaymentResponse struct {
	ID     string `json:"id"`
	Amount int64  `json:"amount"`
	Mode   string `json:"mode"`
	RefID  string `json:"ref_id"`
	Status string `json:"status"`
}

type BillResponse struct {
	ID          string            `json:"id"`
	TicketID    string            `json:"ticket_id"`
	ExitTime    time.Time         `json:"exit_time"`
	TotalAmount int64             `json:"total_amount"`
	AmountPaid  int64             `json:"amount_paid"`
	Status      string            `json:"status"`
	Payments    []PaymentResponse `json:"payments,omitempty"`
}

type FloorStatusResponse struct {
	FloorNumber int    `json:"floor_number"`
	Status      string `json:"status"`
	Occupied    int    `json:"occupied"`
	Total       int    `json:"total"`
}

type StatusResponse struct {
	Capacity int                   `json:"capacity"`
	Occupied int                   `json:"occupied"`
	Floors   []FloorStatusResponse `json:"floors"`
}

type AvailabilityResponse struct {
	VehicleType string `json:"vehicle_type"`
	Available   int    `json:"available"`
}

func newTicketResponse(t *parking.Ticket) TicketResponse {
	return TicketResponse{
		ID:           t.ID.String(),
		Number:       t.Number,
		Registration: t.Vehicle.RegistrationNumber,
		FloorNumber:  t.FloorNumber,
		SlotNumber:   t.SlotNumber,
		EntryTime:    t.EntryTime,
	}
}

func newBillResponse(b *parking.Bill) BillResponse {
	resp := BillResponse{
		ID:          b.ID.String(),
		TicketID:    b.TicketID.String(),
		ExitTime:    b.ExitTime,
		TotalAmount: b.TotalAmount,
		AmountPaid:  b.AmountPaid(),
		Status:      string(b.Status),
	}
	for _, p := range b.Payments {
		resp.Payments = append(resp.Payments, PaymentResponse{
			ID:     p.ID.String(),
			Amount: p.Amount,
			Mode:   string(p.Mode),
			RefID:  p.RefID,
			Status: string(p.Status),
		})
	}
	return resp
}

func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func extractMeta(ctx context.Context) *Meta {
	meta := &Meta{}

	span := trace.SpanFromContext(ctx)
	if span.SpanContext().HasTraceID() {
		meta.TraceID = span.SpanContext().TraceID().String()
	}

	if reqID, ok := ctx.Value(RequestIDKey).(string); ok {
		meta.RequestID = reqID
	}

	return meta
}

func WriteSuccess(ctx context.Context, w http.ResponseWriter, message string, data any) {
	WriteJSON(w, http.StatusOK, Response{
		Success: true,
		Message: message,
		Data:    data,
		Meta:    extractMeta(ctx),
	})
}

func WriteError(ctx context.Context, w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, Response{
		Success: false,
		Error:   message,
		Meta:    extractMeta(ctx),
	})
}

// WriteDomainError maps the workflow error taxonomy onto HTTP status
// codes: not-found class to 404, conflict class to 409.
func WriteDomainError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case parking.IsNotFound(err):
		WriteError(ctx, w, http.StatusNotFound, err.Error())
	case parking.IsConflict(err):
		WriteError(ctx, w, http.StatusConflict, err.Error())
	default:
		WriteError(ctx, w, http.StatusInternalServerError, err.Error())
	}
}
