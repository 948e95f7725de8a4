package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"parking-garage/internal/parking"
)

type Handler struct {
	service     *parking.InstrumentedTicketService
	serviceName string
}

func NewHandler(service *parking.InstrumentedTicketService, serviceName string) *Handler {
	return &Handler{service: service, serviceName: serviceName}
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]any{
		"status":  "healthy",
		"service": h.serviceName,
		"meta":    extractMeta(r.Context()),
	})
}

func (h *Handler) IssueTicket(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req IssueTicketRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(ctx, w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Registration == "" || req.OwnerName == "" {
		WriteError(ctx, w, http.StatusBadRequest, "Registration and owner name are required")
		return
	}

	gateID, err := uuid.Parse(req.GateID)
	if err != nil {
		WriteError(ctx, w, http.StatusBadRequest, "Invalid gate id")
		return
	}

	vehicleType, err := parking.ParseVehicleType(req.VehicleType)
	if err != nil {
		WriteError(ctx, w, http.StatusBadRequest, err.Error())
		return
	}

	ticket, err := h.service.IssueTicket(ctx, req.Registration, req.OwnerName, gateID, vehicleType)
	if err != nil {
		WriteDomainError(ctx, w, err)
		return
	}

	WriteSuccess(ctx, w, "Ticket issued", newTicketResponse(ticket))
}

func (h *Handler) UnparkVehicle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req UnparkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(ctx, w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Registration == "" {
		WriteError(ctx, w, http.StatusBadRequest, "Registration is required")
		return
	}

	bill, err := h.service.UnparkVehicle(ctx, req.Registration)
	if err != nil {
		WriteDomainError(ctx, w, err)
		return
	}

	WriteSuccess(ctx, w, "Vehicle unparked", newBillResponse(bill))
}

func (h *Handler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	billID, err := uuid.Parse(chi.URLParam(r, "billID"))
	if err != nil {
		WriteError(ctx, w, http.StatusBadRequest, "Invalid bill id")
		return
	}

	var req RecordPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(ctx, w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Amount <= 0 {
		WriteError(ctx, w, http.StatusBadRequest, "Amount must be greater than 0")
		return
	}

	mode, ok := parking.ParsePaymentMode(req.Mode)
	if !ok {
		WriteError(ctx, w, http.StatusBadRequest, "Invalid payment mode")
		return
	}

	bill, err := h.service.RecordPayment(ctx, billID, req.Amount, mode, req.RefID)
	if err != nil {
		WriteDomainError(ctx, w, err)
		return
	}

	WriteSuccess(ctx, w, "Payment recorded", newBillResponse(bill))
}

func (h *Handler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	vehicleType, err := parking.ParseVehicleType(chi.URLParam(r, "vehicleType"))
	if err != nil {
		WriteError(ctx, w, http.StatusBadRequest, err.Error())
		return
	}

	count := h.service.AvailableCount(ctx, vehicleType)

	WriteSuccess(ctx, w, "Availability retrieved", AvailabilityResponse{
		VehicleType: string(vehicleType),
		Available:   count,
	})
}

func (h *Handler) GetStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	occupancy := h.service.Occupancy()

	response := StatusResponse{}
	for _, floor := range occupancy {
		response.Capacity += floor.Total
		response.Occupied += floor.Occupied
		response.Floors = append(response.Floors, FloorStatusResponse{
			FloorNumber: floor.FloorNumber,
			Status:      string(floor.Status),
			Occupied:    floor.Occupied,
			Total:       floor.Total,
		})
	}

	WriteSuccess(ctx, w, "Status retrieved", response)
}

func (h *Handler) SetStrategy(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req StrategyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(ctx, w, http.StatusBadRequest, "Invalid request body")
		return
	}

	name := strings.ToLower(req.Strategy)
	if name != parking.StrategyNearest && name != parking.StrategyOptimized {
		WriteError(ctx, w, http.StatusBadRequest, "Unknown strategy")
		return
	}

	h.service.SetStrategy(parking.StrategyByName(name))

	WriteSuccess(ctx, w, "Strategy updated", map[string]any{
		"strategy": name,
	})
}
