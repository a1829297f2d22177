package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"smartrentals-backend/internal/domain"
	"smartrentals-backend/internal/service"
)

type quoteRequest struct {
	Reservations []domain.ReservationRequest `json:"reservations"`
}

// CreateQuote handles POST /api/quotes. Pricing only, nothing is reserved.
func (h *Handler) CreateQuote(w http.ResponseWriter, r *http.Request) {
	var req quoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("invalid request body: %w", errBadRequest))
		return
	}
	quote, err := h.pricing.Quote(r.Context(), req.Reservations)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, quote)
}

// CreateOrder handles POST /api/orders.
func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req service.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("invalid request body: %w", errBadRequest))
		return
	}
	order, err := h.booking.CreateBooking(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

// GetOrder handles GET /api/orders/{orderID}.
func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	orderID, err := parseID(r, "orderID")
	if err != nil {
		writeError(w, err)
		return
	}
	detail, err := h.lifecycle.GetOrder(r.Context(), orderID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

// RecordPayment handles POST /api/orders/{orderID}/payments.
func (h *Handler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	orderID, err := parseID(r, "orderID")
	if err != nil {
		writeError(w, err)
		return
	}
	var req service.RecordPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("invalid request body: %w", errBadRequest))
		return
	}
	order, err := h.lifecycle.RecordPayment(r.Context(), orderID, req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

// MarkPickedUp handles POST /api/orders/{orderID}/pickup.
func (h *Handler) MarkPickedUp(w http.ResponseWriter, r *http.Request) {
	orderID, err := parseID(r, "orderID")
	if err != nil {
		writeError(w, err)
		return
	}
	order, err := h.lifecycle.MarkPickedUp(r.Context(), orderID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

// MarkReturned handles POST /api/orders/{orderID}/return.
func (h *Handler) MarkReturned(w http.ResponseWriter, r *http.Request) {
	orderID, err := parseID(r, "orderID")
	if err != nil {
		writeError(w, err)
		return
	}
	order, err := h.lifecycle.MarkReturned(r.Context(), orderID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

type cancelRequest struct {
	Reason string `json:"reason"`
}

// CancelOrder handles POST /api/orders/{orderID}/cancel.
func (h *Handler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	orderID, err := parseID(r, "orderID")
	if err != nil {
		writeError(w, err)
		return
	}
	var req cancelRequest
	if r.Body != nil {
		// Body is optional; ignore decode errors for an empty body.
		_ = json.NewDecoder(r.Body).Decode(&req)
	}
	order, err := h.lifecycle.Cancel(r.Context(), orderID, req.Reason)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

// DeleteOrder handles DELETE /api/orders/{orderID}.
func (h *Handler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	orderID, err := parseID(r, "orderID")
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.lifecycle.DeleteOrder(r.Context(), orderID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// PurgeOrders handles DELETE /api/orders.
func (h *Handler) PurgeOrders(w http.ResponseWriter, r *http.Request) {
	if err := h.lifecycle.PurgeOrders(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListLateRentals handles GET /api/reports/late-rentals. The optional phone
// query parameter narrows the report to one customer.
func (h *Handler) ListLateRentals(w http.ResponseWriter, r *http.Request) {
	late, err := h.lifecycle.ListLateRentals(r.Context(), r.URL.Query().Get("phone"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, late)
}
