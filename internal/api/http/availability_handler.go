package http

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"smartrentals-backend/internal/domain"
)

func parseID(r *http.Request, name string) (int32, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s %q: %w", name, raw, errBadRequest)
	}
	return int32(id), nil
}

// parseWindow reads the start/end RFC 3339 query parameters.
func parseWindow(r *http.Request) (domain.TimeWindow, error) {
	var w domain.TimeWindow
	start, err := time.Parse(time.RFC3339, r.URL.Query().Get("start"))
	if err != nil {
		return w, fmt.Errorf("invalid start: %w", domain.ErrInvalidWindow)
	}
	end, err := time.Parse(time.RFC3339, r.URL.Query().Get("end"))
	if err != nil {
		return w, fmt.Errorf("invalid end: %w", domain.ErrInvalidWindow)
	}
	w = domain.TimeWindow{Start: start, End: end}
	return w, w.Validate()
}

type availabilityResponse struct {
	UnitID    int32             `json:"unit_id"`
	Window    domain.TimeWindow `json:"window"`
	Available bool              `json:"available"`
}

// CheckUnitAvailability handles GET /api/availability/units/{unitID}.
func (h *Handler) CheckUnitAvailability(w http.ResponseWriter, r *http.Request) {
	unitID, err := parseID(r, "unitID")
	if err != nil {
		writeError(w, err)
		return
	}
	window, err := parseWindow(r)
	if err != nil {
		writeError(w, err)
		return
	}
	available, err := h.availability.IsAvailable(r.Context(), unitID, window)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, availabilityResponse{
		UnitID:    unitID,
		Window:    window,
		Available: available,
	})
}

type availableUnitsResponse struct {
	ProductID int32                 `json:"product_id"`
	Window    domain.TimeWindow     `json:"window"`
	Units     []domain.RentableUnit `json:"units"`
}

// ListAvailableUnits handles GET /api/availability/products/{productID}.
func (h *Handler) ListAvailableUnits(w http.ResponseWriter, r *http.Request) {
	productID, err := parseID(r, "productID")
	if err != nil {
		writeError(w, err)
		return
	}
	window, err := parseWindow(r)
	if err != nil {
		writeError(w, err)
		return
	}
	units, err := h.availability.ListAvailableUnits(r.Context(), productID, window)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, availableUnitsResponse{
		ProductID: productID,
		Window:    window,
		Units:     units,
	})
}
