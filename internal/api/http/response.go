package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"smartrentals-backend/internal/domain"
	"smartrentals-backend/internal/logger"
)

type errorResponse struct {
	Error string `json:"error"`
}

// errBadRequest marks malformed request input: unparseable path IDs and
// bodies, as opposed to well-formed IDs that miss (ErrNotFound).
var errBadRequest = errors.New("bad request")

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			logger.Error("failed to encode response", "error", err)
		}
	}
}

// writeError maps domain errors onto HTTP status codes. Anything
// unclassified is a 500 with a generic body; the detail goes to the log
// only.
func writeError(w http.ResponseWriter, err error) {
	var status int
	switch {
	case errors.Is(err, errBadRequest),
		errors.Is(err, domain.ErrInvalidWindow),
		errors.Is(err, domain.ErrDurationOutOfRange):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrConflict),
		errors.Is(err, domain.ErrInvalidTransition):
		status = http.StatusConflict
	default:
		logger.Error("request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
		return
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}
