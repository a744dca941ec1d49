package api

import (
	"encoding/json"
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/dan13ram/pos-minter/cardano"
)

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// statusCode maps a service error to the http status returned for it.
func statusCode(err error) int {
	switch {
	case errors.Is(err, cardano.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, cardano.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, cardano.ErrMintingDisabled), errors.Is(err, cardano.ErrSupplyExhausted):
		return http.StatusConflict
	case errors.Is(err, cardano.ErrCollateralUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.WithError(err).Warn("[API] Error writing response")
	}
}

func writeErrorMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Success: false, Error: message})
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusCode(err)
	logger := log.WithField("path", r.URL.Path).WithField("status", status).WithError(err)
	if status >= http.StatusInternalServerError {
		logger.Error("[API] Request failed")
	} else {
		logger.Debug("[API] Request rejected")
	}
	writeErrorMessage(w, status, err.Error())
}
