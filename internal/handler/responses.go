package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/osse101/HamsterHaven_Go/internal/domain"
	"github.com/osse101/HamsterHaven_Go/internal/habitat"
	"github.com/osse101/HamsterHaven_Go/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// bufferPool reuses encode buffers across responses
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 512))
	},
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		bufferPool.Put(buf)
	}()

	// Encode before writing headers so a failure can still become a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error(LogMsgEncodeFailed, "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs err and maps it to a user-facing response
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(opName+" failed", "error", err)
	} else {
		log.Debug(opName+" rejected", "error", err, "status", status)
	}
	respondError(w, status, msg)
}

// mapServiceErrorToUserMessage maps domain errors to HTTP status codes and
// messages players can act on.
func mapServiceErrorToUserMessage(err error) (int, string) {
	switch {
	case err == nil:
		return http.StatusInternalServerError, ErrMsgUnknownError
	case errors.Is(err, domain.ErrHamsterNotFound):
		return http.StatusNotFound, ErrMsgHamsterNotFoundError
	case errors.Is(err, domain.ErrPoopNotFound):
		return http.StatusNotFound, ErrMsgPoopNotFoundError
	case errors.Is(err, domain.ErrHamsterDead):
		return http.StatusConflict, ErrMsgHamsterDeadError
	case errors.Is(err, domain.ErrHamsterBusy):
		return http.StatusConflict, ErrMsgHamsterBusyError
	case errors.Is(err, domain.ErrNoActiveRun):
		return http.StatusConflict, ErrMsgNoActiveRunError
	case errors.Is(err, domain.ErrRunInProgress):
		return http.StatusConflict, ErrMsgRunInProgressError
	case errors.Is(err, domain.ErrHabitatFull):
		return http.StatusConflict, ErrMsgHabitatFullError
	case errors.Is(err, domain.ErrSameParent):
		return http.StatusBadRequest, ErrMsgSameParentError
	case errors.Is(err, domain.ErrNotEligible):
		return http.StatusConflict, ErrMsgNotEligibleError
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusPaymentRequired, ErrMsgNotEnoughMoneyError
	case errors.Is(err, domain.ErrAlreadyOwned):
		return http.StatusConflict, ErrMsgAlreadyOwnedError
	case errors.Is(err, domain.ErrNotOwned):
		return http.StatusForbidden, ErrMsgNotOwnedError
	case errors.Is(err, domain.ErrUpgradeFailed):
		return http.StatusConflict, ErrMsgMaxLevelError
	case errors.Is(err, domain.ErrUnknownAccessory),
		errors.Is(err, domain.ErrUnknownFood),
		errors.Is(err, domain.ErrUnknownColor),
		errors.Is(err, domain.ErrUnknownTrack):
		return http.StatusNotFound, ErrMsgUnknownItemError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequestError
	case errors.Is(err, habitat.ErrRunnerStopped):
		return http.StatusServiceUnavailable, ErrMsgUnavailableError
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable, ErrMsgUnavailableError
	}
	return http.StatusInternalServerError, ErrMsgGenericServerError
}
