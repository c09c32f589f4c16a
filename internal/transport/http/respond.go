package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"shoptrack/internal/bootstrap/logging"
	"shoptrack/internal/domain/asset"
	"shoptrack/internal/errs"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Error(r.Context(), "encode response failed", slog.Any("err", errs.Loggable(err)))
	}
}

type errorBody struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

// writeError maps domain validation problems onto 400 and everything
// else onto an opaque 500. Store internals never leak to callers.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	msg := "internal error"
	if errors.Is(err, asset.ErrUnknownCategory) ||
		errors.Is(err, asset.ErrMissingKey) ||
		errors.Is(err, asset.ErrInvalidRecord) {
		status = http.StatusBadRequest
		msg = err.Error()
	}
	logging.Error(r.Context(), "request failed", slog.Any("err", errs.Loggable(err)))
	writeJSON(w, r, status, errorBody{OK: false, Error: msg})
}

func writeBadRequest(w http.ResponseWriter, r *http.Request, msg string) {
	writeJSON(w, r, http.StatusBadRequest, errorBody{OK: false, Error: msg})
}
