package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/xtding233/relic-gacha/internal/game"
	"github.com/xtding233/relic-gacha/internal/gacha"
	"github.com/xtding233/relic-gacha/internal/session"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

const (
	ErrMsgInvalidRequest   = "Invalid request body"
	ErrMsgInvalidRarity    = "Unknown rarity"
	ErrMsgUnknownPool      = "Unknown pool"
	ErrMsgPlayerNotFound   = "Player not found"
	ErrMsgNoEventPool      = "No event pool is active"
	ErrMsgCannotExclude    = "The lowest tier cannot be excluded"
	ErrMsgGenericServerErr = "Something went wrong"
)

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// mapError turns domain errors into a status code and a client message.
func mapError(err error) (int, string) {
	switch {
	case errors.Is(err, game.ErrUnknownPool):
		return http.StatusNotFound, ErrMsgUnknownPool
	case errors.Is(err, session.ErrInvalidPool):
		return http.StatusBadRequest, ErrMsgCannotExclude
	case errors.Is(err, game.ErrInvalidConfig),
		errors.Is(err, session.ErrInvalidLuck),
		errors.Is(err, session.ErrInvalidCount),
		errors.Is(err, session.ErrEmptyPlayerID):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, gacha.ErrEmptyEventPool):
		return http.StatusNotFound, ErrMsgNoEventPool
	default:
		return http.StatusInternalServerError, ErrMsgGenericServerErr
	}
}
