package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/matkaworks/matka-backend/internal/domain"
	"github.com/matkaworks/matka-backend/internal/logger"
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

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Encode through a pooled buffer so a marshal failure never produces a
	// half-written body.
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a service failure and writes the mapped
// user-facing response.
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	logger.FromContext(r.Context()).Error(opName+" failed", "error", err)
	statusCode, userMsg := mapServiceErrorToUserMessage(err)
	respondError(w, statusCode, userMsg)
}

// User-facing error messages for service errors
const (
	// Generic messages
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"

	// Game messages
	ErrMsgGameNotFoundError    = "Game not found"
	ErrMsgGameInactiveError    = "Game is not active"
	ErrMsgInvalidGameStateErr  = "Game is not in the right state for that"
	ErrMsgBettingClosedError   = "Betting is closed for this game"
	ErrMsgPendingBetsExistErr  = "Game still has pending bets"

	// Bet messages
	ErrMsgInvalidAmountError    = "Bet amount is outside the allowed range"
	ErrMsgInvalidBetTypeError   = "Bet type does not match this game"
	ErrMsgInvalidBetNumberError = "Invalid bet number for this game type"

	// Wallet messages
	ErrMsgWalletNotFoundError   = "Wallet not found"
	ErrMsgNotEnoughBalanceError = "Insufficient deposit balance"

	// Result messages
	ErrMsgResultAlreadyDeclaredErr = "Result has already been declared for this round"
	ErrMsgInvalidResultFormatErr   = "Invalid result format"

	// Input messages
	ErrMsgInvalidInputError = "Invalid request. Please check your inputs."
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP
// responses: an appropriate status code plus a message the caller can act on.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrGameNotFound):
		return http.StatusNotFound, ErrMsgGameNotFoundError
	case errors.Is(err, domain.ErrGameInactive):
		return http.StatusBadRequest, ErrMsgGameInactiveError
	case errors.Is(err, domain.ErrInvalidGameState):
		return http.StatusConflict, ErrMsgInvalidGameStateErr
	case errors.Is(err, domain.ErrBettingClosed):
		return http.StatusBadRequest, ErrMsgBettingClosedError
	case errors.Is(err, domain.ErrPendingBetsExist):
		return http.StatusConflict, ErrMsgPendingBetsExistErr
	case errors.Is(err, domain.ErrInvalidAmount):
		return http.StatusBadRequest, ErrMsgInvalidAmountError
	case errors.Is(err, domain.ErrInvalidBetType):
		return http.StatusBadRequest, ErrMsgInvalidBetTypeError
	case errors.Is(err, domain.ErrInvalidBetNumber):
		return http.StatusBadRequest, ErrMsgInvalidBetNumberError
	case errors.Is(err, domain.ErrWalletNotFound):
		return http.StatusNotFound, ErrMsgWalletNotFoundError
	case errors.Is(err, domain.ErrInsufficientBalance):
		return http.StatusBadRequest, ErrMsgNotEnoughBalanceError
	case errors.Is(err, domain.ErrResultAlreadyDeclared):
		return http.StatusConflict, ErrMsgResultAlreadyDeclaredErr
	case errors.Is(err, domain.ErrInvalidResultFormat):
		return http.StatusBadRequest, ErrMsgInvalidResultFormatErr
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	}

	// For wrapped errors with domain errors as the base, try unwrapping
	unwrapped := errors.Unwrap(err)
	if unwrapped != nil && unwrapped != err {
		return mapServiceErrorToUserMessage(unwrapped)
	}

	// Short custom messages (tests, mocks) pass through; anything longer is
	// assumed to be an internal detail and hidden.
	errMsg := err.Error()
	if errMsg != "" && len(errMsg) < 200 {
		return http.StatusInternalServerError, errMsg
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
