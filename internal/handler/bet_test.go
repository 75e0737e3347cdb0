package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/matkaworks/matka-backend/internal/betting"
	"github.com/matkaworks/matka-backend/internal/domain"
)

func placeBetBody(userID, gameID uuid.UUID) string {
	body, _ := json.Marshal(map[string]any{
		"user_id": userID.String(),
		"game_id": gameID.String(),
		"type":    "jodi",
		"number":  "47",
		"amount":  100,
	})
	return string(body)
}

func TestHandlePlaceBet_Success(t *testing.T) {
	userID := uuid.New()
	gameID := uuid.New()
	placed := &domain.Bet{
		ID:               uuid.New(),
		UserID:           userID,
		GameID:           gameID,
		Type:             domain.GameTypeJodi,
		Number:           "47",
		Amount:           100,
		PotentialWinning: 9500,
		Status:           domain.BetStatusPending,
	}

	mockService := new(MockBettingService)
	mockService.On("PlaceBet", mock.Anything, mock.MatchedBy(func(req betting.PlaceBetRequest) bool {
		return req.UserID == userID && req.GameID == gameID &&
			req.Type == domain.GameTypeJodi && req.Number == "47" && req.Amount == 100
	})).Return(placed, nil)

	handler := NewBetHandler(mockService)

	req := httptest.NewRequest("POST", "/api/v1/bets", strings.NewReader(placeBetBody(userID, gameID)))
	w := httptest.NewRecorder()

	handler.HandlePlaceBet(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response PlaceBetResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, placed.ID, response.Bet.ID)
	assert.Equal(t, int64(9500), response.Bet.PotentialWinning)
	mockService.AssertExpectations(t)
}

func TestHandlePlaceBet_ValidationRejectsBadPayload(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty body", `{}`},
		{"bad user id", `{"user_id":"nope","game_id":"` + uuid.NewString() + `","type":"jodi","number":"47","amount":100}`},
		{"unknown type", `{"user_id":"` + uuid.NewString() + `","game_id":"` + uuid.NewString() + `","type":"roulette","number":"47","amount":100}`},
		{"zero amount", `{"user_id":"` + uuid.NewString() + `","game_id":"` + uuid.NewString() + `","type":"jodi","number":"47","amount":0}`},
		{"malformed json", `{"user_id":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockBettingService)
			handler := NewBetHandler(mockService)

			req := httptest.NewRequest("POST", "/api/v1/bets", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler.HandlePlaceBet(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			mockService.AssertNotCalled(t, "PlaceBet", mock.Anything, mock.Anything)
		})
	}
}

func TestHandlePlaceBet_ServiceErrorMapping(t *testing.T) {
	tests := []struct {
		name           string
		serviceErr     error
		expectedStatus int
		expectedMsg    string
	}{
		{"game not found", domain.ErrGameNotFound, http.StatusNotFound, ErrMsgGameNotFoundError},
		{"betting closed", domain.ErrBettingClosed, http.StatusBadRequest, ErrMsgBettingClosedError},
		{"insufficient balance", domain.ErrInsufficientBalance, http.StatusBadRequest, ErrMsgNotEnoughBalanceError},
		{"wallet not found", domain.ErrWalletNotFound, http.StatusNotFound, ErrMsgWalletNotFoundError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockBettingService)
			mockService.On("PlaceBet", mock.Anything, mock.Anything).Return(nil, tt.serviceErr)

			handler := NewBetHandler(mockService)

			req := httptest.NewRequest("POST", "/api/v1/bets", strings.NewReader(placeBetBody(uuid.New(), uuid.New())))
			w := httptest.NewRecorder()

			handler.HandlePlaceBet(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, tt.expectedMsg, response.Error)
		})
	}
}
