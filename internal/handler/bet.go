package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/matkaworks/matka-backend/internal/betting"
	"github.com/matkaworks/matka-backend/internal/domain"
	"github.com/matkaworks/matka-backend/internal/logger"
)

type BetHandler struct {
	service betting.Service
}

func NewBetHandler(service betting.Service) *BetHandler {
	return &BetHandler{service: service}
}

type PlaceBetRequest struct {
	UserID   string `json:"user_id" validate:"required,uuid"`
	GameID   string `json:"game_id" validate:"required,uuid"`
	Type     string `json:"type" validate:"required,game_type"`
	Number   string `json:"number" validate:"required,numeric,max=5"`
	Position string `json:"position" validate:"haruf_position"`
	Amount   int64  `json:"amount" validate:"required,gt=0"`
}

type PlaceBetResponse struct {
	Bet *domain.Bet `json:"bet"`
}

func (h *BetHandler) HandlePlaceBet(w http.ResponseWriter, r *http.Request) {
	var req PlaceBetRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Place bet"); err != nil {
		return
	}

	// UUID format is already validated; Parse cannot fail here.
	userID, _ := uuid.Parse(req.UserID)
	gameID, _ := uuid.Parse(req.GameID)

	bet, err := h.service.PlaceBet(r.Context(), betting.PlaceBetRequest{
		UserID:   userID,
		GameID:   gameID,
		Type:     domain.GameType(req.Type),
		Number:   req.Number,
		Position: domain.HarufPosition(req.Position),
		Amount:   req.Amount,
	})
	if err != nil {
		logger.FromContext(r.Context()).Error(ErrMsgPlaceBetFailed, "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusCreated, PlaceBetResponse{Bet: bet})
}
