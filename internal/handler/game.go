package handler

import (
	"net/http"

	"github.com/matkaworks/matka-backend/internal/domain"
	"github.com/matkaworks/matka-backend/internal/game"
)

type GameHandler struct {
	service game.Service
}

func NewGameHandler(service game.Service) *GameHandler {
	return &GameHandler{service: service}
}

// GameRequest carries the configurable fields of a game for create and
// update.
type GameRequest struct {
	Name           string  `json:"name" validate:"required,max=100"`
	Type           string  `json:"type" validate:"required,game_type"`
	StartTime      string  `json:"start_time" validate:"required,clock"`
	EndTime        string  `json:"end_time" validate:"required,clock"`
	ResultTime     string  `json:"result_time" validate:"required,clock"`
	MinBet         int64   `json:"min_bet" validate:"required,gt=0"`
	MaxBet         int64   `json:"max_bet" validate:"required,gt=0"`
	JodiPayout     float64 `json:"jodi_payout" validate:"required,gt=0"`
	HarufPayout    float64 `json:"haruf_payout" validate:"required,gt=0"`
	CrossingPayout float64 `json:"crossing_payout" validate:"required,gt=0"`
	CommissionPct  float64 `json:"commission_pct" validate:"gte=0,lte=100"`
	IsActive       *bool   `json:"is_active"`
}

func (req *GameRequest) toDomain() *domain.Game {
	g := &domain.Game{
		Name:           req.Name,
		Type:           domain.GameType(req.Type),
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		ResultTime:     req.ResultTime,
		MinBet:         req.MinBet,
		MaxBet:         req.MaxBet,
		JodiPayout:     req.JodiPayout,
		HarufPayout:    req.HarufPayout,
		CrossingPayout: req.CrossingPayout,
		CommissionPct:  req.CommissionPct,
		IsActive:       true,
	}
	if req.IsActive != nil {
		g.IsActive = *req.IsActive
	}
	return g
}

func (h *GameHandler) HandleCreateGame(w http.ResponseWriter, r *http.Request) {
	var req GameRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Create game"); err != nil {
		return
	}

	created, err := h.service.CreateGame(r.Context(), req.toDomain())
	if err != nil {
		respondServiceError(w, r, ErrMsgCreateGameFailed, err)
		return
	}

	respondJSON(w, http.StatusCreated, created)
}

func (h *GameHandler) HandleListGames(w http.ResponseWriter, r *http.Request) {
	games, err := h.service.ListGames(r.Context())
	if err != nil {
		respondServiceError(w, r, ErrMsgListGamesFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, games)
}

func (h *GameHandler) HandleGetGame(w http.ResponseWriter, r *http.Request) {
	gameID, ok := PathUUID(r, w, "gameID", ErrMsgInvalidGameID)
	if !ok {
		return
	}

	view, err := h.service.GetGame(r.Context(), gameID)
	if err != nil {
		respondServiceError(w, r, ErrMsgGetGameFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, view)
}

func (h *GameHandler) HandleUpdateGame(w http.ResponseWriter, r *http.Request) {
	gameID, ok := PathUUID(r, w, "gameID", ErrMsgInvalidGameID)
	if !ok {
		return
	}

	var req GameRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Update game"); err != nil {
		return
	}

	g := req.toDomain()
	g.ID = gameID

	updated, err := h.service.UpdateGame(r.Context(), g)
	if err != nil {
		respondServiceError(w, r, ErrMsgUpdateGameFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, updated)
}

func (h *GameHandler) HandleDeleteGame(w http.ResponseWriter, r *http.Request) {
	gameID, ok := PathUUID(r, w, "gameID", ErrMsgInvalidGameID)
	if !ok {
		return
	}

	if err := h.service.DeleteGame(r.Context(), gameID); err != nil {
		respondServiceError(w, r, ErrMsgDeleteGameFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgGameDeletedSuccess})
}

// ForceStatusRequest sets the admin override; a null status clears it.
type ForceStatusRequest struct {
	Status *string `json:"status" validate:"omitempty,game_status"`
}

func (h *GameHandler) HandleForceStatus(w http.ResponseWriter, r *http.Request) {
	gameID, ok := PathUUID(r, w, "gameID", ErrMsgInvalidGameID)
	if !ok {
		return
	}

	var req ForceStatusRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Force status"); err != nil {
		return
	}

	var status *domain.GameStatus
	if req.Status != nil {
		s := domain.GameStatus(*req.Status)
		status = &s
	}

	if err := h.service.SetForcedStatus(r.Context(), gameID, status); err != nil {
		respondServiceError(w, r, ErrMsgForceStatusFailed, err)
		return
	}

	msg := MsgForcedStatusSet
	if status == nil {
		msg = MsgForcedStatusCleared
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: msg})
}

// GameStatusResponse is the status polling payload.
type GameStatusResponse struct {
	GameID string `json:"game_id"`
	Status string `json:"status"`
}

func (h *GameHandler) HandleGameStatus(w http.ResponseWriter, r *http.Request) {
	gameID, ok := PathUUID(r, w, "gameID", ErrMsgInvalidGameID)
	if !ok {
		return
	}

	status, err := h.service.GameStatus(r.Context(), gameID)
	if err != nil {
		respondServiceError(w, r, ErrMsgGetGameFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, GameStatusResponse{
		GameID: gameID.String(),
		Status: string(status),
	})
}
