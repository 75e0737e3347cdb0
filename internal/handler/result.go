package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/matkaworks/matka-backend/internal/settlement"
)

type ResultHandler struct {
	service settlement.Service
}

func NewResultHandler(service settlement.Service) *ResultHandler {
	return &ResultHandler{service: service}
}

type DeclareResultRequest struct {
	Result  string `json:"result" validate:"required,numeric,max=5"`
	AdminID string `json:"admin_id" validate:"required,uuid"`
}

func (h *ResultHandler) HandleDeclareResult(w http.ResponseWriter, r *http.Request) {
	gameID, ok := PathUUID(r, w, "gameID", ErrMsgInvalidGameID)
	if !ok {
		return
	}

	var req DeclareResultRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Declare result"); err != nil {
		return
	}
	adminID, _ := uuid.Parse(req.AdminID)

	summary, err := h.service.DeclareResult(r.Context(), gameID, req.Result, adminID)
	if err != nil {
		respondServiceError(w, r, ErrMsgDeclareResultFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, summary)
}

func (h *ResultHandler) HandleGetResult(w http.ResponseWriter, r *http.Request) {
	gameID, ok := PathUUID(r, w, "gameID", ErrMsgInvalidGameID)
	if !ok {
		return
	}

	result, err := h.service.RoundResult(r.Context(), gameID)
	if err != nil {
		respondServiceError(w, r, ErrMsgGetResultFailed, err)
		return
	}
	if result == nil {
		http.Error(w, ErrMsgResultNotFoundHTTP, http.StatusNotFound)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

func (h *ResultHandler) HandleUserSummary(w http.ResponseWriter, r *http.Request) {
	gameID, ok := PathUUID(r, w, "gameID", ErrMsgInvalidGameID)
	if !ok {
		return
	}

	userIDStr, ok := GetQueryParam(r, w, "user_id")
	if !ok {
		return
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		http.Error(w, ErrMsgInvalidUserID, http.StatusBadRequest)
		return
	}

	summary, err := h.service.UserSummary(r.Context(), gameID, userID)
	if err != nil {
		respondServiceError(w, r, ErrMsgGetSummaryFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, summary)
}
