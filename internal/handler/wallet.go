package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/matkaworks/matka-backend/internal/wallet"
)

type WalletHandler struct {
	service wallet.Service
}

func NewWalletHandler(service wallet.Service) *WalletHandler {
	return &WalletHandler{service: service}
}

func (h *WalletHandler) HandleGetWallet(w http.ResponseWriter, r *http.Request) {
	userID, ok := PathUUID(r, w, "userID", ErrMsgInvalidUserID)
	if !ok {
		return
	}

	wlt, err := h.service.GetWallet(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, ErrMsgGetWalletFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, wlt)
}

type ProvisionWalletRequest struct {
	UserID string `json:"user_id" validate:"required,uuid"`
}

func (h *WalletHandler) HandleProvisionWallet(w http.ResponseWriter, r *http.Request) {
	var req ProvisionWalletRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Provision wallet"); err != nil {
		return
	}
	userID, _ := uuid.Parse(req.UserID)

	wlt, err := h.service.ProvisionWallet(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, ErrMsgGetWalletFailed, err)
		return
	}

	respondJSON(w, http.StatusCreated, wlt)
}
