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

	"github.com/matkaworks/matka-backend/internal/domain"
)

func TestHandleGetWallet_Success(t *testing.T) {
	userID := uuid.New()
	wlt := &domain.Wallet{
		ID:             uuid.New(),
		UserID:         userID,
		DepositBalance: 500,
		WinningBalance: 9500,
	}

	mockService := new(MockWalletService)
	mockService.On("GetWallet", mock.Anything, userID).Return(wlt, nil)

	handler := NewWalletHandler(mockService)

	req := httptest.NewRequest("GET", "/api/v1/wallets/"+userID.String(), nil)
	req = withChiParam(req, "userID", userID.String())
	w := httptest.NewRecorder()

	handler.HandleGetWallet(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response domain.Wallet
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, int64(500), response.DepositBalance)
	assert.Equal(t, int64(9500), response.WinningBalance)
}

func TestHandleGetWallet_NotFound(t *testing.T) {
	userID := uuid.New()

	mockService := new(MockWalletService)
	mockService.On("GetWallet", mock.Anything, userID).Return(nil, domain.ErrWalletNotFound)

	handler := NewWalletHandler(mockService)

	req := httptest.NewRequest("GET", "/api/v1/wallets/"+userID.String(), nil)
	req = withChiParam(req, "userID", userID.String())
	w := httptest.NewRecorder()

	handler.HandleGetWallet(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleProvisionWallet_Success(t *testing.T) {
	userID := uuid.New()
	wlt := &domain.Wallet{ID: uuid.New(), UserID: userID}

	mockService := new(MockWalletService)
	mockService.On("ProvisionWallet", mock.Anything, userID).Return(wlt, nil)

	handler := NewWalletHandler(mockService)

	body := `{"user_id":"` + userID.String() + `"}`
	req := httptest.NewRequest("POST", "/api/v1/wallets", strings.NewReader(body))
	w := httptest.NewRecorder()

	handler.HandleProvisionWallet(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockService.AssertExpectations(t)
}

func TestHandleProvisionWallet_RejectsBadUserID(t *testing.T) {
	mockService := new(MockWalletService)
	handler := NewWalletHandler(mockService)

	req := httptest.NewRequest("POST", "/api/v1/wallets", strings.NewReader(`{"user_id":"nope"}`))
	w := httptest.NewRecorder()

	handler.HandleProvisionWallet(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "ProvisionWallet", mock.Anything, mock.Anything)
}
