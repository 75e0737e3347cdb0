// Package wallet exposes read and provisioning operations on user wallets.
// Balance mutations happen only inside the betting and settlement
// transactions.
package wallet

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/matkaworks/matka-backend/internal/domain"
	"github.com/matkaworks/matka-backend/internal/logger"
	"github.com/matkaworks/matka-backend/internal/repository"
)

// Service defines the interface for wallet operations
type Service interface {
	GetWallet(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error)
	ProvisionWallet(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error)
}

type service struct {
	repo repository.Wallet
}

// NewService creates a new wallet service.
func NewService(repo repository.Wallet) Service {
	return &service{repo: repo}
}

func (s *service) GetWallet(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error) {
	w, err := s.repo.GetWalletByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetWallet, err)
	}
	if w == nil {
		return nil, domain.ErrWalletNotFound
	}
	return w, nil
}

// ProvisionWallet creates the user's wallet if it does not exist yet and
// returns it. Safe to call repeatedly.
func (s *service) ProvisionWallet(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error) {
	w, err := s.repo.CreateWallet(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCreateWallet, err)
	}

	logger.FromContext(ctx).Info(LogMsgWalletProvisioned, "user_id", userID, "wallet_id", w.ID)
	return w, nil
}
