package handler

import (
	"context"
	"net/http"
	"os"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/matkaworks/matka-backend/internal/betting"
	"github.com/matkaworks/matka-backend/internal/domain"
	"github.com/matkaworks/matka-backend/internal/game"
	"github.com/matkaworks/matka-backend/internal/settlement"
	"github.com/matkaworks/matka-backend/internal/wallet"
)

func TestMain(m *testing.M) {
	InitValidator()
	os.Exit(m.Run())
}

// withChiParam attaches a chi URL parameter to the request context so
// handlers under test can read path variables without a full router.
func withChiParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// MockBettingService implements betting.Service
type MockBettingService struct {
	mock.Mock
}

func (m *MockBettingService) PlaceBet(ctx context.Context, req betting.PlaceBetRequest) (*domain.Bet, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bet), args.Error(1)
}

// MockGameService implements game.Service
type MockGameService struct {
	mock.Mock
}

func (m *MockGameService) CreateGame(ctx context.Context, g *domain.Game) (*domain.Game, error) {
	args := m.Called(ctx, g)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Game), args.Error(1)
}

func (m *MockGameService) GetGame(ctx context.Context, id uuid.UUID) (*game.GameView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*game.GameView), args.Error(1)
}

func (m *MockGameService) ListGames(ctx context.Context) ([]game.GameView, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]game.GameView), args.Error(1)
}

func (m *MockGameService) UpdateGame(ctx context.Context, g *domain.Game) (*domain.Game, error) {
	args := m.Called(ctx, g)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Game), args.Error(1)
}

func (m *MockGameService) DeleteGame(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockGameService) SetForcedStatus(ctx context.Context, id uuid.UUID, status *domain.GameStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockGameService) GameStatus(ctx context.Context, id uuid.UUID) (domain.GameStatus, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.GameStatus), args.Error(1)
}

func (m *MockGameService) RolloverRounds(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockSettlementService implements settlement.Service
type MockSettlementService struct {
	mock.Mock
}

func (m *MockSettlementService) DeclareResult(ctx context.Context, gameID uuid.UUID, declared string, adminID uuid.UUID) (*domain.SettlementSummary, error) {
	args := m.Called(ctx, gameID, declared, adminID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SettlementSummary), args.Error(1)
}

func (m *MockSettlementService) UserSummary(ctx context.Context, gameID, userID uuid.UUID) (*domain.UserGameSummary, error) {
	args := m.Called(ctx, gameID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserGameSummary), args.Error(1)
}

func (m *MockSettlementService) RoundResult(ctx context.Context, gameID uuid.UUID) (*domain.GameResult, error) {
	args := m.Called(ctx, gameID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GameResult), args.Error(1)
}

// MockWalletService implements wallet.Service
type MockWalletService struct {
	mock.Mock
}

func (m *MockWalletService) GetWallet(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}

func (m *MockWalletService) ProvisionWallet(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}

var (
	_ betting.Service    = (*MockBettingService)(nil)
	_ game.Service       = (*MockGameService)(nil)
	_ settlement.Service = (*MockSettlementService)(nil)
	_ wallet.Service     = (*MockWalletService)(nil)
)
