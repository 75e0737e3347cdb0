package settlement

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/matkaworks/matka-backend/internal/domain"
	"github.com/matkaworks/matka-backend/internal/repository"
)

// MockRepository implements repository.Settlement for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetGame(ctx context.Context, id uuid.UUID) (*domain.Game, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Game), args.Error(1)
}

func (m *MockRepository) GetBetsByGameAndUser(ctx context.Context, gameID, userID uuid.UUID) ([]domain.Bet, error) {
	args := m.Called(ctx, gameID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Bet), args.Error(1)
}

func (m *MockRepository) GetGameResult(ctx context.Context, gameID uuid.UUID) (*domain.GameResult, error) {
	args := m.Called(ctx, gameID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GameResult), args.Error(1)
}

func (m *MockRepository) BeginSettlementTx(ctx context.Context) (repository.SettlementTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.SettlementTx), args.Error(1)
}

// MockSettlementTx implements repository.SettlementTx for testing
type MockSettlementTx struct {
	mock.Mock
}

func (m *MockSettlementTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSettlementTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSettlementTx) MarkResultDeclared(ctx context.Context, gameID uuid.UUID, declared string, adminID uuid.UUID, at time.Time) (int64, error) {
	args := m.Called(ctx, gameID, declared, adminID, at)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSettlementTx) GetPendingBetsForUpdate(ctx context.Context, gameID uuid.UUID) ([]domain.Bet, error) {
	args := m.Called(ctx, gameID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Bet), args.Error(1)
}

func (m *MockSettlementTx) SettleBet(ctx context.Context, betID uuid.UUID, status domain.BetStatus, winningAmount int64, at time.Time) (int64, error) {
	args := m.Called(ctx, betID, status, winningAmount, at)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSettlementTx) CreditWinnings(ctx context.Context, userID uuid.UUID, amount int64) error {
	args := m.Called(ctx, userID, amount)
	return args.Error(0)
}

func (m *MockSettlementTx) CreateTransaction(ctx context.Context, txn *domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockSettlementTx) UpsertGameResult(ctx context.Context, result *domain.GameResult) error {
	args := m.Called(ctx, result)
	return args.Error(0)
}

// Test fixtures

func testLocation(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)
	return loc
}

// afterClose is past the 21:00 window close but before the 21:30 result
// time, so the round reads closed and is eligible for declaration.
func afterClose(loc *time.Location) func() time.Time {
	return func() time.Time {
		return time.Date(2024, 6, 15, 21, 15, 0, 0, loc)
	}
}

func createClosedGame(gameType domain.GameType) *domain.Game {
	return &domain.Game{
		ID:             uuid.New(),
		Name:           "disawar",
		Type:           gameType,
		StartTime:      "09:00",
		EndTime:        "21:00",
		ResultTime:     "21:30",
		MinBet:         10,
		MaxBet:         10000,
		JodiPayout:     95,
		HarufPayout:    9.5,
		CrossingPayout: 95,
		CommissionPct:  5,
		IsActive:       true,
	}
}

func createPendingBet(gameID uuid.UUID, number string, amount, potential int64) domain.Bet {
	return domain.Bet{
		ID:               uuid.New(),
		UserID:           uuid.New(),
		GameID:           gameID,
		Type:             domain.GameTypeJodi,
		Number:           number,
		Amount:           amount,
		PotentialWinning: potential,
		Status:           domain.BetStatusPending,
	}
}

func TestDeclareResult_SettlesWinnersAndLosers(t *testing.T) {
	loc := testLocation(t)
	game := createClosedGame(domain.GameTypeJodi)
	adminID := uuid.New()

	winner := createPendingBet(game.ID, "47", 100, 9500)
	loser := createPendingBet(game.ID, "13", 200, 19000)
	bets := []domain.Bet{winner, loser}

	mockTx := new(MockSettlementTx)
	mockTx.On("MarkResultDeclared", mock.Anything, game.ID, "47", adminID, mock.Anything).Return(int64(1), nil)
	mockTx.On("GetPendingBetsForUpdate", mock.Anything, game.ID).Return(bets, nil)
	mockTx.On("SettleBet", mock.Anything, winner.ID, domain.BetStatusWon, int64(9500), mock.Anything).Return(int64(1), nil)
	mockTx.On("SettleBet", mock.Anything, loser.ID, domain.BetStatusLost, int64(0), mock.Anything).Return(int64(1), nil)
	mockTx.On("CreditWinnings", mock.Anything, winner.UserID, int64(9500)).Return(nil)
	mockTx.On("CreateTransaction", mock.Anything, mock.MatchedBy(func(txn *domain.Transaction) bool {
		return txn.UserID == winner.UserID &&
			txn.Type == domain.TransactionTypeWin &&
			txn.Amount == 9500
	})).Return(nil)
	mockTx.On("UpsertGameResult", mock.Anything, mock.MatchedBy(func(result *domain.GameResult) bool {
		return result.GameID == game.ID &&
			result.DeclaredResult == "47" &&
			result.TotalBets == 2 &&
			result.Status == domain.ResultStatusDeclared
	})).Return(nil)
	mockTx.On("Commit", mock.Anything).Return(nil)
	mockTx.On("Rollback", mock.Anything).Return(nil)

	mockRepo := new(MockRepository)
	mockRepo.On("GetGame", mock.Anything, game.ID).Return(game, nil)
	mockRepo.On("BeginSettlementTx", mock.Anything).Return(mockTx, nil)

	svc := NewService(mockRepo, loc, afterClose(loc))
	summary, err := svc.DeclareResult(context.Background(), game.ID, "47", adminID)

	require.NoError(t, err)
	assert.Equal(t, 2, summary.TotalBets)
	assert.Equal(t, 1, summary.Winners)
	assert.Equal(t, int64(300), summary.TotalStaked)
	assert.Equal(t, int64(9500), summary.TotalWinningAmount)
	// 5% commission on 300 staked rounds down to 15.
	assert.Equal(t, int64(15), summary.PlatformCommission)
	assert.Equal(t, int64(300-9500-15), summary.NetProfit)
	mockTx.AssertExpectations(t)
}

func TestDeclareResult_GameNotFound(t *testing.T) {
	loc := testLocation(t)

	mockRepo := new(MockRepository)
	mockRepo.On("GetGame", mock.Anything, mock.Anything).Return(nil, nil)

	svc := NewService(mockRepo, loc, afterClose(loc))
	_, err := svc.DeclareResult(context.Background(), uuid.New(), "47", uuid.New())

	assert.ErrorIs(t, err, domain.ErrGameNotFound)
}

func TestDeclareResult_InvalidFormat(t *testing.T) {
	loc := testLocation(t)
	game := createClosedGame(domain.GameTypeJodi)

	tests := []struct {
		name     string
		declared string
	}{
		{"empty", ""},
		{"single digit", "4"},
		{"three digits", "123"},
		{"non numeric", "4x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRepository)
			mockRepo.On("GetGame", mock.Anything, game.ID).Return(game, nil)

			svc := NewService(mockRepo, loc, afterClose(loc))
			_, err := svc.DeclareResult(context.Background(), game.ID, tt.declared, uuid.New())

			assert.ErrorIs(t, err, domain.ErrInvalidResultFormat)
			mockRepo.AssertNotCalled(t, "BeginSettlementTx", mock.Anything)
		})
	}
}

func TestDeclareResult_CrossingAcceptsDigitPool(t *testing.T) {
	loc := testLocation(t)
	game := createClosedGame(domain.GameTypeCrossing)
	adminID := uuid.New()

	mockTx := new(MockSettlementTx)
	mockTx.On("MarkResultDeclared", mock.Anything, game.ID, "458", adminID, mock.Anything).Return(int64(1), nil)
	mockTx.On("GetPendingBetsForUpdate", mock.Anything, game.ID).Return([]domain.Bet{}, nil)
	mockTx.On("UpsertGameResult", mock.Anything, mock.Anything).Return(nil)
	mockTx.On("Commit", mock.Anything).Return(nil)
	mockTx.On("Rollback", mock.Anything).Return(nil)

	mockRepo := new(MockRepository)
	mockRepo.On("GetGame", mock.Anything, game.ID).Return(game, nil)
	mockRepo.On("BeginSettlementTx", mock.Anything).Return(mockTx, nil)

	svc := NewService(mockRepo, loc, afterClose(loc))
	summary, err := svc.DeclareResult(context.Background(), game.ID, "458", adminID)

	require.NoError(t, err)
	assert.Equal(t, 0, summary.TotalBets)
}

func TestDeclareResult_AlreadyDeclaredPrecondition(t *testing.T) {
	loc := testLocation(t)
	game := createClosedGame(domain.GameTypeJodi)
	declared := "62"
	game.DeclaredResult = &declared

	mockRepo := new(MockRepository)
	mockRepo.On("GetGame", mock.Anything, game.ID).Return(game, nil)

	svc := NewService(mockRepo, loc, afterClose(loc))
	_, err := svc.DeclareResult(context.Background(), game.ID, "47", uuid.New())

	assert.ErrorIs(t, err, domain.ErrResultAlreadyDeclared)
	mockRepo.AssertNotCalled(t, "BeginSettlementTx", mock.Anything)
}

func TestDeclareResult_RejectsOpenWindow(t *testing.T) {
	loc := testLocation(t)
	game := createClosedGame(domain.GameTypeJodi)

	noon := func() time.Time {
		return time.Date(2024, 6, 15, 12, 0, 0, 0, loc)
	}

	mockRepo := new(MockRepository)
	mockRepo.On("GetGame", mock.Anything, game.ID).Return(game, nil)

	svc := NewService(mockRepo, loc, noon)
	_, err := svc.DeclareResult(context.Background(), game.ID, "47", uuid.New())

	assert.ErrorIs(t, err, domain.ErrInvalidGameState)
}

func TestDeclareResult_LostRaceOnRoundMarking(t *testing.T) {
	loc := testLocation(t)
	game := createClosedGame(domain.GameTypeJodi)
	adminID := uuid.New()

	mockTx := new(MockSettlementTx)
	mockTx.On("MarkResultDeclared", mock.Anything, game.ID, "47", adminID, mock.Anything).Return(int64(0), nil)
	mockTx.On("Rollback", mock.Anything).Return(nil)

	mockRepo := new(MockRepository)
	mockRepo.On("GetGame", mock.Anything, game.ID).Return(game, nil)
	mockRepo.On("BeginSettlementTx", mock.Anything).Return(mockTx, nil)

	svc := NewService(mockRepo, loc, afterClose(loc))
	_, err := svc.DeclareResult(context.Background(), game.ID, "47", adminID)

	assert.ErrorIs(t, err, domain.ErrResultAlreadyDeclared)
	mockTx.AssertNotCalled(t, "GetPendingBetsForUpdate", mock.Anything, mock.Anything)
	mockTx.AssertNotCalled(t, "CreditWinnings", mock.Anything, mock.Anything, mock.Anything)
	mockTx.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestDeclareResult_AlreadySettledBetIsNotCredited(t *testing.T) {
	loc := testLocation(t)
	game := createClosedGame(domain.GameTypeJodi)
	adminID := uuid.New()

	winner := createPendingBet(game.ID, "47", 100, 9500)

	mockTx := new(MockSettlementTx)
	mockTx.On("MarkResultDeclared", mock.Anything, game.ID, "47", adminID, mock.Anything).Return(int64(1), nil)
	mockTx.On("GetPendingBetsForUpdate", mock.Anything, game.ID).Return([]domain.Bet{winner}, nil)
	mockTx.On("SettleBet", mock.Anything, winner.ID, domain.BetStatusWon, int64(9500), mock.Anything).Return(int64(0), nil)
	mockTx.On("UpsertGameResult", mock.Anything, mock.MatchedBy(func(result *domain.GameResult) bool {
		// The skipped bet still counts toward the per-type breakdown so the
		// staked totals stay consistent.
		bd, ok := result.Breakdown[domain.GameTypeJodi]
		return ok && bd.Bets == 1 && bd.Staked == 100 && bd.Winners == 0
	})).Return(nil)
	mockTx.On("Commit", mock.Anything).Return(nil)
	mockTx.On("Rollback", mock.Anything).Return(nil)

	mockRepo := new(MockRepository)
	mockRepo.On("GetGame", mock.Anything, game.ID).Return(game, nil)
	mockRepo.On("BeginSettlementTx", mock.Anything).Return(mockTx, nil)

	svc := NewService(mockRepo, loc, afterClose(loc))
	summary, err := svc.DeclareResult(context.Background(), game.ID, "47", adminID)

	require.NoError(t, err)
	assert.Equal(t, 0, summary.Winners)
	assert.Equal(t, int64(0), summary.TotalWinningAmount)
	mockTx.AssertNotCalled(t, "CreditWinnings", mock.Anything, mock.Anything, mock.Anything)
}

func TestDeclareResult_CreditFailureAbortsSettlement(t *testing.T) {
	loc := testLocation(t)
	game := createClosedGame(domain.GameTypeJodi)
	adminID := uuid.New()

	winner := createPendingBet(game.ID, "47", 100, 9500)

	mockTx := new(MockSettlementTx)
	mockTx.On("MarkResultDeclared", mock.Anything, game.ID, "47", adminID, mock.Anything).Return(int64(1), nil)
	mockTx.On("GetPendingBetsForUpdate", mock.Anything, game.ID).Return([]domain.Bet{winner}, nil)
	mockTx.On("SettleBet", mock.Anything, winner.ID, domain.BetStatusWon, int64(9500), mock.Anything).Return(int64(1), nil)
	mockTx.On("CreditWinnings", mock.Anything, winner.UserID, int64(9500)).Return(assert.AnError)
	mockTx.On("Rollback", mock.Anything).Return(nil)

	mockRepo := new(MockRepository)
	mockRepo.On("GetGame", mock.Anything, game.ID).Return(game, nil)
	mockRepo.On("BeginSettlementTx", mock.Anything).Return(mockTx, nil)

	svc := NewService(mockRepo, loc, afterClose(loc))
	summary, err := svc.DeclareResult(context.Background(), game.ID, "47", adminID)

	assert.Nil(t, summary)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrContextFailedToCredit)
	mockTx.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestDeclareResult_BreakdownGroupsByType(t *testing.T) {
	loc := testLocation(t)
	game := createClosedGame(domain.GameTypeJodi)
	adminID := uuid.New()

	winner := createPendingBet(game.ID, "47", 100, 9500)
	loser := createPendingBet(game.ID, "13", 50, 4750)

	mockTx := new(MockSettlementTx)
	mockTx.On("MarkResultDeclared", mock.Anything, game.ID, "47", adminID, mock.Anything).Return(int64(1), nil)
	mockTx.On("GetPendingBetsForUpdate", mock.Anything, game.ID).Return([]domain.Bet{winner, loser}, nil)
	mockTx.On("SettleBet", mock.Anything, winner.ID, domain.BetStatusWon, int64(9500), mock.Anything).Return(int64(1), nil)
	mockTx.On("SettleBet", mock.Anything, loser.ID, domain.BetStatusLost, int64(0), mock.Anything).Return(int64(1), nil)
	mockTx.On("CreditWinnings", mock.Anything, winner.UserID, int64(9500)).Return(nil)
	mockTx.On("CreateTransaction", mock.Anything, mock.Anything).Return(nil)
	mockTx.On("UpsertGameResult", mock.Anything, mock.MatchedBy(func(result *domain.GameResult) bool {
		bd, ok := result.Breakdown[domain.GameTypeJodi]
		return ok && bd.Bets == 2 && bd.Staked == 150 && bd.Winners == 1 && bd.WinningAmount == 9500
	})).Return(nil)
	mockTx.On("Commit", mock.Anything).Return(nil)
	mockTx.On("Rollback", mock.Anything).Return(nil)

	mockRepo := new(MockRepository)
	mockRepo.On("GetGame", mock.Anything, game.ID).Return(game, nil)
	mockRepo.On("BeginSettlementTx", mock.Anything).Return(mockTx, nil)

	svc := NewService(mockRepo, loc, afterClose(loc))
	_, err := svc.DeclareResult(context.Background(), game.ID, "47", adminID)

	require.NoError(t, err)
	mockTx.AssertExpectations(t)
}

func TestUserSummary_BeforeDeclaration(t *testing.T) {
	loc := testLocation(t)
	game := createClosedGame(domain.GameTypeJodi)
	userID := uuid.New()

	bet := createPendingBet(game.ID, "47", 100, 9500)
	bet.UserID = userID

	mockRepo := new(MockRepository)
	mockRepo.On("GetGame", mock.Anything, game.ID).Return(game, nil)
	mockRepo.On("GetBetsByGameAndUser", mock.Anything, game.ID, userID).Return([]domain.Bet{bet}, nil)

	svc := NewService(mockRepo, loc, afterClose(loc))
	summary, err := svc.UserSummary(context.Background(), game.ID, userID)

	require.NoError(t, err)
	assert.False(t, summary.ResultDeclared)
	assert.Equal(t, int64(100), summary.TotalStaked)
	assert.Equal(t, int64(0), summary.TotalWon)
	require.Len(t, summary.Outcomes, 1)
	assert.False(t, summary.Outcomes[0].Won)
}

func TestUserSummary_AfterDeclaration(t *testing.T) {
	loc := testLocation(t)
	game := createClosedGame(domain.GameTypeJodi)
	declared := "47"
	game.DeclaredResult = &declared
	userID := uuid.New()

	won := createPendingBet(game.ID, "47", 100, 9500)
	won.UserID = userID
	lost := createPendingBet(game.ID, "13", 50, 4750)
	lost.UserID = userID

	mockRepo := new(MockRepository)
	mockRepo.On("GetGame", mock.Anything, game.ID).Return(game, nil)
	mockRepo.On("GetBetsByGameAndUser", mock.Anything, game.ID, userID).Return([]domain.Bet{won, lost}, nil)

	svc := NewService(mockRepo, loc, afterClose(loc))
	summary, err := svc.UserSummary(context.Background(), game.ID, userID)

	require.NoError(t, err)
	assert.True(t, summary.ResultDeclared)
	assert.Equal(t, "47", summary.DeclaredResult)
	assert.Equal(t, int64(150), summary.TotalStaked)
	assert.Equal(t, int64(9500), summary.TotalWon)
	require.Len(t, summary.Outcomes, 2)
	assert.True(t, summary.Outcomes[0].Won)
	assert.False(t, summary.Outcomes[1].Won)
	mockRepo.AssertNotCalled(t, "BeginSettlementTx", mock.Anything)
}

func TestRoundResult_NoneDeclared(t *testing.T) {
	loc := testLocation(t)
	game := createClosedGame(domain.GameTypeJodi)

	mockRepo := new(MockRepository)
	mockRepo.On("GetGame", mock.Anything, game.ID).Return(game, nil)
	mockRepo.On("GetGameResult", mock.Anything, game.ID).Return(nil, nil)

	svc := NewService(mockRepo, loc, afterClose(loc))
	result, err := svc.RoundResult(context.Background(), game.ID)

	require.NoError(t, err)
	assert.Nil(t, result)
}
