package postgres

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"

	"github.com/matkaworks/matka-backend/internal/domain"
)

// setupTestDB connects to the database named by TEST_DATABASE_URL, applies
// migrations, and truncates all tables. Tests calling it are skipped when no
// database is available.
func setupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	connStr := os.Getenv("TEST_DATABASE_URL")
	if connStr == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping integration test")
	}

	sqlDB, err := sql.Open("pgx", connStr)
	require.NoError(t, err)
	defer sqlDB.Close()

	require.NoError(t, goose.SetDialect("postgres"))
	require.NoError(t, goose.Up(sqlDB, "../../../migrations"))

	pool, err := pgxpool.New(context.Background(), connStr)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(context.Background(),
		`TRUNCATE game_results, bets, transactions, wallets, games`)
	require.NoError(t, err)

	return pool
}

// seedGame inserts a jodi game whose betting window is currently open.
func seedGame(t *testing.T, pool *pgxpool.Pool) *domain.Game {
	t.Helper()

	g := &domain.Game{
		ID:             uuid.New(),
		Name:           "test-bazaar-" + uuid.NewString()[:8],
		Type:           domain.GameTypeJodi,
		StartTime:      "00:00",
		EndTime:        "23:58",
		ResultTime:     "23:59",
		MinBet:         10,
		MaxBet:         10000,
		JodiPayout:     90,
		HarufPayout:    9,
		CrossingPayout: 90,
		CommissionPct:  5,
		IsActive:       true,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}
	require.NoError(t, NewGameRepository(pool).CreateGame(context.Background(), g))
	return g
}

// seedWallet provisions a wallet and funds its deposit balance.
func seedWallet(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, deposit int64) *domain.Wallet {
	t.Helper()

	repo := NewWalletRepository(pool)
	w, err := repo.CreateWallet(context.Background(), userID)
	require.NoError(t, err)

	_, err = pool.Exec(context.Background(),
		`UPDATE wallets SET deposit_balance = $2, total_deposits = $2 WHERE id = $1`,
		w.ID, deposit)
	require.NoError(t, err)

	w.DepositBalance = deposit
	w.TotalDeposits = deposit
	return w
}
