package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/matkaworks/matka-backend/internal/domain"
	"github.com/matkaworks/matka-backend/internal/repository"
)

type gameRepository struct {
	db *pgxpool.Pool
}

// NewGameRepository creates a PostgreSQL-backed game repository.
func NewGameRepository(db *pgxpool.Pool) repository.Game {
	return &gameRepository{db: db}
}

func (r *gameRepository) CreateGame(ctx context.Context, g *domain.Game) error {
	query := `
		INSERT INTO games (
			id, name, type, start_time, end_time, result_time,
			min_bet, max_bet, jodi_payout, haruf_payout, crossing_payout, commission_pct,
			is_active, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.db.Exec(ctx, query,
		g.ID, g.Name, g.Type, g.StartTime, g.EndTime, g.ResultTime,
		g.MinBet, g.MaxBet, g.JodiPayout, g.HarufPayout, g.CrossingPayout, g.CommissionPct,
		g.IsActive, g.CreatedAt, g.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: game name %q already in use", domain.ErrInvalidInput, g.Name)
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToCreateGame, err)
	}
	return nil
}

func (r *gameRepository) GetGame(ctx context.Context, id uuid.UUID) (*domain.Game, error) {
	return getGame(ctx, r.db, id)
}

func (r *gameRepository) GetGameByName(ctx context.Context, name string) (*domain.Game, error) {
	query := `SELECT ` + gameColumns + ` FROM games WHERE name = $1`
	game, err := scanGameRow(r.db.QueryRow(ctx, query, name))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetGame, err)
	}
	return game, nil
}

func (r *gameRepository) ListGames(ctx context.Context) ([]domain.Game, error) {
	query := `SELECT ` + gameColumns + ` FROM games ORDER BY start_time, name`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListGames, err)
	}
	defer rows.Close()

	games := []domain.Game{}
	for rows.Next() {
		var (
			g      domain.Game
			forced *string
		)
		err := rows.Scan(
			&g.ID, &g.Name, &g.Type, &g.StartTime, &g.EndTime, &g.ResultTime,
			&g.MinBet, &g.MaxBet, &g.JodiPayout, &g.HarufPayout, &g.CrossingPayout, &g.CommissionPct,
			&g.IsActive, &forced, &g.DeclaredResult, &g.DeclaredBy, &g.DeclaredAt,
			&g.ResultPending, &g.CreatedAt, &g.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListGames, err)
		}
		if forced != nil {
			status := domain.GameStatus(*forced)
			g.ForcedStatus = &status
		}
		games = append(games, g)
	}
	return games, rows.Err()
}

func (r *gameRepository) UpdateGame(ctx context.Context, g *domain.Game) error {
	query := `
		UPDATE games SET
			name = $2, type = $3, start_time = $4, end_time = $5, result_time = $6,
			min_bet = $7, max_bet = $8,
			jodi_payout = $9, haruf_payout = $10, crossing_payout = $11, commission_pct = $12,
			is_active = $13, updated_at = $14
		WHERE id = $1`
	tag, err := r.db.Exec(ctx, query,
		g.ID, g.Name, g.Type, g.StartTime, g.EndTime, g.ResultTime,
		g.MinBet, g.MaxBet, g.JodiPayout, g.HarufPayout, g.CrossingPayout, g.CommissionPct,
		g.IsActive, g.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: game name %q already in use", domain.ErrInvalidInput, g.Name)
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateGame, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrGameNotFound
	}
	return nil
}

func (r *gameRepository) DeleteGame(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM games WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteGame, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrGameNotFound
	}
	return nil
}

func (r *gameRepository) SetForcedStatus(ctx context.Context, id uuid.UUID, status *domain.GameStatus) error {
	var forced *string
	if status != nil {
		s := string(*status)
		forced = &s
	}

	tag, err := r.db.Exec(ctx,
		`UPDATE games SET forced_status = $2, updated_at = NOW() WHERE id = $1`, id, forced)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSetForced, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrGameNotFound
	}
	return nil
}

func (r *gameRepository) CountPendingBets(ctx context.Context, gameID uuid.UUID) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM bets WHERE game_id = $1 AND status = $2`,
		gameID, domain.BetStatusPending).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToCountBets, err)
	}
	return count, nil
}

// ResetDeclaredRounds clears declared round state on every game carrying a
// result, opening the next round. Skips games whose pending bets were never
// settled so a stuck round cannot silently vanish.
func (r *gameRepository) ResetDeclaredRounds(ctx context.Context) (int64, error) {
	query := `
		UPDATE games SET
			declared_result = NULL, declared_by = NULL, declared_at = NULL,
			result_pending = FALSE, updated_at = NOW()
		WHERE declared_result IS NOT NULL
		  AND NOT EXISTS (
			SELECT 1 FROM bets
			WHERE bets.game_id = games.id AND bets.status = $1
		  )`
	tag, err := r.db.Exec(ctx, query, domain.BetStatusPending)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToResetRounds, err)
	}
	return tag.RowsAffected(), nil
}
