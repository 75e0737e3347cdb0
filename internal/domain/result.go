package domain

import (
	"time"

	"github.com/google/uuid"
)

// ResultStatus is the lifecycle state of a round's result record.
type ResultStatus string

const (
	ResultStatusPending  ResultStatus = "pending"
	ResultStatusDeclared ResultStatus = "declared"
)

// TypeBreakdown aggregates one bet type's activity within a round.
type TypeBreakdown struct {
	Bets          int   `json:"bets"`
	Staked        int64 `json:"staked"`
	Winners       int   `json:"winners"`
	WinningAmount int64 `json:"winning_amount"`
}

// GameResult is the record of one round's outcome. Once Status is declared
// the record is immutable; a second declaration for the same round is
// rejected, never overwritten.
//
// Invariant: NetProfit = TotalStaked - TotalWinningAmount - PlatformCommission,
// recomputed from the settled bet set, never hand-adjusted.
type GameResult struct {
	ID        uuid.UUID `json:"id"`
	GameID    uuid.UUID `json:"game_id"`
	RoundDate time.Time `json:"round_date"`

	DeclaredResult string `json:"declared_result"`

	TotalBets          int   `json:"total_bets"`
	TotalStaked        int64 `json:"total_staked"`
	TotalWinningAmount int64 `json:"total_winning_amount"`
	PlatformCommission int64 `json:"platform_commission"`
	NetProfit          int64 `json:"net_profit"`

	Breakdown map[GameType]TypeBreakdown `json:"breakdown"`

	DeclaredBy  uuid.UUID    `json:"declared_by"`
	DeclaredAt  time.Time    `json:"declared_at"`
	ProcessedAt time.Time    `json:"processed_at"`
	Status      ResultStatus `json:"status"`
}

// SettlementSummary is what a declaration call returns to its caller.
type SettlementSummary struct {
	GameID             uuid.UUID `json:"game_id"`
	DeclaredResult     string    `json:"declared_result"`
	TotalBets          int       `json:"total_bets"`
	Winners            int       `json:"winners"`
	TotalStaked        int64     `json:"total_staked"`
	TotalWinningAmount int64     `json:"total_winning_amount"`
	PlatformCommission int64     `json:"platform_commission"`
	NetProfit          int64     `json:"net_profit"`
}

// BetOutcome is one bet's result as seen in a user summary.
type BetOutcome struct {
	BetID         uuid.UUID `json:"bet_id"`
	Number        string    `json:"number"`
	Amount        int64     `json:"amount"`
	Won           bool      `json:"won"`
	WinningAmount int64     `json:"winning_amount"`
}

// UserGameSummary is the per-user view of a round, derived by re-running the
// wager evaluation read-only against the stored declared result.
type UserGameSummary struct {
	GameID         uuid.UUID    `json:"game_id"`
	UserID         uuid.UUID    `json:"user_id"`
	DeclaredResult string       `json:"declared_result,omitempty"`
	ResultDeclared bool         `json:"result_declared"`
	TotalBets      int          `json:"total_bets"`
	TotalStaked    int64        `json:"total_staked"`
	TotalWon       int64        `json:"total_won"`
	Outcomes       []BetOutcome `json:"outcomes"`
}
