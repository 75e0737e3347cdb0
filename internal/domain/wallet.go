package domain

import (
	"time"

	"github.com/google/uuid"
)

// Wallet holds a user's balances. All amounts are whole rupees.
// DepositBalance is the only balance spendable on bets; winnings accrue to
// WinningBalance.
type Wallet struct {
	ID     uuid.UUID `json:"id"`
	UserID uuid.UUID `json:"user_id"`

	DepositBalance    int64 `json:"deposit_balance"`
	WinningBalance    int64 `json:"winning_balance"`
	BonusBalance      int64 `json:"bonus_balance"`
	CommissionBalance int64 `json:"commission_balance"`

	TotalDeposits    int64 `json:"total_deposits"`
	TotalWithdrawals int64 `json:"total_withdrawals"`
	TotalWinnings    int64 `json:"total_winnings"`
	TotalBets        int64 `json:"total_bets"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
