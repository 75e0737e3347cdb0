package domain

import (
	"time"

	"github.com/google/uuid"
)

// TransactionType classifies ledger entries.
type TransactionType string

const (
	TransactionTypeBet        TransactionType = "bet"
	TransactionTypeWin        TransactionType = "win"
	TransactionTypeDeposit    TransactionType = "deposit"
	TransactionTypeWithdrawal TransactionType = "withdrawal"
	TransactionTypeRefund     TransactionType = "refund"
)

// TransactionStatus is the processing state of a ledger entry.
type TransactionStatus string

const (
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusFailed    TransactionStatus = "failed"
)

// Transaction is one ledger entry. Bet debits and win credits are created
// inside the same database transaction as the wallet mutation they record.
type Transaction struct {
	ID          uuid.UUID         `json:"id"`
	UserID      uuid.UUID         `json:"user_id"`
	Type        TransactionType   `json:"type"`
	Amount      int64             `json:"amount"`
	Status      TransactionStatus `json:"status"`
	Description string            `json:"description"`
	GameID      *uuid.UUID        `json:"game_id,omitempty"`
	ReferenceID *uuid.UUID        `json:"reference_id,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
}
