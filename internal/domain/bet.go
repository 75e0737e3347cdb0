package domain

import (
	"time"

	"github.com/google/uuid"
)

// HarufPosition tags which digit of the declared result a haruf bet targets.
type HarufPosition string

const (
	HarufFirst HarufPosition = "first" // andhar
	HarufLast  HarufPosition = "last"  // bahar
)

// BetStatus is the settlement state of a bet. A bet transitions out of
// pending exactly once.
type BetStatus string

const (
	BetStatusPending   BetStatus = "pending"
	BetStatusWon       BetStatus = "won"
	BetStatusLost      BetStatus = "lost"
	BetStatusCancelled BetStatus = "cancelled"
	BetStatusRefunded  BetStatus = "refunded"
)

// Selection is what a bet is actually on: the wagered number plus the
// type-specific qualifier. Position is only meaningful for haruf; legacy
// haruf rows placed before the positional rule carry an empty Position.
type Selection struct {
	Type     GameType      `json:"type"`
	Number   string        `json:"number"`
	Position HarufPosition `json:"position,omitempty"`
}

// Bet is a single wager. PotentialWinning is frozen at placement time;
// multiplier changes on the game never retroactively affect placed bets.
type Bet struct {
	ID     uuid.UUID `json:"id"`
	UserID uuid.UUID `json:"user_id"`
	GameID uuid.UUID `json:"game_id"`

	Type     GameType      `json:"type"`
	Number   string        `json:"number"`
	Position HarufPosition `json:"position,omitempty"`

	Amount           int64 `json:"amount"`
	PotentialWinning int64 `json:"potential_winning"`
	WinningAmount    int64 `json:"winning_amount"`

	Status        BetStatus  `json:"status"`
	TransactionID uuid.UUID  `json:"transaction_id"`
	PlacedAt      time.Time  `json:"placed_at"`
	SettledAt     *time.Time `json:"settled_at,omitempty"`
}

// Selection returns the bet's wager selection for evaluation.
func (b *Bet) Selection() Selection {
	return Selection{Type: b.Type, Number: b.Number, Position: b.Position}
}
