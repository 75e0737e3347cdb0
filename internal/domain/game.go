package domain

import (
	"time"

	"github.com/google/uuid"
)

// GameType identifies the wager rules a game runs under.
type GameType string

const (
	GameTypeJodi     GameType = "jodi"
	GameTypeHaruf    GameType = "haruf"
	GameTypeCrossing GameType = "crossing"
)

// ValidGameType reports whether t is a known game type.
func ValidGameType(t GameType) bool {
	switch t {
	case GameTypeJodi, GameTypeHaruf, GameTypeCrossing:
		return true
	}
	return false
}

// GameStatus is the betting-window state of a game at some instant.
// It is computed from the game's timing fields unless an admin override
// (ForcedStatus) is active.
type GameStatus string

const (
	StatusWaiting        GameStatus = "waiting"
	StatusOpen           GameStatus = "open"
	StatusClosed         GameStatus = "closed"
	StatusResultDeclared GameStatus = "result_declared"
)

// ValidGameStatus reports whether s is a known status value.
func ValidGameStatus(s GameStatus) bool {
	switch s {
	case StatusWaiting, StatusOpen, StatusClosed, StatusResultDeclared:
		return true
	}
	return false
}

// PlatformMaxMinBet caps how high an admin can set a game's minimum bet.
const PlatformMaxMinBet int64 = 5000

// Game is the configuration for one numbers game plus the state of its
// current round. Timing fields are wall-clock HH:mm strings interpreted in
// the platform timezone; EndTime numerically before StartTime means the
// betting window crosses midnight.
type Game struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Type GameType  `json:"type"`

	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	ResultTime string `json:"result_time"`

	MinBet int64 `json:"min_bet"`
	MaxBet int64 `json:"max_bet"`

	JodiPayout     float64 `json:"jodi_payout"`
	HarufPayout    float64 `json:"haruf_payout"`
	CrossingPayout float64 `json:"crossing_payout"`
	CommissionPct  float64 `json:"commission_pct"`

	IsActive     bool        `json:"is_active"`
	ForcedStatus *GameStatus `json:"forced_status,omitempty"`

	// Current round. DeclaredResult is nil until an admin declares; it is
	// cleared again when the round rolls over.
	DeclaredResult *string    `json:"declared_result,omitempty"`
	DeclaredBy     *uuid.UUID `json:"declared_by,omitempty"`
	DeclaredAt     *time.Time `json:"declared_at,omitempty"`
	ResultPending  bool       `json:"result_pending"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PayoutMultiplier returns the stake multiplier for the given bet type.
// Returns 0 for unknown types.
func (g *Game) PayoutMultiplier(t GameType) float64 {
	switch t {
	case GameTypeJodi:
		return g.JodiPayout
	case GameTypeHaruf:
		return g.HarufPayout
	case GameTypeCrossing:
		return g.CrossingPayout
	}
	return 0
}
