package game

import "time"

// Game config cache sizing. Status polling hits GetGame hard; a short TTL
// bounds staleness after admin edits that race the cache.
const (
	gameCacheSize = 256
	gameCacheTTL  = 5 * time.Second
)

// Log messages
const (
	LogMsgGameCreated       = "Game created"
	LogMsgGameUpdated       = "Game updated"
	LogMsgGameDeleted       = "Game deleted"
	LogMsgForcedStatusSet   = "Forced status set"
	LogMsgForcedStatusClear = "Forced status cleared"
	LogMsgRoundsRolledOver  = "Rounds rolled over"
)

// Error context strings used when wrapping lower-level failures
const (
	ErrContextFailedToGetGame     = "failed to get game"
	ErrContextFailedToCreateGame  = "failed to create game"
	ErrContextFailedToUpdateGame  = "failed to update game"
	ErrContextFailedToDeleteGame  = "failed to delete game"
	ErrContextFailedToListGames   = "failed to list games"
	ErrContextFailedToCountBets   = "failed to count pending bets"
	ErrContextFailedToSetForced   = "failed to set forced status"
	ErrContextFailedToResetRounds = "failed to reset declared rounds"
)
