package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Game errors
	ErrMsgGameNotFound     = "game not found"
	ErrMsgGameInactive     = "game is not active"
	ErrMsgInvalidGameState = "invalid game state for this operation"
	ErrMsgBettingClosed    = "betting is closed"
	ErrMsgPendingBetsExist = "game has pending bets"

	// Bet errors
	ErrMsgInvalidAmount    = "bet amount outside allowed range"
	ErrMsgInvalidBetType   = "bet type does not match game type"
	ErrMsgInvalidBetNumber = "invalid bet number for this game type"

	// Wallet errors
	ErrMsgWalletNotFound      = "wallet not found"
	ErrMsgInsufficientBalance = "insufficient deposit balance"

	// Result errors
	ErrMsgResultAlreadyDeclared = "result already declared for this round"
	ErrMsgInvalidResultFormat   = "invalid result format"

	// Database/System errors
	ErrMsgTxClosed      = "tx is closed"
	ErrMsgDatabaseError = "database error"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Game errors
	ErrGameNotFound     = errors.New(ErrMsgGameNotFound)
	ErrGameInactive     = errors.New(ErrMsgGameInactive)
	ErrInvalidGameState = errors.New(ErrMsgInvalidGameState)
	ErrBettingClosed    = errors.New(ErrMsgBettingClosed)
	ErrPendingBetsExist = errors.New(ErrMsgPendingBetsExist)

	// Bet errors
	ErrInvalidAmount    = errors.New(ErrMsgInvalidAmount)
	ErrInvalidBetType   = errors.New(ErrMsgInvalidBetType)
	ErrInvalidBetNumber = errors.New(ErrMsgInvalidBetNumber)

	// Wallet errors
	ErrWalletNotFound      = errors.New(ErrMsgWalletNotFound)
	ErrInsufficientBalance = errors.New(ErrMsgInsufficientBalance)

	// Result errors
	ErrResultAlreadyDeclared = errors.New(ErrMsgResultAlreadyDeclared)
	ErrInvalidResultFormat   = errors.New(ErrMsgInvalidResultFormat)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
