package betting

// Log messages
const (
	LogMsgPlaceBetCalled = "PlaceBet called"
	LogMsgBetPlaced      = "Bet placed"
)

// Error context strings used when wrapping lower-level failures
const (
	ErrContextFailedToGetGame   = "failed to get game"
	ErrContextFailedToBeginTx   = "failed to begin placement transaction"
	ErrContextFailedToGetWallet = "failed to get wallet"
	ErrContextFailedToDebit     = "failed to debit wallet"
	ErrContextFailedToCreateTxn = "failed to create ledger transaction"
	ErrContextFailedToCreateBet = "failed to create bet"
	ErrContextFailedToCommitTx  = "failed to commit placement transaction"
)

// Status-specific reasons attached to ErrBettingClosed
const (
	ReasonBettingNotOpen   = "betting has not opened yet"
	ReasonBettingClosed    = "betting window has closed for today"
	ReasonResultDeclared   = "result has already been declared for this round"
	ReasonGameNotAvailable = "game is not available for betting"
)

// Ledger descriptions
const (
	TxnDescriptionBetFormat = "bet placed on %s (%s %s)"
)
