package settlement

// Log messages
const (
	LogMsgDeclareResultCalled = "DeclareResult called"
	LogMsgRoundSettled        = "Round settled"
	LogMsgBetAlreadySettled   = "Bet already settled, skipping"
	LogMsgUnknownBetType      = "Bet has unknown type, marking lost"
)

// Error context strings used when wrapping lower-level failures
const (
	ErrContextFailedToGetGame      = "failed to get game"
	ErrContextFailedToGetBets      = "failed to get pending bets"
	ErrContextFailedToGetUserBets  = "failed to get user bets"
	ErrContextFailedToBeginTx      = "failed to begin settlement transaction"
	ErrContextFailedToMarkDeclared = "failed to mark result declared"
	ErrContextFailedToSettleBet    = "failed to settle bet"
	ErrContextFailedToCredit       = "failed to credit winnings"
	ErrContextFailedToCreateTxn    = "failed to create ledger transaction"
	ErrContextFailedToSaveResult   = "failed to save game result"
	ErrContextFailedToCommitTx     = "failed to commit settlement transaction"
)

// Ledger descriptions
const (
	TxnDescriptionWinFormat = "winnings for %s (%s %s, result %s)"
)
