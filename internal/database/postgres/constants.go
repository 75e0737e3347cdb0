package postgres

// Error Messages - Game Repository
const (
	ErrMsgFailedToCreateGame  = "failed to create game"
	ErrMsgFailedToGetGame     = "failed to get game"
	ErrMsgFailedToListGames   = "failed to list games"
	ErrMsgFailedToUpdateGame  = "failed to update game"
	ErrMsgFailedToDeleteGame  = "failed to delete game"
	ErrMsgFailedToSetForced   = "failed to set forced status"
	ErrMsgFailedToCountBets   = "failed to count pending bets"
	ErrMsgFailedToResetRounds = "failed to reset declared rounds"
)

// Error Messages - Bet / Settlement Repository
const (
	ErrMsgFailedToGetWallet      = "failed to get wallet"
	ErrMsgFailedToCreateWallet   = "failed to create wallet"
	ErrMsgFailedToDebitWallet    = "failed to debit wallet"
	ErrMsgFailedToCreditWallet   = "failed to credit wallet"
	ErrMsgFailedToCreateBet      = "failed to create bet"
	ErrMsgFailedToGetBets        = "failed to get bets"
	ErrMsgFailedToSettleBet      = "failed to settle bet"
	ErrMsgFailedToMarkDeclared   = "failed to mark result declared"
	ErrMsgFailedToCreateTxn      = "failed to create transaction record"
	ErrMsgFailedToGetResult      = "failed to get game result"
	ErrMsgFailedToUpsertResult   = "failed to upsert game result"
	ErrMsgFailedToBeginTx        = "failed to begin transaction"
	ErrMsgFailedToMarshalBreak   = "failed to marshal result breakdown"
	ErrMsgFailedToUnmarshalBreak = "failed to unmarshal result breakdown"
)
