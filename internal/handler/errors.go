package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query/path parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidGameID     = "Invalid game ID"
	ErrMsgInvalidUserID     = "Invalid user ID"

	// Operation error messages
	ErrMsgPlaceBetFailed      = "Failed to place bet"
	ErrMsgDeclareResultFailed = "Failed to declare result"
	ErrMsgGetGameFailed       = "Failed to get game"
	ErrMsgListGamesFailed     = "Failed to list games"
	ErrMsgCreateGameFailed    = "Failed to create game"
	ErrMsgUpdateGameFailed    = "Failed to update game"
	ErrMsgDeleteGameFailed    = "Failed to delete game"
	ErrMsgForceStatusFailed   = "Failed to set forced status"
	ErrMsgGetSummaryFailed    = "Failed to get summary"
	ErrMsgGetResultFailed     = "Failed to get result"
	ErrMsgGetWalletFailed     = "Failed to get wallet"
	ErrMsgWalletNotFoundHTTP  = "Wallet not found"
	ErrMsgGameNotFoundHTTP    = "Game not found"
	ErrMsgResultNotFoundHTTP  = "No result declared for this round"
)

// Success messages for API responses
const (
	MsgGameDeletedSuccess    = "Game deleted successfully"
	MsgForcedStatusSet       = "Forced status updated"
	MsgForcedStatusCleared   = "Forced status cleared"
)
