package wallet

// Log messages
const (
	LogMsgWalletProvisioned = "Wallet provisioned"
)

// Error context strings used when wrapping lower-level failures
const (
	ErrContextFailedToGetWallet    = "failed to get wallet"
	ErrContextFailedToCreateWallet = "failed to create wallet"
)
