package database

import "time"

// Connection pool settings
const (
	// MinPoolConnections is the number of idle connections kept warm so the
	// first bets after a quiet period do not pay the connect cost.
	MinPoolConnections = 2

	// ConnectPingTimeout bounds the startup connectivity check.
	ConnectPingTimeout = 5 * time.Second
)

// Error messages
const (
	ErrMsgParseConnString = "failed to parse connection string"
	ErrMsgCreatePool      = "failed to create connection pool"
	ErrMsgPingDatabase    = "failed to ping database"
)

// Log messages
const (
	LogMsgDatabaseConnected = "Connected to the database"
)
