package database

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Pool is the subset of pgxpool.Pool the rest of the application depends on.
// Readiness checks and shutdown only need ping and close.
type Pool interface {
	Ping(ctx context.Context) error
	Close()
}

// NewPool creates a PostgreSQL connection pool and verifies connectivity
// before returning it.
func NewPool(connString string, maxConns int, maxIdle, maxLife time.Duration) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgParseConnString, err)
	}

	if maxConns > math.MaxInt32 {
		maxConns = math.MaxInt32
	}
	poolConfig.MaxConns = int32(maxConns)
	poolConfig.MinConns = MinPoolConnections
	poolConfig.MaxConnLifetime = maxLife
	poolConfig.MaxConnIdleTime = maxIdle

	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgCreatePool, err)
	}

	pingCtx, cancel := context.WithTimeout(context.Background(), ConnectPingTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgPingDatabase, err)
	}

	slog.Info(LogMsgDatabaseConnected, "max_conns", poolConfig.MaxConns)
	return pool, nil
}
