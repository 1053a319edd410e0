package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"gogarvis-backend/internal/config"
	"gogarvis-backend/pkg/logger"
)

// PostgresDB wrap connection pool và lifecycle.
type PostgresDB struct {
	Pool *pgxpool.Pool
}

const (
	connectMaxRetries = 5
	connectRetryDelay = 2 * time.Second
	connectTimeout    = 10 * time.Second
)

// Connect tạo pool với retry + exponential backoff - container khởi động
// trước Postgres trong docker-compose là chuyện thường.
func Connect(ctx context.Context, cfg config.DatabaseConfig) (*PostgresDB, error) {
	dsn := fmt.Sprintf(
		"postgresql://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Database, cfg.SSLMode,
	)

	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}
	poolCfg.MaxConns = int32(cfg.MaxConns)
	poolCfg.MinConns = int32(cfg.MinConns)
	poolCfg.MaxConnLifetime = time.Hour
	poolCfg.MaxConnIdleTime = 30 * time.Minute
	poolCfg.HealthCheckPeriod = time.Minute
	poolCfg.ConnConfig.ConnectTimeout = connectTimeout

	var pool *pgxpool.Pool
	var lastErr error
	delay := connectRetryDelay
	for attempt := 1; attempt <= connectMaxRetries; attempt++ {
		pool, lastErr = pgxpool.NewWithConfig(ctx, poolCfg)
		if lastErr == nil {
			pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			lastErr = pool.Ping(pingCtx)
			cancel()
			if lastErr == nil {
				logger.Info("database connected", map[string]interface{}{
					"host":     cfg.Host,
					"database": cfg.Database,
					"attempt":  attempt,
				})
				return &PostgresDB{Pool: pool}, nil
			}
			pool.Close()
		}

		logger.Warn("database connection failed, retrying", map[string]interface{}{
			"attempt":  attempt,
			"error":    lastErr.Error(),
			"delay_ms": delay.Milliseconds(),
		})

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", connectMaxRetries, lastErr)
}

// Ping cho health check endpoints.
func (db *PostgresDB) Ping(ctx context.Context) error {
	if db.Pool == nil {
		return fmt.Errorf("database pool is not initialized")
	}
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.Pool.Ping(pingCtx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

// Close idempotent - gọi nhiều lần an toàn.
func (db *PostgresDB) Close() {
	if db.Pool == nil {
		return
	}
	db.Pool.Close()
	db.Pool = nil
}
