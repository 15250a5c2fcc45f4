package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"freight_pricing/internal/infrastructure/retry"

	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

// ConnectPostgres opens the pricing database and waits until it answers a ping.
func ConnectPostgres(ctx context.Context, url string, maxElapsed time.Duration, logger *zap.Logger) (*sql.DB, error) {
	const operation = "database.ConnectPostgres"

	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("%s: open: %w", operation, err)
	}

	err = retry.Startup(ctx, logger, "postgres", maxElapsed, func(ctx context.Context) error {
		if err := db.PingContext(ctx); err != nil {
			return fmt.Errorf("ping: %w", err)
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", operation, err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	return db, nil
}
