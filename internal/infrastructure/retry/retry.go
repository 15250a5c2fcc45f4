package retry

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

// Startup retries op with exponential backoff until it succeeds, ctx is done or
// maxElapsed passes. Used for dependencies that may come up after the service
// (local DynamoDB, Postgres, Redis containers).
func Startup(ctx context.Context, logger *zap.Logger, name string, maxElapsed time.Duration, op func(context.Context) error) error {
	policy := backoff.NewExponentialBackOff()
	policy.MaxElapsedTime = maxElapsed
	policy.MaxInterval = 15 * time.Second

	logger.Info("[startup] connecting", zap.String("dependency", name))

	err := backoff.RetryNotify(
		func() error {
			return op(ctx)
		},
		backoff.WithContext(policy, ctx),
		func(err error, next time.Duration) {
			logger.Warn("[startup] dependency not ready, retrying",
				zap.String("dependency", name),
				zap.Error(err),
				zap.Duration("next_attempt_in", next))
		},
	)
	if err != nil {
		return fmt.Errorf("retry.Startup: %s: failed after retries: %w", name, err)
	}

	logger.Info("[startup] connected", zap.String("dependency", name))
	return nil
}
