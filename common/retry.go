package common

import (
	"context"
	"time"

	"github.com/sethvargo/go-retry"
)

// RetryForever calls fn every interval until it succeeds or ctx is done
func RetryForever(ctx context.Context, interval time.Duration, fn func(context.Context) error) error {
	return retry.Do(ctx, retry.NewConstant(interval), func(ctx context.Context) error {
		if err := fn(ctx); err != nil {
			return retry.RetryableError(err)
		}

		return nil
	})
}
