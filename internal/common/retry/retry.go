package retry

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/sellerdesk/go-fin-ledger/internal/common/xlog"
	"github.com/sellerdesk/go-fin-ledger/internal/config"
)

const DefaultMaxRetries uint64 = 3

type Retryer interface {
	// Retry runs operation until it succeeds, returns a permanent error or the
	// retry budget is spent. fallback receives the last error in the latter two
	// cases and its result is returned.
	Retry(ctx context.Context, operation func() error, fallback func(err error) error) error
	StopRetryWithErr(err error) error
}

type exponentialBackoff struct {
	ebCfg config.ExponentialBackOffConfig
}

func NewExponentialBackOff(ebCfg config.ExponentialBackOffConfig) Retryer {
	if ebCfg.MaxBackoffTime <= 0 {
		ebCfg.MaxBackoffTime = backoff.DefaultMaxElapsedTime
	}

	if ebCfg.BackoffMultiplier <= 0 {
		ebCfg.BackoffMultiplier = backoff.DefaultMultiplier
	}

	if ebCfg.InitialInterval <= 0 {
		ebCfg.InitialInterval = backoff.DefaultInitialInterval
	}

	if ebCfg.MaxRetries == 0 {
		ebCfg.MaxRetries = DefaultMaxRetries
	}

	return &exponentialBackoff{ebCfg: ebCfg}
}

func (r *exponentialBackoff) Retry(ctx context.Context, operation func() error, fallback func(err error) error) error {
	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = r.ebCfg.InitialInterval
	eb.MaxElapsedTime = r.ebCfg.MaxBackoffTime
	eb.Multiplier = r.ebCfg.BackoffMultiplier

	attempt := 0
	notify := func(err error, next time.Duration) {
		attempt++
		xlog.Debug(ctx, "[RETRY] operation failed",
			xlog.Int("attempt", attempt),
			xlog.Duration("next", next),
			xlog.Err(err))
	}

	err := backoff.RetryNotify(operation, backoff.WithContext(backoff.WithMaxRetries(eb, r.ebCfg.MaxRetries), ctx), notify)
	if err == nil {
		return nil
	}

	if fallback == nil {
		return err
	}
	return fallback(err)
}

// StopRetryWithErr marks err as permanent, call it inside operation.
func (r *exponentialBackoff) StopRetryWithErr(err error) error {
	return backoff.Permanent(err)
}
