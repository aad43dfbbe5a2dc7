// Package flag exposes the feature toggles of the service, backed by Unleash.
package flag

import (
	"context"
	"net/http"
	"time"

	"github.com/Unleash/unleash-client-go/v3"
	unleashctx "github.com/Unleash/unleash-client-go/v3/context"

	"github.com/sellerdesk/go-fin-ledger/internal/common/ctxdata"
	"github.com/sellerdesk/go-fin-ledger/internal/common/xlog"
	"github.com/sellerdesk/go-fin-ledger/internal/config"
)

const readyTimeout = 5 * time.Second

type Client interface {
	// IsEnabled evaluates key for the tenant found in ctx.
	IsEnabled(ctx context.Context, key string) bool
	Close() error
}

type unleashClient struct {
	client   *unleash.Client
	fallback bool
}

// New connects to Unleash. Without a configured URL every flag resolves to
// its static value, which is enabled.
func New(cfg *config.Config) (Client, error) {
	if cfg.FeatureFlagSDKConfig.URL == "" {
		return NewStatic(nil, true), nil
	}

	refresh := cfg.FeatureFlagSDKConfig.RefreshInterval
	if refresh <= 0 {
		refresh = 15 * time.Second
	}

	c, err := unleash.NewClient(
		unleash.WithAppName(cfg.App.Name),
		unleash.WithUrl(cfg.FeatureFlagSDKConfig.URL),
		unleash.WithEnvironment(cfg.FeatureFlagSDKConfig.Env),
		unleash.WithRefreshInterval(refresh),
		unleash.WithCustomHeaders(http.Header{"Authorization": {cfg.FeatureFlagSDKConfig.Token}}),
		unleash.WithHttpClient(http.DefaultClient),
		unleash.WithListener(logListener{}),
	)
	if err != nil {
		return nil, err
	}

	select {
	case <-c.Ready():
	case <-time.After(readyTimeout):
		xlog.Warn(context.Background(), "[FEATURE-FLAG] unleash not ready, serving fallback values until first sync")
	}

	return &unleashClient{client: c, fallback: true}, nil
}

func (u *unleashClient) IsEnabled(ctx context.Context, key string) bool {
	return u.client.IsEnabled(key,
		unleash.WithContext(unleashctx.Context{UserId: ctxdata.GetTenantID(ctx)}),
		unleash.WithFallback(u.fallback),
	)
}

func (u *unleashClient) Close() error {
	return u.client.Close()
}

type staticClient struct {
	values   map[string]bool
	fallback bool
}

// NewStatic answers from values, keys not listed resolve to fallback.
func NewStatic(values map[string]bool, fallback bool) Client {
	return &staticClient{values: values, fallback: fallback}
}

func (s *staticClient) IsEnabled(_ context.Context, key string) bool {
	if v, ok := s.values[key]; ok {
		return v
	}
	return s.fallback
}

func (s *staticClient) Close() error { return nil }

type logListener struct{}

func (logListener) OnError(err error) {
	xlog.Warn(context.Background(), "[FEATURE-FLAG] unleash error", xlog.Err(err))
}

func (logListener) OnWarning(err error) {
	xlog.Debug(context.Background(), "[FEATURE-FLAG] unleash warning", xlog.Err(err))
}

func (logListener) OnReady() {
	xlog.Info(context.Background(), "[FEATURE-FLAG] unleash ready")
}

func (logListener) OnCount(string, bool) {}

func (logListener) OnSent(unleash.MetricsData) {}

func (logListener) OnRegistered(unleash.ClientData) {}
