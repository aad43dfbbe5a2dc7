package publisher

import (
	"time"

	"github.com/Shopify/sarama"
	gometrics "github.com/rcrowley/go-metrics"
)

type Option func(*sarama.Config)

// NewKafkaSyncProducer dials the brokers and waits for the leader ack on every send.
func NewKafkaSyncProducer(brokers []string, opts ...Option) (sarama.SyncProducer, error) {
	saramaCfg := newSaramaConfig()
	for _, opt := range opts {
		opt(saramaCfg)
	}

	return sarama.NewSyncProducer(brokers, saramaCfg)
}

func newSaramaConfig() *sarama.Config {
	saramaCfg := sarama.NewConfig()
	saramaCfg.Producer.RequiredAcks = sarama.WaitForLocal
	saramaCfg.Producer.Return.Successes = true
	saramaCfg.Producer.Return.Errors = true
	saramaCfg.Producer.Timeout = 2 * time.Second
	saramaCfg.Net.DialTimeout = 2 * time.Second
	saramaCfg.Net.ReadTimeout = 2 * time.Second
	saramaCfg.Net.WriteTimeout = 2 * time.Second

	return saramaCfg
}

func WithClientID(clientID string) Option {
	return func(cfg *sarama.Config) {
		if clientID != "" {
			cfg.ClientID = clientID
		}
	}
}

// WithMaxRetry overrides how many times sarama re-sends a failed batch.
func WithMaxRetry(n int) Option {
	return func(cfg *sarama.Config) {
		cfg.Producer.Retry.Max = n
	}
}

// WithMetricRegistry collects the producer's own metrics into registry.
func WithMetricRegistry(registry gometrics.Registry) Option {
	return func(cfg *sarama.Config) {
		if registry != nil {
			cfg.MetricRegistry = registry
		}
	}
}
