package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/Shopify/sarama"

	"github.com/sellerdesk/go-fin-ledger/internal/common/ctxdata"
	"github.com/sellerdesk/go-fin-ledger/internal/common/metrics"
	"github.com/sellerdesk/go-fin-ledger/internal/common/xlog"
)

const logIdentifier = "[KAFKA-PUBLISHER]"

type Publisher interface {
	Publish(ctx context.Context, message any, opts ...PublishOption) error
}

type publishOptions struct {
	key     string
	headers map[string]string
}

type PublishOption func(*publishOptions)

// WithKey sets the partition key, events of the same tenant keep their order when keyed by tenant.
func WithKey(key string) PublishOption {
	return func(opts *publishOptions) {
		opts.key = key
	}
}

func WithHeaders(headers map[string]string) PublishOption {
	return func(opts *publishOptions) {
		opts.headers = headers
	}
}

type publisher struct {
	producer sarama.SyncProducer
	topic    string
	metrics  *metrics.PublisherPrometheusMetrics
}

func NewPublisher(p sarama.SyncProducer, topic string, m *metrics.PublisherPrometheusMetrics) Publisher {
	return &publisher{
		producer: p,
		topic:    topic,
		metrics:  m,
	}
}

func (p *publisher) Publish(ctx context.Context, message any, opts ...PublishOption) (err error) {
	start := time.Now()
	defer func() {
		p.metrics.Observe(start, p.topic, err)
	}()

	options := &publishOptions{}
	for _, opt := range opts {
		opt(options)
	}

	msg, err := p.prepareMessage(ctx, message, options)
	if err != nil {
		xlog.Error(ctx, logIdentifier,
			xlog.String("status", "failed prepare message"),
			xlog.String("topic", p.topic),
			xlog.Err(err))
		return err
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		xlog.Error(ctx, logIdentifier,
			xlog.String("status", "failed send message"),
			xlog.String("topic", p.topic),
			xlog.Err(err))
		return fmt.Errorf("send message to %s: %w", p.topic, err)
	}

	xlog.Info(ctx, logIdentifier,
		xlog.String("status", "success publish message"),
		xlog.String("topic", p.topic),
		xlog.Any("partition", partition),
		xlog.Int64("offset", offset))

	return nil
}

func (p *publisher) prepareMessage(ctx context.Context, message any, opts *publishOptions) (*sarama.ProducerMessage, error) {
	msgByte, err := json.Marshal(message)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	producerMsg := &sarama.ProducerMessage{
		Topic: p.topic,
		Value: sarama.ByteEncoder(msgByte),
	}

	if opts.key != "" {
		producerMsg.Key = sarama.StringEncoder(opts.key)
	}

	headers := map[string]string{}
	if correlationID := ctxdata.GetCorrelationId(ctx); correlationID != "" {
		headers[ctxdata.HeaderCorrelationID] = correlationID
	}
	for k, v := range opts.headers {
		headers[k] = v
	}

	keys := make([]string, 0, len(headers))
	for k := range headers {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		producerMsg.Headers = append(producerMsg.Headers, sarama.RecordHeader{
			Key:   []byte(k),
			Value: []byte(headers[k]),
		})
	}

	return producerMsg, nil
}
