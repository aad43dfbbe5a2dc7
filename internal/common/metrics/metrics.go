package metrics

import (
	"database/sql"
	"fmt"
	"time"

	prometheusmetrics "github.com/deathowl/go-metrics-prometheus"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	gometrics "github.com/rcrowley/go-metrics"
	"github.com/redis/go-redis/extra/redisprometheus/v9"
	"github.com/redis/go-redis/v9"
)

type Metrics interface {
	RegisterDB(db *sql.DB, role string, dbName string) error
	RegisterRedis(client *redis.Client, serviceName, namespace string) error
	EchoMiddleware(serviceName string) echo.MiddlewareFunc
	EchoHandler() echo.HandlerFunc
	SaramaRegistry(name string, flushInterval time.Duration) gometrics.Registry
	PrometheusRegisterer() prometheus.Registerer
	GetPublisherPrometheus() *PublisherPrometheusMetrics
	GetOfxImportPrometheus() *OfxImportPrometheusMetrics
}

type metrics struct {
	reg              prometheus.Registerer
	gatherer         prometheus.Gatherer
	publisherMetrics *PublisherPrometheusMetrics
	ofxImportMetrics *OfxImportPrometheusMetrics
}

// New registers on the prometheus default registry.
func New() Metrics {
	return newMetrics(prometheus.DefaultRegisterer, prometheus.DefaultGatherer)
}

// NewWithRegistry keeps every collector on reg, tests use a fresh registry each.
func NewWithRegistry(reg *prometheus.Registry) Metrics {
	return newMetrics(reg, reg)
}

func newMetrics(reg prometheus.Registerer, gatherer prometheus.Gatherer) *metrics {
	return &metrics{
		reg:              reg,
		gatherer:         gatherer,
		publisherMetrics: newPublisherPrometheusMetrics(reg),
		ofxImportMetrics: newOfxImportPrometheusMetrics(reg),
	}
}

func (m *metrics) RegisterDB(db *sql.DB, role string, dbName string) error {
	return m.reg.Register(collectors.NewDBStatsCollector(db, FlattenName(fmt.Sprintf("%s_%s", dbName, role))))
}

func (m *metrics) RegisterRedis(client *redis.Client, serviceName, namespace string) error {
	return m.reg.Register(redisprometheus.NewCollector(BuildFQName(serviceName, namespace), "redis", client))
}

func (m *metrics) EchoMiddleware(serviceName string) echo.MiddlewareFunc {
	return echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  FlattenName(serviceName),
		Registerer: m.reg,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	})
}

func (m *metrics) EchoHandler() echo.HandlerFunc {
	return echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: m.gatherer})
}

// SaramaRegistry returns a registry for the kafka client whose metrics are
// copied to prometheus every flushInterval, prefixed with name.
func (m *metrics) SaramaRegistry(name string, flushInterval time.Duration) gometrics.Registry {
	registry := gometrics.NewPrefixedRegistry(FlattenName(name) + "_")
	provider := prometheusmetrics.NewPrometheusProvider(registry, "", "", m.reg, flushInterval)
	go provider.UpdatePrometheusMetrics()

	return registry
}

func (m *metrics) PrometheusRegisterer() prometheus.Registerer {
	return m.reg
}

func (m *metrics) GetPublisherPrometheus() *PublisherPrometheusMetrics {
	return m.publisherMetrics
}

func (m *metrics) GetOfxImportPrometheus() *OfxImportPrometheusMetrics {
	return m.ofxImportMetrics
}
