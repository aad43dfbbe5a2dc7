package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	ImportResultImported  = "imported"
	ImportResultDuplicate = "duplicate"
	ImportResultError     = "error"

	OperationPreview = "preview"
	OperationImport  = "import"

	StatusSuccess = "success"
	StatusFailed  = "failed"
)

type OfxImportPrometheusMetrics struct {
	transactions *prometheus.CounterVec
	requests     *prometheus.CounterVec
}

func newOfxImportPrometheusMetrics(reg prometheus.Registerer) *OfxImportPrometheusMetrics {
	transactions := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ofx_import_transactions_total",
			Help: "Statement transactions processed by import, by outcome and direction.",
		},
		[]string{"result", "type"},
	)
	requests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ofx_import_requests_total",
			Help: "Preview and import calls by outcome.",
		},
		[]string{"operation", "status"},
	)
	reg.MustRegister(transactions, requests)

	return &OfxImportPrometheusMetrics{
		transactions: transactions,
		requests:     requests,
	}
}

// IncTransaction counts one transaction outcome. Safe on a nil receiver.
func (m *OfxImportPrometheusMetrics) IncTransaction(result, direction string) {
	if m == nil {
		return
	}
	m.transactions.WithLabelValues(result, direction).Inc()
}

// IncRequest counts one preview or import call. Safe on a nil receiver.
func (m *OfxImportPrometheusMetrics) IncRequest(operation string, err error) {
	if m == nil {
		return
	}
	status := StatusSuccess
	if err != nil {
		status = StatusFailed
	}
	m.requests.WithLabelValues(operation, status).Inc()
}
