// Package ctxdata carries request scoped values (correlation id, tenant) through context.Context.
package ctxdata

import (
	"context"
	"net/http"
	"strings"

	"github.com/sellerdesk/go-fin-ledger/internal/common/idgenerator"
)

const (
	HeaderCorrelationID = "X-Correlation-Id"
	HeaderRequestID     = "X-Request-Id"
	HeaderTenantID      = "X-Tenant-Id"
)

var correlationIDGenerator = idgenerator.New()

type ctxKey int

const (
	correlationIDKey ctxKey = iota
	tenantIDKey
	traceKey
)

// SetContextFromHTTP copies the correlation id, tenant and cloud trace header of
// req into ctx. A correlation id is generated when the caller did not send one.
func SetContextFromHTTP(ctx context.Context, req *http.Request, gcpProjectID string) context.Context {
	correlationID := req.Header.Get(HeaderCorrelationID)
	if correlationID == "" {
		correlationID = req.Header.Get(HeaderRequestID)
	}
	if correlationID == "" {
		correlationID = correlationIDGenerator.Generate("CORR")
	}
	ctx = WithCorrelationID(ctx, correlationID)

	if tenant := strings.TrimSpace(req.Header.Get(HeaderTenantID)); tenant != "" {
		ctx = WithTenantID(ctx, tenant)
	}

	if trace := req.Header.Get("X-Cloud-Trace-Context"); trace != "" && gcpProjectID != "" {
		traceID := strings.SplitN(trace, "/", 2)[0]
		ctx = context.WithValue(ctx, traceKey, "projects/"+gcpProjectID+"/traces/"+traceID)
	}

	return ctx
}

func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey, id)
}

func GetCorrelationId(ctx context.Context) string {
	v, _ := ctx.Value(correlationIDKey).(string)
	return v
}

func WithTenantID(ctx context.Context, tenantID string) context.Context {
	return context.WithValue(ctx, tenantIDKey, tenantID)
}

func GetTenantID(ctx context.Context) string {
	v, _ := ctx.Value(tenantIDKey).(string)
	return v
}

func GetTrace(ctx context.Context) string {
	v, _ := ctx.Value(traceKey).(string)
	return v
}
