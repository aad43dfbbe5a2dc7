package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/sellerdesk/go-fin-ledger/internal/common/cache"
	"github.com/sellerdesk/go-fin-ledger/internal/monitoring"
)

const defaultSupplierCacheTTL = 10 * time.Minute

type SupplierRepository interface {
	// GetOrCreate returns the id of the tenant's supplier with this exact
	// name, creating it when missing. Concurrent callers get the same id.
	GetOrCreate(ctx context.Context, tenantID, name string) (id string, err error)
}

type supplierRepository sqlRepo

var _ SupplierRepository = (*supplierRepository)(nil)

func (sr *supplierRepository) GetOrCreate(ctx context.Context, tenantID, name string) (id string, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	ttl := sr.r.config.OfxImport.SupplierCacheTTL
	if ttl <= 0 {
		ttl = defaultSupplierCacheTTL
	}

	return sr.r.cacheSupplier.GetOrSet(ctx, cache.GetOrSetOpts[string]{
		Key: supplierCacheKey(tenantID, name),
		TTL: ttl,
		Load: func(ctx context.Context) (string, error) {
			return sr.upsert(ctx, tenantID, name)
		},
	})
}

func (sr *supplierRepository) upsert(ctx context.Context, tenantID, name string) (id string, err error) {
	db := sr.r.extractTxWrite(ctx)

	if err = db.QueryRowContext(ctx, querySupplierUpsert, tenantID, name).Scan(&id); err != nil {
		return "", err
	}

	return id, nil
}

func supplierCacheKey(tenantID, name string) string {
	return fmt.Sprintf("supplier:%s:%s", tenantID, name)
}
