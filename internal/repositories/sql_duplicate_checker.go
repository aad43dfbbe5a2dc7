package repositories

import (
	"context"

	"github.com/lib/pq"

	"github.com/sellerdesk/go-fin-ledger/internal/monitoring"
)

// DuplicateChecker tells whether a bank transaction id was already imported
// for a tenant. A payable matches on its reference, a receivable when the id
// appears anywhere in its description.
type DuplicateChecker interface {
	Exists(ctx context.Context, tenantID, fitid string) (exists bool, err error)
	// Existing returns the subset of fitids that Exists would report.
	Existing(ctx context.Context, tenantID string, fitids []string) (found map[string]bool, err error)
}

type duplicateChecker sqlRepo

var _ DuplicateChecker = (*duplicateChecker)(nil)

func (dc *duplicateChecker) Exists(ctx context.Context, tenantID, fitid string) (exists bool, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	if fitid == "" {
		return false, nil
	}

	// write side, a row imported a moment ago must be visible
	db := dc.r.extractTxWrite(ctx)
	if err = db.QueryRowContext(ctx, queryDuplicateExists, tenantID, fitid).Scan(&exists); err != nil {
		return false, err
	}

	return exists, nil
}

func (dc *duplicateChecker) Existing(ctx context.Context, tenantID string, fitids []string) (found map[string]bool, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	found = make(map[string]bool)

	ids := make([]string, 0, len(fitids))
	for _, id := range fitids {
		if id != "" {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return found, nil
	}

	db := dc.r.extractTxRead(ctx)
	rows, err := db.QueryContext(ctx, queryDuplicateExisting, tenantID, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			return nil, err
		}
		found[id] = true
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return found, nil
}
