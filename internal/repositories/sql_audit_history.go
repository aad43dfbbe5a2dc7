package repositories

import (
	"context"

	"github.com/sellerdesk/go-fin-ledger/internal/common"
	"github.com/sellerdesk/go-fin-ledger/internal/models"
	"github.com/sellerdesk/go-fin-ledger/internal/monitoring"
)

type AuditHistoryRepository interface {
	Create(ctx context.Context, in *models.CreateAuditHistoryIn) (err error)
}

type auditHistoryRepository sqlRepo

var _ AuditHistoryRepository = (*auditHistoryRepository)(nil)

func (ar *auditHistoryRepository) Create(ctx context.Context, in *models.CreateAuditHistoryIn) (err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := ar.r.extractTxWrite(ctx)

	args, err := common.GetFieldValues(*in)
	if err != nil {
		return err
	}

	res, err := db.ExecContext(ctx, queryAuditHistoryCreate, args...)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return common.ErrNoRowsAffected
	}

	return nil
}
