package repositories

import (
	"context"

	"github.com/sellerdesk/go-fin-ledger/internal/common"
	"github.com/sellerdesk/go-fin-ledger/internal/models"
	"github.com/sellerdesk/go-fin-ledger/internal/monitoring"
)

type ReceivableRepository interface {
	Create(ctx context.Context, in *models.CreateReceivableIn) (created *models.Receivable, err error)
}

type receivableRepository sqlRepo

var _ ReceivableRepository = (*receivableRepository)(nil)

func (rr *receivableRepository) Create(ctx context.Context, in *models.CreateReceivableIn) (created *models.Receivable, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := rr.r.extractTxWrite(ctx)

	args, err := common.GetFieldValues(*in)
	if err != nil {
		return nil, err
	}

	entity := models.Receivable{
		TenantID:    in.TenantID,
		ReceiptDate: in.ReceiptDate,
		Customer:    in.Customer,
		Description: in.Description,
		Amount:      in.Amount,
		BankAccount: in.BankAccount,
		IsPaid:      in.IsPaid,
		PaidDate:    in.PaidDate,
	}
	err = db.QueryRowContext(ctx, queryReceivableCreate, args...).Scan(
		&entity.ID,
		&entity.CreatedAt,
		&entity.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &entity, nil
}
