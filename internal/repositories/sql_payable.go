package repositories

import (
	"context"

	"github.com/sellerdesk/go-fin-ledger/internal/common"
	"github.com/sellerdesk/go-fin-ledger/internal/models"
	"github.com/sellerdesk/go-fin-ledger/internal/monitoring"
)

type PayableRepository interface {
	Create(ctx context.Context, in *models.CreatePayableIn) (created *models.Payable, err error)
}

type payableRepository sqlRepo

var _ PayableRepository = (*payableRepository)(nil)

func (pr *payableRepository) Create(ctx context.Context, in *models.CreatePayableIn) (created *models.Payable, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := pr.r.extractTxWrite(ctx)

	args, err := common.GetFieldValues(*in)
	if err != nil {
		return nil, err
	}

	entity := models.Payable{
		TenantID:       in.TenantID,
		DueDate:        in.DueDate,
		CompetenceDate: in.CompetenceDate,
		Description:    in.Description,
		Reference:      in.Reference,
		Amount:         in.Amount,
		SupplierID:     in.SupplierID,
		BankAccount:    in.BankAccount,
		IsPaid:         in.IsPaid,
		PaidDate:       in.PaidDate,
	}
	err = db.QueryRowContext(ctx, queryPayableCreate, args...).Scan(
		&entity.ID,
		&entity.CreatedAt,
		&entity.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &entity, nil
}
