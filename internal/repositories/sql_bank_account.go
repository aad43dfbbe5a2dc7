package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/sellerdesk/go-fin-ledger/internal/common"
	"github.com/sellerdesk/go-fin-ledger/internal/models"
	"github.com/sellerdesk/go-fin-ledger/internal/monitoring"
)

type BankAccountRepository interface {
	// GetActiveByID returns common.ErrDataNotFound when the account does not
	// exist, belongs to another tenant or is inactive.
	GetActiveByID(ctx context.Context, tenantID, id string) (result *models.BankAccount, err error)
}

type bankAccountRepository sqlRepo

var _ BankAccountRepository = (*bankAccountRepository)(nil)

func (br *bankAccountRepository) GetActiveByID(ctx context.Context, tenantID, id string) (result *models.BankAccount, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := br.r.extractTxRead(ctx)

	var ba models.BankAccount
	err = db.QueryRowContext(ctx, queryBankAccountGetActiveByID, id, tenantID).Scan(
		&ba.ID,
		&ba.TenantID,
		&ba.Name,
		&ba.BankName,
		&ba.IsActive,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrDataNotFound
		}
		return nil, err
	}

	return &ba, nil
}
