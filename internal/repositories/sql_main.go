package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sellerdesk/go-fin-ledger/internal/common/cache"
	"github.com/sellerdesk/go-fin-ledger/internal/common/xlog"
	"github.com/sellerdesk/go-fin-ledger/internal/config"
)

type sqlRepo struct {
	r *Repository
}

type Repository struct {
	dbWrite *sql.DB
	dbRead  *sql.DB
	config  config.Config
	common  sqlRepo

	pr  *payableRepository
	rr  *receivableRepository
	sr  *supplierRepository
	bar *bankAccountRepository
	ahr *auditHistoryRepository
	oir *ofxImportBatchRepository
	dc  *duplicateChecker

	// generic supplier id per tenant
	cacheSupplier cache.Client[string]
}

func NewSQLRepository(dbWrite *sql.DB, dbRead *sql.DB, cfg config.Config) *Repository {
	rtx := &Repository{
		dbWrite: dbWrite,
		dbRead:  dbRead,
		config:  cfg,
	}
	rtx.common.r = rtx
	rtx.pr = (*payableRepository)(&rtx.common)
	rtx.rr = (*receivableRepository)(&rtx.common)
	rtx.sr = (*supplierRepository)(&rtx.common)
	rtx.bar = (*bankAccountRepository)(&rtx.common)
	rtx.ahr = (*auditHistoryRepository)(&rtx.common)
	rtx.oir = (*ofxImportBatchRepository)(&rtx.common)
	rtx.dc = (*duplicateChecker)(&rtx.common)

	rtx.cacheSupplier = cache.NewInMemoryClient[string]()

	return rtx
}

// Close stops the in-memory supplier cache. The pools are owned by the caller.
func (r *Repository) Close() {
	if c, ok := r.cacheSupplier.(interface{ Close() }); ok {
		c.Close()
	}
}

type SQLRepository interface {
	Atomic(ctx context.Context, steps func(ctx context.Context, r SQLRepository) error) error
	GetPayableRepository() PayableRepository
	GetReceivableRepository() ReceivableRepository
	GetSupplierRepository() SupplierRepository
	GetBankAccountRepository() BankAccountRepository
	GetAuditHistoryRepository() AuditHistoryRepository
	GetOfxImportBatchRepository() OfxImportBatchRepository
	GetDuplicateChecker() DuplicateChecker
}

var _ SQLRepository = (*Repository)(nil)

// Atomic runs steps inside one database transaction. Repositories obtained
// from the r argument pick the transaction up from ctx.
func (r *Repository) Atomic(ctx context.Context, steps func(ctx context.Context, r SQLRepository) error) (err error) {
	tx, err := r.dbWrite.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	xlog.Debug(ctx, "[DATABASE.TRANSACTION.BEGIN]")
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			err = fmt.Errorf("panic happened because: %v", p)
			xlog.Error(ctx, "[DATABASE.TRANSACTION.PANIC]", xlog.Err(err))
			return
		}

		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				err = fmt.Errorf("tx err: %v, rb err: %v", err, rbErr)
			}
			xlog.Warn(ctx, "[DATABASE.TRANSACTION.ROLLBACK]", xlog.Err(err))
			return
		}

		if err = tx.Commit(); err != nil && errors.Is(err, sql.ErrTxDone) {
			xlog.Warn(ctx, "[DATABASE.TRANSACTION.ALREADY_COMMITTED_OR_ROLLEDBACK]", xlog.Err(err))
			err = nil
		}
		xlog.Debug(ctx, "[DATABASE.TRANSACTION.COMMIT]")
	}()

	err = steps(injectTx(ctx, tx), r)
	return
}

func (r *Repository) GetPayableRepository() PayableRepository {
	return r.pr
}

func (r *Repository) GetReceivableRepository() ReceivableRepository {
	return r.rr
}

func (r *Repository) GetSupplierRepository() SupplierRepository {
	return r.sr
}

func (r *Repository) GetBankAccountRepository() BankAccountRepository {
	return r.bar
}

func (r *Repository) GetAuditHistoryRepository() AuditHistoryRepository {
	return r.ahr
}

func (r *Repository) GetOfxImportBatchRepository() OfxImportBatchRepository {
	return r.oir
}

func (r *Repository) GetDuplicateChecker() DuplicateChecker {
	return r.dc
}
