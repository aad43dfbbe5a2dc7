package repositories

import (
	"context"
	"fmt"

	"github.com/sellerdesk/go-fin-ledger/internal/common"
	"github.com/sellerdesk/go-fin-ledger/internal/models"
	"github.com/sellerdesk/go-fin-ledger/internal/monitoring"
)

type OfxImportBatchRepository interface {
	Create(ctx context.Context, in *models.CreateOfxImportBatchIn) (created *models.OfxImportBatch, err error)
	UpdateArchivePath(ctx context.Context, tenantID, id, archivePath string) (err error)
	GetList(ctx context.Context, opts models.OfxImportBatchFilterOptions) (result []models.OfxImportBatch, err error)
	CountAll(ctx context.Context, opts models.OfxImportBatchFilterOptions) (total int, err error)
	GetByID(ctx context.Context, tenantID, id string) (batch *models.OfxImportBatch, err error)
}

type ofxImportBatchRepository sqlRepo

var _ OfxImportBatchRepository = (*ofxImportBatchRepository)(nil)

func (ir *ofxImportBatchRepository) Create(ctx context.Context, in *models.CreateOfxImportBatchIn) (created *models.OfxImportBatch, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := ir.r.extractTxWrite(ctx)

	args, err := common.GetFieldValues(*in)
	if err != nil {
		return nil, err
	}

	entity := models.OfxImportBatch{
		TenantID:      in.TenantID,
		BankAccountID: in.BankAccountID,
		FileSHA256:    in.FileSHA256,
		BankID:        in.BankID,
		AccountID:     in.AccountID,
		Currency:      in.Currency,
		Total:         in.Total,
		Imported:      in.Imported,
		Duplicates:    in.Duplicates,
		Errors:        in.Errors,
		ArchivePath:   in.ArchivePath,
	}
	if err = db.QueryRowContext(ctx, queryOfxImportBatchCreate, args...).Scan(&entity.ID, &entity.CreatedAt); err != nil {
		return nil, err
	}

	return &entity, nil
}

func (ir *ofxImportBatchRepository) UpdateArchivePath(ctx context.Context, tenantID, id, archivePath string) (err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := ir.r.extractTxWrite(ctx)

	res, err := db.ExecContext(ctx, queryOfxImportBatchUpdateArchivePath, id, tenantID, archivePath)
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

func (ir *ofxImportBatchRepository) GetList(ctx context.Context, opts models.OfxImportBatchFilterOptions) (result []models.OfxImportBatch, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := ir.r.extractTxRead(ctx)

	query, args, err := buildListOfxImportBatchQuery(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		b, err := scanOfxImportBatch(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *b)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

func (ir *ofxImportBatchRepository) CountAll(ctx context.Context, opts models.OfxImportBatchFilterOptions) (total int, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := ir.r.extractTxRead(ctx)

	query, args, err := buildCountOfxImportBatchQuery(opts)
	if err != nil {
		return 0, fmt.Errorf("failed to build query: %w", err)
	}

	if err = db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, err
	}

	return total, nil
}

// GetByID returns common.ErrNoRows when the batch does not exist for the tenant.
func (ir *ofxImportBatchRepository) GetByID(ctx context.Context, tenantID, id string) (batch *models.OfxImportBatch, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := ir.r.extractTxRead(ctx)

	return scanOfxImportBatch(db.QueryRowContext(ctx, queryOfxImportBatchGetByID, id, tenantID))
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanOfxImportBatch(row rowScanner) (*models.OfxImportBatch, error) {
	var b models.OfxImportBatch
	err := row.Scan(
		&b.ID,
		&b.TenantID,
		&b.BankAccountID,
		&b.FileSHA256,
		&b.BankID,
		&b.AccountID,
		&b.Currency,
		&b.Total,
		&b.Imported,
		&b.Duplicates,
		&b.Errors,
		&b.ArchivePath,
		&b.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &b, nil
}
