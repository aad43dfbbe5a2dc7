package repositories

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/sellerdesk/go-fin-ledger/internal/models"
)

var (
	queryOfxImportBatchCreate = `
		INSERT INTO ofx_import_batch(
			tenant_id, bank_account_id, file_sha256, bank_id, account_id, currency,
			total, imported, duplicates, errors, archive_path, created_at
		)
		VALUES(
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW()
		)
		RETURNING
			id, created_at;
	`

	queryOfxImportBatchGetByID = `
		SELECT
			id, tenant_id, bank_account_id, file_sha256,
			COALESCE(bank_id, '') AS bank_id, COALESCE(account_id, '') AS account_id, currency,
			total, imported, duplicates, errors,
			COALESCE(archive_path, '') AS archive_path, created_at
		FROM ofx_import_batch
		WHERE id = $1 AND tenant_id = $2;
	`

	queryOfxImportBatchUpdateArchivePath = `
		UPDATE ofx_import_batch SET archive_path = $3 WHERE id = $1 AND tenant_id = $2;
	`
)

func buildFilteredOfxImportBatchQuery(cols []string, opts models.OfxImportBatchFilterOptions) sq.SelectBuilder {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	query := psql.Select(cols...).
		From("ofx_import_batch").
		Where(sq.Eq{"tenant_id": opts.TenantID})

	if opts.BankAccountID != "" {
		query = query.Where(sq.Eq{"bank_account_id": opts.BankAccountID})
	}

	if opts.StartDate != nil {
		query = query.Where(sq.GtOrEq{"DATE(created_at)": opts.StartDate})
	}

	if opts.EndDate != nil {
		query = query.Where(sq.LtOrEq{"DATE(created_at)": opts.EndDate})
	}

	return query
}

func buildListOfxImportBatchQuery(opts models.OfxImportBatchFilterOptions) (sql string, args []interface{}, err error) {
	columns := []string{
		"id",
		"tenant_id",
		"bank_account_id",
		"file_sha256",
		"COALESCE(bank_id, '') AS bank_id",
		"COALESCE(account_id, '') AS account_id",
		"currency",
		"total",
		"imported",
		"duplicates",
		"errors",
		"COALESCE(archive_path, '') AS archive_path",
		"created_at",
	}

	query := buildFilteredOfxImportBatchQuery(columns, opts)

	if opts.AfterCreatedAt != nil {
		query = query.Where(sq.Lt{"created_at": opts.AfterCreatedAt})
	}

	if opts.BeforeCreatedAt != nil {
		query = query.Where(sq.Gt{"created_at": opts.BeforeCreatedAt})
	}

	if opts.AscendingOrder {
		query = query.OrderBy("created_at ASC")
	} else {
		query = query.OrderBy("created_at DESC")
	}

	if opts.Limit > 0 {
		query = query.Limit(uint64(opts.Limit))
	}

	return query.ToSql()
}

func buildCountOfxImportBatchQuery(opts models.OfxImportBatchFilterOptions) (sql string, args []interface{}, err error) {
	return buildFilteredOfxImportBatchQuery([]string{"count(1)"}, opts).ToSql()
}
