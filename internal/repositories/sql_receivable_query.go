package repositories

var (
	queryReceivableCreate = `
		INSERT INTO account_receivable(
			tenant_id, receipt_date, customer, description, amount,
			bank_account, is_paid, paid_date, created_at, updated_at
		)
		VALUES(
			$1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW()
		)
		RETURNING
			id, created_at, updated_at;
	`
)
