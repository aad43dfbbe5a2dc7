package repositories

var (
	queryPayableCreate = `
		INSERT INTO account_payable(
			tenant_id, due_date, competence_date, description, reference, amount,
			supplier_id, bank_account, is_paid, paid_date, created_at, updated_at
		)
		VALUES(
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW()
		)
		RETURNING
			id, created_at, updated_at;
	`
)
