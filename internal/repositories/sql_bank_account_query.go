package repositories

var (
	queryBankAccountGetActiveByID = `
		SELECT
			id, tenant_id, name, COALESCE(bank_name, '') AS bank_name, is_active
		FROM bank_account
		WHERE id = $1 AND tenant_id = $2 AND is_active = TRUE;
	`
)
