package repositories

var (
	// strpos keeps the FITID a literal substring, LIKE would treat % and _ as wildcards
	queryDuplicateExists = `
		SELECT EXISTS (
			SELECT 1 FROM account_payable
			WHERE tenant_id = $1 AND reference = $2
			UNION ALL
			SELECT 1 FROM account_receivable
			WHERE tenant_id = $1 AND strpos(description, $2) > 0
		);
	`

	queryDuplicateExisting = `
		SELECT f.fitid
		FROM unnest($2::text[]) AS f(fitid)
		WHERE EXISTS (
			SELECT 1 FROM account_payable p
			WHERE p.tenant_id = $1 AND p.reference = f.fitid
		) OR EXISTS (
			SELECT 1 FROM account_receivable r
			WHERE r.tenant_id = $1 AND strpos(r.description, f.fitid) > 0
		);
	`
)
