package repositories

var (
	queryAuditHistoryCreate = `
		INSERT INTO audit_history(
			tenant_id, entity_type, entity_id, action, origin, payload, created_at
		)
		VALUES(
			$1, $2, $3, $4, $5, $6, NOW()
		);
	`
)
