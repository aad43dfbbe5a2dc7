package repositories

var (
	// the no-op update makes RETURNING yield the existing row on conflict
	querySupplierUpsert = `
		INSERT INTO supplier(tenant_id, name, created_at, updated_at)
		VALUES($1, $2, NOW(), NOW())
		ON CONFLICT (tenant_id, name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id;
	`
)
