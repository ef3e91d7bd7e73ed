package erpcompany

const (
	SelectCompanies = `
		SELECT id_erp_company, nombre, nit, direccion, email, created_at
		FROM erp_company
		ORDER BY nombre
	`
	InsertCompany = `
		INSERT INTO erp_company (nombre, nit, direccion, email)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (nit) DO UPDATE SET nombre = EXCLUDED.nombre
		RETURNING id_erp_company, created_at
	`
)
