package invoice

const (
	selectInvoice = `
		SELECT i.id_invoice, i.numero, i.id_user, i.id_erp_company, i.total_amount, i.status,
		       i.issue_date, i.due_date, i.created_at,
		       p.nombre || ' ' || p.apellido AS user_name, ua.username
		FROM invoice i
		JOIN user_account ua ON ua.id_user = i.id_user
		JOIN person p ON p.id_person = ua.id_person
	`
	SelectInvoicesByUser = selectInvoice + `WHERE i.id_user = $1 ORDER BY i.due_date, i.id_invoice`
	SelectInvoices       = selectInvoice + `ORDER BY i.issue_date DESC, i.id_invoice DESC`

	InsertInvoice = `
		INSERT INTO invoice (numero, id_user, id_erp_company, total_amount, status, issue_date, due_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id_invoice, created_at
	`
	CountInvoicesByStatus = `
		SELECT status, count(*)
		FROM invoice
		WHERE $1::bigint IS NULL OR id_user = $1
		GROUP BY status
	`
)
