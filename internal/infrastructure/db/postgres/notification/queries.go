package notification

const (
	selectNotification = `
		SELECT n.id_notification, n.id_user, n.id_invoice, n.message, n.type, n.is_read, n.sent_date,
		       p.nombre || ' ' || p.apellido AS user_name, ua.username
		FROM notification n
		JOIN user_account ua ON ua.id_user = n.id_user
		JOIN person p ON p.id_person = ua.id_person
	`
	SelectNotificationsByUser = selectNotification + `WHERE n.id_user = $1 ORDER BY n.sent_date DESC, n.id_notification DESC`
	SelectNotifications       = selectNotification + `ORDER BY n.sent_date DESC, n.id_notification DESC`

	InsertNotification = `
		INSERT INTO notification (id_user, id_invoice, message, type, sent_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id_notification, is_read, sent_date
	`
	ExistsNotificationForInvoice = `
		SELECT EXISTS (
			SELECT 1 FROM notification
			WHERE id_user = $1 AND id_invoice = $2 AND sent_date >= $3 AND sent_date < $4
		)
	`
	MarkNotificationRead = `
		UPDATE notification SET is_read = true
		WHERE id_notification = $1 AND id_user = $2
	`
	MarkAllNotificationsRead = `
		UPDATE notification SET is_read = true
		WHERE id_user = $1 AND NOT is_read
	`
	DeleteReadNotifications = `DELETE FROM notification WHERE id_user = $1 AND is_read`

	CountNotifications = `
		SELECT count(*), count(*) FILTER (WHERE NOT is_read)
		FROM notification
		WHERE $1::bigint IS NULL OR id_user = $1
	`
)
