package user

const (
	ConstraintUsername = "user_account_username_key"
	ConstraintDocument = "person_documento_key"
)

const (
	selectUser = `
		SELECT ua.id_user, ua.id_person, p.nombre, p.apellido, p.documento, p.email, p.celular,
		       ua.username, ua.password_hash, ua.rol, ua.estado, ua.created_at, ua.updated_at
		FROM user_account ua
		JOIN person p ON p.id_person = ua.id_person
	`
	SelectUsers                = selectUser + `ORDER BY ua.id_user`
	SelectUserByID             = selectUser + `WHERE ua.id_user = $1`
	SelectActiveUserByUsername = selectUser + `WHERE ua.username = $1 AND ua.estado = 'activo'`

	InsertPerson = `
		INSERT INTO person (nombre, apellido, documento, email, celular)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id_person
	`
	InsertAccount = `
		INSERT INTO user_account (id_person, username, password_hash, rol, estado)
		VALUES ($1, $2, $3, $4, 'activo')
		RETURNING id_user
	`
	DeletePersonByID = `DELETE FROM person WHERE id_person = $1`

	UpdateUserByID = `
		WITH acc AS (
			UPDATE user_account
			SET rol = $7,
			    updated_at = now()
			WHERE id_user = $1
			RETURNING id_person
		)
		UPDATE person p
		SET nombre = $2,
		    apellido = $3,
		    documento = $4,
		    email = $5,
		    celular = $6,
		    updated_at = now()
		FROM acc
		WHERE p.id_person = acc.id_person
	`
	UpdateStateByID = `
		UPDATE user_account
		SET estado = $2,
		    updated_at = now()
		WHERE id_user = $1
	`
	UpdatePasswordByID = `
		UPDATE user_account
		SET password_hash = $2,
		    updated_at = now()
		WHERE id_user = $1
	`
	CountAllUsers = `SELECT count(*) FROM user_account`
)
