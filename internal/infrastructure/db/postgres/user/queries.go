package user

const (
	SelectUserByID = `
		SELECT id, name, email, password, birth_date, phone, role, created_by, created_at, updated_by, updated_at, deleted
		FROM users
		WHERE id = $1 AND NOT deleted
	`
	CountUsers = `
		SELECT count(*)
		FROM users
		WHERE NOT deleted
	`
	SelectUsersPage = `
		SELECT id, name, email, password, birth_date, phone, role, created_by, created_at, updated_by, updated_at, deleted
		FROM users
		WHERE NOT deleted
		ORDER BY created_at, id
		LIMIT $1 OFFSET $2
	`
	SelectUsersByIDs = `
		SELECT id, name, email, password, birth_date, phone, role, created_by, created_at, updated_by, updated_at, deleted
		FROM users
		WHERE id = ANY($1) AND NOT deleted
		ORDER BY created_at, id
	`
	UpsertUser = `
		INSERT INTO users (id, name, email, password, birth_date, phone, role, created_by, created_at, updated_by, updated_at, deleted)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name,
		    email = EXCLUDED.email,
		    password = EXCLUDED.password,
		    birth_date = EXCLUDED.birth_date,
		    phone = EXCLUDED.phone,
		    role = EXCLUDED.role,
		    updated_by = EXCLUDED.updated_by,
		    updated_at = EXCLUDED.updated_at,
		    deleted = EXCLUDED.deleted
		RETURNING
		  id, name, email, password, birth_date, phone, role, created_by, created_at, updated_by, updated_at, deleted
	`
	DeleteUserByID = `DELETE FROM users WHERE id = $1`
)
