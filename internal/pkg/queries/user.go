package queries

const (
	InsertUser = `
		INSERT INTO users (username, email, password_hash, google_sub)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	GetUserByID = `
		SELECT id, username, email, password_hash, google_sub, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	GetUserByUsername = `
		SELECT id, username, email, password_hash, google_sub, created_at, updated_at
		FROM users
		WHERE LOWER(username) = LOWER($1)
	`

	GetUserByEmail = `
		SELECT id, username, email, password_hash, google_sub, created_at, updated_at
		FROM users
		WHERE LOWER(email) = LOWER($1)
	`

	GetUserByGoogleSub = `
		SELECT id, username, email, password_hash, google_sub, created_at, updated_at
		FROM users
		WHERE google_sub = $1
	`

	UpdateUserGoogleSub = `
		UPDATE users
		SET google_sub = $2, updated_at = NOW()
		WHERE id = $1
	`

	DeleteUserByID = `
		DELETE FROM users
		WHERE id = $1
	`
)
