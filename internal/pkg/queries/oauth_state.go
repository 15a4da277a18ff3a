package queries

const (
	InsertOAuthState = `
		INSERT INTO oauth_states (state, expires_at)
		VALUES ($1, $2)
	`

	// Marks the state used only while it is unused and unexpired.
	ConsumeOAuthState = `
		UPDATE oauth_states
		SET used = TRUE
		WHERE state = $1 AND used = FALSE AND expires_at > $2
		RETURNING id
	`

	DeleteExpiredOAuthStates = `
		DELETE FROM oauth_states
		WHERE expires_at <= $1 OR used = TRUE
	`
)
