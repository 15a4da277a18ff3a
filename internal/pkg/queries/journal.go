package queries

const (
	InsertJournal = `
		INSERT INTO journals (user_id, title, year, color)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	GetJournalByID = `
		SELECT j.id, j.user_id, j.title, j.year, j.color,
			(SELECT COUNT(*) FROM entries e WHERE e.journal_id = j.id),
			j.created_at, j.updated_at
		FROM journals j
		WHERE j.id = $1
	`

	GetJournalsByUserID = `
		SELECT j.id, j.user_id, j.title, j.year, j.color,
			(SELECT COUNT(*) FROM entries e WHERE e.journal_id = j.id),
			j.created_at, j.updated_at
		FROM journals j
		WHERE j.user_id = $1
		ORDER BY j.year DESC, j.created_at DESC
	`

	GetJournalByUserIDAndTitle = `
		SELECT j.id, j.user_id, j.title, j.year, j.color,
			(SELECT COUNT(*) FROM entries e WHERE e.journal_id = j.id),
			j.created_at, j.updated_at
		FROM journals j
		WHERE j.user_id = $1 AND LOWER(j.title) = LOWER($2)
	`

	UpdateJournal = `
		UPDATE journals
		SET title = $2, year = $3, color = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	DeleteJournalByID = `
		DELETE FROM journals
		WHERE id = $1
	`

	CountJournalsByUserID = `
		SELECT COUNT(*)
		FROM journals
		WHERE user_id = $1
	`
)
