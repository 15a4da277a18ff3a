package queries

const (
	InsertEntry = `
		INSERT INTO entries (journal_id, title, main_text, ai_prompt_used, ai_prompt)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	InsertEntryMoods = `
		INSERT INTO entry_moods (entry_id, mood_id)
		SELECT $1, UNNEST($2::bigint[])
		ON CONFLICT DO NOTHING
	`

	DeleteEntryMoodsByEntryID = `
		DELETE FROM entry_moods
		WHERE entry_id = $1
	`

	GetEntryByID = `
		SELECT e.id, e.journal_id, j.title, j.user_id, e.title, e.main_text,
			e.ai_prompt_used, e.ai_prompt, e.created_at, e.updated_at
		FROM entries e
		JOIN journals j ON j.id = e.journal_id
		WHERE e.id = $1
	`

	// NULL parameters disable the matching filter. LIMIT NULL means no limit.
	GetEntriesByFilter = `
		SELECT e.id, e.journal_id, j.title, j.user_id, e.title, e.main_text,
			e.ai_prompt_used, e.ai_prompt, e.created_at, e.updated_at
		FROM entries e
		JOIN journals j ON j.id = e.journal_id
		WHERE j.user_id = $1
			AND ($2::bigint IS NULL OR e.journal_id = $2)
			AND ($3::timestamptz IS NULL OR e.created_at >= $3)
			AND ($4::timestamptz IS NULL OR e.created_at <= $4)
		ORDER BY e.created_at DESC, e.id DESC
		LIMIT $5
	`

	GetMoodsByEntryIDs = `
		SELECT em.entry_id, m.id, m.label, m.emoji, m.score
		FROM entry_moods em
		JOIN moods m ON m.id = em.mood_id
		WHERE em.entry_id = ANY($1)
		ORDER BY em.entry_id, m.id
	`

	UpdateEntry = `
		UPDATE entries
		SET journal_id = COALESCE($2::bigint, journal_id),
			title = COALESCE($3::text, title),
			main_text = COALESCE($4::text, main_text),
			ai_prompt = COALESCE($5::text, ai_prompt),
			updated_at = NOW()
		WHERE id = $1
	`

	DeleteEntryByID = `
		DELETE FROM entries
		WHERE id = $1
	`

	CountEntriesByUserID = `
		SELECT COUNT(*)
		FROM entries e
		JOIN journals j ON j.id = e.journal_id
		WHERE j.user_id = $1
	`

	GetEntryTimesByUserID = `
		SELECT e.created_at
		FROM entries e
		JOIN journals j ON j.id = e.journal_id
		WHERE j.user_id = $1
			AND ($2::timestamptz IS NULL OR e.created_at >= $2)
			AND ($3::timestamptz IS NULL OR e.created_at < $3)
		ORDER BY e.created_at
	`
)
