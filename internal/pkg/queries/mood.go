package queries

const (
	GetAllMoods = `
		SELECT id, label, emoji, score
		FROM moods
		ORDER BY id
	`

	GetMoodsByIDs = `
		SELECT id, label, emoji, score
		FROM moods
		WHERE id = ANY($1)
		ORDER BY id
	`

	CountMoods = `
		SELECT COUNT(*)
		FROM moods
	`

	InsertMood = `
		INSERT INTO moods (label, emoji, score)
		VALUES ($1, $2, $3)
	`
)
