package responses

import "time"

type UserProfile struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type UserStats struct {
	JournalCount  int64 `json:"journal_count"`
	EntryCount    int64 `json:"entry_count"`
	LongestStreak int   `json:"longest_streak"`
	CurrentStreak int   `json:"current_streak"`
}

type UserExport struct {
	URL       string    `json:"url"`
	Object    string    `json:"object"`
	ExpiresAt time.Time `json:"expires_at"`
}

// UserExportDocument is the JSON document uploaded for an export.
type UserExportDocument struct {
	ExportedAt time.Time   `json:"exported_at"`
	Profile    UserProfile `json:"profile"`
	Journals   []Journal   `json:"journals"`
	Entries    []Entry     `json:"entries"`
}
