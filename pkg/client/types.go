package client

import "time"

type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type Journal struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	Year       int       `json:"year"`
	Color      string    `json:"color"`
	EntryCount int64     `json:"entry_count"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type JournalInput struct {
	Title string `json:"title"`
	Year  int    `json:"year"`
	Color string `json:"color,omitempty"`
}

type Mood struct {
	ID    int64  `json:"id"`
	Label string `json:"label"`
	Emoji string `json:"emoji"`
	Score int    `json:"score"`
}

type Entry struct {
	ID           int64     `json:"id"`
	JournalID    int64     `json:"journal_id"`
	JournalTitle string    `json:"journal_title"`
	Title        string    `json:"title"`
	MainText     string    `json:"main_text"`
	AIPromptUsed bool      `json:"ai_prompt_used"`
	AIPrompt     string    `json:"ai_prompt"`
	Moods        []Mood    `json:"moods"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type EntryInput struct {
	JournalID    int64   `json:"journal_id"`
	Title        string  `json:"title"`
	MainText     string  `json:"main_text"`
	AIPromptUsed bool    `json:"ai_prompt_used"`
	AIPrompt     string  `json:"ai_prompt,omitempty"`
	MoodIDs      []int64 `json:"mood_ids"`
}

// EntryPatch holds the fields to change. Nil fields are left untouched.
type EntryPatch struct {
	JournalID *int64  `json:"journal_id,omitempty"`
	Title     *string `json:"title,omitempty"`
	MainText  *string `json:"main_text,omitempty"`
	AIPrompt  *string `json:"ai_prompt,omitempty"`
	MoodIDs   []int64 `json:"mood_ids,omitempty"`
}

// EntryFilter narrows Entries. Zero values disable a filter.
type EntryFilter struct {
	JournalID int64
	From      time.Time
	To        time.Time
}

type Stats struct {
	JournalCount  int64 `json:"journal_count"`
	EntryCount    int64 `json:"entry_count"`
	LongestStreak int   `json:"longest_streak"`
	CurrentStreak int   `json:"current_streak"`
}

type HeatmapDay struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type MoodTrendPoint struct {
	Date         string  `json:"date"`
	AverageScore float64 `json:"average_score"`
}

type Prompt struct {
	Prompt        string `json:"prompt"`
	Source        string `json:"source"`
	QuotaExceeded bool   `json:"quota_exceeded,omitempty"`
}

type csrfTokenResponse struct {
	CSRFToken string `json:"csrf_token"`
}

type authUserResponse struct {
	User User `json:"user"`
}

type signupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type customPromptRequest struct {
	Topic string `json:"topic"`
}
