package models

import "time"

type Entry struct {
	ID           int64     `json:"id"`
	JournalID    int64     `json:"journal_id"`
	JournalTitle string    `json:"journal_title"`
	UserID       int64     `json:"-"`
	Title        string    `json:"title"`
	MainText     string    `json:"main_text"`
	AIPromptUsed bool      `json:"ai_prompt_used"`
	AIPrompt     string    `json:"ai_prompt"`
	Moods        []Mood    `json:"moods"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// MoodScore is the mean score of the entry's moods, 0 when it has none.
func (e *Entry) MoodScore() float64 {
	if len(e.Moods) == 0 {
		return 0
	}
	var total int
	for _, mood := range e.Moods {
		total += mood.Score
	}
	return float64(total) / float64(len(e.Moods))
}

type EntryFilter struct {
	UserID    int64
	JournalID *int64
	From      *time.Time
	To        *time.Time
	Limit     int
}

type EntryUpdate struct {
	JournalID *int64
	Title     *string
	MainText  *string
	AIPrompt  *string
	MoodIDs   []int64
}

type DayCount struct {
	Date  time.Time
	Count int
}
