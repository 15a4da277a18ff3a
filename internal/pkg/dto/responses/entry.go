package responses

import "time"

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
