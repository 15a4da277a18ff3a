package requests

import "time"

type CreateEntry struct {
	UserID       int64        `json:"-"`
	JournalID    FlexibleID   `json:"journal_id" validate:"required,gt=0"`
	Title        string       `json:"title" validate:"required,min=2"`
	MainText     string       `json:"main_text"`
	AIPromptUsed *bool        `json:"ai_prompt_used" validate:"required"`
	AIPrompt     string       `json:"ai_prompt"`
	MoodIDs      []FlexibleID `json:"mood_ids" validate:"required,gte=1"`
}

type UpdateEntry struct {
	UserID    int64        `json:"-"`
	EntryID   int64        `json:"-"`
	JournalID *FlexibleID  `json:"journal_id" validate:"omitempty,gt=0"`
	Title     *string      `json:"title" validate:"omitempty,min=2"`
	MainText  *string      `json:"main_text"`
	AIPrompt  *string      `json:"ai_prompt"`
	MoodIDs   []FlexibleID `json:"mood_ids" validate:"omitempty,gte=1"`
}

type FindEntries struct {
	UserID    int64
	JournalID *int64
	From      *time.Time
	To        *time.Time
}

type FindEntryByID struct {
	UserID  int64
	EntryID int64
}

type DeleteEntryByID struct {
	UserID  int64
	EntryID int64
}
