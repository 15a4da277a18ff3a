package utils

import (
	"moodjournal-service/internal/app/models"
	"moodjournal-service/internal/pkg/dto/responses"
)

func MapUserToProfileResponse(user *models.User) responses.UserProfile {
	return responses.UserProfile{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}

func MapJournalToResponse(journal *models.Journal) *responses.Journal {
	return &responses.Journal{
		ID:         journal.ID,
		Title:      journal.Title,
		Year:       journal.Year,
		Color:      journal.Color,
		EntryCount: journal.EntryCount,
		CreatedAt:  journal.CreatedAt,
		UpdatedAt:  journal.UpdatedAt,
	}
}

func MapJournalsToResponse(journals []models.Journal) []responses.Journal {
	result := make([]responses.Journal, 0, len(journals))
	for i := range journals {
		result = append(result, *MapJournalToResponse(&journals[i]))
	}
	return result
}

func MapMoodsToResponse(moods []models.Mood) []responses.Mood {
	result := make([]responses.Mood, 0, len(moods))
	for _, mood := range moods {
		result = append(result, responses.Mood{
			ID:    mood.ID,
			Label: mood.Label,
			Emoji: mood.Emoji,
			Score: mood.Score,
		})
	}
	return result
}

func MapEntryToResponse(entry *models.Entry) *responses.Entry {
	return &responses.Entry{
		ID:           entry.ID,
		JournalID:    entry.JournalID,
		JournalTitle: entry.JournalTitle,
		Title:        entry.Title,
		MainText:     entry.MainText,
		AIPromptUsed: entry.AIPromptUsed,
		AIPrompt:     entry.AIPrompt,
		Moods:        MapMoodsToResponse(entry.Moods),
		CreatedAt:    entry.CreatedAt,
		UpdatedAt:    entry.UpdatedAt,
	}
}

func MapEntriesToResponse(entries []models.Entry) []responses.Entry {
	result := make([]responses.Entry, 0, len(entries))
	for i := range entries {
		result = append(result, *MapEntryToResponse(&entries[i]))
	}
	return result
}
