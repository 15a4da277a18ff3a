package utils

import (
	"html"
	"moodjournal-service/internal/pkg/constvars"
	"moodjournal-service/internal/pkg/dto/requests"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var titlePolicy = bluemonday.StrictPolicy()

// sanitizeTitle strips all markup from a title. Entities escaped by the
// policy are decoded again since titles are stored as plain text.
func sanitizeTitle(value string) string {
	return strings.TrimSpace(html.UnescapeString(titlePolicy.Sanitize(value)))
}

func trimStringPointer(value *string) {
	if value != nil {
		*value = strings.TrimSpace(*value)
	}
}

func SanitizeSignupRequest(input *requests.Signup) {
	input.Username = strings.TrimSpace(input.Username)
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
}

func SanitizeLoginRequest(input *requests.Login) {
	input.Username = strings.TrimSpace(input.Username)
}

func SanitizeCreateJournalRequest(input *requests.CreateJournal) {
	input.Title = sanitizeTitle(input.Title)
	input.Color = strings.ToLower(strings.TrimSpace(input.Color))
	if input.Color == "" {
		input.Color = constvars.DefaultJournalColor
	}
}

func SanitizeUpdateJournalRequest(input *requests.UpdateJournal) {
	input.Title = sanitizeTitle(input.Title)
	input.Color = strings.ToLower(strings.TrimSpace(input.Color))
	if input.Color == "" {
		input.Color = constvars.DefaultJournalColor
	}
}

func SanitizeCreateEntryRequest(input *requests.CreateEntry) {
	input.Title = sanitizeTitle(input.Title)
	input.AIPrompt = strings.TrimSpace(input.AIPrompt)
	input.MoodIDs = dedupeFlexibleIDs(input.MoodIDs)
}

func SanitizeUpdateEntryRequest(input *requests.UpdateEntry) {
	if input.Title != nil {
		*input.Title = sanitizeTitle(*input.Title)
	}
	trimStringPointer(input.AIPrompt)
	if input.MoodIDs != nil {
		input.MoodIDs = dedupeFlexibleIDs(input.MoodIDs)
	}
}

func SanitizeCustomPromptRequest(input *requests.CustomPrompt) {
	input.Topic = strings.Join(strings.Fields(input.Topic), " ")
}

func dedupeFlexibleIDs(ids []requests.FlexibleID) []requests.FlexibleID {
	seen := make(map[requests.FlexibleID]struct{}, len(ids))
	result := make([]requests.FlexibleID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}
