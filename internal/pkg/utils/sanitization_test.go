package utils

import (
	"moodjournal-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeSignupRequest(t *testing.T) {
	t.Run("Email Sanitization", func(t *testing.T) {
		request := &requests.Signup{
			Username: "writer",
			Email:    "  WRITER@EXAMPLE.COM  ",
		}

		SanitizeSignupRequest(request)

		assert.Equal(t, "writer@example.com", request.Email, "email should be lowercase and trimmed")
	})

	t.Run("Username Trimmed Not Lowered", func(t *testing.T) {
		request := &requests.Signup{Username: "  Moody.Writer  "}

		SanitizeSignupRequest(request)

		assert.Equal(t, "Moody.Writer", request.Username, "username should keep its case")
	})
}

func TestSanitizeCreateJournalRequest(t *testing.T) {
	t.Run("Default Color", func(t *testing.T) {
		request := &requests.CreateJournal{Title: "  2024  ", Year: 2024}

		SanitizeCreateJournalRequest(request)

		assert.Equal(t, "2024", request.Title, "title should be trimmed")
		assert.Equal(t, "#ffffff", request.Color, "missing color should default to white")
	})

	t.Run("Markup Stripped From Title", func(t *testing.T) {
		request := &requests.CreateJournal{Title: " <b>Tom</b> & <script>alert(1)</script>Jerry "}

		SanitizeCreateJournalRequest(request)

		assert.Equal(t, "Tom & Jerry", request.Title, "tags should be removed and entities kept readable")
	})

	t.Run("Color Lowercased", func(t *testing.T) {
		request := &requests.CreateJournal{Title: "Travel", Color: " #A1B2C3 "}

		SanitizeCreateJournalRequest(request)

		assert.Equal(t, "#a1b2c3", request.Color, "color should be lowercase and trimmed")
	})
}

func TestSanitizeCreateEntryRequest(t *testing.T) {
	t.Run("Duplicate Moods Removed", func(t *testing.T) {
		request := &requests.CreateEntry{
			Title:   "  Morning  ",
			MoodIDs: []requests.FlexibleID{3, 1, 3, 1, 2},
		}

		SanitizeCreateEntryRequest(request)

		assert.Equal(t, "Morning", request.Title, "title should be trimmed")
		assert.Equal(t, []requests.FlexibleID{3, 1, 2}, request.MoodIDs, "mood ids should keep first occurrence order")
	})
}

func TestSanitizeUpdateEntryRequest(t *testing.T) {
	t.Run("Nil Fields Untouched", func(t *testing.T) {
		request := &requests.UpdateEntry{}

		SanitizeUpdateEntryRequest(request)

		assert.Nil(t, request.Title, "title should stay nil")
		assert.Nil(t, request.MoodIDs, "mood ids should stay nil")
	})

	t.Run("Pointers Trimmed", func(t *testing.T) {
		title := "  Evening  "
		request := &requests.UpdateEntry{Title: &title}

		SanitizeUpdateEntryRequest(request)

		assert.Equal(t, "Evening", *request.Title, "title should be trimmed")
	})

	t.Run("Title Markup Stripped", func(t *testing.T) {
		title := `<img src=x onerror="alert(1)">Evening`
		request := &requests.UpdateEntry{Title: &title}

		SanitizeUpdateEntryRequest(request)

		assert.Equal(t, "Evening", *request.Title, "tags should be removed from the title")
	})
}

func TestSanitizeCustomPromptRequest(t *testing.T) {
	request := &requests.CustomPrompt{Topic: "  quiet   mornings \n"}

	SanitizeCustomPromptRequest(request)

	assert.Equal(t, "quiet mornings", request.Topic, "topic whitespace should be collapsed")
}
