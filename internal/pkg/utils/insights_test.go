package utils

import (
	"moodjournal-service/internal/app/models"
	"moodjournal-service/internal/pkg/dto/responses"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d, h int) time.Time {
	return time.Date(y, m, d, h, 0, 0, 0, time.UTC)
}

func TestCalculateStreaks(t *testing.T) {
	now := day(2024, time.March, 10, 12)

	t.Run("No Entries", func(t *testing.T) {
		longest, current := CalculateStreaks(nil, now, time.UTC)
		assert.Equal(t, 0, longest)
		assert.Equal(t, 0, current)
	})

	t.Run("Current Streak Including Today", func(t *testing.T) {
		times := []time.Time{
			day(2024, time.March, 8, 9),
			day(2024, time.March, 9, 9),
			day(2024, time.March, 10, 8),
			day(2024, time.March, 10, 20),
		}
		longest, current := CalculateStreaks(times, now, time.UTC)
		assert.Equal(t, 3, longest, "multiple entries on one day count once")
		assert.Equal(t, 3, current)
	})

	t.Run("Streak Ending Yesterday Still Current", func(t *testing.T) {
		times := []time.Time{day(2024, time.March, 8, 9), day(2024, time.March, 9, 9)}
		_, current := CalculateStreaks(times, now, time.UTC)
		assert.Equal(t, 2, current)
	})

	t.Run("Broken Streak", func(t *testing.T) {
		times := []time.Time{
			day(2024, time.February, 1, 9),
			day(2024, time.February, 2, 9),
			day(2024, time.February, 3, 9),
			day(2024, time.February, 4, 9),
			day(2024, time.March, 7, 9),
		}
		longest, current := CalculateStreaks(times, now, time.UTC)
		assert.Equal(t, 4, longest)
		assert.Equal(t, 0, current)
	})

	t.Run("Crosses Month Boundary", func(t *testing.T) {
		times := []time.Time{day(2024, time.February, 28, 9), day(2024, time.February, 29, 9), day(2024, time.March, 1, 9)}
		longest, _ := CalculateStreaks(times, now, time.UTC)
		assert.Equal(t, 3, longest)
	})

	t.Run("Uses Location For Day Boundary", func(t *testing.T) {
		loc := time.FixedZone("UTC+7", 7*3600)
		// 20:00 UTC on the 9th is already the 10th in UTC+7
		times := []time.Time{day(2024, time.March, 9, 20)}
		_, current := CalculateStreaks(times, day(2024, time.March, 10, 6), loc)
		assert.Equal(t, 1, current)
	})
}

func TestBuildHeatmap(t *testing.T) {
	times := []time.Time{
		day(2024, time.March, 3, 9),
		day(2024, time.March, 1, 9),
		day(2024, time.March, 3, 22),
	}

	result := BuildHeatmap(times, time.UTC)

	assert.Equal(t, []responses.HeatmapDay{
		{Date: "2024-03-01", Count: 1},
		{Date: "2024-03-03", Count: 2},
	}, result)
	assert.Empty(t, BuildHeatmap(nil, time.UTC))
	assert.NotNil(t, BuildHeatmap(nil, time.UTC), "empty heatmap should serialize as []")
}

func TestBuildMoodTrend(t *testing.T) {
	happy := models.Mood{ID: 1, Score: 5}
	sad := models.Mood{ID: 2, Score: 2}
	entries := []models.Entry{
		{CreatedAt: day(2024, time.March, 2, 9), Moods: []models.Mood{happy, sad}},
		{CreatedAt: day(2024, time.March, 2, 18), Moods: []models.Mood{happy}},
		{CreatedAt: day(2024, time.March, 1, 9)},
	}

	result := BuildMoodTrend(entries, time.UTC)

	assert.Equal(t, []responses.MoodTrendPoint{
		{Date: "2024-03-01", AverageScore: 0},
		{Date: "2024-03-02", AverageScore: 4.25},
	}, result)
}

func TestHeatmapRange(t *testing.T) {
	from, to := HeatmapRange(2024, 2, time.UTC)
	assert.Equal(t, day(2024, time.February, 1, 0), from)
	assert.Equal(t, day(2024, time.March, 1, 0), to)

	from, to = HeatmapRange(2024, 0, time.UTC)
	assert.Equal(t, day(2024, time.January, 1, 0), from)
	assert.Equal(t, day(2025, time.January, 1, 0), to)
}
