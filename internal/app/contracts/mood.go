package contracts

import (
	"context"
	"moodjournal-service/internal/app/models"
	"moodjournal-service/internal/pkg/dto/responses"
)

type MoodUsecase interface {
	FindAll(ctx context.Context) ([]responses.Mood, error)
	SeedMoodsIfEmpty(ctx context.Context) (int, error)
}

type MoodRepository interface {
	FindAll(ctx context.Context) ([]models.Mood, error)
	FindByIDs(ctx context.Context, moodIDs []int64) ([]models.Mood, error)
	Count(ctx context.Context) (int64, error)
	SeedMoods(ctx context.Context, moods []models.Mood) (int, error)
}
