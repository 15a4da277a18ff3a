package contracts

import (
	"context"
	"moodjournal-service/internal/app/models"
	"moodjournal-service/internal/pkg/dto/requests"
	"moodjournal-service/internal/pkg/dto/responses"
	"time"
)

type EntryUsecase interface {
	CreateEntry(ctx context.Context, request *requests.CreateEntry) (*responses.Entry, error)
	UpdateEntry(ctx context.Context, request *requests.UpdateEntry) (*responses.Entry, error)
	FindEntryByID(ctx context.Context, request *requests.FindEntryByID) (*responses.Entry, error)
	FindEntries(ctx context.Context, request *requests.FindEntries) ([]responses.Entry, error)
	DeleteEntryByID(ctx context.Context, request *requests.DeleteEntryByID) error
}

type InsightUsecase interface {
	GetHeatmap(ctx context.Context, request *requests.Heatmap) ([]responses.HeatmapDay, error)
	GetMoodTrend(ctx context.Context, request *requests.MoodTrend) ([]responses.MoodTrendPoint, error)
}

type EntryRepository interface {
	// CreateEntry inserts the entry and its mood links in one transaction.
	CreateEntry(ctx context.Context, entry *models.Entry, moodIDs []int64) (*models.Entry, error)
	FindByID(ctx context.Context, entryID int64) (*models.Entry, error)
	FindByFilter(ctx context.Context, filter *models.EntryFilter) ([]models.Entry, error)
	// UpdateEntry applies the non-nil fields and, when MoodIDs is set,
	// replaces the mood links in the same transaction.
	UpdateEntry(ctx context.Context, entryID int64, update *models.EntryUpdate) (*models.Entry, error)
	DeleteByID(ctx context.Context, entryID int64) error
	CountByUserID(ctx context.Context, userID int64) (int64, error)
	FindEntryTimesByUserID(ctx context.Context, userID int64, from, to *time.Time) ([]time.Time, error)
}
