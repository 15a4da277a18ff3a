package contracts

import (
	"context"
	"moodjournal-service/internal/app/models"
	"moodjournal-service/internal/pkg/dto/requests"
	"moodjournal-service/internal/pkg/dto/responses"
)

type JournalUsecase interface {
	CreateJournal(ctx context.Context, request *requests.CreateJournal) (*responses.Journal, error)
	UpdateJournal(ctx context.Context, request *requests.UpdateJournal) (*responses.Journal, error)
	FindJournalByID(ctx context.Context, request *requests.FindJournalByID) (*responses.Journal, error)
	FindJournals(ctx context.Context, userID int64) ([]responses.Journal, error)
	FindJournalEntries(ctx context.Context, request *requests.FindJournalEntries) ([]responses.Entry, error)
	DeleteJournalByID(ctx context.Context, request *requests.DeleteJournalByID) error
}

type JournalRepository interface {
	CreateJournal(ctx context.Context, journal *models.Journal) (*models.Journal, error)
	FindByID(ctx context.Context, journalID int64) (*models.Journal, error)
	FindByUserID(ctx context.Context, userID int64) ([]models.Journal, error)
	FindByUserIDAndTitle(ctx context.Context, userID int64, title string) (*models.Journal, error)
	UpdateJournal(ctx context.Context, journal *models.Journal) (*models.Journal, error)
	DeleteByID(ctx context.Context, journalID int64) error
	CountByUserID(ctx context.Context, userID int64) (int64, error)
}
