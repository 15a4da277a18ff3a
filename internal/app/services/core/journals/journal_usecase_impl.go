package journals

import (
	"context"
	"moodjournal-service/internal/app/contracts"
	"moodjournal-service/internal/app/models"
	"moodjournal-service/internal/pkg/constvars"
	"moodjournal-service/internal/pkg/dto/requests"
	"moodjournal-service/internal/pkg/dto/responses"
	"moodjournal-service/internal/pkg/exceptions"
	"moodjournal-service/internal/pkg/utils"
	"strings"
	"sync"

	"go.uber.org/zap"
)

type journalUsecase struct {
	JournalRepository contracts.JournalRepository
	EntryRepository   contracts.EntryRepository
	Log               *zap.Logger
}

var (
	journalUsecaseInstance contracts.JournalUsecase
	onceJournalUsecase     sync.Once
)

func NewJournalUsecase(
	journalRepository contracts.JournalRepository,
	entryRepository contracts.EntryRepository,
	logger *zap.Logger,
) contracts.JournalUsecase {
	onceJournalUsecase.Do(func() {
		journalUsecaseInstance = &journalUsecase{
			JournalRepository: journalRepository,
			EntryRepository:   entryRepository,
			Log:               logger,
		}
	})
	return journalUsecaseInstance
}

func (uc *journalUsecase) CreateJournal(ctx context.Context, request *requests.CreateJournal) (*responses.Journal, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("journalUsecase.CreateJournal called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingUserIDKey, request.UserID),
	)

	existing, err := uc.JournalRepository.FindByUserIDAndTitle(ctx, request.UserID, request.Title)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrJournalTitleAlreadyExist(nil)
	}

	journal, err := uc.JournalRepository.CreateJournal(ctx, &models.Journal{
		UserID: request.UserID,
		Title:  request.Title,
		Year:   request.Year,
		Color:  request.Color,
	})
	if err != nil {
		uc.Log.Error("journalUsecase.CreateJournal error creating journal",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("journalUsecase.CreateJournal succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingJournalIDKey, journal.ID),
	)
	return utils.MapJournalToResponse(journal), nil
}

func (uc *journalUsecase) UpdateJournal(ctx context.Context, request *requests.UpdateJournal) (*responses.Journal, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("journalUsecase.UpdateJournal called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingJournalIDKey, request.JournalID),
	)

	journal, err := uc.findOwnedJournal(ctx, request.UserID, request.JournalID)
	if err != nil {
		return nil, err
	}

	if !strings.EqualFold(journal.Title, request.Title) {
		existing, err := uc.JournalRepository.FindByUserIDAndTitle(ctx, request.UserID, request.Title)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != journal.ID {
			return nil, exceptions.ErrJournalTitleAlreadyExist(nil)
		}
	}

	journal.Title = request.Title
	journal.Year = request.Year
	journal.Color = request.Color
	updated, err := uc.JournalRepository.UpdateJournal(ctx, journal)
	if err != nil {
		uc.Log.Error("journalUsecase.UpdateJournal error updating journal",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("journalUsecase.UpdateJournal succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingJournalIDKey, updated.ID),
	)
	return utils.MapJournalToResponse(updated), nil
}

func (uc *journalUsecase) FindJournalByID(ctx context.Context, request *requests.FindJournalByID) (*responses.Journal, error) {
	journal, err := uc.findOwnedJournal(ctx, request.UserID, request.JournalID)
	if err != nil {
		return nil, err
	}
	return utils.MapJournalToResponse(journal), nil
}

func (uc *journalUsecase) FindJournals(ctx context.Context, userID int64) ([]responses.Journal, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("journalUsecase.FindJournals called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingUserIDKey, userID),
	)

	journals, err := uc.JournalRepository.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return utils.MapJournalsToResponse(journals), nil
}

func (uc *journalUsecase) FindJournalEntries(ctx context.Context, request *requests.FindJournalEntries) ([]responses.Entry, error) {
	journal, err := uc.findOwnedJournal(ctx, request.UserID, request.JournalID)
	if err != nil {
		return nil, err
	}

	entries, err := uc.EntryRepository.FindByFilter(ctx, &models.EntryFilter{
		UserID:    request.UserID,
		JournalID: &journal.ID,
	})
	if err != nil {
		return nil, err
	}
	return utils.MapEntriesToResponse(entries), nil
}

func (uc *journalUsecase) DeleteJournalByID(ctx context.Context, request *requests.DeleteJournalByID) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("journalUsecase.DeleteJournalByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingJournalIDKey, request.JournalID),
	)

	journal, err := uc.findOwnedJournal(ctx, request.UserID, request.JournalID)
	if err != nil {
		return err
	}
	if err := uc.JournalRepository.DeleteByID(ctx, journal.ID); err != nil {
		return err
	}

	uc.Log.Info("journalUsecase.DeleteJournalByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingJournalIDKey, journal.ID),
	)
	return nil
}

// findOwnedJournal answers 404 for journals of other users as well.
func (uc *journalUsecase) findOwnedJournal(ctx context.Context, userID, journalID int64) (*models.Journal, error) {
	journal, err := uc.JournalRepository.FindByID(ctx, journalID)
	if err != nil {
		return nil, err
	}
	if !journal.IsOwnedBy(userID) {
		return nil, exceptions.ErrJournalNotExist(nil)
	}
	return journal, nil
}
