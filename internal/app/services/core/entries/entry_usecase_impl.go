package entries

import (
	"context"
	"moodjournal-service/internal/app/contracts"
	"moodjournal-service/internal/app/models"
	"moodjournal-service/internal/pkg/constvars"
	"moodjournal-service/internal/pkg/dto/requests"
	"moodjournal-service/internal/pkg/dto/responses"
	"moodjournal-service/internal/pkg/exceptions"
	"moodjournal-service/internal/pkg/utils"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
)

type entryUsecase struct {
	EntryRepository   contracts.EntryRepository
	JournalRepository contracts.JournalRepository
	MoodRepository    contracts.MoodRepository
	// main_text arrives as rich-text HTML from the editor
	Policy *bluemonday.Policy
	Log    *zap.Logger
}

var (
	entryUsecaseInstance contracts.EntryUsecase
	onceEntryUsecase     sync.Once
)

func NewEntryUsecase(
	entryRepository contracts.EntryRepository,
	journalRepository contracts.JournalRepository,
	moodRepository contracts.MoodRepository,
	logger *zap.Logger,
) contracts.EntryUsecase {
	onceEntryUsecase.Do(func() {
		entryUsecaseInstance = newEntryUsecase(entryRepository, journalRepository, moodRepository, logger)
	})
	return entryUsecaseInstance
}

func newEntryUsecase(
	entryRepository contracts.EntryRepository,
	journalRepository contracts.JournalRepository,
	moodRepository contracts.MoodRepository,
	logger *zap.Logger,
) *entryUsecase {
	return &entryUsecase{
		EntryRepository:   entryRepository,
		JournalRepository: journalRepository,
		MoodRepository:    moodRepository,
		Policy:            bluemonday.UGCPolicy(),
		Log:               logger,
	}
}

func (uc *entryUsecase) CreateEntry(ctx context.Context, request *requests.CreateEntry) (*responses.Entry, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("entryUsecase.CreateEntry called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingUserIDKey, request.UserID),
	)

	journalID := request.JournalID.Int64()
	if err := uc.ensureJournalOwned(ctx, request.UserID, journalID); err != nil {
		return nil, err
	}

	moodIDs := requests.FlexibleIDsToInt64(request.MoodIDs)
	if err := uc.ensureMoodsExist(ctx, moodIDs); err != nil {
		return nil, err
	}

	aiPromptUsed := request.AIPromptUsed != nil && *request.AIPromptUsed
	aiPrompt := request.AIPrompt
	if !aiPromptUsed {
		aiPrompt = ""
	}

	entry, err := uc.EntryRepository.CreateEntry(ctx, &models.Entry{
		JournalID:    journalID,
		UserID:       request.UserID,
		Title:        request.Title,
		MainText:     uc.Policy.Sanitize(request.MainText),
		AIPromptUsed: aiPromptUsed,
		AIPrompt:     aiPrompt,
	}, moodIDs)
	if err != nil {
		uc.Log.Error("entryUsecase.CreateEntry error creating entry",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("entryUsecase.CreateEntry succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingEntryIDKey, entry.ID),
	)
	return utils.MapEntryToResponse(entry), nil
}

func (uc *entryUsecase) UpdateEntry(ctx context.Context, request *requests.UpdateEntry) (*responses.Entry, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("entryUsecase.UpdateEntry called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingEntryIDKey, request.EntryID),
	)

	entry, err := uc.findOwnedEntry(ctx, request.UserID, request.EntryID)
	if err != nil {
		return nil, err
	}

	update := &models.EntryUpdate{
		Title:    request.Title,
		AIPrompt: request.AIPrompt,
	}
	if request.JournalID != nil {
		journalID := request.JournalID.Int64()
		if journalID != entry.JournalID {
			if err := uc.ensureJournalOwned(ctx, request.UserID, journalID); err != nil {
				return nil, err
			}
		}
		update.JournalID = &journalID
	}
	if request.MainText != nil {
		sanitized := uc.Policy.Sanitize(*request.MainText)
		update.MainText = &sanitized
	}
	if request.MoodIDs != nil {
		update.MoodIDs = requests.FlexibleIDsToInt64(request.MoodIDs)
		if err := uc.ensureMoodsExist(ctx, update.MoodIDs); err != nil {
			return nil, err
		}
	}

	updated, err := uc.EntryRepository.UpdateEntry(ctx, entry.ID, update)
	if err != nil {
		uc.Log.Error("entryUsecase.UpdateEntry error updating entry",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("entryUsecase.UpdateEntry succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingEntryIDKey, updated.ID),
	)
	return utils.MapEntryToResponse(updated), nil
}

func (uc *entryUsecase) FindEntryByID(ctx context.Context, request *requests.FindEntryByID) (*responses.Entry, error) {
	entry, err := uc.findOwnedEntry(ctx, request.UserID, request.EntryID)
	if err != nil {
		return nil, err
	}
	return utils.MapEntryToResponse(entry), nil
}

func (uc *entryUsecase) FindEntries(ctx context.Context, request *requests.FindEntries) ([]responses.Entry, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("entryUsecase.FindEntries called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingUserIDKey, request.UserID),
	)

	if request.From != nil && request.To != nil && request.From.After(*request.To) {
		return nil, exceptions.ErrInvalidDateRange(nil)
	}

	entries, err := uc.EntryRepository.FindByFilter(ctx, &models.EntryFilter{
		UserID:    request.UserID,
		JournalID: request.JournalID,
		From:      request.From,
		To:        request.To,
	})
	if err != nil {
		return nil, err
	}

	uc.Log.Info("entryUsecase.FindEntries succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(entries)),
	)
	return utils.MapEntriesToResponse(entries), nil
}

func (uc *entryUsecase) DeleteEntryByID(ctx context.Context, request *requests.DeleteEntryByID) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("entryUsecase.DeleteEntryByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingEntryIDKey, request.EntryID),
	)

	entry, err := uc.findOwnedEntry(ctx, request.UserID, request.EntryID)
	if err != nil {
		return err
	}
	return uc.EntryRepository.DeleteByID(ctx, entry.ID)
}

func (uc *entryUsecase) findOwnedEntry(ctx context.Context, userID, entryID int64) (*models.Entry, error) {
	entry, err := uc.EntryRepository.FindByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if entry == nil || entry.UserID != userID {
		return nil, exceptions.ErrEntryNotExist(nil)
	}
	return entry, nil
}

func (uc *entryUsecase) ensureJournalOwned(ctx context.Context, userID, journalID int64) error {
	journal, err := uc.JournalRepository.FindByID(ctx, journalID)
	if err != nil {
		return err
	}
	if !journal.IsOwnedBy(userID) {
		return exceptions.ErrJournalNotExist(nil)
	}
	return nil
}

func (uc *entryUsecase) ensureMoodsExist(ctx context.Context, moodIDs []int64) error {
	if len(moodIDs) == 0 {
		return exceptions.ErrMoodNotExist(nil)
	}
	moods, err := uc.MoodRepository.FindByIDs(ctx, moodIDs)
	if err != nil {
		return err
	}
	if len(moods) != len(moodIDs) {
		return exceptions.ErrMoodNotExist(nil)
	}
	return nil
}
