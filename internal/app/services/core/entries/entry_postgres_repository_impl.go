package entries

import (
	"context"
	"errors"
	"moodjournal-service/internal/app/contracts"
	"moodjournal-service/internal/app/models"
	"moodjournal-service/internal/pkg/constvars"
	"moodjournal-service/internal/pkg/exceptions"
	"moodjournal-service/internal/pkg/queries"
	"moodjournal-service/internal/pkg/utils"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type entryPostgresRepository struct {
	DB  *pgxpool.Pool
	Log *zap.Logger
}

var (
	entryPostgresRepositoryInstance contracts.EntryRepository
	onceEntryPostgresRepository     sync.Once
)

func NewEntryPostgresRepository(db *pgxpool.Pool, logger *zap.Logger) contracts.EntryRepository {
	onceEntryPostgresRepository.Do(func() {
		entryPostgresRepositoryInstance = &entryPostgresRepository{
			DB:  db,
			Log: logger,
		}
	})
	return entryPostgresRepositoryInstance
}

func scanEntry(row pgx.Row, entry *models.Entry) error {
	return row.Scan(
		&entry.ID, &entry.JournalID, &entry.JournalTitle, &entry.UserID,
		&entry.Title, &entry.MainText, &entry.AIPromptUsed, &entry.AIPrompt,
		&entry.CreatedAt, &entry.UpdatedAt,
	)
}

func (repo *entryPostgresRepository) CreateEntry(ctx context.Context, entry *models.Entry, moodIDs []int64) (*models.Entry, error) {
	requestID := utils.GetRequestID(ctx)
	repo.Log.Info("entryPostgresRepository.CreateEntry called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingJournalIDKey, entry.JournalID),
	)

	tx, err := repo.DB.Begin(ctx)
	if err != nil {
		return nil, exceptions.ErrPostgresDBBeginTx(err)
	}
	defer tx.Rollback(ctx)

	var entryID int64
	err = tx.QueryRow(ctx, queries.InsertEntry,
		entry.JournalID, entry.Title, entry.MainText, entry.AIPromptUsed, entry.AIPrompt,
	).Scan(&entryID, new(time.Time), new(time.Time))
	if err != nil {
		repo.Log.Error("entryPostgresRepository.CreateEntry error inserting entry",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBInsertData(err)
	}

	if _, err := tx.Exec(ctx, queries.InsertEntryMoods, entryID, moodIDs); err != nil {
		repo.Log.Error("entryPostgresRepository.CreateEntry error linking moods",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBInsertData(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, exceptions.ErrPostgresDBCommitTx(err)
	}

	repo.Log.Info("entryPostgresRepository.CreateEntry succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingEntryIDKey, entryID),
	)
	return repo.FindByID(ctx, entryID)
}

func (repo *entryPostgresRepository) FindByID(ctx context.Context, entryID int64) (*models.Entry, error) {
	requestID := utils.GetRequestID(ctx)
	repo.Log.Info("entryPostgresRepository.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingEntryIDKey, entryID),
	)

	var entry models.Entry
	err := scanEntry(repo.DB.QueryRow(ctx, queries.GetEntryByID, entryID), &entry)
	if errors.Is(err, pgx.ErrNoRows) {
		repo.Log.Warn("entryPostgresRepository.FindByID no rows found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingEntryIDKey, entryID),
		)
		return nil, nil
	} else if err != nil {
		repo.Log.Error("entryPostgresRepository.FindByID error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}

	entries := []models.Entry{entry}
	if err := repo.attachMoods(ctx, entries); err != nil {
		return nil, err
	}
	return &entries[0], nil
}

// FindByFilter returns entries newest first. Nil filter fields and a zero
// Limit are not applied.
func (repo *entryPostgresRepository) FindByFilter(ctx context.Context, filter *models.EntryFilter) ([]models.Entry, error) {
	requestID := utils.GetRequestID(ctx)
	repo.Log.Info("entryPostgresRepository.FindByFilter called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingUserIDKey, filter.UserID),
	)

	var limit *int
	if filter.Limit > 0 {
		limit = &filter.Limit
	}

	rows, err := repo.DB.Query(ctx, queries.GetEntriesByFilter,
		filter.UserID, filter.JournalID, filter.From, filter.To, limit,
	)
	if err != nil {
		repo.Log.Error("entryPostgresRepository.FindByFilter error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	entries := make([]models.Entry, 0)
	for rows.Next() {
		var entry models.Entry
		if err := scanEntry(rows, &entry); err != nil {
			return nil, exceptions.ErrPostgresDBIterateDataset(err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBIterateDataset(err)
	}
	rows.Close()

	if err := repo.attachMoods(ctx, entries); err != nil {
		return nil, err
	}

	repo.Log.Info("entryPostgresRepository.FindByFilter succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(entries)),
	)
	return entries, nil
}

func (repo *entryPostgresRepository) UpdateEntry(ctx context.Context, entryID int64, update *models.EntryUpdate) (*models.Entry, error) {
	requestID := utils.GetRequestID(ctx)
	repo.Log.Info("entryPostgresRepository.UpdateEntry called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingEntryIDKey, entryID),
	)

	tx, err := repo.DB.Begin(ctx)
	if err != nil {
		return nil, exceptions.ErrPostgresDBBeginTx(err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, queries.UpdateEntry,
		entryID, update.JournalID, update.Title, update.MainText, update.AIPrompt,
	)
	if err != nil {
		repo.Log.Error("entryPostgresRepository.UpdateEntry error updating entry",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBUpdateData(err)
	}
	if tag.RowsAffected() == 0 {
		return nil, exceptions.ErrEntryNotExist(nil)
	}

	if update.MoodIDs != nil {
		if _, err := tx.Exec(ctx, queries.DeleteEntryMoodsByEntryID, entryID); err != nil {
			return nil, exceptions.ErrPostgresDBDeleteData(err)
		}
		if _, err := tx.Exec(ctx, queries.InsertEntryMoods, entryID, update.MoodIDs); err != nil {
			return nil, exceptions.ErrPostgresDBInsertData(err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, exceptions.ErrPostgresDBCommitTx(err)
	}
	return repo.FindByID(ctx, entryID)
}

func (repo *entryPostgresRepository) DeleteByID(ctx context.Context, entryID int64) error {
	requestID := utils.GetRequestID(ctx)
	repo.Log.Info("entryPostgresRepository.DeleteByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingEntryIDKey, entryID),
	)

	if _, err := repo.DB.Exec(ctx, queries.DeleteEntryByID, entryID); err != nil {
		repo.Log.Error("entryPostgresRepository.DeleteByID error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrPostgresDBDeleteData(err)
	}
	return nil
}

func (repo *entryPostgresRepository) CountByUserID(ctx context.Context, userID int64) (int64, error) {
	var count int64
	if err := repo.DB.QueryRow(ctx, queries.CountEntriesByUserID, userID).Scan(&count); err != nil {
		repo.Log.Error("entryPostgresRepository.CountByUserID error executing query",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
		return 0, exceptions.ErrPostgresDBFindData(err)
	}
	return count, nil
}

// FindEntryTimesByUserID returns creation times in [from, to). Nil bounds are
// open.
func (repo *entryPostgresRepository) FindEntryTimesByUserID(ctx context.Context, userID int64, from, to *time.Time) ([]time.Time, error) {
	rows, err := repo.DB.Query(ctx, queries.GetEntryTimesByUserID, userID, from, to)
	if err != nil {
		repo.Log.Error("entryPostgresRepository.FindEntryTimesByUserID error executing query",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}

	times, err := pgx.CollectRows(rows, pgx.RowTo[time.Time])
	if err != nil {
		return nil, exceptions.ErrPostgresDBIterateDataset(err)
	}
	return times, nil
}

func (repo *entryPostgresRepository) attachMoods(ctx context.Context, entries []models.Entry) error {
	if len(entries) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(entries))
	index := make(map[int64]int, len(entries))
	for i := range entries {
		ids = append(ids, entries[i].ID)
		index[entries[i].ID] = i
		entries[i].Moods = make([]models.Mood, 0)
	}

	rows, err := repo.DB.Query(ctx, queries.GetMoodsByEntryIDs, ids)
	if err != nil {
		return exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			entryID int64
			mood    models.Mood
		)
		if err := rows.Scan(&entryID, &mood.ID, &mood.Label, &mood.Emoji, &mood.Score); err != nil {
			return exceptions.ErrPostgresDBIterateDataset(err)
		}
		if i, ok := index[entryID]; ok {
			entries[i].Moods = append(entries[i].Moods, mood)
		}
	}
	if err := rows.Err(); err != nil {
		return exceptions.ErrPostgresDBIterateDataset(err)
	}
	return nil
}
