package journals

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

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type journalPostgresRepository struct {
	DB  *pgxpool.Pool
	Log *zap.Logger
}

var (
	journalPostgresRepositoryInstance contracts.JournalRepository
	onceJournalPostgresRepository     sync.Once
)

func NewJournalPostgresRepository(db *pgxpool.Pool, logger *zap.Logger) contracts.JournalRepository {
	onceJournalPostgresRepository.Do(func() {
		journalPostgresRepositoryInstance = &journalPostgresRepository{
			DB:  db,
			Log: logger,
		}
	})
	return journalPostgresRepositoryInstance
}

func scanJournal(row pgx.Row, journal *models.Journal) error {
	return row.Scan(
		&journal.ID, &journal.UserID, &journal.Title, &journal.Year, &journal.Color,
		&journal.EntryCount, &journal.CreatedAt, &journal.UpdatedAt,
	)
}

func (repo *journalPostgresRepository) CreateJournal(ctx context.Context, journal *models.Journal) (*models.Journal, error) {
	requestID := utils.GetRequestID(ctx)
	repo.Log.Info("journalPostgresRepository.CreateJournal called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingUserIDKey, journal.UserID),
	)

	created := *journal
	err := repo.DB.QueryRow(ctx, queries.InsertJournal,
		journal.UserID, journal.Title, journal.Year, journal.Color,
	).Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		if _, ok := utils.UniqueViolationConstraint(err); ok {
			return nil, exceptions.ErrJournalTitleAlreadyExist(err)
		}
		repo.Log.Error("journalPostgresRepository.CreateJournal error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBInsertData(err)
	}

	repo.Log.Info("journalPostgresRepository.CreateJournal succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingJournalIDKey, created.ID),
	)
	return &created, nil
}

func (repo *journalPostgresRepository) FindByID(ctx context.Context, journalID int64) (*models.Journal, error) {
	requestID := utils.GetRequestID(ctx)
	repo.Log.Info("journalPostgresRepository.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingJournalIDKey, journalID),
	)

	var journal models.Journal
	err := scanJournal(repo.DB.QueryRow(ctx, queries.GetJournalByID, journalID), &journal)
	if errors.Is(err, pgx.ErrNoRows) {
		repo.Log.Warn("journalPostgresRepository.FindByID no rows found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingJournalIDKey, journalID),
		)
		return nil, nil
	} else if err != nil {
		repo.Log.Error("journalPostgresRepository.FindByID error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return &journal, nil
}

func (repo *journalPostgresRepository) FindByUserID(ctx context.Context, userID int64) ([]models.Journal, error) {
	requestID := utils.GetRequestID(ctx)
	repo.Log.Info("journalPostgresRepository.FindByUserID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingUserIDKey, userID),
	)

	rows, err := repo.DB.Query(ctx, queries.GetJournalsByUserID, userID)
	if err != nil {
		repo.Log.Error("journalPostgresRepository.FindByUserID error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	journals := make([]models.Journal, 0)
	for rows.Next() {
		var journal models.Journal
		if err := scanJournal(rows, &journal); err != nil {
			repo.Log.Error("journalPostgresRepository.FindByUserID error scanning row",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, exceptions.ErrPostgresDBIterateDataset(err)
		}
		journals = append(journals, journal)
	}
	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBIterateDataset(err)
	}

	repo.Log.Info("journalPostgresRepository.FindByUserID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(journals)),
	)
	return journals, nil
}

func (repo *journalPostgresRepository) FindByUserIDAndTitle(ctx context.Context, userID int64, title string) (*models.Journal, error) {
	requestID := utils.GetRequestID(ctx)
	repo.Log.Info("journalPostgresRepository.FindByUserIDAndTitle called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingUserIDKey, userID),
	)

	var journal models.Journal
	err := scanJournal(repo.DB.QueryRow(ctx, queries.GetJournalByUserIDAndTitle, userID, title), &journal)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		repo.Log.Error("journalPostgresRepository.FindByUserIDAndTitle error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return &journal, nil
}

func (repo *journalPostgresRepository) UpdateJournal(ctx context.Context, journal *models.Journal) (*models.Journal, error) {
	requestID := utils.GetRequestID(ctx)
	repo.Log.Info("journalPostgresRepository.UpdateJournal called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingJournalIDKey, journal.ID),
	)

	updated := *journal
	err := repo.DB.QueryRow(ctx, queries.UpdateJournal,
		journal.ID, journal.Title, journal.Year, journal.Color,
	).Scan(&updated.UpdatedAt)
	if err != nil {
		if _, ok := utils.UniqueViolationConstraint(err); ok {
			return nil, exceptions.ErrJournalTitleAlreadyExist(err)
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, exceptions.ErrJournalNotExist(err)
		}
		repo.Log.Error("journalPostgresRepository.UpdateJournal error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBUpdateData(err)
	}
	return &updated, nil
}

func (repo *journalPostgresRepository) DeleteByID(ctx context.Context, journalID int64) error {
	requestID := utils.GetRequestID(ctx)
	repo.Log.Info("journalPostgresRepository.DeleteByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingJournalIDKey, journalID),
	)

	if _, err := repo.DB.Exec(ctx, queries.DeleteJournalByID, journalID); err != nil {
		repo.Log.Error("journalPostgresRepository.DeleteByID error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrPostgresDBDeleteData(err)
	}
	return nil
}

func (repo *journalPostgresRepository) CountByUserID(ctx context.Context, userID int64) (int64, error) {
	var count int64
	if err := repo.DB.QueryRow(ctx, queries.CountJournalsByUserID, userID).Scan(&count); err != nil {
		repo.Log.Error("journalPostgresRepository.CountByUserID error executing query",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
		return 0, exceptions.ErrPostgresDBFindData(err)
	}
	return count, nil
}
