package moods

import (
	"context"
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

type moodPostgresRepository struct {
	DB  *pgxpool.Pool
	Log *zap.Logger
}

var (
	moodPostgresRepositoryInstance contracts.MoodRepository
	onceMoodPostgresRepository     sync.Once
)

func NewMoodPostgresRepository(db *pgxpool.Pool, logger *zap.Logger) contracts.MoodRepository {
	onceMoodPostgresRepository.Do(func() {
		moodPostgresRepositoryInstance = &moodPostgresRepository{
			DB:  db,
			Log: logger,
		}
	})
	return moodPostgresRepositoryInstance
}

func (repo *moodPostgresRepository) FindAll(ctx context.Context) ([]models.Mood, error) {
	return repo.query(ctx, "FindAll", queries.GetAllMoods)
}

func (repo *moodPostgresRepository) FindByIDs(ctx context.Context, moodIDs []int64) ([]models.Mood, error) {
	return repo.query(ctx, "FindByIDs", queries.GetMoodsByIDs, moodIDs)
}

func (repo *moodPostgresRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.DB.QueryRow(ctx, queries.CountMoods).Scan(&count); err != nil {
		return 0, exceptions.ErrPostgresDBFindData(err)
	}
	return count, nil
}

// SeedMoods inserts all moods in one batch and transaction.
func (repo *moodPostgresRepository) SeedMoods(ctx context.Context, moods []models.Mood) (int, error) {
	requestID := utils.GetRequestID(ctx)
	repo.Log.Info("moodPostgresRepository.SeedMoods called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(moods)),
	)

	tx, err := repo.DB.Begin(ctx)
	if err != nil {
		return 0, exceptions.ErrPostgresDBBeginTx(err)
	}
	defer tx.Rollback(ctx)

	batch := &pgx.Batch{}
	for _, mood := range moods {
		batch.Queue(queries.InsertMood, mood.Label, mood.Emoji, mood.Score)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		repo.Log.Error("moodPostgresRepository.SeedMoods error inserting moods",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return 0, exceptions.ErrPostgresDBInsertData(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, exceptions.ErrPostgresDBCommitTx(err)
	}
	return len(moods), nil
}

func (repo *moodPostgresRepository) query(ctx context.Context, method, query string, args ...interface{}) ([]models.Mood, error) {
	requestID := utils.GetRequestID(ctx)
	repo.Log.Info("moodPostgresRepository."+method+" called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	rows, err := repo.DB.Query(ctx, query, args...)
	if err != nil {
		repo.Log.Error("moodPostgresRepository."+method+" error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}

	moods, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Mood, error) {
		var mood models.Mood
		err := row.Scan(&mood.ID, &mood.Label, &mood.Emoji, &mood.Score)
		return mood, err
	})
	if err != nil {
		return nil, exceptions.ErrPostgresDBIterateDataset(err)
	}
	return moods, nil
}
