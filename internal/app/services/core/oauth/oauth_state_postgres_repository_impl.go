package oauth

import (
	"context"
	"errors"
	"moodjournal-service/internal/app/contracts"
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

type oauthStatePostgresRepository struct {
	DB  *pgxpool.Pool
	Log *zap.Logger
}

var (
	oauthStatePostgresRepositoryInstance contracts.OAuthStateRepository
	onceOAuthStatePostgresRepository     sync.Once
)

func NewOAuthStatePostgresRepository(db *pgxpool.Pool, logger *zap.Logger) contracts.OAuthStateRepository {
	onceOAuthStatePostgresRepository.Do(func() {
		oauthStatePostgresRepositoryInstance = &oauthStatePostgresRepository{
			DB:  db,
			Log: logger,
		}
	})
	return oauthStatePostgresRepositoryInstance
}

func (repo *oauthStatePostgresRepository) CreateState(ctx context.Context, state string, expiresAt time.Time) error {
	if _, err := repo.DB.Exec(ctx, queries.InsertOAuthState, state, expiresAt); err != nil {
		repo.Log.Error("oauthStatePostgresRepository.CreateState error executing query",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
		return exceptions.ErrPostgresDBInsertData(err)
	}
	return nil
}

func (repo *oauthStatePostgresRepository) ConsumeState(ctx context.Context, state string, now time.Time) (bool, error) {
	var id int64
	err := repo.DB.QueryRow(ctx, queries.ConsumeOAuthState, state, now).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	} else if err != nil {
		repo.Log.Error("oauthStatePostgresRepository.ConsumeState error executing query",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
		return false, exceptions.ErrPostgresDBUpdateData(err)
	}
	return true, nil
}

func (repo *oauthStatePostgresRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	tag, err := repo.DB.Exec(ctx, queries.DeleteExpiredOAuthStates, now)
	if err != nil {
		return 0, exceptions.ErrPostgresDBDeleteData(err)
	}
	return tag.RowsAffected(), nil
}
