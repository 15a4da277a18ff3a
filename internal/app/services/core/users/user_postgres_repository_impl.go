package users

import (
	"context"
	"errors"
	"moodjournal-service/internal/app/contracts"
	"moodjournal-service/internal/app/models"
	"moodjournal-service/internal/pkg/constvars"
	"moodjournal-service/internal/pkg/exceptions"
	"moodjournal-service/internal/pkg/queries"
	"moodjournal-service/internal/pkg/utils"
	"strings"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type userPostgresRepository struct {
	DB  *pgxpool.Pool
	Log *zap.Logger
}

var (
	userPostgresRepositoryInstance contracts.UserRepository
	onceUserPostgresRepository     sync.Once
)

func NewUserPostgresRepository(db *pgxpool.Pool, logger *zap.Logger) contracts.UserRepository {
	onceUserPostgresRepository.Do(func() {
		userPostgresRepositoryInstance = &userPostgresRepository{
			DB:  db,
			Log: logger,
		}
	})
	return userPostgresRepositoryInstance
}

func (repo *userPostgresRepository) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	requestID := utils.GetRequestID(ctx)
	repo.Log.Info("userPostgresRepository.CreateUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUsernameKey, user.Username),
	)

	created := *user
	err := repo.DB.QueryRow(ctx, queries.InsertUser,
		user.Username, user.Email, user.PasswordHash, user.GoogleSub,
	).Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		if constraint, ok := utils.UniqueViolationConstraint(err); ok {
			if strings.Contains(constraint, "email") {
				return nil, exceptions.ErrEmailAlreadyExist(err)
			}
			return nil, exceptions.ErrUsernameAlreadyExist(err)
		}
		repo.Log.Error("userPostgresRepository.CreateUser error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBInsertData(err)
	}

	repo.Log.Info("userPostgresRepository.CreateUser succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingUserIDKey, created.ID),
	)
	return &created, nil
}

func (repo *userPostgresRepository) FindByID(ctx context.Context, userID int64) (*models.User, error) {
	return repo.findOne(ctx, "FindByID", queries.GetUserByID, userID)
}

func (repo *userPostgresRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	return repo.findOne(ctx, "FindByUsername", queries.GetUserByUsername, username)
}

func (repo *userPostgresRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return repo.findOne(ctx, "FindByEmail", queries.GetUserByEmail, email)
}

func (repo *userPostgresRepository) FindByGoogleSub(ctx context.Context, googleSub string) (*models.User, error) {
	return repo.findOne(ctx, "FindByGoogleSub", queries.GetUserByGoogleSub, googleSub)
}

func (repo *userPostgresRepository) LinkGoogleSub(ctx context.Context, userID int64, googleSub string) error {
	requestID := utils.GetRequestID(ctx)
	repo.Log.Info("userPostgresRepository.LinkGoogleSub called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingUserIDKey, userID),
	)

	if _, err := repo.DB.Exec(ctx, queries.UpdateUserGoogleSub, userID, googleSub); err != nil {
		repo.Log.Error("userPostgresRepository.LinkGoogleSub error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrPostgresDBUpdateData(err)
	}
	return nil
}

func (repo *userPostgresRepository) DeleteByID(ctx context.Context, userID int64) error {
	requestID := utils.GetRequestID(ctx)
	repo.Log.Info("userPostgresRepository.DeleteByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingUserIDKey, userID),
	)

	if _, err := repo.DB.Exec(ctx, queries.DeleteUserByID, userID); err != nil {
		repo.Log.Error("userPostgresRepository.DeleteByID error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrPostgresDBDeleteData(err)
	}

	repo.Log.Info("userPostgresRepository.DeleteByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingUserIDKey, userID),
	)
	return nil
}

func (repo *userPostgresRepository) findOne(ctx context.Context, method, query string, arg interface{}) (*models.User, error) {
	requestID := utils.GetRequestID(ctx)
	repo.Log.Info("userPostgresRepository."+method+" called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var user models.User
	err := repo.DB.QueryRow(ctx, query, arg).Scan(
		&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.GoogleSub,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		repo.Log.Info("userPostgresRepository."+method+" no rows found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, nil
	} else if err != nil {
		repo.Log.Error("userPostgresRepository."+method+" error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return &user, nil
}
