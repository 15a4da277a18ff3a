package contracts

import (
	"context"
	"moodjournal-service/internal/app/models"
	"moodjournal-service/internal/pkg/dto/requests"
	"moodjournal-service/internal/pkg/dto/responses"
)

type UserUsecase interface {
	GetProfile(ctx context.Context, userID int64) (*responses.UserProfile, error)
	GetStats(ctx context.Context, userID int64) (*responses.UserStats, error)
	DeleteUser(ctx context.Context, request *requests.DeleteUser) error
	ExportUser(ctx context.Context, request *requests.ExportUser) (*responses.UserExport, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) (*models.User, error)
	FindByID(ctx context.Context, userID int64) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByGoogleSub(ctx context.Context, googleSub string) (*models.User, error)
	LinkGoogleSub(ctx context.Context, userID int64, googleSub string) error
	DeleteByID(ctx context.Context, userID int64) error
}
