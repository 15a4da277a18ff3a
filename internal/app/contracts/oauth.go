package contracts

import (
	"context"
	"moodjournal-service/internal/app/models"
	"moodjournal-service/internal/pkg/dto/responses"
	"time"
)

type OAuthUsecase interface {
	BeginGoogleLogin(ctx context.Context) (string, error)
	CompleteGoogleLogin(ctx context.Context, state, code string) (*responses.AuthResult, error)
}

type OAuthStateRepository interface {
	CreateState(ctx context.Context, state string, expiresAt time.Time) error
	// ConsumeState marks state used. It returns false when the state is
	// unknown, already used or expired.
	ConsumeState(ctx context.Context, state string, now time.Time) (bool, error)
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type OAuthProvider interface {
	AuthCodeURL(state string) string
	FetchUserInfo(ctx context.Context, code string) (*models.GoogleUserInfo, error)
}
