package contracts

import (
	"context"
	"moodjournal-service/internal/app/models"
	"moodjournal-service/internal/pkg/dto/requests"
	"moodjournal-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	IssueCSRFToken(ctx context.Context) (*responses.CSRFToken, error)
	Signup(ctx context.Context, request *requests.Signup) (*responses.AuthResult, error)
	Login(ctx context.Context, request *requests.Login) (*responses.AuthResult, error)
	Logout(ctx context.Context, request *requests.Logout) error
	Refresh(ctx context.Context, request *requests.RefreshToken) (*responses.AuthResult, error)
	Authenticate(ctx context.Context, accessToken string) (*models.Session, error)
	IsAnonymousCSRFTokenValid(ctx context.Context, token string) (bool, error)
	// StartSession creates a session and token pair for an already
	// authenticated user.
	StartSession(ctx context.Context, user *models.User) (*responses.AuthResult, error)
}
