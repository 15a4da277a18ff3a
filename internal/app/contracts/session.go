package contracts

import (
	"context"
	"moodjournal-service/internal/app/models"
	"time"
)

type SessionService interface {
	CreateSession(ctx context.Context, user *models.User, ttl time.Duration) (*models.Session, error)
	GetSession(ctx context.Context, sessionID string) (*models.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
	// DeleteUserSessions revokes every session of userID and reports how many
	// were indexed.
	DeleteUserSessions(ctx context.Context, userID int64) (int, error)
	StoreRefreshToken(ctx context.Context, jti, sessionID string, ttl time.Duration) error
	// ConsumeRefreshToken returns the session bound to jti and forgets jti.
	// An empty session id means the token was already used or never issued.
	ConsumeRefreshToken(ctx context.Context, jti string) (string, error)
	IssueAnonymousCSRFToken(ctx context.Context, ttl time.Duration) (string, error)
	IsAnonymousCSRFTokenValid(ctx context.Context, token string) (bool, error)
}
