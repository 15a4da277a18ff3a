package contracts

import (
	"context"
	"moodjournal-service/internal/app/models"
	"time"
)

type CreateTokenPairInput struct {
	SessionID string
	UserID    int64
	// Now is optional; zero means time.Now().
	Now time.Time
}

type VerifyTokenInput struct {
	Token        string
	ExpectedType string
}

type VerifyTokenOutput struct {
	SessionID string
	UserID    int64
	JTI       string
	Type      string
	ExpiresAt time.Time
}

type TokenManager interface {
	CreateTokenPair(ctx context.Context, in *CreateTokenPairInput) (*models.TokenPair, error)
	VerifyToken(ctx context.Context, in *VerifyTokenInput) (*VerifyTokenOutput, error)
}
