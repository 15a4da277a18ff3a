package jwtmanager

import (
	"context"
	"errors"
	"fmt"
	"moodjournal-service/internal/app/config"
	"moodjournal-service/internal/app/contracts"
	"moodjournal-service/internal/app/models"
	"moodjournal-service/internal/pkg/constvars"
	"moodjournal-service/internal/pkg/exceptions"
	"moodjournal-service/internal/pkg/utils"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// sessionClaims is the payload of both access and refresh tokens. Refresh
// tokens also carry a jti that is registered in Redis on issue.
type sessionClaims struct {
	SessionID string `json:"session_id"`
	Type      string `json:"type"`
	jwt.RegisteredClaims
}

// JWTManager signs and verifies HS256 session tokens.
type JWTManager struct {
	log        *zap.Logger
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewJWTManager(cfg *config.InternalConfig, log *zap.Logger) (contracts.TokenManager, error) {
	secret := strings.TrimSpace(cfg.JWT.Secret)
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is empty")
	}
	return &JWTManager{
		log:        log,
		secret:     []byte(secret),
		accessTTL:  cfg.AccessTTL(),
		refreshTTL: cfg.RefreshTTL(),
	}, nil
}

func (j *JWTManager) CreateTokenPair(ctx context.Context, in *contracts.CreateTokenPairInput) (*models.TokenPair, error) {
	requestID := utils.GetRequestID(ctx)
	j.log.Info("JWTManager.CreateTokenPair called", zap.String(constvars.LoggingRequestIDKey, requestID))

	if in == nil || strings.TrimSpace(in.SessionID) == "" || in.UserID <= 0 {
		return nil, exceptions.ErrTokenGenerate(fmt.Errorf("session id and user id are required"))
	}

	now := in.Now
	if now.IsZero() {
		now = time.Now()
	}
	subject := strconv.FormatInt(in.UserID, 10)

	accessExpiresAt := now.Add(j.accessTTL)
	accessToken, err := j.sign(sessionClaims{
		SessionID: in.SessionID,
		Type:      constvars.TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(accessExpiresAt),
		},
	})
	if err != nil {
		return nil, exceptions.ErrTokenGenerate(err)
	}

	jti := uuid.NewString()
	refreshExpiresAt := now.Add(j.refreshTTL)
	refreshToken, err := j.sign(sessionClaims{
		SessionID: in.SessionID,
		Type:      constvars.TokenTypeRefresh,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(refreshExpiresAt),
		},
	})
	if err != nil {
		return nil, exceptions.ErrTokenGenerate(err)
	}

	return &models.TokenPair{
		AccessToken:      accessToken,
		AccessExpiresAt:  accessExpiresAt,
		RefreshToken:     refreshToken,
		RefreshExpiresAt: refreshExpiresAt,
		RefreshJTI:       jti,
	}, nil
}

func (j *JWTManager) VerifyToken(ctx context.Context, in *contracts.VerifyTokenInput) (*contracts.VerifyTokenOutput, error) {
	requestID := utils.GetRequestID(ctx)
	j.log.Debug("JWTManager.VerifyToken called", zap.String(constvars.LoggingRequestIDKey, requestID))

	if in == nil || strings.TrimSpace(in.Token) == "" {
		return nil, exceptions.ErrTokenMissing(nil)
	}

	claims := new(sessionClaims)
	_, err := jwt.ParseWithClaims(in.Token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return j.secret, nil
	})
	if err != nil {
		return nil, exceptions.ErrTokenInvalidOrExpired(err)
	}

	if in.ExpectedType != "" && claims.Type != in.ExpectedType {
		return nil, exceptions.ErrTokenWrongType(fmt.Errorf("got %q want %q", claims.Type, in.ExpectedType))
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return nil, exceptions.ErrTokenInvalidOrExpired(err)
	}
	if claims.SessionID == "" {
		return nil, exceptions.ErrTokenInvalidOrExpired(errors.New("token has no session id"))
	}

	output := &contracts.VerifyTokenOutput{
		SessionID: claims.SessionID,
		UserID:    userID,
		JTI:       claims.ID,
		Type:      claims.Type,
	}
	if claims.ExpiresAt != nil {
		output.ExpiresAt = claims.ExpiresAt.Time
	}
	return output, nil
}

func (j *JWTManager) sign(claims sessionClaims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secret)
}
