package session

import (
	"context"
	"fmt"
	"moodjournal-service/internal/app/contracts"
	"moodjournal-service/internal/app/models"
	"moodjournal-service/internal/pkg/constvars"
	"moodjournal-service/internal/pkg/exceptions"
	"moodjournal-service/internal/pkg/utils"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type sessionService struct {
	RedisRepository contracts.RedisRepository
	Log             *zap.Logger
}

var (
	sessionServiceInstance contracts.SessionService
	onceSessionService     sync.Once
)

func NewSessionService(redisRepository contracts.RedisRepository, logger *zap.Logger) contracts.SessionService {
	onceSessionService.Do(func() {
		sessionServiceInstance = newSessionService(redisRepository, logger)
	})
	return sessionServiceInstance
}

func newSessionService(redisRepository contracts.RedisRepository, logger *zap.Logger) *sessionService {
	return &sessionService{
		RedisRepository: redisRepository,
		Log:             logger,
	}
}

func (svc *sessionService) CreateSession(ctx context.Context, user *models.User, ttl time.Duration) (*models.Session, error) {
	requestID := utils.GetRequestID(ctx)
	svc.Log.Info("sessionService.CreateSession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingUserIDKey, user.ID),
	)

	csrfToken, err := utils.GenerateRandomToken(constvars.CSRFTokenBytes)
	if err != nil {
		return nil, exceptions.ErrGenerateRandomToken(err)
	}

	now := time.Now()
	session := &models.Session{
		SessionID: uuid.NewString(),
		UserID:    user.ID,
		Username:  user.Username,
		CSRFToken: csrfToken,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}

	key := fmt.Sprintf(constvars.RedisSessionKeyFormat, session.SessionID)
	if err := svc.RedisRepository.Set(ctx, key, session, ttl); err != nil {
		svc.Log.Error("sessionService.CreateSession error storing session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	indexKey := fmt.Sprintf(constvars.RedisUserSessionsKeyFormat, user.ID)
	if err := svc.RedisRepository.AddSetMember(ctx, indexKey, session.SessionID, ttl); err != nil {
		svc.Log.Error("sessionService.CreateSession error indexing session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		_ = svc.RedisRepository.Delete(ctx, key)
		return nil, err
	}

	svc.Log.Info("sessionService.CreateSession succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, session.SessionID),
	)
	return session, nil
}

func (svc *sessionService) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	key := fmt.Sprintf(constvars.RedisSessionKeyFormat, sessionID)
	session := new(models.Session)
	found, err := svc.RedisRepository.GetInto(ctx, key, session)
	if err != nil {
		svc.Log.Error("sessionService.GetSession error reading session",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingSessionIDKey, sessionID),
			zap.Error(err),
		)
		return nil, err
	}
	if !found || session.IsExpired(time.Now()) {
		return nil, exceptions.ErrSessionNotFound(nil)
	}
	return session, nil
}

func (svc *sessionService) DeleteSession(ctx context.Context, sessionID string) error {
	svc.Log.Info("sessionService.DeleteSession called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)
	key := fmt.Sprintf(constvars.RedisSessionKeyFormat, sessionID)
	session := new(models.Session)
	found, err := svc.RedisRepository.GetInto(ctx, key, session)
	if err != nil {
		return err
	}
	if err := svc.RedisRepository.Delete(ctx, key); err != nil {
		return err
	}
	if !found {
		return nil
	}

	indexKey := fmt.Sprintf(constvars.RedisUserSessionsKeyFormat, session.UserID)
	if err := svc.RedisRepository.RemoveSetMember(ctx, indexKey, sessionID); err != nil {
		svc.Log.Warn("sessionService.DeleteSession error updating session index",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
	}
	return nil
}

func (svc *sessionService) DeleteUserSessions(ctx context.Context, userID int64) (int, error) {
	requestID := utils.GetRequestID(ctx)
	svc.Log.Info("sessionService.DeleteUserSessions called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingUserIDKey, userID),
	)

	indexKey := fmt.Sprintf(constvars.RedisUserSessionsKeyFormat, userID)
	sessionIDs, err := svc.RedisRepository.SetMembers(ctx, indexKey)
	if err != nil {
		return 0, err
	}

	for _, sessionID := range sessionIDs {
		key := fmt.Sprintf(constvars.RedisSessionKeyFormat, sessionID)
		if err := svc.RedisRepository.Delete(ctx, key); err != nil {
			svc.Log.Error("sessionService.DeleteUserSessions error deleting session",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingSessionIDKey, sessionID),
				zap.Error(err),
			)
			return 0, err
		}
	}
	if err := svc.RedisRepository.Delete(ctx, indexKey); err != nil {
		return 0, err
	}

	svc.Log.Info("sessionService.DeleteUserSessions succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingUserIDKey, userID),
		zap.Int(constvars.LoggingCountKey, len(sessionIDs)),
	)
	return len(sessionIDs), nil
}

func (svc *sessionService) StoreRefreshToken(ctx context.Context, jti, sessionID string, ttl time.Duration) error {
	key := fmt.Sprintf(constvars.RedisRefreshKeyFormat, jti)
	return svc.RedisRepository.Set(ctx, key, sessionID, ttl)
}

func (svc *sessionService) ConsumeRefreshToken(ctx context.Context, jti string) (string, error) {
	key := fmt.Sprintf(constvars.RedisRefreshKeyFormat, jti)
	raw, err := svc.RedisRepository.GetDelete(ctx, key)
	if err != nil {
		return "", err
	}
	if raw == "" {
		return "", nil
	}

	var sessionID string
	if err := json.Unmarshal([]byte(raw), &sessionID); err != nil {
		return "", exceptions.ErrCannotParseJSON(err)
	}
	return sessionID, nil
}

func (svc *sessionService) IssueAnonymousCSRFToken(ctx context.Context, ttl time.Duration) (string, error) {
	token, err := utils.GenerateRandomToken(constvars.CSRFTokenBytes)
	if err != nil {
		return "", exceptions.ErrGenerateRandomToken(err)
	}

	key := fmt.Sprintf(constvars.RedisCSRFKeyFormat, token)
	if err := svc.RedisRepository.Set(ctx, key, true, ttl); err != nil {
		svc.Log.Error("sessionService.IssueAnonymousCSRFToken error storing token",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
		return "", err
	}
	return token, nil
}

func (svc *sessionService) IsAnonymousCSRFTokenValid(ctx context.Context, token string) (bool, error) {
	if token == "" {
		return false, nil
	}
	key := fmt.Sprintf(constvars.RedisCSRFKeyFormat, token)
	return svc.RedisRepository.Exists(ctx, key)
}
