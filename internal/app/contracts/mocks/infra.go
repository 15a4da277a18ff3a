// Package mocks holds testify mocks for the contracts interfaces.
package mocks

import (
	"context"
	"moodjournal-service/internal/app/contracts"
	"moodjournal-service/internal/app/models"
	"time"

	"github.com/stretchr/testify/mock"
)

type RedisRepository struct{ mock.Mock }

func (m *RedisRepository) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *RedisRepository) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *RedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	return m.Called(ctx, key, value, exp).Error(0)
}

func (m *RedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

// GetInto fills dest through a .Run hook on the expectation when needed.
func (m *RedisRepository) GetInto(ctx context.Context, key string, dest interface{}) (bool, error) {
	args := m.Called(ctx, key, dest)
	return args.Bool(0), args.Error(1)
}

func (m *RedisRepository) GetDelete(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *RedisRepository) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *RedisRepository) Increment(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *RedisRepository) IncrementWithTTL(ctx context.Context, key string, ttl time.Duration) (int, error) {
	args := m.Called(ctx, key, ttl)
	return args.Int(0), args.Error(1)
}

func (m *RedisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	args := m.Called(ctx, key, value, exp)
	return args.Bool(0), args.Error(1)
}

func (m *RedisRepository) DeleteIfEquals(ctx context.Context, key string, value interface{}) (bool, error) {
	args := m.Called(ctx, key, value)
	return args.Bool(0), args.Error(1)
}

func (m *RedisRepository) AddSetMember(ctx context.Context, key, member string, exp time.Duration) error {
	return m.Called(ctx, key, member, exp).Error(0)
}

func (m *RedisRepository) RemoveSetMember(ctx context.Context, key, member string) error {
	return m.Called(ctx, key, member).Error(0)
}

func (m *RedisRepository) SetMembers(ctx context.Context, key string) ([]string, error) {
	args := m.Called(ctx, key)
	members, _ := args.Get(0).([]string)
	return members, args.Error(1)
}

type LockerService struct{ mock.Mock }

func (m *LockerService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	args := m.Called(ctx, key, expiration)
	return args.Bool(0), args.String(1), args.Error(2)
}

func (m *LockerService) Unlock(ctx context.Context, key, lockValue string) error {
	return m.Called(ctx, key, lockValue).Error(0)
}

type ResourceLimiter struct{ mock.Mock }

func (m *ResourceLimiter) ApplyResourceLimiter(ctx context.Context, in *contracts.ApplyResourceLimiterInput) (*contracts.ApplyResourceLimiterOutput, error) {
	args := m.Called(ctx, in)
	output, _ := args.Get(0).(*contracts.ApplyResourceLimiterOutput)
	return output, args.Error(1)
}

type Storage struct{ mock.Mock }

func (m *Storage) UploadObject(ctx context.Context, bucketName, objectName string, data []byte, contentType string) (string, error) {
	args := m.Called(ctx, bucketName, objectName, data, contentType)
	return args.String(0), args.Error(1)
}

func (m *Storage) GetObjectUrlWithExpiryTime(ctx context.Context, bucketName, objectName string, expiryTime time.Duration) (string, error) {
	args := m.Called(ctx, bucketName, objectName, expiryTime)
	return args.String(0), args.Error(1)
}

type MailerService struct{ mock.Mock }

func (m *MailerService) SendEmail(ctx context.Context, payload *models.EmailPayload) error {
	return m.Called(ctx, payload).Error(0)
}

type TokenManager struct{ mock.Mock }

func (m *TokenManager) CreateTokenPair(ctx context.Context, in *contracts.CreateTokenPairInput) (*models.TokenPair, error) {
	args := m.Called(ctx, in)
	pair, _ := args.Get(0).(*models.TokenPair)
	return pair, args.Error(1)
}

func (m *TokenManager) VerifyToken(ctx context.Context, in *contracts.VerifyTokenInput) (*contracts.VerifyTokenOutput, error) {
	args := m.Called(ctx, in)
	output, _ := args.Get(0).(*contracts.VerifyTokenOutput)
	return output, args.Error(1)
}

type SessionService struct{ mock.Mock }

func (m *SessionService) CreateSession(ctx context.Context, user *models.User, ttl time.Duration) (*models.Session, error) {
	args := m.Called(ctx, user, ttl)
	session, _ := args.Get(0).(*models.Session)
	return session, args.Error(1)
}

func (m *SessionService) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	args := m.Called(ctx, sessionID)
	session, _ := args.Get(0).(*models.Session)
	return session, args.Error(1)
}

func (m *SessionService) DeleteSession(ctx context.Context, sessionID string) error {
	return m.Called(ctx, sessionID).Error(0)
}

func (m *SessionService) DeleteUserSessions(ctx context.Context, userID int64) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *SessionService) StoreRefreshToken(ctx context.Context, jti, sessionID string, ttl time.Duration) error {
	return m.Called(ctx, jti, sessionID, ttl).Error(0)
}

func (m *SessionService) ConsumeRefreshToken(ctx context.Context, jti string) (string, error) {
	args := m.Called(ctx, jti)
	return args.String(0), args.Error(1)
}

func (m *SessionService) IssueAnonymousCSRFToken(ctx context.Context, ttl time.Duration) (string, error) {
	args := m.Called(ctx, ttl)
	return args.String(0), args.Error(1)
}

func (m *SessionService) IsAnonymousCSRFTokenValid(ctx context.Context, token string) (bool, error) {
	args := m.Called(ctx, token)
	return args.Bool(0), args.Error(1)
}

type PromptGenerator struct{ mock.Mock }

func (m *PromptGenerator) Enabled() bool {
	return m.Called().Bool(0)
}

func (m *PromptGenerator) Generate(ctx context.Context, instruction string) (string, error) {
	args := m.Called(ctx, instruction)
	return args.String(0), args.Error(1)
}

type OAuthProvider struct{ mock.Mock }

func (m *OAuthProvider) AuthCodeURL(state string) string {
	return m.Called(state).String(0)
}

func (m *OAuthProvider) FetchUserInfo(ctx context.Context, code string) (*models.GoogleUserInfo, error) {
	args := m.Called(ctx, code)
	info, _ := args.Get(0).(*models.GoogleUserInfo)
	return info, args.Error(1)
}

type Pinger struct{ mock.Mock }

func (m *Pinger) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
