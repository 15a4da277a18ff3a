package auth

import (
	"context"
	"fmt"
	"moodjournal-service/internal/app/config"
	"moodjournal-service/internal/app/contracts"
	"moodjournal-service/internal/app/models"
	"moodjournal-service/internal/pkg/constvars"
	"moodjournal-service/internal/pkg/dto/requests"
	"moodjournal-service/internal/pkg/dto/responses"
	"moodjournal-service/internal/pkg/exceptions"
	"moodjournal-service/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
)

type authUsecase struct {
	UserRepository contracts.UserRepository
	SessionService contracts.SessionService
	TokenManager   contracts.TokenManager
	MailerService  contracts.MailerService
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

var (
	authUsecaseInstance contracts.AuthUsecase
	onceAuthUsecase     sync.Once
)

func NewAuthUsecase(
	userRepository contracts.UserRepository,
	sessionService contracts.SessionService,
	tokenManager contracts.TokenManager,
	mailerService contracts.MailerService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	onceAuthUsecase.Do(func() {
		authUsecaseInstance = newAuthUsecase(userRepository, sessionService, tokenManager, mailerService, internalConfig, logger)
	})
	return authUsecaseInstance
}

func newAuthUsecase(
	userRepository contracts.UserRepository,
	sessionService contracts.SessionService,
	tokenManager contracts.TokenManager,
	mailerService contracts.MailerService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) *authUsecase {
	return &authUsecase{
		UserRepository: userRepository,
		SessionService: sessionService,
		TokenManager:   tokenManager,
		MailerService:  mailerService,
		InternalConfig: internalConfig,
		Log:            logger,
	}
}

func (uc *authUsecase) IssueCSRFToken(ctx context.Context) (*responses.CSRFToken, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.IssueCSRFToken called", zap.String(constvars.LoggingRequestIDKey, requestID))

	token, err := uc.SessionService.IssueAnonymousCSRFToken(ctx, uc.InternalConfig.AnonymousCSRFTTL())
	if err != nil {
		uc.Log.Error("authUsecase.IssueCSRFToken error issuing token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	return &responses.CSRFToken{CSRFToken: token}, nil
}

func (uc *authUsecase) Signup(ctx context.Context, request *requests.Signup) (*responses.AuthResult, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.Signup called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUsernameKey, request.Username),
	)

	existing, err := uc.UserRepository.FindByUsername(ctx, request.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrUsernameAlreadyExist(nil)
	}

	existing, err = uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrEmailAlreadyExist(nil)
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	user, err := uc.UserRepository.CreateUser(ctx, &models.User{
		Username:     request.Username,
		Email:        request.Email,
		PasswordHash: &hashedPassword,
	})
	if err != nil {
		uc.Log.Error("authUsecase.Signup error creating user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	result, err := uc.StartSession(ctx, user)
	if err != nil {
		return nil, err
	}

	uc.sendEmail(ctx, &models.EmailPayload{
		To:      user.Email,
		Subject: constvars.EmailSubjectWelcome,
		Body:    fmt.Sprintf(constvars.EmailBodyWelcomeFormat, user.Username),
	})

	uc.Log.Info("authUsecase.Signup succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingUserIDKey, user.ID),
	)
	return result, nil
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (*responses.AuthResult, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUsernameKey, request.Username),
	)

	user, err := uc.UserRepository.FindByUsername(ctx, request.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotExist(nil)
	}
	if !user.HasPassword() {
		return nil, exceptions.ErrPasswordlessAccount(nil)
	}
	if !utils.CheckPasswordHash(request.Password, *user.PasswordHash) {
		uc.Log.Info("authUsecase.Login incorrect password",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingUserIDKey, user.ID),
		)
		return nil, exceptions.ErrIncorrectPassword(nil)
	}

	result, err := uc.StartSession(ctx, user)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("authUsecase.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingUserIDKey, user.ID),
	)
	return result, nil
}

func (uc *authUsecase) Logout(ctx context.Context, request *requests.Logout) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, request.SessionID),
	)

	if request.RefreshToken != "" {
		claims, err := uc.TokenManager.VerifyToken(ctx, &contracts.VerifyTokenInput{
			Token:        request.RefreshToken,
			ExpectedType: constvars.TokenTypeRefresh,
		})
		if err == nil && claims.JTI != "" {
			if _, err := uc.SessionService.ConsumeRefreshToken(ctx, claims.JTI); err != nil {
				uc.Log.Warn("authUsecase.Logout error revoking refresh token",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.Error(err),
				)
			}
		}
	}

	if request.SessionID == "" {
		return nil
	}
	if err := uc.SessionService.DeleteSession(ctx, request.SessionID); err != nil {
		uc.Log.Error("authUsecase.Logout error deleting session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	uc.Log.Info("authUsecase.Logout succeeded", zap.String(constvars.LoggingRequestIDKey, requestID))
	return nil
}

// Refresh rotates the refresh token. Every refresh token is single use, a
// second presentation is rejected. The session keeps its CSRF token and its
// absolute expiry.
func (uc *authUsecase) Refresh(ctx context.Context, request *requests.RefreshToken) (*responses.AuthResult, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.Refresh called", zap.String(constvars.LoggingRequestIDKey, requestID))

	claims, err := uc.TokenManager.VerifyToken(ctx, &contracts.VerifyTokenInput{
		Token:        request.RefreshToken,
		ExpectedType: constvars.TokenTypeRefresh,
	})
	if err != nil {
		return nil, err
	}

	sessionID, err := uc.SessionService.ConsumeRefreshToken(ctx, claims.JTI)
	if err != nil {
		return nil, err
	}
	if sessionID == "" || sessionID != claims.SessionID {
		uc.Log.Warn("authUsecase.Refresh refresh token reuse detected",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, claims.SessionID),
		)
		return nil, exceptions.ErrRefreshTokenReused(nil)
	}

	session, err := uc.SessionService.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	user, err := uc.UserRepository.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrSessionNotFound(nil)
	}

	tokenPair, err := uc.issueTokens(ctx, session)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("authUsecase.Refresh succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, session.SessionID),
	)
	return &responses.AuthResult{
		User:      utils.MapUserToProfileResponse(user),
		Session:   session,
		TokenPair: tokenPair,
	}, nil
}

func (uc *authUsecase) Authenticate(ctx context.Context, accessToken string) (*models.Session, error) {
	claims, err := uc.TokenManager.VerifyToken(ctx, &contracts.VerifyTokenInput{
		Token:        accessToken,
		ExpectedType: constvars.TokenTypeAccess,
	})
	if err != nil {
		return nil, err
	}

	session, err := uc.SessionService.GetSession(ctx, claims.SessionID)
	if err != nil {
		return nil, err
	}
	if session.UserID != claims.UserID {
		return nil, exceptions.ErrTokenInvalidOrExpired(fmt.Errorf("session %s does not belong to token subject", session.SessionID))
	}
	return session, nil
}

func (uc *authUsecase) IsAnonymousCSRFTokenValid(ctx context.Context, token string) (bool, error) {
	return uc.SessionService.IsAnonymousCSRFTokenValid(ctx, token)
}

func (uc *authUsecase) StartSession(ctx context.Context, user *models.User) (*responses.AuthResult, error) {
	session, err := uc.SessionService.CreateSession(ctx, user, uc.InternalConfig.RefreshTTL())
	if err != nil {
		return nil, err
	}

	tokenPair, err := uc.issueTokens(ctx, session)
	if err != nil {
		return nil, err
	}

	return &responses.AuthResult{
		User:      utils.MapUserToProfileResponse(user),
		Session:   session,
		TokenPair: tokenPair,
	}, nil
}

func (uc *authUsecase) issueTokens(ctx context.Context, session *models.Session) (*models.TokenPair, error) {
	now := time.Now()
	tokenPair, err := uc.TokenManager.CreateTokenPair(ctx, &contracts.CreateTokenPairInput{
		SessionID: session.SessionID,
		UserID:    session.UserID,
		Now:       now,
	})
	if err != nil {
		return nil, err
	}

	// refresh tokens never outlive their session
	if !session.ExpiresAt.IsZero() && tokenPair.RefreshExpiresAt.After(session.ExpiresAt) {
		tokenPair.RefreshExpiresAt = session.ExpiresAt
	}
	ttl := tokenPair.RefreshExpiresAt.Sub(now)
	if ttl <= 0 {
		return nil, exceptions.ErrSessionNotFound(nil)
	}

	if err := uc.SessionService.StoreRefreshToken(ctx, tokenPair.RefreshJTI, session.SessionID, ttl); err != nil {
		return nil, err
	}
	return tokenPair, nil
}

func (uc *authUsecase) sendEmail(ctx context.Context, payload *models.EmailPayload) {
	if uc.MailerService == nil {
		return
	}
	if err := uc.MailerService.SendEmail(ctx, payload); err != nil {
		uc.Log.Warn("authUsecase.sendEmail failed, continuing",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
	}
}
