package oauth

import (
	"context"
	"moodjournal-service/internal/app/config"
	"moodjournal-service/internal/app/contracts"
	"moodjournal-service/internal/app/models"
	"moodjournal-service/internal/pkg/constvars"
	"moodjournal-service/internal/pkg/dto/responses"
	"moodjournal-service/internal/pkg/exceptions"
	"moodjournal-service/internal/pkg/utils"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const sequentialUsernameAttempts = 10

type oauthUsecase struct {
	StateRepository contracts.OAuthStateRepository
	Provider        contracts.OAuthProvider
	UserRepository  contracts.UserRepository
	AuthUsecase     contracts.AuthUsecase
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger
}

var (
	oauthUsecaseInstance contracts.OAuthUsecase
	onceOAuthUsecase     sync.Once
)

func NewOAuthUsecase(
	stateRepository contracts.OAuthStateRepository,
	provider contracts.OAuthProvider,
	userRepository contracts.UserRepository,
	authUsecase contracts.AuthUsecase,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.OAuthUsecase {
	onceOAuthUsecase.Do(func() {
		oauthUsecaseInstance = &oauthUsecase{
			StateRepository: stateRepository,
			Provider:        provider,
			UserRepository:  userRepository,
			AuthUsecase:     authUsecase,
			InternalConfig:  internalConfig,
			Log:             logger,
		}
	})
	return oauthUsecaseInstance
}

// BeginGoogleLogin stores a fresh state and returns the consent URL.
func (uc *oauthUsecase) BeginGoogleLogin(ctx context.Context) (string, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("oauthUsecase.BeginGoogleLogin called", zap.String(constvars.LoggingRequestIDKey, requestID))

	now := time.Now()
	if deleted, err := uc.StateRepository.DeleteExpired(ctx, now); err != nil {
		uc.Log.Warn("oauthUsecase.BeginGoogleLogin error pruning states",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	} else if deleted > 0 {
		uc.Log.Debug("oauthUsecase.BeginGoogleLogin pruned states",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingCountKey, deleted),
		)
	}

	state, err := utils.GenerateRandomToken(constvars.OAuthStateBytes)
	if err != nil {
		return "", exceptions.ErrGenerateRandomToken(err)
	}
	if err := uc.StateRepository.CreateState(ctx, state, now.Add(uc.InternalConfig.OAuthStateTTL())); err != nil {
		return "", err
	}
	return uc.Provider.AuthCodeURL(state), nil
}

func (uc *oauthUsecase) CompleteGoogleLogin(ctx context.Context, state, code string) (*responses.AuthResult, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("oauthUsecase.CompleteGoogleLogin called", zap.String(constvars.LoggingRequestIDKey, requestID))

	if state == "" {
		return nil, exceptions.ErrOAuthStateInvalid(nil)
	}
	valid, err := uc.StateRepository.ConsumeState(ctx, state, time.Now())
	if err != nil {
		return nil, err
	}
	if !valid {
		return nil, exceptions.ErrOAuthStateInvalid(nil)
	}

	info, err := uc.Provider.FetchUserInfo(ctx, code)
	if err != nil {
		uc.Log.Error("oauthUsecase.CompleteGoogleLogin error fetching userinfo",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	user, err := uc.findOrCreateUser(ctx, info)
	if err != nil {
		return nil, err
	}

	result, err := uc.AuthUsecase.StartSession(ctx, user)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("oauthUsecase.CompleteGoogleLogin succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingUserIDKey, user.ID),
	)
	return result, nil
}

// findOrCreateUser matches by google sub first, then links an existing
// account with the same email, and otherwise registers a passwordless user.
// An email Google has not verified is never matched or registered.
func (uc *oauthUsecase) findOrCreateUser(ctx context.Context, info *models.GoogleUserInfo) (*models.User, error) {
	user, err := uc.UserRepository.FindByGoogleSub(ctx, info.Sub)
	if err != nil || user != nil {
		return user, err
	}

	if !info.EmailVerified {
		uc.Log.Warn("oauthUsecase.findOrCreateUser google email not verified",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		)
		return nil, exceptions.ErrOAuthEmailUnverified(nil)
	}

	user, err = uc.UserRepository.FindByEmail(ctx, info.Email)
	if err != nil {
		return nil, err
	}
	if user != nil {
		if err := uc.UserRepository.LinkGoogleSub(ctx, user.ID, info.Sub); err != nil {
			return nil, err
		}
		user.GoogleSub = &info.Sub
		return user, nil
	}

	username, err := uc.uniqueUsername(ctx, info.Email)
	if err != nil {
		return nil, err
	}
	googleSub := info.Sub
	return uc.UserRepository.CreateUser(ctx, &models.User{
		Username:  username,
		Email:     info.Email,
		GoogleSub: &googleSub,
	})
}

func (uc *oauthUsecase) uniqueUsername(ctx context.Context, email string) (string, error) {
	base := utils.GenerateUsernameBase(email)
	if utils.ContainsBlockedWord(base) {
		base = "user"
	}

	for attempt := 0; attempt < sequentialUsernameAttempts; attempt++ {
		candidate := utils.GenerateUsernameCandidate(base, attempt)
		existing, err := uc.UserRepository.FindByUsername(ctx, candidate)
		if err != nil {
			return "", err
		}
		if existing == nil {
			return candidate, nil
		}
	}

	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:4]
	return base + suffix, nil
}
