package controllers

import (
	"context"
	"moodjournal-service/internal/app/config"
	"moodjournal-service/internal/app/contracts"
	"moodjournal-service/internal/pkg/constvars"
	"moodjournal-service/internal/pkg/dto/requests"
	"moodjournal-service/internal/pkg/dto/responses"
	"moodjournal-service/internal/pkg/exceptions"
	"moodjournal-service/internal/pkg/utils"
	"net/http"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type AuthController struct {
	Log            *zap.Logger
	AuthUsecase    contracts.AuthUsecase
	InternalConfig *config.InternalConfig
}

var (
	authControllerInstance *AuthController
	onceAuthController     sync.Once
)

func NewAuthController(logger *zap.Logger, authUsecase contracts.AuthUsecase, internalConfig *config.InternalConfig) *AuthController {
	onceAuthController.Do(func() {
		authControllerInstance = &AuthController{
			Log:            logger,
			AuthUsecase:    authUsecase,
			InternalConfig: internalConfig,
		}
	})
	return authControllerInstance
}

// CSRFToken hands out a token for the double-submit check. A caller with a
// live session gets its session token back so the cookie and the session
// agree again; everyone else gets a fresh anonymous token.
func (ctrl *AuthController) CSRFToken(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("AuthController.CSRFToken called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	if accessToken := utils.CookieValue(r, constvars.CookieAccessToken); accessToken != "" {
		if session, err := ctrl.AuthUsecase.Authenticate(ctx, accessToken); err == nil {
			utils.SetCSRFCookie(w, cookieOptions(ctrl.InternalConfig), session.CSRFToken, session.ExpiresAt)
			utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CSRFTokenIssuedSuccess, &responses.CSRFToken{CSRFToken: session.CSRFToken})
			return
		}
	}

	token, err := ctrl.AuthUsecase.IssueCSRFToken(ctx)
	if err != nil {
		ctrl.Log.Error("AuthController.CSRFToken error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.SetCSRFCookie(w, cookieOptions(ctrl.InternalConfig), token.CSRFToken, time.Now().Add(ctrl.InternalConfig.AnonymousCSRFTTL()))
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CSRFTokenIssuedSuccess, token)
}

func (ctrl *AuthController) Signup(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("AuthController.Signup called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	// Bind body to request
	request := new(requests.Signup)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("AuthController.Signup error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	utils.SanitizeSignupRequest(request)

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.AuthUsecase.Signup(ctx, request)
	if err != nil {
		ctrl.Log.Error("AuthController.Signup error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.setAuthCookies(w, result)
	ctrl.Log.Info("AuthController.Signup succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingUserIDKey, result.User.ID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.SignupSuccess, &responses.AuthUser{User: result.User})
}

func (ctrl *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("AuthController.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	// Bind body to request
	request := new(requests.Login)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	utils.SanitizeLoginRequest(request)

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.AuthUsecase.Login(ctx, request)
	if err != nil {
		ctrl.Log.Info("AuthController.Login rejected",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.setAuthCookies(w, result)
	ctrl.Log.Info("AuthController.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingUserIDKey, result.User.ID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LoginSuccess, &responses.AuthUser{User: result.User})
}

func (ctrl *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("AuthController.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, ok := requireSession(ctrl.Log, w, r, "AuthController.Logout")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	err := ctrl.AuthUsecase.Logout(ctx, &requests.Logout{
		SessionID:    session.SessionID,
		UserID:       session.UserID,
		RefreshToken: utils.CookieValue(r, constvars.CookieRefreshToken),
	})
	if err != nil {
		ctrl.Log.Error("AuthController.Logout error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.UnsetAuthCookies(w, cookieOptions(ctrl.InternalConfig))
	ctrl.Log.Info("AuthController.Logout succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, session.SessionID),
	)
	utils.BuildNoContentResponse(w)
}

// RefreshToken rotates the token pair. Any failure clears the cookies so the
// client drops to the anonymous state.
func (ctrl *AuthController) RefreshToken(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("AuthController.RefreshToken called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	refreshToken := utils.CookieValue(r, constvars.CookieRefreshToken)
	if refreshToken == "" {
		utils.UnsetAuthCookies(w, cookieOptions(ctrl.InternalConfig))
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrTokenMissing(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.AuthUsecase.Refresh(ctx, &requests.RefreshToken{RefreshToken: refreshToken})
	if err != nil {
		ctrl.Log.Info("AuthController.RefreshToken rejected",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.UnsetAuthCookies(w, cookieOptions(ctrl.InternalConfig))
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.setAuthCookies(w, result)
	ctrl.Log.Info("AuthController.RefreshToken succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, result.Session.SessionID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RefreshTokenSuccess, &responses.AuthUser{User: result.User})
}

func (ctrl *AuthController) setAuthCookies(w http.ResponseWriter, result *responses.AuthResult) {
	utils.SetAuthCookies(w, cookieOptions(ctrl.InternalConfig),
		result.TokenPair.AccessToken, result.TokenPair.AccessExpiresAt,
		result.TokenPair.RefreshToken, result.TokenPair.RefreshExpiresAt,
		result.Session.CSRFToken,
	)
}
