package controllers

import (
	"context"
	"moodjournal-service/internal/app/config"
	"moodjournal-service/internal/app/contracts"
	"moodjournal-service/internal/pkg/constvars"
	"moodjournal-service/internal/pkg/exceptions"
	"moodjournal-service/internal/pkg/utils"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"go.uber.org/zap"
)

const (
	oauthErrorInvalidState = "invalid_state"
	oauthErrorAccessDenied = "access_denied"
	oauthErrorFailed       = "oauth_failed"
)

type OAuthController struct {
	Log            *zap.Logger
	OAuthUsecase   contracts.OAuthUsecase
	InternalConfig *config.InternalConfig
}

var (
	oauthControllerInstance *OAuthController
	onceOAuthController     sync.Once
)

func NewOAuthController(logger *zap.Logger, oauthUsecase contracts.OAuthUsecase, internalConfig *config.InternalConfig) *OAuthController {
	onceOAuthController.Do(func() {
		oauthControllerInstance = &OAuthController{
			Log:            logger,
			OAuthUsecase:   oauthUsecase,
			InternalConfig: internalConfig,
		}
	})
	return oauthControllerInstance
}

func (ctrl *OAuthController) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("OAuthController.GoogleLogin called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	consentURL, err := ctrl.OAuthUsecase.BeginGoogleLogin(ctx)
	if err != nil {
		ctrl.Log.Error("OAuthController.GoogleLogin error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	http.Redirect(w, r, consentURL, constvars.StatusFound)
}

// Authorize finishes the Google flow. It always answers with a redirect to
// the frontend callback, carrying ?error=<code> when the login failed.
func (ctrl *OAuthController) Authorize(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("OAuthController.Authorize called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	query := r.URL.Query()
	if providerError := query.Get(constvars.URLQueryParamError); providerError != "" {
		ctrl.Log.Info("OAuthController.Authorize provider returned error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String("provider_error", providerError),
		)
		ctrl.redirectToFrontend(w, r, oauthErrorAccessDenied)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.OAuthUsecase.CompleteGoogleLogin(ctx, query.Get(constvars.URLQueryParamState), query.Get(constvars.URLQueryParamCode))
	if err != nil {
		ctrl.Log.Error("OAuthController.Authorize error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		code := oauthErrorFailed
		if exceptions.StatusCodeOf(err) == constvars.StatusBadRequest {
			code = oauthErrorInvalidState
		}
		ctrl.redirectToFrontend(w, r, code)
		return
	}

	utils.SetAuthCookies(w, cookieOptions(ctrl.InternalConfig),
		result.TokenPair.AccessToken, result.TokenPair.AccessExpiresAt,
		result.TokenPair.RefreshToken, result.TokenPair.RefreshExpiresAt,
		result.Session.CSRFToken,
	)
	ctrl.Log.Info("OAuthController.Authorize succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingUserIDKey, result.User.ID),
	)
	ctrl.redirectToFrontend(w, r, "")
}

func (ctrl *OAuthController) redirectToFrontend(w http.ResponseWriter, r *http.Request, errorCode string) {
	target := strings.TrimRight(ctrl.InternalConfig.App.FrontendURL, "/") + ctrl.InternalConfig.OAuth.FrontendCallback
	if errorCode != "" {
		target += "?" + url.Values{constvars.URLQueryParamError: {errorCode}}.Encode()
	}
	http.Redirect(w, r, target, constvars.StatusFound)
}
