package controllers

import (
	"context"
	"errors"
	"moodjournal-service/internal/app/config"
	"moodjournal-service/internal/app/models"
	"moodjournal-service/internal/pkg/constvars"
	"moodjournal-service/internal/pkg/exceptions"
	"moodjournal-service/internal/pkg/utils"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const requestTimeout = 10 * time.Second

func cookieOptions(internalConfig *config.InternalConfig) utils.CookieOptions {
	return utils.CookieOptions{
		Secure:      internalConfig.App.CookieSecure,
		Domain:      internalConfig.App.CookieDomain,
		RefreshPath: internalConfig.JWT.RefreshCookiePathName,
	}
}

// requireSession reads the session stored by the Authenticate middleware and
// writes a 401 when it is absent.
func requireSession(log *zap.Logger, w http.ResponseWriter, r *http.Request, caller string) (*models.Session, bool) {
	session, ok := utils.SessionFromContext(r.Context())
	if !ok {
		log.Error(caller+" session not found in context",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
		)
		utils.BuildErrorResponse(log, w, exceptions.ErrMissingSession(nil))
		return nil, false
	}
	return session, true
}

func buildUsecaseErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(log, w, err)
}
