package middlewares

import (
	"moodjournal-service/internal/pkg/constvars"
	"moodjournal-service/internal/pkg/exceptions"
	"moodjournal-service/internal/pkg/utils"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// accessTokenFromRequest prefers the HttpOnly cookie and falls back to a
// bearer header for non-browser callers.
func accessTokenFromRequest(r *http.Request) string {
	if token := utils.CookieValue(r, constvars.CookieAccessToken); token != "" {
		return token
	}
	header := r.Header.Get(constvars.HeaderAuthorization)
	if strings.HasPrefix(header, constvars.BearerPrefix) {
		return strings.TrimSpace(strings.TrimPrefix(header, constvars.BearerPrefix))
	}
	return ""
}

func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := utils.SessionFromContext(r.Context()); ok {
			next.ServeHTTP(w, r)
			return
		}

		token := accessTokenFromRequest(r)
		if token == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		session, err := m.AuthUsecase.Authenticate(r.Context(), token)
		if err != nil {
			m.Log.Info("Middlewares.Authenticate rejected request",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
				zap.String(constvars.LoggingEndpointKey, r.URL.Path),
				zap.Error(err),
			)
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.ContextWithSession(r.Context(), session)))
	})
}
