package middlewares

import (
	"moodjournal-service/internal/pkg/constvars"
	"moodjournal-service/internal/pkg/exceptions"
	"moodjournal-service/internal/pkg/utils"
	"net/http"
	"path"

	"go.uber.org/zap"
)

var csrfSafeMethods = map[string]bool{
	constvars.MethodGet:     true,
	constvars.MethodHead:    true,
	constvars.MethodOptions: true,
	constvars.MethodTrace:   true,
}

// CSRFProtect enforces the double-submit check on unsafe methods. The
// X-CSRF-TOKEN header must equal the csrf cookie, and the token must either
// belong to the caller's session or be a live anonymous token.
func (m *Middlewares) CSRFProtect(next http.Handler) http.Handler {
	exempt := map[string]bool{
		path.Join(m.InternalConfig.App.EndpointPrefix, constvars.RoutePathRefreshToken): true,
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if csrfSafeMethods[r.Method] || exempt[path.Clean(r.URL.Path)] {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		requestID := utils.GetRequestID(ctx)

		headerToken := r.Header.Get(constvars.HeaderXCSRFToken)
		cookieToken := utils.CookieValue(r, constvars.CookieCSRFToken)
		if headerToken == "" || cookieToken == "" {
			m.Log.Info("Middlewares.CSRFProtect token missing",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingEndpointKey, r.URL.Path),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrCSRFTokenMissing(nil))
			return
		}
		if !utils.SecureCompare(headerToken, cookieToken) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrCSRFTokenMismatch(nil))
			return
		}

		if accessToken := accessTokenFromRequest(r); accessToken != "" {
			session, err := m.AuthUsecase.Authenticate(ctx, accessToken)
			if err == nil {
				if !utils.SecureCompare(session.CSRFToken, headerToken) {
					m.Log.Info("Middlewares.CSRFProtect session token mismatch",
						zap.String(constvars.LoggingRequestIDKey, requestID),
						zap.String(constvars.LoggingSessionIDKey, session.SessionID),
					)
					utils.BuildErrorResponse(m.Log, w, exceptions.ErrCSRFTokenMismatch(nil))
					return
				}
				next.ServeHTTP(w, r.WithContext(utils.ContextWithSession(ctx, session)))
				return
			}
		}

		valid, err := m.AuthUsecase.IsAnonymousCSRFTokenValid(ctx, headerToken)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}
		if !valid {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrCSRFTokenUnknown(nil))
			return
		}
		next.ServeHTTP(w, r)
	})
}
