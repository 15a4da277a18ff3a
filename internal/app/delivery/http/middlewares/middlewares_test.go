package middlewares

import (
	"errors"
	"fmt"
	"moodjournal-service/internal/app/config"
	"moodjournal-service/internal/app/contracts/mocks"
	"moodjournal-service/internal/app/models"
	"moodjournal-service/internal/pkg/constvars"
	"moodjournal-service/internal/pkg/exceptions"
	"moodjournal-service/internal/pkg/utils"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func newTestMiddlewares() (*Middlewares, *mocks.AuthUsecase) {
	authUsecase := new(mocks.AuthUsecase)
	return NewMiddlewares(zap.NewNop(), authUsecase, &config.InternalConfig{
		App: config.App{EndpointPrefix: "/api"},
	}), authUsecase
}

// sessionEcho records the session the handler saw.
func sessionEcho(seen **models.Session) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if session, ok := utils.SessionFromContext(r.Context()); ok {
			*seen = session
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequestIDMiddleware(t *testing.T) {
	m, _ := newTestMiddlewares()
	var got string
	handler := m.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = utils.GetRequestID(r.Context())
	}))

	t.Run("generated", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest("GET", "/", nil))
		assert.NotEmpty(t, got)
		assert.Equal(t, got, rr.Header().Get(constvars.HeaderXRequestID))
	})

	t.Run("client supplied", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(constvars.HeaderXRequestID, "req-123")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		assert.Equal(t, "req-123", got)
	})
}

func TestErrorHandlerRecoversPanic(t *testing.T) {
	m, _ := newTestMiddlewares()
	handler := m.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest("GET", "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), `"success":false`)
}

func TestAuthenticate(t *testing.T) {
	session := &models.Session{SessionID: "s-1", UserID: 9, CSRFToken: "csrf"}

	t.Run("missing token", func(t *testing.T) {
		m, _ := newTestMiddlewares()
		var seen *models.Session
		rr := httptest.NewRecorder()
		m.Authenticate(sessionEcho(&seen)).ServeHTTP(rr, httptest.NewRequest("GET", "/api/journals", nil))
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Contains(t, rr.Body.String(), constvars.ErrClientNotLoggedIn)
	})

	t.Run("cookie token", func(t *testing.T) {
		m, authUsecase := newTestMiddlewares()
		authUsecase.On("Authenticate", mock.Anything, "access-jwt").Return(session, nil).Once()

		req := httptest.NewRequest("GET", "/api/journals", nil)
		req.AddCookie(&http.Cookie{Name: constvars.CookieAccessToken, Value: "access-jwt"})
		var seen *models.Session
		rr := httptest.NewRecorder()
		m.Authenticate(sessionEcho(&seen)).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, session, seen)
	})

	t.Run("bearer token", func(t *testing.T) {
		m, authUsecase := newTestMiddlewares()
		authUsecase.On("Authenticate", mock.Anything, "bearer-jwt").Return(session, nil).Once()

		req := httptest.NewRequest("GET", "/api/journals", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer bearer-jwt")
		var seen *models.Session
		rr := httptest.NewRecorder()
		m.Authenticate(sessionEcho(&seen)).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		authUsecase.AssertExpectations(t)
	})

	t.Run("invalid token", func(t *testing.T) {
		m, authUsecase := newTestMiddlewares()
		authUsecase.On("Authenticate", mock.Anything, "stale").Return(nil, exceptions.ErrTokenInvalidOrExpired(errors.New("expired"))).Once()

		req := httptest.NewRequest("GET", "/api/journals", nil)
		req.AddCookie(&http.Cookie{Name: constvars.CookieAccessToken, Value: "stale"})
		var seen *models.Session
		rr := httptest.NewRecorder()
		m.Authenticate(sessionEcho(&seen)).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Nil(t, seen)
	})
}

func TestCSRFProtect(t *testing.T) {
	session := &models.Session{SessionID: "s-1", UserID: 9, CSRFToken: "session-csrf"}

	newRequest := func(method, target, header, cookie string) *http.Request {
		req := httptest.NewRequest(method, target, nil)
		if header != "" {
			req.Header.Set(constvars.HeaderXCSRFToken, header)
		}
		if cookie != "" {
			req.AddCookie(&http.Cookie{Name: constvars.CookieCSRFToken, Value: cookie})
		}
		return req
	}

	t.Run("safe method passes", func(t *testing.T) {
		m, authUsecase := newTestMiddlewares()
		var seen *models.Session
		rr := httptest.NewRecorder()
		m.CSRFProtect(sessionEcho(&seen)).ServeHTTP(rr, newRequest("GET", "/api/journals", "", ""))
		assert.Equal(t, http.StatusOK, rr.Code)
		authUsecase.AssertNotCalled(t, "IsAnonymousCSRFTokenValid", mock.Anything, mock.Anything)
	})

	t.Run("refresh token is exempt", func(t *testing.T) {
		m, _ := newTestMiddlewares()
		var seen *models.Session
		rr := httptest.NewRecorder()
		m.CSRFProtect(sessionEcho(&seen)).ServeHTTP(rr, newRequest("POST", "/api/refresh-token", "", ""))
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("missing header", func(t *testing.T) {
		m, _ := newTestMiddlewares()
		var seen *models.Session
		rr := httptest.NewRecorder()
		m.CSRFProtect(sessionEcho(&seen)).ServeHTTP(rr, newRequest("POST", "/api/login", "", "tok"))
		assert.Equal(t, http.StatusForbidden, rr.Code)
		assert.Contains(t, rr.Body.String(), constvars.ErrClientCSRFTokenInvalid)
	})

	t.Run("header and cookie differ", func(t *testing.T) {
		m, _ := newTestMiddlewares()
		var seen *models.Session
		rr := httptest.NewRecorder()
		m.CSRFProtect(sessionEcho(&seen)).ServeHTTP(rr, newRequest("POST", "/api/login", "a", "b"))
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("anonymous token known", func(t *testing.T) {
		m, authUsecase := newTestMiddlewares()
		authUsecase.On("IsAnonymousCSRFTokenValid", mock.Anything, "anon").Return(true, nil).Once()

		var seen *models.Session
		rr := httptest.NewRecorder()
		m.CSRFProtect(sessionEcho(&seen)).ServeHTTP(rr, newRequest("POST", "/api/login", "anon", "anon"))
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Nil(t, seen)
	})

	t.Run("anonymous token unknown", func(t *testing.T) {
		m, authUsecase := newTestMiddlewares()
		authUsecase.On("IsAnonymousCSRFTokenValid", mock.Anything, "forged").Return(false, nil).Once()

		var seen *models.Session
		rr := httptest.NewRecorder()
		m.CSRFProtect(sessionEcho(&seen)).ServeHTTP(rr, newRequest("POST", "/api/signup", "forged", "forged"))
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("session token matches", func(t *testing.T) {
		m, authUsecase := newTestMiddlewares()
		authUsecase.On("Authenticate", mock.Anything, "access-jwt").Return(session, nil).Once()

		req := newRequest("DELETE", "/api/journals/3", "session-csrf", "session-csrf")
		req.AddCookie(&http.Cookie{Name: constvars.CookieAccessToken, Value: "access-jwt"})
		var seen *models.Session
		rr := httptest.NewRecorder()
		m.CSRFProtect(sessionEcho(&seen)).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, session, seen)
		authUsecase.AssertNotCalled(t, "IsAnonymousCSRFTokenValid", mock.Anything, mock.Anything)
	})

	t.Run("session token mismatch", func(t *testing.T) {
		m, authUsecase := newTestMiddlewares()
		authUsecase.On("Authenticate", mock.Anything, "access-jwt").Return(session, nil).Once()

		req := newRequest("PATCH", "/api/entries/3", "other", "other")
		req.AddCookie(&http.Cookie{Name: constvars.CookieAccessToken, Value: "access-jwt"})
		var seen *models.Session
		rr := httptest.NewRecorder()
		m.CSRFProtect(sessionEcho(&seen)).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
		assert.Nil(t, seen)
	})
}

func TestRateLimiter(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(2, time.Minute, 5*time.Minute, zap.NewNop())
	limiter.now = func() time.Time { return now }

	handler := limiter.Limit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	hit := func(remoteAddr string) *httptest.ResponseRecorder {
		req := httptest.NewRequest("POST", "/api/login", nil)
		req.RemoteAddr = remoteAddr
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr
	}

	assert.Equal(t, http.StatusOK, hit("10.0.0.1:5000").Code)
	assert.Equal(t, http.StatusOK, hit("10.0.0.1:5001").Code)

	blocked := hit("10.0.0.1:5002")
	assert.Equal(t, http.StatusTooManyRequests, blocked.Code)
	assert.Equal(t, "300", blocked.Header().Get(constvars.HeaderRetryAfter))

	assert.Equal(t, http.StatusOK, hit("10.0.0.2:5000").Code, "other clients are unaffected")

	now = now.Add(time.Minute)
	assert.Equal(t, http.StatusTooManyRequests, hit("10.0.0.1:5003").Code, "still blocked")

	now = now.Add(5 * time.Minute)
	assert.Equal(t, http.StatusOK, hit("10.0.0.1:5004").Code)
}

func TestRateLimiterEvictsIdleClients(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(2, time.Minute, 5*time.Minute, zap.NewNop())
	limiter.now = func() time.Time { return now }

	handler := limiter.Limit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	hit := func(remoteAddr string) int {
		req := httptest.NewRequest("POST", "/api/login", nil)
		req.RemoteAddr = remoteAddr
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr.Code
	}

	for i := 1; i <= 50; i++ {
		hit(fmt.Sprintf("10.1.0.%d:4000", i))
	}
	hit("10.2.0.1:4000")
	hit("10.2.0.1:4001")
	assert.Equal(t, http.StatusTooManyRequests, hit("10.2.0.1:4002"))
	assert.Len(t, limiter.visitors, 51)

	now = now.Add(2 * time.Minute)
	assert.Equal(t, http.StatusOK, hit("10.3.0.1:4000"))
	assert.Len(t, limiter.visitors, 2, "only the blocked client and the new one remain")
	assert.Contains(t, limiter.blocked, "10.2.0.1")

	now = now.Add(5 * time.Minute)
	assert.Equal(t, http.StatusOK, hit("10.3.0.2:4000"))
	assert.Empty(t, limiter.blocked)
	assert.Len(t, limiter.visitors, 1)
}
