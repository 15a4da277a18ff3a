package routers

import (
	"errors"
	"moodjournal-service/internal/app/models"
	"moodjournal-service/internal/pkg/constvars"
	"moodjournal-service/internal/pkg/dto/requests"
	"moodjournal-service/internal/pkg/dto/responses"
	"moodjournal-service/internal/pkg/exceptions"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func authResult(userID int64) *responses.AuthResult {
	now := time.Now()
	return &responses.AuthResult{
		User:    responses.UserProfile{ID: userID, Username: "jane", Email: "jane@example.com"},
		Session: &models.Session{SessionID: "s-new", UserID: userID, CSRFToken: "fresh-csrf", ExpiresAt: now.Add(24 * time.Hour)},
		TokenPair: &models.TokenPair{
			AccessToken:      "new-access",
			AccessExpiresAt:  now.Add(30 * time.Minute),
			RefreshToken:     "new-refresh",
			RefreshExpiresAt: now.Add(24 * time.Hour),
		},
	}
}

func TestCSRFTokenRoute(t *testing.T) {
	t.Run("anonymous caller", func(t *testing.T) {
		f := newRouterFixture()
		f.auth.On("IssueCSRFToken", mock.Anything).Return(&responses.CSRFToken{CSRFToken: "anon"}, nil).Once()

		rr := f.serve(httptest.NewRequest("GET", "/api/csrf-token", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"csrf_token":"anon"`)
		cookie := cookieByName(rr, constvars.CookieCSRFToken)
		require.NotNil(t, cookie)
		assert.Equal(t, "anon", cookie.Value)
		assert.False(t, cookie.HttpOnly)
	})

	t.Run("caller with session gets session token", func(t *testing.T) {
		f := newRouterFixture()
		f.auth.On("Authenticate", mock.Anything, testAccessToken).Return(testSession, nil).Once()

		req := httptest.NewRequest("GET", "/api/csrf-token", nil)
		req.AddCookie(&http.Cookie{Name: constvars.CookieAccessToken, Value: testAccessToken})
		rr := f.serve(req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), testCSRFToken)
		f.auth.AssertNotCalled(t, "IssueCSRFToken", mock.Anything)
	})
}

func TestSignupRoute(t *testing.T) {
	body := []byte(`{"username":"jane_doe","email":"jane@example.com","password":"s3cret!pass"}`)

	t.Run("created with cookies", func(t *testing.T) {
		f := newRouterFixture()
		f.auth.On("IsAnonymousCSRFTokenValid", mock.Anything, "anon").Return(true, nil).Once()
		f.auth.On("Signup", mock.Anything, mock.MatchedBy(func(r *requests.Signup) bool {
			return r.Username == "jane_doe" && r.Email == "jane@example.com"
		})).Return(authResult(1), nil).Once()

		rr := f.serve(anonymousRequest("POST", "/api/signup", body, "anon"))

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.Contains(t, rr.Body.String(), `"username":"jane"`)
		access := cookieByName(rr, constvars.CookieAccessToken)
		require.NotNil(t, access)
		assert.True(t, access.HttpOnly)
		refresh := cookieByName(rr, constvars.CookieRefreshToken)
		require.NotNil(t, refresh)
		assert.Equal(t, "/api/refresh-token", refresh.Path)
		assert.Equal(t, "fresh-csrf", cookieByName(rr, constvars.CookieCSRFToken).Value)
	})

	t.Run("rejected without csrf", func(t *testing.T) {
		f := newRouterFixture()
		req := httptest.NewRequest("POST", "/api/signup", strings.NewReader(string(body)))

		rr := f.serve(req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
		f.auth.AssertNotCalled(t, "Signup", mock.Anything, mock.Anything)
	})

	t.Run("invalid payload", func(t *testing.T) {
		f := newRouterFixture()
		f.auth.On("IsAnonymousCSRFTokenValid", mock.Anything, "anon").Return(true, nil).Once()

		rr := f.serve(anonymousRequest("POST", "/api/signup", []byte(`{"username":"x","email":"nope","password":"short"}`), "anon"))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		f.auth.AssertNotCalled(t, "Signup", mock.Anything, mock.Anything)
	})
}

func TestLoginRoute(t *testing.T) {
	body := []byte(`{"username":"jane","password":"s3cret!pass"}`)

	t.Run("wrong password", func(t *testing.T) {
		f := newRouterFixture()
		f.auth.On("IsAnonymousCSRFTokenValid", mock.Anything, "anon").Return(true, nil)
		f.auth.On("Login", mock.Anything, mock.Anything).Return(nil, exceptions.ErrIncorrectPassword(nil)).Once()

		rr := f.serve(anonymousRequest("POST", "/api/login", body, "anon"))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Contains(t, rr.Body.String(), constvars.ErrClientIncorrectPassword)
		assert.Nil(t, cookieByName(rr, constvars.CookieAccessToken))
	})

	t.Run("brute force is blocked", func(t *testing.T) {
		f := newRouterFixture()
		f.auth.On("IsAnonymousCSRFTokenValid", mock.Anything, "anon").Return(true, nil)
		f.auth.On("Login", mock.Anything, mock.Anything).Return(nil, exceptions.ErrIncorrectPassword(nil))

		var last int
		for i := 0; i < 4; i++ {
			last = f.serve(anonymousRequest("POST", "/api/login", body, "anon")).Code
		}
		assert.Equal(t, http.StatusTooManyRequests, last)
		f.auth.AssertNumberOfCalls(t, "Login", 3)
	})
}

func TestLogoutRoute(t *testing.T) {
	for _, method := range []string{"POST", "DELETE"} {
		t.Run(method, func(t *testing.T) {
			f := newRouterFixture()
			f.auth.On("Authenticate", mock.Anything, testAccessToken).Return(testSession, nil).Once()
			f.auth.On("Logout", mock.Anything, mock.MatchedBy(func(r *requests.Logout) bool {
				return r.SessionID == "s-1" && r.RefreshToken == "refresh-jwt"
			})).Return(nil).Once()

			req := authedRequest(method, "/api/logout", nil)
			req.AddCookie(&http.Cookie{Name: constvars.CookieRefreshToken, Value: "refresh-jwt"})
			rr := f.serve(req)

			assert.Equal(t, http.StatusNoContent, rr.Code)
			access := cookieByName(rr, constvars.CookieAccessToken)
			require.NotNil(t, access)
			assert.Equal(t, -1, access.MaxAge)
			f.auth.AssertExpectations(t)
		})
	}

	t.Run("anonymous caller", func(t *testing.T) {
		f := newRouterFixture()
		f.auth.On("IsAnonymousCSRFTokenValid", mock.Anything, "anon").Return(true, nil).Once()

		rr := f.serve(anonymousRequest("POST", "/api/logout", nil, "anon"))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestRefreshTokenRoute(t *testing.T) {
	t.Run("rotates without csrf header", func(t *testing.T) {
		f := newRouterFixture()
		f.auth.On("Refresh", mock.Anything, &requests.RefreshToken{RefreshToken: "refresh-jwt"}).Return(authResult(7), nil).Once()

		req := httptest.NewRequest("POST", "/api/refresh-token", nil)
		req.AddCookie(&http.Cookie{Name: constvars.CookieRefreshToken, Value: "refresh-jwt"})
		rr := f.serve(req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "new-refresh", cookieByName(rr, constvars.CookieRefreshToken).Value)
	})

	t.Run("reused token clears cookies", func(t *testing.T) {
		f := newRouterFixture()
		f.auth.On("Refresh", mock.Anything, mock.Anything).Return(nil, exceptions.ErrRefreshTokenReused(errors.New("jti consumed"))).Once()

		req := httptest.NewRequest("POST", "/api/refresh-token", nil)
		req.AddCookie(&http.Cookie{Name: constvars.CookieRefreshToken, Value: "old"})
		rr := f.serve(req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Equal(t, -1, cookieByName(rr, constvars.CookieRefreshToken).MaxAge)
	})

	t.Run("missing cookie", func(t *testing.T) {
		f := newRouterFixture()
		rr := f.serve(httptest.NewRequest("POST", "/api/refresh-token", nil))
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestGoogleOAuthRoutes(t *testing.T) {
	t.Run("login redirects to consent", func(t *testing.T) {
		f := newRouterFixture()
		f.oauth.On("BeginGoogleLogin", mock.Anything).Return("https://accounts.google.com/o/oauth2/auth?state=abc", nil).Once()

		rr := f.serve(httptest.NewRequest("GET", "/api/login/google", nil))

		assert.Equal(t, http.StatusFound, rr.Code)
		assert.Equal(t, "https://accounts.google.com/o/oauth2/auth?state=abc", rr.Header().Get(constvars.HeaderLocation))
	})

	t.Run("authorize success", func(t *testing.T) {
		f := newRouterFixture()
		f.oauth.On("CompleteGoogleLogin", mock.Anything, "abc", "code-1").Return(authResult(3), nil).Once()

		rr := f.serve(httptest.NewRequest("GET", "/api/authorize?state=abc&code=code-1", nil))

		assert.Equal(t, http.StatusFound, rr.Code)
		assert.Equal(t, "http://localhost:5173/oauth/callback", rr.Header().Get(constvars.HeaderLocation))
		assert.NotNil(t, cookieByName(rr, constvars.CookieAccessToken))
	})

	t.Run("authorize invalid state", func(t *testing.T) {
		f := newRouterFixture()
		f.oauth.On("CompleteGoogleLogin", mock.Anything, "used", "code-1").Return(nil, exceptions.ErrOAuthStateInvalid(nil)).Once()

		rr := f.serve(httptest.NewRequest("GET", "/api/authorize?state=used&code=code-1", nil))

		assert.Equal(t, http.StatusFound, rr.Code)
		assert.Equal(t, "http://localhost:5173/oauth/callback?error=invalid_state", rr.Header().Get(constvars.HeaderLocation))
		assert.Nil(t, cookieByName(rr, constvars.CookieAccessToken))
	})

	t.Run("provider denied", func(t *testing.T) {
		f := newRouterFixture()
		rr := f.serve(httptest.NewRequest("GET", "/api/authorize?error=access_denied", nil))

		assert.Equal(t, "http://localhost:5173/oauth/callback?error=access_denied", rr.Header().Get(constvars.HeaderLocation))
		f.oauth.AssertNotCalled(t, "CompleteGoogleLogin", mock.Anything, mock.Anything, mock.Anything)
	})
}
