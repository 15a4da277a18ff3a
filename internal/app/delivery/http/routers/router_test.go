package routers

import (
	"bytes"
	"moodjournal-service/internal/app/config"
	"moodjournal-service/internal/app/contracts/mocks"
	"moodjournal-service/internal/app/delivery/http/controllers"
	"moodjournal-service/internal/app/delivery/http/middlewares"
	"moodjournal-service/internal/app/models"
	"moodjournal-service/internal/pkg/constvars"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const (
	testAccessToken = "access-jwt"
	testCSRFToken   = "session-csrf"
)

var testSession = &models.Session{
	SessionID: "s-1",
	UserID:    7,
	Username:  "jane",
	CSRFToken: testCSRFToken,
	ExpiresAt: time.Now().Add(time.Hour),
}

type routerFixture struct {
	router   *chi.Mux
	auth     *mocks.AuthUsecase
	oauth    *mocks.OAuthUsecase
	users    *mocks.UserUsecase
	journals *mocks.JournalUsecase
	entries  *mocks.EntryUsecase
	insights *mocks.InsightUsecase
	moods    *mocks.MoodUsecase
	prompts  *mocks.PromptUsecase
	postgres *mocks.Pinger
	redis    *mocks.Pinger
}

func newRouterFixture() *routerFixture {
	logger := zap.NewNop()
	internalConfig := &config.InternalConfig{
		App: config.App{
			EndpointPrefix:             "/api",
			FrontendURL:                "http://localhost:5173",
			MaxRequests:                1000,
			RequestBodyLimitInMegabyte: 1,
			Timezone:                   "UTC",
		},
		JWT:   config.AppJWT{RefreshCookiePathName: "/api/refresh-token"},
		CSRF:  config.AppCSRF{AnonymousTTLInMinutes: 60},
		OAuth: config.AppOAuth{FrontendCallback: "/oauth/callback"},
	}

	f := &routerFixture{
		router:   chi.NewRouter(),
		auth:     new(mocks.AuthUsecase),
		oauth:    new(mocks.OAuthUsecase),
		users:    new(mocks.UserUsecase),
		journals: new(mocks.JournalUsecase),
		entries:  new(mocks.EntryUsecase),
		insights: new(mocks.InsightUsecase),
		moods:    new(mocks.MoodUsecase),
		prompts:  new(mocks.PromptUsecase),
		postgres: new(mocks.Pinger),
		redis:    new(mocks.Pinger),
	}

	SetupRoutes(f.router, internalConfig,
		middlewares.NewMiddlewares(logger, f.auth, internalConfig),
		middlewares.NewRateLimiter(3, time.Minute, time.Minute, logger),
		&Controllers{
			Auth:    &controllers.AuthController{Log: logger, AuthUsecase: f.auth, InternalConfig: internalConfig},
			OAuth:   &controllers.OAuthController{Log: logger, OAuthUsecase: f.oauth, InternalConfig: internalConfig},
			User:    &controllers.UserController{Log: logger, UserUsecase: f.users, InternalConfig: internalConfig},
			Journal: &controllers.JournalController{Log: logger, JournalUsecase: f.journals},
			Entry:   &controllers.EntryController{Log: logger, EntryUsecase: f.entries, InternalConfig: internalConfig},
			Insight: &controllers.InsightController{Log: logger, InsightUsecase: f.insights},
			Mood:    &controllers.MoodController{Log: logger, MoodUsecase: f.moods},
			Prompt:  &controllers.PromptController{Log: logger, PromptUsecase: f.prompts},
			Health:  controllers.NewHealthController(logger, f.postgres, f.redis),
		},
	)
	return f
}

func (f *routerFixture) serve(req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	f.router.ServeHTTP(rr, req)
	return rr
}

// authedRequest carries the access cookie plus a matching CSRF pair.
func authedRequest(method, target string, body []byte) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.AddCookie(&http.Cookie{Name: constvars.CookieAccessToken, Value: testAccessToken})
	req.AddCookie(&http.Cookie{Name: constvars.CookieCSRFToken, Value: testCSRFToken})
	req.Header.Set(constvars.HeaderXCSRFToken, testCSRFToken)
	return req
}

// anonymousRequest carries only an anonymous CSRF pair.
func anonymousRequest(method, target string, body []byte, csrfToken string) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.AddCookie(&http.Cookie{Name: constvars.CookieCSRFToken, Value: csrfToken})
	req.Header.Set(constvars.HeaderXCSRFToken, csrfToken)
	return req
}

func cookieByName(rr *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, cookie := range rr.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}
