package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// fakeAPI mimics the cookie and CSRF behaviour of the journal API.
type fakeAPI struct {
	mu          sync.Mutex
	sessionCSRF string
	loggedIn    bool
	csrfSeq     int

	csrfCalls     atomic.Int32
	refreshCalls  atomic.Int32
	journalPosts  atomic.Int32
	forbidPosts   atomic.Int32
	refreshStatus atomic.Int32
	logoutStatus  atomic.Int32
	csrfGate      chan struct{}
}

func newFakeAPI() *fakeAPI {
	api := &fakeAPI{}
	api.refreshStatus.Store(http.StatusOK)
	api.logoutStatus.Store(http.StatusNoContent)
	return api
}

func writeData(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{"success": true, "message": "ok", "data": data})
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{"status_code": status, "success": false, "message": message})
}

func (api *fakeAPI) setSessionCookies(w http.ResponseWriter) {
	api.csrfSeq++
	api.sessionCSRF = "session-csrf-" + strconv.Itoa(api.csrfSeq)
	http.SetCookie(w, &http.Cookie{Name: "access_token_cookie", Value: "access", Path: "/", HttpOnly: true})
	http.SetCookie(w, &http.Cookie{Name: "refresh_token_cookie", Value: "refresh", Path: "/api/refresh-token", HttpOnly: true})
	http.SetCookie(w, &http.Cookie{Name: "csrf_access_token", Value: api.sessionCSRF, Path: "/"})
}

func (api *fakeAPI) hasSession(r *http.Request) bool {
	cookie, err := r.Cookie("access_token_cookie")
	return err == nil && cookie.Value == "access" && api.loggedIn
}

func (api *fakeAPI) handler() http.Handler {
	mux := http.NewServeMux()
	user := User{ID: 7, Username: "jane", Email: "jane@example.com"}

	mux.HandleFunc("/api/csrf-token", func(w http.ResponseWriter, r *http.Request) {
		api.csrfCalls.Add(1)
		if api.csrfGate != nil {
			<-api.csrfGate
		}
		api.mu.Lock()
		defer api.mu.Unlock()
		token := "anon-csrf"
		if api.hasSession(r) {
			token = api.sessionCSRF
		}
		writeData(w, http.StatusOK, csrfTokenResponse{CSRFToken: token})
	})

	mux.HandleFunc("/api/login", func(w http.ResponseWriter, r *http.Request) {
		api.mu.Lock()
		defer api.mu.Unlock()
		if r.Header.Get("X-CSRF-TOKEN") != "anon-csrf" {
			writeError(w, http.StatusForbidden, "CSRF token missing or invalid")
			return
		}
		var body loginRequest
		json.NewDecoder(r.Body).Decode(&body)
		if body.Password != "s3cret!pass" {
			writeError(w, http.StatusUnauthorized, "Incorrect password")
			return
		}
		api.loggedIn = true
		api.setSessionCookies(w)
		writeData(w, http.StatusOK, authUserResponse{User: user})
	})

	mux.HandleFunc("/api/logout", func(w http.ResponseWriter, r *http.Request) {
		api.mu.Lock()
		defer api.mu.Unlock()
		api.loggedIn = false
		status := int(api.logoutStatus.Load())
		if status != http.StatusNoContent {
			writeError(w, status, "boom")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})

	mux.HandleFunc("/api/refresh-token", func(w http.ResponseWriter, r *http.Request) {
		api.refreshCalls.Add(1)
		api.mu.Lock()
		defer api.mu.Unlock()
		status := int(api.refreshStatus.Load())
		if status != http.StatusOK {
			api.loggedIn = false
			writeError(w, status, "Your session has expired, please login again")
			return
		}
		if _, err := r.Cookie("refresh_token_cookie"); err != nil {
			writeError(w, http.StatusUnauthorized, "You are not logged in")
			return
		}
		api.setSessionCookies(w)
		writeData(w, http.StatusOK, authUserResponse{User: user})
	})

	mux.HandleFunc("/api/user/profile", func(w http.ResponseWriter, r *http.Request) {
		api.mu.Lock()
		defer api.mu.Unlock()
		if !api.hasSession(r) {
			writeError(w, http.StatusUnauthorized, "You are not logged in")
			return
		}
		writeData(w, http.StatusOK, user)
	})

	mux.HandleFunc("/api/journals", func(w http.ResponseWriter, r *http.Request) {
		api.mu.Lock()
		defer api.mu.Unlock()
		if !api.hasSession(r) {
			writeError(w, http.StatusUnauthorized, "You are not logged in")
			return
		}
		if r.Method == http.MethodGet {
			writeData(w, http.StatusOK, []Journal{})
			return
		}
		api.journalPosts.Add(1)
		forced := api.forbidPosts.Load() > 0
		if forced {
			api.forbidPosts.Add(-1)
		}
		if forced || r.Header.Get("X-CSRF-TOKEN") != api.sessionCSRF {
			writeError(w, http.StatusForbidden, "CSRF token missing or invalid")
			return
		}
		var input JournalInput
		json.NewDecoder(r.Body).Decode(&input)
		writeData(w, http.StatusCreated, Journal{ID: 1, Title: input.Title, Year: input.Year, Color: "#ffffff"})
	})

	mux.HandleFunc("/api/entries/heatmap", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("year") != "2024" || r.URL.Query().Has("month") {
			writeError(w, http.StatusBadRequest, "url query year is not valid")
			return
		}
		writeData(w, http.StatusOK, []HeatmapDay{{Date: "2024-02-01", Count: 2}})
	})
	return mux
}

func newTestClient(t *testing.T, api *fakeAPI, opts ...Option) *Client {
	t.Helper()
	server := httptest.NewServer(api.handler())
	t.Cleanup(server.Close)

	c, err := New(server.URL+"/api", opts...)
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c
}

func TestNewRejectsRelativeURL(t *testing.T) {
	_, err := New("/api")
	assert.Error(t, err)
}

func TestInitialize(t *testing.T) {
	t.Run("anonymous visitor", func(t *testing.T) {
		api := newFakeAPI()
		c := newTestClient(t, api)
		assert.Equal(t, StateUninitialized, c.State())

		require.NoError(t, c.Initialize(context.Background()))

		assert.Equal(t, StateAnonymous, c.State())
		assert.Nil(t, c.CurrentUser())
		assert.Equal(t, "anon-csrf", c.CSRFToken())
	})

	t.Run("returning user", func(t *testing.T) {
		api := newFakeAPI()
		c := newTestClient(t, api)
		require.NoError(t, c.Initialize(context.Background()))
		_, err := c.Login(context.Background(), "jane", "s3cret!pass")
		require.NoError(t, err)

		require.NoError(t, c.Initialize(context.Background()))

		assert.Equal(t, StateAuthenticated, c.State())
		assert.Equal(t, "jane", c.CurrentUser().Username)
		assert.Equal(t, "session-csrf-1", c.CSRFToken())
	})
}

func TestLoginAndLogout(t *testing.T) {
	api := newFakeAPI()
	c := newTestClient(t, api)
	ctx := context.Background()

	user, err := c.Login(ctx, "jane", "s3cret!pass")
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.ID)
	assert.Equal(t, StateAuthenticated, c.State())
	assert.Equal(t, "session-csrf-1", c.CSRFToken())

	journals, err := c.Journals(ctx)
	require.NoError(t, err)
	assert.Empty(t, journals)

	require.NoError(t, c.Logout(ctx))
	assert.Equal(t, StateAnonymous, c.State())
	assert.Nil(t, c.CurrentUser())
	assert.Equal(t, "anon-csrf", c.CSRFToken())
}

func TestLoginWrongPassword(t *testing.T) {
	api := newFakeAPI()
	c := newTestClient(t, api)

	_, err := c.Login(context.Background(), "jane", "nope")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "Incorrect password", apiErr.Message)
	assert.NotEqual(t, StateAuthenticated, c.State())
}

func TestLogoutClearsStateWhenServerFails(t *testing.T) {
	api := newFakeAPI()
	c := newTestClient(t, api)
	ctx := context.Background()
	_, err := c.Login(ctx, "jane", "s3cret!pass")
	require.NoError(t, err)
	api.logoutStatus.Store(http.StatusInternalServerError)

	err = c.Logout(ctx)

	assert.True(t, IsStatus(err, http.StatusInternalServerError))
	assert.Equal(t, StateAnonymous, c.State())
	assert.Equal(t, "anon-csrf", c.CSRFToken())
}

func TestRetryOnceAfterCSRFRefresh(t *testing.T) {
	api := newFakeAPI()
	c := newTestClient(t, api)
	ctx := context.Background()
	_, err := c.Login(ctx, "jane", "s3cret!pass")
	require.NoError(t, err)

	c.setCSRFToken("stale")
	journal, err := c.CreateJournal(ctx, JournalInput{Title: "Daily", Year: 2024})

	require.NoError(t, err)
	assert.Equal(t, "Daily", journal.Title)
	assert.Equal(t, int32(2), api.journalPosts.Load())
	assert.Equal(t, "session-csrf-1", c.CSRFToken())
}

func TestSecond403IsReturned(t *testing.T) {
	api := newFakeAPI()
	c := newTestClient(t, api)
	ctx := context.Background()
	_, err := c.Login(ctx, "jane", "s3cret!pass")
	require.NoError(t, err)

	api.forbidPosts.Store(2)

	_, err = c.CreateJournal(ctx, JournalInput{Title: "Daily", Year: 2024})

	assert.True(t, IsStatus(err, http.StatusForbidden))
	assert.Equal(t, int32(2), api.journalPosts.Load())
}

func TestConcurrentCSRFRefreshIsShared(t *testing.T) {
	api := newFakeAPI()
	api.csrfGate = make(chan struct{})
	c := newTestClient(t, api)

	var wg sync.WaitGroup
	tokens := make([]string, 5)
	for i := range tokens {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tokens[i], _ = c.refreshCSRF(context.Background())
		}(i)
	}

	require.Eventually(t, func() bool { return api.csrfCalls.Load() == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	close(api.csrfGate)
	wg.Wait()

	assert.LessOrEqual(t, api.csrfCalls.Load(), int32(2))
	for _, token := range tokens {
		assert.Equal(t, "anon-csrf", token)
	}
}

func TestRefreshLoop(t *testing.T) {
	t.Run("rotates tokens on each tick", func(t *testing.T) {
		api := newFakeAPI()
		c := newTestClient(t, api, WithRefreshInterval(10*time.Millisecond))
		_, err := c.Login(context.Background(), "jane", "s3cret!pass")
		require.NoError(t, err)

		require.Eventually(t, func() bool { return api.refreshCalls.Load() >= 2 }, time.Second, 5*time.Millisecond)
		assert.Equal(t, StateAuthenticated, c.State())
	})

	t.Run("unauthorized signs out and stops", func(t *testing.T) {
		api := newFakeAPI()
		api.refreshStatus.Store(http.StatusUnauthorized)
		c := newTestClient(t, api, WithRefreshInterval(10*time.Millisecond))
		_, err := c.Login(context.Background(), "jane", "s3cret!pass")
		require.NoError(t, err)

		require.Eventually(t, func() bool { return c.State() == StateAnonymous }, time.Second, 5*time.Millisecond)
		calls := api.refreshCalls.Load()
		time.Sleep(50 * time.Millisecond)
		assert.Equal(t, calls, api.refreshCalls.Load())
		assert.Nil(t, c.CurrentUser())
	})

	t.Run("close stops the loop", func(t *testing.T) {
		api := newFakeAPI()
		c := newTestClient(t, api, WithRefreshInterval(time.Hour))
		_, err := c.Login(context.Background(), "jane", "s3cret!pass")
		require.NoError(t, err)

		require.NoError(t, c.Close())
		c.mu.RLock()
		defer c.mu.RUnlock()
		assert.Nil(t, c.refreshCancel)
	})
}

func TestHeatmapQuery(t *testing.T) {
	api := newFakeAPI()
	c := newTestClient(t, api)

	days, err := c.Heatmap(context.Background(), 2024, 0)

	require.NoError(t, err)
	assert.Equal(t, []HeatmapDay{{Date: "2024-02-01", Count: 2}}, days)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "loading", StateLoading.String())
	assert.Equal(t, "State(9)", State(9).String())
}
