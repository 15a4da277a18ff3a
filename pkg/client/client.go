// Package client is a Go client for the mood journal API. It keeps the
// caller's session alive: it tracks who is signed in, holds the CSRF token
// the server expects on unsafe requests, and rotates the refresh token on a
// timer.
package client

import (
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	DefaultRefreshInterval = 15 * time.Minute
	DefaultRequestTimeout  = 30 * time.Second

	headerCSRFToken   = "X-CSRF-TOKEN"
	cookieCSRFToken   = "csrf_access_token"
	csrfFlightKey     = "csrf"
	mimeJSON          = "application/json"
	headerContentType = "Content-Type"
)

type State int32

const (
	StateUninitialized State = iota
	StateLoading
	StateAuthenticated
	StateAnonymous
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateLoading:
		return "loading"
	case StateAuthenticated:
		return "authenticated"
	case StateAnonymous:
		return "anonymous"
	default:
		return fmt.Sprintf("State(%d)", int32(s))
	}
}

type Client struct {
	baseURL         *url.URL
	httpClient      *http.Client
	log             *zap.Logger
	refreshInterval time.Duration
	requestTimeout  time.Duration

	csrfGroup singleflight.Group

	mu            sync.RWMutex
	state         State
	user          *User
	csrfToken     string
	refreshCancel func()
	refreshDone   chan struct{}
	closed        bool
}

type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. A client without a
// cookie jar gets one, since the session lives in cookies.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		c.log = logger
	}
}

func WithRefreshInterval(interval time.Duration) Option {
	return func(c *Client) {
		c.refreshInterval = interval
	}
}

func WithRequestTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.requestTimeout = timeout
	}
}

// New builds a client for the API rooted at baseURL, for example
// "https://journal.example.com/api".
func New(baseURL string, opts ...Option) (*Client, error) {
	parsed, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("base url %q must be absolute", baseURL)
	}

	c := &Client{
		baseURL:         parsed,
		log:             zap.NewNop(),
		refreshInterval: DefaultRefreshInterval,
		requestTimeout:  DefaultRequestTimeout,
		state:           StateUninitialized,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.httpClient == nil {
		c.httpClient = &http.Client{
			Transport: http.DefaultTransport.(*http.Transport).Clone(),
			Timeout:   c.requestTimeout,
		}
	}
	if c.httpClient.Jar == nil {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, fmt.Errorf("create cookie jar: %w", err)
		}
		c.httpClient.Jar = jar
	}
	if c.refreshInterval <= 0 {
		c.refreshInterval = DefaultRefreshInterval
	}
	return c, nil
}

func (c *Client) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// CurrentUser returns a copy of the signed-in user, or nil when nobody is.
func (c *Client) CurrentUser() *User {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.user == nil {
		return nil
	}
	user := *c.user
	return &user
}

func (c *Client) CSRFToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.csrfToken
}

// Close stops the refresh loop and releases idle connections. The client
// must not be used afterwards.
func (c *Client) Close() error {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()

	c.stopRefreshLoop()
	c.httpClient.CloseIdleConnections()
	return nil
}

func (c *Client) setState(state State, user *User) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = state
	c.user = user
}

func (c *Client) setCSRFToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.csrfToken = token
}

// syncCSRFFromJar picks up the CSRF cookie the server sets alongside the
// session cookies.
func (c *Client) syncCSRFFromJar() {
	for _, cookie := range c.httpClient.Jar.Cookies(c.baseURL) {
		if cookie.Name == cookieCSRFToken && cookie.Value != "" {
			c.setCSRFToken(cookie.Value)
			return
		}
	}
}
