package client

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Initialize resolves who the caller is. A live session cookie makes the
// client authenticated; otherwise it fetches an anonymous CSRF token and
// becomes anonymous.
func (c *Client) Initialize(ctx context.Context) error {
	c.setState(StateLoading, nil)

	var user User
	err := c.doOnce(ctx, http.MethodGet, "/user/profile", nil, nil, &user)
	if err == nil {
		c.setState(StateAuthenticated, &user)
		if _, err := c.refreshCSRF(ctx); err != nil {
			return err
		}
		c.startRefreshLoop()
		return nil
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		c.setState(StateAnonymous, nil)
		return err
	}

	c.log.Debug("client.Initialize no session", zap.Int("status_code", apiErr.StatusCode))
	c.setState(StateAnonymous, nil)
	_, err = c.refreshCSRF(ctx)
	return err
}

func (c *Client) Signup(ctx context.Context, username, email, password string) (*User, error) {
	return c.authenticate(ctx, "/signup", signupRequest{Username: username, Email: email, Password: password})
}

func (c *Client) Login(ctx context.Context, username, password string) (*User, error) {
	return c.authenticate(ctx, "/login", loginRequest{Username: username, Password: password})
}

func (c *Client) authenticate(ctx context.Context, path string, body interface{}) (*User, error) {
	if c.CSRFToken() == "" {
		if _, err := c.refreshCSRF(ctx); err != nil {
			return nil, err
		}
	}

	var result authUserResponse
	if err := c.do(ctx, http.MethodPost, path, nil, body, &result); err != nil {
		return nil, err
	}

	c.syncCSRFFromJar()
	c.setState(StateAuthenticated, &result.User)
	c.startRefreshLoop()

	user := result.User
	return &user, nil
}

// Logout ends the session locally even when the server call fails, then
// fetches a fresh anonymous CSRF token.
func (c *Client) Logout(ctx context.Context) error {
	c.stopRefreshLoop()

	logoutErr := c.do(ctx, http.MethodPost, "/logout", nil, nil, nil)
	if logoutErr != nil {
		c.log.Warn("client.Logout server call failed", zap.Error(logoutErr))
	}

	c.setState(StateAnonymous, nil)
	c.setCSRFToken("")
	_, csrfErr := c.refreshCSRF(ctx)
	return errors.Join(logoutErr, csrfErr)
}

// RefreshToken rotates the refresh token and the access token with it.
func (c *Client) RefreshToken(ctx context.Context) error {
	var result authUserResponse
	if err := c.doOnce(ctx, http.MethodPost, "/refresh-token", nil, nil, &result); err != nil {
		return err
	}
	c.syncCSRFFromJar()
	c.setState(StateAuthenticated, &result.User)
	return nil
}

func (c *Client) startRefreshLoop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || c.refreshCancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	c.refreshCancel = cancel
	c.refreshDone = done
	go c.refreshLoop(ctx, done)
}

func (c *Client) stopRefreshLoop() {
	c.mu.Lock()
	cancel, done := c.refreshCancel, c.refreshDone
	c.refreshCancel, c.refreshDone = nil, nil
	c.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

func (c *Client) refreshLoop(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(c.refreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		requestCtx, cancel := context.WithTimeout(ctx, c.requestTimeout)
		err := c.RefreshToken(requestCtx)
		cancel()
		if err == nil {
			continue
		}
		if ctx.Err() != nil {
			return
		}

		if IsStatus(err, http.StatusUnauthorized) {
			c.log.Info("client.refreshLoop session expired, signing out locally")
			c.mu.Lock()
			if c.refreshDone == done {
				c.refreshCancel()
				c.refreshCancel, c.refreshDone = nil, nil
			}
			c.state = StateAnonymous
			c.user = nil
			c.csrfToken = ""
			c.mu.Unlock()
			return
		}
		c.log.Warn("client.refreshLoop refresh failed, retrying next tick", zap.Error(err))
	}
}
