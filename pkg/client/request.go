package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// APIError is a non-2xx answer from the API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// IsStatus reports whether err is an *APIError with the given status code.
func IsStatus(err error, statusCode int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == statusCode
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func isSafeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodTrace:
		return true
	}
	return false
}

// do sends a request and decodes the envelope data into out. A 403 on an
// unsafe method refreshes the CSRF token and retries once.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	payload, err := encodeBody(body)
	if err != nil {
		return err
	}

	resp, err := c.send(ctx, method, path, query, payload)
	if err != nil {
		return err
	}

	if resp.StatusCode == http.StatusForbidden && !isSafeMethod(method) {
		discard(resp)
		c.log.Info("client.do csrf rejected, refreshing token",
			zap.String("method", method),
			zap.String("path", path),
		)
		if _, err := c.refreshCSRF(ctx); err != nil {
			return err
		}
		resp, err = c.send(ctx, method, path, query, payload)
		if err != nil {
			return err
		}
	}
	return decodeResponse(resp, out)
}

// doOnce is do without the CSRF retry.
func (c *Client) doOnce(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	payload, err := encodeBody(body)
	if err != nil {
		return err
	}
	resp, err := c.send(ctx, method, path, query, payload)
	if err != nil {
		return err
	}
	return decodeResponse(resp, out)
}

func (c *Client) send(ctx context.Context, method, path string, query url.Values, payload []byte) (*http.Response, error) {
	endpoint := c.baseURL.JoinPath(path)
	if len(query) > 0 {
		endpoint.RawQuery = query.Encode()
	}

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", mimeJSON)
	if payload != nil {
		req.Header.Set(headerContentType, mimeJSON)
	}
	if !isSafeMethod(method) {
		if token := c.CSRFToken(); token != "" {
			req.Header.Set(headerCSRFToken, token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	return resp, nil
}

// refreshCSRF fetches a CSRF token. Concurrent callers share one request.
func (c *Client) refreshCSRF(ctx context.Context) (string, error) {
	token, err, _ := c.csrfGroup.Do(csrfFlightKey, func() (interface{}, error) {
		var result csrfTokenResponse
		if err := c.doOnce(ctx, http.MethodGet, "/csrf-token", nil, nil, &result); err != nil {
			return "", err
		}
		c.setCSRFToken(result.CSRFToken)
		return result.CSRFToken, nil
	})
	if err != nil {
		c.log.Warn("client.refreshCSRF error", zap.Error(err))
		return "", err
	}
	return token.(string), nil
}

func encodeBody(body interface{}) ([]byte, error) {
	if body == nil {
		return nil, nil
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request body: %w", err)
	}
	return payload, nil
}

func decodeResponse(resp *http.Response, out interface{}) error {
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		var env envelope
		if json.Unmarshal(raw, &env) == nil && env.Message != "" {
			apiErr.Message = env.Message
		}
		return apiErr
	}

	if out == nil || resp.StatusCode == http.StatusNoContent || len(raw) == 0 {
		return nil
	}
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("decode response envelope: %w", err)
	}
	if len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("decode response data: %w", err)
	}
	return nil
}

func discard(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
}
