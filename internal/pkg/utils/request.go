package utils

import (
	"context"
	"errors"
	"moodjournal-service/internal/app/models"
	"moodjournal-service/internal/pkg/constvars"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
)

var (
	errMissingParam = errors.New("parameter is missing")
	errNotPositive  = errors.New("value must be a positive integer")
)

func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string); ok {
		return requestID
	}
	return ""
}

func SessionFromContext(ctx context.Context) (*models.Session, bool) {
	session, ok := ctx.Value(constvars.CONTEXT_SESSION_KEY).(*models.Session)
	if !ok || session == nil {
		return nil, false
	}
	return session, true
}

func ContextWithSession(ctx context.Context, session *models.Session) context.Context {
	return context.WithValue(ctx, constvars.CONTEXT_SESSION_KEY, session)
}

func ParsePositiveInt64(value string) (int64, error) {
	if value == "" {
		return 0, errMissingParam
	}
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, errNotPositive
	}
	return id, nil
}

func ParseURLParamID(r *http.Request, name string) (int64, error) {
	return ParsePositiveInt64(chi.URLParam(r, name))
}

// ParseOptionalQueryInt64 returns nil when the query parameter is absent.
func ParseOptionalQueryInt64(r *http.Request, name string) (*int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	value, err := ParsePositiveInt64(raw)
	if err != nil {
		return nil, err
	}
	return &value, nil
}

func ParseQueryInt(r *http.Request, name string, defaultValue int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return defaultValue, nil
	}
	return strconv.Atoi(raw)
}

// ParseOptionalQueryTime accepts RFC3339 timestamps and plain dates. Plain
// dates are interpreted in loc.
func ParseOptionalQueryTime(r *http.Request, name string, loc *time.Location) (*time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	if parsed, err := time.Parse(time.RFC3339, raw); err == nil {
		return &parsed, nil
	}
	parsed, err := time.ParseInLocation(constvars.DateLayout, raw, loc)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

// ParseOptionalQueryDayEnd works like ParseOptionalQueryTime, except that a
// plain date resolves to the last instant of that day so it can close an
// inclusive range.
func ParseOptionalQueryDayEnd(r *http.Request, name string, loc *time.Location) (*time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	if parsed, err := time.Parse(time.RFC3339, raw); err == nil {
		return &parsed, nil
	}
	parsed, err := time.ParseInLocation(constvars.DateLayout, raw, loc)
	if err != nil {
		return nil, err
	}
	end := parsed.AddDate(0, 0, 1).Add(-time.Nanosecond)
	return &end, nil
}
