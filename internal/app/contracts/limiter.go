package contracts

import (
	"context"
	"time"
)

// ApplyResourceLimiterInput configures one fixed-window evaluation.
type ApplyResourceLimiterInput struct {
	// ResourceName is the limited entity, for example a user id.
	ResourceName string
	// LimiterGroupName namespaces the limiter key.
	LimiterGroupName  string
	WindowDurationSec int
	MaxQuota          int
	// NowUTC is optional; zero means time.Now().UTC().
	NowUTC time.Time
}

type ApplyResourceLimiterOutput struct {
	Allowed        bool
	Count          int
	RetryAfterSecs int
}

type ResourceLimiter interface {
	ApplyResourceLimiter(ctx context.Context, in *ApplyResourceLimiterInput) (*ApplyResourceLimiterOutput, error)
}
