package middlewares

import (
	"moodjournal-service/internal/pkg/constvars"
	"moodjournal-service/internal/pkg/exceptions"
	"moodjournal-service/internal/pkg/utils"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter is a per-IP token bucket. A client that drains its bucket is
// blocked for blockTime before it gets a fresh one. Buckets idle for a full
// window are refilled anyway, so they are swept at most once per window.
type RateLimiter struct {
	visitors  map[string]*visitor
	blocked   map[string]time.Time
	mu        sync.Mutex
	requests  int
	per       time.Duration
	blockTime time.Duration
	lastSweep time.Time
	log       *zap.Logger
	now       func() time.Time
}

func NewRateLimiter(requests int, per, blockTime time.Duration, logger *zap.Logger) *RateLimiter {
	if requests < 1 {
		requests = 1
	}
	return &RateLimiter{
		visitors:  make(map[string]*visitor),
		blocked:   make(map[string]time.Time),
		requests:  requests,
		per:       per,
		blockTime: blockTime,
		log:       logger,
		now:       time.Now,
	}
}

func clientIP(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

func (rl *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)
		now := rl.now()

		rl.mu.Lock()
		rl.sweep(now)
		if blockedUntil, found := rl.blocked[ip]; found {
			if now.Before(blockedUntil) {
				rl.mu.Unlock()
				rl.reject(w, r, ip, blockedUntil.Sub(now))
				return
			}
			delete(rl.blocked, ip)
			delete(rl.visitors, ip)
		}

		v, exists := rl.visitors[ip]
		if !exists {
			v = &visitor{limiter: rate.NewLimiter(rate.Every(rl.per/time.Duration(rl.requests)), rl.requests)}
			rl.visitors[ip] = v
		}
		v.lastSeen = now

		if !v.limiter.AllowN(now, 1) {
			rl.blocked[ip] = now.Add(rl.blockTime)
			rl.mu.Unlock()
			rl.reject(w, r, ip, rl.blockTime)
			return
		}
		rl.mu.Unlock()

		next.ServeHTTP(w, r)
	})
}

// sweep drops idle buckets and finished blocks. Callers hold rl.mu.
func (rl *RateLimiter) sweep(now time.Time) {
	if now.Sub(rl.lastSweep) < rl.per {
		return
	}
	rl.lastSweep = now

	for ip, v := range rl.visitors {
		if _, isBlocked := rl.blocked[ip]; !isBlocked && now.Sub(v.lastSeen) >= rl.per {
			delete(rl.visitors, ip)
		}
	}
	for ip, blockedUntil := range rl.blocked {
		if !now.Before(blockedUntil) {
			delete(rl.blocked, ip)
			delete(rl.visitors, ip)
		}
	}
}

func (rl *RateLimiter) reject(w http.ResponseWriter, r *http.Request, ip string, retryAfter time.Duration) {
	rl.log.Warn("RateLimiter.Limit blocked request",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
		zap.String(constvars.LoggingRemoteAddrKey, ip),
		zap.String(constvars.LoggingEndpointKey, r.URL.Path),
	)
	seconds := int(retryAfter.Round(time.Second) / time.Second)
	if seconds < 1 {
		seconds = 1
	}
	w.Header().Set(constvars.HeaderRetryAfter, strconv.Itoa(seconds))
	utils.BuildErrorResponse(rl.log, w, exceptions.ErrTooManyRequests(nil))
}
