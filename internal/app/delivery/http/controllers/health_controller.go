package controllers

import (
	"context"
	"moodjournal-service/internal/app/contracts"
	"moodjournal-service/internal/pkg/constvars"
	"moodjournal-service/internal/pkg/dto/responses"
	"moodjournal-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	healthStatusUp   = "up"
	healthStatusDown = "down"
	healthTimeout    = 3 * time.Second
)

type HealthController struct {
	Log      *zap.Logger
	Postgres contracts.Pinger
	Redis    contracts.Pinger
}

func NewHealthController(logger *zap.Logger, postgres, redis contracts.Pinger) *HealthController {
	return &HealthController{
		Log:      logger,
		Postgres: postgres,
		Redis:    redis,
	}
}

// Healthz pings both stores concurrently. Any failed dependency turns the
// answer into a 503 that still lists per-dependency status.
func (ctrl *HealthController) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	health := responses.Health{Status: healthStatusUp, Postgres: healthStatusUp, Redis: healthStatusUp}

	var g errgroup.Group
	g.Go(func() error {
		if err := ctrl.Postgres.Ping(ctx); err != nil {
			health.Postgres = healthStatusDown
			return err
		}
		return nil
	})
	g.Go(func() error {
		if err := ctrl.Redis.Ping(ctx); err != nil {
			health.Redis = healthStatusDown
			return err
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		health.Status = healthStatusDown
		ctrl.Log.Error("HealthController.Healthz dependency down",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
			zap.Error(err),
		)
		w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
		w.WriteHeader(constvars.StatusServiceUnavailable)
		json.NewEncoder(w).Encode(responses.ResponseDTO{Success: false, Message: healthStatusDown, Data: health})
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HealthCheckSuccess, health)
}
