package routers

import (
	"moodjournal-service/internal/app/config"
	"moodjournal-service/internal/app/delivery/http/controllers"
	"moodjournal-service/internal/app/delivery/http/middlewares"
	"moodjournal-service/internal/pkg/constvars"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

type Controllers struct {
	Auth    *controllers.AuthController
	OAuth   *controllers.OAuthController
	User    *controllers.UserController
	Journal *controllers.JournalController
	Entry   *controllers.EntryController
	Insight *controllers.InsightController
	Mood    *controllers.MoodController
	Prompt  *controllers.PromptController
	Health  *controllers.HealthController
}

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	loginLimiter *middlewares.RateLimiter,
	ctrls *Controllers,
) {
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.ErrorHandler)

	corsOptions := cors.Options{
		AllowedOrigins:   []string{internalConfig.App.FrontendURL},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", constvars.HeaderXCSRFToken, constvars.HeaderXRequestID},
		ExposedHeaders:   []string{constvars.HeaderXRequestID, constvars.HeaderRetryAfter},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middleware.RequestSize(int64(internalConfig.App.RequestBodyLimitInMegabyte) << 20))
	router.Use(middlewares.CSRFProtect)

	router.Route(internalConfig.App.EndpointPrefix, func(r chi.Router) {
		r.Get(constvars.RoutePathHealthz, ctrls.Health.Healthz)

		attachAuthRoutes(r, middlewares, loginLimiter, ctrls.Auth, ctrls.OAuth)

		r.Route(constvars.RoutePathUser, func(r chi.Router) {
			attachUserRoutes(r, middlewares, ctrls.User)
		})

		r.Route(constvars.RoutePathJournals, func(r chi.Router) {
			attachJournalRoutes(r, middlewares, ctrls.Journal)
		})

		r.Route(constvars.RoutePathEntries, func(r chi.Router) {
			attachEntryRoutes(r, middlewares, ctrls.Entry, ctrls.Insight)
		})

		r.Route(constvars.RoutePathAIPrompt, func(r chi.Router) {
			attachPromptRoutes(r, middlewares, ctrls.Prompt)
		})

		r.Get(constvars.RoutePathMoods, ctrls.Mood.FindAll)
	})
}
