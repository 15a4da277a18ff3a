package routers

import (
	"moodjournal-service/internal/app/delivery/http/controllers"
	"moodjournal-service/internal/app/delivery/http/middlewares"
	"moodjournal-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(
	router chi.Router,
	middlewares *middlewares.Middlewares,
	loginLimiter *middlewares.RateLimiter,
	authController *controllers.AuthController,
	oauthController *controllers.OAuthController,
) {
	router.Get(constvars.RoutePathCSRFToken, authController.CSRFToken)
	router.With(loginLimiter.Limit).Post(constvars.RoutePathSignup, authController.Signup)
	router.With(loginLimiter.Limit).Post(constvars.RoutePathLogin, authController.Login)
	router.With(middlewares.Authenticate).Post(constvars.RoutePathLogout, authController.Logout)
	router.With(middlewares.Authenticate).Delete(constvars.RoutePathLogout, authController.Logout)
	router.Post(constvars.RoutePathRefreshToken, authController.RefreshToken)

	router.Get(constvars.RoutePathGoogleLogin, oauthController.GoogleLogin)
	router.Get(constvars.RoutePathAuthorize, oauthController.Authorize)
}
