package routers

import (
	"moodjournal-service/internal/app/delivery/http/controllers"
	"moodjournal-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachPromptRoutes(router chi.Router, middlewares *middlewares.Middlewares, promptController *controllers.PromptController) {
	router.Use(middlewares.Authenticate)
	router.Get("/", promptController.GetPrompt)
	router.Post("/custom", promptController.GetCustomPrompt)
}
