package routers

import (
	"moodjournal-service/internal/app/delivery/http/controllers"
	"moodjournal-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachUserRoutes(router chi.Router, middlewares *middlewares.Middlewares, userController *controllers.UserController) {
	router.Use(middlewares.Authenticate)
	router.Get("/profile", userController.GetProfile)
	router.Get("/stats", userController.GetStats)
	router.Delete("/delete", userController.DeleteUser)
	router.Post("/export", userController.ExportUser)
}
