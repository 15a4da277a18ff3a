package routers

import (
	"moodjournal-service/internal/app/delivery/http/controllers"
	"moodjournal-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachEntryRoutes(router chi.Router, middlewares *middlewares.Middlewares, entryController *controllers.EntryController, insightController *controllers.InsightController) {
	router.Use(middlewares.Authenticate)
	router.Get("/", entryController.FindEntries)
	router.Post("/", entryController.CreateEntry)
	router.Get("/heatmap", insightController.GetHeatmap)
	router.Get("/mood-trend", insightController.GetMoodTrend)
	router.Get("/{entry_id}", entryController.FindEntryByID)
	router.Patch("/{entry_id}", entryController.UpdateEntryByID)
	router.Delete("/{entry_id}", entryController.DeleteEntryByID)
}
