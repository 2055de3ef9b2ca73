// Package http wires the API routes.
package http

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"eventboard/internal/delivery/http/controllers"
	"eventboard/internal/delivery/http/helpers"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(eventController *controllers.EventController, viewController *controllers.ViewSessionController) *http.ServeMux {
	mux := http.NewServeMux()

	// Events
	mux.HandleFunc("GET /events", eventController.ListEvents)
	mux.HandleFunc("GET /events/export.csv", eventController.ExportCSV)
	mux.HandleFunc("POST /events", eventController.CreateEvent)
	mux.HandleFunc("PATCH /events/{eventID}", eventController.UpdateEvent)
	mux.HandleFunc("GET /events/{eventID}/participants", eventController.GetParticipants)
	mux.HandleFunc("POST /events/{eventID}/participants", eventController.AddParticipant)
	mux.HandleFunc("DELETE /events/{eventID}/participants/{index}", eventController.DeleteParticipant)

	// View sessions
	mux.HandleFunc("POST /views", viewController.CreateView)
	mux.HandleFunc("GET /views/{viewID}", viewController.GetView)
	mux.HandleFunc("PATCH /views/{viewID}", viewController.UpdateView)
	mux.HandleFunc("POST /views/{viewID}/sort/{field}", viewController.SortView)
	mux.HandleFunc("POST /views/{viewID}/page/{direction}", viewController.TurnPage)
	mux.HandleFunc("DELETE /views/{viewID}", viewController.CloseView)

	// Operational
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
