package routes

import (
	"anonchat_server/controllers"
	"anonchat_server/services"
	"anonchat_server/socket"

	"github.com/gorilla/mux"
)

// RegisterStatsRoutes sets up routes for live engine counters under /api/stats
func RegisterStatsRoutes(r *mux.Router, engine *services.SessionService, registry *socket.Registry) {
	// Initialize the controller with the engine and connection registry
	controller := controllers.NewStatsController(engine, registry)

	// Create a subrouter for /api/stats
	statsRouter := r.PathPrefix("/api/stats").Subrouter()

	// Define routes and their corresponding handlers
	statsRouter.HandleFunc("", controller.GetStats).Methods("GET")
}
