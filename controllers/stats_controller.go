package controllers

import (
	"net/http"

	"anonchat_server/services"
	"anonchat_server/socket"
)

// StatsController exposes live engine counters
type StatsController struct {
	Engine   *services.SessionService
	Registry *socket.Registry
}

// NewStatsController initializes the stats controller
func NewStatsController(engine *services.SessionService, registry *socket.Registry) *StatsController {
	return &StatsController{Engine: engine, Registry: registry}
}

// GetStats - reports connection, queue, room, and device counters
func (c *StatsController) GetStats(w http.ResponseWriter, r *http.Request) {
	stats := c.Engine.Stats()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"connections":    c.Registry.Count(),
		"waitingUsers":   stats.WaitingUsers,
		"activeRooms":    stats.ActiveRooms,
		"trackedDevices": stats.TrackedDevices,
	})
}
