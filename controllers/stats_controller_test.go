package controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"anonchat_server/controllers"
	"anonchat_server/models"
	"anonchat_server/services"
	"anonchat_server/socket"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nullEmitter struct{}

func (nullEmitter) Emit(connID string, event string, payload ...interface{}) {}

func TestGetStats(t *testing.T) {
	registry := socket.NewRegistry()
	rooms := services.NewRoomService()
	engine := services.NewSessionService(
		services.NewRateLimiterService(),
		services.NewMatchmakingService(),
		rooms,
		services.NewRelayService(rooms, nullEmitter{}),
	)

	require.NoError(t, engine.JoinQueue("c1", models.JoinRequest{
		Nickname:     "Nick",
		Gender:       models.GenderMale,
		GenderFilter: models.GenderFemale,
		DeviceID:     "device-1",
	}))

	controller := controllers.NewStatsController(engine, registry)
	req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	rec := httptest.NewRecorder()

	controller.GetStats(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]int
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 0, body["connections"])
	assert.Equal(t, 1, body["waitingUsers"])
	assert.Equal(t, 0, body["activeRooms"])
	assert.Equal(t, 1, body["trackedDevices"])
}

func TestHealthCheckHandler(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	controllers.HealthCheckHandler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
}
