package main

import (
	"log"
	"net/http"
	"os"

	"anonchat_server/routes"
	"anonchat_server/services"
	"anonchat_server/socket"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func main() {
	// Initialize the session engine and its collaborators
	log.Println("Initializing session engine...")
	registry := socket.NewRegistry()
	roomService := services.NewRoomService()
	relayService := services.NewRelayService(roomService, registry)
	engine := services.NewSessionService(
		services.NewRateLimiterService(),
		services.NewMatchmakingService(),
		roomService,
		relayService,
	)
	log.Println("Session engine initialized.")

	// Initialize the Socket.IO server for the realtime chat channel
	server := socket.NewSocketServer(engine, registry)
	go func() {
		if err := server.Serve(); err != nil {
			log.Fatalf("❌ Socket server error: %v", err)
		}
	}()
	defer server.Close()

	// Set up the server port
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Using server port: %s\n", port)

	// Initialize the router
	r := mux.NewRouter()
	r.PathPrefix("/socket.io/").Handler(server)

	// Register routes
	routes.RegisterRoutes(r)
	routes.RegisterStatsRoutes(r, engine, registry)

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // Adjust for specific domains if needed
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)

	// Start the HTTP server
	log.Printf("Starting server on port %s...\n", port)
	log.Fatal(http.ListenAndServe(":"+port, corsHandler))
}
