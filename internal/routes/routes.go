package routes

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"TRAVELPLANNER_BACK-END/internal/config"
	"TRAVELPLANNER_BACK-END/internal/handlers"
	"TRAVELPLANNER_BACK-END/internal/middleware"
)

// SetupRoutes configures all application routes
func SetupRoutes(
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	tripsHandler *handlers.TripsHandler,
	plannerHandler *handlers.PlannerHandler,
	contactHandler *handlers.ContactHandler,
	healthHandler *handlers.HealthHandler,
) {
	jwtCfg := &cfg.JWT

	// Health check routes
	http.HandleFunc("/healthz", healthHandler.HealthCheck)
	http.HandleFunc("/livez", healthHandler.LivenessCheck)
	http.HandleFunc("/readyz", healthHandler.ReadinessCheck)

	// Authentication routes
	http.HandleFunc("/api/auth/register", authHandler.Register)
	http.HandleFunc("/api/auth/login", authHandler.Login)
	http.HandleFunc("/api/auth/profile", middleware.AuthMiddleware(authHandler.GetProfile, jwtCfg))

	// Trip routes
	http.HandleFunc("/api/trips", middleware.AuthMiddleware(tripsHandler.Trips, jwtCfg))
	http.HandleFunc("/api/trips/", middleware.AuthMiddleware(tripsHandler.Trips, jwtCfg))

	// Planner routes
	http.HandleFunc("/api/explore", middleware.AuthMiddleware(plannerHandler.Explore, jwtCfg))
	http.HandleFunc("/api/itinerary", middleware.AuthMiddleware(plannerHandler.Itinerary, jwtCfg))
	http.HandleFunc("/api/itinerary/save", middleware.AuthMiddleware(plannerHandler.SaveItinerary, jwtCfg))

	// Contact form
	http.HandleFunc("/api/contact", middleware.AuthMiddleware(contactHandler.Contact, jwtCfg))

	// Swagger UI
	http.Handle("/swagger/", httpSwagger.WrapHandler)

	// Root route
	http.HandleFunc("/", rootHandler)
}

func rootHandler(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("TravelPlanner backend is running."))
}
