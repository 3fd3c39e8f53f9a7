package rest

import (
	"animalquiz/internal/config"
	"animalquiz/internal/service"
	"animalquiz/internal/transport/rest/handler"
	"animalquiz/internal/transport/rest/middleware"
	"animalquiz/internal/transport/ws"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// Container holds all dependencies for the router
type Container struct {
	Config         *config.Config
	AuthService    *service.AuthService
	AttemptService *service.AttemptService
	WSHub          *ws.Hub
	Logger         *zap.Logger
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	attemptHandler := handler.NewAttemptHandler(c.AttemptService, c.Logger)
	wsHandler := ws.NewHandler(c.WSHub, c.AuthService, c.AttemptService, c.Logger)

	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware(c.Config))

	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/quiz", attemptHandler.Info).Methods("GET", "OPTIONS")
	v1.HandleFunc("/attempts", attemptHandler.Start).Methods("POST", "OPTIONS")

	// WebSocket route (token in query param)
	v1.HandleFunc("/ws/attempts", wsHandler.AttemptWS).Methods("GET")

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Attempt routes (require attempt token)
	attemptRoutes := v1.PathPrefix("/attempts/current").Subrouter()
	attemptRoutes.Use(authMW.RequireAttempt)

	attemptRoutes.HandleFunc("", attemptHandler.Current).Methods("GET", "OPTIONS")
	attemptRoutes.HandleFunc("/answers", attemptHandler.Answer).Methods("POST", "OPTIONS")
	attemptRoutes.HandleFunc("/reset", attemptHandler.Reset).Methods("POST", "OPTIONS")

	return r
}

func corsMiddleware(cfg *config.Config) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", cfg.CORSOrigins)
			w.Header().Set("Access-Control-Allow-Methods", cfg.CORSMethods)
			w.Header().Set("Access-Control-Allow-Headers", cfg.CORSHeaders)

			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
