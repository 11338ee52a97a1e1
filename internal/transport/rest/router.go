package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"maturiq/internal/service"
	"maturiq/internal/transport/rest/handler"
	"maturiq/internal/transport/rest/middleware"
	"maturiq/internal/transport/ws"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService       *service.AuthService
	ProjectService    *service.ProjectService
	AssessmentService *service.AssessmentService
	CatalogService    *service.CatalogService
	WSHub             *ws.Hub
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService)
	projectHandler := handler.NewProjectHandler(c.ProjectService, c.AssessmentService)
	assessmentHandler := handler.NewAssessmentHandler(c.AssessmentService)
	catalogHandler := handler.NewCatalogHandler(c.CatalogService)
	wsHandler := ws.NewHandler(c.WSHub, c.AuthService)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")

	// WebSocket routes (token in query param)
	v1.HandleFunc("/ws/projects/{projectId}", wsHandler.WatchWS).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Authenticated routes
	api := v1.NewRoute().Subrouter()
	api.Use(authMW.RequireAssessor)

	api.HandleFunc("/categories", catalogHandler.ListCategories).Methods("GET", "OPTIONS")
	api.HandleFunc("/questions", catalogHandler.ListQuestions).Methods("GET", "OPTIONS")
	api.HandleFunc("/catalog/refresh", catalogHandler.RefreshCache).Methods("POST", "OPTIONS")

	api.HandleFunc("/projects", projectHandler.Create).Methods("POST", "OPTIONS")
	api.HandleFunc("/projects", projectHandler.List).Methods("GET", "OPTIONS")
	api.HandleFunc("/projects/{projectId}", projectHandler.Get).Methods("GET", "OPTIONS")
	api.HandleFunc("/projects/{projectId}/assessments", assessmentHandler.Start).Methods("POST", "OPTIONS")
	api.HandleFunc("/projects/{projectId}/assessments", projectHandler.ListAssessments).Methods("GET", "OPTIONS")

	api.HandleFunc("/assessments/{assessmentId}", assessmentHandler.Get).Methods("GET", "OPTIONS")
	api.HandleFunc("/assessments/{assessmentId}", assessmentHandler.Delete).Methods("DELETE", "OPTIONS")
	api.HandleFunc("/assessments/{assessmentId}/answers", assessmentHandler.RecordAnswer).Methods("POST", "OPTIONS")
	api.HandleFunc("/assessments/{assessmentId}/progress", assessmentHandler.Progress).Methods("GET", "OPTIONS")
	api.HandleFunc("/assessments/{assessmentId}/complete", assessmentHandler.Complete).Methods("POST", "OPTIONS")
	api.HandleFunc("/assessments/{assessmentId}/pause", assessmentHandler.Pause).Methods("POST", "OPTIONS")
	api.HandleFunc("/assessments/{assessmentId}/cancel", assessmentHandler.Cancel).Methods("POST", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type, Authorization"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
