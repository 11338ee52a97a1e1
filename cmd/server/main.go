package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"maturiq/internal/cache"
	"maturiq/internal/config"
	"maturiq/internal/repository"
	"maturiq/internal/service"
	"maturiq/internal/transport/rest"
	"maturiq/internal/transport/ws"
)

// @title Maturiq Assessment API
// @version 1.0
// @description Project-maturity questionnaire platform
// @host localhost:8080
// @BasePath /v1
func main() {
	log.Println("started")
	ctx := context.Background()

	cfg := config.Load()

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	// Ping MongoDB
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	log.Println("Connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDB)

	// Redis connection
	redisAddr := cfg.RedisAddr
	if len(redisAddr) > 8 && redisAddr[:8] == "redis://" {
		redisAddr = redisAddr[8:]
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: redisAddr,
	})
	defer rdb.Close()

	// Ping Redis
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	// Initialize WebSocket hub
	wsHub := ws.NewHub()
	log.Println("WebSocket hub started")

	// Initialize repositories
	assessmentRepo := repository.NewAssessmentRepo(db)
	catalogRepo := repository.NewCatalogRepo(db)
	projectRepo := repository.NewProjectRepo(db)

	// Initialize caches
	catalogCache := cache.NewCatalogCache(rdb)
	progressCache := cache.NewProgressCache(rdb)

	// Initialize services
	authSvc := service.NewAuthService()
	catalogSvc := service.NewCatalogService(catalogRepo, catalogCache)
	projectSvc := service.NewProjectService(projectRepo)
	assessmentSvc := service.NewAssessmentService(assessmentRepo, projectRepo, catalogSvc, progressCache)

	// Inject the hub for live project feeds
	assessmentSvc.SetBroadcaster(wsHub)

	// Build router
	router := rest.NewRouter(&rest.Container{
		AuthService:       authSvc,
		ProjectService:    projectSvc,
		AssessmentService: assessmentSvc,
		CatalogService:    catalogSvc,
		WSHub:             wsHub,
	})

	server := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		log.Printf("HTTP server listening on :%s", cfg.HTTPPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error:", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down")
	shutdownCtx, cancelShutdown := context.WithTimeout(ctx, 10*time.Second)
	defer cancelShutdown()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}
