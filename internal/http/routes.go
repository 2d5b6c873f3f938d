package http

import (
	"time"

	"taskboard/internal/config"
	"taskboard/internal/http/handlers"
	"taskboard/internal/http/middleware"
	"taskboard/internal/repository"
	"taskboard/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

func RegisterRoutes(r *gin.Engine, db *pgxpool.Pool, version string, cfg *config.Config) {
	taskService := service.NewTaskService(repository.NewTaskRepository(db))
	h := handlers.NewHandler(taskService)
	healthHandler := handlers.NewHealthHandler(db, version)

	apiRateLimit := 10
	apiRateWindow := time.Minute
	if cfg != nil {
		apiRateLimit = cfg.APIRateLimit
		apiRateWindow = time.Duration(cfg.APIRateWindow) * time.Second
	}

	// Health checks (no rate limiting)
	r.GET("/health", healthHandler.Health)
	r.GET("/healthz", healthHandler.Liveness)
	r.GET("/readyz", healthHandler.Readiness)

	// API v1 routes
	v1 := r.Group("/api/v1")
	v1.Use(middleware.RedisRateLimit(apiRateLimit, apiRateWindow))
	registerAPIRoutes(v1, h)

	// Legacy /api routes (kept for backward compatibility)
	api := r.Group("/api")
	api.Use(middleware.RedisRateLimit(apiRateLimit, apiRateWindow))
	registerAPIRoutes(api, h)
}

func registerAPIRoutes(api *gin.RouterGroup, h *handlers.Handler) {
	api.GET("/all-tasks", h.AllTasks)
	api.GET("/open-tasks", h.OpenTasks)
	api.GET("/closed-tasks", h.ClosedTasks)
	api.GET("/task/:id", h.GetTask)
	api.POST("/create", h.CreateTask)
	api.PATCH("/update/:id", h.UpdateTask)
	api.DELETE("/delete/:id", h.DeleteTask)
}
